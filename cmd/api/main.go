package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/local-services/internal/audit"
	"github.com/BruksfildServices01/local-services/internal/clock"
	"github.com/BruksfildServices01/local-services/internal/config"
	dbpkg "github.com/BruksfildServices01/local-services/internal/db"
	"github.com/BruksfildServices01/local-services/internal/domain/identity"
	"github.com/BruksfildServices01/local-services/internal/infra/cache"
	"github.com/BruksfildServices01/local-services/internal/logging"
	"github.com/BruksfildServices01/local-services/internal/media"
	"github.com/BruksfildServices01/local-services/internal/notify"
	"github.com/BruksfildServices01/local-services/internal/routes"
	ucIdentity "github.com/BruksfildServices01/local-services/internal/usecase/identity"
	"github.com/BruksfildServices01/local-services/internal/validators"
)

func main() {

	cfg := config.Load()

	logger, err := logging.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Fatal("database unavailable", zap.Error(err))
	}

	// --------------------------------------------------
	// Optional collaborators
	// --------------------------------------------------

	var limiter identity.AttemptLimiter = identity.NoopLimiter{}
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Fatal("redis misconfigured", zap.Error(err))
		}
		defer rdb.Close()
		limiter = cache.NewLoginAttempts(rdb, cfg.LoginMaxAttempts, cfg.LoginAttemptWindow)
	}

	var sender notify.Sender
	if cfg.SMSEnabled() {
		sender = notify.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	} else {
		logger.Info("twilio not configured, booking messages are only logged")
		sender = notify.NewLogSender(logger)
	}

	var store media.ObjectStore
	if cfg.MediaEnabled() {
		store = media.NewS3Store(media.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
	}

	var checker ucIdentity.DomainChecker
	if cfg.CheckEmailDomain {
		checker = validators.NewEmailDomainChecker(nil)
	}

	dispatcher := audit.NewDispatcher(audit.New(db), logger)
	defer dispatcher.Close()

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Logger:   logger,
		Audit:    dispatcher,
		Notifier: notify.NewNotifier(sender, cfg.SMSTimeout),
		Limiter:  limiter,
		Store:    store,
		Checker:  checker,
		Clock:    clock.UTC,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
