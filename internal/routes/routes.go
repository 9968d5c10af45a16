package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/local-services/internal/audit"
	"github.com/BruksfildServices01/local-services/internal/clock"
	"github.com/BruksfildServices01/local-services/internal/config"
	"github.com/BruksfildServices01/local-services/internal/domain/identity"
	"github.com/BruksfildServices01/local-services/internal/handlers"
	infraRepo "github.com/BruksfildServices01/local-services/internal/infra/repository"
	"github.com/BruksfildServices01/local-services/internal/media"
	"github.com/BruksfildServices01/local-services/internal/middleware"
	"github.com/BruksfildServices01/local-services/internal/models"
	"github.com/BruksfildServices01/local-services/internal/notify"
	ucBooking "github.com/BruksfildServices01/local-services/internal/usecase/booking"
	ucCatalogue "github.com/BruksfildServices01/local-services/internal/usecase/catalogue"
	ucDiscovery "github.com/BruksfildServices01/local-services/internal/usecase/discovery"
	ucEarnings "github.com/BruksfildServices01/local-services/internal/usecase/earnings"
	ucIdentity "github.com/BruksfildServices01/local-services/internal/usecase/identity"
	ucProfile "github.com/BruksfildServices01/local-services/internal/usecase/profile"
)

// Deps are the process-wide collaborators built once in main.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Logger *zap.Logger

	Audit    *audit.Dispatcher
	Notifier *notify.Notifier
	Limiter  identity.AttemptLimiter
	Store    media.ObjectStore
	Checker  ucIdentity.DomainChecker
	Clock    clock.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware(d.Config.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA
	// ======================================================
	identityRepo := infraRepo.NewIdentityGormRepository(d.DB)
	catalogueRepo := infraRepo.NewCatalogueGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	earningsRepo := infraRepo.NewEarningsGormRepository(d.DB)
	discoveryRepo := infraRepo.NewDiscoveryGormRepository(d.DB)
	profileRepo := infraRepo.NewProfileGormRepository(d.DB)
	auditRepo := infraRepo.NewAuditLogGormRepository(d.DB)

	tokens := identity.NewTokenManager(d.Config.JWTSecret, d.Config.JWTTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucIdentity.NewRegister(identityRepo, d.Checker)
	loginUC := ucIdentity.NewLogin(identityRepo, tokens, d.Limiter, d.Logger)
	authorizeUC := ucIdentity.NewAuthorize(identityRepo, tokens)

	createServiceUC := ucCatalogue.NewCreateService(catalogueRepo, d.Audit)
	updateServiceUC := ucCatalogue.NewUpdateService(catalogueRepo, d.Audit, d.Clock)
	deleteServiceUC := ucCatalogue.NewDeleteService(catalogueRepo, d.Audit, d.Clock)
	listServicesUC := ucCatalogue.NewListServices(catalogueRepo)
	uploadImageUC := ucCatalogue.NewUploadServiceImage(catalogueRepo, media.NewProcessor(), d.Store, d.Audit, d.Clock)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, d.Notifier, d.Audit, d.Logger, d.Clock)
	setStatusUC := ucBooking.NewSetStatus(bookingRepo, d.Audit, d.Clock)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	earningsUC := ucEarnings.NewComputeEarnings(earningsRepo, d.Clock)
	nearbyUC := ucDiscovery.NewListNearby(discoveryRepo)
	profilesUC := ucProfile.NewProfiles(profileRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	serviceHandler := handlers.NewServiceHandler(createServiceUC, updateServiceUC, deleteServiceUC, listServicesUC, uploadImageUC)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, setStatusUC, listBookingsUC)
	earningsHandler := handlers.NewEarningsHandler(earningsUC)
	publicHandler := handlers.NewPublicHandler(listServicesUC, nearbyUC)
	profileHandler := handlers.NewProfileHandler(profilesUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/login", authHandler.Login)
		api.POST("/signup", authHandler.Signup)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/services/nearby", publicHandler.Nearby)
		api.GET("/providers/:id", publicHandler.GetProvider)
		api.GET("/providers/:id/services", publicHandler.ProviderServices)

		// ------------------------------
		// PROVIDER
		// ------------------------------
		provider := api.Group("/provider")
		provider.Use(middleware.RequireRole(authorizeUC, models.RoleProvider))
		{
			provider.GET("/profile", profileHandler.GetProvider)
			provider.PUT("/profile", profileHandler.UpdateProvider)
			provider.PUT("/location", profileHandler.UpdateLocation)

			provider.GET("/services", serviceHandler.List)
			provider.POST("/services", serviceHandler.Create)
			provider.PUT("/services/:id", serviceHandler.Update)
			provider.DELETE("/services/:id", serviceHandler.Delete)
			provider.PUT("/services/:id/image", serviceHandler.UploadImage)

			provider.GET("/bookings", bookingHandler.ListForProvider)
			provider.GET("/bookings/:id", bookingHandler.Get)
			provider.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)

			provider.GET("/earnings", earningsHandler.Get)
			provider.GET("/audit-logs", auditLogsHandler.List)
		}

		// ------------------------------
		// CUSTOMER
		// ------------------------------
		customerOnly := middleware.RequireRole(authorizeUC, models.RoleCustomer)

		api.POST("/bookings", customerOnly, bookingHandler.Create)

		customer := api.Group("/customer")
		customer.Use(customerOnly)
		{
			customer.GET("/bookings", bookingHandler.ListForCustomer)
			customer.GET("/profile", profileHandler.GetCustomer)
			customer.PUT("/profile", profileHandler.UpdateCustomer)
		}
	}
}
