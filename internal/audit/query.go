package audit

import (
	"context"
	"strconv"
	"time"

	"github.com/BruksfildServices01/local-services/internal/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Filter scopes an audit listing to one provider. Zero values disable the
// optional filters. To is inclusive of the whole day it names.
type Filter struct {
	ProviderID uint
	Action     string
	Entity     string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

// ParsePaging applies the listing defaults to raw page/limit values.
func ParsePaging(pageStr, limitStr string) (page, limit int) {
	page, _ = strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}
	limit, _ = strconv.Atoi(limitStr)
	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	return page, limit
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type Page struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

type Reader interface {
	List(ctx context.Context, f Filter) (*Page, error)
}
