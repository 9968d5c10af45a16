package dto

import (
	"time"

	"github.com/BruksfildServices01/local-services/internal/domain/catalogue"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type ServiceDTO struct {
	ID          uint      `json:"id"`
	ProviderID  uint      `json:"provider_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Duration    *int      `json:"duration"`
	IsActive    bool      `json:"is_active"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func Service(s *models.Service) ServiceDTO {
	return ServiceDTO{
		ID:          s.ID,
		ProviderID:  s.ProviderID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Price:       s.Price.InexactFloat64(),
		Duration:    s.Duration,
		IsActive:    s.IsActive,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func Services(in []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(in))
	for i := range in {
		out = append(out, Service(&in[i]))
	}
	return out
}

// PublicServiceDTO is a listing entry with its provider summary attached.
type PublicServiceDTO struct {
	ServiceDTO
	Provider *catalogue.ProviderSummary `json:"provider"`
}

// PublicServices pairs each service with its provider summary. Services
// whose provider is missing from the map get a nil provider.
func PublicServices(in []models.Service, providers map[uint]catalogue.ProviderSummary) []PublicServiceDTO {
	out := make([]PublicServiceDTO, 0, len(in))
	for i := range in {
		entry := PublicServiceDTO{ServiceDTO: Service(&in[i])}
		if p, ok := providers[in[i].ProviderID]; ok {
			entry.Provider = &p
		}
		out = append(out, entry)
	}
	return out
}
