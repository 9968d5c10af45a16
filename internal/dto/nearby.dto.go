package dto

import (
	"github.com/BruksfildServices01/local-services/internal/domain/discovery"
)

type NearbyProviderDTO struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	BusinessName string  `json:"businessName"`
	Phone        string  `json:"phone"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Rating       float64 `json:"rating"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type NearbyServiceDTO struct {
	ServiceDTO
	Provider NearbyProviderDTO `json:"provider"`
	Distance float64           `json:"distance"`
}

// Nearby keeps the ranking order and rounds each distance for display.
func Nearby(matches []discovery.Match) []NearbyServiceDTO {
	out := make([]NearbyServiceDTO, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		p := m.Provider
		out = append(out, NearbyServiceDTO{
			ServiceDTO: Service(&m.Service),
			Provider: NearbyProviderDTO{
				ID:           p.ID,
				Name:         p.Name,
				BusinessName: p.BusinessName,
				Phone:        p.Phone,
				City:         p.City,
				State:        p.State,
				Rating:       p.Rating,
				Latitude:     *p.Latitude,
				Longitude:    *p.Longitude,
			},
			Distance: discovery.Round1(m.Distance),
		})
	}
	return out
}
