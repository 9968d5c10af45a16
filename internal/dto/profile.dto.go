package dto

import "github.com/BruksfildServices01/local-services/internal/models"

type ProviderDTO struct {
	ID           uint     `json:"id"`
	UserID       uint     `json:"user_id"`
	Name         string   `json:"name"`
	BusinessName string   `json:"businessName"`
	Phone        string   `json:"phone"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zipCode"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	IsVerified   bool     `json:"isVerified"`
}

func Provider(p *models.Provider) ProviderDTO {
	return ProviderDTO{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		BusinessName: p.BusinessName,
		Phone:        p.Phone,
		Description:  p.Description,
		Address:      p.Address,
		City:         p.City,
		State:        p.State,
		ZipCode:      p.ZipCode,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Rating:       p.Rating,
		ReviewCount:  p.ReviewCount,
		IsVerified:   p.IsVerified,
	}
}

type CustomerDTO struct {
	ID      uint   `json:"id"`
	UserID  uint   `json:"user_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

func Customer(c *models.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID,
		UserID:  c.UserID,
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		City:    c.City,
		State:   c.State,
		ZipCode: c.ZipCode,
	}
}
