package models

import "time"

type Provider struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name         string `gorm:"size:120;not null" json:"name"`
	BusinessName string `gorm:"size:120" json:"business_name"`
	Phone        string `gorm:"size:20" json:"phone"`
	Description  string `gorm:"type:text" json:"description"`
	Address      string `gorm:"size:255" json:"address"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:50" json:"state"`
	ZipCode      string `gorm:"size:20" json:"zip_code"`

	Latitude  *float64 `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude *float64 `gorm:"type:decimal(11,8)" json:"longitude"`

	Rating      float64 `gorm:"not null;default:0" json:"rating"`
	ReviewCount int     `gorm:"not null;default:0" json:"review_count"`
	IsVerified  bool    `gorm:"not null;default:false" json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasLocation reports whether both coordinates are recorded.
func (p *Provider) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}
