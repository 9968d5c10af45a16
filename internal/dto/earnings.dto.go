package dto

type EarningsDTO struct {
	Today              float64      `json:"today"`
	Week               float64      `json:"week"`
	Month              float64      `json:"month"`
	Total              float64      `json:"total"`
	RecentTransactions []BookingDTO `json:"recentTransactions"`
}
