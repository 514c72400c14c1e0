package model

// Service is a sellable offering shown on the public site. Soft-deleted
// services keep their row with IsActive false so they stay fetchable by id.
type Service struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Details     string  `json:"details"`
	Price       *string `json:"price"`
	IsActive    bool    `json:"isActive"`
}
