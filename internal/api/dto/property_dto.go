package dto

import "time"

// CreatePropertyRequest payload. The owner is never part of the
// payload; it is always the authenticated caller.
type CreatePropertyRequest struct {
	Title string   `json:"title"`
	City  string   `json:"city"`
	Price *float64 `json:"price"`
	Image *string  `json:"image"`
}

// UpdatePropertyRequest carries partial updates; absent fields are
// left untouched.
type UpdatePropertyRequest struct {
	Title *string  `json:"title"`
	City  *string  `json:"city"`
	Price *float64 `json:"price"`
	Image *string  `json:"image"`
}

// PropertyResponse is a catalog row.
type PropertyResponse struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Title     string    `json:"title"`
	City      string    `json:"city"`
	Price     float64   `json:"price"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
