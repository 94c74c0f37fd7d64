package domain

import "time"

// Property is a real-estate listing owned by a single user.
// OwnerID is fixed at creation and never changes afterwards.
type Property struct {
	ID        string
	OwnerID   string
	Title     string
	City      string
	Price     float64
	ImageURL  *string
	CreatedAt time.Time
}
