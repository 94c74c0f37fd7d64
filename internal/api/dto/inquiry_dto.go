package dto

import "time"

// CreateInquiryRequest payload.
type CreateInquiryRequest struct {
	Property string `json:"property"`
	Message  string `json:"message"`
}

// InquiryResponse is an inquiry row.
type InquiryResponse struct {
	ID        string    `json:"id"`
	Property  string    `json:"property"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
