package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPropertyCreated EventType = "property_created"
	EventPropertyUpdated EventType = "property_updated"
	EventPropertyDeleted EventType = "property_deleted"
	EventInquiryCreated  EventType = "inquiry_created"
	EventInquiryDeleted  EventType = "inquiry_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PropertyPayload accompanies property lifecycle events.
type PropertyPayload struct {
	PropertyID string `json:"property_id"`
	OwnerID    string `json:"owner_id"`
	Title      string `json:"title,omitempty"`
	City       string `json:"city,omitempty"`
}

// InquiryPayload accompanies inquiry lifecycle events.
type InquiryPayload struct {
	InquiryID       string `json:"inquiry_id"`
	PropertyID      string `json:"property_id"`
	SenderID        string `json:"sender_id"`
	PropertyOwnerID string `json:"property_owner_id"`
	MessagePreview  string `json:"message_preview,omitempty"`
}
