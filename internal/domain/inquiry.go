package domain

import "time"

// Inquiry is a message sent about a property. Inquiries are immutable
// after creation; only the sender or the property owner may read or
// delete them.
type Inquiry struct {
	ID         string
	PropertyID string
	SenderID   string
	Message    string
	CreatedAt  time.Time

	// PropertyOwnerID is populated when the inquiry is fetched joined
	// with its property; it is not a column of the inquiries table.
	PropertyOwnerID string
}
