package domain

import "time"

// User is an account registered with the identity provider.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
