package domain

import "time"

// Claims is the identity carried by a verified bearer token.
type Claims struct {
	CustomerID string
	Email      string
	IssuedAt   time.Time
	ExpiresAt  time.Time
}
