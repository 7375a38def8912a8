package domain

import "time"

type ShareStatus string

const (
	ShareStatusActive  ShareStatus = "ACTIVE"
	ShareStatusRevoked ShareStatus = "REVOKED"
	ShareStatusExpired ShareStatus = "EXPIRED"
)

type Share struct {
	ID        int64
	TripID    int64
	Token     string
	Status    ShareStatus
	Email     string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
