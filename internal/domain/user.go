package domain

import "time"

// User is an account that owns tickets. Users are never updated or deleted.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
