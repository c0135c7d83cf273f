package entity

import "time"

// Profile is the read-only projection of a user returned to the
// authenticated owner. It deliberately excludes the stored credential.
type Profile struct {
	ID          uint
	Email       string
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}
