// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is stored lowercased.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords and is never
	// returned by any read operation exposed beyond the store.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time

	// LastLoginAt is the timestamp of the last successful login, nil before the first one.
	LastLoginAt *time.Time

	// IsActive marks the user as visible to lookups. Deactivation is a
	// soft delete: the row stays in storage but no query returns it.
	IsActive bool `gorm:"index;not null;default:true"`
}
