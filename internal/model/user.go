package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User represents a platform account
type User struct {
	ID           UserID    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"` // bcrypt hash, never exposed in API responses
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}
