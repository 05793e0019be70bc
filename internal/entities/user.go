package entities

import "time"

// User represents an identity record in the database
type User struct {
	ID           string    `json:"_id"` // UUID
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose the password hash in JSON
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"-"`
}
