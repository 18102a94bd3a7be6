package entity

import "time"

// User es un usuario del panel de administración.
type User struct {
	ID           string // UUID
	Name         string
	Email        string // único
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
