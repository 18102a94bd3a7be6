package entity

import "time"

// Responsible es la persona asignable al seguimiento de un presupuesto.
type Responsible struct {
	ID          int64
	Name        string
	CUIT        string // único
	Email       string
	Phone       string
	Observation string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
