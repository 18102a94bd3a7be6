package entity

import "time"

// Contact es una consulta del formulario público de contacto.
type Contact struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
