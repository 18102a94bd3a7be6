package entity

import "time"

// Setting es el contenido de una página de marketing del CMS legado.
// Value es un objeto JSON serializado cuyas propiedades define el frontend.
type Setting struct {
	ID        int64
	Key       string // único; ej. "home", "global"
	Value     string // JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}
