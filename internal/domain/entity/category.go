package entity

import "time"

// Category agrupa productos (M2M) y alimenta la navegación del storefront.
type Category struct {
	ID          int64
	Name        string
	Slug        string // único
	Description string
	ImageID     *int64
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
