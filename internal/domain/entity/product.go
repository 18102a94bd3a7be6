package entity

import "time"

// Product representa un producto del catálogo.
// Los precios se almacenan como enteros en centavos: RetailPrice para clientes
// minoristas y WholesalePrice para mayoristas.
type Product struct {
	ID             int64
	Name           string
	Slug           string // único
	SKU            string // único cuando no es vacío
	Description    string
	Stock          int64
	IsActive       bool
	IsFeatured     bool
	RetailPrice    int64 // centavos
	WholesalePrice int64 // centavos
	PriceUpdated   string // etiqueta del último ajuste masivo, ej. "Inc 10%"
	PriceUpdatedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Relaciones (pobladas según la consulta)
	Categories      []Category
	Images          []Image
	RelatedProducts []int64
}

// ProductImage vincula un producto con una imagen, con orden y bandera principal.
type ProductImage struct {
	ProductID  int64
	ImageID    int64
	OrderIndex int
	IsPrimary  bool
}
