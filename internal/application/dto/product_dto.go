package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name           string  `json:"name"`
	Slug           string  `json:"slug,omitempty"` // si falta se genera desde name
	SKU            string  `json:"sku,omitempty"`
	Description    string  `json:"description,omitempty"`
	Stock          int64   `json:"stock,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"` // default true
	IsFeatured     bool    `json:"isFeatured,omitempty"`
	RetailPrice    int64   `json:"retailPrice"`
	WholesalePrice int64   `json:"wholesalePrice"`
	CategoryIDs    []int64 `json:"categoryIds,omitempty"`
	Images         []int64 `json:"images,omitempty"` // ids de imágenes; la primera queda como principal
	RelatedIDs     []int64 `json:"relatedProductIds,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name           *string  `json:"name,omitempty"`
	Slug           *string  `json:"slug,omitempty"`
	SKU            *string  `json:"sku,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Stock          *int64   `json:"stock,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
	IsFeatured     *bool    `json:"isFeatured,omitempty"`
	RetailPrice    *int64   `json:"retailPrice,omitempty"`
	WholesalePrice *int64   `json:"wholesalePrice,omitempty"`
	CategoryIDs    *[]int64 `json:"categoryIds,omitempty"`
	Images         *[]int64 `json:"images,omitempty"`
	RelatedIDs     *[]int64 `json:"relatedProductIds,omitempty"`
}

// UpdateProductPricesRequest body para PUT /api/products/prices: ajuste masivo
// porcentual de precios. El porcentaje admite decimales (ej. 7.5).
type UpdateProductPricesRequest struct {
	Products   []int64         `json:"products"`
	Percentage decimal.Decimal `json:"percentage"`
	Operation  string          `json:"operation"` // add | subtract
}

// ProductListQuery filtros de GET /api/products.
type ProductListQuery struct {
	IsActive   *bool  `query:"isActive"`
	IsFeatured *bool  `query:"isFeatured"`
	Category   string `query:"category"`
	Page       string `query:"page"` // vacío = sin paginación
}

// ProductResponse producto en respuestas, con relaciones aplanadas.
type ProductResponse struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	Slug            string             `json:"slug"`
	SKU             string             `json:"sku,omitempty"`
	Description     string             `json:"description,omitempty"`
	Stock           int64              `json:"stock"`
	IsActive        bool               `json:"isActive"`
	IsFeatured      bool               `json:"isFeatured"`
	RetailPrice     int64              `json:"retailPrice"`
	WholesalePrice  int64              `json:"wholesalePrice"`
	PriceUpdated    string             `json:"priceUpdated,omitempty"`
	PriceUpdatedAt  *time.Time         `json:"priceUpdatedAt,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	Categories      []CategoryResponse `json:"categories,omitempty"`
	Images          []ImageResponse    `json:"images,omitempty"`
	RelatedProducts []int64            `json:"relatedProducts,omitempty"`
}
