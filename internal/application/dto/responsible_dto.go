package dto

import "time"

// CreateResponsibleRequest body para POST /api/responsibles.
type CreateResponsibleRequest struct {
	Name        string `json:"name"`
	CUIT        string `json:"cuit"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Observation string `json:"observation,omitempty"`
}

// UpdateResponsibleRequest body para PUT /api/responsibles/:id.
type UpdateResponsibleRequest struct {
	Name        *string `json:"name,omitempty"`
	CUIT        *string `json:"cuit,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Observation *string `json:"observation,omitempty"`
}

// ResponsibleResponse responsable en respuestas.
type ResponsibleResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CUIT        string    `json:"cuit"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Observation string    `json:"observation,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
