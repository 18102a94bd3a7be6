package dto

import "time"

// CreateContactRequest body para POST /api/contacts (formulario público).
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// UpdateContactRequest body para PUT /api/contacts/:id.
type UpdateContactRequest struct {
	IsRead *bool `json:"isRead,omitempty"`
}

// ContactResponse consulta en respuestas.
type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
