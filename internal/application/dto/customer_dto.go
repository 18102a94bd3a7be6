package dto

import "time"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Type        string `json:"type,omitempty"` // retail | wholesale; default retail
	Document    string `json:"document,omitempty"`
	Address     string `json:"address,omitempty"`
	Observation string `json:"observation,omitempty"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id. Punteros: solo se
// actualizan los campos presentes.
type UpdateCustomerRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Type        *string `json:"type,omitempty"`
	Document    *string `json:"document,omitempty"`
	Address     *string `json:"address,omitempty"`
	Observation *string `json:"observation,omitempty"`
}

// ImportCustomerError fila rechazada durante una importación.
type ImportCustomerError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportCustomersResponse resumen de POST /api/customers/import.
type ImportCustomersResponse struct {
	Imported int                   `json:"imported"`
	Skipped  int                   `json:"skipped"`
	Errors   []ImportCustomerError `json:"errors"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Type        string    `json:"type"`
	Document    string    `json:"document,omitempty"`
	Address     string    `json:"address,omitempty"`
	Observation string    `json:"observation,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
