package dto

import "time"

// CreateNewsletterRequest body para POST /api/newsletters y POST /api/subscribe.
type CreateNewsletterRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// UpdateNewsletterRequest body para PUT /api/newsletters/:id.
type UpdateNewsletterRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// NewsletterResponse suscriptor en respuestas.
type NewsletterResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name,omitempty"`
	Email          string     `json:"email"`
	IsActive       bool       `json:"isActive"`
	SubscribedAt   time.Time  `json:"subscribedAt"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
