package entity

import "time"

// NewsletterSubscriber es un suscriptor del newsletter. El email es único:
// una resuscripción reactiva el registro existente en lugar de duplicarlo.
type NewsletterSubscriber struct {
	ID             int64
	Name           string
	Email          string // único
	IsActive       bool
	SubscribedAt   time.Time
	UnsubscribedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
