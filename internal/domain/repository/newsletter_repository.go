package repository

import "github.com/premiarte/premiarte-api/internal/domain/entity"

// NewsletterRepository puerto de persistencia de suscriptores del newsletter.
type NewsletterRepository interface {
	Create(subscriber *entity.NewsletterSubscriber) error
	GetByID(id int64) (*entity.NewsletterSubscriber, error)
	GetByEmail(email string) (*entity.NewsletterSubscriber, error)
	List() ([]*entity.NewsletterSubscriber, error)
	Update(subscriber *entity.NewsletterSubscriber) error
	Delete(id int64) error
}
