package repository

import "github.com/premiarte/premiarte-api/internal/domain/entity"

// ContactRepository puerto de persistencia de consultas de contacto.
type ContactRepository interface {
	Create(contact *entity.Contact) error
	GetByID(id int64) (*entity.Contact, error)
	List() ([]*entity.Contact, error)
	Update(contact *entity.Contact) error
	Delete(id int64) error
}
