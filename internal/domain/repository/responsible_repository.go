package repository

import "github.com/premiarte/premiarte-api/internal/domain/entity"

// ResponsibleRepository puerto de persistencia de responsables.
// Create y Update devuelven domain.ErrDuplicate si el CUIT ya existe.
type ResponsibleRepository interface {
	Create(responsible *entity.Responsible) error
	GetByID(id int64) (*entity.Responsible, error)
	List() ([]*entity.Responsible, error)
	Update(responsible *entity.Responsible) error
	Delete(id int64) error
}
