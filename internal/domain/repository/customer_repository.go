package repository

import "github.com/premiarte/premiarte-api/internal/domain/entity"

// CustomerRepository puerto de persistencia de clientes.
// Create y Update devuelven domain.ErrDuplicate ante violación de unicidad
// (email, phone o name); los Get devuelven (nil, nil) cuando no hay fila.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	// ListWithPhone devuelve todos los clientes con teléfono no nulo, para el
	// escaneo defensivo del resolver ante formatos de teléfono inconsistentes.
	ListWithPhone() ([]*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
