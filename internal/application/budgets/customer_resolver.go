package budgets

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

// NormalizePhone reduce un teléfono a sus dígitos: "+54 (11) 5555-0001" y
// "11 5555 0001" comparan igual salvo por el prefijo de país que el usuario
// haya tipeado. Devuelve vacío si no quedan dígitos.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeEmail recorta espacios. La comparación de mayúsculas queda en la
// base (citext / lower en el índice único).
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// CustomerResolver resuelve el cliente de un presupuesto público: lo busca por
// teléfono o email y lo crea como minorista si no existe. Tolera la carrera de
// dos presupuestos simultáneos del mismo cliente nuevo recuperándose de la
// violación de unicidad.
type CustomerResolver struct {
	customers repository.CustomerRepository
}

// NewCustomerResolver construye el resolver.
func NewCustomerResolver(customers repository.CustomerRepository) *CustomerResolver {
	return &CustomerResolver{customers: customers}
}

// Resolve busca o crea el cliente. Cuando teléfono y email matchean clientes
// distintos gana el teléfono: el email se tipea mal con más frecuencia.
func (r *CustomerResolver) Resolve(name, email, phone string) (*entity.Customer, error) {
	email = NormalizeEmail(email)
	phone = NormalizePhone(phone)
	if email == "" && phone == "" {
		return nil, domain.ErrInvalidInput
	}

	if c, err := r.find(email, phone); err != nil {
		return nil, err
	} else if c != nil {
		return c, nil
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     email,
		Phone:     phone,
		Type:      entity.CustomerTypeRetail,
		CreatedAt: now,
		UpdatedAt: now,
	}
	createErr := r.customers.Create(customer)
	if createErr == nil {
		return customer, nil
	}
	if !errors.Is(createErr, domain.ErrDuplicate) {
		return nil, createErr
	}

	// Otro presupuesto creó al cliente entre la búsqueda y el insert:
	// volver a buscar, ahora tiene que estar.
	if c, err := r.find(email, phone); err == nil && c != nil {
		return c, nil
	}

	// La fila existente puede tener el teléfono en otro formato y el índice
	// único normalizado igual lo rechazó. Escaneo comparando normalizados.
	if phone != "" {
		withPhone, err := r.customers.ListWithPhone()
		if err == nil {
			for _, c := range withPhone {
				if NormalizePhone(c.Phone) == phone {
					return c, nil
				}
			}
		}
	}
	if email != "" {
		if c, err := r.customers.GetByEmail(email); err == nil && c != nil {
			return c, nil
		}
	}
	return nil, createErr
}

func (r *CustomerResolver) find(email, phone string) (*entity.Customer, error) {
	if phone != "" {
		c, err := r.customers.GetByPhone(phone)
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	}
	if email != "" {
		c, err := r.customers.GetByEmail(email)
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	}
	return nil, nil
}
