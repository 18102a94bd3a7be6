package entity

import "time"

// Tipos de cliente: determinan la lista de precios aplicada en los presupuestos.
const (
	CustomerTypeRetail    = "retail"
	CustomerTypeWholesale = "wholesale"
)

// Customer representa un cliente del comercio.
// Email y Phone son únicos cuando no son nulos; el resolver de presupuestos
// tolera la carrera sobre esos constraints (ver application/budgets).
type Customer struct {
	ID          string
	Name        string
	Email       string // vacío = sin email registrado
	Phone       string // vacío = sin teléfono registrado
	Type        string // retail | wholesale
	Document    string // DNI o CUIT
	Address     string
	Observation string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
