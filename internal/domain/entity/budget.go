package entity

import "time"

// BudgetNumberBase es la base del numerador visible: el primer presupuesto
// recibe BudgetNumberBase+1. El número es un entero único y creciente,
// distinto del ID interno (UUID).
const BudgetNumberBase = 1000

// BudgetStatusPending estado inicial de todo presupuesto.
// El estado es texto libre: no hay máquina de estados impuesta.
const BudgetStatusPending = "pending"

// Budget representa un presupuesto (cotización) de un cliente.
// Es dueño exclusivo de sus items: se crean y borran con él.
type Budget struct {
	ID            string // UUID
	Number        int64  // numerador visible, único
	CustomerID    string
	ShowCuit      bool
	Observation   string
	TotalAmount   int64 // centavos
	Status        string
	UserID        string
	IsRead        bool
	ExpiresAt     *time.Time
	ApprovedAt    *time.Time
	RejectedAt    *time.Time
	Type          string
	ResponsibleID *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items    []BudgetItem
	Customer *Customer
}
