package entity

import "time"

// Order representa un pedido confirmado. A diferencia del presupuesto no
// lleva numerador visible: el flujo es exclusivamente de dashboard y los
// precios vienen del frente tal cual.
type Order struct {
	ID          string // UUID
	CustomerID  string
	Type        string
	Status      string
	Observation string
	TotalAmount int64 // centavos
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items    []OrderItem
	Customer *Customer
}

// OrderItem es una línea de un pedido, con snapshot de ambos precios.
type OrderItem struct {
	ID             int64
	OrderID        string
	ProductID      int64
	Price          int64
	Quantity       int64
	Amount         int64
	RetailPrice    int64
	WholesalePrice int64
	Observation    string

	Product *Product
}
