package dto

import "time"

// OrderLineRequest línea de pedido. Flujo exclusivamente dashboard: todos los
// valores monetarios vienen del frente.
type OrderLineRequest struct {
	ProductID      int64  `json:"productId"`
	Price          *int64 `json:"price,omitempty"`
	Quantity       *int64 `json:"quantity,omitempty"`
	Amount         *int64 `json:"amount,omitempty"`
	RetailPrice    *int64 `json:"retailPrice,omitempty"`
	WholesalePrice *int64 `json:"wholesalePrice,omitempty"`
	Observation    string `json:"observation,omitempty"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	CustomerID  string             `json:"customerId"`
	Type        string             `json:"type,omitempty"`
	Status      string             `json:"status,omitempty"` // default pending
	Observation string             `json:"observation,omitempty"`
	TotalAmount int64              `json:"totalAmount"`
	Products    []OrderLineRequest `json:"products"`
}

// UpdateOrderRequest body para PUT /api/orders/:id. Si Products viene no
// vacío, TotalAmount es obligatorio y el set de items se reemplaza completo.
type UpdateOrderRequest struct {
	Type        *string            `json:"type,omitempty"`
	Status      *string            `json:"status,omitempty"`
	Observation *string            `json:"observation,omitempty"`
	TotalAmount *int64             `json:"totalAmount,omitempty"`
	Products    []OrderLineRequest `json:"products,omitempty"`
}

// OrderItemResponse línea en respuestas.
type OrderItemResponse struct {
	ID             int64            `json:"id"`
	ProductID      int64            `json:"productId"`
	Price          int64            `json:"price"`
	Quantity       int64            `json:"quantity"`
	Amount         int64            `json:"amount"`
	RetailPrice    int64            `json:"retailPrice"`
	WholesalePrice int64            `json:"wholesalePrice"`
	Observation    string           `json:"observation,omitempty"`
	Product        *ProductResponse `json:"product,omitempty"`
}

// OrderResponse pedido completo en respuestas.
type OrderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customerId"`
	Type        string              `json:"type,omitempty"`
	Status      string              `json:"status"`
	Observation string              `json:"observation,omitempty"`
	TotalAmount int64               `json:"totalAmount"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Items       []OrderItemResponse `json:"items"`
	Customer    *CustomerResponse   `json:"customer,omitempty"`
}
