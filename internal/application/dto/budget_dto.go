package dto

import "time"

// BudgetLineRequest línea de producto en la creación/edición de presupuestos.
// El mismo endpoint acepta dos formas:
//
//   - flujo público:   {id, quantity}                → el precio se calcula
//     del catálogo según el tipo de cliente.
//   - flujo dashboard: {productId, price, amount}    → precio y monto vienen
//     del frente tal cual; quantity puede omitirse y se deriva de amount/price.
//
// La discriminación se hace por presencia de price/amount, una sola vez, en
// budgets.ResolveLines; de ahí en adelante la lógica trabaja con un único
// tipo normalizado.
type BudgetLineRequest struct {
	ID        string `json:"id,omitempty"`        // id de producto (string numérico, flujo público)
	ProductID string `json:"productId,omitempty"` // id de producto (flujo dashboard)

	// Informativos del storefront; no se persisten.
	Name  string `json:"name,omitempty"`
	Slug  string `json:"slug,omitempty"`
	Image string `json:"image,omitempty"`

	Quantity    int64  `json:"quantity,omitempty"`
	Price       *int64 `json:"price,omitempty"`  // centavos (dashboard)
	Amount      *int64 `json:"amount,omitempty"` // centavos (dashboard)
	Observation string `json:"observation,omitempty"`
}

// CreateBudgetRequest body para POST /api/budgets.
// CustomerID (dashboard) y name/email/phone (público) son ramas excluyentes.
type CreateBudgetRequest struct {
	CustomerID    string  `json:"customerId,omitempty"`
	Name          string  `json:"name,omitempty"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Message       string  `json:"message,omitempty"`
	Observation   string  `json:"observation,omitempty"`
	ResponsibleID *int64  `json:"responsibleId,omitempty"`
	ExpiresAt     *string `json:"expiresAt,omitempty"` // ISO 8601
	Type          string  `json:"type,omitempty"`
	TotalAmount   *int64  `json:"totalAmount,omitempty"` // centavos; override del dashboard
	Status        string  `json:"status,omitempty"`
	ShowCuit      bool    `json:"showCuit,omitempty"`

	Products []BudgetLineRequest `json:"products"`
}

// UpdateBudgetRequest body para PUT /api/budgets/:id. Si Products viene no
// vacío, el set completo de items se reemplaza.
type UpdateBudgetRequest struct {
	CustomerID    *string `json:"customerId,omitempty"`
	Observation   *string `json:"observation,omitempty"`
	ResponsibleID *int64  `json:"responsibleId,omitempty"`
	ExpiresAt     *string `json:"expiresAt,omitempty"`
	ApprovedAt    *string `json:"approvedAt,omitempty"`
	RejectedAt    *string `json:"rejectedAt,omitempty"`
	Type          *string `json:"type,omitempty"`
	TotalAmount   *int64  `json:"totalAmount,omitempty"`
	Status        *string `json:"status,omitempty"`
	ShowCuit      *bool   `json:"showCuit,omitempty"`
	IsRead        *bool   `json:"isRead,omitempty"`

	Products []BudgetLineRequest `json:"products,omitempty"`
}

// UpdateBudgetStatusRequest body para PUT /api/budgets/:id/status.
type UpdateBudgetStatusRequest struct {
	Status string `json:"status"`
}

// BudgetItemResponse línea en respuestas.
type BudgetItemResponse struct {
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

// BudgetResponse presupuesto completo en respuestas.
type BudgetResponse struct {
	ID            string               `json:"id"`
	Number        int64                `json:"number"`
	CustomerID    string               `json:"customerId"`
	ShowCuit      bool                 `json:"showCuit"`
	Observation   string               `json:"observation,omitempty"`
	TotalAmount   int64                `json:"totalAmount"`
	Status        string               `json:"status"`
	IsRead        bool                 `json:"isRead"`
	ExpiresAt     *time.Time           `json:"expiresAt,omitempty"`
	ApprovedAt    *time.Time           `json:"approvedAt,omitempty"`
	RejectedAt    *time.Time           `json:"rejectedAt,omitempty"`
	Type          string               `json:"type,omitempty"`
	ResponsibleID *int64               `json:"responsibleId,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	Items         []BudgetItemResponse `json:"items"`
	Customer      *CustomerResponse    `json:"customer,omitempty"`
}
