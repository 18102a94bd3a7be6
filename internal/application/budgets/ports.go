package budgets

import (
	"context"

	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

// BudgetTxRunner ejecuta una función dentro de una transacción que incluye los
// repos de presupuestos y clientes. NextNumber y Create del presupuesto deben
// correr en la misma transacción para que el numerador sea consistente.
type BudgetTxRunner interface {
	RunBudget(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		budgetRepo repository.BudgetRepository,
	) error) error
}

// BudgetEmailItem línea del resumen que viaja en el correo de notificación.
type BudgetEmailItem struct {
	ProductName string
	Quantity    int64
	Price       int64
	Amount      int64
}

// BudgetEmailData datos para el correo de presupuesto nuevo.
type BudgetEmailData struct {
	BudgetNumber  int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Message       string
	TotalAmount   int64
	Items         []BudgetEmailItem
}

// Notifier envía el aviso de presupuesto creado. La entrega es best effort:
// el caso de uso registra el error y no lo propaga, el presupuesto ya está
// confirmado cuando se invoca.
type Notifier interface {
	SendBudgetCreated(ctx context.Context, data BudgetEmailData) error
}
