package repository

import "github.com/premiarte/premiarte-api/internal/domain/entity"

// BudgetRepository puerto de persistencia de presupuestos y sus items.
//
// NextNumber lee el numerador siguiente (max actual o base + 1); la columna
// number tiene constraint único, de modo que dos creaciones concurrentes que
// lean el mismo número terminan en ErrConflict en Create y el caso de uso
// reintenta. Ese par NextNumber/Create debe ejecutarse dentro de la misma
// transacción (ver postgres.TxRunner).
type BudgetRepository interface {
	Create(budget *entity.Budget) error
	CreateItem(item *entity.BudgetItem) error
	NextNumber() (int64, error)
	GetByID(id string) (*entity.Budget, error)
	// List devuelve los presupuestos más recientes primero, con el cliente
	// (nombre) poblado.
	List() ([]*entity.Budget, error)
	GetItemsByBudgetID(budgetID string) ([]*entity.BudgetItem, error)
	Update(budget *entity.Budget) error
	UpdateStatus(id, status string) error
	DeleteItemsByBudgetID(budgetID string) error
	Delete(id string) error
}
