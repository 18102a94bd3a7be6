package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

var _ repository.BudgetRepository = (*BudgetRepo)(nil)

// BudgetRepo implementación de BudgetRepository (usable con pool o tx).
// La columna number tiene constraint único: si dos transacciones leyeron el
// mismo numerador, la segunda recibe ErrConflict en Create.
type BudgetRepo struct {
	q Querier
}

// NewBudgetRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBudgetRepository(q Querier) *BudgetRepo {
	return &BudgetRepo{q: q}
}

const budgetColumns = `id, number, customer_id, show_cuit, observation, total_amount, status, user_id,
		is_read, expires_at, approved_at, rejected_at, type, responsible_id, created_at, updated_at`

func scanBudget(row pgx.Row) (*entity.Budget, error) {
	var b entity.Budget
	var observation, userID, budgetType *string
	err := row.Scan(&b.ID, &b.Number, &b.CustomerID, &b.ShowCuit, &observation, &b.TotalAmount,
		&b.Status, &userID, &b.IsRead, &b.ExpiresAt, &b.ApprovedAt, &b.RejectedAt,
		&budgetType, &b.ResponsibleID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.Observation = orEmpty(observation)
	b.UserID = orEmpty(userID)
	b.Type = orEmpty(budgetType)
	return &b, nil
}

// NextNumber lee el numerador siguiente. Debe correr en la misma transacción
// que Create (ver TxRunner.RunBudget).
func (r *BudgetRepo) NextNumber() (int64, error) {
	var next int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(number), $1) + 1 FROM budgets`, entity.BudgetNumberBase).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next budget number: %w", err)
	}
	return next, nil
}

// Create persiste la cabecera del presupuesto.
func (r *BudgetRepo) Create(budget *entity.Budget) error {
	query := `
		INSERT INTO budgets (id, number, customer_id, show_cuit, observation, total_amount, status, user_id,
			is_read, expires_at, approved_at, rejected_at, type, responsible_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		budget.ID, budget.Number, budget.CustomerID, budget.ShowCuit, nullIfEmpty(budget.Observation),
		budget.TotalAmount, budget.Status, nullIfEmpty(budget.UserID), budget.IsRead,
		budget.ExpiresAt, budget.ApprovedAt, budget.RejectedAt, nullIfEmpty(budget.Type),
		budget.ResponsibleID, budget.CreatedAt, budget.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert budget: %w", err)
	}
	return nil
}

// CreateItem persiste una línea del presupuesto.
func (r *BudgetRepo) CreateItem(item *entity.BudgetItem) error {
	query := `
		INSERT INTO budget_items (budget_id, product_id, price, quantity, amount, retail_price, wholesale_price, observation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.BudgetID, item.ProductID, item.Price, item.Quantity, item.Amount,
		item.RetailPrice, item.WholesalePrice, nullIfEmpty(item.Observation),
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert budget item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un presupuesto.
func (r *BudgetRepo) GetByID(id string) (*entity.Budget, error) {
	b, err := scanBudget(r.q.QueryRow(context.Background(),
		`SELECT `+budgetColumns+` FROM budgets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get budget: %w", err)
	}
	return b, nil
}

// List devuelve los presupuestos más recientes primero con el cliente poblado.
func (r *BudgetRepo) List() ([]*entity.Budget, error) {
	query := `
		SELECT b.id, b.number, b.customer_id, b.show_cuit, b.observation, b.total_amount, b.status, b.user_id,
			b.is_read, b.expires_at, b.approved_at, b.rejected_at, b.type, b.responsible_id, b.created_at, b.updated_at,
			c.name, c.email, c.phone, c.type
		FROM budgets b
		JOIN customers c ON c.id = b.customer_id
		ORDER BY b.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var out []*entity.Budget
	for rows.Next() {
		var b entity.Budget
		var observation, userID, budgetType *string
		var custEmail, custPhone *string
		var custName, custType string
		err := rows.Scan(&b.ID, &b.Number, &b.CustomerID, &b.ShowCuit, &observation, &b.TotalAmount,
			&b.Status, &userID, &b.IsRead, &b.ExpiresAt, &b.ApprovedAt, &b.RejectedAt,
			&budgetType, &b.ResponsibleID, &b.CreatedAt, &b.UpdatedAt,
			&custName, &custEmail, &custPhone, &custType)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		b.Observation = orEmpty(observation)
		b.UserID = orEmpty(userID)
		b.Type = orEmpty(budgetType)
		b.Customer = &entity.Customer{
			ID:    b.CustomerID,
			Name:  custName,
			Email: orEmpty(custEmail),
			Phone: orEmpty(custPhone),
			Type:  custType,
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

// GetItemsByBudgetID devuelve las líneas del presupuesto en orden de carga.
func (r *BudgetRepo) GetItemsByBudgetID(budgetID string) ([]*entity.BudgetItem, error) {
	query := `
		SELECT id, budget_id, product_id, price, quantity, amount, retail_price, wholesale_price, observation
		FROM budget_items WHERE budget_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("list budget items: %w", err)
	}
	defer rows.Close()

	var out []*entity.BudgetItem
	for rows.Next() {
		var it entity.BudgetItem
		var observation *string
		err := rows.Scan(&it.ID, &it.BudgetID, &it.ProductID, &it.Price, &it.Quantity,
			&it.Amount, &it.RetailPrice, &it.WholesalePrice, &observation)
		if err != nil {
			return nil, fmt.Errorf("scan budget item: %w", err)
		}
		it.Observation = orEmpty(observation)
		out = append(out, &it)
	}
	return out, rows.Err()
}

// Update actualiza la cabecera completa.
func (r *BudgetRepo) Update(budget *entity.Budget) error {
	query := `
		UPDATE budgets
		SET customer_id = $2, show_cuit = $3, observation = $4, total_amount = $5, status = $6,
			is_read = $7, expires_at = $8, approved_at = $9, rejected_at = $10, type = $11,
			responsible_id = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		budget.ID, budget.CustomerID, budget.ShowCuit, nullIfEmpty(budget.Observation),
		budget.TotalAmount, budget.Status, budget.IsRead, budget.ExpiresAt, budget.ApprovedAt,
		budget.RejectedAt, nullIfEmpty(budget.Type), budget.ResponsibleID, budget.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado.
func (r *BudgetRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE budgets SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update budget status: %w", err)
	}
	return nil
}

// DeleteItemsByBudgetID borra todas las líneas del presupuesto.
func (r *BudgetRepo) DeleteItemsByBudgetID(budgetID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM budget_items WHERE budget_id = $1`, budgetID)
	if err != nil {
		return fmt.Errorf("delete budget items: %w", err)
	}
	return nil
}

// Delete borra la cabecera.
func (r *BudgetRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}
