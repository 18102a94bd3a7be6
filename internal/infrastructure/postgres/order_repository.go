package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, type, status, observation, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, nullIfEmpty(order.Type), order.Status,
		nullIfEmpty(order.Observation), order.TotalAmount, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea del pedido.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, price, quantity, amount, retail_price, wholesale_price, observation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.OrderID, item.ProductID, item.Price, item.Quantity, item.Amount,
		item.RetailPrice, item.WholesalePrice, nullIfEmpty(item.Observation),
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, type, status, observation, total_amount, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	var orderType, observation *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &orderType, &o.Status, &observation, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Type = orEmpty(orderType)
	o.Observation = orEmpty(observation)
	return &o, nil
}

// List devuelve los pedidos más recientes primero con el cliente poblado.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.type, o.status, o.observation, o.total_amount, o.created_at, o.updated_at,
			c.name, c.email, c.phone, c.type
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		var o entity.Order
		var orderType, observation, custEmail, custPhone *string
		var custName, custType string
		err := rows.Scan(&o.ID, &o.CustomerID, &orderType, &o.Status, &observation,
			&o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
			&custName, &custEmail, &custPhone, &custType)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Type = orEmpty(orderType)
		o.Observation = orEmpty(observation)
		o.Customer = &entity.Customer{
			ID:    o.CustomerID,
			Name:  custName,
			Email: orEmpty(custEmail),
			Phone: orEmpty(custPhone),
			Type:  custType,
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// GetItemsByOrderID devuelve las líneas del pedido en orden de carga.
func (r *OrderRepo) GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, price, quantity, amount, retail_price, wholesale_price, observation
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var out []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		var observation *string
		err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Price, &it.Quantity,
			&it.Amount, &it.RetailPrice, &it.WholesalePrice, &observation)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		it.Observation = orEmpty(observation)
		out = append(out, &it)
	}
	return out, rows.Err()
}

// Update actualiza la cabecera completa.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders
		SET customer_id = $2, type = $3, status = $4, observation = $5, total_amount = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, nullIfEmpty(order.Type), order.Status,
		nullIfEmpty(order.Observation), order.TotalAmount, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// DeleteItemsByOrderID borra todas las líneas del pedido.
func (r *OrderRepo) DeleteItemsByOrderID(orderID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

// Delete borra la cabecera.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
