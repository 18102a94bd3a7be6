package repository

import "github.com/premiarte/premiarte-api/internal/domain/entity"

// OrderRepository puerto de persistencia de pedidos y sus items.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	List() ([]*entity.Order, error)
	GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error)
	Update(order *entity.Order) error
	DeleteItemsByOrderID(orderID string) error
	Delete(id string) error
}
