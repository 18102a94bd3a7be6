package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

// OrderTxRunner ejecuta una función con el repo de pedidos dentro de una
// transacción, para que cabecera e items se persistan juntos.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// OrderUseCase gestión de pedidos. Flujo exclusivamente de dashboard: los
// montos vienen del frente y se persisten tal cual.
type OrderUseCase struct {
	txRunner     OrderTxRunner
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner OrderTxRunner,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// Create crea el pedido con sus items en una transacción.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" || len(in.Products) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.buildItems(in.Products)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = "pending"
	}
	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		CustomerID:  customer.ID,
		Type:        in.Type,
		Status:      status,
		Observation: in.Observation,
		TotalAmount: in.TotalAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i := range items {
		items[i].OrderID = order.ID
	}

	err = uc.txRunner.RunOrder(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for i := range items {
			if err := orderRepo.CreateItem(&items[i]); err != nil {
				return fmt.Errorf("guardar item del pedido: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	order.Items = items
	order.Customer = customer
	return toOrderResponse(order), nil
}

// List devuelve todos los pedidos, más recientes primero, con el cliente
// poblado.
func (uc *OrderUseCase) List(ctx context.Context) ([]*dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out, nil
}

// Get devuelve un pedido con items, productos y cliente.
func (uc *OrderUseCase) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Update actualiza los campos presentes; si vienen productos el set de items
// se reemplaza completo y TotalAmount debe venir con ellos.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	if in.Type != nil {
		order.Type = *in.Type
	}
	if in.Status != nil {
		order.Status = *in.Status
	}
	if in.Observation != nil {
		order.Observation = *in.Observation
	}
	if in.TotalAmount != nil {
		order.TotalAmount = *in.TotalAmount
	}

	var items []entity.OrderItem
	if len(in.Products) > 0 {
		if in.TotalAmount == nil {
			return nil, fmt.Errorf("%w: falta totalAmount al reemplazar los items", domain.ErrInvalidInput)
		}
		items, err = uc.buildItems(in.Products)
		if err != nil {
			return nil, err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
	}

	order.UpdatedAt = time.Now()
	err = uc.txRunner.RunOrder(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		if items == nil {
			return nil
		}
		if err := orderRepo.DeleteItemsByOrderID(order.ID); err != nil {
			return err
		}
		for i := range items {
			if err := orderRepo.CreateItem(&items[i]); err != nil {
				return fmt.Errorf("guardar item del pedido: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// Delete borra el pedido y sus items.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunOrder(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.DeleteItemsByOrderID(id); err != nil {
			return err
		}
		return orderRepo.Delete(id)
	})
}

// buildItems valida las líneas contra el catálogo y arma los items. Todos los
// productos referenciados deben existir; el error nombra los faltantes.
func (uc *OrderUseCase) buildItems(lines []dto.OrderLineRequest) ([]entity.OrderItem, error) {
	ids := make([]int64, len(lines))
	for i, line := range lines {
		if line.ProductID <= 0 {
			return nil, fmt.Errorf("%w: id de producto inválido", domain.ErrInvalidInput)
		}
		ids[i] = line.ProductID
	}
	found, err := uc.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("buscar productos del pedido: %w", err)
	}
	byID := make(map[int64]*entity.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	items := make([]entity.OrderItem, len(lines))
	for i, line := range lines {
		product := byID[line.ProductID]
		if product == nil {
			return nil, fmt.Errorf("%w: producto inexistente: %d", domain.ErrInvalidInput, line.ProductID)
		}
		item := entity.OrderItem{
			ProductID:      product.ID,
			RetailPrice:    product.RetailPrice,
			WholesalePrice: product.WholesalePrice,
			Observation:    line.Observation,
			Quantity:       1,
		}
		if line.Price != nil {
			item.Price = *line.Price
		}
		if line.Quantity != nil && *line.Quantity > 0 {
			item.Quantity = *line.Quantity
		}
		if line.Amount != nil {
			item.Amount = *line.Amount
		} else {
			item.Amount = item.Price * item.Quantity
		}
		if line.RetailPrice != nil {
			item.RetailPrice = *line.RetailPrice
		}
		if line.WholesalePrice != nil {
			item.WholesalePrice = *line.WholesalePrice
		}
		items[i] = item
	}
	return items, nil
}

// load trae el pedido con items, productos y cliente poblados.
func (uc *OrderUseCase) load(id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.GetItemsByOrderID(id)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := uc.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	order.Items = make([]entity.OrderItem, len(items))
	for i, it := range items {
		it.Product = byID[it.ProductID]
		order.Items[i] = *it
	}

	if order.Customer == nil {
		customer, err := uc.customerRepo.GetByID(order.CustomerID)
		if err != nil {
			return nil, err
		}
		order.Customer = customer
	}
	return order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Type:        o.Type,
		Status:      o.Status,
		Observation: o.Observation,
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Items:       make([]dto.OrderItemResponse, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		item := dto.OrderItemResponse{
			ID:             it.ID,
			ProductID:      it.ProductID,
			Price:          it.Price,
			Quantity:       it.Quantity,
			Amount:         it.Amount,
			RetailPrice:    it.RetailPrice,
			WholesalePrice: it.WholesalePrice,
			Observation:    it.Observation,
		}
		if it.Product != nil {
			item.Product = &dto.ProductResponse{
				ID:             it.Product.ID,
				Name:           it.Product.Name,
				Slug:           it.Product.Slug,
				SKU:            it.Product.SKU,
				RetailPrice:    it.Product.RetailPrice,
				WholesalePrice: it.Product.WholesalePrice,
				IsActive:       it.Product.IsActive,
				CreatedAt:      it.Product.CreatedAt,
				UpdatedAt:      it.Product.UpdatedAt,
			}
		}
		resp.Items = append(resp.Items, item)
	}
	if o.Customer != nil {
		resp.Customer = &dto.CustomerResponse{
			ID:          o.Customer.ID,
			Name:        o.Customer.Name,
			Email:       o.Customer.Email,
			Phone:       o.Customer.Phone,
			Type:        o.Customer.Type,
			Document:    o.Customer.Document,
			Address:     o.Customer.Address,
			Observation: o.Customer.Observation,
			CreatedAt:   o.Customer.CreatedAt,
			UpdatedAt:   o.Customer.UpdatedAt,
		}
	}
	return resp
}
