package orders

import (
	"context"
	"testing"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type fakeOrderRepo struct {
	orders     map[string]*entity.Order
	items      map[string][]*entity.OrderItem
	nextItemID int64
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*entity.Order),
		items:  make(map[string][]*entity.OrderItem),
	}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) CreateItem(item *entity.OrderItem) error {
	f.nextItemID++
	item.ID = f.nextItemID
	f.items[item.OrderID] = append(f.items[item.OrderID], item)
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return f.orders[id], nil }

func (f *fakeOrderRepo) List() ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) Update(o *entity.Order) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) DeleteItemsByOrderID(orderID string) error {
	delete(f.items, orderID)
	return nil
}

func (f *fakeOrderRepo) Delete(id string) error {
	delete(f.orders, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) GetByEmail(string) (*entity.Customer, error)  { return nil, nil }
func (f *fakeCustomerRepo) GetByPhone(string) (*entity.Customer, error)  { return nil, nil }
func (f *fakeCustomerRepo) ListWithPhone() ([]*entity.Customer, error)   { return nil, nil }
func (f *fakeCustomerRepo) List() ([]*entity.Customer, error)            { return nil, nil }
func (f *fakeCustomerRepo) Update(*entity.Customer) error                { return nil }
func (f *fakeCustomerRepo) Delete(string) error                          { return nil }

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (f *fakeProductRepo) GetByIDs(ids []int64) ([]*entity.Product, error) {
	var out []*entity.Product
	seen := make(map[int64]bool)
	for _, id := range ids {
		if p, ok := f.products[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Create(*entity.Product) error                    { return nil }
func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error)       { return f.products[id], nil }
func (f *fakeProductRepo) GetBySlug(string) (*entity.Product, error)       { return nil, nil }
func (f *fakeProductRepo) GetBySKU(string) (*entity.Product, error)        { return nil, nil }
func (f *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Count(repository.ProductFilter) (int, error)    { return 0, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                   { return nil }
func (f *fakeProductRepo) Delete(int64) error                             { return nil }
func (f *fakeProductRepo) ReplaceCategories(int64, []int64) error         { return nil }
func (f *fakeProductRepo) ReplaceImages(int64, []int64) error             { return nil }
func (f *fakeProductRepo) ReplaceRelated(int64, []int64) error            { return nil }
func (f *fakeProductRepo) GetCategories(int64) ([]entity.Category, error) { return nil, nil }
func (f *fakeProductRepo) GetImages(int64) ([]entity.Image, error)        { return nil, nil }
func (f *fakeProductRepo) GetRelatedIDs(int64) ([]int64, error)           { return nil, nil }

type fakeTxRunner struct {
	orderRepo repository.OrderRepository
}

func (f *fakeTxRunner) RunOrder(ctx context.Context, fn func(repository.OrderRepository) error) error {
	return fn(f.orderRepo)
}

type orderFixture struct {
	uc     *OrderUseCase
	orders *fakeOrderRepo
}

func newOrderFixture() *orderFixture {
	orders := newFakeOrderRepo()
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		"c1": {ID: "c1", Name: "Ana", Type: entity.CustomerTypeRetail},
	}}
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Taza", RetailPrice: 150000, WholesalePrice: 100000},
		2: {ID: 2, Name: "Remera", RetailPrice: 800000, WholesalePrice: 650000},
	}}
	tx := &fakeTxRunner{orderRepo: orders}
	return &orderFixture{
		uc:     NewOrderUseCase(tx, orders, customers, products),
		orders: orders,
	}
}

func TestOrderCreate(t *testing.T) {
	f := newOrderFixture()

	resp, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID:  "c1",
		TotalAmount: 500000,
		Products: []dto.OrderLineRequest{
			{ProductID: 1, Price: ptr(int64(125000)), Quantity: ptr(int64(4)), Amount: ptr(int64(500000))},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(500000), resp.TotalAmount)
	require.Len(t, resp.Items, 1)
	// Snapshot de ambos precios de lista tomado del catálogo.
	assert.Equal(t, int64(150000), resp.Items[0].RetailPrice)
	assert.Equal(t, int64(100000), resp.Items[0].WholesalePrice)
	assert.Len(t, f.orders.orders, 1)
}

func TestOrderCreateAmountDerived(t *testing.T) {
	f := newOrderFixture()

	resp, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID:  "c1",
		TotalAmount: 300000,
		Products: []dto.OrderLineRequest{
			{ProductID: 1, Price: ptr(int64(150000)), Quantity: ptr(int64(2))},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(300000), resp.Items[0].Amount)
}

func TestOrderCreateCustomerNotFound(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: "nadie",
		Products:   []dto.OrderLineRequest{{ProductID: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderCreateUnknownProduct(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: "c1",
		Products:   []dto.OrderLineRequest{{ProductID: 99}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.orders.orders)
}

func TestOrderUpdateReplaceItemsRequiresTotal(t *testing.T) {
	f := newOrderFixture()
	created, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID:  "c1",
		TotalAmount: 150000,
		Products:    []dto.OrderLineRequest{{ProductID: 1, Price: ptr(int64(150000)), Quantity: ptr(int64(1))}},
	})
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		Products: []dto.OrderLineRequest{{ProductID: 2, Price: ptr(int64(800000)), Quantity: ptr(int64(1))}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := f.uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		TotalAmount: ptr(int64(800000)),
		Products:    []dto.OrderLineRequest{{ProductID: 2, Price: ptr(int64(800000)), Quantity: ptr(int64(1))}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(2), resp.Items[0].ProductID)
	assert.Equal(t, int64(800000), resp.TotalAmount)
}

func TestOrderDelete(t *testing.T) {
	f := newOrderFixture()
	created, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID:  "c1",
		TotalAmount: 150000,
		Products:    []dto.OrderLineRequest{{ProductID: 1, Price: ptr(int64(150000)), Quantity: ptr(int64(1))}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), created.ID))
	assert.Empty(t, f.orders.orders)
	assert.Empty(t, f.orders.items)

	err = f.uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
