package budgets

import (
	"context"
	"errors"
	"testing"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createFixture struct {
	uc        *CreateBudgetUseCase
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	budgets   *fakeBudgetRepo
	notifier  *fakeNotifier
}

func newCreateFixture() *createFixture {
	customers := &fakeCustomerRepo{}
	products := newCatalog()
	budgets := newFakeBudgetRepo()
	notifier := &fakeNotifier{}
	tx := &fakeTxRunner{customerRepo: customers, budgetRepo: budgets}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return &createFixture{
		uc:        NewCreateBudgetUseCase(tx, customers, products, notifier, log),
		customers: customers,
		products:  products,
		budgets:   budgets,
		notifier:  notifier,
	}
}

func TestCreateBudgetPublicFlow(t *testing.T) {
	f := newCreateFixture()

	resp, err := f.uc.CreateBudget(context.Background(), "", dto.CreateBudgetRequest{
		Name:    "Gabi",
		Email:   "gabi@example.com",
		Phone:   "+54 11 5555-0004",
		Message: "necesito esto para el viernes",
		Products: []dto.BudgetLineRequest{
			{ID: "1", Quantity: 2},
			{ID: "2", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Primer presupuesto: base 1000 + 1.
	assert.Equal(t, int64(1001), resp.Number)
	assert.Equal(t, entity.BudgetStatusPending, resp.Status)
	assert.Equal(t, int64(1100000), resp.TotalAmount)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(150000), resp.Items[0].Price)
	assert.Equal(t, int64(150000), resp.Items[0].RetailPrice)
	assert.Equal(t, int64(100000), resp.Items[0].WholesalePrice)

	// Cliente nuevo creado como minorista.
	require.Len(t, f.customers.customers, 1)
	assert.Equal(t, entity.CustomerTypeRetail, f.customers.customers[0].Type)

	// Notificación enviada con el resumen.
	require.Len(t, f.notifier.sent, 1)
	sent := f.notifier.sent[0]
	assert.Equal(t, int64(1001), sent.BudgetNumber)
	assert.Equal(t, "necesito esto para el viernes", sent.Message)
	assert.Equal(t, int64(1100000), sent.TotalAmount)
	require.Len(t, sent.Items, 2)
	assert.Equal(t, "Taza", sent.Items[0].ProductName)
}

func TestCreateBudgetWholesalePricing(t *testing.T) {
	f := newCreateFixture()
	f.customers.customers = []*entity.Customer{
		{ID: "mayorista", Name: "Depósito SA", Email: "compras@deposito.com", Type: entity.CustomerTypeWholesale},
	}

	resp, err := f.uc.CreateBudget(context.Background(), "", dto.CreateBudgetRequest{
		Name:  "Depósito SA",
		Email: "compras@deposito.com",
		Products: []dto.BudgetLineRequest{
			{ID: "1", Quantity: 10},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "mayorista", resp.CustomerID)
	assert.Equal(t, int64(1000000), resp.TotalAmount)
}

func TestCreateBudgetSequentialNumbers(t *testing.T) {
	f := newCreateFixture()
	req := dto.CreateBudgetRequest{
		Name:  "Hugo",
		Email: "hugo@example.com",
		Products: []dto.BudgetLineRequest{
			{ID: "1", Quantity: 1},
		},
	}

	first, err := f.uc.CreateBudget(context.Background(), "", req)
	require.NoError(t, err)
	second, err := f.uc.CreateBudget(context.Background(), "", req)
	require.NoError(t, err)

	assert.Equal(t, int64(1001), first.Number)
	assert.Equal(t, int64(1002), second.Number)
}

func TestCreateBudgetRetriesOnNumberConflict(t *testing.T) {
	f := newCreateFixture()
	// Simula dos transacciones que leyeron el mismo MAX(number): la primera
	// lectura devuelve un número ya tomado.
	f.budgets.numbers[1001] = true
	f.budgets.staleNumber = 1001

	resp, err := f.uc.CreateBudget(context.Background(), "", dto.CreateBudgetRequest{
		Name:  "Iris",
		Email: "iris@example.com",
		Products: []dto.BudgetLineRequest{
			{ID: "1", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1002), resp.Number)
}

func TestCreateBudgetNotifierFailureDoesNotFail(t *testing.T) {
	f := newCreateFixture()
	f.notifier.err = errors.New("smtp caído")

	resp, err := f.uc.CreateBudget(context.Background(), "", dto.CreateBudgetRequest{
		Name:  "Juan",
		Email: "juan@example.com",
		Products: []dto.BudgetLineRequest{
			{ID: "2", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	// El presupuesto quedó persistido aunque el correo falló.
	assert.Len(t, f.budgets.budgets, 1)
}

func TestCreateBudgetDashboardCustomerNotFound(t *testing.T) {
	f := newCreateFixture()

	_, err := f.uc.CreateBudget(context.Background(), "u1", dto.CreateBudgetRequest{
		CustomerID: "inexistente",
		Products: []dto.BudgetLineRequest{
			{ProductID: "1", Price: ptr(int64(100)), Amount: ptr(int64(100))},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBudgetTotalOverride(t *testing.T) {
	f := newCreateFixture()
	f.customers.customers = []*entity.Customer{
		{ID: "c1", Name: "Kiosco", Type: entity.CustomerTypeRetail},
	}

	resp, err := f.uc.CreateBudget(context.Background(), "u1", dto.CreateBudgetRequest{
		CustomerID:  "c1",
		TotalAmount: ptr(int64(999000)),
		Products: []dto.BudgetLineRequest{
			{ProductID: "1", Price: ptr(int64(150000)), Amount: ptr(int64(300000))},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(999000), resp.TotalAmount)
}

func TestCreateBudgetMissingProductsAborts(t *testing.T) {
	f := newCreateFixture()

	_, err := f.uc.CreateBudget(context.Background(), "", dto.CreateBudgetRequest{
		Name:  "Lara",
		Email: "lara@example.com",
		Products: []dto.BudgetLineRequest{
			{ID: "1", Quantity: 1},
			{ID: "99", Quantity: 1},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	// Nada persiste si alguna línea es inválida: ni presupuesto, ni aviso,
	// ni el cliente que el resolver hubiera creado.
	assert.Empty(t, f.budgets.budgets)
	assert.Empty(t, f.notifier.sent)
	assert.Empty(t, f.customers.customers)
}

func TestCreateBudgetUnknownProductLeavesNoCustomer(t *testing.T) {
	f := newCreateFixture()

	_, err := f.uc.CreateBudget(context.Background(), "", dto.CreateBudgetRequest{
		Name:  "Nora",
		Email: "nora@example.com",
		Phone: "+54 11 5555-0099",
		Products: []dto.BudgetLineRequest{
			{ID: "99", Quantity: 1},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.customers.customers, "el cliente no debe persistir cuando la creación falla")
}

func TestCreateBudgetInvalidQuantityLeavesNoCustomer(t *testing.T) {
	f := newCreateFixture()

	_, err := f.uc.CreateBudget(context.Background(), "", dto.CreateBudgetRequest{
		Name:  "Olga",
		Email: "olga@example.com",
		Products: []dto.BudgetLineRequest{
			{ID: "1", Quantity: 0},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.customers.customers)
}

func TestCreateBudgetInvalidExpiresAt(t *testing.T) {
	f := newCreateFixture()

	_, err := f.uc.CreateBudget(context.Background(), "", dto.CreateBudgetRequest{
		Name:      "Mora",
		Email:     "mora@example.com",
		ExpiresAt: ptr("el viernes"),
		Products: []dto.BudgetLineRequest{
			{ID: "1", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.customers.customers)
}
