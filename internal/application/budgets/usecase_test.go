package budgets

import (
	"context"
	"testing"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type budgetFixture struct {
	uc        *BudgetUseCase
	customers *fakeCustomerRepo
	budgets   *fakeBudgetRepo
}

func newBudgetFixture() *budgetFixture {
	customers := &fakeCustomerRepo{customers: []*entity.Customer{
		{ID: "c1", Name: "Ana", Type: entity.CustomerTypeRetail},
	}}
	budgets := newFakeBudgetRepo()
	tx := &fakeTxRunner{customerRepo: customers, budgetRepo: budgets}
	uc := NewBudgetUseCase(tx, budgets, customers, newCatalog(), &fakeResponsibleRepo{})
	return &budgetFixture{uc: uc, customers: customers, budgets: budgets}
}

func (f *budgetFixture) seed(t *testing.T) *entity.Budget {
	t.Helper()
	b := &entity.Budget{
		ID:          "b1",
		Number:      1001,
		CustomerID:  "c1",
		Status:      entity.BudgetStatusPending,
		TotalAmount: 450000,
	}
	require.NoError(t, f.budgets.Create(b))
	require.NoError(t, f.budgets.CreateItem(&entity.BudgetItem{
		BudgetID: "b1", ProductID: 1, Price: 150000, Quantity: 3, Amount: 450000,
	}))
	return b
}

func TestBudgetGetPopulatesRelations(t *testing.T) {
	f := newBudgetFixture()
	f.seed(t)

	resp, err := f.uc.Get(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.NotNil(t, resp.Items[0].Product)
	assert.Equal(t, "Taza", resp.Items[0].Product.Name)
	require.NotNil(t, resp.Customer)
	assert.Equal(t, "Ana", resp.Customer.Name)
}

func TestBudgetGetNotFound(t *testing.T) {
	f := newBudgetFixture()

	_, err := f.uc.Get(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBudgetUpdateStatusStampsApproval(t *testing.T) {
	f := newBudgetFixture()
	f.seed(t)

	resp, err := f.uc.UpdateStatus(context.Background(), "b1", "approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.NotNil(t, resp.ApprovedAt)
	assert.Nil(t, resp.RejectedAt)
}

func TestBudgetUpdateStatusStampsRejection(t *testing.T) {
	f := newBudgetFixture()
	f.seed(t)

	resp, err := f.uc.UpdateStatus(context.Background(), "b1", "rejected")
	require.NoError(t, err)
	assert.NotNil(t, resp.RejectedAt)
}

func TestBudgetUpdateReplacesItemsAndRecomputesTotal(t *testing.T) {
	f := newBudgetFixture()
	f.seed(t)

	resp, err := f.uc.Update(context.Background(), "b1", dto.UpdateBudgetRequest{
		Products: []dto.BudgetLineRequest{
			{ID: "2", Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(2), resp.Items[0].Quantity)
	assert.Equal(t, int64(1600000), resp.TotalAmount)
}

func TestBudgetUpdateMarksRead(t *testing.T) {
	f := newBudgetFixture()
	f.seed(t)

	resp, err := f.uc.Update(context.Background(), "b1", dto.UpdateBudgetRequest{
		IsRead: ptr(true),
	})
	require.NoError(t, err)
	assert.True(t, resp.IsRead)
	// Los items no se tocan si no vienen productos.
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(450000), resp.TotalAmount)
}

func TestBudgetDeleteRemovesItems(t *testing.T) {
	f := newBudgetFixture()
	f.seed(t)

	require.NoError(t, f.uc.Delete(context.Background(), "b1"))
	assert.Empty(t, f.budgets.budgets)
	assert.Empty(t, f.budgets.items)

	err := f.uc.Delete(context.Background(), "b1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
