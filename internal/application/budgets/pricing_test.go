package budgets

import (
	"testing"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newCatalog() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Taza", RetailPrice: 150000, WholesalePrice: 100000},
		2: {ID: 2, Name: "Remera", RetailPrice: 800000, WholesalePrice: 650000},
	}}
}

func TestResolveLinesPublicRetail(t *testing.T) {
	lines, err := ResolveLines([]dto.BudgetLineRequest{
		{ID: "1", Quantity: 3},
		{ID: "2", Quantity: 1},
	}, entity.CustomerTypeRetail, newCatalog())
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, int64(150000), lines[0].Price)
	assert.Equal(t, int64(450000), lines[0].Amount)
	assert.Equal(t, int64(800000), lines[1].Price)
	assert.Equal(t, int64(1250000), TotalAmount(lines))
}

func TestResolveLinesPublicWholesale(t *testing.T) {
	lines, err := ResolveLines([]dto.BudgetLineRequest{
		{ID: "1", Quantity: 2},
	}, entity.CustomerTypeWholesale, newCatalog())
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, int64(100000), lines[0].Price)
	assert.Equal(t, int64(200000), lines[0].Amount)
}

func TestResolveLinesDashboardVerbatim(t *testing.T) {
	// El dashboard manda precio y monto; se respetan aunque no coincidan con
	// el catálogo.
	lines, err := ResolveLines([]dto.BudgetLineRequest{
		{ProductID: "1", Price: ptr(int64(120000)), Amount: ptr(int64(600000))},
	}, entity.CustomerTypeRetail, newCatalog())
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, int64(120000), lines[0].Price)
	assert.Equal(t, int64(600000), lines[0].Amount)
	// quantity derivada: round(600000/120000) = 5
	assert.Equal(t, int64(5), lines[0].Quantity)
}

func TestResolveLinesDashboardZeroPrice(t *testing.T) {
	lines, err := ResolveLines([]dto.BudgetLineRequest{
		{ProductID: "1", Price: ptr(int64(0)), Amount: ptr(int64(0))},
	}, entity.CustomerTypeRetail, newCatalog())
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, int64(1), lines[0].Quantity)
	assert.Equal(t, int64(0), lines[0].Amount)
}

func TestResolveLinesDashboardExplicitQuantity(t *testing.T) {
	lines, err := ResolveLines([]dto.BudgetLineRequest{
		{ProductID: "2", Quantity: 4, Price: ptr(int64(700000))},
	}, entity.CustomerTypeRetail, newCatalog())
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, int64(4), lines[0].Quantity)
	// sin amount explícito: price × quantity
	assert.Equal(t, int64(2800000), lines[0].Amount)
}

func TestResolveLinesMissingProductsNamesAll(t *testing.T) {
	_, err := ResolveLines([]dto.BudgetLineRequest{
		{ID: "1", Quantity: 1},
		{ID: "7", Quantity: 1},
		{ID: "9", Quantity: 2},
	}, entity.CustomerTypeRetail, newCatalog())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "7")
	assert.Contains(t, err.Error(), "9")
}

func TestResolveLinesInvalidQuantity(t *testing.T) {
	_, err := ResolveLines([]dto.BudgetLineRequest{
		{ID: "1", Quantity: 0},
	}, entity.CustomerTypeRetail, newCatalog())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolveLinesEmpty(t *testing.T) {
	_, err := ResolveLines(nil, entity.CustomerTypeRetail, newCatalog())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
