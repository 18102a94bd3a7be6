package budgets

import (
	"testing"

	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "541155550001", NormalizePhone("+54 (11) 5555-0001"))
	assert.Equal(t, "1155550001", NormalizePhone("11 5555 0001"))
	assert.Equal(t, "", NormalizePhone("sin teléfono"))
}

func TestResolveFindsByEmail(t *testing.T) {
	repo := &fakeCustomerRepo{customers: []*entity.Customer{
		{ID: "c1", Name: "Ana", Email: "ana@example.com", Type: entity.CustomerTypeWholesale},
	}}
	r := NewCustomerResolver(repo)

	c, err := r.Resolve("Ana García", "  ana@example.com ", "")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "c1", c.ID)
	// El cliente existente no se modifica, conserva su tipo.
	assert.Equal(t, entity.CustomerTypeWholesale, c.Type)
	assert.Len(t, repo.customers, 1)
}

func TestResolveFindsByPhoneWithDifferentFormat(t *testing.T) {
	repo := &fakeCustomerRepo{customers: []*entity.Customer{
		{ID: "c1", Name: "Bruno", Phone: "+54 (11) 5555-0001"},
	}}
	r := NewCustomerResolver(repo)

	c, err := r.Resolve("Bruno", "", "54 11 5555 0001")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "c1", c.ID)
}

func TestResolvePhoneWinsOverEmail(t *testing.T) {
	repo := &fakeCustomerRepo{customers: []*entity.Customer{
		{ID: "por-email", Name: "Ana", Email: "ana@example.com"},
		{ID: "por-telefono", Name: "Ana cel", Phone: "1155550001"},
	}}
	r := NewCustomerResolver(repo)

	c, err := r.Resolve("Ana", "ana@example.com", "11 5555-0001")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "por-telefono", c.ID)
}

func TestResolveCreatesRetailOnMiss(t *testing.T) {
	repo := &fakeCustomerRepo{}
	r := NewCustomerResolver(repo)

	c, err := r.Resolve("  Carla  ", "carla@example.com", "+54 11 5555-0002")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Carla", c.Name)
	assert.Equal(t, "carla@example.com", c.Email)
	assert.Equal(t, "541155550002", c.Phone)
	assert.Equal(t, entity.CustomerTypeRetail, c.Type)
	require.Len(t, repo.customers, 1)
}

func TestResolveRecoversFromDuplicateRace(t *testing.T) {
	// Otro request creó al mismo cliente entre la búsqueda y el insert: el
	// primer find no ve nada, el Create choca con el índice y la segunda
	// búsqueda tiene que devolver la fila ganadora.
	repo := &fakeCustomerRepo{
		customers: []*entity.Customer{{ID: "ganador", Name: "Dana", Email: "dana@example.com"}},
		hidden:    true,
	}
	r := NewCustomerResolver(repo)

	c, err := r.Resolve("Dana", "dana@example.com", "")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "ganador", c.ID)
	assert.Len(t, repo.customers, 1)
}

func TestResolveDuplicateFallsBackToPhoneScan(t *testing.T) {
	// La fila existente guarda el teléfono con otro formato: la búsqueda por
	// igualdad no la ve, el índice normalizado rechaza el insert y el escaneo
	// comparando normalizados la recupera.
	repo := &fakeCustomerRepo{
		customers:      []*entity.Customer{{ID: "c1", Name: "Elsa", Phone: "+54 (11) 5555-0003"}},
		rawPhoneLookup: true,
	}
	r := NewCustomerResolver(repo)

	c, err := r.Resolve("Elsa", "", "54-11-5555-0003")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "c1", c.ID)
}

func TestResolveWithoutContactData(t *testing.T) {
	r := NewCustomerResolver(&fakeCustomerRepo{})

	_, err := r.Resolve("Fede", "   ", "sin número")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
