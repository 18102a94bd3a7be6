package usecase

import (
	"context"
	"testing"

	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeCustomerRepo struct {
	customers []*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	for _, existing := range f.customers {
		if c.Email != "" && existing.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	f.customers = append(f.customers, c)
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByPhone(phone string) (*entity.Customer, error) { return nil, nil }

func (f *fakeCustomerRepo) ListWithPhone() ([]*entity.Customer, error) { return f.customers, nil }

func (f *fakeCustomerRepo) List() ([]*entity.Customer, error) { return f.customers, nil }

func (f *fakeCustomerRepo) Update(c *entity.Customer) error { return nil }

func (f *fakeCustomerRepo) Delete(id string) error { return nil }

func TestImportCustomersCSV(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := NewCustomerUseCase(repo)

	csvData := []byte("name,document,email,address,phone,type\n" +
		"Acme SA,30-11111111-1,compras@acme.com,Av. Siempreviva 742,+54 11 5555-0001,wholesale\n" +
		"Berta,,berta@example.com,,,\n" +
		",,sin-nombre@example.com,,,\n")

	result, err := uc.ImportFromFile(context.Background(), csvData, "clientes.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 4, result.Errors[0].Row)

	require.Len(t, repo.customers, 2)
	assert.Equal(t, entity.CustomerTypeWholesale, repo.customers[0].Type)
	assert.Equal(t, "541155550001", repo.customers[0].Phone)
	assert.Equal(t, entity.CustomerTypeRetail, repo.customers[1].Type)
}

func TestImportCustomersSkipsDuplicates(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := NewCustomerUseCase(repo)

	csvData := []byte("name,email\n" +
		"Carla,carla@example.com\n" +
		"Carla otra vez,carla@example.com\n")

	result, err := uc.ImportFromFile(context.Background(), csvData, "clientes.csv")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Errors)
	assert.Len(t, repo.customers, 1)
}

func TestImportCustomersXLSX(t *testing.T) {
	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	require.NoError(t, book.SetSheetRow(sheet, "A1", &[]any{"name", "document", "email", "address", "phone", "type"}))
	require.NoError(t, book.SetSheetRow(sheet, "A2", &[]any{"Delia", "", "delia@example.com", "", "", "retail"}))
	require.NoError(t, book.SetSheetRow(sheet, "A3", &[]any{"Depósito Norte", "", "", "", "+54 11 5555-0002", "wholesale"}))
	buf, err := book.WriteToBuffer()
	require.NoError(t, err)

	repo := &fakeCustomerRepo{}
	uc := NewCustomerUseCase(repo)

	result, err := uc.ImportFromFile(context.Background(), buf.Bytes(), "clientes.xlsx")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Errors)
	require.Len(t, repo.customers, 2)
	assert.Equal(t, entity.CustomerTypeWholesale, repo.customers[1].Type)
}

func TestImportCustomersHeaderOnly(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := NewCustomerUseCase(repo)

	result, err := uc.ImportFromFile(context.Background(), []byte("name,email\n"), "clientes.csv")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)
}

func TestImportCustomersInvalidFile(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := NewCustomerUseCase(repo)

	_, err := uc.ImportFromFile(context.Background(), []byte("esto no es un libro de excel"), "clientes.xlsx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
