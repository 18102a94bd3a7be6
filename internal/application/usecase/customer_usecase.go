package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/premiarte/premiarte-api/internal/application/budgets"
	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

// CustomerUseCase casos de uso CRUD para clientes del dashboard. La creación
// implícita desde presupuestos públicos vive en application/budgets.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente. El teléfono se guarda normalizado a dígitos, igual
// que en el flujo de presupuestos.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customerType := in.Type
	switch customerType {
	case "":
		customerType = entity.CustomerTypeRetail
	case entity.CustomerTypeRetail, entity.CustomerTypeWholesale:
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       budgets.NormalizeEmail(in.Email),
		Phone:       budgets.NormalizePhone(in.Phone),
		Type:        customerType,
		Document:    in.Document,
		Address:     in.Address,
		Observation: in.Observation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get devuelve un cliente por ID.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Update actualiza los campos presentes.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = budgets.NormalizeEmail(*in.Email)
	}
	if in.Phone != nil {
		customer.Phone = budgets.NormalizePhone(*in.Phone)
	}
	if in.Type != nil {
		if *in.Type != entity.CustomerTypeRetail && *in.Type != entity.CustomerTypeWholesale {
			return nil, domain.ErrInvalidInput
		}
		customer.Type = *in.Type
	}
	if in.Document != nil {
		customer.Document = *in.Document
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Observation != nil {
		customer.Observation = *in.Observation
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// ImportFromFile importa clientes desde un archivo XLSX o CSV. La primera
// fila son encabezados (name, document, email, address, phone, type) y cada
// fila siguiente se crea con Create; los duplicados se cuentan como salteados
// en vez de abortar la importación.
func (uc *CustomerUseCase) ImportFromFile(ctx context.Context, data []byte, filename string) (*dto.ImportCustomersResponse, error) {
	rows, err := readImportRows(data, filename)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportCustomersResponse{Errors: []dto.ImportCustomerError{}}
	if len(rows) == 0 {
		return result, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for i, row := range rows[1:] {
		rowIndex := i + 2 // 1-based más la fila de encabezados
		name := field(row, "name")
		if name == "" {
			result.Errors = append(result.Errors, dto.ImportCustomerError{Row: rowIndex, Reason: "nombre vacío"})
			continue
		}
		customerType := entity.CustomerTypeRetail
		if field(row, "type") == entity.CustomerTypeWholesale {
			customerType = entity.CustomerTypeWholesale
		}
		_, err := uc.Create(ctx, dto.CreateCustomerRequest{
			Name:     name,
			Document: field(row, "document"),
			Email:    field(row, "email"),
			Address:  field(row, "address"),
			Phone:    field(row, "phone"),
			Type:     customerType,
		})
		switch {
		case err == nil:
			result.Imported++
		case errors.Is(err, domain.ErrDuplicate):
			result.Skipped++
		default:
			result.Errors = append(result.Errors, dto.ImportCustomerError{Row: rowIndex, Reason: err.Error()})
		}
	}
	return result, nil
}

// readImportRows devuelve las filas del archivo como texto. CSV se lee con el
// lector estándar; cualquier otra extensión se trata como XLSX.
func readImportRows(data []byte, filename string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		r := csv.NewReader(bytes.NewReader(data))
		r.FieldsPerRecord = -1
		rows, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("%w: el archivo no es un CSV válido", domain.ErrInvalidInput)
		}
		return rows, nil
	}

	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: el archivo no es un Excel válido", domain.ErrInvalidInput)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: el archivo no contiene ninguna hoja", domain.ErrInvalidInput)
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return rows, nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Type:        c.Type,
		Document:    c.Document,
		Address:     c.Address,
		Observation: c.Observation,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
