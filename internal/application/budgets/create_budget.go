package budgets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
	"github.com/premiarte/premiarte-api/pkg/logger"
)

// Reintentos sobre el numerador: dos transacciones pueden leer el mismo
// MAX(number); la segunda pierde contra el índice único y se reintenta una vez.
const maxNumberRetries = 1

// CreateBudgetUseCase crea un presupuesto: resuelve el cliente, fija precios
// según su tipo y persiste cabecera e items con un numerador secuencial en una
// sola transacción. La notificación por correo corre después del commit.
type CreateBudgetUseCase struct {
	txRunner     BudgetTxRunner
	resolver     *CustomerResolver
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	notifier     Notifier
	log          *logger.Logger
}

// NewCreateBudgetUseCase construye el caso de uso.
func NewCreateBudgetUseCase(
	txRunner BudgetTxRunner,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	notifier Notifier,
	log *logger.Logger,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		txRunner:     txRunner,
		resolver:     NewCustomerResolver(customerRepo),
		customerRepo: customerRepo,
		productRepo:  productRepo,
		notifier:     notifier,
		log:          log,
	}
}

// CreateBudget crea el presupuesto. userID identifica al usuario del dashboard
// cuando la creación viene autenticada; vacío en el flujo público.
func (uc *CreateBudgetUseCase) CreateBudget(ctx context.Context, userID string, in dto.CreateBudgetRequest) (*dto.BudgetResponse, error) {
	// Las líneas se validan antes de resolver al cliente: un pedido inválido
	// no debe dejar un cliente creado por el resolver.
	loaded, err := LoadLineProducts(in.Products, uc.productRepo)
	if err != nil {
		return nil, err
	}

	var expiresAt *time.Time
	if in.ExpiresAt != nil && *in.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, *in.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("%w: expiresAt inválido", domain.ErrInvalidInput)
		}
		expiresAt = &t
	}

	customer, err := uc.resolveCustomer(in)
	if err != nil {
		return nil, err
	}

	lines := PriceLines(loaded, customer.Type)

	total := TotalAmount(lines)
	if in.TotalAmount != nil {
		total = *in.TotalAmount
	}

	status := in.Status
	if status == "" {
		status = entity.BudgetStatusPending
	}

	now := time.Now()
	budget := &entity.Budget{
		ID:            uuid.New().String(),
		CustomerID:    customer.ID,
		ShowCuit:      in.ShowCuit,
		Observation:   in.Observation,
		TotalAmount:   total,
		Status:        status,
		UserID:        userID,
		ExpiresAt:     expiresAt,
		Type:          in.Type,
		ResponsibleID: in.ResponsibleID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	items := make([]entity.BudgetItem, len(lines))
	for i, line := range lines {
		items[i] = entity.BudgetItem{
			BudgetID:       budget.ID,
			ProductID:      line.Product.ID,
			Price:          line.Price,
			Quantity:       line.Quantity,
			Amount:         line.Amount,
			RetailPrice:    line.Product.RetailPrice,
			WholesalePrice: line.Product.WholesalePrice,
			Observation:    line.Observation,
		}
	}

	for attempt := 0; ; attempt++ {
		err = uc.txRunner.RunBudget(ctx, func(_ repository.CustomerRepository, budgetRepo repository.BudgetRepository) error {
			number, err := budgetRepo.NextNumber()
			if err != nil {
				return fmt.Errorf("obtener numerador: %w", err)
			}
			budget.Number = number
			if err := budgetRepo.Create(budget); err != nil {
				return err
			}
			for i := range items {
				if err := budgetRepo.CreateItem(&items[i]); err != nil {
					return fmt.Errorf("guardar item del presupuesto: %w", err)
				}
			}
			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrConflict) && attempt < maxNumberRetries {
			continue
		}
		return nil, err
	}
	budget.Items = items
	budget.Customer = customer

	uc.notify(ctx, budget, customer, lines, in.Message)

	return toBudgetResponse(budget), nil
}

func (uc *CreateBudgetUseCase) resolveCustomer(in dto.CreateBudgetRequest) (*entity.Customer, error) {
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		return customer, nil
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: falta el nombre del cliente", domain.ErrInvalidInput)
	}
	return uc.resolver.Resolve(in.Name, in.Email, in.Phone)
}

// notify arma y envía el correo de presupuesto nuevo. Un fallo acá no anula
// el presupuesto: ya está confirmado, solo se registra.
func (uc *CreateBudgetUseCase) notify(ctx context.Context, budget *entity.Budget, customer *entity.Customer, lines []PricedLine, message string) {
	if uc.notifier == nil {
		return
	}
	data := BudgetEmailData{
		BudgetNumber:  budget.Number,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		Message:       message,
		TotalAmount:   budget.TotalAmount,
		Items:         make([]BudgetEmailItem, len(lines)),
	}
	for i, line := range lines {
		data.Items[i] = BudgetEmailItem{
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Price:       line.Price,
			Amount:      line.Amount,
		}
	}
	if err := uc.notifier.SendBudgetCreated(ctx, data); err != nil {
		uc.log.Warn().Err(err).Int64("number", budget.Number).Msg("no se pudo enviar el aviso de presupuesto")
	}
}
