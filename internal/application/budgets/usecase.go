package budgets

import (
	"context"
	"fmt"
	"time"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

// BudgetUseCase lecturas y mantenimiento de presupuestos existentes.
type BudgetUseCase struct {
	txRunner        BudgetTxRunner
	budgetRepo      repository.BudgetRepository
	customerRepo    repository.CustomerRepository
	productRepo     repository.ProductRepository
	responsibleRepo repository.ResponsibleRepository
}

// NewBudgetUseCase construye el caso de uso.
func NewBudgetUseCase(
	txRunner BudgetTxRunner,
	budgetRepo repository.BudgetRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	responsibleRepo repository.ResponsibleRepository,
) *BudgetUseCase {
	return &BudgetUseCase{
		txRunner:        txRunner,
		budgetRepo:      budgetRepo,
		customerRepo:    customerRepo,
		productRepo:     productRepo,
		responsibleRepo: responsibleRepo,
	}
}

// List devuelve todos los presupuestos, más recientes primero, con el cliente
// poblado. Los items no se cargan en el listado.
func (uc *BudgetUseCase) List(ctx context.Context) ([]*dto.BudgetResponse, error) {
	budgets, err := uc.budgetRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BudgetResponse, len(budgets))
	for i, b := range budgets {
		out[i] = toBudgetResponse(b)
	}
	return out, nil
}

// Get devuelve un presupuesto con items, productos de cada item y cliente.
func (uc *BudgetUseCase) Get(ctx context.Context, id string) (*dto.BudgetResponse, error) {
	budget, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	return toBudgetResponse(budget), nil
}

// GetForDocument devuelve el presupuesto completo más su responsable, para el
// armado del PDF.
func (uc *BudgetUseCase) GetForDocument(ctx context.Context, id string) (*entity.Budget, *entity.Responsible, error) {
	budget, err := uc.load(id)
	if err != nil {
		return nil, nil, err
	}
	var responsible *entity.Responsible
	if budget.ResponsibleID != nil {
		responsible, err = uc.responsibleRepo.GetByID(*budget.ResponsibleID)
		if err != nil {
			return nil, nil, err
		}
	}
	return budget, responsible, nil
}

// Update actualiza los campos presentes. Si vienen productos, el set completo
// de items se reemplaza en una transacción y el total se recalcula (salvo
// override explícito).
func (uc *BudgetUseCase) Update(ctx context.Context, id string, in dto.UpdateBudgetRequest) (*dto.BudgetResponse, error) {
	budget, err := uc.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, domain.ErrNotFound
	}

	if in.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(*in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		budget.CustomerID = customer.ID
	}
	if in.Observation != nil {
		budget.Observation = *in.Observation
	}
	if in.ResponsibleID != nil {
		budget.ResponsibleID = in.ResponsibleID
	}
	if in.Type != nil {
		budget.Type = *in.Type
	}
	if in.Status != nil {
		applyStatus(budget, *in.Status)
	}
	if in.ShowCuit != nil {
		budget.ShowCuit = *in.ShowCuit
	}
	if in.IsRead != nil {
		budget.IsRead = *in.IsRead
	}
	if err := applyDate(&budget.ExpiresAt, in.ExpiresAt); err != nil {
		return nil, err
	}
	if err := applyDate(&budget.ApprovedAt, in.ApprovedAt); err != nil {
		return nil, err
	}
	if err := applyDate(&budget.RejectedAt, in.RejectedAt); err != nil {
		return nil, err
	}
	if in.TotalAmount != nil {
		budget.TotalAmount = *in.TotalAmount
	}

	var items []entity.BudgetItem
	if len(in.Products) > 0 {
		customer, err := uc.customerRepo.GetByID(budget.CustomerID)
		if err != nil {
			return nil, err
		}
		customerType := entity.CustomerTypeRetail
		if customer != nil {
			customerType = customer.Type
		}
		lines, err := ResolveLines(in.Products, customerType, uc.productRepo)
		if err != nil {
			return nil, err
		}
		if in.TotalAmount == nil {
			budget.TotalAmount = TotalAmount(lines)
		}
		items = make([]entity.BudgetItem, len(lines))
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
	}

	budget.UpdatedAt = time.Now()
	err = uc.txRunner.RunBudget(ctx, func(_ repository.CustomerRepository, budgetRepo repository.BudgetRepository) error {
		if err := budgetRepo.Update(budget); err != nil {
			return err
		}
		if items == nil {
			return nil
		}
		if err := budgetRepo.DeleteItemsByBudgetID(budget.ID); err != nil {
			return err
		}
		for i := range items {
			if err := budgetRepo.CreateItem(&items[i]); err != nil {
				return fmt.Errorf("guardar item del presupuesto: %w", err)
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
	return toBudgetResponse(updated), nil
}

// UpdateStatus cambia el estado y sella ApprovedAt o RejectedAt según
// corresponda. El estado es texto libre, no se valida una transición.
func (uc *BudgetUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.BudgetResponse, error) {
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	budget, err := uc.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, domain.ErrNotFound
	}
	applyStatus(budget, status)
	budget.UpdatedAt = time.Now()
	if err := uc.budgetRepo.Update(budget); err != nil {
		return nil, err
	}
	return toBudgetResponse(budget), nil
}

// Delete borra el presupuesto y sus items.
func (uc *BudgetUseCase) Delete(ctx context.Context, id string) error {
	budget, err := uc.budgetRepo.GetByID(id)
	if err != nil {
		return err
	}
	if budget == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunBudget(ctx, func(_ repository.CustomerRepository, budgetRepo repository.BudgetRepository) error {
		if err := budgetRepo.DeleteItemsByBudgetID(id); err != nil {
			return err
		}
		return budgetRepo.Delete(id)
	})
}

// load trae el presupuesto con items, productos y cliente poblados.
func (uc *BudgetUseCase) load(id string) (*entity.Budget, error) {
	budget, err := uc.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.budgetRepo.GetItemsByBudgetID(id)
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

	budget.Items = make([]entity.BudgetItem, len(items))
	for i, it := range items {
		it.Product = byID[it.ProductID]
		budget.Items[i] = *it
	}

	if budget.Customer == nil {
		customer, err := uc.customerRepo.GetByID(budget.CustomerID)
		if err != nil {
			return nil, err
		}
		budget.Customer = customer
	}
	return budget, nil
}

// applyStatus cambia el estado y deja la marca de tiempo correspondiente.
func applyStatus(budget *entity.Budget, status string) {
	budget.Status = status
	now := time.Now()
	switch status {
	case "approved":
		budget.ApprovedAt = &now
	case "rejected":
		budget.RejectedAt = &now
	}
}

// applyDate interpreta un campo de fecha opcional: nil no toca, "" limpia,
// cualquier otro valor debe ser ISO 8601.
func applyDate(dst **time.Time, src *string) error {
	if src == nil {
		return nil
	}
	if *src == "" {
		*dst = nil
		return nil
	}
	t, err := time.Parse(time.RFC3339, *src)
	if err != nil {
		return fmt.Errorf("%w: fecha inválida: %s", domain.ErrInvalidInput, *src)
	}
	*dst = &t
	return nil
}

func toBudgetResponse(b *entity.Budget) *dto.BudgetResponse {
	resp := &dto.BudgetResponse{
		ID:            b.ID,
		Number:        b.Number,
		CustomerID:    b.CustomerID,
		ShowCuit:      b.ShowCuit,
		Observation:   b.Observation,
		TotalAmount:   b.TotalAmount,
		Status:        b.Status,
		IsRead:        b.IsRead,
		ExpiresAt:     b.ExpiresAt,
		ApprovedAt:    b.ApprovedAt,
		RejectedAt:    b.RejectedAt,
		Type:          b.Type,
		ResponsibleID: b.ResponsibleID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		Items:         make([]dto.BudgetItemResponse, 0, len(b.Items)),
	}
	for _, it := range b.Items {
		item := dto.BudgetItemResponse{
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
			item.Product = toProductSummary(it.Product)
		}
		resp.Items = append(resp.Items, item)
	}
	if b.Customer != nil {
		resp.Customer = toCustomerResponse(b.Customer)
	}
	return resp
}

func toProductSummary(p *entity.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		SKU:            p.SKU,
		Description:    p.Description,
		Stock:          p.Stock,
		IsActive:       p.IsActive,
		IsFeatured:     p.IsFeatured,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		PriceUpdated:   p.PriceUpdated,
		PriceUpdatedAt: p.PriceUpdatedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, dto.ImageResponse{
			ID:        img.ID,
			URL:       img.URL,
			Alt:       img.Alt,
			Tag:       img.Tag,
			CreatedAt: img.CreatedAt,
		})
	}
	return resp
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
