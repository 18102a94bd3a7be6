package budgets

import (
	"context"

	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

// Fakes en memoria para los tests del paquete. Imitan los contratos de los
// repos de postgres: unicidad de email/teléfono en clientes (teléfono
// comparado normalizado, como el índice funcional) y numerador único en
// presupuestos.

type fakeCustomerRepo struct {
	customers []*entity.Customer
	// hidden simula la carrera: los Get no ven nada hasta que un Create
	// choca contra el índice único.
	hidden bool
	// rawPhoneLookup simula una búsqueda por igualdad cruda sobre la columna:
	// GetByPhone no encuentra teléfonos guardados con otro formato aunque el
	// índice normalizado los rechace en Create.
	rawPhoneLookup bool
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	for _, existing := range f.customers {
		if c.Email != "" && existing.Email == c.Email {
			f.hidden = false
			return domain.ErrDuplicate
		}
		if c.Phone != "" && NormalizePhone(existing.Phone) == NormalizePhone(c.Phone) {
			f.hidden = false
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
	if f.hidden {
		return nil, nil
	}
	for _, c := range f.customers {
		if c.Email != "" && c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	if f.hidden {
		return nil, nil
	}
	for _, c := range f.customers {
		if c.Phone == "" {
			continue
		}
		if f.rawPhoneLookup {
			if c.Phone == phone {
				return c, nil
			}
			continue
		}
		if NormalizePhone(c.Phone) == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) ListWithPhone() ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.customers {
		if c.Phone != "" {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) List() ([]*entity.Customer, error) { return f.customers, nil }
func (f *fakeCustomerRepo) Update(c *entity.Customer) error   { return nil }
func (f *fakeCustomerRepo) Delete(id string) error            { return nil }

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

func (f *fakeProductRepo) Create(p *entity.Product) error                  { return nil }
func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error)       { return f.products[id], nil }
func (f *fakeProductRepo) GetBySlug(slug string) (*entity.Product, error)  { return nil, nil }
func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error)    { return nil, nil }
func (f *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Count(repository.ProductFilter) (int, error)      { return 0, nil }
func (f *fakeProductRepo) Update(p *entity.Product) error                   { return nil }
func (f *fakeProductRepo) Delete(id int64) error                            { return nil }
func (f *fakeProductRepo) ReplaceCategories(int64, []int64) error           { return nil }
func (f *fakeProductRepo) ReplaceImages(int64, []int64) error               { return nil }
func (f *fakeProductRepo) ReplaceRelated(int64, []int64) error              { return nil }
func (f *fakeProductRepo) GetCategories(int64) ([]entity.Category, error)   { return nil, nil }
func (f *fakeProductRepo) GetImages(int64) ([]entity.Image, error)          { return nil, nil }
func (f *fakeProductRepo) GetRelatedIDs(int64) ([]int64, error)             { return nil, nil }

type fakeBudgetRepo struct {
	budgets map[string]*entity.Budget
	items   map[string][]*entity.BudgetItem
	numbers map[int64]bool
	// staleNumber fuerza que NextNumber devuelva un número ya usado una vez,
	// como cuando dos transacciones leen el mismo MAX(number).
	staleNumber int64
	nextItemID  int64
}

var _ repository.BudgetRepository = (*fakeBudgetRepo)(nil)

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{
		budgets: make(map[string]*entity.Budget),
		items:   make(map[string][]*entity.BudgetItem),
		numbers: make(map[int64]bool),
	}
}

func (f *fakeBudgetRepo) NextNumber() (int64, error) {
	if f.staleNumber != 0 {
		n := f.staleNumber
		f.staleNumber = 0
		return n, nil
	}
	max := int64(entity.BudgetNumberBase)
	for n := range f.numbers {
		if n > max {
			max = n
		}
	}
	return max + 1, nil
}

func (f *fakeBudgetRepo) Create(b *entity.Budget) error {
	if f.numbers[b.Number] {
		return domain.ErrConflict
	}
	f.numbers[b.Number] = true
	f.budgets[b.ID] = b
	return nil
}

func (f *fakeBudgetRepo) CreateItem(item *entity.BudgetItem) error {
	f.nextItemID++
	item.ID = f.nextItemID
	f.items[item.BudgetID] = append(f.items[item.BudgetID], item)
	return nil
}

func (f *fakeBudgetRepo) GetByID(id string) (*entity.Budget, error) { return f.budgets[id], nil }

func (f *fakeBudgetRepo) List() ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range f.budgets {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBudgetRepo) GetItemsByBudgetID(budgetID string) ([]*entity.BudgetItem, error) {
	return f.items[budgetID], nil
}

func (f *fakeBudgetRepo) Update(b *entity.Budget) error {
	f.budgets[b.ID] = b
	return nil
}

func (f *fakeBudgetRepo) UpdateStatus(id, status string) error {
	if b, ok := f.budgets[id]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeBudgetRepo) DeleteItemsByBudgetID(budgetID string) error {
	delete(f.items, budgetID)
	return nil
}

func (f *fakeBudgetRepo) Delete(id string) error {
	delete(f.budgets, id)
	return nil
}

// fakeTxRunner ejecuta el callback sin transacción real; los fakes mutan en
// memoria, el rollback se simula no persistiendo nada más tras el error.
type fakeTxRunner struct {
	customerRepo repository.CustomerRepository
	budgetRepo   repository.BudgetRepository
}

var _ BudgetTxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) RunBudget(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	budgetRepo repository.BudgetRepository,
) error) error {
	return fn(f.customerRepo, f.budgetRepo)
}

type fakeResponsibleRepo struct {
	responsibles map[int64]*entity.Responsible
}

var _ repository.ResponsibleRepository = (*fakeResponsibleRepo)(nil)

func (f *fakeResponsibleRepo) Create(r *entity.Responsible) error { return nil }
func (f *fakeResponsibleRepo) GetByID(id int64) (*entity.Responsible, error) {
	return f.responsibles[id], nil
}
func (f *fakeResponsibleRepo) List() ([]*entity.Responsible, error) { return nil, nil }
func (f *fakeResponsibleRepo) Update(r *entity.Responsible) error   { return nil }
func (f *fakeResponsibleRepo) Delete(id int64) error                { return nil }

type fakeNotifier struct {
	sent []BudgetEmailData
	err  error
}

var _ Notifier = (*fakeNotifier)(nil)

func (f *fakeNotifier) SendBudgetCreated(ctx context.Context, data BudgetEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
