package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
	"github.com/premiarte/premiarte-api/pkg/slug"
	"github.com/shopspring/decimal"
)

// Tamaño de página del catálogo público.
const productPageSize = 9

// ProductUseCase casos de uso CRUD para productos del catálogo, incluidas sus
// relaciones (categorías, imágenes ordenadas, relacionados) y el ajuste masivo
// de precios.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	imageRepo    repository.ImageRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	imageRepo repository.ImageRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, imageRepo: imageRepo}
}

// Create crea un producto. Si no viene slug se genera desde el nombre; slug y
// SKU deben ser únicos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := in.Slug
	if s == "" {
		s = slug.Make(in.Name)
	}
	if existing, err := uc.repo.GetBySlug(s); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: slug %q", domain.ErrDuplicate, s)
	}
	if in.SKU != "" {
		if existing, err := uc.repo.GetBySKU(in.SKU); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, fmt.Errorf("%w: sku %q", domain.ErrDuplicate, in.SKU)
		}
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	product := &entity.Product{
		Name:           in.Name,
		Slug:           s,
		SKU:            in.SKU,
		Description:    in.Description,
		Stock:          in.Stock,
		IsActive:       isActive,
		IsFeatured:     in.IsFeatured,
		RetailPrice:    in.RetailPrice,
		WholesalePrice: in.WholesalePrice,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	if len(in.CategoryIDs) > 0 {
		if err := uc.repo.ReplaceCategories(product.ID, in.CategoryIDs); err != nil {
			return nil, err
		}
	}
	if len(in.Images) > 0 {
		if err := uc.repo.ReplaceImages(product.ID, in.Images); err != nil {
			return nil, err
		}
	}
	if len(in.RelatedIDs) > 0 {
		if err := uc.repo.ReplaceRelated(product.ID, in.RelatedIDs); err != nil {
			return nil, err
		}
	}
	return uc.Get(ctx, product.ID)
}

// Get devuelve un producto con todas sus relaciones pobladas.
func (uc *ProductUseCase) Get(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.loadRelations(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetBySlug devuelve un producto por su slug (storefront).
func (uc *ProductUseCase) GetBySlug(ctx context.Context, s string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.loadRelations(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros. Si viene page el resultado se pagina de a
// productPageSize y se devuelve el total.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) (*dto.PagedResponse[dto.ProductResponse], error) {
	filter := repository.ProductFilter{
		IsActive:   q.IsActive,
		IsFeatured: q.IsFeatured,
		Category:   q.Category,
	}
	page := 0
	if q.Page != "" {
		if _, err := fmt.Sscanf(q.Page, "%d", &page); err != nil || page < 1 {
			return nil, fmt.Errorf("%w: page inválido", domain.ErrInvalidInput)
		}
		filter.Limit = productPageSize
		filter.Offset = (page - 1) * productPageSize
	}

	products, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	total := len(products)
	if page > 0 {
		total, err = uc.repo.Count(filter)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if err := uc.loadRelations(p); err != nil {
			return nil, err
		}
		items = append(items, *toProductResponse(p))
	}

	resp := &dto.PagedResponse[dto.ProductResponse]{
		Data:  items,
		Total: total,
		Page:  page,
		Limit: filter.Limit,
	}
	if page > 0 {
		resp.TotalPages = (total + productPageSize - 1) / productPageSize
	}
	return resp, nil
}

// Update actualiza los campos presentes. Slug y SKU mantienen la unicidad.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Slug != nil && *in.Slug != product.Slug {
		if existing, err := uc.repo.GetBySlug(*in.Slug); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: slug %q", domain.ErrDuplicate, *in.Slug)
		}
		product.Slug = *in.Slug
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		if *in.SKU != "" {
			if existing, err := uc.repo.GetBySKU(*in.SKU); err != nil {
				return nil, err
			} else if existing != nil && existing.ID != id {
				return nil, fmt.Errorf("%w: sku %q", domain.ErrDuplicate, *in.SKU)
			}
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}
	if in.RetailPrice != nil {
		product.RetailPrice = *in.RetailPrice
	}
	if in.WholesalePrice != nil {
		product.WholesalePrice = *in.WholesalePrice
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}

	if in.CategoryIDs != nil {
		if err := uc.repo.ReplaceCategories(id, *in.CategoryIDs); err != nil {
			return nil, err
		}
	}
	if in.Images != nil {
		if err := uc.repo.ReplaceImages(id, *in.Images); err != nil {
			return nil, err
		}
	}
	if in.RelatedIDs != nil {
		if err := uc.repo.ReplaceRelated(id, *in.RelatedIDs); err != nil {
			return nil, err
		}
	}
	return uc.Get(ctx, id)
}

// UpdatePrices aplica un ajuste porcentual a los precios minorista y mayorista
// de los productos indicados. El porcentaje admite decimales; el resultado se
// redondea al centavo.
func (uc *ProductUseCase) UpdatePrices(ctx context.Context, in dto.UpdateProductPricesRequest) ([]dto.ProductResponse, error) {
	if len(in.Products) == 0 || in.Percentage.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var factor decimal.Decimal
	switch in.Operation {
	case "add":
		factor = decimal.NewFromInt(1).Add(in.Percentage.Div(decimal.NewFromInt(100)))
	case "subtract":
		factor = decimal.NewFromInt(1).Sub(in.Percentage.Div(decimal.NewFromInt(100)))
	default:
		return nil, fmt.Errorf("%w: operación %q", domain.ErrInvalidInput, in.Operation)
	}

	products, err := uc.repo.GetByIDs(in.Products)
	if err != nil {
		return nil, err
	}
	if len(products) != len(dedupe(in.Products)) {
		return nil, fmt.Errorf("%w: algún producto no existe", domain.ErrInvalidInput)
	}

	label := fmt.Sprintf("+%s%%", in.Percentage.String())
	if in.Operation == "subtract" {
		label = fmt.Sprintf("-%s%%", in.Percentage.String())
	}
	now := time.Now()
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		p.RetailPrice = applyFactor(p.RetailPrice, factor)
		p.WholesalePrice = applyFactor(p.WholesalePrice, factor)
		p.PriceUpdated = label
		p.PriceUpdatedAt = &now
		p.UpdatedAt = now
		if err := uc.repo.Update(p); err != nil {
			return nil, err
		}
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto y sus vínculos.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) loadRelations(p *entity.Product) error {
	categories, err := uc.repo.GetCategories(p.ID)
	if err != nil {
		return err
	}
	images, err := uc.repo.GetImages(p.ID)
	if err != nil {
		return err
	}
	related, err := uc.repo.GetRelatedIDs(p.ID)
	if err != nil {
		return err
	}
	p.Categories = categories
	p.Images = images
	p.RelatedProducts = related
	return nil
}

// applyFactor multiplica centavos por el factor decimal y redondea.
func applyFactor(cents int64, factor decimal.Decimal) int64 {
	return decimal.NewFromInt(cents).Mul(factor).Round(0).IntPart()
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		SKU:             p.SKU,
		Description:     p.Description,
		Stock:           p.Stock,
		IsActive:        p.IsActive,
		IsFeatured:      p.IsFeatured,
		RetailPrice:     p.RetailPrice,
		WholesalePrice:  p.WholesalePrice,
		PriceUpdated:    p.PriceUpdated,
		PriceUpdatedAt:  p.PriceUpdatedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		RelatedProducts: p.RelatedProducts,
	}
	for _, c := range p.Categories {
		resp.Categories = append(resp.Categories, *toCategoryResponse(&c))
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, *toImageResponse(&img))
	}
	return resp
}
