package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
// Las relaciones viven en tablas de vínculo: product_categories,
// product_images (con order_index e is_primary) y related_products.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, slug, sku, description, stock, is_active, is_featured,
		retail_price, wholesale_price, price_updated, price_updated_at, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var sku, description, priceUpdated *string
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &sku, &description, &p.Stock, &p.IsActive, &p.IsFeatured,
		&p.RetailPrice, &p.WholesalePrice, &priceUpdated, &p.PriceUpdatedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.SKU = orEmpty(sku)
	p.Description = orEmpty(description)
	p.PriceUpdated = orEmpty(priceUpdated)
	return &p, nil
}

// Create persiste un producto y devuelve su ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, slug, sku, description, stock, is_active, is_featured,
			retail_price, wholesale_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Slug, nullIfEmpty(product.SKU), nullIfEmpty(product.Description),
		product.Stock, product.IsActive, product.IsFeatured,
		product.RetailPrice, product.WholesalePrice, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetBySlug obtiene un producto por slug.
func (r *ProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByIDs devuelve los productos existentes entre los ids pedidos.
func (r *ProductRepo) GetByIDs(ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// filterClause arma el WHERE del listado. El filtro por categoría entra por la
// tabla de vínculo usando el slug.
func filterClause(filter repository.ProductFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conds = append(conds, fmt.Sprintf("p.is_active = $%d", len(args)))
	}
	if filter.IsFeatured != nil {
		args = append(args, *filter.IsFeatured)
		conds = append(conds, fmt.Sprintf("p.is_featured = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf(`p.id IN (
			SELECT pc.product_id FROM product_categories pc
			JOIN categories c ON c.id = pc.category_id
			WHERE c.slug = $%d)`, len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List lista productos con filtros y paginación opcional, más nuevos primero.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	where, args := filterClause(filter)
	query := `
		SELECT p.id, p.name, p.slug, p.sku, p.description, p.stock, p.is_active, p.is_featured,
			p.retail_price, p.wholesale_price, p.price_updated, p.price_updated_at, p.created_at, p.updated_at
		FROM products p` + where + ` ORDER BY p.created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Count cuenta los productos que matchean el filtro, sin paginación.
func (r *ProductRepo) Count(filter repository.ProductFilter) (int, error) {
	where, args := filterClause(filter)
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products p`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update actualiza un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, slug = $3, sku = $4, description = $5, stock = $6, is_active = $7,
			is_featured = $8, retail_price = $9, wholesale_price = $10, price_updated = $11,
			price_updated_at = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Slug, nullIfEmpty(product.SKU), nullIfEmpty(product.Description),
		product.Stock, product.IsActive, product.IsFeatured, product.RetailPrice, product.WholesalePrice,
		nullIfEmpty(product.PriceUpdated), product.PriceUpdatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto y sus vínculos.
func (r *ProductRepo) Delete(id int64) error {
	ctx := context.Background()
	for _, q := range []string{
		`DELETE FROM product_categories WHERE product_id = $1`,
		`DELETE FROM product_images WHERE product_id = $1`,
		`DELETE FROM related_products WHERE product_id = $1 OR related_id = $1`,
		`DELETE FROM products WHERE id = $1`,
	} {
		if _, err := r.q.Exec(ctx, q, id); err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
	}
	return nil
}

// ReplaceCategories reemplaza el set de categorías del producto.
func (r *ProductRepo) ReplaceCategories(productID int64, categoryIDs []int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM product_categories WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear product categories: %w", err)
	}
	for _, categoryID := range categoryIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2)`,
			productID, categoryID)
		if err != nil {
			return fmt.Errorf("link product category: %w", err)
		}
	}
	return nil
}

// ReplaceImages reemplaza el set de imágenes del producto. El orden de la
// lista define order_index; la primera queda como principal.
func (r *ProductRepo) ReplaceImages(productID int64, imageIDs []int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM product_images WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear product images: %w", err)
	}
	for i, imageID := range imageIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO product_images (product_id, image_id, order_index, is_primary) VALUES ($1, $2, $3, $4)`,
			productID, imageID, i, i == 0)
		if err != nil {
			return fmt.Errorf("link product image: %w", err)
		}
	}
	return nil
}

// ReplaceRelated reemplaza el set de productos relacionados.
func (r *ProductRepo) ReplaceRelated(productID int64, relatedIDs []int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM related_products WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear related products: %w", err)
	}
	for _, relatedID := range relatedIDs {
		if relatedID == productID {
			continue
		}
		_, err := r.q.Exec(ctx,
			`INSERT INTO related_products (product_id, related_id) VALUES ($1, $2)`,
			productID, relatedID)
		if err != nil {
			return fmt.Errorf("link related product: %w", err)
		}
	}
	return nil
}

// GetCategories devuelve las categorías del producto.
func (r *ProductRepo) GetCategories(productID int64) ([]entity.Category, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.description, c.image_id, c.featured, c.created_at, c.updated_at
		FROM categories c
		JOIN product_categories pc ON pc.category_id = c.id
		WHERE pc.product_id = $1
		ORDER BY c.name`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("get product categories: %w", err)
	}
	defer rows.Close()

	var out []entity.Category
	for rows.Next() {
		var c entity.Category
		var description *string
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &description, &c.ImageID, &c.Featured, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Description = orEmpty(description)
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetImages devuelve las imágenes del producto ordenadas por order_index.
func (r *ProductRepo) GetImages(productID int64) ([]entity.Image, error) {
	query := `
		SELECT i.id, i.url, i.alt, i.tag, i.observation, i.public_id, i.created_at, i.updated_at
		FROM images i
		JOIN product_images pi ON pi.image_id = i.id
		WHERE pi.product_id = $1
		ORDER BY pi.order_index`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("get product images: %w", err)
	}
	defer rows.Close()

	var out []entity.Image
	for rows.Next() {
		var img entity.Image
		var alt, tag, observation, publicID *string
		if err := rows.Scan(&img.ID, &img.URL, &alt, &tag, &observation, &publicID, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		img.Alt = orEmpty(alt)
		img.Tag = orEmpty(tag)
		img.Observation = orEmpty(observation)
		img.PublicID = orEmpty(publicID)
		out = append(out, img)
	}
	return out, rows.Err()
}

// GetRelatedIDs devuelve los ids de productos relacionados.
func (r *ProductRepo) GetRelatedIDs(productID int64) ([]int64, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT related_id FROM related_products WHERE product_id = $1 ORDER BY related_id`, productID)
	if err != nil {
		return nil, fmt.Errorf("get related products: %w", err)
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan related id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
