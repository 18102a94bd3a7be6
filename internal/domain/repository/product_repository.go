package repository

import "github.com/premiarte/premiarte-api/internal/domain/entity"

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	IsActive   *bool
	IsFeatured *bool
	Category   string // slug de categoría
	Limit      int    // 0 = sin paginación
	Offset     int
}

// ProductRepository puerto de persistencia de productos y sus relaciones
// (categorías, imágenes ordenadas, productos relacionados).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetBySlug(slug string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetByIDs devuelve los productos existentes entre los ids pedidos;
	// los ausentes simplemente no aparecen en el resultado.
	GetByIDs(ids []int64) ([]*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	Count(filter ProductFilter) (int, error)
	Update(product *entity.Product) error
	Delete(id int64) error

	ReplaceCategories(productID int64, categoryIDs []int64) error
	ReplaceImages(productID int64, imageIDs []int64) error
	ReplaceRelated(productID int64, relatedIDs []int64) error
	GetCategories(productID int64) ([]entity.Category, error)
	// GetImages devuelve las imágenes del producto ordenadas por orderIndex.
	GetImages(productID int64) ([]entity.Image, error)
	GetRelatedIDs(productID int64) ([]int64, error)
}
