package repository

import "github.com/premiarte/premiarte-api/internal/domain/entity"

// ImageRepository puerto de persistencia de imágenes.
type ImageRepository interface {
	Create(image *entity.Image) error
	GetByID(id int64) (*entity.Image, error)
	GetByIDs(ids []int64) ([]*entity.Image, error)
	List() ([]*entity.Image, error)
	Update(image *entity.Image) error
	Delete(id int64) error
}
