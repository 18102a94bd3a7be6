package usecase

import (
	"context"
	"time"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

// ImageUseCase casos de uso CRUD para imágenes. La subida y el borrado del
// asset en el host externo corren por cuenta del frontend; acá solo se
// administra el registro.
type ImageUseCase struct {
	repo repository.ImageRepository
}

// NewImageUseCase construye el caso de uso.
func NewImageUseCase(repo repository.ImageRepository) *ImageUseCase {
	return &ImageUseCase{repo: repo}
}

// Create registra una imagen ya subida.
func (uc *ImageUseCase) Create(ctx context.Context, in dto.CreateImageRequest) (*dto.ImageResponse, error) {
	if in.URL == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	image := &entity.Image{
		URL:         in.URL,
		Alt:         in.Alt,
		Tag:         in.Tag,
		Observation: in.Observation,
		PublicID:    in.PublicID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(image); err != nil {
		return nil, err
	}
	return toImageResponse(image), nil
}

// Get devuelve una imagen por ID.
func (uc *ImageUseCase) Get(ctx context.Context, id int64) (*dto.ImageResponse, error) {
	image, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, domain.ErrNotFound
	}
	return toImageResponse(image), nil
}

// List devuelve todas las imágenes.
func (uc *ImageUseCase) List(ctx context.Context) ([]dto.ImageResponse, error) {
	images, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, *toImageResponse(img))
	}
	return out, nil
}

// Update actualiza los metadatos presentes.
func (uc *ImageUseCase) Update(ctx context.Context, id int64, in dto.UpdateImageRequest) (*dto.ImageResponse, error) {
	image, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, domain.ErrNotFound
	}
	if in.Alt != nil {
		image.Alt = *in.Alt
	}
	if in.Tag != nil {
		image.Tag = *in.Tag
	}
	if in.Observation != nil {
		image.Observation = *in.Observation
	}
	image.UpdatedAt = time.Now()
	if err := uc.repo.Update(image); err != nil {
		return nil, err
	}
	return toImageResponse(image), nil
}

// Delete elimina el registro de la imagen.
func (uc *ImageUseCase) Delete(ctx context.Context, id int64) error {
	image, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if image == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toImageResponse(img *entity.Image) *dto.ImageResponse {
	return &dto.ImageResponse{
		ID:        img.ID,
		URL:       img.URL,
		Alt:       img.Alt,
		Tag:       img.Tag,
		PublicID:  img.PublicID,
		CreatedAt: img.CreatedAt,
	}
}
