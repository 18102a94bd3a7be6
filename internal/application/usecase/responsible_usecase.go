package usecase

import (
	"context"
	"time"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

// ResponsibleUseCase responsables asignables a presupuestos.
type ResponsibleUseCase struct {
	repo repository.ResponsibleRepository
}

// NewResponsibleUseCase construye el caso de uso.
func NewResponsibleUseCase(repo repository.ResponsibleRepository) *ResponsibleUseCase {
	return &ResponsibleUseCase{repo: repo}
}

// Create crea un responsable. El CUIT es único.
func (uc *ResponsibleUseCase) Create(ctx context.Context, in dto.CreateResponsibleRequest) (*dto.ResponsibleResponse, error) {
	if in.Name == "" || in.CUIT == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	responsible := &entity.Responsible{
		Name:        in.Name,
		CUIT:        in.CUIT,
		Email:       in.Email,
		Phone:       in.Phone,
		Observation: in.Observation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(responsible); err != nil {
		return nil, err
	}
	return toResponsibleResponse(responsible), nil
}

// Get devuelve un responsable por ID.
func (uc *ResponsibleUseCase) Get(ctx context.Context, id int64) (*dto.ResponsibleResponse, error) {
	responsible, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if responsible == nil {
		return nil, domain.ErrNotFound
	}
	return toResponsibleResponse(responsible), nil
}

// List devuelve todos los responsables.
func (uc *ResponsibleUseCase) List(ctx context.Context) ([]dto.ResponsibleResponse, error) {
	responsibles, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResponsibleResponse, 0, len(responsibles))
	for _, r := range responsibles {
		out = append(out, *toResponsibleResponse(r))
	}
	return out, nil
}

// Update actualiza los campos presentes.
func (uc *ResponsibleUseCase) Update(ctx context.Context, id int64, in dto.UpdateResponsibleRequest) (*dto.ResponsibleResponse, error) {
	responsible, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if responsible == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		responsible.Name = *in.Name
	}
	if in.CUIT != nil {
		responsible.CUIT = *in.CUIT
	}
	if in.Email != nil {
		responsible.Email = *in.Email
	}
	if in.Phone != nil {
		responsible.Phone = *in.Phone
	}
	if in.Observation != nil {
		responsible.Observation = *in.Observation
	}
	responsible.UpdatedAt = time.Now()
	if err := uc.repo.Update(responsible); err != nil {
		return nil, err
	}
	return toResponsibleResponse(responsible), nil
}

// Delete elimina un responsable.
func (uc *ResponsibleUseCase) Delete(ctx context.Context, id int64) error {
	responsible, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if responsible == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toResponsibleResponse(r *entity.Responsible) *dto.ResponsibleResponse {
	return &dto.ResponsibleResponse{
		ID:          r.ID,
		Name:        r.Name,
		CUIT:        r.CUIT,
		Email:       r.Email,
		Phone:       r.Phone,
		Observation: r.Observation,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
