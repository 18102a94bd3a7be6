package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

// SettingUseCase contenido de páginas del CMS legado. Solo lectura y edición:
// las claves se crean por migración, no por API.
type SettingUseCase struct {
	repo repository.SettingRepository
}

// NewSettingUseCase construye el caso de uso.
func NewSettingUseCase(repo repository.SettingRepository) *SettingUseCase {
	return &SettingUseCase{repo: repo}
}

// Get devuelve un bloque por ID.
func (uc *SettingUseCase) Get(ctx context.Context, id int64) (*dto.SettingResponse, error) {
	setting, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, domain.ErrNotFound
	}
	return toSettingResponse(setting.ID, setting.Key, setting.Value, setting.UpdatedAt), nil
}

// GetByKey devuelve un bloque por clave (storefront).
func (uc *SettingUseCase) GetByKey(ctx context.Context, key string) (*dto.SettingResponse, error) {
	setting, err := uc.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, domain.ErrNotFound
	}
	return toSettingResponse(setting.ID, setting.Key, setting.Value, setting.UpdatedAt), nil
}

// List devuelve todos los bloques.
func (uc *SettingUseCase) List(ctx context.Context) ([]dto.SettingResponse, error) {
	settings, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SettingResponse, 0, len(settings))
	for _, s := range settings {
		out = append(out, *toSettingResponse(s.ID, s.Key, s.Value, s.UpdatedAt))
	}
	return out, nil
}

// Update reemplaza el valor del bloque. Debe ser JSON válido; la estructura
// interna la define el frontend.
func (uc *SettingUseCase) Update(ctx context.Context, id int64, in dto.UpdateSettingRequest) (*dto.SettingResponse, error) {
	if len(in.Value) == 0 || !json.Valid(in.Value) {
		return nil, domain.ErrInvalidInput
	}
	setting, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, domain.ErrNotFound
	}
	setting.Value = string(in.Value)
	setting.UpdatedAt = time.Now()
	if err := uc.repo.Update(setting); err != nil {
		return nil, err
	}
	return toSettingResponse(setting.ID, setting.Key, setting.Value, setting.UpdatedAt), nil
}

func toSettingResponse(id int64, key, value string, updatedAt time.Time) *dto.SettingResponse {
	return &dto.SettingResponse{
		ID:        id,
		Key:       key,
		Value:     json.RawMessage(value),
		UpdatedAt: updatedAt,
	}
}
