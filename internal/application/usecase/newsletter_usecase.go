package usecase

import (
	"context"
	"time"

	"github.com/premiarte/premiarte-api/internal/application/budgets"
	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

// NewsletterUseCase suscriptores del newsletter. El email es único: una
// resuscripción reactiva el registro existente.
type NewsletterUseCase struct {
	repo repository.NewsletterRepository
}

// NewNewsletterUseCase construye el caso de uso.
func NewNewsletterUseCase(repo repository.NewsletterRepository) *NewsletterUseCase {
	return &NewsletterUseCase{repo: repo}
}

// Subscribe alta o reactivación de un suscriptor.
func (uc *NewsletterUseCase) Subscribe(ctx context.Context, in dto.CreateNewsletterRequest) (*dto.NewsletterResponse, error) {
	email := budgets.NormalizeEmail(in.Email)
	if email == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	existing, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.IsActive {
			return nil, domain.ErrEmailAlreadyExists
		}
		existing.IsActive = true
		existing.SubscribedAt = now
		existing.UnsubscribedAt = nil
		if in.Name != "" {
			existing.Name = in.Name
		}
		existing.UpdatedAt = now
		if err := uc.repo.Update(existing); err != nil {
			return nil, err
		}
		return toNewsletterResponse(existing), nil
	}

	subscriber := &entity.NewsletterSubscriber{
		Name:         in.Name,
		Email:        email,
		IsActive:     true,
		SubscribedAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(subscriber); err != nil {
		return nil, err
	}
	return toNewsletterResponse(subscriber), nil
}

// Unsubscribe baja lógica por email.
func (uc *NewsletterUseCase) Unsubscribe(ctx context.Context, email string) (*dto.NewsletterResponse, error) {
	email = budgets.NormalizeEmail(email)
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	subscriber, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if subscriber == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	subscriber.IsActive = false
	subscriber.UnsubscribedAt = &now
	subscriber.UpdatedAt = now
	if err := uc.repo.Update(subscriber); err != nil {
		return nil, err
	}
	return toNewsletterResponse(subscriber), nil
}

// Get devuelve un suscriptor por ID.
func (uc *NewsletterUseCase) Get(ctx context.Context, id int64) (*dto.NewsletterResponse, error) {
	subscriber, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subscriber == nil {
		return nil, domain.ErrNotFound
	}
	return toNewsletterResponse(subscriber), nil
}

// List devuelve todos los suscriptores.
func (uc *NewsletterUseCase) List(ctx context.Context) ([]dto.NewsletterResponse, error) {
	subscribers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.NewsletterResponse, 0, len(subscribers))
	for _, s := range subscribers {
		out = append(out, *toNewsletterResponse(s))
	}
	return out, nil
}

// Update actualiza nombre o estado de un suscriptor desde el dashboard.
func (uc *NewsletterUseCase) Update(ctx context.Context, id int64, in dto.UpdateNewsletterRequest) (*dto.NewsletterResponse, error) {
	subscriber, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subscriber == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if in.Name != nil {
		subscriber.Name = *in.Name
	}
	if in.IsActive != nil && *in.IsActive != subscriber.IsActive {
		subscriber.IsActive = *in.IsActive
		if *in.IsActive {
			subscriber.SubscribedAt = now
			subscriber.UnsubscribedAt = nil
		} else {
			subscriber.UnsubscribedAt = &now
		}
	}
	subscriber.UpdatedAt = now
	if err := uc.repo.Update(subscriber); err != nil {
		return nil, err
	}
	return toNewsletterResponse(subscriber), nil
}

// Delete elimina un suscriptor.
func (uc *NewsletterUseCase) Delete(ctx context.Context, id int64) error {
	subscriber, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if subscriber == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toNewsletterResponse(s *entity.NewsletterSubscriber) *dto.NewsletterResponse {
	return &dto.NewsletterResponse{
		ID:             s.ID,
		Name:           s.Name,
		Email:          s.Email,
		IsActive:       s.IsActive,
		SubscribedAt:   s.SubscribedAt,
		UnsubscribedAt: s.UnsubscribedAt,
		CreatedAt:      s.CreatedAt,
	}
}
