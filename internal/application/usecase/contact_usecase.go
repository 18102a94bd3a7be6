package usecase

import (
	"context"
	"time"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
	"github.com/premiarte/premiarte-api/pkg/logger"
)

// ContactEmailData datos para el aviso interno de consulta nueva.
type ContactEmailData struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactNotifier envía el aviso de consulta recibida. Best effort, igual que
// el correo de presupuestos.
type ContactNotifier interface {
	SendContactReceived(ctx context.Context, data ContactEmailData) error
}

// ContactUseCase consultas del formulario público de contacto.
type ContactUseCase struct {
	repo     repository.ContactRepository
	notifier ContactNotifier
	log      *logger.Logger
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository, notifier ContactNotifier, log *logger.Logger) *ContactUseCase {
	return &ContactUseCase{repo: repo, notifier: notifier, log: log}
}

// Create guarda la consulta y avisa por correo. El fallo del correo se
// registra y no anula la consulta.
func (uc *ContactUseCase) Create(ctx context.Context, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	contact := &entity.Contact{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(contact); err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		err := uc.notifier.SendContactReceived(ctx, ContactEmailData{
			Name:    contact.Name,
			Email:   contact.Email,
			Phone:   contact.Phone,
			Message: contact.Message,
		})
		if err != nil {
			uc.log.Warn().Err(err).Str("email", contact.Email).Msg("no se pudo enviar el aviso de contacto")
		}
	}
	return toContactResponse(contact), nil
}

// Get devuelve una consulta por ID.
func (uc *ContactUseCase) Get(ctx context.Context, id int64) (*dto.ContactResponse, error) {
	contact, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	return toContactResponse(contact), nil
}

// List devuelve todas las consultas, más recientes primero.
func (uc *ContactUseCase) List(ctx context.Context) ([]dto.ContactResponse, error) {
	contacts, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, *toContactResponse(c))
	}
	return out, nil
}

// Update marca la consulta como leída o no leída.
func (uc *ContactUseCase) Update(ctx context.Context, id int64, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	contact, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	if in.IsRead != nil {
		contact.IsRead = *in.IsRead
	}
	contact.UpdatedAt = time.Now()
	if err := uc.repo.Update(contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Delete elimina una consulta.
func (uc *ContactUseCase) Delete(ctx context.Context, id int64) error {
	contact, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if contact == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		IsRead:    c.IsRead,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
