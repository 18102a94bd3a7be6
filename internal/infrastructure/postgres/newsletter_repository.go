package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

var _ repository.NewsletterRepository = (*NewsletterRepo)(nil)

// NewsletterRepo implementación de NewsletterRepository.
type NewsletterRepo struct {
	q Querier
}

func NewNewsletterRepository(q Querier) *NewsletterRepo {
	return &NewsletterRepo{q: q}
}

const subscriberColumns = `id, name, email, is_active, subscribed_at, unsubscribed_at, created_at, updated_at`

func scanSubscriber(row pgx.Row) (*entity.NewsletterSubscriber, error) {
	var s entity.NewsletterSubscriber
	var name *string
	err := row.Scan(&s.ID, &name, &s.Email, &s.IsActive, &s.SubscribedAt, &s.UnsubscribedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Name = orEmpty(name)
	return &s, nil
}

// Create persiste un suscriptor y devuelve su ID generado.
func (r *NewsletterRepo) Create(subscriber *entity.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (name, email, is_active, subscribed_at, unsubscribed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		nullIfEmpty(subscriber.Name), subscriber.Email, subscriber.IsActive,
		subscriber.SubscribedAt, subscriber.UnsubscribedAt, subscriber.CreatedAt, subscriber.UpdatedAt,
	).Scan(&subscriber.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subscriber: %w", err)
	}
	return nil
}

// GetByID obtiene un suscriptor por ID.
func (r *NewsletterRepo) GetByID(id int64) (*entity.NewsletterSubscriber, error) {
	return r.getOne(`SELECT `+subscriberColumns+` FROM newsletter_subscribers WHERE id = $1`, id)
}

// GetByEmail obtiene un suscriptor por email.
func (r *NewsletterRepo) GetByEmail(email string) (*entity.NewsletterSubscriber, error) {
	return r.getOne(`SELECT `+subscriberColumns+` FROM newsletter_subscribers WHERE email = $1`, email)
}

func (r *NewsletterRepo) getOne(query string, arg any) (*entity.NewsletterSubscriber, error) {
	s, err := scanSubscriber(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscriber: %w", err)
	}
	return s, nil
}

// List lista todos los suscriptores, más nuevos primero.
func (r *NewsletterRepo) List() ([]*entity.NewsletterSubscriber, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+subscriberColumns+` FROM newsletter_subscribers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	var out []*entity.NewsletterSubscriber
	for rows.Next() {
		s, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update actualiza un suscriptor (estado de suscripción y timestamps).
func (r *NewsletterRepo) Update(subscriber *entity.NewsletterSubscriber) error {
	query := `
		UPDATE newsletter_subscribers
		SET name = $2, email = $3, is_active = $4, subscribed_at = $5, unsubscribed_at = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		subscriber.ID, nullIfEmpty(subscriber.Name), subscriber.Email, subscriber.IsActive,
		subscriber.SubscribedAt, subscriber.UnsubscribedAt, subscriber.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update subscriber: %w", err)
	}
	return nil
}

// Delete elimina un suscriptor.
func (r *NewsletterRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM newsletter_subscribers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	return nil
}
