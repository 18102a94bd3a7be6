package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación de ContactRepository.
type ContactRepo struct {
	q Querier
}

func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

const contactColumns = `id, name, email, phone, message, is_read, created_at, updated_at`

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var c entity.Contact
	var phone *string
	err := row.Scan(&c.ID, &c.Name, &c.Email, &phone, &c.Message, &c.IsRead, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Phone = orEmpty(phone)
	return &c, nil
}

// Create persiste una consulta de contacto y devuelve su ID generado.
func (r *ContactRepo) Create(contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (name, email, phone, message, is_read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		contact.Name, contact.Email, nullIfEmpty(contact.Phone),
		contact.Message, contact.IsRead, contact.CreatedAt, contact.UpdatedAt,
	).Scan(&contact.ID)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID obtiene una consulta por ID.
func (r *ContactRepo) GetByID(id int64) (*entity.Contact, error) {
	c, err := scanContact(r.q.QueryRow(context.Background(),
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// List lista todas las consultas, más nuevas primero.
func (r *ContactRepo) List() ([]*entity.Contact, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var out []*entity.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update actualiza una consulta (típicamente el flag de leído).
func (r *ContactRepo) Update(contact *entity.Contact) error {
	query := `
		UPDATE contacts
		SET name = $2, email = $3, phone = $4, message = $5, is_read = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		contact.ID, contact.Name, contact.Email, nullIfEmpty(contact.Phone),
		contact.Message, contact.IsRead, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// Delete elimina una consulta.
func (r *ContactRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
