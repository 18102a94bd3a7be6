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

var _ repository.ResponsibleRepository = (*ResponsibleRepo)(nil)

// ResponsibleRepo implementación de ResponsibleRepository.
type ResponsibleRepo struct {
	q Querier
}

func NewResponsibleRepository(q Querier) *ResponsibleRepo {
	return &ResponsibleRepo{q: q}
}

const responsibleColumns = `id, name, cuit, email, phone, observation, created_at, updated_at`

func scanResponsible(row pgx.Row) (*entity.Responsible, error) {
	var p entity.Responsible
	var email, phone, observation *string
	err := row.Scan(&p.ID, &p.Name, &p.CUIT, &email, &phone, &observation, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Email = orEmpty(email)
	p.Phone = orEmpty(phone)
	p.Observation = orEmpty(observation)
	return &p, nil
}

// Create persiste un responsable. El CUIT es único.
func (r *ResponsibleRepo) Create(responsible *entity.Responsible) error {
	query := `
		INSERT INTO responsibles (name, cuit, email, phone, observation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		responsible.Name, responsible.CUIT, nullIfEmpty(responsible.Email),
		nullIfEmpty(responsible.Phone), nullIfEmpty(responsible.Observation),
		responsible.CreatedAt, responsible.UpdatedAt,
	).Scan(&responsible.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert responsible: %w", err)
	}
	return nil
}

// GetByID obtiene un responsable por ID.
func (r *ResponsibleRepo) GetByID(id int64) (*entity.Responsible, error) {
	p, err := scanResponsible(r.q.QueryRow(context.Background(),
		`SELECT `+responsibleColumns+` FROM responsibles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get responsible: %w", err)
	}
	return p, nil
}

// List lista todos los responsables por nombre.
func (r *ResponsibleRepo) List() ([]*entity.Responsible, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+responsibleColumns+` FROM responsibles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list responsibles: %w", err)
	}
	defer rows.Close()

	var out []*entity.Responsible
	for rows.Next() {
		p, err := scanResponsible(rows)
		if err != nil {
			return nil, fmt.Errorf("scan responsible: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update actualiza un responsable.
func (r *ResponsibleRepo) Update(responsible *entity.Responsible) error {
	query := `
		UPDATE responsibles
		SET name = $2, cuit = $3, email = $4, phone = $5, observation = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		responsible.ID, responsible.Name, responsible.CUIT, nullIfEmpty(responsible.Email),
		nullIfEmpty(responsible.Phone), nullIfEmpty(responsible.Observation), responsible.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update responsible: %w", err)
	}
	return nil
}

// Delete elimina un responsable.
func (r *ResponsibleRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM responsibles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete responsible: %w", err)
	}
	return nil
}
