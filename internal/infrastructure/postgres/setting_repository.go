package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación de SettingRepository.
type SettingRepo struct {
	q Querier
}

func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

const settingColumns = `id, key, value, created_at, updated_at`

func scanSetting(row pgx.Row) (*entity.Setting, error) {
	var s entity.Setting
	err := row.Scan(&s.ID, &s.Key, &s.Value, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByID obtiene el contenido de una página por ID.
func (r *SettingRepo) GetByID(id int64) (*entity.Setting, error) {
	return r.getOne(`SELECT `+settingColumns+` FROM settings WHERE id = $1`, id)
}

// GetByKey obtiene el contenido de una página por su clave.
func (r *SettingRepo) GetByKey(key string) (*entity.Setting, error) {
	return r.getOne(`SELECT `+settingColumns+` FROM settings WHERE key = $1`, key)
}

func (r *SettingRepo) getOne(query string, arg any) (*entity.Setting, error) {
	s, err := scanSetting(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return s, nil
}

// List lista el contenido de todas las páginas por clave.
func (r *SettingRepo) List() ([]*entity.Setting, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+settingColumns+` FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var out []*entity.Setting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update reemplaza el JSON de contenido de una página.
func (r *SettingRepo) Update(setting *entity.Setting) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE settings SET value = $2, updated_at = $3 WHERE id = $1`,
		setting.ID, setting.Value, setting.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update setting: %w", err)
	}
	return nil
}
