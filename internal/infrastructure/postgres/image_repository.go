package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
)

var _ repository.ImageRepository = (*ImageRepo)(nil)

// ImageRepo implementación de ImageRepository.
type ImageRepo struct {
	q Querier
}

func NewImageRepository(q Querier) *ImageRepo {
	return &ImageRepo{q: q}
}

const imageColumns = `id, url, alt, tag, observation, public_id, created_at, updated_at`

func scanImage(row pgx.Row) (*entity.Image, error) {
	var img entity.Image
	var alt, tag, observation, publicID *string
	err := row.Scan(&img.ID, &img.URL, &alt, &tag, &observation, &publicID, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		return nil, err
	}
	img.Alt = orEmpty(alt)
	img.Tag = orEmpty(tag)
	img.Observation = orEmpty(observation)
	img.PublicID = orEmpty(publicID)
	return &img, nil
}

// Create persiste una imagen y devuelve su ID generado.
func (r *ImageRepo) Create(image *entity.Image) error {
	query := `
		INSERT INTO images (url, alt, tag, observation, public_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		image.URL, nullIfEmpty(image.Alt), nullIfEmpty(image.Tag),
		nullIfEmpty(image.Observation), nullIfEmpty(image.PublicID),
		image.CreatedAt, image.UpdatedAt,
	).Scan(&image.ID)
	if err != nil {
		return fmt.Errorf("insert image: %w", err)
	}
	return nil
}

// GetByID obtiene una imagen por ID.
func (r *ImageRepo) GetByID(id int64) (*entity.Image, error) {
	img, err := scanImage(r.q.QueryRow(context.Background(),
		`SELECT `+imageColumns+` FROM images WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get image: %w", err)
	}
	return img, nil
}

// GetByIDs devuelve las imágenes existentes entre los ids pedidos.
func (r *ImageRepo) GetByIDs(ids []int64) ([]*entity.Image, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(`SELECT `+imageColumns+` FROM images WHERE id = ANY($1)`, ids)
}

// List lista todas las imágenes, más nuevas primero.
func (r *ImageRepo) List() ([]*entity.Image, error) {
	return r.list(`SELECT ` + imageColumns + ` FROM images ORDER BY created_at DESC`)
}

func (r *ImageRepo) list(query string, args ...any) ([]*entity.Image, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	var out []*entity.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

// Update actualiza una imagen.
func (r *ImageRepo) Update(image *entity.Image) error {
	query := `
		UPDATE images
		SET url = $2, alt = $3, tag = $4, observation = $5, public_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		image.ID, image.URL, nullIfEmpty(image.Alt), nullIfEmpty(image.Tag),
		nullIfEmpty(image.Observation), nullIfEmpty(image.PublicID), image.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update image: %w", err)
	}
	return nil
}

// Delete elimina una imagen y sus vínculos con productos.
func (r *ImageRepo) Delete(id int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM product_images WHERE image_id = $1`, id); err != nil {
		return fmt.Errorf("delete image links: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM images WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}
