package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
)

type showcaseRepository struct {
	storage *Storage
}

const showcaseColumns = `id, freelancer_id, title, description, images, tags, created_at, updated_at`

func scanShowcase(row pgx.Row) (*model.ProjectShowcase, error) {
	var sc model.ProjectShowcase
	if err := row.Scan(&sc.ID, &sc.FreelancerID, &sc.Title, &sc.Description, &sc.Images, &sc.Tags, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (r *showcaseRepository) Create(ctx context.Context, sc *model.ProjectShowcase) (*model.ProjectShowcase, error) {
	const query = `INSERT INTO project_showcases (id, freelancer_id, title, description, images, tags)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING ` + showcaseColumns
	return scanShowcase(r.storage.pool.QueryRow(ctx, query,
		sc.ID, sc.FreelancerID, sc.Title, sc.Description, textArray(sc.Images), textArray(sc.Tags)))
}

func (r *showcaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectShowcase, error) {
	const query = `SELECT ` + showcaseColumns + ` FROM project_showcases WHERE id=$1`
	sc, err := scanShowcase(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return sc, nil
}

func (r *showcaseRepository) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.ProjectShowcase, error) {
	const query = `SELECT ` + showcaseColumns + ` FROM project_showcases WHERE freelancer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, freelancerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.ProjectShowcase, 0)
	for rows.Next() {
		sc, err := scanShowcase(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *showcaseRepository) Update(ctx context.Context, sc *model.ProjectShowcase) (*model.ProjectShowcase, error) {
	const query = `UPDATE project_showcases
                   SET title=$1, description=$2, images=$3, tags=$4, updated_at=NOW()
                   WHERE id=$5
                   RETURNING ` + showcaseColumns
	updated, err := scanShowcase(r.storage.pool.QueryRow(ctx, query,
		sc.Title, sc.Description, textArray(sc.Images), textArray(sc.Tags), sc.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *showcaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM project_showcases WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
