package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
)

type pricingRepository struct {
	storage *Storage
}

const pricingColumns = `id, freelancer_id, title, description, price, delivery_days, created_at, updated_at`

func scanPricing(row pgx.Row) (*model.PricingPackage, error) {
	var p model.PricingPackage
	if err := row.Scan(&p.ID, &p.FreelancerID, &p.Title, &p.Description, &p.Price, &p.DeliveryDays, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pricingRepository) Create(ctx context.Context, p *model.PricingPackage) (*model.PricingPackage, error) {
	const query = `INSERT INTO pricing_packages (id, freelancer_id, title, description, price, delivery_days)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING ` + pricingColumns
	created, err := scanPricing(r.storage.pool.QueryRow(ctx, query,
		p.ID, p.FreelancerID, p.Title, p.Description, p.Price, p.DeliveryDays))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

func (r *pricingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PricingPackage, error) {
	const query = `SELECT ` + pricingColumns + ` FROM pricing_packages WHERE id=$1`
	p, err := scanPricing(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *pricingRepository) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.PricingPackage, error) {
	const query = `SELECT ` + pricingColumns + ` FROM pricing_packages WHERE freelancer_id=$1 ORDER BY price, title`
	rows, err := r.storage.pool.Query(ctx, query, freelancerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.PricingPackage, 0)
	for rows.Next() {
		p, err := scanPricing(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *pricingRepository) Update(ctx context.Context, p *model.PricingPackage) (*model.PricingPackage, error) {
	const query = `UPDATE pricing_packages
                   SET title=$1, description=$2, price=$3, delivery_days=$4, updated_at=NOW()
                   WHERE id=$5
                   RETURNING ` + pricingColumns
	updated, err := scanPricing(r.storage.pool.QueryRow(ctx, query, p.Title, p.Description, p.Price, p.DeliveryDays, p.ID))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, domainErrors.ErrNotFound
		case isUniqueViolation(err):
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return updated, nil
}

func (r *pricingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM pricing_packages WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
