package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
)

type profileRepository struct {
	storage *Storage
}

const profileColumns = `id, user_id, specialization, skills, experience, description, created_at, updated_at`

func scanProfile(row pgx.Row) (*model.FreelancerProfile, error) {
	var p model.FreelancerProfile
	if err := row.Scan(&p.ID, &p.UserID, &p.Specialization, &p.Skills, &p.Experience, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// textArray keeps NOT NULL array columns from receiving a nil slice.
func textArray(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func (r *profileRepository) Create(ctx context.Context, p *model.FreelancerProfile) (*model.FreelancerProfile, error) {
	const query = `INSERT INTO freelancer_profiles (id, user_id, specialization, skills, experience, description)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING ` + profileColumns
	created, err := scanProfile(r.storage.pool.QueryRow(ctx, query,
		p.ID, p.UserID, p.Specialization, textArray(p.Skills), p.Experience, p.Description))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.FreelancerProfile, error) {
	const query = `SELECT ` + profileColumns + ` FROM freelancer_profiles WHERE user_id=$1`
	p, err := scanProfile(r.storage.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *model.FreelancerProfile) (*model.FreelancerProfile, error) {
	const query = `UPDATE freelancer_profiles
                   SET specialization=$1, skills=$2, experience=$3, description=$4, updated_at=NOW()
                   WHERE user_id=$5
                   RETURNING ` + profileColumns
	updated, err := scanProfile(r.storage.pool.QueryRow(ctx, query,
		p.Specialization, textArray(p.Skills), p.Experience, p.Description, p.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM freelancer_profiles WHERE user_id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
