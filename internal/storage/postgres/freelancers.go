package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
)

type freelancerDirectory struct {
	storage *Storage
}

// The rating aggregate is computed once per freelancer and joined to the profile.
const directorySelect = `SELECT p.id, p.user_id, p.specialization, p.skills, p.experience, p.description, p.created_at, p.updated_at,
       u.name, u.email, u.phone, u.bio,
       COALESCE(r.avg_rating, 0), COALESCE(r.review_count, 0)
  FROM freelancer_profiles p
  JOIN users u ON u.id = p.user_id
  LEFT JOIN (
       SELECT freelancer_id, ROUND(AVG(rating)::numeric, 1)::float8 AS avg_rating, COUNT(*) AS review_count
         FROM reviews
        GROUP BY freelancer_id
  ) r ON r.freelancer_id = p.user_id`

const directoryOrder = ` ORDER BY COALESCE(r.avg_rating, 0) DESC, COALESCE(r.review_count, 0) DESC, p.created_at DESC`

func scanSummary(row pgx.Row) (*model.FreelancerSummary, error) {
	var s model.FreelancerSummary
	p := &s.Profile
	if err := row.Scan(&p.ID, &p.UserID, &p.Specialization, &p.Skills, &p.Experience, &p.Description, &p.CreatedAt, &p.UpdatedAt,
		&s.Name, &s.Email, &s.Phone, &s.Bio, &s.AvgRating, &s.ReviewCount); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *freelancerDirectory) Search(ctx context.Context, filter model.FreelancerFilter) ([]model.FreelancerSummary, error) {
	where, args := directoryWhere(filter)
	rows, err := r.storage.pool.Query(ctx, directorySelect+where+directoryOrder, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.FreelancerSummary, 0)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *freelancerDirectory) Summary(ctx context.Context, userID uuid.UUID) (*model.FreelancerSummary, error) {
	s, err := scanSummary(r.storage.pool.QueryRow(ctx, directorySelect+` WHERE p.user_id=$1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// directoryWhere renders the filter as a WHERE clause. Every "?" in a
// condition is bound to that condition's single argument.
func directoryWhere(f model.FreelancerFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(args))))
	}

	if len(f.Skills) > 0 {
		lowered := make([]string, 0, len(f.Skills))
		for _, skill := range f.Skills {
			lowered = append(lowered, strings.ToLower(skill))
		}
		add(`EXISTS (SELECT 1 FROM unnest(p.skills) AS skill WHERE lower(skill) = ANY(?))`, lowered)
	}
	if f.MinExperience != nil {
		add(`p.experience >= ?`, *f.MinExperience)
	}
	if f.MaxExperience != nil {
		add(`p.experience <= ?`, *f.MaxExperience)
	}
	if f.Specialization != "" {
		add(`p.specialization ILIKE ?`, containsPattern(f.Specialization))
	}
	if f.Search != "" {
		add(`(u.name ILIKE ? OR p.specialization ILIKE ? OR p.description ILIKE ?
              OR EXISTS (SELECT 1 FROM unnest(p.skills) AS skill WHERE skill ILIKE ?))`, containsPattern(f.Search))
	}
	if f.MinRating != nil {
		add(`COALESCE(r.avg_rating, 0) >= ?`, *f.MinRating)
	}
	if f.MaxRating != nil {
		add(`COALESCE(r.avg_rating, 0) <= ?`, *f.MaxRating)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term anywhere, literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
