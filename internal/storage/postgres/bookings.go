package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
)

type bookingRepository struct {
	storage *Storage
}

const bookingColumns = `id, client_id, freelancer_id, pricing_package_id, title, brief, status, created_at, updated_at`

// scanBooking refuses statuses outside the known set.
func scanBooking(row pgx.Row) (*model.Booking, error) {
	var (
		b      model.Booking
		status string
	)
	if err := row.Scan(&b.ID, &b.ClientID, &b.FreelancerID, &b.PricingPackageID, &b.Title, &b.Brief, &status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	parsed, err := model.ParseBookingStatus(status)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", b.ID, err)
	}
	b.Status = parsed
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	const query = `INSERT INTO bookings (id, client_id, freelancer_id, pricing_package_id, title, brief, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING ` + bookingColumns
	created, err := scanBooking(r.storage.pool.QueryRow(ctx, query,
		b.ID, b.ClientID, b.FreelancerID, b.PricingPackageID, b.Title, b.Brief, string(b.Status)))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1`
	b, err := scanBooking(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE client_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, clientID)
}

func (r *bookingRepository) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE freelancer_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, freelancerID)
}

func (r *bookingRepository) list(ctx context.Context, query string, userID uuid.UUID) ([]model.Booking, error) {
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus is a single conditional UPDATE: of two concurrent callers moving
// the booking out of the same status only one matches a row.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.BookingStatus) (*model.Booking, error) {
	const query = `UPDATE bookings SET status=$1, updated_at=NOW()
                   WHERE id=$2 AND status=$3
                   RETURNING ` + bookingColumns
	b, err := scanBooking(r.storage.pool.QueryRow(ctx, query, string(to), id, string(from)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrConflict
		}
		return nil, err
	}
	return b, nil
}
