package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
)

type reviewRepository struct {
	storage *Storage
}

const reviewColumns = `id, booking_id, client_id, freelancer_id, rating, comment, created_at, updated_at`

func scanReview(row pgx.Row) (*model.Review, error) {
	var rv model.Review
	if err := row.Scan(&rv.ID, &rv.BookingID, &rv.ClientID, &rv.FreelancerID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		return nil, err
	}
	return &rv, nil
}

// Create inserts the review while holding a share lock on its booking, so the
// booking status it was checked against cannot change underneath.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	const (
		lockBooking  = `SELECT status FROM bookings WHERE id=$1 FOR SHARE`
		insertReview = `INSERT INTO reviews (id, booking_id, client_id, freelancer_id, rating, comment)
                        VALUES ($1, $2, $3, $4, $5, $6)
                        RETURNING ` + reviewColumns
	)

	var created *model.Review
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var status string
		if err := tx.QueryRow(ctx, lockBooking, review.BookingID).Scan(&status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.New(domainErrors.ErrNotFound, "Booking not found")
			}
			return err
		}
		switch model.BookingStatus(status) {
		case model.BookingStatusCompleted, model.BookingStatusPaid:
		default:
			return domainErrors.New(domainErrors.ErrInvalidState, "Review allowed only after work is completed")
		}

		rv, err := scanReview(tx.QueryRow(ctx, insertReview,
			review.ID, review.BookingID, review.ClientID, review.FreelancerID, review.Rating, review.Comment))
		if err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}
		created = rv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *reviewRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, bookingID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *reviewRepository) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.Review, error) {
	const query = `SELECT ` + reviewColumns + ` FROM reviews WHERE freelancer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, freelancerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
