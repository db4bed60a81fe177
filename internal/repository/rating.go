package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RatingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRatingRepo(db *dbpg.DB) *RatingRepository {
	return &RatingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *RatingRepository) Create(ctx context.Context, cr *domain.CarRating) (float64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Сериализуем пересчёт среднего по машине
	var carID string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM cars WHERE id = $1 FOR UPDATE`, cr.CarID).Scan(&carID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrCarNotFound
		}
		return 0, fmt.Errorf("lock car: %w", err)
	}

	insert := `INSERT INTO car_ratings (id, car_id, customer_id, booking_id, rating, review, created_at)
			   VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, insert,
		cr.ID, cr.CarID, cr.CustomerID, cr.BookingID, cr.Rating, cr.Review, cr.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrRatingAlreadyExists
		}
		return 0, fmt.Errorf("insert rating: %w", err)
	}

	rows, err := tx.QueryContext(ctx, `SELECT rating FROM car_ratings WHERE car_id = $1`, cr.CarID)
	if err != nil {
		return 0, fmt.Errorf("select ratings: %w", err)
	}

	var scores []int
	for rows.Next() {
		var s int
		if err = rows.Scan(&s); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan rating: %w", err)
		}
		scores = append(scores, s)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return 0, fmt.Errorf("iterate ratings: %w", err)
	}
	rows.Close()

	avg := domain.AverageRating(scores)
	updateCar := `UPDATE cars SET average_rating = $2, updated_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateCar, cr.CarID, avg, cr.CreatedAt); err != nil {
		return 0, fmt.Errorf("update average rating: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return avg, nil
}

func (r *RatingRepository) Exists(ctx context.Context, customerID, bookingID string) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM car_ratings WHERE customer_id = $1 AND booking_id = $2
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, customerID, bookingID)
	if err != nil {
		return false, fmt.Errorf("check rating: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan rating exists: %w", err)
	}

	return exists, nil
}

func (r *RatingRepository) ListByCar(ctx context.Context, carID string) ([]*domain.CarRating, error) {
	query := `SELECT id, car_id, customer_id, booking_id, rating, review, created_at
			  FROM car_ratings
			  WHERE car_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, carID)
	if err != nil {
		return nil, fmt.Errorf("list ratings by car: %w", err)
	}
	defer rows.Close()

	var res []*domain.CarRating
	for rows.Next() {
		var cr domain.CarRating
		if err = rows.Scan(
			&cr.ID, &cr.CarID, &cr.CustomerID, &cr.BookingID, &cr.Rating, &cr.Review, &cr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		res = append(res, &cr)
	}

	return res, rows.Err()
}
