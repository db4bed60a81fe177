package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, car_id, customer_id, booking_date, start_date, end_date,
		total_amount, discount_amount, final_amount, status, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.CarID, &b.CustomerID, &b.BookingDate, &b.StartDate, &b.EndDate,
		&b.TotalAmount, &b.DiscountAmount, &b.FinalAmount, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем машину и проверяем, что она всё ещё свободна
	var status domain.CarStatus
	carQuery := `SELECT status FROM cars WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, carQuery, b.CarID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCarNotFound
		}
		return fmt.Errorf("lock car: %w", err)
	}

	if status != domain.CarStatusAvailable {
		return domain.ErrCarNotAvailable
	}

	updateCar := `UPDATE cars SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateCar, b.CarID, domain.CarStatusBooked, b.CreatedAt); err != nil {
		return fmt.Errorf("mark car booked: %w", err)
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.CarID, b.CustomerID, b.BookingDate, b.StartDate, b.EndDate,
		b.TotalAmount, b.DiscountAmount, b.FinalAmount, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  ORDER BY start_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE customer_id = $1
			  ORDER BY start_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by customer: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	// Продлевать можно только подтверждённую и ещё не закончившуюся бронь
	query := `UPDATE bookings
			  SET end_date = $2, total_amount = $3, discount_amount = $4, final_amount = $5, updated_at = $6
			  WHERE id = $1 AND status = $7 AND end_date > $6`
	now := time.Now().UTC()
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.EndDate, b.TotalAmount, b.DiscountAmount, b.FinalAmount, now,
		domain.BookingStatusConfirmed,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return r.notUpdatableReason(ctx, b.ID)
	}

	b.UpdatedAt = now
	return nil
}

// Почему бронь не обновилась
func (r *BookingRepository) notUpdatableReason(ctx context.Context, id string) error {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}

	var status domain.BookingStatus
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("scan booking status: %w", err)
	}

	if status == domain.BookingStatusCancelled {
		return domain.ErrBookingCancelled
	}
	return domain.ErrBookingFinished
}

func (r *BookingRepository) Cancel(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	query := `UPDATE bookings
			  SET status = $2, final_amount = $3, updated_at = $4
			  WHERE id = $1 AND status = $5`
	res, err := tx.ExecContext(
		ctx, query,
		b.ID, domain.BookingStatusCancelled, b.FinalAmount, now, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingCancelled
	}

	releaseCar := `UPDATE cars SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, releaseCar, b.CarID, domain.CarStatusAvailable, now); err != nil {
		return fmt.Errorf("release car: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	b.Status = domain.BookingStatusCancelled
	b.UpdatedAt = now

	return nil
}
