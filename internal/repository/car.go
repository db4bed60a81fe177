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

const carColumns = `id, make, model, year, city_id, status, transmission, seats,
		category, price_per_day, average_rating, created_at, updated_at`

type CarRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCarRepo(db *dbpg.DB) *CarRepository {
	return &CarRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanCar(row rowScanner) (*domain.Car, error) {
	var c domain.Car
	err := row.Scan(
		&c.ID, &c.Make, &c.Model, &c.Year, &c.CityID, &c.Status, &c.Transmission, &c.Seats,
		&c.Category, &c.PricePerDay, &c.AverageRating, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CarRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (` + carColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Make, c.Model, c.Year, c.CityID, c.Status, c.Transmission, c.Seats,
		c.Category, c.PricePerDay, c.AverageRating, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert car: %w", err)
	}

	return nil
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	query := `SELECT ` + carColumns + `
			  FROM cars
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("get car: %w", err)
	}

	c, err := scanCar(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("scan car: %w", err)
	}

	return c, nil
}

func (r *CarRepository) List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	query := `SELECT ` + carColumns + `
			  FROM cars
			  WHERE ($1 = '' OR status = $1)
			    AND ($2 = '' OR city_id = $2)
			  ORDER BY make, model`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, string(filter.Status), filter.CityID)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	var res []*domain.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *CarRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars
			  SET make = $2, model = $3, year = $4, city_id = $5, status = $6, transmission = $7,
			      seats = $8, category = $9, price_per_day = $10, average_rating = $11, updated_at = $12
			  WHERE id = $1`
	c.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Make, c.Model, c.Year, c.CityID, c.Status, c.Transmission,
		c.Seats, c.Category, c.PricePerDay, c.AverageRating, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update car: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("car rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrCarNotFound
	}

	return nil
}

// ReleaseFinished возвращает в прокат машины, у которых не осталось
// действующих подтверждённых броней.
func (r *CarRepository) ReleaseFinished(ctx context.Context) ([]*domain.Car, error) {
	query := `
		UPDATE cars c
		SET status = $1, updated_at = NOW()
		WHERE c.status = $2
		  AND NOT EXISTS (
		      SELECT 1 FROM bookings b
		      WHERE b.car_id = c.id
		        AND b.status = $3
		        AND b.end_date > NOW()
		  )
		RETURNING c.id, c.make, c.model, c.year, c.city_id, c.status, c.transmission, c.seats,
		          c.category, c.price_per_day, c.average_rating, c.created_at, c.updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.CarStatusAvailable, domain.CarStatusBooked, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return nil, fmt.Errorf("release finished: %w", err)
	}
	defer rows.Close()

	var res []*domain.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}
