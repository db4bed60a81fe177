package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/service/ports"
)

const minCarYear = 1900

type CarService struct {
	repo       ports.CarRepo
	ratingRepo ports.RatingRepo
}

func NewCarService(repo ports.CarRepo, ratingRepo ports.RatingRepo) *CarService {
	return &CarService{
		repo:       repo,
		ratingRepo: ratingRepo,
	}
}

func (s *CarService) CreateCar(ctx context.Context, input domain.CreateCarInput) (*domain.Car, error) {
	if input.Make == "" || input.Model == "" {
		return nil, fmt.Errorf("%w: make and model are required", domain.ErrValidation)
	}
	if input.Year <= minCarYear {
		return nil, fmt.Errorf("%w: year must be after %d", domain.ErrValidation, minCarYear)
	}
	if input.Seats <= 0 {
		return nil, fmt.Errorf("%w: seats must be positive", domain.ErrValidation)
	}
	if input.PricePerDay <= 0 {
		return nil, fmt.Errorf("%w: price_per_day must be positive", domain.ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = domain.CarStatusAvailable
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown car status %q", domain.ErrValidation, status)
	}

	now := time.Now().UTC()
	car := &domain.Car{
		ID:           uuid.New().String(),
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		CityID:       input.CityID,
		Status:       status,
		Transmission: input.Transmission,
		Seats:        input.Seats,
		Category:     input.Category,
		PricePerDay:  input.PricePerDay,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}

	return car, nil
}

func (s *CarService) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CarService) GetDetails(ctx context.Context, id string) (*domain.CarDetails, error) {
	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratingRepo.ListByCar(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	details := &domain.CarDetails{
		Car:     *car,
		Ratings: make([]domain.CarRating, len(ratings)),
	}
	for i, r := range ratings {
		details.Ratings[i] = *r
	}

	return details, nil
}

func (s *CarService) List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown car status %q", domain.ErrValidation, filter.Status)
	}
	return s.repo.List(ctx, filter)
}

// Статус booked выставляют и снимают только брони и планировщик.
func (s *CarService) SetStatus(ctx context.Context, id string, status domain.CarStatus) (*domain.Car, error) {
	if status != domain.CarStatusAvailable && status != domain.CarStatusMaintenance {
		return nil, fmt.Errorf("%w: status must be available or maintenance", domain.ErrValidation)
	}

	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if car.Status == domain.CarStatusBooked {
		return nil, domain.ErrCarNotAvailable
	}
	if car.Status == status {
		return car, nil
	}

	car.Status = status
	if err = s.repo.Update(ctx, car); err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}

	return car, nil
}

func (s *CarService) ReleaseFinished(ctx context.Context) ([]*domain.Car, error) {
	released, err := s.repo.ReleaseFinished(ctx)
	if err != nil {
		return nil, fmt.Errorf("release finished: %w", err)
	}
	return released, nil
}
