package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RatingService struct {
	ratingRepo   ports.RatingRepo
	bookingRepo  ports.BookingRepo
	carRepo      ports.CarRepo
	customerRepo ports.CustomerRepo
	logger       logger.Logger
	now          func() time.Time
}

func NewRatingService(
	ratingRepo ports.RatingRepo,
	bookingRepo ports.BookingRepo,
	carRepo ports.CarRepo,
	customerRepo ports.CustomerRepo,
	logger logger.Logger,
) *RatingService {
	return &RatingService{
		ratingRepo:   ratingRepo,
		bookingRepo:  bookingRepo,
		carRepo:      carRepo,
		customerRepo: customerRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *RatingService) Add(ctx context.Context, input domain.AddRatingInput) (*domain.CarRating, error) {
	if input.Rating < domain.MinRating || input.Rating > domain.MaxRating {
		return nil, domain.ErrInvalidRating
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	// бронь должна принадлежать клиенту и относиться к этой машине
	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.CustomerID != customer.ID || booking.CarID != input.CarID {
		return nil, domain.ErrBookingNotFound
	}

	now := s.now().UTC()
	if !booking.HasStarted(now) {
		return nil, domain.ErrBookingNotYetStarted
	}

	if booking.IsCancelled() {
		return nil, domain.ErrBookingCancelled
	}

	car, err := s.carRepo.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}

	exists, err := s.ratingRepo.Exists(ctx, customer.ID, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("check rating: %w", err)
	}
	if exists {
		return nil, domain.ErrRatingAlreadyExists
	}

	rating := &domain.CarRating{
		ID:         uuid.New().String(),
		CarID:      car.ID,
		CustomerID: customer.ID,
		BookingID:  booking.ID,
		Rating:     input.Rating,
		Review:     input.Review,
		CreatedAt:  now,
	}

	avg, err := s.ratingRepo.Create(ctx, rating)
	if err != nil {
		if errors.Is(err, domain.ErrRatingAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create rating: %w", err)
	}

	s.logger.Info("car rated",
		logger.String("car_id", car.ID),
		logger.String("booking_id", booking.ID),
		logger.Int("rating", rating.Rating),
		logger.Any("average_rating", avg),
	)

	return rating, nil
}
