package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/pricing"
	"github.com/stpnv0/CarRental/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	msgBookingNotFound   = "booking not found"
	msgNotAuthorized     = "you are not authorized to cancel this booking"
	msgAlreadyCancelled  = "booking is already cancelled"
	msgAlreadyStarted    = "booking has already started and cannot be cancelled"
	msgCancelled         = "booking cancelled successfully"
	msgCancelledWithFee  = "booking cancelled, cancellation fee: %s"
	msgUnexpectedFailure = "unexpected error"
)

type BookingService struct {
	bookingRepo  ports.BookingRepo
	carRepo      ports.CarRepo
	customerRepo ports.CustomerRepo
	notifier     ports.BookingNotifier
	policy       pricing.Policy
	logger       logger.Logger
	now          func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	carRepo ports.CarRepo,
	customerRepo ports.CustomerRepo,
	notifier ports.BookingNotifier,
	policy pricing.Policy,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		carRepo:      carRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		policy:       policy,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *BookingService) List(ctx context.Context, requesterID string) ([]*domain.Booking, error) {
	requester, err := s.customerRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("get requester: %w", err)
	}

	if requester.IsAdmin() {
		return s.bookingRepo.List(ctx)
	}

	return s.bookingRepo.ListByCustomer(ctx, requester.ID)
}

func (s *BookingService) Get(ctx context.Context, bookingID, requesterID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.CustomerID == requesterID {
		return booking, nil
	}

	requester, err := s.customerRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get requester: %w", err)
	}

	if !requester.CanAccessBooking(booking) {
		return nil, domain.ErrUnauthorized
	}

	return booking, nil
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	car, err := s.carRepo.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}

	if !car.IsAvailable() {
		return nil, domain.ErrCarNotAvailable
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	if pricing.CalendarDays(input.StartDate, input.EndDate) < 1 {
		return nil, domain.ErrInvalidBookingDates
	}

	history, err := s.bookingRepo.ListByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking history: %w", err)
	}

	dates := make([]time.Time, 0, len(history))
	for _, b := range history {
		dates = append(dates, b.BookingDate)
	}
	sameYear := pricing.CountInYear(dates, input.StartDate.Year())

	total := s.policy.Total(car.PricePerDay, input.StartDate, input.EndDate)
	discount := s.policy.Discount(sameYear, input.StartDate, total)

	now := s.now().UTC()
	bookingDate := input.BookingDate
	if bookingDate.IsZero() {
		bookingDate = now
	}

	booking := &domain.Booking{
		ID:             uuid.New().String(),
		CarID:          car.ID,
		CustomerID:     customer.ID,
		BookingDate:    bookingDate,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		TotalAmount:    total,
		DiscountAmount: discount,
		FinalAmount:    total - discount,
		Status:         domain.BookingStatusConfirmed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	car.Status = domain.CarStatusBooked

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("car_id", car.ID),
		logger.String("customer_id", customer.ID),
		logger.Int64("final_amount", booking.FinalAmount),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), customer, car, booking)

	return booking, nil
}

// Cancel не возвращает ошибок: любой исход, включая внутренние сбои, описывается результатом.
func (s *BookingService) Cancel(ctx context.Context, bookingID, requesterID string) (res domain.OperationResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during booking cancellation",
				logger.String("booking_id", bookingID),
				logger.Any("panic", r),
			)
			res = domain.Failed(fmt.Errorf("panic: %v", r), msgUnexpectedFailure)
		}
	}()

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return domain.Failed(domain.ErrBookingNotFound, msgBookingNotFound)
		}
		return s.unexpected(bookingID, "get booking", err)
	}

	requester, err := s.customerRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return domain.Failed(domain.ErrUnauthorized, msgNotAuthorized)
		}
		return s.unexpected(bookingID, "get requester", err)
	}

	if !requester.CanAccessBooking(booking) {
		return domain.Failed(domain.ErrUnauthorized, msgNotAuthorized)
	}

	if booking.IsCancelled() {
		return domain.Failed(domain.ErrBookingCancelled, msgAlreadyCancelled)
	}

	now := s.now()
	if booking.HasStarted(now) {
		return domain.Failed(domain.ErrBookingStarted, msgAlreadyStarted)
	}

	var (
		fee int64
		car *domain.Car
	)
	if !requester.IsAdmin() && !s.policy.InFreeCancellationWindow(booking.StartDate, now) {
		car, err = s.carRepo.GetByID(ctx, booking.CarID)
		if err != nil {
			return s.unexpected(bookingID, "get car", err)
		}
		fee = s.policy.CancellationFee(booking.StartDate.Sub(now).Hours(), car.PricePerDay)
		booking.FinalAmount = pricing.ApplyFee(booking.FinalAmount, fee)
	}

	if err = s.bookingRepo.Cancel(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrBookingCancelled) {
			return domain.Failed(domain.ErrBookingCancelled, msgAlreadyCancelled)
		}
		return s.unexpected(bookingID, "cancel booking", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("car_id", booking.CarID),
		logger.String("requester_id", requester.ID),
		logger.Int64("fee", fee),
	)

	go s.notifyOwner(context.WithoutCancel(ctx), booking, car, func(ctx context.Context, c *domain.Customer, car *domain.Car) {
		s.notifier.NotifyBookingCancelled(ctx, c, car, booking, fee)
	})

	if fee > 0 {
		return domain.Succeeded(fmt.Sprintf(msgCancelledWithFee, pricing.Format(fee)))
	}
	return domain.Succeeded(msgCancelled)
}

func (s *BookingService) unexpected(bookingID, op string, err error) domain.OperationResult {
	s.logger.Error("booking cancellation failed",
		logger.String("booking_id", bookingID),
		logger.String("op", op),
		logger.String("error", err.Error()),
	)
	return domain.Failed(err, msgUnexpectedFailure)
}

func (s *BookingService) Extend(ctx context.Context, bookingID string, newEndDate time.Time, requesterID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.IsCancelled() {
		return nil, domain.ErrBookingCancelled
	}

	if booking.CustomerID != requesterID {
		return nil, domain.ErrUnauthorized
	}

	// после окончания аренды машину уже мог освободить планировщик
	if booking.HasEnded(s.now()) {
		return nil, domain.ErrBookingFinished
	}

	if !newEndDate.After(booking.EndDate) || pricing.CalendarDays(booking.EndDate, newEndDate) < 1 {
		return nil, domain.ErrInvalidExtensionDate
	}

	car, err := s.carRepo.GetByID(ctx, booking.CarID)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}

	updated := *booking
	charge := s.policy.ExtensionCharge(car.PricePerDay, booking.EndDate, newEndDate)
	updated.EndDate = newEndDate
	updated.TotalAmount += charge
	updated.FinalAmount += charge

	if err = s.bookingRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking extended",
		logger.String("booking_id", updated.ID),
		logger.String("new_end_date", newEndDate.Format(time.RFC3339)),
		logger.Int64("charge", charge),
	)

	go s.notifyOwner(context.WithoutCancel(ctx), &updated, car, func(ctx context.Context, c *domain.Customer, car *domain.Car) {
		s.notifier.NotifyBookingExtended(ctx, c, car, &updated, charge)
	})

	return &updated, nil
}

func (s *BookingService) notifyOwner(
	ctx context.Context,
	b *domain.Booking,
	car *domain.Car,
	send func(ctx context.Context, customer *domain.Customer, car *domain.Car),
) {
	customer, err := s.customerRepo.GetByID(ctx, b.CustomerID)
	if err != nil {
		s.logger.Error("failed to get customer for notification",
			logger.String("customer_id", b.CustomerID),
		)
		return
	}

	if car == nil {
		car, err = s.carRepo.GetByID(ctx, b.CarID)
		if err != nil {
			s.logger.Error("failed to get car for notification",
				logger.String("car_id", b.CarID),
			)
			return
		}
	}

	send(ctx, customer, car)
}
