package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/pricing"
	"github.com/stpnv0/CarRental/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2025, time.November, 20, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookingRepo  *mocks.MockBookingRepo
	carRepo      *mocks.MockCarRepo
	customerRepo *mocks.MockCustomerRepo
	notifier     *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo:  mocks.NewMockBookingRepo(t),
		carRepo:      mocks.NewMockCarRepo(t),
		customerRepo: mocks.NewMockCustomerRepo(t),
		notifier:     mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(m.bookingRepo, m.carRepo, m.customerRepo, m.notifier, pricing.DefaultPolicy(), newTestLogger(t))
	svc.now = func() time.Time { return testNow }
	return svc, m
}

func availableCar(price int64) *domain.Car {
	return &domain.Car{ID: "c1", Make: "Toyota", Model: "Camry", Year: 2022, Status: domain.CarStatusAvailable, PricePerDay: price}
}

func customer(id string) *domain.Customer {
	return &domain.Customer{ID: id, Email: id + "@example.com", Role: domain.RoleCustomer}
}

func admin(id string) *domain.Customer {
	return &domain.Customer{ID: id, Email: id + "@example.com", Role: domain.RoleAdmin}
}

func confirmedBooking(start time.Time, final int64) *domain.Booking {
	return &domain.Booking{
		ID:          "b1",
		CarID:       "c1",
		CustomerID:  "u1",
		StartDate:   start,
		EndDate:     start.Add(72 * time.Hour),
		TotalAmount: final,
		FinalAmount: final,
		Status:      domain.BookingStatusConfirmed,
	}
}

// --- Create ---

func TestBookingService_Create_SeasonalAndLoyaltyDiscount(t *testing.T) {
	svc, m := newBookingService(t)

	car := availableCar(10000)
	cu := customer("u1")
	history := make([]*domain.Booking, 0, 6)
	for i := 0; i < 6; i++ {
		history = append(history, &domain.Booking{ID: "old", BookingDate: time.Date(2025, time.Month(i+1), 3, 0, 0, 0, 0, time.UTC)})
	}
	history = append(history, &domain.Booking{ID: "older", BookingDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)})

	start := time.Date(2025, time.December, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.December, 4, 10, 0, 0, 0, time.UTC)

	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(cu, nil)
	m.bookingRepo.EXPECT().ListByCustomer(mock.Anything, "u1").Return(history, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, cu, car, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		CustomerID: "u1",
		CarID:      "c1",
		StartDate:  start,
		EndDate:    end,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(30000), booking.TotalAmount)
	assert.Equal(t, int64(4500), booking.DiscountAmount)
	assert.Equal(t, int64(25500), booking.FinalAmount)
	assert.Equal(t, booking.TotalAmount-booking.DiscountAmount, booking.FinalAmount)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, testNow, booking.BookingDate)
	assert.Equal(t, domain.CarStatusBooked, car.Status)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_NoDiscount(t *testing.T) {
	svc, m := newBookingService(t)

	car := availableCar(5000)
	cu := customer("u1")
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(cu, nil)
	m.bookingRepo.EXPECT().ListByCustomer(mock.Anything, "u1").Return(nil, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, cu, car, mock.Anything).Return()

	bookingDate := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		CustomerID:  "u1",
		CarID:       "c1",
		BookingDate: bookingDate,
		StartDate:   start,
		EndDate:     start.Add(48 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10000), booking.TotalAmount)
	assert.Zero(t, booking.DiscountAmount)
	assert.Equal(t, int64(10000), booking.FinalAmount)
	assert.Equal(t, bookingDate, booking.BookingDate)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_CarNotAvailable(t *testing.T) {
	for _, status := range []domain.CarStatus{domain.CarStatusBooked, domain.CarStatusMaintenance} {
		t.Run(string(status), func(t *testing.T) {
			svc, m := newBookingService(t)

			car := availableCar(10000)
			car.Status = status
			m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)

			_, err := svc.Create(context.Background(), domain.CreateBookingInput{
				CustomerID: "u1",
				CarID:      "c1",
				StartDate:  testNow.Add(24 * time.Hour),
				EndDate:    testNow.Add(72 * time.Hour),
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrCarNotAvailable)
			assert.Equal(t, status, car.Status)
		})
	}
}

func TestBookingService_Create_CarNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.carRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCarNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{CustomerID: "u1", CarID: "missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
}

func TestBookingService_Create_CustomerNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(availableCar(10000), nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCustomerNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{CustomerID: "missing", CarID: "c1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestBookingService_Create_InvalidDates(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
	}{
		{"same day", testNow.Add(24 * time.Hour), testNow.Add(26 * time.Hour)},
		{"end before start", testNow.Add(72 * time.Hour), testNow.Add(24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)

			m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(availableCar(10000), nil)
			m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)

			_, err := svc.Create(context.Background(), domain.CreateBookingInput{
				CustomerID: "u1",
				CarID:      "c1",
				StartDate:  tt.start,
				EndDate:    tt.end,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidBookingDates)
		})
	}
}

func TestBookingService_Create_LostRace(t *testing.T) {
	svc, m := newBookingService(t)

	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(availableCar(10000), nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)
	m.bookingRepo.EXPECT().ListByCustomer(mock.Anything, "u1").Return(nil, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCarNotAvailable)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		CustomerID: "u1",
		CarID:      "c1",
		StartDate:  testNow.Add(24 * time.Hour),
		EndDate:    testNow.Add(72 * time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCarNotAvailable)
}

// --- List / Get ---

func TestBookingService_List_AdminSeesAll(t *testing.T) {
	svc, m := newBookingService(t)

	all := []*domain.Booking{{ID: "b1", CustomerID: "u1"}, {ID: "b2", CustomerID: "u2"}}
	m.customerRepo.EXPECT().GetByID(mock.Anything, "a1").Return(admin("a1"), nil)
	m.bookingRepo.EXPECT().List(mock.Anything).Return(all, nil)

	res, err := svc.List(context.Background(), "a1")

	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestBookingService_List_CustomerSeesOwn(t *testing.T) {
	svc, m := newBookingService(t)

	own := []*domain.Booking{{ID: "b1", CustomerID: "u1"}}
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)
	m.bookingRepo.EXPECT().ListByCustomer(mock.Anything, "u1").Return(own, nil)

	res, err := svc.List(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, own, res)
}

func TestBookingService_List_CustomerNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.customerRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrCustomerNotFound)

	_, err := svc.List(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestBookingService_Get_Owner(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(24*time.Hour), 10000)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	res, err := svc.Get(context.Background(), "b1", "u1")

	require.NoError(t, err)
	assert.Equal(t, b, res)
}

func TestBookingService_Get_Admin(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(24*time.Hour), 10000)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "a1").Return(admin("a1"), nil)

	res, err := svc.Get(context.Background(), "b1", "a1")

	require.NoError(t, err)
	assert.Equal(t, b, res)
}

func TestBookingService_Get_Unauthorized(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(testNow, 10000), nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u2").Return(customer("u2"), nil)

	_, err := svc.Get(context.Background(), "b1", "u2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Get_UnknownRequesterFailsClosed(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(testNow, 10000), nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrCustomerNotFound)

	_, err := svc.Get(context.Background(), "b1", "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Get_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Get(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

// --- Cancel ---

func TestBookingService_Cancel_FreeWindow(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(72*time.Hour), 30000)
	cu := customer("u1")
	car := availableCar(12000)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(cu, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.FinalAmount == 30000
	})).Return(nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, cu, car, b, int64(0)).Return()

	res := svc.Cancel(context.Background(), "b1", "u1")

	assert.True(t, res.Success)
	assert.Equal(t, msgCancelled, res.Message)
	assert.Equal(t, int64(30000), b.FinalAmount)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_ExactlyAtWindowIsFree(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(48*time.Hour), 30000)
	cu := customer("u1")
	car := availableCar(12000)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(cu, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, b).Return(nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, cu, car, b, int64(0)).Return()

	res := svc.Cancel(context.Background(), "b1", "u1")

	assert.True(t, res.Success)
	assert.Equal(t, int64(30000), b.FinalAmount)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_LateCancellationFee(t *testing.T) {
	svc, m := newBookingService(t)

	// 10 часов до начала, 120 в сутки -> штраф 228
	b := confirmedBooking(testNow.Add(10*time.Hour), 30000)
	cu := customer("u1")
	car := availableCar(12000)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(cu, nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil).Once()
	m.bookingRepo.EXPECT().Cancel(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.FinalAmount == 30000-22800
	})).Return(nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, cu, car, b, int64(22800)).Return()

	res := svc.Cancel(context.Background(), "b1", "u1")

	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "228.00")
	assert.Equal(t, int64(7200), b.FinalAmount)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_FeeClampsAtZero(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(10*time.Hour), 10000)
	cu := customer("u1")
	car := availableCar(12000)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(cu, nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, b).Return(nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, cu, car, b, int64(22800)).Return()

	res := svc.Cancel(context.Background(), "b1", "u1")

	assert.True(t, res.Success)
	assert.Zero(t, b.FinalAmount)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_FeeShrinksCloserToWindow(t *testing.T) {
	fees := make([]int64, 0, 2)
	for _, hours := range []time.Duration{5, 30} {
		svc, m := newBookingService(t)

		b := confirmedBooking(testNow.Add(hours*time.Hour), 100000)
		cu := customer("u1")
		car := availableCar(12000)

		m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
		m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(cu, nil)
		m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
		m.bookingRepo.EXPECT().Cancel(mock.Anything, b).Return(nil)
		m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, cu, car, b, mock.Anything).Return()

		res := svc.Cancel(context.Background(), "b1", "u1")
		require.True(t, res.Success)
		fees = append(fees, 100000-b.FinalAmount)

		time.Sleep(50 * time.Millisecond)
	}

	assert.Greater(t, fees[0], fees[1])
	assert.Positive(t, fees[1])
}

func TestBookingService_Cancel_AdminNoFee(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(10*time.Hour), 30000)
	owner := customer("u1")
	car := availableCar(12000)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "a1").Return(admin("a1"), nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, b).Return(nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, owner, car, b, int64(0)).Return()

	res := svc.Cancel(context.Background(), "b1", "a1")

	assert.True(t, res.Success)
	assert.Equal(t, int64(30000), b.FinalAmount)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	res := svc.Cancel(context.Background(), "missing", "u1")

	assert.False(t, res.Success)
	assert.Equal(t, msgBookingNotFound, res.Message)
	assert.ErrorIs(t, res.Err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(72*time.Hour), 30000)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u2").Return(customer("u2"), nil)

	res := svc.Cancel(context.Background(), "b1", "u2")

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "not authorized")
	assert.ErrorIs(t, res.Err, domain.ErrUnauthorized)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	assert.Equal(t, int64(30000), b.FinalAmount)
}

func TestBookingService_Cancel_UnknownRequester(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(testNow.Add(72*time.Hour), 30000), nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrCustomerNotFound)

	res := svc.Cancel(context.Background(), "b1", "ghost")

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "not authorized")
	assert.ErrorIs(t, res.Err, domain.ErrUnauthorized)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(10*time.Hour), 30000)
	b.Status = domain.BookingStatusCancelled
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)

	res := svc.Cancel(context.Background(), "b1", "u1")

	assert.False(t, res.Success)
	assert.Equal(t, msgAlreadyCancelled, res.Message)
	assert.ErrorIs(t, res.Err, domain.ErrBookingCancelled)
	assert.Equal(t, int64(30000), b.FinalAmount)
}

func TestBookingService_Cancel_AlreadyStarted(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(-time.Hour), 30000)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "a1").Return(admin("a1"), nil)

	res := svc.Cancel(context.Background(), "b1", "a1")

	assert.False(t, res.Success)
	assert.Equal(t, msgAlreadyStarted, res.Message)
	assert.ErrorIs(t, res.Err, domain.ErrBookingStarted)
}

func TestBookingService_Cancel_ConcurrentCancel(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(72*time.Hour), 30000)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, b).Return(domain.ErrBookingCancelled)

	res := svc.Cancel(context.Background(), "b1", "u1")

	assert.False(t, res.Success)
	assert.Equal(t, msgAlreadyCancelled, res.Message)
	assert.ErrorIs(t, res.Err, domain.ErrBookingCancelled)
}

func TestBookingService_Cancel_UnexpectedError(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(nil, errors.New("connection reset"))

	res := svc.Cancel(context.Background(), "b1", "u1")

	assert.False(t, res.Success)
	assert.Equal(t, msgUnexpectedFailure, res.Message)
	require.Error(t, res.Err)
	assert.NotErrorIs(t, res.Err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_RecoversPanic(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").RunAndReturn(
		func(context.Context, string) (*domain.Booking, error) { panic("boom") },
	)

	res := svc.Cancel(context.Background(), "b1", "u1")

	assert.False(t, res.Success)
	assert.Equal(t, msgUnexpectedFailure, res.Message)
	require.Error(t, res.Err)
	assert.NotErrorIs(t, res.Err, domain.ErrBookingNotFound)
}

// --- Extend ---

func TestBookingService_Extend_Success(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(24*time.Hour), 30000)
	b.DiscountAmount = 1000
	b.TotalAmount = 31000
	oldEnd := b.EndDate
	newEnd := oldEnd.Add(48 * time.Hour)
	car := availableCar(12000)
	cu := customer("u1")

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *domain.Booking) bool {
		return u.EndDate.Equal(newEnd) && u.TotalAmount == 31000+24000 && u.FinalAmount == 30000+24000
	})).Return(nil)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(cu, nil)
	m.notifier.EXPECT().NotifyBookingExtended(mock.Anything, cu, car, mock.Anything, int64(24000)).Return()

	updated, err := svc.Extend(context.Background(), "b1", newEnd, "u1")

	require.NoError(t, err)
	assert.Equal(t, newEnd, updated.EndDate)
	assert.Equal(t, int64(55000), updated.TotalAmount)
	assert.Equal(t, int64(54000), updated.FinalAmount)
	assert.Equal(t, int64(1000), updated.DiscountAmount)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Extend_InvalidDate(t *testing.T) {
	b := confirmedBooking(testNow.Add(24*time.Hour), 30000)

	for name, newEnd := range map[string]time.Time{
		"same end":      b.EndDate,
		"earlier":       b.EndDate.Add(-24 * time.Hour),
		"same day only": b.EndDate.Add(time.Minute),
	} {
		t.Run(name, func(t *testing.T) {
			svc, m := newBookingService(t)

			orig := *b
			m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(&orig, nil)

			_, err := svc.Extend(context.Background(), "b1", newEnd, "u1")

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidExtensionDate)
			assert.Equal(t, *b, orig)
		})
	}
}

func TestBookingService_Extend_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Extend(context.Background(), "missing", testNow, "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Extend_Cancelled(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(24*time.Hour), 30000)
	b.Status = domain.BookingStatusCancelled
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	_, err := svc.Extend(context.Background(), "b1", b.EndDate.Add(48*time.Hour), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingCancelled)
}

func TestBookingService_Extend_NotOwner(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(24*time.Hour), 30000)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	_, err := svc.Extend(context.Background(), "b1", b.EndDate.Add(48*time.Hour), "u2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Extend_EndedBooking(t *testing.T) {
	svc, m := newBookingService(t)

	// закончилась сутки назад, машина уже свободна
	b := confirmedBooking(testNow.Add(-96*time.Hour), 30000)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	_, err := svc.Extend(context.Background(), "b1", testNow.Add(72*time.Hour), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingFinished)
	assert.Equal(t, int64(30000), b.FinalAmount)
}

func TestBookingService_Extend_EndsExactlyNow(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(-72*time.Hour), 30000)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	_, err := svc.Extend(context.Background(), "b1", b.EndDate.Add(48*time.Hour), "u1")

	assert.ErrorIs(t, err, domain.ErrBookingFinished)
}

func TestBookingService_Extend_EndedBeforeUpdate(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(-48*time.Hour), 30000)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(availableCar(12000), nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(domain.ErrBookingFinished)

	_, err := svc.Extend(context.Background(), "b1", b.EndDate.Add(48*time.Hour), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingFinished)
	assert.Equal(t, int64(30000), b.FinalAmount)
}

func TestBookingService_Extend_RepoError(t *testing.T) {
	svc, m := newBookingService(t)

	b := confirmedBooking(testNow.Add(24*time.Hour), 30000)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(availableCar(12000), nil)
	m.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(domain.ErrBookingCancelled)

	_, err := svc.Extend(context.Background(), "b1", b.EndDate.Add(48*time.Hour), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingCancelled)
	assert.Equal(t, int64(30000), b.FinalAmount)
}
