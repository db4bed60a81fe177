package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ratingMocks struct {
	ratingRepo   *mocks.MockRatingRepo
	bookingRepo  *mocks.MockBookingRepo
	carRepo      *mocks.MockCarRepo
	customerRepo *mocks.MockCustomerRepo
}

func newRatingService(t *testing.T) (*RatingService, ratingMocks) {
	t.Helper()
	m := ratingMocks{
		ratingRepo:   mocks.NewMockRatingRepo(t),
		bookingRepo:  mocks.NewMockBookingRepo(t),
		carRepo:      mocks.NewMockCarRepo(t),
		customerRepo: mocks.NewMockCustomerRepo(t),
	}
	svc := NewRatingService(m.ratingRepo, m.bookingRepo, m.carRepo, m.customerRepo, newTestLogger(t))
	svc.now = func() time.Time { return testNow }
	return svc, m
}

func startedBooking() *domain.Booking {
	return confirmedBooking(testNow.Add(-24*time.Hour), 30000)
}

func ratingInput(score int) domain.AddRatingInput {
	review := "clean car"
	return domain.AddRatingInput{
		CustomerID: "u1",
		BookingID:  "b1",
		CarID:      "c1",
		Rating:     score,
		Review:     &review,
	}
}

func TestRatingService_Add_Success(t *testing.T) {
	svc, m := newRatingService(t)

	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(startedBooking(), nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(availableCar(10000), nil)
	m.ratingRepo.EXPECT().Exists(mock.Anything, "u1", "b1").Return(false, nil)
	m.ratingRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.CarRating) bool {
		return r.CarID == "c1" && r.CustomerID == "u1" && r.BookingID == "b1" && r.Rating == 4
	})).Return(4.5, nil)

	rating, err := svc.Add(context.Background(), ratingInput(4))

	require.NoError(t, err)
	assert.NotEmpty(t, rating.ID)
	assert.Equal(t, 4, rating.Rating)
	require.NotNil(t, rating.Review)
	assert.Equal(t, "clean car", *rating.Review)
	assert.Equal(t, testNow, rating.CreatedAt)
}

func TestRatingService_Add_StartsNowIsAllowed(t *testing.T) {
	svc, m := newRatingService(t)

	b := confirmedBooking(testNow, 30000)
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(availableCar(10000), nil)
	m.ratingRepo.EXPECT().Exists(mock.Anything, "u1", "b1").Return(false, nil)
	m.ratingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(5.0, nil)

	_, err := svc.Add(context.Background(), ratingInput(5))

	require.NoError(t, err)
}

func TestRatingService_Add_InvalidRating(t *testing.T) {
	for _, score := range []int{0, 6, -1} {
		svc, _ := newRatingService(t)

		_, err := svc.Add(context.Background(), ratingInput(score))

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	}
}

func TestRatingService_Add_CustomerNotFound(t *testing.T) {
	svc, m := newRatingService(t)

	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrCustomerNotFound)

	_, err := svc.Add(context.Background(), ratingInput(4))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestRatingService_Add_BookingNotFound(t *testing.T) {
	otherOwner := startedBooking()
	otherOwner.CustomerID = "u2"
	otherCar := startedBooking()
	otherCar.CarID = "c2"

	tests := []struct {
		name    string
		booking *domain.Booking
		err     error
	}{
		{"missing", nil, domain.ErrBookingNotFound},
		{"not owned", otherOwner, nil},
		{"other car", otherCar, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRatingService(t)

			m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)
			m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(tt.booking, tt.err)

			_, err := svc.Add(context.Background(), ratingInput(4))

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrBookingNotFound)
		})
	}
}

func TestRatingService_Add_NotYetStarted(t *testing.T) {
	svc, m := newRatingService(t)

	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(testNow.Add(time.Hour), 30000), nil)

	_, err := svc.Add(context.Background(), ratingInput(4))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotYetStarted)
}

func TestRatingService_Add_Cancelled(t *testing.T) {
	svc, m := newRatingService(t)

	b := startedBooking()
	b.Status = domain.BookingStatusCancelled
	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	_, err := svc.Add(context.Background(), ratingInput(4))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingCancelled)
}

func TestRatingService_Add_CarNotFound(t *testing.T) {
	svc, m := newRatingService(t)

	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(startedBooking(), nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrCarNotFound)

	_, err := svc.Add(context.Background(), ratingInput(4))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
}

func TestRatingService_Add_AlreadyRated(t *testing.T) {
	svc, m := newRatingService(t)

	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(startedBooking(), nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(availableCar(10000), nil)
	m.ratingRepo.EXPECT().Exists(mock.Anything, "u1", "b1").Return(true, nil)

	_, err := svc.Add(context.Background(), ratingInput(4))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRatingAlreadyExists)
}

func TestRatingService_Add_DuplicateOnInsert(t *testing.T) {
	svc, m := newRatingService(t)

	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(startedBooking(), nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(availableCar(10000), nil)
	m.ratingRepo.EXPECT().Exists(mock.Anything, "u1", "b1").Return(false, nil)
	m.ratingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(0, domain.ErrRatingAlreadyExists)

	_, err := svc.Add(context.Background(), ratingInput(4))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRatingAlreadyExists)
}

func TestRatingService_Add_RepoError(t *testing.T) {
	svc, m := newRatingService(t)

	m.customerRepo.EXPECT().GetByID(mock.Anything, "u1").Return(customer("u1"), nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(startedBooking(), nil)
	m.carRepo.EXPECT().GetByID(mock.Anything, "c1").Return(availableCar(10000), nil)
	m.ratingRepo.EXPECT().Exists(mock.Anything, "u1", "b1").Return(false, errors.New("db down"))

	_, err := svc.Add(context.Background(), ratingInput(4))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "check rating")
}
