package ports

import (
	"context"

	"github.com/stpnv0/CarRental/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking, fee int64)
	NotifyBookingExtended(ctx context.Context, customer *domain.Customer, car *domain.Car, booking *domain.Booking, charge int64)
}
