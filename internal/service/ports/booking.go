package ports

import (
	"context"

	"github.com/stpnv0/CarRental/internal/domain"
)

type BookingRepo interface {
	// Если машину уже заняли, возвращает domain.ErrCarNotAvailable
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	// Для отменённой или закончившейся брони возвращает ErrBookingCancelled или ErrBookingFinished
	Update(ctx context.Context, b *domain.Booking) error
	Cancel(ctx context.Context, b *domain.Booking) error
}
