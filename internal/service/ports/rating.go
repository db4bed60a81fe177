package ports

import (
	"context"

	"github.com/stpnv0/CarRental/internal/domain"
)

type RatingRepo interface {
	// Возвращает новый средний рейтинг машины
	Create(ctx context.Context, r *domain.CarRating) (float64, error)
	Exists(ctx context.Context, customerID, bookingID string) (bool, error)
	ListByCar(ctx context.Context, carID string) ([]*domain.CarRating, error)
}
