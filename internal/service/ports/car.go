package ports

import (
	"context"

	"github.com/stpnv0/CarRental/internal/domain"
)

type CarRepo interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	ReleaseFinished(ctx context.Context) ([]*domain.Car, error)
}
