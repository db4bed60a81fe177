package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type carReleaser interface {
	ReleaseFinished(ctx context.Context) ([]*domain.Car, error)
}

// Scheduler периодически возвращает в прокат машины с закончившейся арендой.
type Scheduler struct {
	carService carReleaser
	interval   time.Duration
	logger     logger.Logger
}

func New(
	carService carReleaser,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		carService: carService,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	released, err := s.carService.ReleaseFinished(ctx)
	if err != nil {
		s.logger.Error("failed to release finished rentals",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, c := range released {
		s.logger.Info("car released",
			logger.String("car_id", c.ID),
			logger.String("city_id", c.CityID),
		)
	}
}
