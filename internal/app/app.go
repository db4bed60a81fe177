package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/CarRental/internal/config"
	"github.com/stpnv0/CarRental/internal/handler"
	"github.com/stpnv0/CarRental/internal/middleware"
	"github.com/stpnv0/CarRental/internal/notification"
	"github.com/stpnv0/CarRental/internal/repository"
	"github.com/stpnv0/CarRental/internal/router"
	"github.com/stpnv0/CarRental/internal/scheduler"
	"github.com/stpnv0/CarRental/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const appName = "CarRental"

type App struct {
	cfg       *config.Config
	log       logger.Logger
	db        *dbpg.DB
	server    *http.Server
	scheduler *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &App{cfg: cfg, log: log}

	ctx := context.Background()
	if err = a.connectDB(ctx); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = a.migrate(ctx); err != nil {
		_ = a.db.Master.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = a.wire(); err != nil {
		_ = a.db.Master.Close()
		return nil, fmt.Errorf("wire components: %w", err)
	}

	return a, nil
}

func (a *App) connectDB(ctx context.Context) error {
	pg := a.cfg.Postgres
	db, err := dbpg.New(pg.DSN(), nil, &dbpg.Options{
		MaxOpenConns: pg.MaxOpenConns,
		MaxIdleConns: pg.MaxIdleConns,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(pg.ConnMaxLifetime)

	if err = db.Master.PingContext(ctx); err != nil {
		_ = db.Master.Close()
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.Info("database connected",
		logger.String("host", pg.Host),
		logger.Int("port", pg.Port),
		logger.String("database", pg.Database),
	)

	return nil
}

func (a *App) migrate(ctx context.Context) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, a.db.Master, a.cfg.Postgres.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, a.db.Master)
	if err != nil {
		return fmt.Errorf("goose version: %w", err)
	}

	a.log.Info("migrations applied", logger.Int64("version", version))
	return nil
}

func (a *App) wire() error {
	cars := repository.NewCarRepo(a.db)
	customers := repository.NewCustomerRepo(a.db)
	bookings := repository.NewBookingRepo(a.db)
	ratings := repository.NewRatingRepo(a.db)

	notifier, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	carService := service.NewCarService(cars, ratings)
	customerService := service.NewCustomerService(customers)
	bookingService := service.NewBookingService(bookings, cars, customers, notifier, a.cfg.Pricing.Policy(), a.log)
	ratingService := service.NewRatingService(ratings, bookings, cars, customers, a.log)

	a.scheduler = scheduler.New(carService, a.cfg.Scheduler.Interval, a.log)

	engine := router.InitRouter(
		a.cfg.Gin.Mode,
		handler.NewHandler(carService, bookingService, customerService, ratingService),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	srv := a.cfg.Server
	a.server = &http.Server{
		Addr:         srv.Addr,
		Handler:      engine,
		ReadTimeout:  srv.ReadTimeout,
		WriteTimeout: srv.WriteTimeout,
		IdleTimeout:  srv.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	schedulerDone := make(chan struct{})
	go func() {
		defer close(schedulerDone)
		a.scheduler.Start(ctx)
	}()

	serverErr := make(chan error, 1)
	go func() {
		a.log.Info("http server starting", logger.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	case err := <-serverErr:
		runErr = fmt.Errorf("http server: %w", err)
		stop()
	}

	<-schedulerDone

	return errors.Join(runErr, a.shutdown())
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.WriteTimeout)
	defer cancel()

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	} else {
		a.log.Info("http server stopped")
	}

	if err := a.db.Master.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close db: %w", err))
	} else {
		a.log.Info("database connection closed")
	}

	a.log.Info("app stopped")
	return errors.Join(errs...)
}
