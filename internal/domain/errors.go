package domain

import "errors"

var (
	ErrCarNotFound      = errors.New("car not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

var (
	ErrCarNotAvailable      = errors.New("car is not available")
	ErrUnauthorized         = errors.New("not authorized to access this booking")
	ErrInvalidBookingDates  = errors.New("end date must be at least one day after start date")
	ErrInvalidExtensionDate = errors.New("new end date must be after the current end date")
	ErrBookingCancelled     = errors.New("booking is cancelled")
	ErrBookingNotYetStarted = errors.New("booking has not started yet")
	ErrBookingStarted       = errors.New("booking has already started")
	ErrBookingFinished      = errors.New("booking has already ended")
)

var (
	ErrRatingAlreadyExists = errors.New("rating already exists for this booking")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
