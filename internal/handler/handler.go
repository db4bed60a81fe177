package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Идентификатор вызывающего клиента.
const CustomerIDHeader = "X-Customer-ID"

type CarSvc interface {
	CreateCar(ctx context.Context, input domain.CreateCarInput) (*domain.Car, error)
	GetDetails(ctx context.Context, id string) (*domain.CarDetails, error)
	List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	SetStatus(ctx context.Context, id string, status domain.CarStatus) (*domain.Car, error)
}

type BookingSvc interface {
	List(ctx context.Context, requesterID string) ([]*domain.Booking, error)
	Get(ctx context.Context, bookingID, requesterID string) (*domain.Booking, error)
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, requesterID string) domain.OperationResult
	Extend(ctx context.Context, bookingID string, newEndDate time.Time, requesterID string) (*domain.Booking, error)
}

type CustomerSvc interface {
	Create(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}

type RatingSvc interface {
	Add(ctx context.Context, input domain.AddRatingInput) (*domain.CarRating, error)
}

type Handler struct {
	carService      CarSvc
	bookingService  BookingSvc
	customerService CustomerSvc
	ratingService   RatingSvc
}

func NewHandler(carService CarSvc, bookingService BookingSvc, customerService CustomerSvc, ratingService RatingSvc) *Handler {
	return &Handler{
		carService:      carService,
		bookingService:  bookingService,
		customerService: customerService,
		ratingService:   ratingService,
	}
}

// Cars

func (h *Handler) CreateCar(c *ginext.Context) {
	var req dto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateCarInput{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		CityID:       req.CityID,
		Status:       domain.CarStatus(req.Status),
		Transmission: req.Transmission,
		Seats:        req.Seats,
		Category:     req.Category,
		PricePerDay:  req.PricePerDay,
	}

	car, err := h.carService.CreateCar(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCarResponse(car))
}

func (h *Handler) GetCar(c *ginext.Context) {
	id, ok := pathID(c, "invalid car id")
	if !ok {
		return
	}

	details, err := h.carService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCarDetailsResponse(details))
}

func (h *Handler) ListCars(c *ginext.Context) {
	filter := domain.CarFilter{
		Status: domain.CarStatus(c.Query("status")),
		CityID: c.Query("city_id"),
	}

	cars, err := h.carService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CarResponse, 0, len(cars))
	for _, car := range cars {
		resp = append(resp, dto.ToCarResponse(car))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetCarStatus(c *ginext.Context) {
	id, ok := pathID(c, "invalid car id")
	if !ok {
		return
	}

	var req dto.SetCarStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	car, err := h.carService.SetStatus(c.Request.Context(), id, domain.CarStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCarResponse(car))
}

func (h *Handler) RateCar(c *ginext.Context) {
	carID, ok := pathID(c, "invalid car id")
	if !ok {
		return
	}
	customerID, ok := requesterID(c)
	if !ok {
		return
	}

	var req dto.AddRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rating, err := h.ratingService.Add(c.Request.Context(), domain.AddRatingInput{
		CustomerID: customerID,
		BookingID:  req.BookingID,
		CarID:      carID,
		Rating:     req.Rating,
		Review:     req.Review,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRatingResponse(rating))
}

// Bookings

func (h *Handler) ListBookings(c *ginext.Context) {
	customerID, ok := requesterID(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.List(c.Request.Context(), customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "invalid booking id")
	if !ok {
		return
	}
	customerID, ok := requesterID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id, customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	customerID, ok := requesterID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date format, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date format, expected RFC3339"})
		return
	}
	var bookingDate time.Time
	if req.BookingDate != "" {
		if bookingDate, err = time.Parse(time.RFC3339, req.BookingDate); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking_date format, expected RFC3339"})
			return
		}
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		CustomerID:  customerID,
		CarID:       req.CarID,
		BookingDate: bookingDate,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "invalid booking id")
	if !ok {
		return
	}
	customerID, ok := requesterID(c)
	if !ok {
		return
	}

	res := h.bookingService.Cancel(c.Request.Context(), id, customerID)
	if !res.Success {
		c.Set("error", res.Message)
		c.JSON(statusFor(res.Err), dto.ToResultResponse(res))
		return
	}

	c.JSON(http.StatusOK, dto.ToResultResponse(res))
}

func (h *Handler) ExtendBooking(c *ginext.Context) {
	id, ok := pathID(c, "invalid booking id")
	if !ok {
		return
	}
	customerID, ok := requesterID(c)
	if !ok {
		return
	}

	var req dto.ExtendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	newEnd, err := time.Parse(time.RFC3339, req.NewEndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid new_end_date format, expected RFC3339"})
		return
	}

	booking, err := h.bookingService.Extend(c.Request.Context(), id, newEnd, customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Customers

func (h *Handler) CreateCustomer(c *ginext.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateCustomerInput{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Role:           domain.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
	}

	customer, err := h.customerService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

func (h *Handler) GetCustomer(c *ginext.Context) {
	id, ok := pathID(c, "invalid customer id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *Handler) ListCustomers(c *ginext.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CustomerResponse, 0, len(customers))
	for _, cu := range customers {
		resp = append(resp, dto.ToCustomerResponse(cu))
	}

	c.JSON(http.StatusOK, resp)
}

func pathID(c *ginext.Context, msg string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func requesterID(c *ginext.Context) (string, bool) {
	id := c.GetHeader(CustomerIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing or invalid " + CustomerIDHeader + " header"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCarNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	case errors.Is(err, domain.ErrCarNotAvailable),
		errors.Is(err, domain.ErrBookingCancelled),
		errors.Is(err, domain.ErrBookingStarted),
		errors.Is(err, domain.ErrBookingFinished),
		errors.Is(err, domain.ErrBookingNotYetStarted),
		errors.Is(err, domain.ErrRatingAlreadyExists),
		errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidBookingDates),
		errors.Is(err, domain.ErrInvalidExtensionDate),
		errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
