package dto

import (
	"time"

	"github.com/stpnv0/CarRental/internal/domain"
)

type CarResponse struct {
	ID            string  `json:"id"`
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	CityID        string  `json:"city_id"`
	Status        string  `json:"status"`
	Transmission  string  `json:"transmission"`
	Seats         int     `json:"seats"`
	Category      string  `json:"category"`
	PricePerDay   int64   `json:"price_per_day"`
	AverageRating float64 `json:"average_rating"`
}

type CarDetailsResponse struct {
	Car     CarResponse      `json:"car"`
	Ratings []RatingResponse `json:"ratings"`
}

type RatingResponse struct {
	ID         string  `json:"id"`
	CarID      string  `json:"car_id"`
	CustomerID string  `json:"customer_id"`
	BookingID  string  `json:"booking_id"`
	Rating     int     `json:"rating"`
	Review     *string `json:"review,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type BookingResponse struct {
	ID             string `json:"id"`
	CarID          string `json:"car_id"`
	CustomerID     string `json:"customer_id"`
	BookingDate    string `json:"booking_date"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	TotalAmount    int64  `json:"total_amount"`
	DiscountAmount int64  `json:"discount_amount"`
	FinalAmount    int64  `json:"final_amount"`
	Status         string `json:"status"`
}

type CustomerResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone,omitempty"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCarResponse(c *domain.Car) CarResponse {
	return CarResponse{
		ID:            c.ID,
		Make:          c.Make,
		Model:         c.Model,
		Year:          c.Year,
		CityID:        c.CityID,
		Status:        string(c.Status),
		Transmission:  c.Transmission,
		Seats:         c.Seats,
		Category:      c.Category,
		PricePerDay:   c.PricePerDay,
		AverageRating: c.AverageRating,
	}
}

func ToCarDetailsResponse(d *domain.CarDetails) CarDetailsResponse {
	ratings := make([]RatingResponse, 0, len(d.Ratings))
	for _, r := range d.Ratings {
		ratings = append(ratings, ToRatingResponse(&r))
	}

	return CarDetailsResponse{
		Car:     ToCarResponse(&d.Car),
		Ratings: ratings,
	}
}

func ToRatingResponse(r *domain.CarRating) RatingResponse {
	return RatingResponse{
		ID:         r.ID,
		CarID:      r.CarID,
		CustomerID: r.CustomerID,
		BookingID:  r.BookingID,
		Rating:     r.Rating,
		Review:     r.Review,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		CarID:          b.CarID,
		CustomerID:     b.CustomerID,
		BookingDate:    b.BookingDate.Format(time.RFC3339),
		StartDate:      b.StartDate.Format(time.RFC3339),
		EndDate:        b.EndDate.Format(time.RFC3339),
		TotalAmount:    b.TotalAmount,
		DiscountAmount: b.DiscountAmount,
		FinalAmount:    b.FinalAmount,
		Status:         string(b.Status),
	}
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Email:          c.Email,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Phone:          c.Phone,
		Role:           string(c.Role),
		TelegramChatID: c.TelegramChatID,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}

func ToResultResponse(r domain.OperationResult) ResultResponse {
	return ResultResponse{Success: r.Success, Message: r.Message}
}
