package dto

type CreateCarRequest struct {
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year" binding:"required"`
	CityID       string `json:"city_id"`
	Status       string `json:"status"`
	Transmission string `json:"transmission"`
	Seats        int    `json:"seats" binding:"required,gt=0"`
	Category     string `json:"category"`
	PricePerDay  int64  `json:"price_per_day" binding:"required,gt=0"`
}

type SetCarStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available maintenance"`
}

type CreateCustomerRequest struct {
	Email          string `json:"email" binding:"required"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

// Даты в формате RFC3339.
type CreateBookingRequest struct {
	CarID       string `json:"car_id" binding:"required,uuid"`
	BookingDate string `json:"booking_date"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
}

type ExtendBookingRequest struct {
	NewEndDate string `json:"new_end_date" binding:"required"`
}

type AddRatingRequest struct {
	BookingID string  `json:"booking_id" binding:"required,uuid"`
	Rating    int     `json:"rating" binding:"required,min=1,max=5"`
	Review    *string `json:"review"`
}
