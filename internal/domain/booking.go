package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Суммы в копейках.
type Booking struct {
	ID             string        `json:"id"`
	CarID          string        `json:"car_id"`
	CustomerID     string        `json:"customer_id"`
	BookingDate    time.Time     `json:"booking_date"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        time.Time     `json:"end_date"`
	TotalAmount    int64         `json:"total_amount"`
	DiscountAmount int64         `json:"discount_amount"`
	FinalAmount    int64         `json:"final_amount"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

func (b *Booking) HasStarted(now time.Time) bool {
	return !b.StartDate.After(now)
}

func (b *Booking) HasEnded(now time.Time) bool {
	return !b.EndDate.After(now)
}

type CreateBookingInput struct {
	CustomerID  string
	CarID       string
	BookingDate time.Time
	StartDate   time.Time
	EndDate     time.Time
}

// OperationResult: отказ возвращается данными, а не ошибкой.
// Err хранит причину отказа для транспортного слоя.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func Succeeded(msg string) OperationResult {
	return OperationResult{Success: true, Message: msg}
}

func Failed(err error, msg string) OperationResult {
	return OperationResult{Success: false, Message: msg, Err: err}
}
