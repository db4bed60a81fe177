package domain

import "time"

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "available"
	CarStatusBooked      CarStatus = "booked"
	CarStatusMaintenance CarStatus = "maintenance"
)

func (s CarStatus) Valid() bool {
	switch s {
	case CarStatusAvailable, CarStatusBooked, CarStatusMaintenance:
		return true
	}
	return false
}

type Car struct {
	ID            string    `json:"id"`
	Make          string    `json:"make"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	CityID        string    `json:"city_id"`
	Status        CarStatus `json:"status"`
	Transmission  string    `json:"transmission"`
	Seats         int       `json:"seats"`
	Category      string    `json:"category"`
	PricePerDay   int64     `json:"price_per_day"`
	AverageRating float64   `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *Car) IsAvailable() bool {
	return c.Status == CarStatusAvailable
}

type CarDetails struct {
	Car     Car         `json:"car"`
	Ratings []CarRating `json:"ratings"`
}

type CarFilter struct {
	Status CarStatus
	CityID string
}

type CreateCarInput struct {
	Make         string
	Model        string
	Year         int
	CityID       string
	Status       CarStatus
	Transmission string
	Seats        int
	Category     string
	PricePerDay  int64
}
