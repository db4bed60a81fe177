package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type CarRating struct {
	ID         string    `json:"id"`
	CarID      string    `json:"car_id"`
	CustomerID string    `json:"customer_id"`
	BookingID  string    `json:"booking_id"`
	Rating     int       `json:"rating"`
	Review     *string   `json:"review,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type AddRatingInput struct {
	CustomerID string
	BookingID  string
	CarID      string
	Rating     int
	Review     *string
}

func AverageRating(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum int
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}
