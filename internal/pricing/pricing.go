// Все суммы в копейках.
package pricing

import (
	"fmt"
	"math"
	"time"
)

const hoursPerDay = 24

type Policy struct {
	SeasonalMonth             time.Month
	SeasonalDiscountPercent   int
	LoyaltyDiscountPercent    int
	LoyaltyThreshold          int
	FreeCancellationWindow    time.Duration
	CancellationFeeMultiplier float64
}

func DefaultPolicy() Policy {
	return Policy{
		SeasonalMonth:             time.December,
		SeasonalDiscountPercent:   10,
		LoyaltyDiscountPercent:    5,
		LoyaltyThreshold:          5,
		FreeCancellationWindow:    48 * time.Hour,
		CancellationFeeMultiplier: 1.2,
	}
}

// Считаем календарные дни, время суток не учитывается.
func CalendarDays(from, to time.Time) int {
	to = to.In(from.Location())
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / hoursPerDay)
}

func (p Policy) Total(dailyRate int64, start, end time.Time) int64 {
	return dailyRate * int64(CalendarDays(start, end))
}

// Сезонная и накопительная скидки складываются.
func (p Policy) Discount(bookingsThisYear int, start time.Time, total int64) int64 {
	var percent int
	if start.Month() == p.SeasonalMonth {
		percent += p.SeasonalDiscountPercent
	}
	if bookingsThisYear > p.LoyaltyThreshold {
		percent += p.LoyaltyDiscountPercent
	}
	if percent == 0 {
		return 0
	}
	return int64(math.Round(float64(total) * float64(percent) / 100))
}

func (p Policy) CancellationFee(hoursUntilStart float64, dailyRate int64) int64 {
	window := p.FreeCancellationWindow.Hours()
	if hoursUntilStart >= window {
		return 0
	}
	remaining := math.Max(0, window-hoursUntilStart)
	hourly := float64(dailyRate) / hoursPerDay * p.CancellationFeeMultiplier
	return int64(math.Round(remaining * hourly))
}

func (p Policy) InFreeCancellationWindow(start, now time.Time) bool {
	return start.Sub(now) >= p.FreeCancellationWindow
}

func (p Policy) ExtensionCharge(dailyRate int64, oldEnd, newEnd time.Time) int64 {
	return dailyRate * int64(CalendarDays(oldEnd, newEnd))
}

func ApplyFee(amount, fee int64) int64 {
	if fee >= amount {
		return 0
	}
	return amount - fee
}

func CountInYear(dates []time.Time, year int) int {
	var n int
	for _, d := range dates {
		if d.Year() == year {
			n++
		}
	}
	return n
}

// 22800 -> "228.00"
func Format(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
