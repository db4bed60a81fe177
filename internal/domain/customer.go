package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

type Customer struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          string    `json:"phone"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func (c *Customer) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// CanAccessBooking: владелец брони или администратор.
func (c *Customer) CanAccessBooking(b *Booking) bool {
	if c == nil || b == nil {
		return false
	}
	return c.IsAdmin() || b.CustomerID == c.ID
}

type CreateCustomerInput struct {
	Email          string
	FirstName      string
	LastName       string
	Phone          string
	Role           Role
	TelegramChatID *int64
}
