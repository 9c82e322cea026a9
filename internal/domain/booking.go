package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// IsActive reports whether the booking still occupies its vehicle's schedule.
func (s BookingStatus) IsActive() bool {
	return s == BookingPending || s == BookingApproved
}

// IsTerminal reports whether the booking reached a final state. Terminal
// bookings are kept as history and never block new bookings.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// Booking is a date-ranged rental of one vehicle by one customer. Dates are
// inclusive calendar days; TotalPrice is fixed at creation.
type Booking struct {
	ID         int64           `json:"id"`
	Reference  string          `json:"reference"`
	CustomerID int64           `json:"customer_id"`
	VehicleID  int64           `json:"vehicle_id"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     BookingStatus   `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
