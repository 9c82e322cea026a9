package booking

import (
	"time"

	"vehiclerental/internal/domain"
)

type CreateBookingRequest struct {
	VehicleID int64  `json:"vehicle_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// BookingResponse is the wire shape of a booking. Price is a fixed 2-decimal
// string, never a binary float; dates are ISO calendar dates.
type BookingResponse struct {
	ID         int64  `json:"id"`
	Reference  string `json:"reference"`
	Status     string `json:"status"`
	TotalPrice string `json:"total_price"`
	VehicleID  int64  `json:"vehicle_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func newBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		Reference:  b.Reference,
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice.StringFixed(2),
		VehicleID:  b.VehicleID,
		StartDate:  b.StartDate.Format(time.DateOnly),
		EndDate:    b.EndDate.Format(time.DateOnly),
	}
}
