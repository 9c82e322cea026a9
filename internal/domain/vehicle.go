package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleBooked      VehicleStatus = "booked"
	VehicleInUse       VehicleStatus = "in_use"
	VehicleMaintenance VehicleStatus = "maintenance"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleAvailable, VehicleBooked, VehicleInUse, VehicleMaintenance:
		return true
	}
	return false
}

type VehicleType string

const (
	VehicleBike VehicleType = "bike"
	VehicleCar4 VehicleType = "car_4"
	VehicleCar7 VehicleType = "car_7"
)

// Seats derives the seat count from the vehicle type.
func (t VehicleType) Seats() int {
	switch t {
	case VehicleCar7:
		return 7
	case VehicleCar4:
		return 4
	default:
		return 2
	}
}

type Vehicle struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	LicensePlate string          `json:"license_plate"`
	Type         VehicleType     `json:"vehicle_type"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	Status       VehicleStatus   `json:"status"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
