package catalog

import (
	"vehiclerental/internal/domain"
)

type ListVehiclesQuery struct {
	Availability string `form:"availability"`
	MinPrice     string `form:"min_price"`
	MaxPrice     string `form:"max_price"`
	Sort         string `form:"sort"`
	Page         int    `form:"page"`
}

type CreateVehicleRequest struct {
	Name         string   `json:"name" binding:"required"`
	LicensePlate string   `json:"license_plate" binding:"required"`
	Type         string   `json:"vehicle_type" binding:"required,oneof=bike car_4 car_7"`
	DailyRate    string   `json:"daily_rate" binding:"required"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Description  string   `json:"description"`
}

// UpdateVehicleRequest patches inventory fields; nil means leave unchanged.
type UpdateVehicleRequest struct {
	Name        *string  `json:"name"`
	Status      *string  `json:"status"`
	DailyRate   *string  `json:"daily_rate"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description *string  `json:"description"`
}

type VehicleResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	LicensePlate string   `json:"license_plate"`
	Type         string   `json:"vehicle_type"`
	Seats        int      `json:"seats"`
	DailyRate    string   `json:"daily_rate"`
	Status       string   `json:"status"`
	Latitude     *float64 `json:"lat,omitempty"`
	Longitude    *float64 `json:"lng,omitempty"`
	Description  string   `json:"description,omitempty"`
}

func newVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		Name:         v.Name,
		LicensePlate: v.LicensePlate,
		Type:         string(v.Type),
		Seats:        v.Type.Seats(),
		DailyRate:    v.DailyRate.StringFixed(2),
		Status:       string(v.Status),
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		Description:  v.Description,
	}
}

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	Total       int64 `json:"total"`
}
