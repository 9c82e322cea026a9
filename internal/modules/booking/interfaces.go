package booking

import (
	"context"

	"vehiclerental/internal/domain"
)

// BookingRepository defines the persistence operations the booking flow needs
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Save(ctx context.Context, b *domain.Booking) error
	// SaveWithVehicle applies a booking status change together with its
	// vehicle status side effect; both commit or neither does.
	SaveWithVehicle(ctx context.Context, b *domain.Booking, v *domain.Vehicle) error
	ListActiveForVehicle(ctx context.Context, vehicleID int64) ([]domain.Booking, error)
	ListForCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error)
}

// VehicleRepository defines the vehicle lookups the booking flow needs
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Save(ctx context.Context, v *domain.Vehicle) error
}
