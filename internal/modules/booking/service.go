package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"vehiclerental/internal/domain"
)

// overlapConstraint is the Postgres exclusion constraint installed by
// repository.Migrate. Its violation means a concurrent create won the race.
const overlapConstraint = "bookings_no_overlap"

type Service struct {
	bookings     BookingRepository
	vehicles     VehicleRepository
	availability *Checker
}

func NewService(bookings BookingRepository, vehicles VehicleRepository) *Service {
	return &Service{
		bookings:     bookings,
		vehicles:     vehicles,
		availability: NewChecker(bookings),
	}
}

// Create books a vehicle for the actor over an inclusive date range. The
// booking starts out pending; the vehicle's own status is untouched, only a
// vehicle in maintenance refuses new requests.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateBookingRequest) (*domain.Booking, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}

	vehicle, err := s.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	if vehicle.Status == domain.VehicleMaintenance {
		return nil, ErrVehicleUnavailable
	}

	conflict, err := s.availability.HasConflict(ctx, vehicle.ID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrScheduleConflict
	}

	b := &domain.Booking{
		Reference:  uuid.NewString(),
		CustomerID: actor.ID,
		VehicleID:  vehicle.ID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: PriceForRange(vehicle.DailyRate, start, end),
		Status:     domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23P01" && pgErr.ConstraintName == overlapConstraint {
				return nil, ErrScheduleConflict
			}
		}
		return nil, err
	}

	return b, nil
}

// Cancel moves a pending or approved booking to cancelled and frees the
// vehicle. Allowed for staff or the booking's own customer.
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !actor.IsStaff && b.CustomerID != actor.ID {
		return nil, ErrForbidden
	}

	return s.applyTransition(ctx, b, ActionCancel)
}

// Approve confirms a pending booking and marks the vehicle booked. Staff only.
func (s *Service) Approve(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error) {
	if !actor.IsStaff {
		return nil, ErrForbidden
	}

	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return s.applyTransition(ctx, b, ActionApprove)
}

// Complete closes out an approved booking and frees the vehicle. Staff only.
func (s *Service) Complete(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error) {
	if !actor.IsStaff {
		return nil, ErrForbidden
	}

	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return s.applyTransition(ctx, b, ActionComplete)
}

// ListForCustomer returns the customer's bookings, most recent first.
func (s *Service) ListForCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	return s.bookings.ListForCustomer(ctx, customerID)
}

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) applyTransition(ctx context.Context, b *domain.Booking, action Action) (*domain.Booking, error) {
	next, vehicleStatus, err := Transition(action, b.Status)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.GetByID(ctx, b.VehicleID)
	if err != nil {
		return nil, err
	}

	b.Status = next
	vehicle.Status = vehicleStatus

	if err := s.bookings.SaveWithVehicle(ctx, b, vehicle); err != nil {
		return nil, err
	}
	return b, nil
}

// parseDate reads an ISO calendar date and pins it to UTC midnight so day
// arithmetic and overlap checks compare like with like.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}
