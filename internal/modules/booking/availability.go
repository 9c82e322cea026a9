package booking

import (
	"context"
	"time"
)

// Checker answers whether a proposed date range collides with a vehicle's
// active bookings. Terminal bookings (cancelled, completed) never block.
type Checker struct {
	bookings BookingRepository
}

func NewChecker(bookings BookingRepository) *Checker {
	return &Checker{bookings: bookings}
}

// HasConflict is advisory at the time of call: two concurrent creators can
// both see no conflict. The DB-level exclusion constraint is what finally
// serializes them (see repository.Migrate).
func (c *Checker) HasConflict(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error) {
	existing, err := c.bookings.ListActiveForVehicle(ctx, vehicleID)
	if err != nil {
		return false, err
	}

	for _, b := range existing {
		if Overlaps(b.StartDate, b.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

// Overlaps reports whether two inclusive day ranges intersect. Ranges that
// only touch on a shared boundary date do overlap: both sides own that day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
