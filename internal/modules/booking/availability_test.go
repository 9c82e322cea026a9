package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vehiclerental/internal/domain"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{
			name:   "disjoint before",
			aStart: day(2024, time.June, 1), aEnd: day(2024, time.June, 5),
			bStart: day(2024, time.June, 6), bEnd: day(2024, time.June, 9),
			want: false,
		},
		{
			name:   "contained",
			aStart: day(2024, time.June, 1), aEnd: day(2024, time.June, 30),
			bStart: day(2024, time.June, 10), bEnd: day(2024, time.June, 12),
			want: true,
		},
		{
			name:   "touching boundary counts",
			aStart: day(2024, time.June, 10), aEnd: day(2024, time.June, 15),
			bStart: day(2024, time.June, 15), bEnd: day(2024, time.June, 20),
			want: true,
		},
		{
			name:   "partial overlap",
			aStart: day(2024, time.June, 10), aEnd: day(2024, time.June, 15),
			bStart: day(2024, time.June, 13), bEnd: day(2024, time.June, 20),
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// symmetric in the two ranges
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestChecker_HasConflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("ListActiveForVehicle", mock.Anything, int64(7)).Return([]domain.Booking{
		{
			ID:        1,
			VehicleID: 7,
			StartDate: day(2024, time.June, 10),
			EndDate:   day(2024, time.June, 15),
			Status:    domain.BookingPending,
		},
	}, nil)

	checker := NewChecker(mockBookings)

	// boundary touch on the 15th conflicts
	conflict, err := checker.HasConflict(context.Background(), 7, day(2024, time.June, 15), day(2024, time.June, 20))
	assert.NoError(t, err)
	assert.True(t, conflict)

	// fully after the existing booking is fine
	conflict, err = checker.HasConflict(context.Background(), 7, day(2024, time.June, 16), day(2024, time.June, 20))
	assert.NoError(t, err)
	assert.False(t, conflict)
}

func TestChecker_NoActiveBookings(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("ListActiveForVehicle", mock.Anything, int64(7)).Return([]domain.Booking{}, nil)

	checker := NewChecker(mockBookings)

	conflict, err := checker.HasConflict(context.Background(), 7, day(2024, time.June, 1), day(2024, time.June, 30))
	assert.NoError(t, err)
	assert.False(t, conflict)
}
