package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vehiclerental/internal/domain"
)

func TestTransition_Table(t *testing.T) {
	allStatuses := []domain.BookingStatus{
		domain.BookingPending,
		domain.BookingApproved,
		domain.BookingCancelled,
		domain.BookingCompleted,
	}

	type allowed struct {
		to      domain.BookingStatus
		vehicle domain.VehicleStatus
	}

	legal := map[Action]map[domain.BookingStatus]allowed{
		ActionApprove: {
			domain.BookingPending: {domain.BookingApproved, domain.VehicleBooked},
		},
		ActionCancel: {
			domain.BookingPending:  {domain.BookingCancelled, domain.VehicleAvailable},
			domain.BookingApproved: {domain.BookingCancelled, domain.VehicleAvailable},
		},
		ActionComplete: {
			domain.BookingApproved: {domain.BookingCompleted, domain.VehicleAvailable},
		},
	}

	for _, action := range []Action{ActionApprove, ActionCancel, ActionComplete} {
		for _, from := range allStatuses {
			to, vehicle, err := Transition(action, from)

			want, ok := legal[action][from]
			if !ok {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s from %s", action, from)
				continue
			}
			assert.NoError(t, err, "%s from %s", action, from)
			assert.Equal(t, want.to, to)
			assert.Equal(t, want.vehicle, vehicle)
		}
	}
}

func TestTransition_TerminalStatesAreDeadEnds(t *testing.T) {
	for _, from := range []domain.BookingStatus{domain.BookingCancelled, domain.BookingCompleted} {
		for _, action := range []Action{ActionApprove, ActionCancel, ActionComplete} {
			_, _, err := Transition(action, from)
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	}
}
