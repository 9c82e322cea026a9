package booking

import "vehiclerental/internal/domain"

// Action is one of the lifecycle operations a booking can undergo after
// creation.
type Action string

const (
	ActionApprove  Action = "approve"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

type transition struct {
	to      domain.BookingStatus
	vehicle domain.VehicleStatus
}

// lifecycle maps (action, current status) to the next booking status and the
// resulting vehicle status. Anything not listed is an illegal transition.
var lifecycle = map[Action]map[domain.BookingStatus]transition{
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

// Transition resolves the effect of performing action on a booking currently
// in status from. It returns ErrInvalidTransition when the lifecycle does not
// allow the move; nothing is mutated here.
func Transition(action Action, from domain.BookingStatus) (domain.BookingStatus, domain.VehicleStatus, error) {
	t, ok := lifecycle[action][from]
	if !ok {
		return "", "", ErrInvalidTransition
	}
	return t.to, t.vehicle, nil
}
