package transition

import (
	"github.com/pkg/errors"
)

var (
	// ErrSlotBehind is returned when process_slots is requested to advance a
	// state to a slot it has already passed.
	ErrSlotBehind = errors.New("expected state.slot < target slot")
	// ErrInvariantViolation is returned when a pre-transition state invariant
	// does not hold, such as validator and balance registries of differing
	// lengths. The caller must treat the state as corrupt.
	ErrInvariantViolation = errors.New("beacon state invariant violated")
	// ErrForkMismatch is returned when the state's fork version at its slot
	// has no known epoch processor.
	ErrForkMismatch = errors.New("state fork does not match a known processor")
)
