package domain

import (
	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

// TimeSlotCapacity tracks bookings against the limit for one slot of one date.
type TimeSlotCapacity struct {
	TimeSlot    types.TimeString
	Limit       int
	BookedCount int
}

// IsExhausted reports whether the slot has no remaining capacity.
func (s *TimeSlotCapacity) IsExhausted() bool {
	return s.BookedCount >= s.Limit
}

// RemainingSpots returns how many more bookings the slot can take.
func (s *TimeSlotCapacity) RemainingSpots() int {
	if s.BookedCount >= s.Limit {
		return 0
	}
	return s.Limit - s.BookedCount
}

// CapacityLimit is the booking state for one calendar date, keyed by ISO date.
// Slots absent from TimeSlotCapacity are unconstrained. MaxOrders is the
// whole-day ceiling; it is advisory and not enforced by the slot generator.
type CapacityLimit struct {
	Date             string
	MaxOrders        int
	IsBlackoutDay    bool
	TimeSlotCapacity []TimeSlotCapacity
}

// SlotFor returns the capacity entry matching the exact slot time, if present.
func (c *CapacityLimit) SlotFor(slot types.TimeString) (*TimeSlotCapacity, bool) {
	for i := range c.TimeSlotCapacity {
		if c.TimeSlotCapacity[i].TimeSlot == slot {
			return &c.TimeSlotCapacity[i], true
		}
	}
	return nil, false
}
