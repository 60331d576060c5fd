package domain

import (
	"strings"
	"time"

	"github.com/m04kA/VetEstetica-BookingService/pkg/types"
)

// Slot is a window [StartMinute, EndMinute) of a day, in minutes from midnight
type Slot struct {
	StartMinute int
	EndMinute   int
}

// Start returns the slot start as HH:MM
func (s Slot) Start() types.TimeString {
	return types.FromMinutes(s.StartMinute)
}

// End returns the slot end as HH:MM
func (s Slot) End() types.TimeString {
	return types.FromMinutes(s.EndMinute)
}

func (s Slot) DurationMinutes() int {
	return s.EndMinute - s.StartMinute
}

// StartOn places the slot start on the given day
func (s Slot) StartOn(day time.Time) time.Time {
	return AtMinute(day, s.StartMinute)
}

// BuildSlotsForDate enumerates back-to-back windows of slotDurationMinutes
// from opening time while the window still ends by closing time.
// Malformed dates and Sundays yield an empty list.
func BuildSlotsForDate(dateKey string, slotDurationMinutes int, schedule Schedule) []Slot {
	day, ok := ParseDateKey(dateKey)
	if !ok {
		return []Slot{}
	}
	hours, open := schedule.HoursFor(day.Weekday())
	if !open {
		return []Slot{}
	}
	if slotDurationMinutes <= 0 {
		slotDurationMinutes = DefaultSlotDurationMinutes
	}

	slots := make([]Slot, 0, (hours.Close-hours.Open)/slotDurationMinutes)
	for start := hours.Open; start+slotDurationMinutes <= hours.Close; start += slotDurationMinutes {
		slots = append(slots, Slot{StartMinute: start, EndMinute: start + slotDurationMinutes})
	}
	return slots
}

// ReservedStartTimesForDate collects "HH:MM" start times of non-cancelled
// reservations on dateKey, limited to professionalID when it is not empty
func ReservedStartTimesForDate(reservations []Reservation, dateKey, professionalID string) map[string]struct{} {
	reserved := make(map[string]struct{})
	if dateKey == "" {
		return reserved
	}
	prefix := dateKey + "T"

	for _, r := range reservations {
		if IsCancelled(r) {
			continue
		}
		if professionalID != "" && r.ProfessionalID != professionalID {
			continue
		}
		if !strings.HasPrefix(r.StartISO, prefix) {
			continue
		}
		if t := r.StartTimeKey(); t != "" {
			reserved[t] = struct{}{}
		}
	}
	return reserved
}
