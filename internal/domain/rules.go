package domain

import (
	"strings"
	"time"

	"github.com/m04kA/VetEstetica-BookingService/pkg/types"
)

// futureGrace tolerates a start slightly in the past (form submit latency)
const futureGrace = time.Minute

// IsOpenHours reports whether [instant, instant+duration) fits inside the
// opening window of its day. Non-positive durations fall back to the default slot.
func IsOpenHours(instant time.Time, durationMinutes int, schedule Schedule) bool {
	if instant.IsZero() {
		return false
	}
	if durationMinutes <= 0 {
		durationMinutes = DefaultSlotDurationMinutes
	}

	local := instant.In(time.Local)
	hours, open := schedule.HoursFor(local.Weekday())
	if !open {
		return false
	}

	start := MinuteOfDay(local)
	return start >= hours.Open && start+durationMinutes <= hours.Close
}

// IsHalfHourStep reports whether an "HH:MM" value sits on :00 or :30
func IsHalfHourStep(timeKey string) bool {
	ts, err := types.NewTimeStringFromString(timeKey)
	if err != nil {
		return false
	}
	return ts.Minute()%SlotGranularityMinutes == 0
}

// IsPetTypeAllowed trims petType and looks it up in allowed.
// An empty allowed list means DefaultPetTypes.
func IsPetTypeAllowed(petType string, allowed []string) bool {
	if len(allowed) == 0 {
		allowed = DefaultPetTypes
	}
	petType = strings.TrimSpace(petType)
	for _, a := range allowed {
		if a == petType {
			return true
		}
	}
	return false
}

// IsFutureDate is true when instant is not earlier than one minute before now
func IsFutureDate(instant, now time.Time) bool {
	return !instant.Before(now.Add(-futureGrace))
}

// ProfessionalMatchesService is true when the professional can perform the service
func ProfessionalMatchesService(pro Professional, service Service) bool {
	return pro.Type == service.ProfessionalType
}
