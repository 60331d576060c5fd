package domain

import "time"

// DurationResolver returns the duration of a service in minutes, 0 if unknown
type DurationResolver func(serviceID string) int

// EffectiveDuration picks the reservation's own duration, then the resolved
// service duration, then defaultDurationMinutes (30 when that is not positive)
func EffectiveDuration(r Reservation, resolver DurationResolver, defaultDurationMinutes int) int {
	if r.DurationMinutes > 0 {
		return r.DurationMinutes
	}
	if resolver != nil {
		if d := resolver(r.ServiceID); d > 0 {
			return d
		}
	}
	if defaultDurationMinutes > 0 {
		return defaultDurationMinutes
	}
	return DefaultSlotDurationMinutes
}

// HasOverlap reports whether candidate intersects any non-cancelled reservation
// of the same professional. Windows are half-open, so touching ones do not conflict.
func HasOverlap(existing []Reservation, candidate Reservation, resolver DurationResolver, defaultDurationMinutes int) bool {
	if candidate.ProfessionalID == "" || candidate.StartISO == "" || IsCancelled(candidate) {
		return false
	}
	cStart, ok := candidate.Start()
	if !ok {
		return false
	}
	cEnd := cStart.Add(time.Duration(EffectiveDuration(candidate, resolver, defaultDurationMinutes)) * time.Minute)

	for _, r := range existing {
		if r.ProfessionalID != candidate.ProfessionalID || IsCancelled(r) {
			continue
		}
		start, ok := r.Start()
		if !ok {
			continue
		}
		end := start.Add(time.Duration(EffectiveDuration(r, resolver, defaultDurationMinutes)) * time.Minute)

		if start.Before(cEnd) && cStart.Before(end) {
			return true
		}
	}
	return false
}
