package domain

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

var dateFilterPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeStatus returns a copy where a missing status reads as active
func NormalizeStatus(r Reservation) Reservation {
	if r.Status == "" {
		r.Status = StatusActive
	}
	return r
}

// IsCancelled returns true if the reservation has been cancelled
func IsCancelled(r Reservation) bool {
	return r.Status == StatusCancelled
}

// CancelReservationByID returns a new list where every record is normalized
// and the record with id is cancelled at now. Cancelling twice keeps the
// first cancelledAt.
func CancelReservationByID(list []Reservation, id string, now time.Time) []Reservation {
	out := make([]Reservation, 0, len(list))
	for _, r := range list {
		r = NormalizeStatus(r)
		if r.ID == id && !IsCancelled(r) {
			at := now.UnixMilli()
			r.Status = StatusCancelled
			r.CancelledAt = &at
		}
		out = append(out, r)
	}
	return out
}

// FilterReservations keeps reservations matching every criterion, in input order.
// With a zero Now the "future" and "past" filters are not applied.
func FilterReservations(list []Reservation, c FilterCriteria) []Reservation {
	service := strings.TrimSpace(c.Service)
	dateFilter := strings.TrimSpace(c.DateFilter)
	query := strings.ToLower(strings.TrimSpace(c.Query))
	now := c.Now

	out := make([]Reservation, 0, len(list))
	for _, r := range list {
		if service != "" && service != ServiceFilterAll && string(r.ProfessionalType) != service {
			continue
		}
		if !matchesDate(r, dateFilter, now) {
			continue
		}
		if query != "" && !strings.Contains(haystack(r), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesDate(r Reservation, dateFilter string, now time.Time) bool {
	switch {
	case dateFilter == "" || dateFilter == DateFilterAll:
		return true
	case dateFilter == DateFilterFuture, dateFilter == DateFilterPast:
		if now.IsZero() {
			return true
		}
		start, ok := r.Start()
		if !ok {
			return false
		}
		if dateFilter == DateFilterFuture {
			return !start.Before(now)
		}
		return start.Before(now)
	case dateFilterPattern.MatchString(dateFilter):
		// 2024-13-40 has the shape of a date but matches nothing
		start, ok := r.Start()
		return ok && DateKey(start) == dateFilter
	default:
		return true
	}
}

func haystack(r Reservation) string {
	return strings.ToLower(strings.Join([]string{
		r.OwnerName,
		r.PetName,
		r.PetType,
		r.ServiceLabel,
		r.ProfessionalName,
		r.Phone,
		r.Email,
	}, " "))
}

// CountReservationsByType counts all records regardless of status
func CountReservationsByType(list []Reservation) ReservationCounts {
	counts := ReservationCounts{Total: len(list)}
	for _, r := range list {
		switch r.ProfessionalType {
		case ProfessionalTypeVet:
			counts.Vet++
		case ProfessionalTypeGroom:
			counts.Groom++
		}
	}
	return counts
}

// SortReservationsByStartISO returns a sorted copy, ascending by StartISO
func SortReservationsByStartISO(list []Reservation) []Reservation {
	out := make([]Reservation, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartISO < out[j].StartISO
	})
	return out
}
