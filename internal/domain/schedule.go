package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/VetEstetica-BookingService/pkg/types"
)

// ErrInvalidSchedule is returned when opening hours are inconsistent
var ErrInvalidSchedule = errors.New("domain: invalid schedule")

// DayHours is an opening window in minutes from local midnight
type DayHours struct {
	Open  int
	Close int
}

// Schedule holds the business hours. Sunday is always closed.
type Schedule struct {
	Weekday  DayHours // Monday to Friday
	Saturday DayHours
}

// DefaultSchedule returns Mon-Fri 09:00-18:00, Sat 09:00-12:30
func DefaultSchedule() Schedule {
	return Schedule{
		Weekday:  DayHours{Open: 9 * 60, Close: 18 * 60},
		Saturday: DayHours{Open: 9 * 60, Close: 12*60 + 30},
	}
}

// NewSchedule builds a schedule from HH:MM bounds
func NewSchedule(weekdayOpen, weekdayClose, saturdayOpen, saturdayClose types.TimeString) (Schedule, error) {
	weekday, err := newDayHours(weekdayOpen, weekdayClose)
	if err != nil {
		return Schedule{}, fmt.Errorf("%w: weekday: %v", ErrInvalidSchedule, err)
	}
	saturday, err := newDayHours(saturdayOpen, saturdayClose)
	if err != nil {
		return Schedule{}, fmt.Errorf("%w: saturday: %v", ErrInvalidSchedule, err)
	}
	return Schedule{Weekday: weekday, Saturday: saturday}, nil
}

func newDayHours(open, close types.TimeString) (DayHours, error) {
	if err := open.Validate(); err != nil {
		return DayHours{}, fmt.Errorf("open %q: %w", open, err)
	}
	if err := close.Validate(); err != nil {
		return DayHours{}, fmt.Errorf("close %q: %w", close, err)
	}
	if !open.IsBefore(close) {
		return DayHours{}, fmt.Errorf("open %s must be before close %s", open, close)
	}
	return DayHours{Open: open.Minutes(), Close: close.Minutes()}, nil
}

// HoursFor returns the opening window for a weekday, false when closed
func (s Schedule) HoursFor(day time.Weekday) (DayHours, bool) {
	switch day {
	case time.Sunday:
		return DayHours{}, false
	case time.Saturday:
		return s.Saturday, true
	default:
		return s.Weekday, true
	}
}

// Summary is the human readable hours line shown to customers
func (s Schedule) Summary() string {
	return fmt.Sprintf("Lun-Vie %s-%s | Sab %s-%s | Dom cerrado",
		types.FromMinutes(s.Weekday.Open), types.FromMinutes(s.Weekday.Close),
		types.FromMinutes(s.Saturday.Open), types.FromMinutes(s.Saturday.Close))
}
