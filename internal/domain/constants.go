package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	SlotGranularityMinutes     = 30 // start times sit on the :00/:30 grid
	MinutesPerDay              = 24 * 60
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	StartKeyFormat = "2006-01-02T15:04" // naive local start key
	DisplayFormat  = "02/01/2006 15:04" // DD/MM/YYYY HH:MM
)

// Filter values understood by FilterReservations
const (
	ServiceFilterAll = "all"
	DateFilterAll    = "all"
	DateFilterFuture = "future"
	DateFilterPast   = "past"
)

// DefaultPetTypes pet types accepted when nothing is configured
var DefaultPetTypes = []string{"Perro", "Gato"}
