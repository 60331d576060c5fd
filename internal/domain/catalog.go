package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is returned when a catalog fails validation
var ErrInvalidCatalog = errors.New("domain: invalid catalog")

// ProfessionalType is the kind of professional a service needs
type ProfessionalType string

const (
	ProfessionalTypeVet   ProfessionalType = "vet"
	ProfessionalTypeGroom ProfessionalType = "groom"
)

// IsValid returns true for known professional types
func (t ProfessionalType) IsValid() bool {
	return t == ProfessionalTypeVet || t == ProfessionalTypeGroom
}

// Service is a bookable offering
type Service struct {
	ID               string           `json:"id"`
	Label            string           `json:"label"`
	ProfessionalType ProfessionalType `json:"proType"`
	Price            float64          `json:"price"`
	ExtraNote        string           `json:"extraNote,omitempty"`
	DurationMinutes  int              `json:"durationMin"`
}

// Professional is a staff member who performs services of one type
type Professional struct {
	ID        string           `json:"id"`
	Type      ProfessionalType `json:"type"`
	Name      string           `json:"name"`
	Specialty string           `json:"specialty"`
}

// Catalog is the immutable set of services and professionals
type Catalog struct {
	services      []Service
	professionals []Professional
	servicesByID  map[string]Service
	prosByID      map[string]Professional
}

// NewCatalog validates and indexes services and professionals.
// A service without a positive duration gets DefaultSlotDurationMinutes.
func NewCatalog(services []Service, professionals []Professional) (*Catalog, error) {
	c := &Catalog{
		services:      make([]Service, 0, len(services)),
		professionals: make([]Professional, 0, len(professionals)),
		servicesByID:  make(map[string]Service, len(services)),
		prosByID:      make(map[string]Professional, len(professionals)),
	}

	for _, s := range services {
		if s.ID == "" {
			return nil, fmt.Errorf("%w: service with empty id", ErrInvalidCatalog)
		}
		if !s.ProfessionalType.IsValid() {
			return nil, fmt.Errorf("%w: service %q has unknown professional type %q", ErrInvalidCatalog, s.ID, s.ProfessionalType)
		}
		if _, dup := c.servicesByID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate service id %q", ErrInvalidCatalog, s.ID)
		}
		if s.DurationMinutes <= 0 {
			s.DurationMinutes = DefaultSlotDurationMinutes
		}
		c.services = append(c.services, s)
		c.servicesByID[s.ID] = s
	}

	for _, p := range professionals {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: professional with empty id", ErrInvalidCatalog)
		}
		if !p.Type.IsValid() {
			return nil, fmt.Errorf("%w: professional %q has unknown type %q", ErrInvalidCatalog, p.ID, p.Type)
		}
		if _, dup := c.prosByID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate professional id %q", ErrInvalidCatalog, p.ID)
		}
		c.professionals = append(c.professionals, p)
		c.prosByID[p.ID] = p
	}

	return c, nil
}

// DefaultCatalog returns the built-in clinic catalog
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultServices(), DefaultProfessionals())
	if err != nil {
		panic(err)
	}
	return c
}

func DefaultServices() []Service {
	return []Service{
		{
			ID:               "vet_consulta",
			Label:            "Consulta veterinaria",
			ProfessionalType: ProfessionalTypeVet,
			Price:            500,
			ExtraNote:        " (+ insumos si aplica)",
			DurationMinutes:  30,
		},
		{
			ID:               "groom_full",
			Label:            "Estetica completa (lavado, secado, corte, unas)",
			ProfessionalType: ProfessionalTypeGroom,
			Price:            1800,
			DurationMinutes:  60,
		},
	}
}

func DefaultProfessionals() []Professional {
	return []Professional{
		{ID: "vet-1", Type: ProfessionalTypeVet, Name: "Dra. Lucia Pereira", Specialty: "Veterinaria"},
		{ID: "vet-2", Type: ProfessionalTypeVet, Name: "Dr. Martin Suarez", Specialty: "Veterinario"},
		{ID: "vet-3", Type: ProfessionalTypeVet, Name: "Dra. Sofia Mendez", Specialty: "Veterinaria"},
		{ID: "groom-1", Type: ProfessionalTypeGroom, Name: "Valentina Rocha", Specialty: "Estilista"},
		{ID: "groom-2", Type: ProfessionalTypeGroom, Name: "Camila Fernandez", Specialty: "Estilista"},
		{ID: "groom-3", Type: ProfessionalTypeGroom, Name: "Agustina Silva", Specialty: "Estilista"},
	}
}

// Services returns a copy of all services in catalog order
func (c *Catalog) Services() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Professionals returns a copy of all professionals in catalog order
func (c *Catalog) Professionals() []Professional {
	out := make([]Professional, len(c.professionals))
	copy(out, c.professionals)
	return out
}

func (c *Catalog) Service(id string) (Service, bool) {
	s, ok := c.servicesByID[id]
	return s, ok
}

func (c *Catalog) Professional(id string) (Professional, bool) {
	p, ok := c.prosByID[id]
	return p, ok
}

// ProfessionalsByType returns professionals of the given type in catalog order
func (c *Catalog) ProfessionalsByType(t ProfessionalType) []Professional {
	out := make([]Professional, 0, len(c.professionals))
	for _, p := range c.professionals {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// ServiceDuration resolves a service duration, 0 for unknown ids.
// Matches the DurationResolver signature.
func (c *Catalog) ServiceDuration(serviceID string) int {
	if s, ok := c.servicesByID[serviceID]; ok {
		return s.DurationMinutes
	}
	return 0
}
