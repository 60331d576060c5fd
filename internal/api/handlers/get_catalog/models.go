package get_catalog

import (
	"fmt"
	"strconv"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

type ServiceResponse struct {
	ID               string  `json:"id"`
	Label            string  `json:"label"`
	DisplayLabel     string  `json:"displayLabel"` // "Consulta veterinaria - $500 (+ insumos si aplica)"
	ProfessionalType string  `json:"professionalType"`
	Price            float64 `json:"price"`
	ExtraNote        string  `json:"extraNote,omitempty"`
	DurationMinutes  int     `json:"durationMinutes"`
}

type ProfessionalResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// CatalogResponse все, что нужно форме бронирования
type CatalogResponse struct {
	Services      []ServiceResponse      `json:"services"`
	Professionals []ProfessionalResponse `json:"professionals"`
	PetTypes      []string               `json:"petTypes"`
	Hours         string                 `json:"hours"`
}

func displayLabel(s domain.Service) string {
	return fmt.Sprintf("%s - $%s%s", s.Label, strconv.FormatFloat(s.Price, 'f', -1, 64), s.ExtraNote)
}

func FromDomainServices(services []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceResponse{
			ID:               s.ID,
			Label:            s.Label,
			DisplayLabel:     displayLabel(s),
			ProfessionalType: string(s.ProfessionalType),
			Price:            s.Price,
			ExtraNote:        s.ExtraNote,
			DurationMinutes:  s.DurationMinutes,
		})
	}
	return out
}

func FromDomainProfessionals(pros []domain.Professional) []ProfessionalResponse {
	out := make([]ProfessionalResponse, 0, len(pros))
	for _, p := range pros {
		out = append(out, ProfessionalResponse{
			ID:        p.ID,
			Type:      string(p.Type),
			Name:      p.Name,
			Specialty: p.Specialty,
		})
	}
	return out
}
