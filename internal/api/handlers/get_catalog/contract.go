package get_catalog

import "github.com/m04kA/VetEstetica-BookingService/internal/domain"

// CatalogProvider источник услуг и специалистов
type CatalogProvider interface {
	Services() []domain.Service
	Professionals() []domain.Professional
	ProfessionalsByType(t domain.ProfessionalType) []domain.Professional
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
