package get_available_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

// validateRequest проверяет дату и ссылки на каталог
// Возвращает найденную услугу (нулевую, если не указана)
func validateRequest(req Request, catalog *domain.Catalog) (domain.Service, error) {
	if !domain.IsDateKey(req.Date) {
		return domain.Service{}, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	var service domain.Service
	if req.ServiceID != "" {
		s, ok := catalog.Service(req.ServiceID)
		if !ok {
			return domain.Service{}, fmt.Errorf("%w: id=%s", ErrServiceNotFound, req.ServiceID)
		}
		service = s
	}

	if req.ProfessionalID != "" {
		pro, ok := catalog.Professional(req.ProfessionalID)
		if !ok {
			return domain.Service{}, fmt.Errorf("%w: id=%s", ErrProfessionalNotFound, req.ProfessionalID)
		}
		if req.ServiceID != "" && !domain.ProfessionalMatchesService(pro, service) {
			return domain.Service{}, fmt.Errorf("%w: professional=%s service=%s",
				ErrProfessionalMismatch, req.ProfessionalID, req.ServiceID)
		}
	}

	return service, nil
}

func normalizeRequest(req *Request) Request {
	return Request{
		Date:           strings.TrimSpace(req.Date),
		ServiceID:      strings.TrimSpace(req.ServiceID),
		ProfessionalID: strings.TrimSpace(req.ProfessionalID),
	}
}
