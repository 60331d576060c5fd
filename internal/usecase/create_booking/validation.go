package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

// normalizeRequest возвращает копию запроса с обрезанными пробелами
func normalizeRequest(req *Request) Request {
	return Request{
		OwnerName:      strings.TrimSpace(req.OwnerName),
		PetName:        strings.TrimSpace(req.PetName),
		PetType:        strings.TrimSpace(req.PetType),
		ServiceID:      strings.TrimSpace(req.ServiceID),
		ProfessionalID: strings.TrimSpace(req.ProfessionalID),
		Date:           strings.TrimSpace(req.Date),
		Time:           strings.TrimSpace(req.Time),
		Phone:          strings.TrimSpace(req.Phone),
		Email:          strings.TrimSpace(req.Email),
	}
}

// validateRequiredFields проверяет, что все обязательные поля заполнены
func validateRequiredFields(req Request) error {
	required := []struct {
		name  string
		value string
	}{
		{"ownerName", req.OwnerName},
		{"petName", req.PetName},
		{"petType", req.PetType},
		{"serviceId", req.ServiceID},
		{"professionalId", req.ProfessionalID},
		{"date", req.Date},
		{"time", req.Time},
		{"phone", req.Phone},
	}

	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

// parseStart собирает время начала из даты и времени, время должно лежать на сетке :00/:30
func parseStart(date, clock string) (time.Time, error) {
	if !domain.IsHalfHourStep(clock) {
		return time.Time{}, fmt.Errorf("%w: time %q is not on the half-hour grid", ErrInvalidDateTime, clock)
	}
	start, ok := domain.ParseDateTime(date, clock)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: date=%q time=%q", ErrInvalidDateTime, date, clock)
	}
	return start, nil
}

// buildSummary формирует строку подтверждения для клиента
func buildSummary(r domain.Reservation, start time.Time) string {
	return fmt.Sprintf("%s con %s - %s", r.ServiceLabel, r.ProfessionalName, domain.FormatNice(start))
}
