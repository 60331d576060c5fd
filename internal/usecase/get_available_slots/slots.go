package get_available_slots

import (
	"sort"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

// markAvailability проверяет каждый слот как кандидата на запись к специалисту
// Без специалиста все слоты считаются свободными
func markAvailability(
	slots []domain.Slot,
	req Request,
	slotDuration int,
	existing []domain.Reservation,
	resolver domain.DurationResolver,
) []SlotInfo {
	day, _ := domain.ParseDateKey(req.Date)

	result := make([]SlotInfo, 0, len(slots))
	for _, slot := range slots {
		available := true
		if req.ProfessionalID != "" {
			candidate := domain.Reservation{
				ProfessionalID:  req.ProfessionalID,
				ServiceID:       req.ServiceID,
				StartISO:        domain.FormatStartKey(slot.StartOn(day)),
				DurationMinutes: slotDuration,
				Status:          domain.StatusActive,
			}
			available = !domain.HasOverlap(existing, candidate, resolver, domain.DefaultSlotDurationMinutes)
		}

		result = append(result, SlotInfo{
			StartTime: slot.Start(),
			EndTime:   slot.End(),
			Available: available,
		})
	}
	return result
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
