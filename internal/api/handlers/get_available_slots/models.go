package get_available_slots

import (
	getSlots "github.com/m04kA/VetEstetica-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse слот в HTTP ответе
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// AvailableSlotsResponse HTTP ответ со слотами на дату
type AvailableSlotsResponse struct {
	Date                string         `json:"date"`
	SlotDurationMinutes int            `json:"slotDurationMinutes"`
	Closed              bool           `json:"closed"`
	Label               string         `json:"label,omitempty"`
	Slots               []SlotResponse `json:"slots"`
	ReservedStartTimes  []string       `json:"reservedStartTimes"`
}

const closedLabel = "Cerrado"

func FromUseCaseResponse(resp *getSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Available: s.Available,
		})
	}

	reserved := resp.ReservedStartTimes
	if reserved == nil {
		reserved = []string{}
	}

	out := &AvailableSlotsResponse{
		Date:                resp.Date,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		Closed:              resp.Closed,
		Slots:               slots,
		ReservedStartTimes:  reserved,
	}
	if len(slots) == 0 {
		out.Label = closedLabel
	}
	return out
}
