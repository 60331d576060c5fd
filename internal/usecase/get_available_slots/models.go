package get_available_slots

import "github.com/m04kA/VetEstetica-BookingService/pkg/types"

// Request модель запроса слотов на дату
type Request struct {
	Date           string // YYYY-MM-DD
	ServiceID      string // опционально, задает длительность слота
	ProfessionalID string // опционально, включает проверку занятости
}

// SlotInfo информация о слоте
type SlotInfo struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool // false, если у специалиста есть пересекающаяся запись
}

// Response модель ответа со слотами
type Response struct {
	Date                string
	SlotDurationMinutes int
	Closed              bool     // в этот день не работаем
	Slots               []SlotInfo
	ReservedStartTimes  []string // HH:MM, по возрастанию
}
