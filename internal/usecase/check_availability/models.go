package check_availability

// Request кандидат на запись
type Request struct {
	ProfessionalID  string
	ServiceID       string // опционально, для длительности
	StartISO        string // YYYY-MM-DDTHH:MM
	DurationMinutes int    // 0 = длительность услуги
}

// Response вердикт по кандидату
type Response struct {
	Available       bool
	DurationMinutes int // длительность, по которой проверяли
}
