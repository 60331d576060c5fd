package create_booking

import "github.com/m04kA/VetEstetica-BookingService/internal/domain"

// Request модель запроса на создание бронирования (значения формы как есть)
type Request struct {
	OwnerName      string
	PetName        string
	PetType        string // "Perro" или "Gato"
	ServiceID      string
	ProfessionalID string
	Date           string // YYYY-MM-DD
	Time           string // HH:MM, кратно 30 минутам
	Phone          string
	Email          string // опционально
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation domain.Reservation
	Summary     string // "<услуга> con <специалист> - DD/MM/YYYY HH:MM"
}
