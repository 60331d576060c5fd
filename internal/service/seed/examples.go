package seed

import "time"

type example struct {
	ownerName      string
	petName        string
	petType        string
	serviceID      string
	professionalID string
	phone          string
	email          string
	dayOffset      int
	hour, minute   int
}

var examples = []example{
	{"Ana Lopez", "Milo", "Perro", "groom_full", "groom-1", "099 111 222", "ana@mail.com", 1, 10, 0},
	{"Bruno Perez", "Luna", "Gato", "vet_consulta", "vet-2", "098 333 444", "", 1, 11, 30},
	{"Carla Gomez", "Toby", "Perro", "vet_consulta", "vet-1", "097 222 555", "carla@mail.com", 2, 9, 0},
	{"Diego Silva", "Nina", "Gato", "groom_full", "groom-2", "096 555 666", "", 2, 15, 0},
	{"Elena Rodriguez", "Simba", "Perro", "groom_full", "groom-3", "091 000 999", "elena@mail.com", 3, 12, 0},
	{"Federico Nunez", "Kira", "Gato", "vet_consulta", "vet-3", "095 222 111", "", 3, 16, 30},
}

// nextBusinessDay сдвигает дату на offset дней, воскресенье переносится на понедельник
func nextBusinessDay(base time.Time, offset int) time.Time {
	d := base.AddDate(0, 0, offset)
	if d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
