package seed_reservations

type SeedResponse struct {
	Seeded bool `json:"seeded"`
}
