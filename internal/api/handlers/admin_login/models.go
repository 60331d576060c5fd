package admin_login

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse состояние сессии администратора
type SessionResponse struct {
	LoggedIn bool  `json:"loggedIn"`
	At       int64 `json:"at,omitempty"` // unix ms входа
}
