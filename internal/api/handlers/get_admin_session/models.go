package get_admin_session

import "github.com/m04kA/VetEstetica-BookingService/internal/domain"

type SessionResponse struct {
	LoggedIn bool  `json:"loggedIn"`
	At       int64 `json:"at,omitempty"`
}

// FromDomainSession nil и ok=false означают, что вход не выполнен
func FromDomainSession(s *domain.AdminSession) SessionResponse {
	if s == nil || !s.OK {
		return SessionResponse{}
	}
	return SessionResponse{LoggedIn: true, At: s.At}
}
