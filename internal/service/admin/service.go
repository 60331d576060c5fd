package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/VetEstetica-BookingService/internal/domain"
)

// Service вход и выход администратора
// Сессия одна на хранилище, проверка - простое сравнение с конфигурацией
type Service struct {
	sessionRepo  SessionRepository
	credentials  Credentials
	timeProvider TimeProvider
	logger       Logger
}

func NewService(sessionRepo SessionRepository, credentials Credentials, logger Logger) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		credentials:  credentials,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login сохраняет сессию при совпадении учетных данных (пробелы по краям игнорируются)
func (s *Service) Login(ctx context.Context, username, password string) (*domain.AdminSession, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username != s.credentials.Username || password != s.credentials.Password {
		s.logger.Warn("AdminLogin: invalid credentials for user=%q", username)
		return nil, ErrInvalidCredentials
	}

	session := domain.AdminSession{OK: true, At: s.timeProvider.Now().UnixMilli()}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		s.logger.Error("AdminLogin: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: Login: %v", ErrInternal, err)
	}

	s.logger.Info("AdminLogin: user=%q logged in", username)
	return &session, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Delete(ctx); err != nil {
		s.logger.Error("AdminLogout: failed to delete session: %v", err)
		return fmt.Errorf("%w: Logout: %v", ErrInternal, err)
	}
	s.logger.Info("AdminLogout: session removed")
	return nil
}

// Session возвращает сохраненную сессию или nil
func (s *Service) Session(ctx context.Context) (*domain.AdminSession, error) {
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Session: %v", ErrInternal, err)
	}
	return session, nil
}

// IsLoggedIn true, если есть сессия с ok=true; ошибки чтения считаются отсутствием сессии
func (s *Service) IsLoggedIn(ctx context.Context) bool {
	session, err := s.Session(ctx)
	if err != nil {
		s.logger.Warn("AdminSession: %v", err)
		return false
	}
	return session != nil && session.OK
}
