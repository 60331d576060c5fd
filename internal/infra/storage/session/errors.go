package session

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения сессии
	ErrLoad = errors.New("session.repository: failed to load session")

	// ErrSave возвращается при ошибке записи или удаления сессии
	ErrSave = errors.New("session.repository: failed to save session")
)
