package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// New возвращает UUID v4
// Если источник случайности недоступен, возвращает "<epoch-ms>-<hex>"
func New() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}
	return fallback(time.Now())
}

func fallback(now time.Time) string {
	buf := make([]byte, 6)
	suffix := "0"
	if _, err := rand.Read(buf); err == nil {
		suffix = hex.EncodeToString(buf)
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}
