package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/VetEstetica-BookingService/internal/api/handlers"
)

const msgAdminRequired = "Acceso restringido. Inicia sesion como administrador."

// SessionChecker проверяет, выполнен ли вход администратора
type SessionChecker interface {
	IsLoggedIn(ctx context.Context) bool
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth пропускает запрос только при активной сессии администратора
func AdminAuth(checker SessionChecker, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !checker.IsLoggedIn(r.Context()) {
				logger.Warn("%s %s - Admin session required", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgAdminRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
