package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/VetEstetica-BookingService/internal/api/middleware"
)

// Route обработчик маршрута
type Route interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// Handlers все обработчики API
type Handlers struct {
	GetCatalog        Route
	GetAvailableSlots Route
	CheckAvailability Route
	CreateReservation Route

	AdminLogin      Route
	AdminLogout     Route
	GetAdminSession Route

	ListReservations     Route
	GetReservationCounts Route
	GetReservation       Route
	CancelReservation    Route
	ClearReservations    Route
	SeedReservations     Route
}

// Options необязательные части роутера
type Options struct {
	Metrics        middleware.HTTPMetrics // nil - без HTTP метрик
	MetricsPath    string
	MetricsHandler http.Handler // nil - endpoint метрик не публикуется
	SessionChecker middleware.SessionChecker
	Logger         middleware.Logger
	EnableCORS     bool
}

// NewRouter собирает маршруты /api/v1
// С EnableCORS роутер оборачивается в CORS, чтобы preflight не доходил до mux
func NewRouter(h Handlers, opts Options) http.Handler {
	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}

	// Metrics endpoint (публичный, без аутентификации)
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (форма бронирования)
	// ============================================================

	api.HandleFunc("/catalog", h.GetCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", h.GetAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", h.CheckAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", h.CreateReservation.Handle).Methods(http.MethodPost)

	// --- Сессия администратора ---
	api.HandleFunc("/admin/login", h.AdminLogin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", h.AdminLogout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/session", h.GetAdminSession.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют сессию администратора)
	// ============================================================

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.AdminAuth(opts.SessionChecker, opts.Logger))

	protected.HandleFunc("/reservations", h.ListReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations", h.ClearReservations.Handle).Methods(http.MethodDelete)
	// counts регистрируется раньше {id}
	protected.HandleFunc("/reservations/counts", h.GetReservationCounts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id}", h.GetReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id}/cancel", h.CancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/seed", h.SeedReservations.Handle).Methods(http.MethodPost)

	if opts.EnableCORS {
		return middleware.CORS(r)
	}
	return r
}
