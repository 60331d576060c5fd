package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Результаты попытки бронирования (label result)
const (
	BookingResultCreated  = "created"
	BookingResultRejected = "rejected"
	BookingResultConflict = "conflict"
	BookingResultError    = "error"
)

// Metrics набор prometheus-метрик сервиса
// Каждый экземпляр держит собственный registry, поэтому New можно вызывать многократно (например, в тестах)
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsTotal       *prometheus.CounterVec
	cancellationsTotal  *prometheus.CounterVec
	storeOperations     *prometheus.CounterVec
}

// New создает и регистрирует метрики с префиксом serviceName
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "bookings_total",
			Help:      "Booking attempts by result",
		}, []string{"result"}),
		cancellationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "cancellations_total",
			Help:      "Reservation cancellations (already_cancelled counts idempotent repeats)",
		}, []string{"result"}),
		storeOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "store_operations_total",
			Help:      "Key-value store operations by backend, operation and result",
		}, []string{"backend", "op", "result"}),
	}

	registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingsTotal,
		m.cancellationsTotal,
		m.storeOperations,
	)

	return m
}

// Handler отдает метрики в формате prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry нужен тестам для чтения значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncBooking(result string) {
	m.bookingsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncCancellation(result string) {
	m.cancellationsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncStoreOperation(backend, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.storeOperations.WithLabelValues(backend, op, result).Inc()
}
