package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/casellese/catalog-backend/internal/domain/ports"
)

const namespace = "catalog"

// Metrics agrupa os coletores Prometheus da API
type Metrics struct {
	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	favoriteChanges *prometheus.CounterVec
	accessDenied    *prometheus.CounterVec
	usersCreated    *prometheus.CounterVec
}

// New cria e registra os coletores em reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		favoriteChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "favorite_changes_total",
				Help:      "Favorites added or removed",
			},
			[]string{"action"},
		),
		accessDenied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "access_denied_total",
				Help:      "Requests rejected by the admin check",
			},
			[]string{"resource"},
		),
		usersCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "users_created_total",
				Help:      "Users created or linked by the identity resolver",
			},
			[]string{"source"},
		),
	}

	reg.MustRegister(
		m.requestCounter,
		m.requestLatency,
		m.favoriteChanges,
		m.accessDenied,
		m.usersCreated,
	)
	return m
}

// ObserveRequest registra uma requisição HTTP concluída
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) FavoriteChanged(action string) {
	m.favoriteChanges.WithLabelValues(action).Inc()
}

func (m *Metrics) AccessDenied(resource string) {
	m.accessDenied.WithLabelValues(resource).Inc()
}

func (m *Metrics) UserCreated(source string) {
	m.usersCreated.WithLabelValues(source).Inc()
}

// Noop descarta eventos; usado em testes e ferramentas de linha de comando
type Noop struct{}

func (Noop) FavoriteChanged(string) {}
func (Noop) AccessDenied(string)    {}
func (Noop) UserCreated(string)     {}

var (
	_ ports.Metrics = (*Metrics)(nil)
	_ ports.Metrics = Noop{}
)
