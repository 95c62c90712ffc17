// Package metrics expone contadores Prometheus de reglas de negocio y de la API HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
)

const namespace = "temucosoft"

// Metrics registro propio (no el global) para que los tests puedan crear varios.
type Metrics struct {
	registry         *prometheus.Registry
	quotaRejected    *prometheus.CounterVec
	validationFailed *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// New registra los collectors de la aplicación y los del runtime de Go.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		quotaRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quota_rejections_total",
			Help:      "Escrituras rechazadas por el límite del plan",
		}, []string{"resource", "plan"}),
		validationFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Escrituras rechazadas por validación, por entidad",
		}, []string{"entity"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// QuotaRejected implementa entitlement.QuotaObserver.
func (m *Metrics) QuotaRejected(resource string, tier plan.Tier) {
	m.quotaRejected.WithLabelValues(resource, string(tier)).Inc()
}

// ValidationFailed implementa usecase.ValidationObserver. Cuenta escrituras, no violaciones.
func (m *Metrics) ValidationFailed(entity string, _ int) {
	m.validationFailed.WithLabelValues(entity).Inc()
}

// ObserveRequest registra la duración de una petición. route es el patrón, no la URL.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler handler de /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry para tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
