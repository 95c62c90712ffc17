package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
)

func TestQuotaRejected(t *testing.T) {
	m := New()
	m.QuotaRejected("branches", plan.Basico)
	m.QuotaRejected("branches", plan.Basico)
	m.QuotaRejected("branches", plan.Estandar)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.quotaRejected.WithLabelValues("branches", "Basico")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotaRejected.WithLabelValues("branches", "Estandar")))
}

func TestValidationFailed(t *testing.T) {
	m := New()
	m.ValidationFailed("order", 4)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationFailed.WithLabelValues("order")))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.QuotaRejected("branches", plan.Premium)
	m.ObserveRequest("GET", "/api/branches", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `temucosoft_quota_rejections_total{plan="Premium",resource="branches"} 1`)
	assert.Contains(t, body, "temucosoft_http_request_duration_seconds_count")
	assert.Contains(t, body, "go_goroutines")
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.ValidationFailed("sale", 1)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.validationFailed.WithLabelValues("sale")))
}
