package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordStoreCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordStoreCall("postgres", "users.findById", "success")
	c.RecordStoreCall("postgres", "users.findById", "success")
	c.RecordStoreCall("mongodb", "profiles.findById", "unavailable")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.storeCalls.WithLabelValues("postgres", "users.findById", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.storeCalls.WithLabelValues("mongodb", "profiles.findById", "unavailable")))
}

func TestCollector_RecordHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPRequest(http.MethodGet, "/api/user-full/:id", http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/api/user-full/:id", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.httpLatency))
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordStoreCall("postgres", "books.findByIds", "not_found")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `bookly_store_calls_total{operation="books.findByIds",outcome="not_found",store="postgres"} 1`))
}
