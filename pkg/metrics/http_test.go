package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCountsRequests(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe(http.MethodGet, "/api/products", http.StatusOK, 25*time.Millisecond)
	m.Observe(http.MethodGet, "/api/products", http.StatusOK, 10*time.Millisecond)
	m.Observe(http.MethodPost, "/api/admin/settings", http.StatusBadRequest, time.Millisecond)

	if got := testutil.CollectAndCount(m.requests, "http_requests_total"); got != 2 {
		t.Fatalf("expected 2 labeled series, got %d", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/products", "200")); got != 2 {
		t.Fatalf("expected 2 GET requests recorded, got %v", got)
	}
}

func TestObserveIsNilSafe(t *testing.T) {
	t.Parallel()

	var m *HTTPMetrics
	m.Observe(http.MethodGet, "/", http.StatusOK, 0)

	unregistered := NewHTTPMetrics(nil)
	unregistered.Observe(http.MethodGet, "/", http.StatusOK, 0)
}
