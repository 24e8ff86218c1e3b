package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"calendar-event-backend/pkg/metrics"
)

func TestMetricsHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveHTTP(http.MethodPost, "/add-event", http.StatusOK, 20*time.Millisecond)
	m.ObserveCalendarCall("create", "success", 150*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body, _ := io.ReadAll(w.Body)
	text := string(body)

	for _, want := range []string{
		`calendar_backend_http_requests_total{method="POST",route="/add-event",status="200"} 1`,
		`calendar_backend_calendar_calls_total{operation="create",outcome="success"} 1`,
		`calendar_backend_calendar_call_duration_seconds_count{operation="create"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected metrics output to contain %q", want)
		}
	}
}

func TestNop(t *testing.T) {
	metrics.NewNop().ObserveCalendarCall("create", "success", time.Second)
}
