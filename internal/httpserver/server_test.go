package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"calendar-event-backend/config"
	"calendar-event-backend/internal/auth"
	"calendar-event-backend/internal/event"
	eventHTTP "calendar-event-backend/internal/event/delivery/http"
	"calendar-event-backend/internal/httpserver"
	"calendar-event-backend/internal/middleware"
	"calendar-event-backend/pkg/log"
	"calendar-event-backend/pkg/metrics"
	"calendar-event-backend/pkg/response"
)

type countingUseCase struct {
	calls int
}

func (m *countingUseCase) Create(ctx context.Context, input event.CreateInput) (event.CreateOutput, error) {
	m.calls++
	return event.CreateOutput{EventID: "evt", HTMLLink: "https://calendar.google.com/evt"}, nil
}

func (m *countingUseCase) List(ctx context.Context, input event.ListInput) (event.ListOutput, error) {
	m.calls++
	return event.ListOutput{}, nil
}

func (m *countingUseCase) Delete(ctx context.Context, input event.DeleteInput) error {
	m.calls++
	return nil
}

func newServer(t *testing.T, uc event.UseCase, rl config.RateLimitConfig) *httpserver.HTTPServer {
	t.Helper()
	l := log.NewNop()
	m := metrics.New()
	srv, err := httpserver.New(l, httpserver.Config{
		Logger:       l,
		Port:         5000,
		Mode:         "test",
		Environment:  "test",
		Middleware:   middleware.New(l, config.CORSConfig{AllowedOrigins: []string{"*"}}, m, rl),
		Metrics:      m,
		EventHandler: eventHTTP.New(l, uc),
		AuthHandler:  auth.New(l),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv
}

func TestNewValidation(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: "test", Port: 5000})
	if err == nil {
		t.Errorf("expected error without event handler")
	}
}

func TestSystemRoutesNeverCallProvider(t *testing.T) {
	uc := &countingUseCase{}
	srv := newServer(t, uc, config.RateLimitConfig{})

	for _, path := range []string{"/", "/status", "/api/health", "/health", "/ready", "/live", "/api/auth", "/metrics"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
	if uc.calls != 0 {
		t.Errorf("system routes must not reach the calendar, got %d calls", uc.calls)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "ok" || body["message"] != httpserver.HealthMessage {
		t.Errorf("unexpected status body %v", body)
	}
}

func TestEventRoutesWired(t *testing.T) {
	uc := &countingUseCase{}
	srv := newServer(t, uc, config.RateLimitConfig{})

	req := httptest.NewRequest(http.MethodPost, "/add-event", strings.NewReader(`{"start":"a","end":"b"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Errorf("expected request id header")
	}
	if uc.calls != 1 {
		t.Errorf("expected one use case call, got %d", uc.calls)
	}
}

func TestPanicRecovered(t *testing.T) {
	srv := newServer(t, &countingUseCase{}, config.RateLimitConfig{})
	srv.Handler().GET("/boom", func(c *gin.Context) { panic("db crash") })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "error" || body["message"] != response.DefaultErrorMessage {
		t.Errorf("unexpected body %v", body)
	}
}

func TestEventRoutesRateLimited(t *testing.T) {
	uc := &countingUseCase{}
	srv := newServer(t, uc, config.RateLimitConfig{Enabled: true, PerMinute: 10})

	codes := []int{}
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/add-event", strings.NewReader(`{"start":"a","end":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("expected [200 429], got %v", codes)
	}
	if uc.calls != 1 {
		t.Errorf("rate limited request must not reach the use case, got %d calls", uc.calls)
	}

	// Health stays reachable.
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status route must not be rate limited, got %d", w.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	l := log.NewNop()
	srv, err := httpserver.New(l, httpserver.Config{
		Logger:       l,
		Port:         18089,
		Mode:         "test",
		Middleware:   middleware.New(l, config.CORSConfig{}, nil, config.RateLimitConfig{}),
		EventHandler: eventHTTP.New(l, &countingUseCase{}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Run(ctx); err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}
