package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"calendar-event-backend/internal/auth"
)

type recordingLogger struct {
	infos []string
}

func (m *recordingLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *recordingLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *recordingLogger) Info(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Infof(ctx context.Context, format string, args ...any) {
	m.infos = append(m.infos, format)
	for _, a := range args {
		if s, ok := a.(string); ok {
			m.infos = append(m.infos, s)
		}
	}
}
func (m *recordingLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *recordingLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *recordingLogger) Error(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *recordingLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *recordingLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *recordingLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *recordingLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func setup(l *recordingLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth.RegisterRoutes(r.Group("/api"), auth.New(l))
	return r
}

func TestAuthPing(t *testing.T) {
	r := setup(&recordingLogger{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp auth.MessageResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != auth.MessageAuthWorking {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestAuthToken(t *testing.T) {
	t.Run("Acknowledges and masks", func(t *testing.T) {
		l := &recordingLogger{}
		r := setup(l)

		req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{"token":"ya29.super-secret-WXYZ"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp auth.MessageResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Status != "success" || resp.Message != auth.MessageTokenReceived {
			t.Errorf("unexpected response %+v", resp)
		}

		logged := strings.Join(l.infos, " ")
		if strings.Contains(logged, "super-secret") {
			t.Errorf("token must not be logged in clear: %s", logged)
		}
		if !strings.Contains(logged, "****WXYZ") {
			t.Errorf("expected masked token in log, got %s", logged)
		}
	})

	t.Run("Missing token", func(t *testing.T) {
		r := setup(&recordingLogger{})

		req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
