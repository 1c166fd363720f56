package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"evaluationservice/internal/model"
	"evaluationservice/pkg/ctxdata"
	"evaluationservice/pkg/logging"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// ── logging ─────────────────────────────────────────────────────────

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := logging.New(zap.New(core))

	var seenTrace string
	handler := NewLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTrace, _ = ctxdata.GetTraceID(r.Context())
		_, ok := logging.GetFromContext(r.Context())
		assert.True(t, ok)
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("GeneratesTraceID", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/evaluations", nil))

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.NotEmpty(t, seenTrace)
		assert.Equal(t, seenTrace, w.Header().Get("X-Trace-Id"))

		entries := logs.FilterMessage("request completed").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, int64(http.StatusTeapot), fields["status"])
		assert.Equal(t, seenTrace, fields["request_id"])
	})

	t.Run("KeepsIncomingTraceID", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/evaluations", nil)
		r.Header.Set("X-Trace-Id", "trace-abc")
		handler.ServeHTTP(w, r)

		assert.Equal(t, "trace-abc", seenTrace)
		assert.Equal(t, "trace-abc", w.Header().Get("X-Trace-Id"))
	})
}

// ── identity ────────────────────────────────────────────────────────

func TestIdentityMiddleware(t *testing.T) {
	var subject ctxdata.Subject
	handler := NewIdentityMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ = ctxdata.GetSubject(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("SetsSubject", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-User-Id", "user-1")
		r.Header.Set("X-User-Role", "manager")
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, ctxdata.Subject{ID: "user-1", Role: "manager"}, subject)
	})

	t.Run("MissingHeadersUnauthorized", func(t *testing.T) {
		for _, headers := range []map[string]string{
			{},
			{"X-User-Id": "user-1"},
			{"X-User-Role": "admin"},
		} {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range headers {
				r.Header.Set(k, v)
			}
			handler.ServeHTTP(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "authentication required", body["error"])
		}
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		required model.Role
		expected int
	}{
		{"AdminPassesManager", "admin", model.RoleManager, http.StatusOK},
		{"ManagerPassesManager", "manager", model.RoleManager, http.StatusOK},
		{"EmployeeBlockedFromManager", "employee", model.RoleManager, http.StatusForbidden},
		{"EmployeePassesEmployee", "employee", model.RoleEmployee, http.StatusOK},
		{"UnknownRole", "intern", model.RoleEmployee, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := RequireRole(tc.required)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r = r.WithContext(ctxdata.WithSubject(r.Context(), ctxdata.Subject{ID: "u", Role: tc.role}))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			assert.Equal(t, tc.expected, w.Code)
		})
	}
}

// ── metrics ─────────────────────────────────────────────────────────

type observation struct {
	route  string
	method string
	status int
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *recordingObserver) ObserveHTTPRequest(route, method string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{route, method, status})
}

func TestMetricsMiddleware(t *testing.T) {
	obs := &recordingObserver{}
	router := chi.NewRouter()
	router.Use(NewMetricsMiddleware(obs))
	router.Get("/evaluations/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/evaluations/123", nil))

	require.Len(t, obs.seen, 1)
	assert.Equal(t, observation{"/evaluations/{id}", http.MethodGet, http.StatusNotFound}, obs.seen[0])
}
