package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"evaluationservice/internal/errdefs"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ─────────────────────────────────────────────────────────

func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ── mapErr ──────────────────────────────────────────────────────────

func TestMapErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"BadRequest", ErrBadRequest, http.StatusBadRequest},
		{"InvalidScore", errdefs.ErrInvalidScore, http.StatusBadRequest},
		{"Authentication", errdefs.ErrAuthentication, http.StatusUnauthorized},
		{"NotAssigned", errdefs.ErrNotAssignedReviewer, http.StatusForbidden},
		{"NotFound", errdefs.ErrEvaluationNotFound, http.StatusNotFound},
		{"ReviewerNotFound", errdefs.ErrReviewerNotFound, http.StatusNotFound},
		{"Completed", errdefs.ErrEvaluationCompleted, http.StatusConflict},
		{"VersionConflict", fmt.Errorf("after 3 attempts: %w", errdefs.ErrVersionConflict), http.StatusConflict},
		{"Unavailable", errdefs.ErrUnavailable, http.StatusServiceUnavailable},
		{"UnknownError", errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mapErr(tc.err))
		})
	}
}

// ── writeErrorJSON ──────────────────────────────────────────────────

func TestWriteErrorJSON(t *testing.T) {
	w := httptest.NewRecorder()
	writeErrorJSON(w, http.StatusBadRequest, "test error")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, "test error", body["error"])
}

func TestWriteError_HidesInternalMessage(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(context.Background(), w, errors.New("pq: connection string with password"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), http.StatusText(http.StatusInternalServerError))
}

// ── parsePathParam ──────────────────────────────────────────────────

func TestParsePathParam(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		r := withChiParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "abc")
		val, err := parsePathParam(r, "id")
		require.NoError(t, err)
		assert.Equal(t, "abc", val)
	})

	t.Run("Missing", func(t *testing.T) {
		r := withChiParam(httptest.NewRequest(http.MethodGet, "/", nil), "other", "abc")
		_, err := parsePathParam(r, "id")
		assert.ErrorIs(t, err, ErrBadRequest)
	})
}

// ── decodeBody ──────────────────────────────────────────────────────

func TestDecodeBody(t *testing.T) {
	validate := validator.New()

	t.Run("Valid", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"Teamwork"}`))
		var req questionRequest
		require.NoError(t, decodeBody(r, validate, &req))
		assert.Equal(t, "Teamwork", req.Text)
	})

	t.Run("Malformed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":`))
		var req questionRequest
		assert.ErrorIs(t, decodeBody(r, validate, &req), errdefs.ErrInvalidArgument)
	})

	t.Run("UnknownField", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"x","extra":1}`))
		var req questionRequest
		assert.ErrorIs(t, decodeBody(r, validate, &req), ErrBadRequest)
	})

	t.Run("ValidationNamesField", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"employeeId":"nope","period":"Q1","type":"self"}`))
		var req createEvaluationRequest
		err := decodeBody(r, validate, &req)
		assert.ErrorIs(t, err, ErrBadRequest)
		assert.Contains(t, err.Error(), "EmployeeId failed on uuid")
	})

	t.Run("NestedQuestionText", func(t *testing.T) {
		body := `{"employeeId":"0190a5a4-8f0e-7c55-b3a4-7d7a4a1c2e10","period":"Q1","type":"peer","questions":[{"text":""}]}`
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var req createEvaluationRequest
		err := decodeBody(r, validate, &req)
		assert.ErrorIs(t, err, ErrBadRequest)
		assert.Contains(t, err.Error(), "Questions[0].Text")
	})
}
