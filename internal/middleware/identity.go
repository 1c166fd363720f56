package middleware

import (
	"encoding/json"
	"net/http"

	"evaluationservice/internal/authorization"
	"evaluationservice/internal/model"
	"evaluationservice/pkg/ctxdata"
	"evaluationservice/pkg/logging"

	"go.uber.org/zap"
)

const (
	userIDHeader   = "X-User-Id"
	userRoleHeader = "X-User-Role"
)

// NewIdentityMiddleware trusts the identity headers set by the gateway and
// rejects requests without them.
func NewIdentityMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			id := r.Header.Get(userIDHeader)
			role := r.Header.Get(userRoleHeader)
			if id == "" || role == "" {
				logging.FromContext(ctx).Info(ctx, "missing identity headers", zap.String("path", r.URL.Path))
				writeErrorJSON(w, http.StatusUnauthorized, "authentication required")
				return
			}

			ctx = ctxdata.WithSubject(ctx, ctxdata.Subject{ID: id, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole lets the request through only if the subject has required
// or a higher role.
func RequireRole(required model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			role, _ := ctxdata.GetSubjectRole(ctx)
			if err := authorization.Require(role, required); err != nil {
				logging.FromContext(ctx).Info(ctx, "permission denied",
					zap.String("path", r.URL.Path),
					zap.String("role", role),
					zap.String("required", string(required)),
				)
				writeErrorJSON(w, http.StatusForbidden, http.StatusText(http.StatusForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}
