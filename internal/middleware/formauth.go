package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

type contextKey string

const formIDKey contextKey = "formID"

// FormAuth returns middleware that validates a Bearer form token from the
// Authorization header and stores the form ID in the request context.
func FormAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateFormToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := WithFormID(r.Context(), claims.FormID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithFormID returns a context carrying the form ID.
func WithFormID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, formIDKey, id)
}

// FormIDFromContext extracts the authenticated form ID from the request context.
func FormIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(formIDKey).(string)
	return id, ok && id != ""
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}
