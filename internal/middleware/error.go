package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"shop-admin/internal/apperr"

	"go.uber.org/zap"
)

// dataEnvelope wraps every successful payload
type dataEnvelope struct {
	Data any `json:"data"`
}

// errorBody is the uniform error response shape. Details carry field-level
// validation failures and are omitted otherwise.
type errorBody struct {
	Error   string              `json:"error"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// RespondWithData wraps a payload in the {"data": ...} envelope
func RespondWithData(w http.ResponseWriter, payload any) {
	RespondWithJSON(w, http.StatusOK, dataEnvelope{Data: payload})
}

// RespondWithError maps a classified error onto its HTTP status and stable
// message. Underlying causes never reach the client.
func RespondWithError(w http.ResponseWriter, appErr *apperr.Error) {
	RespondWithJSON(w, appErr.Status(), errorBody{
		Error:   appErr.Message(),
		Details: appErr.Fields,
	})
}

// ContentRange formats the range header value summarizing a list response:
// "<resource> 0-<n-1>/<n>", or "<resource> */0" when empty.
func ContentRange(resource string, total int) string {
	if total == 0 {
		return fmt.Sprintf("%s */0", resource)
	}
	return fmt.Sprintf("%s 0-%d/%d", resource, total-1, total)
}

// ErrorHandlingMiddleware catches panics and converts them to classified
// 500 responses
func ErrorHandlingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered",
						zap.Any("error", rec),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)

					RespondWithError(w, apperr.Internal(fmt.Errorf("panic: %v", rec)))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
