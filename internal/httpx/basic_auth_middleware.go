package httpx

import (
	"net/http"

	"booklib/internal/auth"
)

// BasicAuthMiddleware resolves the request's Basic credentials through the
// gate and stores the result in the request context. It never rejects:
// missing or unknown credentials resolve to the anonymous role and the
// service layer decides between 401, 403 and success.
func BasicAuthMiddleware(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, _ := r.BasicAuth()
			role := gate.Authenticate(username, password)

			ctx := ContextWithUser(r.Context(), username, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
