package httpx

import (
	"context"
	"net/http"

	"booklib/internal/auth"
)

type contextKey string

const (
	usernameKey  contextKey = "username"
	roleKey      contextKey = "role"
	requestIDKey contextKey = "requestID"
)

// ContextWithUser returns a new context carrying the caller's username and
// resolved role.
func ContextWithUser(ctx context.Context, username string, role auth.Role) context.Context {
	ctx = context.WithValue(ctx, usernameKey, username)
	return context.WithValue(ctx, roleKey, role)
}

// UsernameFrom retrieves the caller's username from the request context.
func UsernameFrom(r *http.Request) string {
	if v, ok := r.Context().Value(usernameKey).(string); ok {
		return v
	}
	return ""
}

// RoleFrom retrieves the caller's role from the request context. Requests
// that never passed the auth middleware count as anonymous.
func RoleFrom(r *http.Request) auth.Role {
	if v, ok := r.Context().Value(roleKey).(auth.Role); ok {
		return v
	}
	return auth.RoleAnonymous
}

// ContextWithRequestID returns a new context carrying the request id.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom retrieves the request id from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
