package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"booklib/internal/auth"
	"booklib/internal/entity"
	"booklib/internal/httpx"
)

// TestBook is a fixture record for store and handler tests.
var TestBook = entity.Book{
	ID:     1,
	Title:  "The World: A Family History",
	Author: "Simon Sebag Montefiore",
}

// NewGate builds the stock credential gate used across tests.
func NewGate() *auth.Gate {
	return auth.NewGate(auth.DefaultCredentials("admin", "password", "user", "password"))
}

// NewRequest creates an HTTP request with an optional JSON body.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithBasicAuth creates a request carrying Basic credentials.
func NewRequestWithBasicAuth(method, path string, body interface{}, username, password string) *http.Request {
	r := NewRequest(method, path, body)
	r.SetBasicAuth(username, password)
	return r
}

// WithRole attaches a resolved role to the request context, standing in for
// the Basic-auth middleware in bare handler tests.
func WithRole(r *http.Request, role auth.Role) *http.Request {
	return r.WithContext(httpx.ContextWithUser(r.Context(), "tester", role))
}

// RecordResponse is a decoded test response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse drains a recorder into a RecordResponse. The body is
// decoded leniently; non-object bodies leave Body nil.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
