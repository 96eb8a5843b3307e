package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"booklib/internal/httpx"
	"booklib/internal/usecase"
)

type BookHandler struct {
	service *usecase.BookService
}

func NewBookHandler(service *usecase.BookService) *BookHandler {
	return &BookHandler{service: service}
}

const booksPathPrefix = "/api/books/"

// bookIDFromPath extracts the {id} segment of /api/books/{id}. A missing or
// non-numeric segment is an unroutable resource, reported as 404 by callers.
func bookIDFromPath(r *http.Request) (int64, bool) {
	if !strings.HasPrefix(r.URL.Path, booksPathPrefix) {
		return 0, false
	}
	raw := strings.TrimPrefix(r.URL.Path, booksPathPrefix)
	if raw == "" || strings.Contains(raw, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// decodePayload reads the body into a BookPayload. A body that fails to
// decode behaves as an empty payload: the service still checks credentials
// first, so an anonymous caller with a broken body gets 401, not 400.
func decodePayload(r *http.Request) usecase.BookPayload {
	var payload usecase.BookPayload
	_ = json.NewDecoder(r.Body).Decode(&payload)
	return payload
}

// Create handles POST /api/books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload := decodePayload(r)

	book, err := h.service.Create(r.Context(), httpx.RoleFrom(r), payload)
	if errors.Is(err, usecase.ErrAlreadyReported) {
		httpx.JSON(w, http.StatusAlreadyReported, book)
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, book)
}

// List handles GET /api/books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context(), httpx.RoleFrom(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Get handles GET /api/books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDFromPath(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "Book not found")
		return
	}

	book, err := h.service.Get(r.Context(), httpx.RoleFrom(r), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, book)
}

// Update handles PUT /api/books/{id}.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDFromPath(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "Book not found")
		return
	}
	payload := decodePayload(r)

	book, err := h.service.Update(r.Context(), httpx.RoleFrom(r), id, payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, book)
}

// Delete handles DELETE /api/books/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDFromPath(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "Book not found")
		return
	}

	if err := h.service.Delete(r.Context(), httpx.RoleFrom(r), id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, fmt.Sprintf("Book with id %d deleted", id))
}

// writeServiceError maps the service error taxonomy onto status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *usecase.ValidationError
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		w.Header().Set("WWW-Authenticate", `Basic realm="books"`)
		httpx.JSONError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, usecase.ErrForbidden):
		httpx.JSONError(w, http.StatusForbidden, "You are not allowed to perform this action")
	case errors.Is(err, usecase.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "Book not found")
	case errors.As(err, &verr):
		httpx.JSONError(w, http.StatusBadRequest, verr.Message)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "server error")
	}
}
