package usecase

import (
	"context"
	"errors"
	"fmt"

	"booklib/internal/auth"
	"booklib/internal/entity"
)

// BookService implements the catalog's request contract as a short-circuiting
// pipeline with fixed precedence: authentication, role, payload validation,
// id mismatch, existence, idempotence. An unauthenticated caller with a broken
// payload gets 401, never 400.
type BookService struct {
	store BookStore
}

func NewBookService(store BookStore) *BookService {
	return &BookService{store: store}
}

// Create stores a new book. Admin only. Re-submitting an identical payload
// for an existing id yields the stored book with ErrAlreadyReported, so
// retried creates stay idempotent; a divergent payload for a taken id is
// rejected as a validation failure rather than silently overwritten.
func (s *BookService) Create(ctx context.Context, role auth.Role, payload BookPayload) (entity.Book, error) {
	if !role.Authenticated() {
		return entity.Book{}, ErrUnauthenticated
	}
	if role != auth.RoleAdmin {
		return entity.Book{}, ErrForbidden
	}
	book, verr := payload.Validate()
	if verr != nil {
		return entity.Book{}, verr
	}

	created, err := s.store.Insert(ctx, book)
	if errors.Is(err, ErrDuplicateID) {
		if created.SameContent(book) {
			return created, ErrAlreadyReported
		}
		return entity.Book{}, &ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("Book with id %d already exists with different content", book.ID),
		}
	}
	if err != nil {
		return entity.Book{}, err
	}
	return created, nil
}

// List returns the full catalog in insertion order. Any authenticated role.
func (s *BookService) List(ctx context.Context, role auth.Role) ([]entity.Book, error) {
	if !role.Authenticated() {
		return nil, ErrUnauthenticated
	}
	return s.store.List(ctx)
}

// Get returns a single book by id. Any authenticated role.
func (s *BookService) Get(ctx context.Context, role auth.Role, id int64) (entity.Book, error) {
	if !role.Authenticated() {
		return entity.Book{}, ErrUnauthenticated
	}
	return s.store.Get(ctx, id)
}

// Update replaces the book under pathID. Admin only. The payload id must
// match the path id; a missing payload id counts as a mismatch.
func (s *BookService) Update(ctx context.Context, role auth.Role, pathID int64, payload BookPayload) (entity.Book, error) {
	if !role.Authenticated() {
		return entity.Book{}, ErrUnauthenticated
	}
	if role != auth.RoleAdmin {
		return entity.Book{}, ErrForbidden
	}
	book, verr := payload.Validate()
	if verr != nil {
		return entity.Book{}, verr
	}
	if book.ID != pathID {
		return entity.Book{}, errIDMismatch()
	}
	return s.store.Replace(ctx, pathID, book)
}

// Delete removes the book under id. Admin only.
func (s *BookService) Delete(ctx context.Context, role auth.Role, id int64) error {
	if !role.Authenticated() {
		return ErrUnauthenticated
	}
	if role != auth.RoleAdmin {
		return ErrForbidden
	}
	return s.store.Remove(ctx, id)
}
