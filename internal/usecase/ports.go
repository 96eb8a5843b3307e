package usecase

import (
	"context"

	"booklib/internal/entity"
)

// BookStore is the catalog persistence contract. The in-memory implementation
// lives in internal/store; tests substitute a generated mock.
//
// All operations are atomic with respect to each other: a Get issued after a
// completed mutation observes its effect, and no reader ever sees a
// half-written book.
type BookStore interface {
	// Get returns the book stored under id, or ErrNotFound.
	Get(ctx context.Context, id int64) (entity.Book, error)
	// List returns every stored book in insertion order.
	List(ctx context.Context) ([]entity.Book, error)
	// Insert stores a new book, assigning the next free id when book.ID is
	// zero. When the id is already taken it returns the existing record
	// together with ErrDuplicateID so the caller can decide between an
	// idempotent acknowledgment and a conflict.
	Insert(ctx context.Context, book entity.Book) (entity.Book, error)
	// Replace swaps the book stored under id for the given one. It returns
	// ErrNotFound when id is absent.
	Replace(ctx context.Context, id int64, book entity.Book) (entity.Book, error)
	// Remove deletes the book stored under id, or returns ErrNotFound.
	Remove(ctx context.Context, id int64) error
}
