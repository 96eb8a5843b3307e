package store

import (
	"context"
	"sync"

	"booklib/internal/entity"
	"booklib/internal/usecase"
)

// BookMem is the in-memory catalog. A single mutex serializes every mutation
// against concurrent reads, so a Get issued after a completed Insert, Replace
// or Remove always observes its effect. The catalog lives and dies with the
// process.
type BookMem struct {
	mu     sync.RWMutex
	books  map[int64]entity.Book
	order  []int64
	lastID int64
}

func NewBookMem() *BookMem {
	return &BookMem{
		books: make(map[int64]entity.Book),
	}
}

func (s *BookMem) Get(ctx context.Context, id int64) (entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return entity.Book{}, usecase.ErrNotFound
	}
	return book, nil
}

// List returns the catalog in insertion order. The returned slice is a copy;
// callers cannot mutate stored state through it.
func (s *BookMem) List(ctx context.Context) ([]entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]entity.Book, 0, len(s.order))
	for _, id := range s.order {
		books = append(books, s.books[id])
	}
	return books, nil
}

// Insert stores book, assigning the next free id when book.ID is zero. On an
// id collision it returns the record already stored under that id together
// with usecase.ErrDuplicateID, leaving the catalog untouched.
func (s *BookMem) Insert(ctx context.Context, book entity.Book) (entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if book.ID == 0 {
		book.ID = s.lastID + 1
	}
	if existing, ok := s.books[book.ID]; ok {
		return existing, usecase.ErrDuplicateID
	}

	s.books[book.ID] = book
	s.order = append(s.order, book.ID)
	if book.ID > s.lastID {
		s.lastID = book.ID
	}
	return book, nil
}

// Replace swaps the record under id for book, keeping its position in the
// listing order.
func (s *BookMem) Replace(ctx context.Context, id int64, book entity.Book) (entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return entity.Book{}, usecase.ErrNotFound
	}
	book.ID = id
	s.books[id] = book
	return book, nil
}

func (s *BookMem) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return usecase.ErrNotFound
	}
	delete(s.books, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Seed loads fixture books, overwriting any existing ids. Used at startup and
// by tests to reproduce the canonical pre-seeded catalog.
func (s *BookMem) Seed(books []entity.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, book := range books {
		if _, ok := s.books[book.ID]; !ok {
			s.order = append(s.order, book.ID)
		}
		s.books[book.ID] = book
		if book.ID > s.lastID {
			s.lastID = book.ID
		}
	}
}
