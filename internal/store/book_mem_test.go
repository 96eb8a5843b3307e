package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"booklib/internal/entity"
	"booklib/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookMem_InsertAssignsIDs(t *testing.T) {
	ctx := context.Background()
	s := NewBookMem()

	first, err := s.Insert(ctx, entity.Book{Title: "A", Author: "B"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := s.Insert(ctx, entity.Book{Title: "C", Author: "D"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestBookMem_InsertExplicitID(t *testing.T) {
	ctx := context.Background()
	s := NewBookMem()

	book, err := s.Insert(ctx, entity.Book{ID: 10, Title: "A", Author: "B"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), book.ID)

	// The id counter follows the highest explicit id.
	next, err := s.Insert(ctx, entity.Book{Title: "C", Author: "D"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), next.ID)
}

func TestBookMem_InsertDuplicateReturnsExisting(t *testing.T) {
	ctx := context.Background()
	s := NewBookMem()

	stored, err := s.Insert(ctx, entity.Book{ID: 5, Title: "A", Author: "B"})
	require.NoError(t, err)

	existing, err := s.Insert(ctx, entity.Book{ID: 5, Title: "X", Author: "Y"})
	assert.ErrorIs(t, err, usecase.ErrDuplicateID)
	assert.Equal(t, stored, existing)

	// The catalog is untouched by the failed insert.
	got, err := s.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)
}

func TestBookMem_GetNotFound(t *testing.T) {
	s := NewBookMem()

	_, err := s.Get(context.Background(), 999)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestBookMem_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewBookMem()

	_, _ = s.Insert(ctx, entity.Book{ID: 3, Title: "C", Author: "c"})
	_, _ = s.Insert(ctx, entity.Book{ID: 1, Title: "A", Author: "a"})
	_, _ = s.Insert(ctx, entity.Book{ID: 2, Title: "B", Author: "b"})

	books, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, int64(3), books[0].ID)
	assert.Equal(t, int64(1), books[1].ID)
	assert.Equal(t, int64(2), books[2].ID)
}

func TestBookMem_Replace(t *testing.T) {
	ctx := context.Background()
	s := NewBookMem()

	_, _ = s.Insert(ctx, entity.Book{ID: 1, Title: "A", Author: "a"})
	_, _ = s.Insert(ctx, entity.Book{ID: 2, Title: "B", Author: "b"})

	updated, err := s.Replace(ctx, 1, entity.Book{ID: 1, Title: "A2", Author: "a2"})
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.Title)

	// Replacing keeps the listing position.
	books, _ := s.List(ctx)
	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, "A2", books[0].Title)
}

func TestBookMem_ReplaceNotFound(t *testing.T) {
	s := NewBookMem()

	_, err := s.Replace(context.Background(), 999, entity.Book{ID: 999, Title: "X", Author: "Y"})
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestBookMem_Remove(t *testing.T) {
	ctx := context.Background()
	s := NewBookMem()

	_, _ = s.Insert(ctx, entity.Book{ID: 1, Title: "A", Author: "a"})

	require.NoError(t, s.Remove(ctx, 1))
	assert.ErrorIs(t, s.Remove(ctx, 1), usecase.ErrNotFound)

	books, _ := s.List(ctx)
	assert.Empty(t, books)
}

func TestBookMem_Seed(t *testing.T) {
	ctx := context.Background()
	s := NewBookMem()

	s.Seed([]entity.Book{
		{ID: 1, Title: "A", Author: "a"},
		{ID: 2, Title: "B", Author: "b"},
	})
	// Re-seeding overwrites without duplicating.
	s.Seed([]entity.Book{{ID: 1, Title: "A2", Author: "a2"}})

	books, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "A2", books[0].Title)

	next, err := s.Insert(ctx, entity.Book{Title: "C", Author: "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), next.ID)
}

func TestBookMem_ConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	s := NewBookMem()

	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := int64(n + 1)
			_, err := s.Insert(ctx, entity.Book{ID: id, Title: fmt.Sprintf("T%d", id), Author: "A"})
			assert.NoError(t, err)

			// Read-your-writes: the insert must be visible immediately.
			got, err := s.Get(ctx, id)
			assert.NoError(t, err)
			assert.Equal(t, id, got.ID)
		}(i)
	}
	wg.Wait()

	books, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, books, workers)
}
