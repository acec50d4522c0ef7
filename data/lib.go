// Package data holds the record store behind the graph: authors and books kept
// as append-only ordered sequences.
package data

import (
	"context"
	"sync"

	"github.com/senomas/bookql/graph/model"
)

// Store is the record store contract shared by the in-memory and gorm backends.
//
// Lookups that miss return a nil record and a nil error. Every list is in
// insertion order.
type Store interface {
	AddAuthor(ctx context.Context, input model.NewAuthor) (*model.Author, error)
	Author(ctx context.Context, id int) (*model.Author, error)
	Authors(ctx context.Context) ([]*model.Author, error)
	AuthorsByID(ctx context.Context, ids []int) ([]*model.Author, error)

	AddBook(ctx context.Context, input model.NewBook) (*model.Book, error)
	Book(ctx context.Context, id int) (*model.Book, error)
	Books(ctx context.Context) ([]*model.Book, error)
	BooksByAuthor(ctx context.Context, authorIDs []int) ([]*model.Book, error)
}

// NextID is the id assignment policy: one past the current record count.
// It only yields unique ids while the sequence is append-only.
func NextID(count int) int {
	return count + 1
}

// MemoryStore keeps both sequences in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	authors []model.Author
	books   []model.Book
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}
