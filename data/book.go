package data

import (
	"context"

	"github.com/samber/lo"
	"github.com/senomas/bookql/graph/model"
)

// AddBook appends a book. The author id is stored as given; a book may point at
// an author that does not exist.
func (s *MemoryStore) AddBook(ctx context.Context, input model.NewBook) (*model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := model.Book{
		ID:       NextID(len(s.books)),
		Name:     input.Name,
		AuthorID: input.AuthorID,
	}
	s.books = append(s.books, book)
	return &book, nil
}

func (s *MemoryStore) Book(ctx context.Context, id int) (*model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := lo.Find(s.books, func(b model.Book) bool {
		return b.ID == id
	})
	if !ok {
		return nil, nil
	}
	return &book, nil
}

func (s *MemoryStore) Books(ctx context.Context) ([]*model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Map(s.books, func(b model.Book, _ int) *model.Book {
		return &b
	}), nil
}

// BooksByAuthor returns every book written by one of authorIDs, in store order.
func (s *MemoryStore) BooksByAuthor(ctx context.Context, authorIDs []int) ([]*model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.FilterMap(s.books, func(b model.Book, _ int) (*model.Book, bool) {
		return &b, lo.Contains(authorIDs, b.AuthorID)
	}), nil
}
