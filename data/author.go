package data

import (
	"context"

	"github.com/samber/lo"
	"github.com/senomas/bookql/graph/model"
)

func (s *MemoryStore) AddAuthor(ctx context.Context, input model.NewAuthor) (*model.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := model.Author{
		ID:   NextID(len(s.authors)),
		Name: input.Name,
	}
	s.authors = append(s.authors, author)
	return &author, nil
}

func (s *MemoryStore) Author(ctx context.Context, id int) (*model.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	author, ok := lo.Find(s.authors, func(a model.Author) bool {
		return a.ID == id
	})
	if !ok {
		return nil, nil
	}
	return &author, nil
}

func (s *MemoryStore) Authors(ctx context.Context) ([]*model.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Map(s.authors, func(a model.Author, _ int) *model.Author {
		return &a
	}), nil
}

// AuthorsByID returns the authors whose id is in ids, in store order. Ids with
// no match are skipped.
func (s *MemoryStore) AuthorsByID(ctx context.Context, ids []int) ([]*model.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.FilterMap(s.authors, func(a model.Author, _ int) (*model.Author, bool) {
		return &a, lo.Contains(ids, a.ID)
	}), nil
}
