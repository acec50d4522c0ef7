package graph

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/senomas/bookql/graph/model"
)

// CreateBook appends a book without checking that its author exists.
func (ds *DataSource) CreateBook(ctx context.Context, input model.NewBook) (*model.Book, error) {
	book, err := ds.Store.AddBook(ctx, input)
	if err != nil {
		return nil, err
	}
	ds.Clear()
	zerolog.Ctx(ctx).Info().Int("id", book.ID).Int("authorId", book.AuthorID).Str("name", book.Name).Msg("book added")
	return book, nil
}

func (ds *DataSource) Book(ctx context.Context, id int) (*model.Book, error) {
	return ds.Store.Book(ctx, id)
}

func (ds *DataSource) Books(ctx context.Context) ([]*model.Book, error) {
	return ds.Store.Books(ctx)
}

// AuthorBooks resolves Author.books, always a list.
func (ds *DataSource) AuthorBooks(ctx context.Context, obj *model.Author) Thunk[[]*model.Book] {
	thunk := ds.BooksLoader.Load(ctx, IDKey(obj.ID))
	return func() ([]*model.Book, error) {
		data, err := thunk()
		if err != nil {
			return nil, err
		}
		books, _ := data.([]*model.Book)
		if books == nil {
			books = []*model.Book{}
		}
		return books, nil
	}
}
