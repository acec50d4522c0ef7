package graph

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/senomas/bookql/graph/model"
)

func (ds *DataSource) CreateAuthor(ctx context.Context, input model.NewAuthor) (*model.Author, error) {
	author, err := ds.Store.AddAuthor(ctx, input)
	if err != nil {
		return nil, err
	}
	ds.Clear()
	zerolog.Ctx(ctx).Info().Int("id", author.ID).Str("name", author.Name).Msg("author added")
	return author, nil
}

func (ds *DataSource) Author(ctx context.Context, id int) (*model.Author, error) {
	return ds.Store.Author(ctx, id)
}

func (ds *DataSource) Authors(ctx context.Context) ([]*model.Author, error) {
	return ds.Store.Authors(ctx)
}

// BookAuthor resolves Book.author. A dangling author id yields nil.
func (ds *DataSource) BookAuthor(ctx context.Context, obj *model.Book) Thunk[*model.Author] {
	thunk := ds.AuthorLoader.Load(ctx, IDKey(obj.AuthorID))
	return func() (*model.Author, error) {
		data, err := thunk()
		if err != nil {
			return nil, err
		}
		author, _ := data.(*model.Author)
		return author, nil
	}
}
