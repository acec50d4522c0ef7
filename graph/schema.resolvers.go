package graph

import (
	"context"
	"time"

	"github.com/senomas/bookql/graph/model"
)

func (r *authorResolver) Books(ctx context.Context, obj *model.Author) Thunk[[]*model.Book] {
	return r.dataSource(ctx).AuthorBooks(ctx, obj)
}

func (r *bookResolver) Author(ctx context.Context, obj *model.Book) Thunk[*model.Author] {
	return r.dataSource(ctx).BookAuthor(ctx, obj)
}

func (r *mutationResolver) AddBook(ctx context.Context, input model.NewBook) (book *model.Book, err error) {
	defer func(start time.Time) { r.Metrics.ObserveOperation("addBook", "mutation", start, err) }(time.Now())
	return r.dataSource(ctx).CreateBook(ctx, input)
}

func (r *mutationResolver) AddAuthor(ctx context.Context, input model.NewAuthor) (author *model.Author, err error) {
	defer func(start time.Time) { r.Metrics.ObserveOperation("addAuthor", "mutation", start, err) }(time.Now())
	return r.dataSource(ctx).CreateAuthor(ctx, input)
}

func (r *queryResolver) Book(ctx context.Context, id *int) (book *model.Book, err error) {
	defer func(start time.Time) { r.Metrics.ObserveOperation("book", "query", start, err) }(time.Now())
	if id == nil {
		return nil, nil
	}
	return r.dataSource(ctx).Book(ctx, *id)
}

func (r *queryResolver) Books(ctx context.Context) (books []*model.Book, err error) {
	defer func(start time.Time) { r.Metrics.ObserveOperation("books", "query", start, err) }(time.Now())
	return r.dataSource(ctx).Books(ctx)
}

func (r *queryResolver) Author(ctx context.Context, id *int) (author *model.Author, err error) {
	defer func(start time.Time) { r.Metrics.ObserveOperation("author", "query", start, err) }(time.Now())
	if id == nil {
		return nil, nil
	}
	return r.dataSource(ctx).Author(ctx, *id)
}

func (r *queryResolver) Authors(ctx context.Context) (authors []*model.Author, err error) {
	defer func(start time.Time) { r.Metrics.ObserveOperation("authors", "query", start, err) }(time.Now())
	return r.dataSource(ctx).Authors(ctx)
}

// Author returns AuthorResolver implementation.
func (r *Resolver) Author() AuthorResolver { return &authorResolver{r} }

// Book returns BookResolver implementation.
func (r *Resolver) Book() BookResolver { return &bookResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type authorResolver struct{ *Resolver }
type bookResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
