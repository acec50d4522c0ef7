package graph

import (
	"context"
	"time"

	"github.com/senomas/bookql/data"
	"github.com/senomas/bookql/graph/model"
)

// Thunk defers a field value until the executor asks for it.
type Thunk[T any] func() (T, error)

type QueryResolver interface {
	Book(ctx context.Context, id *int) (*model.Book, error)
	Books(ctx context.Context) ([]*model.Book, error)
	Author(ctx context.Context, id *int) (*model.Author, error)
	Authors(ctx context.Context) ([]*model.Author, error)
}

type MutationResolver interface {
	AddBook(ctx context.Context, input model.NewBook) (*model.Book, error)
	AddAuthor(ctx context.Context, input model.NewAuthor) (*model.Author, error)
}

type AuthorResolver interface {
	Books(ctx context.Context, obj *model.Author) Thunk[[]*model.Book]
}

type BookResolver interface {
	Author(ctx context.Context, obj *model.Book) Thunk[*model.Author]
}

type ResolverRoot interface {
	Query() QueryResolver
	Mutation() MutationResolver
	Author() AuthorResolver
	Book() BookResolver
}

type Resolver struct {
	Store     data.Store
	Metrics   *Metrics
	BatchWait time.Duration
}

var _ ResolverRoot = (*Resolver)(nil)

func NewResolver(store data.Store, metrics *Metrics, batchWait time.Duration) *Resolver {
	return &Resolver{Store: store, Metrics: metrics, BatchWait: batchWait}
}

// NewDataSource builds a fresh per-request DataSource over r.Store.
func (r *Resolver) NewDataSource() *DataSource {
	return NewDataSource(r.Store, r.Metrics, r.BatchWait)
}

// dataSource returns the request's DataSource, or an unshared one when the
// resolver is called outside an HTTP request.
func (r *Resolver) dataSource(ctx context.Context) *DataSource {
	if ds := ForContext(ctx); ds != nil {
		return ds
	}
	return r.NewDataSource()
}
