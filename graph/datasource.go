package graph

import (
	"context"
	"strconv"
	"time"

	"github.com/graph-gophers/dataloader"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/senomas/bookql/data"
	"github.com/senomas/bookql/graph/model"
)

type ContextID string

const Context_DataSource = ContextID("DataSource")

// DataSource is the per-request view of the store. Relationship lookups go
// through its loaders so that sibling parents share one store call.
type DataSource struct {
	Store        data.Store
	Metrics      *Metrics
	AuthorLoader *dataloader.Loader
	BooksLoader  *dataloader.Loader
}

// IDKey is a dataloader key over a record id.
type IDKey int

func (k IDKey) String() string {
	return strconv.Itoa(int(k))
}

func (k IDKey) Raw() interface{} {
	return int(k)
}

func NewDataSource(store data.Store, metrics *Metrics, wait time.Duration) *DataSource {
	ds := &DataSource{Store: store, Metrics: metrics}
	ds.AuthorLoader = dataloader.NewBatchedLoader(ds.batchAuthors, dataloader.WithWait(wait))
	ds.BooksLoader = dataloader.NewBatchedLoader(ds.batchBooks, dataloader.WithWait(wait))
	return ds
}

func WithDataSource(ctx context.Context, ds *DataSource) context.Context {
	return context.WithValue(ctx, Context_DataSource, ds)
}

// ForContext returns the request's DataSource, or nil outside a request.
func ForContext(ctx context.Context) *DataSource {
	ds, _ := ctx.Value(Context_DataSource).(*DataSource)
	return ds
}

// Clear drops every cached lookup. Called after each write so later fields in
// the same request see it.
func (ds *DataSource) Clear() {
	ds.AuthorLoader.ClearAll()
	ds.BooksLoader.ClearAll()
}

func keyIDs(keys dataloader.Keys) []int {
	ids := make([]int, len(keys))
	for i, k := range keys {
		ids[i] = k.Raw().(int)
	}
	return ids
}

func errorResults(n int, err error) []*dataloader.Result {
	results := make([]*dataloader.Result, n)
	for i := range results {
		results[i] = &dataloader.Result{Error: err}
	}
	return results
}

func (ds *DataSource) batchAuthors(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
	ids := keyIDs(keys)
	ds.Metrics.ObserveBatch("author", len(ids))
	zerolog.Ctx(ctx).Debug().Ints("ids", ids).Msg("batch authors")

	authors, err := ds.Store.AuthorsByID(ctx, lo.Uniq(ids))
	if err != nil {
		return errorResults(len(keys), err)
	}
	byID := lo.KeyBy(authors, func(a *model.Author) int { return a.ID })
	results := make([]*dataloader.Result, len(keys))
	for i, id := range ids {
		results[i] = &dataloader.Result{Data: byID[id]}
	}
	return results
}

func (ds *DataSource) batchBooks(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
	ids := keyIDs(keys)
	ds.Metrics.ObserveBatch("books", len(ids))
	zerolog.Ctx(ctx).Debug().Ints("authorIds", ids).Msg("batch books")

	books, err := ds.Store.BooksByAuthor(ctx, lo.Uniq(ids))
	if err != nil {
		return errorResults(len(keys), err)
	}
	byAuthor := lo.GroupBy(books, func(b *model.Book) int { return b.AuthorID })
	results := make([]*dataloader.Result, len(keys))
	for i, id := range ids {
		list := byAuthor[id]
		if list == nil {
			list = []*model.Book{}
		}
		results[i] = &dataloader.Result{Data: list}
	}
	return results
}
