// Package models binds the graph resolvers to a graphql-go schema: the Author
// and Book object types, the query and mutation roots, and the HTTP surface.
package models

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/senomas/bookql/graph"
	"github.com/senomas/bookql/graph/model"
)

// Types holds the object types of one schema. Author and Book reference each
// other, so their fields are built lazily.
type Types struct {
	Root   graph.ResolverRoot
	Author *graphql.Object
	Book   *graphql.Object
}

func NewTypes(root graph.ResolverRoot) *Types {
	t := &Types{Root: root}
	t.Author = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Author",
		Description: "This represents an author of a book",
		Fields:      graphql.FieldsThunk(func() graphql.Fields { return authorFields(t) }),
	})
	t.Book = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Book",
		Description: "This represents a book written by an author",
		Fields:      graphql.FieldsThunk(func() graphql.Fields { return bookFields(t) }),
	})
	return t
}

func CreateFields(t *Types, fns ...func(t *Types, fields graphql.Fields) graphql.Fields) graphql.Fields {
	fields := graphql.Fields{}
	for _, fn := range fns {
		fields = fn(t, fields)
	}
	return fields
}

// NewSchema composes the query and mutation roots over root.
func NewSchema(root graph.ResolverRoot) (graphql.Schema, error) {
	t := NewTypes(root)
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: CreateFields(t, BookQueries, AuthorQueries),
		}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Mutation",
			Fields: CreateFields(t, BookMutations, AuthorMutations),
		}),
	})
}

func sourceAuthor(p graphql.ResolveParams) (*model.Author, error) {
	switch v := p.Source.(type) {
	case *model.Author:
		return v, nil
	case model.Author:
		return &v, nil
	default:
		return nil, fmt.Errorf("unexpected type %#v", v)
	}
}

func sourceBook(p graphql.ResolveParams) (*model.Book, error) {
	switch v := p.Source.(type) {
	case *model.Book:
		return v, nil
	case model.Book:
		return &v, nil
	default:
		return nil, fmt.Errorf("unexpected type %#v", v)
	}
}

// optionalInt reads a nullable Int argument.
func optionalInt(p graphql.ResolveParams, name string) *int {
	if v, ok := p.Args[name].(int); ok {
		return &v
	}
	return nil
}

// nullable keeps a nil record from reaching the executor as a typed nil.
func nullable[T any](v *T, err error) (interface{}, error) {
	if err != nil || v == nil {
		return nil, err
	}
	return v, nil
}

func thunk[T any](fn graph.Thunk[T]) func() (interface{}, error) {
	return func() (interface{}, error) {
		return fn()
	}
}

func nullableThunk[T any](fn graph.Thunk[*T]) func() (interface{}, error) {
	return func() (interface{}, error) {
		return nullable(fn())
	}
}
