package models

import (
	"github.com/graphql-go/graphql"
	"github.com/senomas/bookql/graph/model"
)

func bookFields(t *Types) graphql.Fields {
	return graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"authorId": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
		},
		"author": &graphql.Field{
			Type: t.Author,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				book, err := sourceBook(p)
				if err != nil {
					return nil, err
				}
				return nullableThunk(t.Root.Book().Author(p.Context, book)), nil
			},
		},
	}
}

func BookQueries(t *Types, fields graphql.Fields) graphql.Fields {
	fields["book"] = &graphql.Field{
		Type:        t.Book,
		Description: "A single book",
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{
				Type: graphql.Int,
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return nullable(t.Root.Query().Book(p.Context, optionalInt(p, "id")))
		},
	}
	fields["books"] = &graphql.Field{
		Type:        graphql.NewList(t.Book),
		Description: "List of all books",
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return t.Root.Query().Books(p.Context)
		},
	}
	return fields
}

func BookMutations(t *Types, fields graphql.Fields) graphql.Fields {
	fields["addBook"] = &graphql.Field{
		Type:        t.Book,
		Description: "Add a new book",
		Args: graphql.FieldConfigArgument{
			"name": &graphql.ArgumentConfig{
				Type: graphql.NewNonNull(graphql.String),
			},
			"authorId": &graphql.ArgumentConfig{
				Type: graphql.NewNonNull(graphql.Int),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			input := model.NewBook{
				Name:     p.Args["name"].(string),
				AuthorID: p.Args["authorId"].(int),
			}
			return nullable(t.Root.Mutation().AddBook(p.Context, input))
		},
	}
	return fields
}
