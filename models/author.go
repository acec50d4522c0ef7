package models

import (
	"github.com/graphql-go/graphql"
	"github.com/senomas/bookql/graph/model"
)

func authorFields(t *Types) graphql.Fields {
	return graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"books": &graphql.Field{
			Type: graphql.NewList(t.Book),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				author, err := sourceAuthor(p)
				if err != nil {
					return nil, err
				}
				return thunk(t.Root.Author().Books(p.Context, author)), nil
			},
		},
	}
}

func AuthorQueries(t *Types, fields graphql.Fields) graphql.Fields {
	fields["author"] = &graphql.Field{
		Type:        t.Author,
		Description: "A single author",
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{
				Type: graphql.Int,
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return nullable(t.Root.Query().Author(p.Context, optionalInt(p, "id")))
		},
	}
	fields["authors"] = &graphql.Field{
		Type:        graphql.NewList(t.Author),
		Description: "List of all authors",
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return t.Root.Query().Authors(p.Context)
		},
	}
	return fields
}

func AuthorMutations(t *Types, fields graphql.Fields) graphql.Fields {
	fields["addAuthor"] = &graphql.Field{
		Type:        t.Author,
		Description: "Add a new author",
		Args: graphql.FieldConfigArgument{
			"name": &graphql.ArgumentConfig{
				Type: graphql.NewNonNull(graphql.String),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			input := model.NewAuthor{
				Name: p.Args["name"].(string),
			}
			return nullable(t.Root.Mutation().AddAuthor(p.Context, input))
		},
	}
	return fields
}
