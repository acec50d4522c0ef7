package models_test

import (
	"context"
	"errors"
	"testing"

	"github.com/senomas/bookql/data"
	"github.com/senomas/bookql/graph"
	"github.com/senomas/bookql/graph/model"
	"github.com/senomas/bookql/models"
	"github.com/senomas/bookql/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	r := test.NewResolver(t)
	schema, err := models.NewSchema(r)
	require.NoError(t, err)
	ctx := graph.WithDataSource(context.Background(), r.NewDataSource())
	qlTest, qlTestError := test.QLTest(t, schema, ctx)

	t.Run("book with author", func(t *testing.T) {
		qlTest(`{
			book(id: 3) {
				id
				name
				authorId
				author {
					id
					name
				}
			}
		}`, `{
			"data": {
				"book": {
					"id": 3,
					"name": "Book 3",
					"authorId": 2,
					"author": {
						"id": 2,
						"name": "Author 2"
					}
				}
			}
		}`)
	})

	t.Run("book not found", func(t *testing.T) {
		qlTest(`{
			book(id: 100) {
				id
				name
			}
		}`, `{
			"data": {
				"book": null
			}
		}`)
	})

	t.Run("book without id", func(t *testing.T) {
		qlTest(`{ book { id } }`, `{ "data": { "book": null } }`)
	})

	t.Run("author with books", func(t *testing.T) {
		qlTest(`{
			author(id: 1) {
				name
				books {
					id
					name
				}
			}
		}`, `{
			"data": {
				"author": {
					"name": "Author 1",
					"books": [
						{ "id": 1, "name": "Book 1" },
						{ "id": 2, "name": "Book 2" }
					]
				}
			}
		}`)
	})

	t.Run("authors with books", func(t *testing.T) {
		qlTest(`{
			authors {
				id
				books {
					id
				}
			}
		}`, `{
			"data": {
				"authors": [
					{ "id": 1, "books": [ { "id": 1 }, { "id": 2 } ] },
					{ "id": 2, "books": [ { "id": 3 }, { "id": 4 } ] },
					{ "id": 3, "books": [ { "id": 5 }, { "id": 6 }, { "id": 7 }, { "id": 8 } ] }
				]
			}
		}`)
	})

	t.Run("books with authors", func(t *testing.T) {
		qlTest(`{
			books {
				id
				author {
					name
				}
			}
		}`, `{
			"data": {
				"books": [
					{ "id": 1, "author": { "name": "Author 1" } },
					{ "id": 2, "author": { "name": "Author 1" } },
					{ "id": 3, "author": { "name": "Author 2" } },
					{ "id": 4, "author": { "name": "Author 2" } },
					{ "id": 5, "author": { "name": "Author 3" } },
					{ "id": 6, "author": { "name": "Author 3" } },
					{ "id": 7, "author": { "name": "Author 3" } },
					{ "id": 8, "author": { "name": "Author 3" } }
				]
			}
		}`)
	})

	t.Run("invalid id type", func(t *testing.T) {
		qlTestError(`{ book(id: "two") { id } }`, `Argument "id" has invalid value`)
	})

	t.Run("add book requires author id", func(t *testing.T) {
		qlTestError(`mutation { addBook(name: "Y") { id } }`, `argument "authorId" of type "Int!" is required`)
	})

	t.Run("add author", func(t *testing.T) {
		qlTest(`mutation {
			addAuthor(name: "X") {
				id
				name
				books {
					id
				}
			}
		}`, `{
			"data": {
				"addAuthor": {
					"id": 4,
					"name": "X",
					"books": []
				}
			}
		}`)
	})

	t.Run("add book shows in author books", func(t *testing.T) {
		qlTest(`mutation {
			addBook(name: "Y", authorId: 2) {
				id
				name
				author {
					id
				}
			}
		}`, `{
			"data": {
				"addBook": {
					"id": 9,
					"name": "Y",
					"author": { "id": 2 }
				}
			}
		}`)
		qlTest(`{
			author(id: 2) {
				books {
					name
				}
			}
		}`, `{
			"data": {
				"author": {
					"books": [
						{ "name": "Book 3" },
						{ "name": "Book 4" },
						{ "name": "Y" }
					]
				}
			}
		}`)
	})

	t.Run("add book with dangling author", func(t *testing.T) {
		qlTest(`mutation {
			addBook(name: "Orphan", authorId: 404) {
				id
				authorId
				author {
					id
				}
			}
		}`, `{
			"data": {
				"addBook": {
					"id": 10,
					"authorId": 404,
					"author": null
				}
			}
		}`)
		qlTest(`{ book(id: 10) { name author { name } } }`, `{
			"data": {
				"book": {
					"name": "Orphan",
					"author": null
				}
			}
		}`)
	})

	t.Run("mutations run in order within one request", func(t *testing.T) {
		qlTest(`mutation {
			first: addAuthor(name: "A") { id }
			second: addAuthor(name: "B") { id }
		}`, `{
			"data": {
				"first": { "id": 5 },
				"second": { "id": 6 }
			}
		}`)
	})
}

type failingStore struct {
	data.Store
}

func (s failingStore) BooksByAuthor(ctx context.Context, authorIDs []int) ([]*model.Book, error) {
	return nil, errors.New("books unavailable")
}

func TestSchema_FieldErrorKeepsSiblings(t *testing.T) {
	seeded := test.NewResolver(t)
	r := graph.NewResolver(failingStore{seeded.Store}, nil, seeded.BatchWait)
	schema, err := models.NewSchema(r)
	require.NoError(t, err)
	_, qlTestError := test.QLTest(t, schema, context.Background())

	res := qlTestError(`{
		author(id: 1) {
			name
			books {
				id
			}
		}
	}`, "books unavailable")

	author := res.Data.(map[string]interface{})["author"].(map[string]interface{})
	assert.Equal(t, "Author 1", author["name"])
	assert.Nil(t, author["books"])
}
