package models_test

import (
	"testing"

	"github.com/senomas/bookql/models"
	"github.com/senomas/bookql/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestPrintSchema(t *testing.T) {
	schema, err := models.NewSchema(test.NewResolver(t))
	require.NoError(t, err)

	sdl := models.PrintSchema(schema)
	loaded, gerr := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: sdl})
	require.Nil(t, gerr, sdl)

	fieldType := func(typeName string, field string) string {
		def := loaded.Types[typeName]
		require.NotNil(t, def, typeName)
		f := def.Fields.ForName(field)
		require.NotNil(t, f, "%s.%s", typeName, field)
		return f.Type.String()
	}

	assert.Equal(t, "Int!", fieldType("Author", "id"))
	assert.Equal(t, "String!", fieldType("Author", "name"))
	assert.Equal(t, "[Book]", fieldType("Author", "books"))
	assert.Equal(t, "Int!", fieldType("Book", "id"))
	assert.Equal(t, "String!", fieldType("Book", "name"))
	assert.Equal(t, "Int!", fieldType("Book", "authorId"))
	assert.Equal(t, "Author", fieldType("Book", "author"))

	assert.Equal(t, "Book", fieldType("Query", "book"))
	assert.Equal(t, "[Book]", fieldType("Query", "books"))
	assert.Equal(t, "Author", fieldType("Query", "author"))
	assert.Equal(t, "[Author]", fieldType("Query", "authors"))
	assert.Equal(t, "Int", loaded.Query.Fields.ForName("book").Arguments.ForName("id").Type.String())

	addBook := loaded.Mutation.Fields.ForName("addBook")
	require.NotNil(t, addBook)
	assert.Equal(t, "Book", addBook.Type.String())
	assert.Equal(t, "String!", addBook.Arguments.ForName("name").Type.String())
	assert.Equal(t, "Int!", addBook.Arguments.ForName("authorId").Type.String())
	assert.Equal(t, "String!", loaded.Mutation.Fields.ForName("addAuthor").Arguments.ForName("name").Type.String())

	assert.Equal(t, "This represents a book written by an author", loaded.Types["Book"].Description)
}
