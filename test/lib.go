// Package test holds helpers shared by schema-level tests.
package test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/senomas/bookql/data"
	"github.com/senomas/bookql/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewResolver returns a resolver over a freshly seeded memory store.
func NewResolver(t *testing.T) *graph.Resolver {
	store := data.NewMemoryStore()
	require.NoError(t, graph.Populate(context.Background(), store))
	return graph.NewResolver(store, graph.NewMetrics("test"), time.Millisecond)
}

// QLTest returns two runners over schema: the first asserts the whole result
// against the expected JSON, the second asserts a single error containing str.
func QLTest(t *testing.T, schema graphql.Schema, ctx context.Context) (func(query string, str string) *graphql.Result, func(query string, str string) *graphql.Result) {
	return func(query string, str string) *graphql.Result {
			params := graphql.Params{
				Schema:        schema,
				RequestString: query,
				RootObject:    make(map[string]interface{}),
				Context:       ctx,
			}
			r := graphql.Do(params)

			rJSON, _ := json.MarshalIndent(r, "", "\t")

			v := make(map[string]interface{})
			json.Unmarshal([]byte(str), &v)
			eJSON, _ := json.MarshalIndent(v, "", "\t")

			assert.Equal(t, string(eJSON), string(rJSON))

			return r
		}, func(query string, str string) *graphql.Result {
			params := graphql.Params{
				Schema:        schema,
				RequestString: query,
				RootObject:    make(map[string]interface{}),
				Context:       ctx,
			}
			r := graphql.Do(params)

			if assert.Equal(t, 1, len(r.Errors)) {
				assert.ErrorContains(t, r.Errors[0], str)
			}

			return r
		}
}
