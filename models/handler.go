package models

import (
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/senomas/bookql/graph"
)

const Endpoint = "/graphql"

// NewHandler serves schema over HTTP. Each request gets its own DataSource so
// loader caches never outlive the request.
func NewHandler(schema graphql.Schema, r *graph.Resolver) http.Handler {
	h := handler.New(&handler.Config{
		Schema: &schema,
		Pretty: true,
	})
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := graph.WithDataSource(req.Context(), r.NewDataSource())
		h.ContextHandler(ctx, w, req)
	})
}

// Routes wires the GraphQL endpoint, the playground and the metrics endpoint,
// wrapped in request logging.
func Routes(cfg graph.ConfigType, log zerolog.Logger, r *graph.Resolver) (http.Handler, error) {
	schema, err := NewSchema(r)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(Endpoint, NewHandler(schema, r))
	mux.Handle("/metrics", r.Metrics.Handler())
	if cfg.Playground {
		mux.Handle("/", playground.Handler("GraphQL playground", Endpoint))
	}
	return Middleware(log, mux), nil
}

func Middleware(log zerolog.Logger, next http.Handler) http.Handler {
	h := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(next)
	h = hlog.RequestIDHandler("req_id", "Request-Id")(h)
	return hlog.NewHandler(log)(h)
}
