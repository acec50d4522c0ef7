package graph_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/senomas/bookql/data"
	"github.com/senomas/bookql/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func JsonMatch(t *testing.T, expected interface{}, resp interface{}) {
	rJSON, _ := json.MarshalIndent(resp, "", "\t")
	eJSON, _ := json.MarshalIndent(expected, "", "\t")

	assert.Equal(t, string(eJSON), string(rJSON))
}

func Setup(t *testing.T) (data.Store, *graph.Resolver) {
	store := data.NewMemoryStore()
	require.NoError(t, graph.Populate(context.Background(), store))
	return store, graph.NewResolver(store, graph.NewMetrics("test"), time.Millisecond)
}

func TestLoadConfig(t *testing.T) {
	for _, k := range []string{"PORT", "STORE", "DB_POSTGRES", "LOGGER"} {
		t.Setenv(k, "")
	}

	t.Run("defaults", func(t *testing.T) {
		cfg, err := graph.LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, graph.Config, cfg)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bookql.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\nlogFormat: console\nbatchWait: 5ms\nplayground: false\n"), 0o600))

		cfg, err := graph.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, "console", cfg.LogFormat)
		assert.Equal(t, 5*time.Millisecond, cfg.BatchWait)
		assert.False(t, cfg.Playground)
		assert.Equal(t, graph.StoreMemory, cfg.Store)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bookql.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\n"), 0o600))
		t.Setenv("PORT", "7000")
		t.Setenv("DB_POSTGRES", "host=db")

		cfg, err := graph.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "7000", cfg.Port)
		assert.Equal(t, graph.StorePostgres, cfg.Store)
		assert.Equal(t, "host=db", cfg.DSN)
	})

	t.Run("unknown store", func(t *testing.T) {
		t.Setenv("STORE", "redis")

		_, err := graph.LoadConfig("")
		assert.ErrorContains(t, err, `unknown store "redis"`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := graph.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "read config")
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := graph.NewLogger(graph.ConfigType{Application: "bookql", LogLevel: "warn"}, &buf)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, "bookql", line["app"])
	assert.Equal(t, zerolog.WarnLevel.String(), line["level"])
}

func TestSetupMemory(t *testing.T) {
	cfg := graph.Config
	store, err := graph.Setup(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	authors, err := store.Authors(context.Background())
	require.NoError(t, err)
	assert.Len(t, authors, 3)
	books, err := store.Books(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 8)
}

func TestSetupUnknownStore(t *testing.T) {
	cfg := graph.Config
	cfg.Store = "redis"

	_, err := graph.Setup(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, `unknown store "redis"`)
}
