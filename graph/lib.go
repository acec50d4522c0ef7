package graph

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/senomas/bookql/data"
	"github.com/senomas/bookql/graph/model"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type ConfigType struct {
	Application string        `yaml:"application"`
	Port        string        `yaml:"port"`
	Store       string        `yaml:"store"`
	DSN         string        `yaml:"dsn"`
	LogLevel    string        `yaml:"logLevel"`
	LogFormat   string        `yaml:"logFormat"`
	SQLLog      bool          `yaml:"sqlLog"`
	BatchWait   time.Duration `yaml:"batchWait"`
	Playground  bool          `yaml:"playground"`
}

var Config = ConfigType{
	Application: "bookql",
	Port:        "8088",
	Store:       StoreMemory,
	DSN:         "host=localhost user=demo password=password dbname=demo port=5432 sslmode=disable TimeZone=Asia/Jakarta",
	LogLevel:    "info",
	LogFormat:   "json",
	BatchWait:   2 * time.Millisecond,
	Playground:  true,
}

// LoadConfig starts from Config, applies the yaml file at path when path is
// not empty, then the environment.
func LoadConfig(path string) (ConfigType, error) {
	cfg := Config
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		switch pair[0] {
		case "PORT":
			if pair[1] != "" {
				cfg.Port = pair[1]
			}
		case "STORE":
			if pair[1] != "" {
				cfg.Store = pair[1]
			}
		case "DB_POSTGRES":
			if pair[1] != "" {
				cfg.DSN = pair[1]
				cfg.Store = StorePostgres
			}
		case "LOGGER":
			if pair[1] != "" {
				cfg.SQLLog = true
				cfg.LogLevel = "debug"
			}
		}
	}
	switch cfg.Store {
	case StoreMemory, StorePostgres:
	default:
		return cfg, errors.Errorf("unknown store %q", cfg.Store)
	}
	return cfg, nil
}

func NewLogger(cfg ConfigType, w io.Writer) zerolog.Logger {
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("app", cfg.Application).Logger()
}

func Of[E any](e E) *E {
	return &e
}

func JsonStr(v interface{}) string {
	rJSON, _ := json.MarshalIndent(v, "", "\t")
	return string(rJSON)
}

// Setup opens the configured store and loads the seed records into it.
func Setup(ctx context.Context, cfg ConfigType, log zerolog.Logger) (data.Store, error) {
	var store data.Store
	switch cfg.Store {
	case StorePostgres:
		level := logger.Silent
		if cfg.SQLLog {
			level = logger.Info
		}
		gormLogger := logger.New(&log, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		})
		db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{Logger: gormLogger})
		if err != nil {
			return nil, errors.Wrap(err, "open postgres")
		}
		gs := data.NewGormStore(db)
		if err := gs.Migrate(); err != nil {
			return nil, err
		}
		store = gs
	case StoreMemory:
		store = data.NewMemoryStore()
	default:
		return nil, errors.Errorf("unknown store %q", cfg.Store)
	}

	if err := Populate(ctx, store); err != nil {
		return nil, errors.Wrap(err, "populate")
	}
	log.Info().Str("store", cfg.Store).Msg("store ready")
	return store, nil
}

var seedAuthors = []string{"Author 1", "Author 2", "Author 3"}

var seedBooks = []model.NewBook{
	{Name: "Book 1", AuthorID: 1},
	{Name: "Book 2", AuthorID: 1},
	{Name: "Book 3", AuthorID: 2},
	{Name: "Book 4", AuthorID: 2},
	{Name: "Book 5", AuthorID: 3},
	{Name: "Book 6", AuthorID: 3},
	{Name: "Book 7", AuthorID: 3},
	{Name: "Book 8", AuthorID: 3},
}

func Populate(ctx context.Context, store data.Store) error {
	for _, name := range seedAuthors {
		if _, err := store.AddAuthor(ctx, model.NewAuthor{Name: name}); err != nil {
			return err
		}
	}
	for _, book := range seedBooks {
		if _, err := store.AddBook(ctx, book); err != nil {
			return errors.Wrapf(err, "seed %s", book.Name)
		}
	}
	return nil
}
