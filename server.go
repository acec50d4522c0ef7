package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/senomas/bookql/graph"
	"github.com/senomas/bookql/models"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var (
		port      string
		store     string
		dsn       string
		logLevel  string
		logFormat string
		noUI      bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the GraphQL endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := graph.LoadConfig(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("port") {
				cfg.Port = port
			}
			if flags.Changed("store") {
				cfg.Store = store
			}
			if flags.Changed("dsn") {
				cfg.DSN = dsn
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if noUI {
				cfg.Playground = false
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", graph.Config.Port, "listen port")
	cmd.Flags().StringVar(&store, "store", graph.Config.Store, "record store: memory or postgres")
	cmd.Flags().StringVar(&dsn, "dsn", "", "postgres DSN")
	cmd.Flags().StringVar(&logLevel, "log-level", graph.Config.LogLevel, "log level")
	cmd.Flags().StringVar(&logFormat, "log-format", graph.Config.LogFormat, "log format: json or console")
	cmd.Flags().BoolVar(&noUI, "no-playground", false, "disable the playground at /")
	return cmd
}

func serve(ctx context.Context, cfg graph.ConfigType) error {
	log := graph.NewLogger(cfg, os.Stdout)

	store, err := graph.Setup(ctx, cfg, log)
	if err != nil {
		return errors.Wrap(err, "setup store")
	}
	r := graph.NewResolver(store, graph.NewMetrics(cfg.Application), cfg.BatchWait)
	h, err := models.Routes(cfg, log, r)
	if err != nil {
		return errors.Wrap(err, "build schema")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	if cfg.Playground {
		log.Info().Msgf("connect to http://localhost:%s/ for GraphQL playground", cfg.Port)
	}
	log.Info().Str("endpoint", models.Endpoint).Str("port", cfg.Port).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
