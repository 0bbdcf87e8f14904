package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/cookscan/cookscan/internal/bootstrap"
	"github.com/cookscan/cookscan/internal/logging"
)

const shutdownTimeout = 30 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the classification and validation HTTP API",
	Long: `Serve starts the HTTP API used for debugging classifications,
validating candidates and browsing extracted recipes.

Endpoints:
  POST /api/v1/classify        classify one text block
  POST /api/v1/classify/batch  classify up to 100 blocks
  POST /api/v1/validate        validate an assembled candidate
  GET  /api/v1/recipes         list stored recipes
  GET  /api/v1/stats           recipe count and rejection tally
  GET  /metrics                Prometheus metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bootstrap.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		logger, err := bootstrap.CreateLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		comps, err := bootstrap.NewComponents(cfg, logger)
		if err != nil {
			return err
		}
		defer func() { _ = comps.Store.Close() }()

		server := bootstrap.NewServer(comps, cfg, logger)

		serverErrors := make(chan error, 1)
		go func() {
			serverErrors <- server.Start()
		}()

		select {
		case err := <-serverErrors:
			return err
		case <-cmd.Context().Done():
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown failed", logging.Error(err))
				return err
			}
			logger.Info("server stopped gracefully")
			return nil
		}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config)")
}
