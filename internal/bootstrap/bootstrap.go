// Package bootstrap wires configuration, logging and the extraction
// components together for the CLI entrypoints.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/cookscan/cookscan/internal/api"
	"github.com/cookscan/cookscan/internal/classifier"
	"github.com/cookscan/cookscan/internal/config"
	"github.com/cookscan/cookscan/internal/lexicon"
	"github.com/cookscan/cookscan/internal/logging"
	"github.com/cookscan/cookscan/internal/pdftext"
	"github.com/cookscan/cookscan/internal/pipeline"
	"github.com/cookscan/cookscan/internal/segmenter"
	"github.com/cookscan/cookscan/internal/storage"
	"github.com/cookscan/cookscan/internal/telemetry"
	"github.com/cookscan/cookscan/internal/validator"
)

// LoadConfig loads configuration from path, or from ./config.yaml when
// path is empty and the file exists. Falls back to defaults otherwise.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config) (logging.Logger, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger.With(logging.String("service", cfg.Service.Name)), nil
}

// Components holds everything both entrypoints need.
type Components struct {
	Lexicon    *lexicon.Lexicon
	Classifier *classifier.ContentClassifier
	Validator  *validator.RecipeValidator
	Store      *storage.Store
	Telemetry  *telemetry.Provider
}

// NewComponents builds the shared classification stack and opens storage.
// The caller owns Store and must close it.
func NewComponents(cfg *config.Config, logger logging.Logger) (*Components, error) {
	tp := telemetry.NewProvider()
	lex := lexicon.New()
	c := classifier.New(lex, logger, tp)

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	return &Components{
		Lexicon:    lex,
		Classifier: c,
		Validator:  validator.New(c, logger),
		Store:      store,
		Telemetry:  tp,
	}, nil
}

// NewPipeline builds a full extraction pipeline over the components.
func NewPipeline(comps *Components, cfg *config.Config, logger logging.Logger, opts pipeline.Options) *pipeline.Pipeline {
	if opts.Concurrency == 0 {
		opts.Concurrency = cfg.Service.Concurrency
	}
	return pipeline.New(
		pdftext.New(logger),
		segmenter.New(comps.Classifier, comps.Lexicon, logger),
		pipeline.NewBatchValidator(comps.Validator, opts.Concurrency, logger),
		comps.Store,
		comps.Telemetry,
		logger,
		opts,
	)
}

// NewServer builds the HTTP server over the components.
func NewServer(comps *Components, cfg *config.Config, logger logging.Logger) *api.Server {
	handler := api.NewHandler(comps.Classifier, comps.Validator, comps.Store, comps.Telemetry, logger)
	return api.NewServer(handler, api.ServerConfig{
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		Debug:          cfg.Service.Debug,
	}, logger)
}
