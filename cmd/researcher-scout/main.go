// Package main provides the entry point for the researcher-scout CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/scholarmesh/researcher-scout/internal/config"
	"github.com/scholarmesh/researcher-scout/internal/extract"
	"github.com/scholarmesh/researcher-scout/internal/geo"
	"github.com/scholarmesh/researcher-scout/internal/observability"
	"github.com/scholarmesh/researcher-scout/internal/openalex"
	"github.com/scholarmesh/researcher-scout/internal/pipeline"
	"github.com/scholarmesh/researcher-scout/internal/qa"
	"github.com/scholarmesh/researcher-scout/internal/report"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the researcher-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "researcher-scout [query...]",
	Short: "Find leading researchers for your research interests",
	Long: `researcher-scout reads a research interest statement, infers the topics and
countries it mentions with an extractive question-answering model, and ranks
matching researchers from the OpenAlex scholarly graph by citation impact.

With no arguments the configured default query is analyzed. Positional
arguments are joined into a query override:

  researcher-scout "I'm interested in Marine Biology in Norway"`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		return run(configFile, args)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./config.yaml, ./config/config.yaml, /etc/researcher-scout/config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(configFile string, args []string) error {
	// Load .env when present so local runs pick up SCOUT_ variables.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
	}

	// Load configuration.
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Positional arguments override the configured query.
	if len(args) > 0 {
		cfg.Query.Text = strings.Join(args, " ")
	}

	// Set up structured logging.
	logger := observability.NewLogger(observability.LoggingConfig{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		AddSource:  cfg.Logging.AddSource,
		TimeFormat: cfg.Logging.TimeFormat,
	})
	logger = logger.With().Str("component", "scout").Logger()
	logger.Info().Str("version", version).Msg("researcher-scout starting")

	// Set up context with graceful shutdown via OS signals.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = observability.WithRunID(ctx, uuid.NewString())

	// Create the question-answering provider.
	answerer, err := qa.NewAnswerer(qa.FactoryConfig{
		Provider:   cfg.QA.Provider,
		Timeout:    cfg.QA.Timeout,
		MaxRetries: cfg.QA.MaxRetries,
		HuggingFace: qa.HuggingFaceConfig{
			APIToken: cfg.QA.APIToken,
			Model:    cfg.QA.Model,
			BaseURL:  cfg.QA.BaseURL,
		},
	})
	if err != nil {
		return fmt.Errorf("create QA provider: %w", err)
	}

	// Create the OpenAlex client.
	client := openalex.New(openalex.Config{
		BaseURL:   cfg.OpenAlex.BaseURL,
		Email:     cfg.OpenAlex.Email,
		Timeout:   cfg.OpenAlex.Timeout,
		RateLimit: cfg.OpenAlex.RateLimit,
		BurstSize: cfg.OpenAlex.BurstSize,
	})

	// Wire the scouting pipeline. The report goes to stdout; logs stay on
	// stderr per the logging config.
	scout := pipeline.New(
		extract.New(answerer, cfg.QA.ScoreThreshold, logger),
		client,
		geo.NewResolver(),
		report.New(os.Stdout),
		logger,
	)

	return scout.Run(ctx, cfg.Query.Text)
}
