// Package observability provides logging and run-context support for the
// researcher scout.
//
// # Overview
//
// The observability package provides:
//
//   - Structured logging with zerolog
//   - Context helpers for propagating the pipeline run ID
//
// # Logging
//
// Create a logger from configuration:
//
//	cfg := observability.LoggingConfig{
//	    Level:     "info",
//	    Format:    "console",
//	    Output:    "stderr",
//	    AddSource: false,
//	}
//
//	logger := observability.NewLogger(cfg)
//	logger.Info().Str("run_id", runID).Msg("scout run started")
//
// Add run context to a logger:
//
//	logger = observability.WithRunContext(logger, runID)
//
// # Context Helpers
//
// Store and retrieve the run ID:
//
//	ctx = observability.WithRunID(ctx, runID)
//	runID := observability.RunIDFromContext(ctx)
//
// # Standard Fields
//
// Common fields used across the scout:
//
//   - run_id: Pipeline run identifier
//   - query: Interest statement under analysis
//   - topic: Extracted research topic
//   - concept_id: OpenAlex concept identifier
//   - country: ISO 3166-1 alpha-2 country filter
//
// # Thread Safety
//
// All components are safe for concurrent use from multiple goroutines.
package observability
