package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jobflow/jobflow/internal/config"
	"github.com/jobflow/jobflow/internal/discovery"
	"github.com/jobflow/jobflow/internal/logger"
	"github.com/jobflow/jobflow/internal/store"
)

// loadMergedConfig assembles the effective configuration: config file, then
// environment, then persistent flags, then hard defaults.
func loadMergedConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.FromEnv()

	if flagState != "" {
		cfg.StateFile = flagState
	}
	if flagDBURL != "" {
		cfg.DatabaseURL = flagDBURL
	}
	if flagJSONLogs {
		cfg.JSONLogs = true
	}
	if flagDebug {
		cfg.Debug = true
	}

	merged := cfg.MergeWithDefaults(config.Config{})
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// newLogger builds the zap logger from the merged config.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLogs, cfg.Debug)
}

// openStore picks the Postgres backend when a database URL is configured and
// the JSON file backend otherwise.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		s, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database store: %w", err)
		}
		return s, nil
	}
	return store.NewFileStore(cfg.StateFile), nil
}

// buildSources instantiates the configured real job sources, each behind a
// circuit breaker.
func buildSources(cfg *config.Config, log *zap.Logger) ([]discovery.Source, error) {
	var sources []discovery.Source
	for _, name := range cfg.Sources {
		var source discovery.Source
		switch name {
		case "himalayas":
			source = discovery.NewHimalayasSource()
		case "remoteok":
			source = discovery.NewRemoteOKSource()
		default:
			return nil, fmt.Errorf("unknown job source %q", name)
		}
		sources = append(sources, discovery.WithBreaker(source, log))
	}
	return sources, nil
}

// buildAggregator wires the configured sources into an aggregator.
func buildAggregator(cfg *config.Config, log *zap.Logger) (*discovery.Aggregator, error) {
	sources, err := buildSources(cfg, log)
	if err != nil {
		return nil, err
	}
	return discovery.NewAggregator(sources, log,
		discovery.WithSourceTimeout(cfg.SourceTimeout())), nil
}
