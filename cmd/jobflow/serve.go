package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jobflow/jobflow/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing resume parsing, job search, match ranking, and cover letter endpoints.",
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to config, then 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	port := servePort
	if port == 0 {
		port = cfg.ServerPort
	}

	ctx := context.Background()
	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	aggregator, err := buildAggregator(cfg, log)
	if err != nil {
		s.Close()
		return err
	}

	srv := server.New(server.Config{
		Port:       port,
		Aggregator: aggregator,
		Store:      s,
		Logger:     log,
	})
	return srv.Start()
}
