// Package main provides the jobflow CLI: resume parsing, job discovery,
// match ranking, and cover letter generation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobflow/jobflow/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "jobflow",
	Short: "Resume intelligence and job matching pipeline",
	Long:  "jobflow parses resumes into structured profiles, discovers job listings from multiple sources concurrently, ranks them against the profile, and generates cover letters.",
}

var (
	flagConfig   string
	flagState    string
	flagDBURL    string
	flagJSONLogs bool
	flagDebug    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagState, "state", "", "Path to the state file (default jobflow.state.json)")
	rootCmd.PersistentFlags().StringVar(&flagDBURL, "db-url", "", "PostgreSQL URL; overrides the file store")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json", false, "Emit JSON log lines")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
