package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobflow/jobflow/internal/matching"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter <job-id>",
	Short: "Generate a cover letter for a cached job",
	Long:  "Generate a templated cover letter for one of the jobs from the last search, optionally recording an application.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverLetter,
}

var (
	coverLetterOut   string
	coverLetterApply bool
)

func init() {
	coverLetterCmd.Flags().StringVarP(&coverLetterOut, "out", "o", "", "Write the letter to a file instead of stdout")
	coverLetterCmd.Flags().BoolVar(&coverLetterApply, "apply", false, "Record an application for this job")
	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(_ *cobra.Command, args []string) error {
	cfg, err := loadMergedConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	state, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if state.Profile == nil {
		return fmt.Errorf("no profile saved; run 'jobflow parse <resume>' first")
	}

	jobID := args[0]
	job := state.FindJob(jobID)
	if job == nil {
		return fmt.Errorf("job %s not found in saved search results; run 'jobflow search' first", jobID)
	}

	letter := matching.GenerateCoverLetter(state.Profile, job)

	if coverLetterOut != "" {
		if err := os.WriteFile(coverLetterOut, []byte(letter), 0o644); err != nil {
			return fmt.Errorf("failed to write cover letter: %w", err)
		}
		fmt.Printf("Cover letter written to %s\n", coverLetterOut)
	} else {
		fmt.Println(letter)
	}

	if coverLetterApply {
		app, err := state.MarkApplied(jobID, letter, time.Now())
		if err != nil {
			return err
		}
		if err := s.Save(ctx, state); err != nil {
			return err
		}
		fmt.Printf("Application recorded: %s (%s at %s)\n", app.ID, app.JobTitle, app.Company)
	}
	return nil
}
