package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobflow/jobflow/internal/matching"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank cached jobs against the profile",
	Long:  "Score every job from the last search against the saved profile and store the ranked list back in the state file.",
	RunE:  runMatch,
}

var matchTop int

func init() {
	matchCmd.Flags().IntVar(&matchTop, "top", 10, "How many ranked jobs to print")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
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
	if len(state.Jobs) == 0 {
		return fmt.Errorf("no cached jobs; run 'jobflow search' first")
	}

	ranked := matching.RankJobs(state.Profile, state.Jobs)
	state.Jobs = ranked

	if err := s.Save(ctx, state); err != nil {
		return err
	}

	top := matchTop
	if top <= 0 || top > len(ranked) {
		top = len(ranked)
	}

	fmt.Printf("Ranked %d jobs:\n", len(ranked))
	for _, job := range ranked[:top] {
		score := 0
		if job.MatchScore != nil {
			score = *job.MatchScore
		}
		fmt.Printf("  %3d%%  %s at %s (%s)\n", score, job.Title, job.Company, job.Location)
	}
	return nil
}
