package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobflow/jobflow/internal/matching"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show jobs worth applying to",
	Long:  "Rank the cached jobs and print only those scoring at or above the recommendation threshold.",
	RunE:  runRecommend,
}

var recommendLimit int

func init() {
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 10, "Maximum number of recommendations")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
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

	recommended := matching.Recommendations(state.Profile, state.Jobs, recommendLimit)
	if len(recommended) == 0 {
		fmt.Printf("No jobs scored %d%% or higher. Add more skills to your profile or broaden the search.\n",
			matching.RecommendationThreshold)
		return nil
	}

	fmt.Printf("Recommended jobs (score >= %d%%):\n", matching.RecommendationThreshold)
	for _, job := range recommended {
		fmt.Printf("  %3d%%  %-12s %s at %s (%s)\n",
			*job.MatchScore, job.ID, job.Title, job.Company, job.Location)
	}
	return nil
}
