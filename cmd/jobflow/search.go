package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobflow/jobflow/internal/discovery"
	"github.com/jobflow/jobflow/internal/store"
	"github.com/jobflow/jobflow/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search job sources and cache the results",
	Long:  "Query all configured job sources concurrently, merge and dedupe the listings, and save them to the state file for ranking.",
	RunE:  runSearch,
}

var (
	searchQuery        string
	searchLocation     string
	searchLimit        int
	searchEnrich       bool
	searchSaveSchedule bool
	searchIntervalHrs  int
)

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Search query (defaults to config, then profile roles)")
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "Location filter")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum number of results")
	searchCmd.Flags().BoolVar(&searchEnrich, "enrich", false, "Fetch each posting page to fill in thin descriptions")
	searchCmd.Flags().BoolVar(&searchSaveSchedule, "save-schedule", false, "Persist these search params as a recurring schedule")
	searchCmd.Flags().IntVar(&searchIntervalHrs, "interval", 24, "Schedule interval in hours (with --save-schedule)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, _ []string) error {
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

	params := searchParamsFrom(cfg.Query, cfg.Location, cfg.SearchLimit, state)

	aggregator, err := buildAggregator(cfg, log)
	if err != nil {
		return err
	}

	result, err := aggregator.Search(ctx, params)
	if err != nil {
		return err
	}

	if searchEnrich {
		for i := range result.Jobs {
			discovery.EnrichListing(ctx, &result.Jobs[i], log)
		}
	}

	now := time.Now()
	state.RecordSearch(result, params, now)

	if searchSaveSchedule {
		interval := time.Duration(searchIntervalHrs) * time.Hour
		state.Schedule = &store.SearchSchedule{
			Params:   params,
			Interval: interval,
			NextRun:  now.Add(interval),
			Enabled:  true,
		}
		log.Info("search schedule saved",
			zap.String("query", params.Query),
			zap.Duration("interval", interval),
		)
	}

	if err := s.Save(ctx, state); err != nil {
		return err
	}

	fmt.Printf("Found %d jobs (source: %s)\n", len(result.Jobs), result.Source)
	for _, job := range result.Jobs {
		fmt.Printf("  %-12s %s at %s (%s)\n", job.ID, job.Title, job.Company, job.Location)
	}
	return nil
}

// searchParamsFrom resolves search params from flags, config defaults, and
// finally the saved profile's preferred roles and skills.
func searchParamsFrom(defaultQuery, defaultLocation string, defaultLimit int, state *store.State) types.SearchParams {
	params := types.SearchParams{
		Query:    searchQuery,
		Location: searchLocation,
		Limit:    searchLimit,
	}
	if params.Query == "" {
		params.Query = defaultQuery
	}
	if params.Location == "" {
		params.Location = defaultLocation
	}
	if params.Limit <= 0 {
		params.Limit = defaultLimit
	}

	if state.Profile != nil {
		if params.Query == "" && len(state.Profile.PreferredRoles) > 0 {
			params.Query = state.Profile.PreferredRoles[0]
		}
		if params.Location == "" {
			params.Location = state.Profile.Location
		}
		params.Skills = state.Profile.Skills
	}
	return params
}
