package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jobflow/jobflow/internal/matching"
	"github.com/jobflow/jobflow/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the saved profile",
	Long:  "Print the saved profile with its completeness summary. Preferred roles and locations feed the role and location match signals, so setting them raises the scores search results can reach.",
	RunE:  runProfile,
}

var (
	profileRoles     []string
	profileLocations []string
)

func init() {
	profileCmd.Flags().StringSliceVar(&profileRoles, "roles", nil, "Preferred job roles (comma-separated)")
	profileCmd.Flags().StringSliceVar(&profileLocations, "locations", nil, "Preferred job locations (comma-separated)")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
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

	updating := len(profileRoles) > 0 || len(profileLocations) > 0
	if state.Profile == nil {
		if !updating {
			return fmt.Errorf("no profile saved; run 'jobflow parse <resume>' first")
		}
		now := time.Now()
		state.Profile = &types.UserProfile{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	}

	if updating {
		if len(profileRoles) > 0 {
			state.Profile.PreferredRoles = types.DedupeStrings(profileRoles)
		}
		if len(profileLocations) > 0 {
			state.Profile.PreferredLocations = types.DedupeStrings(profileLocations)
		}
		state.Profile.UpdatedAt = time.Now()
		if err := s.Save(ctx, state); err != nil {
			return err
		}
	}

	p := state.Profile
	fmt.Println("Profile:")
	if p.Name != "" {
		fmt.Printf("  Name:      %s\n", p.Name)
	}
	if p.Email != "" {
		fmt.Printf("  Email:     %s\n", p.Email)
	}
	if p.Location != "" {
		fmt.Printf("  Location:  %s\n", p.Location)
	}
	fmt.Printf("  Skills:    %s\n", strings.Join(p.Skills, ", "))
	fmt.Printf("  Roles:     %s\n", strings.Join(p.PreferredRoles, ", "))
	fmt.Printf("  Locations: %s\n", strings.Join(p.PreferredLocations, ", "))

	completeness := matching.AnalyzeCompleteness(p)
	fmt.Printf("Completeness: %d%%\n", completeness.Score)
	for _, missing := range completeness.Missing {
		fmt.Printf("  missing: %s\n", missing)
	}
	return nil
}
