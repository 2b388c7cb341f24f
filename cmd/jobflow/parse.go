package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jobflow/jobflow/internal/extraction"
	"github.com/jobflow/jobflow/internal/matching"
	"github.com/jobflow/jobflow/internal/parsing"
	"github.com/jobflow/jobflow/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Parse a resume and update the profile",
	Long:  "Extract text from a PDF, DOC, or DOCX resume, pull out skills, contact details, experience, and education, and merge the result into the saved profile.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var parseOutputFile string

func init() {
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Write the parsed content JSON to a file")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	cfg, err := loadMergedConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	resumePath := args[0]
	data, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	doc := extraction.NewRawDocument(data, "", filepath.Base(resumePath))
	parsed, err := parsing.ParseResume(doc)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

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
		now := time.Now()
		state.Profile = &types.UserProfile{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	}
	state.Profile.ApplyPatch(parsing.ProfileFromResume(parsed))

	if err := s.Save(ctx, state); err != nil {
		return err
	}

	if parseOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(parseOutputFile, jsonBytes, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	completeness := matching.AnalyzeCompleteness(state.Profile)

	fmt.Printf("Parsed %s\n", resumePath)
	if parsed.Contact.Name != "" {
		fmt.Printf("  Name:   %s\n", parsed.Contact.Name)
	}
	if parsed.Contact.Email != "" {
		fmt.Printf("  Email:  %s\n", parsed.Contact.Email)
	}
	fmt.Printf("  Skills: %s\n", strings.Join(parsed.Skills, ", "))
	fmt.Printf("Profile completeness: %d%%\n", completeness.Score)
	for _, suggestion := range completeness.Suggestions {
		fmt.Printf("  - %s\n", suggestion)
	}
	return nil
}
