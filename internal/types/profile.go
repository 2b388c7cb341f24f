// Package types provides type definitions for structured data shared across the jobflow system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"
)

// Contact holds contact details pulled out of a resume. All fields are
// best-effort and may be empty.
type Contact struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// ParsedContent is the structured output of a single resume parse.
// It is produced once per parse call and never mutated afterwards.
type ParsedContent struct {
	Text       string            `json:"text"`
	Skills     []string          `json:"skills"`
	Experience string            `json:"experience"`
	Education  []string          `json:"education"`
	Contact    Contact           `json:"contact"`
	Sections   map[string]string `json:"sections"`
}

// UserProfile represents the job seeker's profile. It is created on the first
// successful resume parse (or explicitly) and patched by each re-parse.
type UserProfile struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name,omitempty"`
	Email              string    `json:"email,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Location           string    `json:"location,omitempty"`
	Skills             []string  `json:"skills"`
	Experience         string    `json:"experience"`
	Education          []string  `json:"education"`
	PreferredRoles     []string  `json:"preferred_roles"`
	PreferredLocations []string  `json:"preferred_locations"`
	ResumeText         string    `json:"resume_text,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ProfilePatch carries profile fields extracted from a resume. Empty fields
// leave the corresponding profile field untouched when applied.
type ProfilePatch struct {
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Location   string    `json:"location,omitempty"`
	Skills     []string  `json:"skills,omitempty"`
	Experience string    `json:"experience,omitempty"`
	Education  []string  `json:"education,omitempty"`
	ResumeText string    `json:"resume_text,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ApplyPatch merges a patch into the profile. Non-empty patch fields
// overwrite, list fields are replaced wholesale after deduplication, and
// UpdatedAt is refreshed from the patch.
func (p *UserProfile) ApplyPatch(patch ProfilePatch) {
	if patch.Name != "" {
		p.Name = patch.Name
	}
	if patch.Email != "" {
		p.Email = patch.Email
	}
	if patch.Phone != "" {
		p.Phone = patch.Phone
	}
	if patch.Location != "" {
		p.Location = patch.Location
	}
	if len(patch.Skills) > 0 {
		p.Skills = DedupeStrings(patch.Skills)
	}
	if patch.Experience != "" {
		p.Experience = patch.Experience
	}
	if len(patch.Education) > 0 {
		p.Education = patch.Education
	}
	if patch.ResumeText != "" {
		p.ResumeText = patch.ResumeText
	}
	if !patch.UpdatedAt.IsZero() {
		p.UpdatedAt = patch.UpdatedAt
	} else {
		p.UpdatedAt = time.Now()
	}
}

// DedupeStrings removes case-insensitive duplicates while preserving the
// insertion order and original casing of the first occurrence.
func DedupeStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, item)
	}
	return result
}
