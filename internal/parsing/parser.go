package parsing

import (
	"time"

	"github.com/jobflow/jobflow/internal/extraction"
	"github.com/jobflow/jobflow/internal/types"
)

// ParseResume sequences text extraction, section segmentation and entity
// extraction into one deterministic operation. On extraction failure no
// partial result is returned; entity extraction itself never fails.
func ParseResume(doc extraction.RawDocument) (*types.ParsedContent, error) {
	text, err := extraction.ExtractText(doc)
	if err != nil {
		return nil, err
	}

	sections := SplitSections(text)

	return &types.ParsedContent{
		Text:       text,
		Skills:     ExtractSkills(text),
		Experience: ExtractExperience(text, sections),
		Education:  ExtractEducation(text, sections),
		Contact:    ExtractContact(text),
		Sections:   sections,
	}, nil
}

// ProfileFromResume maps parsed content onto a profile patch, field for
// field, stamping the update time. The caller owns the merge into its
// profile.
func ProfileFromResume(parsed *types.ParsedContent) types.ProfilePatch {
	return types.ProfilePatch{
		Name:       parsed.Contact.Name,
		Email:      parsed.Contact.Email,
		Phone:      parsed.Contact.Phone,
		Location:   parsed.Contact.Location,
		Skills:     parsed.Skills,
		Experience: parsed.Experience,
		Education:  parsed.Education,
		ResumeText: parsed.Text,
		UpdatedAt:  time.Now(),
	}
}
