package discovery

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/jobflow/jobflow/internal/types"
)

// MockSourceName is the provenance label for synthetic listings.
const MockSourceName = "Mock Data"

// defaultMockCount is how many listings the generator produces when the
// search has no limit.
const defaultMockCount = 20

var mockCompanies = []string{
	"TechCorp", "StartupX", "InnovateLabs", "DataDriven Inc", "CloudTech",
	"AI Solutions", "WebFlow Co", "DevCraft", "CodeBase", "TechPioneer",
	"Digital Dynamics", "FutureCode", "ByteWorks", "PixelPerfect", "NetVision",
}

var mockTitles = []string{
	"Senior Frontend Developer", "Full Stack Engineer", "React Developer",
	"Backend Developer", "DevOps Engineer", "Software Engineer",
	"UI/UX Designer", "Product Manager", "Data Scientist", "Mobile Developer",
	"Python Developer", "JavaScript Developer", "Cloud Architect", "QA Engineer",
}

var mockLocations = []string{
	"Remote", "San Francisco, CA", "New York, NY", "Austin, TX", "Seattle, WA",
	"London, UK", "Berlin, Germany", "Toronto, CA", "Amsterdam, NL", "Barcelona, ES",
}

var mockSkills = []string{
	"React", "JavaScript", "TypeScript", "Node.js", "Python", "Java",
	"AWS", "Docker", "Kubernetes", "PostgreSQL", "MongoDB", "Redis",
	"GraphQL", "REST APIs", "Git", "CI/CD", "Agile", "Scrum",
}

var mockTypes = []string{"Full-time", "Part-time", "Contract"}

// MockSource is the synthetic fallback generator. It always succeeds and is
// used alone when every real source fails.
type MockSource struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent searches
	rng *rand.Rand
}

// NewMockSource creates a generator seeded for variety between searches.
func NewMockSource(seed int64) *MockSource {
	return &MockSource{rng: rand.New(rand.NewSource(seed))}
}

// Name implements Source.
func (s *MockSource) Name() string {
	return MockSourceName
}

// Search generates synthetic listings. It never fails; the context is checked
// only so an abandoned search stops early.
func (s *MockSource) Search(ctx context.Context, params types.SearchParams) ([]types.JobListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := params.Limit
	if count <= 0 {
		count = defaultMockCount
	}

	jobs := make([]types.JobListing, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		company := mockCompanies[s.rng.Intn(len(mockCompanies))]
		title := mockTitles[s.rng.Intn(len(mockTitles))]
		skills := mockSkills[:s.rng.Intn(6)+3]

		job := types.JobListing{
			ID:       fmt.Sprintf("mock_%s", uuid.NewString()),
			Title:    title,
			Company:  company,
			Location: mockLocations[s.rng.Intn(len(mockLocations))],
			Type:     mockTypes[s.rng.Intn(len(mockTypes))],
			Description: fmt.Sprintf(
				"We are looking for a talented %s to join our team at %s. You will work on exciting projects using cutting-edge technologies and collaborate with a dynamic team of professionals.",
				title, company),
			Requirements: []string{
				fmt.Sprintf("3+ years of experience in %s", skills[0]),
				fmt.Sprintf("Strong knowledge of %s and %s", skills[1], skills[2]),
				"Bachelor's degree in Computer Science or related field",
				"Excellent communication skills",
				"Experience with Agile development methodologies",
			},
			Skills:     skills,
			PostedDate: fmt.Sprintf("%d days ago", s.rng.Intn(7)+1),
			Source:     MockSourceName,
			URL:        fmt.Sprintf("https://example.com/jobs/%d", i),
		}
		if s.rng.Float64() > 0.3 {
			job.Salary = fmt.Sprintf("$%dk - $%dk", s.rng.Intn(100)+80, s.rng.Intn(100)+120)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
