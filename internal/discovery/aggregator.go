package discovery

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jobflow/jobflow/internal/types"
)

// DefaultSourceTimeout bounds each individual source query.
const DefaultSourceTimeout = 10 * time.Second

// DefaultSearchLimit caps the aggregated result set when the search does not
// set its own limit.
const DefaultSearchLimit = 50

// Aggregator fans a search out to every configured source, waits for all of
// them, and merges the results. A failed source never fails the search; when
// no real source returns anything, the synthetic fallback covers the result.
type Aggregator struct {
	sources       []Source
	fallback      Source
	sourceTimeout time.Duration
	log           *zap.Logger
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithSourceTimeout overrides the per-source query timeout.
func WithSourceTimeout(timeout time.Duration) AggregatorOption {
	return func(a *Aggregator) {
		a.sourceTimeout = timeout
	}
}

// WithFallback overrides the synthetic fallback source.
func WithFallback(fallback Source) AggregatorOption {
	return func(a *Aggregator) {
		a.fallback = fallback
	}
}

// NewAggregator creates an aggregator over the given real sources.
func NewAggregator(sources []Source, log *zap.Logger, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		sources:       sources,
		fallback:      NewMockSource(time.Now().UnixNano()),
		sourceTimeout: DefaultSourceTimeout,
		log:           log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Search queries every source concurrently and returns the merged listings.
// Duplicates are dropped case-insensitively on (title, company), keeping the
// first occurrence. The result is capped at params.Limit, or
// DefaultSearchLimit when unset.
func (a *Aggregator) Search(ctx context.Context, params types.SearchParams) (*types.SearchResult, error) {
	results := make([]SourceResult, len(a.sources)+1)

	g, gctx := errgroup.WithContext(ctx)
	for i, source := range a.sources {
		g.Go(a.querySource(gctx, source, params, &results[i]))
	}
	g.Go(a.querySource(gctx, a.fallback, params, &results[len(a.sources)]))

	// Every task absorbs its own failure, fallback included, so Wait never
	// returns an error; it only synchronizes. A canceled context therefore
	// yields an empty result, not an error.
	_ = g.Wait()

	realResults := results[:len(a.sources)]
	fallbackResult := results[len(a.sources)]

	var jobs []types.JobListing
	var contributors []string
	for _, result := range realResults {
		if result.Failed || len(result.Jobs) == 0 {
			continue
		}
		jobs = append(jobs, result.Jobs...)
		contributors = append(contributors, result.Source)
	}

	if len(jobs) == 0 {
		jobs = fallbackResult.Jobs
		contributors = []string{fallbackResult.Source}
	}

	jobs = dedupeListings(jobs)

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}

	a.log.Info("job search completed",
		zap.Int("jobs", len(jobs)),
		zap.Strings("sources", contributors),
	)

	return &types.SearchResult{
		Jobs:   jobs,
		Source: strings.Join(contributors, ", "),
	}, nil
}

// querySource returns the errgroup task for one source. Each task owns one
// slot of the results slice, so no locking is needed.
func (a *Aggregator) querySource(ctx context.Context, source Source, params types.SearchParams, slot *SourceResult) func() error {
	return func() error {
		slot.Source = source.Name()

		queryCtx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
		defer cancel()

		jobs, err := source.Search(queryCtx, params)
		if err != nil {
			slot.Failed = true
			a.log.Warn("job source failed",
				zap.String("source", source.Name()),
				zap.Error(err),
			)
			return nil
		}
		slot.Jobs = jobs
		return nil
	}
}

// dedupeListings drops listings whose (title, company) pair was already seen,
// comparing case-insensitively. The first occurrence wins.
func dedupeListings(jobs []types.JobListing) []types.JobListing {
	seen := make(map[string]struct{}, len(jobs))
	deduped := make([]types.JobListing, 0, len(jobs))
	for _, job := range jobs {
		key := strings.ToLower(job.Title + "-" + job.Company)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, job)
	}
	return deduped
}
