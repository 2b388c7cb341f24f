// Package discovery aggregates job listings from independent sources. Each
// source is queried concurrently under its own timeout; failures are absorbed
// and a synthetic generator covers the case where every real source fails.
package discovery

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/jobflow/jobflow/internal/types"
)

// Source is one independent job-listing provider.
type Source interface {
	// Name identifies the source in result provenance.
	Name() string
	// Search returns listings matching the params. Implementations must
	// honor ctx cancellation.
	Search(ctx context.Context, params types.SearchParams) ([]types.JobListing, error)
}

// SourceResult is the per-source outcome collected by the aggregator. It
// never crosses the aggregator boundary except in aggregated form.
type SourceResult struct {
	Jobs   []types.JobListing
	Source string
	Failed bool
}

// breakerSource wraps a source with a circuit breaker so a provider that
// keeps failing is skipped outright instead of burning its timeout on every
// search.
type breakerSource struct {
	inner Source
	cb    *gobreaker.CircuitBreaker[[]types.JobListing]
}

// WithBreaker wraps a source in a circuit breaker. The breaker opens when at
// least three requests have been seen and more than half failed, and resets
// after its timeout elapses.
func WithBreaker(source Source, log *zap.Logger) Source {
	settings := gobreaker.Settings{
		Name: source.Name(),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio > 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info("source circuit breaker state changed",
				zap.String("source", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
	return &breakerSource{
		inner: source,
		cb:    gobreaker.NewCircuitBreaker[[]types.JobListing](settings),
	}
}

func (s *breakerSource) Name() string {
	return s.inner.Name()
}

func (s *breakerSource) Search(ctx context.Context, params types.SearchParams) ([]types.JobListing, error) {
	jobs, err := s.cb.Execute(func() ([]types.JobListing, error) {
		return s.inner.Search(ctx, params)
	})
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", s.inner.Name(), err)
	}
	return jobs, nil
}
