package discovery

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jobflow/jobflow/internal/fetch"
	"github.com/jobflow/jobflow/internal/types"
)

// browserRenderTimeout bounds the headless-browser fallback when a posting
// page turns out to be client-rendered.
const browserRenderTimeout = 60 * time.Second

// EnrichListing fetches a listing's posting page and replaces a thin
// description with the full posting text. Enrichment is best-effort: any
// failure leaves the listing unchanged.
func EnrichListing(ctx context.Context, job *types.JobListing, log *zap.Logger) {
	if job.URL == "" || len(job.Description) >= fetch.MinPostingLength {
		return
	}

	html, err := fetch.Page(ctx, job.URL, nil)
	if err != nil {
		log.Debug("posting page fetch failed",
			zap.String("job_id", job.ID),
			zap.String("url", job.URL),
			zap.Error(err),
		)
		return
	}

	text, err := fetch.PostingText(html)
	if err != nil {
		log.Debug("posting page parse failed",
			zap.String("job_id", job.ID),
			zap.Error(err),
		)
		return
	}

	if fetch.NeedsBrowser(text) {
		rendered, err := fetch.RenderPage(ctx, job.URL, browserRenderTimeout)
		if err != nil {
			log.Debug("browser rendering failed",
				zap.String("job_id", job.ID),
				zap.Error(err),
			)
		} else if renderedText, err := fetch.PostingText(rendered); err == nil {
			text = renderedText
		}
	}

	if len(text) > len(job.Description) {
		job.Description = text
	}
}
