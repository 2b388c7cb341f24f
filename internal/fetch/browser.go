package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinPostingLength is the minimum posting text length below which a page is
// assumed to be a JavaScript-rendered SPA that needs browser rendering.
const MinPostingLength = 500

// NeedsBrowser reports whether plain-HTTP extraction produced too little text
// to be a real posting.
func NeedsBrowser(postingText string) bool {
	return len(strings.TrimSpace(postingText)) < MinPostingLength
}

// RenderPage loads a URL in a headless browser and returns the rendered HTML.
// Used for job boards that render postings client-side. Requires
// Chrome/Chromium on the host.
func RenderPage(ctx context.Context, pageURL string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to settle
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}
	return html, nil
}
