// Package scrape is the fallback news source: it fetches a rendered league
// news page with a headless browser and parses articles out of the HTML.
// Used only when the JSON news feed is unavailable.
package scrape

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

const (
	// UserAgent for rendered-page fetches.
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// MinRequestInterval throttles fetches to avoid rate limiting.
	MinRequestInterval = 2 * time.Second
)

// Browser fetches fully rendered pages through headless Chrome with a
// minimum interval between requests.
type Browser struct {
	lastRequest time.Time
	interval    time.Duration

	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewBrowser creates a headless browser fetcher.
func NewBrowser() (*Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Browser{
		interval: MinRequestInterval,
		allocCtx: allocCtx,
		cancel:   cancel,
	}, nil
}

// Close releases the browser allocator.
func (b *Browser) Close() {
	if b.cancel != nil {
		b.cancel()
	}
}

// FetchHTML returns the rendered HTML of url, throttled to the browser's
// minimum request interval.
func (b *Browser) FetchHTML(ctx context.Context, url string) (string, error) {
	if !b.lastRequest.IsZero() {
		elapsed := time.Since(b.lastRequest)
		if elapsed < b.interval {
			wait := b.interval - elapsed
			log.Printf("[scrape] rate limiting: waiting %v before next request", wait)
			time.Sleep(wait)
		}
	}

	html, err := b.fetch(ctx, url)
	b.lastRequest = time.Now()
	return html, err
}

func (b *Browser) fetch(ctx context.Context, url string) (string, error) {
	browserCtx, cancel := chromedp.NewContext(b.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, 30*time.Second)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(1*time.Second), // allow client-side rendering to settle
		chromedp.OuterHTML(`html`, &htmlContent, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp error: %w", err)
	}
	if htmlContent == "" {
		return "", fmt.Errorf("empty HTML content returned")
	}

	return htmlContent, nil
}

// ParseHTML converts raw HTML into a goquery document.
func ParseHTML(htmlContent string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}
