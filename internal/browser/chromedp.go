package browser

import (
	"context"

	"github.com/chromedp/chromedp"

	"dmoncada/tweetscope/pkg/errors"
)

// ChromeBrowser implements Browser on a headless Chrome instance driven
// through the DevTools protocol
type ChromeBrowser struct {
	ctx         context.Context
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// NewChromeBrowser starts a headless Chrome session. execPath may be empty
// to use the default browser discovery.
func NewChromeBrowser(execPath string) (*ChromeBrowser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx)

	// Start the browser process eagerly so a missing executable surfaces
	// here instead of on the first navigation
	if err := chromedp.Run(ctx); err != nil {
		cancelCtx()
		cancelAlloc()
		return nil, errors.NewBrowser("browser", "cannot start chrome", err)
	}

	return &ChromeBrowser{
		ctx:         ctx,
		cancelCtx:   cancelCtx,
		cancelAlloc: cancelAlloc,
	}, nil
}

// Navigate opens the given URL
func (b *ChromeBrowser) Navigate(ctx context.Context, url string) error {
	runCtx, cancel := b.runCtx(ctx)
	defer cancel()
	if err := chromedp.Run(runCtx, chromedp.Navigate(url)); err != nil {
		return errors.NewBrowser("browser", "navigation failed", err)
	}
	return nil
}

// ScrollToBottom scrolls the page to its current bottom
func (b *ChromeBrowser) ScrollToBottom(ctx context.Context) error {
	runCtx, cancel := b.runCtx(ctx)
	defer cancel()
	err := chromedp.Run(runCtx,
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight);`, nil),
	)
	if err != nil {
		return errors.NewBrowser("browser", "scroll failed", err)
	}
	return nil
}

// StatusIDs extracts the post identifiers currently visible on the page
func (b *ChromeBrowser) StatusIDs(ctx context.Context) ([]string, error) {
	runCtx, cancel := b.runCtx(ctx)
	defer cancel()
	var html string
	if err := chromedp.Run(runCtx, chromedp.OuterHTML("html", &html)); err != nil {
		return nil, errors.NewBrowser("browser", "cannot read page html", err)
	}
	return ExtractStatusIDs(html)
}

// Close releases the Chrome session
func (b *ChromeBrowser) Close() error {
	b.cancelCtx()
	b.cancelAlloc()
	return nil
}

// runCtx keeps the chromedp session context but honors the caller's
// deadline when one is set
func (b *ChromeBrowser) runCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok {
		return context.WithDeadline(b.ctx, deadline)
	}
	return b.ctx, func() {}
}
