package browser

import "context"

// Browser is one rendering session. The day collector owns a session for
// the duration of a single day's collection and must Close it at day end;
// sessions are never shared across days.
type Browser interface {
	// Navigate opens the given URL in the session
	Navigate(ctx context.Context, url string) error

	// ScrollToBottom scrolls the page to its current bottom
	ScrollToBottom(ctx context.Context) error

	// StatusIDs extracts the post identifiers currently visible on the
	// rendered page
	StatusIDs(ctx context.Context) ([]string, error)

	// Close releases the session
	Close() error
}

// Factory opens a fresh session. The collection loop calls it once per day.
type Factory func() (Browser, error)
