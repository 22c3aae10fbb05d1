package scraper

import (
	"context"
	"time"
)

// fakeBrowser replays a fixed sequence of extraction results: index 0 is
// the initial page, each scroll advances to the next entry, and the last
// entry repeats once the page stops loading new content
type fakeBrowser struct {
	pages   [][]string
	scrolls int
	closed  bool
}

func (b *fakeBrowser) Navigate(context.Context, string) error { return nil }

func (b *fakeBrowser) ScrollToBottom(context.Context) error {
	b.scrolls++
	return nil
}

func (b *fakeBrowser) StatusIDs(context.Context) ([]string, error) {
	i := b.scrolls
	if i >= len(b.pages) {
		i = len(b.pages) - 1
	}
	return b.pages[i], nil
}

func (b *fakeBrowser) Close() error {
	b.closed = true
	return nil
}

// memoryStore is an in-memory checkpoint store for loop tests
type memoryStore struct {
	batches [][]string
	loads   int
}

func (s *memoryStore) Load() ([][]string, error) {
	s.loads++
	return s.batches, nil
}

func (s *memoryStore) Append(batch []string) error {
	s.batches = append(s.batches, batch)
	return nil
}

// fakeCollector returns one canned batch per day
type fakeCollector struct {
	batches map[string][]string
	days    []time.Time
}

func (c *fakeCollector) Collect(_ context.Context, day time.Time) ([]string, error) {
	c.days = append(c.days, day)
	return c.batches[day.Format("2006-01-02")], nil
}

// recordingPublisher captures published messages
type recordingPublisher struct {
	messages [][]byte
}

func (p *recordingPublisher) Publish(_ string, message []byte) error {
	p.messages = append(p.messages, message)
	return nil
}

func (p *recordingPublisher) TrimStreams() error { return nil }

func (p *recordingPublisher) Close() error { return nil }
