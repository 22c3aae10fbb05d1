package scraper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmoncada/tweetscope/config"
	"dmoncada/tweetscope/internal/browser"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.New("golang", "hashtag", "2023-05-01", "2023-05-03", t.TempDir(), "keys.json", "", 1, false)
	require.NoError(t, err)
	return cfg
}

func newTestCollector(t *testing.T, b *fakeBrowser) *DayCollector {
	t.Helper()
	c := NewDayCollector(testConfig(t), func() (browser.Browser, error) { return b, nil })
	c.sleep = func(time.Duration) {}
	return c
}

func TestCollectScrollsUntilNoNewIDs(t *testing.T) {
	b := &fakeBrowser{pages: [][]string{
		{"1", "2"},
		{"1", "2", "3"},
		{"2", "3", "4"},
		{"2", "3", "4"},
	}}
	c := newTestCollector(t, b)

	batch, err := c.Collect(context.Background(), time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"1", "2", "3", "4"}, batch)
	// Content stabilized after two productive scrolls; one more scroll
	// confirms nothing new and terminates the loop
	assert.Equal(t, 3, b.scrolls)
	assert.True(t, b.closed)
}

func TestCollectEmptyDayDoesNotScroll(t *testing.T) {
	b := &fakeBrowser{pages: [][]string{{}}}
	c := newTestCollector(t, b)

	batch, err := c.Collect(context.Background(), time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Empty(t, batch)
	assert.NotNil(t, batch)
	assert.Zero(t, b.scrolls)
	assert.True(t, b.closed)
}

func TestCollectDeduplicatesWithinDay(t *testing.T) {
	b := &fakeBrowser{pages: [][]string{
		{"1", "1", "2"},
		{"1", "2", "2"},
	}}
	c := newTestCollector(t, b)

	batch, err := c.Collect(context.Background(), time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, batch)
}

func TestCollectStableContentTerminatesImmediately(t *testing.T) {
	b := &fakeBrowser{pages: [][]string{{"1", "2", "3"}}}
	c := newTestCollector(t, b)

	batch, err := c.Collect(context.Background(), time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, batch, 3)
	assert.Equal(t, 1, b.scrolls)
}
