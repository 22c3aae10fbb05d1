package scraper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmoncada/tweetscope/config"
)

func TestLoopAppendsOneBatchPerDay(t *testing.T) {
	cfg := testConfig(t)
	store := &memoryStore{}
	collector := &fakeCollector{batches: map[string][]string{
		"2023-05-01": {"1", "2"},
		"2023-05-02": {"3"},
	}}
	pub := &recordingPublisher{}

	loop := NewLoop(cfg, store, collector, pub)
	require.NoError(t, loop.Run(context.Background()))

	require.Len(t, store.batches, 2)
	assert.Equal(t, []string{"1", "2"}, store.batches[0])
	assert.Equal(t, []string{"3"}, store.batches[1])

	require.Len(t, collector.days, 2)
	assert.Equal(t, "2023-05-01", collector.days[0].Format(config.DateLayout))
	assert.Equal(t, "2023-05-02", collector.days[1].Format(config.DateLayout))
}

func TestLoopEmptyRangeCollectsNothing(t *testing.T) {
	cfg, err := config.New("golang", "hashtag", "2023-05-01", "2023-05-01", t.TempDir(), "keys.json", "", 1, false)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	store := &memoryStore{}
	collector := &fakeCollector{}

	loop := NewLoop(cfg, store, collector, nil)
	require.NoError(t, loop.Run(context.Background()))

	assert.Empty(t, store.batches)
	assert.Empty(t, collector.days)
}

func TestLoopEmptyDayStoresEmptyBatch(t *testing.T) {
	cfg := testConfig(t)
	store := &memoryStore{}
	collector := &fakeCollector{batches: map[string][]string{
		"2023-05-01": {"1"},
		// 2023-05-02 absent: the fake returns a nil batch
	}}

	loop := NewLoop(cfg, store, collector, nil)
	require.NoError(t, loop.Run(context.Background()))

	require.Len(t, store.batches, 2)
	assert.NotNil(t, store.batches[1])
	assert.Empty(t, store.batches[1])
}

func TestLoopPublishesDayEvents(t *testing.T) {
	cfg := testConfig(t)
	store := &memoryStore{}
	collector := &fakeCollector{batches: map[string][]string{
		"2023-05-01": {"1", "2", "3"},
	}}
	pub := &recordingPublisher{}

	loop := NewLoop(cfg, store, collector, pub)
	require.NoError(t, loop.Run(context.Background()))

	require.Len(t, pub.messages, 2)

	var event DayEvent
	require.NoError(t, json.Unmarshal(pub.messages[0], &event))
	assert.Equal(t, "golang", event.Keyword)
	assert.Equal(t, "2023-05-01", event.Date)
	assert.Equal(t, 3, event.IDsCollected)
}

func TestLoopCancelledContextStopsEarly(t *testing.T) {
	cfg := testConfig(t)
	store := &memoryStore{}
	collector := &fakeCollector{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := NewLoop(cfg, store, collector, nil)
	err := loop.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.batches)
	assert.Empty(t, collector.days)
}
