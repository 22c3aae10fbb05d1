package scraper

import (
	"context"
	"encoding/json"
	"time"

	"dmoncada/tweetscope/config"
	"dmoncada/tweetscope/internal/checkpoint"
	"dmoncada/tweetscope/logger"
	"dmoncada/tweetscope/services/publisher"
)

// DayEvent is the per-day summary published to the collection-event stream
type DayEvent struct {
	Keyword      string `json:"keyword"`
	Date         string `json:"date"`
	IDsCollected int    `json:"ids_collected"`
}

// Collector gathers one day's identifier batch
type Collector interface {
	Collect(ctx context.Context, day time.Time) ([]string, error)
}

// Loop drives the day-by-day collection over the configured date range,
// persisting each day's batch to the checkpoint before advancing
type Loop struct {
	cfg       config.Config
	store     checkpoint.Store
	collector Collector
	pub       publisher.Publisher
	log       *logger.Logger
}

// NewLoop creates a collection loop
func NewLoop(cfg config.Config, store checkpoint.Store, collector Collector, pub publisher.Publisher) *Loop {
	if pub == nil {
		pub = publisher.Noop{}
	}
	return &Loop{
		cfg:       cfg,
		store:     store,
		collector: collector,
		pub:       pub,
		log:       logger.ForScraper(),
	}
}

// Run collects identifiers for every date in [start, end), in increasing
// order. The checkpoint is flushed after each day, so a killed run can be
// restarted and re-driven over the same range without losing batches
// already on disk. The whole range is always traversed; the checkpoint is
// a crash-recovery accumulator, not a skip list.
// TODO: offset the start by len(batches) to skip days already collected
// once that semantics is agreed on.
func (l *Loop) Run(ctx context.Context) error {
	days := 0
	for day := l.cfg.Start; day.Before(l.cfg.End); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return err
		}

		batches, err := l.store.Load()
		if err != nil {
			return err
		}
		l.log.Debug().
			Int("batches_on_disk", len(batches)).
			Str("day", day.Format(config.DateLayout)).
			Msg("Checkpoint loaded")

		batch, err := l.collector.Collect(ctx, day)
		if err != nil {
			return err
		}
		if batch == nil {
			batch = []string{}
		}

		if err := l.store.Append(batch); err != nil {
			return err
		}
		days++

		l.publishDay(day, len(batch))
	}

	l.log.Info().
		Str("keyword", l.cfg.Keyword).
		Int("days", days).
		Msg("Collection loop finished")

	return nil
}

func (l *Loop) publishDay(day time.Time, count int) {
	event := DayEvent{
		Keyword:      l.cfg.Keyword,
		Date:         day.Format(config.DateLayout),
		IDsCollected: count,
	}
	data, err := json.Marshal(event)
	if err != nil {
		logger.LogError("scraper", err, "cannot marshal day event")
		return
	}
	if err := l.pub.Publish(l.cfg.Keyword, data); err != nil {
		logger.LogError("scraper", err, "cannot publish day event")
	}
}
