package scraper

import (
	"context"
	"time"

	"dmoncada/tweetscope/config"
	"dmoncada/tweetscope/internal/browser"
	"dmoncada/tweetscope/logger"
)

// DayCollector gathers every post identifier matching the configured
// keyword for one calendar day. It owns a fresh browser session per day
// and releases it before returning.
type DayCollector struct {
	cfg     config.Config
	factory browser.Factory
	log     *logger.Logger
	sleep   func(time.Duration)
}

// NewDayCollector creates a day collector
func NewDayCollector(cfg config.Config, factory browser.Factory) *DayCollector {
	return &DayCollector{
		cfg:     cfg,
		factory: factory,
		log:     logger.ForScraper(),
		sleep:   time.Sleep,
	}
}

// Collect returns the deduplicated identifiers of every post published on
// day that matches the keyword. The page is scrolled until a scroll
// surfaces no identifier not already seen; the inter-scroll delay is the
// only throttle, so a slow render costs one delay before the next
// extraction attempt.
func (c *DayCollector) Collect(ctx context.Context, day time.Time) ([]string, error) {
	since := day.Format(config.DateLayout)
	until := day.AddDate(0, 0, 1).Format(config.DateLayout)

	url, err := SearchURL(c.cfg.KeywordType, c.cfg.Keyword, since, until, c.cfg.IncludeRetweets)
	if err != nil {
		return nil, err
	}

	c.log.Info().
		Str("keyword", c.cfg.Keyword).
		Str("since", since).
		Str("until", until).
		Str("url", url).
		Msg("Collecting ids for one day")

	b, err := c.factory()
	if err != nil {
		return nil, err
	}
	defer b.Close()

	if err := b.Navigate(ctx, url); err != nil {
		return nil, err
	}
	c.sleep(c.cfg.Delay)

	ids, err := b.StatusIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		c.log.Info().
			Str("keyword", c.cfg.Keyword).
			Str("since", since).
			Msg("No posts found for this day")
		return []string{}, nil
	}

	seen := make(map[string]struct{}, len(ids))
	var batch []string
	add := func(extracted []string) int {
		newCount := 0
		for _, id := range extracted {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			batch = append(batch, id)
			newCount++
		}
		return newCount
	}
	add(ids)

	// Keep scrolling while scrolling keeps surfacing new identifiers
	for {
		c.log.Debug().Msg("Scrolling down to get more posts")
		if err := b.ScrollToBottom(ctx); err != nil {
			return nil, err
		}
		c.sleep(c.cfg.Delay)

		next, err := b.StatusIDs(ctx)
		if err != nil {
			return nil, err
		}
		if add(next) == 0 {
			break
		}
	}

	c.log.Info().
		Str("keyword", c.cfg.Keyword).
		Str("since", since).
		Int("ids", len(batch)).
		Msg("Day collection complete")

	return batch, nil
}
