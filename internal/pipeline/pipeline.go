package pipeline

import (
	"context"

	"dmoncada/tweetscope/config"
	"dmoncada/tweetscope/internal/browser"
	"dmoncada/tweetscope/internal/checkpoint"
	"dmoncada/tweetscope/internal/lookup"
	"dmoncada/tweetscope/internal/scraper"
	"dmoncada/tweetscope/internal/storage"
	"dmoncada/tweetscope/internal/transform"
	"dmoncada/tweetscope/internal/visualize"
	"dmoncada/tweetscope/logger"
	"dmoncada/tweetscope/pkg/errors"
	"dmoncada/tweetscope/services/publisher"
)

// Extract runs the collection loop over the configured date range and
// then fetches metadata for every collected identifier into the raw table
func Extract(ctx context.Context, cfg config.Config) error {
	log := logger.ForScraper()

	keys, err := cfg.LoadKeys()
	if err != nil {
		return err
	}

	store := storage.New(cfg.SavePath, cfg.Keyword)
	ckpt, err := checkpoint.NewFileStore(store.CheckpointPath())
	if err != nil {
		return err
	}

	pub := newPublisher(ctx, cfg)
	defer pub.Close()

	factory := func() (browser.Browser, error) {
		return browser.NewChromeBrowser(cfg.ChromePath)
	}
	collector := scraper.NewDayCollector(cfg, factory)
	loop := scraper.NewLoop(cfg, ckpt, collector, pub)
	if err := loop.Run(ctx); err != nil {
		return err
	}
	if err := pub.TrimStreams(); err != nil {
		logger.LogError("publisher", err, "cannot trim collection-event streams")
	}

	batches, err := ckpt.Load()
	if err != nil {
		return err
	}
	ids := lookup.FlattenBatches(batches)

	fetcher := lookup.NewFetcher(lookup.NewTwitterClient(keys))
	raws, err := fetcher.FetchAll(ctx, ids)
	if err != nil {
		if errors.IsEmptyInput(err) {
			log.Info().Str("keyword", cfg.Keyword).Msg("No ids collected, skipping metadata fetch")
			return nil
		}
		return err
	}

	return store.SaveRaw(raws)
}

// Transform normalizes the raw table and derives every aggregate table,
// skipping derivations whose input signal is entirely absent
func Transform(cfg config.Config) error {
	log := logger.ForTransform()
	store := storage.New(cfg.SavePath, cfg.Keyword)

	raws, err := store.LoadRaw()
	if err != nil {
		if errors.IsEmptyInput(err) {
			log.Info().Str("keyword", cfg.Keyword).Msg("There is no raw data to transform")
			return nil
		}
		return err
	}

	records := transform.NewNormalizer().NormalizeAll(raws)
	if len(records) == 0 {
		log.Info().Str("keyword", cfg.Keyword).Msg("No raw record survived normalization")
		return nil
	}
	if err := store.SaveClean(records); err != nil {
		return err
	}
	log.Info().Int("records", len(records)).Msg("Clean table saved")

	if err := saveOrSkip(log, storage.TableGroupedDate, store, func() (interface{}, error) {
		rows, err := transform.BuildGroupedDate(records)
		return rows, err
	}); err != nil {
		return err
	}
	if err := saveOrSkip(log, storage.TableKeyTopics, store, func() (interface{}, error) {
		rows, err := transform.BuildKeyTopics(records, transform.DefaultTopicCount)
		return rows, err
	}); err != nil {
		return err
	}
	if err := saveOrSkip(log, storage.TableMostMentionedUsers, store, func() (interface{}, error) {
		rows, err := transform.BuildMostMentionedUsers(records)
		return rows, err
	}); err != nil {
		return err
	}
	if err := saveOrSkip(log, storage.TableMostMentionedHashtags, store, func() (interface{}, error) {
		rows, err := transform.BuildMostMentionedHashtags(records)
		return rows, err
	}); err != nil {
		return err
	}
	if err := saveOrSkip(log, storage.TableMostActiveUsers, store, func() (interface{}, error) {
		rows, err := transform.BuildMostActiveUsers(records)
		return rows, err
	}); err != nil {
		return err
	}
	if err := saveOrSkip(log, storage.TableMostRetweetedUsers, store, func() (interface{}, error) {
		rows, err := transform.BuildMostRetweetedUsers(records)
		return rows, err
	}); err != nil {
		return err
	}
	if err := saveOrSkip(log, storage.TableUsersByFollowers, store, func() (interface{}, error) {
		rows, err := transform.BuildUsersByFollowers(records)
		return rows, err
	}); err != nil {
		return err
	}
	if err := saveOrSkip(log, storage.TableTweetsSortedByRetweets, store, func() (interface{}, error) {
		rows, err := transform.BuildTweetsSortedByRetweets(records)
		return rows, err
	}); err != nil {
		return err
	}

	matrix, err := transform.BuildCoHashtagMatrix(records)
	if err != nil {
		if errors.IsEmptyInput(err) {
			log.Info().Str("table", storage.TableCoHashtagsMatrix).Msg("Nothing to derive, skipping")
			return nil
		}
		return err
	}
	return store.SaveMatrix(matrix)
}

// Visualize renders one chart per aggregate table that exists on disk
func Visualize(cfg config.Config) error {
	store := storage.New(cfg.SavePath, cfg.Keyword)
	return visualize.New(store, cfg.Keyword).RenderAll()
}

// Run executes the three stages in order
func Run(ctx context.Context, cfg config.Config) error {
	if err := Extract(ctx, cfg); err != nil {
		return err
	}
	if err := Transform(cfg); err != nil {
		return err
	}
	return Visualize(cfg)
}

func saveOrSkip(log *logger.Logger, table string, store *storage.Store, build func() (interface{}, error)) error {
	rows, err := build()
	if err != nil {
		if errors.IsEmptyInput(err) {
			log.Info().Str("table", table).Msg("Nothing to derive, skipping")
			return nil
		}
		return err
	}
	return store.SaveTable(table, rows)
}

func newPublisher(ctx context.Context, cfg config.Config) publisher.Publisher {
	if cfg.RedisAddr == "" {
		return publisher.Noop{}
	}
	return publisher.NewRedisPublisher(
		ctx,
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisStream,
		cfg.RedisStreamCount,
		cfg.RedisStreamMaxLength,
	)
}
