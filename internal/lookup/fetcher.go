package lookup

import (
	"context"

	"dmoncada/tweetscope/internal/tweet"
	"dmoncada/tweetscope/logger"
	"dmoncada/tweetscope/pkg/errors"
)

// BatchSize is the maximum number of identifiers per lookup call
const BatchSize = 100

// Fetcher assembles the raw record table from collected identifiers
type Fetcher struct {
	client StatusLookuper
	log    *logger.Logger
}

// NewFetcher creates a metadata fetcher
func NewFetcher(client StatusLookuper) *Fetcher {
	return &Fetcher{
		client: client,
		log:    logger.ForFetcher(),
	}
}

// FlattenBatches merges the checkpoint's per-day batches into one
// deduplicated identifier list, preserving first-seen order
func FlattenBatches(batches [][]string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, batch := range batches {
		for _, id := range batch {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// FetchAll looks up every identifier in fixed-size batches and returns the
// concatenated records, dropping any record that carries no entities
// sub-structure. A batch failure is surfaced to the caller; an empty
// identifier list is an empty-input condition, not an error to retry.
func (f *Fetcher) FetchAll(ctx context.Context, ids []string) ([]tweet.Raw, error) {
	if len(ids) == 0 {
		return nil, errors.NewEmptyInput("fetcher", "there are no ids to extract metadata for")
	}

	f.log.Info().Int("total_ids", len(ids)).Msg("Fetching metadata")

	var all []tweet.Raw
	for floor := 0; floor < len(ids); floor += BatchSize {
		ceil := floor + BatchSize
		if ceil > len(ids) {
			ceil = len(ids)
		}
		f.log.Debug().
			Int("floor", floor).
			Int("ceil", ceil).
			Int("total", len(ids)).
			Msg("Fetching id batch")

		raws, err := f.client.Lookup(ctx, ids[floor:ceil])
		if err != nil {
			return nil, err
		}
		for _, raw := range raws {
			// Records without entities are scraping noise
			if raw.Entities == nil {
				continue
			}
			all = append(all, raw)
		}
	}

	f.log.Info().Int("records", len(all)).Msg("Metadata collection complete")
	return all, nil
}
