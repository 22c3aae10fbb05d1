package checkpoint

// Store persists the ordered sequence of per-day identifier batches. One
// batch is appended per processed day, before the loop advances, which is
// what makes a crashed collection run resumable.
type Store interface {
	// Load returns every batch persisted so far, in append order. A store
	// with no prior checkpoint returns an empty sequence and no error.
	Load() ([][]string, error)

	// Append adds one day's batch and rewrites the full persisted
	// sequence before returning.
	Append(batch []string) error
}
