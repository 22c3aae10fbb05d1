package checkpoint

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"dmoncada/tweetscope/logger"
	"dmoncada/tweetscope/pkg/errors"
)

// FileStore implements Store as a single gob blob on disk
type FileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore creates a file-backed checkpoint store at path, creating
// the parent directory if needed
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.NewPersistence("checkpoint", "cannot create checkpoint directory", err)
	}
	return &FileStore{path: path, log: logger.ForCheckpoint()}, nil
}

// Load reads the persisted batch sequence. A missing file means no prior
// checkpoint; an unreadable or corrupt file is fatal for the run, never a
// silent restart from day zero.
func (s *FileStore) Load() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return [][]string{}, nil
		}
		return nil, errors.NewPersistence("checkpoint", "cannot open checkpoint file", err)
	}
	defer f.Close()

	var batches [][]string
	if err := gob.NewDecoder(f).Decode(&batches); err != nil {
		return nil, errors.NewPersistence("checkpoint", "checkpoint file is corrupt", err)
	}
	return batches, nil
}

// Append loads the current sequence, appends one batch, and atomically
// rewrites the whole file via a temp file and rename
func (s *FileStore) Append(batch []string) error {
	batches, err := s.Load()
	if err != nil {
		return err
	}
	batches = append(batches, batch)

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".ids-*.tmp")
	if err != nil {
		return errors.NewPersistence("checkpoint", "cannot create temp checkpoint file", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(batches); err != nil {
		tmp.Close()
		return errors.NewPersistence("checkpoint", "cannot encode checkpoint", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.NewPersistence("checkpoint", "cannot sync checkpoint", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewPersistence("checkpoint", "cannot close temp checkpoint file", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.NewPersistence("checkpoint", "cannot replace checkpoint file", err)
	}
	s.log.Debug().
		Int("batches", len(batches)).
		Int("ids_in_batch", len(batch)).
		Msg("Checkpoint flushed")
	return nil
}
