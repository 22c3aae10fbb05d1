package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"dmoncada/tweetscope/internal/transform"
	"dmoncada/tweetscope/pkg/errors"
)

// SaveMatrix writes the co-hashtag matrix with hashtags as both the
// header row and the leading column
func (s *Store) SaveMatrix(m *transform.CoHashtagMatrix) error {
	path := s.CSVPath(TableCoHashtagsMatrix)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewPersistence("storage", "cannot create table directory", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.NewPersistence("storage", "cannot create "+path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{""}, m.Hashtags...)
	if err := w.Write(header); err != nil {
		return errors.NewPersistence("storage", "cannot write "+path, err)
	}
	for i, tag := range m.Hashtags {
		row := make([]string, 0, len(m.Hashtags)+1)
		row = append(row, tag)
		for _, cell := range m.Cells[i] {
			row = append(row, strconv.Itoa(cell))
		}
		if err := w.Write(row); err != nil {
			return errors.NewPersistence("storage", "cannot write "+path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.NewPersistence("storage", "cannot flush "+path, err)
	}
	return nil
}

// LoadMatrix reads the co-hashtag matrix back
func (s *Store) LoadMatrix() (*transform.CoHashtagMatrix, error) {
	path := s.CSVPath(TableCoHashtagsMatrix)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewEmptyInput("storage", "co-hashtag matrix does not exist yet")
		}
		return nil, errors.NewPersistence("storage", "cannot open "+path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.NewPersistence("storage", "cannot read "+path, err)
	}
	if len(rows) < 2 {
		return nil, errors.NewEmptyInput("storage", "co-hashtag matrix is empty")
	}

	hashtags := rows[0][1:]
	cells := make([][]int, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cellRow := make([]int, 0, len(hashtags))
		for _, cell := range row[1:] {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, errors.NewParsing("storage", "non-numeric matrix cell", err)
			}
			cellRow = append(cellRow, v)
		}
		cells = append(cells, cellRow)
	}
	return &transform.CoHashtagMatrix{Hashtags: hashtags, Cells: cells}, nil
}
