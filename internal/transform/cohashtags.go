package transform

import (
	"sort"

	"dmoncada/tweetscope/internal/tweet"
	"dmoncada/tweetscope/pkg/errors"
)

// CoHashtagMatrix is a square co-occurrence matrix indexed by hashtag.
// Cell (i, j) holds the number of records containing both hashtag i and
// hashtag j; the diagonal holds each hashtag's occurrence count.
type CoHashtagMatrix struct {
	Hashtags []string
	Cells    [][]int
}

// At returns the cell for a pair of hashtags, zero when either is unknown
func (m *CoHashtagMatrix) At(a, b string) int {
	ia := m.index(a)
	ib := m.index(b)
	if ia == -1 || ib == -1 {
		return 0
	}
	return m.Cells[ia][ib]
}

func (m *CoHashtagMatrix) index(tag string) int {
	for i, h := range m.Hashtags {
		if h == tag {
			return i
		}
	}
	return -1
}

// BuildCoHashtagMatrix derives the symmetric hashtag co-occurrence matrix
// from the per-record hashtag sets
func BuildCoHashtagMatrix(records []tweet.Record) (*CoHashtagMatrix, error) {
	index := make(map[string]int)
	var tags []string
	perRecord := make([][]int, 0, len(records))
	for _, rec := range records {
		if len(rec.Hashtags) == 0 {
			continue
		}
		inRecord := make(map[int]struct{}, len(rec.Hashtags))
		for _, tag := range rec.Hashtags {
			if tag == "" || tag == "#" {
				continue
			}
			i, ok := index[tag]
			if !ok {
				i = len(tags)
				index[tag] = i
				tags = append(tags, tag)
			}
			inRecord[i] = struct{}{}
		}
		if len(inRecord) == 0 {
			continue
		}
		set := make([]int, 0, len(inRecord))
		for i := range inRecord {
			set = append(set, i)
		}
		sort.Ints(set)
		perRecord = append(perRecord, set)
	}
	if len(tags) == 0 {
		return nil, errors.NewEmptyInput("transform", "no hashtags were captured")
	}

	cells := make([][]int, len(tags))
	for i := range cells {
		cells[i] = make([]int, len(tags))
	}
	for _, set := range perRecord {
		for _, i := range set {
			for _, j := range set {
				cells[i][j]++
			}
		}
	}

	// Present rows/columns in ranked hashtag order for stable output
	sorted := append([]string(nil), tags...)
	sort.Strings(sorted)
	ordered := make([][]int, len(sorted))
	for i, a := range sorted {
		ordered[i] = make([]int, len(sorted))
		for j, b := range sorted {
			ordered[i][j] = cells[index[a]][index[b]]
		}
	}

	return &CoHashtagMatrix{Hashtags: sorted, Cells: ordered}, nil
}
