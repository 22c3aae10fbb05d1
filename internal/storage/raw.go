package storage

import (
	"encoding/json"
	"strconv"

	"dmoncada/tweetscope/internal/tweet"
	"dmoncada/tweetscope/pkg/errors"
)

// rawRow flattens one raw record into csv cells. Nested sub-structures
// round-trip as JSON cells so the raw table loses nothing the normalizer
// needs on a later transform-only run.
type rawRow struct {
	CreatedAt           string `csv:"created_at"`
	ID                  string `csv:"id"`
	FullText            string `csv:"full_text"`
	Truncated           bool   `csv:"truncated"`
	InReplyToScreenName string `csv:"in_reply_to_screen_name"`
	IsQuoteStatus       bool   `csv:"is_quote_status"`
	Lang                string `csv:"lang"`
	RetweetCount        int    `csv:"retweet_count"`
	FavoriteCount       int    `csv:"favorite_count"`
	Coordinates         string `csv:"coordinates"`
	Entities            string `csv:"entities"`
	User                string `csv:"user"`
	Place               string `csv:"place"`
	QuotedStatus        string `csv:"quoted_status"`
}

// SaveRaw writes the raw record table to raw_data/df_raw.csv
func (s *Store) SaveRaw(raws []tweet.Raw) error {
	rows := make([]rawRow, 0, len(raws))
	for _, raw := range raws {
		row := rawRow{
			CreatedAt:     raw.CreatedAt,
			ID:            rawID(raw),
			FullText:      raw.FullText,
			Truncated:     raw.Truncated,
			IsQuoteStatus: raw.IsQuoteStatus,
			Lang:          raw.Lang,
			RetweetCount:  raw.RetweetCount,
			FavoriteCount: raw.FavoriteCount,
		}
		if raw.InReplyToScreenName != nil {
			row.InReplyToScreenName = *raw.InReplyToScreenName
		}
		row.Coordinates = jsonCell(raw.Coordinates)
		row.Entities = jsonCell(raw.Entities)
		row.User = jsonCell(raw.User)
		row.Place = jsonCell(raw.Place)
		row.QuotedStatus = jsonCell(raw.QuotedStatus)
		rows = append(rows, row)
	}
	return s.SaveTable(TableRawData, rows)
}

// LoadRaw reads the raw table back into typed records
func (s *Store) LoadRaw() ([]tweet.Raw, error) {
	var rows []rawRow
	if err := s.LoadTable(TableRawData, &rows); err != nil {
		return nil, err
	}

	raws := make([]tweet.Raw, 0, len(rows))
	for _, row := range rows {
		raw := tweet.Raw{
			CreatedAt:     row.CreatedAt,
			IDStr:         row.ID,
			FullText:      row.FullText,
			Truncated:     row.Truncated,
			IsQuoteStatus: row.IsQuoteStatus,
			Lang:          row.Lang,
			RetweetCount:  row.RetweetCount,
			FavoriteCount: row.FavoriteCount,
		}
		if row.InReplyToScreenName != "" {
			name := row.InReplyToScreenName
			raw.InReplyToScreenName = &name
		}
		if err := fromJSONCell(row.Coordinates, &raw.Coordinates); err != nil {
			return nil, err
		}
		if err := fromJSONCell(row.Entities, &raw.Entities); err != nil {
			return nil, err
		}
		if err := fromJSONCell(row.User, &raw.User); err != nil {
			return nil, err
		}
		if err := fromJSONCell(row.Place, &raw.Place); err != nil {
			return nil, err
		}
		if err := fromJSONCell(row.QuotedStatus, &raw.QuotedStatus); err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

// SaveClean writes the normalized table to clean_data/df_clean.csv
func (s *Store) SaveClean(records []tweet.Record) error {
	return s.SaveTable(TableCleanData, records)
}

// LoadClean reads the normalized table back
func (s *Store) LoadClean() ([]tweet.Record, error) {
	var records []tweet.Record
	if err := s.LoadTable(TableCleanData, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func rawID(raw tweet.Raw) string {
	if raw.IDStr != "" {
		return raw.IDStr
	}
	if raw.ID != 0 {
		return strconv.FormatInt(raw.ID, 10)
	}
	return ""
}

func jsonCell(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil || string(data) == "null" {
		return ""
	}
	return string(data)
}

func fromJSONCell(cell string, out interface{}) error {
	if cell == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(cell), out); err != nil {
		return errors.NewParsing("storage", "corrupt nested cell in raw table", err)
	}
	return nil
}
