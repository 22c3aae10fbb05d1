package storage

import (
	"os"
	"path/filepath"
	"reflect"

	"github.com/gocarina/gocsv"

	"dmoncada/tweetscope/helpers"
	"dmoncada/tweetscope/logger"
	"dmoncada/tweetscope/pkg/errors"
)

// Table directory names under the per-keyword root
const (
	TableRawData                = "raw_data"
	TableCleanData              = "clean_data"
	TableGroupedDate            = "grouped_date"
	TableKeyTopics              = "key_topics"
	TableMostMentionedUsers     = "most_mentioned_users"
	TableMostMentionedHashtags  = "most_mentioned_hashtags"
	TableMostActiveUsers        = "most_active_users"
	TableMostRetweetedUsers     = "most_retweeted_users"
	TableUsersByFollowers       = "users_by_followers"
	TableCoHashtagsMatrix       = "co_hashtags_matrix"
	TableTweetsSortedByRetweets = "tweets_sorted_by_retweets"
)

// Store lays out and persists every artifact of one keyword's pipeline
// under <savePath>/<keyword>/
type Store struct {
	root string
	log  *logger.Logger
}

// New creates a store rooted at <savePath>/<keyword>
func New(savePath, keyword string) *Store {
	return &Store{
		root: filepath.Join(helpers.ExpandUser(savePath), keyword),
		log:  logger.ForTransform(),
	}
}

// CheckpointPath is where the identifier checkpoint blob lives
func (s *Store) CheckpointPath() string {
	return filepath.Join(s.root, TableRawData, "ids.gob")
}

// CSVPath returns the csv artifact path of a table. The raw and clean
// tables keep the reference file names; every aggregate is named after
// its directory.
func (s *Store) CSVPath(table string) string {
	switch table {
	case TableRawData:
		return filepath.Join(s.root, table, "df_raw.csv")
	case TableCleanData:
		return filepath.Join(s.root, table, "df_clean.csv")
	default:
		return filepath.Join(s.root, table, table+".csv")
	}
}

// HTMLPath returns the chart artifact path of a table
func (s *Store) HTMLPath(table string) string {
	return filepath.Join(s.root, table, table+".html")
}

// SaveTable writes rows (a slice of csv-tagged structs) to the table's
// csv artifact, creating its directory on demand
func (s *Store) SaveTable(table string, rows interface{}) error {
	path := s.CSVPath(table)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewPersistence("storage", "cannot create table directory", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.NewPersistence("storage", "cannot create "+path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return errors.NewPersistence("storage", "cannot write "+path, err)
	}
	s.log.Debug().Str("path", path).Msg("Table saved")
	return nil
}

// LoadTable reads a table's csv artifact into rows (a pointer to a slice
// of csv-tagged structs). A missing or empty table is an empty-input
// condition so the stage can skip instead of crash.
func (s *Store) LoadTable(table string, rows interface{}) error {
	path := s.CSVPath(table)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewEmptyInput("storage", "table "+table+" does not exist yet")
		}
		return errors.NewPersistence("storage", "cannot open "+path, err)
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, rows); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return errors.NewEmptyInput("storage", "table "+table+" is empty")
		}
		return errors.NewPersistence("storage", "cannot read "+path, err)
	}
	if v := reflect.ValueOf(rows); v.Kind() == reflect.Ptr && v.Elem().Kind() == reflect.Slice && v.Elem().Len() == 0 {
		return errors.NewEmptyInput("storage", "table "+table+" is empty")
	}
	return nil
}
