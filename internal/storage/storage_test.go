package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmoncada/tweetscope/internal/transform"
	"dmoncada/tweetscope/internal/tweet"
	"dmoncada/tweetscope/pkg/errors"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), "golang")
}

func TestPathsLiveUnderKeywordRoot(t *testing.T) {
	s := New("data", "golang")

	assert.Equal(t, filepath.Join("data", "golang", "raw_data", "ids.gob"), s.CheckpointPath())
	assert.Equal(t, filepath.Join("data", "golang", "raw_data", "df_raw.csv"), s.CSVPath(TableRawData))
	assert.Equal(t, filepath.Join("data", "golang", "clean_data", "df_clean.csv"), s.CSVPath(TableCleanData))
	assert.Equal(t, filepath.Join("data", "golang", "grouped_date", "grouped_date.csv"), s.CSVPath(TableGroupedDate))
	assert.Equal(t, filepath.Join("data", "golang", "key_topics", "key_topics.html"), s.HTMLPath(TableKeyTopics))
}

func TestSaveAndLoadTable(t *testing.T) {
	s := testStore(t)
	rows := []transform.DateStats{
		{Date: "2023-05-01", RetweetCount: 5, FavoriteCount: 10, TweetsPublished: 2, Month: "MAY", Year: 2023},
		{Date: "2023-05-02", RetweetCount: 1, FavoriteCount: 0, TweetsPublished: 1, Month: "MAY", Year: 2023},
	}
	require.NoError(t, s.SaveTable(TableGroupedDate, rows))

	var loaded []transform.DateStats
	require.NoError(t, s.LoadTable(TableGroupedDate, &loaded))
	assert.Equal(t, rows, loaded)
}

func TestLoadTableMissingIsEmptyInput(t *testing.T) {
	s := testStore(t)

	var rows []transform.DateStats
	err := s.LoadTable(TableGroupedDate, &rows)
	assert.True(t, errors.IsEmptyInput(err))
}

func TestLoadTableZeroRowsIsEmptyInput(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.SaveTable(TableGroupedDate, []transform.DateStats{}))

	var rows []transform.DateStats
	err := s.LoadTable(TableGroupedDate, &rows)
	assert.True(t, errors.IsEmptyInput(err))
}

func TestSaveAndLoadRawRoundTrip(t *testing.T) {
	s := testStore(t)
	reply := "noaa"
	raws := []tweet.Raw{
		{
			CreatedAt:           "Wed May 03 17:30:00 +0000 2023",
			ID:                  101,
			IDStr:               "101",
			FullText:            "Storm warning, stay safe",
			Lang:                "en",
			RetweetCount:        7,
			FavoriteCount:       21,
			InReplyToScreenName: &reply,
			Entities: &tweet.Entities{
				Hashtags:     []tweet.Hashtag{{Text: "weather"}},
				UserMentions: []tweet.Mention{{ScreenName: "noaa"}},
			},
			User: &tweet.User{ScreenName: "alice", FollowersCount: 100},
			QuotedStatus: &tweet.QuotedStatus{
				RetweetCount: 3,
				User:         &tweet.User{ScreenName: "carol", FollowersCount: 9000},
			},
		},
		{
			CreatedAt: "Thu May 04 08:00:00 +0000 2023",
			ID:        102,
			FullText:  "quiet day",
			Lang:      "es",
		},
	}
	require.NoError(t, s.SaveRaw(raws))

	loaded, err := s.LoadRaw()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "101", loaded[0].IDStr)
	require.NotNil(t, loaded[0].Entities)
	assert.Equal(t, "weather", loaded[0].Entities.Hashtags[0].Text)
	require.NotNil(t, loaded[0].User)
	assert.Equal(t, "alice", loaded[0].User.ScreenName)
	require.NotNil(t, loaded[0].QuotedStatus)
	assert.Equal(t, "carol", loaded[0].QuotedStatus.User.ScreenName)
	require.NotNil(t, loaded[0].InReplyToScreenName)
	assert.Equal(t, "noaa", *loaded[0].InReplyToScreenName)

	// Numeric-only ids survive as id_str after the round trip
	assert.Equal(t, "102", loaded[1].IDStr)
	assert.Nil(t, loaded[1].Entities)
	assert.Nil(t, loaded[1].QuotedStatus)
}

func TestSaveAndLoadCleanRoundTrip(t *testing.T) {
	s := testStore(t)
	user := "alice"
	records := []tweet.Record{
		{
			ID:             "101",
			URL:            "https://twitter.com/i/web/status/101",
			Ts:             "2023-05-03 13:30:00-04:00",
			Date:           "2023-05-03",
			Year:           2023,
			MonthNumber:    5,
			MonthName:      "MAY",
			Day:            3,
			WeekdayNum:     2,
			DateWeekday:    "Wednesday",
			Hour:           13,
			Lang:           "english",
			Hashtags:       tweet.TokenList{"#weather", "#storm"},
			UserMentions:   tweet.TokenList{"@noaa"},
			UserScreenName: &user,
			FullText:       "Storm warning",
			RetweetCount:   7,
			TextClean:      "storm warning",
		},
	}
	require.NoError(t, s.SaveClean(records))

	loaded, err := s.LoadClean()
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	assert.Equal(t, records[0].ID, loaded[0].ID)
	assert.Equal(t, tweet.TokenList{"#weather", "#storm"}, loaded[0].Hashtags)
	assert.Equal(t, tweet.TokenList{"@noaa"}, loaded[0].UserMentions)
	require.NotNil(t, loaded[0].UserScreenName)
	assert.Equal(t, "alice", *loaded[0].UserScreenName)
	assert.Nil(t, loaded[0].RetweetedRetweetCount)
}

func TestSaveAndLoadMatrixRoundTrip(t *testing.T) {
	s := testStore(t)
	matrix := &transform.CoHashtagMatrix{
		Hashtags: []string{"#coast", "#storm"},
		Cells:    [][]int{{2, 1}, {1, 3}},
	}
	require.NoError(t, s.SaveMatrix(matrix))

	loaded, err := s.LoadMatrix()
	require.NoError(t, err)
	assert.Equal(t, matrix.Hashtags, loaded.Hashtags)
	assert.Equal(t, matrix.Cells, loaded.Cells)
}

func TestLoadMatrixMissingIsEmptyInput(t *testing.T) {
	s := testStore(t)

	_, err := s.LoadMatrix()
	assert.True(t, errors.IsEmptyInput(err))
}
