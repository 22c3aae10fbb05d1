package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmoncada/tweetscope/config"
	"dmoncada/tweetscope/internal/pipeline"
	"dmoncada/tweetscope/internal/storage"
	"dmoncada/tweetscope/internal/tweet"
)

// seedRaws is a small raw table covering two days, two authors, shared
// hashtags, and one quoted record, enough signal for every aggregate
func seedRaws() []tweet.Raw {
	return []tweet.Raw{
		{
			CreatedAt:     "Mon May 01 14:00:00 +0000 2023",
			IDStr:         "101",
			FullText:      "Storm surge expected along the coast #weather #storm @noaa",
			Lang:          "en",
			RetweetCount:  12,
			FavoriteCount: 30,
			Entities: &tweet.Entities{
				Hashtags:     []tweet.Hashtag{{Text: "weather"}, {Text: "storm"}},
				UserMentions: []tweet.Mention{{ScreenName: "noaa"}},
			},
			User: &tweet.User{ScreenName: "alice", FollowersCount: 1000, FriendsCount: 50, StatusesCount: 900},
		},
		{
			CreatedAt:     "Mon May 01 16:30:00 +0000 2023",
			IDStr:         "102",
			FullText:      "Storm tracking update #storm",
			Lang:          "en",
			RetweetCount:  3,
			FavoriteCount: 4,
			Entities: &tweet.Entities{
				Hashtags: []tweet.Hashtag{{Text: "storm"}},
			},
			User: &tweet.User{ScreenName: "bob", FollowersCount: 40000, FriendsCount: 100, StatusesCount: 2000},
			QuotedStatus: &tweet.QuotedStatus{
				RetweetCount: 500,
				User:         &tweet.User{ScreenName: "carol", FollowersCount: 90000},
			},
		},
		{
			CreatedAt:     "Tue May 02 09:15:00 +0000 2023",
			IDStr:         "103",
			FullText:      "Marea alta en la costa #weather",
			Lang:          "es",
			RetweetCount:  1,
			FavoriteCount: 2,
			Entities: &tweet.Entities{
				Hashtags:     []tweet.Hashtag{{Text: "weather"}},
				UserMentions: []tweet.Mention{{ScreenName: "noaa"}},
			},
			User: &tweet.User{ScreenName: "alice", FollowersCount: 1010, FriendsCount: 52, StatusesCount: 905},
		},
	}
}

func TestTransformAndVisualizeStages(t *testing.T) {
	savePath := t.TempDir()
	cfg, err := config.New("storm", "query", "2023-05-01", "2023-05-03", savePath, "", "", 10, false)
	require.NoError(t, err)

	store := storage.New(savePath, "storm")
	require.NoError(t, store.SaveRaw(seedRaws()))

	require.NoError(t, pipeline.Transform(cfg))

	records, err := store.LoadClean()
	require.NoError(t, err)
	require.Len(t, records, 3)

	for _, table := range []string{
		storage.TableGroupedDate,
		storage.TableKeyTopics,
		storage.TableMostMentionedUsers,
		storage.TableMostMentionedHashtags,
		storage.TableMostActiveUsers,
		storage.TableMostRetweetedUsers,
		storage.TableUsersByFollowers,
		storage.TableCoHashtagsMatrix,
		storage.TableTweetsSortedByRetweets,
	} {
		_, err := os.Stat(store.CSVPath(table))
		assert.NoError(t, err, table)
	}

	matrix, err := store.LoadMatrix()
	require.NoError(t, err)
	assert.Equal(t, matrix.At("#weather", "#storm"), matrix.At("#storm", "#weather"))
	assert.Equal(t, 2, matrix.At("#weather", "#weather"))

	require.NoError(t, pipeline.Visualize(cfg))

	for _, table := range []string{
		storage.TableGroupedDate,
		storage.TableKeyTopics,
		storage.TableCoHashtagsMatrix,
	} {
		_, err := os.Stat(store.HTMLPath(table))
		assert.NoError(t, err, table)
	}
}

func TestTransformWithoutRawDataIsANoOp(t *testing.T) {
	savePath := t.TempDir()
	cfg, err := config.New("storm", "query", "2023-05-01", "2023-05-03", savePath, "", "", 10, false)
	require.NoError(t, err)

	require.NoError(t, pipeline.Transform(cfg))

	store := storage.New(savePath, "storm")
	_, err = os.Stat(store.CSVPath(storage.TableCleanData))
	assert.True(t, os.IsNotExist(err))
}
