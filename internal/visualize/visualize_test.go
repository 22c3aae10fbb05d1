package visualize

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmoncada/tweetscope/internal/storage"
	"dmoncada/tweetscope/internal/transform"
)

func TestGroupedDateWritesChartFile(t *testing.T) {
	store := storage.New(t.TempDir(), "golang")
	rows := []transform.DateStats{
		{Date: "2023-05-01", RetweetCount: 5, FavoriteCount: 10, TweetsPublished: 2, Month: "MAY", Year: 2023},
		{Date: "2023-05-02", RetweetCount: 1, FavoriteCount: 0, TweetsPublished: 1, Month: "MAY", Year: 2023},
	}
	require.NoError(t, store.SaveTable(storage.TableGroupedDate, rows))

	v := New(store, "golang")
	require.NoError(t, v.GroupedDate())

	html, err := os.ReadFile(store.HTMLPath(storage.TableGroupedDate))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Retweets count")
}

func TestCoHashtagsWritesHeatmap(t *testing.T) {
	store := storage.New(t.TempDir(), "golang")
	matrix := &transform.CoHashtagMatrix{
		Hashtags: []string{"#coast", "#storm"},
		Cells:    [][]int{{2, 1}, {1, 3}},
	}
	require.NoError(t, store.SaveMatrix(matrix))

	v := New(store, "golang")
	require.NoError(t, v.CoHashtags())

	html, err := os.ReadFile(store.HTMLPath(storage.TableCoHashtagsMatrix))
	require.NoError(t, err)
	assert.Contains(t, string(html), "heatmap")
}

func TestRenderAllSkipsMissingTables(t *testing.T) {
	store := storage.New(t.TempDir(), "golang")
	rows := []transform.HashtagCount{
		{Hashtag: "#storm", HashtagsCount: 3},
		{Hashtag: "#coast", HashtagsCount: 1},
	}
	require.NoError(t, store.SaveTable(storage.TableMostMentionedHashtags, rows))

	v := New(store, "golang")
	require.NoError(t, v.RenderAll())

	_, err := os.Stat(store.HTMLPath(storage.TableMostMentionedHashtags))
	assert.NoError(t, err)
	_, err = os.Stat(store.HTMLPath(storage.TableGroupedDate))
	assert.True(t, os.IsNotExist(err))
}
