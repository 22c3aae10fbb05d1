package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmoncada/tweetscope/pkg/errors"
)

func TestNewConfig(t *testing.T) {
	cfg, err := New("golang", "hashtag", "2023-05-01", "2023-05-08", "data", "keys.json", "", 10, false)
	require.NoError(t, err)

	assert.Equal(t, "golang", cfg.Keyword)
	assert.Equal(t, KeywordHashtag, cfg.KeywordType)
	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), cfg.Start)
	assert.Equal(t, time.Date(2023, 5, 8, 0, 0, 0, 0, time.UTC), cfg.End)
	assert.Equal(t, 10*time.Second, cfg.Delay)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfigBadDates(t *testing.T) {
	_, err := New("golang", "hashtag", "05/01/2023", "2023-05-08", "data", "keys.json", "", 10, false)
	assert.Error(t, err)

	_, err = New("golang", "hashtag", "2023-05-01", "not-a-date", "data", "keys.json", "", 10, false)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		cfg, err := New("golang", "query", "2023-05-01", "2023-05-08", "data", "keys.json", "", 10, false)
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.KeywordType = "trending"
	err := cfg.Validate()
	require.Error(t, err)
	var perr *errors.PipelineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, errors.ErrorTypeConfiguration, perr.Type)

	cfg = base()
	cfg.Keyword = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Start, cfg.End = cfg.End, cfg.Start
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Delay = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRedisStreamCount(t *testing.T) {
	cfg, err := New("golang", "query", "2023-05-01", "2023-05-08", "data", "keys.json", "", 10, false)
	require.NoError(t, err)

	// An unset or garbage REDIS_STREAM_COUNT leaves zero; that is only a
	// problem once a stream address is configured
	cfg.RedisStreamCount = 0
	assert.NoError(t, cfg.Validate())

	cfg.RedisAddr = "localhost:6379"
	err = cfg.Validate()
	require.Error(t, err)
	var perr *errors.PipelineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, errors.ErrorTypeConfiguration, perr.Type)

	cfg.RedisStreamCount = 1
	assert.NoError(t, cfg.Validate())
}

func TestLoadKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"consumer_key": "ck",
		"consumer_secret": "cs",
		"access_token": "at",
		"access_token_secret": "ats"
	}`), 0o644))

	cfg, err := New("golang", "query", "2023-05-01", "2023-05-08", "data", path, "", 10, false)
	require.NoError(t, err)

	keys, err := cfg.LoadKeys()
	require.NoError(t, err)
	assert.Equal(t, "ck", keys.ConsumerKey)
	assert.Equal(t, "ats", keys.AccessTokenSecret)
}

func TestLoadKeysMissingField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"consumer_key": "ck"}`), 0o644))

	cfg, err := New("golang", "query", "2023-05-01", "2023-05-08", "data", path, "", 10, false)
	require.NoError(t, err)

	_, err = cfg.LoadKeys()
	require.Error(t, err)
	var perr *errors.PipelineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, errors.ErrorTypeConfiguration, perr.Type)
}

func TestLoadKeysMissingFile(t *testing.T) {
	cfg, err := New("golang", "query", "2023-05-01", "2023-05-08", "data", "/nonexistent/keys.json", "", 10, false)
	require.NoError(t, err)

	_, err = cfg.LoadKeys()
	assert.Error(t, err)
}
