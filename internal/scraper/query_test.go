package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmoncada/tweetscope/config"
	"dmoncada/tweetscope/pkg/errors"
)

func TestSearchURLAccount(t *testing.T) {
	url, err := SearchURL(config.KeywordAccount, "nasa", "2023-05-01", "2023-05-02", false)
	require.NoError(t, err)
	assert.Equal(t,
		"https://twitter.com/search?f=tweets&vertical=default"+
			"&q=(from%3Anasa)%20since%3A2023-05-01%20until%3A2023-05-02&src=typed_query",
		url)
}

func TestSearchURLHashtag(t *testing.T) {
	url, err := SearchURL(config.KeywordHashtag, "golang", "2023-05-01", "2023-05-02", false)
	require.NoError(t, err)
	assert.Equal(t,
		"https://twitter.com/search?f=tweets&vertical=default"+
			"&q=(%23golang)%20since%3A2023-05-01%20until%3A2023-05-02&src=typed_query",
		url)
}

func TestSearchURLQueryEncodesSpaces(t *testing.T) {
	url, err := SearchURL(config.KeywordQuery, "climate_change", "2023-05-01", "2023-05-02", false)
	require.NoError(t, err)
	assert.Equal(t,
		"https://twitter.com/search?f=tweets&vertical=default"+
			"&q=climate%20change%20since%3A2023-05-01%20until%3A2023-05-02&src=typed_query",
		url)
}

func TestSearchURLIncludeRetweets(t *testing.T) {
	url, err := SearchURL(config.KeywordHashtag, "golang", "2023-05-01", "2023-05-02", true)
	require.NoError(t, err)
	assert.Contains(t, url, "include%3Aretweets")
}

func TestSearchURLUnknownTypeIsConfigurationError(t *testing.T) {
	_, err := SearchURL("trending", "golang", "2023-05-01", "2023-05-02", false)
	require.Error(t, err)
	var perr *errors.PipelineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, errors.ErrorTypeConfiguration, perr.Type)
}
