package config

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"dmoncada/tweetscope/pkg/errors"
)

// KeywordType classifies what the keyword refers to
type KeywordType string

const (
	KeywordAccount KeywordType = "account"
	KeywordHashtag KeywordType = "hashtag"
	KeywordQuery   KeywordType = "query"
)

// DateLayout is the accepted format for the --start/--end flags
const DateLayout = "2006-01-02"

// Config represents one pipeline run's configuration. It is built once at
// startup and passed by value into every component.
type Config struct {
	// Collection configuration
	Keyword         string
	KeywordType     KeywordType
	Start           time.Time
	End             time.Time
	Delay           time.Duration
	IncludeRetweets bool

	// Paths
	SavePath   string
	KeysPath   string
	ChromePath string

	// Optional collection-event stream
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Environment
	Environment string
}

// Keys holds the metadata API credentials loaded from the keys file
type Keys struct {
	ConsumerKey       string `json:"consumer_key"`
	ConsumerSecret    string `json:"consumer_secret"`
	AccessToken       string `json:"access_token"`
	AccessTokenSecret string `json:"access_token_secret"`
}

// New builds a Config from raw CLI values, filling optional fields from
// environment variables with defaults
func New(keyword, keywordType, start, end, savePath, keysPath, chromePath string, delaySeconds int, includeRetweets bool) (Config, error) {
	cfg := Config{
		Keyword:         keyword,
		KeywordType:     KeywordType(keywordType),
		Delay:           time.Duration(delaySeconds) * time.Second,
		IncludeRetweets: includeRetweets,
		SavePath:        savePath,
		KeysPath:        keysPath,
		ChromePath:      chromePath,
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisStream:     getEnv("REDIS_STREAM", "tweetscope"),
		Environment:     getEnv("TWEETSCOPE_ENVIRONMENT", "development"),
	}
	cfg.RedisDB, _ = strconv.Atoi(getEnv("REDIS_DB", "0"))
	cfg.RedisStreamCount, _ = strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	cfg.RedisStreamMaxLength, _ = strconv.Atoi(getEnv("REDIS_STREAM_MAXLEN", "500"))

	if cfg.SavePath == "" {
		cfg.SavePath = getEnv("TWEETSCOPE_SAVE_PATH", "data")
	}

	var err error
	cfg.Start, err = time.Parse(DateLayout, start)
	if err != nil {
		return cfg, errors.NewConfiguration("start date must be YYYY-MM-DD", err)
	}
	cfg.End, err = time.Parse(DateLayout, end)
	if err != nil {
		return cfg, errors.NewConfiguration("end date must be YYYY-MM-DD", err)
	}

	return cfg, nil
}

// Validate checks the configuration before any browser or network activity
func (c Config) Validate() error {
	if c.Keyword == "" {
		return errors.NewConfiguration("keyword is required", nil)
	}
	switch c.KeywordType {
	case KeywordAccount, KeywordHashtag, KeywordQuery:
	default:
		return errors.NewConfiguration("keyword type must be one of account, hashtag, or query", nil)
	}
	if c.End.Before(c.Start) {
		return errors.NewConfiguration("end date is before start date", nil)
	}
	if c.Delay < time.Second {
		return errors.NewConfiguration("delay must be at least one second", nil)
	}
	// The publisher picks a random stream in [0, count); zero would panic
	// at the first publish instead of failing here
	if c.RedisAddr != "" && c.RedisStreamCount < 1 {
		return errors.NewConfiguration("REDIS_STREAM_COUNT must be at least 1", nil)
	}
	return nil
}

// LoadKeys reads and validates the credentials file for the lookup API
func (c Config) LoadKeys() (Keys, error) {
	var keys Keys
	data, err := os.ReadFile(c.KeysPath)
	if err != nil {
		return keys, errors.NewConfiguration("cannot read keys file", err)
	}
	if err := json.Unmarshal(data, &keys); err != nil {
		return keys, errors.NewConfiguration("keys file is not valid JSON", err)
	}
	if keys.ConsumerKey == "" || keys.ConsumerSecret == "" ||
		keys.AccessToken == "" || keys.AccessTokenSecret == "" {
		return keys, errors.NewConfiguration("keys file must contain consumer_key, consumer_secret, access_token, and access_token_secret", nil)
	}
	return keys, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
