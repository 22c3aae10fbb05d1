package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"dmoncada/tweetscope/config"
)

var (
	flagKeyword         string
	flagKeywordType     string
	flagStart           string
	flagEnd             string
	flagSavePath        string
	flagKeysPath        string
	flagChromePath      string
	flagDelay           int
	flagIncludeRetweets bool
)

var rootCmd = &cobra.Command{
	Use:   "tweetscope",
	Short: "Scrape tweets for a keyword and derive analytical tables and charts",
	Long: `tweetscope collects the ids of every tweet matching a keyword,
hashtag, or account over a date range, enriches them through the lookup
API, and derives daily series, topic weights, rankings, and a hashtag
co-occurrence matrix, each persisted as csv and rendered as an HTML chart.`,
	SilenceUsage: true,
}

// ExecuteContext runs the CLI under the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagKeyword, "keyword", "", "keyword, hashtag (without #), or account to collect (required)")
	pf.StringVar(&flagKeywordType, "keyword-type", "", "one of account, hashtag, or query (required)")
	pf.StringVar(&flagStart, "start", "", "collection start date, YYYY-MM-DD inclusive (required)")
	pf.StringVar(&flagEnd, "end", "", "collection end date, YYYY-MM-DD exclusive (required)")
	pf.StringVar(&flagSavePath, "save-path", "data", "root directory for per-keyword artifacts")
	pf.StringVar(&flagKeysPath, "keys-path", "", "path to the JSON credentials file for the lookup API")
	pf.StringVar(&flagChromePath, "chrome-path", "", "path to the browser executable (optional)")
	pf.IntVar(&flagDelay, "delay", 10, "seconds to wait after each navigation or scroll")
	pf.BoolVar(&flagIncludeRetweets, "include-retweets", false, "include retweets in the search query")
}

// buildConfig assembles and validates the run configuration from flags
func buildConfig() (config.Config, error) {
	cfg, err := config.New(
		strings.ToLower(flagKeyword),
		strings.ToLower(flagKeywordType),
		flagStart,
		flagEnd,
		flagSavePath,
		flagKeysPath,
		flagChromePath,
		flagDelay,
		flagIncludeRetweets,
	)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
