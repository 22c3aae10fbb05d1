package scraper

import (
	"fmt"
	"strings"

	"dmoncada/tweetscope/config"
	"dmoncada/tweetscope/pkg/errors"
)

const searchBase = "https://twitter.com/search?f=tweets&vertical=default"

// SearchURL builds the search URL for one day's collection window
// [since, until). The query shape depends on the keyword type: account
// searches by author, hashtag by #keyword, query by free text (multi-word
// queries are passed with underscores, encoded as %20). An unrecognized
// keyword type is a configuration error, never silently defaulted.
func SearchURL(keywordType config.KeywordType, keyword, since, until string, includeRetweets bool) (string, error) {
	retweets := ""
	if includeRetweets {
		retweets = "include%3Aretweets"
	}

	switch keywordType {
	case config.KeywordAccount:
		return fmt.Sprintf("%s&q=(from%%3A%s)%%20since%%3A%s%%20until%%3A%s%s&src=typed_query",
			searchBase, keyword, since, until, retweets), nil
	case config.KeywordHashtag:
		return fmt.Sprintf("%s&q=(%%23%s)%%20since%%3A%s%%20until%%3A%s%s&src=typed_query",
			searchBase, keyword, since, until, retweets), nil
	case config.KeywordQuery:
		encoded := strings.ReplaceAll(keyword, "_", "%20")
		return fmt.Sprintf("%s&q=%s%%20since%%3A%s%%20until%%3A%s%s&src=typed_query",
			searchBase, encoded, since, until, retweets), nil
	default:
		return "", errors.NewConfiguration(fmt.Sprintf("unknown keyword type %q", keywordType), nil)
	}
}
