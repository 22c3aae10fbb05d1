package lookup

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/go-resty/resty/v2"

	"dmoncada/tweetscope/config"
	"dmoncada/tweetscope/internal/tweet"
	"dmoncada/tweetscope/pkg/errors"
)

const lookupEndpoint = "https://api.twitter.com/1.1/statuses/lookup.json"

// StatusLookuper resolves a batch of post identifiers into raw records
type StatusLookuper interface {
	Lookup(ctx context.Context, ids []string) ([]tweet.Raw, error)
}

// TwitterClient implements StatusLookuper against the v1.1 statuses/lookup
// endpoint with OAuth1-signed requests
type TwitterClient struct {
	http *resty.Client
}

// NewTwitterClient creates a lookup client from the credentials file
func NewTwitterClient(keys config.Keys) *TwitterClient {
	oauthConfig := oauth1.NewConfig(keys.ConsumerKey, keys.ConsumerSecret)
	token := oauth1.NewToken(keys.AccessToken, keys.AccessTokenSecret)
	signed := oauthConfig.Client(oauth1.NoContext, token)

	client := resty.NewWithClient(signed).
		SetTimeout(30 * time.Second)

	return &TwitterClient{http: client}
}

// Lookup fetches metadata for up to 100 identifiers in one API call
func (c *TwitterClient) Lookup(ctx context.Context, ids []string) ([]tweet.Raw, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("id", strings.Join(ids, ",")).
		SetQueryParam("tweet_mode", "extended").
		Get(lookupEndpoint)
	if err != nil {
		return nil, errors.NewNetwork("lookup", "statuses/lookup request failed", err)
	}
	if resp.StatusCode() != 200 {
		return nil, errors.NewNetwork("lookup", "statuses/lookup returned "+resp.Status(), nil)
	}

	var raws []tweet.Raw
	if err := json.Unmarshal(resp.Body(), &raws); err != nil {
		return nil, errors.NewParsing("lookup", "cannot decode statuses/lookup response", err)
	}
	return raws, nil
}
