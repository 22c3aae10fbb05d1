package tweet

import "strings"

// CreatedAtLayout is the timestamp format used by the lookup API
const CreatedAtLayout = "Mon Jan 02 15:04:05 -0700 2006"

// Raw is one unnormalized record as returned by the lookup API. Nested
// sub-structures are optional and represented as nil pointers when the
// record does not carry them.
type Raw struct {
	CreatedAt           string        `json:"created_at"`
	ID                  int64         `json:"id"`
	IDStr               string        `json:"id_str"`
	FullText            string        `json:"full_text"`
	Truncated           bool          `json:"truncated"`
	InReplyToScreenName *string       `json:"in_reply_to_screen_name"`
	IsQuoteStatus       bool          `json:"is_quote_status"`
	Lang                string        `json:"lang"`
	RetweetCount        int           `json:"retweet_count"`
	FavoriteCount       int           `json:"favorite_count"`
	Coordinates         *Coordinates  `json:"coordinates"`
	Entities            *Entities     `json:"entities"`
	User                *User         `json:"user"`
	Place               *Place        `json:"place"`
	QuotedStatus        *QuotedStatus `json:"quoted_status"`
}

// Coordinates holds a lon/lat pair, in that order
type Coordinates struct {
	Coordinates []float64 `json:"coordinates"`
}

// Entities holds the hashtags and user mentions of one record
type Entities struct {
	Hashtags     []Hashtag `json:"hashtags"`
	UserMentions []Mention `json:"user_mentions"`
}

// Hashtag is one hashtag entity
type Hashtag struct {
	Text string `json:"text"`
}

// Mention is one user-mention entity
type Mention struct {
	ScreenName string `json:"screen_name"`
}

// User holds the author sub-structure
type User struct {
	ScreenName     string  `json:"screen_name"`
	FollowersCount int     `json:"followers_count"`
	FriendsCount   int     `json:"friends_count"`
	StatusesCount  int     `json:"statuses_count"`
	Location       *string `json:"location"`
	CreatedAt      string  `json:"created_at"`
}

// Place holds the geo place sub-structure
type Place struct {
	CountryCode string `json:"country_code"`
	FullName    string `json:"full_name"`
	Name        string `json:"name"`
}

// QuotedStatus is present when the record quotes (retweets) another one
type QuotedStatus struct {
	User         *User `json:"user"`
	RetweetCount int   `json:"retweet_count"`
}

// TokenList is a list of short tokens (hashtags or mentions) that
// round-trips through a single CSV cell as space-separated values
type TokenList []string

// MarshalCSV implements gocsv marshalling
func (t TokenList) MarshalCSV() (string, error) {
	return strings.Join(t, " "), nil
}

// UnmarshalCSV implements gocsv unmarshalling
func (t *TokenList) UnmarshalCSV(cell string) error {
	*t = TokenList(strings.Fields(cell))
	return nil
}

// Record is one fully derived analytical row
type Record struct {
	ID                          string    `csv:"id"`
	URL                         string    `csv:"url"`
	Ts                          string    `csv:"ts"`
	Date                        string    `csv:"date"`
	Year                        int       `csv:"year"`
	MonthNumber                 int       `csv:"month_number"`
	MonthName                   string    `csv:"month_name"`
	Day                         int       `csv:"day"`
	WeekdayNum                  int       `csv:"weekday_num"`
	DateWeekday                 string    `csv:"date_weekday"`
	Hour                        int       `csv:"hour"`
	Lon                         *float64  `csv:"lon"`
	Lat                         *float64  `csv:"lat"`
	Lang                        string    `csv:"lang"`
	Hashtags                    TokenList `csv:"hashtags"`
	UserMentions                TokenList `csv:"user_mentions"`
	ReplyToUser                 string    `csv:"reply_to_user"`
	IsQuote                     bool      `csv:"is_quote"`
	IsTruncated                 bool      `csv:"is_truncated"`
	Country                     *string   `csv:"country"`
	CityState                   *string   `csv:"city_state"`
	City                        *string   `csv:"city"`
	UserScreenName              *string   `csv:"user_screen_name"`
	UserFollowersCount          int       `csv:"user_followers_count"`
	UserFriendsCount            int       `csv:"user_friends_count"`
	UserStatusesCount           int       `csv:"user_statuses_count"`
	UserLocation                *string   `csv:"user_location"`
	UserTs                      *string   `csv:"user_ts"`
	RetweetedDummy              bool      `csv:"retweeted_dummy"`
	RetweetedUserScreenName     *string   `csv:"retweeted_user_screen_name"`
	RetweetedRetweetCount       *int      `csv:"retweeted_retweet_count"`
	RetweetedUserFollowersCount *int      `csv:"retweeted_user_followers_count"`
	RetweetedUserFriendsCount   *int      `csv:"retweeted_user_friends_count"`
	RetweetedUserStatusesCount  *int      `csv:"retweeted_user_statuses_count"`
	RetweetedUserLocation       *string   `csv:"retweeted_user_location"`
	FullText                    string    `csv:"full_text"`
	RetweetCount                int       `csv:"retweet_count"`
	FavoriteCount               int       `csv:"favorite_count"`
	TextClean                   string    `csv:"text_clean"`
}
