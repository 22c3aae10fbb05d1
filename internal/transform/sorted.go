package transform

import (
	"sort"

	"dmoncada/tweetscope/internal/tweet"
	"dmoncada/tweetscope/pkg/errors"
)

// TweetByRetweets is one row of the retweet-sorted projection
type TweetByRetweets struct {
	UserScreenName     string `csv:"user_screen_name"`
	Link               string `csv:"link"`
	Date               string `csv:"date"`
	Year               int    `csv:"year"`
	MonthName          string `csv:"month_name"`
	Day                int    `csv:"day"`
	FullText           string `csv:"full_text"`
	RetweetCount       int    `csv:"retweet_count"`
	FavoriteCount      int    `csv:"favorite_count"`
	UserFollowersCount int    `csv:"user_followers_count"`
	UserFriendsCount   int    `csv:"user_friends_count"`
	UserStatusesCount  int    `csv:"user_statuses_count"`
}

// BuildTweetsSortedByRetweets projects the clean table onto a fixed
// column subset, descending by retweet count
func BuildTweetsSortedByRetweets(records []tweet.Record) ([]TweetByRetweets, error) {
	if len(records) == 0 {
		return nil, errors.NewEmptyInput("transform", "there is no clean data to sort")
	}

	rows := make([]TweetByRetweets, 0, len(records))
	for _, rec := range records {
		user := ""
		if rec.UserScreenName != nil {
			user = *rec.UserScreenName
		}
		rows = append(rows, TweetByRetweets{
			UserScreenName:     user,
			Link:               profileBase + user,
			Date:               rec.Date,
			Year:               rec.Year,
			MonthName:          rec.MonthName,
			Day:                rec.Day,
			FullText:           rec.FullText,
			RetweetCount:       rec.RetweetCount,
			FavoriteCount:      rec.FavoriteCount,
			UserFollowersCount: rec.UserFollowersCount,
			UserFriendsCount:   rec.UserFriendsCount,
			UserStatusesCount:  rec.UserStatusesCount,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].RetweetCount > rows[j].RetweetCount
	})
	return rows, nil
}
