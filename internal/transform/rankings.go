package transform

import (
	"sort"
	"strings"

	"dmoncada/tweetscope/internal/tweet"
	"dmoncada/tweetscope/pkg/errors"
)

const profileBase = "https://twitter.com/"

// MentionCount is one row of the mention ranking
type MentionCount struct {
	User          string `csv:"user"`
	MentionsCount int    `csv:"mentions_count"`
	Link          string `csv:"link"`
}

// HashtagCount is one row of the hashtag ranking
type HashtagCount struct {
	Hashtag       string `csv:"hashtags"`
	HashtagsCount int    `csv:"hashtags_count"`
}

// ActiveUser is one row of the author ranking
type ActiveUser struct {
	User            string `csv:"user"`
	TweetsPublished int    `csv:"tweets_published"`
	Link            string `csv:"link"`
}

// RetweetedUser is one row of the retweeted-user ranking
type RetweetedUser struct {
	User           string `csv:"user"`
	CountRetweets  int    `csv:"count_retweets"`
	CountFollowers int    `csv:"count_followers"`
	Link           string `csv:"link"`
}

// UserFollowers is one row of the follower ranking
type UserFollowers struct {
	User                        string `csv:"user"`
	CountFollowers              int    `csv:"count_followers"`
	CountFollowing              int    `csv:"count_following"`
	CountTweetsPublishedAllTime int    `csv:"count_tweets_published_all_time"`
	Link                        string `csv:"link"`
}

// BuildMostMentionedUsers counts how often each user was mentioned,
// descending
func BuildMostMentionedUsers(records []tweet.Record) ([]MentionCount, error) {
	counts := make(map[string]int)
	for _, rec := range records {
		for _, mention := range rec.UserMentions {
			user := strings.TrimPrefix(mention, "@")
			if user == "" {
				continue
			}
			counts[user]++
		}
	}
	if len(counts) == 0 {
		return nil, errors.NewEmptyInput("transform", "no users were mentioned")
	}

	rows := make([]MentionCount, 0, len(counts))
	for user, count := range counts {
		rows = append(rows, MentionCount{User: user, MentionsCount: count, Link: profileBase + user})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MentionsCount != rows[j].MentionsCount {
			return rows[i].MentionsCount > rows[j].MentionsCount
		}
		return rows[i].User < rows[j].User
	})
	return rows, nil
}

// BuildMostMentionedHashtags counts hashtag occurrences, descending,
// excluding empty tags
func BuildMostMentionedHashtags(records []tweet.Record) ([]HashtagCount, error) {
	counts := make(map[string]int)
	for _, rec := range records {
		// Counted once per record so the total matches the co-occurrence
		// matrix diagonal
		inRecord := make(map[string]struct{}, len(rec.Hashtags))
		for _, tag := range rec.Hashtags {
			if tag == "" || tag == "#" {
				continue
			}
			inRecord[tag] = struct{}{}
		}
		for tag := range inRecord {
			counts[tag]++
		}
	}
	if len(counts) == 0 {
		return nil, errors.NewEmptyInput("transform", "no hashtags were captured")
	}

	rows := make([]HashtagCount, 0, len(counts))
	for tag, count := range counts {
		rows = append(rows, HashtagCount{Hashtag: tag, HashtagsCount: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].HashtagsCount != rows[j].HashtagsCount {
			return rows[i].HashtagsCount > rows[j].HashtagsCount
		}
		return rows[i].Hashtag < rows[j].Hashtag
	})
	return rows, nil
}

// BuildMostActiveUsers counts tweets per author, descending
func BuildMostActiveUsers(records []tweet.Record) ([]ActiveUser, error) {
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.UserScreenName == nil || *rec.UserScreenName == "" {
			continue
		}
		counts[*rec.UserScreenName]++
	}
	if len(counts) == 0 {
		return nil, errors.NewEmptyInput("transform", "no authors present in the clean data")
	}

	rows := make([]ActiveUser, 0, len(counts))
	for user, count := range counts {
		rows = append(rows, ActiveUser{User: user, TweetsPublished: count, Link: profileBase + user})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TweetsPublished != rows[j].TweetsPublished {
			return rows[i].TweetsPublished > rows[j].TweetsPublished
		}
		return rows[i].User < rows[j].User
	})
	return rows, nil
}

// BuildMostRetweetedUsers counts how often each quoted user was retweeted
// and keeps their highest observed follower count, descending by retweets
func BuildMostRetweetedUsers(records []tweet.Record) ([]RetweetedUser, error) {
	counts := make(map[string]int)
	followers := make(map[string]int)
	for _, rec := range records {
		if rec.RetweetedUserScreenName == nil || *rec.RetweetedUserScreenName == "" {
			continue
		}
		user := *rec.RetweetedUserScreenName
		counts[user]++
		if rec.RetweetedUserFollowersCount != nil && *rec.RetweetedUserFollowersCount > followers[user] {
			followers[user] = *rec.RetweetedUserFollowersCount
		}
	}
	if len(counts) == 0 {
		return nil, errors.NewEmptyInput("transform", "no record quotes another one")
	}

	rows := make([]RetweetedUser, 0, len(counts))
	for user, count := range counts {
		rows = append(rows, RetweetedUser{
			User:           user,
			CountRetweets:  count,
			CountFollowers: followers[user],
			Link:           profileBase + user,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CountRetweets != rows[j].CountRetweets {
			return rows[i].CountRetweets > rows[j].CountRetweets
		}
		return rows[i].User < rows[j].User
	})
	return rows, nil
}

// BuildUsersByFollowers ranks the distinct authors by follower count,
// keeping the highest observed counts per user
func BuildUsersByFollowers(records []tweet.Record) ([]UserFollowers, error) {
	byUser := make(map[string]*UserFollowers)
	for _, rec := range records {
		if rec.UserScreenName == nil || *rec.UserScreenName == "" {
			continue
		}
		user := *rec.UserScreenName
		row, ok := byUser[user]
		if !ok {
			row = &UserFollowers{User: user, Link: profileBase + user}
			byUser[user] = row
		}
		if rec.UserFollowersCount > row.CountFollowers {
			row.CountFollowers = rec.UserFollowersCount
		}
		if rec.UserFriendsCount > row.CountFollowing {
			row.CountFollowing = rec.UserFriendsCount
		}
		if rec.UserStatusesCount > row.CountTweetsPublishedAllTime {
			row.CountTweetsPublishedAllTime = rec.UserStatusesCount
		}
	}
	if len(byUser) == 0 {
		return nil, errors.NewEmptyInput("transform", "no authors present in the clean data")
	}

	rows := make([]UserFollowers, 0, len(byUser))
	for _, row := range byUser {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CountFollowers != rows[j].CountFollowers {
			return rows[i].CountFollowers > rows[j].CountFollowers
		}
		return rows[i].User < rows[j].User
	})
	return rows, nil
}
