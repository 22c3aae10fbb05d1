package transform

import (
	"sort"
	"time"

	"dmoncada/tweetscope/internal/tweet"
	"dmoncada/tweetscope/pkg/errors"
)

// DateStats is one row of the daily series table
type DateStats struct {
	Date            string `csv:"date"`
	RetweetCount    int    `csv:"retweet_count"`
	FavoriteCount   int    `csv:"favorite_count"`
	TweetsPublished int    `csv:"tweets_published"`
	Month           string `csv:"month"`
	Year            int    `csv:"year"`
}

// BuildGroupedDate groups the clean table by publication date and sums
// retweets, favorites, and tweets published, ascending by date
func BuildGroupedDate(records []tweet.Record) ([]DateStats, error) {
	if len(records) == 0 {
		return nil, errors.NewEmptyInput("transform", "there is no clean data to group by date")
	}

	byDate := make(map[string]*DateStats)
	for _, rec := range records {
		stats, ok := byDate[rec.Date]
		if !ok {
			stats = &DateStats{Date: rec.Date}
			byDate[rec.Date] = stats
		}
		stats.RetweetCount += rec.RetweetCount
		stats.FavoriteCount += rec.FavoriteCount
		stats.TweetsPublished++
	}

	rows := make([]DateStats, 0, len(byDate))
	for _, stats := range byDate {
		if date, err := time.Parse("2006-01-02", stats.Date); err == nil {
			stats.Month = MonthName(int(date.Month()))
			stats.Year = date.Year()
		}
		rows = append(rows, *stats)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })

	return rows, nil
}
