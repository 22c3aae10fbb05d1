package transform

import (
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"dmoncada/tweetscope/internal/tweet"
	"dmoncada/tweetscope/logger"
	"dmoncada/tweetscope/pkg/errors"
)

// tsLayout is how normalized timestamps are rendered in the clean table
const tsLayout = "2006-01-02 15:04:05-07:00"

var eastern = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}()

// Normalizer converts raw records into normalized analytical rows
type Normalizer struct {
	log *logger.Logger
}

// NewNormalizer creates a normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{log: logger.ForTransform()}
}

// NormalizeAll normalizes every raw record, skipping records whose id or
// timestamp cannot be parsed. Malformed nested sub-structures inside a
// record null-propagate instead of dropping the row.
func (n *Normalizer) NormalizeAll(raws []tweet.Raw) []tweet.Record {
	records := make([]tweet.Record, 0, len(raws))
	for _, raw := range raws {
		rec, err := n.Normalize(raw)
		if err != nil {
			n.log.Warn().Err(err).Msg("Skipping unnormalizable record")
			continue
		}
		records = append(records, rec)
	}
	return records
}

// Normalize derives one normalized row from one raw record. Pure: the
// result depends only on the record, the fixed stopword list, and the
// fixed calendar name mappings.
func (n *Normalizer) Normalize(raw tweet.Raw) (tweet.Record, error) {
	var rec tweet.Record

	id, err := normalizeID(raw)
	if err != nil {
		return rec, err
	}
	rec.ID = id
	rec.URL = "https://twitter.com/i/web/status/" + id

	ts, err := time.Parse(tweet.CreatedAtLayout, raw.CreatedAt)
	if err != nil {
		return rec, errors.NewParsing("transform", "cannot parse created_at", err)
	}
	ts = ts.In(eastern)
	rec.Ts = ts.Format(tsLayout)
	rec.Date = ts.Format("2006-01-02")
	rec.Year = ts.Year()
	rec.MonthNumber = int(ts.Month())
	rec.MonthName = MonthName(rec.MonthNumber)
	rec.Day = ts.Day()
	rec.WeekdayNum = WeekdayNum(ts)
	rec.DateWeekday = WeekdayName(rec.WeekdayNum)
	rec.Hour = ts.Hour()

	if raw.Coordinates != nil && len(raw.Coordinates.Coordinates) >= 2 {
		lon := raw.Coordinates.Coordinates[0]
		lat := raw.Coordinates.Coordinates[1]
		rec.Lon = &lon
		rec.Lat = &lat
	}

	rec.Lang = classifyLang(raw.Lang)
	rec.IsQuote = raw.IsQuoteStatus
	rec.IsTruncated = raw.Truncated
	rec.RetweetCount = raw.RetweetCount
	rec.FavoriteCount = raw.FavoriteCount
	rec.FullText = raw.FullText
	rec.TextClean = CleanText(raw.FullText)

	if raw.Entities != nil {
		for _, h := range raw.Entities.Hashtags {
			rec.Hashtags = append(rec.Hashtags, "#"+strings.ToLower(h.Text))
		}
		for _, m := range raw.Entities.UserMentions {
			rec.UserMentions = append(rec.UserMentions, "@"+strings.ToLower(m.ScreenName))
		}
	}

	if raw.InReplyToScreenName != nil && *raw.InReplyToScreenName != "" {
		rec.ReplyToUser = "@" + *raw.InReplyToScreenName
	}

	if raw.Place != nil {
		country := raw.Place.CountryCode
		cityState := raw.Place.FullName
		city := raw.Place.Name
		rec.Country = &country
		rec.CityState = &cityState
		rec.City = &city
	}

	if raw.User != nil {
		screenName := strings.ToLower(raw.User.ScreenName)
		rec.UserScreenName = &screenName
		rec.UserFollowersCount = raw.User.FollowersCount
		rec.UserFriendsCount = raw.User.FriendsCount
		rec.UserStatusesCount = raw.User.StatusesCount
		rec.UserLocation = raw.User.Location
		if userTs, err := time.Parse(tweet.CreatedAtLayout, raw.User.CreatedAt); err == nil {
			formatted := userTs.In(eastern).Format(tsLayout)
			rec.UserTs = &formatted
		}
	}

	// The retweet field group is present only when the record quotes
	// another one; absent quotes leave the whole group null
	if raw.QuotedStatus != nil {
		rec.RetweetedDummy = true
		count := raw.QuotedStatus.RetweetCount
		rec.RetweetedRetweetCount = &count
		if qu := raw.QuotedStatus.User; qu != nil {
			screenName := qu.ScreenName
			rec.RetweetedUserScreenName = &screenName
			followers := qu.FollowersCount
			friends := qu.FriendsCount
			statuses := qu.StatusesCount
			rec.RetweetedUserFollowersCount = &followers
			rec.RetweetedUserFriendsCount = &friends
			rec.RetweetedUserStatusesCount = &statuses
			rec.RetweetedUserLocation = qu.Location
		}
	}

	return rec, nil
}

// normalizeID validates and canonicalizes the record identifier. Scraped
// links occasionally yield noise; a non-numeric id drops the record.
func normalizeID(raw tweet.Raw) (string, error) {
	id := raw.IDStr
	if id == "" && raw.ID != 0 {
		id = strconv.FormatInt(raw.ID, 10)
	}
	if id == "" {
		return "", errors.NewParsing("transform", "record has no id", nil)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", errors.NewParsing("transform", "record id is not numeric: "+id, nil)
		}
	}
	return id, nil
}

// classifyLang reduces the upstream language code to the three classes
// the aggregates care about. The API emits ISO "es" for Spanish; "sp" is
// accepted as a legacy alias.
func classifyLang(code string) string {
	switch code {
	case "en":
		return "english"
	case "es", "sp":
		return "spanish"
	default:
		return "other"
	}
}
