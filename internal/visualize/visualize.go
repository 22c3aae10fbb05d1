package visualize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"dmoncada/tweetscope/internal/storage"
	"dmoncada/tweetscope/internal/transform"
	"dmoncada/tweetscope/logger"
	"dmoncada/tweetscope/pkg/errors"
)

// topBars limits how many rows of a ranking end up on its bar chart
const topBars = 20

// Series colors kept from the reference chart styling
const (
	colorRetweets  = "#1998CB"
	colorFavorites = "#F0CD13"
	colorTweets    = "#EC3C37"
)

// Visualizer renders one HTML chart artifact next to each aggregate csv
type Visualizer struct {
	store   *storage.Store
	keyword string
	log     *logger.Logger
}

// New creates a visualizer for one keyword's tables
func New(store *storage.Store, keyword string) *Visualizer {
	return &Visualizer{
		store:   store,
		keyword: keyword,
		log:     logger.ForVisualize(),
	}
}

// GroupedDate renders the daily series as a three-series line chart
func (v *Visualizer) GroupedDate() error {
	var rows []transform.DateStats
	if err := v.store.LoadTable(storage.TableGroupedDate, &rows); err != nil {
		return err
	}

	dates := make([]string, 0, len(rows))
	retweets := make([]opts.LineData, 0, len(rows))
	favorites := make([]opts.LineData, 0, len(rows))
	published := make([]opts.LineData, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.Date)
		retweets = append(retweets, opts.LineData{Value: row.RetweetCount})
		favorites = append(favorites, opts.LineData{Value: row.FavoriteCount})
		published = append(published, opts.LineData{Value: row.TweetsPublished})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Count of tweets, retweets, and favorites by date for %s", v.keyword),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)
	line.SetXAxis(dates).
		AddSeries("Retweets count", retweets, charts.WithItemStyleOpts(opts.ItemStyle{Color: colorRetweets})).
		AddSeries("Favorites count", favorites, charts.WithItemStyleOpts(opts.ItemStyle{Color: colorFavorites})).
		AddSeries("Tweets published count", published, charts.WithItemStyleOpts(opts.ItemStyle{Color: colorTweets}))

	return v.render(storage.TableGroupedDate, line)
}

// KeyTopics renders the topic ranking as a bar chart of normalized weights
func (v *Visualizer) KeyTopics() error {
	var rows []transform.KeyTopic
	if err := v.store.LoadTable(storage.TableKeyTopics, &rows); err != nil {
		return err
	}

	topics := make([]string, 0, len(rows))
	weights := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		topics = append(topics, row.Topic)
		weights = append(weights, opts.BarData{Value: row.WeightNormalized})
	}

	bar := newBar(fmt.Sprintf("Top %d key topics for %s", len(rows), v.keyword), "Importance (%)")
	bar.SetXAxis(topics).AddSeries("Topic weight", weights,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorRetweets}))

	return v.render(storage.TableKeyTopics, bar)
}

// MostMentionedUsers renders the mention ranking
func (v *Visualizer) MostMentionedUsers() error {
	var rows []transform.MentionCount
	if err := v.store.LoadTable(storage.TableMostMentionedUsers, &rows); err != nil {
		return err
	}
	rows = rows[:min(len(rows), topBars)]

	users := make([]string, 0, len(rows))
	counts := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.User)
		counts = append(counts, opts.BarData{Value: row.MentionsCount})
	}

	bar := newBar(fmt.Sprintf("Top %d mentioned users for %s", len(rows), v.keyword), "Mentions")
	bar.SetXAxis(users).AddSeries("Mentions count", counts,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorRetweets}))

	return v.render(storage.TableMostMentionedUsers, bar)
}

// MostMentionedHashtags renders the hashtag ranking
func (v *Visualizer) MostMentionedHashtags() error {
	var rows []transform.HashtagCount
	if err := v.store.LoadTable(storage.TableMostMentionedHashtags, &rows); err != nil {
		return err
	}
	rows = rows[:min(len(rows), topBars)]

	tags := make([]string, 0, len(rows))
	counts := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, row.Hashtag)
		counts = append(counts, opts.BarData{Value: row.HashtagsCount})
	}

	bar := newBar(fmt.Sprintf("Top %d hashtags for %s", len(rows), v.keyword), "Occurrences")
	bar.SetXAxis(tags).AddSeries("Hashtags count", counts,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorFavorites}))

	return v.render(storage.TableMostMentionedHashtags, bar)
}

// MostActiveUsers renders the author ranking
func (v *Visualizer) MostActiveUsers() error {
	var rows []transform.ActiveUser
	if err := v.store.LoadTable(storage.TableMostActiveUsers, &rows); err != nil {
		return err
	}
	rows = rows[:min(len(rows), topBars)]

	users := make([]string, 0, len(rows))
	counts := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.User)
		counts = append(counts, opts.BarData{Value: row.TweetsPublished})
	}

	bar := newBar(fmt.Sprintf("Top %d most active users for %s", len(rows), v.keyword), "Tweets published")
	bar.SetXAxis(users).AddSeries("Tweets published", counts,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorTweets}))

	return v.render(storage.TableMostActiveUsers, bar)
}

// MostRetweetedUsers renders the retweeted-user ranking
func (v *Visualizer) MostRetweetedUsers() error {
	var rows []transform.RetweetedUser
	if err := v.store.LoadTable(storage.TableMostRetweetedUsers, &rows); err != nil {
		return err
	}
	rows = rows[:min(len(rows), topBars)]

	users := make([]string, 0, len(rows))
	counts := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.User)
		counts = append(counts, opts.BarData{Value: row.CountRetweets})
	}

	bar := newBar(fmt.Sprintf("Top %d retweeted users for %s", len(rows), v.keyword), "Retweets")
	bar.SetXAxis(users).AddSeries("Retweets count", counts,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorRetweets}))

	return v.render(storage.TableMostRetweetedUsers, bar)
}

// UsersByFollowers renders the follower ranking
func (v *Visualizer) UsersByFollowers() error {
	var rows []transform.UserFollowers
	if err := v.store.LoadTable(storage.TableUsersByFollowers, &rows); err != nil {
		return err
	}
	rows = rows[:min(len(rows), topBars)]

	users := make([]string, 0, len(rows))
	counts := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.User)
		counts = append(counts, opts.BarData{Value: row.CountFollowers})
	}

	bar := newBar(fmt.Sprintf("Top %d users by followers for %s", len(rows), v.keyword), "Followers")
	bar.SetXAxis(users).AddSeries("Followers count", counts,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorFavorites}))

	return v.render(storage.TableUsersByFollowers, bar)
}

// CoHashtags renders the co-occurrence matrix as a heatmap
func (v *Visualizer) CoHashtags() error {
	m, err := v.store.LoadMatrix()
	if err != nil {
		return err
	}

	maxCell := 0
	data := make([]opts.HeatMapData, 0, len(m.Hashtags)*len(m.Hashtags))
	for i := range m.Hashtags {
		for j := range m.Hashtags {
			cell := m.Cells[i][j]
			if cell > maxCell {
				maxCell = cell
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, cell}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Co-occurrence of hashtags for %s", v.keyword),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: m.Hashtags}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: m.Hashtags}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCell),
		}),
	)
	hm.AddSeries("Co-occurrences", data)

	return v.render(storage.TableCoHashtagsMatrix, hm)
}

// RenderAll renders every chartable table that exists, skipping absent
// ones with a log line instead of failing the stage
func (v *Visualizer) RenderAll() error {
	renderers := []struct {
		name   string
		render func() error
	}{
		{storage.TableGroupedDate, v.GroupedDate},
		{storage.TableKeyTopics, v.KeyTopics},
		{storage.TableMostMentionedUsers, v.MostMentionedUsers},
		{storage.TableMostMentionedHashtags, v.MostMentionedHashtags},
		{storage.TableMostActiveUsers, v.MostActiveUsers},
		{storage.TableMostRetweetedUsers, v.MostRetweetedUsers},
		{storage.TableUsersByFollowers, v.UsersByFollowers},
		{storage.TableCoHashtagsMatrix, v.CoHashtags},
	}
	for _, r := range renderers {
		if err := r.render(); err != nil {
			if errors.IsEmptyInput(err) {
				v.log.Info().Str("table", r.name).Msg("Nothing to chart, skipping")
				continue
			}
			return err
		}
		v.log.Info().Str("table", r.name).Msg("Chart rendered")
	}
	return nil
}

func (v *Visualizer) render(table string, chart components.Charter) error {
	path := v.store.HTMLPath(table)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewPersistence("visualize", "cannot create chart directory", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.NewPersistence("visualize", "cannot create "+path, err)
	}
	defer f.Close()

	page := components.NewPage()
	page.AddCharts(chart)
	if err := page.Render(f); err != nil {
		return errors.NewPersistence("visualize", "cannot render "+path, err)
	}
	return nil
}

func newBar(title, yName string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	return bar
}
