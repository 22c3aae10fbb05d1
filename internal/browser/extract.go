package browser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"dmoncada/tweetscope/helpers"
	"dmoncada/tweetscope/pkg/errors"
)

// ExtractStatusIDs parses rendered HTML and returns the post identifiers
// of every anchor whose href points at a status URL. Order follows
// document order; duplicates are kept (the collector dedupes).
func ExtractStatusIDs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.NewParsing("browser", "cannot parse rendered html", err)
	}

	var ids []string
	doc.Find(`a[href*="/status/"]`).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		if id := ParseStatusID(href); id != "" {
			ids = append(ids, id)
		}
	})
	return ids, nil
}

// ParseStatusID extracts the identifier from a status URL. The URL's shape
// is .../{username}/status/{id}; anything after a further slash (photos,
// analytics) or a query string is stripped.
func ParseStatusID(href string) string {
	idx := strings.LastIndex(href, "status/")
	if idx == -1 {
		return ""
	}
	tail := href[idx+len("status/"):]
	id, err := helpers.GetSplitPart(tail, "/", 0)
	if err != nil {
		return ""
	}
	if q := strings.IndexByte(id, '?'); q != -1 {
		id = id[:q]
	}
	return id
}
