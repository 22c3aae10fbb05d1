package transform

import (
	"math"
	"sort"
	"strings"

	"dmoncada/tweetscope/internal/tweet"
	"dmoncada/tweetscope/pkg/errors"
)

// DefaultTopicCount is how many top-weighted terms the topic table keeps
const DefaultTopicCount = 40

// KeyTopic is one row of the topic-weight table
type KeyTopic struct {
	Topic            string  `csv:"topic"`
	Weight           float64 `csv:"weight"`
	WeightNormalized float64 `csv:"weight_normalized"`
}

// BuildKeyTopics ranks unigrams and bigrams of the cleaned text by mean
// tf-idf weight across the corpus. Weights follow the usual smoothed-idf
// convention (idf = ln((1+n)/(1+df)) + 1) with per-document L2
// normalization; the normalized score min-max scales the full ranking to
// 0-100 before keeping the top topN.
func BuildKeyTopics(records []tweet.Record, topN int) ([]KeyTopic, error) {
	if topN <= 0 {
		topN = DefaultTopicCount
	}

	docs := make([][]string, 0, len(records))
	for _, rec := range records {
		docs = append(docs, topicTerms(rec.TextClean))
	}

	// Document frequency over the term vocabulary
	df := make(map[string]int)
	for _, terms := range docs {
		inDoc := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			inDoc[term] = struct{}{}
		}
		for term := range inDoc {
			df[term]++
		}
	}
	if len(df) == 0 {
		return nil, errors.NewEmptyInput("transform", "no terms survive cleaning; nothing to weight")
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((1+n)/(1+float64(count))) + 1
	}

	// Mean of the L2-normalized per-document tf-idf vectors
	mean := make(map[string]float64, len(df))
	for _, terms := range docs {
		if len(terms) == 0 {
			continue
		}
		tf := make(map[string]float64, len(terms))
		for _, term := range terms {
			tf[term]++
		}
		var norm float64
		for term, count := range tf {
			w := count * idf[term]
			tf[term] = w
			norm += w * w
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}
		for term, w := range tf {
			mean[term] += w / norm / n
		}
	}

	rows := make([]KeyTopic, 0, len(mean))
	for term, weight := range mean {
		rows = append(rows, KeyTopic{Topic: term, Weight: weight})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Weight != rows[j].Weight {
			return rows[i].Weight > rows[j].Weight
		}
		return rows[i].Topic < rows[j].Topic
	})

	minW := rows[len(rows)-1].Weight
	maxW := rows[0].Weight
	for i := range rows {
		if maxW > minW {
			rows[i].WeightNormalized = (rows[i].Weight - minW) / (maxW - minW) * 100
		}
	}

	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows, nil
}

// topicTerms tokenizes one cleaned text into unigrams and bigrams,
// dropping stopwords and single-character tokens
func topicTerms(textClean string) []string {
	fields := strings.Fields(textClean)
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) < 2 || isLanguageStopword(w) {
			continue
		}
		words = append(words, w)
	}

	terms := make([]string, 0, len(words)*2)
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}
