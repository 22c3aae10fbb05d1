package transform

import (
	"strings"

	"github.com/gosimple/unidecode"

	"dmoncada/tweetscope/helpers"
)

// punctuation is the set of characters mapped to spaces before
// tokenization. # and @ are excluded: mention and hashtag tokens are
// tracked in their own fields and already dropped whole.
const punctuation = "!\"$%&'()*+,-./:;<=>?[\\]^_`{|}~¿¡"

// CleanText reduces a post body to its meaningful lowercase tokens.
// Mention and hashtag tokens are dropped first, punctuation becomes
// spaces, every token is transliterated to ASCII, and stopwords,
// single letters, URL boilerplate, and digit-bearing tokens are removed.
// Deterministic: same input always yields the same output.
func CleanText(original string) string {
	var kept []string
	for _, word := range strings.Fields(original) {
		if strings.HasPrefix(word, "@") || strings.HasPrefix(word, "#") {
			continue
		}
		kept = append(kept, word)
	}

	text := strings.ToLower(strings.Join(kept, " "))
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, text)

	var tokens []string
	for _, token := range strings.Fields(text) {
		token = unidecode.Unidecode(token)
		if token == "" || isStopword(token) {
			continue
		}
		if helpers.HasDigit(token) {
			continue
		}
		tokens = append(tokens, token)
	}

	return strings.Join(tokens, " ")
}
