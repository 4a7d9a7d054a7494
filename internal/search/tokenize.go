// Package search implements full-text search over documentation pages
// using an inverted index with TF-IDF scoring. Title matches rank above
// body matches, and result ordering is deterministic.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopwords are dropped during tokenization. The list is small on
// purpose; documentation queries are short and most words carry signal.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "how": {}, "in": {},
	"is": {}, "it": {}, "of": {}, "on": {}, "or": {}, "that": {},
	"the": {}, "this": {}, "to": {}, "with": {}, "you": {},
}

// tokenize splits text into lowercase terms. Single characters and
// stopwords are dropped.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		term := current.String()
		current.Reset()
		if utf8.RuneCountInString(term) < 2 {
			return
		}
		if _, stop := stopwords[term]; stop {
			return
		}
		tokens = append(tokens, term)
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current.WriteRune(unicode.ToLower(r))
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// termCounts returns the term frequency map of text.
func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, term := range tokenize(text) {
		counts[term]++
	}
	return counts
}
