package search

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"vaadocs/internal/docs"
)

// titleBoost multiplies the score contribution of terms appearing in a
// page title.
const titleBoost = 3.0

// Whole-query title bonuses. An exact title match outranks a title
// prefix, which outranks a title substring, which outranks body-only
// hits regardless of term frequencies.
const (
	exactTitleBonus     = 100.0
	prefixTitleBonus    = 50.0
	substringTitleBonus = 25.0
)

// snippetRadius is how many characters of context surround the first
// matched term in a snippet.
const snippetRadius = 120

// Match is one search hit.
type Match struct {
	Page    *docs.Page
	Score   float64
	Snippet string
}

// Index is an inverted index over a set of pages. Build once, query many
// times; the index is immutable after construction.
type Index struct {
	pages []*docs.Page

	// postings maps a term to the documents containing it, with per-field
	// term frequencies.
	postings map[string][]posting

	// docLengths holds the body token count per document for length
	// normalization.
	docLengths []int
	avgLength  float64
}

type posting struct {
	doc       int
	bodyFreq  int
	titleFreq int
}

// NewIndex builds an index over pages. Page order is preserved for
// deterministic tie-breaking.
func NewIndex(pages []*docs.Page) *Index {
	// Sort by ID up front so identical scores always order the same way.
	sorted := make([]*docs.Page, len(pages))
	copy(sorted, pages)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	idx := &Index{
		pages:      sorted,
		postings:   make(map[string][]posting),
		docLengths: make([]int, len(sorted)),
	}

	var totalLength int
	for docID, page := range sorted {
		bodyCounts := termCounts(page.Body)
		titleCounts := termCounts(page.Title + " " + page.Component)

		var length int
		for _, freq := range bodyCounts {
			length += freq
		}
		idx.docLengths[docID] = length
		totalLength += length

		merged := make(map[string]posting)
		for term, freq := range bodyCounts {
			merged[term] = posting{doc: docID, bodyFreq: freq}
		}
		for term, freq := range titleCounts {
			p := merged[term]
			p.doc = docID
			p.titleFreq = freq
			merged[term] = p
		}

		terms := make([]string, 0, len(merged))
		for term := range merged {
			terms = append(terms, term)
		}
		sort.Strings(terms)
		for _, term := range terms {
			idx.postings[term] = append(idx.postings[term], merged[term])
		}
	}

	if len(sorted) > 0 {
		idx.avgLength = float64(totalLength) / float64(len(sorted))
	}

	return idx
}

// Len returns the number of indexed pages.
func (idx *Index) Len() int {
	return len(idx.pages)
}

// Search runs a query and returns up to maxResults matches, ordered by
// score descending, page ID ascending on ties. An empty or stopword-only
// query returns no matches and no error.
func (idx *Index) Search(query string, maxResults int) []Match {
	terms := tokenize(query)
	if len(terms) == 0 || len(idx.pages) == 0 {
		return nil
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	scores := make(map[int]float64)
	for _, term := range terms {
		postings, ok := idx.postings[term]
		if !ok {
			continue
		}

		idf := math.Log(1 + float64(len(idx.pages))/float64(len(postings)))
		for _, p := range postings {
			norm := 1.0
			if idx.avgLength > 0 && idx.docLengths[p.doc] > 0 {
				norm = math.Sqrt(float64(idx.docLengths[p.doc]) / idx.avgLength)
			}

			tf := float64(p.bodyFreq)/norm + titleBoost*float64(p.titleFreq)
			scores[p.doc] += tf * idf
		}
	}

	queryNorm := strings.ToLower(strings.TrimSpace(query))

	matches := make([]Match, 0, len(scores))
	for doc, score := range scores {
		page := idx.pages[doc]
		matches = append(matches, Match{
			Page:    page,
			Score:   score + titleTierBonus(page.Title, queryNorm),
			Snippet: makeSnippet(page.Body, terms),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Page.ID < matches[j].Page.ID
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// titleTierBonus ranks whole-query title hits above term-level scoring.
func titleTierBonus(title, queryNorm string) float64 {
	if queryNorm == "" {
		return 0
	}

	titleNorm := strings.ToLower(strings.TrimSpace(title))
	switch {
	case titleNorm == queryNorm:
		return exactTitleBonus
	case strings.HasPrefix(titleNorm, queryNorm):
		return prefixTitleBonus
	case strings.Contains(titleNorm, queryNorm):
		return substringTitleBonus
	}
	return 0
}

// makeSnippet extracts a short context window around the first query term
// found in the body. Falls back to the start of the body.
func makeSnippet(body string, terms []string) string {
	lower := strings.ToLower(body)

	pos := -1
	for _, term := range terms {
		if idx := strings.Index(lower, term); idx != -1 && (pos == -1 || idx < pos) {
			pos = idx
		}
	}

	start := 0
	if pos > snippetRadius {
		start = pos - snippetRadius
	}
	end := len(body)
	if pos != -1 && pos+snippetRadius < end {
		end = pos + snippetRadius
	} else if pos == -1 && 2*snippetRadius < end {
		end = 2 * snippetRadius
	}

	// Snap the window to rune boundaries so the slice never splits a
	// multi-byte character.
	for start > 0 && !utf8.RuneStart(body[start]) {
		start--
	}
	for end < len(body) && !utf8.RuneStart(body[end]) {
		end++
	}

	snippet := strings.TrimSpace(body[start:end])
	snippet = strings.Join(strings.Fields(snippet), " ")

	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(body) {
		snippet = snippet + "..."
	}
	return snippet
}
