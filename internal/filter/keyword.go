package filter

import (
	"strings"

	"jobsweep/internal/model"
)

// KeywordFilter retains postings whose title, snippet, or location contains
// at least one keyword (case-insensitive substring). An empty keyword list
// passes everything through.
type KeywordFilter struct {
	keywords []string
}

// Parse builds a filter from a semicolon-delimited keyword string. Tokens
// are trimmed and lower-cased; empty tokens are discarded.
func Parse(keywordString string) *KeywordFilter {
	var keywords []string
	for _, tok := range strings.Split(keywordString, ";") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			keywords = append(keywords, tok)
		}
	}
	return &KeywordFilter{keywords: keywords}
}

// Match returns true if any keyword is a substring of the posting's
// space-joined title, snippet, and location. True for an empty filter.
func (f *KeywordFilter) Match(p model.Posting) bool {
	if len(f.keywords) == 0 {
		return true
	}
	haystack := strings.ToLower(p.Title + " " + p.Snippet + " " + p.Location)
	for _, kw := range f.keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// Apply returns the order-preserved subset of postings that Match.
// The input slice is returned unchanged when the filter is empty.
func (f *KeywordFilter) Apply(postings []model.Posting) []model.Posting {
	if len(f.keywords) == 0 {
		return postings
	}
	var out []model.Posting
	for _, p := range postings {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
