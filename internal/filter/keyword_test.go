package filter

import (
	"testing"

	"jobsweep/internal/model"
)

func TestKeywordFilter_Match(t *testing.T) {
	posting := model.Posting{
		Title:    "Senior Engineer",
		Location: "Remote",
		Snippet:  "Build data pipelines in Go.",
	}

	tests := []struct {
		name     string
		keywords string
		want     bool
	}{
		{name: "matches one of several keywords", keywords: "remote; engineer", want: true},
		{name: "no keyword matches", keywords: "design", want: false},
		{name: "empty keyword string passes everything", keywords: "", want: true},
		{name: "only separators passes everything", keywords: " ; ; ", want: true},
		{name: "match is case-insensitive", keywords: "ENGINEER", want: true},
		{name: "matches against snippet", keywords: "pipelines", want: true},
		{name: "matches against location", keywords: "remote", want: true},
		{name: "substring match, not whole word", keywords: "engi", want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.keywords).Match(posting)
			if got != tc.want {
				t.Errorf("Parse(%q).Match = %v, want %v", tc.keywords, got, tc.want)
			}
		})
	}
}

func TestKeywordFilter_Apply_PreservesOrder(t *testing.T) {
	postings := []model.Posting{
		{Title: "Backend Engineer"},
		{Title: "Product Designer"},
		{Title: "Frontend Engineer"},
	}

	got := Parse("engineer").Apply(postings)
	if len(got) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(got))
	}
	if got[0].Title != "Backend Engineer" || got[1].Title != "Frontend Engineer" {
		t.Errorf("order not preserved: %v", got)
	}
}

func TestKeywordFilter_Apply_EmptyFilterReturnsInput(t *testing.T) {
	postings := []model.Posting{{Title: "A"}, {Title: "B"}}
	got := Parse("").Apply(postings)
	if len(got) != 2 {
		t.Fatalf("expected input unchanged, got %d postings", len(got))
	}
}
