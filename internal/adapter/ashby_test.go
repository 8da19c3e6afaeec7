package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAshbyAdapter_Fetch_Success(t *testing.T) {
	payload := `{
		"data": {
			"jobBoard": {
				"teams": [
					{
						"name": "Engineering",
						"jobs": [
							{
								"title": "Staff Engineer",
								"locationSlug": "remote-us",
								"locationName": "Remote (US)",
								"applyUrl": "https://jobs.ashbyhq.com/acme/staff-engineer",
								"publishedAt": "2026-02-12T00:00:00Z"
							}
						]
					},
					{
						"name": "Design",
						"jobs": [
							{
								"title": "Product Designer",
								"locationSlug": "nyc",
								"applyUrl": "https://jobs.ashbyhq.com/acme/product-designer"
							}
						]
					}
				]
			}
		}
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var req ashbyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding graphql body: %v", err)
		}
		if req.OperationName != "JobBoardAllPositions" {
			t.Errorf("unexpected operation: %s", req.OperationName)
		}
		if req.Variables["organizationSlug"] != "acme" {
			t.Errorf("unexpected slug variable: %v", req.Variables["organizationSlug"])
		}
		jsonHandler(payload)(w, r)
	}))
	defer srv.Close()

	a := NewAshbyAdapter("acme", "Acme Corp", newTestClient(srv))

	postings, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(postings) != 2 {
		t.Fatalf("expected 2 postings flattened across teams, got %d", len(postings))
	}

	p := postings[0]
	if p.Source != "Ashby" {
		t.Errorf("expected source Ashby, got %s", p.Source)
	}
	// Human-readable location name wins over the slug.
	if p.Location != "Remote (US)" {
		t.Errorf("unexpected location: %s", p.Location)
	}
	if p.Snippet != "" {
		t.Errorf("ashby snippet must be empty, got %q", p.Snippet)
	}

	// No locationName falls back to the slug.
	if postings[1].Location != "nyc" {
		t.Errorf("expected locationSlug fallback, got %s", postings[1].Location)
	}
}

func TestAshbyAdapter_Fetch_NullJobBoard(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(`{"data": {"jobBoard": null}}`))
	defer srv.Close()

	a := NewAshbyAdapter("ghost-co", "Ghost Co", newTestClient(srv))

	postings, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("null job board must not be an error: %v", err)
	}
	if len(postings) != 0 {
		t.Fatalf("expected 0 postings, got %d", len(postings))
	}
}

func TestAshbyAdapter_Fetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := NewAshbyAdapter("down-co", "Down Co", newTestClient(srv))

	if _, err := a.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for HTTP 503, got nil")
	}
}
