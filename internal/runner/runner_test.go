package runner

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"jobsweep/internal/adapter"
	"jobsweep/internal/model"
	"jobsweep/internal/seen"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// newTestClient rewrites every request to hit the test server.
func newTestClient(srv *httptest.Server) *adapter.Client {
	return adapter.NewClient(&http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			req.URL.Scheme = "http"
			req.URL.Host = srv.Listener.Addr().String()
			return http.DefaultTransport.RoundTrip(req)
		}),
	}, "jobsweep-test/1.0")
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

const greenhouseFixture = `{
	"jobs": [
		{
			"id": 1,
			"title": "Platform Engineer",
			"location": {"name": "Remote"},
			"absolute_url": "https://boards.greenhouse.io/acme/jobs/1",
			"updated_at": "2026-02-13T10:00:00Z",
			"content": "<p>Keep the platform healthy.</p>"
		}
	]
}`

func greenhouseServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(greenhouseFixture))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunner_Run_TwoRunsSuppressSecond(t *testing.T) {
	srv := greenhouseServer(t)
	store := seen.NewFileStore(filepath.Join(t.TempDir(), "seen.csv"))

	companies := []model.CompanyInput{
		{Name: "Acme", Provider: "greenhouse", Slug: "acme"},
	}

	var buf bytes.Buffer
	r := New(DefaultRegistry(), newTestClient(srv), store, testLogger(&buf))

	fresh, err := r.Run(context.Background(), companies)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(fresh) != 1 {
		t.Fatalf("first run: expected 1 fresh posting, got %d", len(fresh))
	}
	if fresh[0].Source != "Greenhouse" {
		t.Errorf("unexpected source: %s", fresh[0].Source)
	}

	keys, err := store.Load()
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("expected 1 persisted key, got %d", len(keys))
	}

	fresh, err = r.Run(context.Background(), companies)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(fresh) != 0 {
		t.Fatalf("second run: expected 0 fresh postings, got %d", len(fresh))
	}
}

func TestRunner_Run_FetchFailureDoesNotAbortBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Fail one board, serve the other.
		if strings.Contains(r.URL.Path, "/boards/broken/") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(greenhouseFixture))
	}))
	defer srv.Close()

	companies := []model.CompanyInput{
		{Name: "Broken", Provider: "greenhouse", Slug: "broken"},
		{Name: "Acme", Provider: "greenhouse", Slug: "acme"},
	}

	var buf bytes.Buffer
	r := New(DefaultRegistry(), newTestClient(srv), seen.NewNopStore(), testLogger(&buf))

	fresh, err := r.Run(context.Background(), companies)
	if err != nil {
		t.Fatalf("run must complete despite one failure: %v", err)
	}
	if len(fresh) != 1 {
		t.Fatalf("expected the healthy company's posting, got %d", len(fresh))
	}

	logs := buf.String()
	if !strings.Contains(logs, "fetch failed") || !strings.Contains(logs, "broken") {
		t.Errorf("expected a warning naming the broken board, got:\n%s", logs)
	}
}

func TestRunner_Collect_SkipsUnresolvable(t *testing.T) {
	srv := greenhouseServer(t)

	companies := []model.CompanyInput{
		{Name: "Mystery"}, // no hint, no URL
		{Name: "NoSlug", Provider: "lever"},
		{Name: "Acme", Provider: "greenhouse", Slug: "acme"},
	}

	var buf bytes.Buffer
	r := New(DefaultRegistry(), newTestClient(srv), seen.NewNopStore(), testLogger(&buf))

	batch := r.Collect(context.Background(), companies)
	if len(batch) != 1 {
		t.Fatalf("expected only the resolvable company to contribute, got %d", len(batch))
	}

	logs := buf.String()
	if !strings.Contains(logs, "unknown provider") {
		t.Errorf("expected an informational skip for the unknown provider, got:\n%s", logs)
	}
	if !strings.Contains(logs, "no board slug") {
		t.Errorf("expected an informational skip for the missing slug, got:\n%s", logs)
	}
}

func TestRunner_Collect_AppliesPerCompanyKeywords(t *testing.T) {
	srv := greenhouseServer(t)

	var buf bytes.Buffer
	r := New(DefaultRegistry(), newTestClient(srv), seen.NewNopStore(), testLogger(&buf))

	matched := r.Collect(context.Background(), []model.CompanyInput{
		{Name: "Acme", Provider: "greenhouse", Slug: "acme", Keywords: "platform; sre"},
	})
	if len(matched) != 1 {
		t.Fatalf("expected keyword match, got %d postings", len(matched))
	}

	dropped := r.Collect(context.Background(), []model.CompanyInput{
		{Name: "Acme", Provider: "greenhouse", Slug: "acme", Keywords: "designer"},
	})
	if len(dropped) != 0 {
		t.Fatalf("expected keyword mismatch to drop everything, got %d", len(dropped))
	}
}

func TestRunner_Collect_ParallelPreservesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Board slug appears in the path: /v1/boards/<slug>/jobs.
		parts := strings.Split(r.URL.Path, "/")
		slug := parts[3]
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jobs": [{"id": 1, "title": "Engineer", "absolute_url": "https://x/` + slug + `"}]}`))
	}))
	defer srv.Close()

	companies := []model.CompanyInput{
		{Name: "One", Provider: "greenhouse", Slug: "one"},
		{Name: "Two", Provider: "greenhouse", Slug: "two"},
		{Name: "Three", Provider: "greenhouse", Slug: "three"},
	}

	var buf bytes.Buffer
	r := New(DefaultRegistry(), newTestClient(srv), seen.NewNopStore(), testLogger(&buf),
		WithConcurrency(3))

	batch := r.Collect(context.Background(), companies)
	if len(batch) != 3 {
		t.Fatalf("expected 3 postings, got %d", len(batch))
	}
	for i, want := range []string{"https://x/one", "https://x/two", "https://x/three"} {
		if batch[i].URL != want {
			t.Errorf("position %d: got %s, want %s", i, batch[i].URL, want)
		}
	}
}

func TestRunner_Run_DefaultKeywordsApplyWhenRowHasNone(t *testing.T) {
	srv := greenhouseServer(t)

	var buf bytes.Buffer
	r := New(DefaultRegistry(), newTestClient(srv), seen.NewNopStore(), testLogger(&buf),
		WithDefaultKeywords("designer"))

	batch := r.Collect(context.Background(), []model.CompanyInput{
		{Name: "Acme", Provider: "greenhouse", Slug: "acme"},
	})
	if len(batch) != 0 {
		t.Fatalf("expected default keywords to drop the posting, got %d", len(batch))
	}
}
