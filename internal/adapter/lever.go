package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"jobsweep/internal/model"
)

const leverBaseURL = "https://api.lever.co/v0/postings"

// leverCategories represents the categories object in a Lever posting.
type leverCategories struct {
	Team     string `json:"team"`
	Location string `json:"location"`
}

// leverJob represents a single posting in the Lever API response.
type leverJob struct {
	Text             string          `json:"text"`
	State            string          `json:"state"`
	DescriptionPlain string          `json:"descriptionPlain"`
	Categories       leverCategories `json:"categories"`
	CreatedAt        int64           `json:"createdAt"`
	HostedURL        string          `json:"hostedUrl"`
}

// LeverAdapter fetches postings from the Lever public postings API.
type LeverAdapter struct {
	slug        string
	companyName string
	client      *Client
}

// NewLeverAdapter creates a new adapter for a Lever board.
func NewLeverAdapter(slug string, companyName string, client *Client) *LeverAdapter {
	return &LeverAdapter{
		slug:        slug,
		companyName: companyName,
		client:      client,
	}
}

// Fetch retrieves all published postings from the Lever board and normalizes
// them into the common posting schema. Postings whose state is anything other
// than "published" are skipped; a missing state counts as published.
func (a *LeverAdapter) Fetch(ctx context.Context) ([]model.Posting, error) {
	endpoint := fmt.Sprintf("%s/%s", leverBaseURL, a.slug)

	var leverJobs []leverJob
	if err := a.client.GetJSON(ctx, endpoint, url.Values{"mode": {"json"}}, &leverJobs); err != nil {
		return nil, fmt.Errorf("lever fetch for %s: %w", a.slug, err)
	}

	postings := make([]model.Posting, 0, len(leverJobs))
	for _, lj := range leverJobs {
		state := lj.State
		if state == "" {
			state = "published"
		}
		if strings.ToLower(state) != "published" {
			continue
		}

		location := lj.Categories.Location
		if location == "" {
			location = lj.Categories.Team
		}

		// createdAt is a Unix-millisecond epoch.
		var postedAt string
		if lj.CreatedAt > 0 {
			postedAt = time.UnixMilli(lj.CreatedAt).UTC().Format(time.RFC3339)
		}

		postings = append(postings, model.Posting{
			Company:  orSlug(a.companyName, a.slug),
			Title:    lj.Text,
			Location: location,
			URL:      lj.HostedURL,
			Source:   "Lever",
			PostedAt: postedAt,
			Snippet:  snippet(lj.DescriptionPlain),
		})
	}

	return postings, nil
}
