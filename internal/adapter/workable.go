package adapter

import (
	"context"
	"fmt"
	"net/url"

	"jobsweep/internal/model"
)

const workableBaseURL = "https://apply.workable.com/api/v3/accounts"

// workableJob represents a single job in the Workable API response.
type workableJob struct {
	Title          string           `json:"title"`
	Shortcode      string           `json:"shortcode"`
	Location       workableLocation `json:"location"`
	URL            string           `json:"url"`
	ApplicationURL string           `json:"application_url"`
	PublishedOn    string           `json:"published_on"`
	UpdatedAt      string           `json:"updated_at"`
}

type workableLocation struct {
	City string `json:"city"`
}

// workableResponse is the top-level Workable accounts API response.
type workableResponse struct {
	Results []workableJob `json:"results"`
}

// WorkableAdapter fetches postings from the Workable public job board API.
type WorkableAdapter struct {
	slug        string
	companyName string
	client      *Client
}

// NewWorkableAdapter creates a new adapter for a Workable account.
func NewWorkableAdapter(slug string, companyName string, client *Client) *WorkableAdapter {
	return &WorkableAdapter{
		slug:        slug,
		companyName: companyName,
		client:      client,
	}
}

// Fetch retrieves all active jobs from the Workable account and normalizes
// them into the common posting schema. The apply link prefers the dedicated
// application URL; the posted date prefers published_on over updated_at.
func (a *WorkableAdapter) Fetch(ctx context.Context) ([]model.Posting, error) {
	endpoint := fmt.Sprintf("%s/%s/jobs", workableBaseURL, a.slug)

	var wkResp workableResponse
	if err := a.client.GetJSON(ctx, endpoint, url.Values{"active": {"true"}}, &wkResp); err != nil {
		return nil, fmt.Errorf("workable fetch for %s: %w", a.slug, err)
	}

	postings := make([]model.Posting, 0, len(wkResp.Results))
	for _, wj := range wkResp.Results {
		link := wj.ApplicationURL
		if link == "" {
			link = wj.URL
		}

		postedAt := wj.PublishedOn
		if postedAt == "" {
			postedAt = wj.UpdatedAt
		}

		postings = append(postings, model.Posting{
			Company:  orSlug(a.companyName, a.slug),
			Title:    wj.Title,
			Location: wj.Location.City,
			URL:      link,
			Source:   "Workable",
			PostedAt: postedAt,
			Snippet:  snippet(wj.Shortcode),
		})
	}

	return postings, nil
}
