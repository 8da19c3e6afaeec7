package adapter

import (
	"context"
	"fmt"
	"net/url"

	"jobsweep/internal/model"
)

const greenhouseBaseURL = "https://boards-api.greenhouse.io/v1/boards"

// greenhouseJob represents a single job in the Greenhouse API response.
type greenhouseJob struct {
	Title       string             `json:"title"`
	Location    greenhouseLocation `json:"location"`
	AbsoluteURL string             `json:"absolute_url"`
	UpdatedAt   string             `json:"updated_at"`
	Content     string             `json:"content"`
}

type greenhouseLocation struct {
	Name string `json:"name"`
}

// greenhouseResponse is the top-level Greenhouse jobs API response.
type greenhouseResponse struct {
	Jobs []greenhouseJob `json:"jobs"`
}

// GreenhouseAdapter fetches postings from the Greenhouse public boards API.
type GreenhouseAdapter struct {
	slug        string
	companyName string
	client      *Client
}

// NewGreenhouseAdapter creates a new adapter for a Greenhouse board.
func NewGreenhouseAdapter(slug string, companyName string, client *Client) *GreenhouseAdapter {
	return &GreenhouseAdapter{
		slug:        slug,
		companyName: companyName,
		client:      client,
	}
}

// Fetch retrieves all jobs from the Greenhouse board and normalizes them
// into the common posting schema.
func (a *GreenhouseAdapter) Fetch(ctx context.Context) ([]model.Posting, error) {
	endpoint := fmt.Sprintf("%s/%s/jobs", greenhouseBaseURL, a.slug)

	var ghResp greenhouseResponse
	if err := a.client.GetJSON(ctx, endpoint, url.Values{"content": {"true"}}, &ghResp); err != nil {
		return nil, fmt.Errorf("greenhouse fetch for %s: %w", a.slug, err)
	}

	postings := make([]model.Posting, 0, len(ghResp.Jobs))
	for _, gj := range ghResp.Jobs {
		postings = append(postings, model.Posting{
			Company:  orSlug(a.companyName, a.slug),
			Title:    gj.Title,
			Location: gj.Location.Name,
			URL:      gj.AbsoluteURL,
			Source:   "Greenhouse",
			PostedAt: gj.UpdatedAt,
			Snippet:  snippet(gj.Content),
		})
	}

	return postings, nil
}
