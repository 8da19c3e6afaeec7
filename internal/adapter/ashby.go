package adapter

import (
	"context"
	"fmt"

	"jobsweep/internal/model"
)

const ashbyGraphQLURL = "https://jobs.ashbyhq.com/api/non-user-graphql"

// ashbyQuery is the fixed GraphQL query listing every team's jobs for an
// organization's public job board.
const ashbyQuery = `query JobBoardAllPositions($organizationSlug: String!) { jobBoard: jobBoardWithEmail(organizationSlug: $organizationSlug) { teams { name jobs { id title locationSlug locationName applyUrl publishedAt } } } }`

// ashbyRequest is the GraphQL POST body for the job board query.
type ashbyRequest struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Query         string         `json:"query"`
}

type ashbyJob struct {
	Title        string `json:"title"`
	LocationSlug string `json:"locationSlug"`
	LocationName string `json:"locationName"`
	ApplyURL     string `json:"applyUrl"`
	PublishedAt  string `json:"publishedAt"`
}

type ashbyTeam struct {
	Name string     `json:"name"`
	Jobs []ashbyJob `json:"jobs"`
}

type ashbyJobBoard struct {
	Teams []ashbyTeam `json:"teams"`
}

// ashbyResponse is the top-level GraphQL response. A missing or null
// jobBoard means the organization has no public board.
type ashbyResponse struct {
	Data struct {
		JobBoard *ashbyJobBoard `json:"jobBoard"`
	} `json:"data"`
}

// AshbyAdapter fetches postings from the Ashby public GraphQL endpoint.
type AshbyAdapter struct {
	slug        string
	companyName string
	client      *Client
}

// NewAshbyAdapter creates a new adapter for an Ashby organization.
func NewAshbyAdapter(slug string, companyName string, client *Client) *AshbyAdapter {
	return &AshbyAdapter{
		slug:        slug,
		companyName: companyName,
		client:      client,
	}
}

// Fetch retrieves every team's jobs from the organization's job board and
// flattens them into the common posting schema. The endpoint exposes no
// description text, so the snippet is always empty. A null job board yields
// an empty result.
func (a *AshbyAdapter) Fetch(ctx context.Context) ([]model.Posting, error) {
	body := ashbyRequest{
		OperationName: "JobBoardAllPositions",
		Variables:     map[string]any{"organizationSlug": a.slug},
		Query:         ashbyQuery,
	}

	var abResp ashbyResponse
	if err := a.client.PostJSON(ctx, ashbyGraphQLURL, body, &abResp); err != nil {
		return nil, fmt.Errorf("ashby fetch for %s: %w", a.slug, err)
	}

	if abResp.Data.JobBoard == nil {
		return nil, nil
	}

	var postings []model.Posting
	for _, team := range abResp.Data.JobBoard.Teams {
		for _, aj := range team.Jobs {
			location := aj.LocationName
			if location == "" {
				location = aj.LocationSlug
			}

			postings = append(postings, model.Posting{
				Company:  orSlug(a.companyName, a.slug),
				Title:    aj.Title,
				Location: location,
				URL:      aj.ApplyURL,
				Source:   "Ashby",
				PostedAt: aj.PublishedAt,
				Snippet:  "",
			})
		}
	}

	return postings, nil
}
