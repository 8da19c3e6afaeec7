package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"jobsweep/internal/model"
)

const workdayDomainMarker = ".myworkdayjobs.com"

// workdayRequest is the POST body for the Workday cxs jobs endpoint.
type workdayRequest struct {
	AppliedFacets map[string]any `json:"appliedFacets"`
	Limit         int            `json:"limit"`
	Offset        int            `json:"offset"`
	SearchText    string         `json:"searchText"`
}

type workdayPosting struct {
	Title            string   `json:"title"`
	ExternalPath     string   `json:"externalPath"`
	Locations        []string `json:"locations"`
	PostedOn         string   `json:"postedOn"`
	StartDate        string   `json:"startDate"`
	ShortDescription string   `json:"shortDescription"`
}

// workdayResponse is the top-level Workday cxs jobs response.
type workdayResponse struct {
	JobPostings []workdayPosting `json:"jobPostings"`
}

// WorkdayAdapter fetches postings from a Workday career site. Unlike the
// other adapters it has no separate board slug: the tenant and career-site
// segment are derived from the career page URL itself.
type WorkdayAdapter struct {
	careerURL   string
	companyName string
	client      *Client
}

// NewWorkdayAdapter creates a new adapter for a Workday career site URL of
// the usual https://<tenant>.myworkdayjobs.com/<site>/... shape.
func NewWorkdayAdapter(careerURL string, companyName string, client *Client) *WorkdayAdapter {
	return &WorkdayAdapter{
		careerURL:   careerURL,
		companyName: companyName,
		client:      client,
	}
}

// Fetch derives the cxs jobs endpoint from the career URL and retrieves up
// to 50 postings. A URL that is not a recognizable Workday career site
// yields an empty result without any request being made.
func (a *WorkdayAdapter) Fetch(ctx context.Context) ([]model.Posting, error) {
	u, err := url.Parse(a.careerURL)
	if err != nil {
		return nil, fmt.Errorf("workday fetch for %s: %w", a.careerURL, err)
	}

	host := u.Host
	if !strings.Contains(host, workdayDomainMarker) {
		return nil, nil
	}

	var site string
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			site = seg
			break
		}
	}
	if site == "" {
		return nil, nil
	}

	tenant := strings.SplitN(host, ".", 2)[0]
	endpoint := fmt.Sprintf("https://%s/wday/cxs/%s/%s/jobs", host, tenant, site)

	body := workdayRequest{
		AppliedFacets: map[string]any{},
		Limit:         50,
		Offset:        0,
		SearchText:    "",
	}

	var wdResp workdayResponse
	if err := a.client.PostJSON(ctx, endpoint, body, &wdResp); err != nil {
		return nil, fmt.Errorf("workday fetch for %s: %w", tenant, err)
	}

	postings := make([]model.Posting, 0, len(wdResp.JobPostings))
	for _, wp := range wdResp.JobPostings {
		var location string
		if len(wp.Locations) > 0 {
			location = wp.Locations[0]
		}

		postedAt := wp.PostedOn
		if postedAt == "" {
			postedAt = wp.StartDate
		}

		postings = append(postings, model.Posting{
			Company:  orSlug(a.companyName, tenant),
			Title:    wp.Title,
			Location: location,
			URL:      fmt.Sprintf("https://%s%s", host, wp.ExternalPath),
			Source:   "Workday",
			PostedAt: postedAt,
			Snippet:  snippet(wp.ShortDescription),
		})
	}

	return postings, nil
}
