package adapter

import (
	"context"
	"fmt"
	"net/url"

	"jobsweep/internal/model"
)

const smartRecruitersBaseURL = "https://api.smartrecruiters.com/v1/companies"

// smartRecruitersPosting represents a single posting in the SmartRecruiters
// API response.
type smartRecruitersPosting struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Location     smartRecruitersLocation `json:"location"`
	Ref          smartRecruitersRef      `json:"ref"`
	ApplyURL     string                  `json:"applyUrl"`
	PostingURL   string                  `json:"postingUrl"`
	ReleasedDate string                  `json:"releasedDate"`
	CreatedOn    string                  `json:"createdOn"`
	JobAd        smartRecruitersJobAd    `json:"jobAd"`
}

type smartRecruitersLocation struct {
	City string `json:"city"`
}

type smartRecruitersRef struct {
	JobAdURL string `json:"jobAdUrl"`
}

type smartRecruitersJobAd struct {
	Sections smartRecruitersSections `json:"sections"`
}

type smartRecruitersSections struct {
	CompanyDescription string `json:"companyDescription"`
}

// smartRecruitersResponse is the top-level postings API response.
type smartRecruitersResponse struct {
	Content []smartRecruitersPosting `json:"content"`
}

// SmartRecruitersAdapter fetches postings from the SmartRecruiters public
// postings API.
type SmartRecruitersAdapter struct {
	slug        string
	companyName string
	client      *Client
}

// NewSmartRecruitersAdapter creates a new adapter for a SmartRecruiters company.
func NewSmartRecruitersAdapter(slug string, companyName string, client *Client) *SmartRecruitersAdapter {
	return &SmartRecruitersAdapter{
		slug:        slug,
		companyName: companyName,
		client:      client,
	}
}

// Fetch retrieves up to 100 postings for the company and normalizes them
// into the common posting schema. The posting link falls back through the
// ad URL, applyUrl, and postingUrl, and is synthesized from the posting ID
// when none of those are present.
func (a *SmartRecruitersAdapter) Fetch(ctx context.Context) ([]model.Posting, error) {
	endpoint := fmt.Sprintf("%s/%s/postings", smartRecruitersBaseURL, a.slug)

	var srResp smartRecruitersResponse
	if err := a.client.GetJSON(ctx, endpoint, url.Values{"limit": {"100"}}, &srResp); err != nil {
		return nil, fmt.Errorf("smartrecruiters fetch for %s: %w", a.slug, err)
	}

	postings := make([]model.Posting, 0, len(srResp.Content))
	for _, sp := range srResp.Content {
		link := sp.Ref.JobAdURL
		if link == "" {
			link = sp.ApplyURL
		}
		if link == "" {
			link = sp.PostingURL
		}
		if link == "" && sp.ID != "" {
			link = fmt.Sprintf("https://jobs.smartrecruiters.com/%s/%s", a.slug, sp.ID)
		}

		postedAt := sp.ReleasedDate
		if postedAt == "" {
			postedAt = sp.CreatedOn
		}

		postings = append(postings, model.Posting{
			Company:  orSlug(a.companyName, a.slug),
			Title:    sp.Name,
			Location: sp.Location.City,
			URL:      link,
			Source:   "SmartRecruiters",
			PostedAt: postedAt,
			Snippet:  snippet(sp.JobAd.Sections.CompanyDescription),
		})
	}

	return postings, nil
}
