package model

import "context"

// Provider identifies one of the supported ATS platforms.
type Provider string

const (
	ProviderGreenhouse      Provider = "greenhouse"
	ProviderLever           Provider = "lever"
	ProviderWorkable        Provider = "workable"
	ProviderSmartRecruiters Provider = "smartrecruiters"
	ProviderAshby           Provider = "ashby"
	ProviderWorkday         Provider = "workday"
	ProviderUnknown         Provider = ""
)

// Providers lists every supported provider tag.
var Providers = []Provider{
	ProviderGreenhouse,
	ProviderLever,
	ProviderWorkable,
	ProviderSmartRecruiters,
	ProviderAshby,
	ProviderWorkday,
}

// CompanyInput is one row of run configuration: a target company board.
// All fields except Name are optional and blank-tolerant.
type CompanyInput struct {
	Name      string // display label
	Provider  string // lower-cased provider tag, or empty
	Slug      string // provider-specific board identifier, or empty
	CareerURL string // public career page, used for detection and slug derivation
	Keywords  string // semicolon-delimited keyword list, or empty
}

// Posting is the normalized representation of a job posting from any ATS.
type Posting struct {
	Company  string // display name, falls back to slug/tenant when blank
	Title    string
	Location string // best-effort single label; some providers expose only a team or city
	URL      string // canonical apply/view link; input to the dedup fingerprint
	Source   string // literal provider label, e.g. "Greenhouse"
	PostedAt string // ISO-8601 when derivable, else provider-native, else empty
	Snippet  string // markup-stripped description, at most 280 characters
}

// PostingFetcher fetches postings from one company's board on one provider.
type PostingFetcher interface {
	Fetch(ctx context.Context) ([]Posting, error)
}

// SeenStore tracks which posting fingerprints have been seen across runs.
// The persisted set only grows; there is no expiry.
type SeenStore interface {
	Load() (map[string]struct{}, error)
	Append(keys []string) error
	Close() error
}

// Writer receives the fresh postings of a run.
type Writer interface {
	Write(postings []Posting) error
}
