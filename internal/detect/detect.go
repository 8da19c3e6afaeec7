// Package detect resolves which ATS provider serves a company's job board,
// and derives the board slug from a career page URL when none is configured.
// Everything here is pure string inspection; no network access.
package detect

import (
	"net/url"
	"strings"

	"jobsweep/internal/model"
)

// hostProviders maps career-page hostname substrings to providers.
var hostProviders = []struct {
	marker   string
	provider model.Provider
}{
	{"greenhouse.io", model.ProviderGreenhouse},
	{"lever.co", model.ProviderLever},
	{"workable.com", model.ProviderWorkable},
	{"ashbyhq.com", model.ProviderAshby},
	{"smartrecruiters.com", model.ProviderSmartRecruiters},
	{"myworkdayjobs.com", model.ProviderWorkday},
}

// Detect resolves the provider for a company row. An explicit provider hint
// matching one of the known tags always wins; otherwise the career URL's
// hostname is checked against the known provider domains. Returns
// ProviderUnknown when neither matches.
func Detect(hint, careerURL string) model.Provider {
	tag := strings.ToLower(strings.TrimSpace(hint))
	for _, p := range model.Providers {
		if tag == string(p) {
			return p
		}
	}

	u, err := url.Parse(careerURL)
	if err != nil {
		return model.ProviderUnknown
	}
	host := strings.ToLower(u.Host)
	for _, hp := range hostProviders {
		if strings.Contains(host, hp.marker) {
			return hp.provider
		}
	}

	return model.ProviderUnknown
}

// ResolveSlug derives the board slug from the career URL: the first
// non-empty path segment. Workday boards do not use a slug (the adapter
// derives tenant and site itself), so Workday always resolves to "".
func ResolveSlug(provider model.Provider, careerURL string) string {
	if provider == model.ProviderWorkday || provider == model.ProviderUnknown {
		return ""
	}

	u, err := url.Parse(careerURL)
	if err != nil {
		return ""
	}
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			return seg
		}
	}
	return ""
}
