// Package runner drives one aggregation run: provider detection, adapter
// fetch, keyword filtering, and the batch-level dedup pass.
package runner

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"jobsweep/internal/adapter"
	"jobsweep/internal/detect"
	"jobsweep/internal/filter"
	"jobsweep/internal/model"
	"jobsweep/internal/seen"
)

// Factory builds the adapter for one company row. The slug argument is the
// resolved board identifier (explicit or derived from the career URL).
type Factory func(ci model.CompanyInput, slug string, client *adapter.Client) model.PostingFetcher

// Registry maps each provider to its adapter factory. Adding a provider
// means adding an entry here; the runner itself never changes.
type Registry map[model.Provider]Factory

// DefaultRegistry wires the six supported providers.
func DefaultRegistry() Registry {
	return Registry{
		model.ProviderGreenhouse: func(ci model.CompanyInput, slug string, c *adapter.Client) model.PostingFetcher {
			return adapter.NewGreenhouseAdapter(slug, ci.Name, c)
		},
		model.ProviderLever: func(ci model.CompanyInput, slug string, c *adapter.Client) model.PostingFetcher {
			return adapter.NewLeverAdapter(slug, ci.Name, c)
		},
		model.ProviderWorkable: func(ci model.CompanyInput, slug string, c *adapter.Client) model.PostingFetcher {
			return adapter.NewWorkableAdapter(slug, ci.Name, c)
		},
		model.ProviderSmartRecruiters: func(ci model.CompanyInput, slug string, c *adapter.Client) model.PostingFetcher {
			return adapter.NewSmartRecruitersAdapter(slug, ci.Name, c)
		},
		model.ProviderAshby: func(ci model.CompanyInput, slug string, c *adapter.Client) model.PostingFetcher {
			return adapter.NewAshbyAdapter(slug, ci.Name, c)
		},
		model.ProviderWorkday: func(ci model.CompanyInput, slug string, c *adapter.Client) model.PostingFetcher {
			return adapter.NewWorkdayAdapter(ci.CareerURL, ci.Name, c)
		},
	}
}

// Runner owns the pipeline over a sequence of company rows.
type Runner struct {
	registry    Registry
	client      *adapter.Client
	store       model.SeenStore
	logger      *slog.Logger
	concurrency int
	keywords    string // default keyword string for rows without one
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency sets how many companies are fetched in parallel.
// Values below 2 keep the sequential baseline.
func WithConcurrency(n int) Option {
	return func(r *Runner) { r.concurrency = n }
}

// WithDefaultKeywords sets a keyword string applied to company rows that
// have none of their own.
func WithDefaultKeywords(kw string) Option {
	return func(r *Runner) { r.keywords = kw }
}

// New creates a runner wired with its collaborators.
func New(registry Registry, client *adapter.Client, store model.SeenStore, logger *slog.Logger, opts ...Option) *Runner {
	r := &Runner{
		registry:    registry,
		client:      client,
		store:       store,
		logger:      logger,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one aggregation run: collect postings for every company,
// then partition the full batch against the seen store and persist the
// fresh fingerprints. The fresh postings are returned in collection order.
//
// Dedup runs exactly once over the complete batch, never per company.
// Two companies producing the same URL within one run therefore both
// survive unless that URL was persisted by an earlier run.
func (r *Runner) Run(ctx context.Context, companies []model.CompanyInput) ([]model.Posting, error) {
	batch := r.Collect(ctx, companies)

	seenKeys, err := r.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading seen store: %w", err)
	}

	fresh, newKeys := seen.Partition(batch, seenKeys)

	if err := r.store.Append(newKeys); err != nil {
		return nil, fmt.Errorf("persisting seen keys: %w", err)
	}

	r.logger.Info("run complete",
		"companies", len(companies),
		"collected", len(batch),
		"fresh", len(fresh),
		"suppressed", len(batch)-len(fresh),
	)

	return fresh, nil
}

// Collect fetches and filters postings for every company. Failures never
// abort the batch: a company that cannot be resolved or fetched contributes
// an empty slice. Output order follows input order even when companies are
// fetched in parallel.
func (r *Runner) Collect(ctx context.Context, companies []model.CompanyInput) []model.Posting {
	results := make([][]model.Posting, len(companies))

	if r.concurrency > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.concurrency)
		for i, ci := range companies {
			g.Go(func() error {
				results[i] = r.collectOne(gctx, ci)
				return nil
			})
		}
		_ = g.Wait() // goroutines never return errors; failures are logged per company
	} else {
		for i, ci := range companies {
			results[i] = r.collectOne(ctx, ci)
		}
	}

	var batch []model.Posting
	for _, postings := range results {
		batch = append(batch, postings...)
	}
	return batch
}

// collectOne runs detection, slug resolution, fetch, and keyword filtering
// for a single company.
func (r *Runner) collectOne(ctx context.Context, ci model.CompanyInput) []model.Posting {
	provider := detect.Detect(ci.Provider, ci.CareerURL)
	if provider == model.ProviderUnknown {
		r.logger.Info("unknown provider, skipping",
			"company", ci.Name, "career_url", ci.CareerURL)
		return nil
	}

	slug := ci.Slug
	if slug == "" {
		slug = detect.ResolveSlug(provider, ci.CareerURL)
	}
	if slug == "" && provider != model.ProviderWorkday {
		r.logger.Info("no board slug, skipping",
			"company", ci.Name, "provider", provider)
		return nil
	}

	factory, ok := r.registry[provider]
	if !ok {
		r.logger.Info("no adapter registered, skipping",
			"company", ci.Name, "provider", provider)
		return nil
	}

	postings, err := factory(ci, slug, r.client).Fetch(ctx)
	if err != nil {
		r.logger.Warn("fetch failed",
			"company", ci.Name, "provider", provider, "slug", slug, "error", err)
		return nil
	}

	keywords := ci.Keywords
	if keywords == "" {
		keywords = r.keywords
	}
	matched := filter.Parse(keywords).Apply(postings)

	r.logger.Debug("collected company",
		"company", ci.Name,
		"provider", provider,
		"fetched", len(postings),
		"matched", len(matched),
	)

	return matched
}
