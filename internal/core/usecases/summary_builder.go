// internal/core/usecases/summary_builder.go
package usecases

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"time"

	"urlsummary/internal/core/domain"
	"urlsummary/internal/platform/errors"
	"urlsummary/internal/platform/logx"
)

// Options configures a summary build.
type Options struct {
	// TopItems is the number of ranked facets kept in the result.
	TopItems int

	// TopURLs is the sample size per kept facet.
	TopURLs int

	// RandomizeSample draws samples with a fixed-seed generator instead of
	// taking the first members in encounter order.
	RandomizeSample bool

	// OnParseError selects what happens with URLs that cannot be split.
	OnParseError domain.ErrorPolicy

	// RegisteredDomains adds a domain (eTLD+1) facet per URL.
	RegisteredDomains bool
}

// DefaultOptions returns top_items=20, top_urls=3, randomized samples and the abort policy.
func DefaultOptions() Options {
	return Options{
		TopItems:        20,
		TopURLs:         3,
		RandomizeSample: true,
		OnParseError:    domain.ErrorPolicyAbort,
	}
}

// Validate checks the options. An empty OnParseError is read as abort.
func (o Options) Validate() error {
	if o.TopItems < 0 {
		return &domain.ConfigError{Field: "top_items", Value: o.TopItems, Reason: "must be >= 0"}
	}
	if o.TopURLs < 0 {
		return &domain.ConfigError{Field: "top_urls", Value: o.TopURLs, Reason: "must be >= 0"}
	}
	if o.OnParseError != "" && !o.OnParseError.IsValid() {
		return &domain.ConfigError{Field: "on_parse_error", Value: o.OnParseError, Reason: "must be abort or skip"}
	}
	return nil
}

// BuildStats reports what a build consumed and produced.
type BuildStats struct {
	InputURLs   int           `json:"input_urls"`
	SkippedURLs int           `json:"skipped_urls"`
	Groups      int           `json:"groups"`
	Retained    int           `json:"retained"`
	Duration    time.Duration `json:"-"`
	DurationMs  int64         `json:"duration_ms"`
}

// String returns a one-line summary.
func (s BuildStats) String() string {
	return fmt.Sprintf("input=%d skipped=%d groups=%d retained=%d duration=%dms",
		s.InputURLs, s.SkippedURLs, s.Groups, s.Retained, s.DurationMs)
}

// group accumulates the members of one facet during the pass.
type group struct {
	facet   domain.Facet
	members []string
}

// SummaryBuilder groups URLs by facet, ranks the groups and samples each one.
// A builder holds no state between builds and may be reused.
type SummaryBuilder struct {
	opts      Options
	extractor *FacetExtractor
	logger    logx.Logger
}

// NewSummaryBuilder creates a builder. Options are validated by Build, before
// any input is consumed.
func NewSummaryBuilder(opts Options, logger logx.Logger) *SummaryBuilder {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &SummaryBuilder{
		opts:      opts,
		extractor: NewFacetExtractor(opts.RegisteredDomains),
		logger:    logger.With("component", "summary_builder"),
	}
}

// Summarize builds a summary of urls with a silent logger.
func Summarize(urls []string, opts Options) (domain.SummaryResult, error) {
	result, _, err := NewSummaryBuilder(opts, nil).BuildSlice(urls)
	return result, err
}

// BuildSlice is Build over a slice.
func (b *SummaryBuilder) BuildSlice(urls []string) (domain.SummaryResult, BuildStats, error) {
	return b.Build(slices.Values(urls))
}

// Build consumes urls exactly once and returns the ranked summary.
//
// With the abort policy the first URL that cannot be split ends the build
// with a *domain.ParseError; with the skip policy it is logged and left out of
// every group, the all facet included.
func (b *SummaryBuilder) Build(urls iter.Seq[string]) (domain.SummaryResult, BuildStats, error) {
	var stats BuildStats
	if err := b.opts.Validate(); err != nil {
		return nil, stats, err
	}
	policy := b.opts.OnParseError
	if policy == "" {
		policy = domain.ErrorPolicyAbort
	}

	start := time.Now()
	b.logger.Debug("starting summary build",
		"top_items", b.opts.TopItems,
		"top_urls", b.opts.TopURLs,
		"randomize", b.opts.RandomizeSample,
		"on_parse_error", policy,
	)

	index := make(map[domain.Facet]*group)
	valueSets := make(map[string]map[string]struct{}) // query-key facet value -> distinct params

	for rawURL := range urls {
		pos := stats.InputURLs
		stats.InputURLs++

		err := b.extractor.Visit(rawURL, func(f domain.Facet, param string) {
			g, ok := index[f]
			if !ok {
				g = &group{facet: f}
				index[f] = g
			}
			g.members = append(g.members, rawURL)

			if f.Kind == domain.KindQueryKey {
				set, ok := valueSets[f.Value]
				if !ok {
					set = make(map[string]struct{})
					valueSets[f.Value] = set
				}
				set[param] = struct{}{}
			}
		})
		if err == nil {
			continue
		}

		perr := &domain.ParseError{URL: rawURL, Position: pos, Err: err}
		if policy == domain.ErrorPolicyAbort {
			return nil, stats, errors.Wrap(perr, "summary build aborted")
		}
		stats.SkippedURLs++
		b.logger.Warn("skipping unparseable url", "position", pos, "url", rawURL, "error", err.Error())
	}

	ranked := rankGroups(index)
	stats.Groups = len(ranked)
	if len(ranked) > b.opts.TopItems {
		ranked = ranked[:b.opts.TopItems]
	}

	result := make(domain.SummaryResult, 0, len(ranked))
	for _, g := range ranked {
		sample := selectSample(g.members, b.opts.TopURLs, b.opts.RandomizeSample)
		slices.Sort(sample)

		item := domain.SummaryItem{
			Facet:      g.facet,
			GroupStats: domain.GroupStats{Count: len(g.members), Sample: sample},
		}
		if g.facet.Kind == domain.KindQueryKey {
			n := len(valueSets[g.facet.Value])
			item.ValueDiversity = &n
		}
		result = append(result, item)
	}

	stats.Retained = len(result)
	stats.Duration = time.Since(start)
	stats.DurationMs = stats.Duration.Milliseconds()

	b.logger.Debug("summary build finished",
		"input_urls", stats.InputURLs,
		"skipped_urls", stats.SkippedURLs,
		"groups", stats.Groups,
		"retained", stats.Retained,
		"elapsed_ms", stats.DurationMs,
	)

	return result, stats, nil
}

// rankGroups orders groups by descending size, then by ascending (kind, value).
// Facets are unique map keys, so the order is total.
func rankGroups(index map[domain.Facet]*group) []*group {
	ranked := make([]*group, 0, len(index))
	for _, g := range index {
		ranked = append(ranked, g)
	}
	slices.SortFunc(ranked, func(a, c *group) int {
		if n := cmp.Compare(len(c.members), len(a.members)); n != 0 {
			return n
		}
		return a.facet.Compare(c.facet)
	})
	return ranked
}
