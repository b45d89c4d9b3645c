// internal/core/usecases/facet_extractor.go
package usecases

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"

	"urlsummary/internal/core/domain"
	"urlsummary/internal/platform/urlparts"
)

// FacetExtractor maps one URL to the facets it belongs to.
type FacetExtractor struct {
	registeredDomains bool
}

// NewFacetExtractor creates an extractor. When registeredDomains is set, a
// domain facet (eTLD+1) is emitted right after the netloc facet.
func NewFacetExtractor(registeredDomains bool) *FacetExtractor {
	return &FacetExtractor{registeredDomains: registeredDomains}
}

// Extract returns the facets of rawURL in emission order: all, netloc,
// [domain], path prefixes from shallow to deep, then a query-key and
// query-key-value facet per query parameter in query order.
func (e *FacetExtractor) Extract(rawURL string) ([]domain.Facet, error) {
	var facets []domain.Facet
	err := e.Visit(rawURL, func(f domain.Facet, _ string) {
		facets = append(facets, f)
	})
	if err != nil {
		return nil, err
	}
	return facets, nil
}

// Visit calls fn for every facet of rawURL, in the order Extract returns them.
// For query-key facets, param is the decoded parameter value; it is empty
// otherwise. Nothing is emitted when the URL cannot be split.
func (e *FacetExtractor) Visit(rawURL string, fn func(f domain.Facet, param string)) error {
	parts, err := urlparts.Split(rawURL)
	if err != nil {
		return err
	}

	fn(domain.AllFacet, "")
	fn(domain.NewFacet(domain.KindNetloc, parts.Netloc), "")

	if e.registeredDomains {
		if rd, ok := RegisteredDomain(parts.Hostname()); ok {
			fn(domain.NewFacet(domain.KindDomain, rd), "")
		}
	}

	for _, prefix := range parts.PathPrefixes() {
		fn(domain.NewFacet(domain.KindPathPrefix, prefix), "")
	}

	for _, pair := range urlparts.ParseQuery(parts.RawQuery) {
		fn(domain.NewFacet(domain.KindQueryKey, "?"+pair.Key), pair.Value)
		fn(domain.NewFacet(domain.KindQueryKeyValue, "?"+pair.Key+"="+pair.Value), "")
	}

	return nil
}

// RegisteredDomain returns the lower-cased eTLD+1 of host. IP literals, single
// label hosts and bare public suffixes have none.
func RegisteredDomain(host string) (string, bool) {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" || net.ParseIP(host) != nil {
		return "", false
	}
	rd, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", false
	}
	return rd, true
}
