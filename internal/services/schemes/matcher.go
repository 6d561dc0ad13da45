// Package schemes implements the support-scheme catalog and the household
// eligibility matcher.
package schemes

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"rooftop-subsidy-engine/internal/models"
	"rooftop-subsidy-engine/internal/utils"
)

// Service matches household profiles against the scheme catalog. The catalog
// is built once and never mutated, so a single Service is safe for concurrent
// use across requests.
type Service struct {
	catalog map[string][]models.SchemeDefinition
	byID    map[string]models.SchemeDefinition
}

// NewService creates a matcher over the default catalog.
func NewService() *Service {
	return NewServiceWithCatalog(DefaultCatalog())
}

// NewServiceWithCatalog creates a matcher over an explicit catalog.
func NewServiceWithCatalog(catalog map[string][]models.SchemeDefinition) *Service {
	byID := make(map[string]models.SchemeDefinition)
	for _, entries := range catalog {
		for _, scheme := range entries {
			byID[scheme.ID] = scheme
		}
	}
	return &Service{catalog: catalog, byID: byID}
}

// Lookup returns a catalog entry by id.
func (s *Service) Lookup(schemeID string) (models.SchemeDefinition, bool) {
	scheme, ok := s.byID[schemeID]
	return scheme, ok
}

// Regions returns the catalog's region keys, sorted.
func (s *Service) Regions() []string {
	regions := make([]string, 0, len(s.catalog))
	for region := range s.catalog {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// Match filters the catalog against a household profile and returns the
// eligible schemes. The candidate pool is the household state's entries (a
// case-insensitive key; unknown states contribute nothing) plus every
// national entry, and survivors keep that pool order. An empty result is a
// normal outcome, not an error.
func (s *Service) Match(profile models.HouseholdProfile) []models.SchemeDefinition {
	stateKey := strings.ToLower(strings.TrimSpace(profile.State))

	candidates := make([]models.SchemeDefinition, 0)
	candidates = append(candidates, s.catalog[stateKey]...)
	if stateKey != RegionNational {
		candidates = append(candidates, s.catalog[RegionNational]...)
	}

	matches := make([]models.SchemeDefinition, 0, len(candidates))
	for _, scheme := range candidates {
		if !s.eligible(&scheme, &profile) {
			continue
		}
		matches = append(matches, scheme)
	}

	utils.Logger.Debug("Matched schemes for household",
		zap.String("state", stateKey),
		zap.String("segment", string(profile.ConsumerSegment)),
		zap.Int("candidates", len(candidates)),
		zap.Int("matches", len(matches)),
	)

	return matches
}

// eligible applies the filter predicates in order: segment, ownership, grid,
// roof-area floor, consumption ceiling. Thresholds only apply when the
// profile value is known.
func (s *Service) eligible(scheme *models.SchemeDefinition, profile *models.HouseholdProfile) bool {
	if !scheme.AppliesToSegment(profile.ConsumerSegment) {
		return false
	}

	if scheme.RequiresOwnership != nil {
		if *scheme.RequiresOwnership && !profile.OwnsProperty {
			return false
		}
		// Explicitly false means the scheme is exclusively for non-owners.
		if !*scheme.RequiresOwnership && profile.OwnsProperty {
			return false
		}
	}

	if scheme.RequiresGridConnection != nil {
		if *scheme.RequiresGridConnection && !profile.IsGridConnected {
			return false
		}
		if !*scheme.RequiresGridConnection && profile.IsGridConnected {
			return false
		}
	}

	if scheme.MinRoofAreaSqm != nil && profile.RoofAreaSqm != nil &&
		*profile.RoofAreaSqm < *scheme.MinRoofAreaSqm {
		return false
	}

	if scheme.MaxMonthlyConsumptionUnits != nil && profile.AnnualConsumptionKWh != nil {
		monthlyAvg := *profile.AnnualConsumptionKWh / 12.0
		if monthlyAvg > *scheme.MaxMonthlyConsumptionUnits {
			return false
		}
	}

	return true
}

// FilterOptions derives the filter facets for a set of matched schemes. The
// coverage facet comes from the matches; ownership and grid are fixed
// presentation constants.
func FilterOptions(matches []models.SchemeDefinition) models.FilterFacets {
	seen := make(map[string]bool)
	coverage := make([]string, 0)
	for _, scheme := range matches {
		tier := string(scheme.Coverage)
		if !seen[tier] {
			seen[tier] = true
			coverage = append(coverage, tier)
		}
	}
	sort.Strings(coverage)

	return models.FilterFacets{
		Coverage:  coverage,
		Ownership: []string{"owner", "tenant"},
		Grid:      []string{"grid", "off-grid"},
	}
}
