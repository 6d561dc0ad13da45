// Package models defines the data structures for the rooftop subsidy engine.
package models

// CoverageTier indicates whether a scheme applies nationally, to a single
// state, or is a CSR/NGO programme.
type CoverageTier string

const (
	CoverageTierNational CoverageTier = "national"
	CoverageTierState    CoverageTier = "state"
	CoverageTierCSR      CoverageTier = "csr"
)

// SchemeDefinition is a named government or CSR support programme with its
// eligibility rules. Catalog entries are static per deployment and never
// mutated at runtime.
//
// RequiresOwnership and RequiresGridConnection are tri-state: nil means the
// scheme does not constrain that flag, true restricts it to owners (or
// grid-connected homes), false restricts it to the opposite.
type SchemeDefinition struct {
	ID                         string            `json:"id"`
	Name                       string            `json:"name"`
	Description                string            `json:"description"`
	SponsoringBody             string            `json:"sponsoring_body"`
	ConsumerSegments           []ConsumerSegment `json:"consumer_segments"`
	Coverage                   CoverageTier      `json:"coverage"`
	States                     []string          `json:"states"`
	RequiresOwnership          *bool             `json:"requires_ownership,omitempty"`
	RequiresGridConnection     *bool             `json:"requires_grid_connection,omitempty"`
	SubsidyType                string            `json:"subsidy_type"`
	Benefit                    string            `json:"benefit"`
	ApplicationProcess         string            `json:"application_process"`
	ApplicationURL             string            `json:"application_url,omitempty"`
	DocumentsRequired          string            `json:"documents_required"`
	Timeline                   string            `json:"timeline"`
	VendorInfo                 string            `json:"vendor_info"`
	Notes                      string            `json:"notes,omitempty"`
	MatchScore                 float64           `json:"match_score"`
	Reasons                    []string          `json:"reasons"`
	MinRoofAreaSqm             *float64          `json:"min_roof_area_sqm,omitempty"`
	MaxMonthlyConsumptionUnits *float64          `json:"max_monthly_consumption_units,omitempty"`
	Tags                       []string          `json:"tags,omitempty"`
}

// AppliesToSegment reports whether the scheme accepts the given consumer
// segment. An empty segment list means the scheme applies to all segments.
func (s *SchemeDefinition) AppliesToSegment(segment ConsumerSegment) bool {
	if len(s.ConsumerSegments) == 0 {
		return true
	}
	for _, allowed := range s.ConsumerSegments {
		if allowed == segment {
			return true
		}
	}
	return false
}

// FilterFacets are the facet values the presentation layer offers for
// narrowing a set of matched schemes. Ownership and grid are fixed
// presentation constants; coverage is derived from the matches.
type FilterFacets struct {
	Coverage  []string `json:"coverage"`
	Ownership []string `json:"ownership"`
	Grid      []string `json:"grid"`
}
