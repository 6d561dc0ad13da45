package schemes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rooftop-subsidy-engine/internal/models"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func mockProfile(overrides map[string]interface{}) models.HouseholdProfile {
	profile := models.HouseholdProfile{
		State:           "gujarat",
		ConsumerSegment: models.ConsumerSegmentResidential,
		OwnsProperty:    true,
		IsGridConnected: true,
	}

	if v, ok := overrides["state"]; ok {
		profile.State = v.(string)
	}
	if v, ok := overrides["segment"]; ok {
		profile.ConsumerSegment = v.(models.ConsumerSegment)
	}
	if v, ok := overrides["owns"]; ok {
		profile.OwnsProperty = v.(bool)
	}
	if v, ok := overrides["grid"]; ok {
		profile.IsGridConnected = v.(bool)
	}
	if v, ok := overrides["roof"]; ok {
		roof := v.(float64)
		profile.RoofAreaSqm = &roof
	}
	if v, ok := overrides["annual"]; ok {
		annual := v.(float64)
		profile.AnnualConsumptionKWh = &annual
	}

	return profile
}

func matchIDs(matches []models.SchemeDefinition) []string {
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return ids
}

func TestMatchGujaratResidentialOwner(t *testing.T) {
	svc := NewService()
	matches := svc.Match(mockProfile(nil))
	ids := matchIDs(matches)

	assert.Contains(t, ids, "guj-res-2024")
	assert.Contains(t, ids, "pm-surya-ghar")
	assert.Contains(t, ids, "grid-connected-rooftop-phase-ii")

	// Agricultural-only schemes are excluded for residential households
	assert.NotContains(t, ids, "pm-kusum-a")
	assert.NotContains(t, ids, "pm-kusum-b")
	assert.NotContains(t, ids, "pm-kusum-c")
}

func TestMatchStateSchemesComeBeforeNational(t *testing.T) {
	svc := NewService()
	matches := svc.Match(mockProfile(nil))
	require.NotEmpty(t, matches)

	assert.Equal(t, "guj-res-2024", matches[0].ID)
}

func TestMatchStateKeyCaseInsensitive(t *testing.T) {
	svc := NewService()
	matches := svc.Match(mockProfile(map[string]interface{}{"state": "  GuJaRaT "}))
	assert.Contains(t, matchIDs(matches), "guj-res-2024")
}

func TestMatchUnknownStateGetsNationalOnly(t *testing.T) {
	svc := NewService()
	matches := svc.Match(mockProfile(map[string]interface{}{"state": "atlantis"}))

	ids := matchIDs(matches)
	assert.Contains(t, ids, "pm-surya-ghar")
	for _, m := range matches {
		assert.NotEqual(t, models.CoverageTierState, m.Coverage)
	}
}

func TestMatchTenantExcludesOwnershipSchemes(t *testing.T) {
	svc := NewService()
	matches := svc.Match(mockProfile(map[string]interface{}{"owns": false}))

	for _, m := range matches {
		if m.RequiresOwnership != nil {
			assert.False(t, *m.RequiresOwnership, "scheme %s requires ownership", m.ID)
		}
	}
}

func TestMatchOwnerExcludesNonOwnerSchemes(t *testing.T) {
	svc := NewService()
	// Off-grid community owner: CSR non-owner schemes must not apply
	matches := svc.Match(mockProfile(map[string]interface{}{
		"state":   "rajasthan",
		"segment": models.ConsumerSegmentCommunity,
		"owns":    true,
		"grid":    false,
	}))

	assert.NotContains(t, matchIDs(matches), "pink-promise")
	assert.NotContains(t, matchIDs(matches), "barefoot-college")
}

func TestMatchCommunityOffGridTenant(t *testing.T) {
	svc := NewService()
	matches := svc.Match(mockProfile(map[string]interface{}{
		"state":   "rajasthan",
		"segment": models.ConsumerSegmentCommunity,
		"owns":    false,
		"grid":    false,
	}))

	ids := matchIDs(matches)
	assert.Contains(t, ids, "pink-promise")
	assert.Contains(t, ids, "barefoot-college")
	assert.Contains(t, ids, "tata-microgrid")
}

func TestMatchOffGridExcludesGridSchemes(t *testing.T) {
	svc := NewService()
	matches := svc.Match(mockProfile(map[string]interface{}{"grid": false}))

	for _, m := range matches {
		if m.RequiresGridConnection != nil {
			assert.False(t, *m.RequiresGridConnection, "scheme %s requires grid", m.ID)
		}
	}
}

func TestMatchRoofAreaFloor(t *testing.T) {
	svc := NewService()

	// Below the 10 m² floor of the national residential schemes
	matches := svc.Match(mockProfile(map[string]interface{}{"roof": 6.0}))
	ids := matchIDs(matches)
	assert.NotContains(t, ids, "pm-surya-ghar")
	assert.NotContains(t, ids, "grid-connected-rooftop-phase-ii")
	// Gujarat state scheme has no floor
	assert.Contains(t, ids, "guj-res-2024")

	// Unknown roof area leaves the floor unenforced
	matches = svc.Match(mockProfile(nil))
	assert.Contains(t, matchIDs(matches), "pm-surya-ghar")
}

func TestMatchConsumptionCeiling(t *testing.T) {
	svc := NewService()

	// 1800 kWh/yr = 150 units/month, above the SMART scheme's 100-unit cap
	matches := svc.Match(mockProfile(map[string]interface{}{
		"state":  "maharashtra",
		"annual": 1800.0,
	}))
	assert.NotContains(t, matchIDs(matches), "maharashtra-smart")

	// 960 kWh/yr = 80 units/month passes
	matches = svc.Match(mockProfile(map[string]interface{}{
		"state":  "maharashtra",
		"annual": 960.0,
	}))
	assert.Contains(t, matchIDs(matches), "maharashtra-smart")
}

func TestMatchEmptyResultIsNormal(t *testing.T) {
	svc := NewService()
	matches := svc.Match(mockProfile(map[string]interface{}{
		"state":   "atlantis",
		"segment": models.ConsumerSegmentCommercial,
	}))
	assert.Empty(t, matches)
}

func TestMatchIdempotent(t *testing.T) {
	svc := NewService()
	profile := mockProfile(map[string]interface{}{"roof": 40.0, "annual": 2400.0})

	first := svc.Match(profile)
	second := svc.Match(profile)
	assert.Equal(t, first, second)
}

func TestLookup(t *testing.T) {
	svc := NewService()

	scheme, ok := svc.Lookup("pm-surya-ghar")
	require.True(t, ok)
	assert.Equal(t, "PM Surya Ghar Muft Bijli Yojana", scheme.Name)
	assert.InDelta(t, 8.6, scheme.MatchScore, 1e-9)

	_, ok = svc.Lookup("no-such-scheme")
	assert.False(t, ok)
}

func TestFilterOptions(t *testing.T) {
	svc := NewService()
	matches := svc.Match(mockProfile(nil))

	facets := FilterOptions(matches)
	assert.Equal(t, []string{"national", "state"}, facets.Coverage)
	assert.Equal(t, []string{"owner", "tenant"}, facets.Ownership)
	assert.Equal(t, []string{"grid", "off-grid"}, facets.Grid)
}

func TestFilterOptionsEmpty(t *testing.T) {
	facets := FilterOptions(nil)
	assert.Empty(t, facets.Coverage)
	assert.Equal(t, []string{"owner", "tenant"}, facets.Ownership)
}
