// Package tariff provides the static electricity provider directory and the
// bill-based consumption estimator.
package tariff

// DefaultTariffINRPerKWh is the fallback per-unit rate used when a provider
// is unknown or carries no usable tariff.
const DefaultTariffINRPerKWh = 8.0

// ProviderOther is the reserved id for providers not in the directory.
const ProviderOther = "other"

// Provider is a DISCOM entry in the directory.
type Provider struct {
	ID              string  `json:"id"`
	Label           string  `json:"label"`
	TariffINRPerKWh float64 `json:"tariff_inr_per_kwh"`
}

// Choice is an (id, label) pair for populating a provider selection control.
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// providers is ordered; ProviderChoices preserves this order.
var providers = []Provider{
	{ID: "bses_rajdhani", Label: "BSES Rajdhani (Delhi)", TariffINRPerKWh: 8.2},
	{ID: "bses_yamuna", Label: "BSES Yamuna (Delhi)", TariffINRPerKWh: 8.0},
	{ID: "tpddl", Label: "Tata Power Delhi Distribution", TariffINRPerKWh: 8.4},
	{ID: "adani_mumbai", Label: "Adani Electricity Mumbai", TariffINRPerKWh: 9.1},
	{ID: "mseb", Label: "MSEDCL / Mahadiscom (Maharashtra)", TariffINRPerKWh: 7.3},
	{ID: "tangedco", Label: "TANGEDCO (Tamil Nadu)", TariffINRPerKWh: 6.4},
	{ID: "bescom", Label: "BESCOM (Bengaluru)", TariffINRPerKWh: 7.1},
	{ID: "cesc_kolkata", Label: "CESC (Kolkata)", TariffINRPerKWh: 8.3},
	{ID: "pspcl", Label: "PSPCL (Punjab)", TariffINRPerKWh: 7.0},
	{ID: "ts_spdcl", Label: "TSSPDCL (Telangana)", TariffINRPerKWh: 7.6},
	{ID: "wb_sedcl", Label: "WBSEDCL (West Bengal)", TariffINRPerKWh: 7.2},
	{ID: "apspdcl", Label: "APSPDCL (Andhra Pradesh)", TariffINRPerKWh: 7.0},
	{ID: "up_pcl", Label: "UPPCL (Uttar Pradesh)", TariffINRPerKWh: 7.4},
	{ID: "gseb", Label: "GUVNL / DGVCL (Gujarat)", TariffINRPerKWh: 7.2},
}

var providerIndex = buildProviderIndex()

func buildProviderIndex() map[string]Provider {
	index := make(map[string]Provider, len(providers))
	for _, p := range providers {
		index[p.ID] = p
	}
	return index
}

// Providers returns the directory entries in display order.
func Providers() []Provider {
	out := make([]Provider, len(providers))
	copy(out, providers)
	return out
}

// ProviderLabel returns the display label for a provider id. The reserved
// "other" id always resolves; unknown ids report not found.
func ProviderLabel(providerID string) (string, bool) {
	if providerID == "" {
		return "", false
	}
	if providerID == ProviderOther {
		return "Other provider", true
	}
	p, ok := providerIndex[providerID]
	if !ok {
		return "", false
	}
	return p.Label, true
}

// ProviderTariff returns the per-unit tariff for a provider id, or the
// fallback tariff when the id is unknown or its rate is not positive.
func ProviderTariff(providerID string) float64 {
	p, ok := providerIndex[providerID]
	if !ok || p.TariffINRPerKWh <= 0 {
		return DefaultTariffINRPerKWh
	}
	return p.TariffINRPerKWh
}

// ProviderChoices returns the directory as selection-control options: a
// leading placeholder, the providers in directory order, and a trailing
// "other" entry.
func ProviderChoices() []Choice {
	choices := make([]Choice, 0, len(providers)+2)
	choices = append(choices, Choice{ID: "", Label: "Select electricity provider / DISCOM"})
	for _, p := range providers {
		choices = append(choices, Choice{ID: p.ID, Label: p.Label})
	}
	choices = append(choices, Choice{ID: ProviderOther, Label: "Other / Not listed"})
	return choices
}

// EstimateMonthlyUnits converts a monthly bill amount into estimated monthly
// consumption using the provider's tariff. A missing or non-positive bill
// means the consumption is unknown, signalled by a nil result.
func EstimateMonthlyUnits(monthlyBillINR *float64, providerID string) *float64 {
	if monthlyBillINR == nil || *monthlyBillINR <= 0 {
		return nil
	}

	rate := ProviderTariff(providerID)
	if rate <= 0 {
		rate = DefaultTariffINRPerKWh
	}

	units := *monthlyBillINR / rate
	if units < 0 {
		units = 0
	}
	return &units
}
