// Package schemes implements the support-scheme catalog and the household
// eligibility matcher.
package schemes

import (
	"rooftop-subsidy-engine/internal/models"
)

// RegionNational is the reserved catalog key for schemes available everywhere.
const RegionNational = "national"

func boolPtr(v bool) *bool { return &v }

func floatPtr(v float64) *float64 { return &v }

// DefaultCatalog returns the deployed scheme catalog keyed by region. The
// catalog is declarative data; eligibility logic lives in the matcher so new
// schemes can be added without touching it.
func DefaultCatalog() map[string][]models.SchemeDefinition {
	return map[string][]models.SchemeDefinition{
		RegionNational: {
			{
				ID:                     "pm-surya-ghar",
				Name:                   "PM Surya Ghar Muft Bijli Yojana",
				Description:            "Central rooftop subsidy for residential households with grid-connected homes.",
				SponsoringBody:         "Central (MNRE)",
				ConsumerSegments:       []models.ConsumerSegment{models.ConsumerSegmentResidential},
				Coverage:               models.CoverageTierNational,
				States:                 []string{"all"},
				SubsidyType:            "Capital subsidy (one-time)",
				Benefit:                "₹30,000 per kW up to 2 kW; ₹18,000 per kW for 3rd kW; max ₹78,000",
				ApplicationProcess:     "Apply via National Portal for Rooftop Solar",
				ApplicationURL:         "https://pmsuryaghar.gov.in/",
				DocumentsRequired:      "Aadhaar, property proof, recent electricity bill, bank details, local NOC if needed",
				Timeline:               "Subsidy credited within ~30 days of commissioning",
				VendorInfo:             "MNRE-empanelled vendors",
				Notes:                  "Requires prior energy consumption eligibility and net-metering approval",
				RequiresOwnership:      boolPtr(true),
				RequiresGridConnection: boolPtr(true),
				MinRoofAreaSqm:         floatPtr(10),
				Tags:                   []string{"central", "residential"},
				MatchScore:             8.6,
				Reasons: []string{
					"Grid-connected residential rooftop",
					"Meets 10 m² minimum usable area",
				},
			},
			{
				ID:                     "grid-connected-rooftop-phase-ii",
				Name:                   "Grid-Connected Rooftop Solar Scheme (Phase-II)",
				Description:            "Central financial assistance (CFA) for residential rooftop projects up to 10 kW.",
				SponsoringBody:         "Central (MNRE)",
				ConsumerSegments:       []models.ConsumerSegment{models.ConsumerSegmentResidential},
				Coverage:               models.CoverageTierNational,
				States:                 []string{"all"},
				SubsidyType:            "Central financial assistance (CFA)",
				Benefit:                "Up to ₹14,588/kW (1–3 kW); ₹7,294/kW beyond 3 kW (up to 10 kW); ₹94,822 fixed for >10 kW",
				ApplicationProcess:     "Apply via DISCOM or national rooftop portal",
				ApplicationURL:         "https://solarrooftop.gov.in/",
				DocumentsRequired:      "Aadhaar, electricity bill, ID proof, property papers, sanctioned load document",
				Timeline:               "CFA credited after DISCOM verification (~60–90 days)",
				VendorInfo:             "MNRE-registered and DISCOM-empanelled vendors",
				Notes:                  "Requires MNRE-approved modules and net-meter installation",
				RequiresOwnership:      boolPtr(true),
				RequiresGridConnection: boolPtr(true),
				MinRoofAreaSqm:         floatPtr(10),
				Tags:                   []string{"central", "residential"},
				MatchScore:             8.4,
				Reasons: []string{
					"Eligible residential consumer",
					"Grid-connected rooftop with MNRE compliant modules",
				},
			},
			{
				ID:                     "pm-kusum-a",
				Name:                   "PM-KUSUM Component A",
				Description:            "Decentralized solar PV plants feeding power into the grid (500 kW–2 MW systems).",
				SponsoringBody:         "Central (MNRE)",
				ConsumerSegments:       []models.ConsumerSegment{models.ConsumerSegmentAgricultural},
				Coverage:               models.CoverageTierNational,
				States:                 []string{"all"},
				SubsidyType:            "Feed-in tariff + PBI",
				Benefit:                "FiT set by SERC; PBI ~₹0.40/unit or ₹6.6 lakh/MW (whichever lower) for 5 years",
				ApplicationProcess:     "Apply via DISCOM/RPGs through competitive bids",
				DocumentsRequired:      "Land records, project report, renewable power generator registration",
				Timeline:               "Five-year incentive period post commissioning",
				VendorInfo:             "Coordinated by DISCOMs and empanelled developers",
				Notes:                  "Requires land near feeders and grid connectivity",
				RequiresOwnership:      boolPtr(true),
				RequiresGridConnection: boolPtr(true),
				MinRoofAreaSqm:         floatPtr(2000),
				Tags:                   []string{"agriculture", "large-scale"},
				MatchScore:             7.5,
				Reasons: []string{
					"Farmer/FPO looking to export power",
					"Adequate land availability",
				},
			},
			{
				ID:                     "pm-kusum-b",
				Name:                   "PM-KUSUM Component B",
				Description:            "Capital subsidy for standalone off-grid solar pumps for irrigation.",
				SponsoringBody:         "Central + State",
				ConsumerSegments:       []models.ConsumerSegment{models.ConsumerSegmentAgricultural},
				Coverage:               models.CoverageTierNational,
				States:                 []string{"all"},
				SubsidyType:            "Capital subsidy (CFA)",
				Benefit:                "CFA 30% (50% in NE/hill states); state ≥30%; farmer ~10% (balance via NABARD loan)",
				ApplicationProcess:     "Apply online at PM-KUSUM portal",
				DocumentsRequired:      "Aadhaar, land/cultivation docs, Kisan ID, electricity connectivity proof",
				Timeline:               "Loan and subsidy disbursed post approval",
				VendorInfo:             "Approved solar pump vendors",
				Notes:                  "Supports irrigation in non/poorly electrified areas",
				RequiresOwnership:      boolPtr(true),
				RequiresGridConnection: boolPtr(false),
				Tags:                   []string{"agriculture", "off-grid"},
				MatchScore:             7.8,
				Reasons: []string{
					"Agricultural consumer with poor grid access",
					"Eligible for central + state subsidy combo",
				},
			},
			{
				ID:                     "pm-kusum-c",
				Name:                   "PM-KUSUM Component C",
				Description:            "Solarisation of existing grid-connected agricultural pumps with surplus export provision.",
				SponsoringBody:         "Central + State",
				ConsumerSegments:       []models.ConsumerSegment{models.ConsumerSegmentAgricultural},
				Coverage:               models.CoverageTierNational,
				States:                 []string{"all"},
				SubsidyType:            "Capital subsidy (CFA)",
				Benefit:                "CFA 30% (50% NE/hills); state ≥30%; farmer contributes ~10%",
				ApplicationProcess:     "Apply via PM-KUSUM portal with DISCOM approvals",
				DocumentsRequired:      "Aadhaar, land/pump details, DISCOM sanction letters",
				Timeline:               "Subsidy released after commissioning and net-meter setup",
				VendorInfo:             "Empanelled solar pump vendors",
				Notes:                  "Ideal for farmers wanting net metering on irrigation feeders",
				RequiresOwnership:      boolPtr(true),
				RequiresGridConnection: boolPtr(true),
				Tags:                   []string{"agriculture", "grid"},
				MatchScore:             7.6,
				Reasons: []string{
					"Existing grid pump eligible for solarisation",
					"DISCOM sanctioned connection",
				},
			},
			{
				ID:                     "tata-microgrid",
				Name:                   "Tata Power Renewable Microgrid",
				Description:            "CSR-led deployment of renewable microgrids in rural communities without reliable grid access.",
				SponsoringBody:         "Tata Power (CSR)",
				ConsumerSegments:       []models.ConsumerSegment{models.ConsumerSegmentCommunity},
				Coverage:               models.CoverageTierCSR,
				States:                 []string{"rural"},
				SubsidyType:            "CSR infrastructure grant",
				Benefit:                "80%-90% of microgrid costs covered; community pays remainder (₹2.5–₹10/kWh)",
				ApplicationProcess:     "Coordinated with local bodies; not an individual application",
				DocumentsRequired:      "Community-level agreements and local body endorsements",
				Timeline:               "Project-based deployment; timelines vary",
				VendorInfo:             "Implemented by Tata Power Renewable Microgrid subsidiary",
				Notes:                  "Includes prepaid smart meters and entrepreneurship support",
				RequiresOwnership:      boolPtr(false),
				RequiresGridConnection: boolPtr(false),
				Tags:                   []string{"community", "off-grid"},
				MatchScore:             6.9,
				Reasons: []string{
					"Ideal for rural settlements seeking reliable power",
					"CSR-backed installation and maintenance",
				},
			},
		},
		"gujarat": {
			{
				ID:                     "guj-res-2024",
				Name:                   "Surya Gujarat Residential Rooftop",
				Description:            "State capital subsidy for residential rooftop systems up to 10 kW.",
				SponsoringBody:         "GUVNL",
				ConsumerSegments:       []models.ConsumerSegment{models.ConsumerSegmentResidential},
				Coverage:               models.CoverageTierState,
				States:                 []string{"gujarat"},
				SubsidyType:            "Capital subsidy",
				Benefit:                "₹10,000/kW up to 3 kW (state top-up)",
				ApplicationProcess:     "Apply via SURYA Gujarat portal",
				ApplicationURL:         "https://surya.gujarat.gov.in/",
				DocumentsRequired:      "Aadhaar, electricity bill, property proof, bank details",
				Timeline:               "Disbursement in 60-90 days",
				VendorInfo:             "State empanelled EPC vendors",
				Notes:                  "System must be installed by GEDA empanelled partner",
				RequiresOwnership:      boolPtr(true),
				RequiresGridConnection: boolPtr(true),
				Tags:                   []string{"state", "residential"},
				MatchScore:             8.4,
				Reasons: []string{
					"Residential consumer in Gujarat",
					"Grid-connected rooftop with empanelled vendor",
				},
			},
		},
		"maharashtra": {
			{
				ID:                         "maharashtra-smart",
				Name:                       "SMART Solar Scheme (Maharashtra)",
				Description:                "State subsidy for residential consumers with low electricity usage.",
				SponsoringBody:             "Government of Maharashtra",
				ConsumerSegments:           []models.ConsumerSegment{models.ConsumerSegmentResidential},
				Coverage:                   models.CoverageTierState,
				States:                     []string{"maharashtra"},
				SubsidyType:                "Capital subsidy",
				Benefit:                    "90%–95% of system cost covered combining central + state support",
				ApplicationProcess:         "Apply via MahaDISCOM i-SMART portal",
				DocumentsRequired:          "Income/caste certificate, Aadhaar, latest bill, address proof",
				Timeline:                   "State subsidy credited after central subsidy",
				VendorInfo:                 "MahaDISCOM-empanelled vendors",
				Notes:                      "Focused on households with usage <100 units/month",
				RequiresOwnership:          boolPtr(true),
				RequiresGridConnection:     boolPtr(true),
				MaxMonthlyConsumptionUnits: floatPtr(100),
				Tags:                       []string{"state", "low-income"},
				MatchScore:                 7.9,
				Reasons: []string{
					"Eligible low-consumption residential consumer",
					"Combines central and state benefits",
				},
			},
		},
		"delhi": {
			{
				ID:                     "delhi-policy-2023",
				Name:                   "Delhi Solar Energy Policy 2023 - Residential Subsidies",
				Description:            "Capital subsidy plus generation-based incentive for Delhi households.",
				SponsoringBody:         "Government of NCT Delhi",
				ConsumerSegments:       []models.ConsumerSegment{models.ConsumerSegmentResidential},
				Coverage:               models.CoverageTierState,
				States:                 []string{"delhi"},
				SubsidyType:            "Capital subsidy + GBI",
				Benefit:                "₹2,000/kW (max ₹10,000) + GBI ₹2-3/kWh for 5 years",
				ApplicationProcess:     "Apply via Delhi DISCOM portals",
				DocumentsRequired:      "Aadhaar, electricity bill, bank details, proof of residency/ownership",
				Timeline:               "Subsidy applied in first bill post commissioning; GBI disbursed annually",
				VendorInfo:             "DISCOM-empanelled vendors",
				Notes:                  "Complements central subsidies for residential rooftops",
				RequiresOwnership:      boolPtr(true),
				RequiresGridConnection: boolPtr(true),
				Tags:                   []string{"state", "delhi", "residential"},
				MatchScore:             8.2,
				Reasons: []string{
					"Delhi residential consumer",
					"Qualifies for GBI and capex support",
				},
			},
		},
		"rajasthan": {
			{
				ID:                     "rajasthan-topup",
				Name:                   "Rajasthan Rooftop Solar Subsidy (State Top-up)",
				Description:            "State top-up for Mukhyamantri Nishulk Bijli Yojana beneficiaries installing rooftop solar.",
				SponsoringBody:         "Government of Rajasthan",
				ConsumerSegments:       []models.ConsumerSegment{models.ConsumerSegmentResidential},
				Coverage:               models.CoverageTierState,
				States:                 []string{"rajasthan"},
				SubsidyType:            "Additional capital incentive",
				Benefit:                "₹17,000 state top-up for systems above 1.1 kW",
				ApplicationProcess:     "Apply via RRECL portal after central approval",
				DocumentsRequired:      "Aadhaar, beneficiary certificate, land/electricity documents",
				Timeline:               "Released alongside central CFA or via export incentive",
				VendorInfo:             "RRECL-empanelled vendors",
				Notes:                  "Targets households exceeding free-unit allowance under Mukhya Mantri Nishulk Bijli Yojana",
				RequiresOwnership:      boolPtr(true),
				RequiresGridConnection: boolPtr(true),
				Tags:                   []string{"state", "residential"},
				MatchScore:             7.7,
				Reasons: []string{
					"Rajasthan residential consumer",
					"Eligible under Nishulk Bijli Yojana",
				},
			},
			{
				ID:                     "pink-promise",
				Name:                   "Pink Promise Solar Electrification",
				Description:            "CSR-funded solar electrification for women-led homes in select districts.",
				SponsoringBody:         "Rajasthan Royals Foundation (CSR)",
				ConsumerSegments:       []models.ConsumerSegment{models.ConsumerSegmentCommunity},
				Coverage:               models.CoverageTierCSR,
				States:                 []string{"rajasthan", "assam"},
				SubsidyType:            "CSR in-kind installation",
				Benefit:                "Free solar lighting/electrification kits for selected beneficiaries",
				ApplicationProcess:     "Selection via campaign partners; not open for direct public applications",
				DocumentsRequired:      "Community partner verification and beneficiary identification",
				Timeline:               "Project concluded Aug 2025 (260 homes electrified)",
				VendorInfo:             "Luminous Power & Bindi International",
				Notes:                  "Focuses on women-led rural households with training component",
				RequiresOwnership:      boolPtr(false),
				RequiresGridConnection: boolPtr(false),
				Tags:                   []string{"community", "women", "off-grid"},
				MatchScore:             6.5,
				Reasons: []string{
					"Community-led initiative in Rajasthan",
					"Supports off-grid women-led households",
				},
			},
			{
				ID:                     "barefoot-college",
				Name:                   "Barefoot College Solar Electrification",
				Description:            "Community-financed solar home systems maintained by trained rural women engineers.",
				SponsoringBody:         "Barefoot College (NGO)",
				ConsumerSegments:       []models.ConsumerSegment{models.ConsumerSegmentCommunity},
				Coverage:               models.CoverageTierCSR,
				States:                 []string{"rajasthan", "multi-state"},
				SubsidyType:            "Training + community financing",
				Benefit:                "Villagers pay ~₹5–₹10/month comparable to kerosene expenses",
				ApplicationProcess:     "Communities nominated; women attend six-month training in Tilonia",
				DocumentsRequired:      "Community nominations; no formal checklist",
				Timeline:               "Ongoing (750 villages electrified)",
				VendorInfo:             "Local women trained as solar engineers",
				Notes:                  "Empowers rural women, ensures local maintenance and ownership",
				RequiresOwnership:      boolPtr(false),
				RequiresGridConnection: boolPtr(false),
				Tags:                   []string{"community", "women", "off-grid"},
				MatchScore:             6.8,
				Reasons: []string{
					"Ideal for off-grid rural clusters",
					"Community-driven implementation",
				},
			},
		},
	}
}
