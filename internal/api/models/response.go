package models

// ProjectionResponse represents the response from a projection run.
type ProjectionResponse struct {
	Status      string               `json:"status"`
	Fingerprint string               `json:"fingerprint"`
	Cached      bool                 `json:"cached"`
	DebtService float64              `json:"debt_service"`
	Summary     Summary              `json:"summary"`
	Tables      map[string][]YearRow `json:"tables,omitempty"`
}

// Summary contains the headline cross-scenario metrics.
type Summary struct {
	TargetYear   int            `json:"target_year"`
	BaseRateKWh  float64        `json:"base_rate_kwh"`
	Rates        []ScenarioRate `json:"rates"`
	Displacement Displacement   `json:"displacement"`
	Viability    Viability      `json:"viability"`
	Households   Households     `json:"households"`
}

// ScenarioRate is one scenario's rate outlook against today's rate.
type ScenarioRate struct {
	Scenario          string  `json:"scenario"`
	Label             string  `json:"label"`
	RateTargetYear    float64 `json:"rate_target_year"`
	RateEndYear       float64 `json:"rate_end_year"`
	DeltaCentsVsToday float64 `json:"delta_cents_vs_today"`
}

// Displacement aggregates diesel avoided by ExpansionPlusAnchor vs StatusQuo.
type Displacement struct {
	AvoidedDieselMWh  float64 `json:"avoided_diesel_mwh"`
	AvoidedDieselCost float64 `json:"avoided_diesel_cost"`
	AvoidedCO2Tonnes  float64 `json:"avoided_co2_tonnes"`
	AvoidedBarrels    float64 `json:"avoided_barrels"`
}

// Viability is the anchor-vs-debt-service picture.
type Viability struct {
	AnchorLoadMWh        float64 `json:"anchor_load_mwh"`
	AnnualMargin         float64 `json:"annual_margin"`
	DebtService          float64 `json:"debt_service"`
	CoverageRatio        float64 `json:"coverage_ratio"`
	ResidualOnRatepayers float64 `json:"residual_on_ratepayers"`
	Surplus              float64 `json:"surplus"`
}

// Households summarizes cumulative household savings.
type Households struct {
	FromYear               int     `json:"from_year"`
	ToYear                 int     `json:"to_year"`
	CumulativePerHousehold float64 `json:"cumulative_per_household"`
	CommunityWide          float64 `json:"community_wide"`
}

// YearRow represents one year of a scenario table.
type YearRow struct {
	Year                 int     `json:"year"`
	CommunityLoadMWh     float64 `json:"community_load_mwh"`
	AnchorLoadMWh        float64 `json:"anchor_load_mwh"`
	TotalDemandMWh       float64 `json:"total_demand_mwh"`
	EffectiveHydroCapMWh float64 `json:"effective_hydro_cap_mwh"`
	HydroDispatchMWh     float64 `json:"hydro_dispatch_mwh"`
	DieselDispatchMWh    float64 `json:"diesel_dispatch_mwh"`
	DieselUnitCost       float64 `json:"diesel_unit_cost"`
	HydroCost            float64 `json:"hydro_cost"`
	DieselCost           float64 `json:"diesel_cost"`
	DebtService          float64 `json:"debt_service"`
	AnchorRevenue        float64 `json:"anchor_revenue"`
	TotalSystemCost      float64 `json:"total_system_cost"`
	CommunityCost        float64 `json:"community_cost"`
	RetailRateKWh        float64 `json:"retail_rate_kwh"`
}

// CompareResponse represents the response from a comparison.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation.
type ComparisonResult struct {
	Name        string  `json:"name"`
	DebtService float64 `json:"debt_service"`
	Summary     Summary `json:"summary"`
}

// ReportResponse wraps the text briefing.
type ReportResponse struct {
	Report string `json:"report"`
}

// ScenarioInfo describes one scenario variant.
type ScenarioInfo struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	HasExpansion bool   `json:"has_expansion"`
	HasAnchor    bool   `json:"has_anchor"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
