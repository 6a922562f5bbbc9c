package model

// YearRecord is the full economic and physical state of one (scenario, year).
// All energy quantities are MWh/yr, all costs $/yr, the retail rate $/kWh.
// Records are immutable once produced.
type YearRecord struct {
	Year int

	CommunityLoadMWh float64
	AnchorLoadMWh    float64
	TotalDemandMWh   float64

	EffectiveHydroCapMWh float64
	HydroDispatchMWh     float64
	DieselDispatchMWh    float64

	// DieselUnitCost is this year's escalated diesel cost in $/MWh.
	DieselUnitCost float64

	HydroCost     float64
	DieselCost    float64
	DebtService   float64
	AnchorRevenue float64

	TotalSystemCost float64
	// CommunityCost is TotalSystemCost less anchor revenue: what the non-anchor
	// ratepayer base must cover. It may fall below zero when the anchor
	// over-covers; only the retail rate is floored, not this value.
	CommunityCost float64
	RetailRateKWh float64
}

// ScenarioTable is one scenario's records ordered by year ascending,
// StartYear..EndYear with no gaps.
type ScenarioTable []YearRecord

// Record returns the row for a year, or false if the year is out of range.
func (t ScenarioTable) Record(year int) (YearRecord, bool) {
	i := year - StartYear
	if i < 0 || i >= len(t) || t[i].Year != year {
		return YearRecord{}, false
	}
	return t[i], true
}

// SumDiesel totals diesel dispatch over the full range.
func (t ScenarioTable) SumDiesel() float64 {
	var sum float64
	for _, r := range t {
		sum += r.DieselDispatchMWh
	}
	return sum
}

// SumDieselCost totals diesel cost over the full range.
func (t ScenarioTable) SumDieselCost() float64 {
	var sum float64
	for _, r := range t {
		sum += r.DieselCost
	}
	return sum
}
