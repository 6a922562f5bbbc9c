package model

import (
	"fmt"
)

// Fixed assumptions of the analysis. The year range and conversion factors are
// part of the model definition, not tunable inputs.
const (
	StartYear = 2023
	EndYear   = 2035

	HoursPerYear = 8760.0

	// MinRateKWh is the retail rate floor in $/kWh. Anchor revenue can push the
	// community-borne cost arbitrarily low; the published rate never follows it
	// below this floor.
	MinRateKWh = 0.05

	// CO2TonnesPerMWh is the emissions intensity of diesel generation.
	CO2TonnesPerMWh = 0.7

	// MWhPerBarrel is the energy content of a barrel of diesel.
	MWhPerBarrel = 0.01709
)

// Params defines one complete simulation run. Immutable once constructed.
// Units:
// - loads and capacities: MWh/yr
// - unit costs: $/MWh
// - rates and shares: fractions (growth rates must be > -1)
// - BaseRateKWh, MinRateKWh: $/kWh
type Params struct {
	// Load growth, two-phase compounding from StartYear.
	BaseLoadMWh      float64
	Phase1GrowthRate float64
	Phase1EndYear    int
	Phase2GrowthRate float64

	// Hydro supply. ExpansionAddedMWh comes online at ExpansionYear in
	// scenarios that include the expansion.
	HydroCapMWh       float64
	HydroUnitCost     float64
	ExpansionYear     int
	ExpansionAddedMWh float64

	// Diesel, the unconstrained backstop source.
	DieselFloorMWh       float64
	DieselBaseUnitCost   float64
	DieselEscalationRate float64

	FixedCostPerYear float64

	// Expansion financing. The utility services CapEx × UtilityDebtShare.
	CapEx            float64
	UtilityDebtShare float64
	FinancingRate    float64
	BondTermYears    int

	// Anchor customer, active only in ExpansionPlusAnchor from ExpansionYear.
	AnchorPowerMW        float64
	AnchorCapacityFactor float64
	AnchorTariffPerMWh   float64

	// BaseRateKWh is the observed current retail rate, supplied as an input.
	// It is a reference value for comparisons, never derived by the model.
	BaseRateKWh float64

	// Community baseline, used by impact metrics only. These scale outputs and
	// never feed back into dispatch or rates.
	Households         int
	HouseholdKWhYear   float64
	EconomicMultiplier float64
	JobsPerMW          float64
}

// Validate checks every field against its documented domain. A single
// violation invalidates the whole run; no projection may start after an error.
func (p Params) Validate() error {
	if p.BaseLoadMWh <= 0 {
		return fmt.Errorf("BaseLoadMWh must be > 0, got %v", p.BaseLoadMWh)
	}
	if p.Phase1GrowthRate <= -1 {
		return fmt.Errorf("Phase1GrowthRate must be > -1, got %v", p.Phase1GrowthRate)
	}
	if p.Phase2GrowthRate <= -1 {
		return fmt.Errorf("Phase2GrowthRate must be > -1, got %v", p.Phase2GrowthRate)
	}
	if p.Phase1EndYear < StartYear || p.Phase1EndYear > EndYear {
		return fmt.Errorf("Phase1EndYear must be within %d..%d, got %d", StartYear, EndYear, p.Phase1EndYear)
	}
	if p.HydroCapMWh <= 0 {
		return fmt.Errorf("HydroCapMWh must be > 0, got %v", p.HydroCapMWh)
	}
	if p.HydroUnitCost <= 0 {
		return fmt.Errorf("HydroUnitCost must be > 0, got %v", p.HydroUnitCost)
	}
	if p.ExpansionYear < StartYear || p.ExpansionYear > EndYear {
		return fmt.Errorf("ExpansionYear must be within %d..%d, got %d", StartYear, EndYear, p.ExpansionYear)
	}
	if p.ExpansionAddedMWh < 0 {
		return fmt.Errorf("ExpansionAddedMWh must be >= 0, got %v", p.ExpansionAddedMWh)
	}
	if p.DieselFloorMWh < 0 {
		return fmt.Errorf("DieselFloorMWh must be >= 0, got %v", p.DieselFloorMWh)
	}
	if p.DieselBaseUnitCost <= 0 {
		return fmt.Errorf("DieselBaseUnitCost must be > 0, got %v", p.DieselBaseUnitCost)
	}
	if p.DieselEscalationRate < -1 {
		return fmt.Errorf("DieselEscalationRate must be >= -1, got %v", p.DieselEscalationRate)
	}
	if p.FixedCostPerYear < 0 {
		return fmt.Errorf("FixedCostPerYear must be >= 0, got %v", p.FixedCostPerYear)
	}
	if p.CapEx <= 0 {
		return fmt.Errorf("CapEx must be > 0, got %v", p.CapEx)
	}
	if p.UtilityDebtShare <= 0 || p.UtilityDebtShare > 1 {
		return fmt.Errorf("UtilityDebtShare must be in (0, 1], got %v", p.UtilityDebtShare)
	}
	if p.FinancingRate <= 0 {
		return fmt.Errorf("FinancingRate must be > 0, got %v", p.FinancingRate)
	}
	if p.BondTermYears <= 0 {
		return fmt.Errorf("BondTermYears must be a positive integer, got %d", p.BondTermYears)
	}
	if p.AnchorPowerMW < 0 {
		return fmt.Errorf("AnchorPowerMW must be >= 0, got %v", p.AnchorPowerMW)
	}
	if p.AnchorCapacityFactor <= 0 || p.AnchorCapacityFactor > 1 {
		return fmt.Errorf("AnchorCapacityFactor must be in (0, 1], got %v", p.AnchorCapacityFactor)
	}
	if p.AnchorTariffPerMWh < 0 {
		return fmt.Errorf("AnchorTariffPerMWh must be >= 0, got %v", p.AnchorTariffPerMWh)
	}
	if p.BaseRateKWh <= 0 {
		return fmt.Errorf("BaseRateKWh must be > 0, got %v", p.BaseRateKWh)
	}
	if p.Households < 0 {
		return fmt.Errorf("Households must be >= 0, got %d", p.Households)
	}
	if p.HouseholdKWhYear < 0 {
		return fmt.Errorf("HouseholdKWhYear must be >= 0, got %v", p.HouseholdKWhYear)
	}
	if p.EconomicMultiplier < 0 {
		return fmt.Errorf("EconomicMultiplier must be >= 0, got %v", p.EconomicMultiplier)
	}
	if p.JobsPerMW < 0 {
		return fmt.Errorf("JobsPerMW must be >= 0, got %v", p.JobsPerMW)
	}
	return nil
}

// AnchorLoadMWh is the anchor's annual energy at full adoption:
// nameplate MW × capacity factor × hours per year.
func (p Params) AnchorLoadMWh() float64 {
	return p.AnchorPowerMW * p.AnchorCapacityFactor * HoursPerYear
}

// Years returns the full analysis range in ascending order.
func Years() []int {
	out := make([]int, 0, EndYear-StartYear+1)
	for y := StartYear; y <= EndYear; y++ {
		out = append(out, y)
	}
	return out
}
