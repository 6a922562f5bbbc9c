// Package analysis derives cross-scenario metrics from projected tables. All
// functions are pure reducers: they hold no state and recomputing them from
// the same tables yields identical results.
package analysis

import (
	"fmt"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/finance"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/model"
)

// Displacement summarizes how much diesel one scenario avoids versus another
// over the full analysis range.
type Displacement struct {
	AvoidedDieselMWh  float64
	AvoidedDieselCost float64
	AvoidedCO2Tonnes  float64
	AvoidedBarrels    float64
}

// DieselDisplacement compares a baseline table against an alternative.
// Positive values mean the alternative burns less.
func DieselDisplacement(baseline, alternative model.ScenarioTable) Displacement {
	avoided := baseline.SumDiesel() - alternative.SumDiesel()
	return Displacement{
		AvoidedDieselMWh:  avoided,
		AvoidedDieselCost: baseline.SumDieselCost() - alternative.SumDieselCost(),
		AvoidedCO2Tonnes:  avoided * model.CO2TonnesPerMWh,
		AvoidedBarrels:    avoided / model.MWhPerBarrel,
	}
}

// Viability is the expansion financing picture once the anchor is in place.
// The margin is the anchor's revenue above the hydro wholesale cost of its
// energy, not profit in any accounting sense.
type Viability struct {
	AnchorLoadMWh float64
	AnnualMargin  float64
	DebtService   float64
	CoverageRatio float64
	// ResidualOnRatepayers is the uncovered debt service, zero when the anchor
	// over-covers; Surplus is the excess the other way.
	ResidualOnRatepayers float64
	Surplus              float64
}

// ExpansionViability evaluates the anchor margin against the annual debt
// service. Load and tariff are constant across the anchor's active years, so
// this is evaluated once.
func ExpansionViability(p model.Params, debtService float64) Viability {
	load := p.AnchorLoadMWh()
	margin := finance.AnchorMargin(load, p.AnchorTariffPerMWh, p.HydroUnitCost)
	v := Viability{
		AnchorLoadMWh: load,
		AnnualMargin:  margin,
		DebtService:   debtService,
		CoverageRatio: finance.CoverageRatio(margin, debtService),
	}
	if margin < debtService {
		v.ResidualOnRatepayers = debtService - margin
	} else {
		v.Surplus = margin - debtService
	}
	return v
}

// HouseholdImpact is what the rate gap between two scenarios costs or saves an
// average household, accumulated over a year range.
type HouseholdImpact struct {
	FromYear int
	ToYear   int
	// CumulativePerHousehold sums (baseline rate − alternative rate) ×
	// household kWh across the range. Positive when the alternative is cheaper.
	CumulativePerHousehold float64
	CommunityWide          float64
}

// HouseholdSavings accumulates the per-household rate gap between two tables
// over [fromYear, toYear]. The range must fall inside the analysis window.
func HouseholdSavings(baseline, alternative model.ScenarioTable, fromYear, toYear int, p model.Params) (HouseholdImpact, error) {
	if fromYear > toYear {
		return HouseholdImpact{}, fmt.Errorf("year range is inverted: %d..%d", fromYear, toYear)
	}
	if fromYear < model.StartYear || toYear > model.EndYear {
		return HouseholdImpact{}, fmt.Errorf("year range %d..%d outside analysis window %d..%d", fromYear, toYear, model.StartYear, model.EndYear)
	}

	var cum float64
	for year := fromYear; year <= toYear; year++ {
		base, ok := baseline.Record(year)
		if !ok {
			return HouseholdImpact{}, fmt.Errorf("baseline table has no record for %d", year)
		}
		alt, ok := alternative.Record(year)
		if !ok {
			return HouseholdImpact{}, fmt.Errorf("alternative table has no record for %d", year)
		}
		cum += (base.RetailRateKWh - alt.RetailRateKWh) * p.HouseholdKWhYear
	}

	return HouseholdImpact{
		FromYear:               fromYear,
		ToYear:                 toYear,
		CumulativePerHousehold: cum,
		CommunityWide:          cum * float64(p.Households),
	}, nil
}

// EconomicImpact is the anchor's local footprint: jobs, payroll, and spending
// scaled by the local multiplier. Display figures only; nothing here feeds
// back into rates or dispatch.
type EconomicImpact struct {
	ConstructionJobs    float64
	OperatingJobs       float64
	ConstructionPayroll float64
	OperatingPayroll    float64
	LocalActivity       float64
	AnnualTariffRevenue float64
}

// Rough per-job payroll and construction staffing assumptions for a rural
// data-center build.
const (
	constructionJobsPerMW     = 6.0
	operatingPayrollPerJob    = 75_000.0
	constructionPayrollPerJob = 65_000.0
)

func AnchorEconomicImpact(p model.Params) EconomicImpact {
	opJobs := p.AnchorPowerMW * p.JobsPerMW
	conJobs := p.AnchorPowerMW * constructionJobsPerMW
	opPay := opJobs * operatingPayrollPerJob
	conPay := conJobs * constructionPayrollPerJob
	return EconomicImpact{
		ConstructionJobs:    conJobs,
		OperatingJobs:       opJobs,
		ConstructionPayroll: conPay,
		OperatingPayroll:    opPay,
		LocalActivity:       (opPay + conPay) * p.EconomicMultiplier,
		AnnualTariffRevenue: p.AnchorLoadMWh() * p.AnchorTariffPerMWh,
	}
}
