package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/model"
)

func impactParams() model.Params {
	return model.Params{
		BaseLoadMWh:          40_708,
		Phase1GrowthRate:     0.05,
		Phase1EndYear:        2027,
		Phase2GrowthRate:     0.02,
		HydroCapMWh:          40_200,
		HydroUnitCost:        93,
		ExpansionYear:        2027,
		ExpansionAddedMWh:    37_000,
		DieselFloorMWh:       200,
		DieselBaseUnitCost:   150,
		DieselEscalationRate: 0.03,
		FixedCostPerYear:     1_200_000,
		CapEx:                20_000_000,
		UtilityDebtShare:     0.40,
		FinancingRate:        0.05,
		BondTermYears:        25,
		AnchorPowerMW:        2.0,
		AnchorCapacityFactor: 0.90,
		AnchorTariffPerMWh:   120,
		BaseRateKWh:          0.1232,
		Households:           1174,
		HouseholdKWhYear:     9000,
		EconomicMultiplier:   1.7,
		JobsPerMW:            1.5,
	}
}

// fakeTable builds a minimal full-range table with constant diesel and rate
// values so reducer sums can be verified by hand.
func fakeTable(dieselMWh, dieselCost, rateKWh float64) model.ScenarioTable {
	t := make(model.ScenarioTable, 0, model.EndYear-model.StartYear+1)
	for year := model.StartYear; year <= model.EndYear; year++ {
		t = append(t, model.YearRecord{
			Year:              year,
			DieselDispatchMWh: dieselMWh,
			DieselCost:        dieselCost,
			RetailRateKWh:     rateKWh,
		})
	}
	return t
}

func TestDieselDisplacement(t *testing.T) {
	baseline := fakeTable(1000, 150_000, 0.14)
	alternative := fakeTable(200, 30_000, 0.11)

	d := DieselDisplacement(baseline, alternative)
	years := float64(model.EndYear - model.StartYear + 1)
	assert.InDelta(t, 800*years, d.AvoidedDieselMWh, 1e-9)
	assert.InDelta(t, 120_000*years, d.AvoidedDieselCost, 1e-9)
	assert.InDelta(t, 800*years*model.CO2TonnesPerMWh, d.AvoidedCO2Tonnes, 1e-9)
	assert.InDelta(t, 800*years/model.MWhPerBarrel, d.AvoidedBarrels, 1e-6)
}

func TestDieselDisplacementIdempotent(t *testing.T) {
	baseline := fakeTable(1000, 150_000, 0.14)
	alternative := fakeTable(200, 30_000, 0.11)
	assert.Equal(t, DieselDisplacement(baseline, alternative), DieselDisplacement(baseline, alternative))
}

func TestExpansionViability(t *testing.T) {
	p := impactParams()
	debtService := 570_000.0

	v := ExpansionViability(p, debtService)
	assert.InDelta(t, 2.0*0.90*8760, v.AnchorLoadMWh, 1e-9)
	assert.InDelta(t, v.AnchorLoadMWh*(120-93), v.AnnualMargin, 1e-9)
	assert.InDelta(t, v.AnnualMargin/debtService, v.CoverageRatio, 1e-12)
	assert.InDelta(t, debtService-v.AnnualMargin, v.ResidualOnRatepayers, 1e-9)
	assert.Zero(t, v.Surplus)
}

func TestExpansionViabilityOverCovered(t *testing.T) {
	p := impactParams()
	p.AnchorPowerMW = 5
	p.AnchorTariffPerMWh = 160

	v := ExpansionViability(p, 570_000)
	assert.Greater(t, v.CoverageRatio, 1.0)
	assert.Zero(t, v.ResidualOnRatepayers)
	assert.InDelta(t, v.AnnualMargin-v.DebtService, v.Surplus, 1e-9)
}

func TestExpansionViabilityNoDebt(t *testing.T) {
	v := ExpansionViability(impactParams(), 0)
	assert.Zero(t, v.CoverageRatio, "undefined coverage is reported as zero")
}

func TestHouseholdSavings(t *testing.T) {
	p := impactParams()
	baseline := fakeTable(0, 0, 0.15)
	alternative := fakeTable(0, 0, 0.11)

	impact, err := HouseholdSavings(baseline, alternative, 2027, 2035, p)
	require.NoError(t, err)
	// 9 years × 4¢/kWh gap × 9000 kWh/yr.
	assert.InDelta(t, 9*0.04*9000, impact.CumulativePerHousehold, 1e-9)
	assert.InDelta(t, impact.CumulativePerHousehold*1174, impact.CommunityWide, 1e-6)
}

func TestHouseholdSavingsRangeErrors(t *testing.T) {
	p := impactParams()
	table := fakeTable(0, 0, 0.12)

	_, err := HouseholdSavings(table, table, 2030, 2027, p)
	assert.Error(t, err)

	_, err = HouseholdSavings(table, table, 2020, 2030, p)
	assert.Error(t, err)

	_, err = HouseholdSavings(table, table, 2027, 2040, p)
	assert.Error(t, err)

	_, err = HouseholdSavings(table[:3], table, 2027, 2035, p)
	assert.Error(t, err, "truncated baseline table")
}

func TestAnchorEconomicImpact(t *testing.T) {
	p := impactParams()
	e := AnchorEconomicImpact(p)

	assert.InDelta(t, 12, e.ConstructionJobs, 1e-9)
	assert.InDelta(t, 3, e.OperatingJobs, 1e-9)
	assert.InDelta(t, 3*75_000, e.OperatingPayroll, 1e-9)
	assert.InDelta(t, 12*65_000, e.ConstructionPayroll, 1e-9)
	assert.InDelta(t, (3*75_000+12*65_000)*1.7, e.LocalActivity, 1e-6)
	assert.InDelta(t, p.AnchorLoadMWh()*120, e.AnnualTariffRevenue, 1e-6)
}
