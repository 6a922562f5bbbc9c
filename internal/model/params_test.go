package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() Params {
	return Params{
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

func TestValidateAcceptsReferenceCase(t *testing.T) {
	require.NoError(t, validParams().Validate())
}

func TestValidateRejectsOutOfDomain(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Params)
		wantErr string
	}{
		"zero base load":          {func(p *Params) { p.BaseLoadMWh = 0 }, "BaseLoadMWh"},
		"growth below -100%":      {func(p *Params) { p.Phase1GrowthRate = -1 }, "Phase1GrowthRate"},
		"phase1 end before range": {func(p *Params) { p.Phase1EndYear = 2019 }, "Phase1EndYear"},
		"phase1 end after range":  {func(p *Params) { p.Phase1EndYear = 2040 }, "Phase1EndYear"},
		"zero hydro cap":          {func(p *Params) { p.HydroCapMWh = 0 }, "HydroCapMWh"},
		"free hydro":              {func(p *Params) { p.HydroUnitCost = 0 }, "HydroUnitCost"},
		"expansion out of range":  {func(p *Params) { p.ExpansionYear = 2036 }, "ExpansionYear"},
		"negative expansion":      {func(p *Params) { p.ExpansionAddedMWh = -1 }, "ExpansionAddedMWh"},
		"negative diesel floor":   {func(p *Params) { p.DieselFloorMWh = -1 }, "DieselFloorMWh"},
		"free diesel":             {func(p *Params) { p.DieselBaseUnitCost = 0 }, "DieselBaseUnitCost"},
		"negative fixed cost":     {func(p *Params) { p.FixedCostPerYear = -1 }, "FixedCostPerYear"},
		"zero capex":              {func(p *Params) { p.CapEx = 0 }, "CapEx"},
		"debt share over 1":       {func(p *Params) { p.UtilityDebtShare = 1.5 }, "UtilityDebtShare"},
		"zero debt share":         {func(p *Params) { p.UtilityDebtShare = 0 }, "UtilityDebtShare"},
		"zero financing rate":     {func(p *Params) { p.FinancingRate = 0 }, "FinancingRate"},
		"zero bond term":          {func(p *Params) { p.BondTermYears = 0 }, "BondTermYears"},
		"negative anchor":         {func(p *Params) { p.AnchorPowerMW = -0.5 }, "AnchorPowerMW"},
		"capacity factor over 1":  {func(p *Params) { p.AnchorCapacityFactor = 1.01 }, "AnchorCapacityFactor"},
		"zero capacity factor":    {func(p *Params) { p.AnchorCapacityFactor = 0 }, "AnchorCapacityFactor"},
		"negative tariff":         {func(p *Params) { p.AnchorTariffPerMWh = -1 }, "AnchorTariffPerMWh"},
		"zero base rate":          {func(p *Params) { p.BaseRateKWh = 0 }, "BaseRateKWh"},
		"negative households":     {func(p *Params) { p.Households = -1 }, "Households"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateAllowsZeroAnchor(t *testing.T) {
	p := validParams()
	p.AnchorPowerMW = 0
	require.NoError(t, p.Validate())
	assert.Zero(t, p.AnchorLoadMWh())
}

func TestAnchorLoadMWh(t *testing.T) {
	p := validParams()
	assert.InDelta(t, 2.0*0.90*8760, p.AnchorLoadMWh(), 1e-9)
}

func TestYearsCoverAnalysisRange(t *testing.T) {
	years := Years()
	require.Len(t, years, 13)
	assert.Equal(t, StartYear, years[0])
	assert.Equal(t, EndYear, years[len(years)-1])
	for i := 1; i < len(years); i++ {
		assert.Equal(t, years[i-1]+1, years[i])
	}
}
