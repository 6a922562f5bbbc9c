package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/analysis"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/model"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print cross-scenario metrics: displacement, viability, household impact",
	RunE:  runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	p, res, err := runProjection()
	if err != nil {
		return err
	}

	d := analysis.DieselDisplacement(res.Table(model.StatusQuo), res.Table(model.ExpansionPlusAnchor))
	fmt.Printf("Diesel displacement (expansion + anchor vs status quo, %d-%d)\n", model.StartYear, model.EndYear)
	fmt.Printf("  avoided diesel:    %.0f MWh (%.0f bbl)\n", d.AvoidedDieselMWh, d.AvoidedBarrels)
	fmt.Printf("  avoided fuel cost: $%.0f\n", d.AvoidedDieselCost)
	fmt.Printf("  avoided CO2:       %.0f tonnes\n\n", d.AvoidedCO2Tonnes)

	v := analysis.ExpansionViability(p, res.DebtService)
	fmt.Printf("Expansion viability\n")
	fmt.Printf("  anchor load:    %.0f MWh/yr\n", v.AnchorLoadMWh)
	fmt.Printf("  anchor margin:  $%.0f/yr\n", v.AnnualMargin)
	fmt.Printf("  debt service:   $%.0f/yr\n", v.DebtService)
	fmt.Printf("  coverage:       %.0f%%\n", v.CoverageRatio*100)
	if v.Surplus > 0 {
		fmt.Printf("  surplus:        $%.0f/yr\n\n", v.Surplus)
	} else {
		fmt.Printf("  on ratepayers:  $%.0f/yr\n\n", v.ResidualOnRatepayers)
	}

	hh, err := analysis.HouseholdSavings(
		res.Table(model.StatusQuo), res.Table(model.ExpansionPlusAnchor),
		p.ExpansionYear, model.EndYear, p)
	if err != nil {
		return err
	}
	fmt.Printf("Household impact (%d-%d, %d households at %.0f kWh/yr)\n",
		hh.FromYear, hh.ToYear, p.Households, p.HouseholdKWhYear)
	fmt.Printf("  cumulative per household: $%.0f\n", hh.CumulativePerHousehold)
	fmt.Printf("  community-wide:           $%.0f\n\n", hh.CommunityWide)

	econ := analysis.AnchorEconomicImpact(p)
	fmt.Printf("Anchor economic impact\n")
	fmt.Printf("  construction jobs: %.0f ($%.0f payroll)\n", econ.ConstructionJobs, econ.ConstructionPayroll)
	fmt.Printf("  operating jobs:    %.1f ($%.0f/yr payroll)\n", econ.OperatingJobs, econ.OperatingPayroll)
	fmt.Printf("  local activity:    $%.0f/yr\n", econ.LocalActivity)
	fmt.Printf("  tariff revenue:    $%.0f/yr\n", econ.AnnualTariffRevenue)
	return nil
}
