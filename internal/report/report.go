// Package report renders a plain-text briefing over a finished run. It is a
// consumer of the engine's tables and metrics, never a producer: nothing here
// feeds back into the projection.
package report

import (
	"fmt"
	"strings"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/analysis"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/model"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/projection"
)

// TargetYear is the headline comparison year used throughout the briefing.
const TargetYear = 2030

// Briefing renders the full text report: rate outlook, diesel displacement,
// expansion viability, and community impact.
func Briefing(p model.Params, res *projection.Result) (string, error) {
	var b strings.Builder

	writeRateOutlook(&b, p, res)
	b.WriteString("\n")
	if err := writeDisplacement(&b, res); err != nil {
		return "", err
	}
	b.WriteString("\n")
	writeViability(&b, p, res)
	b.WriteString("\n")
	if err := writeCommunityImpact(&b, p, res); err != nil {
		return "", err
	}

	return b.String(), nil
}

func writeRateOutlook(b *strings.Builder, p model.Params, res *projection.Result) {
	fmt.Fprintf(b, "RATE OUTLOOK (%d)\n", TargetYear)
	for _, sc := range model.Scenarios() {
		rec, _ := res.Table(sc).Record(TargetYear)
		delta := (rec.RetailRateKWh - p.BaseRateKWh) * 100
		fmt.Fprintf(b, "  %-20s $%.4f/kWh (%+.2f cents vs today)\n", sc.Label(), rec.RetailRateKWh, delta)
	}

	a, _ := res.Table(model.StatusQuo).Record(TargetYear)
	c, _ := res.Table(model.ExpansionPlusAnchor).Record(TargetYear)
	dir := "above"
	if c.RetailRateKWh < p.BaseRateKWh {
		dir = "below"
	}
	fmt.Fprintf(b,
		"  Without action, reliance on $%.0f/MWh diesel against $%.0f/MWh hydro pushes rates %+.1f%% by %d. "+
			"With the expansion and anchor, residents pay %.2f cents/kWh, %.2f cents %s today's rate.\n",
		p.DieselBaseUnitCost, p.HydroUnitCost,
		(a.RetailRateKWh-p.BaseRateKWh)/p.BaseRateKWh*100, TargetYear,
		c.RetailRateKWh*100, abs(c.RetailRateKWh-p.BaseRateKWh)*100, dir)
}

func writeDisplacement(b *strings.Builder, res *projection.Result) error {
	d := analysis.DieselDisplacement(res.Table(model.StatusQuo), res.Table(model.ExpansionPlusAnchor))

	endA, ok := res.Table(model.StatusQuo).Record(model.EndYear)
	if !ok {
		return fmt.Errorf("status quo table missing %d", model.EndYear)
	}

	fmt.Fprintf(b, "DIESEL DISPLACEMENT (Expansion + Anchor vs Status Quo, %d-%d)\n", model.StartYear, model.EndYear)
	fmt.Fprintf(b, "  Diesel avoided:      %.0f MWh\n", d.AvoidedDieselMWh)
	fmt.Fprintf(b, "  Fuel cost avoided:   $%.0f\n", d.AvoidedDieselCost)
	fmt.Fprintf(b, "  CO2 avoided:         %.0f tonnes\n", d.AvoidedCO2Tonnes)
	fmt.Fprintf(b, "  Barrels avoided:     %.0f bbl\n", d.AvoidedBarrels)
	fmt.Fprintf(b,
		"  Without the expansion, load growth forces diesel use to %.0f MWh/yr by %d, about %.0f%% of all power.\n",
		endA.DieselDispatchMWh, model.EndYear, endA.DieselDispatchMWh/endA.TotalDemandMWh*100)
	return nil
}

func writeViability(b *strings.Builder, p model.Params, res *projection.Result) {
	v := analysis.ExpansionViability(p, res.DebtService)

	fmt.Fprintf(b, "EXPANSION VIABILITY\n")
	fmt.Fprintf(b, "  Annual debt service: $%.0f\n", v.DebtService)
	fmt.Fprintf(b, "  Anchor margin:       $%.0f/yr\n", v.AnnualMargin)
	fmt.Fprintf(b, "  Coverage:            %.0f%%\n", v.CoverageRatio*100)

	switch {
	case v.CoverageRatio >= 0.90:
		fmt.Fprintf(b,
			"  The anchor's above-cost tariff fully covers the utility's expansion debt share; the surplus flows back as lower rates. The expansion essentially pays for itself.\n")
	case v.CoverageRatio >= 0.60:
		fmt.Fprintf(b,
			"  The anchor covers a substantial share of the debt service. Ratepayers absorb only the remaining $%.0f/yr.\n",
			v.ResidualOnRatepayers)
	default:
		fmt.Fprintf(b,
			"  At this anchor size and tariff, ratepayers still carry most of the capital. Consider a larger anchor load or a higher tariff.\n")
	}
	if p.AnchorTariffPerMWh < p.HydroUnitCost {
		fmt.Fprintf(b, "  WARNING: the anchor tariff is below the hydro wholesale cost; the relationship is not financially viable for the utility.\n")
	}
}

func writeCommunityImpact(b *strings.Builder, p model.Params, res *projection.Result) error {
	impact, err := analysis.HouseholdSavings(
		res.Table(model.StatusQuo), res.Table(model.ExpansionPlusAnchor),
		p.ExpansionYear, model.EndYear, p)
	if err != nil {
		return err
	}
	econ := analysis.AnchorEconomicImpact(p)

	a, _ := res.Table(model.StatusQuo).Record(TargetYear)
	c, _ := res.Table(model.ExpansionPlusAnchor).Record(TargetYear)
	annualSavings := (a.RetailRateKWh - c.RetailRateKWh) * p.HouseholdKWhYear

	fmt.Fprintf(b, "COMMUNITY IMPACT (%d households, %.0f kWh/yr average)\n", p.Households, p.HouseholdKWhYear)
	fmt.Fprintf(b, "  Savings per household by %d:  $%.0f/yr vs status quo\n", TargetYear, annualSavings)
	fmt.Fprintf(b, "  Cumulative savings %d-%d:   $%.0f/household, $%.0f community-wide\n",
		impact.FromYear, impact.ToYear, impact.CumulativePerHousehold, impact.CommunityWide)
	fmt.Fprintf(b, "  Anchor jobs: %.0f construction, %.1f operating; local activity $%.0f/yr; tariff revenue $%.0f/yr\n",
		econ.ConstructionJobs, econ.OperatingJobs, econ.LocalActivity, econ.AnnualTariffRevenue)
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
