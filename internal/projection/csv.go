package projection

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/model"
)

// WriteTableCSV writes one scenario's per-year records. This is the primary
// flat-file artifact for "what happened" in a run.
func WriteTableCSV(path string, sc model.Scenario, table model.ScenarioTable) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"scenario",
		"community_load_mwh",
		"anchor_load_mwh",
		"total_demand_mwh",
		"effective_hydro_cap_mwh",
		"hydro_dispatch_mwh",
		"diesel_dispatch_mwh",
		"diesel_unit_cost",
		"hydro_cost",
		"diesel_cost",
		"debt_service",
		"anchor_revenue",
		"total_system_cost",
		"community_cost",
		"retail_rate_kwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range table {
		row := []string{
			strconv.Itoa(r.Year),
			string(sc),
			fmtFloat(r.CommunityLoadMWh),
			fmtFloat(r.AnchorLoadMWh),
			fmtFloat(r.TotalDemandMWh),
			fmtFloat(r.EffectiveHydroCapMWh),
			fmtFloat(r.HydroDispatchMWh),
			fmtFloat(r.DieselDispatchMWh),
			fmtFloat(r.DieselUnitCost),
			fmtFloat(r.HydroCost),
			fmtFloat(r.DieselCost),
			fmtFloat(r.DebtService),
			fmtFloat(r.AnchorRevenue),
			fmtFloat(r.TotalSystemCost),
			fmtFloat(r.CommunityCost),
			fmtFloat(r.RetailRateKWh),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
