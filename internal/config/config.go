package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the parameter set from a separate YAML file first.
	// Inline params override whatever the file provides.
	ParamsFile string       `yaml:"params_file" json:"params_file"`
	Params     ParamsConfig `yaml:"params" json:"params"`
}

// ParamsConfig carries the parameter set with its wire names. Fields absent
// from a file keep their defaults; explicit zeros are respected.
type ParamsConfig struct {
	BaseLoadMWh      float64 `yaml:"base_load_mwh" json:"base_load_mwh"`
	Phase1GrowthRate float64 `yaml:"phase1_growth_rate" json:"phase1_growth_rate"`
	Phase1EndYear    int     `yaml:"phase1_end_year" json:"phase1_end_year"`
	Phase2GrowthRate float64 `yaml:"phase2_growth_rate" json:"phase2_growth_rate"`

	HydroCapMWh       float64 `yaml:"hydro_cap_mwh" json:"hydro_cap_mwh"`
	HydroUnitCost     float64 `yaml:"hydro_unit_cost" json:"hydro_unit_cost"`
	ExpansionYear     int     `yaml:"expansion_year" json:"expansion_year"`
	ExpansionAddedMWh float64 `yaml:"expansion_added_mwh" json:"expansion_added_mwh"`

	DieselFloorMWh       float64 `yaml:"diesel_floor_mwh" json:"diesel_floor_mwh"`
	DieselBaseUnitCost   float64 `yaml:"diesel_base_unit_cost" json:"diesel_base_unit_cost"`
	DieselEscalationRate float64 `yaml:"diesel_escalation_rate" json:"diesel_escalation_rate"`

	FixedCostPerYear float64 `yaml:"fixed_cost_per_year" json:"fixed_cost_per_year"`

	CapEx            float64 `yaml:"capex" json:"capex"`
	UtilityDebtShare float64 `yaml:"utility_debt_share" json:"utility_debt_share"`
	FinancingRate    float64 `yaml:"financing_rate" json:"financing_rate"`
	BondTermYears    int     `yaml:"bond_term_years" json:"bond_term_years"`

	AnchorPowerMW        float64 `yaml:"anchor_power_mw" json:"anchor_power_mw"`
	AnchorCapacityFactor float64 `yaml:"anchor_capacity_factor" json:"anchor_capacity_factor"`
	AnchorTariffPerMWh   float64 `yaml:"anchor_tariff_per_mwh" json:"anchor_tariff_per_mwh"`

	BaseRateKWh float64 `yaml:"base_rate_kwh" json:"base_rate_kwh"`

	Households         int     `yaml:"households" json:"households"`
	HouseholdKWhYear   float64 `yaml:"household_kwh_year" json:"household_kwh_year"`
	EconomicMultiplier float64 `yaml:"economic_multiplier" json:"economic_multiplier"`
	JobsPerMW          float64 `yaml:"jobs_per_mw" json:"jobs_per_mw"`
}

// Defaults is the Wrangell reference case: 2023 EIA-861 actuals plus the
// SEAPA third-turbine and anchor assumptions. The base rate is the observed
// 2023 retail rate, an input by design, never back-calculated.
func Defaults() ParamsConfig {
	return ParamsConfig{
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

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := &Config{Params: Defaults()}

	// Resolve params_file first so the inline params section overlays it.
	var probe struct {
		ParamsFile string `yaml:"params_file"`
	}
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	if probe.ParamsFile != "" {
		paramsPath := probe.ParamsFile
		if !filepath.IsAbs(paramsPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), paramsPath)
			if _, err := os.Stat(cand); err == nil {
				paramsPath = cand
			}
		}
		fileRaw, err := os.ReadFile(paramsPath)
		if err != nil {
			return nil, fmt.Errorf("params_file %s: %w", probe.ParamsFile, err)
		}
		if err := yaml.Unmarshal(fileRaw, c); err != nil {
			return nil, fmt.Errorf("params_file %s: %w", probe.ParamsFile, err)
		}
	}

	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	if err := c.Params.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("parameter set invalid: %w", err)
	}
	return nil
}

func (p ParamsConfig) ToModelParams() model.Params {
	return model.Params{
		BaseLoadMWh:          p.BaseLoadMWh,
		Phase1GrowthRate:     p.Phase1GrowthRate,
		Phase1EndYear:        p.Phase1EndYear,
		Phase2GrowthRate:     p.Phase2GrowthRate,
		HydroCapMWh:          p.HydroCapMWh,
		HydroUnitCost:        p.HydroUnitCost,
		ExpansionYear:        p.ExpansionYear,
		ExpansionAddedMWh:    p.ExpansionAddedMWh,
		DieselFloorMWh:       p.DieselFloorMWh,
		DieselBaseUnitCost:   p.DieselBaseUnitCost,
		DieselEscalationRate: p.DieselEscalationRate,
		FixedCostPerYear:     p.FixedCostPerYear,
		CapEx:                p.CapEx,
		UtilityDebtShare:     p.UtilityDebtShare,
		FinancingRate:        p.FinancingRate,
		BondTermYears:        p.BondTermYears,
		AnchorPowerMW:        p.AnchorPowerMW,
		AnchorCapacityFactor: p.AnchorCapacityFactor,
		AnchorTariffPerMWh:   p.AnchorTariffPerMWh,
		BaseRateKWh:          p.BaseRateKWh,
		Households:           p.Households,
		HouseholdKWhYear:     p.HouseholdKWhYear,
		EconomicMultiplier:   p.EconomicMultiplier,
		JobsPerMW:            p.JobsPerMW,
	}
}
