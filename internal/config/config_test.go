package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	assert.NoError(t, Defaults().ToModelParams().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
params:
  anchor_power_mw: 3.5
  anchor_tariff_per_mwh: 110
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3.5, c.Params.AnchorPowerMW)
	assert.Equal(t, 110.0, c.Params.AnchorTariffPerMWh)
	// Untouched fields keep defaults.
	assert.Equal(t, 40_708.0, c.Params.BaseLoadMWh)
	assert.Equal(t, 25, c.Params.BondTermYears)
}

func TestLoadRespectsExplicitZero(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
params:
  diesel_floor_mwh: 0
  phase2_growth_rate: 0
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, c.Params.DieselFloorMWh)
	assert.Zero(t, c.Params.Phase2GrowthRate)
}

func TestLoadParamsFileOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wrangell.yaml", `
params:
  capex: 25000000
  financing_rate: 0.06
`)
	path := writeFile(t, dir, "config.yaml", `
params_file: wrangell.yaml
params:
  financing_rate: 0.045
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25_000_000.0, c.Params.CapEx, "taken from params_file")
	assert.Equal(t, 0.045, c.Params.FinancingRate, "inline params win")
}

func TestLoadRejectsInvalidParams(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
params:
  financing_rate: 0
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FinancingRate")
}

func TestLoadMissingFiles(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	path := writeFile(t, t.TempDir(), "config.yaml", "params_file: nowhere.yaml\n")
	_, err = Load(path)
	assert.Error(t, err)
}
