package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/config"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/model"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/projection"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "wrangell-rates",
	Short: "Electric rate and cost projections for the Wrangell hydro expansion",
	Long: "Projects community electric rates 2023-2035 under three scenarios: " +
		"status quo, hydro expansion only, and expansion plus an anchor tenant.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (YAML); omit for the Wrangell defaults")
}

// loadParams resolves the parameter set from --config, or the reference
// defaults when no file is given.
func loadParams() (model.Params, error) {
	if cfgPath == "" {
		return config.Defaults().ToModelParams(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return model.Params{}, fmt.Errorf("load config: %w", err)
	}
	return cfg.Params.ToModelParams(), nil
}

func runProjection() (model.Params, *projection.Result, error) {
	p, err := loadParams()
	if err != nil {
		return model.Params{}, nil, err
	}
	res, err := projection.New().Run(p)
	if err != nil {
		return model.Params{}, nil, err
	}
	return p, res, nil
}
