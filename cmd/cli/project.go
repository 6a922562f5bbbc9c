package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/model"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/projection"
)

var outDir string

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run the projection and print the retail-rate outlook",
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().StringVarP(&outDir, "out", "o", "", "directory to write per-scenario CSV tables")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	p, res, err := runProjection()
	if err != nil {
		return err
	}

	fmt.Printf("Annual debt service: $%.0f (utility share of $%.0f at %.2f%% over %d years)\n\n",
		res.DebtService, p.CapEx, p.FinancingRate*100, p.BondTermYears)

	fmt.Printf("%-6s", "Year")
	for _, sc := range model.Scenarios() {
		fmt.Printf("  %22s", sc.Label())
	}
	fmt.Println()
	for _, year := range model.Years() {
		fmt.Printf("%-6d", year)
		for _, sc := range model.Scenarios() {
			rec, ok := res.Table(sc).Record(year)
			if !ok {
				return fmt.Errorf("%s table has no record for %d", sc, year)
			}
			fmt.Printf("  %17.4f/kWh", rec.RetailRateKWh)
		}
		fmt.Println()
	}

	if outDir == "" {
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, sc := range model.Scenarios() {
		path := filepath.Join(outDir, fmt.Sprintf("%s.csv", sc))
		if err := projection.WriteTableCSV(path, sc, res.Table(sc)); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}
