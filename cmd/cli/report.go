package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the plain-text briefing",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	p, res, err := runProjection()
	if err != nil {
		return err
	}
	text, err := report.Briefing(p, res)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
