// Package cmd holds the riskprojection command line
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "riskprojection",
	Short: "Project account growth across risk bands",
	Long: `riskprojection runs the same projection the api serves, offline.

Examples:
  riskprojection compute --initial 1000 --monthly 100 --horizon 10 --rates rates.csv
  riskprojection compute --horizon 2 --rates rates.csv --format json
  riskprojection token --subject ops`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(newComputeCmd())
	rootCmd.AddCommand(newTokenCmd())
}
