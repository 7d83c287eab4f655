// Package cmd provides the CLI commands for duct-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"duct-cost/internal/config"
	"duct-cost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "duct-cost",
	Short: "Price ventilation ductwork from a CAD export",
	Long: `duct-cost reads a ductwork bill of materials exported from CAD,
classifies each line by element shape, computes sheet-metal and
insulation areas and prices everything against a pricelist. The result
is a print-ready summary workbook for the supply department.

Examples:
  duct-cost price vykresy/hala-b.xlsx
  duct-cost price --output souhrn.xlsx export.csv
  duct-cost pricelist`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.duct-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(pricelistCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("duct-cost version 0.1.0")
	},
}
