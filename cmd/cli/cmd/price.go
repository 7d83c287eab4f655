// Package cmd - price command
package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"duct-cost/adapters/export"
	"duct-cost/adapters/report"
	"duct-cost/core/engine"
	"duct-cost/core/types"
	"duct-cost/internal/config"
	"duct-cost/internal/logging"
)

var (
	outputPath string
	showIssues bool
)

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price <export>",
	Short: "Price a ductwork export and write the summary workbook",
	Long: `Read a CAD ductwork export (.xlsx or .csv), price every element and
write the summary workbook next to the input.

Examples:
  duct-cost price vykresy/hala-b.xlsx
  duct-cost price --output souhrn.xlsx export.csv
  duct-cost price --issues export.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output workbook path (default <export>-souhrn.xlsx)")
	priceCmd.Flags().BoolVar(&showIssues, "issues", false, "list every element that needs manual review")
}

func runPrice(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	startTime := time.Now()

	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("export does not exist: %s", path)
	}

	logging.Info("Starting ductwork pricing")

	rows, header, err := export.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}
	if len(rows) == 0 {
		fmt.Println("No element rows found in the export.")
		return nil
	}
	fmt.Printf("Found %d element rows\n", len(rows))

	cfg := config.Get()
	eng := engine.New(cfg.Pricelist(), engine.WithWorkers(cfg.Workers))
	elements, err := eng.Process(ctx, rows)
	if err != nil {
		return fmt.Errorf("failed to price export: %w", err)
	}

	records := make([]types.Record, len(elements))
	total := 0.0
	unpriced := 0
	flagged := 0
	for i, e := range elements {
		records[i] = e.Record()
		if math.IsNaN(records[i].Price) {
			unpriced++
		} else {
			total += records[i].Price
		}
		if len(e.Issues) > 0 {
			flagged++
			if showIssues {
				fmt.Printf("  %s %s (%s): %s\n",
					records[i].Position, records[i].Name, records[i].Spec, records[i].Issues)
			}
		}
	}

	out := outputPath
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + "-souhrn.xlsx"
	}
	if err := writeReport(out, header, records); err != nil {
		return err
	}

	fmt.Printf("\nTotal priced: %.2f Kč (%d of %d elements)\n",
		total, len(records)-unpriced, len(records))
	if flagged > 0 {
		fmt.Printf("%d elements need manual review", flagged)
		if !showIssues {
			fmt.Print(" (rerun with --issues for details)")
		}
		fmt.Println()
	}
	fmt.Printf("Summary written to %s in %s\n", out, time.Since(startTime).Round(time.Millisecond))
	return nil
}

func writeReport(path string, header export.Header, records []types.Record) error {
	cfg := config.Get()
	pageHeader := cfg.Report.PageHeader
	if pageHeader == "" {
		pageHeader = header.Order
	}

	s, err := report.NewSummarizer(header,
		report.WithPageHeader(pageHeader),
		report.WithAuthor(cfg.Report.Author),
	)
	if err != nil {
		return fmt.Errorf("failed to create summary workbook: %w", err)
	}
	defer s.Close()

	if err := s.WriteShoppingList(records); err != nil {
		return fmt.Errorf("failed to write shopping list: %w", err)
	}
	if err := s.WriteInventory(records); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	if err := s.Save(path); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}
	return nil
}
