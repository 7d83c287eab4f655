// Package cmd - pricelist command
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"duct-cost/internal/config"
)

// pricelistCmd shows the rates pricing will use, after config overrides
var pricelistCmd = &cobra.Command{
	Use:   "pricelist",
	Short: "Show the effective pricelist",
	Long: `Print the material rates and the part-number catalog that the price
command will use, after any overrides from the config file.`,
	Run: runPricelist,
}

func runPricelist(cmd *cobra.Command, args []string) {
	cfg := config.Get()
	pl := cfg.Pricelist()

	fmt.Println("Material rates:")
	fmt.Printf("  %-28s %10s Kč/m2\n", "sheet metal", pl.SheetMetalM2)
	fmt.Printf("  %-28s %10s Kč/ks\n", "flange", pl.Flange)
	fmt.Printf("  %-28s %10s Kč/m2\n", "pipe metal", pl.PipeMetalM2)
	fmt.Printf("  %-28s %10s Kč/m2\n", "pipe fitting metal", pl.PipeFittingMetalM2)
	fmt.Printf("  %-28s %10s Kč/ks\n", "pipe fitting surcharge", pl.PipeFittingPiece)

	if len(cfg.Pricing.Catalog) == 0 {
		fmt.Println("\nNo part-number catalog configured; catalog-priced elements stay unpriced.")
		return
	}

	pns := make([]string, 0, len(cfg.Pricing.Catalog))
	for pn := range cfg.Pricing.Catalog {
		pns = append(pns, pn)
	}
	sort.Strings(pns)

	fmt.Printf("\nPart-number catalog (%d entries):\n", len(pns))
	for _, pn := range pns {
		entry := cfg.Pricing.Catalog[pn]
		fmt.Printf("  %-16s %10.2f Kč/%s\n", pn, entry.Price, entry.Unit)
	}
}
