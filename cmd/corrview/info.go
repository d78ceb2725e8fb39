package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-corrview/internal/dataset"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show dataset summary",
	Long:  `Shows the period, assets, and value range of the loaded dataset.`,
	Args:  cobra.NoArgs,
	Run:   runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	ds, err := dataset.Load(flagDataset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := ds.Summarize()

	fmt.Printf("Period:  %s\n", s.Period)
	fmt.Printf("Assets:  %d\n", s.Assets)
	fmt.Printf("Cells:   %d (lower triangle)\n", s.Cells)
	fmt.Printf("Range:   %+.2f to %+.2f\n", s.Min, s.Max)
	fmt.Println()

	fmt.Println("Assets:")
	for i, a := range ds.Assets {
		fmt.Printf("  %2d  %s\n", i, a)
	}
	fmt.Println()
	fmt.Println("Run 'corrview view' to open the heatmap.")
}
