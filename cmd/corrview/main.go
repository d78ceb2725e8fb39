// corrview renders a static asset-correlation matrix as an interactive
// color-coded heatmap in the terminal.
//
// Usage:
//
//	corrview view              - Open the interactive heatmap viewer
//	corrview export            - Render the heatmap to a PNG/JPEG file
//	corrview legend            - Print the color legend to stdout
//	corrview info              - Show dataset summary
//
// Global flags:
//
//	--dataset <path>  - Correlation dataset YAML (default: embedded sample)
//	--config <path>   - Viewer config YAML (default: ~/.corrview/config.yaml)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDataset string
	flagConfig  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "corrview",
	Short: "Correlation heatmap viewer for your terminal",
	Long: `corrview displays a lower-triangular correlation matrix as a
color-coded heatmap, with a cell inspector, a configurable two-color
legend, and raster export.

Available commands:
  view     - Interactive heatmap viewer
  export   - Render the heatmap to PNG or JPEG
  legend   - Print the color legend
  info     - Dataset summary

Examples:
  corrview view
  corrview view --dataset ./correlations.yaml
  corrview export --format jpeg --scale 3
  corrview legend --scheme thermal --steps 8
  corrview info`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDataset, "dataset", "", "Path to correlation dataset YAML")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to viewer config YAML")

	// Add subcommands
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(legendCmd)
	rootCmd.AddCommand(infoCmd)
}
