package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-corrview/internal/colormap"
	"github.com/vovakirdan/tui-corrview/internal/config"
)

var (
	flagLegendScheme string
	flagLegendSteps  int
)

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Print the color legend",
	Long: `Print the gradient swatches from low (-1) to high (+1) with their
hex values.`,
	Args: cobra.NoArgs,
	Run:  runLegend,
}

func init() {
	legendCmd.Flags().StringVar(&flagLegendScheme, "scheme", "", "Color scheme preset: default, thermal, mono")
	legendCmd.Flags().IntVar(&flagLegendSteps, "steps", 8, "Number of swatches")
}

func runLegend(cmd *cobra.Command, args []string) {
	scheme := colormap.DefaultScheme()

	if flagLegendScheme != "" {
		s, err := config.SchemeForPreset(config.SchemePreset(flagLegendScheme))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		scheme = s
	} else if cfg, err := config.Load(flagConfig); err == nil && cfg.Colors.Scheme().Valid() {
		scheme = cfg.Colors.Scheme()
	}

	swatches, err := colormap.Swatches(scheme, flagLegendSteps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Legend (low -1 to high +1):")
	fmt.Println()
	for i, hex := range swatches {
		v := -1.0 + 2.0*float64(i)/float64(len(swatches)-1)
		block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
		fmt.Printf("  %+.2f  %s  %s\n", v, block, hex)
	}
}
