package cmd

import (
	"fmt"
	"os"

	"github.com/ealmiron/gowind/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gowind",
	Short: "Wind Load Calculation Tool",
	Long: `gowind - Go Wind Pressure Calculator

A CLI tool for the calculation of design wind pressures
based on the Argentine wind loading code CIRSOC 102-2005.

This tool helps structural engineers perform:
  - Velocity pressure profiles (exposure coefficient Kz)
  - Gust-effect factors for rigid and flexible structures
  - Topographic speed-up factors over hills and escarpments
  - Building pressures for the SPRFV and components and cladding
  - Net pressures on isolated roofs
  - Forces on free-standing signs and parapets

All calculations follow CIRSOC 102-2005 provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gowind v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Wind Pressure Calculator                             ║")
		fmt.Printf("  ║   %s ©  %s                                   ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the calculation of design wind pressures")
		fmt.Println("  based on the Argentine wind loading code CIRSOC 102-2005.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Building pressures for the SPRFV (directional method)")
		fmt.Println("    • Components and cladding pressures")
		fmt.Println("    • Net pressures on isolated mono-slope and gable roofs")
		fmt.Println("    • Forces on free-standing signs and building parapets")
		fmt.Println()
		fmt.Println("  Use 'gowind --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
