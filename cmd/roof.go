package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ealmiron/gowind/internal/geometry"
	"github.com/ealmiron/gowind/internal/structures"
	"github.com/spf13/cobra"
)

var (
	roofSite siteFlags

	roofKind             string
	roofWidth            float64
	roofLength           float64
	roofEave             float64
	roofRidge            float64
	roofBlockageHeight   float64
	roofBlockagePosition string
)

var roofCmd = &cobra.Command{
	Use:   "roof",
	Short: "Calculate net wind pressures on an isolated roof",
	Long: `Calculate the net design wind pressures on an isolated (free-standing)
mono-slope or gable roof.

The calculation follows CIRSOC 102-2005, Annex I:
  - Tabla I.1: Net pressure coefficients for isolated mono-slope roofs
  - Tabla I.2: Net pressure coefficients for isolated gable roofs

The net coefficients depend on the roof slope and on the blockage ratio
under the roof; the gust-effect factor is the fixed 0.85 value.

Examples:
  # An unobstructed 20x30 m gable roof with a 10° slope
  gowind roof --kind gable -b 20 -l 30 --eave 3 --ridge 4.76 -V 45

  # A mono-slope roof blocked at the low eave
  gowind roof --kind mono-slope -b 10 -l 20 --eave 3 --ridge 4 -V 40 \
    --blockage-height 3 --blockage-position "low eave"`,
	Run: runRoof,
}

func init() {
	rootCmd.AddCommand(roofCmd)

	roofCmd.Flags().StringVar(&roofKind, "kind", "", "Roof kind (gable, mono-slope) [required]")
	roofCmd.Flags().Float64VarP(&roofWidth, "width", "b", 0, "Roof span normal to the ridge (m) [required]")
	roofCmd.Flags().Float64VarP(&roofLength, "length", "l", 0, "Roof span parallel to the ridge (m) [required]")
	roofCmd.Flags().Float64Var(&roofEave, "eave", 0, "Eave height above ground (m) [required]")
	roofCmd.Flags().Float64Var(&roofRidge, "ridge", 0, "Ridge height above ground (m) [required]")
	roofCmd.Flags().Float64Var(&roofBlockageHeight, "blockage-height", 0, "Obstruction height under the roof (m)")
	roofCmd.Flags().StringVar(&roofBlockagePosition, "blockage-position", string(geometry.BlockageLowEave), "Blocked eave of a mono-slope roof (low eave, high eave)")

	roofSite.register(roofCmd)

	roofCmd.MarkFlagRequired("kind")
	roofCmd.MarkFlagRequired("width")
	roofCmd.MarkFlagRequired("length")
	roofCmd.MarkFlagRequired("eave")
	roofCmd.MarkFlagRequired("ridge")
}

func runRoof(cmd *cobra.Command, args []string) {
	site, err := roofSite.site()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	result, err := structures.NewIsolatedRoof(structures.IsolatedRoofParams{
		Site:             site,
		Kind:             geometry.RoofKind(roofKind),
		Width:            roofWidth,
		Length:           roofLength,
		EaveHeight:       roofEave,
		RidgeHeight:      roofRidge,
		BlockageHeight:   roofBlockageHeight,
		BlockagePosition: geometry.BlockagePosition(roofBlockagePosition),
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ISOLATED ROOF NET PRESSURES - CIRSOC 102-2005")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Roof kind:\t%s\n", result.Geometry.Kind)
	fmt.Fprintf(w, "  Width (b):\t%.2f m\n", result.Geometry.Width)
	fmt.Fprintf(w, "  Length (l):\t%.2f m\n", result.Geometry.Length)
	fmt.Fprintf(w, "  Slope angle:\t%.2f°\n", result.Geometry.Angle)
	fmt.Fprintf(w, "  Mean roof height:\t%.2f m\n", result.Geometry.MeanHeight)
	fmt.Fprintf(w, "  Blockage ratio:\t%.2f\n", result.Geometry.BlockageRatio())
	fmt.Fprintf(w, "  Basic wind speed (V):\t%.1f m/s\n", roofSite.speed)
	fmt.Fprintf(w, "  Exposure:\t%s\n", roofSite.exposure)
	w.Flush()
	fmt.Println()

	printVelocityTable(result.Velocity)

	fmt.Printf("NET PRESSURES (%s), downward positive:\n", result.Reference)
	fmt.Println("───────────────────────────────────────────────────────────────")
	wr := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printResultLevel(wr, result.Pressures, 1)
	wr.Flush()
	fmt.Println()
}
