package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ealmiron/gowind/internal/diagram"
	"github.com/ealmiron/gowind/internal/structures"
	"github.com/spf13/cobra"
)

var (
	signSite siteFlags
	signGust gustFlags

	signDepth   float64
	signWidth   float64
	signLower   float64
	signUpper   float64
	signHeights []float64
	signParapet bool

	signShowDiagram bool
	signExportFile  string
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Calculate wind pressures and forces on a free-standing sign",
	Long: `Calculate the design wind pressures per height and the resulting
forces on a solid free-standing sign or building parapet.

The calculation follows CIRSOC 102-2005:
  - Table 5: Velocity pressure exposure coefficient Kz
  - Table 11: Force coefficients Cf for solid signs
  - Section 5.13: Design force F = qz·G·Cf·Af

Examples:
  # An elevated 10x4 m sign with its lower edge 12 m above ground
  gowind sign --depth 0.3 --width 10 --lower 12 --upper 16 -V 45

  # A parapet panel treated at ground level
  gowind sign --depth 0.2 --width 8 --lower 0.5 --upper 2 -V 40 --parapet`,
	Run: runSign,
}

func init() {
	rootCmd.AddCommand(signCmd)

	signCmd.Flags().Float64Var(&signDepth, "depth", 0, "Sign depth, parallel to the wind (m) [required]")
	signCmd.Flags().Float64VarP(&signWidth, "width", "b", 0, "Sign width, normal to the wind (m) [required]")
	signCmd.Flags().Float64Var(&signLower, "lower", 0, "Height of the bottom edge above ground (m)")
	signCmd.Flags().Float64Var(&signUpper, "upper", 0, "Height of the top edge above ground (m) [required]")
	signCmd.Flags().Float64SliceVar(&signHeights, "heights", nil, "Custom evaluation heights (m)")
	signCmd.Flags().BoolVar(&signParapet, "parapet", false, "Treat the sign as a building parapet")

	signSite.register(signCmd)
	signGust.register(signCmd)

	signCmd.MarkFlagRequired("depth")
	signCmd.MarkFlagRequired("width")
	signCmd.MarkFlagRequired("upper")

	signCmd.Flags().BoolVar(&signShowDiagram, "diagram", false, "Show ASCII velocity pressure profile")
	signCmd.Flags().StringVarP(&signExportFile, "output", "o", "", "Export profile to file (png, svg, pdf)")
}

func runSign(cmd *cobra.Command, args []string) {
	site, err := signSite.site()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	result, err := structures.NewSign(structures.SignParams{
		Site:          site,
		Dynamics:      signGust.dynamics(),
		Depth:         signDepth,
		Width:         signWidth,
		LowerHeight:   signLower,
		UpperHeight:   signUpper,
		CustomHeights: signHeights,
		IsParapet:     signParapet,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SIGN WIND FORCES - CIRSOC 102-2005")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (b):\t%.2f m\n", result.Geometry.Width)
	fmt.Fprintf(w, "  Depth:\t%.2f m\n", result.Geometry.Depth)
	fmt.Fprintf(w, "  Net height:\t%.2f m\n", result.Geometry.NetHeight)
	fmt.Fprintf(w, "  Exposed area:\t%.2f m²\n", result.Geometry.Area)
	fmt.Fprintf(w, "  Basic wind speed (V):\t%.1f m/s\n", signSite.speed)
	fmt.Fprintf(w, "  Exposure:\t%s\n", signSite.exposure)
	fmt.Fprintf(w, "  Occupancy category:\t%s\n", signSite.category)
	w.Flush()
	fmt.Println()

	printVelocityTable(result.Velocity)

	fmt.Println("FACTORS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	position := "at ground level"
	if result.Force.AboveGround() {
		position = "above ground level"
	}
	fmt.Fprintf(w, "  Force coefficient (Cf):\t%.3f (%s, %s)\n",
		result.Force.Value(), position, result.Force.Reference())
	fmt.Fprintf(w, "  Gust-effect factor (G):\t%.3f\n", result.Gust.Factor())
	w.Flush()
	fmt.Println()

	fmt.Println("PRESSURES AND FORCES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	values := result.Pressures.Values()
	forces := result.Pressures.PartialForces()
	fmt.Fprintf(w, "  z (m)\tp (N/m²)\tband force (N)\n")
	fmt.Fprintf(w, "  ─────\t────────\t──────────────\n")
	for i, z := range result.Geometry.Heights {
		force := "-"
		if i > 0 {
			force = fmt.Sprintf("%.1f", forces[i-1])
		}
		fmt.Fprintf(w, "  %.2f\t%.1f\t%s\n", z, values[i], force)
	}
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.DrawSummaryBox("TOTAL FORCE", []string{
		fmt.Sprintf("F = %.1f N = %.2f kN", result.Pressures.TotalForce(), result.Pressures.TotalForce()/1000),
	}))

	profile := diagram.ProfileData{
		Heights: result.Velocity.Heights,
		Kz:      result.Velocity.Kz,
		Values:  result.Velocity.Values,
	}
	if signShowDiagram {
		fmt.Println(diagram.DrawASCIIProfile(profile))
	}
	if signExportFile != "" {
		if err := diagram.ExportProfile(profile, signExportFile); err != nil {
			fmt.Printf("Error exporting profile: %v\n", err)
		} else {
			fmt.Printf("Profile exported to: %s\n", signExportFile)
		}
	}
}
