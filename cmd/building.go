package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/ealmiron/gowind/internal/cirsoc"
	"github.com/ealmiron/gowind/internal/diagram"
	"github.com/ealmiron/gowind/internal/geometry"
	"github.com/ealmiron/gowind/internal/structures"
	"github.com/spf13/cobra"
)

var (
	buildingSite siteFlags
	buildingGust gustFlags

	buildingWidth        float64
	buildingLength       float64
	buildingElevation    float64
	buildingRoofKind     string
	buildingEave         float64
	buildingRidge        float64
	buildingCentralWidth float64
	buildingEnclosure    string
	buildingParapet      float64
	buildingOverhang     float64
	buildingHeights      []float64

	buildingWallComponents map[string]string
	buildingRoofComponents map[string]string
	buildingOpenings       []float64
	buildingVolume         float64
	buildingReduceGCpi     bool

	buildingShowDiagram  bool
	buildingExportFile   string
	buildingExportKzFile string
)

var buildingCmd = &cobra.Command{
	Use:   "building",
	Short: "Calculate wind pressures on an enclosed building",
	Long: `Calculate the design wind pressures on the walls and roof of a
building, for the main wind-force-resisting system (SPRFV) and for
components and cladding.

The calculation follows CIRSOC 102-2005 using the directional method:
  - Figure 3: External pressure coefficients Cp for the SPRFV
  - Figures 5A, 5B, 7A and 8: GCp for components and cladding
  - Figure 4: Internal pressure coefficients GCpi

Examples:
  # A closed gable-roof warehouse
  gowind building -b 20 -l 40 --roof gable --eave 6 --ridge 8 -V 45

  # With cladding components and openings per surface
  gowind building -b 20 -l 40 --roof gable --eave 6 --ridge 8 -V 45 \
    --wall-component girt=12.5 --roof-component purlin=9.3 \
    --enclosure "partially enclosed" --openings 20,0,5,5,0 --reduce-gcpi`,
	Run: runBuilding,
}

func init() {
	rootCmd.AddCommand(buildingCmd)

	buildingCmd.Flags().Float64VarP(&buildingWidth, "width", "b", 0, "Building span normal to the ridge (m) [required]")
	buildingCmd.Flags().Float64VarP(&buildingLength, "length", "l", 0, "Building span parallel to the ridge (m) [required]")
	buildingCmd.Flags().Float64Var(&buildingElevation, "elevation", 0, "Ground elevation where pressures start (m)")
	buildingCmd.Flags().StringVar(&buildingRoofKind, "roof", "", "Roof kind (flat, gable, mono-slope, mansard) [required]")
	buildingCmd.Flags().Float64Var(&buildingEave, "eave", 0, "Eave height above ground (m) [required]")
	buildingCmd.Flags().Float64Var(&buildingRidge, "ridge", 0, "Ridge height above ground (m)")
	buildingCmd.Flags().Float64Var(&buildingCentralWidth, "central-width", 0, "Central flat span of a mansard roof (m)")
	buildingCmd.Flags().StringVar(&buildingEnclosure, "enclosure", string(cirsoc.EnclosureClosed), "Enclosure (closed, partially enclosed, open)")
	buildingCmd.Flags().Float64Var(&buildingParapet, "parapet", 0, "Parapet height (m)")
	buildingCmd.Flags().Float64Var(&buildingOverhang, "overhang", 0, "Eave overhang length (m)")
	buildingCmd.Flags().Float64SliceVar(&buildingHeights, "heights", nil, "Custom evaluation heights (m)")

	buildingCmd.Flags().StringToStringVar(&buildingWallComponents, "wall-component", nil, "Wall cladding component name=area (m²), repeatable")
	buildingCmd.Flags().StringToStringVar(&buildingRoofComponents, "roof-component", nil, "Roof cladding component name=area (m²), repeatable")
	buildingCmd.Flags().Float64SliceVar(&buildingOpenings, "openings", nil, "Opening areas: front,left,rear,right,roof (m²)")
	buildingCmd.Flags().Float64Var(&buildingVolume, "internal-volume", 0, "Unpartitioned internal volume (m³), 0 computes it")
	buildingCmd.Flags().BoolVar(&buildingReduceGCpi, "reduce-gcpi", false, "Reduce GCpi for large unpartitioned volumes")

	buildingSite.register(buildingCmd)
	buildingGust.register(buildingCmd)

	buildingCmd.MarkFlagRequired("width")
	buildingCmd.MarkFlagRequired("length")
	buildingCmd.MarkFlagRequired("roof")
	buildingCmd.MarkFlagRequired("eave")

	buildingCmd.Flags().BoolVar(&buildingShowDiagram, "diagram", false, "Show ASCII Kz and qz profiles")
	buildingCmd.Flags().StringVarP(&buildingExportFile, "output", "o", "", "Export qz profile to file (png, svg, pdf)")
	buildingCmd.Flags().StringVar(&buildingExportKzFile, "output-kz", "", "Export Kz profile to file (png, svg, pdf)")
}

func runBuilding(cmd *cobra.Command, args []string) {
	params, err := buildingParams()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	result, err := structures.NewBuilding(params)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BUILDING WIND PRESSURES - CIRSOC 102-2005")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printBuildingInput(result)
	printVelocityTable(result.Velocity)

	fmt.Println("FACTORS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	gusts := result.Gusts.Factors()
	fmt.Fprintf(w, "  Gust factor, wind parallel to ridge:\t%.3f\n", gusts["parallel"])
	fmt.Fprintf(w, "  Gust factor, wind normal to ridge:\t%.3f\n", gusts["normal"])
	fmt.Fprintf(w, "  Internal pressure (GCpi):\t±%.3f\n", result.Internal.GCpi())
	fmt.Fprintf(w, "  GCpi reduction factor:\t%.3f\n", result.Internal.ReductionFactor())
	w.Flush()
	fmt.Println()

	printResult("WALL PRESSURES - SPRFV (N/m²)", result.Walls)
	printResult("ROOF PRESSURES - SPRFV (N/m²)", result.Roof)
	if result.Overhang != nil {
		printResult("OVERHANG PRESSURES - SPRFV (N/m²)", result.Overhang)
	}
	if result.WallComponents != nil {
		title := fmt.Sprintf("WALL COMPONENT PRESSURES (N/m²), case %s, a = %.2f m",
			result.WallCase, result.WallDistanceA)
		printResult(title, result.WallComponents)
	}
	if result.RoofComponents != nil {
		title := fmt.Sprintf("ROOF COMPONENT PRESSURES (N/m²), case %s, a = %.2f m",
			result.RoofCase, result.RoofDistanceA)
		printResult(title, result.RoofComponents)
	}

	profile := diagram.ProfileData{
		Heights: result.Velocity.Heights,
		Kz:      result.Velocity.Kz,
		Values:  result.Velocity.Values,
	}
	if buildingShowDiagram {
		fmt.Println(diagram.DrawASCIIExposure(profile))
		fmt.Println(diagram.DrawASCIIProfile(profile))
	}
	if buildingExportFile != "" {
		if err := diagram.ExportProfile(profile, buildingExportFile); err != nil {
			fmt.Printf("Error exporting profile: %v\n", err)
		} else {
			fmt.Printf("Profile exported to: %s\n", buildingExportFile)
		}
	}
	if buildingExportKzFile != "" {
		if err := diagram.ExportExposure(profile, buildingExportKzFile); err != nil {
			fmt.Printf("Error exporting Kz profile: %v\n", err)
		} else {
			fmt.Printf("Kz profile exported to: %s\n", buildingExportKzFile)
		}
	}
}

func buildingParams() (structures.BuildingParams, error) {
	site, err := buildingSite.site()
	if err != nil {
		return structures.BuildingParams{}, err
	}
	enclosure, err := parseEnclosure(buildingEnclosure)
	if err != nil {
		return structures.BuildingParams{}, err
	}
	wallComponents, err := parseComponents(buildingWallComponents)
	if err != nil {
		return structures.BuildingParams{}, err
	}
	roofComponents, err := parseComponents(buildingRoofComponents)
	if err != nil {
		return structures.BuildingParams{}, err
	}
	openings, err := parseOpenings(buildingOpenings)
	if err != nil {
		return structures.BuildingParams{}, err
	}
	return structures.BuildingParams{
		Site:           site,
		Dynamics:       buildingGust.dynamics(),
		Method:         cirsoc.MethodDirectional,
		Enclosure:      enclosure,
		Width:          buildingWidth,
		Length:         buildingLength,
		Elevation:      buildingElevation,
		RoofKind:       geometry.RoofKind(buildingRoofKind),
		EaveHeight:     buildingEave,
		RidgeHeight:    buildingRidge,
		CentralWidth:   buildingCentralWidth,
		Parapet:        buildingParapet,
		Overhang:       buildingOverhang,
		CustomHeights:  buildingHeights,
		WallComponents: wallComponents,
		RoofComponents: roofComponents,
		Openings:       openings,
		InternalVolume: buildingVolume,
		ReduceGCpi:     buildingReduceGCpi,
	}, nil
}

func parseComponents(raw map[string]string) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	components := make(map[string]float64, len(raw))
	for name, value := range raw {
		area, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("component %q: invalid area %q", name, value)
		}
		components[name] = area
	}
	return components, nil
}

func parseOpenings(values []float64) (geometry.Surfaces, error) {
	if values == nil {
		return geometry.Surfaces{}, nil
	}
	if len(values) != 5 {
		return geometry.Surfaces{}, fmt.Errorf(
			"--openings needs 5 values (front,left,rear,right,roof), got %d", len(values),
		)
	}
	return geometry.Surfaces{
		Front: values[0], Left: values[1], Rear: values[2],
		Right: values[3], Roof: values[4],
	}, nil
}

func printBuildingInput(result *structures.BuildingResult) {
	geom := result.Geometry
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (b):\t%.2f m\n", geom.Width)
	fmt.Fprintf(w, "  Length (l):\t%.2f m\n", geom.Length)
	fmt.Fprintf(w, "  Roof kind:\t%s\n", geom.Roof.Kind)
	fmt.Fprintf(w, "  Roof slope:\t%.2f°\n", geom.Roof.Angle)
	fmt.Fprintf(w, "  Eave height:\t%.2f m\n", geom.Roof.EaveHeight)
	fmt.Fprintf(w, "  Mean roof height:\t%.2f m\n", geom.Roof.MeanHeight)
	fmt.Fprintf(w, "  Enclosure:\t%s\n", buildingEnclosure)
	fmt.Fprintf(w, "  Total openings:\t%.2f m²\n", geom.TotalOpenings)
	fmt.Fprintf(w, "  Internal volume:\t%.1f m³\n", geom.InternalVolume)
	fmt.Fprintf(w, "  Basic wind speed (V):\t%.1f m/s\n", buildingSite.speed)
	fmt.Fprintf(w, "  Exposure:\t%s\n", buildingSite.exposure)
	fmt.Fprintf(w, "  Occupancy category:\t%s\n", buildingSite.category)
	w.Flush()
	fmt.Println()
}
