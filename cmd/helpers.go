package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/ealmiron/gowind/internal/cirsoc"
	"github.com/ealmiron/gowind/internal/factors"
	"github.com/ealmiron/gowind/internal/pressure"
	"github.com/ealmiron/gowind/internal/structures"
	"github.com/spf13/cobra"
)

// siteFlags collects the wind climate and topography inputs shared by every
// structure command.
type siteFlags struct {
	speed    float64
	exposure string
	category string

	topography    bool
	terrainShape  string
	hillHeight    float64
	crestDistance float64
	crestOffset   float64
	downwind      bool
}

func (f *siteFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.speed, "speed", "V", 0, "Basic wind speed (m/s) [required]")
	cmd.Flags().StringVar(&f.exposure, "exposure", "C", "Terrain exposure category (A, B, C, D)")
	cmd.Flags().StringVar(&f.category, "category", "II", "Occupancy category (I, II, III, IV)")

	cmd.Flags().BoolVar(&f.topography, "topography", false, "Consider topographic speed-up (Kzt)")
	cmd.Flags().StringVar(&f.terrainShape, "terrain-shape", string(factors.Ridge2D), "Topographic feature (2d ridge, 2d escarpment, 3d hill)")
	cmd.Flags().Float64Var(&f.hillHeight, "hill-height", 0, "Topographic feature height H (m)")
	cmd.Flags().Float64Var(&f.crestDistance, "crest-distance", 0, "Distance upwind of the crest to half height (m)")
	cmd.Flags().Float64Var(&f.crestOffset, "crest-offset", 0, "Distance from the crest to the structure (m)")
	cmd.Flags().BoolVar(&f.downwind, "downwind", false, "Structure on the leeward side of the crest")

	cmd.MarkFlagRequired("speed")
}

func (f *siteFlags) site() (structures.Site, error) {
	exposure, err := parseExposure(f.exposure)
	if err != nil {
		return structures.Site{}, err
	}
	category, err := parseCategory(f.category)
	if err != nil {
		return structures.Site{}, err
	}
	direction := factors.Windward
	if f.downwind {
		direction = factors.Leeward
	}
	return structures.Site{
		Speed:    f.speed,
		Exposure: exposure,
		Category: category,
		Topography: structures.TopographyParams{
			Consider:      f.topography,
			Shape:         factors.TerrainShape(f.terrainShape),
			HillHeight:    f.hillHeight,
			CrestDistance: f.crestDistance,
			Distance:      f.crestOffset,
			Direction:     direction,
		},
	}, nil
}

// gustFlags collects the gust-effect inputs shared by the building and sign
// commands.
type gustFlags struct {
	simplified bool
	flexible   bool
	frequency  float64
	damping    float64
}

func (f *gustFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.simplified, "gust-simplified", true, "Use the fixed gust factor G = 0.85")
	cmd.Flags().BoolVar(&f.flexible, "flexible", false, "Treat the structure as flexible")
	cmd.Flags().Float64Var(&f.frequency, "frequency", 0, "Natural frequency (Hz), flexible structures only")
	cmd.Flags().Float64Var(&f.damping, "damping", 0.01, "Critical damping ratio, flexible structures only")
}

func (f *gustFlags) dynamics() structures.DynamicParams {
	flexibility := factors.Rigid
	if f.flexible {
		flexibility = factors.Flexible
	}
	return structures.DynamicParams{
		Simplified:  f.simplified,
		Flexibility: flexibility,
		Frequency:   f.frequency,
		Damping:     f.damping,
	}
}

func parseExposure(s string) (cirsoc.Exposure, error) {
	switch exp := cirsoc.Exposure(strings.ToUpper(s)); exp {
	case cirsoc.ExposureA, cirsoc.ExposureB, cirsoc.ExposureC, cirsoc.ExposureD:
		return exp, nil
	default:
		return "", fmt.Errorf("unknown exposure category %q (use A, B, C or D)", s)
	}
}

func parseCategory(s string) (cirsoc.Category, error) {
	switch cat := cirsoc.Category(strings.ToUpper(s)); cat {
	case cirsoc.CategoryI, cirsoc.CategoryII, cirsoc.CategoryIII, cirsoc.CategoryIV:
		return cat, nil
	default:
		return "", fmt.Errorf("unknown occupancy category %q (use I, II, III or IV)", s)
	}
}

func parseEnclosure(s string) (cirsoc.Enclosure, error) {
	switch enc := cirsoc.Enclosure(strings.ToLower(s)); enc {
	case cirsoc.EnclosureClosed, cirsoc.EnclosurePartial, cirsoc.EnclosureOpen:
		return enc, nil
	default:
		return "", fmt.Errorf("unknown enclosure %q (use closed, partially enclosed or open)", s)
	}
}

// printVelocityTable prints the per-height profile of Kz, Kzt and qz.
func printVelocityTable(v *pressure.VelocityPressure) {
	fmt.Println("VELOCITY PRESSURES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  z (m)\tKz\tKzt\tqz (N/m²)\n")
	fmt.Fprintf(w, "  ─────\t──\t───\t─────────\n")
	for i, z := range v.Heights {
		fmt.Fprintf(w, "  %.2f\t%.3f\t%.3f\t%.1f\n", z, v.Kz[i], v.Kzt[i], v.Values[i])
	}
	w.Flush()
	fmt.Println()
}

// Canonical ordering for the pressure tree keys, so output is stable and
// reads in the order of the regulation figures.
var keyOrder = map[string]int{}

func init() {
	ordered := []string{
		"parallel", "normal",
		"windward", "side", "leeward",
		"case a", "case b",
		"0 to h/2", "h/2 to h", "h to 2h", "> 2h",
		"global", "local", "max", "min",
		"1", "2", "2'", "3", "3'", "4", "5", "all",
		"a", "b", "c", "d",
	}
	for i, key := range ordered {
		keyOrder[key] = i
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iOK := keyOrder[keys[i]]
		rj, jOK := keyOrder[keys[j]]
		if iOK && jOK {
			return ri < rj
		}
		if iOK != jOK {
			return iOK
		}
		return keys[i] < keys[j]
	})
	return keys
}

// printResult prints a pressure tree section with one indented line per zone.
func printResult(title string, r pressure.Result) {
	fmt.Printf("%s:\n", title)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printResultLevel(w, r, 1)
	w.Flush()
	fmt.Println()
}

func printResultLevel(w *tabwriter.Writer, r pressure.Result, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, key := range sortedKeys(r) {
		node := r[key]
		if node.IsLeaf() {
			if node.Neg == nil {
				fmt.Fprintf(w, "%s%s:\t%s\n", indent, key, formatSeries(node.Pos))
			} else {
				fmt.Fprintf(w, "%s%s:\t+GCpi %s\t-GCpi %s\n",
					indent, key, formatSeries(node.Pos), formatSeries(node.Neg))
			}
			continue
		}
		fmt.Fprintf(w, "%s%s:\n", indent, key)
		printResultLevel(w, node.Children, depth+1)
	}
}

// formatSeries renders pressures in N/m²: a single value, or the per-height
// list for windward walls and signs.
func formatSeries(values []float64) string {
	if len(values) == 1 {
		return fmt.Sprintf("%.1f", values[0])
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.1f", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
