package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportProfile exports the qz profile to an image file. The format follows
// the file extension (.png, .svg, .pdf); anything else falls back to PNG.
func ExportProfile(data ProfileData, filename string) error {
	p := plot.New()
	p.Title.Text = "Velocity Pressure Profile"
	p.X.Label.Text = "qz (N/m²)"
	p.Y.Label.Text = "Height (m)"

	pts := make(plotter.XYs, len(data.Heights))
	for i := range data.Heights {
		pts[i] = plotter.XY{X: data.Values[i], Y: data.Heights[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	points, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	points.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	points.GlyphStyle.Radius = vg.Points(3)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(points)

	return savePlot(p, filename, 6*vg.Inch, 8*vg.Inch)
}

// ExportExposure exports the Kz profile to an image file.
func ExportExposure(data ProfileData, filename string) error {
	p := plot.New()
	p.Title.Text = "Exposure Coefficient Profile"
	p.X.Label.Text = "Kz"
	p.Y.Label.Text = "Height (m)"

	pts := make(plotter.XYs, len(data.Heights))
	for i := range data.Heights {
		pts[i] = plotter.XY{X: data.Kz[i], Y: data.Heights[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(line)

	return savePlot(p, filename, 6*vg.Inch, 8*vg.Inch)
}

func savePlot(p *plot.Plot, filename string, width, height vg.Length) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
