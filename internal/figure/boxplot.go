// Package figure draws the comparative boxplot figure: per variable one
// panel of species-grouped, layer-split box plots with the individual sample
// values overlaid, two panels stacked into a single PNG.
package figure

import (
	"fmt"
	"image/color"
	"os"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/coralsci/isoshell/internal/dataset"
)

// Options fixes the styling of the composite figure.
type Options struct {
	Width  vg.Length
	Height vg.Length
	DPI    int

	OuterColor color.Color
	InnerColor color.Color

	TitleSize  vg.Length
	LabelSize  vg.Length
	TickSize   vg.Length
	LegendSize vg.Length
}

// DefaultOptions returns the styling used for the published figure.
func DefaultOptions() Options {
	return Options{
		Width:      7 * vg.Inch,
		Height:     9 * vg.Inch,
		DPI:        300,
		OuterColor: color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		InnerColor: color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
		TitleSize:  vg.Points(13),
		LabelSize:  vg.Points(12),
		TickSize:   vg.Points(10),
		LegendSize: vg.Points(10),
	}
}

// layer placement within a species group: outer boxes left, inner right.
const dodge = 0.19

// deterministic horizontal fan so overlaid dots of a cluster don't stack.
var fan = []float64{0, -0.04, 0.04, -0.02, 0.02}

func layerColor(l dataset.Layer, opt Options) color.Color {
	if l == dataset.LayerOuter {
		return opt.OuterColor
	}
	return opt.InnerColor
}

// panel builds one boxplot panel for a variable. The table must already
// exclude undetermined-species records.
func panel(t *dataset.Table, v dataset.Variable, ylabel string, withLegend bool, opt Options) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = ylabel
	p.Y.Label.TextStyle.Font.Size = opt.LabelSize
	p.X.Tick.Label.Font.Size = opt.TickSize
	p.X.Tick.Label.Font.Style = xfont.StyleItalic
	p.Y.Tick.Label.Font.Size = opt.TickSize

	grid := plotter.NewGrid()
	grid.Vertical.Width = 0
	grid.Horizontal.Color = color.Gray{Y: 0xdd}
	p.Add(grid)

	labels := make([]string, len(dataset.KnownSpeciesOrder))
	for i, sp := range dataset.KnownSpeciesOrder {
		labels[i] = sp.Label()
		for _, layer := range []dataset.Layer{dataset.LayerOuter, dataset.LayerInner} {
			view := t.Species(sp).Layer(layer)
			if view.Len() == 0 {
				continue
			}
			loc := float64(i) - dodge
			if layer == dataset.LayerInner {
				loc = float64(i) + dodge
			}
			box, err := plotter.NewBoxPlot(vg.Points(18), loc, plotter.Values(view.Values(v)))
			if err != nil {
				return nil, fmt.Errorf("box %s/%s: %w", sp, layer, err)
			}
			box.FillColor = layerColor(layer, opt)
			p.Add(box)

			dots := make(plotter.XYs, view.Len())
			for j, y := range view.Values(v) {
				dots[j].X = loc + fan[j%len(fan)]
				dots[j].Y = y
			}
			sc, err := plotter.NewScatter(dots)
			if err != nil {
				return nil, fmt.Errorf("dots %s/%s: %w", sp, layer, err)
			}
			sc.GlyphStyle.Color = color.Gray{Y: 0x30}
			sc.GlyphStyle.Radius = vg.Points(2)
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(sc)
		}
	}
	p.NominalX(labels...)

	if withLegend {
		p.Legend.TextStyle.Font.Size = opt.LegendSize
		p.Legend.Top = false // bottom, no title
		for _, layer := range []dataset.Layer{dataset.LayerOuter, dataset.LayerInner} {
			thumb, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}})
			if err != nil {
				return nil, err
			}
			thumb.GlyphStyle.Color = layerColor(layer, opt)
			thumb.GlyphStyle.Radius = vg.Points(4)
			thumb.GlyphStyle.Shape = draw.BoxGlyph{}
			p.Legend.Add(string(layer)+" layer", thumb)
		}
	}
	return p, nil
}

// SaveComposite renders the temperature panel above the δ13C panel and
// writes the stacked figure as a PNG. Undetermined-species records are
// excluded from both panels.
func SaveComposite(t *dataset.Table, path string, opt Options) error {
	known := t.KnownSpecies()
	top, err := panel(known, dataset.VarTemperature, "Temperature (°C)", false, opt)
	if err != nil {
		return err
	}
	bottom, err := panel(known, dataset.VarD13C, "δ13C (‰ VPDB)", true, opt)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(vgimg.UseWH(opt.Width, opt.Height), vgimg.UseDPI(opt.DPI))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 1,
		PadX: vg.Points(6),
		PadY: vg.Points(10),
	}
	plots := [][]*plot.Plot{{top}, {bottom}}
	canvases := plot.Align(plots, tiles, dc)
	top.Draw(canvases[0][0])
	bottom.Draw(canvases[1][0])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create figure: %w", err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}
	return nil
}
