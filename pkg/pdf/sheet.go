// Package pdf renders a conversion onto a printable A4 sheet: the track in
// both raw and optimized form over a reference grid, the elevation profile,
// and the run statistics.
package pdf

import (
	"fmt"
	"io"
	"os"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
	"github.com/jkoick/gpx-to-svg/pkg/geo"
	"github.com/jkoick/gpx-to-svg/pkg/svg"

	"github.com/jung-kurt/gofpdf"
)

var (
	directRGB    = []int{0xff, 0x6b, 0x6b}
	optimizedRGB = []int{0x4e, 0xcd, 0xc4}
	gridRGB      = []int{0xe0, 0xe0, 0xe0}
	labelRGB     = []int{0x2c, 0x3e, 0x50}
)

// sheetGrid maps canvas coordinates onto a rectangle of the pdf page.
// Canvas y already grows downward, like pdf space, so no axis flip here.
type sheetGrid struct {
	*gofpdf.Fpdf

	offsetU, offsetV float64 // top-left corner in pdf mm
	w, h             float64
	maxX, maxY       float64 // canvas extent mapped onto w x h
}

func (g sheetGrid) uv(p datastructure.PlanarPoint) (float64, float64) {
	return g.offsetU + (p.X/g.maxX)*g.w, g.offsetV + (p.Y/g.maxY)*g.h
}

func (g sheetGrid) moveTo(p datastructure.PlanarPoint) {
	u, v := g.uv(p)
	g.Fpdf.MoveTo(u, v)
}

func (g sheetGrid) lineTo(p datastructure.PlanarPoint) {
	u, v := g.uv(p)
	g.Fpdf.LineTo(u, v)
}

func (g sheetGrid) curveTo(control, end datastructure.PlanarPoint) {
	cu, cv := g.uv(control)
	eu, ev := g.uv(end)
	g.Fpdf.CurveTo(cu, cv, eu, ev)
}

func (g sheetGrid) drawGridlines(step float64) {
	g.SetLineWidth(0.03)
	g.SetDrawColor(gridRGB[0], gridRGB[1], gridRGB[2])
	for x := 0.0; x <= g.maxX; x += step {
		g.moveTo(datastructure.NewPlanarPoint(x, 0))
		g.lineTo(datastructure.NewPlanarPoint(x, g.maxY))
	}
	for y := 0.0; y <= g.maxY; y += step {
		g.moveTo(datastructure.NewPlanarPoint(0, y))
		g.lineTo(datastructure.NewPlanarPoint(g.maxX, y))
	}
	g.DrawPath("D")
}

// drawPath replays a command list. Smooth commands carry their resolved
// control point, so both quadratic forms replay as one CurveTo.
func (g sheetGrid) drawPath(path datastructure.Path, rgb []int, width float64) {
	if path.IsEmpty() {
		return
	}

	g.SetLineWidth(width)
	g.SetDrawColor(rgb[0], rgb[1], rgb[2])
	for _, cmd := range path {
		switch cmd.Type {
		case datastructure.MoveTo:
			g.moveTo(cmd.End)
		case datastructure.LineTo:
			g.lineTo(cmd.End)
		case datastructure.QuadraticTo, datastructure.SmoothQuadraticTo:
			g.curveTo(cmd.Control, cmd.End)
		}
	}
	g.DrawPath("D")
}

// WriteTrackSheet renders the conversion as a single page A4 landscape pdf.
func WriteTrackSheet(output io.Writer, conv *datastructure.TrackConversion) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(labelRGB[0], labelRGB[1], labelRGB[2])

	pdf.MoveTo(15, 10)
	pdf.Cell(160, 8, conv.Name)
	pdf.SetFont("Arial", "", 10)

	trackGrid := sheetGrid{
		Fpdf:    pdf,
		offsetU: 15, offsetV: 25,
		w: 160, h: 160,
		maxX: geo.CanvasSize, maxY: geo.CanvasSize,
	}
	trackGrid.drawGridlines(100)
	trackGrid.drawPath(conv.Direct, directRGB, 0.4)
	trackGrid.drawPath(conv.Optimized, optimizedRGB, 0.4)

	legendY := 190.0
	pdf.SetDrawColor(directRGB[0], directRGB[1], directRGB[2])
	pdf.SetLineWidth(0.8)
	pdf.Line(15, legendY, 23, legendY)
	pdf.MoveTo(25, legendY-2.5)
	pdf.Cell(40, 5, fmt.Sprintf("raw (%d points)", conv.Stats.PointCount))

	pdf.SetDrawColor(optimizedRGB[0], optimizedRGB[1], optimizedRGB[2])
	pdf.Line(70, legendY, 78, legendY)
	pdf.MoveTo(80, legendY-2.5)
	pdf.Cell(60, 5, fmt.Sprintf("optimized (%d points)", conv.Stats.SimplifiedCount))

	statsX := 185.0
	pdf.SetFont("Arial", "B", 11)
	pdf.MoveTo(statsX, 25)
	pdf.Cell(90, 6, "Statistics")
	pdf.SetFont("Arial", "", 10)

	lines := []string{
		fmt.Sprintf("Points: %d", conv.Stats.PointCount),
		fmt.Sprintf("Simplified: %d", conv.Stats.SimplifiedCount),
		fmt.Sprintf("Compression: %.2f%%", conv.Stats.CompressionPct),
		fmt.Sprintf("Distance: %.2f km", conv.Stats.DistanceKm),
	}
	if conv.Stats.HasElevation {
		lines = append(lines,
			fmt.Sprintf("Elevation: %.0f m to %.0f m", conv.Stats.MinEle, conv.Stats.MaxEle))
	}
	for i, line := range lines {
		pdf.MoveTo(statsX, 33+float64(i)*6)
		pdf.Cell(90, 5, line)
	}

	if !conv.Elevation.IsEmpty() {
		eleGrid := sheetGrid{
			Fpdf:    pdf,
			offsetU: statsX, offsetV: 80,
			w: 95, h: 40,
			maxX: svg.ChartWidth, maxY: svg.ChartHeight,
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.MoveTo(statsX, 70)
		pdf.Cell(90, 6, "Elevation Profile")
		pdf.SetFont("Arial", "", 10)

		eleGrid.drawGridlines(250)
		eleGrid.drawPath(conv.Elevation, labelRGB, 0.3)
	}

	return pdf.Output(output)
}

// SaveTrackSheet writes the sheet to path.
func SaveTrackSheet(path string, conv *datastructure.TrackConversion) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating pdf %s: %w", path, err)
	}

	if err := WriteTrackSheet(f, conv); err != nil {
		f.Close()
		return fmt.Errorf("error writing pdf %s: %w", path, err)
	}
	return f.Close()
}
