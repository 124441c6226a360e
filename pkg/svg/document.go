package svg

import (
	"bytes"
	"fmt"
	"html"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
	"github.com/jkoick/gpx-to-svg/pkg/geo"
)

const (
	trackPathClass     = "track-path"
	optimizedPathClass = "track-path-optimized"

	elevationDocHeight = 400.0

	xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
)

// TrackDocument wraps rendered path data into a standalone svg document. Both
// css classes ship in every document, the optimized flag only selects which
// one the path references.
func TrackDocument(pathData, title string, optimized bool) string {
	class := trackPathClass
	if optimized {
		class = optimizedPathClass
	}

	var svg bytes.Buffer
	svg.WriteString(xmlHeader)
	fmt.Fprintf(&svg, `<svg width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" xmlns="http://www.w3.org/2000/svg">`+"\n",
		geo.CanvasSize, geo.CanvasSize, geo.CanvasSize, geo.CanvasSize)
	fmt.Fprintf(&svg, "  <title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(&svg, `  <rect width="%.0f" height="%.0f" fill="white"/>`+"\n", geo.CanvasSize, geo.CanvasSize)
	svg.WriteString(`  <style>
    .track-path {
      fill: none;
      stroke: #FF6B6B;
      stroke-width: 2;
      stroke-linecap: round;
      stroke-linejoin: round;
    }
    .track-path-optimized {
      fill: none;
      stroke: #4ECDC4;
      stroke-width: 1.5;
      stroke-linecap: round;
      stroke-linejoin: round;
    }
  </style>
`)
	fmt.Fprintf(&svg, `  <path d="%s" class="%s"/>`+"\n", pathData, class)
	svg.WriteString("</svg>\n")
	return svg.String()
}

// ElevationDocument builds the standalone elevation chart document: the
// gradient filled area below the profile, the profile line, three horizontal
// grid lines and the elevation extremes as labels.
func ElevationDocument(profile datastructure.Path, stops []datastructure.GradientStop, stats ElevationStats) string {
	pathData := profile.String()

	var svg bytes.Buffer
	svg.WriteString(xmlHeader)
	fmt.Fprintf(&svg, `<svg width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" xmlns="http://www.w3.org/2000/svg">`+"\n",
		ChartWidth, elevationDocHeight, ChartWidth, elevationDocHeight)
	svg.WriteString("  <title>Elevation Profile</title>\n")
	svg.WriteString("  <defs>\n")
	svg.WriteString(`    <linearGradient id="elevationGradient" x1="0%" y1="0%" x2="100%" y2="0%">` + "\n")
	for _, s := range stops {
		fmt.Fprintf(&svg, `      <stop offset="%g%%" style="stop-color:%s;stop-opacity:0.8"/>`+"\n", s.Offset, s.Color())
	}
	svg.WriteString("    </linearGradient>\n")
	svg.WriteString("  </defs>\n")
	fmt.Fprintf(&svg, `  <rect width="%.0f" height="%.0f" fill="#f8f9fa"/>`+"\n", ChartWidth, elevationDocHeight)
	for _, y := range []int{50, 150, 250} {
		fmt.Fprintf(&svg, `  <line x1="0" y1="%d" x2="%.0f" y2="%d" stroke="#e9ecef" stroke-width="1"/>`+"\n",
			y, ChartWidth, y)
	}
	fmt.Fprintf(&svg, `  <path d="%s L %.0f,%.0f L 0,%.0f Z" fill="url(#elevationGradient)" opacity="0.6"/>`+"\n",
		pathData, ChartWidth, ChartHeight, ChartHeight)
	fmt.Fprintf(&svg, `  <path d="%s" fill="none" stroke="#2E86AB" stroke-width="2"/>`+"\n", pathData)
	fmt.Fprintf(&svg, `  <text x="10" y="25" font-family="Arial, sans-serif" font-size="14" fill="#2c3e50">Max: %.0fm</text>`+"\n", stats.Max)
	fmt.Fprintf(&svg, `  <text x="10" y="385" font-family="Arial, sans-serif" font-size="14" fill="#2c3e50">Min: %.0fm</text>`+"\n", stats.Min)
	svg.WriteString("</svg>\n")
	return svg.String()
}
