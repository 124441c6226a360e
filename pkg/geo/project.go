package geo

import (
	"math"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
)

const (
	// CanvasSize is the side of the square output canvas in svg user units.
	CanvasSize = 1000.0
	// ContentSize is the side of the centered square the track is scaled into.
	ContentSize = 800.0
)

func MercatorX(lon float64) float64 {
	return degreeToRadians(lon)
}

func MercatorY(lat float64) float64 {
	return math.Log(math.Tan(degreeToRadians(lat)/2 + math.Pi/4))
}

// ProjectToCanvas maps geographic points onto the 1000x1000 canvas through a
// web-mercator style transform. The aspect ratio of the mercator extent is
// preserved, the content is centered, and the y axis is flipped so north ends
// up at the top. Output length and order always match the input. An empty
// input yields an empty slice.
func ProjectToCanvas(points []datastructure.GeoPoint) []datastructure.PlanarPoint {
	projected := make([]datastructure.PlanarPoint, 0, len(points))
	if len(points) == 0 {
		return projected
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = MercatorX(p.Lon)
		ys[i] = MercatorY(p.Lat)
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < len(points); i++ {
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}

	xRange := maxX - minX
	yRange := maxY - minY

	if xRange == 0 && yRange == 0 {
		// a single location, dot in the canvas center
		for range points {
			projected = append(projected, datastructure.NewPlanarPoint(CanvasSize/2, CanvasSize/2))
		}
		return projected
	}

	var scale, xOffset, yOffset float64
	switch {
	case xRange == 0:
		scale = ContentSize / yRange
		xOffset = CanvasSize / 2
		yOffset = (CanvasSize - ContentSize) / 2
	case yRange == 0:
		scale = ContentSize / xRange
		xOffset = (CanvasSize - ContentSize) / 2
		yOffset = CanvasSize / 2
	default:
		scale = math.Min(ContentSize/xRange, ContentSize/yRange)
		xOffset = (CanvasSize - xRange*scale) / 2
		yOffset = (CanvasSize - yRange*scale) / 2
	}

	for i := range points {
		x := (xs[i]-minX)*scale + xOffset
		y := (maxY-ys[i])*scale + yOffset
		projected = append(projected, datastructure.NewPlanarPoint(x, y))
	}
	return projected
}
