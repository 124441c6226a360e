package svg

import (
	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
)

const (
	ChartWidth  = 1000.0
	ChartHeight = 300.0

	gradientStopCount = 6
)

// ElevationStats carries the extremes used for the chart labels.
type ElevationStats struct {
	Min float64
	Max float64
}

// ElevationProfile builds the chart path from the points that carry
// elevation. X positions spread over the full input length, so stretches
// without elevation keep their place on the horizontal axis. A track without
// any elevation data reports ok=false, never an error.
func ElevationProfile(points []datastructure.GeoPoint) (datastructure.Path, ElevationStats, bool) {
	type sample struct {
		index int
		ele   float64
	}

	samples := make([]sample, 0, len(points))
	for i, p := range points {
		if p.HasEle() {
			samples = append(samples, sample{index: i, ele: *p.Ele})
		}
	}
	if len(samples) == 0 {
		return datastructure.Path{}, ElevationStats{}, false
	}

	minEle, maxEle := samples[0].ele, samples[0].ele
	for _, s := range samples[1:] {
		if s.ele < minEle {
			minEle = s.ele
		}
		if s.ele > maxEle {
			maxEle = s.ele
		}
	}

	// clamp so flat tracks do not divide by zero
	eleRange := maxEle - minEle
	if eleRange < 1 {
		eleRange = 1
	}
	denom := float64(len(points) - 1)
	if denom < 1 {
		denom = 1
	}

	path := make(datastructure.Path, 0, len(samples))
	for i, s := range samples {
		x := (float64(s.index) / denom) * ChartWidth
		y := ChartHeight - ((s.ele-minEle)/eleRange)*ChartHeight
		point := datastructure.NewPlanarPoint(x, y)
		if i == 0 {
			path = append(path, datastructure.NewMoveTo(point))
		} else {
			path = append(path, datastructure.NewLineTo(point))
		}
	}
	return path, ElevationStats{Min: minEle, Max: maxEle}, true
}

// ElevationGradient is the fixed six stop fill ramp of the profile, hue 240
// (blue) fading to 120 (green) in 20% steps.
func ElevationGradient() []datastructure.GradientStop {
	stops := make([]datastructure.GradientStop, 0, gradientStopCount)
	for i := 0; i < gradientStopCount; i++ {
		offset := float64(i * 20)
		stops = append(stops, datastructure.NewGradientStop(offset, 240-offset*1.2))
	}
	return stops
}
