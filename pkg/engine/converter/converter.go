// Package converter chains projection, simplification, and rendering into
// one conversion pipeline over parsed track points.
package converter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
	"github.com/jkoick/gpx-to-svg/pkg/geo"
	"github.com/jkoick/gpx-to-svg/pkg/svg"
	"github.com/jkoick/gpx-to-svg/pkg/util"
)

var ErrNoTrackPoints = errors.New("no track points")

// ElevationEnhancer fills missing point elevations before the profile is
// rendered.
type ElevationEnhancer interface {
	Enhance(ctx context.Context, points []datastructure.GeoPoint) (int, error)
}

// TrackConverter runs the pipeline. It holds no per run state, one instance
// serves concurrent conversions.
type TrackConverter struct {
	enhancer ElevationEnhancer
	epsilon  float64
}

// NewTrackConverter builds a converter with the given default simplification
// tolerance in canvas units. epsilon <= 0 selects the stock tolerance.
func NewTrackConverter(enhancer ElevationEnhancer, epsilon float64) *TrackConverter {
	if epsilon <= 0 {
		epsilon = geo.DefaultEpsilon
	}
	return &TrackConverter{
		enhancer: enhancer,
		epsilon:  epsilon,
	}
}

func (c *TrackConverter) Convert(ctx context.Context, name string,
	points []datastructure.GeoPoint) (datastructure.TrackConversion, error) {
	return c.ConvertWithEpsilon(ctx, name, points, c.epsilon)
}

// ConvertWithEpsilon converts one track with a per call tolerance,
// epsilon <= 0 falling back to the configured default. Elevation enhancement
// failures are logged and the conversion continues without the missing
// samples.
func (c *TrackConverter) ConvertWithEpsilon(ctx context.Context, name string,
	points []datastructure.GeoPoint, epsilon float64) (datastructure.TrackConversion, error) {
	if len(points) == 0 {
		return datastructure.TrackConversion{}, fmt.Errorf("error converting track %q: %w", name, ErrNoTrackPoints)
	}
	if epsilon <= 0 {
		epsilon = c.epsilon
	}

	if c.enhancer != nil {
		if _, err := c.enhancer.Enhance(ctx, points); err != nil {
			log.Printf("elevation enhancement for track %q failed: %v", name, err)
		}
	}

	projected := geo.ProjectToCanvas(points)
	direct := svg.DirectPath(projected)

	simplified := geo.DouglasPeucker(projected, epsilon)
	optimized := svg.OptimizedPath(simplified)

	profile, eleStats, hasEle := svg.ElevationProfile(points)

	conv := datastructure.TrackConversion{
		Name:         name,
		CreatedAt:    time.Now().Unix(),
		Direct:       direct,
		Optimized:    optimized,
		Polyline:     datastructure.CreatePolyline(points),
		DirectSVG:    svg.TrackDocument(direct.String(), name, false),
		OptimizedSVG: svg.TrackDocument(optimized.String(), name, true),
	}

	if hasEle {
		conv.Elevation = profile
		conv.Gradient = svg.ElevationGradient()
		conv.ElevationSVG = svg.ElevationDocument(profile, conv.Gradient, eleStats)
	}

	conv.Stats = datastructure.TrackStats{
		PointCount:      len(points),
		SimplifiedCount: len(simplified),
		CompressionPct:  util.RoundFloat((1-float64(len(simplified))/float64(len(points)))*100, 2),
		DistanceKm:      util.RoundFloat(geo.TrackDistanceKm(points), 3),
		HasElevation:    hasEle,
		MinEle:          eleStats.Min,
		MaxEle:          eleStats.Max,
	}
	return conv, nil
}
