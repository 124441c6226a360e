package elevation

import (
	"context"
	"fmt"
	"log"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
	"github.com/jkoick/gpx-to-svg/pkg/geo"
)

const (
	// BoundsBufferDeg pads the track bounding box before tile loading so
	// points on the track edge still fall inside a loaded tile.
	BoundsBufferDeg = 0.01
)

type Raster interface {
	Preload(ctx context.Context, bounds geo.Bound) error
	Sample(lat, lon float64) (float64, bool)
}

type SampleCache interface {
	GetElevation(lat, lon float64) (float64, error)
	PutElevations(ctx context.Context, points []datastructure.GeoPoint) error
}

// SRTMEnhancer fills missing elevations from the raster, consulting the
// per-point sample cache first. Points that already carry an elevation are
// never touched; points the raster cannot resolve stay missing.
type SRTMEnhancer struct {
	raster Raster
	cache  SampleCache
}

// NewSRTMEnhancer builds an enhancer over the raster. cache may be nil.
func NewSRTMEnhancer(raster Raster, cache SampleCache) *SRTMEnhancer {
	return &SRTMEnhancer{raster: raster, cache: cache}
}

// Enhance resolves elevations for the points lacking one and reports how
// many it filled. The only hard error is a cancelled context during tile
// loading; everything else degrades to fewer filled points.
func (e *SRTMEnhancer) Enhance(ctx context.Context, points []datastructure.GeoPoint) (int, error) {
	missing := make([]int, 0, len(points))
	for i := range points {
		if !points[i].HasEle() {
			missing = append(missing, i)
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	filled := 0
	remaining := missing[:0]
	for _, i := range missing {
		if e.cache != nil {
			if ele, err := e.cache.GetElevation(points[i].Lat, points[i].Lon); err == nil {
				points[i].SetEle(ele)
				filled++
				continue
			}
		}
		remaining = append(remaining, i)
	}
	if len(remaining) == 0 {
		return filled, nil
	}

	bounds := geo.BufferedTrackBounds(points, BoundsBufferDeg)
	if err := e.raster.Preload(ctx, bounds); err != nil {
		return filled, fmt.Errorf("error loading srtm tiles: %w", err)
	}

	resolved := make([]datastructure.GeoPoint, 0, len(remaining))
	for _, i := range remaining {
		ele, ok := e.raster.Sample(points[i].Lat, points[i].Lon)
		if !ok {
			continue
		}
		points[i].SetEle(ele)
		filled++
		resolved = append(resolved, points[i])
	}

	if e.cache != nil && len(resolved) > 0 {
		if err := e.cache.PutElevations(ctx, resolved); err != nil {
			log.Printf("error caching elevation samples: %v", err)
		}
	}
	return filled, nil
}

// NoopEnhancer is the enhancer used when srtm lookups are disabled. It
// leaves every point as parsed.
type NoopEnhancer struct{}

func NewNoopEnhancer() *NoopEnhancer {
	return &NoopEnhancer{}
}

func (e *NoopEnhancer) Enhance(ctx context.Context, points []datastructure.GeoPoint) (int, error) {
	return 0, nil
}
