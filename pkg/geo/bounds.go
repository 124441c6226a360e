package geo

import (
	"github.com/jkoick/gpx-to-svg/pkg/datastructure"

	"github.com/golang/geo/s2"
)

// Bound is a closed lat/lon rectangle in degrees.
type Bound struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

func (b Bound) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// TrackBounds is the tight bounding rectangle of the track.
func TrackBounds(points []datastructure.GeoPoint) Bound {
	if len(points) == 0 {
		return Bound{}
	}

	rect := s2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Lat, p.Lon))
	}
	return Bound{
		MinLat: rect.Lo().Lat.Degrees(),
		MinLon: rect.Lo().Lng.Degrees(),
		MaxLat: rect.Hi().Lat.Degrees(),
		MaxLon: rect.Hi().Lng.Degrees(),
	}
}

// BufferedTrackBounds grows the track bounds by bufferDeg on every side.
// Raster fetches use it so points on the track edge still fall inside the
// requested clip.
func BufferedTrackBounds(points []datastructure.GeoPoint, bufferDeg float64) Bound {
	b := TrackBounds(points)
	b.MinLat -= bufferDeg
	b.MinLon -= bufferDeg
	b.MaxLat += bufferDeg
	b.MaxLon += bufferDeg
	return b
}
