package datastructure

import (
	"github.com/twpayne/go-polyline"
)

// CreatePolyline encodes the geographic track with the google polyline codec.
func CreatePolyline(points []GeoPoint) string {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePolyline reverses CreatePolyline. Elevation is not part of the codec,
// every decoded point comes back without one.
func DecodePolyline(s string) ([]GeoPoint, error) {
	coords, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, err
	}
	points := make([]GeoPoint, len(coords))
	for i, c := range coords {
		points[i] = NewGeoPoint(c[0], c[1])
	}
	return points, nil
}
