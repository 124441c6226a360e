package geo_test

import (
	"testing"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
	"github.com/jkoick/gpx-to-svg/pkg/geo"
	"github.com/stretchr/testify/assert"
)

func TestCalculateHaversineDistance(t *testing.T) {
	cases := []struct {
		name                   string
		latOne, lonOne         float64
		latTwo, lonTwo         float64
		expectedDistanceInKm   float64
		expectedDistanceDeltaM float64
	}{
		{
			name:                   "success haversine distance one degree along equator",
			latOne:                 0,
			lonOne:                 0,
			latTwo:                 0,
			lonTwo:                 1,
			expectedDistanceInKm:   111.19,
			expectedDistanceDeltaM: 0.01,
		},
		{
			name:                   "success haversine distance surakarta city center to solo balapan station",
			latOne:                 -7.565837,
			lonOne:                 110.831586,
			latTwo:                 -7.556566,
			lonTwo:                 110.821655,
			expectedDistanceInKm:   1.5,
			expectedDistanceDeltaM: 0.1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dist := geo.CalculateHaversineDistance(c.latOne, c.lonOne, c.latTwo, c.lonTwo)
			assert.InDelta(t, c.expectedDistanceInKm, dist, c.expectedDistanceDeltaM)

			reverse := geo.CalculateHaversineDistance(c.latTwo, c.lonTwo, c.latOne, c.lonOne)
			assert.Equal(t, dist, reverse)
		})
	}
}

func TestTrackDistanceKm(t *testing.T) {
	points := []datastructure.GeoPoint{
		datastructure.NewGeoPoint(0, 0),
		datastructure.NewGeoPoint(0, 1),
		datastructure.NewGeoPoint(0, 2),
	}

	total := geo.TrackDistanceKm(points)
	assert.InDelta(t, 2*111.19, total, 0.1)

	assert.Equal(t, 0.0, geo.TrackDistanceKm(points[:1]))
	assert.Equal(t, 0.0, geo.TrackDistanceKm(nil))
}
