package svg_test

import (
	"testing"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
	"github.com/jkoick/gpx-to-svg/pkg/svg"
	"github.com/stretchr/testify/assert"
)

func TestElevationProfile(t *testing.T) {
	t.Run("no elevation data reports not ok", func(t *testing.T) {
		points := []datastructure.GeoPoint{
			datastructure.NewGeoPoint(0, 0),
			datastructure.NewGeoPoint(0, 1),
		}
		path, _, ok := svg.ElevationProfile(points)
		assert.False(t, ok)
		assert.True(t, path.IsEmpty())

		_, _, ok = svg.ElevationProfile(nil)
		assert.False(t, ok)
	})

	t.Run("points without elevation keep their horizontal slot", func(t *testing.T) {
		points := []datastructure.GeoPoint{
			datastructure.NewGeoPointWithEle(0, 0, 100),
			datastructure.NewGeoPoint(0, 1),
			datastructure.NewGeoPointWithEle(0, 2, 200),
		}
		path, stats, ok := svg.ElevationProfile(points)
		assert.True(t, ok)
		assert.Equal(t, 100.0, stats.Min)
		assert.Equal(t, 200.0, stats.Max)
		// the middle point has no sample but still occupies index 1 of 3
		assert.Equal(t, "M 0.00,300.00 L 1000.00,0.00", path.String())
	})

	t.Run("flat tracks clamp the range instead of dividing by zero", func(t *testing.T) {
		points := []datastructure.GeoPoint{
			datastructure.NewGeoPointWithEle(0, 0, 150),
			datastructure.NewGeoPointWithEle(0, 1, 150),
			datastructure.NewGeoPointWithEle(0, 2, 150),
		}
		path, stats, ok := svg.ElevationProfile(points)
		assert.True(t, ok)
		assert.Equal(t, stats.Min, stats.Max)
		assert.Equal(t, "M 0.00,300.00 L 500.00,300.00 L 1000.00,300.00", path.String())
	})

	t.Run("single point stays a bare move", func(t *testing.T) {
		points := []datastructure.GeoPoint{
			datastructure.NewGeoPointWithEle(0, 0, 321),
		}
		path, stats, ok := svg.ElevationProfile(points)
		assert.True(t, ok)
		assert.Equal(t, 321.0, stats.Min)
		assert.Equal(t, "M 0.00,300.00", path.String())
	})

	t.Run("profile scales between chart top and bottom", func(t *testing.T) {
		points := []datastructure.GeoPoint{
			datastructure.NewGeoPointWithEle(0, 0, 0),
			datastructure.NewGeoPointWithEle(0, 1, 50),
			datastructure.NewGeoPointWithEle(0, 2, 100),
		}
		path, _, ok := svg.ElevationProfile(points)
		assert.True(t, ok)
		assert.Equal(t, "M 0.00,300.00 L 500.00,150.00 L 1000.00,0.00", path.String())
	})
}

func TestElevationGradient(t *testing.T) {
	stops := svg.ElevationGradient()
	assert.Equal(t, 6, len(stops))

	expectedHues := []float64{240, 216, 192, 168, 144, 120}
	for i, stop := range stops {
		assert.Equal(t, float64(i*20), stop.Offset)
		assert.InDelta(t, expectedHues[i], stop.Hue, 1e-9)
	}
}
