package datastructure_test

import (
	"testing"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

func TestPathString(t *testing.T) {
	cases := []struct {
		name string
		path datastructure.Path
		want string
	}{
		{
			name: "empty path renders empty string",
			path: datastructure.Path{},
			want: "",
		},
		{
			name: "move and line",
			path: datastructure.Path{
				datastructure.NewMoveTo(datastructure.NewPlanarPoint(100, 500)),
				datastructure.NewLineTo(datastructure.NewPlanarPoint(900, 500)),
			},
			want: "M 100.00,500.00 L 900.00,500.00",
		},
		{
			name: "quadratic keeps control point, smooth drops it",
			path: datastructure.Path{
				datastructure.NewMoveTo(datastructure.NewPlanarPoint(0, 0)),
				datastructure.NewQuadraticTo(datastructure.NewPlanarPoint(10, 20), datastructure.NewPlanarPoint(30, 40)),
				datastructure.NewSmoothQuadraticTo(datastructure.NewPlanarPoint(50, 60), datastructure.NewPlanarPoint(70, 80)),
			},
			want: "M 0.00,0.00 Q 10.00,20.00 30.00,40.00 T 70.00,80.00",
		},
		{
			name: "coordinates always carry two decimals",
			path: datastructure.Path{
				datastructure.NewMoveTo(datastructure.NewPlanarPoint(1.005, 2.5)),
				datastructure.NewLineTo(datastructure.NewPlanarPoint(3.14159, 500)),
			},
			want: "M 1.00,2.50 L 3.14,500.00",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.path.String())
		})
	}
}

func TestMidPoint(t *testing.T) {
	mid := datastructure.MidPoint(datastructure.NewPlanarPoint(100, 200), datastructure.NewPlanarPoint(300, 500))
	assert.Equal(t, datastructure.NewPlanarPoint(200, 350), mid)
}

func TestCreateAndDecodePolyline(t *testing.T) {
	points := []datastructure.GeoPoint{
		datastructure.NewGeoPoint(38.5, -120.2),
		datastructure.NewGeoPoint(40.7, -120.95),
		datastructure.NewGeoPoint(43.252, -126.453),
	}

	encoded := datastructure.CreatePolyline(points)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded)

	decoded, err := datastructure.DecodePolyline(encoded)
	assert.Nil(t, err)
	assert.Equal(t, len(points), len(decoded))
	for i := range points {
		assert.InDelta(t, points[i].Lat, decoded[i].Lat, 1e-5)
		assert.InDelta(t, points[i].Lon, decoded[i].Lon, 1e-5)
	}
}

func TestGradientStopColor(t *testing.T) {
	stop := datastructure.NewGradientStop(20, 216)
	assert.Equal(t, "hsl(216, 70%, 50%)", stop.Color())
}
