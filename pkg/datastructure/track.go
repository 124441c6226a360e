package datastructure

// GeoPoint is a single track point in WGS84 degrees. Ele is nil when the
// source data carries no elevation for the point.
type GeoPoint struct {
	Lat float64  `json:"lat"`
	Lon float64  `json:"lon"`
	Ele *float64 `json:"ele,omitempty"`
}

func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{
		Lat: lat,
		Lon: lon,
	}
}

func NewGeoPointWithEle(lat, lon, ele float64) GeoPoint {
	return GeoPoint{
		Lat: lat,
		Lon: lon,
		Ele: &ele,
	}
}

func (p GeoPoint) HasEle() bool {
	return p.Ele != nil
}

// EleValue returns the elevation in meters, 0 when the point has none.
func (p GeoPoint) EleValue() float64 {
	if p.Ele == nil {
		return 0
	}
	return *p.Ele
}

func (p *GeoPoint) SetEle(ele float64) {
	p.Ele = &ele
}

// Track is an ordered point list flattened over all segments of a GPX track.
type Track struct {
	Name   string
	Points []GeoPoint
}

func NewTrack(name string, points []GeoPoint) Track {
	return Track{
		Name:   name,
		Points: points,
	}
}

// PlanarPoint is a projected point in canvas space (origin top-left, y down).
type PlanarPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPlanarPoint(x, y float64) PlanarPoint {
	return PlanarPoint{
		X: x,
		Y: y,
	}
}

func MidPoint(a, b PlanarPoint) PlanarPoint {
	return NewPlanarPoint((a.X+b.X)/2, (a.Y+b.Y)/2)
}
