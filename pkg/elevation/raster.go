// Package elevation fills missing track elevations from srtm raster tiles.
// It is a collaborator of the geometric pipeline: the converter hands it the
// parsed points, it writes elevations back where it can, and every failure
// leaves the track exactly as it was.
package elevation

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
)

const (
	// voidValue marks srtm cells without a measurement (ocean, sensor gaps).
	voidValue = -32768
)

// Tile is one decoded 1x1 degree srtm grid, named by its south west corner
// ("N47E008"). Rows run north to south, samples are big endian int16 meters.
type Tile struct {
	name  string
	swLat int
	swLon int
	side  int
	data  []byte

	rect rtreego.Rect
}

// TileName is the srtm tile covering the coordinate, e.g. (47.3, 8.5) lies
// on N47E008. Tiles are addressed by the integer degree south west of the
// point, so negative coordinates round down.
func TileName(lat, lon float64) string {
	swLat := int(math.Floor(lat))
	swLon := int(math.Floor(lon))

	latHemi := "N"
	if swLat < 0 {
		latHemi = "S"
		swLat = -swLat
	}
	lonHemi := "E"
	if swLon < 0 {
		lonHemi = "W"
		swLon = -swLon
	}
	return fmt.Sprintf("%s%02d%s%03d", latHemi, swLat, lonHemi, swLon)
}

// DecodeTile wraps raw hgt bytes. The grid side is derived from the payload
// size (3601 for srtm1, 1201 for srtm3) and must be square.
func DecodeTile(name string, raw []byte) (*Tile, error) {
	if len(raw) == 0 || len(raw)%2 != 0 {
		return nil, fmt.Errorf("tile %s: hgt payload must hold int16 samples, got %d bytes", name, len(raw))
	}

	side := int(math.Sqrt(float64(len(raw) / 2)))
	if side < 2 || side*side*2 != len(raw) {
		return nil, fmt.Errorf("tile %s: hgt payload of %d bytes is not a square grid", name, len(raw))
	}

	var swLat, swLon int
	var latHemi, lonHemi byte
	if _, err := fmt.Sscanf(name, "%c%02d%c%03d", &latHemi, &swLat, &lonHemi, &swLon); err != nil {
		return nil, fmt.Errorf("tile name %q: %w", name, err)
	}
	if latHemi == 'S' {
		swLat = -swLat
	}
	if lonHemi == 'W' {
		swLon = -swLon
	}

	rect, err := rtreego.NewRect(rtreego.Point{float64(swLat), float64(swLon)}, []float64{1, 1})
	if err != nil {
		return nil, fmt.Errorf("tile %s: %w", name, err)
	}

	return &Tile{
		name:  name,
		swLat: swLat,
		swLon: swLon,
		side:  side,
		data:  raw,
		rect:  rect,
	}, nil
}

func (t *Tile) Name() string {
	return t.name
}

// Bounds places the tile in the spatial index, axes ordered (lat, lon).
func (t *Tile) Bounds() rtreego.Rect {
	return t.rect
}

// Sample reads the nearest grid cell. Coordinates outside the tile and void
// cells report ok=false.
func (t *Tile) Sample(lat, lon float64) (float64, bool) {
	if lat < float64(t.swLat) || lat > float64(t.swLat)+1 ||
		lon < float64(t.swLon) || lon > float64(t.swLon)+1 {
		return 0, false
	}

	// the first row of an hgt file is the tile's north edge
	row := int(math.Round((float64(t.swLat) + 1 - lat) * float64(t.side-1)))
	col := int(math.Round((lon - float64(t.swLon)) * float64(t.side-1)))

	sample := int16(binary.BigEndian.Uint16(t.data[(row*t.side+col)*2:]))
	if sample == voidValue {
		return 0, false
	}
	return float64(sample), true
}
