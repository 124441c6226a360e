package elevation_test

import (
	"encoding/binary"
	"testing"

	"github.com/jkoick/gpx-to-svg/pkg/elevation"

	"github.com/stretchr/testify/assert"
)

// buildTileBytes renders a side x side hgt grid, rows north to south.
func buildTileBytes(side int, sample func(row, col int) int16) []byte {
	raw := make([]byte, side*side*2)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			binary.BigEndian.PutUint16(raw[(row*side+col)*2:], uint16(sample(row, col)))
		}
	}
	return raw
}

func TestTileName(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
		expected string
	}{
		{"north east", 47.3, 8.5, "N47E008"},
		{"south west", -2.2, -77.5, "S03W078"},
		{"on the corner", 47.0, 8.0, "N47E008"},
		{"close to the meridians", 0.5, -0.5, "N00W001"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, elevation.TileName(c.lat, c.lon))
		})
	}
}

func TestDecodeTile(t *testing.T) {
	t.Run("rejects odd payloads", func(t *testing.T) {
		_, err := elevation.DecodeTile("N47E008", make([]byte, 7))
		assert.Error(t, err)
	})

	t.Run("rejects non square grids", func(t *testing.T) {
		_, err := elevation.DecodeTile("N47E008", make([]byte, 5*4*2))
		assert.Error(t, err)
	})

	t.Run("rejects malformed names", func(t *testing.T) {
		raw := buildTileBytes(5, func(row, col int) int16 { return 0 })
		_, err := elevation.DecodeTile("47E008", raw)
		assert.Error(t, err)
	})

	t.Run("decodes a square grid", func(t *testing.T) {
		raw := buildTileBytes(5, func(row, col int) int16 { return int16(row*100 + col) })
		tile, err := elevation.DecodeTile("N47E008", raw)
		assert.Nil(t, err)
		assert.Equal(t, "N47E008", tile.Name())
	})
}

func TestTileSample(t *testing.T) {
	// 5x5 grid over N47E008 so grid steps are exactly 0.25 degrees
	raw := buildTileBytes(5, func(row, col int) int16 {
		if row == 2 && col == 2 {
			return -32768
		}
		return int16(row*100 + col)
	})
	tile, err := elevation.DecodeTile("N47E008", raw)
	assert.Nil(t, err)

	t.Run("north west corner is the first sample", func(t *testing.T) {
		ele, ok := tile.Sample(48, 8)
		assert.True(t, ok)
		assert.Equal(t, 0.0, ele)
	})

	t.Run("south east corner is the last sample", func(t *testing.T) {
		ele, ok := tile.Sample(47, 9)
		assert.True(t, ok)
		assert.Equal(t, 404.0, ele)
	})

	t.Run("coordinates snap to the nearest cell", func(t *testing.T) {
		// 0.06 degrees north of the south edge rounds to the bottom row
		ele, ok := tile.Sample(47.06, 8.0)
		assert.True(t, ok)
		assert.Equal(t, 400.0, ele)
	})

	t.Run("void cells are missing", func(t *testing.T) {
		_, ok := tile.Sample(47.5, 8.5)
		assert.False(t, ok)
	})

	t.Run("outside the tile is missing", func(t *testing.T) {
		_, ok := tile.Sample(49.5, 8.5)
		assert.False(t, ok)
	})
}
