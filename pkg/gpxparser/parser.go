package gpxparser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"

	"github.com/tkrajina/gpxgo/gpx"
)

type GPXParser struct {
}

func NewGPXParser() *GPXParser {
	return &GPXParser{}
}

// ParseBytes flattens every track segment in the document into one ordered
// point list. Elevation is kept only when the source point carries a valid
// one, the rest stay nil for the enhancement step.
func (p *GPXParser) ParseBytes(data []byte) (datastructure.Track, error) {
	gpxFile, err := gpx.ParseBytes(data)
	if err != nil {
		return datastructure.Track{}, fmt.Errorf("error parsing gpx data: %w", err)
	}

	points := make([]datastructure.GeoPoint, 0)
	for _, track := range gpxFile.Tracks {
		for _, segment := range track.Segments {
			for _, pt := range segment.Points {
				geoPoint := datastructure.NewGeoPoint(pt.Latitude, pt.Longitude)
				if pt.Elevation.NotNull() {
					geoPoint.SetEle(pt.Elevation.Value())
				}
				points = append(points, geoPoint)
			}
		}
	}

	name := gpxFile.Name
	if name == "" && len(gpxFile.Tracks) > 0 {
		name = gpxFile.Tracks[0].Name
	}
	return datastructure.NewTrack(name, points), nil
}

// ParseFile reads and parses one gpx file, falling back to the file stem
// when neither the document nor its first track carry a name.
func (p *GPXParser) ParseFile(path string) (datastructure.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return datastructure.Track{}, fmt.Errorf("error reading gpx file %s: %w", path, err)
	}

	track, err := p.ParseBytes(data)
	if err != nil {
		return datastructure.Track{}, fmt.Errorf("error parsing gpx file %s: %w", path, err)
	}
	if track.Name == "" {
		track.Name = FileStem(path)
	}
	return track, nil
}

// FileStem is the file name without directory and extension. Batch runs use
// it as the fallback track name and the output subdirectory name.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
