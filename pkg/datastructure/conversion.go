package datastructure

// TrackStats summarizes one conversion run.
type TrackStats struct {
	PointCount      int     `json:"point_count"`
	SimplifiedCount int     `json:"simplified_count"`
	CompressionPct  float64 `json:"compression_pct"`
	DistanceKm      float64 `json:"distance_km"`
	HasElevation    bool    `json:"has_elevation"`
	MinEle          float64 `json:"min_ele"`
	MaxEle          float64 `json:"max_ele"`
}

// TrackConversion is the artifact produced by one pipeline run. Paths keep
// their command lists so downstream renderers can replay curves; the SVG
// documents are assembled once and stored alongside.
type TrackConversion struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`

	Direct    Path           `json:"direct"`
	Optimized Path           `json:"optimized"`
	Elevation Path           `json:"elevation,omitempty"`
	Gradient  []GradientStop `json:"gradient,omitempty"`
	Polyline  string         `json:"polyline"`

	DirectSVG    string `json:"direct_svg,omitempty"`
	OptimizedSVG string `json:"optimized_svg,omitempty"`
	ElevationSVG string `json:"elevation_svg,omitempty"`

	Stats TrackStats `json:"stats"`
}

// ConversionSummary is one listing row of the conversion archive.
type ConversionSummary struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt int64      `json:"created_at"`
	Stats     TrackStats `json:"stats"`
}

func (c *TrackConversion) Summary() ConversionSummary {
	return ConversionSummary{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		Stats:     c.Stats,
	}
}
