package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jkoick/gpx-to-svg/pkg/archive"
	"github.com/jkoick/gpx-to-svg/pkg/engine/converter"
	"github.com/jkoick/gpx-to-svg/pkg/gpxparser"
	"github.com/jkoick/gpx-to-svg/pkg/server/rest"
	"github.com/jkoick/gpx-to-svg/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="unit-test" xmlns="http://www.topografix.com/GPX/1/1">
  <metadata><name>Morning Loop</name></metadata>
  <trk>
    <trkseg>
      <trkpt lat="47.3492" lon="8.4912"><ele>871.0</ele></trkpt>
      <trkpt lat="47.3500" lon="8.4920"><ele>880.0</ele></trkpt>
      <trkpt lat="47.3510" lon="8.4930"><ele>860.5</ele></trkpt>
    </trkseg>
  </trk>
</gpx>`

func newTestRouter(t *testing.T) (*chi.Mux, *prometheus.Registry) {
	t.Helper()

	arc, err := archive.Open(t.TempDir())
	assert.Nil(t, err)
	t.Cleanup(func() { arc.Close() })

	svc := service.NewTrackService(
		converter.NewTrackConverter(nil, 2.0),
		gpxparser.NewGPXParser(),
		arc,
	)

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(rest.PromeHttpMiddleware(m))
	rest.TracksRouter(r, svc, m)
	return r, reg
}

func doRequest(r *chi.Mux, method, target, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestConvertTrackEndpoint(t *testing.T) {
	r, reg := newTestRouter(t)

	t.Run("converts a valid request", func(t *testing.T) {
		body := `{"name":"equator","coordinates":[{"lat":0,"lon":0},{"lat":0,"lon":1},{"lat":0,"lon":2}]}`
		rec := doRequest(r, http.MethodPost, "/api/tracks/convert", "application/json", []byte(body))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp rest.ConversionResponse
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "equator", resp.Name)
		assert.Equal(t, "M 100.00,500.00 L 500.00,500.00 L 900.00,500.00", resp.Direct)
		assert.Equal(t, "M 100.00,500.00 L 900.00,500.00", resp.Optimized)
		assert.Equal(t, 3, resp.Stats.PointCount)
		assert.True(t, strings.Contains(resp.DirectSVG, "<svg"))
	})

	t.Run("rejects out of range coordinates", func(t *testing.T) {
		body := `{"name":"broken","coordinates":[{"lat":95,"lon":0}]}`
		rec := doRequest(r, http.MethodPost, "/api/tracks/convert", "application/json", []byte(body))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "validation"))
	})

	t.Run("rejects a missing coordinate list", func(t *testing.T) {
		body := `{"name":"empty"}`
		rec := doRequest(r, http.MethodPost, "/api/tracks/convert", "application/json", []byte(body))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("requests show up in the registry", func(t *testing.T) {
		families, err := reg.Gather()
		assert.Nil(t, err)

		names := make(map[string]bool)
		for _, mf := range families {
			names[mf.GetName()] = true
		}
		assert.True(t, names["gpxsvg_http_requests_total"])
		assert.True(t, names["gpxsvg_convert_conversions_total"])
	})
}

func TestConvertGPXEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("converts an uploaded document", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/api/tracks/convert-gpx?epsilon=1.5",
			"application/gpx+xml", []byte(sampleGPX))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp rest.ConversionResponse
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Morning Loop", resp.Name)
		assert.True(t, resp.Stats.HasElevation)
		assert.NotEmpty(t, resp.ElevationSVG)
	})

	t.Run("rejects a malformed epsilon", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/api/tracks/convert-gpx?epsilon=fast",
			"application/gpx+xml", []byte(sampleGPX))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/api/tracks/convert-gpx",
			"application/gpx+xml", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a non gpx body", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/api/tracks/convert-gpx",
			"application/gpx+xml", []byte("not xml at all"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAndListEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRequest(r, http.MethodPost, "/api/tracks/convert-gpx",
		"application/gpx+xml", []byte(sampleGPX))
	assert.Equal(t, http.StatusOK, rec.Code)

	var saved rest.ConversionResponse
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &saved))

	t.Run("get by id", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/api/tracks/"+saved.ID, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp rest.ConversionResponse
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, saved.ID, resp.ID)
		assert.Equal(t, "Morning Loop", resp.Name)
		assert.Equal(t, saved.Direct, resp.Direct)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/api/tracks/20231114T221320-dead", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "Resource not found."))
	})

	t.Run("list contains the stored conversion", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/api/tracks/", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp rest.ConversionSummariesResponse
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, len(resp.Conversions))
		assert.Equal(t, saved.ID, resp.Conversions[0].ID)
	})
}
