package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
	"github.com/jkoick/gpx-to-svg/pkg/server"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type TrackService interface {
	ConvertTrack(ctx context.Context, name string, points []datastructure.GeoPoint,
		epsilon float64) (datastructure.TrackConversion, error)
	ConvertGPX(ctx context.Context, data []byte, epsilon float64) (datastructure.TrackConversion, error)
	GetConversion(ctx context.Context, id string) (datastructure.TrackConversion, error)
	ListConversions(ctx context.Context) ([]datastructure.ConversionSummary, error)
}

type TrackHandler struct {
	svc     TrackService
	metrics *Metrics
}

func TracksRouter(r *chi.Mux, svc TrackService, m *Metrics) {
	handler := &TrackHandler{svc: svc, metrics: m}

	r.Group(func(r chi.Router) {
		r.Route("/api/tracks", func(r chi.Router) {
			r.Post("/convert", handler.ConvertTrack)
			r.Post("/convert-gpx", handler.ConvertGPX)
			r.Get("/", handler.ListConversions)
			r.Get("/{id}", handler.GetConversion)
		})
	})
}

// TrackCoord model info
//
//	@Description	one track point in WGS84 degrees, elevation in meters optional
type TrackCoord struct {
	Lat float64  `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64  `json:"lon" validate:"gte=-180,lte=180"`
	Ele *float64 `json:"ele,omitempty"`
}

// ConvertTrackRequest model info
//
//	@Description	request body for converting raw coordinates into svg paths
type ConvertTrackRequest struct {
	Name        string       `json:"name" validate:"required"`
	Epsilon     float64      `json:"epsilon" validate:"gte=0"`
	Coordinates []TrackCoord `json:"coordinates" validate:"required,min=1,dive"`
}

func (s *ConvertTrackRequest) Bind(r *http.Request) error {
	if len(s.Coordinates) == 0 {
		return errors.New("invalid request: coordinates must not be empty")
	}
	return nil
}

// ConversionResponse model info
//
//	@Description	converted track: svg path data, standalone documents and run statistics
type ConversionResponse struct {
	ID           string                       `json:"id"`
	Name         string                       `json:"name"`
	CreatedAt    int64                        `json:"created_at"`
	Direct       string                       `json:"direct"`
	Optimized    string                       `json:"optimized"`
	Elevation    string                       `json:"elevation,omitempty"`
	Gradient     []datastructure.GradientStop `json:"gradient,omitempty"`
	Polyline     string                       `json:"polyline"`
	DirectSVG    string                       `json:"direct_svg"`
	OptimizedSVG string                       `json:"optimized_svg"`
	ElevationSVG string                       `json:"elevation_svg,omitempty"`
	Stats        datastructure.TrackStats     `json:"stats"`
}

func RenderConversionResponse(conv datastructure.TrackConversion) *ConversionResponse {
	return &ConversionResponse{
		ID:           conv.ID,
		Name:         conv.Name,
		CreatedAt:    conv.CreatedAt,
		Direct:       conv.Direct.String(),
		Optimized:    conv.Optimized.String(),
		Elevation:    conv.Elevation.String(),
		Gradient:     conv.Gradient,
		Polyline:     conv.Polyline,
		DirectSVG:    conv.DirectSVG,
		OptimizedSVG: conv.OptimizedSVG,
		ElevationSVG: conv.ElevationSVG,
		Stats:        conv.Stats,
	}
}

// ConversionSummariesResponse model info
//
//	@Description	stored conversions, newest first
type ConversionSummariesResponse struct {
	Conversions []datastructure.ConversionSummary `json:"conversions"`
}

// ConvertTrack
//
//	@Summary		convert raw track coordinates into svg path data
//	@Description	projects the coordinates onto a square canvas, simplifies the line with douglas-peucker and renders direct, optimized and elevation svg paths. The result is archived and returned with its id.
//	@Tags			tracks
//	@Param			body	body	ConvertTrackRequest	true	"track coordinates and optional simplification tolerance"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/tracks/convert [post]
//	@Success		200	{object}	ConversionResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackHandler) ConvertTrack(w http.ResponseWriter, r *http.Request) {
	data := &ConvertTrackRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	points := make([]datastructure.GeoPoint, 0, len(data.Coordinates))
	for _, c := range data.Coordinates {
		p := datastructure.NewGeoPoint(c.Lat, c.Lon)
		if c.Ele != nil {
			p.SetEle(*c.Ele)
		}
		points = append(points, p)
	}

	start := time.Now()
	conv, err := h.svc.ConvertTrack(r.Context(), data.Name, points, data.Epsilon)
	h.recordConversion("json", start, err)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderConversionResponse(conv))
}

// ConvertGPX
//
//	@Summary		convert an uploaded gpx document into svg path data
//	@Description	parses the request body as gpx, flattens all tracks and segments in document order and converts like /tracks/convert. The simplification tolerance comes from the epsilon query parameter.
//	@Tags			tracks
//	@Param			epsilon	query	number	false	"simplification tolerance in canvas units, defaults to the server tolerance"
//	@Accept			application/gpx+xml
//	@Produce		application/json
//	@Router			/tracks/convert-gpx [post]
//	@Success		200	{object}	ConversionResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackHandler) ConvertGPX(w http.ResponseWriter, r *http.Request) {
	epsilon := 0.0
	if raw := r.URL.Query().Get("epsilon"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			render.Render(w, r, ErrInvalidRequest(fmt.Errorf("invalid epsilon %q", raw)))
			return
		}
		epsilon = parsed
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if len(body) == 0 {
		render.Render(w, r, ErrInvalidRequest(errors.New("invalid request: empty body")))
		return
	}

	start := time.Now()
	conv, err := h.svc.ConvertGPX(r.Context(), body, epsilon)
	h.recordConversion("gpx", start, err)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderConversionResponse(conv))
}

// GetConversion
//
//	@Summary		fetch one archived conversion by id
//	@Description	returns the stored conversion with its svg documents and statistics
//	@Tags			tracks
//	@Param			id	path	string	true	"conversion id"
//	@Produce		application/json
//	@Router			/tracks/{id} [get]
//	@Success		200	{object}	ConversionResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackHandler) GetConversion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	conv, err := h.svc.GetConversion(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderConversionResponse(conv))
}

// ListConversions
//
//	@Summary		list archived conversions
//	@Description	returns id, name, creation time and statistics of every stored conversion, newest first
//	@Tags			tracks
//	@Produce		application/json
//	@Router			/tracks [get]
//	@Success		200	{object}	ConversionSummariesResponse
//	@Failure		500	{object}	ErrResponse
func (h *TrackHandler) ListConversions(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListConversions(r.Context())
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &ConversionSummariesResponse{Conversions: summaries})
}

func (h *TrackHandler) recordConversion(source string, start time.Time, err error) {
	if h.metrics != nil {
		h.metrics.RecordConversion(source, start, err)
	}
}

func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var srvErr *server.Error
	if errors.As(err, &srvErr) {
		switch srvErr.Code() {
		case server.ErrNotFound:
			render.Render(w, r, ErrNotFoundRend(srvErr))
			return
		case server.ErrBadParamInput:
			render.Render(w, r, ErrInvalidRequest(srvErr))
			return
		}
	}
	render.Render(w, r, ErrInternalServerErrorRend(errors.New("internal server error")))
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

// ErrResponse model info
//
//	@Description	error response envelope
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrNotFoundRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 404,
		StatusText:     "Resource not found.",
		ErrorText:      err.Error(),
	}
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 500,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}
