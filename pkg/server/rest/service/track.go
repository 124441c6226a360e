package service

import (
	"context"
	"errors"

	"github.com/jkoick/gpx-to-svg/pkg/archive"
	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
	"github.com/jkoick/gpx-to-svg/pkg/engine/converter"
	"github.com/jkoick/gpx-to-svg/pkg/server"
)

type TrackConverter interface {
	ConvertWithEpsilon(ctx context.Context, name string, points []datastructure.GeoPoint,
		epsilon float64) (datastructure.TrackConversion, error)
}

type GPXParser interface {
	ParseBytes(data []byte) (datastructure.Track, error)
}

type ConversionArchive interface {
	Save(conv *datastructure.TrackConversion) (string, error)
	Get(id string) (datastructure.TrackConversion, error)
	List() ([]datastructure.ConversionSummary, error)
}

type TrackService struct {
	converter TrackConverter
	parser    GPXParser
	archive   ConversionArchive
}

func NewTrackService(converter TrackConverter, parser GPXParser, archive ConversionArchive) *TrackService {
	return &TrackService{converter: converter, parser: parser, archive: archive}
}

// ConvertTrack runs the pipeline over already parsed points and archives the
// result. epsilon <= 0 selects the server default tolerance.
func (uc *TrackService) ConvertTrack(ctx context.Context, name string,
	points []datastructure.GeoPoint, epsilon float64) (datastructure.TrackConversion, error) {
	conv, err := uc.converter.ConvertWithEpsilon(ctx, name, points, epsilon)
	if err != nil {
		if errors.Is(err, converter.ErrNoTrackPoints) {
			return datastructure.TrackConversion{}, server.WrapErrorf(err, server.ErrBadParamInput,
				"the track has no points, nothing to convert")
		}
		return datastructure.TrackConversion{}, server.WrapErrorf(err, server.ErrInternalServerError,
			"internal server error")
	}

	if _, err := uc.archive.Save(&conv); err != nil {
		return datastructure.TrackConversion{}, server.WrapErrorf(err, server.ErrInternalServerError,
			"internal server error")
	}
	return conv, nil
}

// ConvertGPX parses a raw gpx document and converts its track.
func (uc *TrackService) ConvertGPX(ctx context.Context, data []byte,
	epsilon float64) (datastructure.TrackConversion, error) {
	track, err := uc.parser.ParseBytes(data)
	if err != nil {
		return datastructure.TrackConversion{}, server.WrapErrorf(err, server.ErrBadParamInput,
			"the uploaded file is not a valid gpx document")
	}
	return uc.ConvertTrack(ctx, track.Name, track.Points, epsilon)
}

func (uc *TrackService) GetConversion(ctx context.Context, id string) (datastructure.TrackConversion, error) {
	conv, err := uc.archive.Get(id)
	if err != nil {
		if errors.Is(err, archive.ErrConversionNotFound) {
			return datastructure.TrackConversion{}, server.WrapErrorf(err, server.ErrNotFound,
				"no conversion stored under id %s", id)
		}
		return datastructure.TrackConversion{}, server.WrapErrorf(err, server.ErrInternalServerError,
			"internal server error")
	}
	return conv, nil
}

func (uc *TrackService) ListConversions(ctx context.Context) ([]datastructure.ConversionSummary, error) {
	summaries, err := uc.archive.List()
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	return summaries, nil
}
