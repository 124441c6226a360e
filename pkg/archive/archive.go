package archive

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
	"github.com/jkoick/gpx-to-svg/pkg/util"

	"github.com/cockroachdb/pebble"
	"github.com/kelindar/binary"
	"golang.org/x/exp/rand"
)

const conversionKeyPrefix = "conv/"

var ErrConversionNotFound = errors.New("conversion not found")

// Archive persists finished conversions in a pebble store so the api can
// serve them back later. Values are binary encoded and zstd compressed;
// the embedded SVG documents compress well.
type Archive struct {
	db *pebble.DB
}

func Open(dir string) (*Archive, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("error opening conversion archive: %w", err)
	}
	return &Archive{db: db}, nil
}

// NewConversionID builds a sortable id from the creation time plus a random
// suffix to keep same-second saves apart.
func NewConversionID(now time.Time) string {
	return fmt.Sprintf("%s-%04x", now.UTC().Format("20060102T150405"), rand.Intn(1<<16))
}

// Save stores the conversion, assigning it an id when it has none, and
// returns the id it is stored under.
func (a *Archive) Save(conv *datastructure.TrackConversion) (string, error) {
	if conv.ID == "" {
		conv.ID = NewConversionID(time.Now())
	}

	encoded, err := binary.Marshal(conv)
	if err != nil {
		return "", fmt.Errorf("error encoding conversion %s: %w", conv.ID, err)
	}

	var compressed bytes.Buffer
	if err := datastructure.CompressData(encoded, &compressed); err != nil {
		return "", fmt.Errorf("error compressing conversion %s: %w", conv.ID, err)
	}

	if err := a.db.Set(conversionKey(conv.ID), compressed.Bytes(), pebble.Sync); err != nil {
		return "", fmt.Errorf("error saving conversion %s: %w", conv.ID, err)
	}
	return conv.ID, nil
}

// Get loads one conversion by id.
func (a *Archive) Get(id string) (datastructure.TrackConversion, error) {
	val, closer, err := a.db.Get(conversionKey(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return datastructure.TrackConversion{}, ErrConversionNotFound
		}
		return datastructure.TrackConversion{}, fmt.Errorf("error reading conversion %s: %w", id, err)
	}

	// val is only valid until the closer is released
	encoded, err := datastructure.DecompressDataToBytes(val)
	closer.Close()
	if err != nil {
		return datastructure.TrackConversion{}, fmt.Errorf("error decompressing conversion %s: %w", id, err)
	}

	var conv datastructure.TrackConversion
	if err := binary.Unmarshal(encoded, &conv); err != nil {
		return datastructure.TrackConversion{}, fmt.Errorf("error decoding conversion %s: %w", id, err)
	}
	return conv, nil
}

// List walks every stored conversion and returns their summaries newest
// first.
func (a *Archive) List() ([]datastructure.ConversionSummary, error) {
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(conversionKeyPrefix),
		UpperBound: keyUpperBound([]byte(conversionKeyPrefix)),
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning conversion archive: %w", err)
	}
	defer iter.Close()

	summaries := make([]datastructure.ConversionSummary, 0)
	for iter.First(); iter.Valid(); iter.Next() {
		encoded, err := datastructure.DecompressDataToBytes(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("error decompressing conversion %s: %w", iter.Key(), err)
		}

		var conv datastructure.TrackConversion
		if err := binary.Unmarshal(encoded, &conv); err != nil {
			return nil, fmt.Errorf("error decoding conversion %s: %w", iter.Key(), err)
		}
		summaries = append(summaries, conv.Summary())
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("error scanning conversion archive: %w", err)
	}

	return util.QuickSortG(summaries, func(a, b datastructure.ConversionSummary) int {
		if a.CreatedAt != b.CreatedAt {
			if a.CreatedAt > b.CreatedAt {
				return -1
			}
			return 1
		}
		return strings.Compare(b.ID, a.ID)
	}), nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func conversionKey(id string) []byte {
	return []byte(conversionKeyPrefix + id)
}

func keyUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
