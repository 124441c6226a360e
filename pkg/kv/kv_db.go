package kv

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"

	"github.com/dgraph-io/badger/v4"
	"github.com/uber/h3-go/v4"
)

const (
	// res 12 hexagons have roughly 9m edges, finer than the 30m srtm raster,
	// so one cached sample per cell loses nothing.
	elevationCellResolution = 12

	tileKeyPrefix      = "srtm/"
	elevationKeyPrefix = "ele/"
)

var (
	ErrTileNotFound       = errors.New("srtm tile not found")
	ErrElevationNotCached = errors.New("elevation not cached")
)

type KVDB struct {
	db *badger.DB
}

func NewKVDB(db *badger.DB) *KVDB {
	return &KVDB{db}
}

// PutTile stores one raw srtm tile zstd compressed.
func (k *KVDB) PutTile(name string, raw []byte) error {
	compressed, err := compress(raw)
	if err != nil {
		return fmt.Errorf("error compressing tile %s: %w", name, err)
	}

	return k.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(tileKeyPrefix+name), compressed)
	})
}

// GetTile loads and decompresses one cached srtm tile.
func (k *KVDB) GetTile(name string) ([]byte, error) {
	var val []byte
	val, err := k.get(val, []byte(tileKeyPrefix+name))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrTileNotFound
		}
		return nil, err
	}
	return decompress(val)
}

// PutElevations caches the resolved samples of enhanced points, one entry per
// h3 cell. Points still missing elevation are skipped.
func (k *KVDB) PutElevations(ctx context.Context, points []datastructure.GeoPoint) error {
	batch := k.db.NewWriteBatch()
	defer batch.Cancel()

	saved := 0
	for _, p := range points {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled")
		default:
		}

		if !p.HasEle() {
			continue
		}

		cell := h3.LatLngToCell(h3.NewLatLng(p.Lat, p.Lon), elevationCellResolution)
		val, err := encodeSample(elevationSample{Ele: *p.Ele})
		if err != nil {
			return err
		}
		if err := batch.Set([]byte(elevationKeyPrefix+cell.String()), val); err != nil {
			return err
		}
		saved++
	}

	if err := batch.Flush(); err != nil {
		log.Printf("error saving elevation samples: %v", err)
		return err
	}
	return nil
}

// GetElevation looks the sample cache up by cell, falling back to the
// immediate neighbor ring before giving up.
func (k *KVDB) GetElevation(lat, lon float64) (float64, error) {
	home := h3.NewLatLng(lat, lon)
	cell := h3.LatLngToCell(home, elevationCellResolution)

	for _, currCell := range h3.GridDisk(cell, 1) {
		var val []byte
		val, err := k.get(val, []byte(elevationKeyPrefix+currCell.String()))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			return 0, err
		}

		sample, err := decodeSample(val)
		if err != nil {
			return 0, err
		}
		return sample.Ele, nil
	}

	return 0, ErrElevationNotCached
}

func (k *KVDB) get(val, key []byte) ([]byte, error) {
	err := k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		val, err = item.ValueCopy(nil)
		if err != nil {
			return err
		}

		return nil
	})
	return val, err
}

func (k *KVDB) Close() {
	k.db.Close()
}
