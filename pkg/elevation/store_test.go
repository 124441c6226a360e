package elevation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jkoick/gpx-to-svg/pkg/elevation"
	"github.com/jkoick/gpx-to-svg/pkg/geo"
	"github.com/jkoick/gpx-to-svg/pkg/kv"

	"github.com/stretchr/testify/assert"
)

type fakeFetcher struct {
	fetchFn func(ctx context.Context, name string) ([]byte, error)
	calls   int
}

func (f *fakeFetcher) FetchTile(ctx context.Context, name string) ([]byte, error) {
	f.calls++
	return f.fetchFn(ctx, name)
}

type mapCache struct {
	tiles map[string][]byte
	puts  int
}

func newMapCache() *mapCache {
	return &mapCache{tiles: make(map[string][]byte)}
}

func (c *mapCache) GetTile(name string) ([]byte, error) {
	raw, ok := c.tiles[name]
	if !ok {
		return nil, kv.ErrTileNotFound
	}
	return raw, nil
}

func (c *mapCache) PutTile(name string, raw []byte) error {
	c.puts++
	c.tiles[name] = raw
	return nil
}

func flatTile(ele int16) []byte {
	return buildTileBytes(3, func(row, col int) int16 { return ele })
}

func TestTileStorePreload(t *testing.T) {
	zurich := geo.Bound{MinLat: 47.3, MaxLat: 47.4, MinLon: 8.5, MaxLon: 8.6}

	t.Run("fetches each tile once", func(t *testing.T) {
		fetcher := &fakeFetcher{fetchFn: func(_ context.Context, name string) ([]byte, error) {
			return flatTile(420), nil
		}}
		cache := newMapCache()
		store := elevation.NewTileStore(fetcher, cache)

		assert.Nil(t, store.Preload(context.Background(), zurich))
		assert.Nil(t, store.Preload(context.Background(), zurich))

		assert.Equal(t, 1, fetcher.calls)
		assert.Equal(t, 1, cache.puts)
		assert.Equal(t, 1, store.TileCount())
	})

	t.Run("prefers the cache over the fetcher", func(t *testing.T) {
		fetcher := &fakeFetcher{fetchFn: func(_ context.Context, name string) ([]byte, error) {
			return nil, errors.New("should not be called")
		}}
		cache := newMapCache()
		cache.tiles["N47E008"] = flatTile(555)

		store := elevation.NewTileStore(fetcher, cache)
		assert.Nil(t, store.Preload(context.Background(), zurich))
		assert.Equal(t, 0, fetcher.calls)

		ele, ok := store.Sample(47.35, 8.55)
		assert.True(t, ok)
		assert.Equal(t, 555.0, ele)
	})

	t.Run("skips tiles that fail to fetch", func(t *testing.T) {
		fetcher := &fakeFetcher{fetchFn: func(_ context.Context, name string) ([]byte, error) {
			return nil, errors.New("503 slow down")
		}}
		store := elevation.NewTileStore(fetcher, nil)

		assert.Nil(t, store.Preload(context.Background(), zurich))
		assert.Equal(t, 0, store.TileCount())

		_, ok := store.Sample(47.35, 8.55)
		assert.False(t, ok)
	})

	t.Run("stops on a cancelled context", func(t *testing.T) {
		fetcher := &fakeFetcher{fetchFn: func(_ context.Context, name string) ([]byte, error) {
			return flatTile(1), nil
		}}
		store := elevation.NewTileStore(fetcher, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := store.Preload(ctx, zurich)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, fetcher.calls)
	})
}

func TestTileStoreSample(t *testing.T) {
	// two tiles side by side, track crossing the shared meridian
	fetcher := &fakeFetcher{fetchFn: func(_ context.Context, name string) ([]byte, error) {
		if name == "N47E008" {
			return flatTile(400), nil
		}
		return flatTile(900), nil
	}}
	store := elevation.NewTileStore(fetcher, nil)

	bounds := geo.Bound{MinLat: 47.4, MaxLat: 47.6, MinLon: 8.9, MaxLon: 9.1}
	assert.Nil(t, store.Preload(context.Background(), bounds))
	assert.Equal(t, 2, store.TileCount())

	t.Run("west of the meridian", func(t *testing.T) {
		ele, ok := store.Sample(47.5, 8.9)
		assert.True(t, ok)
		assert.Equal(t, 400.0, ele)
	})

	t.Run("east of the meridian", func(t *testing.T) {
		ele, ok := store.Sample(47.5, 9.1)
		assert.True(t, ok)
		assert.Equal(t, 900.0, ele)
	})

	t.Run("off every loaded tile", func(t *testing.T) {
		_, ok := store.Sample(-33.9, 18.4)
		assert.False(t, ok)
	})
}
