package elevation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jkoick/gpx-to-svg/pkg/geo"
	"github.com/jkoick/gpx-to-svg/pkg/kv"

	"github.com/dhconnelly/rtreego"
	"github.com/klauspost/compress/gzip"
)

const (
	// DefaultTileBaseURL is the public aws terrain tile bucket in skadi
	// layout: {base}/{N47}/{N47E008}.hgt.gz.
	DefaultTileBaseURL = "https://s3.amazonaws.com/elevation-tiles-prod/skadi"

	fetchTimeout = 60 * time.Second
)

type TileFetcher interface {
	FetchTile(ctx context.Context, name string) ([]byte, error)
}

type TileCache interface {
	GetTile(name string) ([]byte, error)
	PutTile(name string, raw []byte) error
}

// HTTPTileFetcher downloads gzipped hgt tiles from a skadi style layout.
type HTTPTileFetcher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPTileFetcher(baseURL string) *HTTPTileFetcher {
	if baseURL == "" {
		baseURL = DefaultTileBaseURL
	}
	return &HTTPTileFetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: fetchTimeout},
	}
}

func (f *HTTPTileFetcher) FetchTile(ctx context.Context, name string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s.hgt.gz", f.baseURL, name[:3], name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building tile request %s: %w", name, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching tile %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error fetching tile %s: status %s", name, resp.Status)
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error decompressing tile %s: %w", name, err)
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("error decompressing tile %s: %w", name, err)
	}
	return raw, nil
}

// TileStore keeps decoded tiles in an r-tree keyed by their degree square,
// pulling them from the cache or the fetcher on first use. Lookups after
// Preload are pure in-memory reads, so one store can serve concurrent
// conversions.
type TileStore struct {
	fetcher TileFetcher
	cache   TileCache

	mu     sync.RWMutex
	tree   *rtreego.Rtree
	loaded map[string]*Tile
}

func NewTileStore(fetcher TileFetcher, cache TileCache) *TileStore {
	return &TileStore{
		fetcher: fetcher,
		cache:   cache,
		tree:    rtreego.NewTree(2, 2, 8),
		loaded:  make(map[string]*Tile),
	}
}

// Preload loads every tile intersecting bounds. A tile that cannot be
// fetched or decoded is logged and skipped; sampling simply misses there.
// Only context cancellation aborts the walk.
func (s *TileStore) Preload(ctx context.Context, bounds geo.Bound) error {
	for lat := int(math.Floor(bounds.MinLat)); lat <= int(math.Floor(bounds.MaxLat)); lat++ {
		for lon := int(math.Floor(bounds.MinLon)); lon <= int(math.Floor(bounds.MaxLon)); lon++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			name := TileName(float64(lat), float64(lon))
			if err := s.ensureTile(ctx, name); err != nil {
				log.Printf("skipping srtm tile %s: %v", name, err)
			}
		}
	}
	return nil
}

func (s *TileStore) ensureTile(ctx context.Context, name string) error {
	s.mu.RLock()
	_, ok := s.loaded[name]
	s.mu.RUnlock()
	if ok {
		return nil
	}

	raw, err := s.rawTile(ctx, name)
	if err != nil {
		return err
	}

	tile, err := DecodeTile(name, raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.loaded[name]; ok {
		return nil
	}
	s.tree.Insert(tile)
	s.loaded[name] = tile
	return nil
}

func (s *TileStore) rawTile(ctx context.Context, name string) ([]byte, error) {
	if s.cache != nil {
		raw, err := s.cache.GetTile(name)
		if err == nil {
			return raw, nil
		}
		if !errors.Is(err, kv.ErrTileNotFound) {
			return nil, err
		}
	}

	raw, err := s.fetcher.FetchTile(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.PutTile(name, raw); err != nil {
			log.Printf("error caching srtm tile %s: %v", name, err)
		}
	}
	return raw, nil
}

// Sample reads the elevation under the coordinate from whichever loaded tile
// covers it. Uncovered coordinates and void cells report ok=false.
func (s *TileStore) Sample(lat, lon float64) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	point := rtreego.Point{lat, lon}
	for _, spatial := range s.tree.SearchIntersect(point.ToRect(1e-9)) {
		tile, ok := spatial.(*Tile)
		if !ok {
			continue
		}
		if ele, ok := tile.Sample(lat, lon); ok {
			return ele, true
		}
	}
	return 0, false
}

// TileCount reports how many tiles are currently resident.
func (s *TileStore) TileCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.loaded)
}
