package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/pprof"
	"strings"

	_ "github.com/jkoick/gpx-to-svg/docs"
	"github.com/jkoick/gpx-to-svg/pkg/archive"
	"github.com/jkoick/gpx-to-svg/pkg/elevation"
	"github.com/jkoick/gpx-to-svg/pkg/engine/converter"
	"github.com/jkoick/gpx-to-svg/pkg/geo"
	"github.com/jkoick/gpx-to-svg/pkg/gpxparser"
	"github.com/jkoick/gpx-to-svg/pkg/kv"
	"github.com/jkoick/gpx-to-svg/pkg/server/rest"
	"github.com/jkoick/gpx-to-svg/pkg/server/rest/service"

	"github.com/dgraph-io/badger/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var (
	listenAddr  = flag.String("listenaddr", ":5000", "server listen address")
	archiveDir  = flag.String("archivedir", "./conversion-archive", "pebble directory the conversions are stored in")
	epsilon     = flag.Float64("epsilon", geo.DefaultEpsilon, "default douglas-peucker tolerance in canvas units")
	useSRTM     = flag.Bool("srtm", false, "fill missing elevations from srtm terrain tiles")
	elevationDB = flag.String("elevationdb", "./elevation-cache", "badger directory for the srtm tile cache")
	srtmURL     = flag.String("srtmurl", elevation.DefaultTileBaseURL, "base url of the srtm tile bucket")
	memprofile  = flag.String("memprofile", "", "write memory profile to this file")
)

//	@title			gpx-to-svg API
//	@version		1.0
//	@description	converts gpx tracks into simplified svg vector paths

//	@contact.name	jkoick
//	@description 	converts gpx tracks into svg path data: web mercator projection onto a square canvas, douglas-peucker simplification and smooth quadratic path output, plus an elevation profile chart

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	var enhancer converter.ElevationEnhancer = elevation.NewNoopEnhancer()
	if *useSRTM {
		db, err := badger.Open(badger.DefaultOptions(*elevationDB))
		if err != nil {
			log.Fatal(err)
		}
		kvDB := kv.NewKVDB(db)
		defer kvDB.Close()

		store := elevation.NewTileStore(elevation.NewHTTPTileFetcher(*srtmURL), kvDB)
		enhancer = elevation.NewSRTMEnhancer(store, kvDB)
	}

	arc, err := archive.Open(*archiveDir)
	if err != nil {
		log.Fatal(err)
	}
	defer arc.Close()

	recordMemProfile(memprofile, "archive_open")

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:5000/swagger/doc.json"), //The url pointing to API definition
	))

	trackSvc := service.NewTrackService(
		converter.NewTrackConverter(enhancer, *epsilon),
		gpxparser.NewGPXParser(),
		arc,
	)
	recordMemProfile(memprofile, "service_init")

	rest.TracksRouter(r, trackSvc, m)

	fmt.Printf("\n GPX -> SVG conversion engine ready!!")
	fmt.Printf("\nserver started at %s\n", *listenAddr)

	log.Fatal(http.ListenAndServe(*listenAddr, r))
}

func recordMemProfile(memprofile *string, name string) {
	if *memprofile != "" {
		*memprofile = strings.Replace(*memprofile, ".mprof", fmt.Sprintf("%s.mprof", name), -1)
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

}
