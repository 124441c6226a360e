package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"

	"github.com/jkoick/gpx-to-svg/pkg/concurrent"
	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
	"github.com/jkoick/gpx-to-svg/pkg/elevation"
	"github.com/jkoick/gpx-to-svg/pkg/engine/converter"
	"github.com/jkoick/gpx-to-svg/pkg/geo"
	"github.com/jkoick/gpx-to-svg/pkg/gpxparser"
	"github.com/jkoick/gpx-to-svg/pkg/kv"
	"github.com/jkoick/gpx-to-svg/pkg/pdf"

	"github.com/dgraph-io/badger/v4"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

var (
	input       = flag.String("input", "input", "gpx file or directory of gpx files")
	output      = flag.String("output", "output", "directory the converted documents are written to")
	epsilon     = flag.Float64("epsilon", geo.DefaultEpsilon, "douglas-peucker tolerance in canvas units")
	workers     = flag.Int("workers", 4, "number of parallel conversions")
	renderPDF   = flag.Bool("pdf", false, "also render a printable pdf sheet per track")
	useSRTM     = flag.Bool("srtm", false, "fill missing elevations from srtm terrain tiles")
	elevationDB = flag.String("elevationdb", "./elevation-cache", "badger directory for the srtm tile cache")
	srtmURL     = flag.String("srtmurl", elevation.DefaultTileBaseURL, "base url of the srtm tile bucket")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile  = flag.String("memprofile", "", "write memory profile to this file")
)

type convertResult struct {
	name  string
	stats datastructure.TrackStats
	err   error
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		// https://go.dev/blog/pprof
		// ./bin/gpx-to-svg-convert -cpuprofile=convertcpu.prof -memprofile=convertmem.mprof
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	files, err := collectInputs(*input)
	if err != nil {
		log.Fatal(err)
	}
	if len(files) == 0 {
		log.Fatalf("no gpx files found under %s", *input)
	}

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

	trackConverter := converter.NewTrackConverter(enhancer, *epsilon)
	parser := gpxparser.NewGPXParser()

	if err := os.MkdirAll(*output, 0755); err != nil {
		log.Fatal(err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/1][reset] converting gpx tracks ..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	ctx := context.Background()

	pool := concurrent.NewWorkerPool[concurrent.ConvertFileJob, convertResult](*workers, len(files))
	for _, file := range files {
		pool.AddJob(concurrent.NewConvertFileJob(file, *output, *renderPDF))
	}
	pool.Close()
	pool.Start(func(job concurrent.ConvertFileJob) convertResult {
		res := convertFile(ctx, trackConverter, parser, job)
		bar.Add(1)
		return res
	})
	pool.Wait()

	recordMemProfile(memprofile, "converted_all_tracks")

	failed := 0
	for res := range pool.CollectResults() {
		if res.err != nil {
			failed++
			log.Printf("error converting %s: %v", res.name, res.err)
			continue
		}
		log.Printf("converted %s: %d -> %d points (%.2f%% compression, %.2f km)",
			res.name, res.stats.PointCount, res.stats.SimplifiedCount,
			res.stats.CompressionPct, res.stats.DistanceKm)
	}

	fmt.Printf("\nconverted %d/%d tracks into %s\n", len(files)-failed, len(files), *output)
}

// collectInputs accepts a single gpx file or a directory to scan.
func collectInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return filepath.Glob(filepath.Join(path, "*.gpx"))
}

func convertFile(ctx context.Context, trackConverter *converter.TrackConverter,
	parser *gpxparser.GPXParser, job concurrent.ConvertFileJob) convertResult {
	base := gpxparser.FileStem(job.InputPath)

	track, err := parser.ParseFile(job.InputPath)
	if err != nil {
		return convertResult{name: base, err: err}
	}

	conv, err := trackConverter.Convert(ctx, track.Name, track.Points)
	if err != nil {
		return convertResult{name: base, err: err}
	}

	outDir := filepath.Join(job.OutputDir, base)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return convertResult{name: base, err: err}
	}

	documents := map[string]string{
		base + "_direct.svg":    conv.DirectSVG,
		base + "_optimized.svg": conv.OptimizedSVG,
	}
	if conv.ElevationSVG != "" {
		documents[base+"_elevation.svg"] = conv.ElevationSVG
	}
	for name, doc := range documents {
		if err := os.WriteFile(filepath.Join(outDir, name), []byte(doc), 0644); err != nil {
			return convertResult{name: base, err: err}
		}
	}

	if job.RenderPDF {
		if err := pdf.SaveTrackSheet(filepath.Join(outDir, base+"_track.pdf"), &conv); err != nil {
			return convertResult{name: base, err: err}
		}
	}

	return convertResult{name: base, stats: conv.Stats}
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
