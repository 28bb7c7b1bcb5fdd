// Command primdemo draws every prim primitive and writes one PNG per
// rendering backend.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/prim"
	"github.com/gogpu/prim/backend"
	_ "github.com/gogpu/prim/backend/software"
	_ "github.com/gogpu/prim/backend/wgpu"
	"github.com/gogpu/prim/recording"
)

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		scale    = flag.Float64("scale", 1, "content scale factor")
		backends = flag.String("backends", backend.BackendSoftware, "comma-separated backends to render with ("+strings.Join(backend.Available(), ", ")+")")
		outDir   = flag.String("out", ".", "output directory")
		record   = flag.String("record", "", "also save the recorded draw calls to this file")
		logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
		logFile  = flag.String("log-file", "", "write logs to this rotating file instead of stderr")
	)
	flag.Parse()

	setupLogging(*logLevel, *logFile)

	rec := recording.NewDevice()
	if err := drawScene(rec, *width, *height, *scale); err != nil {
		log.Fatalf("Failed to draw scene: %v", err)
	}
	scene := rec.Finish()

	if *record != "" {
		if err := scene.Save(*record); err != nil {
			log.Fatalf("Failed to save recording: %v", err)
		}
		log.Printf("Recording saved to %s\n", *record)
	}

	p := message.NewPrinter(language.English)
	s := scene.Stats()
	p.Printf("Scene: %d draw calls, %d vertices, %d primitives\n", s.DrawCalls, s.Vertices, s.Primitives)

	var g errgroup.Group
	for _, name := range strings.Split(*backends, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		g.Go(func() error {
			path := filepath.Join(*outDir, fmt.Sprintf("primdemo-%s.png", name))
			if err := render(name, scene, *width, *height, path); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			log.Printf("Demo saved to %s (%dx%d)\n", path, *width, *height)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
}

// setupLogging routes prim's structured logs to stderr or a rotating file.
func setupLogging(level, file string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		log.Fatalf("Invalid log level %q: %v", level, err)
	}

	var w io.Writer = os.Stderr
	if file != "" {
		w = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    16, // MB
			MaxBackups: 2,
		}
	}
	prim.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
}

// render replays scene on a fresh target of the named backend and writes
// the frame as PNG.
func render(name string, scene *recording.Recording, width, height int, path string) error {
	b := backend.Get(name)
	if b == nil {
		return backend.ErrBackendNotAvailable
	}
	if err := b.Init(); err != nil {
		return err
	}
	defer b.Close()

	target, err := b.NewTarget(width, height)
	if err != nil {
		return err
	}
	defer target.Close()

	if err := target.BeginFrame(prim.RGB(0.08, 0.09, 0.12)); err != nil {
		return err
	}
	if err := scene.Playback(target); err != nil {
		return err
	}
	if err := target.EndFrame(); err != nil {
		return err
	}

	img, err := target.Image()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
