// Command demo is a thin wiring example: it builds a scene, calls
// render.Render, and streams the finished pixels to stdout as ASCII text.
// It does not parse a scene-description file, draw a progress UI, or
// encode a PNG - those remain external collaborators.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/kesseloak/lumenforge/pkg/camera"
	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/render"
	"github.com/kesseloak/lumenforge/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "built-in scene: default or cornell")
	width := flag.Int("width", 400, "image width in pixels")
	workers := flag.Int("workers", 0, "parallel worker count (0 = single-threaded)")
	seed := flag.Int64("seed", 42, "global RNG seed")
	quiet := flag.Bool("quiet", false, "suppress progress logging")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	sugar := logger.Sugar()

	s, cam, err := buildScene(*sceneName, *width)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lumenforge:", err)
		os.Exit(1)
	}

	sink := newFrameSink(cam.ImageWidth, cam.ImageHeight, os.Stdout)

	params := render.Params{
		Quiet:       *quiet,
		WorkerCount: *workers,
		GlobalSeed:  *seed,
		BandRows:    8,
	}

	start := time.Now()
	stats, err := render.Render(s, cam, params, sink, sugar)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lumenforge: render failed:", err)
		os.Exit(1)
	}

	if err := sink.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "lumenforge: writing image:", err)
		os.Exit(1)
	}

	if !*quiet {
		sugar.Infow("render complete",
			"elapsed", time.Since(start),
			"width", stats.ImageWidth, "height", stats.ImageHeight,
			"suppressedSamples", stats.Counters.SuppressedSamples,
			"excludedPrimitives", stats.Counters.ExcludedPrimitives,
		)
	}
}

func buildScene(name string, width int) (*core.Scene, *camera.Camera, error) {
	switch name {
	case "default":
		s, cam := scene.NewDefaultScene(width, 16.0/9.0)
		return s, cam, nil
	case "cornell":
		s, cam := scene.NewCornellScene(width)
		return s, cam, nil
	default:
		return nil, nil, fmt.Errorf("unknown scene %q (want default or cornell)", name)
	}
}

// frameSink buffers every pixel in memory so the final write is always in
// row-major scanline order regardless of whether the render used the
// single-threaded or parallel scheduler.
type frameSink struct {
	width, height int
	pixels        []core.Color
	out           *bufio.Writer
}

func newFrameSink(width, height int, w *os.File) *frameSink {
	return &frameSink{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
		out:    bufio.NewWriter(w),
	}
}

func (s *frameSink) Init(bitDepth int) error { return nil }

func (s *frameSink) Write(i, j int, color core.Color) error {
	s.pixels[j*s.width+i] = color
	return nil
}

// Flush writes every buffered pixel as "R G B\r\n", one line per pixel,
// each channel an integer in [0,255], in row-major order.
func (s *frameSink) Flush() error {
	for _, c := range s.pixels {
		r := int(c.X*255.999 + 0.5)
		g := int(c.Y*255.999 + 0.5)
		b := int(c.Z*255.999 + 0.5)
		if _, err := fmt.Fprintf(s.out, "%d %d %d\r\n", clampByte(r), clampByte(g), clampByte(b)); err != nil {
			return err
		}
	}
	return s.out.Flush()
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
