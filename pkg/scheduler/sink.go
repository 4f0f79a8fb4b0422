// Package scheduler distributes per-pixel integrator work across the
// image: a single-threaded row-major variant for streaming, and a
// parallel row-band variant with deterministic per-band RNG seeding.
package scheduler

import "github.com/kesseloak/lumenforge/pkg/core"

// Sink is the external pixel consumer: Init is called once before any
// pixel, Write once per completed (tonemapped) pixel. The core neither
// opens files nor controls a UI; cmd/demo supplies a concrete Sink.
type Sink interface {
	Init(bitDepth int) error
	Write(i, j int, color core.Color) error
}
