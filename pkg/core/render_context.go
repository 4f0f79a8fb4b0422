package core

import "sync/atomic"

// RenderContext carries the logger and stats counters every rendering
// package needs instead of reaching for a package-level global. It is safe
// to share read-only across worker goroutines; only the Stats counters are
// mutated concurrently, and those use atomics.
type RenderContext struct {
	Logger Logger
	Stats  *Stats
}

// NewRenderContext builds a context with the given logger and a fresh Stats.
// A nil logger is replaced with a no-op one so callers never need a nil check.
func NewRenderContext(logger Logger) *RenderContext {
	if logger == nil {
		logger = NopLogger{}
	}
	return &RenderContext{Logger: logger, Stats: &Stats{}}
}

// NopLogger discards every log call; used when the caller supplies none.
type NopLogger struct{}

func (NopLogger) Debugw(string, ...interface{}) {}
func (NopLogger) Infow(string, ...interface{})  {}
func (NopLogger) Warnw(string, ...interface{})  {}

// Stats accumulates render-health counters: every suppression of a bad
// sample or excluded primitive increments one of these instead of failing
// silently. All fields are updated with atomic adds so many render workers
// can share one Stats value without a mutex.
type Stats struct {
	SamplesTraced       int64
	SuppressedSamples   int64 // NaN/Inf color or negative PDF, replaced with black
	ExcludedPrimitives  int64 // degenerate geometry dropped at BVH build time
	PassThroughBounces  int64 // invisible-emitter pass-throughs taken
	RussianRouletteKill int64
}

func (s *Stats) addSamplesTraced(n int64)       { atomic.AddInt64(&s.SamplesTraced, n) }
func (s *Stats) addSuppressedSample()           { atomic.AddInt64(&s.SuppressedSamples, 1) }
func (s *Stats) addExcludedPrimitive()          { atomic.AddInt64(&s.ExcludedPrimitives, 1) }
func (s *Stats) addExcludedPrimitives(n int64)  { atomic.AddInt64(&s.ExcludedPrimitives, n) }
func (s *Stats) addPassThroughBounce()          { atomic.AddInt64(&s.PassThroughBounces, 1) }
func (s *Stats) addRussianRouletteKill()        { atomic.AddInt64(&s.RussianRouletteKill, 1) }

// Snapshot returns a copy of the current counters, safe to read after
// rendering has stopped (or concurrently, with the usual atomic caveats).
func (s *Stats) Snapshot() Stats {
	return Stats{
		SamplesTraced:       atomic.LoadInt64(&s.SamplesTraced),
		SuppressedSamples:   atomic.LoadInt64(&s.SuppressedSamples),
		ExcludedPrimitives:  atomic.LoadInt64(&s.ExcludedPrimitives),
		PassThroughBounces:  atomic.LoadInt64(&s.PassThroughBounces),
		RussianRouletteKill: atomic.LoadInt64(&s.RussianRouletteKill),
	}
}

// AddSamplesTraced records n additional traced samples.
func (s *Stats) AddSamplesTraced(n int64) { s.addSamplesTraced(n) }

// AddSuppressedSample records one sample replaced by black due to a
// numerical glitch (NaN/Inf color or negative PDF).
func (s *Stats) AddSuppressedSample() { s.addSuppressedSample() }

// AddExcludedPrimitive records one degenerate primitive dropped at BVH
// build time.
func (s *Stats) AddExcludedPrimitive() { s.addExcludedPrimitive() }

// AddExcludedPrimitives records n degenerate primitives dropped at BVH
// build time, e.g. folding a scene's build-time count into a fresh
// RenderContext's Stats before rendering starts.
func (s *Stats) AddExcludedPrimitives(n int64) { s.addExcludedPrimitives(n) }

// AddPassThroughBounce records one invisible-emitter pass-through taken by
// the integrator.
func (s *Stats) AddPassThroughBounce() { s.addPassThroughBounce() }

// AddRussianRouletteKill records one path terminated early by Russian
// roulette.
func (s *Stats) AddRussianRouletteKill() { s.addRussianRouletteKill() }
