package starfall

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and pool metrics.
// Only populated when Hero.debug is true.
type debugStats struct {
	tickTime   time.Duration
	renderTime time.Duration
	meteors    int
	respawns   uint64
	offset     Vec2
}

// debugLog prints timing and pool stats to stderr.
func (h *Hero) debugLog(stats debugStats) {
	if !h.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[starfall] tick: %v | render: %v | total: %v\n",
		stats.tickTime, stats.renderTime, stats.tickTime+stats.renderTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[starfall] meteors: %d | respawns: %d | offset: (%.3f, %.3f)\n",
		stats.meteors, stats.respawns, stats.offset.X, stats.offset.Y)
}

// globalDebug mirrors the most recently set Hero debug flag so that code
// without a Hero pointer (asset loading) can check it cheaply.
var globalDebug bool

// debugf writes a diagnostic line to stderr in debug mode.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[starfall] "+format+"\n", args...)
}
