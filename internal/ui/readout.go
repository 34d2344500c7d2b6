package ui

import (
	"fmt"
	"time"

	"fogcrawl/internal/core"
)

// Field is the fog state the HUD reports on.
type Field interface {
	Name() string
	ExplorationPercent() float64
	PixelsCleared() int
	TickCount() int
	TickElapsed() time.Duration
	MeanCorruption() float64
	Parameters() core.ParameterSnapshot
}

// Round is the per-round observer state the HUD reports on.
type Round interface {
	Over() bool
	Health() float64
}

// Readout builds the HUD text, one entry per line. Parameter groups follow
// the live statistics.
func Readout(f Field, r Round) []string {
	lines := []string{
		fmt.Sprintf("%s round", f.Name()),
		"",
		fmt.Sprintf("explored   %6.2f%%", f.ExplorationPercent()),
		fmt.Sprintf("cleared    %7d", f.PixelsCleared()),
		fmt.Sprintf("corruption %6.2f%%", f.MeanCorruption()*100),
		fmt.Sprintf("ticks      %7d", f.TickCount()),
		fmt.Sprintf("next tick  %7s", nextTick(f)),
		fmt.Sprintf("health     %7.0f", r.Health()),
	}
	if r.Over() {
		lines = append(lines, "", "RECLAIMED - press R")
	}
	for _, g := range f.Parameters().Groups {
		title := g.Name
		if g.Summary != "" {
			title = fmt.Sprintf("%s (%s)", g.Name, g.Summary)
		}
		lines = append(lines, "", title)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-18s %s", p.Label, p.Value))
		}
	}
	return lines
}

func nextTick(f Field) string {
	p, ok := f.Parameters().Lookup("interval")
	if !ok {
		return "--"
	}
	interval, err := time.ParseDuration(p.Value)
	if err != nil {
		return "--"
	}
	left := interval - f.TickElapsed()
	if left < 0 {
		left = 0
	}
	return left.Round(100 * time.Millisecond).String()
}
