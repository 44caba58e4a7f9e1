package core

import (
	"slices"

	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/shared/netcomponents"
)

// FerrisWheel arbitrates who rides and advances the wheel animation. It is
// not safe for concurrent use; the server guards it with its own lock.
type FerrisWheel struct {
	riders   []string
	frame    int
	cycle    int
	maxFrame int
	reset    bool
}

func NewFerrisWheel() *FerrisWheel {
	return &FerrisWheel{
		riders:   []string{},
		maxFrame: cfg.Ferris.IdleMaxFrame,
		reset:    true,
	}
}

// Join queues id as a rider. It reports false when id already rides or the
// wheel is full.
func (w *FerrisWheel) Join(id string) bool {
	if id == "" || slices.Contains(w.riders, id) || len(w.riders) >= cfg.Ferris.MaxRiders {
		return false
	}
	w.riders = append(w.riders, id)
	return true
}

// Remove drops id from the rider list, reporting whether it was there.
func (w *FerrisWheel) Remove(id string) bool {
	i := slices.Index(w.riders, id)
	if i < 0 {
		return false
	}
	w.riders = slices.Delete(w.riders, i, i+1)
	return true
}

func (w *FerrisWheel) Clear() {
	w.riders = []string{}
}

// Boarded reports whether the wheel carries a full load.
func (w *FerrisWheel) Boarded() bool {
	return len(w.riders) >= cfg.Ferris.MaxRiders
}

func (w *FerrisWheel) Riders() []string {
	return slices.Clone(w.riders)
}

// Tick advances the animation by one broadcast period. The frame steps once
// every TicksPerFrame+1 ticks and restarts from zero when a full load boards.
func (w *FerrisWheel) Tick() {
	full := len(w.riders) == cfg.Ferris.MaxRiders
	if full && w.reset {
		w.frame = 0
		w.cycle = 0
		w.reset = false
	}

	if w.cycle < cfg.Ferris.TicksPerFrame {
		w.cycle++
		return
	}
	w.cycle = 0

	if full {
		w.maxFrame = cfg.Ferris.RidingMaxFrame
	} else {
		w.reset = true
		w.maxFrame = cfg.Ferris.IdleMaxFrame
	}

	if w.frame < w.maxFrame {
		w.frame++
	} else {
		w.frame = 0
	}
}

func (w *FerrisWheel) State() netcomponents.FerrisStateData {
	return netcomponents.FerrisStateData{Frame: w.frame, Players: w.Riders()}.Clone()
}
