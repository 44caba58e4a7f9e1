package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FireworksData tracks the burst animation shown while the bench is full.
type FireworksData struct {
	Frame    int // -1 while waiting between bursts
	Cycle    int // ticks spent on the current frame
	NextWait int // ticks left before the next burst
	Size     float32
	Tween    *gween.Tween
}

var Fireworks = donburi.NewComponentType[FireworksData]()

// WavesData tracks the lake wave animation.
type WavesData struct {
	Frame int
	Cycle int
}

var Waves = donburi.NewComponentType[WavesData]()
