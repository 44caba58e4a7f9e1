package core

import (
	"testing"

	cfg "github.com/cozypark/cozypark/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFerrisJoinRules(t *testing.T) {
	w := NewFerrisWheel()

	assert.True(t, w.Join("a"))
	assert.False(t, w.Join("a"), "duplicate join")
	assert.True(t, w.Join("b"))
	assert.False(t, w.Join("c"), "wheel full")
	assert.False(t, w.Join(""))
	assert.Equal(t, []string{"a", "b"}, w.Riders())
	assert.True(t, w.Boarded())

	assert.True(t, w.Remove("a"))
	assert.False(t, w.Remove("a"))
	assert.Equal(t, []string{"b"}, w.Riders())

	w.Clear()
	assert.Empty(t, w.Riders())
	assert.NotNil(t, w.State().Players)
}

func TestFerrisIdleAnimation(t *testing.T) {
	w := NewFerrisWheel()
	period := cfg.Ferris.TicksPerFrame + 1

	var frames []int
	for range period * 4 {
		w.Tick()
		frames = append(frames, w.State().Frame)
	}

	// frame steps on the last tick of each period and wraps after IdleMaxFrame
	assert.Equal(t, 0, frames[period-2])
	assert.Equal(t, 1, frames[period-1])
	assert.Equal(t, 2, frames[2*period-1])
	assert.Equal(t, 0, frames[3*period-1])
	assert.Equal(t, 1, frames[4*period-1])
}

func TestFerrisBoardingResetsAndWidensRange(t *testing.T) {
	w := NewFerrisWheel()
	period := cfg.Ferris.TicksPerFrame + 1

	for range period + 3 {
		w.Tick()
	}
	require.Equal(t, 1, w.State().Frame)

	w.Join("a")
	w.Join("b")
	w.Tick()
	assert.Equal(t, 0, w.State().Frame, "boarding restarts the wheel")

	seen := map[int]bool{}
	for range period * (cfg.Ferris.RidingMaxFrame + 1) {
		w.Tick()
		seen[w.State().Frame] = true
	}
	for f := 0; f <= cfg.Ferris.RidingMaxFrame; f++ {
		assert.True(t, seen[f], "frame %d", f)
	}
	assert.False(t, seen[cfg.Ferris.RidingMaxFrame+1])
}
