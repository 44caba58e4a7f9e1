package systems

import (
	"testing"

	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/components"
	"github.com/cozypark/cozypark/session"
	"github.com/stretchr/testify/assert"
)

func held(h *harness) [cfg.ActionCount]bool {
	return components.Input.Get(h.s.Local()).Held
}

func TestRepeatedPressDoesNotRetrigger(t *testing.T) {
	h := connected(t, "u1")
	h.press(cfg.ActionMoveLeft, cfg.ActionMoveLeft)
	UpdateInput(h.s)
	assert.True(t, held(h)[cfg.ActionMoveLeft])

	h.release(cfg.ActionMoveLeft)
	UpdateInput(h.s)
	assert.False(t, held(h)[cfg.ActionMoveLeft])
}

func TestBlurReleasesEverything(t *testing.T) {
	h := connected(t, "u1")
	h.press(cfg.ActionMoveUp, cfg.ActionMoveRight)
	h.s.Input.Push(session.InputEvent{Kind: session.Blur})
	UpdateInput(h.s)

	assert.Equal(t, [cfg.ActionCount]bool{}, held(h))
}

func TestOverflowBehavesLikeBlur(t *testing.T) {
	h := connected(t, "u1")
	for i := 0; i < cfg.Network.InputQueueSize; i++ {
		h.press(cfg.ActionMoveDown)
	}
	// this release is dropped
	h.release(cfg.ActionMoveDown)

	UpdateInput(h.s)
	assert.False(t, held(h)[cfg.ActionMoveDown])
}

func TestInvalidActionIgnored(t *testing.T) {
	h := connected(t, "u1")
	h.s.Input.Push(session.InputEvent{Kind: session.KeyDown, Action: cfg.ActionCount})
	h.s.Input.Push(session.InputEvent{Kind: session.KeyDown, Action: -1})
	UpdateInput(h.s)
	assert.Equal(t, [cfg.ActionCount]bool{}, held(h))
}

func TestResizeEventUpdatesViewportSize(t *testing.T) {
	h := connected(t, "u1")
	h.s.Input.Push(session.InputEvent{Kind: session.Resize, X: 1300, Y: 800})
	UpdateInput(h.s)

	vp := h.snapshot().Viewport
	assert.Equal(t, 1280.0, vp.Width)
	assert.Equal(t, 720.0, vp.Height)
}
