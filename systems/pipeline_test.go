package systems

import (
	"testing"
	"time"

	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/shared/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestLoopHandshakeThenTicks(t *testing.T) {
	h := newHarness(t, nil)
	loop := Install(session.NewGameLoop(h.s, cfg.Loop.Interval))

	h.press(cfg.ActionMoveRight)
	assert.False(t, loop.Frame(ms(16)))
	assert.True(t, loop.Connecting())
	assert.Empty(t, h.sender.sent, "nothing is sent while connecting")
	assert.Equal(t, 2200, h.s.LocalState().X)

	h.inbox.push(
		playerState("u1", netcomponents.ActionIdle),
		protocol.Connected{ID: "u1"},
	)
	assert.False(t, loop.Frame(ms(33)))
	assert.False(t, loop.Connecting())

	require.True(t, loop.Frame(ms(66)))
	assert.Equal(t, 2215, h.s.LocalState().X)
	assert.False(t, loop.Frame(ms(100)))
	assert.True(t, loop.Frame(ms(120)))
	assert.Equal(t, 2230, h.s.LocalState().X)
	assert.Len(t, h.sender.ofType("player"), 2)
}

// Two players at the wheel. The server is played by hand: it only reports
// both riders after both joins.
func TestTwoClientsBoardTheWheel(t *testing.T) {
	a := atWheel(t, "u1")
	b := atWheel(t, "u2")
	b.moveTo(400, 400)
	clients := []*harness{a, b}

	broadcast := func(msgs ...protocol.Message) {
		for _, c := range clients {
			c.inbox.push(msgs...)
			c.tick()
		}
	}

	for _, c := range clients {
		c.s.Input.Push(session.InputEvent{Kind: session.Click, X: 300, Y: 300})
		c.s.Input.Push(session.InputEvent{Kind: session.FerrisConfirm})
		c.tick()
		assert.Len(t, c.sender.ofType("ferris"), 1)
		assert.Equal(t, netcomponents.ActionIdle, c.s.LocalState().Action, "clicking alone never boards")
	}

	broadcast(ferrisState("u1"))
	broadcast(playerState("u1", netcomponents.ActionFerris))
	assert.False(t, a.s.LocalState().Riding())

	broadcast(ferrisState("u1", "u2"))
	for _, c := range clients {
		assert.False(t, c.s.LocalState().Riding())
	}

	broadcast(playerState("u1", netcomponents.ActionFerris), playerState("u2", netcomponents.ActionFerris))
	for _, c := range clients {
		assert.True(t, c.s.LocalState().Riding())
		assert.True(t, c.snapshot().Menu.ExitVisible)
		assert.Empty(t, c.snapshot().VisibleRemotes(), "riders are drawn with the wheel")
	}

	// riders cannot walk
	a.press(cfg.ActionMoveLeft)
	a.tick()
	assert.Equal(t, 300, a.s.LocalState().X)

	a.s.Input.Push(session.InputEvent{Kind: session.FerrisExit})
	a.tick()
	assert.Equal(t, protocol.Ferris(protocol.FerrisExit, "u1"), a.sender.ofType("ferris")[1])

	broadcast(ferrisState(), playerState("u1", netcomponents.ActionIdle), playerState("u2", netcomponents.ActionIdle))
	for _, c := range clients {
		assert.False(t, c.s.LocalState().Riding())
		assert.False(t, c.snapshot().Menu.ExitVisible)
	}
}
