package systems

import (
	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/components"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/shared/protocol"
)

// Unit movement per action, in application order.
var actionDeltas = [cfg.ActionCount]struct{ dx, dy int }{
	cfg.ActionMoveUp:    {0, -1},
	cfg.ActionMoveLeft:  {-1, 0},
	cfg.ActionMoveDown:  {0, 1},
	cfg.ActionMoveRight: {1, 0},
}

// UpdateLocalPlayer moves the local player from the held keys, one axis at a
// time, and advances the walk animation.
func UpdateLocalPlayer(s *session.Session) {
	local := s.LocalState()
	in := components.Input.Get(s.Local())

	step := cfg.Player.Step
	if local.Riding() {
		step = cfg.Player.RidingStep
	}

	for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
		if !in.Held[a] {
			continue
		}
		nx := local.X + actionDeltas[a].dx*step
		ny := local.Y + actionDeltas[a].dy*step
		if s.Oracle == nil || s.Oracle.Permits(nx, ny) {
			local.X, local.Y = nx, ny
		}
	}

	up := in.Held[cfg.ActionMoveUp]
	left := in.Held[cfg.ActionMoveLeft]
	down := in.Held[cfg.ActionMoveDown]
	right := in.Held[cfg.ActionMoveRight]

	if left && !right {
		local.Facing = netcomponents.FacingLeft
	} else if right && !left {
		local.Facing = netcomponents.FacingRight
	}

	if local.Riding() {
		local.Frame = 0
		return
	}

	if !in.Any() {
		local.Action = netcomponents.ActionIdle
		local.Frame = 0
		return
	}

	local.Action = netcomponents.ActionMove
	if local.ChangeFrame {
		local.Frame++
		local.ChangeFrame = false
	} else {
		local.ChangeFrame = true
	}
	if local.Frame > cfg.Player.MaxFrame {
		local.Frame = 0
	}
	if (left && right && !(up || down)) || (up && down && !(left || right)) {
		local.Frame = 0
	}
}

func walking(s *session.Session) bool {
	return s.LocalState().Action == netcomponents.ActionMove
}

// SendPlayerState sends the full local state. It runs every tick whether or
// not anything changed.
func SendPlayerState(s *session.Session) {
	s.Send(protocol.PlayerUpdate(*s.LocalState()))
}
