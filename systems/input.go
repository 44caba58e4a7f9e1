package systems

import (
	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/components"
	"github.com/cozypark/cozypark/session"
)

// UpdateInput drains the input queue into the held-key set and dispatches
// clicks, resizes and menu buttons.
func UpdateInput(s *session.Session) {
	events, overflowed := s.Input.Drain()
	in := components.Input.Get(s.Local())

	for _, ev := range events {
		switch ev.Kind {
		case session.KeyDown:
			if validAction(ev.Action) {
				in.Held[ev.Action] = true
			}
		case session.KeyUp:
			if validAction(ev.Action) {
				in.Held[ev.Action] = false
			}
		case session.Blur:
			in.Clear()
		case session.Resize:
			ResizeViewport(s, ev.X, ev.Y)
		case session.Click:
			HandleClick(s, ev.X, ev.Y)
		case session.FerrisConfirm:
			ConfirmFerris(s)
		case session.FerrisCancel:
			CancelFerris(s)
		case session.FerrisExit:
			ExitFerris(s)
		}
	}

	// A dropped release must never leave a key stuck.
	if overflowed {
		s.Log.Debugw("[input] queue overflowed, releasing all keys")
		in.Clear()
	}
}

func validAction(a cfg.ActionID) bool {
	return a >= 0 && a < cfg.ActionCount
}
