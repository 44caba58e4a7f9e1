package systems

import (
	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/components"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/shared/protocol"
)

// Boarding the ferris wheel is server-arbitrated: the client only asks to
// join, and becomes a rider once the server reports two riders including it.

// OpenFerrisMenu shows the join menu when there is room on the wheel.
func OpenFerrisMenu(s *session.Session) {
	fx := s.Fixtures()
	ferris := netcomponents.NetFerrisState.Get(fx)
	menu := components.FerrisMenu.Get(fx)

	if s.LocalState().Riding() || ferris.Has(s.LocalID()) || len(ferris.Players) >= cfg.Ferris.MaxRiders {
		return
	}
	menu.Open = true
	menu.Waiting = false
}

// ConfirmFerris asks to join. The menu stays open as a waiting indicator.
func ConfirmFerris(s *session.Session) {
	menu := components.FerrisMenu.Get(s.Fixtures())
	if !menu.Open || menu.Waiting || !s.Ready() {
		return
	}
	menu.Waiting = true
	s.Send(protocol.Ferris(protocol.FerrisJoin, s.LocalID()))
}

// CancelFerris withdraws a join request and closes the menu.
func CancelFerris(s *session.Session) {
	if !s.Ready() {
		return
	}
	menu := components.FerrisMenu.Get(s.Fixtures())
	menu.Open = false
	menu.Waiting = false
	s.Send(protocol.Ferris(protocol.FerrisCancel, s.LocalID()))
}

// ExitFerris asks the server to end the ride.
func ExitFerris(s *session.Session) {
	if !s.LocalState().Riding() {
		return
	}
	s.Send(protocol.Ferris(protocol.FerrisExit, s.LocalID()))
}

// UpdateFerris withdraws a stale registration and sets menu visibility.
func UpdateFerris(s *session.Session) {
	fx := s.Fixtures()
	ferris := netcomponents.NetFerrisState.Get(fx)
	menu := components.FerrisMenu.Get(fx)

	if ferris.Has(s.LocalID()) && !localWithin(s, s.Layout.FerrisWheel) {
		s.Log.Debugw("[ferris] registered but away from the wheel, cancelling", "id", s.LocalID())
		CancelFerris(s)
	}

	riding := s.LocalState().Riding()
	menu.ExitVisible = riding
	if riding {
		menu.Open = false
		menu.Waiting = false
	}
}
