package systems

import (
	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/shared/parkmap"
)

// WithinArea reports whether a player box at (x, y) reaches into area. On
// each axis either edge of the box must lie strictly inside the area.
func WithinArea(x, y float64, area parkmap.Rect) bool {
	w := float64(cfg.Player.Width)
	h := float64(cfg.Player.Height)

	inX := (x > area.X && x < area.X+area.W) || (x+w > area.X && x+w < area.X+area.W)
	inY := (y > area.Y && y < area.Y+area.H) || (y+h > area.Y && y+h < area.Y+area.H)
	return inX && inY
}

func localWithin(s *session.Session, area parkmap.Rect) bool {
	local := s.LocalState()
	return WithinArea(float64(local.X), float64(local.Y), area)
}

// HandleClick routes a world-space click to the first fixture the local
// player stands in: dining table, then ferris wheel, then bench.
func HandleClick(s *session.Session, x, y float64) {
	if !s.Ready() {
		return
	}

	switch {
	case localWithin(s, s.Layout.Dining):
		ClickDining(s, x)
	case localWithin(s, s.Layout.FerrisWheel):
		OpenFerrisMenu(s)
	case localWithin(s, s.Layout.Bench):
		ClickBench(s, x)
	default:
		s.Log.Debugw("[input] click outside fixtures", "x", x, "y", y)
	}
}
