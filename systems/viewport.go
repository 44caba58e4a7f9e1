package systems

import (
	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/components"
	"github.com/cozypark/cozypark/session"
)

// ViewportSize derives the visible area from the window size: a 16:9 box
// inset by the margin and capped by the maximum size and the park size.
func ViewportSize(winW, winH float64) (w, h float64) {
	vc := cfg.Viewport
	w = winW - vc.Margin
	h = w * vc.AspectH / vc.AspectW
	if h > vc.MaxHeight {
		h = vc.MaxHeight
	}
	if h > cfg.Canvas.Height {
		h = cfg.Canvas.Height
	}
	if w > vc.MaxWidth {
		w = vc.MaxWidth
	}
	if w > cfg.Canvas.Width {
		w = cfg.Canvas.Width
	}
	if winH < h {
		h = winH - vc.Margin
		w = h * vc.AspectW / vc.AspectH
	}
	return w, h
}

// ResizeViewport applies a window resize. The translation follows on the
// next tick.
func ResizeViewport(s *session.Session, winW, winH float64) {
	vp := components.Viewport.Get(s.Viewport())
	vp.Width, vp.Height = ViewportSize(winW, winH)
}

// UpdateViewport centres the camera on the local player, or on the ferris
// wheel while riding.
func UpdateViewport(s *session.Session) {
	vp := components.Viewport.Get(s.Viewport())
	local := s.LocalState()

	if local.Riding() {
		wheel := s.Layout.FerrisWheel
		vp.TranslateX = vp.Width/2 - wheel.W/2 - wheel.X
		vp.TranslateY = vp.Height/2 - wheel.H/2 - wheel.Y
		return
	}

	vp.TranslateX = vp.Width/2 - float64(cfg.Player.Width)/2 - float64(local.X)
	vp.TranslateY = vp.Height/2 - float64(cfg.Player.Height)/2 - float64(local.Y)
}
