package render

import (
	"fmt"

	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/fonts"
	"github.com/cozypark/cozypark/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2 with the ebitenui faces
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const hudMargin = 10

// DrawHUD renders the connection banner or the visitor summary.
func DrawHUD(screen *ebiten.Image, snap systems.Snapshot, status string) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	if snap.Connecting {
		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.UI.OverlayColor, false)

		titleFont := fonts.Title.Get()
		title := "Cozy Park"
		tb := text.BoundString(titleFont, title)
		text.Draw(screen, title, titleFont, (width-tb.Dx())/2, height/2-tb.Dy(), cfg.UI.TextColor)

		hintFont := fonts.Regular.Get()
		hb := text.BoundString(hintFont, status)
		text.Draw(screen, status, hintFont, (width-hb.Dx())/2, height/2+hb.Dy()*2, cfg.UI.TextColor)
		return
	}

	line := fmt.Sprintf("%s  %s  visitors: %d", snap.LocalID, snap.Local.Color, len(snap.Remotes)+1)
	face := fonts.Small.Get()
	b := text.BoundString(face, line)
	vector.DrawFilledRect(screen, hudMargin-4, hudMargin-4, float32(b.Dx()+8), float32(b.Dy()+8), cfg.UI.OverlayColor, false)
	text.Draw(screen, line, face, hudMargin, hudMargin+b.Dy(), cfg.UI.TextColor)
}
