package render

import (
	"image/color"
	"math"

	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/shared/parkmap"
	"github.com/cozypark/cozypark/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	tableW = 240
	tableH = 120
	benchW = 200
	benchH = 48
)

// refreshGround redraws the static park and the seating only when seating
// changed since the last frame.
func (r *Renderer) refreshGround(snap systems.Snapshot, colors map[string]netcomponents.Color) {
	key := layerKey{
		revision: snap.Revision,
		colors: [4]netcomponents.Color{
			colors[snap.Dining.Left], colors[snap.Dining.Right],
			colors[snap.Bench.Left], colors[snap.Bench.Right],
		},
	}
	if r.built && key == r.layerKey {
		return
	}

	if r.ground == nil {
		w := int(math.Ceil(r.layout.Width))
		h := int(math.Ceil(r.layout.Height))
		r.ground = ebiten.NewImage(max(w, 1), max(h, 1))
	}
	r.ground.Clear()
	r.ground.Fill(cfg.UI.GrassColor)

	fillRect(r.ground, r.layout.Dining, cfg.UI.PathColor)
	fillRect(r.ground, r.layout.FerrisWheel, cfg.UI.PathColor)
	fillRect(r.ground, r.layout.Bench, cfg.UI.PathColor)
	fillRect(r.ground, r.layout.Lake1, cfg.UI.LakeColor)
	fillRect(r.ground, r.layout.Lake2, cfg.UI.LakeColor)

	table := r.layout.Prop(parkmap.PropDiningTable)
	vector.DrawFilledRect(r.ground, float32(table.X), float32(table.Y), tableW, tableH, cfg.UI.TableColor, false)
	drawSeat(r.ground, table.X-seatRadius*2, table.Y+tableH/2, key.colors[0])
	drawSeat(r.ground, table.X+tableW+seatRadius*2, table.Y+tableH/2, key.colors[1])

	bench := r.layout.Prop(parkmap.PropBench)
	vector.DrawFilledRect(r.ground, float32(bench.X), float32(bench.Y), benchW, benchH, cfg.UI.BenchColor, false)
	drawSeat(r.ground, bench.X+benchW*0.25, bench.Y+benchH/2, key.colors[2])
	drawSeat(r.ground, bench.X+benchW*0.75, bench.Y+benchH/2, key.colors[3])

	r.layerKey = key
	r.built = true
}

func fillRect(dst *ebiten.Image, rect parkmap.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, false)
}

// drawSeat marks a seat, filled with the occupant's colour when taken.
func drawSeat(dst *ebiten.Image, x, y float64, occupant netcomponents.Color) {
	if occupant == "" {
		vector.StrokeCircle(dst, float32(x), float32(y), seatRadius, 3, cfg.UI.SeatColor, true)
		return
	}
	vector.DrawFilledCircle(dst, float32(x), float32(y), seatRadius, playerColor(occupant), true)
}
