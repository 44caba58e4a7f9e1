// Package render draws a systems.Snapshot with ebitengine vector primitives.
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
	wheelRadius  = 300
	wheelCabins  = 6
	cabinRadius  = 34
	seatRadius   = 18
	waveSpacing  = 48
	burstRays    = 12
	burstRadius  = 90
	playerBobPx  = 3
	outlineWidth = 3
)

// Renderer keeps the park layer cached between frames.
type Renderer struct {
	layout *parkmap.Layout

	ground   *ebiten.Image
	layerKey layerKey
	built    bool

	drawOp *ebiten.DrawImageOptions
}

// layerKey identifies the contents of the cached ground layer. Seat markers
// are coloured by occupant so a colour change also invalidates it.
type layerKey struct {
	revision uint64
	colors   [4]netcomponents.Color
}

func NewRenderer(layout *parkmap.Layout) *Renderer {
	return &Renderer{
		layout: layout,
		drawOp: &ebiten.DrawImageOptions{},
	}
}

// camera maps world pixels onto the screen.
type camera struct {
	tx, ty float64
	scale  float64
}

func (c camera) point(x, y float64) (float32, float32) {
	return float32((x + c.tx) * c.scale), float32((y + c.ty) * c.scale)
}

func (c camera) size(v float64) float32 {
	return float32(v * c.scale)
}

func newCamera(screen *ebiten.Image, snap systems.Snapshot) camera {
	vw := snap.Viewport.Width
	if vw < 1 {
		vw = 1
	}
	return camera{
		tx:    snap.Viewport.TranslateX,
		ty:    snap.Viewport.TranslateY,
		scale: float64(screen.Bounds().Dx()) / vw,
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, snap systems.Snapshot) {
	screen.Fill(cfg.UI.BackgroundColor)

	cam := newCamera(screen, snap)
	colors := colorIndex(snap)

	r.refreshGround(snap, colors)
	r.drawOp.GeoM.Reset()
	r.drawOp.GeoM.Translate(cam.tx, cam.ty)
	r.drawOp.GeoM.Scale(cam.scale, cam.scale)
	screen.DrawImage(r.ground, r.drawOp)

	r.drawWaves(screen, cam, snap)
	r.drawWheel(screen, cam, snap, colors)
	r.drawFireworks(screen, cam, snap)

	for _, p := range snap.VisibleRemotes() {
		drawPlayer(screen, cam, p.State, false)
	}
	if snap.Local.Action.Walking() {
		drawPlayer(screen, cam, snap.Local, true)
	}
}

func colorIndex(snap systems.Snapshot) map[string]netcomponents.Color {
	out := make(map[string]netcomponents.Color, len(snap.Remotes)+1)
	for _, p := range snap.Remotes {
		out[p.ID] = p.State.Color
	}
	if snap.LocalID != "" {
		out[snap.LocalID] = snap.Local.Color
	}
	return out
}

func playerColor(c netcomponents.Color) color.RGBA {
	if c == netcomponents.ColorBlue {
		return cfg.UI.BlueColor
	}
	return cfg.UI.PinkColor
}

func drawPlayer(screen *ebiten.Image, cam camera, s netcomponents.PlayerStateData, local bool) {
	w, h := float64(cfg.Player.Width), float64(cfg.Player.Height)
	bob := 0.0
	if s.Frame == 1 {
		bob = -playerBobPx
	}
	x, y := cam.point(float64(s.X), float64(s.Y)+bob)

	vector.DrawFilledRect(screen, x, y, cam.size(w), cam.size(h), playerColor(s.Color), false)
	if local {
		vector.StrokeRect(screen, x, y, cam.size(w), cam.size(h), outlineWidth, cfg.UI.TextColor, false)
	}

	// eye on the facing side
	ex := w * 0.3
	if s.Facing == netcomponents.FacingRight {
		ex = w * 0.7
	}
	eyeX, eyeY := cam.point(float64(s.X)+ex, float64(s.Y)+bob+h*0.3)
	vector.DrawFilledCircle(screen, eyeX, eyeY, cam.size(5), color.Black, true)

	// legs alternate with the walk frame
	legY := float64(s.Y) + bob + h
	for i, off := range []float64{w * 0.3, w * 0.7} {
		lift := 0.0
		if s.Frame == 2 && i == 0 || s.Frame == 1 && i == 1 {
			lift = 6
		}
		lx, ly := cam.point(float64(s.X)+off, legY-lift)
		vector.StrokeLine(screen, lx, ly-cam.size(8), lx, ly, cam.size(6), color.Black, false)
	}
}

func (r *Renderer) drawWaves(screen *ebiten.Image, cam camera, snap systems.Snapshot) {
	for _, lake := range []parkmap.Rect{r.layout.Lake1, r.layout.Lake2} {
		shift := float64(snap.Waves.Frame) * waveSpacing / float64(cfg.Waves.Frames)
		for y := lake.Y + waveSpacing/2; y < lake.Y+lake.H; y += waveSpacing {
			for x := lake.X + shift; x+waveSpacing/2 < lake.X+lake.W; x += waveSpacing * 2 {
				x0, y0 := cam.point(x, y)
				x1, y1 := cam.point(x+waveSpacing/2, y)
				vector.StrokeLine(screen, x0, y0, x1, y1, cam.size(3), cfg.UI.WaveColor, true)
			}
		}
	}
}

func (r *Renderer) wheelHub() (float64, float64) {
	a := r.layout.Prop(parkmap.PropFerrisWheel)
	return a.X + wheelRadius, a.Y + wheelRadius
}

// drawWheel draws the wheel rotated by its broadcast frame. Boarded riders
// are drawn in the two lowest cabins.
func (r *Renderer) drawWheel(screen *ebiten.Image, cam camera, snap systems.Snapshot, colors map[string]netcomponents.Color) {
	hx, hy := r.wheelHub()
	cx, cy := cam.point(hx, hy)

	vector.StrokeCircle(screen, cx, cy, cam.size(wheelRadius), cam.size(8), cfg.UI.WheelColor, true)

	step := 2 * math.Pi / wheelCabins
	rot := float64(snap.Ferris.Frame) * step / 2
	for i := range wheelCabins {
		a := rot + float64(i)*step
		px, py := cam.point(hx+wheelRadius*math.Cos(a), hy+wheelRadius*math.Sin(a))
		vector.StrokeLine(screen, cx, cy, px, py, cam.size(4), cfg.UI.WheelColor, true)
		vector.DrawFilledCircle(screen, px, py, cam.size(cabinRadius), cfg.UI.SeatColor, true)

		if i < len(snap.Ferris.Players) && len(snap.Ferris.Players) >= cfg.Ferris.MaxRiders {
			if c, ok := colors[snap.Ferris.Players[i]]; ok {
				vector.DrawFilledCircle(screen, px, py, cam.size(cabinRadius/2), playerColor(c), true)
			}
		}
	}

	// legs of the stand
	bx, by := cam.point(hx-wheelRadius/2, hy+wheelRadius+60)
	ex, ey := cam.point(hx+wheelRadius/2, hy+wheelRadius+60)
	vector.StrokeLine(screen, cx, cy, bx, by, cam.size(10), cfg.UI.WheelColor, true)
	vector.StrokeLine(screen, cx, cy, ex, ey, cam.size(10), cfg.UI.WheelColor, true)
}

func (r *Renderer) drawFireworks(screen *ebiten.Image, cam camera, snap systems.Snapshot) {
	fw := snap.Fireworks
	if !snap.Bench.ShowFireworks || fw.Frame < 0 {
		return
	}

	area := r.layout.Firework
	cx, cy := cam.point(area.CenterX(), area.Y+area.H/3)
	palette := cfg.UI.FireworkColors
	clr := palette[fw.Frame%len(palette)]

	progress := float64(fw.Frame+1) / float64(cfg.Fireworks.Frames)
	radius := burstRadius * progress * float64(fw.Size)
	inner := radius * 0.4
	for i := range burstRays {
		a := float64(i) * 2 * math.Pi / burstRays
		x0, y0 := cam.point(area.CenterX()+inner*math.Cos(a), area.Y+area.H/3+inner*math.Sin(a))
		x1, y1 := cam.point(area.CenterX()+radius*math.Cos(a), area.Y+area.H/3+radius*math.Sin(a))
		vector.StrokeLine(screen, x0, y0, x1, y1, cam.size(4), clr, true)
	}
	vector.DrawFilledCircle(screen, cx, cy, cam.size(6*float64(fw.Size)), clr, true)
}
