package scenes

import (
	"fmt"
	"time"

	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/network"
	"github.com/cozypark/cozypark/render"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/systems"
	"github.com/cozypark/cozypark/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var actionKeys = map[ebiten.Key]cfg.ActionID{
	ebiten.KeyW: cfg.ActionMoveUp,
	ebiten.KeyA: cfg.ActionMoveLeft,
	ebiten.KeyS: cfg.ActionMoveDown,
	ebiten.KeyD: cfg.ActionMoveRight,
}

// ParkScene turns ebiten input into session events, drives the fixed-step
// loop and draws the latest snapshot.
type ParkScene struct {
	session  *session.Session
	loop     *session.GameLoop
	client   *network.Client
	renderer *render.Renderer
	ferrisUI *ui.FerrisUI

	start   time.Time
	focused bool
	winW    int
	winH    int
	snap    systems.Snapshot
}

func NewParkScene(s *session.Session, loop *session.GameLoop, client *network.Client) *ParkScene {
	ps := &ParkScene{
		session:  s,
		loop:     loop,
		client:   client,
		renderer: render.NewRenderer(s.Layout),
		start:    time.Now(),
		focused:  true,
	}
	ps.ferrisUI = ui.NewFerrisUI(
		func() { s.Input.Push(session.InputEvent{Kind: session.FerrisConfirm}) },
		func() { s.Input.Push(session.InputEvent{Kind: session.FerrisCancel}) },
		func() { s.Input.Push(session.InputEvent{Kind: session.FerrisExit}) },
	)
	ps.snap = systems.TakeSnapshot(s)
	return ps
}

func (ps *ParkScene) Update() {
	ps.pollInput()
	ps.loop.Frame(time.Since(ps.start))

	ps.snap = systems.TakeSnapshot(ps.session)
	ps.ferrisUI.Sync(ps.snap.Menu.Open, ps.snap.Menu.Waiting, ps.snap.Menu.ExitVisible)
	ps.ferrisUI.Update()
}

func (ps *ParkScene) Draw(screen *ebiten.Image) {
	ps.renderer.Draw(screen, ps.snap)
	render.DrawHUD(screen, ps.snap, ps.status())
	ps.ferrisUI.Draw(screen)
}

// Layout reports the window size to the session and returns the viewport
// as the logical screen, so one logical pixel is one world pixel.
func (ps *ParkScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != ps.winW || outsideHeight != ps.winH {
		ps.winW, ps.winH = outsideWidth, outsideHeight
		ps.session.Input.Push(session.InputEvent{
			Kind: session.Resize,
			X:    float64(outsideWidth),
			Y:    float64(outsideHeight),
		})
		w, h := systems.ViewportSize(float64(outsideWidth), float64(outsideHeight))
		ps.snap.Viewport.Width, ps.snap.Viewport.Height = w, h
	}
	return max(int(ps.snap.Viewport.Width), 1), max(int(ps.snap.Viewport.Height), 1)
}

func (ps *ParkScene) pollInput() {
	q := ps.session.Input

	focused := ebiten.IsFocused()
	if ps.focused && !focused {
		q.Push(session.InputEvent{Kind: session.Blur})
	}
	ps.focused = focused

	for key, action := range actionKeys {
		if inpututil.IsKeyJustPressed(key) {
			q.Push(session.InputEvent{Kind: session.KeyDown, Action: action})
		}
		if inpututil.IsKeyJustReleased(key) {
			q.Push(session.InputEvent{Kind: session.KeyUp, Action: action})
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if ps.ferrisUI.Blocks(x, y) {
			return
		}
		vp := ps.snap.Viewport
		q.Push(session.InputEvent{
			Kind: session.Click,
			X:    float64(x) - vp.TranslateX,
			Y:    float64(y) - vp.TranslateY,
		})
	}
}

func (ps *ParkScene) status() string {
	switch ps.client.State() {
	case network.StateError:
		return fmt.Sprintf("Connection failed: %v", ps.client.LastError())
	case network.StateDisconnected:
		return "Disconnected from the park"
	case network.StateConnected:
		return "Waiting for the park to say hello..."
	default:
		return "Connecting..."
	}
}
