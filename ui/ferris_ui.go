package ui

import (
	"bytes"
	"image"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FerrisUI holds the ferris wheel join menu and the exit button. Each lives
// in its own ebitenui root so hidden widgets never receive input.
type FerrisUI struct {
	Menu *ebitenui.UI
	Exit *ebitenui.UI

	OnJoin   func()
	OnCancel func()
	OnExit   func()

	menuPanel   *widget.Container
	exitBtn     *widget.Button
	joinBtn     *widget.Button
	statusLabel *widget.Label

	menuVisible bool
	exitVisible bool

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewFerrisUI(onJoin, onCancel, onExit func()) *FerrisUI {
	ui := &FerrisUI{
		OnJoin:   onJoin,
		OnCancel: onCancel,
		OnExit:   onExit,
	}
	ui.loadFonts()
	ui.buildMenu()
	ui.buildExit()
	return ui
}

func (ui *FerrisUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (ui *FerrisUI) buildMenu() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}
	ui.menuPanel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(color.RGBA{30, 30, 45, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("Ride the ferris wheel?", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	ui.menuPanel.AddChild(titleLabel)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("The wheel starts with two riders.", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	ui.menuPanel.AddChild(ui.statusLabel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	ui.joinBtn = ui.newButton("Join", color.RGBA{40, 100, 40, 255}, color.RGBA{60, 140, 60, 255}, func() {
		if ui.OnJoin != nil {
			ui.OnJoin()
		}
	})
	buttons.AddChild(ui.joinBtn)

	buttons.AddChild(ui.newButton("Cancel", color.RGBA{60, 60, 80, 255}, color.RGBA{80, 80, 100, 255}, func() {
		if ui.OnCancel != nil {
			ui.OnCancel()
		}
	}))
	ui.menuPanel.AddChild(buttons)

	rootContainer.AddChild(ui.menuPanel)
	ui.Menu = &ebitenui.UI{Container: rootContainer}
}

func (ui *FerrisUI) buildExit() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 16, Right: 16}
	corner := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&padding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	ui.exitBtn = ui.newButton("Exit ride", color.RGBA{120, 40, 40, 255}, color.RGBA{160, 60, 60, 255}, func() {
		if ui.OnExit != nil {
			ui.OnExit()
		}
	})
	corner.AddChild(ui.exitBtn)
	rootContainer.AddChild(corner)

	ui.Exit = &ebitenui.UI{Container: rootContainer}
}

func (ui *FerrisUI) newButton(label string, idle, hover color.RGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     eimage.NewNineSliceColor(idle),
			Hover:    eimage.NewNineSliceColor(hover),
			Pressed:  eimage.NewNineSliceColor(idle),
			Disabled: eimage.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 220, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// Sync shows or hides the menu and exit button. While waiting for a second
// rider the join button is disabled.
func (ui *FerrisUI) Sync(menuOpen, waiting, exitVisible bool) {
	ui.menuVisible = menuOpen
	ui.exitVisible = exitVisible

	ui.joinBtn.GetWidget().Disabled = waiting
	if waiting {
		ui.statusLabel.Label = "Waiting for another rider..."
	} else {
		ui.statusLabel.Label = "The wheel starts with two riders."
	}
}

// Blocks reports whether a click at screen point (x, y) lands on a visible
// widget and should not reach the park.
func (ui *FerrisUI) Blocks(x, y int) bool {
	p := image.Pt(x, y)
	if ui.menuVisible && p.In(ui.menuPanel.GetWidget().Rect) {
		return true
	}
	return ui.exitVisible && p.In(ui.exitBtn.GetWidget().Rect)
}

func (ui *FerrisUI) Update() {
	if ui.menuVisible {
		ui.Menu.Update()
	}
	if ui.exitVisible {
		ui.Exit.Update()
	}
}

func (ui *FerrisUI) Draw(screen *ebiten.Image) {
	if ui.menuVisible {
		ui.Menu.Draw(screen)
	}
	if ui.exitVisible {
		ui.Exit.Draw(screen)
	}
}
