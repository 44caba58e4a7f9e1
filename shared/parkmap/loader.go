package parkmap

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/cozypark/cozypark/config"
	"github.com/lafriks/go-tiled"
)

var ErrMissingArea = errors.New("parkmap: missing area")

// Object group names in the park TMX.
const (
	groupAreas   = "areas"
	groupProps   = "props"
	groupBlocked = "blocked"
)

// Load parses a TMX file and returns the park layout. It takes an fs.FS so
// callers can pass embed.FS (client) or os.DirFS (tests, tools).
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	parkMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Width:  config.Canvas.Width,
		Height: config.Canvas.Height,
		Props:  map[string]Point{},
	}

	areas := map[string]Rect{}
	for _, og := range parkMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case groupAreas:
				areas[o.Name] = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			case groupProps:
				layout.Props[o.Name] = Point{X: o.X, Y: o.Y}
			case groupBlocked:
				layout.Blocked = append(layout.Blocked, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	targets := []struct {
		name string
		dst  *Rect
	}{
		{"Dining", &layout.Dining},
		{"FerrisWheel", &layout.FerrisWheel},
		{"Bench", &layout.Bench},
		{"Lake1", &layout.Lake1},
		{"Lake2", &layout.Lake2},
		{"Firework", &layout.Firework},
	}
	for _, t := range targets {
		r, ok := areas[t.name]
		if !ok {
			return nil, fmt.Errorf("%s: %w %q", tmxPath, ErrMissingArea, t.name)
		}
		*t.dst = r
	}

	return layout, nil
}

// Default returns the stock park layout without touching the filesystem.
func Default() *Layout {
	lake1 := Rect{X: 2156, Y: 0, W: 344, H: 314}
	lake2 := Rect{X: 1744, Y: 314, W: 756, H: 494}
	firework := Rect{X: 2124, Y: 46, W: 340, H: 540}

	return &Layout{
		Width:       config.Canvas.Width,
		Height:      config.Canvas.Height,
		Dining:      Rect{X: 0, Y: 992, W: 727, H: 504},
		FerrisWheel: Rect{X: 0, Y: 0, W: 762, H: 736},
		Bench:       Rect{X: 1744, Y: 0, W: 412, H: 314},
		Lake1:       lake1,
		Lake2:       lake2,
		Firework:    firework,
		Props: map[string]Point{
			PropDiningTable: {X: 404, Y: 1309},
			PropFerrisWheel: {X: 250, Y: 77},
			PropLakeWaves:   {X: 1798, Y: -38},
			PropBench:       {X: 1900, Y: 160},
			PropFirework:    {X: firework.X, Y: firework.Y},
		},
		Blocked: []Rect{lake1, lake2},
	}
}
