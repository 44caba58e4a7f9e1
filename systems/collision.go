package systems

import (
	"math"

	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/shared/parkmap"
	"github.com/cozypark/cozypark/tags"
	"github.com/solarlune/resolv"
)

const collisionCellSize = 16

// ParkCollision keeps the local player inside the park and out of the lakes.
type ParkCollision struct {
	space  *resolv.Space
	probe  *resolv.Object
	bounds parkmap.Rect
}

func NewParkCollision(layout *parkmap.Layout) *ParkCollision {
	w := float64(cfg.Player.Width)
	h := float64(cfg.Player.Height)

	space := resolv.NewSpace(
		int(math.Ceil(layout.Width)),
		int(math.Ceil(layout.Height)),
		collisionCellSize,
		collisionCellSize,
	)
	for _, r := range layout.Blocked {
		space.Add(resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvBlocked))
	}

	probe := resolv.NewObject(0, 0, w, h, tags.ResolvPlayer)
	space.Add(probe)

	return &ParkCollision{
		space:  space,
		probe:  probe,
		bounds: parkmap.Rect{W: layout.Width, H: layout.Height},
	}
}

// Permits reports whether the player box at (x, y) lies fully inside the
// park and overlaps no blocked area.
func (c *ParkCollision) Permits(x, y int) bool {
	box := parkmap.Rect{X: float64(x), Y: float64(y), W: c.probe.W, H: c.probe.H}
	if box.X < c.bounds.X || box.Y < c.bounds.Y ||
		box.X+box.W > c.bounds.X+c.bounds.W || box.Y+box.H > c.bounds.Y+c.bounds.H {
		return false
	}

	c.probe.X = box.X
	c.probe.Y = box.Y
	c.probe.Update()

	// resolv reports objects sharing a cell, so confirm the overlap.
	if check := c.probe.Check(0, 0, tags.ResolvBlocked); check != nil {
		for _, obj := range check.Objects {
			if box.Overlaps(parkmap.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}) {
				return false
			}
		}
	}
	return true
}
