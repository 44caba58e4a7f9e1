// Package parkmap provides the park layout parsed from TMX, shared between
// client and relay. It has no dependencies on ebitengine, donburi, or resolv.
package parkmap

// Rect is an axis-aligned area in world pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Overlaps reports whether the open interiors of r and o intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Point is a draw anchor for a prop.
type Point struct {
	X, Y float64
}

// Prop names found in the "props" object group.
const (
	PropDiningTable = "DiningTable"
	PropFerrisWheel = "FerrisWheel"
	PropLakeWaves   = "LakeWaves"
	PropBench       = "Bench"
	PropFirework    = "Firework"
)

// Layout holds every area and draw anchor of the park.
type Layout struct {
	Width  float64
	Height float64

	Dining      Rect
	FerrisWheel Rect
	Bench       Rect
	Lake1       Rect
	Lake2       Rect
	Firework    Rect

	Props   map[string]Point
	Blocked []Rect // areas the local player may not enter
}

// Prop returns the anchor for name, or the zero point.
func (l *Layout) Prop(name string) Point {
	return l.Props[name]
}
