package components

import "github.com/yohamta/donburi"

// ViewportData is the visible window onto the park and its translation.
type ViewportData struct {
	Width      float64
	Height     float64
	TranslateX float64 // added to world x to get screen x
	TranslateY float64
}

var Viewport = donburi.NewComponentType[ViewportData]()
