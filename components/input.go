package components

import (
	cfg "github.com/cozypark/cozypark/config"
	"github.com/yohamta/donburi"
)

// InputData stores which movement keys are currently held.
type InputData struct {
	Held [cfg.ActionCount]bool
}

// Any reports whether at least one movement key is held.
func (d *InputData) Any() bool {
	for _, h := range d.Held {
		if h {
			return true
		}
	}
	return false
}

// Clear releases every key.
func (d *InputData) Clear() {
	d.Held = [cfg.ActionCount]bool{}
}

var Input = donburi.NewComponentType[InputData]()
