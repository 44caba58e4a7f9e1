package netcomponents

import (
	"github.com/cozypark/cozypark/config"
	"github.com/yohamta/donburi"
)

type Color string

const (
	ColorPink Color = "pink"
	ColorBlue Color = "blue"
)

func (c Color) Valid() bool {
	return c == ColorPink || c == ColorBlue
}

type Action string

const (
	ActionIdle   Action = "idle"
	ActionMove   Action = "move"
	ActionFerris Action = "ferris"
)

// Walking reports whether the avatar is drawn on the ground.
func (a Action) Walking() bool {
	return a == ActionIdle || a == ActionMove
}

type Facing string

const (
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

// PlayerStateData is the full per-player state exchanged on the wire.
type PlayerStateData struct {
	Color       Color  `json:"color"`
	Action      Action `json:"action"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Frame       int    `json:"frame"`
	ChangeFrame bool   `json:"changeFrame"`
	Facing      Facing `json:"facing"`
}

var NetPlayerState = donburi.NewComponentType[PlayerStateData]()

// NewPlayerState returns the spawn state for a player of the given colour.
func NewPlayerState(color Color) PlayerStateData {
	return PlayerStateData{
		Color:       color,
		Action:      ActionIdle,
		X:           config.Player.StartX,
		Y:           config.Player.StartY,
		Frame:       0,
		ChangeFrame: true,
		Facing:      Facing(config.Player.StartFacing),
	}
}

func (s PlayerStateData) Riding() bool {
	return s.Action == ActionFerris
}

// Normalized clamps the walk frame into range and fills in missing enums so
// a broadcast from an older or buggy client can always be drawn.
func (s PlayerStateData) Normalized() PlayerStateData {
	if s.Frame < 0 || s.Frame > config.Player.MaxFrame {
		s.Frame = 0
	}
	if s.Facing != FacingLeft && s.Facing != FacingRight {
		s.Facing = FacingLeft
	}
	switch s.Action {
	case ActionIdle, ActionMove, ActionFerris:
	default:
		s.Action = ActionIdle
	}
	return s
}
