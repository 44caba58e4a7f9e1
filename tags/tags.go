package tags

import "github.com/yohamta/donburi"

var (
	LocalPlayer  = donburi.NewTag().SetName("LocalPlayer")
	RemotePlayer = donburi.NewTag().SetName("RemotePlayer")
	Fixtures     = donburi.NewTag().SetName("Fixtures")
	Viewport     = donburi.NewTag().SetName("Viewport")
	Effects      = donburi.NewTag().SetName("Effects")
)

// Resolv tags for the collision space
const (
	ResolvBlocked = "blocked"
	ResolvPlayer  = "Player"
)
