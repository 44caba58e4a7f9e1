package components

import "github.com/yohamta/donburi"

// FerrisMenuData stores the visibility of the ferris wheel join menu and
// exit button.
type FerrisMenuData struct {
	Open        bool // join menu shown
	Waiting     bool // join sent, waiting for a second rider
	ExitVisible bool // exit button shown while riding
}

var FerrisMenu = donburi.NewComponentType[FerrisMenuData]()

// FixtureRevisionData counts changes to dining and bench seating so the
// fixture layer is redrawn only when it changes.
type FixtureRevisionData struct {
	Revision uint64
}

var FixtureRevision = donburi.NewComponentType[FixtureRevisionData]()
