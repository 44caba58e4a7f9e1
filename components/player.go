package components

import "github.com/yohamta/donburi"

// PlayerIDData is the server-assigned id of a player entity.
type PlayerIDData struct {
	ID string
}

var PlayerID = donburi.NewComponentType[PlayerIDData]()
