package systems

import (
	"sort"

	"github.com/cozypark/cozypark/archetypes"
	"github.com/cozypark/cozypark/components"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var remoteQuery = donburi.NewQuery(filter.Contains(tags.RemotePlayer, components.PlayerID, netcomponents.NetPlayerState))

// RemoteView is a read-only copy of one remote player.
type RemoteView struct {
	ID    string
	State netcomponents.PlayerStateData
}

// FindRemote returns the registry entry for id.
func FindRemote(s *session.Session, id string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	remoteQuery.Each(s.World, func(e *donburi.Entry) {
		if found == nil && components.PlayerID.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}

// UpsertRemote replaces the state of remote id wholesale, creating the
// entry on first sight.
func UpsertRemote(s *session.Session, id string, state netcomponents.PlayerStateData) {
	e, ok := FindRemote(s, id)
	if !ok {
		e = archetypes.RemotePlayer.Spawn(s.World)
		components.PlayerID.SetValue(e, components.PlayerIDData{ID: id})
		s.Log.Debugw("[registry] remote player added", "id", id)
	}
	netcomponents.NetPlayerState.SetValue(e, state)
}

// RemoveRemote deletes remote id and reports whether it existed.
func RemoveRemote(s *session.Session, id string) bool {
	e, ok := FindRemote(s, id)
	if !ok {
		return false
	}
	s.World.Remove(e.Entity())
	s.Log.Debugw("[registry] remote player removed", "id", id)
	return true
}

// KnownPlayer reports whether id is the local player or a remote one.
func KnownPlayer(s *session.Session, id string) bool {
	if id == s.LocalID() {
		return true
	}
	_, ok := FindRemote(s, id)
	return ok
}

// Remotes returns every remote player ordered by id.
func Remotes(s *session.Session) []RemoteView {
	var out []RemoteView
	remoteQuery.Each(s.World, func(e *donburi.Entry) {
		out = append(out, RemoteView{
			ID:    components.PlayerID.Get(e).ID,
			State: *netcomponents.NetPlayerState.Get(e),
		})
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
