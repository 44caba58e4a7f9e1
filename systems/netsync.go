package systems

import (
	"slices"

	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/components"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/shared/protocol"
)

// UpdateNetwork applies every server message received since the last tick.
func UpdateNetwork(s *session.Session) {
	if s.Inbox == nil {
		return
	}
	for _, msg := range s.Inbox.Drain() {
		Apply(s, msg)
	}
}

// Apply folds one server message into the session. Every update replaces
// the previous value, so applying the same message twice is harmless.
func Apply(s *session.Session, msg protocol.Message) {
	switch m := msg.(type) {
	case protocol.Connected:
		applyConnected(s, m)
	case protocol.Disconnected:
		RemoveRemote(s, m.ID)
	case protocol.PlayerState:
		applyPlayerState(s, m)
	case protocol.DiningState:
		checkOccupants(s, "dining", m.Seats)
		netcomponents.NetDiningState.SetValue(s.Fixtures(), m.DiningStateData)
		markFixturesDirty(s)
	case protocol.BenchState:
		checkOccupants(s, "bench", m.Seats)
		netcomponents.NetBenchState.SetValue(s.Fixtures(), m.BenchStateData)
		markFixturesDirty(s)
	case protocol.FerrisState:
		applyFerrisState(s, m)
	case protocol.Unknown:
		s.Log.Debugw("[netsync] ignoring unknown message", "type", m.Type)
	default:
		s.Log.Debugw("[netsync] ignoring unhandled message", "type", msg.MessageType())
	}
}

func applyConnected(s *session.Session, m protocol.Connected) {
	if m.ID == "" {
		s.Log.Warnw("[netsync] connected without an id")
		return
	}
	s.SetLocalID(m.ID)
	// The server announces our own state before telling us who we are.
	RemoveRemote(s, m.ID)
	s.Log.Infow("[netsync] connected", "id", m.ID)
}

func applyPlayerState(s *session.Session, m protocol.PlayerState) {
	if m.ID == "" {
		s.Log.Debugw("[netsync] player state without an id")
		return
	}
	if m.ID != s.LocalID() {
		UpsertRemote(s, m.ID, m.State.Normalized())
		return
	}

	local := s.LocalState()
	ferris := netcomponents.NetFerrisState.Get(s.Fixtures())
	switch {
	case m.State.Action == netcomponents.ActionFerris && local.Action.Walking() &&
		len(ferris.Players) == cfg.Ferris.MaxRiders && ferris.Has(s.LocalID()):
		local.Action = netcomponents.ActionFerris
		local.Frame = 0
		s.Log.Infow("[ferris] boarded", "id", s.LocalID(), "riders", ferris.Players)
	case local.Riding() && len(ferris.Players) == 0:
		leaveFerris(s)
	}
}

func applyFerrisState(s *session.Session, m protocol.FerrisState) {
	players := m.Players
	if len(players) > cfg.Ferris.MaxRiders {
		s.Log.Warnw("[netsync] ferris state lists too many riders, truncating", "players", players)
		players = players[:cfg.Ferris.MaxRiders]
	}

	ferris := netcomponents.NetFerrisState.Get(s.Fixtures())
	ferris.Frame = m.Frame
	ferris.Players = slices.Clone(players)
	if ferris.Players == nil {
		ferris.Players = []string{}
	}

	if s.LocalState().Riding() && len(ferris.Players) == 0 {
		leaveFerris(s)
	}
}

func leaveFerris(s *session.Session) {
	local := s.LocalState()
	local.Action = netcomponents.ActionIdle
	local.Frame = 0
	components.FerrisMenu.Get(s.Fixtures()).ExitVisible = false
	s.Log.Infow("[ferris] ride over", "id", s.LocalID())
}

func checkOccupants(s *session.Session, fixture string, seats netcomponents.Seats) {
	for _, id := range []string{seats.Left, seats.Right} {
		if id != "" && !KnownPlayer(s, id) {
			s.Log.Debugw("[netsync] seat held by unknown player", "fixture", fixture, "id", id)
		}
	}
}
