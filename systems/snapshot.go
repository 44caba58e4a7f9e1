package systems

import (
	"github.com/cozypark/cozypark/components"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/shared/netcomponents"
)

// Snapshot is everything the front end draws for one frame. It holds copies
// only, so drawing never touches live state.
type Snapshot struct {
	Connecting bool

	LocalID string
	Local   netcomponents.PlayerStateData
	Remotes []RemoteView

	Dining   netcomponents.DiningStateData
	Bench    netcomponents.BenchStateData
	Ferris   netcomponents.FerrisStateData
	Revision uint64

	Viewport  components.ViewportData
	Menu      components.FerrisMenuData
	Fireworks components.FireworksData
	Waves     components.WavesData
}

func TakeSnapshot(s *session.Session) Snapshot {
	fx := s.Fixtures()
	fw := *components.Fireworks.Get(s.Effects())
	fw.Tween = nil

	return Snapshot{
		Connecting: !s.Ready(),
		LocalID:    s.LocalID(),
		Local:      *s.LocalState(),
		Remotes:    Remotes(s),
		Dining:     *netcomponents.NetDiningState.Get(fx),
		Bench:      *netcomponents.NetBenchState.Get(fx),
		Ferris:     netcomponents.NetFerrisState.Get(fx).Clone(),
		Revision:   components.FixtureRevision.Get(fx).Revision,
		Viewport:   *components.Viewport.Get(s.Viewport()),
		Menu:       *components.FerrisMenu.Get(fx),
		Fireworks:  fw,
		Waves:      *components.Waves.Get(s.Effects()),
	}
}

// VisibleRemotes returns the remote players drawn on the ground. Riders are
// drawn as part of the wheel.
func (s Snapshot) VisibleRemotes() []RemoteView {
	out := make([]RemoteView, 0, len(s.Remotes))
	for _, r := range s.Remotes {
		if r.State.Action.Walking() {
			out = append(out, r)
		}
	}
	return out
}
