package archetypes

import (
	"github.com/cozypark/cozypark/components"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/tags"
	"github.com/yohamta/donburi"
)

var (
	LocalPlayer = newArchetype(
		tags.LocalPlayer,
		components.PlayerID,
		netcomponents.NetPlayerState,
		components.Input,
	)
	RemotePlayer = newArchetype(
		tags.RemotePlayer,
		components.PlayerID,
		netcomponents.NetPlayerState,
	)
	Fixtures = newArchetype(
		tags.Fixtures,
		netcomponents.NetDiningState,
		netcomponents.NetBenchState,
		netcomponents.NetFerrisState,
		components.FerrisMenu,
		components.FixtureRevision,
	)
	Viewport = newArchetype(
		tags.Viewport,
		components.Viewport,
	)
	Effects = newArchetype(
		tags.Effects,
		components.Fireworks,
		components.Waves,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
