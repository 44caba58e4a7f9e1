package archetypes

import (
	"testing"

	"github.com/cozypark/cozypark/components"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/tags"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestSpawnCarriesArchetypeComponents(t *testing.T) {
	w := donburi.NewWorld()

	local := LocalPlayer.Spawn(w)
	assert.True(t, local.HasComponent(tags.LocalPlayer))
	assert.True(t, local.HasComponent(components.Input))
	assert.True(t, local.HasComponent(netcomponents.NetPlayerState))
	assert.False(t, local.HasComponent(tags.RemotePlayer))

	remote := RemotePlayer.Spawn(w)
	assert.True(t, remote.HasComponent(tags.RemotePlayer))
	assert.False(t, remote.HasComponent(components.Input))

	extra := Viewport.Spawn(w, components.Waves)
	assert.True(t, extra.HasComponent(components.Viewport))
	assert.True(t, extra.HasComponent(components.Waves))

	assert.Equal(t, 3, w.Len())
}
