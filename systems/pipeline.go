package systems

import "github.com/cozypark/cozypark/session"

// Install registers the client systems on loop in tick order.
func Install(loop *session.GameLoop) *session.GameLoop {
	return loop.
		AddConnectingSystem(UpdateNetwork).
		AddConnectingSystem(UpdateInput).
		AddSystem(UpdateNetwork).
		AddSystem(UpdateInput).
		AddSystem(UpdateLocalPlayer).
		AddSystem(UpdateViewport).
		AddSystem(UpdateDining).
		AddSystem(UpdateBench).
		AddSystem(UpdateFerris).
		AddSystem(UpdateEffects).
		AddSystem(SendPlayerState)
}
