package session

import "time"

// System runs once per logic tick against the session.
type System func(s *Session)

// GameLoop runs systems at a fixed interval measured against the frame clock
// supplied by the caller. There is no catch-up: a slow frame runs one tick.
type GameLoop struct {
	session    *Session
	interval   time.Duration
	lastTick   time.Duration
	systems    []System
	connecting []System
}

func NewGameLoop(s *Session, interval time.Duration) *GameLoop {
	return &GameLoop{
		session:  s,
		interval: interval,
	}
}

// AddSystem appends a system to the tick pipeline.
func (g *GameLoop) AddSystem(sys System) *GameLoop {
	g.systems = append(g.systems, sys)
	return g
}

// AddConnectingSystem appends a system that runs every frame until the
// session is ready.
func (g *GameLoop) AddConnectingSystem(sys System) *GameLoop {
	g.connecting = append(g.connecting, sys)
	return g
}

// Frame advances the loop to now and reports whether a logic tick ran.
func (g *GameLoop) Frame(now time.Duration) bool {
	if !g.session.Ready() {
		for _, sys := range g.connecting {
			sys(g.session)
		}
		return false
	}

	elapsed := now - g.lastTick
	if elapsed <= g.interval {
		return false
	}

	for _, sys := range g.systems {
		sys(g.session)
	}
	g.lastTick = now - elapsed%g.interval
	return true
}

func (g *GameLoop) Connecting() bool {
	return !g.session.Ready()
}
