package core

import (
	"sync"
	"time"
)

// GameLoop drives the server's periodic ferris broadcast.
type GameLoop struct {
	server   *Server
	period   time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(server *Server, period time.Duration) *GameLoop {
	return &GameLoop{
		server:   server,
		period:   period,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.period)
	defer ticker.Stop()

	g.server.log.Infow("[loop] started", "period", g.period)

	for {
		select {
		case <-g.stopChan:
			g.server.log.Infow("[loop] stopped")
			return
		case <-ticker.C:
			g.server.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
