// Package session owns the client-side game state for one connection: the
// donburi world holding the local player, remote players, fixtures and
// camera, plus the queues and collaborators the systems need.
package session

import (
	"errors"
	"math/rand"

	"github.com/cozypark/cozypark/archetypes"
	"github.com/cozypark/cozypark/components"
	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/shared/parkmap"
	"github.com/cozypark/cozypark/shared/protocol"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ErrNotConnected is returned by a Sender while the channel is not open.
var ErrNotConnected = errors.New("not connected")

// Sender delivers a message to the server without blocking the tick.
type Sender interface {
	Send(msg protocol.Outbound) error
}

// Inbox yields every server message received since the last call.
type Inbox interface {
	Drain() []protocol.Message
}

// CollisionOracle reports whether the local player may stand at (x, y).
type CollisionOracle interface {
	Permits(x, y int) bool
}

type Options struct {
	Layout *parkmap.Layout
	Oracle CollisionOracle
	Inbox  Inbox
	Sender Sender
	Log    *zap.SugaredLogger
	Color  netcomponents.Color
	Rand   *rand.Rand
}

type Session struct {
	World  donburi.World
	Layout *parkmap.Layout
	Oracle CollisionOracle
	Inbox  Inbox
	Log    *zap.SugaredLogger
	Input  *InputQueue
	Rand   *rand.Rand

	sender  Sender
	localID string

	local    donburi.Entity
	fixtures donburi.Entity
	viewport donburi.Entity
	effects  donburi.Entity
}

// New builds a session in the Connecting state with every fixture empty and
// the local player at the spawn point.
func New(opts Options) *Session {
	if opts.Log == nil {
		opts.Log = zap.NewNop().Sugar()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	if opts.Layout == nil {
		opts.Layout = parkmap.Default()
	}

	s := &Session{
		World:  donburi.NewWorld(),
		Layout: opts.Layout,
		Oracle: opts.Oracle,
		Inbox:  opts.Inbox,
		Log:    opts.Log,
		Input:  NewInputQueue(cfg.Network.InputQueueSize),
		Rand:   opts.Rand,
		sender: opts.Sender,
	}

	s.local = archetypes.LocalPlayer.Spawn(s.World).Entity()
	netcomponents.NetPlayerState.SetValue(s.Local(), netcomponents.NewPlayerState(opts.Color))

	s.fixtures = archetypes.Fixtures.Spawn(s.World).Entity()
	netcomponents.NetFerrisState.SetValue(s.Fixtures(), netcomponents.FerrisStateData{Players: []string{}})

	s.viewport = archetypes.Viewport.Spawn(s.World).Entity()
	components.Viewport.SetValue(s.Viewport(), components.ViewportData{
		Width:  cfg.Viewport.MaxWidth,
		Height: cfg.Viewport.MaxHeight,
	})

	s.effects = archetypes.Effects.Spawn(s.World).Entity()
	components.Fireworks.SetValue(s.Effects(), components.FireworksData{Frame: -1, Size: 1})

	return s
}

func (s *Session) LocalID() string {
	return s.localID
}

func (s *Session) SetLocalID(id string) {
	s.localID = id
	components.PlayerID.SetValue(s.Local(), components.PlayerIDData{ID: id})
}

// Ready reports whether the session has left the Connecting state.
func (s *Session) Ready() bool {
	return s.localID != "" && s.LocalState().Color.Valid()
}

func (s *Session) Local() *donburi.Entry {
	return s.World.Entry(s.local)
}

func (s *Session) LocalState() *netcomponents.PlayerStateData {
	return netcomponents.NetPlayerState.Get(s.Local())
}

func (s *Session) Fixtures() *donburi.Entry {
	return s.World.Entry(s.fixtures)
}

func (s *Session) Viewport() *donburi.Entry {
	return s.World.Entry(s.viewport)
}

func (s *Session) Effects() *donburi.Entry {
	return s.World.Entry(s.effects)
}

// Send hands msg to the sender. Messages sent before the channel opens, or
// after it closes, are dropped.
func (s *Session) Send(msg protocol.Outbound) {
	if s.sender == nil {
		return
	}
	if err := s.sender.Send(msg); err != nil {
		if errors.Is(err, ErrNotConnected) {
			s.Log.Debugw("[session] dropped message, not connected", "type", msg.Type)
			return
		}
		s.Log.Warnw("[session] send failed", "type", msg.Type, "error", err)
	}
}
