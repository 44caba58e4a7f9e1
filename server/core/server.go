package core

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"

	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/shared/protocol"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Server relays player state between park clients and arbitrates the
// shared fixtures. All state below mu is touched only with mu held.
type Server struct {
	mu sync.Mutex

	world   donburi.World
	clients map[string]*Client

	dining    netcomponents.Seats
	bench     netcomponents.BenchStateData
	wheel     *FerrisWheel
	fireworks *time.Timer

	fireworksDelay time.Duration

	loop     *GameLoop
	http     *http.Server
	upgrader websocket.Upgrader
	log      *zap.SugaredLogger
}

func NewServer(log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Server{
		world:          donburi.NewWorld(),
		clients:        make(map[string]*Client),
		wheel:          NewFerrisWheel(),
		fireworksDelay: cfg.Ferris.FireworksDelay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: log,
	}
	s.loop = NewGameLoop(s, cfg.Ferris.BroadcastPeriod)
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)
	r.Get("/ws", s.handleWS)
	return r
}

// Start runs the broadcast loop and serves until Stop is called.
func (s *Server) Start(addr string) error {
	go s.loop.Run()

	s.mu.Lock()
	s.http = &http.Server{Addr: addr, Handler: s.Routes()}
	srv := s.http
	s.mu.Unlock()

	s.log.Infow("[server] listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.loop.Stop()

	s.mu.Lock()
	srv := s.http
	if s.fireworks != nil {
		s.fireworks.Stop()
		s.fireworks = nil
	}
	for _, c := range s.clients {
		close(c.send)
	}
	s.clients = make(map[string]*Client)
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("[server] upgrade failed", "error", err)
		return
	}

	c := s.join(ws)
	go c.writePump()
	go c.readPump(s)
}

func newPlayerID() string {
	return "player_" + uuid.NewString()[:8]
}

// join registers a new visitor. The newcomer receives its own state and id
// first, everyone hears about it, then it is caught up on the rest.
func (s *Server) join(ws *websocket.Conn) *Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := newPlayerID()
	entity := s.world.Create(netcomponents.NetPlayerState)
	state := netcomponents.NewPlayerState("")
	netcomponents.NetPlayerState.SetValue(s.world.Entry(entity), state)

	c := newClient(id, ws, entity)
	s.clients[id] = c
	s.log.Infow("[server] player connected", "player", id, "players", len(s.clients))

	s.sendTo(c, protocol.PlayerState{ID: id, State: state})
	s.sendTo(c, protocol.Connected{ID: id})
	s.broadcast(protocol.PlayerState{ID: id, State: state})

	for _, other := range s.sortedClients() {
		if other.id == id {
			continue
		}
		s.sendTo(c, protocol.PlayerState{ID: other.id, State: s.stateOf(other)})
	}
	s.sendTo(c, protocol.DiningState{DiningStateData: netcomponents.DiningStateData{Seats: s.dining}})
	s.sendTo(c, protocol.BenchState{BenchStateData: s.bench})
	return c
}

// leave releases everything the visitor held and tells the others.
func (s *Server) leave(c *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clients[c.id] != c {
		return
	}
	delete(s.clients, c.id)
	close(c.send)
	if s.world.Valid(c.entity) {
		s.world.Remove(c.entity)
	}

	s.wheel.Remove(c.id)
	if s.dining.Holds(c.id) {
		s.dining = s.dining.Vacate(c.id)
		s.broadcast(protocol.DiningState{DiningStateData: netcomponents.DiningStateData{Seats: s.dining}})
	}
	if s.bench.Holds(c.id) {
		s.bench.Seats = s.bench.Vacate(c.id)
		s.broadcast(protocol.BenchState{BenchStateData: s.bench})
	}

	s.broadcast(protocol.Disconnected{ID: c.id})
	s.log.Infow("[server] player disconnected", "player", c.id, "players", len(s.clients))
}

func (s *Server) handle(c *Client, b []byte) {
	env, err := protocol.DecodeEnvelope(b)
	if err != nil {
		s.log.Warnw("[server] dropping malformed message", "player", c.id, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clients[c.id] != c {
		return
	}

	switch env.Type {
	case protocol.TypePlayer:
		err = s.onPlayer(c, env)
	case protocol.TypeDining:
		err = s.onDining(env)
	case protocol.TypeBench:
		err = s.onBench(env)
	case protocol.TypeFerris:
		err = s.onFerris(env)
	default:
		s.log.Debugw("[server] ignoring message", "player", c.id, "type", env.Type)
	}
	if err != nil {
		s.log.Warnw("[server] rejected message", "player", c.id, "type", env.Type, "error", err)
	}
}

func (s *Server) onPlayer(c *Client, env protocol.Envelope) error {
	msg, err := protocol.DecodePayload[netcomponents.PlayerStateData](env)
	if err != nil {
		return err
	}

	entry := s.world.Entry(c.entity)
	state := netcomponents.NetPlayerState.Get(entry)
	color := state.Color
	*state = msg
	if state.Color == "" {
		state.Color = color
	}

	s.broadcast(protocol.PlayerState{ID: c.id, State: *state})
	return nil
}

func (s *Server) onDining(env protocol.Envelope) error {
	seats, err := protocol.DecodePayload[netcomponents.Seats](env)
	if err != nil {
		return err
	}
	s.dining = seats
	s.broadcast(protocol.DiningState{DiningStateData: netcomponents.DiningStateData{Seats: seats}})
	return nil
}

func (s *Server) onBench(env protocol.Envelope) error {
	seats, err := protocol.DecodePayload[netcomponents.Seats](env)
	if err != nil {
		return err
	}
	s.bench.Seats = seats
	if seats.Full() && !s.bench.ShowFireworks && s.fireworks == nil {
		s.fireworks = time.AfterFunc(s.fireworksDelay, s.igniteFireworks)
	}
	s.broadcast(protocol.BenchState{BenchStateData: s.bench})
	return nil
}

// igniteFireworks fires once the bench has stayed full for the delay. Once
// shown, fireworks stay on for the life of the server.
func (s *Server) igniteFireworks() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fireworks = nil
	if !s.bench.Full() || s.bench.ShowFireworks {
		return
	}
	s.bench.ShowFireworks = true
	s.log.Infow("[server] fireworks", "left", s.bench.Left, "right", s.bench.Right)
	s.broadcast(protocol.BenchState{BenchStateData: s.bench})
}

func (s *Server) onFerris(env protocol.Envelope) error {
	req, err := protocol.DecodePayload[protocol.FerrisRequest](env)
	if err != nil {
		return err
	}

	switch req.Action {
	case protocol.FerrisJoin:
		if !s.wheel.Join(req.Player) {
			s.log.Debugw("[server] ferris join refused", "player", req.Player, "riders", s.wheel.Riders())
		}
	case protocol.FerrisCancel:
		s.wheel.Remove(req.Player)
	case protocol.FerrisExit:
		for _, c := range s.sortedClients() {
			state := netcomponents.NetPlayerState.Get(s.world.Entry(c.entity))
			state.Action = netcomponents.ActionIdle
			s.broadcast(protocol.PlayerState{ID: c.id, State: *state})
		}
		s.wheel.Clear()
	default:
		return errors.New("unknown ferris action " + string(req.Action))
	}
	return nil
}

// tick advances the wheel and publishes it. While a full load rides, the
// riders are pinned to the ferris action.
func (s *Server) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wheel.Tick()
	s.broadcast(protocol.FerrisState{FerrisStateData: s.wheel.State()})

	if !s.wheel.Boarded() {
		return
	}
	for _, id := range s.wheel.Riders() {
		c, ok := s.clients[id]
		if !ok {
			continue
		}
		state := netcomponents.NetPlayerState.Get(s.world.Entry(c.entity))
		state.Action = netcomponents.ActionFerris
		s.broadcast(protocol.PlayerState{ID: id, State: *state})
	}
}

func (s *Server) stateOf(c *Client) netcomponents.PlayerStateData {
	return netcomponents.NetPlayerState.GetValue(s.world.Entry(c.entity))
}

func (s *Server) sortedClients() []*Client {
	out := make([]*Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (s *Server) sendTo(c *Client, m protocol.Message) {
	b, err := protocol.Encode(m)
	if err != nil {
		s.log.Errorw("[server] encode failed", "type", m.MessageType(), "error", err)
		return
	}
	if !c.enqueue(b) {
		s.log.Debugw("[server] send buffer full", "player", c.id, "type", m.MessageType())
	}
}

func (s *Server) broadcast(m protocol.Message) {
	b, err := protocol.Encode(m)
	if err != nil {
		s.log.Errorw("[server] encode failed", "type", m.MessageType(), "error", err)
		return
	}
	for _, c := range s.clients {
		if !c.enqueue(b) {
			s.log.Debugw("[server] send buffer full", "player", c.id, "type", m.MessageType())
		}
	}
}
