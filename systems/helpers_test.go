package systems

import (
	"math/rand"
	"testing"

	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/shared/parkmap"
	"github.com/cozypark/cozypark/shared/protocol"
)

type fakeSender struct {
	sent []protocol.Outbound
}

func (f *fakeSender) Send(msg protocol.Outbound) error {
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeSender) ofType(t string) []protocol.Outbound {
	var out []protocol.Outbound
	for _, m := range f.sent {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeSender) last() protocol.Outbound {
	if len(f.sent) == 0 {
		return protocol.Outbound{}
	}
	return f.sent[len(f.sent)-1]
}

func (f *fakeSender) reset() {
	f.sent = nil
}

type fakeInbox struct {
	msgs []protocol.Message
}

func (f *fakeInbox) push(msgs ...protocol.Message) {
	f.msgs = append(f.msgs, msgs...)
}

func (f *fakeInbox) Drain() []protocol.Message {
	out := f.msgs
	f.msgs = nil
	return out
}

// recordingOracle accepts every position unless reject says otherwise.
type recordingOracle struct {
	reject func(x, y int) bool
	asked  [][2]int
}

func (o *recordingOracle) Permits(x, y int) bool {
	o.asked = append(o.asked, [2]int{x, y})
	return o.reject == nil || !o.reject(x, y)
}

type harness struct {
	s      *session.Session
	sender *fakeSender
	inbox  *fakeInbox
}

func newHarness(t *testing.T, oracle session.CollisionOracle) *harness {
	t.Helper()
	layout := parkmap.Default()
	if oracle == nil {
		oracle = NewParkCollision(layout)
	}
	h := &harness{sender: &fakeSender{}, inbox: &fakeInbox{}}
	h.s = session.New(session.Options{
		Layout: layout,
		Oracle: oracle,
		Inbox:  h.inbox,
		Sender: h.sender,
		Color:  netcomponents.ColorPink,
		Rand:   rand.New(rand.NewSource(1)),
	})
	return h
}

// connected returns a harness that has received its id.
func connected(t *testing.T, id string) *harness {
	h := newHarness(t, nil)
	Apply(h.s, protocol.Connected{ID: id})
	return h
}

func (h *harness) press(actions ...cfg.ActionID) {
	for _, a := range actions {
		h.s.Input.Push(session.InputEvent{Kind: session.KeyDown, Action: a})
	}
}

func (h *harness) release(actions ...cfg.ActionID) {
	for _, a := range actions {
		h.s.Input.Push(session.InputEvent{Kind: session.KeyUp, Action: a})
	}
}

func (h *harness) moveTo(x, y int) {
	local := h.s.LocalState()
	local.X, local.Y = x, y
}

// tick runs the client systems once, in loop order.
func (h *harness) tick() {
	UpdateNetwork(h.s)
	UpdateInput(h.s)
	UpdateLocalPlayer(h.s)
	UpdateViewport(h.s)
	UpdateDining(h.s)
	UpdateBench(h.s)
	UpdateFerris(h.s)
	UpdateEffects(h.s)
	SendPlayerState(h.s)
}

func ferrisState(players ...string) protocol.FerrisState {
	return protocol.FerrisState{FerrisStateData: netcomponents.FerrisStateData{Players: players}}
}

func playerState(id string, action netcomponents.Action) protocol.PlayerState {
	st := netcomponents.NewPlayerState(netcomponents.ColorBlue)
	st.Action = action
	return protocol.PlayerState{ID: id, State: st}
}
