package protocol

import "github.com/cozypark/cozypark/shared/netcomponents"

// Client to server message types. Each travels as {"type": ..., "data": ...}.
const (
	TypePlayer = "player"
	TypeDining = "dining"
	TypeBench  = "bench"
	TypeFerris = "ferris"
)

// Server to client message types. Payload fields sit next to "type".
const (
	TypeConnected    = "connected"
	TypeDisconnected = "disconnected"
	TypePlayerState  = "playerState"
	TypeDiningState  = "diningState"
	TypeBenchState   = "benchState"
	TypeFerrisState  = "ferrisState"
)

// Message is one decoded server to client message.
type Message interface {
	MessageType() string
}

type Connected struct {
	ID string `json:"id"`
}

type Disconnected struct {
	ID string `json:"id"`
}

type PlayerState struct {
	ID    string                        `json:"id"`
	State netcomponents.PlayerStateData `json:"state"`
}

type DiningState struct {
	netcomponents.DiningStateData
}

type BenchState struct {
	netcomponents.BenchStateData
}

type FerrisState struct {
	netcomponents.FerrisStateData
}

// Unknown carries a message whose type this client does not handle.
type Unknown struct {
	Type string
	Raw  []byte
}

func (Connected) MessageType() string    { return TypeConnected }
func (Disconnected) MessageType() string { return TypeDisconnected }
func (PlayerState) MessageType() string  { return TypePlayerState }
func (DiningState) MessageType() string  { return TypeDiningState }
func (BenchState) MessageType() string   { return TypeBenchState }
func (FerrisState) MessageType() string  { return TypeFerrisState }
func (u Unknown) MessageType() string    { return u.Type }

// FerrisAction is the verb of a ferris request.
type FerrisAction string

const (
	FerrisJoin   FerrisAction = "join"
	FerrisCancel FerrisAction = "cancel"
	FerrisExit   FerrisAction = "exit"
)

// Outbound is a client to server message.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// HelloData is the first player message sent when the channel opens.
type HelloData struct {
	Color  netcomponents.Color  `json:"color"`
	X      int                  `json:"x"`
	Y      int                  `json:"y"`
	Facing netcomponents.Facing `json:"facing"`
	Action netcomponents.Action `json:"action"`
}

type FerrisRequest struct {
	Action FerrisAction `json:"action"`
	Player string       `json:"player"`
}

func Hello(s netcomponents.PlayerStateData) Outbound {
	return Outbound{Type: TypePlayer, Data: HelloData{
		Color:  s.Color,
		X:      s.X,
		Y:      s.Y,
		Facing: s.Facing,
		Action: s.Action,
	}}
}

func PlayerUpdate(s netcomponents.PlayerStateData) Outbound {
	return Outbound{Type: TypePlayer, Data: s}
}

func DiningRequest(s netcomponents.Seats) Outbound {
	return Outbound{Type: TypeDining, Data: s}
}

func BenchRequest(s netcomponents.Seats) Outbound {
	return Outbound{Type: TypeBench, Data: s}
}

func Ferris(action FerrisAction, id string) Outbound {
	return Outbound{Type: TypeFerris, Data: FerrisRequest{Action: action, Player: id}}
}
