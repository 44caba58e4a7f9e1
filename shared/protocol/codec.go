package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrEmpty = errors.New("protocol: empty message")

// Decode parses one server to client message. Types this client does not
// know come back as Unknown rather than an error.
func Decode(b []byte) (Message, error) {
	if len(b) == 0 {
		return nil, ErrEmpty
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, fmt.Errorf("decode message type: %w", err)
	}

	var msg Message
	switch head.Type {
	case TypeConnected:
		msg = &Connected{}
	case TypeDisconnected:
		msg = &Disconnected{}
	case TypePlayerState:
		msg = &PlayerState{}
	case TypeDiningState:
		msg = &DiningState{}
	case TypeBenchState:
		msg = &BenchState{}
	case TypeFerrisState:
		msg = &FerrisState{}
	default:
		return Unknown{Type: head.Type, Raw: b}, nil
	}

	if err := json.Unmarshal(b, msg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", head.Type, err)
	}
	return deref(msg), nil
}

func deref(m Message) Message {
	switch v := m.(type) {
	case *Connected:
		return *v
	case *Disconnected:
		return *v
	case *PlayerState:
		return *v
	case *DiningState:
		return *v
	case *BenchState:
		return *v
	case *FerrisState:
		return *v
	}
	return m
}

// Encode renders a server to client message with its type inlined.
func Encode(m Message) ([]byte, error) {
	if _, ok := m.(Unknown); ok {
		return nil, fmt.Errorf("encode: unknown message type %q", m.MessageType())
	}
	body, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", m.MessageType(), err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("encode %s: %w", m.MessageType(), err)
	}
	t, _ := json.Marshal(m.MessageType())
	fields["type"] = t

	return json.Marshal(fields)
}

// Envelope is a client to server message as received by the relay.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmpty
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return e, nil
}

func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.Data) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.Type)
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("decode %s payload: %w", env.Type, err)
	}
	return out, nil
}
