package protocol

import (
	"encoding/json"
	"testing"

	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeServerMessages(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Message
	}{
		{
			name: "connected",
			raw:  `{"type":"connected","id":"player_1"}`,
			want: Connected{ID: "player_1"},
		},
		{
			name: "disconnected",
			raw:  `{"type":"disconnected","id":"player_2"}`,
			want: Disconnected{ID: "player_2"},
		},
		{
			name: "player state",
			raw: `{"type":"playerState","id":"player_2","state":{"color":"blue","action":"move",` +
				`"target":"","x":100,"y":200,"frame":2,"changeFrame":false,"facing":"right"}}`,
			want: PlayerState{ID: "player_2", State: netcomponents.PlayerStateData{
				Color: netcomponents.ColorBlue, Action: netcomponents.ActionMove,
				X: 100, Y: 200, Frame: 2, Facing: netcomponents.FacingRight,
			}},
		},
		{
			name: "dining state",
			raw:  `{"type":"diningState","left":"player_1","right":""}`,
			want: DiningState{netcomponents.DiningStateData{Seats: netcomponents.Seats{Left: "player_1"}}},
		},
		{
			name: "bench state",
			raw:  `{"type":"benchState","left":"a","right":"b","showFireworks":true}`,
			want: BenchState{netcomponents.BenchStateData{
				Seats:         netcomponents.Seats{Left: "a", Right: "b"},
				ShowFireworks: true,
			}},
		},
		{
			name: "ferris state",
			raw:  `{"type":"ferrisState","frame":3,"players":["a","b"]}`,
			want: FerrisState{netcomponents.FerrisStateData{Frame: 3, Players: []string{"a", "b"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUnknownType(t *testing.T) {
	got, err := Decode([]byte(`{"type":"weather","rain":true}`))
	require.NoError(t, err)

	u, ok := got.(Unknown)
	require.True(t, ok)
	assert.Equal(t, "weather", u.Type)
	assert.JSONEq(t, `{"type":"weather","rain":true}`, string(u.Raw))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Decode([]byte(`{"type":`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"type":"ferrisState","players":"nope"}`))
	assert.Error(t, err)
}

func TestEncodeInlinesType(t *testing.T) {
	b, err := Encode(FerrisState{netcomponents.FerrisStateData{Frame: 1, Players: []string{"a"}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ferrisState","frame":1,"players":["a"]}`, string(b))

	b, err = Encode(PlayerState{ID: "a", State: netcomponents.NewPlayerState(netcomponents.ColorPink)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"playerState","id":"a","state":{"color":"pink","action":"idle",`+
		`"x":2200,"y":1300,"frame":0,"changeFrame":true,"facing":"left"}}`, string(b))

	_, err = Encode(Unknown{Type: "weather"})
	assert.Error(t, err)
}

func TestEncodeDecodeAgree(t *testing.T) {
	in := BenchState{netcomponents.BenchStateData{Seats: netcomponents.Seats{Right: "b"}}}
	b, err := Encode(in)
	require.NoError(t, err)

	out, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestOutboundShapes(t *testing.T) {
	state := netcomponents.NewPlayerState(netcomponents.ColorBlue)

	tests := []struct {
		name string
		msg  Outbound
		want string
	}{
		{
			name: "hello",
			msg:  Hello(state),
			want: `{"type":"player","data":{"color":"blue","x":2200,"y":1300,"facing":"left","action":"idle"}}`,
		},
		{
			name: "player",
			msg:  PlayerUpdate(state),
			want: `{"type":"player","data":{"color":"blue","action":"idle","x":2200,"y":1300,` +
				`"frame":0,"changeFrame":true,"facing":"left"}}`,
		},
		{
			name: "dining",
			msg:  DiningRequest(netcomponents.Seats{Left: "a"}),
			want: `{"type":"dining","data":{"left":"a","right":""}}`,
		},
		{
			name: "bench",
			msg:  BenchRequest(netcomponents.Seats{Right: "b"}),
			want: `{"type":"bench","data":{"left":"","right":"b"}}`,
		},
		{
			name: "ferris",
			msg:  Ferris(FerrisJoin, "a"),
			want: `{"type":"ferris","data":{"action":"join","player":"a"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.msg)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestDecodePayload(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"type":"ferris","data":{"action":"exit","player":"a"}}`))
	require.NoError(t, err)
	assert.Equal(t, TypeFerris, env.Type)

	req, err := DecodePayload[FerrisRequest](env)
	require.NoError(t, err)
	assert.Equal(t, FerrisRequest{Action: FerrisExit, Player: "a"}, req)

	_, err = DecodePayload[FerrisRequest](Envelope{Type: TypeFerris})
	assert.Error(t, err)

	_, err = DecodeEnvelope(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}
