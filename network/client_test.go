package network

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cozypark/cozypark/shared/netcomponents"
	"github.com/cozypark/cozypark/shared/protocol"
	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestSendBeforeConnect(t *testing.T) {
	c := NewClient(nil)
	err := c.Send(protocol.DiningRequest(netcomponents.Seats{Left: "a"}))
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Equal(t, StateDisconnected, c.State())
	assert.Empty(t, c.Drain())
}

func TestClientHandshakeAndDecode(t *testing.T) {
	hello := make(chan map[string]any, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()
		ctx := r.Context()

		_ = conn.Write(ctx, websocket.MessageText, []byte(`{"type":"connected","id":"player_abc"}`))
		_ = conn.Write(ctx, websocket.MessageText, []byte(`{not json`))
		_ = conn.Write(ctx, websocket.MessageText, []byte(`{"type":"weather","sunny":true}`))
		_ = conn.Write(ctx, websocket.MessageBinary, []byte{1, 2, 3})
		_ = conn.Write(ctx, websocket.MessageText, []byte(`{"type":"disconnected","id":"player_x"}`))

		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var m map[string]any
		if json.Unmarshal(data, &m) == nil {
			hello <- m
		}
		<-ctx.Done()
	}))
	defer srv.Close()

	c := NewClient(nil)
	c.Connect(wsURL(srv), protocol.Hello(netcomponents.NewPlayerState(netcomponents.ColorPink)))
	defer c.Disconnect()

	var got []protocol.Message
	require.Eventually(t, func() bool {
		got = append(got, c.Drain()...)
		return len(got) >= 3
	}, 2*time.Second, 10*time.Millisecond)

	require.Len(t, got, 3)
	assert.Equal(t, protocol.Connected{ID: "player_abc"}, got[0])
	unknown, ok := got[1].(protocol.Unknown)
	require.True(t, ok)
	assert.Equal(t, "weather", unknown.Type)
	assert.Equal(t, protocol.Disconnected{ID: "player_x"}, got[2])

	select {
	case m := <-hello:
		assert.Equal(t, "player", m["type"])
		data, ok := m["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "pink", data["color"])
	case <-time.After(2 * time.Second):
		t.Fatal("server never received hello")
	}
	assert.Equal(t, StateConnected, c.State())
}

func TestClientDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := wsURL(srv)
	srv.Close()

	c := NewClient(nil)
	c.Connect(url, protocol.Hello(netcomponents.NewPlayerState(netcomponents.ColorBlue)))

	require.Eventually(t, func() bool {
		return c.State() == StateError
	}, 2*time.Second, 10*time.Millisecond)
	assert.Error(t, c.LastError())
	assert.ErrorIs(t, c.Send(protocol.BenchRequest(netcomponents.Seats{})), ErrNotConnected)
}

func TestClientServerClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()
		_, _, _ = conn.Read(ctx)
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}))
	defer srv.Close()

	c := NewClient(nil)
	c.Connect(wsURL(srv), protocol.Hello(netcomponents.NewPlayerState(netcomponents.ColorBlue)))

	require.Eventually(t, func() bool {
		return c.State() == StateDisconnected
	}, 2*time.Second, 10*time.Millisecond)
	assert.ErrorIs(t, c.Send(protocol.Ferris(protocol.FerrisJoin, "x")), ErrNotConnected)
}
