package core

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/yohamta/donburi"
)

const (
	sendBuffer   = 256
	writeWait    = 5 * time.Second
	readLimit    = 1 << 16
	pongWait     = 60 * time.Second
	pingInterval = pongWait * 9 / 10
)

// Client is one connected park visitor.
type Client struct {
	id     string
	ws     *websocket.Conn
	send   chan []byte
	entity donburi.Entity
}

func newClient(id string, ws *websocket.Conn, entity donburi.Entity) *Client {
	return &Client{
		id:     id,
		ws:     ws,
		send:   make(chan []byte, sendBuffer),
		entity: entity,
	}
}

// enqueue is non-blocking; a client that cannot keep up loses the frame.
// Callers hold the server lock so send is never closed underneath them.
func (c *Client) enqueue(b []byte) bool {
	select {
	case c.send <- b:
		return true
	default:
		return false
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) readPump(s *Server) {
	defer func() {
		s.leave(c)
		_ = c.ws.Close()
	}()

	c.ws.SetReadLimit(readLimit)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		typ, payload, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warnw("[server] read failed", "player", c.id, "error", err)
			}
			return
		}
		if typ != websocket.TextMessage {
			continue
		}
		s.handle(c, payload)
	}
}
