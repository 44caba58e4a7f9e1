package network

import (
	"context"
	"errors"
	"fmt"
	"sync"

	cfg "github.com/cozypark/cozypark/config"
	"github.com/cozypark/cozypark/session"
	"github.com/cozypark/cozypark/shared/protocol"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"
)

// ErrNotConnected is returned by Send while the channel is not open.
var ErrNotConnected = session.ErrNotConnected

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Client manages a WebSocket connection to the park server.
// All shared fields are protected by mu (the reader runs on its own goroutine).
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	conn      *websocket.Conn
	cancel    context.CancelFunc

	inbox chan protocol.Message // bounded; the reader blocks when full
	log   *zap.SugaredLogger
}

func NewClient(log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		state: StateDisconnected,
		inbox: make(chan protocol.Message, cfg.Network.InboxSize),
		log:   log,
	}
}

// Connect dials the server in a background goroutine, sends hello once the
// channel is open, then reads until the connection closes.
func (c *Client) Connect(url string, hello protocol.Outbound) {
	ctx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.state = StateConnecting
	c.lastError = nil
	c.cancel = cancel
	c.mu.Unlock()

	go c.run(ctx, url, hello)
}

func (c *Client) run(ctx context.Context, url string, hello protocol.Outbound) {
	dialCtx, cancel := context.WithTimeout(ctx, cfg.Network.DialTimeout)
	conn, _, err := websocket.Dial(dialCtx, url, nil)
	cancel()
	if err != nil {
		c.setError(fmt.Errorf("connection failed: %w", err))
		return
	}

	c.mu.Lock()
	c.conn = conn
	c.state = StateConnected
	c.mu.Unlock()
	c.log.Infow("[client] connected to server", "url", url)

	if err := c.Send(hello); err != nil {
		c.setError(fmt.Errorf("failed to send hello: %w", err))
		_ = conn.CloseNow()
		return
	}

	c.readLoop(ctx, conn)
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) {
	defer func() {
		c.mu.Lock()
		if c.conn == conn {
			c.conn = nil
			if c.state != StateError {
				c.state = StateDisconnected
			}
		}
		c.mu.Unlock()
		_ = conn.CloseNow()
	}()

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() == nil && websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				c.log.Warnw("[client] disconnected", "error", err)
			}
			return
		}
		if typ != websocket.MessageText {
			c.log.Debugw("[client] ignoring binary frame", "bytes", len(data))
			continue
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			c.log.Warnw("[client] dropping malformed message", "error", err)
			continue
		}

		select {
		case c.inbox <- msg:
		case <-ctx.Done():
			return
		}
	}
}

// Drain returns every message received since the last call. Non-blocking.
func (c *Client) Drain() []protocol.Message {
	return drainChan(c.inbox)
}

// Send writes msg as one JSON text frame.
func (c *Client) Send(msg protocol.Outbound) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Network.WriteTimeout)
	defer cancel()
	if err := wsjson.Write(ctx, conn, msg); err != nil {
		return fmt.Errorf("send %s: %w", msg.Type, err)
	}
	return nil
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	cancel := c.cancel
	c.state = StateDisconnected
	c.conn = nil
	c.cancel = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "bye")
	}
	if cancel != nil {
		cancel()
	}
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) setError(err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	c.log.Errorw("[client] error", "error", err)
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
