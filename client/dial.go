package client

import (
	"chat-relay/errors"
	"chat-relay/infrastructure/websocket"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	gorilla "github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Conn is the client side of a relay connection.
type Conn struct {
	log    *slog.Logger
	ws     *gorilla.Conn
	mu     sync.Mutex
	closed bool
}

// Dial opens a websocket to the relay, e.g. ws://localhost:8080/ws.
func Dial(ctx context.Context, url string, log *slog.Logger) (*Conn, error) {
	ws, _, err := gorilla.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", url, err)
	}
	return &Conn{log: log, ws: ws}, nil
}

// Emit sends one command frame. Writes are serialized, gorilla allows a
// single concurrent writer.
func (c *Conn) Emit(name string, payload any) error {
	raw, err := websocket.Encode(name, payload)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.ErrSessionClosed
	}
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(gorilla.TextMessage, raw)
}

// Frames reads the connection until it fails and streams the raw frames.
// The returned channel is closed when the connection ends.
func (c *Conn) Frames() <-chan []byte {
	frames := make(chan []byte, 64)
	go func() {
		defer close(frames)
		for {
			_, raw, err := c.ws.ReadMessage()
			if err != nil {
				if gorilla.IsUnexpectedCloseError(err, gorilla.CloseGoingAway, gorilla.CloseNormalClosure) {
					c.log.Warn("Relay connection lost", "error", err)
				}
				return
			}
			frames <- raw
		}
	}()
	return frames
}

// Close says goodbye to the relay and closes the socket.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	_ = c.ws.WriteControl(gorilla.CloseMessage,
		gorilla.FormatCloseMessage(gorilla.CloseNormalClosure, ""), time.Now().Add(time.Second))
	return c.ws.Close()
}
