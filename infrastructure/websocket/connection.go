package websocket

import (
	"chat-relay/contract"
	"chat-relay/errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 32 * 1024
)

var _ contract.Transport = (*Connection)(nil)

// Connection is one websocket peer. Frames are queued on send and written by
// WritePump; Emit never blocks.
type Connection struct {
	id   string
	conn *websocket.Conn
	log  *slog.Logger
	send chan []byte

	mu        sync.RWMutex
	closed    bool
	done      chan struct{}
	closeOnce sync.Once
}

func NewConnection(id string, conn *websocket.Conn, sendBuffer int, log *slog.Logger) *Connection {
	return &Connection{
		id:   id,
		conn: conn,
		log:  log,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

func (c *Connection) ID() string {
	return c.id
}

// Emit queues a frame. A closed connection or a full queue is an error; the
// latter also closes the connection, a client that cannot keep up is dropped.
func (c *Connection) Emit(name string, payload any) error {
	data, err := Encode(name, payload)
	if err != nil {
		return err
	}

	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return errors.ErrSessionClosed
	}
	select {
	case c.send <- data:
		c.mu.RUnlock()
		return nil
	default:
		c.mu.RUnlock()
	}

	c.log.Warn("Send queue full, dropping slow client", "conn_id", c.id, "event", name)
	_ = c.Close()
	return errors.ErrSlowConsumer
}

// Close stops the write pump, which then closes the socket.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		close(c.done)
	})
	return nil
}

// Done is closed once the connection is closed.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// ReadPump hands every inbound message to handle until the socket fails or
// is closed. handle runs on the reading goroutine, one message at a time.
func (c *Connection) ReadPump(handle func(raw []byte)) {
	defer func() {
		_ = c.Close()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Debug("Websocket read failed", "conn_id", c.id, "error", err)
			}
			return
		}
		handle(message)
	}
}

// WritePump writes queued frames and keeps the connection alive with pings.
func (c *Connection) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.log.Debug("Websocket write failed", "conn_id", c.id, "error", err)
				_ = c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.Close()
				return
			}
		case <-c.done:
			c.flush()
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// flush writes what is still queued, best-effort.
func (c *Connection) flush() {
	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		default:
			return
		}
	}
}
