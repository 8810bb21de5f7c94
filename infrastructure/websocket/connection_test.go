package websocket

import (
	"chat-relay/errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnection_Emit_Never_Blocks(t *testing.T) {
	req := require.New(t)

	// Given a connection whose writer is stuck, with room for one frame
	conn := NewConnection("conn-1", nil, 1, slog.Default())

	// When two frames are emitted
	req.NoError(conn.Emit("msg_rcv", "first"))
	err := conn.Emit("msg_rcv", "second")

	// Then the slow client is dropped instead of blocking the caller
	req.ErrorIs(err, errors.ErrSlowConsumer)
	select {
	case <-conn.Done():
	default:
		req.Fail("connection should be closed")
	}
	req.ErrorIs(conn.Emit("msg_rcv", "third"), errors.ErrSessionClosed)
	req.NoError(conn.Close())
}
