package websocket

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/services"
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler upgrades HTTP requests and serves one connection per request: login
// handshake first, then client commands dispatched to the gateway.
type Handler struct {
	log        *slog.Logger
	sessions   *services.SessionService
	gateway    contract.IGateway
	upgrader   websocket.Upgrader
	sendBuffer int

	mu      sync.Mutex
	conns   map[string]*Connection
	closing bool
	serving sync.WaitGroup
}

func NewHandler(log *slog.Logger, sessions *services.SessionService,
	gateway contract.IGateway, sendBuffer int) *Handler {
	return &Handler{
		log:        log,
		sessions:   sessions,
		gateway:    gateway,
		sendBuffer: sendBuffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Clients are native programs, not browsers.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[string]*Connection),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	conn := NewConnection(uuid.New().String(), ws, h.sendBuffer, h.log)
	if !h.track(conn) {
		// No pump runs yet, so the socket is closed here.
		_ = ws.Close()
		return
	}
	defer h.untrack(conn)

	h.log.Debug("Connection opened", "conn_id", conn.ID(), "remote", r.RemoteAddr)
	go conn.WritePump()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	handshake := h.sessions.Open(conn)
	conn.ReadPump(func(raw []byte) {
		h.dispatch(ctx, handshake, raw)
	})

	h.sessions.Close(handshake)
	h.log.Debug("Connection closed", "conn_id", conn.ID())
}

// CloseAll closes every live connection and refuses new ones, used on
// shutdown since hijacked connections are not tracked by http.Server.
func (h *Handler) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closing = true
	for _, conn := range h.conns {
		_ = conn.Close()
	}
}

// Wait blocks until every connection served so far has gone through its
// close path. Call it after CloseAll.
func (h *Handler) Wait() {
	h.serving.Wait()
}

func (h *Handler) track(conn *Connection) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closing {
		return false
	}
	h.conns[conn.ID()] = conn
	h.serving.Add(1)
	return true
}

func (h *Handler) untrack(conn *Connection) {
	h.mu.Lock()
	delete(h.conns, conn.ID())
	h.mu.Unlock()
	h.serving.Done()
}

func (h *Handler) dispatch(ctx context.Context, handshake *services.Handshake, raw []byte) {
	transport := handshake.Transport()
	frame, err := Decode(raw)
	if err != nil {
		h.log.Debug("Malformed frame ignored", "conn_id", transport.ID(), "error", err)
		return
	}

	if frame.Event == event.WireLogin {
		identityID, err := Payload[string](frame)
		if err != nil {
			h.log.Debug("Malformed login ignored", "conn_id", transport.ID(), "error", err)
			return
		}
		_ = h.sessions.Login(ctx, handshake, identityID)
		return
	}

	session, ok := handshake.Session()
	if !ok {
		h.log.Debug("Command before login ignored", "conn_id", transport.ID(), "event", frame.Event)
		return
	}

	if err = h.command(ctx, session, transport, frame); err != nil {
		if emitErr := transport.Emit(event.FailureOf(frame.Event), errors.Reason(err)); emitErr != nil {
			h.log.Debug("Unable to notify failure", "conn_id", transport.ID(), "error", emitErr)
		}
	}
}

// command runs one client command. Results that only concern the caller are
// emitted here; state changes come back through the relay.
func (h *Handler) command(ctx context.Context, session domain.Session, transport contract.Transport, frame Frame) error {
	switch frame.Event {
	case event.WireMessageSend:
		cmd, err := Payload[domain.SendMessageCommand](frame)
		if err != nil {
			return err
		}
		return h.gateway.SendMessage(ctx, session, cmd)

	case event.WireMessageDeleted:
		messageID, err := Payload[string](frame)
		if err != nil {
			return err
		}
		return h.gateway.DeleteMessage(ctx, session, messageID)

	case event.WireChannelJoin:
		cmd, err := Payload[domain.JoinChannelCommand](frame)
		if err != nil {
			return err
		}
		messages, err := h.gateway.JoinChannel(ctx, session, cmd)
		if err != nil {
			return err
		}
		for _, message := range messages {
			if err = transport.Emit(event.WireMessageReceived, message); err != nil {
				h.log.Debug("Backlog delivery dropped", "conn_id", transport.ID(), "error", err)
				return nil
			}
		}
		return nil

	case event.WireGetUser:
		id, err := Payload[string](frame)
		if err != nil {
			return err
		}
		identity, err := h.gateway.GetUser(ctx, session, id)
		if err != nil {
			return err
		}
		return h.reply(transport, event.WireUserInfo, identity)

	case event.WireGetPeer:
		id, err := Payload[string](frame)
		if err != nil {
			return err
		}
		peer, err := h.gateway.GetPeer(ctx, session, id)
		if err != nil {
			return err
		}
		return h.reply(transport, event.WirePeerInfo, peer)

	case event.WireChannelCreate:
		cmd, err := Payload[domain.CreateChannelCommand](frame)
		if err != nil {
			return err
		}
		_, err = h.gateway.CreateChannel(ctx, session, cmd)
		return err

	case event.WireChannelDelete:
		channelID, err := Payload[string](frame)
		if err != nil {
			return err
		}
		return h.gateway.DeleteChannel(ctx, session, channelID)

	case event.WireSendPairRequest:
		cmd, err := Payload[domain.PairRequestCommand](frame)
		if err != nil {
			return err
		}
		return h.gateway.SendPairRequest(ctx, session, cmd)

	case event.WireRespondToPairRequest:
		cmd, err := Payload[domain.PairResponseCommand](frame)
		if err != nil {
			return err
		}
		return h.gateway.RespondToPairRequest(ctx, session, cmd)

	default:
		h.log.Debug("Unknown event ignored", "conn_id", transport.ID(), "event", frame.Event)
		return nil
	}
}

// reply emits a response to the caller. A vanished transport is not a
// command failure.
func (h *Handler) reply(transport contract.Transport, name string, payload any) error {
	if err := transport.Emit(name, payload); err != nil {
		h.log.Debug("Reply dropped", "conn_id", transport.ID(), "event", name, "error", err)
	}
	return nil
}
