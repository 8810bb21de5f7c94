package websocket

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/observability"
	"chat-relay/runtime"
	"chat-relay/services"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	server   *httptest.Server
	handler  *Handler
	domain   *mocks.MockIDomainService
	gateway  *mocks.MockIGateway
	registry *runtime.SessionRegistry
	sessions *services.SessionService
}

func newHarness(t *testing.T, ctrl *gomock.Controller) *harness {
	t.Helper()
	log := slog.Default()
	domainService := mocks.NewMockIDomainService(ctrl)
	gateway := mocks.NewMockIGateway(ctrl)
	registry := runtime.NewSessionRegistry()
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	sessions := services.NewSessionService(log, domainService, registry, metrics, time.Second)
	handler := NewHandler(log, sessions, gateway, 16)
	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		handler.CloseAll()
		server.Close()
	})
	return &harness{server: server, handler: handler, domain: domainService, gateway: gateway, registry: registry, sessions: sessions}
}

func (h *harness) dial(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(h.server.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return ws
}

// expectLogin prepares the domain calls of a successful login of identity.
func (h *harness) expectLogin(identity domain.Identity) {
	h.domain.EXPECT().LoginUser(gomock.Any(), identity.ID).Return(true, nil)
	h.domain.EXPECT().GetUser(gomock.Any(), identity.ID).Return(identity, nil)
	h.domain.EXPECT().GetAllOnlineLocalUsers(gomock.Any()).Return([]domain.Identity{identity}, nil)
	h.domain.EXPECT().GetAllChannels(gomock.Any()).Return(nil, nil)
	h.domain.EXPECT().ID().Return("peer-local")
	h.domain.EXPECT().LogoutUser(gomock.Any(), identity.ID).Return(nil).AnyTimes()
}

func (h *harness) close(t *testing.T, ws *websocket.Conn) {
	t.Helper()
	_ = ws.Close()
	require.Eventually(t, func() bool { return h.registry.Len() == 0 }, time.Second, 10*time.Millisecond)
	h.sessions.Wait()
}

func send(t *testing.T, ws *websocket.Conn, name string, payload any) {
	t.Helper()
	raw, err := Encode(name, payload)
	require.NoError(t, err)
	require.NoError(t, ws.WriteMessage(websocket.TextMessage, raw))
}

func read(t *testing.T, ws *websocket.Conn) Frame {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := ws.ReadMessage()
	require.NoError(t, err)
	frame, err := Decode(raw)
	require.NoError(t, err)
	return frame
}

func readUntil(t *testing.T, ws *websocket.Conn, name string) Frame {
	t.Helper()
	for {
		if frame := read(t, ws); frame.Event == name {
			return frame
		}
	}
}

func TestHandler_Login_Handshake(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := newHarness(t, ctrl)
	alice := domain.Identity{ID: "alice", Username: "alice"}
	h.expectLogin(alice)

	ws := h.dial(t)

	// Given the relay prompts for an identity
	req.Equal(event.WireLoginPoke, read(t, ws).Event)

	// When alice is claimed
	send(t, ws, event.WireLogin, "alice")

	// Then the snapshot follows, ending with this server's id
	myUser := read(t, ws)
	req.Equal(event.WireMyUser, myUser.Event)
	identity, err := Payload[domain.Identity](myUser)
	req.NoError(err)
	req.Equal(alice, identity)
	req.Equal(event.WireUserOnline, read(t, ws).Event)
	thisServer := read(t, ws)
	req.Equal(event.WireThisServer, thisServer.Event)
	req.JSONEq(`"peer-local"`, string(thisServer.Data))

	_, ok := h.registry.Lookup("alice")
	req.True(ok)
	h.close(t, ws)
}

func TestHandler_Command_Before_Login_Is_Ignored(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := newHarness(t, ctrl)

	// Then the gateway is never reached
	h.gateway.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	h.domain.EXPECT().LoginUser(gomock.Any(), "ghost").Return(false, nil)

	ws := h.dial(t)
	req.Equal(event.WireLoginPoke, read(t, ws).Event)

	// When a command arrives before any login, then an unknown identity is claimed
	send(t, ws, event.WireMessageSend, domain.SendMessageCommand{ChannelID: "c1", Content: "hi"})
	send(t, ws, event.WireLogin, "ghost")

	// Then the only answer is the login failure
	fail := read(t, ws)
	req.Equal(event.WireLoginFail, fail.Event)
	reason, err := Payload[string](fail)
	req.NoError(err)
	req.Equal(errors.ErrLoginRejected.Error(), reason)
	_ = ws.Close()
}

func TestHandler_Denied_Command_Emits_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := newHarness(t, ctrl)
	alice := domain.Identity{ID: "alice", Username: "alice"}
	h.expectLogin(alice)

	h.gateway.EXPECT().
		CreateChannel(gomock.Any(), gomock.Any(), domain.CreateChannelCommand{Name: "general"}).
		DoAndReturn(func(_ any, session domain.Session, _ domain.CreateChannelCommand) (string, error) {
			req.Equal("alice", session.IdentityID())
			return "", errors.ErrNotAdmin
		})

	ws := h.dial(t)
	send(t, ws, event.WireLogin, "alice")
	readUntil(t, ws, event.WireThisServer)

	// When a non-admin creates a channel
	send(t, ws, event.WireChannelCreate, domain.CreateChannelCommand{Name: "general"})

	// Then a visible denial comes back
	fail := read(t, ws)
	req.Equal(event.WireChannelCreateFail, fail.Event)
	reason, err := Payload[string](fail)
	req.NoError(err)
	req.Equal(errors.ErrNotAdmin.Error(), reason)

	h.close(t, ws)
}

func TestHandler_Join_Streams_Backlog(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := newHarness(t, ctrl)
	alice := domain.Identity{ID: "alice", Username: "alice"}
	h.expectLogin(alice)

	backlog := []domain.Message{
		{ID: "m1", ChannelID: "c1", SenderID: "bob", Content: "first"},
		{ID: "m2", ChannelID: "c1", SenderID: "bob", Content: "second"},
	}
	h.gateway.EXPECT().JoinChannel(gomock.Any(), gomock.Any(), domain.JoinChannelCommand{ChannelID: "c1"}).Return(backlog, nil)
	h.gateway.EXPECT().GetUser(gomock.Any(), gomock.Any(), "bob").Return(domain.Identity{ID: "bob", Username: "bob"}, nil)

	ws := h.dial(t)
	send(t, ws, event.WireLogin, "alice")
	readUntil(t, ws, event.WireThisServer)

	// When alice joins the channel and resolves the sender
	send(t, ws, event.WireChannelJoin, domain.JoinChannelCommand{ChannelID: "c1"})
	send(t, ws, event.WireGetUser, "bob")

	// Then the backlog arrives oldest first, then the user info
	for _, want := range backlog {
		frame := read(t, ws)
		req.Equal(event.WireMessageReceived, frame.Event)
		var message domain.Message
		req.NoError(json.Unmarshal(frame.Data, &message))
		req.Equal(want.ID, message.ID)
	}
	info := read(t, ws)
	req.Equal(event.WireUserInfo, info.Event)

	h.close(t, ws)
}

func TestHandler_Refuses_Connections_After_CloseAll(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := newHarness(t, ctrl)

	// Given the handler is shutting down
	h.handler.CloseAll()

	// When a client still manages to upgrade
	ws := h.dial(t)
	defer ws.Close()

	// Then the socket is closed by the relay instead of left hanging
	req.NoError(ws.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, _, err := ws.ReadMessage()
	req.Error(err)
	var netErr net.Error
	req.False(stderrors.As(err, &netErr) && netErr.Timeout(), "read timed out on an open socket: %v", err)
	h.handler.Wait()
}
