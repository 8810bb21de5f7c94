package services

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/observability"
	"chat-relay/runtime"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sent struct {
	name    string
	payload any
}

type recordingTransport struct {
	mu     sync.Mutex
	id     string
	frames []sent
}

func (t *recordingTransport) ID() string   { return t.id }
func (t *recordingTransport) Close() error { return nil }
func (t *recordingTransport) Emit(name string, payload any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frames = append(t.frames, sent{name: name, payload: payload})
	return nil
}

func (t *recordingTransport) names() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, 0, len(t.frames))
	for _, f := range t.frames {
		names = append(names, f.name)
	}
	return names
}

func newTestSessionService(ctrl *gomock.Controller) (*SessionService, *mocks.MockIDomainService, *runtime.SessionRegistry) {
	domainService := mocks.NewMockIDomainService(ctrl)
	registry := runtime.NewSessionRegistry()
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	return NewSessionService(slog.Default(), domainService, registry, metrics, time.Second), domainService, registry
}

func TestSessionService_Login_Pushes_Snapshot_In_Order(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()
	service, domainService, registry := newTestSessionService(ctrl)

	alice := domain.Identity{ID: "alice", Username: "alice"}
	bob := domain.Identity{ID: "bob", Username: "bob"}
	general := domain.Channel{ID: "c1", Name: "general"}
	secret := domain.Channel{ID: "c2", Name: "secret", AdminOnly: true}

	// Given a known identity and an admin-only channel
	domainService.EXPECT().LoginUser(gomock.Any(), "alice").Return(true, nil)
	domainService.EXPECT().GetUser(gomock.Any(), "alice").Return(alice, nil)
	domainService.EXPECT().GetAllOnlineLocalUsers(gomock.Any()).Return([]domain.Identity{alice, bob}, nil)
	domainService.EXPECT().GetAllChannels(gomock.Any()).Return([]domain.Channel{general, secret}, nil)
	domainService.EXPECT().ID().Return("peer-local")

	transport := &recordingTransport{id: "conn-1"}
	h := service.Open(transport)

	// When the connection claims alice
	req.NoError(service.Login(ctx, h, "alice"))

	// Then the registry binds alice to this transport
	bound, ok := registry.Lookup("alice")
	req.True(ok)
	req.Equal(transport, bound)

	// And the snapshot skips the admin-only channel
	req.Equal([]string{
		event.WireLoginPoke,
		event.WireMyUser,
		event.WireUserOnline,
		event.WireUserOnline,
		event.WireChannelCreate,
		event.WireThisServer,
	}, transport.names())
	req.Equal(general, transport.frames[4].payload)
	req.Equal("peer-local", transport.frames[5].payload)

	session, ok := h.Session()
	req.True(ok)
	req.Equal("conn-1", session.ConnID)
}

func TestSessionService_Second_Claim_Is_Ignored(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service, domainService, _ := newTestSessionService(ctrl)

	// Given a first claim refused by the domain service
	domainService.EXPECT().LoginUser(gomock.Any(), "ghost").Return(false, nil).Times(1)

	transport := &recordingTransport{id: "conn-1"}
	h := service.Open(transport)
	err := service.Login(context.Background(), h, "ghost")
	req.ErrorIs(err, errors.ErrLoginRejected)

	// When the connection claims again
	req.NoError(service.Login(context.Background(), h, "alice"))

	// Then nothing else happened: one failure, no session
	req.Equal([]string{event.WireLoginPoke, event.WireLoginFail}, transport.names())
	_, ok := h.Session()
	req.False(ok)
}

func TestSessionService_Second_Login_Rejected_First_Stays(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service, domainService, registry := newTestSessionService(ctrl)
	alice := domain.Identity{ID: "alice", Username: "alice"}

	// Given alice already bound to a first connection
	first := &recordingTransport{id: "conn-1"}
	req.NoError(registry.Register(domain.Session{Identity: alice, ConnID: "conn-1"}, first))

	// And a domain service that accepts the login anyway
	domainService.EXPECT().LoginUser(gomock.Any(), "alice").Return(true, nil)
	domainService.EXPECT().GetUser(gomock.Any(), "alice").Return(alice, nil)

	second := &recordingTransport{id: "conn-2"}
	h := service.Open(second)

	// When the second connection claims alice
	err := service.Login(context.Background(), h, "alice")

	// Then it fails and the first connection keeps the identity
	req.ErrorIs(err, errors.ErrAlreadyLoggedIn)
	req.Equal([]string{event.WireLoginPoke, event.WireLoginFail}, second.names())
	bound, ok := registry.Lookup("alice")
	req.True(ok)
	req.Equal(first, bound)

	// And closing the rejected connection does not evict the first one
	service.Close(h)
	_, ok = registry.Lookup("alice")
	req.True(ok)
}

func TestSessionService_Close_Unregisters_And_Logs_Out(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service, domainService, registry := newTestSessionService(ctrl)
	alice := domain.Identity{ID: "alice", Username: "alice"}

	domainService.EXPECT().LoginUser(gomock.Any(), "alice").Return(true, nil)
	domainService.EXPECT().GetUser(gomock.Any(), "alice").Return(alice, nil)
	domainService.EXPECT().GetAllOnlineLocalUsers(gomock.Any()).Return(nil, nil)
	domainService.EXPECT().GetAllChannels(gomock.Any()).Return(nil, nil)
	domainService.EXPECT().ID().Return("peer-local")

	// Given a slow logout on the domain side
	released := make(chan struct{})
	domainService.EXPECT().LogoutUser(gomock.Any(), "alice").DoAndReturn(func(ctx context.Context, _ string) error {
		<-released
		return nil
	}).Times(1)

	h := service.Open(&recordingTransport{id: "conn-1"})
	req.NoError(service.Login(context.Background(), h, "alice"))

	// When the connection closes
	closed := make(chan struct{})
	go func() {
		service.Close(h)
		close(closed)
	}()

	// Then close returns without waiting for the logout
	select {
	case <-closed:
	case <-time.After(time.Second):
		req.Fail("close blocked on logout")
	}
	_, ok := registry.Lookup("alice")
	req.False(ok)

	close(released)
	service.Wait()
}

func TestSessionService_Close_Before_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service, _, _ := newTestSessionService(ctrl)

	// No domain call is expected
	h := service.Open(&recordingTransport{id: "conn-1"})
	service.Close(h)
	service.Wait()
}
