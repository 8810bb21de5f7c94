package runtime

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	id string
}

func (f fakeTransport) ID() string                 { return f.id }
func (f fakeTransport) Emit(_ string, _ any) error { return nil }
func (f fakeTransport) Close() error               { return nil }

func newSession(identityID, connID string, admin bool) domain.Session {
	return domain.Session{
		Identity: domain.Identity{ID: identityID, Username: "user-" + identityID, Admin: admin},
		ConnID:   connID,
	}
}

func TestSessionRegistry_Register_Then_Lookup(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	identityID := uuid.NewString()
	transport := fakeTransport{id: uuid.NewString()}

	// Given no session exists
	_, ok := registry.Lookup(identityID)
	req.False(ok)

	// When the identity logs in
	err := registry.Register(newSession(identityID, transport.id, false), transport)

	// Then lookup returns exactly the authenticated transport
	req.NoError(err)
	found, ok := registry.Lookup(identityID)
	req.True(ok)
	req.Equal(transport, found)
	req.Equal(1, registry.Len())
}

func TestSessionRegistry_Second_Login_Is_Rejected(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	identityID := uuid.NewString()
	first := fakeTransport{id: "conn-1"}
	second := fakeTransport{id: "conn-2"}

	// Given a live session
	req.NoError(registry.Register(newSession(identityID, first.id, false), first))

	// When the same identity logs in from another connection
	err := registry.Register(newSession(identityID, second.id, false), second)

	// Then the second login is rejected and the first stays bound
	req.ErrorIs(err, errors.ErrAlreadyLoggedIn)
	found, ok := registry.Lookup(identityID)
	req.True(ok)
	req.Equal(first, found)
}

func TestSessionRegistry_Register_Same_Connection_Twice(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	transport := fakeTransport{id: "conn-1"}

	req.NoError(registry.Register(newSession("alice", transport.id, false), transport))
	req.NoError(registry.Register(newSession("alice", transport.id, false), transport))
	req.Equal(1, registry.Len())
}

func TestSessionRegistry_Stale_Unregister_Keeps_Newer_Session(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	first := fakeTransport{id: "conn-1"}
	second := fakeTransport{id: "conn-2"}

	// Given a first session that disconnected and a second that logged in
	req.NoError(registry.Register(newSession("alice", first.id, false), first))
	req.True(registry.Unregister("alice", first.id))
	req.NoError(registry.Register(newSession("alice", second.id, false), second))

	// When the first connection's close is processed again
	removed := registry.Unregister("alice", first.id)

	// Then the newer session survives
	req.False(removed)
	found, ok := registry.Lookup("alice")
	req.True(ok)
	req.Equal(second, found)
}

func TestSessionRegistry_Admins(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()

	req.NoError(registry.Register(newSession("admin", "c1", true), fakeTransport{id: "c1"}))
	req.NoError(registry.Register(newSession("bob", "c2", false), fakeTransport{id: "c2"}))

	admins := registry.Admins()
	req.Len(admins, 1)
	req.Equal("admin", admins[0].IdentityID())
	req.Len(registry.Sessions(), 2)
}

func TestSessionRegistry_Concurrent_Logins_Yield_One_Session(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			connID := fmt.Sprintf("conn-%d", i)
			if err := registry.Register(newSession("alice", connID, false), fakeTransport{id: connID}); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	req.Equal(1, accepted)
	req.Equal(1, registry.Len())
}
