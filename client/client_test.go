package client

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/infrastructure/websocket"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestClient() (*Client, *screen, *outbox) {
	s := &screen{}
	out := &outbox{}
	c := New(logs.GetLoggerFromLevel(slog.LevelDebug), s, out, Config{
		IdentityID:     "alice",
		ResolveTimeout: time.Second,
		SweepInterval:  10 * time.Millisecond,
	})
	return c, s, out
}

func identify(t *testing.T, c *Client, identity domain.Identity) {
	t.Helper()
	require.NoError(t, c.Handle(frame(t, event.WireMyUser, identity)))
}

func TestClient_Login_Snapshot(t *testing.T) {
	req := require.New(t)
	c, s, out := newTestClient()
	alice := domain.Identity{ID: "alice", Username: "alice", PeerID: "peer-local"}

	// Given the relay pokes twice
	req.NoError(c.Handle(frame(t, event.WireLoginPoke, nil)))
	req.NoError(c.Handle(frame(t, event.WireLoginPoke, nil)))

	// Then one login is sent
	req.Len(out.named(event.WireLogin), 1)
	req.Equal("alice", out.named(event.WireLogin)[0].payload)

	// When the snapshot arrives
	req.NoError(c.Handle(frame(t, event.WireMyUser, alice)))
	req.NoError(c.Handle(frame(t, event.WireUserOnline, alice)))
	req.NoError(c.Handle(frame(t, event.WireUserOnline, alice)))
	req.NoError(c.Handle(frame(t, event.WireChannelCreate, domain.Channel{ID: "c1", Name: "general", PeerID: "peer-local"})))
	req.NoError(c.Handle(frame(t, event.WireThisServer, "peer-local")))

	// Then the screen shows it and the local peer is fetched once
	req.Equal(alice, s.self)
	req.Equal([]string{"alice"}, s.roster)
	req.Equal([]string{"c1"}, s.channels)
	req.Len(out.named(event.WireGetPeer), 1)

	// When the peer answers
	req.NoError(c.Handle(frame(t, event.WirePeerInfo, domain.Peer{ID: "peer-local", Name: "local"})))
	req.NoError(c.Handle(frame(t, event.WirePeerInfo, domain.Peer{ID: "peer-local", Name: "local"})))
	req.Equal([]string{"peer-local"}, s.peers)
}

func TestClient_Login_Fail_Stops(t *testing.T) {
	req := require.New(t)
	c, s, _ := newTestClient()

	err := c.Handle(frame(t, event.WireLoginFail, errors.ErrLoginRejected.Error()))

	req.ErrorIs(err, errors.ErrLoginRejected)
	req.Len(s.alerts, 1)
}

func TestClient_Presence_And_Failures(t *testing.T) {
	req := require.New(t)
	c, s, _ := newTestClient()
	identify(t, c, domain.Identity{ID: "alice"})
	bob := domain.Identity{ID: "bob", Username: "bob"}

	req.NoError(c.Handle(frame(t, event.WireUserOnline, bob)))
	req.True(c.Presence().IsOnline("bob"))
	req.NoError(c.Handle(frame(t, event.WireUserOffline, bob)))
	req.NoError(c.Handle(frame(t, event.WireUserOffline, bob)))
	req.False(c.Presence().IsOnline("bob"))
	req.Empty(s.roster)

	req.NoError(c.Handle(frame(t, event.FailureOf(event.WireChannelCreate), errors.ErrNotAdmin.Error())))
	req.Equal([]string{"channel_create: " + errors.ErrNotAdmin.Error()}, s.alerts)
}

func TestClient_Pair_Request_Only_For_Admins(t *testing.T) {
	req := require.New(t)
	request := domain.PairRequest{ID: "r1", Name: "remote", Address: "10.0.0.2", Port: 9000}

	c, s, _ := newTestClient()
	req.NoError(c.Handle(frame(t, event.WireMyUser, domain.Identity{ID: "alice"})))
	req.NoError(c.Handle(frame(t, event.WirePairRequest, request)))
	req.Empty(s.pairs)
	req.ErrorIs(c.RespondToPairing("r1", true), errors.ErrNotAdmin)

	admin, adminScreen, out := newTestClient()
	req.NoError(admin.Handle(frame(t, event.WireMyUser, domain.Identity{ID: "root", Admin: true})))
	req.NoError(admin.Handle(frame(t, event.WirePairRequest, request)))
	req.Equal([]domain.PairRequest{request}, adminScreen.pairs)
	req.NoError(admin.RespondToPairing("r1", true))
	req.Equal(domain.PairResponseCommand{ID: "r1", Accepted: true}, out.named(event.WireRespondToPairRequest)[0].payload)
}

func TestClient_Send_Requires_Selection(t *testing.T) {
	req := require.New(t)
	c, _, out := newTestClient()
	identify(t, c, domain.Identity{ID: "alice"})

	req.ErrorIs(c.SendMessage("hello"), errors.ErrNoChannel)

	req.NoError(c.Handle(frame(t, event.WireChannelCreate, domain.Channel{ID: "c1", Name: "general"})))
	req.NoError(c.SelectChannel("c1"))
	req.NoError(c.SendMessage("hello"))

	req.Equal(domain.SendMessageCommand{ChannelID: "c1", Content: "hello"}, out.named(event.WireMessageSend)[0].payload)
}

func TestClient_Run_Sweeps_And_Stops(t *testing.T) {
	req := require.New(t)
	c, _, _ := newTestClient()
	identify(t, c, domain.Identity{ID: "alice"})
	c.users.timeout = time.Millisecond

	inbound := make(chan []byte, 4)
	errs := make(chan error, 1)
	go func() { errs <- c.Run(context.Background(), inbound) }()

	// Given a lookup made on the loop
	failures := make(chan error, 1)
	req.True(c.Do(func(c *Client) {
		c.users.Lookup("ghost", func(_ domain.Identity, err error) { failures <- err })
	}))

	// Then the sweep expires it
	select {
	case err := <-failures:
		req.ErrorIs(err, errors.ErrResolveTimeout)
	case <-time.After(time.Second):
		req.Fail("lookup never expired")
	}

	// When the relay closes the connection
	raw, err := websocket.Encode(event.WireUserOnline, domain.Identity{ID: "bob"})
	req.NoError(err)
	inbound <- raw
	close(inbound)

	// Then the loop ends and rejects further actions
	req.ErrorIs(<-errs, errors.ErrSessionClosed)
	req.False(c.Do(func(*Client) {}))
	req.True(c.Presence().IsOnline("bob"))
}

func TestClient_Broadcasts_Wait_For_My_User(t *testing.T) {
	req := require.New(t)
	c, s, _ := newTestClient()
	alice := domain.Identity{ID: "alice", Username: "alice", PeerID: "peer-local"}
	local := domain.Channel{ID: "c1", Name: "general", PeerID: "peer-local"}
	remote := domain.Channel{ID: "c2", Name: "far", PeerID: "peer-remote"}

	// Given relay broadcasts overtake the snapshot
	req.NoError(c.Handle(frame(t, event.WireChannelCreate, local)))
	req.NoError(c.Handle(frame(t, event.WireChannelCreate, remote)))
	req.NoError(c.Handle(frame(t, event.WireUserOnline, domain.Identity{ID: "bob"})))

	// Then nothing is shown before we know who we are
	req.Empty(s.channels)
	req.Empty(s.roster)

	// When my_user arrives
	identify(t, c, alice)

	// Then the held frames are applied against our own peer
	req.Equal([]string{"c1", "c2"}, s.channels)
	req.Equal([]string{"c2"}, s.remote)
	req.Equal([]string{"bob"}, s.roster)
	req.Empty(c.held)
}

func TestClient_Lookup_Refusal_Fails_Oldest_Request(t *testing.T) {
	req := require.New(t)
	c, s, out := newTestClient()
	identify(t, c, domain.Identity{ID: "alice"})

	// Given two lookups waiting on the relay
	var failed, resolved []string
	c.users.Lookup("ghost", func(_ domain.Identity, err error) {
		req.ErrorIs(err, errors.ErrResolveRefused)
		failed = append(failed, "ghost")
	})
	c.users.Lookup("bob", func(identity domain.Identity, err error) {
		req.NoError(err)
		resolved = append(resolved, identity.Username)
	})
	req.Len(out.named(event.WireGetUser), 2)

	// When the first is refused and the second answered
	req.NoError(c.Handle(frame(t, event.FailureOf(event.WireGetUser), errors.ErrUserNotFound.Error())))
	req.NoError(c.Handle(frame(t, event.WireUserInfo, domain.Identity{ID: "bob", Username: "Bobby"})))

	// Then each waiter gets its own outcome and no alert is raised
	req.Equal([]string{"ghost"}, failed)
	req.Equal([]string{"Bobby"}, resolved)
	req.Zero(c.users.Pending())
	req.Empty(s.alerts)

	// When a peer lookup is refused with nothing asked
	req.NoError(c.Handle(frame(t, event.FailureOf(event.WireGetPeer), errors.ErrPeerNotFound.Error())))

	// Then it is dropped silently
	req.Empty(s.alerts)
}
