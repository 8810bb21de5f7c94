// Package client keeps the local view of a relay session: cached users,
// peers and messages, presence, the selected channel. Everything runs on a
// single event loop fed by relay frames, user actions and resolver sweeps.
package client

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/infrastructure/websocket"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

type Config struct {
	IdentityID     string
	ResolveTimeout time.Duration
	SweepInterval  time.Duration
}

type Client struct {
	log        *slog.Logger
	renderer   contract.Renderer
	out        contract.Outbound
	identityID string
	sweepEvery time.Duration

	users    *Resolver[domain.Identity]
	peers    *Resolver[domain.Peer]
	presence *Presence
	view     *ChannelView

	self      domain.Identity
	loginSent bool
	actions   chan func(*Client)
	done      chan struct{}

	// relay frames received before my_user, replayed once self is known
	held []websocket.Frame
}

func New(log *slog.Logger, renderer contract.Renderer, out contract.Outbound, config Config) *Client {
	c := &Client{
		log:        log,
		renderer:   renderer,
		out:        out,
		identityID: config.IdentityID,
		sweepEvery: config.SweepInterval,
		presence:   NewPresence(renderer),
		actions:    make(chan func(*Client)),
		done:       make(chan struct{}),
	}
	if c.sweepEvery <= 0 {
		c.sweepEvery = time.Second
	}
	c.users = NewResolver(NewStore[domain.Identity](), func(id string) error {
		return out.Emit(event.WireGetUser, id)
	}, config.ResolveTimeout)
	c.peers = NewResolver(NewStore[domain.Peer](), func(id string) error {
		return out.Emit(event.WireGetPeer, id)
	}, config.ResolveTimeout)
	c.view = NewChannelView(log, renderer, out, c.users)
	return c
}

// Run serves the loop until ctx is canceled, inbound is closed or the login
// is refused. Pending lookups are canceled on the way out.
func (c *Client) Run(ctx context.Context, inbound <-chan []byte) error {
	defer close(c.done)
	defer c.cancelLookups()

	ticker := time.NewTicker(c.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case raw, ok := <-inbound:
			if !ok {
				return errors.ErrSessionClosed
			}
			frame, err := websocket.Decode(raw)
			if err != nil {
				c.log.Debug("Malformed frame ignored", "error", err)
				continue
			}
			if err = c.Handle(frame); err != nil {
				return err
			}
		case action := <-c.actions:
			action(c)
		case now := <-ticker.C:
			if expired := c.users.Sweep(now) + c.peers.Sweep(now); expired > 0 {
				c.log.Debug("Lookups expired", "count", expired)
			}
		}
	}
}

// Do runs action on the loop goroutine. It returns false once the loop is gone.
func (c *Client) Do(action func(*Client)) bool {
	select {
	case c.actions <- action:
		return true
	case <-c.done:
		return false
	}
}

// Handle applies one relay frame. Only a refused login is returned as an error.
// The relay may interleave broadcasts with the login snapshot, so frames that
// depend on who we are wait for my_user.
func (c *Client) Handle(frame websocket.Frame) error {
	if c.self.ID == "" && !handshakeEvent(frame.Event) {
		c.held = append(c.held, frame)
		return nil
	}
	switch frame.Event {
	case event.WireLoginPoke:
		if c.loginSent {
			return nil
		}
		c.loginSent = true
		return c.out.Emit(event.WireLogin, c.identityID)

	case event.WireLoginFail:
		reason, _ := websocket.Payload[string](frame)
		c.renderer.ShowAlert("login failed: " + reason)
		return fmt.Errorf("%w: %s", errors.ErrLoginRejected, reason)

	case event.WireMyUser:
		if err := decode(c.log, frame, func(identity domain.Identity) {
			c.self = identity
			c.view.SetSelf(identity)
			c.users.Resolve(identity.ID, identity)
			c.renderer.ShowSelf(identity)
		}); err != nil {
			return err
		}
		return c.replayHeld()

	case event.WireThisServer:
		return decode(c.log, frame, func(peerID string) {
			c.peers.Lookup(peerID, func(_ domain.Peer, err error) {
				if err != nil {
					c.log.Debug("Local peer left unresolved", "peer_id", peerID, "error", err)
				}
			})
		})

	case event.WireUserOnline:
		return decode(c.log, frame, func(identity domain.Identity) {
			c.users.Resolve(identity.ID, identity)
			c.presence.MarkOnline(identity)
		})

	case event.WireUserOffline:
		return decode(c.log, frame, func(identity domain.Identity) {
			c.presence.MarkOffline(identity)
		})

	case event.WireUserInfo:
		return decode(c.log, frame, func(identity domain.Identity) {
			c.users.Answer(identity.ID, identity)
		})

	case event.WirePeerInfo:
		return decode(c.log, frame, func(peer domain.Peer) {
			known := c.peers.store.Has(peer.ID)
			c.peers.Answer(peer.ID, peer)
			if !known {
				c.renderer.AddPeer(peer)
			}
		})

	case event.WireMessageReceived:
		return decode(c.log, frame, func(message domain.Message) {
			c.view.Ingest(message)
		})

	case event.WireMessageDeleted:
		return decode(c.log, frame, func(message domain.Message) {
			c.view.Remove(message)
		})

	case event.WireChannelCreate:
		return decode(c.log, frame, func(channel domain.Channel) {
			c.view.AddChannel(channel, channel.IsLocal(c.self.PeerID))
			if channel.PeerID != "" {
				c.peers.Lookup(channel.PeerID, func(domain.Peer, error) {})
			}
		})

	case event.WireChannelDelete:
		return decode(c.log, frame, func(channelID string) {
			c.view.ChannelDeleted(channelID)
		})

	case event.WirePairRequest:
		return decode(c.log, frame, func(request domain.PairRequest) {
			if c.self.Admin {
				c.renderer.ShowPairRequest(request)
			}
		})

	default:
		command, ok := strings.CutSuffix(frame.Event, "_fail")
		if !ok {
			c.log.Debug("Unknown event ignored", "event", frame.Event)
			return nil
		}
		reason, _ := websocket.Payload[string](frame)
		switch command {
		case event.WireGetUser:
			reject(c.log, c.users, reason)
		case event.WireGetPeer:
			reject(c.log, c.peers, reason)
		default:
			c.renderer.ShowAlert(command + ": " + reason)
		}
		return nil
	}
}

func (c *Client) replayHeld() error {
	held := c.held
	c.held = nil
	for _, frame := range held {
		if err := c.Handle(frame); err != nil {
			return err
		}
	}
	return nil
}

// reject fails the lookup a get_user or get_peer refusal answers. Lookups
// are background work, nothing is shown.
func reject[T any](log *slog.Logger, resolver *Resolver[T], reason string) {
	id, ok := resolver.Reject(fmt.Errorf("%w: %s", errors.ErrResolveRefused, reason))
	if !ok {
		log.Debug("Lookup refusal without request", "reason", reason)
		return
	}
	log.Debug("Lookup refused", "id", id, "reason", reason)
}

func handshakeEvent(name string) bool {
	return name == event.WireLoginPoke || name == event.WireLoginFail || name == event.WireMyUser
}

func (c *Client) Self() domain.Identity { return c.self }
func (c *Client) View() *ChannelView    { return c.view }
func (c *Client) Presence() *Presence   { return c.presence }

func (c *Client) SelectChannel(channelID string) error {
	return c.view.Select(channelID)
}

func (c *Client) SendMessage(content string) error {
	channelID := c.view.Selected()
	if channelID == "" {
		return errors.ErrNoChannel
	}
	return c.out.Emit(event.WireMessageSend, domain.SendMessageCommand{ChannelID: channelID, Content: content})
}

func (c *Client) DeleteMessage(messageID string) error {
	return c.out.Emit(event.WireMessageDeleted, messageID)
}

func (c *Client) CreateChannel(cmd domain.CreateChannelCommand) error {
	if !c.self.Admin {
		return errors.ErrNotAdmin
	}
	return c.out.Emit(event.WireChannelCreate, cmd)
}

func (c *Client) DeleteChannel(channelID string) error {
	if !c.self.Admin {
		return errors.ErrNotAdmin
	}
	return c.out.Emit(event.WireChannelDelete, channelID)
}

func (c *Client) RequestPairing(address string, port int) error {
	if !c.self.Admin {
		return errors.ErrNotAdmin
	}
	return c.out.Emit(event.WireSendPairRequest, domain.PairRequestCommand{Address: address, Port: port})
}

func (c *Client) RespondToPairing(requestID string, accepted bool) error {
	if !c.self.Admin {
		return errors.ErrNotAdmin
	}
	return c.out.Emit(event.WireRespondToPairRequest, domain.PairResponseCommand{ID: requestID, Accepted: accepted})
}

func (c *Client) cancelLookups() {
	c.users.Cancel()
	c.peers.Cancel()
}

// decode applies fn to the frame payload. A malformed payload is skipped,
// it never stops the loop.
func decode[T any](log *slog.Logger, frame websocket.Frame, fn func(T)) error {
	v, err := websocket.Payload[T](frame)
	if err != nil {
		log.Debug("Malformed payload ignored", "event", frame.Event, "error", err)
		return nil
	}
	fn(v)
	return nil
}
