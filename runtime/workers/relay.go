package workers

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

// Relay pushes domain events to the sessions chosen by the routing policy.
//
// Delivery is best-effort and at-most-once: a recipient without a live
// session is skipped, nothing is queued or retried.
type Relay struct {
	log         *slog.Logger
	registry    contract.ISessionRegistry
	domain      contract.IDomainService
	metrics     *observability.Metrics
	callTimeout time.Duration
}

func NewRelay(log *slog.Logger, registry contract.ISessionRegistry,
	domainService contract.IDomainService, metrics *observability.Metrics,
	callTimeout time.Duration) *Relay {
	return &Relay{
		log:         log,
		registry:    registry,
		domain:      domainService,
		metrics:     metrics,
		callTimeout: callTimeout,
	}
}

// Deliver routes a single event.
//
//	message_sent / message_deleted    -> recipients resolved by the domain service
//	user_online / user_offline         -> every session
//	channel_created / channel_deleted  -> every session allowed to see the channel
//	pairing_requested                  -> admin sessions
//	pairing_accepted / peer_online     -> every session, as peer_info
func (r *Relay) Deliver(ctx context.Context, evt event.DomainEvent) {
	r.metrics.EventConsumed(string(evt.EventName()))

	switch e := evt.(type) {
	case event.MessageSent:
		r.emitTo(e.Recipients, event.WireMessageReceived, e.Message)
	case event.MessageDeleted:
		r.emitTo(e.Recipients, event.WireMessageDeleted, e.Message)
	case event.UserOnline:
		r.emitTo(r.everyone(), event.WireUserOnline, e.Identity)
	case event.UserOffline:
		r.emitTo(r.everyone(), event.WireUserOffline, e.Identity)
	case event.ChannelCreated:
		r.emitTo(r.allowedToSee(e.Channel), event.WireChannelCreate, e.Channel)
	case event.ChannelDeleted:
		r.emitTo(r.allowedToSee(e.Channel), event.WireChannelDelete, e.Channel.ID)
	case event.PairingRequested:
		r.emitTo(identityIDs(r.registry.Admins()), event.WirePairRequest, e.Request)
	case event.PairingAccepted:
		callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
		peer, err := r.domain.GetPeer(callCtx, e.PeerID)
		cancel()
		if err != nil {
			r.log.Warn("Unable to resolve accepted peer", "peer_id", e.PeerID, "error", err)
			return
		}
		r.emitTo(r.everyone(), event.WirePeerInfo, peer)
	case event.PeerOnline:
		r.emitTo(r.everyone(), event.WirePeerInfo, e.Peer)
	default:
		r.log.Warn("Unroutable domain event", "event", evt.EventName())
	}
}

func (r *Relay) emitTo(identityIDs []string, name string, payload any) {
	for _, identityID := range identityIDs {
		transport, ok := r.registry.Lookup(identityID)
		if !ok {
			r.log.Debug("Recipient has no live session, skipping", "identity_id", identityID, "event", name)
			r.metrics.Skipped(name)
			continue
		}
		if err := transport.Emit(name, payload); err != nil {
			r.log.Debug("Delivery dropped", "identity_id", identityID, "event", name, "error", err)
			r.metrics.Skipped(name)
			continue
		}
		r.metrics.Delivered(name)
	}
}

func (r *Relay) everyone() []string {
	return identityIDs(r.registry.Sessions())
}

func (r *Relay) allowedToSee(channel domain.Channel) []string {
	return identityIDs(lo.Filter(r.registry.Sessions(), func(s domain.Session, _ int) bool {
		return channel.VisibleTo(s.Identity)
	}))
}

func identityIDs(sessions []domain.Session) []string {
	return lo.Map(sessions, func(s domain.Session, _ int) string {
		return s.IdentityID()
	})
}
