// Package gateway validates, authorizes and forwards client commands to the
// domain service. No domain call is made for a command that fails either check.
package gateway

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/moderation"
	"chat-relay/observability"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

var _ contract.IGateway = (*Gateway)(nil)

type Gateway struct {
	log       *slog.Logger
	domain    contract.IDomainService
	moderator moderation.Moderator
	metrics   *observability.Metrics
}

func NewGateway(log *slog.Logger, domainService contract.IDomainService,
	moderator moderation.Moderator, metrics *observability.Metrics) *Gateway {
	return &Gateway{log: log, domain: domainService, moderator: moderator, metrics: metrics}
}

func (g *Gateway) SendMessage(ctx context.Context, session domain.Session, cmd domain.SendMessageCommand) (err error) {
	defer g.record(event.WireMessageSend, session, &err)

	if err = Validate(cmd); err != nil {
		return err
	}
	channel, err := g.visibleChannel(ctx, session, cmd.ChannelID)
	if err != nil {
		return err
	}
	content, words := g.moderator.Censor(cmd.Content)
	if len(words) > 0 {
		g.log.Info("Message censored", "identity_id", session.IdentityID(), "channel_id", channel.ID, "words", len(words))
	}
	_, err = g.domain.SendMessage(ctx, session.IdentityID(), channel.ID, content)
	return err
}

// DeleteMessage re-reads the message, its channel and the requester from the
// domain service instead of trusting the session: the cached admin flag may
// be stale. Messages of channels owned by another peer are never deleted here.
func (g *Gateway) DeleteMessage(ctx context.Context, session domain.Session, messageID string) (err error) {
	defer g.record(event.WireMessageDeleted, session, &err)

	if messageID == "" {
		return errors.ErrInvalidPayload
	}
	message, err := g.domain.GetMessage(ctx, messageID)
	if err != nil {
		return err
	}
	channel, err := g.domain.GetChannel(ctx, message.ChannelID)
	if err != nil {
		return err
	}
	if !channel.IsLocal(g.domain.ID()) {
		return errors.ErrRemoteChannel
	}
	requester, err := g.domain.GetUser(ctx, session.IdentityID())
	if err != nil {
		return err
	}
	if !message.CanBeDeletedBy(requester) {
		return errors.ErrNotAllowed
	}
	return g.domain.DeleteMessage(ctx, messageID)
}

// JoinChannel returns the channel backlog, oldest first.
func (g *Gateway) JoinChannel(ctx context.Context, session domain.Session, cmd domain.JoinChannelCommand) (messages []domain.Message, err error) {
	defer g.record(event.WireChannelJoin, session, &err)

	if err = Validate(cmd); err != nil {
		return nil, err
	}
	channel, err := g.visibleChannel(ctx, session, cmd.ChannelID)
	if err != nil {
		return nil, err
	}
	messages, err = g.domain.GetMessages(ctx, channel.ID, time.Now())
	if err != nil {
		return nil, err
	}
	return lo.Reverse(messages), nil
}

func (g *Gateway) GetUser(ctx context.Context, session domain.Session, id string) (identity domain.Identity, err error) {
	defer g.record(event.WireGetUser, session, &err)

	if id == "" {
		return domain.Identity{}, errors.ErrInvalidPayload
	}
	return g.domain.GetUser(ctx, id)
}

func (g *Gateway) GetPeer(ctx context.Context, session domain.Session, id string) (peer domain.Peer, err error) {
	defer g.record(event.WireGetPeer, session, &err)

	if id == "" {
		return domain.Peer{}, errors.ErrInvalidPayload
	}
	return g.domain.GetPeer(ctx, id)
}

func (g *Gateway) CreateChannel(ctx context.Context, session domain.Session, cmd domain.CreateChannelCommand) (id string, err error) {
	defer g.record(event.WireChannelCreate, session, &err)

	if err = requireAdmin(session); err != nil {
		return "", err
	}
	if err = Validate(cmd); err != nil {
		return "", err
	}
	return g.domain.CreateChannel(ctx, cmd.Name, cmd.AdminOnly, cmd.Private)
}

func (g *Gateway) DeleteChannel(ctx context.Context, session domain.Session, channelID string) (err error) {
	defer g.record(event.WireChannelDelete, session, &err)

	if err = requireAdmin(session); err != nil {
		return err
	}
	if channelID == "" {
		return errors.ErrInvalidPayload
	}
	channel, err := g.domain.GetChannel(ctx, channelID)
	if err != nil {
		return err
	}
	if !channel.IsLocal(g.domain.ID()) {
		return errors.ErrRemoteChannel
	}
	deleted, err := g.domain.DeleteChannel(ctx, channelID)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.ErrChannelNotFound
	}
	return nil
}

func (g *Gateway) SendPairRequest(ctx context.Context, session domain.Session, cmd domain.PairRequestCommand) (err error) {
	defer g.record(event.WireSendPairRequest, session, &err)

	if err = requireAdmin(session); err != nil {
		return err
	}
	if err = Validate(cmd); err != nil {
		return err
	}
	return g.domain.SendPairRequest(ctx, cmd.Address, cmd.Port)
}

func (g *Gateway) RespondToPairRequest(ctx context.Context, session domain.Session, cmd domain.PairResponseCommand) (err error) {
	defer g.record(event.WireRespondToPairRequest, session, &err)

	if err = requireAdmin(session); err != nil {
		return err
	}
	if err = Validate(cmd); err != nil {
		return err
	}
	return g.domain.RespondToPairRequest(ctx, cmd.ID, cmd.Accepted)
}

// CreateAccount serves the HTTP surface, there is no session behind it.
func (g *Gateway) CreateAccount(ctx context.Context, cmd domain.CreateAccountCommand) (id string, err error) {
	defer g.record("new_account", domain.Session{}, &err)

	if err = Validate(cmd); err != nil {
		return "", err
	}
	return g.domain.CreateUser(ctx, cmd.Username, cmd.Admin)
}

func (g *Gateway) visibleChannel(ctx context.Context, session domain.Session, channelID string) (domain.Channel, error) {
	channel, err := g.domain.GetChannel(ctx, channelID)
	if err != nil {
		return domain.Channel{}, err
	}
	if !channel.VisibleTo(session.Identity) {
		// Same answer as a missing channel, admin-only channels stay hidden.
		return domain.Channel{}, errors.ErrChannelNotFound
	}
	return channel, nil
}

func requireAdmin(session domain.Session) error {
	if !session.IsAdmin() {
		return errors.ErrNotAdmin
	}
	return nil
}

func (g *Gateway) record(command string, session domain.Session, err *error) {
	g.metrics.Command(command, *err)
	if *err == nil {
		return
	}
	*err = fmt.Errorf("%s: %w", command, *err)
	g.log.Debug("Command rejected", "command", command, "identity_id", session.IdentityID(), "error", *err)
}
