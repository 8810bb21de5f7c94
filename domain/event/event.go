package event

import (
	"chat-relay/domain"
)

type Name string

const (
	MessageSentName      Name = "message_sent"
	MessageDeletedName   Name = "message_deleted"
	UserOnlineName       Name = "user_online"
	UserOfflineName      Name = "user_offline"
	ChannelCreatedName   Name = "channel_created"
	ChannelDeletedName   Name = "channel_deleted"
	PairingRequestedName Name = "pairing_requested"
	PairingAcceptedName  Name = "pairing_accepted"
	PeerOnlineName       Name = "peer_online"
)

// DomainEvent is anything the domain service emits towards the relay.
type DomainEvent interface {
	EventName() Name
}

// ChannelScoped events must be delivered in emission order relative to the
// other events of the same channel.
type ChannelScoped interface {
	DomainEvent
	ChannelKey() string
}

// MessageSent carries a new message and the identities the domain service
// resolved as its recipients (the channel members).
type MessageSent struct {
	Message    domain.Message
	Recipients []string
}

func (MessageSent) EventName() Name      { return MessageSentName }
func (e MessageSent) ChannelKey() string { return e.Message.ChannelID }

type MessageDeleted struct {
	Message    domain.Message
	Recipients []string
}

func (MessageDeleted) EventName() Name      { return MessageDeletedName }
func (e MessageDeleted) ChannelKey() string { return e.Message.ChannelID }

type UserOnline struct {
	Identity domain.Identity
}

func (UserOnline) EventName() Name { return UserOnlineName }

type UserOffline struct {
	Identity domain.Identity
}

func (UserOffline) EventName() Name { return UserOfflineName }

type ChannelCreated struct {
	Channel domain.Channel
}

func (ChannelCreated) EventName() Name      { return ChannelCreatedName }
func (e ChannelCreated) ChannelKey() string { return e.Channel.ID }

type ChannelDeleted struct {
	Channel domain.Channel
}

func (ChannelDeleted) EventName() Name      { return ChannelDeletedName }
func (e ChannelDeleted) ChannelKey() string { return e.Channel.ID }

type PairingRequested struct {
	Request domain.PairRequest
}

func (PairingRequested) EventName() Name { return PairingRequestedName }

type PairingAccepted struct {
	PeerID string
}

func (PairingAccepted) EventName() Name { return PairingAcceptedName }

type PeerOnline struct {
	Peer domain.Peer
}

func (PeerOnline) EventName() Name { return PeerOnlineName }

// IdentityKey returns the identity an event is about, if any.
// The relay uses it to keep online/offline transitions of one identity ordered.
func IdentityKey(e DomainEvent) (string, bool) {
	switch evt := e.(type) {
	case UserOnline:
		return evt.Identity.ID, true
	case UserOffline:
		return evt.Identity.ID, true
	default:
		return "", false
	}
}
