package client

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"log/slog"
)

// ChannelView owns the channel list and the message pane. Backlog and live
// messages go through the same Ingest path; a message is drawn only if its
// channel is the selected one at the time it is ingested.
type ChannelView struct {
	log      *slog.Logger
	renderer contract.Renderer
	out      contract.Outbound
	users    *Resolver[domain.Identity]
	channels *Store[domain.Channel]
	messages *Store[domain.Message]
	self     domain.Identity
	selected string
}

func NewChannelView(log *slog.Logger, renderer contract.Renderer, out contract.Outbound,
	users *Resolver[domain.Identity]) *ChannelView {
	return &ChannelView{
		log:      log,
		renderer: renderer,
		out:      out,
		users:    users,
		channels: NewStore[domain.Channel](),
		messages: NewStore[domain.Message](),
	}
}

func (v *ChannelView) SetSelf(identity domain.Identity) {
	v.self = identity
}

// Selected returns the selected channel id, empty when none is.
func (v *ChannelView) Selected() string {
	return v.selected
}

func (v *ChannelView) Channels() []domain.Channel {
	return v.channels.FindAll(func(domain.Channel) bool { return true })
}

// AddChannel lists a channel once.
func (v *ChannelView) AddChannel(channel domain.Channel, local bool) bool {
	if v.channels.Has(channel.ID) {
		v.channels.Set(channel.ID, channel)
		return false
	}
	v.channels.Set(channel.ID, channel)
	v.renderer.AddChannel(channel, local)
	return true
}

// Select switches the pane to channelID. Cached messages are drawn right
// away; a channel with nothing cached asks the relay for its backlog.
func (v *ChannelView) Select(channelID string) error {
	if !v.channels.Has(channelID) {
		return nil
	}
	v.selected = channelID
	v.renderer.SelectChannel(channelID)
	v.renderer.ClearMessages()

	cached := v.messages.FindAll(func(m domain.Message) bool { return m.ChannelID == channelID })
	if len(cached) == 0 {
		return v.out.Emit(event.WireChannelJoin, domain.JoinChannelCommand{ChannelID: channelID})
	}
	for _, message := range cached {
		v.draw(message)
	}
	return nil
}

// Ingest caches a message seen for the first time and draws it if its
// channel is selected. Duplicates are dropped.
func (v *ChannelView) Ingest(message domain.Message) bool {
	if v.messages.Has(message.ID) {
		return false
	}
	v.messages.Set(message.ID, message)
	if message.ChannelID == v.selected {
		v.draw(message)
	}
	return true
}

// Remove forgets a deleted message and erases it from the pane.
func (v *ChannelView) Remove(message domain.Message) bool {
	if !v.messages.Has(message.ID) {
		return false
	}
	v.messages.Delete(message.ID)
	if message.ChannelID == v.selected {
		v.renderer.RemoveMessage(message.ID)
	}
	return true
}

// ChannelDeleted drops the channel and its cached messages, leaving the pane
// empty when it was selected.
func (v *ChannelView) ChannelDeleted(channelID string) bool {
	if !v.channels.Has(channelID) {
		return false
	}
	v.channels.Delete(channelID)
	v.renderer.RemoveChannel(channelID)
	if v.selected == channelID {
		v.selected = ""
		v.renderer.ClearMessages()
	}
	for _, message := range v.messages.FindAll(func(m domain.Message) bool { return m.ChannelID == channelID }) {
		v.messages.Delete(message.ID)
	}
	return true
}

// draw shows the sender id until the username is known.
func (v *ChannelView) draw(message domain.Message) {
	deletable := v.self.Admin || message.SenderID == v.self.ID
	v.renderer.RenderMessage(message, message.SenderID, deletable)
	v.users.Lookup(message.SenderID, func(identity domain.Identity, err error) {
		if err != nil {
			v.log.Debug("Author left unresolved", "identity_id", message.SenderID, "error", err)
			return
		}
		if v.selected != message.ChannelID || !v.messages.Has(message.ID) {
			return
		}
		v.renderer.RenameAuthor(message.ID, identity.Username)
	})
}
