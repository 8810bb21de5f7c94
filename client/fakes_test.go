package client

import (
	"chat-relay/domain"
	"chat-relay/infrastructure/websocket"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// screen records what a terminal would show.
type screen struct {
	self      domain.Identity
	alerts    []string
	roster    []string
	channels  []string
	remote    []string
	selected  string
	rows      []row
	peers     []string
	pairs     []domain.PairRequest
	rendered  int
	clearings int
}

type row struct {
	messageID string
	author    string
	deletable bool
}

func (s *screen) ShowSelf(identity domain.Identity) { s.self = identity }
func (s *screen) ShowAlert(reason string)          { s.alerts = append(s.alerts, reason) }
func (s *screen) AddRosterEntry(identity domain.Identity) {
	s.roster = append(s.roster, identity.ID)
}
func (s *screen) RemoveRosterEntry(identityID string) { s.roster = without(s.roster, identityID) }
func (s *screen) AddChannel(channel domain.Channel, local bool) {
	s.channels = append(s.channels, channel.ID)
	if !local {
		s.remote = append(s.remote, channel.ID)
	}
}
func (s *screen) RemoveChannel(channelID string) { s.channels = without(s.channels, channelID) }
func (s *screen) SelectChannel(channelID string) { s.selected = channelID }
func (s *screen) ClearMessages() {
	s.rows = nil
	s.clearings++
}
func (s *screen) RenderMessage(message domain.Message, author string, deletable bool) {
	s.rendered++
	s.rows = append(s.rows, row{messageID: message.ID, author: author, deletable: deletable})
}
func (s *screen) RenameAuthor(messageID, author string) {
	for i := range s.rows {
		if s.rows[i].messageID == messageID {
			s.rows[i].author = author
		}
	}
}
func (s *screen) RemoveMessage(messageID string) {
	var kept []row
	for _, r := range s.rows {
		if r.messageID != messageID {
			kept = append(kept, r)
		}
	}
	s.rows = kept
}
func (s *screen) AddPeer(peer domain.Peer)                     { s.peers = append(s.peers, peer.ID) }
func (s *screen) ShowPairRequest(request domain.PairRequest) { s.pairs = append(s.pairs, request) }

func (s *screen) messageIDs() []string {
	ids := make([]string, 0, len(s.rows))
	for _, r := range s.rows {
		ids = append(ids, r.messageID)
	}
	return ids
}

func without(ids []string, id string) []string {
	var kept []string
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}

type sent struct {
	name    string
	payload any
}

// outbox records the commands sent to the relay.
type outbox struct {
	frames []sent
	err    error
}

func (o *outbox) Emit(name string, payload any) error {
	if o.err != nil {
		return o.err
	}
	o.frames = append(o.frames, sent{name: name, payload: payload})
	return nil
}

func (o *outbox) named(name string) []sent {
	var found []sent
	for _, f := range o.frames {
		if f.name == name {
			found = append(found, f)
		}
	}
	return found
}

func frame(t *testing.T, name string, payload any) websocket.Frame {
	t.Helper()
	raw, err := websocket.Encode(name, payload)
	require.NoError(t, err)
	f, err := websocket.Decode(raw)
	require.NoError(t, err)
	return f
}

func message(id, channelID, senderID string) domain.Message {
	return domain.Message{ID: id, ChannelID: channelID, SenderID: senderID, Content: fmt.Sprintf("content of %s", id)}
}
