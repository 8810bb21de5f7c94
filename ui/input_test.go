package ui

import (
	"bytes"
	"chat-relay/client"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/infrastructure/websocket"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type outbox struct {
	names    []string
	payloads []any
}

func (o *outbox) Emit(name string, payload any) error {
	o.names = append(o.names, name)
	o.payloads = append(o.payloads, payload)
	return nil
}

func TestParse(t *testing.T) {
	req := require.New(t)

	in, err := Parse("  hello there ")
	req.NoError(err)
	req.Equal(Input{Text: "hello there"}, in)

	in, err = Parse("/CREATE ops admin")
	req.NoError(err)
	req.Equal("create", in.Command)
	req.Equal([]string{"ops", "admin"}, in.Args)

	in, err = Parse("/quit")
	req.NoError(err)
	req.True(in.Quit())

	_, err = Parse("/pair 10.0.0.2")
	req.Error(err)
	_, err = Parse("/dance")
	req.Error(err)
	_, err = Parse("/")
	req.Error(err)
}

func TestApply(t *testing.T) {
	req := require.New(t)
	out := &outbox{}
	term := NewTerminal(&bytes.Buffer{}, 10, false)
	c := client.New(slog.Default(), term, out, client.Config{IdentityID: "root", ResolveTimeout: time.Second})

	handle := func(name string, payload any) {
		raw, err := websocket.Encode(name, payload)
		req.NoError(err)
		frame, err := websocket.Decode(raw)
		req.NoError(err)
		req.NoError(c.Handle(frame))
	}
	handle(event.WireMyUser, domain.Identity{ID: "root", Username: "root", Admin: true})
	handle(event.WireChannelCreate, domain.Channel{ID: "c1", Name: "general"})

	apply := func(line string) error {
		in, err := Parse(line)
		req.NoError(err)
		return Apply(c, term, in)
	}

	// When general is joined by name and a message typed
	req.NoError(apply("/join #general"))
	req.NoError(apply("hi all"))
	req.NoError(apply("/create ops admin private"))
	req.NoError(apply("/pair 10.0.0.2 9000"))
	req.ErrorIs(apply("/pair 10.0.0.2 port"), errors.ErrInvalidPairRequest)
	req.ErrorIs(apply("/join unknown"), errors.ErrChannelNotFound)

	// Then the matching commands went out
	req.Equal([]string{
		event.WireChannelJoin,
		event.WireMessageSend,
		event.WireChannelCreate,
		event.WireSendPairRequest,
	}, out.names)
	req.Equal(domain.SendMessageCommand{ChannelID: "c1", Content: "hi all"}, out.payloads[1])
	req.Equal(domain.CreateChannelCommand{Name: "ops", AdminOnly: true, Private: true}, out.payloads[2])
}
