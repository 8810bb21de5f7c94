package websocket

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrame_Encode_Decode(t *testing.T) {
	req := require.New(t)

	raw, err := Encode("channel_join", domain.JoinChannelCommand{ChannelID: "c1"})
	req.NoError(err)
	req.JSONEq(`{"event":"channel_join","data":{"channel_id":"c1"}}`, string(raw))

	frame, err := Decode(raw)
	req.NoError(err)
	cmd, err := Payload[domain.JoinChannelCommand](frame)
	req.NoError(err)
	req.Equal("c1", cmd.ChannelID)
}

func TestFrame_Without_Payload(t *testing.T) {
	req := require.New(t)

	raw, err := Encode("login_poke", nil)
	req.NoError(err)
	req.JSONEq(`{"event":"login_poke"}`, string(raw))

	frame, err := Decode(raw)
	req.NoError(err)
	_, err = Payload[string](frame)
	req.ErrorIs(err, errors.ErrInvalidPayload)
}

func TestFrame_Malformed(t *testing.T) {
	req := require.New(t)

	_, err := Decode([]byte(`not json`))
	req.ErrorIs(err, errors.ErrInvalidPayload)
	_, err = Decode([]byte(`{"data":"x"}`))
	req.ErrorIs(err, errors.ErrInvalidPayload)

	_, err = Payload[domain.SendMessageCommand](Frame{Event: "msg_send", Data: []byte(`"just a string"`)})
	req.ErrorIs(err, errors.ErrInvalidPayload)
}
