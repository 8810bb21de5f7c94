package ui

import (
	"chat-relay/client"
	"chat-relay/domain"
	"chat-relay/errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Input is one typed line: a slash command with its arguments, or a
// plain message for the selected channel.
type Input struct {
	Command string
	Args    []string
	Text    string
}

const Usage = "/join <channel> | /del <message-id> | /create <name> [admin] [private] | " +
	"/drop <channel> | /pair <address> <port> | /accept <id> | /reject <id> | /quit"

var arity = map[string]int{
	"join":   1,
	"del":    1,
	"create": 1,
	"drop":   1,
	"pair":   2,
	"accept": 1,
	"reject": 1,
	"quit":   0,
	"help":   0,
}

// Parse reads a typed line. Empty lines give an empty Input.
func Parse(line string) (Input, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") {
		return Input{Text: line}, nil
	}
	fields := strings.Fields(strings.TrimPrefix(line, "/"))
	if len(fields) == 0 {
		return Input{}, fmt.Errorf("empty command, %s", Usage)
	}
	command, args := strings.ToLower(fields[0]), fields[1:]
	need, ok := arity[command]
	if !ok {
		return Input{}, fmt.Errorf("unknown command /%s, %s", command, Usage)
	}
	if len(args) < need {
		return Input{}, fmt.Errorf("/%s needs %d argument(s), %s", command, need, Usage)
	}
	return Input{Command: command, Args: args}, nil
}

// Quit reports whether the input asks to leave.
func (in Input) Quit() bool {
	return in.Command == "quit"
}

// Apply runs the input against the client. It must run on the client loop.
func Apply(c *client.Client, t *Terminal, in Input) error {
	switch in.Command {
	case "":
		if in.Text == "" {
			return nil
		}
		return c.SendMessage(in.Text)
	case "join":
		channel, err := channelNamed(c, in.Args[0])
		if err != nil {
			return err
		}
		return c.SelectChannel(channel.ID)
	case "del":
		return c.DeleteMessage(in.Args[0])
	case "create":
		flags := in.Args[1:]
		return c.CreateChannel(domain.CreateChannelCommand{
			Name:      in.Args[0],
			AdminOnly: lo.Contains(flags, "admin"),
			Private:   lo.Contains(flags, "private"),
		})
	case "drop":
		channel, err := channelNamed(c, in.Args[0])
		if err != nil {
			return err
		}
		return c.DeleteChannel(channel.ID)
	case "pair":
		port, err := strconv.Atoi(in.Args[1])
		if err != nil {
			return fmt.Errorf("%w: port %q", errors.ErrInvalidPairRequest, in.Args[1])
		}
		return c.RequestPairing(in.Args[0], port)
	case "accept", "reject":
		if err := c.RespondToPairing(in.Args[0], in.Command == "accept"); err != nil {
			return err
		}
		t.DismissPairRequest(in.Args[0])
		return nil
	case "help":
		t.ShowAlert(Usage)
		return nil
	default:
		return nil
	}
}

func channelNamed(c *client.Client, name string) (domain.Channel, error) {
	name = strings.TrimPrefix(name, "#")
	channel, ok := lo.Find(c.View().Channels(), func(ch domain.Channel) bool {
		return ch.Name == name || ch.ID == name
	})
	if !ok {
		return domain.Channel{}, errors.ErrChannelNotFound
	}
	return channel, nil
}
