// Package ui draws the client state on a terminal and turns typed lines into
// client actions.
package ui

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"
	"github.com/samber/lo"
)

const (
	clearScreen = "\033[H\033[2J"
	maxAlerts   = 3
)

var _ contract.Renderer = (*Terminal)(nil)

type channelRow struct {
	channel domain.Channel
	local   bool
}

type messageRow struct {
	message   domain.Message
	author    string
	deletable bool
}

// Terminal keeps what is on screen and repaints everything on each change.
type Terminal struct {
	mu       sync.Mutex
	out      io.Writer
	rows     int
	clear    bool
	self     domain.Identity
	roster   []domain.Identity
	channels []channelRow
	selected string
	messages []messageRow
	peers    []domain.Peer
	pairs    []domain.PairRequest
	alerts   []string
}

// NewTerminal paints on out, showing the last rows messages of the selected
// channel. clear wipes the screen before each paint.
func NewTerminal(out io.Writer, rows int, clear bool) *Terminal {
	if rows <= 0 {
		rows = 20
	}
	return &Terminal{out: out, rows: rows, clear: clear}
}

func (t *Terminal) ShowSelf(identity domain.Identity) {
	t.update(func() { t.self = identity })
}

func (t *Terminal) ShowAlert(reason string) {
	t.update(func() {
		t.alerts = append(t.alerts, reason)
		if len(t.alerts) > maxAlerts {
			t.alerts = t.alerts[len(t.alerts)-maxAlerts:]
		}
	})
}

func (t *Terminal) AddRosterEntry(identity domain.Identity) {
	t.update(func() { t.roster = append(t.roster, identity) })
}

func (t *Terminal) RemoveRosterEntry(identityID string) {
	t.update(func() {
		t.roster = lo.Reject(t.roster, func(i domain.Identity, _ int) bool { return i.ID == identityID })
	})
}

func (t *Terminal) AddChannel(channel domain.Channel, local bool) {
	t.update(func() { t.channels = append(t.channels, channelRow{channel: channel, local: local}) })
}

func (t *Terminal) RemoveChannel(channelID string) {
	t.update(func() {
		t.channels = lo.Reject(t.channels, func(r channelRow, _ int) bool { return r.channel.ID == channelID })
	})
}

func (t *Terminal) SelectChannel(channelID string) {
	t.update(func() { t.selected = channelID })
}

func (t *Terminal) ClearMessages() {
	t.update(func() { t.messages = nil })
}

func (t *Terminal) RenderMessage(message domain.Message, author string, deletable bool) {
	t.update(func() {
		t.messages = append(t.messages, messageRow{message: message, author: author, deletable: deletable})
	})
}

func (t *Terminal) RenameAuthor(messageID, author string) {
	t.update(func() {
		for i := range t.messages {
			if t.messages[i].message.ID == messageID {
				t.messages[i].author = author
			}
		}
	})
}

func (t *Terminal) RemoveMessage(messageID string) {
	t.update(func() {
		t.messages = lo.Reject(t.messages, func(r messageRow, _ int) bool { return r.message.ID == messageID })
	})
}

func (t *Terminal) AddPeer(peer domain.Peer) {
	t.update(func() { t.peers = append(t.peers, peer) })
}

func (t *Terminal) ShowPairRequest(request domain.PairRequest) {
	t.update(func() { t.pairs = append(t.pairs, request) })
}

// DismissPairRequest forgets a request once it was answered.
func (t *Terminal) DismissPairRequest(requestID string) {
	t.update(func() {
		t.pairs = lo.Reject(t.pairs, func(r domain.PairRequest, _ int) bool { return r.ID == requestID })
	})
}

func (t *Terminal) update(change func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	change()
	t.paint()
}

func (t *Terminal) paint() {
	var b strings.Builder
	if t.clear {
		b.WriteString(clearScreen)
	}

	header := fmt.Sprintf(" chat-relay | %s ", lo.CoalesceOrEmpty(t.self.Username, "connecting..."))
	if t.self.Admin {
		header += "(admin) "
	}
	b.WriteString(color.New(color.BgBlack, color.FgGreen).Render(header))
	b.WriteString("\n\n")

	b.WriteString(color.Bold.Sprint("Channels"))
	b.WriteString("\n")
	for _, row := range t.channels {
		marker := "  "
		if row.channel.ID == t.selected {
			marker = color.Green.Sprint("> ")
		}
		b.WriteString(marker + "#" + row.channel.Name + t.badges(row) + "\n")
	}

	b.WriteString("\n" + color.Bold.Sprint("Online") + " ")
	b.WriteString(strings.Join(lo.Map(t.roster, func(i domain.Identity, _ int) string { return i.Username }), ", "))
	if len(t.peers) > 0 {
		b.WriteString("\n" + color.Bold.Sprint("Peers") + "  ")
		b.WriteString(strings.Join(lo.Map(t.peers, func(p domain.Peer, _ int) string { return p.Name }), ", "))
	}
	b.WriteString("\n\n")

	if channel, ok := t.channel(t.selected); ok {
		b.WriteString(color.Bold.Sprintf("-- #%s --", channel.Name) + "\n")
		for _, row := range lo.Subset(t.messages, -t.rows, uint(t.rows)) {
			b.WriteString(t.line(row) + "\n")
		}
	} else {
		b.WriteString(color.Gray.Sprint("no channel selected, type /join <name>") + "\n")
	}

	for _, request := range t.pairs {
		b.WriteString(color.Yellow.Sprintf("pair request %s from %s (%s:%d), /accept or /reject it",
			request.ID, request.Name, request.Address, request.Port) + "\n")
	}
	for _, alert := range t.alerts {
		b.WriteString(color.Red.Sprint("! "+alert) + "\n")
	}
	_, _ = io.WriteString(t.out, b.String())
}

func (t *Terminal) badges(row channelRow) string {
	var badges []string
	if row.channel.AdminOnly {
		badges = append(badges, "admin")
	} else if row.channel.Private {
		badges = append(badges, "private")
	}
	if !row.local {
		peer, ok := lo.Find(t.peers, func(p domain.Peer) bool { return p.ID == row.channel.PeerID })
		badges = append(badges, "@"+lo.Ternary(ok, peer.Name, row.channel.PeerID))
	}
	if len(badges) == 0 {
		return ""
	}
	return color.Gray.Sprintf(" [%s]", strings.Join(badges, " "))
}

func (t *Terminal) line(row messageRow) string {
	stamp := color.Gray.Sprint(row.message.Timestamp.Local().Format("15:04"))
	text := fmt.Sprintf("%s %s %s", stamp, color.Cyan.Sprint(row.author), row.message.Content)
	if row.deletable {
		text += color.Gray.Sprintf("  (/del %s)", row.message.ID)
	}
	return text
}

func (t *Terminal) channel(channelID string) (domain.Channel, bool) {
	row, ok := lo.Find(t.channels, func(r channelRow) bool { return r.channel.ID == channelID })
	return row.channel, ok
}
