package e2e

import (
	"bytes"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/infrastructure/websocket"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

const (
	expectTimeout = 3 * time.Second
	silenceWindow = 300 * time.Millisecond
)

type BaseRelaySuite struct {
	suite.Suite
	Config  Config
	baseURL string
	stop    func()
	tmpDir  string
}

// SetupSuite loads the environment configuration and starts a relay unless
// one is targeted.
func (s *BaseRelaySuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.RelayURL != "" {
		s.baseURL = strings.TrimSuffix(s.Config.RelayURL, "/")
		return
	}
	s.tmpDir, err = os.MkdirTemp("", "relay-e2e-*")
	s.Require().NoError(err)
	s.baseURL, s.stop, err = startRelay(s.tmpDir)
	s.Require().NoError(err)
}

func (s *BaseRelaySuite) TearDownSuite() {
	if s.stop != nil {
		s.stop()
	}
	if s.tmpDir != "" {
		_ = os.RemoveAll(s.tmpDir)
	}
}

// Account creates a unique identity through the HTTP surface.
func (s *BaseRelaySuite) Account(name string, admin bool) domain.Identity {
	username := fmt.Sprintf("%s-%s", name, uuid.New().String()[:8])
	body, err := json.Marshal(domain.CreateAccountCommand{Username: username, Admin: admin})
	s.Require().NoError(err)

	resp, err := http.Post(s.baseURL+"/api/new_account", "application/json", bytes.NewReader(body))
	s.Require().NoError(err)
	defer resp.Body.Close()
	id, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(id))
	return domain.Identity{ID: string(id), Username: username, Admin: admin}
}

// Connect opens a session for identity and waits for the end of its login
// snapshot.
func (s *BaseRelaySuite) Connect(name string, identity domain.Identity) *Session {
	t := s.T()
	header := fmt.Sprintf("  ====== %s connects ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	url := "ws" + strings.TrimPrefix(s.baseURL, "http") + "/ws"
	ws, _, err := gorilla.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err, "Failed to connect to relay at "+url)

	session := &Session{suite: s, name: name, identity: identity, ws: ws, frames: make(chan websocket.Frame, 256), config: s.Config}
	go session.read()
	t.Cleanup(session.Close)

	session.Expect(event.WireLoginPoke)
	session.Send(event.WireLogin, identity.ID)
	session.Snapshot = session.collectUntil(event.WireThisServer)
	return session
}

// Session is one websocket connection driven by a scenario. Failures are
// reported on the suite's current test so steps can run as subtests.
type Session struct {
	suite    *BaseRelaySuite
	name     string
	identity domain.Identity
	ws       *gorilla.Conn
	frames   chan websocket.Frame
	config   Config
	Snapshot []websocket.Frame
}

func (s *Session) read() {
	defer close(s.frames)
	for {
		_, raw, err := s.ws.ReadMessage()
		if err != nil {
			return
		}
		frame, err := websocket.Decode(raw)
		if err != nil {
			continue
		}
		if s.config.DebugFrames {
			name := frame.Event
			if s.config.Colours {
				name = color.Cyan.Sprint(name)
			}
			fmt.Printf("%s <- %s %s\n", s.name, name, string(frame.Data))
		}
		s.frames <- frame
	}
}

func (s *Session) Send(name string, payload any) {
	raw, err := websocket.Encode(name, payload)
	if err != nil {
		s.suite.T().Fatalf("%s: encoding %s: %v", s.name, name, err)
	}
	if err = s.ws.WriteMessage(gorilla.TextMessage, raw); err != nil {
		s.suite.T().Fatalf("%s: sending %s: %v", s.name, name, err)
	}
}

// Expect skips frames until one named name arrives.
func (s *Session) Expect(name string) websocket.Frame {
	s.suite.T().Helper()
	deadline := time.After(expectTimeout)
	for {
		select {
		case frame, ok := <-s.frames:
			if !ok {
				s.suite.T().Fatalf("%s: connection closed while waiting for %s", s.name, name)
			}
			if frame.Event == name {
				return frame
			}
		case <-deadline:
			s.suite.T().Fatalf("%s: no %s within %s", s.name, name, expectTimeout)
		}
	}
}

// ExpectNone fails if a frame named name matching keep arrives within the
// silence window.
func (s *Session) ExpectNone(name string, keep func(websocket.Frame) bool) {
	s.suite.T().Helper()
	window := time.After(silenceWindow)
	for {
		select {
		case frame, ok := <-s.frames:
			if !ok {
				return
			}
			if frame.Event == name && keep(frame) {
				s.suite.T().Fatalf("%s: unexpected %s %s", s.name, name, string(frame.Data))
			}
		case <-window:
			return
		}
	}
}

func (s *Session) collectUntil(name string) []websocket.Frame {
	s.suite.T().Helper()
	var collected []websocket.Frame
	deadline := time.After(expectTimeout)
	for {
		select {
		case frame, ok := <-s.frames:
			if !ok {
				s.suite.T().Fatalf("%s: connection closed during login", s.name)
			}
			collected = append(collected, frame)
			if frame.Event == name {
				return collected
			}
			if frame.Event == event.WireLoginFail {
				s.suite.T().Fatalf("%s: login refused: %s", s.name, string(frame.Data))
			}
		case <-deadline:
			s.suite.T().Fatalf("%s: no %s within %s", s.name, name, expectTimeout)
		}
	}
}

func (s *Session) Close() {
	_ = s.ws.Close()
}

// Decode reads the payload of frame, failing the test when it is malformed.
func Decode[T any](t *testing.T, frame websocket.Frame) T {
	t.Helper()
	v, err := websocket.Payload[T](frame)
	if err != nil {
		t.Fatalf("decoding %s: %v", frame.Event, err)
	}
	return v
}
