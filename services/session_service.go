package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/observability"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
)

// Handshake is the login state of one connection: it is claimed at most once
// and holds the session once the claim succeeded.
type Handshake struct {
	transport contract.Transport
	claimed   atomic.Bool

	mu      sync.RWMutex
	session *domain.Session
}

// Session returns the bound session, if the login succeeded.
func (h *Handshake) Session() (domain.Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.session == nil {
		return domain.Session{}, false
	}
	return *h.session, true
}

func (h *Handshake) Transport() contract.Transport {
	return h.transport
}

func (h *Handshake) bind(session domain.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = &session
}

func (h *Handshake) release() (domain.Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.session == nil {
		return domain.Session{}, false
	}
	session := *h.session
	h.session = nil
	return session, true
}

// SessionService runs the login handshake and the close path of connections.
type SessionService struct {
	log           *slog.Logger
	domain        contract.IDomainService
	registry      contract.ISessionRegistry
	metrics       *observability.Metrics
	logoutTimeout time.Duration
	logouts       sync.WaitGroup
}

func NewSessionService(log *slog.Logger, domainService contract.IDomainService,
	registry contract.ISessionRegistry, metrics *observability.Metrics,
	logoutTimeout time.Duration) *SessionService {
	return &SessionService{
		log:           log,
		domain:        domainService,
		registry:      registry,
		metrics:       metrics,
		logoutTimeout: logoutTimeout,
	}
}

// Open prompts a new connection for its identity claim.
func (s *SessionService) Open(transport contract.Transport) *Handshake {
	h := &Handshake{transport: transport}
	if err := transport.Emit(event.WireLoginPoke, nil); err != nil {
		s.log.Debug("Unable to prompt for login", "conn_id", transport.ID(), "error", err)
	}
	return h
}

// Login handles the identity claim of a connection. Only the first claim is
// processed; a failed claim is answered with login_fail and never retried.
func (s *SessionService) Login(ctx context.Context, h *Handshake, identityID string) error {
	connID := h.transport.ID()
	if !h.claimed.CompareAndSwap(false, true) {
		s.log.Debug("Identity claim ignored, already claimed", "conn_id", connID, "identity_id", identityID)
		return nil
	}

	ok, err := s.domain.LoginUser(ctx, identityID)
	if err != nil || !ok {
		s.log.Info("Login refused", "conn_id", connID, "identity_id", identityID, "error", err)
		return s.fail(h, errors.ErrLoginRejected)
	}

	identity, err := s.domain.GetUser(ctx, identityID)
	if err != nil {
		s.log.Warn("Unable to fetch logged-in identity", "identity_id", identityID, "error", err)
		s.logoutAsync(identityID)
		return s.fail(h, fmt.Errorf("%w: %w", errors.ErrLoginRejected, err))
	}

	session := domain.Session{Identity: identity, ConnID: connID, LoggedInAt: time.Now().UTC()}
	if err = s.registry.Register(session, h.transport); err != nil {
		// The identity is still bound to another live connection which stays authoritative.
		s.log.Info("Second login rejected", "conn_id", connID, "identity_id", identityID)
		return s.fail(h, err)
	}
	h.bind(session)
	s.metrics.SessionOpened()
	s.log.Info("Session opened", "conn_id", connID, "identity_id", identityID, "admin", identity.Admin)

	s.pushSnapshot(ctx, session, h.transport)
	return nil
}

// pushSnapshot sends to this session only: its identity, the online roster,
// the visible channels, then this server's peer id.
func (s *SessionService) pushSnapshot(ctx context.Context, session domain.Session, transport contract.Transport) {
	emit := func(name string, payload any) {
		if err := transport.Emit(name, payload); err != nil {
			s.log.Debug("Snapshot frame dropped", "conn_id", session.ConnID, "event", name, "error", err)
		}
	}

	emit(event.WireMyUser, session.Identity)

	online, err := s.domain.GetAllOnlineLocalUsers(ctx)
	if err != nil {
		s.log.Warn("Unable to list online users", "identity_id", session.IdentityID(), "error", err)
	}
	for _, identity := range online {
		emit(event.WireUserOnline, identity)
	}

	channels, err := s.domain.GetAllChannels(ctx)
	if err != nil {
		s.log.Warn("Unable to list channels", "identity_id", session.IdentityID(), "error", err)
	}
	visible := lo.Filter(channels, func(c domain.Channel, _ int) bool {
		return c.VisibleTo(session.Identity)
	})
	for _, channel := range visible {
		emit(event.WireChannelCreate, channel)
	}

	emit(event.WireThisServer, s.domain.ID())
}

// Close unregisters the connection's session and notifies the domain service
// in the background. It never blocks on the domain service.
func (s *SessionService) Close(h *Handshake) {
	session, ok := h.release()
	if !ok {
		return
	}
	// Counted before the binding disappears so Wait covers this logout.
	s.logouts.Add(1)
	if s.registry.Unregister(session.IdentityID(), session.ConnID) {
		s.metrics.SessionClosed()
	}
	s.log.Info("Session closed", "conn_id", session.ConnID, "identity_id", session.IdentityID())
	go s.logout(session.IdentityID())
}

func (s *SessionService) logoutAsync(identityID string) {
	s.logouts.Add(1)
	go s.logout(identityID)
}

func (s *SessionService) logout(identityID string) {
	defer s.logouts.Done()
	ctx, cancel := context.WithTimeout(context.Background(), s.logoutTimeout)
	defer cancel()
	if err := s.domain.LogoutUser(ctx, identityID); err != nil {
		s.log.Warn("Logout notification failed", "identity_id", identityID, "error", err)
	}
}

// Wait blocks until the background logouts are done.
func (s *SessionService) Wait() {
	s.logouts.Wait()
}

func (s *SessionService) fail(h *Handshake, err error) error {
	if emitErr := h.transport.Emit(event.WireLoginFail, errors.Reason(err)); emitErr != nil {
		s.log.Debug("Unable to notify login failure", "conn_id", h.transport.ID(), "error", emitErr)
	}
	return err
}
