package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"fmt"
	"sync"

	"github.com/samber/lo"
)

var _ contract.ISessionRegistry = (*SessionRegistry)(nil)

type binding struct {
	session   domain.Session
	transport contract.Transport
}

// SessionRegistry owns the identity -> transport bindings.
//
// Register and Unregister are serialized under the write lock, so a
// disconnect can never interleave with a login of the same identity.
// At most one live session exists per identity: a second login is rejected
// while the first connection is still bound.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]binding // identity id -> binding
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]binding)}
}

// Register binds the session's identity to transport.
// Re-registering the same connection is a no-op.
func (r *SessionRegistry) Register(session domain.Session, transport contract.Transport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	identityID := session.IdentityID()
	if current, ok := r.sessions[identityID]; ok {
		if current.session.ConnID == session.ConnID {
			return nil
		}
		return fmt.Errorf("%w: %s", errors.ErrAlreadyLoggedIn, identityID)
	}
	r.sessions[identityID] = binding{session: session, transport: transport}
	return nil
}

// Unregister removes the binding of identityID only if it still belongs to
// connID. It reports whether a binding was removed.
func (r *SessionRegistry) Unregister(identityID, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions[identityID]
	if !ok || current.session.ConnID != connID {
		return false
	}
	delete(r.sessions, identityID)
	return true
}

func (r *SessionRegistry) Lookup(identityID string) (contract.Transport, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.sessions[identityID]
	if !ok {
		return nil, false
	}
	return b.transport, true
}

func (r *SessionRegistry) Session(identityID string) (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.sessions[identityID]
	return b.session, ok
}

// Sessions returns a snapshot of every live session.
func (r *SessionRegistry) Sessions() []domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.MapToSlice(r.sessions, func(_ string, b binding) domain.Session {
		return b.session
	})
}

// Admins returns a snapshot of the live sessions whose identity is admin.
func (r *SessionRegistry) Admins() []domain.Session {
	return lo.Filter(r.Sessions(), func(s domain.Session, _ int) bool {
		return s.IsAdmin()
	})
}

func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
