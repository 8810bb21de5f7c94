package client

import (
	"chat-relay/contract"
	"chat-relay/domain"
)

// Presence tracks which identities are online. The roster is only touched
// on real transitions, repeated notifications are no-ops.
type Presence struct {
	renderer contract.Renderer
	online   *Store[domain.Identity]
}

func NewPresence(renderer contract.Renderer) *Presence {
	return &Presence{renderer: renderer, online: NewStore[domain.Identity]()}
}

func (p *Presence) MarkOnline(identity domain.Identity) bool {
	if p.online.Has(identity.ID) {
		return false
	}
	p.online.Set(identity.ID, identity)
	p.renderer.AddRosterEntry(identity)
	return true
}

func (p *Presence) MarkOffline(identity domain.Identity) bool {
	if !p.online.Has(identity.ID) {
		return false
	}
	p.online.Delete(identity.ID)
	p.renderer.RemoveRosterEntry(identity.ID)
	return true
}

func (p *Presence) IsOnline(identityID string) bool {
	return p.online.Has(identityID)
}

// Online lists the online identities in the order they came online.
func (p *Presence) Online() []domain.Identity {
	return p.online.FindAll(func(domain.Identity) bool { return true })
}
