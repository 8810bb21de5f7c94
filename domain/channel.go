package domain

// Channel is a message stream owned by one peer.
// Channels owned by another peer are read-only on this node.
type Channel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AdminOnly bool   `json:"admin_only"`
	Private   bool   `json:"is_private"`
	PeerID    string `json:"peer_id"`
}

// VisibleTo reports whether the channel may be listed or delivered to identity.
func (c Channel) VisibleTo(identity Identity) bool {
	return !c.AdminOnly || identity.Admin
}

// IsLocal reports whether the channel is owned by the peer localPeerID.
func (c Channel) IsLocal(localPeerID string) bool {
	return c.PeerID == localPeerID
}
