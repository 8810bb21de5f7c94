// Package domain contains the records mirrored between the domain service,
// the relay and the clients. No runtime, network, or UI logic lives here.
package domain

// Identity is a user account as known by the domain service.
// Only the admin flag may change after creation.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	PeerID   string `json:"peer_id"`
}

// Peer is a federated node, the local server included.
type Peer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Port    int    `json:"port"`
}

// PairRequest is an inbound request from a remote node to pair with this one.
type PairRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Port    int    `json:"port"`
}
