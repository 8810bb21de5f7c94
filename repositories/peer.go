package repositories

import (
	"chat-relay/domain"
	"chat-relay/errors"

	"github.com/dgraph-io/badger/v4"
)

// IPeerRepository keeps the federated peers and the pair requests waiting
// for an admin's answer.
type IPeerRepository interface {
	StorePeer(peer domain.Peer) error
	GetPeer(id string) (domain.Peer, error)
	ListPeers() ([]domain.Peer, error)
	StorePairRequest(request domain.PairRequest) error
	GetPairRequest(id string) (domain.PairRequest, error)
	DeletePairRequest(id string) error
}

type PeerRepository struct {
	db *badger.DB
}

func NewPeerRepository(db *badger.DB) *PeerRepository {
	return &PeerRepository{db: db}
}

func (p *PeerRepository) StorePeer(peer domain.Peer) error {
	return p.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, []byte("peer:"+peer.ID), peer)
	})
}

func (p *PeerRepository) GetPeer(id string) (domain.Peer, error) {
	var peer domain.Peer
	err := p.db.View(func(txn *badger.Txn) error {
		var err error
		peer, err = getJSON[domain.Peer](txn, []byte("peer:"+id), errors.ErrPeerNotFound)
		return err
	})
	return peer, err
}

func (p *PeerRepository) ListPeers() ([]domain.Peer, error) {
	var peers []domain.Peer
	err := p.db.View(func(txn *badger.Txn) error {
		var err error
		peers, err = scanJSON[domain.Peer](txn, []byte("peer:"))
		return err
	})
	return peers, err
}

func (p *PeerRepository) StorePairRequest(request domain.PairRequest) error {
	return p.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, []byte("pair:"+request.ID), request)
	})
}

func (p *PeerRepository) GetPairRequest(id string) (domain.PairRequest, error) {
	var request domain.PairRequest
	err := p.db.View(func(txn *badger.Txn) error {
		var err error
		request, err = getJSON[domain.PairRequest](txn, []byte("pair:"+id), errors.ErrPairNotFound)
		return err
	})
	return request, err
}

func (p *PeerRepository) DeletePairRequest(id string) error {
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte("pair:" + id))
	})
}
