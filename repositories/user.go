package repositories

import (
	"chat-relay/domain"
	"chat-relay/errors"
	stderrors "errors"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IUserRepository interface {
	CreateUser(username string, admin bool, peerID string) (domain.Identity, error)
	GetUser(id string) (domain.Identity, error)
	GetUserByUsername(username string) (domain.Identity, error)
	ListUsers() ([]domain.Identity, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser persists a new identity. Usernames are unique, case-insensitively.
func (u *UserRepository) CreateUser(username string, admin bool, peerID string) (domain.Identity, error) {
	identity := domain.Identity{
		ID:       uuid.New().String(),
		Username: username,
		Admin:    admin,
		PeerID:   peerID,
	}
	err := u.db.Update(func(txn *badger.Txn) error {
		index := usernameKey(username)
		if _, err := txn.Get(index); err == nil {
			return errors.ErrUserExists
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := setJSON(txn, userKey(identity.ID), identity); err != nil {
			return err
		}
		return txn.Set(index, []byte(identity.ID))
	})
	if err != nil {
		return domain.Identity{}, err
	}
	return identity, nil
}

func (u *UserRepository) GetUser(id string) (domain.Identity, error) {
	var identity domain.Identity
	err := u.db.View(func(txn *badger.Txn) error {
		var err error
		identity, err = getJSON[domain.Identity](txn, userKey(id), errors.ErrUserNotFound)
		return err
	})
	return identity, err
}

func (u *UserRepository) GetUserByUsername(username string) (domain.Identity, error) {
	var identity domain.Identity
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		identity, err = getJSON[domain.Identity](txn, userKey(string(id)), errors.ErrUserNotFound)
		return err
	})
	return identity, err
}

func (u *UserRepository) ListUsers() ([]domain.Identity, error) {
	var identities []domain.Identity
	err := u.db.View(func(txn *badger.Txn) error {
		var err error
		identities, err = scanJSON[domain.Identity](txn, []byte("user:"))
		return err
	})
	return identities, err
}

func userKey(id string) []byte {
	return []byte("user:" + id)
}

func usernameKey(username string) []byte {
	return []byte("username:" + strings.ToLower(username))
}
