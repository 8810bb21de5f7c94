package repositories

import (
	"chat-relay/domain"
	"chat-relay/errors"
	stderrors "errors"

	"github.com/dgraph-io/badger/v4"
)

type IChannelRepository interface {
	StoreChannel(channel domain.Channel) error
	GetChannel(id string) (domain.Channel, error)
	DeleteChannel(id string) (bool, error)
	ListChannels() ([]domain.Channel, error)
}

type ChannelRepository struct {
	db *badger.DB
}

func NewChannelRepository(db *badger.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

func (c *ChannelRepository) StoreChannel(channel domain.Channel) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, channelKey(channel.ID), channel)
	})
}

func (c *ChannelRepository) GetChannel(id string) (domain.Channel, error) {
	var channel domain.Channel
	err := c.db.View(func(txn *badger.Txn) error {
		var err error
		channel, err = getJSON[domain.Channel](txn, channelKey(id), errors.ErrChannelNotFound)
		return err
	})
	return channel, err
}

// DeleteChannel reports false when the channel did not exist.
func (c *ChannelRepository) DeleteChannel(id string) (bool, error) {
	deleted := false
	err := c.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(channelKey(id)); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		deleted = true
		return txn.Delete(channelKey(id))
	})
	return deleted, err
}

// ListChannels returns every channel, ordered by id.
func (c *ChannelRepository) ListChannels() ([]domain.Channel, error) {
	var channels []domain.Channel
	err := c.db.View(func(txn *badger.Txn) error {
		var err error
		channels, err = scanJSON[domain.Channel](txn, []byte("channel:"))
		return err
	})
	return channels, err
}

func channelKey(id string) []byte {
	return []byte("channel:" + id)
}
