package repositories

import (
	"chat-relay/domain"
	"chat-relay/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetMessage(id string) (domain.Message, error)
	DeleteMessage(id string) (domain.Message, error)
	GetMessages(channelID string, before time.Time, limit int) ([]domain.Message, error)
	DeleteChannelMessages(channelID string) (int, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log}
}

// StoreMessage persists a message under "msg:{channel_id}:{timestamp_padded}:{id}":
//  1. the 19-digit zero padding keeps lexicographical order chronological,
//  2. the id breaks ties between messages of the same nanosecond.
//
// A "msgid:{id}" entry points back to that key.
func (m *MessageRepository) StoreMessage(message domain.Message) error {
	key := messageKey(message)
	return m.db.Update(func(txn *badger.Txn) error {
		if err := setJSON(txn, key, message); err != nil {
			return err
		}
		return txn.Set(messageIndexKey(message.ID), key)
	})
}

func (m *MessageRepository) GetMessage(id string) (domain.Message, error) {
	var message domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		key, err := m.lookupKey(txn, id)
		if err != nil {
			return err
		}
		message, err = getJSON[domain.Message](txn, key, errors.ErrMessageNotFound)
		return err
	})
	return message, err
}

// DeleteMessage removes the message and returns what was deleted.
func (m *MessageRepository) DeleteMessage(id string) (domain.Message, error) {
	var message domain.Message
	err := m.db.Update(func(txn *badger.Txn) error {
		key, err := m.lookupKey(txn, id)
		if err != nil {
			return err
		}
		message, err = getJSON[domain.Message](txn, key, errors.ErrMessageNotFound)
		if err != nil {
			return err
		}
		if err = txn.Delete(key); err != nil {
			return err
		}
		return txn.Delete(messageIndexKey(id))
	})
	return message, err
}

// GetMessages returns at most limit messages of the channel sent at or before
// the given time, most recent first. Thanks to the padded timestamp in the
// key, a reverse prefix scan yields them already sorted.
func (m *MessageRepository) GetMessages(channelID string, before time.Time, limit int) ([]domain.Message, error) {
	var messages []domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", channelID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// 0xFF sorts after any id, so messages stamped exactly at before are kept
		seekKey := append([]byte(fmt.Sprintf("msg:%s:%019d:", channelID, before.UnixNano())), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(messages) == limit {
				m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", limit), "channel_id", channelID)
				break
			}
			message, err := decodeItem[domain.Message](it.Item())
			if err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	return messages, err
}

// DeleteChannelMessages purges every message of a channel, index included.
func (m *MessageRepository) DeleteChannelMessages(channelID string) (int, error) {
	var keys [][]byte
	var ids []string
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", channelID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			message, err := decodeItem[domain.Message](it.Item())
			if err != nil {
				return err
			}
			keys = append(keys, it.Item().KeyCopy(nil))
			ids = append(ids, message.ID)
		}
		return nil
	})
	if err != nil || len(keys) == 0 {
		return 0, err
	}

	wb := m.db.NewWriteBatch()
	defer wb.Cancel()
	for i, key := range keys {
		if err = wb.Delete(key); err != nil {
			return 0, err
		}
		if err = wb.Delete(messageIndexKey(ids[i])); err != nil {
			return 0, err
		}
	}
	if err = wb.Flush(); err != nil {
		return 0, err
	}
	return len(keys), nil
}

func (m *MessageRepository) lookupKey(txn *badger.Txn, id string) ([]byte, error) {
	item, err := txn.Get(messageIndexKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func messageKey(message domain.Message) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s",
		message.ChannelID,
		message.Timestamp.UnixNano(),
		message.ID,
	))
}

func messageIndexKey(id string) []byte {
	return []byte("msgid:" + id)
}
