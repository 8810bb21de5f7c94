// Package repositories persists the domain records in BadgerDB.
//
// Values are JSON documents. Keys are namespaced by record type:
//
//	user:{id}                               identity
//	username:{lowercase username}           -> identity id
//	channel:{id}                            channel
//	msg:{channel_id}:{unix_nano%019d}:{id}  message, sorted by time inside a channel
//	msgid:{id}                              -> message key
//	peer:{id}                               federated peer
//	pair:{id}                               pending inbound pair request
package repositories

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Open opens the store at path, routing badger's own logs to log.
func Open(path string, log *slog.Logger) (*badger.DB, error) {
	options := badger.DefaultOptions(path).WithLogger(badgerLogger{log: log})
	if log.Enabled(context.Background(), slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	return db, nil
}

// badgerLogger redirects badger's printf-style logging to slog.
type badgerLogger struct {
	log *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.log.Error(clean(format, args), "component", "badger")
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.log.Warn(clean(format, args), "component", "badger")
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.log.Info(clean(format, args), "component", "badger")
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.log.Debug(clean(format, args), "component", "badger")
}

// clean drops the trailing newline badger adds to every line.
func clean(format string, args []any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}

func getJSON[T any](txn *badger.Txn, key []byte, notFound error) (T, error) {
	var value T
	item, err := txn.Get(key)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return value, notFound
	}
	if err != nil {
		return value, err
	}
	return decodeItem[T](item)
}

func setJSON(txn *badger.Txn, key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return txn.Set(key, data)
}

// scanJSON decodes every value under prefix, in key order.
func scanJSON[T any](txn *badger.Txn, prefix []byte) ([]T, error) {
	var values []T
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		value, err := decodeItem[T](it.Item())
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func decodeItem[T any](item *badger.Item) (T, error) {
	var value T
	err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &value)
	})
	return value, err
}
