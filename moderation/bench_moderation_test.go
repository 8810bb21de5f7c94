package moderation

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// Test_Moderation_Startup measures how long a large dictionary kept in badger
// takes to become a ready moderator.
func Test_Moderation_Startup(t *testing.T) {
	if testing.Short() {
		t.Skip("startup measurement skipped in short mode")
	}
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	wordCount := 20_000

	// Given a dictionary stored as keys only
	startSeed := time.Now()
	wb := db.NewWriteBatch()
	for i := 0; i < wordCount; i++ {
		req.NoError(wb.Set([]byte(fmt.Sprintf("censored:word%d", i)), nil))
	}
	req.NoError(wb.Flush())
	t.Logf("seeding %d words: %v", wordCount, time.Since(startSeed))

	// When it is loaded and compiled
	startLoad := time.Now()
	var words []string
	err = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte("censored:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			words = append(words, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	req.NoError(err)
	req.Len(words, wordCount)

	mod, err := NewModerator(words, '*', log)
	req.NoError(err)
	t.Logf("loading and building automaton: %v", time.Since(startLoad))

	// Then the moderator is usable
	content, found := mod.Censor("say word42 again")
	req.Contains(content, "******")
	req.NotEmpty(found)
}
