package repositories

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newMessage(channelID, sender string, at time.Time) domain.Message {
	return domain.Message{
		ID:        uuid.New().String(),
		Content:   "this message will self destruct in 5 seconds",
		Timestamp: at,
		SenderID:  sender,
		ChannelID: channelID,
	}
}

func Test_Record_Multiple_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())
	at := time.Now().UTC()

	// Given three messages in one channel and one in another
	messages := []domain.Message{
		newMessage("general", "alice", at),
		newMessage("general", "bob", at.Add(1*time.Minute)),
		newMessage("general", "clara", at.Add(2*time.Minute)),
	}
	for _, m := range messages {
		req.NoError(repository.StoreMessage(m))
	}
	req.NoError(repository.StoreMessage(newMessage("random", "dan", at)))

	// When the backlog is read as of now
	fetched, err := repository.GetMessages("general", at.Add(time.Hour), 50)

	// Then only the channel's messages come back, most recent first
	req.NoError(err)
	req.Len(fetched, 3)
	req.Equal(messages[2].ID, fetched[0].ID)
	req.Equal(messages[0].ID, fetched[2].ID)
	req.True(messages[1].Timestamp.Equal(fetched[1].Timestamp))
}

func Test_GetMessages_Limit_And_Before(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())
	at := time.Now().UTC()

	var messages []domain.Message
	for i := 0; i < 5; i++ {
		m := newMessage("general", "alice", at.Add(time.Duration(i)*time.Second))
		messages = append(messages, m)
		req.NoError(repository.StoreMessage(m))
	}

	// When asking for two messages at or before the fourth one
	fetched, err := repository.GetMessages("general", messages[3].Timestamp, 2)

	// Then the fourth (inclusive) and third are returned
	req.NoError(err)
	req.Len(fetched, 2)
	req.Equal(messages[3].ID, fetched[0].ID)
	req.Equal(messages[2].ID, fetched[1].ID)
}

func Test_Get_And_Delete_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())
	message := newMessage("general", "alice", time.Now().UTC())
	req.NoError(repository.StoreMessage(message))

	fetched, err := repository.GetMessage(message.ID)
	req.NoError(err)
	req.Equal(message.Content, fetched.Content)

	deleted, err := repository.DeleteMessage(message.ID)
	req.NoError(err)
	req.Equal(message.ID, deleted.ID)

	_, err = repository.GetMessage(message.ID)
	req.ErrorIs(err, errors.ErrMessageNotFound)
	_, err = repository.DeleteMessage(message.ID)
	req.ErrorIs(err, errors.ErrMessageNotFound)

	backlog, err := repository.GetMessages("general", time.Now().Add(time.Hour), 50)
	req.NoError(err)
	req.Empty(backlog)
}

func Test_Delete_Channel_Messages(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())
	at := time.Now().UTC()

	doomed := newMessage("doomed", "alice", at)
	req.NoError(repository.StoreMessage(doomed))
	req.NoError(repository.StoreMessage(newMessage("doomed", "bob", at.Add(time.Second))))
	kept := newMessage("kept", "alice", at)
	req.NoError(repository.StoreMessage(kept))

	count, err := repository.DeleteChannelMessages("doomed")
	req.NoError(err)
	req.Equal(2, count)

	_, err = repository.GetMessage(doomed.ID)
	req.ErrorIs(err, errors.ErrMessageNotFound)
	_, err = repository.GetMessage(kept.ID)
	req.NoError(err)
}

func Test_MessageHistory_Performance(t *testing.T) {
	if testing.Short() {
		t.Skip("performance test skipped in short mode")
	}
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())
	at := time.Now().UTC()

	// Given 20k messages spread over 100 channels
	totalMessages := 20_000
	start := time.Now()
	for i := 0; i < totalMessages; i++ {
		channelID := fmt.Sprintf("channel-%d", i%100)
		req.NoError(repository.StoreMessage(newMessage(channelID, "user", at.Add(time.Duration(i)*time.Millisecond))))
	}
	t.Logf("seeding %d messages: %v", totalMessages, time.Since(start))

	// When reading the backlog of one channel
	start = time.Now()
	fetched, err := repository.GetMessages("channel-42", at.Add(time.Hour), 50)
	t.Logf("reading backlog: %v", time.Since(start))

	// Then the 50 most recent come back in order
	req.NoError(err)
	req.Len(fetched, 50)
	for i := 1; i < len(fetched); i++ {
		req.True(fetched[i-1].Timestamp.After(fetched[i].Timestamp))
	}
}
