package domain

import "time"

// Message is immutable once sent: it is only ever created or deleted.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	SenderID  string    `json:"user_id"`
	ChannelID string    `json:"channel_id"`
}

// CanBeDeletedBy reports whether identity may delete the message, given the
// identity's admin flag. Ownership of the channel is checked separately.
func (m Message) CanBeDeletedBy(identity Identity) bool {
	return identity.Admin || m.SenderID == identity.ID
}
