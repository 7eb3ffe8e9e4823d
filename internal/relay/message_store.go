package relay

import "github.com/google/uuid"

// ChatMessage lives only in relay memory; the durable copy is owned by the
// REST API. It does not survive a restart.
type ChatMessage struct {
	ID         string   `json:"id"`
	SenderID   string   `json:"senderId"`
	ReceiverID string   `json:"receiverId"`
	Text       string   `json:"text,omitempty"`
	Images     []string `json:"images,omitempty"`
	Seen       bool     `json:"seen"`
}

// MessageStore buffers relay messages per receiver. Like the Registry it is
// only touched from the Hub's event loop.
type MessageStore struct {
	byReceiver map[string][]*ChatMessage
}

func NewMessageStore() *MessageStore {
	return &MessageStore{byReceiver: map[string][]*ChatMessage{}}
}

// Append builds a message record and buffers it under the receiver.
func (s *MessageStore) Append(senderID, receiverID, text string, images []string) *ChatMessage {
	m := &ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Images:     images,
	}
	s.byReceiver[receiverID] = append(s.byReceiver[receiverID], m)
	return m
}

// MarkSeen locates the buffered message under the senderID bucket by
// receiver+id and flips its seen flag. The bucket choice mirrors the seen
// event's lookup convention: the reader reports against the original
// sender's buffer.
func (s *MessageStore) MarkSeen(senderID, receiverID, messageID string) (*ChatMessage, bool) {
	for _, m := range s.byReceiver[senderID] {
		if m.ReceiverID == receiverID && m.ID == messageID {
			m.Seen = true
			return m, true
		}
	}
	return nil, false
}

// History returns the buffered messages addressed to a user.
func (s *MessageStore) History(receiverID string) []*ChatMessage {
	return s.byReceiver[receiverID]
}
