package relay

import "encoding/json"

// Event vocabulary exchanged with relay clients.
const (
	EvAddUser           = "addUser"
	EvGetUsers          = "getUsers"
	EvSendMessage       = "sendMessage"
	EvGetMessage        = "getMessage"
	EvMessageSeen       = "messageSeen"
	EvUpdateLastMessage = "updateLastMessage"
	EvGetLastMessage    = "getLastMessage"
	EvHistory           = "history"
)

// Frame is the envelope for every relay event, inbound and outbound.
// Payload fields are flattened next to Type on the wire.
type Frame struct {
	Type string `json:"type"`

	// addUser
	UserID string `json:"userId,omitempty"`

	// sendMessage / messageSeen
	SenderID   string   `json:"senderId,omitempty"`
	ReceiverID string   `json:"receiverId,omitempty"`
	Text       string   `json:"text,omitempty"`
	Images     []string `json:"images,omitempty"`
	MessageID  string   `json:"messageId,omitempty"`

	// updateLastMessage / getLastMessage
	LastMessage   string `json:"lastMessage,omitempty"`
	LastMessageID string `json:"lastMessageId,omitempty"`

	// outbound payloads
	Users    []Session      `json:"users,omitempty"`
	Message  *ChatMessage   `json:"message,omitempty"`
	Messages []*ChatMessage `json:"messages,omitempty"`
	Seen     bool           `json:"seen,omitempty"`
}

func encode(f Frame) []byte {
	b, _ := json.Marshal(f)
	return b
}
