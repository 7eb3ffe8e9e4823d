package domain

import "time"

// Conversation joins a buyer and a seller. GroupTitle is the idempotent
// create key (one conversation per user/shop/product triple on the client).
type Conversation struct {
	ID            string    `bson:"_id" json:"id"`
	GroupTitle    string    `bson:"group_title" json:"groupTitle"`
	Members       []string  `bson:"members" json:"members"`
	LastMessage   string    `bson:"last_message,omitempty" json:"lastMessage,omitempty"`
	LastMessageID string    `bson:"last_message_id,omitempty" json:"lastMessageId,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// Message is the durable chat record owned by the REST API, distinct from
// the relay's in-memory copies.
type Message struct {
	ID             string    `bson:"_id" json:"id"`
	ConversationID string    `bson:"conversation_id" json:"conversationId"`
	Sender         string    `bson:"sender" json:"sender"`
	Text           string    `bson:"text,omitempty" json:"text,omitempty"`
	Images         []string  `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

type WithdrawStatus string

const (
	WithdrawProcessing WithdrawStatus = "Processing"
	WithdrawSucceed    WithdrawStatus = "Succeed"
)

// Withdraw is a seller payout request. Creating one decrements the shop's
// available balance; settlement only flips the status.
type Withdraw struct {
	ID        string         `bson:"_id" json:"id"`
	ShopID    string         `bson:"shop_id" json:"shopId"`
	Amount    float64        `bson:"amount" json:"amount"`
	Status    WithdrawStatus `bson:"status" json:"status"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updatedAt"`
}
