package usecase

// Published to RabbitMQ on checkout, one per created order.
type OrderCreatedMsg struct {
	OrderID    string  `json:"orderId"`
	ShopID     string  `json:"shopId"`
	UserID     string  `json:"userId"`
	TotalPrice float64 `json:"totalPrice"`
}

// Published to RabbitMQ when a conversation's last message changes; the
// relay consumes it and fans it out to connected clients.
type ConversationUpdatedMsg struct {
	ConversationID string `json:"conversationId"`
	LastMessage    string `json:"lastMessage"`
	LastMessageID  string `json:"lastMessageId"`
}

// Sent by the payment pipeline on Kafka.
type PaymentStatusChangedMsg struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"` // e.g. "Succeeded"
}
