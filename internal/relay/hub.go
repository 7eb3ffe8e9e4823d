package relay

import (
	"encoding/json"
	"log/slog"
)

type inbound struct {
	client *Client
	data   []byte
}

// Hub owns the session registry, the message buffer and all connected
// clients. Every mutation flows through Run's single event loop, so
// concurrent connect/disconnect/send events are serialized by processing
// order rather than by locks.
type Hub struct {
	registry *Registry
	store    *MessageStore

	clients map[*Client]struct{}
	byConn  map[string]*Client

	register     chan *Client
	unregister   chan *Client
	events       chan inbound
	lastMessages chan Frame

	log *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		registry:     NewRegistry(),
		store:        NewMessageStore(),
		clients:      map[*Client]struct{}{},
		byConn:       map[string]*Client{},
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		events:       make(chan inbound, 64),
		lastMessages: make(chan Frame, 64),
		log:          log,
	}
}

// Run processes hub events until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.byConn[c.ConnectionID] = c

		case c := <-h.unregister:
			h.disconnect(c)

		case ev := <-h.events:
			h.handleFrame(ev.client, ev.data)

		case f := <-h.lastMessages:
			h.broadcastLastMessage(f.LastMessage, f.LastMessageID)
		}
	}
}

// BroadcastLastMessage enqueues an unconditional fanout of a conversation's
// latest message to every connected client. Called from the RabbitMQ
// consumer goroutine.
func (h *Hub) BroadcastLastMessage(lastMessage, lastMessageID string) {
	h.lastMessages <- Frame{LastMessage: lastMessage, LastMessageID: lastMessageID}
}

func (h *Hub) handleFrame(c *Client, data []byte) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		// Malformed events are dropped.
		h.log.Debug("dropping malformed frame", "conn", c.ConnectionID)
		return
	}

	switch f.Type {
	case EvAddUser:
		h.handleAddUser(c, f.UserID)
	case EvSendMessage:
		h.handleSendMessage(f.SenderID, f.ReceiverID, f.Text, f.Images)
	case EvMessageSeen:
		h.handleMessageSeen(f.SenderID, f.ReceiverID, f.MessageID)
	case EvUpdateLastMessage:
		h.broadcastLastMessage(f.LastMessage, f.LastMessageID)
	default:
		h.log.Debug("dropping unknown event", "type", f.Type)
	}
}

func (h *Hub) handleAddUser(c *Client, userID string) {
	c.UserID = userID
	h.registry.Add(userID, c.ConnectionID)
	h.broadcastUsers()

	// Deliver buffered history to the announcing connection.
	if history := h.store.History(userID); len(history) > 0 {
		c.trySend(encode(Frame{Type: EvHistory, Messages: history}))
	}
}

func (h *Hub) handleSendMessage(senderID, receiverID, text string, images []string) {
	msg := h.store.Append(senderID, receiverID, text, images)

	// Deliver immediately only when the receiver has a live connection;
	// otherwise the message stays buffered until process restart.
	if session, ok := h.registry.Get(receiverID); ok {
		if rc, ok := h.byConn[session.ConnectionID]; ok {
			rc.trySend(encode(Frame{Type: EvGetMessage, Message: msg}))
		}
	}
}

func (h *Hub) handleMessageSeen(senderID, receiverID, messageID string) {
	msg, ok := h.store.MarkSeen(senderID, receiverID, messageID)
	if !ok {
		// Lookup miss silently short-circuits the handler.
		return
	}
	if session, ok := h.registry.Get(senderID); ok {
		if sc, ok := h.byConn[session.ConnectionID]; ok {
			sc.trySend(encode(Frame{
				Type:       EvMessageSeen,
				SenderID:   senderID,
				ReceiverID: receiverID,
				MessageID:  msg.ID,
				Seen:       true,
			}))
		}
	}
}

func (h *Hub) disconnect(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	delete(h.byConn, c.ConnectionID)
	close(c.send)

	h.registry.RemoveByConnection(c.ConnectionID)
	h.broadcastUsers()
}

func (h *Hub) broadcastUsers() {
	h.broadcast(encode(Frame{Type: EvGetUsers, Users: h.registry.All()}))
}

func (h *Hub) broadcastLastMessage(lastMessage, lastMessageID string) {
	h.broadcast(encode(Frame{
		Type:          EvGetLastMessage,
		LastMessage:   lastMessage,
		LastMessageID: lastMessageID,
	}))
}

func (h *Hub) broadcast(data []byte) {
	for c := range h.clients {
		c.trySend(data)
	}
}
