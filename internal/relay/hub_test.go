package relay

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
)

// Handlers are exercised directly instead of through Run so the tests stay
// deterministic. Connections are wired by hand with buffered send channels;
// the socket itself is never touched.

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func attach(h *Hub, connectionID string) *Client {
	c := newClient(h, nil, connectionID)
	h.clients[c] = struct{}{}
	h.byConn[connectionID] = c
	return c
}

func drain(t *testing.T, c *Client) []Frame {
	t.Helper()
	var frames []Frame
	for {
		select {
		case data := <-c.send:
			var f Frame
			if err := json.Unmarshal(data, &f); err != nil {
				t.Fatalf("bad frame on %s: %v", c.ConnectionID, err)
			}
			frames = append(frames, f)
		default:
			return frames
		}
	}
}

func lastFrame(t *testing.T, c *Client) Frame {
	t.Helper()
	frames := drain(t, c)
	if len(frames) == 0 {
		t.Fatalf("expected at least one frame on %s", c.ConnectionID)
	}
	return frames[len(frames)-1]
}

func TestHub_AddUser(t *testing.T) {
	t.Parallel()

	t.Run("announce broadcasts the directory to everyone", func(t *testing.T) {
		h := newTestHub()
		c1 := attach(h, "conn-1")
		c2 := attach(h, "conn-2")

		h.handleAddUser(c1, "alice")
		h.handleAddUser(c2, "bob")

		f := lastFrame(t, c2)
		if f.Type != EvGetUsers {
			t.Fatalf("expected %s, got %s", EvGetUsers, f.Type)
		}
		if len(f.Users) != 2 || f.Users[0].UserID != "alice" || f.Users[1].UserID != "bob" {
			t.Fatalf("unexpected directory: %+v", f.Users)
		}
		if got := lastFrame(t, c1); len(got.Users) != 2 {
			t.Fatalf("broadcast must reach every client, got %+v", got.Users)
		}
	})

	t.Run("announce replays buffered history", func(t *testing.T) {
		h := newTestHub()
		h.handleSendMessage("alice", "bob", "offline msg", nil)

		c := attach(h, "conn-1")
		h.handleAddUser(c, "bob")

		last := lastFrame(t, c)
		if last.Type != EvHistory {
			t.Fatalf("expected history frame, got %s", last.Type)
		}
		if len(last.Messages) != 1 || last.Messages[0].Text != "offline msg" {
			t.Fatalf("unexpected history payload: %+v", last.Messages)
		}
	})
}

func TestHub_SendMessage(t *testing.T) {
	t.Parallel()

	t.Run("delivers to a connected receiver", func(t *testing.T) {
		h := newTestHub()
		sender := attach(h, "conn-1")
		receiver := attach(h, "conn-2")
		h.handleAddUser(sender, "alice")
		h.handleAddUser(receiver, "bob")
		drain(t, sender)
		drain(t, receiver)

		h.handleSendMessage("alice", "bob", "hi bob", nil)

		f := lastFrame(t, receiver)
		if f.Type != EvGetMessage {
			t.Fatalf("expected %s, got %s", EvGetMessage, f.Type)
		}
		if f.Message == nil || f.Message.Text != "hi bob" || f.Message.SenderID != "alice" {
			t.Fatalf("unexpected message payload: %+v", f.Message)
		}
		if frames := drain(t, sender); len(frames) != 0 {
			t.Fatalf("sender gets no echo, got %d frames", len(frames))
		}
	})

	t.Run("buffers for an offline receiver", func(t *testing.T) {
		h := newTestHub()
		h.handleSendMessage("alice", "bob", "see you later", nil)

		history := h.store.History("bob")
		if len(history) != 1 || history[0].Text != "see you later" {
			t.Fatalf("expected buffered message, got %+v", history)
		}
	})
}

func TestHub_MessageSeen(t *testing.T) {
	t.Parallel()

	t.Run("notifies the connected sender", func(t *testing.T) {
		h := newTestHub()
		c := attach(h, "conn-1")
		h.handleAddUser(c, "alice")
		drain(t, c)

		msg := h.store.Append("bob", "alice", "hello", nil)

		h.handleMessageSeen("alice", "alice", msg.ID)

		f := lastFrame(t, c)
		if f.Type != EvMessageSeen || !f.Seen || f.MessageID != msg.ID {
			t.Fatalf("unexpected seen notification: %+v", f)
		}
		if !msg.Seen {
			t.Fatal("stored message should be flagged seen")
		}
	})

	t.Run("lookup miss is silent", func(t *testing.T) {
		h := newTestHub()
		c := attach(h, "conn-1")
		h.handleAddUser(c, "alice")
		drain(t, c)

		h.handleMessageSeen("alice", "alice", "no-such-id")

		if frames := drain(t, c); len(frames) != 0 {
			t.Fatalf("expected no frames on miss, got %d", len(frames))
		}
	})
}

func TestHub_BroadcastLastMessage(t *testing.T) {
	t.Parallel()

	h := newTestHub()
	c1 := attach(h, "conn-1")
	c2 := attach(h, "conn-2")
	h.handleAddUser(c1, "alice")
	drain(t, c1)
	drain(t, c2)

	// Fans out to every connection, announced or not.
	h.broadcastLastMessage("latest text", "conv-9")

	for _, c := range []*Client{c1, c2} {
		f := lastFrame(t, c)
		if f.Type != EvGetLastMessage || f.LastMessage != "latest text" || f.LastMessageID != "conv-9" {
			t.Fatalf("%s: unexpected frame %+v", c.ConnectionID, f)
		}
	}
}

func TestHub_Disconnect(t *testing.T) {
	t.Parallel()

	h := newTestHub()
	c1 := attach(h, "conn-1")
	c2 := attach(h, "conn-2")
	h.handleAddUser(c1, "alice")
	h.handleAddUser(c2, "bob")
	drain(t, c1)
	drain(t, c2)

	h.disconnect(c1)

	if _, ok := h.registry.Get("alice"); ok {
		t.Fatal("alice should be deregistered")
	}
	f := lastFrame(t, c2)
	if f.Type != EvGetUsers || len(f.Users) != 1 || f.Users[0].UserID != "bob" {
		t.Fatalf("expected directory rebroadcast with bob only, got %+v", f)
	}

	// Repeat disconnects for the same client are ignored.
	h.disconnect(c1)
}

func TestHub_HandleFrame(t *testing.T) {
	t.Parallel()

	h := newTestHub()
	c := attach(h, "conn-1")

	h.handleFrame(c, []byte("{not json"))
	h.handleFrame(c, []byte(`{"type":"fly"}`))
	if frames := drain(t, c); len(frames) != 0 {
		t.Fatalf("malformed and unknown frames are dropped, got %d", len(frames))
	}

	h.handleFrame(c, []byte(`{"type":"addUser","userId":"alice"}`))
	f := lastFrame(t, c)
	if f.Type != EvGetUsers || len(f.Users) != 1 || f.Users[0].UserID != "alice" {
		t.Fatalf("addUser frame not dispatched: %+v", f)
	}
	if c.UserID != "alice" {
		t.Fatalf("client should learn its user id, got %q", c.UserID)
	}
}
