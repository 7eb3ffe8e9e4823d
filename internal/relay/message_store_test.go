package relay

import "testing"

func TestMessageStore_AppendAndHistory(t *testing.T) {
	t.Parallel()

	s := NewMessageStore()
	m1 := s.Append("alice", "bob", "hi", nil)
	m2 := s.Append("alice", "bob", "", []string{"cat.png"})
	s.Append("bob", "alice", "hello", nil)

	if m1.ID == "" || m1.ID == m2.ID {
		t.Fatalf("expected distinct generated ids, got %q and %q", m1.ID, m2.ID)
	}
	if m1.Seen {
		t.Fatal("new messages start unseen")
	}

	history := s.History("bob")
	if len(history) != 2 {
		t.Fatalf("expected 2 messages for bob, got %d", len(history))
	}
	if history[0].Text != "hi" || history[1].Images[0] != "cat.png" {
		t.Fatal("history must keep append order")
	}
	if len(s.History("nobody")) != 0 {
		t.Fatal("unknown receiver has empty history")
	}
}

func TestMessageStore_MarkSeen(t *testing.T) {
	t.Parallel()

	s := NewMessageStore()

	// The reader reports seen against the sender's buffer, so the flag only
	// flips for messages filed under that bucket.
	m := s.Append("bob", "alice", "hello", nil) // bucket "alice"

	if _, ok := s.MarkSeen("bob", "alice", m.ID); ok {
		t.Fatal("lookup under the sender bucket must miss")
	}
	got, ok := s.MarkSeen("alice", "alice", m.ID)
	if !ok {
		t.Fatal("lookup under the receiver bucket should hit")
	}
	if !got.Seen {
		t.Fatal("seen flag not set")
	}

	if _, ok := s.MarkSeen("alice", "alice", "no-such-id"); ok {
		t.Fatal("unknown message id must miss")
	}
}
