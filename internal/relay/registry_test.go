package relay

import "testing"

func TestRegistry_Add(t *testing.T) {
	t.Parallel()

	t.Run("first connect wins", func(t *testing.T) {
		r := NewRegistry()
		if !r.Add("u1", "conn-1") {
			t.Fatal("first add should succeed")
		}
		// A reconnect before disconnect keeps the original connection id.
		if r.Add("u1", "conn-2") {
			t.Fatal("second add for the same user should be a no-op")
		}
		s, ok := r.Get("u1")
		if !ok || s.ConnectionID != "conn-1" {
			t.Fatalf("expected conn-1 retained, got %+v ok=%v", s, ok)
		}
		if r.Len() != 1 {
			t.Fatalf("expected one entry, got %d", r.Len())
		}
	})

	t.Run("empty user id is rejected", func(t *testing.T) {
		r := NewRegistry()
		if r.Add("", "conn-1") {
			t.Fatal("empty user id must not register")
		}
		if r.Len() != 0 {
			t.Fatalf("expected empty registry, got %d", r.Len())
		}
	})
}

func TestRegistry_RemoveByConnection(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("u1", "conn-1")
	r.Add("u2", "conn-2")

	r.RemoveByConnection("conn-1")
	if _, ok := r.Get("u1"); ok {
		t.Fatal("u1 should be gone")
	}
	if _, ok := r.Get("u2"); !ok {
		t.Fatal("u2 should survive")
	}

	// Idempotent on repeat and on unknown connections.
	r.RemoveByConnection("conn-1")
	r.RemoveByConnection("never-seen")
	if r.Len() != 1 {
		t.Fatalf("expected one entry, got %d", r.Len())
	}
}

func TestRegistry_AllKeepsConnectOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("u1", "conn-1")
	r.Add("u2", "conn-2")
	r.Add("u3", "conn-3")
	r.RemoveByConnection("conn-2")
	r.Add("u4", "conn-4")

	got := r.All()
	want := []string{"u1", "u3", "u4"}
	if len(got) != len(want) {
		t.Fatalf("expected %d sessions, got %d", len(want), len(got))
	}
	for i, userID := range want {
		if got[i].UserID != userID {
			t.Fatalf("position %d: expected %s, got %s", i, userID, got[i].UserID)
		}
	}
}
