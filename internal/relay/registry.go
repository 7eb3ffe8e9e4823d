package relay

// Session is one live directory entry: a logical user bound to the
// transport-assigned connection identifier.
type Session struct {
	UserID       string `json:"userId"`
	ConnectionID string `json:"connectionId"`
}

// Registry is the relay's session directory. It is owned by the Hub and
// only ever touched from the Hub's event loop, so it needs no locking.
type Registry struct {
	byUser map[string]Session
	order  []string // userIds in connect order, for stable broadcasts
}

func NewRegistry() *Registry {
	return &Registry{byUser: map[string]Session{}}
}

// Add inserts the pair unless an entry for userID already exists. A second
// connect under the same userID before a disconnect is a no-op: the stale
// connection id is kept.
func (r *Registry) Add(userID, connectionID string) bool {
	if userID == "" {
		return false
	}
	if _, ok := r.byUser[userID]; ok {
		return false
	}
	r.byUser[userID] = Session{UserID: userID, ConnectionID: connectionID}
	r.order = append(r.order, userID)
	return true
}

// RemoveByConnection deletes every entry bound to the connection. Idempotent.
func (r *Registry) RemoveByConnection(connectionID string) {
	for userID, s := range r.byUser {
		if s.ConnectionID == connectionID {
			delete(r.byUser, userID)
			for i, id := range r.order {
				if id == userID {
					r.order = append(r.order[:i], r.order[i+1:]...)
					break
				}
			}
		}
	}
}

// Get looks up the directory entry for a user.
func (r *Registry) Get(userID string) (Session, bool) {
	s, ok := r.byUser[userID]
	return s, ok
}

// All returns the directory in connect order.
func (r *Registry) All() []Session {
	out := make([]Session, 0, len(r.order))
	for _, userID := range r.order {
		out = append(out, r.byUser[userID])
	}
	return out
}

func (r *Registry) Len() int { return len(r.byUser) }
