package service

import "sync"

// ActionGuard enforces one in-flight user-triggered action at a time. Both
// generate and checkout share a single guard, so a user cannot have a
// generation and a checkout request running concurrently.
type ActionGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewActionGuard() *ActionGuard {
	return &ActionGuard{
		inFlight: make(map[string]struct{}),
	}
}

// TryAcquire marks an action as in flight for the user. It returns false when
// another action already holds the guard.
func (g *ActionGuard) TryAcquire(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[userID]; busy {
		return false
	}
	g.inFlight[userID] = struct{}{}
	return true
}

// Release clears the in-flight mark for the user.
func (g *ActionGuard) Release(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, userID)
}

// Busy reports whether the user currently has an action in flight.
func (g *ActionGuard) Busy(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inFlight[userID]
	return busy
}
