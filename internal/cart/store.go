package cart

import "sync"

// Store hands out one Cart per customer session. Each cart is touched by a
// single session only, so the mutex guards the registry map, not the carts
// themselves.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewStore returns an empty session-to-cart registry.
func NewStore() *Store {
	return &Store{carts: map[string]*Cart{}}
}

// Get returns the cart for sessionID, creating it on first use.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	return c
}

// Drop discards the cart for sessionID, if any. Called when a session ends.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Len reports how many session carts are live.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}
