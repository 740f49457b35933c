// Package event provides a simple synchronous event dispatcher.
//
// The menu pipeline fires "menu.changed" after every category, product or
// image mutation; listeners invalidate the Redis menu cache and nudge
// WebSocket clients to refetch.
package event

import (
	"sync"
)

// MenuChanged is fired after any category, product or image mutation.
const MenuChanged = "menu.changed"

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
)

// Listen registers a handler for the given event name.
func Listen(event string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[event] = append(handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners.
func Fire(event string, payload interface{}) {
	mu.RLock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}
