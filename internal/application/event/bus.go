// Package event provides a typed in-process change-event bus. Write
// paths publish events; interested components subscribe and re-run
// their fetch-and-recompute path.
package event

import (
	"sync"

	"github.com/google/uuid"
)

// Type identifies the kind of data change that occurred.
type Type string

const (
	BudgetChanged      Type = "budget_changed"
	TransactionAdded   Type = "transaction_added"
	TransactionDeleted Type = "transaction_deleted"
	EMIChanged         Type = "emi_changed"
)

// Event is a data-change notification scoped to one user.
type Event struct {
	Type   Type
	UserID uuid.UUID
}

// Handler consumes a published event. Handlers must not block.
type Handler func(Event)

// Publisher is the write-side interface exposed to use cases.
type Publisher interface {
	Publish(event Event)
}

// Bus is a simple synchronous fan-out publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for the given event types.
func (b *Bus) Subscribe(handler Handler, types ...Type) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range types {
		b.handlers[t] = append(b.handlers[t], handler)
	}
}

// Publish delivers the event to all handlers registered for its type.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
