package event

import "context"

// Observer handles game events. Implementations own their failure
// handling; a misbehaving observer must never fail the operation that
// produced the event.
type Observer interface {
	Handle(ctx context.Context, e Event)
}

// Manager fans events out to registered observers, in registration
// order, on the caller's goroutine.
type Manager struct {
	observers []Observer
}

func NewManager(observers ...Observer) *Manager {
	return &Manager{observers: observers}
}

// Register adds an observer. Not safe for use concurrently with Notify;
// registration happens during startup wiring.
func (m *Manager) Register(o Observer) {
	m.observers = append(m.observers, o)
}

// Notify delivers the event to every observer.
func (m *Manager) Notify(ctx context.Context, e Event) {
	for _, o := range m.observers {
		o.Handle(ctx, e)
	}
}
