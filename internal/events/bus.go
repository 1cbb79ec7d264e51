package events

import (
	"fmt"
	"sort"
	"sync"

	"github.com/KirkDiggler/talent-traits/internal/logger"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// ListenerFunc adapts a function into an EventListener
type ListenerFunc struct {
	Key   string
	Order int
	Fn    func(Event) error
}

func (l *ListenerFunc) ID() string                    { return l.Key }
func (l *ListenerFunc) Priority() int                 { return l.Order }
func (l *ListenerFunc) HandleEvent(event Event) error { return l.Fn(event) }

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	log       *logger.Logger
	mu        sync.RWMutex
}

// NewBus creates a new event bus. A nil logger discards bus logging.
func NewBus(log *logger.Logger) *Bus {
	if log == nil {
		log = logger.NewNop()
	}
	return &Bus{
		listeners: make(map[EventType][]EventListener),
		log:       log,
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)

	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})

	b.log.Debug("subscribed listener", "listener", listener.ID(), "event", eventType, "priority", listener.Priority())
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)

		b.log.Debug("unsubscribed listener", "listener", listenerID, "event", eventType)
		return
	}
}

// Emit sends an event to all registered listeners in priority order. The
// first listener error stops propagation.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	b.log.Debug("emitting event", "event", event.GetType(), "listeners", len(listeners))

	for _, listener := range listeners {
		if event.IsCancelled() {
			b.log.Debug("event cancelled", "event", event.GetType())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	b.log.Debug("cleared all listeners")
}
