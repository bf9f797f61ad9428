package service

import (
	"sync"
)

const subscriberBuffer = 4

// EventBus fans job events out to SSE subscribers in this process. It keeps
// the latest event of every running job so a page opened mid-run gets the
// current stage at once. Terminal events clear that entry since the store
// holds the final state.
type EventBus struct {
	mu          sync.Mutex
	subscribers map[string]map[chan Event]struct{}
	latest      map[string]Event
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string]map[chan Event]struct{}),
		latest:      make(map[string]Event),
	}
}

// Subscribe registers for events of jobID. The returned func unsubscribes
// and closes the channel; it is safe to call more than once.
func (eb *EventBus) Subscribe(jobID string) (<-chan Event, func()) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if eb.subscribers[jobID] == nil {
		eb.subscribers[jobID] = make(map[chan Event]struct{})
	}
	eb.subscribers[jobID][ch] = struct{}{}
	if ev, ok := eb.latest[jobID]; ok {
		ch <- ev
	}

	var once sync.Once
	return ch, func() {
		once.Do(func() { eb.unsubscribe(jobID, ch) })
	}
}

func (eb *EventBus) unsubscribe(jobID string, ch chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[jobID]
	if _, ok := subs[ch]; !ok {
		return
	}
	delete(subs, ch)
	close(ch)
	if len(subs) == 0 {
		delete(eb.subscribers, jobID)
	}
}

// Publish delivers event to every subscriber of jobID. A subscriber whose
// buffer is full loses its oldest pending event, never the new one.
func (eb *EventBus) Publish(jobID string, event Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if event.terminal() {
		delete(eb.latest, jobID)
	} else {
		eb.latest[jobID] = event
	}

	for ch := range eb.subscribers[jobID] {
		select {
		case ch <- event:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
}

func (eb *EventBus) subscriberCount(jobID string) int {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	return len(eb.subscribers[jobID])
}

func (eb *EventBus) tracked(jobID string) bool {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	_, ok := eb.latest[jobID]
	return ok
}
