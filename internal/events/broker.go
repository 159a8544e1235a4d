package events

import (
	"context"
	"sync"

	"golang.org/x/exp/slog"
)

// Broker fans events out to in-process subscribers. A subscriber whose buffer
// is full misses the event; publishers never block.
type Broker struct {
	mu     sync.RWMutex
	subs   map[*subscription]struct{}
	buffer int
	closed bool
}

type subscription struct {
	ch     chan Event
	topics map[Topic]struct{}
}

// NewBroker creates a broker whose subscribers buffer up to buffer events
func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = 16
	}
	return &Broker{
		subs:   map[*subscription]struct{}{},
		buffer: buffer,
	}
}

// Publish delivers evt to every subscriber of its topic
func (b *Broker) Publish(_ context.Context, evt Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrClosed
	}
	for sub := range b.subs {
		if !wants(sub.topics, evt.Topic) {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			slog.Warn("dropping event for slow subscriber", "type", evt.Type, "topic", evt.Topic)
		}
	}
	return nil
}

// Subscribe registers a subscriber until ctx is done
func (b *Broker) Subscribe(ctx context.Context, topics ...Topic) (<-chan Event, error) {
	sub := &subscription{
		ch:     make(chan Event, b.buffer),
		topics: topicSet(topics),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.unsubscribe(sub)
	}()
	return sub.ch, nil
}

func (b *Broker) unsubscribe(sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		close(sub.ch)
	}
}

// Subscribers returns the number of live subscriptions
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close ends every subscription
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for sub := range b.subs {
		delete(b.subs, sub)
		close(sub.ch)
	}
	return nil
}
