package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Topic groups events by the entity they describe
type Topic string

const (
	TopicEntrants Topic = "entrants"
	TopicWinners  Topic = "winners"
	TopicStats    Topic = "stats"
	TopicDraw     Topic = "draw"
)

// AllTopics is used when a subscriber does not name any topic
var AllTopics = []Topic{TopicEntrants, TopicWinners, TopicStats, TopicDraw}

// Event types
const (
	TypeEntrantRegistered   = "entrant.registered"
	TypeEntrantRemoved      = "entrant.removed"
	TypeEntrantsCleared     = "entrants.cleared"
	TypeWinnerDrawn         = "winner.drawn"
	TypeWinnerStatusChanged = "winner.status_changed"
	TypeStatsUpdated        = "stats.updated"
	TypeDrawStateChanged    = "draw.state"
)

// ErrClosed is returned after the bus has been closed
var ErrClosed = errors.New("event bus closed")

// Event is one change notification
type Event struct {
	ID    string          `json:"id"`
	Topic Topic           `json:"topic"`
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	At    time.Time       `json:"at"`
}

// New builds an event with the payload encoded as JSON
func New(topic Topic, typ string, payload any, at time.Time) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:    uuid.NewString(),
		Topic: topic,
		Type:  typ,
		Data:  data,
		At:    at,
	}, nil
}

// Publisher sends events to subscribers
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// Subscriber delivers events for the given topics until ctx is done, then
// closes the channel. No topics means every topic.
type Subscriber interface {
	Subscribe(ctx context.Context, topics ...Topic) (<-chan Event, error)
}

// Bus is both ends of the notification channel
type Bus interface {
	Publisher
	Subscriber
	Close() error
}

// Notify publishes a change and logs instead of failing when delivery fails.
// Mutations are already committed when this runs.
func Notify(ctx context.Context, pub Publisher, topic Topic, typ string, payload any, at time.Time) {
	if pub == nil {
		return
	}
	evt, err := New(topic, typ, payload, at)
	if err != nil {
		slog.Warn("failed to encode event", "type", typ, "error", err)
		return
	}
	if err := pub.Publish(ctx, evt); err != nil {
		slog.Warn("failed to publish event", "type", typ, "topic", topic, "error", err)
	}
}

func wants(topics map[Topic]struct{}, t Topic) bool {
	if len(topics) == 0 {
		return true
	}
	_, ok := topics[t]
	return ok
}

func topicSet(topics []Topic) map[Topic]struct{} {
	set := make(map[Topic]struct{}, len(topics))
	for _, t := range topics {
		set[t] = struct{}{}
	}
	return set
}
