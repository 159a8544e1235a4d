package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

// RedisConfig configures the Redis bus
type RedisConfig struct {
	RedisClient   *redis.Client
	ChannelPrefix string
	// Buffer is the per-subscriber queue length
	Buffer int
}

// RedisBus carries events over Redis Pub/Sub so every API instance sees
// changes made by the others
type RedisBus struct {
	client *redis.Client
	prefix string
	buffer int

	done      chan struct{}
	closeOnce sync.Once
}

// NewRedis creates a Redis backed bus and checks the connection
func NewRedis(ctx context.Context, cfg *RedisConfig) (*RedisBus, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if err := cfg.RedisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	prefix := cfg.ChannelPrefix
	if prefix == "" {
		prefix = "raffle"
	}
	buffer := cfg.Buffer
	if buffer <= 0 {
		buffer = 16
	}
	return &RedisBus{client: cfg.RedisClient, prefix: prefix, buffer: buffer, done: make(chan struct{})}, nil
}

func (b *RedisBus) channel(t Topic) string {
	return b.prefix + ":" + string(t)
}

// Publish sends evt on the topic channel
func (b *RedisBus) Publish(ctx context.Context, evt Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, b.channel(evt.Topic), payload).Err()
}

// Subscribe listens on the topic channels. It returns once Redis has
// confirmed the subscription.
func (b *RedisBus) Subscribe(ctx context.Context, topics ...Topic) (<-chan Event, error) {
	select {
	case <-b.done:
		return nil, ErrClosed
	default:
	}
	if len(topics) == 0 {
		topics = AllTopics
	}
	channels := make([]string, 0, len(topics))
	for _, t := range topics {
		channels = append(channels, b.channel(t))
	}

	pubsub := b.client.Subscribe(ctx, channels...)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan Event, b.buffer)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-b.done:
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var evt Event
				if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
					slog.Warn("discarding malformed event", "channel", msg.Channel, "error", err)
					continue
				}
				select {
				case out <- evt:
				default:
					slog.Warn("dropping event for slow subscriber", "type", evt.Type, "topic", evt.Topic)
				}
			}
		}
	}()
	return out, nil
}

// Close ends every subscription. The Redis client belongs to the caller.
func (b *RedisBus) Close() error {
	b.closeOnce.Do(func() { close(b.done) })
	return nil
}
