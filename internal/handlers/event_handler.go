package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/events"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

// DefaultHeartbeat is the interval between keep-alive comments on idle streams
const DefaultHeartbeat = 15 * time.Second

// EventHandler streams change notifications to the dashboard
type EventHandler struct {
	subscriber events.Subscriber
	heartbeat  time.Duration
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(subscriber events.Subscriber, heartbeat time.Duration) *EventHandler {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return &EventHandler{
		subscriber: subscriber,
		heartbeat:  heartbeat,
	}
}

// Stream handles GET /events?topics=entrants,winners as server-sent events
func (h *EventHandler) Stream(c *gin.Context) {
	topics := parseTopics(c.Query("topics"))

	feed, err := h.subscriber.Subscribe(c.Request.Context(), topics...)
	if err != nil {
		respondError(c, err)
		return
	}
	slog.Debug("event stream opened", "topics", topics, "clientIp", c.ClientIP())

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case evt, ok := <-feed:
			if !ok {
				return false
			}
			c.SSEvent(evt.Type, evt)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", gin.H{"at": time.Now().UTC()})
			return true
		}
	})
	slog.Debug("event stream closed", "clientIp", c.ClientIP())
}

func parseTopics(raw string) []events.Topic {
	if raw == "" {
		return nil
	}
	var topics []events.Topic
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			topics = append(topics, events.Topic(t))
		}
	}
	return topics
}
