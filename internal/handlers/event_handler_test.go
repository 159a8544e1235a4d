package handlers

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/events"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHandler_StreamsPublishedEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	broker := events.NewBroker(8)
	defer broker.Close()

	r := gin.New()
	r.GET("/events", NewEventHandler(broker, time.Minute).Stream)
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events?topics=winners", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return broker.Subscribers() == 1 }, 2*time.Second, 5*time.Millisecond)

	ignored, err := events.New(events.TopicEntrants, events.TypeEntrantRegistered, map[string]string{"id": "e1"}, time.Now())
	require.NoError(t, err)
	require.NoError(t, broker.Publish(ctx, ignored))
	drawn, err := events.New(events.TopicWinners, events.TypeWinnerDrawn, map[string]string{"id": "w1"}, time.Now())
	require.NoError(t, err)
	require.NoError(t, broker.Publish(ctx, drawn))

	lines := make(chan string, 64)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			require.True(t, ok, "stream ended early")
			assert.NotContains(t, line, events.TypeEntrantRegistered)
			if strings.HasPrefix(line, "data:") {
				assert.Contains(t, line, `"type":"winner.drawn"`)
				assert.Contains(t, line, drawn.ID)
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestParseTopics(t *testing.T) {
	assert.Nil(t, parseTopics(""))
	assert.Equal(t, []events.Topic{events.TopicEntrants, events.TopicStats}, parseTopics("entrants, stats,"))
}
