package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultClock_NowIsStorable(t *testing.T) {
	c := &DefaultClock{}
	before := time.Now().UTC().Truncate(Precision)

	now := c.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(Precision))
	assert.False(t, now.Before(before))
}
