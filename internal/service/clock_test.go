package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockCountsOnlyWhileRunning(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewClock(time.Minute)
	c.now = func() time.Time { return now }

	assert.Equal(t, time.Minute, c.TimeLeft())
	c.Start()
	assert.True(t, c.Running())
	now = now.Add(10 * time.Second)
	assert.Equal(t, 50*time.Second, c.TimeLeft())

	c.Stop()
	now = now.Add(time.Hour)
	assert.Equal(t, 50*time.Second, c.TimeLeft())
	assert.Equal(t, 500, c.Tenths())

	c.Start()
	c.Start()
	now = now.Add(5 * time.Second)
	c.Stop()
	c.Stop()
	assert.Equal(t, 45*time.Second, c.TimeLeft())
}
