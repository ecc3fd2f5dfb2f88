package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewFakeClock(start)

	assert.Equal(t, start, c.Now())
	c.Advance(31 * time.Minute)
	assert.Equal(t, start.Add(31*time.Minute), c.Now())
}
