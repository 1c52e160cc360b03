package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/learn-di/framework/clock"
)

func TestFrozenClock(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := clock.FrozenClock(at)
	assert.Equal(t, at, c())
	assert.Equal(t, at, c())
}

func TestSteppingClock(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := clock.SteppingClock(at, time.Second)
	assert.Equal(t, at, c())
	assert.Equal(t, at.Add(time.Second), c())
	assert.Equal(t, at.Add(2*time.Second), c())
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := clock.SystemClock()()
	assert.False(t, got.Before(before))
}
