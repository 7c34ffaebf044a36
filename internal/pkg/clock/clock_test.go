package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tides-game/tides-api/internal/pkg/clock"
)

func TestManualClockNeverMovesBackwards(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	c := clock.NewManual(start)

	c.Advance(90 * time.Second)
	assert.Equal(t, int64(1_700_000_090), clock.Unix(c))

	c.Set(start)
	assert.Equal(t, int64(1_700_000_090), clock.Unix(c))

	c.Advance(-time.Hour)
	assert.Equal(t, int64(1_700_000_090), clock.Unix(c))

	c.Set(start.Add(time.Hour))
	assert.Equal(t, int64(1_700_003_600), clock.Unix(c))
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	got := clock.New().Now()
	assert.False(t, got.Before(before))
}
