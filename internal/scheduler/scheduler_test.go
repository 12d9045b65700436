package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsOnEachTick(t *testing.T) {
	mockClock := clock.NewMock()
	var runs atomic.Int32

	s := NewWithClock(mockClock, time.Minute, func() { runs.Add(1) })
	s.Start()
	defer s.Stop()

	assert.Equal(t, int32(0), runs.Load())

	mockClock.Add(time.Minute)
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	mockClock.Add(time.Minute)
	assert.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_StopHaltsExecution(t *testing.T) {
	mockClock := clock.NewMock()
	var runs atomic.Int32

	s := NewWithClock(mockClock, time.Minute, func() { runs.Add(1) })
	s.Start()
	assert.True(t, s.Running())

	s.Stop()
	assert.False(t, s.Running())

	mockClock.Add(5 * time.Minute)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	s := NewWithClock(clock.NewMock(), time.Minute, func() {})

	// Stop before Start should not block
	s.Stop()

	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
	assert.False(t, s.Running())
}

func TestScheduler_Restart(t *testing.T) {
	mockClock := clock.NewMock()
	var runs atomic.Int32

	s := NewWithClock(mockClock, time.Second, func() { runs.Add(1) })
	s.Start()
	s.Stop()
	s.Start()
	defer s.Stop()

	mockClock.Add(time.Second)
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestNew_UsesWallClock(t *testing.T) {
	var runs atomic.Int32

	s := New(10*time.Millisecond, func() { runs.Add(1) })
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
}
