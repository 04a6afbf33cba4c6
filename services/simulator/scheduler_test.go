package simulator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerOrdering(t *testing.T) {
	s := newScheduler()
	var fired []string

	s.after(3*time.Second, func() { fired = append(fired, "c") })
	s.after(1*time.Second, func() { fired = append(fired, "a") })
	s.after(3*time.Second, func() { fired = append(fired, "d") })
	s.after(2*time.Second, func() { fired = append(fired, "b") })

	s.advance(2 * time.Second)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 2*time.Second, s.now)

	s.advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c", "d"}, fired)
	assert.Zero(t, s.pending())
}

func TestSchedulerCallbackSeesDueTime(t *testing.T) {
	s := newScheduler()
	var at time.Duration
	s.after(1500*time.Millisecond, func() { at = s.now })

	s.advance(10 * time.Second)
	assert.Equal(t, 1500*time.Millisecond, at)
	assert.Equal(t, 10*time.Second, s.now)
}

func TestSchedulerChainedTimers(t *testing.T) {
	s := newScheduler()
	var fired []time.Duration

	s.after(6*time.Second, func() {
		fired = append(fired, s.now)
		s.after(3*time.Second, func() { fired = append(fired, s.now) })
	})

	s.advance(20 * time.Second)
	assert.Equal(t, []time.Duration{6 * time.Second, 9 * time.Second}, fired)
}

func TestSchedulerCancel(t *testing.T) {
	t.Run("Pending", func(t *testing.T) {
		s := newScheduler()
		called := false
		id := s.after(time.Second, func() { called = true })

		assert.True(t, s.cancel(id))
		assert.False(t, s.cancel(id))
		s.advance(time.Minute)
		assert.False(t, called)
	})

	t.Run("AlreadyFired", func(t *testing.T) {
		s := newScheduler()
		id := s.after(time.Second, func() {})
		s.advance(time.Second)
		assert.False(t, s.cancel(id))
	})

	t.Run("FromOtherCallback", func(t *testing.T) {
		s := newScheduler()
		called := false
		var victim timerID
		s.after(time.Second, func() { s.cancel(victim) })
		victim = s.after(2*time.Second, func() { called = true })

		s.advance(5 * time.Second)
		assert.False(t, called)
	})
}

func TestSchedulerEvery(t *testing.T) {
	t.Run("Repeats", func(t *testing.T) {
		s := newScheduler()
		count := 0
		s.every(2*time.Second, func() { count++ })

		s.advance(7 * time.Second)
		assert.Equal(t, 3, count)
		assert.Equal(t, 1, s.pending())
	})

	t.Run("CancelInsideOwnCallback", func(t *testing.T) {
		s := newScheduler()
		count := 0
		var id timerID
		id = s.every(time.Second, func() {
			count++
			if count == 2 {
				s.cancel(id)
			}
		})

		s.advance(10 * time.Second)
		assert.Equal(t, 2, count)
		assert.Zero(t, s.pending())
	})
}

func TestSchedulerReset(t *testing.T) {
	s := newScheduler()
	called := false
	s.after(time.Second, func() { called = true })
	s.every(time.Second, func() { called = true })

	s.reset()
	s.advance(time.Minute)
	assert.False(t, called)
	assert.Zero(t, s.pending())
}

func TestSchedulerNegativeAdvance(t *testing.T) {
	s := newScheduler()
	s.advance(time.Second)
	s.advance(-time.Second)
	assert.Equal(t, time.Second, s.now)
}
