package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeAdvanceFiresDueTimers(t *testing.T) {
	start := time.Date(2024, time.April, 10, 8, 0, 0, 0, time.UTC)
	f := NewFake(start)

	short := f.After(time.Minute)
	long := f.After(time.Hour)
	assert.Equal(t, 2, f.Waiters())

	f.Advance(30 * time.Second)
	select {
	case <-short:
		t.Fatal("timer fired early")
	default:
	}

	f.Advance(30 * time.Second)
	select {
	case got := <-short:
		assert.Equal(t, start.Add(time.Minute), got)
	default:
		t.Fatal("timer did not fire")
	}
	assert.Equal(t, 1, f.Waiters())

	f.Set(start.Add(2 * time.Hour))
	<-long
	assert.Equal(t, 0, f.Waiters())
	assert.Equal(t, start.Add(2*time.Hour), f.Now())
}

func TestFakeNonPositiveDurationFiresImmediately(t *testing.T) {
	f := NewFake(time.Unix(0, 0))
	select {
	case <-f.After(0):
	default:
		t.Fatal("expected immediate fire")
	}
}

func TestFakeWaitForWaiters(t *testing.T) {
	f := NewFake(time.Unix(0, 0))

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.After(time.Second)
	}()

	assert.True(t, f.WaitForWaiters(1, time.Second))
	assert.False(t, f.WaitForWaiters(2, 20*time.Millisecond))
}

func TestSystemClock(t *testing.T) {
	c := New()
	before := time.Now()
	assert.False(t, c.Now().Before(before))
	<-c.After(time.Millisecond)
}
