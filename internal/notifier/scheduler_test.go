package notifier

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"maritime-maintenance/internal/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRun(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*3600)

	tests := []struct {
		name string
		now  time.Time
		loc  *time.Location
		want time.Time
	}{
		{"later today", time.Date(2024, 4, 10, 8, 0, 0, 0, time.UTC), time.UTC, time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)},
		{"exactly at trigger goes to tomorrow", time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC), time.UTC, time.Date(2024, 4, 11, 9, 0, 0, 0, time.UTC)},
		{"after trigger", time.Date(2024, 4, 10, 17, 0, 0, 0, time.UTC), time.UTC, time.Date(2024, 4, 11, 9, 0, 0, 0, time.UTC)},
		{"month rollover", time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC), time.UTC, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
		{"other zone", time.Date(2024, 4, 10, 5, 30, 0, 0, time.UTC), moscow, time.Date(2024, 4, 10, 9, 0, 0, 0, moscow)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextRun(tt.now, 9, 0, tt.loc)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestParseDailyAt(t *testing.T) {
	h, m, err := ParseDailyAt("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, h)
	assert.Equal(t, 45, m)

	_, _, err = ParseDailyAt("25:00")
	assert.Error(t, err)
}

func TestSchedulerFiresDaily(t *testing.T) {
	fake := clock.NewFake(time.Date(2024, 4, 10, 8, 0, 0, 0, time.UTC))
	var runs atomic.Int32
	fired := make(chan struct{}, 4)

	run := func(ctx context.Context) (*RunReport, error) {
		runs.Add(1)
		fired <- struct{}{}
		return &RunReport{}, nil
	}

	s := NewScheduler(run, fake, 9, 0, time.UTC, false)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.True(t, fake.WaitForWaiters(1, time.Second))
	assert.Equal(t, int32(0), runs.Load())

	fake.Advance(time.Hour)
	waitFired(t, fired)
	assert.Equal(t, int32(1), runs.Load())

	require.True(t, fake.WaitForWaiters(1, time.Second))
	fake.Advance(24 * time.Hour)
	waitFired(t, fired)
	assert.Equal(t, int32(2), runs.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestSchedulerRunOnStart(t *testing.T) {
	fake := clock.NewFake(time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC))
	fired := make(chan struct{}, 1)

	run := func(ctx context.Context) (*RunReport, error) {
		fired <- struct{}{}
		return nil, ErrRunInProgress
	}

	s := NewScheduler(run, fake, 9, 0, time.UTC, true)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Start(ctx) }()

	waitFired(t, fired)
}

func waitFired(t *testing.T, fired <-chan struct{}) {
	t.Helper()
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}
}
