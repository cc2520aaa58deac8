package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingRefresher struct {
	calls atomic.Int64
}

func (r *countingRefresher) Refresh(_ context.Context) error {
	r.calls.Add(1)
	return nil
}

func TestRefreshJob_StartTicksAndStops(t *testing.T) {
	refresher := &countingRefresher{}
	job := NewRefreshJob(refresher)

	job.Start(context.Background(), 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return refresher.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	job.Stop()
	after := refresher.calls.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, refresher.calls.Load(), "job must not tick after Stop")
}

func TestRefreshJob_StopWithoutStart(t *testing.T) {
	job := NewRefreshJob(&countingRefresher{})

	// no-op, must not panic or block
	job.Stop()
}

func TestRefreshJob_ContextCancelStopsJob(t *testing.T) {
	refresher := &countingRefresher{}
	job := NewRefreshJob(refresher)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	cancel()

	time.Sleep(30 * time.Millisecond)
	after := refresher.calls.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, refresher.calls.Load())
}
