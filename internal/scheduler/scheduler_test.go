package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeScanner struct {
	ticks     atomic.Int32
	cancelled atomic.Bool
	finished  atomic.Bool
	block     bool
}

func (f *fakeScanner) Tick(ctx context.Context) service.ScanReport {
	f.ticks.Add(1)
	if f.block {
		<-ctx.Done()
		f.cancelled.Store(true)
		// saving the scan outcome
		time.Sleep(50 * time.Millisecond)
		f.finished.Store(true)
	}
	return service.ScanReport{}
}

func TestRunner_StartStop(t *testing.T) {
	scanner := &fakeScanner{}
	r := New(scanner, "@every 1s", zap.NewNop())

	require.NoError(t, r.Start())
	// second start is a no-op
	require.NoError(t, r.Start())

	require.Eventually(t, func() bool { return scanner.ticks.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	require.NoError(t, r.Stop(context.Background()))
	ticks := scanner.ticks.Load()

	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, ticks, scanner.ticks.Load())

	// stopping twice is fine
	assert.NoError(t, r.Stop(context.Background()))
}

func TestRunner_InvalidSchedule(t *testing.T) {
	r := New(&fakeScanner{}, "every minute please", zap.NewNop())

	err := r.Start()
	assert.ErrorContains(t, err, "invalid scan schedule")
	assert.NoError(t, r.Stop(context.Background()))
}

func TestRunner_StopCancelsRunningScan(t *testing.T) {
	scanner := &fakeScanner{block: true}
	r := New(scanner, "@every 1s", zap.NewNop())

	require.NoError(t, r.Start())
	require.Eventually(t, func() bool { return scanner.ticks.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := r.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, scanner.cancelled.Load())
	assert.True(t, scanner.finished.Load(), "Stop must return only after the scan returned")
}
