package worker

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestEvery_RunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int32
	done := make(chan struct{})

	go func() {
		Every(ctx, 5*time.Millisecond, zerolog.Nop(), "count", func(context.Context) error {
			if runs.Add(1) == 3 {
				cancel()
			}
			return nil
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancel")
	}
	assert.GreaterOrEqual(t, runs.Load(), int32(3))
}

func TestEvery_LogsFailuresAndKeepsGoing(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int32

	Every(ctx, time.Millisecond, log, "flaky", func(context.Context) error {
		if runs.Add(1) >= 2 {
			cancel()
		}
		return errors.New("boom")
	})

	assert.GreaterOrEqual(t, runs.Load(), int32(2))
	assert.Contains(t, buf.String(), `"job":"flaky"`)
	assert.Contains(t, buf.String(), "job_failed")
}
