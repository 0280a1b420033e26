// Package worker runs periodic background jobs.
package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Job is one run of a periodic task.
type Job func(ctx context.Context) error

// Every runs job once immediately and then on each tick of interval until ctx is done.
// Job errors are logged and never stop the loop. Runs never overlap.
func Every(ctx context.Context, interval time.Duration, log zerolog.Logger, name string, job Job) {
	log = log.With().Str("job", name).Logger()
	run := func() {
		start := time.Now()
		if err := job(ctx); err != nil {
			log.Error().Err(err).Dur("took", time.Since(start)).Msg("job_failed")
			return
		}
		log.Debug().Dur("took", time.Since(start)).Msg("job_done")
	}

	log.Info().Dur("interval", interval).Msg("job_started")
	run()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			run()
		case <-ctx.Done():
			log.Info().Msg("job_stopped")
			return
		}
	}
}
