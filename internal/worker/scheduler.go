package worker

// scheduler.go
// Cron schedule for the daily load-list email. Enqueues the job instead of
// sending inline so it goes through the same retry/DLQ path as manual requests.

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// StartLoadListSchedule runs the load-list email on the given cron spec
// (standard 5-field syntax). Returns nil without scheduling anything when no
// recipient is configured. The returned cron is already started; the caller
// stops it on shutdown.
func StartLoadListSchedule(ctx context.Context, spec, recipient string, dispatcher *Dispatcher) (*cron.Cron, error) {
	if recipient == "" {
		log.Info().Msg("loadlist schedule disabled: no recipient configured")
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		date := time.Now().Format("2006-01-02")
		if err := dispatcher.EnqueueLoadList(ctx, date, recipient); err != nil {
			log.Error().Err(err).Str("date", date).Msg("loadlist schedule: enqueue failed")
			return
		}
		log.Info().Str("date", date).Msg("loadlist schedule: job enqueued")
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info().Str("spec", spec).Str("recipient", recipient).Msg("loadlist schedule started")
	return c, nil
}
