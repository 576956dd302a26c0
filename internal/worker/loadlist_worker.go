package worker

// loadlist_worker.go
// Processes load-list email jobs from QueueLoadList: builds the day's CSV and
// sends it via SMTP through the circuit breaker, with exponential backoff.
// Jobs that exhaust their retries land in the dead letter queue.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/infra"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/service"
)

const maxSendAttempts = 3

// LoadListWorker builds and emails the load list CSV for one date.
type LoadListWorker struct {
	exports          service.ExportService
	mailer           *infra.Mailer
	cb               *infra.CircuitBreaker
	rdb              *redis.Client
	defaultRecipient string
}

func NewLoadListWorker(
	exports service.ExportService,
	mailer *infra.Mailer,
	cb *infra.CircuitBreaker,
	rdb *redis.Client,
	defaultRecipient string,
) *LoadListWorker {
	return &LoadListWorker{
		exports:          exports,
		mailer:           mailer,
		cb:               cb,
		rdb:              rdb,
		defaultRecipient: defaultRecipient,
	}
}

func (w *LoadListWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload LoadListJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("loadlist_worker: invalid payload")
		return
	}

	if payload.Date == "" {
		payload.Date = time.Now().Format("2006-01-02")
	}
	recipient := payload.Recipient
	if recipient == "" {
		recipient = w.defaultRecipient
	}
	if recipient == "" {
		log.Warn().Msg("loadlist_worker: no recipient configured — skipping")
		return
	}

	body, filename, err := w.exports.LoadListCSV(ctx, payload.Date)
	if err != nil {
		log.Error().Err(err).Str("date", payload.Date).Msg("loadlist_worker: CSV build failed")
		return
	}

	subject := fmt.Sprintf("Lista di carico %s", payload.Date)
	text := "In allegato la lista di carico della giornata."

	sendErr := withRetry(ctx, maxSendAttempts, func(attempt int) error {
		return w.cb.Execute(func() error {
			return w.mailer.SendWithAttachment(recipient, subject, text, body, filename, "text/csv")
		})
	})
	if sendErr != nil {
		log.Error().Err(sendErr).Str("to", recipient).Msg("loadlist_worker: send failed after all retries")
		SendToDLQ(ctx, w.rdb, QueueLoadList, "loadlist_email", raw, sendErr.Error(), maxSendAttempts)
		return
	}
	log.Info().Str("to", recipient).Str("file", filename).Msg("loadlist_worker: load list sent")
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
