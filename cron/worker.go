package cron

import (
	"context"
	"fmt"
	"time"

	"carexyz/services/notification"
	"carexyz/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// WorkerConfig configures the background invoice worker.
type WorkerConfig struct {
	Redis       asynq.RedisClientOpt
	Concurrency int
}

// InitInvoiceWorker starts the async invoice worker in the background and
// returns the server so the caller can shut it down.
func InitInvoiceWorker(cfg WorkerConfig, mailer notification.Mailer, logger *zap.Logger) *asynq.Server {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	srv := asynq.NewServer(
		cfg.Redis,
		asynq.Config{
			Concurrency: cfg.Concurrency,
			Queues: map[string]int{
				tasks.QueueNotifications: 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendInvoice, HandleInvoiceTask(mailer, logger))

	go func() {
		logger.Info("InvoiceWorker: starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("InvoiceWorker: failed to start worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("InvoiceWorker: giving up, invoices will stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

// HandleInvoiceTask decodes an invoice task and mails it. Malformed payloads are not retried.
func HandleInvoiceTask(mailer notification.Mailer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseInvoicePayload(task)
		if err != nil {
			logger.Error("InvoiceHandler: dropping task", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if p.Recipient == "" {
			logger.Warn("InvoiceHandler: no recipient", zap.String("bookingId", p.Booking.ID.Hex()))
			return fmt.Errorf("invoice for booking %s has no recipient: %w", p.Booking.ID.Hex(), asynq.SkipRetry)
		}

		if err := mailer.SendInvoice(ctx, notification.Invoice{To: p.Recipient, Booking: p.Booking}); err != nil {
			logger.Error("InvoiceHandler: failed to send invoice",
				zap.String("bookingId", p.Booking.ID.Hex()), zap.Error(err))
			return err
		}

		logger.Info("InvoiceHandler: invoice sent",
			zap.String("bookingId", p.Booking.ID.Hex()), zap.String("to", p.Recipient))
		return nil
	}
}
