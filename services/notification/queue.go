package notification

import (
	"context"
	"errors"
	"strings"

	"carexyz/models"
	"carexyz/services/tasks"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client used to queue tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier hands invoice emails to the background worker.
type QueueNotifier struct {
	client Enqueuer
}

func NewQueueNotifier(client Enqueuer) *QueueNotifier {
	return &QueueNotifier{client: client}
}

// BookingCreated queues the invoice for booking. Queuing the same booking twice is a no-op.
func (n *QueueNotifier) BookingCreated(ctx context.Context, booking models.Booking, recipient string) error {
	if strings.TrimSpace(recipient) == "" {
		return models.NewNotificationError("missing invoice recipient", nil)
	}

	task, opts, err := tasks.NewInvoiceTask(models.InvoicePayload{Booking: booking, Recipient: recipient})
	if err != nil {
		return models.NewNotificationError("failed to build invoice task", err)
	}

	if _, err := n.client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
			return nil
		}
		return models.NewNotificationError("failed to queue invoice", err)
	}
	return nil
}
