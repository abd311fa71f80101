package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"carexyz/models"

	"github.com/hibiken/asynq"
)

const (
	TypeSendInvoice    = "invoice:send"
	QueueNotifications = "notifications"

	invoiceMaxRetry = 3
	invoiceTimeout  = 30 * time.Second
)

// NewInvoiceTask builds the task that emails a booking invoice. The task id is
// derived from the booking id so a booking is queued at most once.
func NewInvoiceTask(payload models.InvoicePayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendInvoice, b)
	opts := []asynq.Option{
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(invoiceMaxRetry),
		asynq.Timeout(invoiceTimeout),
		asynq.TaskID("invoice:" + payload.Booking.ID.Hex()),
	}

	return task, opts, nil
}

// ParseInvoicePayload decodes the body of an invoice task.
func ParseInvoicePayload(task *asynq.Task) (models.InvoicePayload, error) {
	var p models.InvoicePayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid invoice payload: %w", err)
	}
	return p, nil
}
