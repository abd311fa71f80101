package cron

import (
	"context"
	"errors"
	"testing"

	"carexyz/models"
	"carexyz/services/notification"
	"carexyz/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type recordingMailer struct {
	sent []notification.Invoice
	err  error
}

func (m *recordingMailer) SendInvoice(_ context.Context, inv notification.Invoice) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, inv)
	return nil
}

func invoiceTask(t *testing.T, recipient string) (*asynq.Task, primitive.ObjectID) {
	t.Helper()
	id := primitive.NewObjectID()
	task, _, err := tasks.NewInvoiceTask(models.InvoicePayload{
		Booking:   models.Booking{ID: id, ServiceName: "Pet Care", TotalCost: 800},
		Recipient: recipient,
	})
	require.NoError(t, err)
	return task, id
}

func TestHandleInvoiceTaskSends(t *testing.T) {
	mailer := &recordingMailer{}
	task, id := invoiceTask(t, "rahim@care.xyz")

	err := HandleInvoiceTask(mailer, zap.NewNop())(context.Background(), task)
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "rahim@care.xyz", mailer.sent[0].To)
	assert.Equal(t, id, mailer.sent[0].Booking.ID)
}

func TestHandleInvoiceTaskRetriesMailFailures(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp timeout")}
	task, _ := invoiceTask(t, "rahim@care.xyz")

	err := HandleInvoiceTask(mailer, zap.NewNop())(context.Background(), task)
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleInvoiceTaskSkipsBadPayloads(t *testing.T) {
	mailer := &recordingMailer{}
	handler := HandleInvoiceTask(mailer, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(tasks.TypeSendInvoice, []byte("nope")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	task, _ := invoiceTask(t, "")
	err = handler(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, mailer.sent)
}
