package tasks

import (
	"testing"

	"carexyz/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInvoiceTaskPayload(t *testing.T) {
	id := primitive.NewObjectID()
	in := models.InvoicePayload{
		Booking:   models.Booking{ID: id, ServiceName: "Baby Care", TotalCost: 2000},
		Recipient: "rahim@care.xyz",
	}

	task, opts, err := NewInvoiceTask(in)
	require.NoError(t, err)
	assert.Equal(t, TypeSendInvoice, task.Type())
	assert.Len(t, opts, 4)

	out, err := ParseInvoicePayload(task)
	require.NoError(t, err)
	assert.Equal(t, id, out.Booking.ID)
	assert.Equal(t, "rahim@care.xyz", out.Recipient)
	assert.Equal(t, 2000.0, out.Booking.TotalCost)
}

func TestParseInvoicePayloadRejectsGarbage(t *testing.T) {
	_, err := ParseInvoicePayload(asynq.NewTask(TypeSendInvoice, []byte("{not json")))
	assert.Error(t, err)
}
