package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-orch/maestro/ent/message"
)

func TestMessageService_DeliveryOrder(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	recipient := ts.spawnRoot(t, ctx, 1_000)

	// Enqueue interleaved priorities; same-priority messages must come
	// back in insertion order.
	_, err := ts.messages.Send(ctx, "", recipient.ID, []byte("low-1"), 1, "")
	require.NoError(t, err)
	_, err = ts.messages.Send(ctx, "", recipient.ID, []byte("high-1"), 9, "")
	require.NoError(t, err)
	_, err = ts.messages.Send(ctx, "", recipient.ID, []byte("mid-1"), 5, "")
	require.NoError(t, err)
	_, err = ts.messages.Send(ctx, "", recipient.ID, []byte("high-2"), 9, "")
	require.NoError(t, err)
	_, err = ts.messages.Send(ctx, "", recipient.ID, []byte("mid-2"), 5, "")
	require.NoError(t, err)

	msgs, err := ts.messages.Receive(ctx, recipient.ID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 5)

	var payloads []string
	for _, m := range msgs {
		payloads = append(payloads, string(m.Payload))
	}
	assert.Equal(t, []string{"high-1", "high-2", "mid-1", "mid-2", "low-1"}, payloads)
}

func TestMessageService_ReceiveLimitAndEmpty(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	recipient := ts.spawnRoot(t, ctx, 1_000)

	msgs, err := ts.messages.Receive(ctx, recipient.ID, 5)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	for i := 0; i < 4; i++ {
		_, err := ts.messages.Send(ctx, "", recipient.ID, []byte("m"), 5, "")
		require.NoError(t, err)
	}

	msgs, err = ts.messages.Receive(ctx, recipient.ID, 2)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestMessageService_SendValidation(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	recipient := ts.spawnRoot(t, ctx, 1_000)

	_, err := ts.messages.Send(ctx, "", "", []byte("x"), 5, "")
	assert.True(t, IsValidationError(err))

	_, err = ts.messages.Send(ctx, "", recipient.ID, []byte("x"), 11, "")
	assert.True(t, IsValidationError(err))

	_, err = ts.messages.Send(ctx, "", recipient.ID, []byte("x"), -1, "")
	assert.True(t, IsValidationError(err))

	_, err = ts.messages.Send(ctx, "", "ghost", []byte("x"), 5, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessageService_StatusTransitions(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	recipient := ts.spawnRoot(t, ctx, 1_000)
	msg, err := ts.messages.Send(ctx, "", recipient.ID, []byte("x"), 5, "thread-1")
	require.NoError(t, err)

	// pending → processed skips delivered.
	err = ts.messages.MarkProcessed(ctx, msg.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, ts.messages.MarkDelivered(ctx, msg.ID))
	require.NoError(t, ts.messages.MarkProcessed(ctx, msg.ID))

	got, err := ts.client.Message.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusProcessed, got.Status)

	// Terminal; cannot fail a processed message.
	err = ts.messages.MarkFailed(ctx, msg.ID, "late")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMessageService_MarkFailed(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	recipient := ts.spawnRoot(t, ctx, 1_000)
	msg, err := ts.messages.Send(ctx, "", recipient.ID, []byte("x"), 5, "")
	require.NoError(t, err)

	require.NoError(t, ts.messages.MarkFailed(ctx, msg.ID, "recipient gone"))

	got, err := ts.client.Message.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusFailed, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Equal(t, "recipient gone", *got.FailureReason)

	// Failed messages are no longer receivable.
	msgs, err := ts.messages.Receive(ctx, recipient.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
