package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"

	"github.com/maestro-orch/maestro/ent"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/message"
)

// MessageService is the priority+FIFO queue over persisted messages.
// Delivery order per recipient is total and deterministic:
// priority DESC, created_at ASC, id ASC. The integer id breaks
// same-microsecond timestamp ties in insertion order.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// Send enqueues a message. senderID may be empty for system-originated
// messages; the recipient must exist. Priority is bounded to [0,10].
func (s *MessageService) Send(ctx context.Context, senderID, recipientID string, payload []byte, priority int, threadID string) (*ent.Message, error) {
	if recipientID == "" {
		return nil, NewValidationError("recipient_id", "required")
	}
	if priority < 0 || priority > 10 {
		return nil, NewValidationError("priority", "must be in [0,10]")
	}

	exists, err := s.client.Agent.Query().
		Where(agent.IDEQ(recipientID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipient: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: recipient agent %s", ErrNotFound, recipientID)
	}

	create := s.client.Message.Create().
		SetRecipientID(recipientID).
		SetPayload(payload).
		SetPriority(priority)
	if senderID != "" {
		create = create.SetSenderID(senderID)
	}
	if threadID != "" {
		create = create.SetThreadID(threadID)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue message: %w", err)
	}
	return msg, nil
}

// Receive returns up to limit pending messages for a recipient in delivery
// order without advancing their status; callers acknowledge via
// MarkDelivered/MarkProcessed. Rows are fetched FOR UPDATE SKIP LOCKED so
// overlapping consumers never observe the same message concurrently.
func (s *MessageService) Receive(ctx context.Context, recipientID string, limit int) ([]*ent.Message, error) {
	if limit <= 0 {
		limit = 10
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	msgs, err := tx.Message.Query().
		Where(
			message.RecipientIDEQ(recipientID),
			message.StatusEQ(message.StatusPending),
		).
		Order(
			ent.Desc(message.FieldPriority),
			ent.Asc(message.FieldCreatedAt),
			ent.Asc(message.FieldID),
		).
		Limit(limit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit receive: %w", err)
	}
	return msgs, nil
}

// MarkDelivered transitions a message pending → delivered.
func (s *MessageService) MarkDelivered(ctx context.Context, msgID int) error {
	return s.transition(ctx, msgID, message.StatusDelivered, "")
}

// MarkProcessed transitions a message delivered → processed, the terminal
// application-ack state.
func (s *MessageService) MarkProcessed(ctx context.Context, msgID int) error {
	return s.transition(ctx, msgID, message.StatusProcessed, "")
}

// MarkFailed moves a message to the dead-letter state from any non-terminal
// status. Retry policy is the caller's responsibility.
func (s *MessageService) MarkFailed(ctx context.Context, msgID int, reason string) error {
	return s.transition(ctx, msgID, message.StatusFailed, reason)
}

// validMessageTransitions is the monotonic status order; failed is
// reachable from any non-terminal state.
var validMessageTransitions = map[message.Status][]message.Status{
	message.StatusPending:   {message.StatusDelivered, message.StatusFailed},
	message.StatusDelivered: {message.StatusProcessed, message.StatusFailed},
	message.StatusProcessed: {},
	message.StatusFailed:    {},
}

func (s *MessageService) transition(ctx context.Context, msgID int, target message.Status, reason string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	msg, err := tx.Message.Query().
		Where(message.IDEQ(msgID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: message %d", ErrNotFound, msgID)
		}
		return fmt.Errorf("failed to lock message: %w", err)
	}

	if !transitionAllowed(validMessageTransitions[msg.Status], target) {
		return fmt.Errorf("%w: message %d cannot go %s → %s",
			ErrInvalidTransition, msgID, msg.Status, target)
	}

	update := tx.Message.UpdateOne(msg).SetStatus(target)
	if reason != "" {
		update = update.SetFailureReason(reason)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit message transition: %w", err)
	}
	return nil
}

func transitionAllowed[T comparable](allowed []T, target T) bool {
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}
