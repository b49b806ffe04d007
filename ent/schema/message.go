package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the inter-agent message envelope.
// The integer primary key is deliberate: delivery order is
// (priority DESC, created_at ASC, id ASC) and the auto-increment id makes
// the final tiebreaker insertion-ordered even for same-microsecond sends.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("sender_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Nil for system-originated messages"),
		field.String("recipient_id").
			Immutable(),
		field.Bytes("payload").
			Comment("Opaque to the kernel, typically JSON"),
		field.Int("priority").
			Default(0).
			Min(0).
			Max(10),
		field.Enum("status").
			Values("pending", "delivered", "processed", "failed").
			Default("pending"),
		field.String("thread_id").
			Optional().
			Nillable(),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Receive-path ordering scan
		index.Fields("recipient_id", "status", "priority", "created_at"),
		index.Fields("thread_id"),
	}
}
