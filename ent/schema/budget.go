package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Budget holds the schema definition for the Budget entity — one row per
// agent. Non-negativity and used+reserved<=allocated are enforced by the
// service layer under row locks and by CHECK constraints added in
// pkg/database (ent cannot express cross-column checks).
type Budget struct {
	ent.Schema
}

// Fields of the Budget.
func (Budget) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_id").
			Unique().
			Immutable(),
		field.Int("allocated").
			NonNegative(),
		field.Int("used").
			Default(0).
			NonNegative(),
		field.Int("reserved").
			Default(0).
			NonNegative().
			Comment("Capacity loaned to children; unavailable to the owner"),
		field.Bool("reclaimed").
			Default(false).
			Comment("Idempotence latch: the reclaim path fires at most once"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Budget.
func (Budget) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("budget").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Budget.
func (Budget) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
	}
}
