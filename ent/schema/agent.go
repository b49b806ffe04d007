package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity — the unit of
// delegated work. Parent/child relations are carried both by parent_id
// (for depth computation) and by Hierarchy edge rows (for traversal).
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("role").
			Comment("Role tag resolved against the role registry"),
		field.Text("task_description"),
		field.Enum("status").
			Values("pending", "executing", "completed", "failed", "terminated").
			Default("pending"),
		field.Int("depth_level").
			Default(0).
			Comment("0 for roots; parent.depth_level+1 otherwise"),
		field.String("parent_id").
			Optional().
			Nillable().
			Immutable(),
		field.Text("result").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set on first transition into a terminal status"),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("budget", Budget.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("workspace", Workspace.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("child_edges", Hierarchy.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("parent_edges", Hierarchy.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("parent_id"),
		index.Fields("status", "created_at"),
	}
}
