package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowGraph holds the schema definition for an instantiated workflow.
// Graphs start at "pending"; Execute moves them to "active". The graph row
// is the serialization point for node transitions: event handlers lock it
// FOR UPDATE before touching nodes.
type WorkflowGraph struct {
	ent.Schema
}

// Fields of the WorkflowGraph.
func (WorkflowGraph) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("template_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("root_agent_id").
			Optional().
			Nillable().
			Comment("Workflow agent whose budget backs every node"),
		field.Text("task").
			Optional().
			Comment("Caller-supplied task substituted into node templates"),
		field.Int("total_budget").
			Default(0).
			NonNegative(),
		field.Enum("status").
			Values("pending", "active", "paused", "completed", "failed", "terminated").
			Default("pending"),
		field.Enum("validation_status").
			Values("pending", "validated", "invalid").
			Default("pending"),
		field.JSON("validation_errors", []string{}).
			Optional(),
		field.String("termination_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WorkflowGraph.
func (WorkflowGraph) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("nodes", WorkflowNode.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkflowGraph.
func (WorkflowGraph) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("template_id"),
	}
}
