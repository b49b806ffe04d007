package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowNode holds the schema definition for one position in a workflow
// graph. A node materializes into an agent when every dependency node has
// completed; agent_id stays nil until then.
type WorkflowNode struct {
	ent.Schema
}

// Fields of the WorkflowNode.
func (WorkflowNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("workflow_graph_id").
			Immutable(),
		field.String("node_key").
			Immutable().
			Comment("Template node_id; dependency lists refer to these keys"),
		field.String("role"),
		field.Text("task_description"),
		field.Int("budget_allocation").
			NonNegative(),
		field.JSON("dependencies", []string{}).
			Optional(),
		field.Enum("execution_status").
			Values("pending", "ready", "spawning", "executing", "completed", "failed", "skipped").
			Default("pending"),
		field.String("agent_id").
			Optional().
			Nillable().
			Unique(),
		field.Text("result").
			Optional().
			Nillable(),
		field.Int("position").
			Default(0).
			Comment("Display order from the template"),
		field.String("error_message").
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

// Edges of the WorkflowNode.
func (WorkflowNode) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("graph", WorkflowGraph.Type).
			Ref("nodes").
			Field("workflow_graph_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowNode.
func (WorkflowNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_graph_id", "node_key").
			Unique(),
		index.Fields("workflow_graph_id", "execution_status"),
		index.Fields("agent_id"),
	}
}
