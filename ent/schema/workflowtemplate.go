package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/maestro-orch/maestro/pkg/models"
)

// WorkflowTemplate holds the schema definition for a reusable DAG
// definition. node_templates budget percentages sum to 100 and dependencies
// resolve to sibling node_ids — validated at create time, not by the store.
type WorkflowTemplate struct {
	ent.Schema
}

// Fields of the WorkflowTemplate.
func (WorkflowTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.JSON("node_templates", []models.NodeTemplate{}),
		field.JSON("edge_patterns", []models.EdgePattern{}).
			Optional(),
		field.Int("min_budget").
			Default(0).
			NonNegative(),
		field.Int("usage_count").
			Default(0).
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
