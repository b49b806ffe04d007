package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Hierarchy holds the schema definition for a parent→child relation edge.
// Denormalized from Agent.parent_id for efficient traversal queries; cycle
// checks are reachability walks over these rows.
type Hierarchy struct {
	ent.Schema
}

// Fields of the Hierarchy.
func (Hierarchy) Fields() []ent.Field {
	return []ent.Field{
		field.String("parent_id").
			Immutable(),
		field.String("child_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Hierarchy.
func (Hierarchy) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("parent", Agent.Type).
			Ref("child_edges").
			Field("parent_id").
			Unique().
			Required().
			Immutable(),
		edge.From("child", Agent.Type).
			Ref("parent_edges").
			Field("child_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Hierarchy.
func (Hierarchy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_id", "child_id").
			Unique(),
		index.Fields("child_id"),
	}
}
