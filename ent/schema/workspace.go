package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workspace holds the schema definition for a per-agent isolated filesystem
// workspace bound to a VCS branch (git worktree).
type Workspace struct {
	ent.Schema
}

// Fields of the Workspace.
func (Workspace) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_id").
			Unique().
			Immutable(),
		field.String("path").
			Unique().
			Immutable(),
		field.String("branch_name").
			Unique().
			Immutable(),
		field.String("base_commit").
			Immutable().
			Comment("HEAD at creation time; diffs are taken against this"),
		field.Enum("isolation_status").
			Values("active", "merged", "abandoned", "cleaned_up").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Workspace.
func (Workspace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("workspace").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Workspace.
func (Workspace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("isolation_status", "updated_at"),
	}
}
