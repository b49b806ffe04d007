// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString},
		{Name: "task_description", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "executing", "completed", "failed", "terminated"}, Default: "pending"},
		{Name: "depth_level", Type: field.TypeInt, Default: 0},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3]},
			},
			{
				Name:    "agent_parent_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[5]},
			},
			{
				Name:    "agent_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3], AgentsColumns[8]},
			},
		},
	}
	// BudgetsColumns holds the columns for the "budgets" table.
	BudgetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "allocated", Type: field.TypeInt},
		{Name: "used", Type: field.TypeInt, Default: 0},
		{Name: "reserved", Type: field.TypeInt, Default: 0},
		{Name: "reclaimed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString, Unique: true},
	}
	// BudgetsTable holds the schema information for the "budgets" table.
	BudgetsTable = &schema.Table{
		Name:       "budgets",
		Columns:    BudgetsColumns,
		PrimaryKey: []*schema.Column{BudgetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "budgets_agents_budget",
				Columns:    []*schema.Column{BudgetsColumns[7]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "budget_agent_id",
				Unique:  false,
				Columns: []*schema.Column{BudgetsColumns[7]},
			},
		},
	}
	// HierarchiesColumns holds the columns for the "hierarchies" table.
	HierarchiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeString},
		{Name: "child_id", Type: field.TypeString},
	}
	// HierarchiesTable holds the schema information for the "hierarchies" table.
	HierarchiesTable = &schema.Table{
		Name:       "hierarchies",
		Columns:    HierarchiesColumns,
		PrimaryKey: []*schema.Column{HierarchiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hierarchies_agents_child_edges",
				Columns:    []*schema.Column{HierarchiesColumns[2]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "hierarchies_agents_parent_edges",
				Columns:    []*schema.Column{HierarchiesColumns[3]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "hierarchy_parent_id_child_id",
				Unique:  true,
				Columns: []*schema.Column{HierarchiesColumns[2], HierarchiesColumns[3]},
			},
			{
				Name:    "hierarchy_child_id",
				Unique:  false,
				Columns: []*schema.Column{HierarchiesColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sender_id", Type: field.TypeString, Nullable: true},
		{Name: "recipient_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "delivered", "processed", "failed"}, Default: "pending"},
		{Name: "thread_id", Type: field.TypeString, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_recipient_id_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2], MessagesColumns[5], MessagesColumns[4], MessagesColumns[8]},
			},
			{
				Name:    "message_thread_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[6]},
			},
		},
	}
	// WorkflowGraphsColumns holds the columns for the "workflow_graphs" table.
	WorkflowGraphsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "template_id", Type: field.TypeString, Nullable: true},
		{Name: "root_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "task", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "total_budget", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "paused", "completed", "failed", "terminated"}, Default: "pending"},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"pending", "validated", "invalid"}, Default: "pending"},
		{Name: "validation_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "termination_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkflowGraphsTable holds the schema information for the "workflow_graphs" table.
	WorkflowGraphsTable = &schema.Table{
		Name:       "workflow_graphs",
		Columns:    WorkflowGraphsColumns,
		PrimaryKey: []*schema.Column{WorkflowGraphsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowgraph_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowGraphsColumns[5]},
			},
			{
				Name:    "workflowgraph_template_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowGraphsColumns[1]},
			},
		},
	}
	// WorkflowNodesColumns holds the columns for the "workflow_nodes" table.
	WorkflowNodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "node_key", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "task_description", Type: field.TypeString, Size: 2147483647},
		{Name: "budget_allocation", Type: field.TypeInt},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "execution_status", Type: field.TypeEnum, Enums: []string{"pending", "ready", "spawning", "executing", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "agent_id", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workflow_graph_id", Type: field.TypeString},
	}
	// WorkflowNodesTable holds the schema information for the "workflow_nodes" table.
	WorkflowNodesTable = &schema.Table{
		Name:       "workflow_nodes",
		Columns:    WorkflowNodesColumns,
		PrimaryKey: []*schema.Column{WorkflowNodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_nodes_workflow_graphs_nodes",
				Columns:    []*schema.Column{WorkflowNodesColumns[13]},
				RefColumns: []*schema.Column{WorkflowGraphsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflownode_workflow_graph_id_node_key",
				Unique:  true,
				Columns: []*schema.Column{WorkflowNodesColumns[13], WorkflowNodesColumns[1]},
			},
			{
				Name:    "workflownode_workflow_graph_id_execution_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowNodesColumns[13], WorkflowNodesColumns[6]},
			},
			{
				Name:    "workflownode_agent_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowNodesColumns[7]},
			},
		},
	}
	// WorkflowTemplatesColumns holds the columns for the "workflow_templates" table.
	WorkflowTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "node_templates", Type: field.TypeJSON},
		{Name: "edge_patterns", Type: field.TypeJSON, Nullable: true},
		{Name: "min_budget", Type: field.TypeInt, Default: 0},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkflowTemplatesTable holds the schema information for the "workflow_templates" table.
	WorkflowTemplatesTable = &schema.Table{
		Name:       "workflow_templates",
		Columns:    WorkflowTemplatesColumns,
		PrimaryKey: []*schema.Column{WorkflowTemplatesColumns[0]},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "path", Type: field.TypeString, Unique: true},
		{Name: "branch_name", Type: field.TypeString, Unique: true},
		{Name: "base_commit", Type: field.TypeString},
		{Name: "isolation_status", Type: field.TypeEnum, Enums: []string{"active", "merged", "abandoned", "cleaned_up"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString, Unique: true},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workspaces_agents_workspace",
				Columns:    []*schema.Column{WorkspacesColumns[7]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workspace_isolation_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{WorkspacesColumns[4], WorkspacesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		BudgetsTable,
		HierarchiesTable,
		MessagesTable,
		WorkflowGraphsTable,
		WorkflowNodesTable,
		WorkflowTemplatesTable,
		WorkspacesTable,
	}
)

func init() {
	BudgetsTable.ForeignKeys[0].RefTable = AgentsTable
	HierarchiesTable.ForeignKeys[0].RefTable = AgentsTable
	HierarchiesTable.ForeignKeys[1].RefTable = AgentsTable
	WorkflowNodesTable.ForeignKeys[0].RefTable = WorkflowGraphsTable
	WorkspacesTable.ForeignKeys[0].RefTable = AgentsTable
}
