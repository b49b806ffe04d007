// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Budget is the predicate function for budget builders.
type Budget func(*sql.Selector)

// Hierarchy is the predicate function for hierarchy builders.
type Hierarchy func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// WorkflowGraph is the predicate function for workflowgraph builders.
type WorkflowGraph func(*sql.Selector)

// WorkflowNode is the predicate function for workflownode builders.
type WorkflowNode func(*sql.Selector)

// WorkflowTemplate is the predicate function for workflowtemplate builders.
type WorkflowTemplate func(*sql.Selector)

// Workspace is the predicate function for workspace builders.
type Workspace func(*sql.Selector)
