// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/budget"
	"github.com/maestro-orch/maestro/ent/hierarchy"
	"github.com/maestro-orch/maestro/ent/message"
	"github.com/maestro-orch/maestro/ent/predicate"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
	"github.com/maestro-orch/maestro/ent/workflownode"
	"github.com/maestro-orch/maestro/ent/workflowtemplate"
	"github.com/maestro-orch/maestro/ent/workspace"
	"github.com/maestro-orch/maestro/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent            = "Agent"
	TypeBudget           = "Budget"
	TypeHierarchy        = "Hierarchy"
	TypeMessage          = "Message"
	TypeWorkflowGraph    = "WorkflowGraph"
	TypeWorkflowNode     = "WorkflowNode"
	TypeWorkflowTemplate = "WorkflowTemplate"
	TypeWorkspace        = "Workspace"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	role                *string
	task_description    *string
	status              *agent.Status
	depth_level         *int
	adddepth_level      *int
	parent_id           *string
	result              *string
	error_message       *string
	created_at          *time.Time
	updated_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	budget              *int
	clearedbudget       bool
	workspace           *int
	clearedworkspace    bool
	child_edges         map[int]struct{}
	removedchild_edges  map[int]struct{}
	clearedchild_edges  bool
	parent_edges        map[int]struct{}
	removedparent_edges map[int]struct{}
	clearedparent_edges bool
	done                bool
	oldValue            func(context.Context) (*Agent, error)
	predicates          []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRole sets the "role" field.
func (m *AgentMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AgentMutation) ResetRole() {
	m.role = nil
}

// SetTaskDescription sets the "task_description" field.
func (m *AgentMutation) SetTaskDescription(s string) {
	m.task_description = &s
}

// TaskDescription returns the value of the "task_description" field in the mutation.
func (m *AgentMutation) TaskDescription() (r string, exists bool) {
	v := m.task_description
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskDescription returns the old "task_description" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTaskDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskDescription: %w", err)
	}
	return oldValue.TaskDescription, nil
}

// ResetTaskDescription resets all changes to the "task_description" field.
func (m *AgentMutation) ResetTaskDescription() {
	m.task_description = nil
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetDepthLevel sets the "depth_level" field.
func (m *AgentMutation) SetDepthLevel(i int) {
	m.depth_level = &i
	m.adddepth_level = nil
}

// DepthLevel returns the value of the "depth_level" field in the mutation.
func (m *AgentMutation) DepthLevel() (r int, exists bool) {
	v := m.depth_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDepthLevel returns the old "depth_level" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDepthLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepthLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepthLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepthLevel: %w", err)
	}
	return oldValue.DepthLevel, nil
}

// AddDepthLevel adds i to the "depth_level" field.
func (m *AgentMutation) AddDepthLevel(i int) {
	if m.adddepth_level != nil {
		*m.adddepth_level += i
	} else {
		m.adddepth_level = &i
	}
}

// AddedDepthLevel returns the value that was added to the "depth_level" field in this mutation.
func (m *AgentMutation) AddedDepthLevel() (r int, exists bool) {
	v := m.adddepth_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepthLevel resets all changes to the "depth_level" field.
func (m *AgentMutation) ResetDepthLevel() {
	m.depth_level = nil
	m.adddepth_level = nil
}

// SetParentID sets the "parent_id" field.
func (m *AgentMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *AgentMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *AgentMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[agent.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *AgentMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *AgentMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, agent.FieldParentID)
}

// SetResult sets the "result" field.
func (m *AgentMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *AgentMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *AgentMutation) ClearResult() {
	m.result = nil
	m.clearedFields[agent.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *AgentMutation) ResultCleared() bool {
	_, ok := m.clearedFields[agent.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *AgentMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, agent.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agent.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agent.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agent.FieldCompletedAt)
}

// SetBudgetID sets the "budget" edge to the Budget entity by id.
func (m *AgentMutation) SetBudgetID(id int) {
	m.budget = &id
}

// ClearBudget clears the "budget" edge to the Budget entity.
func (m *AgentMutation) ClearBudget() {
	m.clearedbudget = true
}

// BudgetCleared reports if the "budget" edge to the Budget entity was cleared.
func (m *AgentMutation) BudgetCleared() bool {
	return m.clearedbudget
}

// BudgetID returns the "budget" edge ID in the mutation.
func (m *AgentMutation) BudgetID() (id int, exists bool) {
	if m.budget != nil {
		return *m.budget, true
	}
	return
}

// BudgetIDs returns the "budget" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BudgetID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) BudgetIDs() (ids []int) {
	if id := m.budget; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBudget resets all changes to the "budget" edge.
func (m *AgentMutation) ResetBudget() {
	m.budget = nil
	m.clearedbudget = false
}

// SetWorkspaceID sets the "workspace" edge to the Workspace entity by id.
func (m *AgentMutation) SetWorkspaceID(id int) {
	m.workspace = &id
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *AgentMutation) ClearWorkspace() {
	m.clearedworkspace = true
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *AgentMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceID returns the "workspace" edge ID in the mutation.
func (m *AgentMutation) WorkspaceID() (id int, exists bool) {
	if m.workspace != nil {
		return *m.workspace, true
	}
	return
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *AgentMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// AddChildEdgeIDs adds the "child_edges" edge to the Hierarchy entity by ids.
func (m *AgentMutation) AddChildEdgeIDs(ids ...int) {
	if m.child_edges == nil {
		m.child_edges = make(map[int]struct{})
	}
	for i := range ids {
		m.child_edges[ids[i]] = struct{}{}
	}
}

// ClearChildEdges clears the "child_edges" edge to the Hierarchy entity.
func (m *AgentMutation) ClearChildEdges() {
	m.clearedchild_edges = true
}

// ChildEdgesCleared reports if the "child_edges" edge to the Hierarchy entity was cleared.
func (m *AgentMutation) ChildEdgesCleared() bool {
	return m.clearedchild_edges
}

// RemoveChildEdgeIDs removes the "child_edges" edge to the Hierarchy entity by IDs.
func (m *AgentMutation) RemoveChildEdgeIDs(ids ...int) {
	if m.removedchild_edges == nil {
		m.removedchild_edges = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.child_edges, ids[i])
		m.removedchild_edges[ids[i]] = struct{}{}
	}
}

// RemovedChildEdges returns the removed IDs of the "child_edges" edge to the Hierarchy entity.
func (m *AgentMutation) RemovedChildEdgesIDs() (ids []int) {
	for id := range m.removedchild_edges {
		ids = append(ids, id)
	}
	return
}

// ChildEdgesIDs returns the "child_edges" edge IDs in the mutation.
func (m *AgentMutation) ChildEdgesIDs() (ids []int) {
	for id := range m.child_edges {
		ids = append(ids, id)
	}
	return
}

// ResetChildEdges resets all changes to the "child_edges" edge.
func (m *AgentMutation) ResetChildEdges() {
	m.child_edges = nil
	m.clearedchild_edges = false
	m.removedchild_edges = nil
}

// AddParentEdgeIDs adds the "parent_edges" edge to the Hierarchy entity by ids.
func (m *AgentMutation) AddParentEdgeIDs(ids ...int) {
	if m.parent_edges == nil {
		m.parent_edges = make(map[int]struct{})
	}
	for i := range ids {
		m.parent_edges[ids[i]] = struct{}{}
	}
}

// ClearParentEdges clears the "parent_edges" edge to the Hierarchy entity.
func (m *AgentMutation) ClearParentEdges() {
	m.clearedparent_edges = true
}

// ParentEdgesCleared reports if the "parent_edges" edge to the Hierarchy entity was cleared.
func (m *AgentMutation) ParentEdgesCleared() bool {
	return m.clearedparent_edges
}

// RemoveParentEdgeIDs removes the "parent_edges" edge to the Hierarchy entity by IDs.
func (m *AgentMutation) RemoveParentEdgeIDs(ids ...int) {
	if m.removedparent_edges == nil {
		m.removedparent_edges = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.parent_edges, ids[i])
		m.removedparent_edges[ids[i]] = struct{}{}
	}
}

// RemovedParentEdges returns the removed IDs of the "parent_edges" edge to the Hierarchy entity.
func (m *AgentMutation) RemovedParentEdgesIDs() (ids []int) {
	for id := range m.removedparent_edges {
		ids = append(ids, id)
	}
	return
}

// ParentEdgesIDs returns the "parent_edges" edge IDs in the mutation.
func (m *AgentMutation) ParentEdgesIDs() (ids []int) {
	for id := range m.parent_edges {
		ids = append(ids, id)
	}
	return
}

// ResetParentEdges resets all changes to the "parent_edges" edge.
func (m *AgentMutation) ResetParentEdges() {
	m.parent_edges = nil
	m.clearedparent_edges = false
	m.removedparent_edges = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.role != nil {
		fields = append(fields, agent.FieldRole)
	}
	if m.task_description != nil {
		fields = append(fields, agent.FieldTaskDescription)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.depth_level != nil {
		fields = append(fields, agent.FieldDepthLevel)
	}
	if m.parent_id != nil {
		fields = append(fields, agent.FieldParentID)
	}
	if m.result != nil {
		fields = append(fields, agent.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, agent.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agent.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldRole:
		return m.Role()
	case agent.FieldTaskDescription:
		return m.TaskDescription()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldDepthLevel:
		return m.DepthLevel()
	case agent.FieldParentID:
		return m.ParentID()
	case agent.FieldResult:
		return m.Result()
	case agent.FieldErrorMessage:
		return m.ErrorMessage()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	case agent.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldRole:
		return m.OldRole(ctx)
	case agent.FieldTaskDescription:
		return m.OldTaskDescription(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldDepthLevel:
		return m.OldDepthLevel(ctx)
	case agent.FieldParentID:
		return m.OldParentID(ctx)
	case agent.FieldResult:
		return m.OldResult(ctx)
	case agent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case agent.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agent.FieldTaskDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskDescription(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldDepthLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepthLevel(v)
		return nil
	case agent.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case agent.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case agent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case agent.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.adddepth_level != nil {
		fields = append(fields, agent.FieldDepthLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldDepthLevel:
		return m.AddedDepthLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldDepthLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepthLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldParentID) {
		fields = append(fields, agent.FieldParentID)
	}
	if m.FieldCleared(agent.FieldResult) {
		fields = append(fields, agent.FieldResult)
	}
	if m.FieldCleared(agent.FieldErrorMessage) {
		fields = append(fields, agent.FieldErrorMessage)
	}
	if m.FieldCleared(agent.FieldCompletedAt) {
		fields = append(fields, agent.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldParentID:
		m.ClearParentID()
		return nil
	case agent.FieldResult:
		m.ClearResult()
		return nil
	case agent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agent.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldRole:
		m.ResetRole()
		return nil
	case agent.FieldTaskDescription:
		m.ResetTaskDescription()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldDepthLevel:
		m.ResetDepthLevel()
		return nil
	case agent.FieldParentID:
		m.ResetParentID()
		return nil
	case agent.FieldResult:
		m.ResetResult()
		return nil
	case agent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case agent.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.budget != nil {
		edges = append(edges, agent.EdgeBudget)
	}
	if m.workspace != nil {
		edges = append(edges, agent.EdgeWorkspace)
	}
	if m.child_edges != nil {
		edges = append(edges, agent.EdgeChildEdges)
	}
	if m.parent_edges != nil {
		edges = append(edges, agent.EdgeParentEdges)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeBudget:
		if id := m.budget; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgeChildEdges:
		ids := make([]ent.Value, 0, len(m.child_edges))
		for id := range m.child_edges {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeParentEdges:
		ids := make([]ent.Value, 0, len(m.parent_edges))
		for id := range m.parent_edges {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedchild_edges != nil {
		edges = append(edges, agent.EdgeChildEdges)
	}
	if m.removedparent_edges != nil {
		edges = append(edges, agent.EdgeParentEdges)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeChildEdges:
		ids := make([]ent.Value, 0, len(m.removedchild_edges))
		for id := range m.removedchild_edges {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeParentEdges:
		ids := make([]ent.Value, 0, len(m.removedparent_edges))
		for id := range m.removedparent_edges {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedbudget {
		edges = append(edges, agent.EdgeBudget)
	}
	if m.clearedworkspace {
		edges = append(edges, agent.EdgeWorkspace)
	}
	if m.clearedchild_edges {
		edges = append(edges, agent.EdgeChildEdges)
	}
	if m.clearedparent_edges {
		edges = append(edges, agent.EdgeParentEdges)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeBudget:
		return m.clearedbudget
	case agent.EdgeWorkspace:
		return m.clearedworkspace
	case agent.EdgeChildEdges:
		return m.clearedchild_edges
	case agent.EdgeParentEdges:
		return m.clearedparent_edges
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeBudget:
		m.ClearBudget()
		return nil
	case agent.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeBudget:
		m.ResetBudget()
		return nil
	case agent.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case agent.EdgeChildEdges:
		m.ResetChildEdges()
		return nil
	case agent.EdgeParentEdges:
		m.ResetParentEdges()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// BudgetMutation represents an operation that mutates the Budget nodes in the graph.
type BudgetMutation struct {
	config
	op            Op
	typ           string
	id            *int
	allocated     *int
	addallocated  *int
	used          *int
	addused       *int
	reserved      *int
	addreserved   *int
	reclaimed     *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	agent         *string
	clearedagent  bool
	done          bool
	oldValue      func(context.Context) (*Budget, error)
	predicates    []predicate.Budget
}

var _ ent.Mutation = (*BudgetMutation)(nil)

// budgetOption allows management of the mutation configuration using functional options.
type budgetOption func(*BudgetMutation)

// newBudgetMutation creates new mutation for the Budget entity.
func newBudgetMutation(c config, op Op, opts ...budgetOption) *BudgetMutation {
	m := &BudgetMutation{
		config:        c,
		op:            op,
		typ:           TypeBudget,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBudgetID sets the ID field of the mutation.
func withBudgetID(id int) budgetOption {
	return func(m *BudgetMutation) {
		var (
			err   error
			once  sync.Once
			value *Budget
		)
		m.oldValue = func(ctx context.Context) (*Budget, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Budget.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBudget sets the old Budget of the mutation.
func withBudget(node *Budget) budgetOption {
	return func(m *BudgetMutation) {
		m.oldValue = func(context.Context) (*Budget, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BudgetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BudgetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BudgetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BudgetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Budget.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *BudgetMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *BudgetMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *BudgetMutation) ResetAgentID() {
	m.agent = nil
}

// SetAllocated sets the "allocated" field.
func (m *BudgetMutation) SetAllocated(i int) {
	m.allocated = &i
	m.addallocated = nil
}

// Allocated returns the value of the "allocated" field in the mutation.
func (m *BudgetMutation) Allocated() (r int, exists bool) {
	v := m.allocated
	if v == nil {
		return
	}
	return *v, true
}

// OldAllocated returns the old "allocated" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldAllocated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllocated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllocated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllocated: %w", err)
	}
	return oldValue.Allocated, nil
}

// AddAllocated adds i to the "allocated" field.
func (m *BudgetMutation) AddAllocated(i int) {
	if m.addallocated != nil {
		*m.addallocated += i
	} else {
		m.addallocated = &i
	}
}

// AddedAllocated returns the value that was added to the "allocated" field in this mutation.
func (m *BudgetMutation) AddedAllocated() (r int, exists bool) {
	v := m.addallocated
	if v == nil {
		return
	}
	return *v, true
}

// ResetAllocated resets all changes to the "allocated" field.
func (m *BudgetMutation) ResetAllocated() {
	m.allocated = nil
	m.addallocated = nil
}

// SetUsed sets the "used" field.
func (m *BudgetMutation) SetUsed(i int) {
	m.used = &i
	m.addused = nil
}

// Used returns the value of the "used" field in the mutation.
func (m *BudgetMutation) Used() (r int, exists bool) {
	v := m.used
	if v == nil {
		return
	}
	return *v, true
}

// OldUsed returns the old "used" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsed: %w", err)
	}
	return oldValue.Used, nil
}

// AddUsed adds i to the "used" field.
func (m *BudgetMutation) AddUsed(i int) {
	if m.addused != nil {
		*m.addused += i
	} else {
		m.addused = &i
	}
}

// AddedUsed returns the value that was added to the "used" field in this mutation.
func (m *BudgetMutation) AddedUsed() (r int, exists bool) {
	v := m.addused
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsed resets all changes to the "used" field.
func (m *BudgetMutation) ResetUsed() {
	m.used = nil
	m.addused = nil
}

// SetReserved sets the "reserved" field.
func (m *BudgetMutation) SetReserved(i int) {
	m.reserved = &i
	m.addreserved = nil
}

// Reserved returns the value of the "reserved" field in the mutation.
func (m *BudgetMutation) Reserved() (r int, exists bool) {
	v := m.reserved
	if v == nil {
		return
	}
	return *v, true
}

// OldReserved returns the old "reserved" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldReserved(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReserved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReserved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReserved: %w", err)
	}
	return oldValue.Reserved, nil
}

// AddReserved adds i to the "reserved" field.
func (m *BudgetMutation) AddReserved(i int) {
	if m.addreserved != nil {
		*m.addreserved += i
	} else {
		m.addreserved = &i
	}
}

// AddedReserved returns the value that was added to the "reserved" field in this mutation.
func (m *BudgetMutation) AddedReserved() (r int, exists bool) {
	v := m.addreserved
	if v == nil {
		return
	}
	return *v, true
}

// ResetReserved resets all changes to the "reserved" field.
func (m *BudgetMutation) ResetReserved() {
	m.reserved = nil
	m.addreserved = nil
}

// SetReclaimed sets the "reclaimed" field.
func (m *BudgetMutation) SetReclaimed(b bool) {
	m.reclaimed = &b
}

// Reclaimed returns the value of the "reclaimed" field in the mutation.
func (m *BudgetMutation) Reclaimed() (r bool, exists bool) {
	v := m.reclaimed
	if v == nil {
		return
	}
	return *v, true
}

// OldReclaimed returns the old "reclaimed" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldReclaimed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReclaimed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReclaimed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReclaimed: %w", err)
	}
	return oldValue.Reclaimed, nil
}

// ResetReclaimed resets all changes to the "reclaimed" field.
func (m *BudgetMutation) ResetReclaimed() {
	m.reclaimed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BudgetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BudgetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BudgetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BudgetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BudgetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BudgetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *BudgetMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[budget.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *BudgetMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *BudgetMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *BudgetMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the BudgetMutation builder.
func (m *BudgetMutation) Where(ps ...predicate.Budget) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BudgetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BudgetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Budget, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BudgetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BudgetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Budget).
func (m *BudgetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BudgetMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.agent != nil {
		fields = append(fields, budget.FieldAgentID)
	}
	if m.allocated != nil {
		fields = append(fields, budget.FieldAllocated)
	}
	if m.used != nil {
		fields = append(fields, budget.FieldUsed)
	}
	if m.reserved != nil {
		fields = append(fields, budget.FieldReserved)
	}
	if m.reclaimed != nil {
		fields = append(fields, budget.FieldReclaimed)
	}
	if m.created_at != nil {
		fields = append(fields, budget.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, budget.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BudgetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case budget.FieldAgentID:
		return m.AgentID()
	case budget.FieldAllocated:
		return m.Allocated()
	case budget.FieldUsed:
		return m.Used()
	case budget.FieldReserved:
		return m.Reserved()
	case budget.FieldReclaimed:
		return m.Reclaimed()
	case budget.FieldCreatedAt:
		return m.CreatedAt()
	case budget.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BudgetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case budget.FieldAgentID:
		return m.OldAgentID(ctx)
	case budget.FieldAllocated:
		return m.OldAllocated(ctx)
	case budget.FieldUsed:
		return m.OldUsed(ctx)
	case budget.FieldReserved:
		return m.OldReserved(ctx)
	case budget.FieldReclaimed:
		return m.OldReclaimed(ctx)
	case budget.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case budget.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Budget field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case budget.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case budget.FieldAllocated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllocated(v)
		return nil
	case budget.FieldUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsed(v)
		return nil
	case budget.FieldReserved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReserved(v)
		return nil
	case budget.FieldReclaimed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReclaimed(v)
		return nil
	case budget.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case budget.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Budget field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BudgetMutation) AddedFields() []string {
	var fields []string
	if m.addallocated != nil {
		fields = append(fields, budget.FieldAllocated)
	}
	if m.addused != nil {
		fields = append(fields, budget.FieldUsed)
	}
	if m.addreserved != nil {
		fields = append(fields, budget.FieldReserved)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BudgetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case budget.FieldAllocated:
		return m.AddedAllocated()
	case budget.FieldUsed:
		return m.AddedUsed()
	case budget.FieldReserved:
		return m.AddedReserved()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case budget.FieldAllocated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAllocated(v)
		return nil
	case budget.FieldUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsed(v)
		return nil
	case budget.FieldReserved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReserved(v)
		return nil
	}
	return fmt.Errorf("unknown Budget numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BudgetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BudgetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BudgetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Budget nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BudgetMutation) ResetField(name string) error {
	switch name {
	case budget.FieldAgentID:
		m.ResetAgentID()
		return nil
	case budget.FieldAllocated:
		m.ResetAllocated()
		return nil
	case budget.FieldUsed:
		m.ResetUsed()
		return nil
	case budget.FieldReserved:
		m.ResetReserved()
		return nil
	case budget.FieldReclaimed:
		m.ResetReclaimed()
		return nil
	case budget.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case budget.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Budget field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BudgetMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, budget.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BudgetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case budget.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BudgetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BudgetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BudgetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, budget.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BudgetMutation) EdgeCleared(name string) bool {
	switch name {
	case budget.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BudgetMutation) ClearEdge(name string) error {
	switch name {
	case budget.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Budget unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BudgetMutation) ResetEdge(name string) error {
	switch name {
	case budget.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown Budget edge %s", name)
}

// HierarchyMutation represents an operation that mutates the Hierarchy nodes in the graph.
type HierarchyMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	parent        *string
	clearedparent bool
	child         *string
	clearedchild  bool
	done          bool
	oldValue      func(context.Context) (*Hierarchy, error)
	predicates    []predicate.Hierarchy
}

var _ ent.Mutation = (*HierarchyMutation)(nil)

// hierarchyOption allows management of the mutation configuration using functional options.
type hierarchyOption func(*HierarchyMutation)

// newHierarchyMutation creates new mutation for the Hierarchy entity.
func newHierarchyMutation(c config, op Op, opts ...hierarchyOption) *HierarchyMutation {
	m := &HierarchyMutation{
		config:        c,
		op:            op,
		typ:           TypeHierarchy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHierarchyID sets the ID field of the mutation.
func withHierarchyID(id int) hierarchyOption {
	return func(m *HierarchyMutation) {
		var (
			err   error
			once  sync.Once
			value *Hierarchy
		)
		m.oldValue = func(ctx context.Context) (*Hierarchy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Hierarchy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHierarchy sets the old Hierarchy of the mutation.
func withHierarchy(node *Hierarchy) hierarchyOption {
	return func(m *HierarchyMutation) {
		m.oldValue = func(context.Context) (*Hierarchy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HierarchyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HierarchyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HierarchyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HierarchyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Hierarchy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParentID sets the "parent_id" field.
func (m *HierarchyMutation) SetParentID(s string) {
	m.parent = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *HierarchyMutation) ParentID() (r string, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Hierarchy entity.
// If the Hierarchy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HierarchyMutation) OldParentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *HierarchyMutation) ResetParentID() {
	m.parent = nil
}

// SetChildID sets the "child_id" field.
func (m *HierarchyMutation) SetChildID(s string) {
	m.child = &s
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *HierarchyMutation) ChildID() (r string, exists bool) {
	v := m.child
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the Hierarchy entity.
// If the Hierarchy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HierarchyMutation) OldChildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *HierarchyMutation) ResetChildID() {
	m.child = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *HierarchyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HierarchyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Hierarchy entity.
// If the Hierarchy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HierarchyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HierarchyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearParent clears the "parent" edge to the Agent entity.
func (m *HierarchyMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[hierarchy.FieldParentID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Agent entity was cleared.
func (m *HierarchyMutation) ParentCleared() bool {
	return m.clearedparent
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *HierarchyMutation) ParentIDs() (ids []string) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *HierarchyMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// ClearChild clears the "child" edge to the Agent entity.
func (m *HierarchyMutation) ClearChild() {
	m.clearedchild = true
	m.clearedFields[hierarchy.FieldChildID] = struct{}{}
}

// ChildCleared reports if the "child" edge to the Agent entity was cleared.
func (m *HierarchyMutation) ChildCleared() bool {
	return m.clearedchild
}

// ChildIDs returns the "child" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChildID instead. It exists only for internal usage by the builders.
func (m *HierarchyMutation) ChildIDs() (ids []string) {
	if id := m.child; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChild resets all changes to the "child" edge.
func (m *HierarchyMutation) ResetChild() {
	m.child = nil
	m.clearedchild = false
}

// Where appends a list predicates to the HierarchyMutation builder.
func (m *HierarchyMutation) Where(ps ...predicate.Hierarchy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HierarchyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HierarchyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Hierarchy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HierarchyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HierarchyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Hierarchy).
func (m *HierarchyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HierarchyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.parent != nil {
		fields = append(fields, hierarchy.FieldParentID)
	}
	if m.child != nil {
		fields = append(fields, hierarchy.FieldChildID)
	}
	if m.created_at != nil {
		fields = append(fields, hierarchy.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HierarchyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hierarchy.FieldParentID:
		return m.ParentID()
	case hierarchy.FieldChildID:
		return m.ChildID()
	case hierarchy.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HierarchyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hierarchy.FieldParentID:
		return m.OldParentID(ctx)
	case hierarchy.FieldChildID:
		return m.OldChildID(ctx)
	case hierarchy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Hierarchy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HierarchyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hierarchy.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case hierarchy.FieldChildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case hierarchy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Hierarchy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HierarchyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HierarchyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HierarchyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Hierarchy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HierarchyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HierarchyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HierarchyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Hierarchy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HierarchyMutation) ResetField(name string) error {
	switch name {
	case hierarchy.FieldParentID:
		m.ResetParentID()
		return nil
	case hierarchy.FieldChildID:
		m.ResetChildID()
		return nil
	case hierarchy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Hierarchy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HierarchyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.parent != nil {
		edges = append(edges, hierarchy.EdgeParent)
	}
	if m.child != nil {
		edges = append(edges, hierarchy.EdgeChild)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HierarchyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case hierarchy.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case hierarchy.EdgeChild:
		if id := m.child; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HierarchyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HierarchyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HierarchyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedparent {
		edges = append(edges, hierarchy.EdgeParent)
	}
	if m.clearedchild {
		edges = append(edges, hierarchy.EdgeChild)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HierarchyMutation) EdgeCleared(name string) bool {
	switch name {
	case hierarchy.EdgeParent:
		return m.clearedparent
	case hierarchy.EdgeChild:
		return m.clearedchild
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HierarchyMutation) ClearEdge(name string) error {
	switch name {
	case hierarchy.EdgeParent:
		m.ClearParent()
		return nil
	case hierarchy.EdgeChild:
		m.ClearChild()
		return nil
	}
	return fmt.Errorf("unknown Hierarchy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HierarchyMutation) ResetEdge(name string) error {
	switch name {
	case hierarchy.EdgeParent:
		m.ResetParent()
		return nil
	case hierarchy.EdgeChild:
		m.ResetChild()
		return nil
	}
	return fmt.Errorf("unknown Hierarchy edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sender_id      *string
	recipient_id   *string
	payload        *[]byte
	priority       *int
	addpriority    *int
	status         *message.Status
	thread_id      *string
	failure_reason *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Message, error)
	predicates     []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id int) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSenderID sets the "sender_id" field.
func (m *MessageMutation) SetSenderID(s string) {
	m.sender_id = &s
}

// SenderID returns the value of the "sender_id" field in the mutation.
func (m *MessageMutation) SenderID() (r string, exists bool) {
	v := m.sender_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderID returns the old "sender_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderID: %w", err)
	}
	return oldValue.SenderID, nil
}

// ClearSenderID clears the value of the "sender_id" field.
func (m *MessageMutation) ClearSenderID() {
	m.sender_id = nil
	m.clearedFields[message.FieldSenderID] = struct{}{}
}

// SenderIDCleared returns if the "sender_id" field was cleared in this mutation.
func (m *MessageMutation) SenderIDCleared() bool {
	_, ok := m.clearedFields[message.FieldSenderID]
	return ok
}

// ResetSenderID resets all changes to the "sender_id" field.
func (m *MessageMutation) ResetSenderID() {
	m.sender_id = nil
	delete(m.clearedFields, message.FieldSenderID)
}

// SetRecipientID sets the "recipient_id" field.
func (m *MessageMutation) SetRecipientID(s string) {
	m.recipient_id = &s
}

// RecipientID returns the value of the "recipient_id" field in the mutation.
func (m *MessageMutation) RecipientID() (r string, exists bool) {
	v := m.recipient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientID returns the old "recipient_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRecipientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientID: %w", err)
	}
	return oldValue.RecipientID, nil
}

// ResetRecipientID resets all changes to the "recipient_id" field.
func (m *MessageMutation) ResetRecipientID() {
	m.recipient_id = nil
}

// SetPayload sets the "payload" field.
func (m *MessageMutation) SetPayload(b []byte) {
	m.payload = &b
}

// Payload returns the value of the "payload" field in the mutation.
func (m *MessageMutation) Payload() (r []byte, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldPayload(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *MessageMutation) ResetPayload() {
	m.payload = nil
}

// SetPriority sets the "priority" field.
func (m *MessageMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *MessageMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *MessageMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *MessageMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *MessageMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *MessageMutation) SetStatus(value message.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MessageMutation) Status() (r message.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldStatus(ctx context.Context) (v message.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MessageMutation) ResetStatus() {
	m.status = nil
}

// SetThreadID sets the "thread_id" field.
func (m *MessageMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *MessageMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldThreadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ClearThreadID clears the value of the "thread_id" field.
func (m *MessageMutation) ClearThreadID() {
	m.thread_id = nil
	m.clearedFields[message.FieldThreadID] = struct{}{}
}

// ThreadIDCleared returns if the "thread_id" field was cleared in this mutation.
func (m *MessageMutation) ThreadIDCleared() bool {
	_, ok := m.clearedFields[message.FieldThreadID]
	return ok
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *MessageMutation) ResetThreadID() {
	m.thread_id = nil
	delete(m.clearedFields, message.FieldThreadID)
}

// SetFailureReason sets the "failure_reason" field.
func (m *MessageMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *MessageMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *MessageMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[message.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *MessageMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[message.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *MessageMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, message.FieldFailureReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sender_id != nil {
		fields = append(fields, message.FieldSenderID)
	}
	if m.recipient_id != nil {
		fields = append(fields, message.FieldRecipientID)
	}
	if m.payload != nil {
		fields = append(fields, message.FieldPayload)
	}
	if m.priority != nil {
		fields = append(fields, message.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, message.FieldStatus)
	}
	if m.thread_id != nil {
		fields = append(fields, message.FieldThreadID)
	}
	if m.failure_reason != nil {
		fields = append(fields, message.FieldFailureReason)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSenderID:
		return m.SenderID()
	case message.FieldRecipientID:
		return m.RecipientID()
	case message.FieldPayload:
		return m.Payload()
	case message.FieldPriority:
		return m.Priority()
	case message.FieldStatus:
		return m.Status()
	case message.FieldThreadID:
		return m.ThreadID()
	case message.FieldFailureReason:
		return m.FailureReason()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldSenderID:
		return m.OldSenderID(ctx)
	case message.FieldRecipientID:
		return m.OldRecipientID(ctx)
	case message.FieldPayload:
		return m.OldPayload(ctx)
	case message.FieldPriority:
		return m.OldPriority(ctx)
	case message.FieldStatus:
		return m.OldStatus(ctx)
	case message.FieldThreadID:
		return m.OldThreadID(ctx)
	case message.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldSenderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderID(v)
		return nil
	case message.FieldRecipientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientID(v)
		return nil
	case message.FieldPayload:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case message.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case message.FieldStatus:
		v, ok := value.(message.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case message.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case message.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, message.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldSenderID) {
		fields = append(fields, message.FieldSenderID)
	}
	if m.FieldCleared(message.FieldThreadID) {
		fields = append(fields, message.FieldThreadID)
	}
	if m.FieldCleared(message.FieldFailureReason) {
		fields = append(fields, message.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldSenderID:
		m.ClearSenderID()
		return nil
	case message.FieldThreadID:
		m.ClearThreadID()
		return nil
	case message.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldSenderID:
		m.ResetSenderID()
		return nil
	case message.FieldRecipientID:
		m.ResetRecipientID()
		return nil
	case message.FieldPayload:
		m.ResetPayload()
		return nil
	case message.FieldPriority:
		m.ResetPriority()
		return nil
	case message.FieldStatus:
		m.ResetStatus()
		return nil
	case message.FieldThreadID:
		m.ResetThreadID()
		return nil
	case message.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Message edge %s", name)
}

// WorkflowGraphMutation represents an operation that mutates the WorkflowGraph nodes in the graph.
type WorkflowGraphMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	template_id             *string
	root_agent_id           *string
	task                    *string
	total_budget            *int
	addtotal_budget         *int
	status                  *workflowgraph.Status
	validation_status       *workflowgraph.ValidationStatus
	validation_errors       *[]string
	appendvalidation_errors []string
	termination_reason      *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	nodes                   map[string]struct{}
	removednodes            map[string]struct{}
	clearednodes            bool
	done                    bool
	oldValue                func(context.Context) (*WorkflowGraph, error)
	predicates              []predicate.WorkflowGraph
}

var _ ent.Mutation = (*WorkflowGraphMutation)(nil)

// workflowgraphOption allows management of the mutation configuration using functional options.
type workflowgraphOption func(*WorkflowGraphMutation)

// newWorkflowGraphMutation creates new mutation for the WorkflowGraph entity.
func newWorkflowGraphMutation(c config, op Op, opts ...workflowgraphOption) *WorkflowGraphMutation {
	m := &WorkflowGraphMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowGraph,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowGraphID sets the ID field of the mutation.
func withWorkflowGraphID(id string) workflowgraphOption {
	return func(m *WorkflowGraphMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowGraph
		)
		m.oldValue = func(ctx context.Context) (*WorkflowGraph, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowGraph.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowGraph sets the old WorkflowGraph of the mutation.
func withWorkflowGraph(node *WorkflowGraph) workflowgraphOption {
	return func(m *WorkflowGraphMutation) {
		m.oldValue = func(context.Context) (*WorkflowGraph, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowGraphMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowGraphMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowGraph entities.
func (m *WorkflowGraphMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowGraphMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowGraphMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowGraph.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTemplateID sets the "template_id" field.
func (m *WorkflowGraphMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *WorkflowGraphMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the WorkflowGraph entity.
// If the WorkflowGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowGraphMutation) OldTemplateID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *WorkflowGraphMutation) ClearTemplateID() {
	m.template_id = nil
	m.clearedFields[workflowgraph.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *WorkflowGraphMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[workflowgraph.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *WorkflowGraphMutation) ResetTemplateID() {
	m.template_id = nil
	delete(m.clearedFields, workflowgraph.FieldTemplateID)
}

// SetRootAgentID sets the "root_agent_id" field.
func (m *WorkflowGraphMutation) SetRootAgentID(s string) {
	m.root_agent_id = &s
}

// RootAgentID returns the value of the "root_agent_id" field in the mutation.
func (m *WorkflowGraphMutation) RootAgentID() (r string, exists bool) {
	v := m.root_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRootAgentID returns the old "root_agent_id" field's value of the WorkflowGraph entity.
// If the WorkflowGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowGraphMutation) OldRootAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootAgentID: %w", err)
	}
	return oldValue.RootAgentID, nil
}

// ClearRootAgentID clears the value of the "root_agent_id" field.
func (m *WorkflowGraphMutation) ClearRootAgentID() {
	m.root_agent_id = nil
	m.clearedFields[workflowgraph.FieldRootAgentID] = struct{}{}
}

// RootAgentIDCleared returns if the "root_agent_id" field was cleared in this mutation.
func (m *WorkflowGraphMutation) RootAgentIDCleared() bool {
	_, ok := m.clearedFields[workflowgraph.FieldRootAgentID]
	return ok
}

// ResetRootAgentID resets all changes to the "root_agent_id" field.
func (m *WorkflowGraphMutation) ResetRootAgentID() {
	m.root_agent_id = nil
	delete(m.clearedFields, workflowgraph.FieldRootAgentID)
}

// SetTask sets the "task" field.
func (m *WorkflowGraphMutation) SetTask(s string) {
	m.task = &s
}

// Task returns the value of the "task" field in the mutation.
func (m *WorkflowGraphMutation) Task() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTask returns the old "task" field's value of the WorkflowGraph entity.
// If the WorkflowGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowGraphMutation) OldTask(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTask: %w", err)
	}
	return oldValue.Task, nil
}

// ClearTask clears the value of the "task" field.
func (m *WorkflowGraphMutation) ClearTask() {
	m.task = nil
	m.clearedFields[workflowgraph.FieldTask] = struct{}{}
}

// TaskCleared returns if the "task" field was cleared in this mutation.
func (m *WorkflowGraphMutation) TaskCleared() bool {
	_, ok := m.clearedFields[workflowgraph.FieldTask]
	return ok
}

// ResetTask resets all changes to the "task" field.
func (m *WorkflowGraphMutation) ResetTask() {
	m.task = nil
	delete(m.clearedFields, workflowgraph.FieldTask)
}

// SetTotalBudget sets the "total_budget" field.
func (m *WorkflowGraphMutation) SetTotalBudget(i int) {
	m.total_budget = &i
	m.addtotal_budget = nil
}

// TotalBudget returns the value of the "total_budget" field in the mutation.
func (m *WorkflowGraphMutation) TotalBudget() (r int, exists bool) {
	v := m.total_budget
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalBudget returns the old "total_budget" field's value of the WorkflowGraph entity.
// If the WorkflowGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowGraphMutation) OldTotalBudget(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalBudget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalBudget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalBudget: %w", err)
	}
	return oldValue.TotalBudget, nil
}

// AddTotalBudget adds i to the "total_budget" field.
func (m *WorkflowGraphMutation) AddTotalBudget(i int) {
	if m.addtotal_budget != nil {
		*m.addtotal_budget += i
	} else {
		m.addtotal_budget = &i
	}
}

// AddedTotalBudget returns the value that was added to the "total_budget" field in this mutation.
func (m *WorkflowGraphMutation) AddedTotalBudget() (r int, exists bool) {
	v := m.addtotal_budget
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalBudget resets all changes to the "total_budget" field.
func (m *WorkflowGraphMutation) ResetTotalBudget() {
	m.total_budget = nil
	m.addtotal_budget = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowGraphMutation) SetStatus(w workflowgraph.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowGraphMutation) Status() (r workflowgraph.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowGraph entity.
// If the WorkflowGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowGraphMutation) OldStatus(ctx context.Context) (v workflowgraph.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowGraphMutation) ResetStatus() {
	m.status = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *WorkflowGraphMutation) SetValidationStatus(ws workflowgraph.ValidationStatus) {
	m.validation_status = &ws
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *WorkflowGraphMutation) ValidationStatus() (r workflowgraph.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the WorkflowGraph entity.
// If the WorkflowGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowGraphMutation) OldValidationStatus(ctx context.Context) (v workflowgraph.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *WorkflowGraphMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetValidationErrors sets the "validation_errors" field.
func (m *WorkflowGraphMutation) SetValidationErrors(s []string) {
	m.validation_errors = &s
	m.appendvalidation_errors = nil
}

// ValidationErrors returns the value of the "validation_errors" field in the mutation.
func (m *WorkflowGraphMutation) ValidationErrors() (r []string, exists bool) {
	v := m.validation_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationErrors returns the old "validation_errors" field's value of the WorkflowGraph entity.
// If the WorkflowGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowGraphMutation) OldValidationErrors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationErrors: %w", err)
	}
	return oldValue.ValidationErrors, nil
}

// AppendValidationErrors adds s to the "validation_errors" field.
func (m *WorkflowGraphMutation) AppendValidationErrors(s []string) {
	m.appendvalidation_errors = append(m.appendvalidation_errors, s...)
}

// AppendedValidationErrors returns the list of values that were appended to the "validation_errors" field in this mutation.
func (m *WorkflowGraphMutation) AppendedValidationErrors() ([]string, bool) {
	if len(m.appendvalidation_errors) == 0 {
		return nil, false
	}
	return m.appendvalidation_errors, true
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (m *WorkflowGraphMutation) ClearValidationErrors() {
	m.validation_errors = nil
	m.appendvalidation_errors = nil
	m.clearedFields[workflowgraph.FieldValidationErrors] = struct{}{}
}

// ValidationErrorsCleared returns if the "validation_errors" field was cleared in this mutation.
func (m *WorkflowGraphMutation) ValidationErrorsCleared() bool {
	_, ok := m.clearedFields[workflowgraph.FieldValidationErrors]
	return ok
}

// ResetValidationErrors resets all changes to the "validation_errors" field.
func (m *WorkflowGraphMutation) ResetValidationErrors() {
	m.validation_errors = nil
	m.appendvalidation_errors = nil
	delete(m.clearedFields, workflowgraph.FieldValidationErrors)
}

// SetTerminationReason sets the "termination_reason" field.
func (m *WorkflowGraphMutation) SetTerminationReason(s string) {
	m.termination_reason = &s
}

// TerminationReason returns the value of the "termination_reason" field in the mutation.
func (m *WorkflowGraphMutation) TerminationReason() (r string, exists bool) {
	v := m.termination_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminationReason returns the old "termination_reason" field's value of the WorkflowGraph entity.
// If the WorkflowGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowGraphMutation) OldTerminationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminationReason: %w", err)
	}
	return oldValue.TerminationReason, nil
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (m *WorkflowGraphMutation) ClearTerminationReason() {
	m.termination_reason = nil
	m.clearedFields[workflowgraph.FieldTerminationReason] = struct{}{}
}

// TerminationReasonCleared returns if the "termination_reason" field was cleared in this mutation.
func (m *WorkflowGraphMutation) TerminationReasonCleared() bool {
	_, ok := m.clearedFields[workflowgraph.FieldTerminationReason]
	return ok
}

// ResetTerminationReason resets all changes to the "termination_reason" field.
func (m *WorkflowGraphMutation) ResetTerminationReason() {
	m.termination_reason = nil
	delete(m.clearedFields, workflowgraph.FieldTerminationReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowGraphMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowGraphMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowGraph entity.
// If the WorkflowGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowGraphMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowGraphMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowGraphMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowGraphMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowGraph entity.
// If the WorkflowGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowGraphMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowGraphMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddNodeIDs adds the "nodes" edge to the WorkflowNode entity by ids.
func (m *WorkflowGraphMutation) AddNodeIDs(ids ...string) {
	if m.nodes == nil {
		m.nodes = make(map[string]struct{})
	}
	for i := range ids {
		m.nodes[ids[i]] = struct{}{}
	}
}

// ClearNodes clears the "nodes" edge to the WorkflowNode entity.
func (m *WorkflowGraphMutation) ClearNodes() {
	m.clearednodes = true
}

// NodesCleared reports if the "nodes" edge to the WorkflowNode entity was cleared.
func (m *WorkflowGraphMutation) NodesCleared() bool {
	return m.clearednodes
}

// RemoveNodeIDs removes the "nodes" edge to the WorkflowNode entity by IDs.
func (m *WorkflowGraphMutation) RemoveNodeIDs(ids ...string) {
	if m.removednodes == nil {
		m.removednodes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.nodes, ids[i])
		m.removednodes[ids[i]] = struct{}{}
	}
}

// RemovedNodes returns the removed IDs of the "nodes" edge to the WorkflowNode entity.
func (m *WorkflowGraphMutation) RemovedNodesIDs() (ids []string) {
	for id := range m.removednodes {
		ids = append(ids, id)
	}
	return
}

// NodesIDs returns the "nodes" edge IDs in the mutation.
func (m *WorkflowGraphMutation) NodesIDs() (ids []string) {
	for id := range m.nodes {
		ids = append(ids, id)
	}
	return
}

// ResetNodes resets all changes to the "nodes" edge.
func (m *WorkflowGraphMutation) ResetNodes() {
	m.nodes = nil
	m.clearednodes = false
	m.removednodes = nil
}

// Where appends a list predicates to the WorkflowGraphMutation builder.
func (m *WorkflowGraphMutation) Where(ps ...predicate.WorkflowGraph) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowGraphMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowGraphMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowGraph, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowGraphMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowGraphMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowGraph).
func (m *WorkflowGraphMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowGraphMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.template_id != nil {
		fields = append(fields, workflowgraph.FieldTemplateID)
	}
	if m.root_agent_id != nil {
		fields = append(fields, workflowgraph.FieldRootAgentID)
	}
	if m.task != nil {
		fields = append(fields, workflowgraph.FieldTask)
	}
	if m.total_budget != nil {
		fields = append(fields, workflowgraph.FieldTotalBudget)
	}
	if m.status != nil {
		fields = append(fields, workflowgraph.FieldStatus)
	}
	if m.validation_status != nil {
		fields = append(fields, workflowgraph.FieldValidationStatus)
	}
	if m.validation_errors != nil {
		fields = append(fields, workflowgraph.FieldValidationErrors)
	}
	if m.termination_reason != nil {
		fields = append(fields, workflowgraph.FieldTerminationReason)
	}
	if m.created_at != nil {
		fields = append(fields, workflowgraph.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowgraph.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowGraphMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowgraph.FieldTemplateID:
		return m.TemplateID()
	case workflowgraph.FieldRootAgentID:
		return m.RootAgentID()
	case workflowgraph.FieldTask:
		return m.Task()
	case workflowgraph.FieldTotalBudget:
		return m.TotalBudget()
	case workflowgraph.FieldStatus:
		return m.Status()
	case workflowgraph.FieldValidationStatus:
		return m.ValidationStatus()
	case workflowgraph.FieldValidationErrors:
		return m.ValidationErrors()
	case workflowgraph.FieldTerminationReason:
		return m.TerminationReason()
	case workflowgraph.FieldCreatedAt:
		return m.CreatedAt()
	case workflowgraph.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowGraphMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowgraph.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case workflowgraph.FieldRootAgentID:
		return m.OldRootAgentID(ctx)
	case workflowgraph.FieldTask:
		return m.OldTask(ctx)
	case workflowgraph.FieldTotalBudget:
		return m.OldTotalBudget(ctx)
	case workflowgraph.FieldStatus:
		return m.OldStatus(ctx)
	case workflowgraph.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case workflowgraph.FieldValidationErrors:
		return m.OldValidationErrors(ctx)
	case workflowgraph.FieldTerminationReason:
		return m.OldTerminationReason(ctx)
	case workflowgraph.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowgraph.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowGraph field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowGraphMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowgraph.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case workflowgraph.FieldRootAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootAgentID(v)
		return nil
	case workflowgraph.FieldTask:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTask(v)
		return nil
	case workflowgraph.FieldTotalBudget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalBudget(v)
		return nil
	case workflowgraph.FieldStatus:
		v, ok := value.(workflowgraph.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowgraph.FieldValidationStatus:
		v, ok := value.(workflowgraph.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case workflowgraph.FieldValidationErrors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationErrors(v)
		return nil
	case workflowgraph.FieldTerminationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminationReason(v)
		return nil
	case workflowgraph.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowgraph.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowGraph field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowGraphMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_budget != nil {
		fields = append(fields, workflowgraph.FieldTotalBudget)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowGraphMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowgraph.FieldTotalBudget:
		return m.AddedTotalBudget()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowGraphMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowgraph.FieldTotalBudget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalBudget(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowGraph numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowGraphMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowgraph.FieldTemplateID) {
		fields = append(fields, workflowgraph.FieldTemplateID)
	}
	if m.FieldCleared(workflowgraph.FieldRootAgentID) {
		fields = append(fields, workflowgraph.FieldRootAgentID)
	}
	if m.FieldCleared(workflowgraph.FieldTask) {
		fields = append(fields, workflowgraph.FieldTask)
	}
	if m.FieldCleared(workflowgraph.FieldValidationErrors) {
		fields = append(fields, workflowgraph.FieldValidationErrors)
	}
	if m.FieldCleared(workflowgraph.FieldTerminationReason) {
		fields = append(fields, workflowgraph.FieldTerminationReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowGraphMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowGraphMutation) ClearField(name string) error {
	switch name {
	case workflowgraph.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	case workflowgraph.FieldRootAgentID:
		m.ClearRootAgentID()
		return nil
	case workflowgraph.FieldTask:
		m.ClearTask()
		return nil
	case workflowgraph.FieldValidationErrors:
		m.ClearValidationErrors()
		return nil
	case workflowgraph.FieldTerminationReason:
		m.ClearTerminationReason()
		return nil
	}
	return fmt.Errorf("unknown WorkflowGraph nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowGraphMutation) ResetField(name string) error {
	switch name {
	case workflowgraph.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case workflowgraph.FieldRootAgentID:
		m.ResetRootAgentID()
		return nil
	case workflowgraph.FieldTask:
		m.ResetTask()
		return nil
	case workflowgraph.FieldTotalBudget:
		m.ResetTotalBudget()
		return nil
	case workflowgraph.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowgraph.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case workflowgraph.FieldValidationErrors:
		m.ResetValidationErrors()
		return nil
	case workflowgraph.FieldTerminationReason:
		m.ResetTerminationReason()
		return nil
	case workflowgraph.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowgraph.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowGraph field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowGraphMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.nodes != nil {
		edges = append(edges, workflowgraph.EdgeNodes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowGraphMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowgraph.EdgeNodes:
		ids := make([]ent.Value, 0, len(m.nodes))
		for id := range m.nodes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowGraphMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removednodes != nil {
		edges = append(edges, workflowgraph.EdgeNodes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowGraphMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowgraph.EdgeNodes:
		ids := make([]ent.Value, 0, len(m.removednodes))
		for id := range m.removednodes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowGraphMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearednodes {
		edges = append(edges, workflowgraph.EdgeNodes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowGraphMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowgraph.EdgeNodes:
		return m.clearednodes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowGraphMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowGraph unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowGraphMutation) ResetEdge(name string) error {
	switch name {
	case workflowgraph.EdgeNodes:
		m.ResetNodes()
		return nil
	}
	return fmt.Errorf("unknown WorkflowGraph edge %s", name)
}

// WorkflowNodeMutation represents an operation that mutates the WorkflowNode nodes in the graph.
type WorkflowNodeMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	node_key             *string
	role                 *string
	task_description     *string
	budget_allocation    *int
	addbudget_allocation *int
	dependencies         *[]string
	appenddependencies   []string
	execution_status     *workflownode.ExecutionStatus
	agent_id             *string
	result               *string
	position             *int
	addposition          *int
	error_message        *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	graph                *string
	clearedgraph         bool
	done                 bool
	oldValue             func(context.Context) (*WorkflowNode, error)
	predicates           []predicate.WorkflowNode
}

var _ ent.Mutation = (*WorkflowNodeMutation)(nil)

// workflownodeOption allows management of the mutation configuration using functional options.
type workflownodeOption func(*WorkflowNodeMutation)

// newWorkflowNodeMutation creates new mutation for the WorkflowNode entity.
func newWorkflowNodeMutation(c config, op Op, opts ...workflownodeOption) *WorkflowNodeMutation {
	m := &WorkflowNodeMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowNodeID sets the ID field of the mutation.
func withWorkflowNodeID(id string) workflownodeOption {
	return func(m *WorkflowNodeMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowNode
		)
		m.oldValue = func(ctx context.Context) (*WorkflowNode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowNode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowNode sets the old WorkflowNode of the mutation.
func withWorkflowNode(node *WorkflowNode) workflownodeOption {
	return func(m *WorkflowNodeMutation) {
		m.oldValue = func(context.Context) (*WorkflowNode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowNodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowNodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowNode entities.
func (m *WorkflowNodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowNodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowNodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowNode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowGraphID sets the "workflow_graph_id" field.
func (m *WorkflowNodeMutation) SetWorkflowGraphID(s string) {
	m.graph = &s
}

// WorkflowGraphID returns the value of the "workflow_graph_id" field in the mutation.
func (m *WorkflowNodeMutation) WorkflowGraphID() (r string, exists bool) {
	v := m.graph
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowGraphID returns the old "workflow_graph_id" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldWorkflowGraphID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowGraphID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowGraphID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowGraphID: %w", err)
	}
	return oldValue.WorkflowGraphID, nil
}

// ResetWorkflowGraphID resets all changes to the "workflow_graph_id" field.
func (m *WorkflowNodeMutation) ResetWorkflowGraphID() {
	m.graph = nil
}

// SetNodeKey sets the "node_key" field.
func (m *WorkflowNodeMutation) SetNodeKey(s string) {
	m.node_key = &s
}

// NodeKey returns the value of the "node_key" field in the mutation.
func (m *WorkflowNodeMutation) NodeKey() (r string, exists bool) {
	v := m.node_key
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeKey returns the old "node_key" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldNodeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeKey: %w", err)
	}
	return oldValue.NodeKey, nil
}

// ResetNodeKey resets all changes to the "node_key" field.
func (m *WorkflowNodeMutation) ResetNodeKey() {
	m.node_key = nil
}

// SetRole sets the "role" field.
func (m *WorkflowNodeMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *WorkflowNodeMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *WorkflowNodeMutation) ResetRole() {
	m.role = nil
}

// SetTaskDescription sets the "task_description" field.
func (m *WorkflowNodeMutation) SetTaskDescription(s string) {
	m.task_description = &s
}

// TaskDescription returns the value of the "task_description" field in the mutation.
func (m *WorkflowNodeMutation) TaskDescription() (r string, exists bool) {
	v := m.task_description
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskDescription returns the old "task_description" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldTaskDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskDescription: %w", err)
	}
	return oldValue.TaskDescription, nil
}

// ResetTaskDescription resets all changes to the "task_description" field.
func (m *WorkflowNodeMutation) ResetTaskDescription() {
	m.task_description = nil
}

// SetBudgetAllocation sets the "budget_allocation" field.
func (m *WorkflowNodeMutation) SetBudgetAllocation(i int) {
	m.budget_allocation = &i
	m.addbudget_allocation = nil
}

// BudgetAllocation returns the value of the "budget_allocation" field in the mutation.
func (m *WorkflowNodeMutation) BudgetAllocation() (r int, exists bool) {
	v := m.budget_allocation
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetAllocation returns the old "budget_allocation" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldBudgetAllocation(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetAllocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetAllocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetAllocation: %w", err)
	}
	return oldValue.BudgetAllocation, nil
}

// AddBudgetAllocation adds i to the "budget_allocation" field.
func (m *WorkflowNodeMutation) AddBudgetAllocation(i int) {
	if m.addbudget_allocation != nil {
		*m.addbudget_allocation += i
	} else {
		m.addbudget_allocation = &i
	}
}

// AddedBudgetAllocation returns the value that was added to the "budget_allocation" field in this mutation.
func (m *WorkflowNodeMutation) AddedBudgetAllocation() (r int, exists bool) {
	v := m.addbudget_allocation
	if v == nil {
		return
	}
	return *v, true
}

// ResetBudgetAllocation resets all changes to the "budget_allocation" field.
func (m *WorkflowNodeMutation) ResetBudgetAllocation() {
	m.budget_allocation = nil
	m.addbudget_allocation = nil
}

// SetDependencies sets the "dependencies" field.
func (m *WorkflowNodeMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *WorkflowNodeMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *WorkflowNodeMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *WorkflowNodeMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *WorkflowNodeMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[workflownode.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *WorkflowNodeMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[workflownode.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *WorkflowNodeMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, workflownode.FieldDependencies)
}

// SetExecutionStatus sets the "execution_status" field.
func (m *WorkflowNodeMutation) SetExecutionStatus(ws workflownode.ExecutionStatus) {
	m.execution_status = &ws
}

// ExecutionStatus returns the value of the "execution_status" field in the mutation.
func (m *WorkflowNodeMutation) ExecutionStatus() (r workflownode.ExecutionStatus, exists bool) {
	v := m.execution_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionStatus returns the old "execution_status" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldExecutionStatus(ctx context.Context) (v workflownode.ExecutionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionStatus: %w", err)
	}
	return oldValue.ExecutionStatus, nil
}

// ResetExecutionStatus resets all changes to the "execution_status" field.
func (m *WorkflowNodeMutation) ResetExecutionStatus() {
	m.execution_status = nil
}

// SetAgentID sets the "agent_id" field.
func (m *WorkflowNodeMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *WorkflowNodeMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *WorkflowNodeMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[workflownode.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *WorkflowNodeMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[workflownode.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *WorkflowNodeMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, workflownode.FieldAgentID)
}

// SetResult sets the "result" field.
func (m *WorkflowNodeMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *WorkflowNodeMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *WorkflowNodeMutation) ClearResult() {
	m.result = nil
	m.clearedFields[workflownode.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *WorkflowNodeMutation) ResultCleared() bool {
	_, ok := m.clearedFields[workflownode.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *WorkflowNodeMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, workflownode.FieldResult)
}

// SetPosition sets the "position" field.
func (m *WorkflowNodeMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *WorkflowNodeMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *WorkflowNodeMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *WorkflowNodeMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *WorkflowNodeMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowNodeMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowNodeMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowNodeMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflownode.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowNodeMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflownode.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowNodeMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflownode.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowNodeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowNodeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowNodeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowNodeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowNodeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowNode entity.
// If the WorkflowNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowNodeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowNodeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetGraphID sets the "graph" edge to the WorkflowGraph entity by id.
func (m *WorkflowNodeMutation) SetGraphID(id string) {
	m.graph = &id
}

// ClearGraph clears the "graph" edge to the WorkflowGraph entity.
func (m *WorkflowNodeMutation) ClearGraph() {
	m.clearedgraph = true
	m.clearedFields[workflownode.FieldWorkflowGraphID] = struct{}{}
}

// GraphCleared reports if the "graph" edge to the WorkflowGraph entity was cleared.
func (m *WorkflowNodeMutation) GraphCleared() bool {
	return m.clearedgraph
}

// GraphID returns the "graph" edge ID in the mutation.
func (m *WorkflowNodeMutation) GraphID() (id string, exists bool) {
	if m.graph != nil {
		return *m.graph, true
	}
	return
}

// GraphIDs returns the "graph" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GraphID instead. It exists only for internal usage by the builders.
func (m *WorkflowNodeMutation) GraphIDs() (ids []string) {
	if id := m.graph; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGraph resets all changes to the "graph" edge.
func (m *WorkflowNodeMutation) ResetGraph() {
	m.graph = nil
	m.clearedgraph = false
}

// Where appends a list predicates to the WorkflowNodeMutation builder.
func (m *WorkflowNodeMutation) Where(ps ...predicate.WorkflowNode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowNodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowNodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowNode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowNodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowNodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowNode).
func (m *WorkflowNodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowNodeMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.graph != nil {
		fields = append(fields, workflownode.FieldWorkflowGraphID)
	}
	if m.node_key != nil {
		fields = append(fields, workflownode.FieldNodeKey)
	}
	if m.role != nil {
		fields = append(fields, workflownode.FieldRole)
	}
	if m.task_description != nil {
		fields = append(fields, workflownode.FieldTaskDescription)
	}
	if m.budget_allocation != nil {
		fields = append(fields, workflownode.FieldBudgetAllocation)
	}
	if m.dependencies != nil {
		fields = append(fields, workflownode.FieldDependencies)
	}
	if m.execution_status != nil {
		fields = append(fields, workflownode.FieldExecutionStatus)
	}
	if m.agent_id != nil {
		fields = append(fields, workflownode.FieldAgentID)
	}
	if m.result != nil {
		fields = append(fields, workflownode.FieldResult)
	}
	if m.position != nil {
		fields = append(fields, workflownode.FieldPosition)
	}
	if m.error_message != nil {
		fields = append(fields, workflownode.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, workflownode.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflownode.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowNodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflownode.FieldWorkflowGraphID:
		return m.WorkflowGraphID()
	case workflownode.FieldNodeKey:
		return m.NodeKey()
	case workflownode.FieldRole:
		return m.Role()
	case workflownode.FieldTaskDescription:
		return m.TaskDescription()
	case workflownode.FieldBudgetAllocation:
		return m.BudgetAllocation()
	case workflownode.FieldDependencies:
		return m.Dependencies()
	case workflownode.FieldExecutionStatus:
		return m.ExecutionStatus()
	case workflownode.FieldAgentID:
		return m.AgentID()
	case workflownode.FieldResult:
		return m.Result()
	case workflownode.FieldPosition:
		return m.Position()
	case workflownode.FieldErrorMessage:
		return m.ErrorMessage()
	case workflownode.FieldCreatedAt:
		return m.CreatedAt()
	case workflownode.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowNodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflownode.FieldWorkflowGraphID:
		return m.OldWorkflowGraphID(ctx)
	case workflownode.FieldNodeKey:
		return m.OldNodeKey(ctx)
	case workflownode.FieldRole:
		return m.OldRole(ctx)
	case workflownode.FieldTaskDescription:
		return m.OldTaskDescription(ctx)
	case workflownode.FieldBudgetAllocation:
		return m.OldBudgetAllocation(ctx)
	case workflownode.FieldDependencies:
		return m.OldDependencies(ctx)
	case workflownode.FieldExecutionStatus:
		return m.OldExecutionStatus(ctx)
	case workflownode.FieldAgentID:
		return m.OldAgentID(ctx)
	case workflownode.FieldResult:
		return m.OldResult(ctx)
	case workflownode.FieldPosition:
		return m.OldPosition(ctx)
	case workflownode.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflownode.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflownode.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowNode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowNodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflownode.FieldWorkflowGraphID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowGraphID(v)
		return nil
	case workflownode.FieldNodeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeKey(v)
		return nil
	case workflownode.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case workflownode.FieldTaskDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskDescription(v)
		return nil
	case workflownode.FieldBudgetAllocation:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetAllocation(v)
		return nil
	case workflownode.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case workflownode.FieldExecutionStatus:
		v, ok := value.(workflownode.ExecutionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionStatus(v)
		return nil
	case workflownode.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case workflownode.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case workflownode.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case workflownode.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflownode.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflownode.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowNode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowNodeMutation) AddedFields() []string {
	var fields []string
	if m.addbudget_allocation != nil {
		fields = append(fields, workflownode.FieldBudgetAllocation)
	}
	if m.addposition != nil {
		fields = append(fields, workflownode.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowNodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflownode.FieldBudgetAllocation:
		return m.AddedBudgetAllocation()
	case workflownode.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowNodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflownode.FieldBudgetAllocation:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudgetAllocation(v)
		return nil
	case workflownode.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowNode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowNodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflownode.FieldDependencies) {
		fields = append(fields, workflownode.FieldDependencies)
	}
	if m.FieldCleared(workflownode.FieldAgentID) {
		fields = append(fields, workflownode.FieldAgentID)
	}
	if m.FieldCleared(workflownode.FieldResult) {
		fields = append(fields, workflownode.FieldResult)
	}
	if m.FieldCleared(workflownode.FieldErrorMessage) {
		fields = append(fields, workflownode.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowNodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowNodeMutation) ClearField(name string) error {
	switch name {
	case workflownode.FieldDependencies:
		m.ClearDependencies()
		return nil
	case workflownode.FieldAgentID:
		m.ClearAgentID()
		return nil
	case workflownode.FieldResult:
		m.ClearResult()
		return nil
	case workflownode.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WorkflowNode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowNodeMutation) ResetField(name string) error {
	switch name {
	case workflownode.FieldWorkflowGraphID:
		m.ResetWorkflowGraphID()
		return nil
	case workflownode.FieldNodeKey:
		m.ResetNodeKey()
		return nil
	case workflownode.FieldRole:
		m.ResetRole()
		return nil
	case workflownode.FieldTaskDescription:
		m.ResetTaskDescription()
		return nil
	case workflownode.FieldBudgetAllocation:
		m.ResetBudgetAllocation()
		return nil
	case workflownode.FieldDependencies:
		m.ResetDependencies()
		return nil
	case workflownode.FieldExecutionStatus:
		m.ResetExecutionStatus()
		return nil
	case workflownode.FieldAgentID:
		m.ResetAgentID()
		return nil
	case workflownode.FieldResult:
		m.ResetResult()
		return nil
	case workflownode.FieldPosition:
		m.ResetPosition()
		return nil
	case workflownode.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflownode.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflownode.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowNode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowNodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.graph != nil {
		edges = append(edges, workflownode.EdgeGraph)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowNodeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflownode.EdgeGraph:
		if id := m.graph; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowNodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowNodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowNodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgraph {
		edges = append(edges, workflownode.EdgeGraph)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowNodeMutation) EdgeCleared(name string) bool {
	switch name {
	case workflownode.EdgeGraph:
		return m.clearedgraph
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowNodeMutation) ClearEdge(name string) error {
	switch name {
	case workflownode.EdgeGraph:
		m.ClearGraph()
		return nil
	}
	return fmt.Errorf("unknown WorkflowNode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowNodeMutation) ResetEdge(name string) error {
	switch name {
	case workflownode.EdgeGraph:
		m.ResetGraph()
		return nil
	}
	return fmt.Errorf("unknown WorkflowNode edge %s", name)
}

// WorkflowTemplateMutation represents an operation that mutates the WorkflowTemplate nodes in the graph.
type WorkflowTemplateMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	node_templates       *[]models.NodeTemplate
	appendnode_templates []models.NodeTemplate
	edge_patterns        *[]models.EdgePattern
	appendedge_patterns  []models.EdgePattern
	min_budget           *int
	addmin_budget        *int
	usage_count          *int
	addusage_count       *int
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*WorkflowTemplate, error)
	predicates           []predicate.WorkflowTemplate
}

var _ ent.Mutation = (*WorkflowTemplateMutation)(nil)

// workflowtemplateOption allows management of the mutation configuration using functional options.
type workflowtemplateOption func(*WorkflowTemplateMutation)

// newWorkflowTemplateMutation creates new mutation for the WorkflowTemplate entity.
func newWorkflowTemplateMutation(c config, op Op, opts ...workflowtemplateOption) *WorkflowTemplateMutation {
	m := &WorkflowTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowTemplateID sets the ID field of the mutation.
func withWorkflowTemplateID(id string) workflowtemplateOption {
	return func(m *WorkflowTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowTemplate
		)
		m.oldValue = func(ctx context.Context) (*WorkflowTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowTemplate sets the old WorkflowTemplate of the mutation.
func withWorkflowTemplate(node *WorkflowTemplate) workflowtemplateOption {
	return func(m *WorkflowTemplateMutation) {
		m.oldValue = func(context.Context) (*WorkflowTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowTemplate entities.
func (m *WorkflowTemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowTemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowTemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WorkflowTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the WorkflowTemplate entity.
// If the WorkflowTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowTemplateMutation) ResetName() {
	m.name = nil
}

// SetNodeTemplates sets the "node_templates" field.
func (m *WorkflowTemplateMutation) SetNodeTemplates(mt []models.NodeTemplate) {
	m.node_templates = &mt
	m.appendnode_templates = nil
}

// NodeTemplates returns the value of the "node_templates" field in the mutation.
func (m *WorkflowTemplateMutation) NodeTemplates() (r []models.NodeTemplate, exists bool) {
	v := m.node_templates
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeTemplates returns the old "node_templates" field's value of the WorkflowTemplate entity.
// If the WorkflowTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTemplateMutation) OldNodeTemplates(ctx context.Context) (v []models.NodeTemplate, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeTemplates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeTemplates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeTemplates: %w", err)
	}
	return oldValue.NodeTemplates, nil
}

// AppendNodeTemplates adds mt to the "node_templates" field.
func (m *WorkflowTemplateMutation) AppendNodeTemplates(mt []models.NodeTemplate) {
	m.appendnode_templates = append(m.appendnode_templates, mt...)
}

// AppendedNodeTemplates returns the list of values that were appended to the "node_templates" field in this mutation.
func (m *WorkflowTemplateMutation) AppendedNodeTemplates() ([]models.NodeTemplate, bool) {
	if len(m.appendnode_templates) == 0 {
		return nil, false
	}
	return m.appendnode_templates, true
}

// ResetNodeTemplates resets all changes to the "node_templates" field.
func (m *WorkflowTemplateMutation) ResetNodeTemplates() {
	m.node_templates = nil
	m.appendnode_templates = nil
}

// SetEdgePatterns sets the "edge_patterns" field.
func (m *WorkflowTemplateMutation) SetEdgePatterns(mp []models.EdgePattern) {
	m.edge_patterns = &mp
	m.appendedge_patterns = nil
}

// EdgePatterns returns the value of the "edge_patterns" field in the mutation.
func (m *WorkflowTemplateMutation) EdgePatterns() (r []models.EdgePattern, exists bool) {
	v := m.edge_patterns
	if v == nil {
		return
	}
	return *v, true
}

// OldEdgePatterns returns the old "edge_patterns" field's value of the WorkflowTemplate entity.
// If the WorkflowTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTemplateMutation) OldEdgePatterns(ctx context.Context) (v []models.EdgePattern, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEdgePatterns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEdgePatterns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEdgePatterns: %w", err)
	}
	return oldValue.EdgePatterns, nil
}

// AppendEdgePatterns adds mp to the "edge_patterns" field.
func (m *WorkflowTemplateMutation) AppendEdgePatterns(mp []models.EdgePattern) {
	m.appendedge_patterns = append(m.appendedge_patterns, mp...)
}

// AppendedEdgePatterns returns the list of values that were appended to the "edge_patterns" field in this mutation.
func (m *WorkflowTemplateMutation) AppendedEdgePatterns() ([]models.EdgePattern, bool) {
	if len(m.appendedge_patterns) == 0 {
		return nil, false
	}
	return m.appendedge_patterns, true
}

// ClearEdgePatterns clears the value of the "edge_patterns" field.
func (m *WorkflowTemplateMutation) ClearEdgePatterns() {
	m.edge_patterns = nil
	m.appendedge_patterns = nil
	m.clearedFields[workflowtemplate.FieldEdgePatterns] = struct{}{}
}

// EdgePatternsCleared returns if the "edge_patterns" field was cleared in this mutation.
func (m *WorkflowTemplateMutation) EdgePatternsCleared() bool {
	_, ok := m.clearedFields[workflowtemplate.FieldEdgePatterns]
	return ok
}

// ResetEdgePatterns resets all changes to the "edge_patterns" field.
func (m *WorkflowTemplateMutation) ResetEdgePatterns() {
	m.edge_patterns = nil
	m.appendedge_patterns = nil
	delete(m.clearedFields, workflowtemplate.FieldEdgePatterns)
}

// SetMinBudget sets the "min_budget" field.
func (m *WorkflowTemplateMutation) SetMinBudget(i int) {
	m.min_budget = &i
	m.addmin_budget = nil
}

// MinBudget returns the value of the "min_budget" field in the mutation.
func (m *WorkflowTemplateMutation) MinBudget() (r int, exists bool) {
	v := m.min_budget
	if v == nil {
		return
	}
	return *v, true
}

// OldMinBudget returns the old "min_budget" field's value of the WorkflowTemplate entity.
// If the WorkflowTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTemplateMutation) OldMinBudget(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinBudget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinBudget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinBudget: %w", err)
	}
	return oldValue.MinBudget, nil
}

// AddMinBudget adds i to the "min_budget" field.
func (m *WorkflowTemplateMutation) AddMinBudget(i int) {
	if m.addmin_budget != nil {
		*m.addmin_budget += i
	} else {
		m.addmin_budget = &i
	}
}

// AddedMinBudget returns the value that was added to the "min_budget" field in this mutation.
func (m *WorkflowTemplateMutation) AddedMinBudget() (r int, exists bool) {
	v := m.addmin_budget
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinBudget resets all changes to the "min_budget" field.
func (m *WorkflowTemplateMutation) ResetMinBudget() {
	m.min_budget = nil
	m.addmin_budget = nil
}

// SetUsageCount sets the "usage_count" field.
func (m *WorkflowTemplateMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *WorkflowTemplateMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the WorkflowTemplate entity.
// If the WorkflowTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTemplateMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *WorkflowTemplateMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *WorkflowTemplateMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *WorkflowTemplateMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowTemplate entity.
// If the WorkflowTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowTemplate entity.
// If the WorkflowTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WorkflowTemplateMutation builder.
func (m *WorkflowTemplateMutation) Where(ps ...predicate.WorkflowTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowTemplate).
func (m *WorkflowTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowTemplateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, workflowtemplate.FieldName)
	}
	if m.node_templates != nil {
		fields = append(fields, workflowtemplate.FieldNodeTemplates)
	}
	if m.edge_patterns != nil {
		fields = append(fields, workflowtemplate.FieldEdgePatterns)
	}
	if m.min_budget != nil {
		fields = append(fields, workflowtemplate.FieldMinBudget)
	}
	if m.usage_count != nil {
		fields = append(fields, workflowtemplate.FieldUsageCount)
	}
	if m.created_at != nil {
		fields = append(fields, workflowtemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowtemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowtemplate.FieldName:
		return m.Name()
	case workflowtemplate.FieldNodeTemplates:
		return m.NodeTemplates()
	case workflowtemplate.FieldEdgePatterns:
		return m.EdgePatterns()
	case workflowtemplate.FieldMinBudget:
		return m.MinBudget()
	case workflowtemplate.FieldUsageCount:
		return m.UsageCount()
	case workflowtemplate.FieldCreatedAt:
		return m.CreatedAt()
	case workflowtemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowtemplate.FieldName:
		return m.OldName(ctx)
	case workflowtemplate.FieldNodeTemplates:
		return m.OldNodeTemplates(ctx)
	case workflowtemplate.FieldEdgePatterns:
		return m.OldEdgePatterns(ctx)
	case workflowtemplate.FieldMinBudget:
		return m.OldMinBudget(ctx)
	case workflowtemplate.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case workflowtemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowtemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowtemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflowtemplate.FieldNodeTemplates:
		v, ok := value.([]models.NodeTemplate)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeTemplates(v)
		return nil
	case workflowtemplate.FieldEdgePatterns:
		v, ok := value.([]models.EdgePattern)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEdgePatterns(v)
		return nil
	case workflowtemplate.FieldMinBudget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinBudget(v)
		return nil
	case workflowtemplate.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case workflowtemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowtemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowTemplateMutation) AddedFields() []string {
	var fields []string
	if m.addmin_budget != nil {
		fields = append(fields, workflowtemplate.FieldMinBudget)
	}
	if m.addusage_count != nil {
		fields = append(fields, workflowtemplate.FieldUsageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowtemplate.FieldMinBudget:
		return m.AddedMinBudget()
	case workflowtemplate.FieldUsageCount:
		return m.AddedUsageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowtemplate.FieldMinBudget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinBudget(v)
		return nil
	case workflowtemplate.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowtemplate.FieldEdgePatterns) {
		fields = append(fields, workflowtemplate.FieldEdgePatterns)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowTemplateMutation) ClearField(name string) error {
	switch name {
	case workflowtemplate.FieldEdgePatterns:
		m.ClearEdgePatterns()
		return nil
	}
	return fmt.Errorf("unknown WorkflowTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowTemplateMutation) ResetField(name string) error {
	switch name {
	case workflowtemplate.FieldName:
		m.ResetName()
		return nil
	case workflowtemplate.FieldNodeTemplates:
		m.ResetNodeTemplates()
		return nil
	case workflowtemplate.FieldEdgePatterns:
		m.ResetEdgePatterns()
		return nil
	case workflowtemplate.FieldMinBudget:
		m.ResetMinBudget()
		return nil
	case workflowtemplate.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case workflowtemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowtemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkflowTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkflowTemplate edge %s", name)
}

// WorkspaceMutation represents an operation that mutates the Workspace nodes in the graph.
type WorkspaceMutation struct {
	config
	op               Op
	typ              string
	id               *int
	_path            *string
	branch_name      *string
	base_commit      *string
	isolation_status *workspace.IsolationStatus
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	agent            *string
	clearedagent     bool
	done             bool
	oldValue         func(context.Context) (*Workspace, error)
	predicates       []predicate.Workspace
}

var _ ent.Mutation = (*WorkspaceMutation)(nil)

// workspaceOption allows management of the mutation configuration using functional options.
type workspaceOption func(*WorkspaceMutation)

// newWorkspaceMutation creates new mutation for the Workspace entity.
func newWorkspaceMutation(c config, op Op, opts ...workspaceOption) *WorkspaceMutation {
	m := &WorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceID sets the ID field of the mutation.
func withWorkspaceID(id int) workspaceOption {
	return func(m *WorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Workspace
		)
		m.oldValue = func(ctx context.Context) (*Workspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspace sets the old Workspace of the mutation.
func withWorkspace(node *Workspace) workspaceOption {
	return func(m *WorkspaceMutation) {
		m.oldValue = func(context.Context) (*Workspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *WorkspaceMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *WorkspaceMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *WorkspaceMutation) ResetAgentID() {
	m.agent = nil
}

// SetPath sets the "path" field.
func (m *WorkspaceMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *WorkspaceMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *WorkspaceMutation) ResetPath() {
	m._path = nil
}

// SetBranchName sets the "branch_name" field.
func (m *WorkspaceMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *WorkspaceMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldBranchName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *WorkspaceMutation) ResetBranchName() {
	m.branch_name = nil
}

// SetBaseCommit sets the "base_commit" field.
func (m *WorkspaceMutation) SetBaseCommit(s string) {
	m.base_commit = &s
}

// BaseCommit returns the value of the "base_commit" field in the mutation.
func (m *WorkspaceMutation) BaseCommit() (r string, exists bool) {
	v := m.base_commit
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseCommit returns the old "base_commit" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldBaseCommit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseCommit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseCommit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseCommit: %w", err)
	}
	return oldValue.BaseCommit, nil
}

// ResetBaseCommit resets all changes to the "base_commit" field.
func (m *WorkspaceMutation) ResetBaseCommit() {
	m.base_commit = nil
}

// SetIsolationStatus sets the "isolation_status" field.
func (m *WorkspaceMutation) SetIsolationStatus(ws workspace.IsolationStatus) {
	m.isolation_status = &ws
}

// IsolationStatus returns the value of the "isolation_status" field in the mutation.
func (m *WorkspaceMutation) IsolationStatus() (r workspace.IsolationStatus, exists bool) {
	v := m.isolation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldIsolationStatus returns the old "isolation_status" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldIsolationStatus(ctx context.Context) (v workspace.IsolationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsolationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsolationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsolationStatus: %w", err)
	}
	return oldValue.IsolationStatus, nil
}

// ResetIsolationStatus resets all changes to the "isolation_status" field.
func (m *WorkspaceMutation) ResetIsolationStatus() {
	m.isolation_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkspaceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkspaceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkspaceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *WorkspaceMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[workspace.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *WorkspaceMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *WorkspaceMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *WorkspaceMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the WorkspaceMutation builder.
func (m *WorkspaceMutation) Where(ps ...predicate.Workspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workspace).
func (m *WorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.agent != nil {
		fields = append(fields, workspace.FieldAgentID)
	}
	if m._path != nil {
		fields = append(fields, workspace.FieldPath)
	}
	if m.branch_name != nil {
		fields = append(fields, workspace.FieldBranchName)
	}
	if m.base_commit != nil {
		fields = append(fields, workspace.FieldBaseCommit)
	}
	if m.isolation_status != nil {
		fields = append(fields, workspace.FieldIsolationStatus)
	}
	if m.created_at != nil {
		fields = append(fields, workspace.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workspace.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldAgentID:
		return m.AgentID()
	case workspace.FieldPath:
		return m.Path()
	case workspace.FieldBranchName:
		return m.BranchName()
	case workspace.FieldBaseCommit:
		return m.BaseCommit()
	case workspace.FieldIsolationStatus:
		return m.IsolationStatus()
	case workspace.FieldCreatedAt:
		return m.CreatedAt()
	case workspace.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspace.FieldAgentID:
		return m.OldAgentID(ctx)
	case workspace.FieldPath:
		return m.OldPath(ctx)
	case workspace.FieldBranchName:
		return m.OldBranchName(ctx)
	case workspace.FieldBaseCommit:
		return m.OldBaseCommit(ctx)
	case workspace.FieldIsolationStatus:
		return m.OldIsolationStatus(ctx)
	case workspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workspace.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case workspace.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case workspace.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case workspace.FieldBaseCommit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseCommit(v)
		return nil
	case workspace.FieldIsolationStatus:
		v, ok := value.(workspace.IsolationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsolationStatus(v)
		return nil
	case workspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workspace.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Workspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMutation) ResetField(name string) error {
	switch name {
	case workspace.FieldAgentID:
		m.ResetAgentID()
		return nil
	case workspace.FieldPath:
		m.ResetPath()
		return nil
	case workspace.FieldBranchName:
		m.ResetBranchName()
		return nil
	case workspace.FieldBaseCommit:
		m.ResetBaseCommit()
		return nil
	case workspace.FieldIsolationStatus:
		m.ResetIsolationStatus()
		return nil
	case workspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workspace.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, workspace.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, workspace.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMutation) EdgeCleared(name string) bool {
	switch name {
	case workspace.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMutation) ClearEdge(name string) error {
	switch name {
	case workspace.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Workspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMutation) ResetEdge(name string) error {
	switch name {
	case workspace.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown Workspace edge %s", name)
}
