// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/maestro-orch/maestro/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/budget"
	"github.com/maestro-orch/maestro/ent/hierarchy"
	"github.com/maestro-orch/maestro/ent/message"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
	"github.com/maestro-orch/maestro/ent/workflownode"
	"github.com/maestro-orch/maestro/ent/workflowtemplate"
	"github.com/maestro-orch/maestro/ent/workspace"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// Budget is the client for interacting with the Budget builders.
	Budget *BudgetClient
	// Hierarchy is the client for interacting with the Hierarchy builders.
	Hierarchy *HierarchyClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// WorkflowGraph is the client for interacting with the WorkflowGraph builders.
	WorkflowGraph *WorkflowGraphClient
	// WorkflowNode is the client for interacting with the WorkflowNode builders.
	WorkflowNode *WorkflowNodeClient
	// WorkflowTemplate is the client for interacting with the WorkflowTemplate builders.
	WorkflowTemplate *WorkflowTemplateClient
	// Workspace is the client for interacting with the Workspace builders.
	Workspace *WorkspaceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.Budget = NewBudgetClient(c.config)
	c.Hierarchy = NewHierarchyClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.WorkflowGraph = NewWorkflowGraphClient(c.config)
	c.WorkflowNode = NewWorkflowNodeClient(c.config)
	c.WorkflowTemplate = NewWorkflowTemplateClient(c.config)
	c.Workspace = NewWorkspaceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Agent:            NewAgentClient(cfg),
		Budget:           NewBudgetClient(cfg),
		Hierarchy:        NewHierarchyClient(cfg),
		Message:          NewMessageClient(cfg),
		WorkflowGraph:    NewWorkflowGraphClient(cfg),
		WorkflowNode:     NewWorkflowNodeClient(cfg),
		WorkflowTemplate: NewWorkflowTemplateClient(cfg),
		Workspace:        NewWorkspaceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Agent:            NewAgentClient(cfg),
		Budget:           NewBudgetClient(cfg),
		Hierarchy:        NewHierarchyClient(cfg),
		Message:          NewMessageClient(cfg),
		WorkflowGraph:    NewWorkflowGraphClient(cfg),
		WorkflowNode:     NewWorkflowNodeClient(cfg),
		WorkflowTemplate: NewWorkflowTemplateClient(cfg),
		Workspace:        NewWorkspaceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Agent, c.Budget, c.Hierarchy, c.Message, c.WorkflowGraph, c.WorkflowNode,
		c.WorkflowTemplate, c.Workspace,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.Budget, c.Hierarchy, c.Message, c.WorkflowGraph, c.WorkflowNode,
		c.WorkflowTemplate, c.Workspace,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *BudgetMutation:
		return c.Budget.mutate(ctx, m)
	case *HierarchyMutation:
		return c.Hierarchy.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *WorkflowGraphMutation:
		return c.WorkflowGraph.mutate(ctx, m)
	case *WorkflowNodeMutation:
		return c.WorkflowNode.mutate(ctx, m)
	case *WorkflowTemplateMutation:
		return c.WorkflowTemplate.mutate(ctx, m)
	case *WorkspaceMutation:
		return c.Workspace.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBudget queries the budget edge of a Agent.
func (c *AgentClient) QueryBudget(_m *Agent) *BudgetQuery {
	query := (&BudgetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(budget.Table, budget.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, agent.BudgetTable, agent.BudgetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkspace queries the workspace edge of a Agent.
func (c *AgentClient) QueryWorkspace(_m *Agent) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, agent.WorkspaceTable, agent.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildEdges queries the child_edges edge of a Agent.
func (c *AgentClient) QueryChildEdges(_m *Agent) *HierarchyQuery {
	query := (&HierarchyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(hierarchy.Table, hierarchy.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.ChildEdgesTable, agent.ChildEdgesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParentEdges queries the parent_edges edge of a Agent.
func (c *AgentClient) QueryParentEdges(_m *Agent) *HierarchyQuery {
	query := (&HierarchyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(hierarchy.Table, hierarchy.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.ParentEdgesTable, agent.ParentEdgesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// BudgetClient is a client for the Budget schema.
type BudgetClient struct {
	config
}

// NewBudgetClient returns a client for the Budget from the given config.
func NewBudgetClient(c config) *BudgetClient {
	return &BudgetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `budget.Hooks(f(g(h())))`.
func (c *BudgetClient) Use(hooks ...Hook) {
	c.hooks.Budget = append(c.hooks.Budget, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `budget.Intercept(f(g(h())))`.
func (c *BudgetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Budget = append(c.inters.Budget, interceptors...)
}

// Create returns a builder for creating a Budget entity.
func (c *BudgetClient) Create() *BudgetCreate {
	mutation := newBudgetMutation(c.config, OpCreate)
	return &BudgetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Budget entities.
func (c *BudgetClient) CreateBulk(builders ...*BudgetCreate) *BudgetCreateBulk {
	return &BudgetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BudgetClient) MapCreateBulk(slice any, setFunc func(*BudgetCreate, int)) *BudgetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BudgetCreateBulk{err: fmt.Errorf("calling to BudgetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BudgetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BudgetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Budget.
func (c *BudgetClient) Update() *BudgetUpdate {
	mutation := newBudgetMutation(c.config, OpUpdate)
	return &BudgetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BudgetClient) UpdateOne(_m *Budget) *BudgetUpdateOne {
	mutation := newBudgetMutation(c.config, OpUpdateOne, withBudget(_m))
	return &BudgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BudgetClient) UpdateOneID(id int) *BudgetUpdateOne {
	mutation := newBudgetMutation(c.config, OpUpdateOne, withBudgetID(id))
	return &BudgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Budget.
func (c *BudgetClient) Delete() *BudgetDelete {
	mutation := newBudgetMutation(c.config, OpDelete)
	return &BudgetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BudgetClient) DeleteOne(_m *Budget) *BudgetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BudgetClient) DeleteOneID(id int) *BudgetDeleteOne {
	builder := c.Delete().Where(budget.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BudgetDeleteOne{builder}
}

// Query returns a query builder for Budget.
func (c *BudgetClient) Query() *BudgetQuery {
	return &BudgetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBudget},
		inters: c.Interceptors(),
	}
}

// Get returns a Budget entity by its id.
func (c *BudgetClient) Get(ctx context.Context, id int) (*Budget, error) {
	return c.Query().Where(budget.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BudgetClient) GetX(ctx context.Context, id int) *Budget {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a Budget.
func (c *BudgetClient) QueryAgent(_m *Budget) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(budget.Table, budget.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, budget.AgentTable, budget.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BudgetClient) Hooks() []Hook {
	return c.hooks.Budget
}

// Interceptors returns the client interceptors.
func (c *BudgetClient) Interceptors() []Interceptor {
	return c.inters.Budget
}

func (c *BudgetClient) mutate(ctx context.Context, m *BudgetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BudgetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BudgetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BudgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BudgetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Budget mutation op: %q", m.Op())
	}
}

// HierarchyClient is a client for the Hierarchy schema.
type HierarchyClient struct {
	config
}

// NewHierarchyClient returns a client for the Hierarchy from the given config.
func NewHierarchyClient(c config) *HierarchyClient {
	return &HierarchyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hierarchy.Hooks(f(g(h())))`.
func (c *HierarchyClient) Use(hooks ...Hook) {
	c.hooks.Hierarchy = append(c.hooks.Hierarchy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hierarchy.Intercept(f(g(h())))`.
func (c *HierarchyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Hierarchy = append(c.inters.Hierarchy, interceptors...)
}

// Create returns a builder for creating a Hierarchy entity.
func (c *HierarchyClient) Create() *HierarchyCreate {
	mutation := newHierarchyMutation(c.config, OpCreate)
	return &HierarchyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Hierarchy entities.
func (c *HierarchyClient) CreateBulk(builders ...*HierarchyCreate) *HierarchyCreateBulk {
	return &HierarchyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HierarchyClient) MapCreateBulk(slice any, setFunc func(*HierarchyCreate, int)) *HierarchyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HierarchyCreateBulk{err: fmt.Errorf("calling to HierarchyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HierarchyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HierarchyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Hierarchy.
func (c *HierarchyClient) Update() *HierarchyUpdate {
	mutation := newHierarchyMutation(c.config, OpUpdate)
	return &HierarchyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HierarchyClient) UpdateOne(_m *Hierarchy) *HierarchyUpdateOne {
	mutation := newHierarchyMutation(c.config, OpUpdateOne, withHierarchy(_m))
	return &HierarchyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HierarchyClient) UpdateOneID(id int) *HierarchyUpdateOne {
	mutation := newHierarchyMutation(c.config, OpUpdateOne, withHierarchyID(id))
	return &HierarchyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Hierarchy.
func (c *HierarchyClient) Delete() *HierarchyDelete {
	mutation := newHierarchyMutation(c.config, OpDelete)
	return &HierarchyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HierarchyClient) DeleteOne(_m *Hierarchy) *HierarchyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HierarchyClient) DeleteOneID(id int) *HierarchyDeleteOne {
	builder := c.Delete().Where(hierarchy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HierarchyDeleteOne{builder}
}

// Query returns a query builder for Hierarchy.
func (c *HierarchyClient) Query() *HierarchyQuery {
	return &HierarchyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHierarchy},
		inters: c.Interceptors(),
	}
}

// Get returns a Hierarchy entity by its id.
func (c *HierarchyClient) Get(ctx context.Context, id int) (*Hierarchy, error) {
	return c.Query().Where(hierarchy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HierarchyClient) GetX(ctx context.Context, id int) *Hierarchy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a Hierarchy.
func (c *HierarchyClient) QueryParent(_m *Hierarchy) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hierarchy.Table, hierarchy.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hierarchy.ParentTable, hierarchy.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChild queries the child edge of a Hierarchy.
func (c *HierarchyClient) QueryChild(_m *Hierarchy) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hierarchy.Table, hierarchy.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hierarchy.ChildTable, hierarchy.ChildColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HierarchyClient) Hooks() []Hook {
	return c.hooks.Hierarchy
}

// Interceptors returns the client interceptors.
func (c *HierarchyClient) Interceptors() []Interceptor {
	return c.inters.Hierarchy
}

func (c *HierarchyClient) mutate(ctx context.Context, m *HierarchyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HierarchyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HierarchyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HierarchyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HierarchyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Hierarchy mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id int) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id int) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id int) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id int) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// WorkflowGraphClient is a client for the WorkflowGraph schema.
type WorkflowGraphClient struct {
	config
}

// NewWorkflowGraphClient returns a client for the WorkflowGraph from the given config.
func NewWorkflowGraphClient(c config) *WorkflowGraphClient {
	return &WorkflowGraphClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowgraph.Hooks(f(g(h())))`.
func (c *WorkflowGraphClient) Use(hooks ...Hook) {
	c.hooks.WorkflowGraph = append(c.hooks.WorkflowGraph, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowgraph.Intercept(f(g(h())))`.
func (c *WorkflowGraphClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowGraph = append(c.inters.WorkflowGraph, interceptors...)
}

// Create returns a builder for creating a WorkflowGraph entity.
func (c *WorkflowGraphClient) Create() *WorkflowGraphCreate {
	mutation := newWorkflowGraphMutation(c.config, OpCreate)
	return &WorkflowGraphCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowGraph entities.
func (c *WorkflowGraphClient) CreateBulk(builders ...*WorkflowGraphCreate) *WorkflowGraphCreateBulk {
	return &WorkflowGraphCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowGraphClient) MapCreateBulk(slice any, setFunc func(*WorkflowGraphCreate, int)) *WorkflowGraphCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowGraphCreateBulk{err: fmt.Errorf("calling to WorkflowGraphClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowGraphCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowGraphCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowGraph.
func (c *WorkflowGraphClient) Update() *WorkflowGraphUpdate {
	mutation := newWorkflowGraphMutation(c.config, OpUpdate)
	return &WorkflowGraphUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowGraphClient) UpdateOne(_m *WorkflowGraph) *WorkflowGraphUpdateOne {
	mutation := newWorkflowGraphMutation(c.config, OpUpdateOne, withWorkflowGraph(_m))
	return &WorkflowGraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowGraphClient) UpdateOneID(id string) *WorkflowGraphUpdateOne {
	mutation := newWorkflowGraphMutation(c.config, OpUpdateOne, withWorkflowGraphID(id))
	return &WorkflowGraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowGraph.
func (c *WorkflowGraphClient) Delete() *WorkflowGraphDelete {
	mutation := newWorkflowGraphMutation(c.config, OpDelete)
	return &WorkflowGraphDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowGraphClient) DeleteOne(_m *WorkflowGraph) *WorkflowGraphDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowGraphClient) DeleteOneID(id string) *WorkflowGraphDeleteOne {
	builder := c.Delete().Where(workflowgraph.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowGraphDeleteOne{builder}
}

// Query returns a query builder for WorkflowGraph.
func (c *WorkflowGraphClient) Query() *WorkflowGraphQuery {
	return &WorkflowGraphQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowGraph},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowGraph entity by its id.
func (c *WorkflowGraphClient) Get(ctx context.Context, id string) (*WorkflowGraph, error) {
	return c.Query().Where(workflowgraph.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowGraphClient) GetX(ctx context.Context, id string) *WorkflowGraph {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNodes queries the nodes edge of a WorkflowGraph.
func (c *WorkflowGraphClient) QueryNodes(_m *WorkflowGraph) *WorkflowNodeQuery {
	query := (&WorkflowNodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowgraph.Table, workflowgraph.FieldID, id),
			sqlgraph.To(workflownode.Table, workflownode.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowgraph.NodesTable, workflowgraph.NodesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowGraphClient) Hooks() []Hook {
	return c.hooks.WorkflowGraph
}

// Interceptors returns the client interceptors.
func (c *WorkflowGraphClient) Interceptors() []Interceptor {
	return c.inters.WorkflowGraph
}

func (c *WorkflowGraphClient) mutate(ctx context.Context, m *WorkflowGraphMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowGraphCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowGraphUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowGraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowGraphDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowGraph mutation op: %q", m.Op())
	}
}

// WorkflowNodeClient is a client for the WorkflowNode schema.
type WorkflowNodeClient struct {
	config
}

// NewWorkflowNodeClient returns a client for the WorkflowNode from the given config.
func NewWorkflowNodeClient(c config) *WorkflowNodeClient {
	return &WorkflowNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflownode.Hooks(f(g(h())))`.
func (c *WorkflowNodeClient) Use(hooks ...Hook) {
	c.hooks.WorkflowNode = append(c.hooks.WorkflowNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflownode.Intercept(f(g(h())))`.
func (c *WorkflowNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowNode = append(c.inters.WorkflowNode, interceptors...)
}

// Create returns a builder for creating a WorkflowNode entity.
func (c *WorkflowNodeClient) Create() *WorkflowNodeCreate {
	mutation := newWorkflowNodeMutation(c.config, OpCreate)
	return &WorkflowNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowNode entities.
func (c *WorkflowNodeClient) CreateBulk(builders ...*WorkflowNodeCreate) *WorkflowNodeCreateBulk {
	return &WorkflowNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowNodeClient) MapCreateBulk(slice any, setFunc func(*WorkflowNodeCreate, int)) *WorkflowNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowNodeCreateBulk{err: fmt.Errorf("calling to WorkflowNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowNode.
func (c *WorkflowNodeClient) Update() *WorkflowNodeUpdate {
	mutation := newWorkflowNodeMutation(c.config, OpUpdate)
	return &WorkflowNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowNodeClient) UpdateOne(_m *WorkflowNode) *WorkflowNodeUpdateOne {
	mutation := newWorkflowNodeMutation(c.config, OpUpdateOne, withWorkflowNode(_m))
	return &WorkflowNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowNodeClient) UpdateOneID(id string) *WorkflowNodeUpdateOne {
	mutation := newWorkflowNodeMutation(c.config, OpUpdateOne, withWorkflowNodeID(id))
	return &WorkflowNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowNode.
func (c *WorkflowNodeClient) Delete() *WorkflowNodeDelete {
	mutation := newWorkflowNodeMutation(c.config, OpDelete)
	return &WorkflowNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowNodeClient) DeleteOne(_m *WorkflowNode) *WorkflowNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowNodeClient) DeleteOneID(id string) *WorkflowNodeDeleteOne {
	builder := c.Delete().Where(workflownode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowNodeDeleteOne{builder}
}

// Query returns a query builder for WorkflowNode.
func (c *WorkflowNodeClient) Query() *WorkflowNodeQuery {
	return &WorkflowNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowNode},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowNode entity by its id.
func (c *WorkflowNodeClient) Get(ctx context.Context, id string) (*WorkflowNode, error) {
	return c.Query().Where(workflownode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowNodeClient) GetX(ctx context.Context, id string) *WorkflowNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGraph queries the graph edge of a WorkflowNode.
func (c *WorkflowNodeClient) QueryGraph(_m *WorkflowNode) *WorkflowGraphQuery {
	query := (&WorkflowGraphClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflownode.Table, workflownode.FieldID, id),
			sqlgraph.To(workflowgraph.Table, workflowgraph.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflownode.GraphTable, workflownode.GraphColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowNodeClient) Hooks() []Hook {
	return c.hooks.WorkflowNode
}

// Interceptors returns the client interceptors.
func (c *WorkflowNodeClient) Interceptors() []Interceptor {
	return c.inters.WorkflowNode
}

func (c *WorkflowNodeClient) mutate(ctx context.Context, m *WorkflowNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowNode mutation op: %q", m.Op())
	}
}

// WorkflowTemplateClient is a client for the WorkflowTemplate schema.
type WorkflowTemplateClient struct {
	config
}

// NewWorkflowTemplateClient returns a client for the WorkflowTemplate from the given config.
func NewWorkflowTemplateClient(c config) *WorkflowTemplateClient {
	return &WorkflowTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowtemplate.Hooks(f(g(h())))`.
func (c *WorkflowTemplateClient) Use(hooks ...Hook) {
	c.hooks.WorkflowTemplate = append(c.hooks.WorkflowTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowtemplate.Intercept(f(g(h())))`.
func (c *WorkflowTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowTemplate = append(c.inters.WorkflowTemplate, interceptors...)
}

// Create returns a builder for creating a WorkflowTemplate entity.
func (c *WorkflowTemplateClient) Create() *WorkflowTemplateCreate {
	mutation := newWorkflowTemplateMutation(c.config, OpCreate)
	return &WorkflowTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowTemplate entities.
func (c *WorkflowTemplateClient) CreateBulk(builders ...*WorkflowTemplateCreate) *WorkflowTemplateCreateBulk {
	return &WorkflowTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowTemplateClient) MapCreateBulk(slice any, setFunc func(*WorkflowTemplateCreate, int)) *WorkflowTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowTemplateCreateBulk{err: fmt.Errorf("calling to WorkflowTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowTemplate.
func (c *WorkflowTemplateClient) Update() *WorkflowTemplateUpdate {
	mutation := newWorkflowTemplateMutation(c.config, OpUpdate)
	return &WorkflowTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowTemplateClient) UpdateOne(_m *WorkflowTemplate) *WorkflowTemplateUpdateOne {
	mutation := newWorkflowTemplateMutation(c.config, OpUpdateOne, withWorkflowTemplate(_m))
	return &WorkflowTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowTemplateClient) UpdateOneID(id string) *WorkflowTemplateUpdateOne {
	mutation := newWorkflowTemplateMutation(c.config, OpUpdateOne, withWorkflowTemplateID(id))
	return &WorkflowTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowTemplate.
func (c *WorkflowTemplateClient) Delete() *WorkflowTemplateDelete {
	mutation := newWorkflowTemplateMutation(c.config, OpDelete)
	return &WorkflowTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowTemplateClient) DeleteOne(_m *WorkflowTemplate) *WorkflowTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowTemplateClient) DeleteOneID(id string) *WorkflowTemplateDeleteOne {
	builder := c.Delete().Where(workflowtemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowTemplateDeleteOne{builder}
}

// Query returns a query builder for WorkflowTemplate.
func (c *WorkflowTemplateClient) Query() *WorkflowTemplateQuery {
	return &WorkflowTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowTemplate entity by its id.
func (c *WorkflowTemplateClient) Get(ctx context.Context, id string) (*WorkflowTemplate, error) {
	return c.Query().Where(workflowtemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowTemplateClient) GetX(ctx context.Context, id string) *WorkflowTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkflowTemplateClient) Hooks() []Hook {
	return c.hooks.WorkflowTemplate
}

// Interceptors returns the client interceptors.
func (c *WorkflowTemplateClient) Interceptors() []Interceptor {
	return c.inters.WorkflowTemplate
}

func (c *WorkflowTemplateClient) mutate(ctx context.Context, m *WorkflowTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowTemplate mutation op: %q", m.Op())
	}
}

// WorkspaceClient is a client for the Workspace schema.
type WorkspaceClient struct {
	config
}

// NewWorkspaceClient returns a client for the Workspace from the given config.
func NewWorkspaceClient(c config) *WorkspaceClient {
	return &WorkspaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workspace.Hooks(f(g(h())))`.
func (c *WorkspaceClient) Use(hooks ...Hook) {
	c.hooks.Workspace = append(c.hooks.Workspace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workspace.Intercept(f(g(h())))`.
func (c *WorkspaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workspace = append(c.inters.Workspace, interceptors...)
}

// Create returns a builder for creating a Workspace entity.
func (c *WorkspaceClient) Create() *WorkspaceCreate {
	mutation := newWorkspaceMutation(c.config, OpCreate)
	return &WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workspace entities.
func (c *WorkspaceClient) CreateBulk(builders ...*WorkspaceCreate) *WorkspaceCreateBulk {
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkspaceClient) MapCreateBulk(slice any, setFunc func(*WorkspaceCreate, int)) *WorkspaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkspaceCreateBulk{err: fmt.Errorf("calling to WorkspaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkspaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workspace.
func (c *WorkspaceClient) Update() *WorkspaceUpdate {
	mutation := newWorkspaceMutation(c.config, OpUpdate)
	return &WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkspaceClient) UpdateOne(_m *Workspace) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspace(_m))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkspaceClient) UpdateOneID(id int) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspaceID(id))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workspace.
func (c *WorkspaceClient) Delete() *WorkspaceDelete {
	mutation := newWorkspaceMutation(c.config, OpDelete)
	return &WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkspaceClient) DeleteOne(_m *Workspace) *WorkspaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkspaceClient) DeleteOneID(id int) *WorkspaceDeleteOne {
	builder := c.Delete().Where(workspace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkspaceDeleteOne{builder}
}

// Query returns a query builder for Workspace.
func (c *WorkspaceClient) Query() *WorkspaceQuery {
	return &WorkspaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkspace},
		inters: c.Interceptors(),
	}
}

// Get returns a Workspace entity by its id.
func (c *WorkspaceClient) Get(ctx context.Context, id int) (*Workspace, error) {
	return c.Query().Where(workspace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkspaceClient) GetX(ctx context.Context, id int) *Workspace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a Workspace.
func (c *WorkspaceClient) QueryAgent(_m *Workspace) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, workspace.AgentTable, workspace.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkspaceClient) Hooks() []Hook {
	return c.hooks.Workspace
}

// Interceptors returns the client interceptors.
func (c *WorkspaceClient) Interceptors() []Interceptor {
	return c.inters.Workspace
}

func (c *WorkspaceClient) mutate(ctx context.Context, m *WorkspaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workspace mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, Budget, Hierarchy, Message, WorkflowGraph, WorkflowNode,
		WorkflowTemplate, Workspace []ent.Hook
	}
	inters struct {
		Agent, Budget, Hierarchy, Message, WorkflowGraph, WorkflowNode,
		WorkflowTemplate, Workspace []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
