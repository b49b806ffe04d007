// Package metrics exposes Prometheus collectors for kernel observability.
package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/maestro-orch/maestro/ent"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/budget"
	"github.com/maestro-orch/maestro/ent/message"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
	"github.com/maestro-orch/maestro/ent/workspace"
)

const scrapeTimeout = 5 * time.Second

// Collector reports kernel state straight from the database on each scrape.
// Counts are computed per scrape rather than incremented in-process, so the
// numbers stay correct across restarts and agree between pods sharing one
// database.
type Collector struct {
	client *ent.Client

	agentsByStatus   *prometheus.Desc
	messagesByStatus *prometheus.Desc
	graphsByStatus   *prometheus.Desc
	workspacesActive *prometheus.Desc
	tokensAllocated  *prometheus.Desc
	tokensUsed       *prometheus.Desc
	tokensReserved   *prometheus.Desc
}

// NewCollector creates a Collector over the given ent client.
func NewCollector(client *ent.Client) *Collector {
	return &Collector{
		client: client,
		agentsByStatus: prometheus.NewDesc(
			"maestro_agents",
			"Number of agents by lifecycle status.",
			[]string{"status"}, nil,
		),
		messagesByStatus: prometheus.NewDesc(
			"maestro_messages",
			"Number of messages by delivery status.",
			[]string{"status"}, nil,
		),
		graphsByStatus: prometheus.NewDesc(
			"maestro_workflow_graphs",
			"Number of workflow graphs by status.",
			[]string{"status"}, nil,
		),
		workspacesActive: prometheus.NewDesc(
			"maestro_workspaces_active",
			"Number of workspaces with a live worktree on disk.",
			nil, nil,
		),
		tokensAllocated: prometheus.NewDesc(
			"maestro_budget_tokens_allocated",
			"Sum of token budget allocations across all agents.",
			nil, nil,
		),
		tokensUsed: prometheus.NewDesc(
			"maestro_budget_tokens_used",
			"Sum of tokens consumed across all agents.",
			nil, nil,
		),
		tokensReserved: prometheus.NewDesc(
			"maestro_budget_tokens_reserved",
			"Sum of tokens reserved for child agents across all agents.",
			nil, nil,
		),
	}
}

// Register registers the collector with the given registerer. Duplicate
// registration (tests building multiple kernels against the default
// registry) is tolerated.
func (c *Collector) Register(reg prometheus.Registerer) error {
	if err := reg.Register(c); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return nil
		}
		return err
	}
	return nil
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.agentsByStatus
	ch <- c.messagesByStatus
	ch <- c.graphsByStatus
	ch <- c.workspacesActive
	ch <- c.tokensAllocated
	ch <- c.tokensUsed
	ch <- c.tokensReserved
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	c.collectAgents(ctx, ch)
	c.collectMessages(ctx, ch)
	c.collectGraphs(ctx, ch)
	c.collectWorkspaces(ctx, ch)
	c.collectBudgets(ctx, ch)
}

func (c *Collector) collectAgents(ctx context.Context, ch chan<- prometheus.Metric) {
	var rows []struct {
		Status agent.Status `json:"status"`
		Count  int          `json:"count"`
	}
	err := c.client.Agent.Query().
		GroupBy(agent.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		slog.Error("Metrics: agent count query failed", "error", err)
		return
	}
	counts := map[agent.Status]int{}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	for _, status := range []agent.Status{
		agent.StatusPending, agent.StatusExecuting, agent.StatusCompleted,
		agent.StatusFailed, agent.StatusTerminated,
	} {
		ch <- prometheus.MustNewConstMetric(
			c.agentsByStatus, prometheus.GaugeValue,
			float64(counts[status]), string(status))
	}
}

func (c *Collector) collectMessages(ctx context.Context, ch chan<- prometheus.Metric) {
	var rows []struct {
		Status message.Status `json:"status"`
		Count  int            `json:"count"`
	}
	err := c.client.Message.Query().
		GroupBy(message.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		slog.Error("Metrics: message count query failed", "error", err)
		return
	}
	counts := map[message.Status]int{}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	for _, status := range []message.Status{
		message.StatusPending, message.StatusDelivered,
		message.StatusProcessed, message.StatusFailed,
	} {
		ch <- prometheus.MustNewConstMetric(
			c.messagesByStatus, prometheus.GaugeValue,
			float64(counts[status]), string(status))
	}
}

func (c *Collector) collectGraphs(ctx context.Context, ch chan<- prometheus.Metric) {
	var rows []struct {
		Status workflowgraph.Status `json:"status"`
		Count  int                  `json:"count"`
	}
	err := c.client.WorkflowGraph.Query().
		GroupBy(workflowgraph.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		slog.Error("Metrics: graph count query failed", "error", err)
		return
	}
	counts := map[workflowgraph.Status]int{}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	for _, status := range []workflowgraph.Status{
		workflowgraph.StatusPending, workflowgraph.StatusActive,
		workflowgraph.StatusPaused, workflowgraph.StatusCompleted,
		workflowgraph.StatusFailed, workflowgraph.StatusTerminated,
	} {
		ch <- prometheus.MustNewConstMetric(
			c.graphsByStatus, prometheus.GaugeValue,
			float64(counts[status]), string(status))
	}
}

func (c *Collector) collectWorkspaces(ctx context.Context, ch chan<- prometheus.Metric) {
	count, err := c.client.Workspace.Query().
		Where(workspace.IsolationStatusIn(
			workspace.IsolationStatusActive,
			workspace.IsolationStatusMerged,
			workspace.IsolationStatusAbandoned,
		)).
		Count(ctx)
	if err != nil {
		slog.Error("Metrics: workspace count query failed", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(
		c.workspacesActive, prometheus.GaugeValue, float64(count))
}

func (c *Collector) collectBudgets(ctx context.Context, ch chan<- prometheus.Metric) {
	var rows []struct {
		Allocated int `json:"allocated"`
		Used      int `json:"used"`
		Reserved  int `json:"reserved"`
	}
	err := c.client.Budget.Query().
		Aggregate(
			ent.As(ent.Sum(budget.FieldAllocated), "allocated"),
			ent.As(ent.Sum(budget.FieldUsed), "used"),
			ent.As(ent.Sum(budget.FieldReserved), "reserved"),
		).
		Scan(ctx, &rows)
	if err != nil || len(rows) == 0 {
		slog.Error("Metrics: budget sum query failed", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(
		c.tokensAllocated, prometheus.GaugeValue, float64(rows[0].Allocated))
	ch <- prometheus.MustNewConstMetric(
		c.tokensUsed, prometheus.GaugeValue, float64(rows[0].Used))
	ch <- prometheus.MustNewConstMetric(
		c.tokensReserved, prometheus.GaugeValue, float64(rows[0].Reserved))
}
