package services

import (
	"context"
	"fmt"

	"github.com/maestro-orch/maestro/ent"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/hierarchy"
)

// HierarchyService owns the parent→child relation graph. Relations are
// rows in the hierarchies table; traversal and cycle checks are explicit
// walks over those rows, never an in-process pointer graph.
type HierarchyService struct {
	client *ent.Client
}

// NewHierarchyService creates a new HierarchyService.
func NewHierarchyService(client *ent.Client) *HierarchyService {
	return &HierarchyService{client: client}
}

// CreateRelationTx inserts a parent→child edge inside the caller's
// transaction, typically the one opened by AgentService.Spawn. The cycle
// check runs before the edge is written: the relation is rejected when the
// child equals the parent or is already an ancestor of it.
func (s *HierarchyService) CreateRelationTx(ctx context.Context, tx *ent.Tx, parentID, childID string) error {
	if parentID == childID {
		return fmt.Errorf("%w: agent %s cannot be its own parent", ErrCycle, parentID)
	}

	reachable, err := s.isAncestorTx(ctx, tx, childID, parentID)
	if err != nil {
		return fmt.Errorf("failed to run cycle check: %w", err)
	}
	if reachable {
		return fmt.Errorf("%w: %s is an ancestor of %s", ErrCycle, childID, parentID)
	}

	_, err = tx.Hierarchy.Create().
		SetParentID(parentID).
		SetChildID(childID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: relation %s→%s already exists", ErrConflict, parentID, childID)
		}
		return fmt.Errorf("failed to create hierarchy edge: %w", err)
	}

	return nil
}

// isAncestorTx reports whether candidate is an ancestor of node, walking
// the edge rows upward within the transaction.
func (s *HierarchyService) isAncestorTx(ctx context.Context, tx *ent.Tx, candidate, node string) (bool, error) {
	current := node
	for {
		edge, err := tx.Hierarchy.Query().
			Where(hierarchy.ChildIDEQ(current)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return false, nil
			}
			return false, err
		}
		if edge.ParentID == candidate {
			return true, nil
		}
		current = edge.ParentID
	}
}

// Children returns the direct children of an agent, oldest first.
func (s *HierarchyService) Children(ctx context.Context, parentID string) ([]*ent.Agent, error) {
	ids, err := s.client.Hierarchy.Query().
		Where(hierarchy.ParentIDEQ(parentID)).
		Order(ent.Asc(hierarchy.FieldCreatedAt)).
		Select(hierarchy.FieldChildID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query child edges: %w", err)
	}
	return s.agentsByIDOrdered(ctx, ids)
}

// Ancestors returns the chain from direct parent up to the root.
func (s *HierarchyService) Ancestors(ctx context.Context, childID string) ([]*ent.Agent, error) {
	var chain []string
	current := childID
	for {
		edge, err := s.client.Hierarchy.Query().
			Where(hierarchy.ChildIDEQ(current)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				break
			}
			return nil, fmt.Errorf("failed to query parent edge: %w", err)
		}
		chain = append(chain, edge.ParentID)
		current = edge.ParentID
	}
	return s.agentsByIDOrdered(ctx, chain)
}

// Descendants returns all agents below root in BFS order. maxDepth bounds
// the walk relative to root; 0 means unbounded.
func (s *HierarchyService) Descendants(ctx context.Context, rootID string, maxDepth int) ([]*ent.Agent, error) {
	var out []string
	frontier := []string{rootID}
	depth := 0
	for len(frontier) > 0 {
		if maxDepth > 0 && depth >= maxDepth {
			break
		}
		edges, err := s.client.Hierarchy.Query().
			Where(hierarchy.ParentIDIn(frontier...)).
			Order(ent.Asc(hierarchy.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query descendant edges: %w", err)
		}
		frontier = frontier[:0]
		for _, e := range edges {
			out = append(out, e.ChildID)
			frontier = append(frontier, e.ChildID)
		}
		depth++
	}
	return s.agentsByIDOrdered(ctx, out)
}

// Siblings returns the other children of an agent's parent. Root agents
// have no siblings.
func (s *HierarchyService) Siblings(ctx context.Context, childID string) ([]*ent.Agent, error) {
	edge, err := s.client.Hierarchy.Query().
		Where(hierarchy.ChildIDEQ(childID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query parent edge: %w", err)
	}

	ids, err := s.client.Hierarchy.Query().
		Where(
			hierarchy.ParentIDEQ(edge.ParentID),
			hierarchy.ChildIDNEQ(childID),
		).
		Order(ent.Asc(hierarchy.FieldCreatedAt)).
		Select(hierarchy.FieldChildID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query sibling edges: %w", err)
	}
	return s.agentsByIDOrdered(ctx, ids)
}

// agentsByIDOrdered loads agents preserving the given ID order.
func (s *HierarchyService) agentsByIDOrdered(ctx context.Context, ids []string) ([]*ent.Agent, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.client.Agent.Query().
		Where(agent.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agents: %w", err)
	}
	byID := make(map[string]*ent.Agent, len(rows))
	for _, a := range rows {
		byID[a.ID] = a
	}
	out := make([]*ent.Agent, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}
