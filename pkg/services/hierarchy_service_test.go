package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHierarchyService_Traversal(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	// root → {a, b}; a → {c}
	root := ts.spawnRoot(t, ctx, 10_000)
	a := ts.spawnChild(t, ctx, root.ID, 2_000)
	b := ts.spawnChild(t, ctx, root.ID, 2_000)
	c := ts.spawnChild(t, ctx, a.ID, 500)

	children, err := ts.hierarchy.Children(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, a.ID, children[0].ID)
	assert.Equal(t, b.ID, children[1].ID)

	ancestors, err := ts.hierarchy.Ancestors(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, ancestors, 2)
	assert.Equal(t, a.ID, ancestors[0].ID)
	assert.Equal(t, root.ID, ancestors[1].ID)

	descendants, err := ts.hierarchy.Descendants(ctx, root.ID, 0)
	require.NoError(t, err)
	ids := make([]string, len(descendants))
	for i, d := range descendants {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, ids)

	// Depth-bounded walk stops before c.
	shallow, err := ts.hierarchy.Descendants(ctx, root.ID, 1)
	require.NoError(t, err)
	assert.Len(t, shallow, 2)

	siblings, err := ts.hierarchy.Siblings(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, siblings, 1)
	assert.Equal(t, b.ID, siblings[0].ID)

	// Root has no parent edge, hence no siblings.
	siblings, err = ts.hierarchy.Siblings(ctx, root.ID)
	require.NoError(t, err)
	assert.Empty(t, siblings)
}

func TestHierarchyService_RejectsSelfEdge(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 1_000)

	tx, err := ts.client.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	err = ts.hierarchy.CreateRelationTx(ctx, tx, root.ID, root.ID)
	assert.ErrorIs(t, err, ErrCycle)
}

func TestHierarchyService_RejectsCycle(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	// Chain a → b → c, then attempt c → a.
	a := ts.spawnRoot(t, ctx, 10_000)
	b := ts.spawnChild(t, ctx, a.ID, 2_000)
	c := ts.spawnChild(t, ctx, b.ID, 500)

	tx, err := ts.client.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	err = ts.hierarchy.CreateRelationTx(ctx, tx, c.ID, a.ID)
	assert.ErrorIs(t, err, ErrCycle)
}

func TestHierarchyService_RejectsDuplicateEdge(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 10_000)
	child := ts.spawnChild(t, ctx, root.ID, 1_000)

	tx, err := ts.client.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	err = ts.hierarchy.CreateRelationTx(ctx, tx, root.ID, child.ID)
	assert.ErrorIs(t, err, ErrConflict)
}
