// Code generated by ent, DO NOT EDIT.

package budget

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-orch/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAgentID, v))
}

// Allocated applies equality check predicate on the "allocated" field. It's identical to AllocatedEQ.
func Allocated(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAllocated, v))
}

// Used applies equality check predicate on the "used" field. It's identical to UsedEQ.
func Used(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldUsed, v))
}

// Reserved applies equality check predicate on the "reserved" field. It's identical to ReservedEQ.
func Reserved(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldReserved, v))
}

// Reclaimed applies equality check predicate on the "reclaimed" field. It's identical to ReclaimedEQ.
func Reclaimed(v bool) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldReclaimed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContainsFold(FieldAgentID, v))
}

// AllocatedEQ applies the EQ predicate on the "allocated" field.
func AllocatedEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAllocated, v))
}

// AllocatedNEQ applies the NEQ predicate on the "allocated" field.
func AllocatedNEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldAllocated, v))
}

// AllocatedIn applies the In predicate on the "allocated" field.
func AllocatedIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldAllocated, vs...))
}

// AllocatedNotIn applies the NotIn predicate on the "allocated" field.
func AllocatedNotIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldAllocated, vs...))
}

// AllocatedGT applies the GT predicate on the "allocated" field.
func AllocatedGT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldAllocated, v))
}

// AllocatedGTE applies the GTE predicate on the "allocated" field.
func AllocatedGTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldAllocated, v))
}

// AllocatedLT applies the LT predicate on the "allocated" field.
func AllocatedLT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldAllocated, v))
}

// AllocatedLTE applies the LTE predicate on the "allocated" field.
func AllocatedLTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldAllocated, v))
}

// UsedEQ applies the EQ predicate on the "used" field.
func UsedEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldUsed, v))
}

// UsedNEQ applies the NEQ predicate on the "used" field.
func UsedNEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldUsed, v))
}

// UsedIn applies the In predicate on the "used" field.
func UsedIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldUsed, vs...))
}

// UsedNotIn applies the NotIn predicate on the "used" field.
func UsedNotIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldUsed, vs...))
}

// UsedGT applies the GT predicate on the "used" field.
func UsedGT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldUsed, v))
}

// UsedGTE applies the GTE predicate on the "used" field.
func UsedGTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldUsed, v))
}

// UsedLT applies the LT predicate on the "used" field.
func UsedLT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldUsed, v))
}

// UsedLTE applies the LTE predicate on the "used" field.
func UsedLTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldUsed, v))
}

// ReservedEQ applies the EQ predicate on the "reserved" field.
func ReservedEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldReserved, v))
}

// ReservedNEQ applies the NEQ predicate on the "reserved" field.
func ReservedNEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldReserved, v))
}

// ReservedIn applies the In predicate on the "reserved" field.
func ReservedIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldReserved, vs...))
}

// ReservedNotIn applies the NotIn predicate on the "reserved" field.
func ReservedNotIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldReserved, vs...))
}

// ReservedGT applies the GT predicate on the "reserved" field.
func ReservedGT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldReserved, v))
}

// ReservedGTE applies the GTE predicate on the "reserved" field.
func ReservedGTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldReserved, v))
}

// ReservedLT applies the LT predicate on the "reserved" field.
func ReservedLT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldReserved, v))
}

// ReservedLTE applies the LTE predicate on the "reserved" field.
func ReservedLTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldReserved, v))
}

// ReclaimedEQ applies the EQ predicate on the "reclaimed" field.
func ReclaimedEQ(v bool) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldReclaimed, v))
}

// ReclaimedNEQ applies the NEQ predicate on the "reclaimed" field.
func ReclaimedNEQ(v bool) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldReclaimed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.Budget {
	return predicate.Budget(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.Budget {
	return predicate.Budget(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Budget) predicate.Budget {
	return predicate.Budget(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Budget) predicate.Budget {
	return predicate.Budget(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Budget) predicate.Budget {
	return predicate.Budget(sql.NotPredicates(p))
}
