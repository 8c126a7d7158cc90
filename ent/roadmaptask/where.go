// Code generated by ent, DO NOT EDIT.

package roadmaptask

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/frontforge/frontforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldLTE(FieldID, id))
}

// RoadmapID applies equality check predicate on the "roadmap_id" field. It's identical to RoadmapIDEQ.
func RoadmapID(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldEQ(FieldRoadmapID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldEQ(FieldTaskID, v))
}

// Ordinal applies equality check predicate on the "ordinal" field. It's identical to OrdinalEQ.
func Ordinal(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldEQ(FieldOrdinal, v))
}

// RoadmapIDEQ applies the EQ predicate on the "roadmap_id" field.
func RoadmapIDEQ(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldEQ(FieldRoadmapID, v))
}

// RoadmapIDNEQ applies the NEQ predicate on the "roadmap_id" field.
func RoadmapIDNEQ(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldNEQ(FieldRoadmapID, v))
}

// RoadmapIDIn applies the In predicate on the "roadmap_id" field.
func RoadmapIDIn(vs ...int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldIn(FieldRoadmapID, vs...))
}

// RoadmapIDNotIn applies the NotIn predicate on the "roadmap_id" field.
func RoadmapIDNotIn(vs ...int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldNotIn(FieldRoadmapID, vs...))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldNotIn(FieldTaskID, vs...))
}

// OrdinalEQ applies the EQ predicate on the "ordinal" field.
func OrdinalEQ(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldEQ(FieldOrdinal, v))
}

// OrdinalNEQ applies the NEQ predicate on the "ordinal" field.
func OrdinalNEQ(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldNEQ(FieldOrdinal, v))
}

// OrdinalIn applies the In predicate on the "ordinal" field.
func OrdinalIn(vs ...int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldIn(FieldOrdinal, vs...))
}

// OrdinalNotIn applies the NotIn predicate on the "ordinal" field.
func OrdinalNotIn(vs ...int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldNotIn(FieldOrdinal, vs...))
}

// OrdinalGT applies the GT predicate on the "ordinal" field.
func OrdinalGT(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldGT(FieldOrdinal, v))
}

// OrdinalGTE applies the GTE predicate on the "ordinal" field.
func OrdinalGTE(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldGTE(FieldOrdinal, v))
}

// OrdinalLT applies the LT predicate on the "ordinal" field.
func OrdinalLT(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldLT(FieldOrdinal, v))
}

// OrdinalLTE applies the LTE predicate on the "ordinal" field.
func OrdinalLTE(v int) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.FieldLTE(FieldOrdinal, v))
}

// HasRoadmap applies the HasEdge predicate on the "roadmap" edge.
func HasRoadmap() predicate.RoadmapTask {
	return predicate.RoadmapTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoadmapTable, RoadmapColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoadmapWith applies the HasEdge predicate on the "roadmap" edge with a given conditions (other predicates).
func HasRoadmapWith(preds ...predicate.Roadmap) predicate.RoadmapTask {
	return predicate.RoadmapTask(func(s *sql.Selector) {
		step := newRoadmapStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.RoadmapTask {
	return predicate.RoadmapTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.RoadmapTask {
	return predicate.RoadmapTask(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoadmapTask) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoadmapTask) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoadmapTask) predicate.RoadmapTask {
	return predicate.RoadmapTask(sql.NotPredicates(p))
}
