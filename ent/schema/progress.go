package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Progress is the per-learner, per-task completion record. At most one
// record exists per (learner, task) pair; status is true iff the best
// score reached the passing threshold.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.Int("learner_id"),
		field.Int("task_id"),
		field.Int("score").
			Optional().
			Nillable().
			Comment("Best score submitted so far, 0-100"),
		field.Bool("status").
			Default(false).
			Comment("True when score reached the passing threshold"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Progress) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("learner", Learner.Type).
			Ref("progress").
			Unique().
			Required().
			Field("learner_id"),
		edge.From("task", Task.Type).
			Ref("progress").
			Unique().
			Required().
			Field("task_id"),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "task_id").Unique(),
		index.Fields("task_id"),
	}
}
