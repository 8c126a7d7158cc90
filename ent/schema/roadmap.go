package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Roadmap is an ordered sequence of tasks with sequential unlock gating.
// Lock state is never stored; it is derived on every read.
type Roadmap struct {
	ent.Schema
}

func (Roadmap) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Roadmap) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", RoadmapTask.Type),
	}
}
