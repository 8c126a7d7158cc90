// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Learner is the predicate function for learner builders.
type Learner func(*sql.Selector)

// Progress is the predicate function for progress builders.
type Progress func(*sql.Selector)

// Roadmap is the predicate function for roadmap builders.
type Roadmap func(*sql.Selector)

// RoadmapTask is the predicate function for roadmaptask builders.
type RoadmapTask func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
