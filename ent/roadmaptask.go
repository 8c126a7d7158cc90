// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/frontforge/frontforge/ent/roadmap"
	"github.com/frontforge/frontforge/ent/roadmaptask"
	"github.com/frontforge/frontforge/ent/task"
)

// RoadmapTask is the model entity for the RoadmapTask schema.
type RoadmapTask struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RoadmapID holds the value of the "roadmap_id" field.
	RoadmapID int `json:"roadmap_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID int `json:"task_id,omitempty"`
	// Position within the roadmap, ascending
	Ordinal int `json:"ordinal,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoadmapTaskQuery when eager-loading is set.
	Edges        RoadmapTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RoadmapTaskEdges holds the relations/edges for other nodes in the graph.
type RoadmapTaskEdges struct {
	// Roadmap holds the value of the roadmap edge.
	Roadmap *Roadmap `json:"roadmap,omitempty"`
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RoadmapOrErr returns the Roadmap value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoadmapTaskEdges) RoadmapOrErr() (*Roadmap, error) {
	if e.Roadmap != nil {
		return e.Roadmap, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: roadmap.Label}
	}
	return nil, &NotLoadedError{edge: "roadmap"}
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoadmapTaskEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoadmapTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roadmaptask.FieldID, roadmaptask.FieldRoadmapID, roadmaptask.FieldTaskID, roadmaptask.FieldOrdinal:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoadmapTask fields.
func (_m *RoadmapTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roadmaptask.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case roadmaptask.FieldRoadmapID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field roadmap_id", values[i])
			} else if value.Valid {
				_m.RoadmapID = int(value.Int64)
			}
		case roadmaptask.FieldTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = int(value.Int64)
			}
		case roadmaptask.FieldOrdinal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ordinal", values[i])
			} else if value.Valid {
				_m.Ordinal = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoadmapTask.
// This includes values selected through modifiers, order, etc.
func (_m *RoadmapTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRoadmap queries the "roadmap" edge of the RoadmapTask entity.
func (_m *RoadmapTask) QueryRoadmap() *RoadmapQuery {
	return NewRoadmapTaskClient(_m.config).QueryRoadmap(_m)
}

// QueryTask queries the "task" edge of the RoadmapTask entity.
func (_m *RoadmapTask) QueryTask() *TaskQuery {
	return NewRoadmapTaskClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this RoadmapTask.
// Note that you need to call RoadmapTask.Unwrap() before calling this method if this RoadmapTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoadmapTask) Update() *RoadmapTaskUpdateOne {
	return NewRoadmapTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoadmapTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoadmapTask) Unwrap() *RoadmapTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoadmapTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoadmapTask) String() string {
	var builder strings.Builder
	builder.WriteString("RoadmapTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("roadmap_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoadmapID))
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskID))
	builder.WriteString(", ")
	builder.WriteString("ordinal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ordinal))
	builder.WriteByte(')')
	return builder.String()
}

// RoadmapTasks is a parsable slice of RoadmapTask.
type RoadmapTasks []*RoadmapTask
