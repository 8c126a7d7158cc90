// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/frontforge/frontforge/ent/roadmap"
)

// Roadmap is the model entity for the Roadmap schema.
type Roadmap struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoadmapQuery when eager-loading is set.
	Edges        RoadmapEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RoadmapEdges holds the relations/edges for other nodes in the graph.
type RoadmapEdges struct {
	// Tasks holds the value of the tasks edge.
	Tasks []*RoadmapTask `json:"tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e RoadmapEdges) TasksOrErr() ([]*RoadmapTask, error) {
	if e.loadedTypes[0] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Roadmap) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roadmap.FieldID:
			values[i] = new(sql.NullInt64)
		case roadmap.FieldTitle:
			values[i] = new(sql.NullString)
		case roadmap.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Roadmap fields.
func (_m *Roadmap) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roadmap.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case roadmap.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case roadmap.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Roadmap.
// This includes values selected through modifiers, order, etc.
func (_m *Roadmap) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTasks queries the "tasks" edge of the Roadmap entity.
func (_m *Roadmap) QueryTasks() *RoadmapTaskQuery {
	return NewRoadmapClient(_m.config).QueryTasks(_m)
}

// Update returns a builder for updating this Roadmap.
// Note that you need to call Roadmap.Unwrap() before calling this method if this Roadmap
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Roadmap) Update() *RoadmapUpdateOne {
	return NewRoadmapClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Roadmap entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Roadmap) Unwrap() *Roadmap {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Roadmap is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Roadmap) String() string {
	var builder strings.Builder
	builder.WriteString("Roadmap(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Roadmaps is a parsable slice of Roadmap.
type Roadmaps []*Roadmap
