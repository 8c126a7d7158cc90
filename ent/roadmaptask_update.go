// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/frontforge/frontforge/ent/predicate"
	"github.com/frontforge/frontforge/ent/roadmap"
	"github.com/frontforge/frontforge/ent/roadmaptask"
	"github.com/frontforge/frontforge/ent/task"
)

// RoadmapTaskUpdate is the builder for updating RoadmapTask entities.
type RoadmapTaskUpdate struct {
	config
	hooks    []Hook
	mutation *RoadmapTaskMutation
}

// Where appends a list predicates to the RoadmapTaskUpdate builder.
func (_u *RoadmapTaskUpdate) Where(ps ...predicate.RoadmapTask) *RoadmapTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *RoadmapTaskUpdate) SetRoadmapID(v int) *RoadmapTaskUpdate {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *RoadmapTaskUpdate) SetNillableRoadmapID(v *int) *RoadmapTaskUpdate {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *RoadmapTaskUpdate) SetTaskID(v int) *RoadmapTaskUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *RoadmapTaskUpdate) SetNillableTaskID(v *int) *RoadmapTaskUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetOrdinal sets the "ordinal" field.
func (_u *RoadmapTaskUpdate) SetOrdinal(v int) *RoadmapTaskUpdate {
	_u.mutation.ResetOrdinal()
	_u.mutation.SetOrdinal(v)
	return _u
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_u *RoadmapTaskUpdate) SetNillableOrdinal(v *int) *RoadmapTaskUpdate {
	if v != nil {
		_u.SetOrdinal(*v)
	}
	return _u
}

// AddOrdinal adds value to the "ordinal" field.
func (_u *RoadmapTaskUpdate) AddOrdinal(v int) *RoadmapTaskUpdate {
	_u.mutation.AddOrdinal(v)
	return _u
}

// SetRoadmap sets the "roadmap" edge to the Roadmap entity.
func (_u *RoadmapTaskUpdate) SetRoadmap(v *Roadmap) *RoadmapTaskUpdate {
	return _u.SetRoadmapID(v.ID)
}

// SetTask sets the "task" edge to the Task entity.
func (_u *RoadmapTaskUpdate) SetTask(v *Task) *RoadmapTaskUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the RoadmapTaskMutation object of the builder.
func (_u *RoadmapTaskUpdate) Mutation() *RoadmapTaskMutation {
	return _u.mutation
}

// ClearRoadmap clears the "roadmap" edge to the Roadmap entity.
func (_u *RoadmapTaskUpdate) ClearRoadmap() *RoadmapTaskUpdate {
	_u.mutation.ClearRoadmap()
	return _u
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *RoadmapTaskUpdate) ClearTask() *RoadmapTaskUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoadmapTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoadmapTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoadmapTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoadmapTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoadmapTaskUpdate) check() error {
	if v, ok := _u.mutation.Ordinal(); ok {
		if err := roadmaptask.OrdinalValidator(v); err != nil {
			return &ValidationError{Name: "ordinal", err: fmt.Errorf(`ent: validator failed for field "RoadmapTask.ordinal": %w`, err)}
		}
	}
	if _u.mutation.RoadmapCleared() && len(_u.mutation.RoadmapIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoadmapTask.roadmap"`)
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoadmapTask.task"`)
	}
	return nil
}

func (_u *RoadmapTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roadmaptask.Table, roadmaptask.Columns, sqlgraph.NewFieldSpec(roadmaptask.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ordinal(); ok {
		_spec.SetField(roadmaptask.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdinal(); ok {
		_spec.AddField(roadmaptask.FieldOrdinal, field.TypeInt, value)
	}
	if _u.mutation.RoadmapCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roadmaptask.RoadmapTable,
			Columns: []string{roadmaptask.RoadmapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoadmapIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roadmaptask.RoadmapTable,
			Columns: []string{roadmaptask.RoadmapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roadmaptask.TaskTable,
			Columns: []string{roadmaptask.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roadmaptask.TaskTable,
			Columns: []string{roadmaptask.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roadmaptask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoadmapTaskUpdateOne is the builder for updating a single RoadmapTask entity.
type RoadmapTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoadmapTaskMutation
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *RoadmapTaskUpdateOne) SetRoadmapID(v int) *RoadmapTaskUpdateOne {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *RoadmapTaskUpdateOne) SetNillableRoadmapID(v *int) *RoadmapTaskUpdateOne {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *RoadmapTaskUpdateOne) SetTaskID(v int) *RoadmapTaskUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *RoadmapTaskUpdateOne) SetNillableTaskID(v *int) *RoadmapTaskUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetOrdinal sets the "ordinal" field.
func (_u *RoadmapTaskUpdateOne) SetOrdinal(v int) *RoadmapTaskUpdateOne {
	_u.mutation.ResetOrdinal()
	_u.mutation.SetOrdinal(v)
	return _u
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_u *RoadmapTaskUpdateOne) SetNillableOrdinal(v *int) *RoadmapTaskUpdateOne {
	if v != nil {
		_u.SetOrdinal(*v)
	}
	return _u
}

// AddOrdinal adds value to the "ordinal" field.
func (_u *RoadmapTaskUpdateOne) AddOrdinal(v int) *RoadmapTaskUpdateOne {
	_u.mutation.AddOrdinal(v)
	return _u
}

// SetRoadmap sets the "roadmap" edge to the Roadmap entity.
func (_u *RoadmapTaskUpdateOne) SetRoadmap(v *Roadmap) *RoadmapTaskUpdateOne {
	return _u.SetRoadmapID(v.ID)
}

// SetTask sets the "task" edge to the Task entity.
func (_u *RoadmapTaskUpdateOne) SetTask(v *Task) *RoadmapTaskUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the RoadmapTaskMutation object of the builder.
func (_u *RoadmapTaskUpdateOne) Mutation() *RoadmapTaskMutation {
	return _u.mutation
}

// ClearRoadmap clears the "roadmap" edge to the Roadmap entity.
func (_u *RoadmapTaskUpdateOne) ClearRoadmap() *RoadmapTaskUpdateOne {
	_u.mutation.ClearRoadmap()
	return _u
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *RoadmapTaskUpdateOne) ClearTask() *RoadmapTaskUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the RoadmapTaskUpdate builder.
func (_u *RoadmapTaskUpdateOne) Where(ps ...predicate.RoadmapTask) *RoadmapTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoadmapTaskUpdateOne) Select(field string, fields ...string) *RoadmapTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoadmapTask entity.
func (_u *RoadmapTaskUpdateOne) Save(ctx context.Context) (*RoadmapTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoadmapTaskUpdateOne) SaveX(ctx context.Context) *RoadmapTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoadmapTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoadmapTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoadmapTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Ordinal(); ok {
		if err := roadmaptask.OrdinalValidator(v); err != nil {
			return &ValidationError{Name: "ordinal", err: fmt.Errorf(`ent: validator failed for field "RoadmapTask.ordinal": %w`, err)}
		}
	}
	if _u.mutation.RoadmapCleared() && len(_u.mutation.RoadmapIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoadmapTask.roadmap"`)
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoadmapTask.task"`)
	}
	return nil
}

func (_u *RoadmapTaskUpdateOne) sqlSave(ctx context.Context) (_node *RoadmapTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roadmaptask.Table, roadmaptask.Columns, sqlgraph.NewFieldSpec(roadmaptask.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoadmapTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roadmaptask.FieldID)
		for _, f := range fields {
			if !roadmaptask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roadmaptask.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ordinal(); ok {
		_spec.SetField(roadmaptask.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdinal(); ok {
		_spec.AddField(roadmaptask.FieldOrdinal, field.TypeInt, value)
	}
	if _u.mutation.RoadmapCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roadmaptask.RoadmapTable,
			Columns: []string{roadmaptask.RoadmapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoadmapIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roadmaptask.RoadmapTable,
			Columns: []string{roadmaptask.RoadmapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roadmaptask.TaskTable,
			Columns: []string{roadmaptask.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roadmaptask.TaskTable,
			Columns: []string{roadmaptask.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RoadmapTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roadmaptask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
