// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/frontforge/frontforge/ent/roadmap"
	"github.com/frontforge/frontforge/ent/roadmaptask"
	"github.com/frontforge/frontforge/ent/task"
)

// RoadmapTaskCreate is the builder for creating a RoadmapTask entity.
type RoadmapTaskCreate struct {
	config
	mutation *RoadmapTaskMutation
	hooks    []Hook
}

// SetRoadmapID sets the "roadmap_id" field.
func (_c *RoadmapTaskCreate) SetRoadmapID(v int) *RoadmapTaskCreate {
	_c.mutation.SetRoadmapID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *RoadmapTaskCreate) SetTaskID(v int) *RoadmapTaskCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetOrdinal sets the "ordinal" field.
func (_c *RoadmapTaskCreate) SetOrdinal(v int) *RoadmapTaskCreate {
	_c.mutation.SetOrdinal(v)
	return _c
}

// SetRoadmap sets the "roadmap" edge to the Roadmap entity.
func (_c *RoadmapTaskCreate) SetRoadmap(v *Roadmap) *RoadmapTaskCreate {
	return _c.SetRoadmapID(v.ID)
}

// SetTask sets the "task" edge to the Task entity.
func (_c *RoadmapTaskCreate) SetTask(v *Task) *RoadmapTaskCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the RoadmapTaskMutation object of the builder.
func (_c *RoadmapTaskCreate) Mutation() *RoadmapTaskMutation {
	return _c.mutation
}

// Save creates the RoadmapTask in the database.
func (_c *RoadmapTaskCreate) Save(ctx context.Context) (*RoadmapTask, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoadmapTaskCreate) SaveX(ctx context.Context) *RoadmapTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoadmapTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoadmapTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoadmapTaskCreate) check() error {
	if _, ok := _c.mutation.RoadmapID(); !ok {
		return &ValidationError{Name: "roadmap_id", err: errors.New(`ent: missing required field "RoadmapTask.roadmap_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "RoadmapTask.task_id"`)}
	}
	if _, ok := _c.mutation.Ordinal(); !ok {
		return &ValidationError{Name: "ordinal", err: errors.New(`ent: missing required field "RoadmapTask.ordinal"`)}
	}
	if v, ok := _c.mutation.Ordinal(); ok {
		if err := roadmaptask.OrdinalValidator(v); err != nil {
			return &ValidationError{Name: "ordinal", err: fmt.Errorf(`ent: validator failed for field "RoadmapTask.ordinal": %w`, err)}
		}
	}
	if len(_c.mutation.RoadmapIDs()) == 0 {
		return &ValidationError{Name: "roadmap", err: errors.New(`ent: missing required edge "RoadmapTask.roadmap"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "RoadmapTask.task"`)}
	}
	return nil
}

func (_c *RoadmapTaskCreate) sqlSave(ctx context.Context) (*RoadmapTask, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoadmapTaskCreate) createSpec() (*RoadmapTask, *sqlgraph.CreateSpec) {
	var (
		_node = &RoadmapTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roadmaptask.Table, sqlgraph.NewFieldSpec(roadmaptask.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Ordinal(); ok {
		_spec.SetField(roadmaptask.FieldOrdinal, field.TypeInt, value)
		_node.Ordinal = value
	}
	if nodes := _c.mutation.RoadmapIDs(); len(nodes) > 0 {
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
		_node.RoadmapID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
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
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RoadmapTaskCreateBulk is the builder for creating many RoadmapTask entities in bulk.
type RoadmapTaskCreateBulk struct {
	config
	err      error
	builders []*RoadmapTaskCreate
}

// Save creates the RoadmapTask entities in the database.
func (_c *RoadmapTaskCreateBulk) Save(ctx context.Context) ([]*RoadmapTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoadmapTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoadmapTaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RoadmapTaskCreateBulk) SaveX(ctx context.Context) []*RoadmapTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoadmapTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoadmapTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
