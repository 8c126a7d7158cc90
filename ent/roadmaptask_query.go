// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/frontforge/frontforge/ent/predicate"
	"github.com/frontforge/frontforge/ent/roadmap"
	"github.com/frontforge/frontforge/ent/roadmaptask"
	"github.com/frontforge/frontforge/ent/task"
)

// RoadmapTaskQuery is the builder for querying RoadmapTask entities.
type RoadmapTaskQuery struct {
	config
	ctx         *QueryContext
	order       []roadmaptask.OrderOption
	inters      []Interceptor
	predicates  []predicate.RoadmapTask
	withRoadmap *RoadmapQuery
	withTask    *TaskQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RoadmapTaskQuery builder.
func (_q *RoadmapTaskQuery) Where(ps ...predicate.RoadmapTask) *RoadmapTaskQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RoadmapTaskQuery) Limit(limit int) *RoadmapTaskQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RoadmapTaskQuery) Offset(offset int) *RoadmapTaskQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RoadmapTaskQuery) Unique(unique bool) *RoadmapTaskQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RoadmapTaskQuery) Order(o ...roadmaptask.OrderOption) *RoadmapTaskQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRoadmap chains the current query on the "roadmap" edge.
func (_q *RoadmapTaskQuery) QueryRoadmap() *RoadmapQuery {
	query := (&RoadmapClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(roadmaptask.Table, roadmaptask.FieldID, selector),
			sqlgraph.To(roadmap.Table, roadmap.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, roadmaptask.RoadmapTable, roadmaptask.RoadmapColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTask chains the current query on the "task" edge.
func (_q *RoadmapTaskQuery) QueryTask() *TaskQuery {
	query := (&TaskClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(roadmaptask.Table, roadmaptask.FieldID, selector),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, roadmaptask.TaskTable, roadmaptask.TaskColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RoadmapTask entity from the query.
// Returns a *NotFoundError when no RoadmapTask was found.
func (_q *RoadmapTaskQuery) First(ctx context.Context) (*RoadmapTask, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{roadmaptask.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RoadmapTaskQuery) FirstX(ctx context.Context) *RoadmapTask {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RoadmapTask ID from the query.
// Returns a *NotFoundError when no RoadmapTask ID was found.
func (_q *RoadmapTaskQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{roadmaptask.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RoadmapTaskQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RoadmapTask entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RoadmapTask entity is found.
// Returns a *NotFoundError when no RoadmapTask entities are found.
func (_q *RoadmapTaskQuery) Only(ctx context.Context) (*RoadmapTask, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{roadmaptask.Label}
	default:
		return nil, &NotSingularError{roadmaptask.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RoadmapTaskQuery) OnlyX(ctx context.Context) *RoadmapTask {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RoadmapTask ID in the query.
// Returns a *NotSingularError when more than one RoadmapTask ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RoadmapTaskQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{roadmaptask.Label}
	default:
		err = &NotSingularError{roadmaptask.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RoadmapTaskQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RoadmapTasks.
func (_q *RoadmapTaskQuery) All(ctx context.Context) ([]*RoadmapTask, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RoadmapTask, *RoadmapTaskQuery]()
	return withInterceptors[[]*RoadmapTask](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RoadmapTaskQuery) AllX(ctx context.Context) []*RoadmapTask {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RoadmapTask IDs.
func (_q *RoadmapTaskQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(roadmaptask.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RoadmapTaskQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RoadmapTaskQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RoadmapTaskQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RoadmapTaskQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RoadmapTaskQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *RoadmapTaskQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RoadmapTaskQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RoadmapTaskQuery) Clone() *RoadmapTaskQuery {
	if _q == nil {
		return nil
	}
	return &RoadmapTaskQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]roadmaptask.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.RoadmapTask{}, _q.predicates...),
		withRoadmap: _q.withRoadmap.Clone(),
		withTask:    _q.withTask.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRoadmap tells the query-builder to eager-load the nodes that are connected to
// the "roadmap" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RoadmapTaskQuery) WithRoadmap(opts ...func(*RoadmapQuery)) *RoadmapTaskQuery {
	query := (&RoadmapClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRoadmap = query
	return _q
}

// WithTask tells the query-builder to eager-load the nodes that are connected to
// the "task" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RoadmapTaskQuery) WithTask(opts ...func(*TaskQuery)) *RoadmapTaskQuery {
	query := (&TaskClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTask = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RoadmapID int `json:"roadmap_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RoadmapTask.Query().
//		GroupBy(roadmaptask.FieldRoadmapID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RoadmapTaskQuery) GroupBy(field string, fields ...string) *RoadmapTaskGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RoadmapTaskGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = roadmaptask.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RoadmapID int `json:"roadmap_id,omitempty"`
//	}
//
//	client.RoadmapTask.Query().
//		Select(roadmaptask.FieldRoadmapID).
//		Scan(ctx, &v)
func (_q *RoadmapTaskQuery) Select(fields ...string) *RoadmapTaskSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RoadmapTaskSelect{RoadmapTaskQuery: _q}
	sbuild.label = roadmaptask.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RoadmapTaskSelect configured with the given aggregations.
func (_q *RoadmapTaskQuery) Aggregate(fns ...AggregateFunc) *RoadmapTaskSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RoadmapTaskQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !roadmaptask.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *RoadmapTaskQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RoadmapTask, error) {
	var (
		nodes       = []*RoadmapTask{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withRoadmap != nil,
			_q.withTask != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RoadmapTask).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RoadmapTask{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withRoadmap; query != nil {
		if err := _q.loadRoadmap(ctx, query, nodes, nil,
			func(n *RoadmapTask, e *Roadmap) { n.Edges.Roadmap = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTask; query != nil {
		if err := _q.loadTask(ctx, query, nodes, nil,
			func(n *RoadmapTask, e *Task) { n.Edges.Task = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RoadmapTaskQuery) loadRoadmap(ctx context.Context, query *RoadmapQuery, nodes []*RoadmapTask, init func(*RoadmapTask), assign func(*RoadmapTask, *Roadmap)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*RoadmapTask)
	for i := range nodes {
		fk := nodes[i].RoadmapID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(roadmap.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "roadmap_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RoadmapTaskQuery) loadTask(ctx context.Context, query *TaskQuery, nodes []*RoadmapTask, init func(*RoadmapTask), assign func(*RoadmapTask, *Task)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*RoadmapTask)
	for i := range nodes {
		fk := nodes[i].TaskID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(task.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "task_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *RoadmapTaskQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RoadmapTaskQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(roadmaptask.Table, roadmaptask.Columns, sqlgraph.NewFieldSpec(roadmaptask.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roadmaptask.FieldID)
		for i := range fields {
			if fields[i] != roadmaptask.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRoadmap != nil {
			_spec.Node.AddColumnOnce(roadmaptask.FieldRoadmapID)
		}
		if _q.withTask != nil {
			_spec.Node.AddColumnOnce(roadmaptask.FieldTaskID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *RoadmapTaskQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(roadmaptask.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = roadmaptask.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// RoadmapTaskGroupBy is the group-by builder for RoadmapTask entities.
type RoadmapTaskGroupBy struct {
	selector
	build *RoadmapTaskQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RoadmapTaskGroupBy) Aggregate(fns ...AggregateFunc) *RoadmapTaskGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RoadmapTaskGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RoadmapTaskQuery, *RoadmapTaskGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RoadmapTaskGroupBy) sqlScan(ctx context.Context, root *RoadmapTaskQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// RoadmapTaskSelect is the builder for selecting fields of RoadmapTask entities.
type RoadmapTaskSelect struct {
	*RoadmapTaskQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RoadmapTaskSelect) Aggregate(fns ...AggregateFunc) *RoadmapTaskSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RoadmapTaskSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RoadmapTaskQuery, *RoadmapTaskSelect](ctx, _s.RoadmapTaskQuery, _s, _s.inters, v)
}

func (_s *RoadmapTaskSelect) sqlScan(ctx context.Context, root *RoadmapTaskQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
