// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"
	"sdg-innovation-api/ent/predicate"
	"sdg-innovation-api/ent/program"
	"sdg-innovation-api/ent/school"
	"sdg-innovation-api/ent/schoolprogram"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SchoolProgramQuery is the builder for querying SchoolProgram entities.
type SchoolProgramQuery struct {
	config
	ctx         *QueryContext
	order       []schoolprogram.OrderOption
	inters      []Interceptor
	predicates  []predicate.SchoolProgram
	withSchool  *SchoolQuery
	withProgram *ProgramQuery
	withFKs     bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SchoolProgramQuery builder.
func (_q *SchoolProgramQuery) Where(ps ...predicate.SchoolProgram) *SchoolProgramQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SchoolProgramQuery) Limit(limit int) *SchoolProgramQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SchoolProgramQuery) Offset(offset int) *SchoolProgramQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SchoolProgramQuery) Unique(unique bool) *SchoolProgramQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SchoolProgramQuery) Order(o ...schoolprogram.OrderOption) *SchoolProgramQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySchool chains the current query on the "school" edge.
func (_q *SchoolProgramQuery) QuerySchool() *SchoolQuery {
	query := (&SchoolClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(schoolprogram.Table, schoolprogram.FieldID, selector),
			sqlgraph.To(school.Table, school.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, schoolprogram.SchoolTable, schoolprogram.SchoolColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryProgram chains the current query on the "program" edge.
func (_q *SchoolProgramQuery) QueryProgram() *ProgramQuery {
	query := (&ProgramClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(schoolprogram.Table, schoolprogram.FieldID, selector),
			sqlgraph.To(program.Table, program.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, schoolprogram.ProgramTable, schoolprogram.ProgramColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SchoolProgram entity from the query.
// Returns a *NotFoundError when no SchoolProgram was found.
func (_q *SchoolProgramQuery) First(ctx context.Context) (*SchoolProgram, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{schoolprogram.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SchoolProgramQuery) FirstX(ctx context.Context) *SchoolProgram {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SchoolProgram ID from the query.
// Returns a *NotFoundError when no SchoolProgram ID was found.
func (_q *SchoolProgramQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{schoolprogram.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SchoolProgramQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SchoolProgram entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SchoolProgram entity is found.
// Returns a *NotFoundError when no SchoolProgram entities are found.
func (_q *SchoolProgramQuery) Only(ctx context.Context) (*SchoolProgram, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{schoolprogram.Label}
	default:
		return nil, &NotSingularError{schoolprogram.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SchoolProgramQuery) OnlyX(ctx context.Context) *SchoolProgram {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SchoolProgram ID in the query.
// Returns a *NotSingularError when more than one SchoolProgram ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SchoolProgramQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{schoolprogram.Label}
	default:
		err = &NotSingularError{schoolprogram.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SchoolProgramQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SchoolPrograms.
func (_q *SchoolProgramQuery) All(ctx context.Context) ([]*SchoolProgram, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SchoolProgram, *SchoolProgramQuery]()
	return withInterceptors[[]*SchoolProgram](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SchoolProgramQuery) AllX(ctx context.Context) []*SchoolProgram {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SchoolProgram IDs.
func (_q *SchoolProgramQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(schoolprogram.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SchoolProgramQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SchoolProgramQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SchoolProgramQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SchoolProgramQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SchoolProgramQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SchoolProgramQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SchoolProgramQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SchoolProgramQuery) Clone() *SchoolProgramQuery {
	if _q == nil {
		return nil
	}
	return &SchoolProgramQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]schoolprogram.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.SchoolProgram{}, _q.predicates...),
		withSchool:  _q.withSchool.Clone(),
		withProgram: _q.withProgram.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSchool tells the query-builder to eager-load the nodes that are connected to
// the "school" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SchoolProgramQuery) WithSchool(opts ...func(*SchoolQuery)) *SchoolProgramQuery {
	query := (&SchoolClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSchool = query
	return _q
}

// WithProgram tells the query-builder to eager-load the nodes that are connected to
// the "program" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SchoolProgramQuery) WithProgram(opts ...func(*ProgramQuery)) *SchoolProgramQuery {
	query := (&ProgramClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProgram = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		NumberOfStudents int `json:"number_of_students,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SchoolProgram.Query().
//		GroupBy(schoolprogram.FieldNumberOfStudents).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SchoolProgramQuery) GroupBy(field string, fields ...string) *SchoolProgramGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SchoolProgramGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = schoolprogram.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		NumberOfStudents int `json:"number_of_students,omitempty"`
//	}
//
//	client.SchoolProgram.Query().
//		Select(schoolprogram.FieldNumberOfStudents).
//		Scan(ctx, &v)
func (_q *SchoolProgramQuery) Select(fields ...string) *SchoolProgramSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SchoolProgramSelect{SchoolProgramQuery: _q}
	sbuild.label = schoolprogram.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SchoolProgramSelect configured with the given aggregations.
func (_q *SchoolProgramQuery) Aggregate(fns ...AggregateFunc) *SchoolProgramSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SchoolProgramQuery) prepareQuery(ctx context.Context) error {
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
		if !schoolprogram.ValidColumn(f) {
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

func (_q *SchoolProgramQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SchoolProgram, error) {
	var (
		nodes       = []*SchoolProgram{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withSchool != nil,
			_q.withProgram != nil,
		}
	)
	if _q.withSchool != nil || _q.withProgram != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, schoolprogram.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SchoolProgram).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SchoolProgram{config: _q.config}
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
	if query := _q.withSchool; query != nil {
		if err := _q.loadSchool(ctx, query, nodes, nil,
			func(n *SchoolProgram, e *School) { n.Edges.School = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withProgram; query != nil {
		if err := _q.loadProgram(ctx, query, nodes, nil,
			func(n *SchoolProgram, e *Program) { n.Edges.Program = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SchoolProgramQuery) loadSchool(ctx context.Context, query *SchoolQuery, nodes []*SchoolProgram, init func(*SchoolProgram), assign func(*SchoolProgram, *School)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*SchoolProgram)
	for i := range nodes {
		if nodes[i].school_program_school == nil {
			continue
		}
		fk := *nodes[i].school_program_school
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(school.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "school_program_school" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SchoolProgramQuery) loadProgram(ctx context.Context, query *ProgramQuery, nodes []*SchoolProgram, init func(*SchoolProgram), assign func(*SchoolProgram, *Program)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*SchoolProgram)
	for i := range nodes {
		if nodes[i].school_program_program == nil {
			continue
		}
		fk := *nodes[i].school_program_program
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(program.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "school_program_program" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *SchoolProgramQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SchoolProgramQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(schoolprogram.Table, schoolprogram.Columns, sqlgraph.NewFieldSpec(schoolprogram.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schoolprogram.FieldID)
		for i := range fields {
			if fields[i] != schoolprogram.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *SchoolProgramQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(schoolprogram.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = schoolprogram.Columns
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

// SchoolProgramGroupBy is the group-by builder for SchoolProgram entities.
type SchoolProgramGroupBy struct {
	selector
	build *SchoolProgramQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SchoolProgramGroupBy) Aggregate(fns ...AggregateFunc) *SchoolProgramGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SchoolProgramGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SchoolProgramQuery, *SchoolProgramGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SchoolProgramGroupBy) sqlScan(ctx context.Context, root *SchoolProgramQuery, v any) error {
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

// SchoolProgramSelect is the builder for selecting fields of SchoolProgram entities.
type SchoolProgramSelect struct {
	*SchoolProgramQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SchoolProgramSelect) Aggregate(fns ...AggregateFunc) *SchoolProgramSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SchoolProgramSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SchoolProgramQuery, *SchoolProgramSelect](ctx, _s.SchoolProgramQuery, _s, _s.inters, v)
}

func (_s *SchoolProgramSelect) sqlScan(ctx context.Context, root *SchoolProgramQuery, v any) error {
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
