// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sdg-innovation-api/ent/predicate"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/solution"
	"sdg-innovation-api/ent/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SolutionUpdate is the builder for updating Solution entities.
type SolutionUpdate struct {
	config
	hooks    []Hook
	mutation *SolutionMutation
}

// Where appends a list predicates to the SolutionUpdate builder.
func (_u *SolutionUpdate) Where(ps ...predicate.Solution) *SolutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SolutionUpdate) SetTitle(v string) *SolutionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableTitle(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *SolutionUpdate) SetDetail(v string) *SolutionUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableDetail(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetKeyFeatures sets the "key_features" field.
func (_u *SolutionUpdate) SetKeyFeatures(v string) *SolutionUpdate {
	_u.mutation.SetKeyFeatures(v)
	return _u
}

// SetNillableKeyFeatures sets the "key_features" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableKeyFeatures(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetKeyFeatures(*v)
	}
	return _u
}

// SetImplementationSteps sets the "implementation_steps" field.
func (_u *SolutionUpdate) SetImplementationSteps(v string) *SolutionUpdate {
	_u.mutation.SetImplementationSteps(v)
	return _u
}

// SetNillableImplementationSteps sets the "implementation_steps" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableImplementationSteps(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetImplementationSteps(*v)
	}
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *SolutionUpdate) SetOwnerID(id uuid.UUID) *SolutionUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *SolutionUpdate) SetOwner(v *User) *SolutionUpdate {
	return _u.SetOwnerID(v.ID)
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *SolutionUpdate) SetProjectID(id uuid.UUID) *SolutionUpdate {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetNillableProjectID sets the "project" edge to the Project entity by ID if the given value is not nil.
func (_u *SolutionUpdate) SetNillableProjectID(id *uuid.UUID) *SolutionUpdate {
	if id != nil {
		_u = _u.SetProjectID(*id)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *SolutionUpdate) SetProject(v *Project) *SolutionUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the SolutionMutation object of the builder.
func (_u *SolutionUpdate) Mutation() *SolutionMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *SolutionUpdate) ClearOwner() *SolutionUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *SolutionUpdate) ClearProject() *SolutionUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SolutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SolutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolutionUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := solution.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Solution.title": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Solution.owner"`)
	}
	return nil
}

func (_u *SolutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solution.Table, solution.Columns, sqlgraph.NewFieldSpec(solution.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(solution.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(solution.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyFeatures(); ok {
		_spec.SetField(solution.FieldKeyFeatures, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImplementationSteps(); ok {
		_spec.SetField(solution.FieldImplementationSteps, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   solution.OwnerTable,
			Columns: []string{solution.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   solution.OwnerTable,
			Columns: []string{solution.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   solution.ProjectTable,
			Columns: []string{solution.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   solution.ProjectTable,
			Columns: []string{solution.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SolutionUpdateOne is the builder for updating a single Solution entity.
type SolutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SolutionMutation
}

// SetTitle sets the "title" field.
func (_u *SolutionUpdateOne) SetTitle(v string) *SolutionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableTitle(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *SolutionUpdateOne) SetDetail(v string) *SolutionUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableDetail(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetKeyFeatures sets the "key_features" field.
func (_u *SolutionUpdateOne) SetKeyFeatures(v string) *SolutionUpdateOne {
	_u.mutation.SetKeyFeatures(v)
	return _u
}

// SetNillableKeyFeatures sets the "key_features" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableKeyFeatures(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetKeyFeatures(*v)
	}
	return _u
}

// SetImplementationSteps sets the "implementation_steps" field.
func (_u *SolutionUpdateOne) SetImplementationSteps(v string) *SolutionUpdateOne {
	_u.mutation.SetImplementationSteps(v)
	return _u
}

// SetNillableImplementationSteps sets the "implementation_steps" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableImplementationSteps(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetImplementationSteps(*v)
	}
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *SolutionUpdateOne) SetOwnerID(id uuid.UUID) *SolutionUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *SolutionUpdateOne) SetOwner(v *User) *SolutionUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *SolutionUpdateOne) SetProjectID(id uuid.UUID) *SolutionUpdateOne {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetNillableProjectID sets the "project" edge to the Project entity by ID if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableProjectID(id *uuid.UUID) *SolutionUpdateOne {
	if id != nil {
		_u = _u.SetProjectID(*id)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *SolutionUpdateOne) SetProject(v *Project) *SolutionUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the SolutionMutation object of the builder.
func (_u *SolutionUpdateOne) Mutation() *SolutionMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *SolutionUpdateOne) ClearOwner() *SolutionUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *SolutionUpdateOne) ClearProject() *SolutionUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the SolutionUpdate builder.
func (_u *SolutionUpdateOne) Where(ps ...predicate.Solution) *SolutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SolutionUpdateOne) Select(field string, fields ...string) *SolutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Solution entity.
func (_u *SolutionUpdateOne) Save(ctx context.Context) (*Solution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolutionUpdateOne) SaveX(ctx context.Context) *Solution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SolutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolutionUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := solution.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Solution.title": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Solution.owner"`)
	}
	return nil
}

func (_u *SolutionUpdateOne) sqlSave(ctx context.Context) (_node *Solution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solution.Table, solution.Columns, sqlgraph.NewFieldSpec(solution.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Solution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solution.FieldID)
		for _, f := range fields {
			if !solution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != solution.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(solution.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(solution.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyFeatures(); ok {
		_spec.SetField(solution.FieldKeyFeatures, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImplementationSteps(); ok {
		_spec.SetField(solution.FieldImplementationSteps, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   solution.OwnerTable,
			Columns: []string{solution.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   solution.OwnerTable,
			Columns: []string{solution.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   solution.ProjectTable,
			Columns: []string{solution.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   solution.ProjectTable,
			Columns: []string{solution.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Solution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
