// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sdg-innovation-api/ent/predefinedproblem"
	"sdg-innovation-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// PredefinedProblemUpdate is the builder for updating PredefinedProblem entities.
type PredefinedProblemUpdate struct {
	config
	hooks    []Hook
	mutation *PredefinedProblemMutation
}

// Where appends a list predicates to the PredefinedProblemUpdate builder.
func (_u *PredefinedProblemUpdate) Where(ps ...predicate.PredefinedProblem) *PredefinedProblemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSdgGoal sets the "sdg_goal" field.
func (_u *PredefinedProblemUpdate) SetSdgGoal(v string) *PredefinedProblemUpdate {
	_u.mutation.SetSdgGoal(v)
	return _u
}

// SetNillableSdgGoal sets the "sdg_goal" field if the given value is not nil.
func (_u *PredefinedProblemUpdate) SetNillableSdgGoal(v *string) *PredefinedProblemUpdate {
	if v != nil {
		_u.SetSdgGoal(*v)
	}
	return _u
}

// SetProblemStatement sets the "problem_statement" field.
func (_u *PredefinedProblemUpdate) SetProblemStatement(v string) *PredefinedProblemUpdate {
	_u.mutation.SetProblemStatement(v)
	return _u
}

// SetNillableProblemStatement sets the "problem_statement" field if the given value is not nil.
func (_u *PredefinedProblemUpdate) SetNillableProblemStatement(v *string) *PredefinedProblemUpdate {
	if v != nil {
		_u.SetProblemStatement(*v)
	}
	return _u
}

// SetStakeholders sets the "stakeholders" field.
func (_u *PredefinedProblemUpdate) SetStakeholders(v []string) *PredefinedProblemUpdate {
	_u.mutation.SetStakeholders(v)
	return _u
}

// AppendStakeholders appends value to the "stakeholders" field.
func (_u *PredefinedProblemUpdate) AppendStakeholders(v []string) *PredefinedProblemUpdate {
	_u.mutation.AppendStakeholders(v)
	return _u
}

// ClearStakeholders clears the value of the "stakeholders" field.
func (_u *PredefinedProblemUpdate) ClearStakeholders() *PredefinedProblemUpdate {
	_u.mutation.ClearStakeholders()
	return _u
}

// Mutation returns the PredefinedProblemMutation object of the builder.
func (_u *PredefinedProblemUpdate) Mutation() *PredefinedProblemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PredefinedProblemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredefinedProblemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PredefinedProblemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredefinedProblemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PredefinedProblemUpdate) check() error {
	if v, ok := _u.mutation.SdgGoal(); ok {
		if err := predefinedproblem.SdgGoalValidator(v); err != nil {
			return &ValidationError{Name: "sdg_goal", err: fmt.Errorf(`ent: validator failed for field "PredefinedProblem.sdg_goal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemStatement(); ok {
		if err := predefinedproblem.ProblemStatementValidator(v); err != nil {
			return &ValidationError{Name: "problem_statement", err: fmt.Errorf(`ent: validator failed for field "PredefinedProblem.problem_statement": %w`, err)}
		}
	}
	return nil
}

func (_u *PredefinedProblemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(predefinedproblem.Table, predefinedproblem.Columns, sqlgraph.NewFieldSpec(predefinedproblem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SdgGoal(); ok {
		_spec.SetField(predefinedproblem.FieldSdgGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemStatement(); ok {
		_spec.SetField(predefinedproblem.FieldProblemStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stakeholders(); ok {
		_spec.SetField(predefinedproblem.FieldStakeholders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStakeholders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, predefinedproblem.FieldStakeholders, value)
		})
	}
	if _u.mutation.StakeholdersCleared() {
		_spec.ClearField(predefinedproblem.FieldStakeholders, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predefinedproblem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PredefinedProblemUpdateOne is the builder for updating a single PredefinedProblem entity.
type PredefinedProblemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PredefinedProblemMutation
}

// SetSdgGoal sets the "sdg_goal" field.
func (_u *PredefinedProblemUpdateOne) SetSdgGoal(v string) *PredefinedProblemUpdateOne {
	_u.mutation.SetSdgGoal(v)
	return _u
}

// SetNillableSdgGoal sets the "sdg_goal" field if the given value is not nil.
func (_u *PredefinedProblemUpdateOne) SetNillableSdgGoal(v *string) *PredefinedProblemUpdateOne {
	if v != nil {
		_u.SetSdgGoal(*v)
	}
	return _u
}

// SetProblemStatement sets the "problem_statement" field.
func (_u *PredefinedProblemUpdateOne) SetProblemStatement(v string) *PredefinedProblemUpdateOne {
	_u.mutation.SetProblemStatement(v)
	return _u
}

// SetNillableProblemStatement sets the "problem_statement" field if the given value is not nil.
func (_u *PredefinedProblemUpdateOne) SetNillableProblemStatement(v *string) *PredefinedProblemUpdateOne {
	if v != nil {
		_u.SetProblemStatement(*v)
	}
	return _u
}

// SetStakeholders sets the "stakeholders" field.
func (_u *PredefinedProblemUpdateOne) SetStakeholders(v []string) *PredefinedProblemUpdateOne {
	_u.mutation.SetStakeholders(v)
	return _u
}

// AppendStakeholders appends value to the "stakeholders" field.
func (_u *PredefinedProblemUpdateOne) AppendStakeholders(v []string) *PredefinedProblemUpdateOne {
	_u.mutation.AppendStakeholders(v)
	return _u
}

// ClearStakeholders clears the value of the "stakeholders" field.
func (_u *PredefinedProblemUpdateOne) ClearStakeholders() *PredefinedProblemUpdateOne {
	_u.mutation.ClearStakeholders()
	return _u
}

// Mutation returns the PredefinedProblemMutation object of the builder.
func (_u *PredefinedProblemUpdateOne) Mutation() *PredefinedProblemMutation {
	return _u.mutation
}

// Where appends a list predicates to the PredefinedProblemUpdate builder.
func (_u *PredefinedProblemUpdateOne) Where(ps ...predicate.PredefinedProblem) *PredefinedProblemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PredefinedProblemUpdateOne) Select(field string, fields ...string) *PredefinedProblemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PredefinedProblem entity.
func (_u *PredefinedProblemUpdateOne) Save(ctx context.Context) (*PredefinedProblem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredefinedProblemUpdateOne) SaveX(ctx context.Context) *PredefinedProblem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PredefinedProblemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredefinedProblemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PredefinedProblemUpdateOne) check() error {
	if v, ok := _u.mutation.SdgGoal(); ok {
		if err := predefinedproblem.SdgGoalValidator(v); err != nil {
			return &ValidationError{Name: "sdg_goal", err: fmt.Errorf(`ent: validator failed for field "PredefinedProblem.sdg_goal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemStatement(); ok {
		if err := predefinedproblem.ProblemStatementValidator(v); err != nil {
			return &ValidationError{Name: "problem_statement", err: fmt.Errorf(`ent: validator failed for field "PredefinedProblem.problem_statement": %w`, err)}
		}
	}
	return nil
}

func (_u *PredefinedProblemUpdateOne) sqlSave(ctx context.Context) (_node *PredefinedProblem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(predefinedproblem.Table, predefinedproblem.Columns, sqlgraph.NewFieldSpec(predefinedproblem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PredefinedProblem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, predefinedproblem.FieldID)
		for _, f := range fields {
			if !predefinedproblem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != predefinedproblem.FieldID {
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
	if value, ok := _u.mutation.SdgGoal(); ok {
		_spec.SetField(predefinedproblem.FieldSdgGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemStatement(); ok {
		_spec.SetField(predefinedproblem.FieldProblemStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stakeholders(); ok {
		_spec.SetField(predefinedproblem.FieldStakeholders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStakeholders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, predefinedproblem.FieldStakeholders, value)
		})
	}
	if _u.mutation.StakeholdersCleared() {
		_spec.ClearField(predefinedproblem.FieldStakeholders, field.TypeJSON)
	}
	_node = &PredefinedProblem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predefinedproblem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
