// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"sdg-innovation-api/ent/predefinedproblem"
	"sdg-innovation-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PredefinedProblemDelete is the builder for deleting a PredefinedProblem entity.
type PredefinedProblemDelete struct {
	config
	hooks    []Hook
	mutation *PredefinedProblemMutation
}

// Where appends a list predicates to the PredefinedProblemDelete builder.
func (_d *PredefinedProblemDelete) Where(ps ...predicate.PredefinedProblem) *PredefinedProblemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PredefinedProblemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PredefinedProblemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PredefinedProblemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(predefinedproblem.Table, sqlgraph.NewFieldSpec(predefinedproblem.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PredefinedProblemDeleteOne is the builder for deleting a single PredefinedProblem entity.
type PredefinedProblemDeleteOne struct {
	_d *PredefinedProblemDelete
}

// Where appends a list predicates to the PredefinedProblemDelete builder.
func (_d *PredefinedProblemDeleteOne) Where(ps ...predicate.PredefinedProblem) *PredefinedProblemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PredefinedProblemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{predefinedproblem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PredefinedProblemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
