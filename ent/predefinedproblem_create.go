// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sdg-innovation-api/ent/predefinedproblem"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PredefinedProblemCreate is the builder for creating a PredefinedProblem entity.
type PredefinedProblemCreate struct {
	config
	mutation *PredefinedProblemMutation
	hooks    []Hook
}

// SetSdgGoal sets the "sdg_goal" field.
func (_c *PredefinedProblemCreate) SetSdgGoal(v string) *PredefinedProblemCreate {
	_c.mutation.SetSdgGoal(v)
	return _c
}

// SetProblemStatement sets the "problem_statement" field.
func (_c *PredefinedProblemCreate) SetProblemStatement(v string) *PredefinedProblemCreate {
	_c.mutation.SetProblemStatement(v)
	return _c
}

// SetStakeholders sets the "stakeholders" field.
func (_c *PredefinedProblemCreate) SetStakeholders(v []string) *PredefinedProblemCreate {
	_c.mutation.SetStakeholders(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PredefinedProblemCreate) SetCreatedAt(v time.Time) *PredefinedProblemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PredefinedProblemCreate) SetNillableCreatedAt(v *time.Time) *PredefinedProblemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PredefinedProblemCreate) SetID(v uuid.UUID) *PredefinedProblemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PredefinedProblemCreate) SetNillableID(v *uuid.UUID) *PredefinedProblemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PredefinedProblemMutation object of the builder.
func (_c *PredefinedProblemCreate) Mutation() *PredefinedProblemMutation {
	return _c.mutation
}

// Save creates the PredefinedProblem in the database.
func (_c *PredefinedProblemCreate) Save(ctx context.Context) (*PredefinedProblem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PredefinedProblemCreate) SaveX(ctx context.Context) *PredefinedProblem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredefinedProblemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredefinedProblemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PredefinedProblemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := predefinedproblem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := predefinedproblem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PredefinedProblemCreate) check() error {
	if _, ok := _c.mutation.SdgGoal(); !ok {
		return &ValidationError{Name: "sdg_goal", err: errors.New(`ent: missing required field "PredefinedProblem.sdg_goal"`)}
	}
	if v, ok := _c.mutation.SdgGoal(); ok {
		if err := predefinedproblem.SdgGoalValidator(v); err != nil {
			return &ValidationError{Name: "sdg_goal", err: fmt.Errorf(`ent: validator failed for field "PredefinedProblem.sdg_goal": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProblemStatement(); !ok {
		return &ValidationError{Name: "problem_statement", err: errors.New(`ent: missing required field "PredefinedProblem.problem_statement"`)}
	}
	if v, ok := _c.mutation.ProblemStatement(); ok {
		if err := predefinedproblem.ProblemStatementValidator(v); err != nil {
			return &ValidationError{Name: "problem_statement", err: fmt.Errorf(`ent: validator failed for field "PredefinedProblem.problem_statement": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PredefinedProblem.created_at"`)}
	}
	return nil
}

func (_c *PredefinedProblemCreate) sqlSave(ctx context.Context) (*PredefinedProblem, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PredefinedProblemCreate) createSpec() (*PredefinedProblem, *sqlgraph.CreateSpec) {
	var (
		_node = &PredefinedProblem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(predefinedproblem.Table, sqlgraph.NewFieldSpec(predefinedproblem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SdgGoal(); ok {
		_spec.SetField(predefinedproblem.FieldSdgGoal, field.TypeString, value)
		_node.SdgGoal = value
	}
	if value, ok := _c.mutation.ProblemStatement(); ok {
		_spec.SetField(predefinedproblem.FieldProblemStatement, field.TypeString, value)
		_node.ProblemStatement = value
	}
	if value, ok := _c.mutation.Stakeholders(); ok {
		_spec.SetField(predefinedproblem.FieldStakeholders, field.TypeJSON, value)
		_node.Stakeholders = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(predefinedproblem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PredefinedProblemCreateBulk is the builder for creating many PredefinedProblem entities in bulk.
type PredefinedProblemCreateBulk struct {
	config
	err      error
	builders []*PredefinedProblemCreate
}

// Save creates the PredefinedProblem entities in the database.
func (_c *PredefinedProblemCreateBulk) Save(ctx context.Context) ([]*PredefinedProblem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PredefinedProblem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PredefinedProblemMutation)
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
func (_c *PredefinedProblemCreateBulk) SaveX(ctx context.Context) []*PredefinedProblem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredefinedProblemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredefinedProblemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
