// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/solution"
	"sdg-innovation-api/ent/user"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SolutionCreate is the builder for creating a Solution entity.
type SolutionCreate struct {
	config
	mutation *SolutionMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *SolutionCreate) SetTitle(v string) *SolutionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *SolutionCreate) SetDetail(v string) *SolutionCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableDetail(v *string) *SolutionCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetKeyFeatures sets the "key_features" field.
func (_c *SolutionCreate) SetKeyFeatures(v string) *SolutionCreate {
	_c.mutation.SetKeyFeatures(v)
	return _c
}

// SetNillableKeyFeatures sets the "key_features" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableKeyFeatures(v *string) *SolutionCreate {
	if v != nil {
		_c.SetKeyFeatures(*v)
	}
	return _c
}

// SetImplementationSteps sets the "implementation_steps" field.
func (_c *SolutionCreate) SetImplementationSteps(v string) *SolutionCreate {
	_c.mutation.SetImplementationSteps(v)
	return _c
}

// SetNillableImplementationSteps sets the "implementation_steps" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableImplementationSteps(v *string) *SolutionCreate {
	if v != nil {
		_c.SetImplementationSteps(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SolutionCreate) SetCreatedAt(v time.Time) *SolutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableCreatedAt(v *time.Time) *SolutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SolutionCreate) SetID(v uuid.UUID) *SolutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableID(v *uuid.UUID) *SolutionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *SolutionCreate) SetOwnerID(id uuid.UUID) *SolutionCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *SolutionCreate) SetOwner(v *User) *SolutionCreate {
	return _c.SetOwnerID(v.ID)
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_c *SolutionCreate) SetProjectID(id uuid.UUID) *SolutionCreate {
	_c.mutation.SetProjectID(id)
	return _c
}

// SetNillableProjectID sets the "project" edge to the Project entity by ID if the given value is not nil.
func (_c *SolutionCreate) SetNillableProjectID(id *uuid.UUID) *SolutionCreate {
	if id != nil {
		_c = _c.SetProjectID(*id)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SolutionCreate) SetProject(v *Project) *SolutionCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the SolutionMutation object of the builder.
func (_c *SolutionCreate) Mutation() *SolutionMutation {
	return _c.mutation
}

// Save creates the Solution in the database.
func (_c *SolutionCreate) Save(ctx context.Context) (*Solution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SolutionCreate) SaveX(ctx context.Context) *Solution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SolutionCreate) defaults() {
	if _, ok := _c.mutation.Detail(); !ok {
		v := solution.DefaultDetail
		_c.mutation.SetDetail(v)
	}
	if _, ok := _c.mutation.KeyFeatures(); !ok {
		v := solution.DefaultKeyFeatures
		_c.mutation.SetKeyFeatures(v)
	}
	if _, ok := _c.mutation.ImplementationSteps(); !ok {
		v := solution.DefaultImplementationSteps
		_c.mutation.SetImplementationSteps(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := solution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := solution.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SolutionCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Solution.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := solution.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Solution.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "Solution.detail"`)}
	}
	if _, ok := _c.mutation.KeyFeatures(); !ok {
		return &ValidationError{Name: "key_features", err: errors.New(`ent: missing required field "Solution.key_features"`)}
	}
	if _, ok := _c.mutation.ImplementationSteps(); !ok {
		return &ValidationError{Name: "implementation_steps", err: errors.New(`ent: missing required field "Solution.implementation_steps"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Solution.created_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Solution.owner"`)}
	}
	return nil
}

func (_c *SolutionCreate) sqlSave(ctx context.Context) (*Solution, error) {
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

func (_c *SolutionCreate) createSpec() (*Solution, *sqlgraph.CreateSpec) {
	var (
		_node = &Solution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(solution.Table, sqlgraph.NewFieldSpec(solution.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(solution.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(solution.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.KeyFeatures(); ok {
		_spec.SetField(solution.FieldKeyFeatures, field.TypeString, value)
		_node.KeyFeatures = value
	}
	if value, ok := _c.mutation.ImplementationSteps(); ok {
		_spec.SetField(solution.FieldImplementationSteps, field.TypeString, value)
		_node.ImplementationSteps = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(solution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.solution_owner = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.project_solution = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SolutionCreateBulk is the builder for creating many Solution entities in bulk.
type SolutionCreateBulk struct {
	config
	err      error
	builders []*SolutionCreate
}

// Save creates the Solution entities in the database.
func (_c *SolutionCreateBulk) Save(ctx context.Context) ([]*Solution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Solution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SolutionMutation)
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
func (_c *SolutionCreateBulk) SaveX(ctx context.Context) []*Solution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
