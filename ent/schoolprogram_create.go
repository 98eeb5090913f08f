// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sdg-innovation-api/ent/program"
	"sdg-innovation-api/ent/school"
	"sdg-innovation-api/ent/schoolprogram"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SchoolProgramCreate is the builder for creating a SchoolProgram entity.
type SchoolProgramCreate struct {
	config
	mutation *SchoolProgramMutation
	hooks    []Hook
}

// SetNumberOfStudents sets the "number_of_students" field.
func (_c *SchoolProgramCreate) SetNumberOfStudents(v int) *SchoolProgramCreate {
	_c.mutation.SetNumberOfStudents(v)
	return _c
}

// SetNillableNumberOfStudents sets the "number_of_students" field if the given value is not nil.
func (_c *SchoolProgramCreate) SetNillableNumberOfStudents(v *int) *SchoolProgramCreate {
	if v != nil {
		_c.SetNumberOfStudents(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *SchoolProgramCreate) SetIsActive(v bool) *SchoolProgramCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *SchoolProgramCreate) SetNillableIsActive(v *bool) *SchoolProgramCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SchoolProgramCreate) SetCreatedAt(v time.Time) *SchoolProgramCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SchoolProgramCreate) SetNillableCreatedAt(v *time.Time) *SchoolProgramCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SchoolProgramCreate) SetUpdatedAt(v time.Time) *SchoolProgramCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SchoolProgramCreate) SetNillableUpdatedAt(v *time.Time) *SchoolProgramCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SchoolProgramCreate) SetID(v uuid.UUID) *SchoolProgramCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SchoolProgramCreate) SetNillableID(v *uuid.UUID) *SchoolProgramCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSchoolID sets the "school" edge to the School entity by ID.
func (_c *SchoolProgramCreate) SetSchoolID(id uuid.UUID) *SchoolProgramCreate {
	_c.mutation.SetSchoolID(id)
	return _c
}

// SetSchool sets the "school" edge to the School entity.
func (_c *SchoolProgramCreate) SetSchool(v *School) *SchoolProgramCreate {
	return _c.SetSchoolID(v.ID)
}

// SetProgramID sets the "program" edge to the Program entity by ID.
func (_c *SchoolProgramCreate) SetProgramID(id uuid.UUID) *SchoolProgramCreate {
	_c.mutation.SetProgramID(id)
	return _c
}

// SetProgram sets the "program" edge to the Program entity.
func (_c *SchoolProgramCreate) SetProgram(v *Program) *SchoolProgramCreate {
	return _c.SetProgramID(v.ID)
}

// Mutation returns the SchoolProgramMutation object of the builder.
func (_c *SchoolProgramCreate) Mutation() *SchoolProgramMutation {
	return _c.mutation
}

// Save creates the SchoolProgram in the database.
func (_c *SchoolProgramCreate) Save(ctx context.Context) (*SchoolProgram, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchoolProgramCreate) SaveX(ctx context.Context) *SchoolProgram {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchoolProgramCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchoolProgramCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SchoolProgramCreate) defaults() {
	if _, ok := _c.mutation.NumberOfStudents(); !ok {
		v := schoolprogram.DefaultNumberOfStudents
		_c.mutation.SetNumberOfStudents(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := schoolprogram.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := schoolprogram.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := schoolprogram.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := schoolprogram.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchoolProgramCreate) check() error {
	if _, ok := _c.mutation.NumberOfStudents(); !ok {
		return &ValidationError{Name: "number_of_students", err: errors.New(`ent: missing required field "SchoolProgram.number_of_students"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "SchoolProgram.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SchoolProgram.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SchoolProgram.updated_at"`)}
	}
	if len(_c.mutation.SchoolIDs()) == 0 {
		return &ValidationError{Name: "school", err: errors.New(`ent: missing required edge "SchoolProgram.school"`)}
	}
	if len(_c.mutation.ProgramIDs()) == 0 {
		return &ValidationError{Name: "program", err: errors.New(`ent: missing required edge "SchoolProgram.program"`)}
	}
	return nil
}

func (_c *SchoolProgramCreate) sqlSave(ctx context.Context) (*SchoolProgram, error) {
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

func (_c *SchoolProgramCreate) createSpec() (*SchoolProgram, *sqlgraph.CreateSpec) {
	var (
		_node = &SchoolProgram{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schoolprogram.Table, sqlgraph.NewFieldSpec(schoolprogram.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.NumberOfStudents(); ok {
		_spec.SetField(schoolprogram.FieldNumberOfStudents, field.TypeInt, value)
		_node.NumberOfStudents = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(schoolprogram.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(schoolprogram.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(schoolprogram.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SchoolIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   schoolprogram.SchoolTable,
			Columns: []string{schoolprogram.SchoolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(school.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.school_program_school = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProgramIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   schoolprogram.ProgramTable,
			Columns: []string{schoolprogram.ProgramColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(program.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.school_program_program = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SchoolProgramCreateBulk is the builder for creating many SchoolProgram entities in bulk.
type SchoolProgramCreateBulk struct {
	config
	err      error
	builders []*SchoolProgramCreate
}

// Save creates the SchoolProgram entities in the database.
func (_c *SchoolProgramCreateBulk) Save(ctx context.Context) ([]*SchoolProgram, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SchoolProgram, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchoolProgramMutation)
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
func (_c *SchoolProgramCreateBulk) SaveX(ctx context.Context) []*SchoolProgram {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchoolProgramCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchoolProgramCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
