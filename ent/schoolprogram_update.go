// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sdg-innovation-api/ent/predicate"
	"sdg-innovation-api/ent/program"
	"sdg-innovation-api/ent/school"
	"sdg-innovation-api/ent/schoolprogram"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SchoolProgramUpdate is the builder for updating SchoolProgram entities.
type SchoolProgramUpdate struct {
	config
	hooks    []Hook
	mutation *SchoolProgramMutation
}

// Where appends a list predicates to the SchoolProgramUpdate builder.
func (_u *SchoolProgramUpdate) Where(ps ...predicate.SchoolProgram) *SchoolProgramUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNumberOfStudents sets the "number_of_students" field.
func (_u *SchoolProgramUpdate) SetNumberOfStudents(v int) *SchoolProgramUpdate {
	_u.mutation.ResetNumberOfStudents()
	_u.mutation.SetNumberOfStudents(v)
	return _u
}

// SetNillableNumberOfStudents sets the "number_of_students" field if the given value is not nil.
func (_u *SchoolProgramUpdate) SetNillableNumberOfStudents(v *int) *SchoolProgramUpdate {
	if v != nil {
		_u.SetNumberOfStudents(*v)
	}
	return _u
}

// AddNumberOfStudents adds value to the "number_of_students" field.
func (_u *SchoolProgramUpdate) AddNumberOfStudents(v int) *SchoolProgramUpdate {
	_u.mutation.AddNumberOfStudents(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SchoolProgramUpdate) SetIsActive(v bool) *SchoolProgramUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SchoolProgramUpdate) SetNillableIsActive(v *bool) *SchoolProgramUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SchoolProgramUpdate) SetUpdatedAt(v time.Time) *SchoolProgramUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSchoolID sets the "school" edge to the School entity by ID.
func (_u *SchoolProgramUpdate) SetSchoolID(id uuid.UUID) *SchoolProgramUpdate {
	_u.mutation.SetSchoolID(id)
	return _u
}

// SetSchool sets the "school" edge to the School entity.
func (_u *SchoolProgramUpdate) SetSchool(v *School) *SchoolProgramUpdate {
	return _u.SetSchoolID(v.ID)
}

// SetProgramID sets the "program" edge to the Program entity by ID.
func (_u *SchoolProgramUpdate) SetProgramID(id uuid.UUID) *SchoolProgramUpdate {
	_u.mutation.SetProgramID(id)
	return _u
}

// SetProgram sets the "program" edge to the Program entity.
func (_u *SchoolProgramUpdate) SetProgram(v *Program) *SchoolProgramUpdate {
	return _u.SetProgramID(v.ID)
}

// Mutation returns the SchoolProgramMutation object of the builder.
func (_u *SchoolProgramUpdate) Mutation() *SchoolProgramMutation {
	return _u.mutation
}

// ClearSchool clears the "school" edge to the School entity.
func (_u *SchoolProgramUpdate) ClearSchool() *SchoolProgramUpdate {
	_u.mutation.ClearSchool()
	return _u
}

// ClearProgram clears the "program" edge to the Program entity.
func (_u *SchoolProgramUpdate) ClearProgram() *SchoolProgramUpdate {
	_u.mutation.ClearProgram()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchoolProgramUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchoolProgramUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchoolProgramUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchoolProgramUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SchoolProgramUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schoolprogram.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchoolProgramUpdate) check() error {
	if _u.mutation.SchoolCleared() && len(_u.mutation.SchoolIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SchoolProgram.school"`)
	}
	if _u.mutation.ProgramCleared() && len(_u.mutation.ProgramIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SchoolProgram.program"`)
	}
	return nil
}

func (_u *SchoolProgramUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schoolprogram.Table, schoolprogram.Columns, sqlgraph.NewFieldSpec(schoolprogram.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NumberOfStudents(); ok {
		_spec.SetField(schoolprogram.FieldNumberOfStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfStudents(); ok {
		_spec.AddField(schoolprogram.FieldNumberOfStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(schoolprogram.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schoolprogram.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SchoolCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchoolIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProgramCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProgramIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schoolprogram.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchoolProgramUpdateOne is the builder for updating a single SchoolProgram entity.
type SchoolProgramUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchoolProgramMutation
}

// SetNumberOfStudents sets the "number_of_students" field.
func (_u *SchoolProgramUpdateOne) SetNumberOfStudents(v int) *SchoolProgramUpdateOne {
	_u.mutation.ResetNumberOfStudents()
	_u.mutation.SetNumberOfStudents(v)
	return _u
}

// SetNillableNumberOfStudents sets the "number_of_students" field if the given value is not nil.
func (_u *SchoolProgramUpdateOne) SetNillableNumberOfStudents(v *int) *SchoolProgramUpdateOne {
	if v != nil {
		_u.SetNumberOfStudents(*v)
	}
	return _u
}

// AddNumberOfStudents adds value to the "number_of_students" field.
func (_u *SchoolProgramUpdateOne) AddNumberOfStudents(v int) *SchoolProgramUpdateOne {
	_u.mutation.AddNumberOfStudents(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SchoolProgramUpdateOne) SetIsActive(v bool) *SchoolProgramUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SchoolProgramUpdateOne) SetNillableIsActive(v *bool) *SchoolProgramUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SchoolProgramUpdateOne) SetUpdatedAt(v time.Time) *SchoolProgramUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSchoolID sets the "school" edge to the School entity by ID.
func (_u *SchoolProgramUpdateOne) SetSchoolID(id uuid.UUID) *SchoolProgramUpdateOne {
	_u.mutation.SetSchoolID(id)
	return _u
}

// SetSchool sets the "school" edge to the School entity.
func (_u *SchoolProgramUpdateOne) SetSchool(v *School) *SchoolProgramUpdateOne {
	return _u.SetSchoolID(v.ID)
}

// SetProgramID sets the "program" edge to the Program entity by ID.
func (_u *SchoolProgramUpdateOne) SetProgramID(id uuid.UUID) *SchoolProgramUpdateOne {
	_u.mutation.SetProgramID(id)
	return _u
}

// SetProgram sets the "program" edge to the Program entity.
func (_u *SchoolProgramUpdateOne) SetProgram(v *Program) *SchoolProgramUpdateOne {
	return _u.SetProgramID(v.ID)
}

// Mutation returns the SchoolProgramMutation object of the builder.
func (_u *SchoolProgramUpdateOne) Mutation() *SchoolProgramMutation {
	return _u.mutation
}

// ClearSchool clears the "school" edge to the School entity.
func (_u *SchoolProgramUpdateOne) ClearSchool() *SchoolProgramUpdateOne {
	_u.mutation.ClearSchool()
	return _u
}

// ClearProgram clears the "program" edge to the Program entity.
func (_u *SchoolProgramUpdateOne) ClearProgram() *SchoolProgramUpdateOne {
	_u.mutation.ClearProgram()
	return _u
}

// Where appends a list predicates to the SchoolProgramUpdate builder.
func (_u *SchoolProgramUpdateOne) Where(ps ...predicate.SchoolProgram) *SchoolProgramUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchoolProgramUpdateOne) Select(field string, fields ...string) *SchoolProgramUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SchoolProgram entity.
func (_u *SchoolProgramUpdateOne) Save(ctx context.Context) (*SchoolProgram, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchoolProgramUpdateOne) SaveX(ctx context.Context) *SchoolProgram {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchoolProgramUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchoolProgramUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SchoolProgramUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schoolprogram.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchoolProgramUpdateOne) check() error {
	if _u.mutation.SchoolCleared() && len(_u.mutation.SchoolIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SchoolProgram.school"`)
	}
	if _u.mutation.ProgramCleared() && len(_u.mutation.ProgramIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SchoolProgram.program"`)
	}
	return nil
}

func (_u *SchoolProgramUpdateOne) sqlSave(ctx context.Context) (_node *SchoolProgram, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schoolprogram.Table, schoolprogram.Columns, sqlgraph.NewFieldSpec(schoolprogram.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SchoolProgram.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schoolprogram.FieldID)
		for _, f := range fields {
			if !schoolprogram.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schoolprogram.FieldID {
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
	if value, ok := _u.mutation.NumberOfStudents(); ok {
		_spec.SetField(schoolprogram.FieldNumberOfStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfStudents(); ok {
		_spec.AddField(schoolprogram.FieldNumberOfStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(schoolprogram.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schoolprogram.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SchoolCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchoolIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProgramCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProgramIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SchoolProgram{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schoolprogram.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
