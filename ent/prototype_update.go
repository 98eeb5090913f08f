// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sdg-innovation-api/ent/predicate"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/prototype"
	"sdg-innovation-api/ent/schema"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PrototypeUpdate is the builder for updating Prototype entities.
type PrototypeUpdate struct {
	config
	hooks    []Hook
	mutation *PrototypeMutation
}

// Where appends a list predicates to the PrototypeUpdate builder.
func (_u *PrototypeUpdate) Where(ps ...predicate.Prototype) *PrototypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *PrototypeUpdate) SetDescription(v string) *PrototypeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PrototypeUpdate) SetNillableDescription(v *string) *PrototypeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetFiles sets the "files" field.
func (_u *PrototypeUpdate) SetFiles(v []schema.PrototypeFile) *PrototypeUpdate {
	_u.mutation.SetFiles(v)
	return _u
}

// AppendFiles appends value to the "files" field.
func (_u *PrototypeUpdate) AppendFiles(v []schema.PrototypeFile) *PrototypeUpdate {
	_u.mutation.AppendFiles(v)
	return _u
}

// ClearFiles clears the value of the "files" field.
func (_u *PrototypeUpdate) ClearFiles() *PrototypeUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrototypeUpdate) SetUpdatedAt(v time.Time) *PrototypeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *PrototypeUpdate) SetProjectID(id uuid.UUID) *PrototypeUpdate {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetNillableProjectID sets the "project" edge to the Project entity by ID if the given value is not nil.
func (_u *PrototypeUpdate) SetNillableProjectID(id *uuid.UUID) *PrototypeUpdate {
	if id != nil {
		_u = _u.SetProjectID(*id)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *PrototypeUpdate) SetProject(v *Project) *PrototypeUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the PrototypeMutation object of the builder.
func (_u *PrototypeUpdate) Mutation() *PrototypeMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *PrototypeUpdate) ClearProject() *PrototypeUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrototypeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrototypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrototypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrototypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrototypeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prototype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PrototypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(prototype.Table, prototype.Columns, sqlgraph.NewFieldSpec(prototype.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(prototype.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Files(); ok {
		_spec.SetField(prototype.FieldFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, prototype.FieldFiles, value)
		})
	}
	if _u.mutation.FilesCleared() {
		_spec.ClearField(prototype.FieldFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prototype.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   prototype.ProjectTable,
			Columns: []string{prototype.ProjectColumn},
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
			Table:   prototype.ProjectTable,
			Columns: []string{prototype.ProjectColumn},
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
			err = &NotFoundError{prototype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrototypeUpdateOne is the builder for updating a single Prototype entity.
type PrototypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrototypeMutation
}

// SetDescription sets the "description" field.
func (_u *PrototypeUpdateOne) SetDescription(v string) *PrototypeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PrototypeUpdateOne) SetNillableDescription(v *string) *PrototypeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetFiles sets the "files" field.
func (_u *PrototypeUpdateOne) SetFiles(v []schema.PrototypeFile) *PrototypeUpdateOne {
	_u.mutation.SetFiles(v)
	return _u
}

// AppendFiles appends value to the "files" field.
func (_u *PrototypeUpdateOne) AppendFiles(v []schema.PrototypeFile) *PrototypeUpdateOne {
	_u.mutation.AppendFiles(v)
	return _u
}

// ClearFiles clears the value of the "files" field.
func (_u *PrototypeUpdateOne) ClearFiles() *PrototypeUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrototypeUpdateOne) SetUpdatedAt(v time.Time) *PrototypeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *PrototypeUpdateOne) SetProjectID(id uuid.UUID) *PrototypeUpdateOne {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetNillableProjectID sets the "project" edge to the Project entity by ID if the given value is not nil.
func (_u *PrototypeUpdateOne) SetNillableProjectID(id *uuid.UUID) *PrototypeUpdateOne {
	if id != nil {
		_u = _u.SetProjectID(*id)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *PrototypeUpdateOne) SetProject(v *Project) *PrototypeUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the PrototypeMutation object of the builder.
func (_u *PrototypeUpdateOne) Mutation() *PrototypeMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *PrototypeUpdateOne) ClearProject() *PrototypeUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the PrototypeUpdate builder.
func (_u *PrototypeUpdateOne) Where(ps ...predicate.Prototype) *PrototypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrototypeUpdateOne) Select(field string, fields ...string) *PrototypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prototype entity.
func (_u *PrototypeUpdateOne) Save(ctx context.Context) (*Prototype, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrototypeUpdateOne) SaveX(ctx context.Context) *Prototype {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrototypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrototypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrototypeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prototype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PrototypeUpdateOne) sqlSave(ctx context.Context) (_node *Prototype, err error) {
	_spec := sqlgraph.NewUpdateSpec(prototype.Table, prototype.Columns, sqlgraph.NewFieldSpec(prototype.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Prototype.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prototype.FieldID)
		for _, f := range fields {
			if !prototype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prototype.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(prototype.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Files(); ok {
		_spec.SetField(prototype.FieldFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, prototype.FieldFiles, value)
		})
	}
	if _u.mutation.FilesCleared() {
		_spec.ClearField(prototype.FieldFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prototype.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   prototype.ProjectTable,
			Columns: []string{prototype.ProjectColumn},
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
			Table:   prototype.ProjectTable,
			Columns: []string{prototype.ProjectColumn},
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
	_node = &Prototype{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prototype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
