// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sdg-innovation-api/ent/frame"
	"sdg-innovation-api/ent/predicate"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/user"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FrameUpdate is the builder for updating Frame entities.
type FrameUpdate struct {
	config
	hooks    []Hook
	mutation *FrameMutation
}

// Where appends a list predicates to the FrameUpdate builder.
func (_u *FrameUpdate) Where(ps ...predicate.Frame) *FrameUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *FrameUpdate) SetContent(v string) *FrameUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *FrameUpdate) SetNillableContent(v *string) *FrameUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetX sets the "x" field.
func (_u *FrameUpdate) SetX(v float64) *FrameUpdate {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *FrameUpdate) SetNillableX(v *float64) *FrameUpdate {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *FrameUpdate) AddX(v float64) *FrameUpdate {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *FrameUpdate) SetY(v float64) *FrameUpdate {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *FrameUpdate) SetNillableY(v *float64) *FrameUpdate {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *FrameUpdate) AddY(v float64) *FrameUpdate {
	_u.mutation.AddY(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FrameUpdate) SetUpdatedAt(v time.Time) *FrameUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *FrameUpdate) SetOwnerID(id uuid.UUID) *FrameUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *FrameUpdate) SetOwner(v *User) *FrameUpdate {
	return _u.SetOwnerID(v.ID)
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *FrameUpdate) SetProjectID(id uuid.UUID) *FrameUpdate {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *FrameUpdate) SetProject(v *Project) *FrameUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the FrameMutation object of the builder.
func (_u *FrameUpdate) Mutation() *FrameMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *FrameUpdate) ClearOwner() *FrameUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *FrameUpdate) ClearProject() *FrameUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FrameUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FrameUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FrameUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FrameUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FrameUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := frame.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FrameUpdate) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Frame.owner"`)
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Frame.project"`)
	}
	return nil
}

func (_u *FrameUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(frame.Table, frame.Columns, sqlgraph.NewFieldSpec(frame.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(frame.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(frame.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(frame.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(frame.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(frame.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(frame.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   frame.OwnerTable,
			Columns: []string{frame.OwnerColumn},
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
			Table:   frame.OwnerTable,
			Columns: []string{frame.OwnerColumn},
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
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   frame.ProjectTable,
			Columns: []string{frame.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   frame.ProjectTable,
			Columns: []string{frame.ProjectColumn},
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
			err = &NotFoundError{frame.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FrameUpdateOne is the builder for updating a single Frame entity.
type FrameUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FrameMutation
}

// SetContent sets the "content" field.
func (_u *FrameUpdateOne) SetContent(v string) *FrameUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *FrameUpdateOne) SetNillableContent(v *string) *FrameUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetX sets the "x" field.
func (_u *FrameUpdateOne) SetX(v float64) *FrameUpdateOne {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *FrameUpdateOne) SetNillableX(v *float64) *FrameUpdateOne {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *FrameUpdateOne) AddX(v float64) *FrameUpdateOne {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *FrameUpdateOne) SetY(v float64) *FrameUpdateOne {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *FrameUpdateOne) SetNillableY(v *float64) *FrameUpdateOne {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *FrameUpdateOne) AddY(v float64) *FrameUpdateOne {
	_u.mutation.AddY(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FrameUpdateOne) SetUpdatedAt(v time.Time) *FrameUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *FrameUpdateOne) SetOwnerID(id uuid.UUID) *FrameUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *FrameUpdateOne) SetOwner(v *User) *FrameUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *FrameUpdateOne) SetProjectID(id uuid.UUID) *FrameUpdateOne {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *FrameUpdateOne) SetProject(v *Project) *FrameUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the FrameMutation object of the builder.
func (_u *FrameUpdateOne) Mutation() *FrameMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *FrameUpdateOne) ClearOwner() *FrameUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *FrameUpdateOne) ClearProject() *FrameUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the FrameUpdate builder.
func (_u *FrameUpdateOne) Where(ps ...predicate.Frame) *FrameUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FrameUpdateOne) Select(field string, fields ...string) *FrameUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Frame entity.
func (_u *FrameUpdateOne) Save(ctx context.Context) (*Frame, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FrameUpdateOne) SaveX(ctx context.Context) *Frame {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FrameUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FrameUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FrameUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := frame.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FrameUpdateOne) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Frame.owner"`)
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Frame.project"`)
	}
	return nil
}

func (_u *FrameUpdateOne) sqlSave(ctx context.Context) (_node *Frame, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(frame.Table, frame.Columns, sqlgraph.NewFieldSpec(frame.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Frame.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, frame.FieldID)
		for _, f := range fields {
			if !frame.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != frame.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(frame.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(frame.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(frame.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(frame.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(frame.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(frame.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   frame.OwnerTable,
			Columns: []string{frame.OwnerColumn},
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
			Table:   frame.OwnerTable,
			Columns: []string{frame.OwnerColumn},
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
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   frame.ProjectTable,
			Columns: []string{frame.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   frame.ProjectTable,
			Columns: []string{frame.ProjectColumn},
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
	_node = &Frame{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{frame.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
