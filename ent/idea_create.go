// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sdg-innovation-api/ent/idea"
	"sdg-innovation-api/ent/project"
	"sdg-innovation-api/ent/user"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// IdeaCreate is the builder for creating a Idea entity.
type IdeaCreate struct {
	config
	mutation *IdeaMutation
	hooks    []Hook
}

// SetContent sets the "content" field.
func (_c *IdeaCreate) SetContent(v string) *IdeaCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *IdeaCreate) SetNillableContent(v *string) *IdeaCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetX sets the "x" field.
func (_c *IdeaCreate) SetX(v float64) *IdeaCreate {
	_c.mutation.SetX(v)
	return _c
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_c *IdeaCreate) SetNillableX(v *float64) *IdeaCreate {
	if v != nil {
		_c.SetX(*v)
	}
	return _c
}

// SetY sets the "y" field.
func (_c *IdeaCreate) SetY(v float64) *IdeaCreate {
	_c.mutation.SetY(v)
	return _c
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_c *IdeaCreate) SetNillableY(v *float64) *IdeaCreate {
	if v != nil {
		_c.SetY(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IdeaCreate) SetCreatedAt(v time.Time) *IdeaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IdeaCreate) SetNillableCreatedAt(v *time.Time) *IdeaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IdeaCreate) SetUpdatedAt(v time.Time) *IdeaCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IdeaCreate) SetNillableUpdatedAt(v *time.Time) *IdeaCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IdeaCreate) SetID(v uuid.UUID) *IdeaCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IdeaCreate) SetNillableID(v *uuid.UUID) *IdeaCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *IdeaCreate) SetOwnerID(id uuid.UUID) *IdeaCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *IdeaCreate) SetOwner(v *User) *IdeaCreate {
	return _c.SetOwnerID(v.ID)
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_c *IdeaCreate) SetProjectID(id uuid.UUID) *IdeaCreate {
	_c.mutation.SetProjectID(id)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *IdeaCreate) SetProject(v *Project) *IdeaCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the IdeaMutation object of the builder.
func (_c *IdeaCreate) Mutation() *IdeaMutation {
	return _c.mutation
}

// Save creates the Idea in the database.
func (_c *IdeaCreate) Save(ctx context.Context) (*Idea, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IdeaCreate) SaveX(ctx context.Context) *Idea {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdeaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdeaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IdeaCreate) defaults() {
	if _, ok := _c.mutation.Content(); !ok {
		v := idea.DefaultContent
		_c.mutation.SetContent(v)
	}
	if _, ok := _c.mutation.X(); !ok {
		v := idea.DefaultX
		_c.mutation.SetX(v)
	}
	if _, ok := _c.mutation.Y(); !ok {
		v := idea.DefaultY
		_c.mutation.SetY(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := idea.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := idea.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := idea.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IdeaCreate) check() error {
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Idea.content"`)}
	}
	if _, ok := _c.mutation.X(); !ok {
		return &ValidationError{Name: "x", err: errors.New(`ent: missing required field "Idea.x"`)}
	}
	if _, ok := _c.mutation.Y(); !ok {
		return &ValidationError{Name: "y", err: errors.New(`ent: missing required field "Idea.y"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Idea.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Idea.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Idea.owner"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Idea.project"`)}
	}
	return nil
}

func (_c *IdeaCreate) sqlSave(ctx context.Context) (*Idea, error) {
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

func (_c *IdeaCreate) createSpec() (*Idea, *sqlgraph.CreateSpec) {
	var (
		_node = &Idea{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(idea.Table, sqlgraph.NewFieldSpec(idea.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(idea.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.X(); ok {
		_spec.SetField(idea.FieldX, field.TypeFloat64, value)
		_node.X = value
	}
	if value, ok := _c.mutation.Y(); ok {
		_spec.SetField(idea.FieldY, field.TypeFloat64, value)
		_node.Y = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(idea.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(idea.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   idea.OwnerTable,
			Columns: []string{idea.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.idea_owner = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   idea.ProjectTable,
			Columns: []string{idea.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.idea_project = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IdeaCreateBulk is the builder for creating many Idea entities in bulk.
type IdeaCreateBulk struct {
	config
	err      error
	builders []*IdeaCreate
}

// Save creates the Idea entities in the database.
func (_c *IdeaCreateBulk) Save(ctx context.Context) ([]*Idea, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Idea, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IdeaMutation)
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
func (_c *IdeaCreateBulk) SaveX(ctx context.Context) []*Idea {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdeaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdeaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
