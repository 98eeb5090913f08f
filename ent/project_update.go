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
	"sdg-innovation-api/ent/solution"
	"sdg-innovation-api/ent/user"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProjectUpdate) SetTitle(v string) *ProjectUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableTitle(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProjectUpdate) SetDescription(v string) *ProjectUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDescription(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *ProjectUpdate) SetLocation(v string) *ProjectUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableLocation(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *ProjectUpdate) ClearLocation() *ProjectUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ProjectUpdate) SetNotes(v string) *ProjectUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableNotes(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetTeamInfo sets the "team_info" field.
func (_u *ProjectUpdate) SetTeamInfo(v *schema.TeamInfo) *ProjectUpdate {
	_u.mutation.SetTeamInfo(v)
	return _u
}

// ClearTeamInfo clears the value of the "team_info" field.
func (_u *ProjectUpdate) ClearTeamInfo() *ProjectUpdate {
	_u.mutation.ClearTeamInfo()
	return _u
}

// SetProblemInfo sets the "problem_info" field.
func (_u *ProjectUpdate) SetProblemInfo(v *schema.ProblemInfo) *ProjectUpdate {
	_u.mutation.SetProblemInfo(v)
	return _u
}

// ClearProblemInfo clears the value of the "problem_info" field.
func (_u *ProjectUpdate) ClearProblemInfo() *ProjectUpdate {
	_u.mutation.ClearProblemInfo()
	return _u
}

// SetIdeationSessionID sets the "ideation_session_id" field.
func (_u *ProjectUpdate) SetIdeationSessionID(v uuid.UUID) *ProjectUpdate {
	_u.mutation.SetIdeationSessionID(v)
	return _u
}

// SetNillableIdeationSessionID sets the "ideation_session_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableIdeationSessionID(v *uuid.UUID) *ProjectUpdate {
	if v != nil {
		_u.SetIdeationSessionID(*v)
	}
	return _u
}

// ClearIdeationSessionID clears the value of the "ideation_session_id" field.
func (_u *ProjectUpdate) ClearIdeationSessionID() *ProjectUpdate {
	_u.mutation.ClearIdeationSessionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *ProjectUpdate) SetOwnerID(id uuid.UUID) *ProjectUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *ProjectUpdate) SetOwner(v *User) *ProjectUpdate {
	return _u.SetOwnerID(v.ID)
}

// SetSolutionID sets the "solution" edge to the Solution entity by ID.
func (_u *ProjectUpdate) SetSolutionID(id uuid.UUID) *ProjectUpdate {
	_u.mutation.SetSolutionID(id)
	return _u
}

// SetNillableSolutionID sets the "solution" edge to the Solution entity by ID if the given value is not nil.
func (_u *ProjectUpdate) SetNillableSolutionID(id *uuid.UUID) *ProjectUpdate {
	if id != nil {
		_u = _u.SetSolutionID(*id)
	}
	return _u
}

// SetSolution sets the "solution" edge to the Solution entity.
func (_u *ProjectUpdate) SetSolution(v *Solution) *ProjectUpdate {
	return _u.SetSolutionID(v.ID)
}

// SetPrototypeID sets the "prototype" edge to the Prototype entity by ID.
func (_u *ProjectUpdate) SetPrototypeID(id uuid.UUID) *ProjectUpdate {
	_u.mutation.SetPrototypeID(id)
	return _u
}

// SetNillablePrototypeID sets the "prototype" edge to the Prototype entity by ID if the given value is not nil.
func (_u *ProjectUpdate) SetNillablePrototypeID(id *uuid.UUID) *ProjectUpdate {
	if id != nil {
		_u = _u.SetPrototypeID(*id)
	}
	return _u
}

// SetPrototype sets the "prototype" edge to the Prototype entity.
func (_u *ProjectUpdate) SetPrototype(v *Prototype) *ProjectUpdate {
	return _u.SetPrototypeID(v.ID)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *ProjectUpdate) ClearOwner() *ProjectUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearSolution clears the "solution" edge to the Solution entity.
func (_u *ProjectUpdate) ClearSolution() *ProjectUpdate {
	_u.mutation.ClearSolution()
	return _u
}

// ClearPrototype clears the "prototype" edge to the Prototype entity.
func (_u *ProjectUpdate) ClearPrototype() *ProjectUpdate {
	_u.mutation.ClearPrototype()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.owner"`)
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(project.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(project.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(project.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(project.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamInfo(); ok {
		_spec.SetField(project.FieldTeamInfo, field.TypeJSON, value)
	}
	if _u.mutation.TeamInfoCleared() {
		_spec.ClearField(project.FieldTeamInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProblemInfo(); ok {
		_spec.SetField(project.FieldProblemInfo, field.TypeJSON, value)
	}
	if _u.mutation.ProblemInfoCleared() {
		_spec.ClearField(project.FieldProblemInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.IdeationSessionID(); ok {
		_spec.SetField(project.FieldIdeationSessionID, field.TypeUUID, value)
	}
	if _u.mutation.IdeationSessionIDCleared() {
		_spec.ClearField(project.FieldIdeationSessionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   project.OwnerTable,
			Columns: []string{project.OwnerColumn},
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
			Table:   project.OwnerTable,
			Columns: []string{project.OwnerColumn},
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
	if _u.mutation.SolutionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   project.SolutionTable,
			Columns: []string{project.SolutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SolutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   project.SolutionTable,
			Columns: []string{project.SolutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PrototypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   project.PrototypeTable,
			Columns: []string{project.PrototypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prototype.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrototypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   project.PrototypeTable,
			Columns: []string{project.PrototypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prototype.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetTitle sets the "title" field.
func (_u *ProjectUpdateOne) SetTitle(v string) *ProjectUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableTitle(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProjectUpdateOne) SetDescription(v string) *ProjectUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDescription(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *ProjectUpdateOne) SetLocation(v string) *ProjectUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableLocation(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *ProjectUpdateOne) ClearLocation() *ProjectUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ProjectUpdateOne) SetNotes(v string) *ProjectUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableNotes(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetTeamInfo sets the "team_info" field.
func (_u *ProjectUpdateOne) SetTeamInfo(v *schema.TeamInfo) *ProjectUpdateOne {
	_u.mutation.SetTeamInfo(v)
	return _u
}

// ClearTeamInfo clears the value of the "team_info" field.
func (_u *ProjectUpdateOne) ClearTeamInfo() *ProjectUpdateOne {
	_u.mutation.ClearTeamInfo()
	return _u
}

// SetProblemInfo sets the "problem_info" field.
func (_u *ProjectUpdateOne) SetProblemInfo(v *schema.ProblemInfo) *ProjectUpdateOne {
	_u.mutation.SetProblemInfo(v)
	return _u
}

// ClearProblemInfo clears the value of the "problem_info" field.
func (_u *ProjectUpdateOne) ClearProblemInfo() *ProjectUpdateOne {
	_u.mutation.ClearProblemInfo()
	return _u
}

// SetIdeationSessionID sets the "ideation_session_id" field.
func (_u *ProjectUpdateOne) SetIdeationSessionID(v uuid.UUID) *ProjectUpdateOne {
	_u.mutation.SetIdeationSessionID(v)
	return _u
}

// SetNillableIdeationSessionID sets the "ideation_session_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableIdeationSessionID(v *uuid.UUID) *ProjectUpdateOne {
	if v != nil {
		_u.SetIdeationSessionID(*v)
	}
	return _u
}

// ClearIdeationSessionID clears the value of the "ideation_session_id" field.
func (_u *ProjectUpdateOne) ClearIdeationSessionID() *ProjectUpdateOne {
	_u.mutation.ClearIdeationSessionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *ProjectUpdateOne) SetOwnerID(id uuid.UUID) *ProjectUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *ProjectUpdateOne) SetOwner(v *User) *ProjectUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// SetSolutionID sets the "solution" edge to the Solution entity by ID.
func (_u *ProjectUpdateOne) SetSolutionID(id uuid.UUID) *ProjectUpdateOne {
	_u.mutation.SetSolutionID(id)
	return _u
}

// SetNillableSolutionID sets the "solution" edge to the Solution entity by ID if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableSolutionID(id *uuid.UUID) *ProjectUpdateOne {
	if id != nil {
		_u = _u.SetSolutionID(*id)
	}
	return _u
}

// SetSolution sets the "solution" edge to the Solution entity.
func (_u *ProjectUpdateOne) SetSolution(v *Solution) *ProjectUpdateOne {
	return _u.SetSolutionID(v.ID)
}

// SetPrototypeID sets the "prototype" edge to the Prototype entity by ID.
func (_u *ProjectUpdateOne) SetPrototypeID(id uuid.UUID) *ProjectUpdateOne {
	_u.mutation.SetPrototypeID(id)
	return _u
}

// SetNillablePrototypeID sets the "prototype" edge to the Prototype entity by ID if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillablePrototypeID(id *uuid.UUID) *ProjectUpdateOne {
	if id != nil {
		_u = _u.SetPrototypeID(*id)
	}
	return _u
}

// SetPrototype sets the "prototype" edge to the Prototype entity.
func (_u *ProjectUpdateOne) SetPrototype(v *Prototype) *ProjectUpdateOne {
	return _u.SetPrototypeID(v.ID)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *ProjectUpdateOne) ClearOwner() *ProjectUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearSolution clears the "solution" edge to the Solution entity.
func (_u *ProjectUpdateOne) ClearSolution() *ProjectUpdateOne {
	_u.mutation.ClearSolution()
	return _u
}

// ClearPrototype clears the "prototype" edge to the Prototype entity.
func (_u *ProjectUpdateOne) ClearPrototype() *ProjectUpdateOne {
	_u.mutation.ClearPrototype()
	return _u
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.owner"`)
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
		_spec.SetField(project.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(project.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(project.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(project.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamInfo(); ok {
		_spec.SetField(project.FieldTeamInfo, field.TypeJSON, value)
	}
	if _u.mutation.TeamInfoCleared() {
		_spec.ClearField(project.FieldTeamInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProblemInfo(); ok {
		_spec.SetField(project.FieldProblemInfo, field.TypeJSON, value)
	}
	if _u.mutation.ProblemInfoCleared() {
		_spec.ClearField(project.FieldProblemInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.IdeationSessionID(); ok {
		_spec.SetField(project.FieldIdeationSessionID, field.TypeUUID, value)
	}
	if _u.mutation.IdeationSessionIDCleared() {
		_spec.ClearField(project.FieldIdeationSessionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   project.OwnerTable,
			Columns: []string{project.OwnerColumn},
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
			Table:   project.OwnerTable,
			Columns: []string{project.OwnerColumn},
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
	if _u.mutation.SolutionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   project.SolutionTable,
			Columns: []string{project.SolutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SolutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   project.SolutionTable,
			Columns: []string{project.SolutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PrototypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   project.PrototypeTable,
			Columns: []string{project.PrototypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prototype.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrototypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   project.PrototypeTable,
			Columns: []string{project.PrototypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prototype.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
