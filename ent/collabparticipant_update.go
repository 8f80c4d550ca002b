// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkale/skillforge/ent/collabparticipant"
	"github.com/mkale/skillforge/ent/predicate"
)

// CollabParticipantUpdate is the builder for updating CollabParticipant entities.
type CollabParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *CollabParticipantMutation
}

// Where appends a list predicates to the CollabParticipantUpdate builder.
func (_u *CollabParticipantUpdate) Where(ps ...predicate.CollabParticipant) *CollabParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CollabParticipantUpdate) SetSessionID(v string) *CollabParticipantUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CollabParticipantUpdate) SetNillableSessionID(v *string) *CollabParticipantUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CollabParticipantUpdate) SetUserID(v string) *CollabParticipantUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CollabParticipantUpdate) SetNillableUserID(v *string) *CollabParticipantUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJoinedAt sets the "joined_at" field.
func (_u *CollabParticipantUpdate) SetJoinedAt(v time.Time) *CollabParticipantUpdate {
	_u.mutation.SetJoinedAt(v)
	return _u
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_u *CollabParticipantUpdate) SetNillableJoinedAt(v *time.Time) *CollabParticipantUpdate {
	if v != nil {
		_u.SetJoinedAt(*v)
	}
	return _u
}

// SetLeftAt sets the "left_at" field.
func (_u *CollabParticipantUpdate) SetLeftAt(v time.Time) *CollabParticipantUpdate {
	_u.mutation.SetLeftAt(v)
	return _u
}

// SetNillableLeftAt sets the "left_at" field if the given value is not nil.
func (_u *CollabParticipantUpdate) SetNillableLeftAt(v *time.Time) *CollabParticipantUpdate {
	if v != nil {
		_u.SetLeftAt(*v)
	}
	return _u
}

// ClearLeftAt clears the value of the "left_at" field.
func (_u *CollabParticipantUpdate) ClearLeftAt() *CollabParticipantUpdate {
	_u.mutation.ClearLeftAt()
	return _u
}

// Mutation returns the CollabParticipantMutation object of the builder.
func (_u *CollabParticipantUpdate) Mutation() *CollabParticipantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CollabParticipantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollabParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CollabParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollabParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollabParticipantUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := collabparticipant.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CollabParticipant.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := collabparticipant.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CollabParticipant.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CollabParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collabparticipant.Table, collabparticipant.Columns, sqlgraph.NewFieldSpec(collabparticipant.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(collabparticipant.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(collabparticipant.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JoinedAt(); ok {
		_spec.SetField(collabparticipant.FieldJoinedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LeftAt(); ok {
		_spec.SetField(collabparticipant.FieldLeftAt, field.TypeTime, value)
	}
	if _u.mutation.LeftAtCleared() {
		_spec.ClearField(collabparticipant.FieldLeftAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collabparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CollabParticipantUpdateOne is the builder for updating a single CollabParticipant entity.
type CollabParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CollabParticipantMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CollabParticipantUpdateOne) SetSessionID(v string) *CollabParticipantUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CollabParticipantUpdateOne) SetNillableSessionID(v *string) *CollabParticipantUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CollabParticipantUpdateOne) SetUserID(v string) *CollabParticipantUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CollabParticipantUpdateOne) SetNillableUserID(v *string) *CollabParticipantUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJoinedAt sets the "joined_at" field.
func (_u *CollabParticipantUpdateOne) SetJoinedAt(v time.Time) *CollabParticipantUpdateOne {
	_u.mutation.SetJoinedAt(v)
	return _u
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_u *CollabParticipantUpdateOne) SetNillableJoinedAt(v *time.Time) *CollabParticipantUpdateOne {
	if v != nil {
		_u.SetJoinedAt(*v)
	}
	return _u
}

// SetLeftAt sets the "left_at" field.
func (_u *CollabParticipantUpdateOne) SetLeftAt(v time.Time) *CollabParticipantUpdateOne {
	_u.mutation.SetLeftAt(v)
	return _u
}

// SetNillableLeftAt sets the "left_at" field if the given value is not nil.
func (_u *CollabParticipantUpdateOne) SetNillableLeftAt(v *time.Time) *CollabParticipantUpdateOne {
	if v != nil {
		_u.SetLeftAt(*v)
	}
	return _u
}

// ClearLeftAt clears the value of the "left_at" field.
func (_u *CollabParticipantUpdateOne) ClearLeftAt() *CollabParticipantUpdateOne {
	_u.mutation.ClearLeftAt()
	return _u
}

// Mutation returns the CollabParticipantMutation object of the builder.
func (_u *CollabParticipantUpdateOne) Mutation() *CollabParticipantMutation {
	return _u.mutation
}

// Where appends a list predicates to the CollabParticipantUpdate builder.
func (_u *CollabParticipantUpdateOne) Where(ps ...predicate.CollabParticipant) *CollabParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CollabParticipantUpdateOne) Select(field string, fields ...string) *CollabParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CollabParticipant entity.
func (_u *CollabParticipantUpdateOne) Save(ctx context.Context) (*CollabParticipant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollabParticipantUpdateOne) SaveX(ctx context.Context) *CollabParticipant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CollabParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollabParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollabParticipantUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := collabparticipant.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CollabParticipant.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := collabparticipant.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CollabParticipant.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CollabParticipantUpdateOne) sqlSave(ctx context.Context) (_node *CollabParticipant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collabparticipant.Table, collabparticipant.Columns, sqlgraph.NewFieldSpec(collabparticipant.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CollabParticipant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collabparticipant.FieldID)
		for _, f := range fields {
			if !collabparticipant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != collabparticipant.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(collabparticipant.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(collabparticipant.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JoinedAt(); ok {
		_spec.SetField(collabparticipant.FieldJoinedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LeftAt(); ok {
		_spec.SetField(collabparticipant.FieldLeftAt, field.TypeTime, value)
	}
	if _u.mutation.LeftAtCleared() {
		_spec.ClearField(collabparticipant.FieldLeftAt, field.TypeTime)
	}
	_node = &CollabParticipant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collabparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
