// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkale/skillforge/ent/collabsession"
	"github.com/mkale/skillforge/ent/predicate"
)

// CollabSessionUpdate is the builder for updating CollabSession entities.
type CollabSessionUpdate struct {
	config
	hooks    []Hook
	mutation *CollabSessionMutation
}

// Where appends a list predicates to the CollabSessionUpdate builder.
func (_u *CollabSessionUpdate) Where(ps ...predicate.CollabSession) *CollabSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHostUserID sets the "host_user_id" field.
func (_u *CollabSessionUpdate) SetHostUserID(v string) *CollabSessionUpdate {
	_u.mutation.SetHostUserID(v)
	return _u
}

// SetNillableHostUserID sets the "host_user_id" field if the given value is not nil.
func (_u *CollabSessionUpdate) SetNillableHostUserID(v *string) *CollabSessionUpdate {
	if v != nil {
		_u.SetHostUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CollabSessionUpdate) SetTitle(v string) *CollabSessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CollabSessionUpdate) SetNillableTitle(v *string) *CollabSessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *CollabSessionUpdate) SetLanguage(v string) *CollabSessionUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *CollabSessionUpdate) SetNillableLanguage(v *string) *CollabSessionUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetRelayURL sets the "relay_url" field.
func (_u *CollabSessionUpdate) SetRelayURL(v string) *CollabSessionUpdate {
	_u.mutation.SetRelayURL(v)
	return _u
}

// SetNillableRelayURL sets the "relay_url" field if the given value is not nil.
func (_u *CollabSessionUpdate) SetNillableRelayURL(v *string) *CollabSessionUpdate {
	if v != nil {
		_u.SetRelayURL(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *CollabSessionUpdate) SetActive(v bool) *CollabSessionUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CollabSessionUpdate) SetNillableActive(v *bool) *CollabSessionUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the CollabSessionMutation object of the builder.
func (_u *CollabSessionUpdate) Mutation() *CollabSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CollabSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollabSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CollabSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollabSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollabSessionUpdate) check() error {
	if v, ok := _u.mutation.HostUserID(); ok {
		if err := collabsession.HostUserIDValidator(v); err != nil {
			return &ValidationError{Name: "host_user_id", err: fmt.Errorf(`ent: validator failed for field "CollabSession.host_user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := collabsession.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CollabSession.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CollabSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collabsession.Table, collabsession.Columns, sqlgraph.NewFieldSpec(collabsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.HostUserID(); ok {
		_spec.SetField(collabsession.FieldHostUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(collabsession.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(collabsession.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelayURL(); ok {
		_spec.SetField(collabsession.FieldRelayURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(collabsession.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collabsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CollabSessionUpdateOne is the builder for updating a single CollabSession entity.
type CollabSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CollabSessionMutation
}

// SetHostUserID sets the "host_user_id" field.
func (_u *CollabSessionUpdateOne) SetHostUserID(v string) *CollabSessionUpdateOne {
	_u.mutation.SetHostUserID(v)
	return _u
}

// SetNillableHostUserID sets the "host_user_id" field if the given value is not nil.
func (_u *CollabSessionUpdateOne) SetNillableHostUserID(v *string) *CollabSessionUpdateOne {
	if v != nil {
		_u.SetHostUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CollabSessionUpdateOne) SetTitle(v string) *CollabSessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CollabSessionUpdateOne) SetNillableTitle(v *string) *CollabSessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *CollabSessionUpdateOne) SetLanguage(v string) *CollabSessionUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *CollabSessionUpdateOne) SetNillableLanguage(v *string) *CollabSessionUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetRelayURL sets the "relay_url" field.
func (_u *CollabSessionUpdateOne) SetRelayURL(v string) *CollabSessionUpdateOne {
	_u.mutation.SetRelayURL(v)
	return _u
}

// SetNillableRelayURL sets the "relay_url" field if the given value is not nil.
func (_u *CollabSessionUpdateOne) SetNillableRelayURL(v *string) *CollabSessionUpdateOne {
	if v != nil {
		_u.SetRelayURL(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *CollabSessionUpdateOne) SetActive(v bool) *CollabSessionUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CollabSessionUpdateOne) SetNillableActive(v *bool) *CollabSessionUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the CollabSessionMutation object of the builder.
func (_u *CollabSessionUpdateOne) Mutation() *CollabSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CollabSessionUpdate builder.
func (_u *CollabSessionUpdateOne) Where(ps ...predicate.CollabSession) *CollabSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CollabSessionUpdateOne) Select(field string, fields ...string) *CollabSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CollabSession entity.
func (_u *CollabSessionUpdateOne) Save(ctx context.Context) (*CollabSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollabSessionUpdateOne) SaveX(ctx context.Context) *CollabSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CollabSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollabSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollabSessionUpdateOne) check() error {
	if v, ok := _u.mutation.HostUserID(); ok {
		if err := collabsession.HostUserIDValidator(v); err != nil {
			return &ValidationError{Name: "host_user_id", err: fmt.Errorf(`ent: validator failed for field "CollabSession.host_user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := collabsession.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CollabSession.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CollabSessionUpdateOne) sqlSave(ctx context.Context) (_node *CollabSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collabsession.Table, collabsession.Columns, sqlgraph.NewFieldSpec(collabsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CollabSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collabsession.FieldID)
		for _, f := range fields {
			if !collabsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != collabsession.FieldID {
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
	if value, ok := _u.mutation.HostUserID(); ok {
		_spec.SetField(collabsession.FieldHostUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(collabsession.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(collabsession.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelayURL(); ok {
		_spec.SetField(collabsession.FieldRelayURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(collabsession.FieldActive, field.TypeBool, value)
	}
	_node = &CollabSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collabsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
