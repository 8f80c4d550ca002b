// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkale/skillforge/ent/messageevent"
	"github.com/mkale/skillforge/ent/predicate"
)

// MessageEventUpdate is the builder for updating MessageEvent entities.
type MessageEventUpdate struct {
	config
	hooks    []Hook
	mutation *MessageEventMutation
}

// Where appends a list predicates to the MessageEventUpdate builder.
func (_u *MessageEventUpdate) Where(ps ...predicate.MessageEvent) *MessageEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *MessageEventUpdate) SetMessageID(v string) *MessageEventUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *MessageEventUpdate) SetNillableMessageID(v *string) *MessageEventUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetDiscussionID sets the "discussion_id" field.
func (_u *MessageEventUpdate) SetDiscussionID(v string) *MessageEventUpdate {
	_u.mutation.SetDiscussionID(v)
	return _u
}

// SetNillableDiscussionID sets the "discussion_id" field if the given value is not nil.
func (_u *MessageEventUpdate) SetNillableDiscussionID(v *string) *MessageEventUpdate {
	if v != nil {
		_u.SetDiscussionID(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageEventUpdate) SetBody(v string) *MessageEventUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageEventUpdate) SetNillableBody(v *string) *MessageEventUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// Mutation returns the MessageEventMutation object of the builder.
func (_u *MessageEventUpdate) Mutation() *MessageEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageEventUpdate) check() error {
	if v, ok := _u.mutation.MessageID(); ok {
		if err := messageevent.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "MessageEvent.message_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiscussionID(); ok {
		if err := messageevent.DiscussionIDValidator(v); err != nil {
			return &ValidationError{Name: "discussion_id", err: fmt.Errorf(`ent: validator failed for field "MessageEvent.discussion_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := messageevent.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "MessageEvent.body": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageevent.Table, messageevent.Columns, sqlgraph.NewFieldSpec(messageevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(messageevent.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiscussionID(); ok {
		_spec.SetField(messageevent.FieldDiscussionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(messageevent.FieldBody, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageEventUpdateOne is the builder for updating a single MessageEvent entity.
type MessageEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageEventMutation
}

// SetMessageID sets the "message_id" field.
func (_u *MessageEventUpdateOne) SetMessageID(v string) *MessageEventUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *MessageEventUpdateOne) SetNillableMessageID(v *string) *MessageEventUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetDiscussionID sets the "discussion_id" field.
func (_u *MessageEventUpdateOne) SetDiscussionID(v string) *MessageEventUpdateOne {
	_u.mutation.SetDiscussionID(v)
	return _u
}

// SetNillableDiscussionID sets the "discussion_id" field if the given value is not nil.
func (_u *MessageEventUpdateOne) SetNillableDiscussionID(v *string) *MessageEventUpdateOne {
	if v != nil {
		_u.SetDiscussionID(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageEventUpdateOne) SetBody(v string) *MessageEventUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageEventUpdateOne) SetNillableBody(v *string) *MessageEventUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// Mutation returns the MessageEventMutation object of the builder.
func (_u *MessageEventUpdateOne) Mutation() *MessageEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageEventUpdate builder.
func (_u *MessageEventUpdateOne) Where(ps ...predicate.MessageEvent) *MessageEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageEventUpdateOne) Select(field string, fields ...string) *MessageEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageEvent entity.
func (_u *MessageEventUpdateOne) Save(ctx context.Context) (*MessageEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageEventUpdateOne) SaveX(ctx context.Context) *MessageEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageEventUpdateOne) check() error {
	if v, ok := _u.mutation.MessageID(); ok {
		if err := messageevent.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "MessageEvent.message_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiscussionID(); ok {
		if err := messageevent.DiscussionIDValidator(v); err != nil {
			return &ValidationError{Name: "discussion_id", err: fmt.Errorf(`ent: validator failed for field "MessageEvent.discussion_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := messageevent.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "MessageEvent.body": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageEventUpdateOne) sqlSave(ctx context.Context) (_node *MessageEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageevent.Table, messageevent.Columns, sqlgraph.NewFieldSpec(messageevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messageevent.FieldID)
		for _, f := range fields {
			if !messageevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messageevent.FieldID {
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
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(messageevent.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiscussionID(); ok {
		_spec.SetField(messageevent.FieldDiscussionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(messageevent.FieldBody, field.TypeString, value)
	}
	_node = &MessageEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
