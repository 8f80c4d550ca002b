// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkale/skillforge/ent/activityevent"
	"github.com/mkale/skillforge/ent/predicate"
)

// ActivityEventUpdate is the builder for updating ActivityEvent entities.
type ActivityEventUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityEventMutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdate) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *ActivityEventUpdate) SetActivityType(v string) *ActivityEventUpdate {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableActivityType(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ActivityEventUpdate) SetDetail(v string) *ActivityEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableDetail(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetXpDelta sets the "xp_delta" field.
func (_u *ActivityEventUpdate) SetXpDelta(v int) *ActivityEventUpdate {
	_u.mutation.ResetXpDelta()
	_u.mutation.SetXpDelta(v)
	return _u
}

// SetNillableXpDelta sets the "xp_delta" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableXpDelta(v *int) *ActivityEventUpdate {
	if v != nil {
		_u.SetXpDelta(*v)
	}
	return _u
}

// AddXpDelta adds value to the "xp_delta" field.
func (_u *ActivityEventUpdate) AddXpDelta(v int) *ActivityEventUpdate {
	_u.mutation.AddXpDelta(v)
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdate) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdate) check() error {
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := activityevent.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.activity_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(activityevent.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(activityevent.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpDelta(); ok {
		_spec.SetField(activityevent.FieldXpDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpDelta(); ok {
		_spec.AddField(activityevent.FieldXpDelta, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityEventUpdateOne is the builder for updating a single ActivityEvent entity.
type ActivityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityEventMutation
}

// SetActivityType sets the "activity_type" field.
func (_u *ActivityEventUpdateOne) SetActivityType(v string) *ActivityEventUpdateOne {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableActivityType(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ActivityEventUpdateOne) SetDetail(v string) *ActivityEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableDetail(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetXpDelta sets the "xp_delta" field.
func (_u *ActivityEventUpdateOne) SetXpDelta(v int) *ActivityEventUpdateOne {
	_u.mutation.ResetXpDelta()
	_u.mutation.SetXpDelta(v)
	return _u
}

// SetNillableXpDelta sets the "xp_delta" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableXpDelta(v *int) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetXpDelta(*v)
	}
	return _u
}

// AddXpDelta adds value to the "xp_delta" field.
func (_u *ActivityEventUpdateOne) AddXpDelta(v int) *ActivityEventUpdateOne {
	_u.mutation.AddXpDelta(v)
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdateOne) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdateOne) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityEventUpdateOne) Select(field string, fields ...string) *ActivityEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityEvent entity.
func (_u *ActivityEventUpdateOne) Save(ctx context.Context) (*ActivityEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) SaveX(ctx context.Context) *ActivityEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdateOne) check() error {
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := activityevent.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.activity_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdateOne) sqlSave(ctx context.Context) (_node *ActivityEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityevent.FieldID)
		for _, f := range fields {
			if !activityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityevent.FieldID {
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
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(activityevent.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(activityevent.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpDelta(); ok {
		_spec.SetField(activityevent.FieldXpDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpDelta(); ok {
		_spec.AddField(activityevent.FieldXpDelta, field.TypeInt, value)
	}
	_node = &ActivityEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
