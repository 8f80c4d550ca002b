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
	"github.com/mkale/skillforge/ent/predicate"
	"github.com/mkale/skillforge/ent/xpledger"
)

// XpLedgerUpdate is the builder for updating XpLedger entities.
type XpLedgerUpdate struct {
	config
	hooks    []Hook
	mutation *XpLedgerMutation
}

// Where appends a list predicates to the XpLedgerUpdate builder.
func (_u *XpLedgerUpdate) Where(ps ...predicate.XpLedger) *XpLedgerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *XpLedgerUpdate) SetUserID(v string) *XpLedgerUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *XpLedgerUpdate) SetNillableUserID(v *string) *XpLedgerUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *XpLedgerUpdate) SetTotalXp(v int) *XpLedgerUpdate {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *XpLedgerUpdate) SetNillableTotalXp(v *int) *XpLedgerUpdate {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *XpLedgerUpdate) AddTotalXp(v int) *XpLedgerUpdate {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetDailyXp sets the "daily_xp" field.
func (_u *XpLedgerUpdate) SetDailyXp(v int) *XpLedgerUpdate {
	_u.mutation.ResetDailyXp()
	_u.mutation.SetDailyXp(v)
	return _u
}

// SetNillableDailyXp sets the "daily_xp" field if the given value is not nil.
func (_u *XpLedgerUpdate) SetNillableDailyXp(v *int) *XpLedgerUpdate {
	if v != nil {
		_u.SetDailyXp(*v)
	}
	return _u
}

// AddDailyXp adds value to the "daily_xp" field.
func (_u *XpLedgerUpdate) AddDailyXp(v int) *XpLedgerUpdate {
	_u.mutation.AddDailyXp(v)
	return _u
}

// SetWeeklyXp sets the "weekly_xp" field.
func (_u *XpLedgerUpdate) SetWeeklyXp(v int) *XpLedgerUpdate {
	_u.mutation.ResetWeeklyXp()
	_u.mutation.SetWeeklyXp(v)
	return _u
}

// SetNillableWeeklyXp sets the "weekly_xp" field if the given value is not nil.
func (_u *XpLedgerUpdate) SetNillableWeeklyXp(v *int) *XpLedgerUpdate {
	if v != nil {
		_u.SetWeeklyXp(*v)
	}
	return _u
}

// AddWeeklyXp adds value to the "weekly_xp" field.
func (_u *XpLedgerUpdate) AddWeeklyXp(v int) *XpLedgerUpdate {
	_u.mutation.AddWeeklyXp(v)
	return _u
}

// SetLastDailyReset sets the "last_daily_reset" field.
func (_u *XpLedgerUpdate) SetLastDailyReset(v string) *XpLedgerUpdate {
	_u.mutation.SetLastDailyReset(v)
	return _u
}

// SetNillableLastDailyReset sets the "last_daily_reset" field if the given value is not nil.
func (_u *XpLedgerUpdate) SetNillableLastDailyReset(v *string) *XpLedgerUpdate {
	if v != nil {
		_u.SetLastDailyReset(*v)
	}
	return _u
}

// SetLastWeeklyReset sets the "last_weekly_reset" field.
func (_u *XpLedgerUpdate) SetLastWeeklyReset(v string) *XpLedgerUpdate {
	_u.mutation.SetLastWeeklyReset(v)
	return _u
}

// SetNillableLastWeeklyReset sets the "last_weekly_reset" field if the given value is not nil.
func (_u *XpLedgerUpdate) SetNillableLastWeeklyReset(v *string) *XpLedgerUpdate {
	if v != nil {
		_u.SetLastWeeklyReset(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *XpLedgerUpdate) SetUpdatedAt(v time.Time) *XpLedgerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the XpLedgerMutation object of the builder.
func (_u *XpLedgerUpdate) Mutation() *XpLedgerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *XpLedgerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *XpLedgerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *XpLedgerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *XpLedgerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *XpLedgerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := xpledger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *XpLedgerUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := xpledger.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "XpLedger.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalXp(); ok {
		if err := xpledger.TotalXpValidator(v); err != nil {
			return &ValidationError{Name: "total_xp", err: fmt.Errorf(`ent: validator failed for field "XpLedger.total_xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyXp(); ok {
		if err := xpledger.DailyXpValidator(v); err != nil {
			return &ValidationError{Name: "daily_xp", err: fmt.Errorf(`ent: validator failed for field "XpLedger.daily_xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeeklyXp(); ok {
		if err := xpledger.WeeklyXpValidator(v); err != nil {
			return &ValidationError{Name: "weekly_xp", err: fmt.Errorf(`ent: validator failed for field "XpLedger.weekly_xp": %w`, err)}
		}
	}
	return nil
}

func (_u *XpLedgerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(xpledger.Table, xpledger.Columns, sqlgraph.NewFieldSpec(xpledger.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(xpledger.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(xpledger.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(xpledger.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyXp(); ok {
		_spec.SetField(xpledger.FieldDailyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyXp(); ok {
		_spec.AddField(xpledger.FieldDailyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeeklyXp(); ok {
		_spec.SetField(xpledger.FieldWeeklyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyXp(); ok {
		_spec.AddField(xpledger.FieldWeeklyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastDailyReset(); ok {
		_spec.SetField(xpledger.FieldLastDailyReset, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastWeeklyReset(); ok {
		_spec.SetField(xpledger.FieldLastWeeklyReset, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(xpledger.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{xpledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// XpLedgerUpdateOne is the builder for updating a single XpLedger entity.
type XpLedgerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *XpLedgerMutation
}

// SetUserID sets the "user_id" field.
func (_u *XpLedgerUpdateOne) SetUserID(v string) *XpLedgerUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *XpLedgerUpdateOne) SetNillableUserID(v *string) *XpLedgerUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *XpLedgerUpdateOne) SetTotalXp(v int) *XpLedgerUpdateOne {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *XpLedgerUpdateOne) SetNillableTotalXp(v *int) *XpLedgerUpdateOne {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *XpLedgerUpdateOne) AddTotalXp(v int) *XpLedgerUpdateOne {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetDailyXp sets the "daily_xp" field.
func (_u *XpLedgerUpdateOne) SetDailyXp(v int) *XpLedgerUpdateOne {
	_u.mutation.ResetDailyXp()
	_u.mutation.SetDailyXp(v)
	return _u
}

// SetNillableDailyXp sets the "daily_xp" field if the given value is not nil.
func (_u *XpLedgerUpdateOne) SetNillableDailyXp(v *int) *XpLedgerUpdateOne {
	if v != nil {
		_u.SetDailyXp(*v)
	}
	return _u
}

// AddDailyXp adds value to the "daily_xp" field.
func (_u *XpLedgerUpdateOne) AddDailyXp(v int) *XpLedgerUpdateOne {
	_u.mutation.AddDailyXp(v)
	return _u
}

// SetWeeklyXp sets the "weekly_xp" field.
func (_u *XpLedgerUpdateOne) SetWeeklyXp(v int) *XpLedgerUpdateOne {
	_u.mutation.ResetWeeklyXp()
	_u.mutation.SetWeeklyXp(v)
	return _u
}

// SetNillableWeeklyXp sets the "weekly_xp" field if the given value is not nil.
func (_u *XpLedgerUpdateOne) SetNillableWeeklyXp(v *int) *XpLedgerUpdateOne {
	if v != nil {
		_u.SetWeeklyXp(*v)
	}
	return _u
}

// AddWeeklyXp adds value to the "weekly_xp" field.
func (_u *XpLedgerUpdateOne) AddWeeklyXp(v int) *XpLedgerUpdateOne {
	_u.mutation.AddWeeklyXp(v)
	return _u
}

// SetLastDailyReset sets the "last_daily_reset" field.
func (_u *XpLedgerUpdateOne) SetLastDailyReset(v string) *XpLedgerUpdateOne {
	_u.mutation.SetLastDailyReset(v)
	return _u
}

// SetNillableLastDailyReset sets the "last_daily_reset" field if the given value is not nil.
func (_u *XpLedgerUpdateOne) SetNillableLastDailyReset(v *string) *XpLedgerUpdateOne {
	if v != nil {
		_u.SetLastDailyReset(*v)
	}
	return _u
}

// SetLastWeeklyReset sets the "last_weekly_reset" field.
func (_u *XpLedgerUpdateOne) SetLastWeeklyReset(v string) *XpLedgerUpdateOne {
	_u.mutation.SetLastWeeklyReset(v)
	return _u
}

// SetNillableLastWeeklyReset sets the "last_weekly_reset" field if the given value is not nil.
func (_u *XpLedgerUpdateOne) SetNillableLastWeeklyReset(v *string) *XpLedgerUpdateOne {
	if v != nil {
		_u.SetLastWeeklyReset(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *XpLedgerUpdateOne) SetUpdatedAt(v time.Time) *XpLedgerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the XpLedgerMutation object of the builder.
func (_u *XpLedgerUpdateOne) Mutation() *XpLedgerMutation {
	return _u.mutation
}

// Where appends a list predicates to the XpLedgerUpdate builder.
func (_u *XpLedgerUpdateOne) Where(ps ...predicate.XpLedger) *XpLedgerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *XpLedgerUpdateOne) Select(field string, fields ...string) *XpLedgerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated XpLedger entity.
func (_u *XpLedgerUpdateOne) Save(ctx context.Context) (*XpLedger, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *XpLedgerUpdateOne) SaveX(ctx context.Context) *XpLedger {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *XpLedgerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *XpLedgerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *XpLedgerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := xpledger.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *XpLedgerUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := xpledger.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "XpLedger.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalXp(); ok {
		if err := xpledger.TotalXpValidator(v); err != nil {
			return &ValidationError{Name: "total_xp", err: fmt.Errorf(`ent: validator failed for field "XpLedger.total_xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyXp(); ok {
		if err := xpledger.DailyXpValidator(v); err != nil {
			return &ValidationError{Name: "daily_xp", err: fmt.Errorf(`ent: validator failed for field "XpLedger.daily_xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeeklyXp(); ok {
		if err := xpledger.WeeklyXpValidator(v); err != nil {
			return &ValidationError{Name: "weekly_xp", err: fmt.Errorf(`ent: validator failed for field "XpLedger.weekly_xp": %w`, err)}
		}
	}
	return nil
}

func (_u *XpLedgerUpdateOne) sqlSave(ctx context.Context) (_node *XpLedger, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(xpledger.Table, xpledger.Columns, sqlgraph.NewFieldSpec(xpledger.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "XpLedger.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, xpledger.FieldID)
		for _, f := range fields {
			if !xpledger.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != xpledger.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(xpledger.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(xpledger.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(xpledger.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyXp(); ok {
		_spec.SetField(xpledger.FieldDailyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyXp(); ok {
		_spec.AddField(xpledger.FieldDailyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeeklyXp(); ok {
		_spec.SetField(xpledger.FieldWeeklyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyXp(); ok {
		_spec.AddField(xpledger.FieldWeeklyXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastDailyReset(); ok {
		_spec.SetField(xpledger.FieldLastDailyReset, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastWeeklyReset(); ok {
		_spec.SetField(xpledger.FieldLastWeeklyReset, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(xpledger.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &XpLedger{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{xpledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
