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
	"github.com/mkale/skillforge/ent/xpledger"
)

// XpLedgerCreate is the builder for creating a XpLedger entity.
type XpLedgerCreate struct {
	config
	mutation *XpLedgerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *XpLedgerCreate) SetUserID(v string) *XpLedgerCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTotalXp sets the "total_xp" field.
func (_c *XpLedgerCreate) SetTotalXp(v int) *XpLedgerCreate {
	_c.mutation.SetTotalXp(v)
	return _c
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_c *XpLedgerCreate) SetNillableTotalXp(v *int) *XpLedgerCreate {
	if v != nil {
		_c.SetTotalXp(*v)
	}
	return _c
}

// SetDailyXp sets the "daily_xp" field.
func (_c *XpLedgerCreate) SetDailyXp(v int) *XpLedgerCreate {
	_c.mutation.SetDailyXp(v)
	return _c
}

// SetNillableDailyXp sets the "daily_xp" field if the given value is not nil.
func (_c *XpLedgerCreate) SetNillableDailyXp(v *int) *XpLedgerCreate {
	if v != nil {
		_c.SetDailyXp(*v)
	}
	return _c
}

// SetWeeklyXp sets the "weekly_xp" field.
func (_c *XpLedgerCreate) SetWeeklyXp(v int) *XpLedgerCreate {
	_c.mutation.SetWeeklyXp(v)
	return _c
}

// SetNillableWeeklyXp sets the "weekly_xp" field if the given value is not nil.
func (_c *XpLedgerCreate) SetNillableWeeklyXp(v *int) *XpLedgerCreate {
	if v != nil {
		_c.SetWeeklyXp(*v)
	}
	return _c
}

// SetLastDailyReset sets the "last_daily_reset" field.
func (_c *XpLedgerCreate) SetLastDailyReset(v string) *XpLedgerCreate {
	_c.mutation.SetLastDailyReset(v)
	return _c
}

// SetNillableLastDailyReset sets the "last_daily_reset" field if the given value is not nil.
func (_c *XpLedgerCreate) SetNillableLastDailyReset(v *string) *XpLedgerCreate {
	if v != nil {
		_c.SetLastDailyReset(*v)
	}
	return _c
}

// SetLastWeeklyReset sets the "last_weekly_reset" field.
func (_c *XpLedgerCreate) SetLastWeeklyReset(v string) *XpLedgerCreate {
	_c.mutation.SetLastWeeklyReset(v)
	return _c
}

// SetNillableLastWeeklyReset sets the "last_weekly_reset" field if the given value is not nil.
func (_c *XpLedgerCreate) SetNillableLastWeeklyReset(v *string) *XpLedgerCreate {
	if v != nil {
		_c.SetLastWeeklyReset(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *XpLedgerCreate) SetUpdatedAt(v time.Time) *XpLedgerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *XpLedgerCreate) SetNillableUpdatedAt(v *time.Time) *XpLedgerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the XpLedgerMutation object of the builder.
func (_c *XpLedgerCreate) Mutation() *XpLedgerMutation {
	return _c.mutation
}

// Save creates the XpLedger in the database.
func (_c *XpLedgerCreate) Save(ctx context.Context) (*XpLedger, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *XpLedgerCreate) SaveX(ctx context.Context) *XpLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *XpLedgerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *XpLedgerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *XpLedgerCreate) defaults() {
	if _, ok := _c.mutation.TotalXp(); !ok {
		v := xpledger.DefaultTotalXp
		_c.mutation.SetTotalXp(v)
	}
	if _, ok := _c.mutation.DailyXp(); !ok {
		v := xpledger.DefaultDailyXp
		_c.mutation.SetDailyXp(v)
	}
	if _, ok := _c.mutation.WeeklyXp(); !ok {
		v := xpledger.DefaultWeeklyXp
		_c.mutation.SetWeeklyXp(v)
	}
	if _, ok := _c.mutation.LastDailyReset(); !ok {
		v := xpledger.DefaultLastDailyReset
		_c.mutation.SetLastDailyReset(v)
	}
	if _, ok := _c.mutation.LastWeeklyReset(); !ok {
		v := xpledger.DefaultLastWeeklyReset
		_c.mutation.SetLastWeeklyReset(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := xpledger.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *XpLedgerCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "XpLedger.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := xpledger.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "XpLedger.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalXp(); !ok {
		return &ValidationError{Name: "total_xp", err: errors.New(`ent: missing required field "XpLedger.total_xp"`)}
	}
	if v, ok := _c.mutation.TotalXp(); ok {
		if err := xpledger.TotalXpValidator(v); err != nil {
			return &ValidationError{Name: "total_xp", err: fmt.Errorf(`ent: validator failed for field "XpLedger.total_xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DailyXp(); !ok {
		return &ValidationError{Name: "daily_xp", err: errors.New(`ent: missing required field "XpLedger.daily_xp"`)}
	}
	if v, ok := _c.mutation.DailyXp(); ok {
		if err := xpledger.DailyXpValidator(v); err != nil {
			return &ValidationError{Name: "daily_xp", err: fmt.Errorf(`ent: validator failed for field "XpLedger.daily_xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeeklyXp(); !ok {
		return &ValidationError{Name: "weekly_xp", err: errors.New(`ent: missing required field "XpLedger.weekly_xp"`)}
	}
	if v, ok := _c.mutation.WeeklyXp(); ok {
		if err := xpledger.WeeklyXpValidator(v); err != nil {
			return &ValidationError{Name: "weekly_xp", err: fmt.Errorf(`ent: validator failed for field "XpLedger.weekly_xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastDailyReset(); !ok {
		return &ValidationError{Name: "last_daily_reset", err: errors.New(`ent: missing required field "XpLedger.last_daily_reset"`)}
	}
	if _, ok := _c.mutation.LastWeeklyReset(); !ok {
		return &ValidationError{Name: "last_weekly_reset", err: errors.New(`ent: missing required field "XpLedger.last_weekly_reset"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "XpLedger.updated_at"`)}
	}
	return nil
}

func (_c *XpLedgerCreate) sqlSave(ctx context.Context) (*XpLedger, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *XpLedgerCreate) createSpec() (*XpLedger, *sqlgraph.CreateSpec) {
	var (
		_node = &XpLedger{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(xpledger.Table, sqlgraph.NewFieldSpec(xpledger.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(xpledger.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TotalXp(); ok {
		_spec.SetField(xpledger.FieldTotalXp, field.TypeInt, value)
		_node.TotalXp = value
	}
	if value, ok := _c.mutation.DailyXp(); ok {
		_spec.SetField(xpledger.FieldDailyXp, field.TypeInt, value)
		_node.DailyXp = value
	}
	if value, ok := _c.mutation.WeeklyXp(); ok {
		_spec.SetField(xpledger.FieldWeeklyXp, field.TypeInt, value)
		_node.WeeklyXp = value
	}
	if value, ok := _c.mutation.LastDailyReset(); ok {
		_spec.SetField(xpledger.FieldLastDailyReset, field.TypeString, value)
		_node.LastDailyReset = value
	}
	if value, ok := _c.mutation.LastWeeklyReset(); ok {
		_spec.SetField(xpledger.FieldLastWeeklyReset, field.TypeString, value)
		_node.LastWeeklyReset = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(xpledger.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.XpLedger.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.XpLedgerUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *XpLedgerCreate) OnConflict(opts ...sql.ConflictOption) *XpLedgerUpsertOne {
	_c.conflict = opts
	return &XpLedgerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.XpLedger.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *XpLedgerCreate) OnConflictColumns(columns ...string) *XpLedgerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &XpLedgerUpsertOne{
		create: _c,
	}
}

type (
	// XpLedgerUpsertOne is the builder for "upsert"-ing
	//  one XpLedger node.
	XpLedgerUpsertOne struct {
		create *XpLedgerCreate
	}

	// XpLedgerUpsert is the "OnConflict" setter.
	XpLedgerUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *XpLedgerUpsert) SetUserID(v string) *XpLedgerUpsert {
	u.Set(xpledger.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *XpLedgerUpsert) UpdateUserID() *XpLedgerUpsert {
	u.SetExcluded(xpledger.FieldUserID)
	return u
}

// SetTotalXp sets the "total_xp" field.
func (u *XpLedgerUpsert) SetTotalXp(v int) *XpLedgerUpsert {
	u.Set(xpledger.FieldTotalXp, v)
	return u
}

// UpdateTotalXp sets the "total_xp" field to the value that was provided on create.
func (u *XpLedgerUpsert) UpdateTotalXp() *XpLedgerUpsert {
	u.SetExcluded(xpledger.FieldTotalXp)
	return u
}

// AddTotalXp adds v to the "total_xp" field.
func (u *XpLedgerUpsert) AddTotalXp(v int) *XpLedgerUpsert {
	u.Add(xpledger.FieldTotalXp, v)
	return u
}

// SetDailyXp sets the "daily_xp" field.
func (u *XpLedgerUpsert) SetDailyXp(v int) *XpLedgerUpsert {
	u.Set(xpledger.FieldDailyXp, v)
	return u
}

// UpdateDailyXp sets the "daily_xp" field to the value that was provided on create.
func (u *XpLedgerUpsert) UpdateDailyXp() *XpLedgerUpsert {
	u.SetExcluded(xpledger.FieldDailyXp)
	return u
}

// AddDailyXp adds v to the "daily_xp" field.
func (u *XpLedgerUpsert) AddDailyXp(v int) *XpLedgerUpsert {
	u.Add(xpledger.FieldDailyXp, v)
	return u
}

// SetWeeklyXp sets the "weekly_xp" field.
func (u *XpLedgerUpsert) SetWeeklyXp(v int) *XpLedgerUpsert {
	u.Set(xpledger.FieldWeeklyXp, v)
	return u
}

// UpdateWeeklyXp sets the "weekly_xp" field to the value that was provided on create.
func (u *XpLedgerUpsert) UpdateWeeklyXp() *XpLedgerUpsert {
	u.SetExcluded(xpledger.FieldWeeklyXp)
	return u
}

// AddWeeklyXp adds v to the "weekly_xp" field.
func (u *XpLedgerUpsert) AddWeeklyXp(v int) *XpLedgerUpsert {
	u.Add(xpledger.FieldWeeklyXp, v)
	return u
}

// SetLastDailyReset sets the "last_daily_reset" field.
func (u *XpLedgerUpsert) SetLastDailyReset(v string) *XpLedgerUpsert {
	u.Set(xpledger.FieldLastDailyReset, v)
	return u
}

// UpdateLastDailyReset sets the "last_daily_reset" field to the value that was provided on create.
func (u *XpLedgerUpsert) UpdateLastDailyReset() *XpLedgerUpsert {
	u.SetExcluded(xpledger.FieldLastDailyReset)
	return u
}

// SetLastWeeklyReset sets the "last_weekly_reset" field.
func (u *XpLedgerUpsert) SetLastWeeklyReset(v string) *XpLedgerUpsert {
	u.Set(xpledger.FieldLastWeeklyReset, v)
	return u
}

// UpdateLastWeeklyReset sets the "last_weekly_reset" field to the value that was provided on create.
func (u *XpLedgerUpsert) UpdateLastWeeklyReset() *XpLedgerUpsert {
	u.SetExcluded(xpledger.FieldLastWeeklyReset)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *XpLedgerUpsert) SetUpdatedAt(v time.Time) *XpLedgerUpsert {
	u.Set(xpledger.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *XpLedgerUpsert) UpdateUpdatedAt() *XpLedgerUpsert {
	u.SetExcluded(xpledger.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.XpLedger.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *XpLedgerUpsertOne) UpdateNewValues() *XpLedgerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.XpLedger.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *XpLedgerUpsertOne) Ignore() *XpLedgerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *XpLedgerUpsertOne) DoNothing() *XpLedgerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the XpLedgerCreate.OnConflict
// documentation for more info.
func (u *XpLedgerUpsertOne) Update(set func(*XpLedgerUpsert)) *XpLedgerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&XpLedgerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *XpLedgerUpsertOne) SetUserID(v string) *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *XpLedgerUpsertOne) UpdateUserID() *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateUserID()
	})
}

// SetTotalXp sets the "total_xp" field.
func (u *XpLedgerUpsertOne) SetTotalXp(v int) *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetTotalXp(v)
	})
}

// AddTotalXp adds v to the "total_xp" field.
func (u *XpLedgerUpsertOne) AddTotalXp(v int) *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.AddTotalXp(v)
	})
}

// UpdateTotalXp sets the "total_xp" field to the value that was provided on create.
func (u *XpLedgerUpsertOne) UpdateTotalXp() *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateTotalXp()
	})
}

// SetDailyXp sets the "daily_xp" field.
func (u *XpLedgerUpsertOne) SetDailyXp(v int) *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetDailyXp(v)
	})
}

// AddDailyXp adds v to the "daily_xp" field.
func (u *XpLedgerUpsertOne) AddDailyXp(v int) *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.AddDailyXp(v)
	})
}

// UpdateDailyXp sets the "daily_xp" field to the value that was provided on create.
func (u *XpLedgerUpsertOne) UpdateDailyXp() *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateDailyXp()
	})
}

// SetWeeklyXp sets the "weekly_xp" field.
func (u *XpLedgerUpsertOne) SetWeeklyXp(v int) *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetWeeklyXp(v)
	})
}

// AddWeeklyXp adds v to the "weekly_xp" field.
func (u *XpLedgerUpsertOne) AddWeeklyXp(v int) *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.AddWeeklyXp(v)
	})
}

// UpdateWeeklyXp sets the "weekly_xp" field to the value that was provided on create.
func (u *XpLedgerUpsertOne) UpdateWeeklyXp() *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateWeeklyXp()
	})
}

// SetLastDailyReset sets the "last_daily_reset" field.
func (u *XpLedgerUpsertOne) SetLastDailyReset(v string) *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetLastDailyReset(v)
	})
}

// UpdateLastDailyReset sets the "last_daily_reset" field to the value that was provided on create.
func (u *XpLedgerUpsertOne) UpdateLastDailyReset() *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateLastDailyReset()
	})
}

// SetLastWeeklyReset sets the "last_weekly_reset" field.
func (u *XpLedgerUpsertOne) SetLastWeeklyReset(v string) *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetLastWeeklyReset(v)
	})
}

// UpdateLastWeeklyReset sets the "last_weekly_reset" field to the value that was provided on create.
func (u *XpLedgerUpsertOne) UpdateLastWeeklyReset() *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateLastWeeklyReset()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *XpLedgerUpsertOne) SetUpdatedAt(v time.Time) *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *XpLedgerUpsertOne) UpdateUpdatedAt() *XpLedgerUpsertOne {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *XpLedgerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for XpLedgerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *XpLedgerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *XpLedgerUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *XpLedgerUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// XpLedgerCreateBulk is the builder for creating many XpLedger entities in bulk.
type XpLedgerCreateBulk struct {
	config
	err      error
	builders []*XpLedgerCreate
	conflict []sql.ConflictOption
}

// Save creates the XpLedger entities in the database.
func (_c *XpLedgerCreateBulk) Save(ctx context.Context) ([]*XpLedger, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*XpLedger, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*XpLedgerMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *XpLedgerCreateBulk) SaveX(ctx context.Context) []*XpLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *XpLedgerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *XpLedgerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.XpLedger.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.XpLedgerUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *XpLedgerCreateBulk) OnConflict(opts ...sql.ConflictOption) *XpLedgerUpsertBulk {
	_c.conflict = opts
	return &XpLedgerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.XpLedger.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *XpLedgerCreateBulk) OnConflictColumns(columns ...string) *XpLedgerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &XpLedgerUpsertBulk{
		create: _c,
	}
}

// XpLedgerUpsertBulk is the builder for "upsert"-ing
// a bulk of XpLedger nodes.
type XpLedgerUpsertBulk struct {
	create *XpLedgerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.XpLedger.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *XpLedgerUpsertBulk) UpdateNewValues() *XpLedgerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.XpLedger.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *XpLedgerUpsertBulk) Ignore() *XpLedgerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *XpLedgerUpsertBulk) DoNothing() *XpLedgerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the XpLedgerCreateBulk.OnConflict
// documentation for more info.
func (u *XpLedgerUpsertBulk) Update(set func(*XpLedgerUpsert)) *XpLedgerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&XpLedgerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *XpLedgerUpsertBulk) SetUserID(v string) *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *XpLedgerUpsertBulk) UpdateUserID() *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateUserID()
	})
}

// SetTotalXp sets the "total_xp" field.
func (u *XpLedgerUpsertBulk) SetTotalXp(v int) *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetTotalXp(v)
	})
}

// AddTotalXp adds v to the "total_xp" field.
func (u *XpLedgerUpsertBulk) AddTotalXp(v int) *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.AddTotalXp(v)
	})
}

// UpdateTotalXp sets the "total_xp" field to the value that was provided on create.
func (u *XpLedgerUpsertBulk) UpdateTotalXp() *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateTotalXp()
	})
}

// SetDailyXp sets the "daily_xp" field.
func (u *XpLedgerUpsertBulk) SetDailyXp(v int) *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetDailyXp(v)
	})
}

// AddDailyXp adds v to the "daily_xp" field.
func (u *XpLedgerUpsertBulk) AddDailyXp(v int) *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.AddDailyXp(v)
	})
}

// UpdateDailyXp sets the "daily_xp" field to the value that was provided on create.
func (u *XpLedgerUpsertBulk) UpdateDailyXp() *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateDailyXp()
	})
}

// SetWeeklyXp sets the "weekly_xp" field.
func (u *XpLedgerUpsertBulk) SetWeeklyXp(v int) *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetWeeklyXp(v)
	})
}

// AddWeeklyXp adds v to the "weekly_xp" field.
func (u *XpLedgerUpsertBulk) AddWeeklyXp(v int) *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.AddWeeklyXp(v)
	})
}

// UpdateWeeklyXp sets the "weekly_xp" field to the value that was provided on create.
func (u *XpLedgerUpsertBulk) UpdateWeeklyXp() *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateWeeklyXp()
	})
}

// SetLastDailyReset sets the "last_daily_reset" field.
func (u *XpLedgerUpsertBulk) SetLastDailyReset(v string) *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetLastDailyReset(v)
	})
}

// UpdateLastDailyReset sets the "last_daily_reset" field to the value that was provided on create.
func (u *XpLedgerUpsertBulk) UpdateLastDailyReset() *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateLastDailyReset()
	})
}

// SetLastWeeklyReset sets the "last_weekly_reset" field.
func (u *XpLedgerUpsertBulk) SetLastWeeklyReset(v string) *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetLastWeeklyReset(v)
	})
}

// UpdateLastWeeklyReset sets the "last_weekly_reset" field to the value that was provided on create.
func (u *XpLedgerUpsertBulk) UpdateLastWeeklyReset() *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateLastWeeklyReset()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *XpLedgerUpsertBulk) SetUpdatedAt(v time.Time) *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *XpLedgerUpsertBulk) UpdateUpdatedAt() *XpLedgerUpsertBulk {
	return u.Update(func(s *XpLedgerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *XpLedgerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the XpLedgerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for XpLedgerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *XpLedgerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
