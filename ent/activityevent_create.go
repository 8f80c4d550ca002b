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
	"github.com/mkale/skillforge/ent/activityevent"
)

// ActivityEventCreate is the builder for creating a ActivityEvent entity.
type ActivityEventCreate struct {
	config
	mutation *ActivityEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *ActivityEventCreate) SetSequence(v int64) *ActivityEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ActivityEventCreate) SetUserID(v string) *ActivityEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableUserID(v *string) *ActivityEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ActivityEventCreate) SetTimestamp(v time.Time) *ActivityEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableTimestamp(v *time.Time) *ActivityEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetActivityType sets the "activity_type" field.
func (_c *ActivityEventCreate) SetActivityType(v string) *ActivityEventCreate {
	_c.mutation.SetActivityType(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *ActivityEventCreate) SetDetail(v string) *ActivityEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableDetail(v *string) *ActivityEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetXpDelta sets the "xp_delta" field.
func (_c *ActivityEventCreate) SetXpDelta(v int) *ActivityEventCreate {
	_c.mutation.SetXpDelta(v)
	return _c
}

// SetNillableXpDelta sets the "xp_delta" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableXpDelta(v *int) *ActivityEventCreate {
	if v != nil {
		_c.SetXpDelta(*v)
	}
	return _c
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_c *ActivityEventCreate) Mutation() *ActivityEventMutation {
	return _c.mutation
}

// Save creates the ActivityEvent in the database.
func (_c *ActivityEventCreate) Save(ctx context.Context) (*ActivityEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityEventCreate) SaveX(ctx context.Context) *ActivityEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityEventCreate) defaults() {
	if _, ok := _c.mutation.UserID(); !ok {
		v := activityevent.DefaultUserID
		_c.mutation.SetUserID(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := activityevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Detail(); !ok {
		v := activityevent.DefaultDetail
		_c.mutation.SetDetail(v)
	}
	if _, ok := _c.mutation.XpDelta(); !ok {
		v := activityevent.DefaultXpDelta
		_c.mutation.SetXpDelta(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ActivityEvent.sequence"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ActivityEvent.user_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ActivityEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ActivityType(); !ok {
		return &ValidationError{Name: "activity_type", err: errors.New(`ent: missing required field "ActivityEvent.activity_type"`)}
	}
	if v, ok := _c.mutation.ActivityType(); ok {
		if err := activityevent.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.activity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "ActivityEvent.detail"`)}
	}
	if _, ok := _c.mutation.XpDelta(); !ok {
		return &ValidationError{Name: "xp_delta", err: errors.New(`ent: missing required field "ActivityEvent.xp_delta"`)}
	}
	return nil
}

func (_c *ActivityEventCreate) sqlSave(ctx context.Context) (*ActivityEvent, error) {
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

func (_c *ActivityEventCreate) createSpec() (*ActivityEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activityevent.Table, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(activityevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(activityevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(activityevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ActivityType(); ok {
		_spec.SetField(activityevent.FieldActivityType, field.TypeString, value)
		_node.ActivityType = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(activityevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.XpDelta(); ok {
		_spec.SetField(activityevent.FieldXpDelta, field.TypeInt, value)
		_node.XpDelta = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivityEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityEventCreate) OnConflict(opts ...sql.ConflictOption) *ActivityEventUpsertOne {
	_c.conflict = opts
	return &ActivityEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivityEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityEventCreate) OnConflictColumns(columns ...string) *ActivityEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityEventUpsertOne{
		create: _c,
	}
}

type (
	// ActivityEventUpsertOne is the builder for "upsert"-ing
	//  one ActivityEvent node.
	ActivityEventUpsertOne struct {
		create *ActivityEventCreate
	}

	// ActivityEventUpsert is the "OnConflict" setter.
	ActivityEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetActivityType sets the "activity_type" field.
func (u *ActivityEventUpsert) SetActivityType(v string) *ActivityEventUpsert {
	u.Set(activityevent.FieldActivityType, v)
	return u
}

// UpdateActivityType sets the "activity_type" field to the value that was provided on create.
func (u *ActivityEventUpsert) UpdateActivityType() *ActivityEventUpsert {
	u.SetExcluded(activityevent.FieldActivityType)
	return u
}

// SetDetail sets the "detail" field.
func (u *ActivityEventUpsert) SetDetail(v string) *ActivityEventUpsert {
	u.Set(activityevent.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *ActivityEventUpsert) UpdateDetail() *ActivityEventUpsert {
	u.SetExcluded(activityevent.FieldDetail)
	return u
}

// SetXpDelta sets the "xp_delta" field.
func (u *ActivityEventUpsert) SetXpDelta(v int) *ActivityEventUpsert {
	u.Set(activityevent.FieldXpDelta, v)
	return u
}

// UpdateXpDelta sets the "xp_delta" field to the value that was provided on create.
func (u *ActivityEventUpsert) UpdateXpDelta() *ActivityEventUpsert {
	u.SetExcluded(activityevent.FieldXpDelta)
	return u
}

// AddXpDelta adds v to the "xp_delta" field.
func (u *ActivityEventUpsert) AddXpDelta(v int) *ActivityEventUpsert {
	u.Add(activityevent.FieldXpDelta, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ActivityEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ActivityEventUpsertOne) UpdateNewValues() *ActivityEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(activityevent.FieldSequence)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(activityevent.FieldUserID)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(activityevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivityEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActivityEventUpsertOne) Ignore() *ActivityEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityEventUpsertOne) DoNothing() *ActivityEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityEventCreate.OnConflict
// documentation for more info.
func (u *ActivityEventUpsertOne) Update(set func(*ActivityEventUpsert)) *ActivityEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetActivityType sets the "activity_type" field.
func (u *ActivityEventUpsertOne) SetActivityType(v string) *ActivityEventUpsertOne {
	return u.Update(func(s *ActivityEventUpsert) {
		s.SetActivityType(v)
	})
}

// UpdateActivityType sets the "activity_type" field to the value that was provided on create.
func (u *ActivityEventUpsertOne) UpdateActivityType() *ActivityEventUpsertOne {
	return u.Update(func(s *ActivityEventUpsert) {
		s.UpdateActivityType()
	})
}

// SetDetail sets the "detail" field.
func (u *ActivityEventUpsertOne) SetDetail(v string) *ActivityEventUpsertOne {
	return u.Update(func(s *ActivityEventUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *ActivityEventUpsertOne) UpdateDetail() *ActivityEventUpsertOne {
	return u.Update(func(s *ActivityEventUpsert) {
		s.UpdateDetail()
	})
}

// SetXpDelta sets the "xp_delta" field.
func (u *ActivityEventUpsertOne) SetXpDelta(v int) *ActivityEventUpsertOne {
	return u.Update(func(s *ActivityEventUpsert) {
		s.SetXpDelta(v)
	})
}

// AddXpDelta adds v to the "xp_delta" field.
func (u *ActivityEventUpsertOne) AddXpDelta(v int) *ActivityEventUpsertOne {
	return u.Update(func(s *ActivityEventUpsert) {
		s.AddXpDelta(v)
	})
}

// UpdateXpDelta sets the "xp_delta" field to the value that was provided on create.
func (u *ActivityEventUpsertOne) UpdateXpDelta() *ActivityEventUpsertOne {
	return u.Update(func(s *ActivityEventUpsert) {
		s.UpdateXpDelta()
	})
}

// Exec executes the query.
func (u *ActivityEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActivityEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActivityEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActivityEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActivityEventCreateBulk is the builder for creating many ActivityEvent entities in bulk.
type ActivityEventCreateBulk struct {
	config
	err      error
	builders []*ActivityEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ActivityEvent entities in the database.
func (_c *ActivityEventCreateBulk) Save(ctx context.Context) ([]*ActivityEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityEventMutation)
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
func (_c *ActivityEventCreateBulk) SaveX(ctx context.Context) []*ActivityEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivityEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActivityEventUpsertBulk {
	_c.conflict = opts
	return &ActivityEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivityEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityEventCreateBulk) OnConflictColumns(columns ...string) *ActivityEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityEventUpsertBulk{
		create: _c,
	}
}

// ActivityEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ActivityEvent nodes.
type ActivityEventUpsertBulk struct {
	create *ActivityEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActivityEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ActivityEventUpsertBulk) UpdateNewValues() *ActivityEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(activityevent.FieldSequence)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(activityevent.FieldUserID)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(activityevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivityEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActivityEventUpsertBulk) Ignore() *ActivityEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityEventUpsertBulk) DoNothing() *ActivityEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityEventCreateBulk.OnConflict
// documentation for more info.
func (u *ActivityEventUpsertBulk) Update(set func(*ActivityEventUpsert)) *ActivityEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetActivityType sets the "activity_type" field.
func (u *ActivityEventUpsertBulk) SetActivityType(v string) *ActivityEventUpsertBulk {
	return u.Update(func(s *ActivityEventUpsert) {
		s.SetActivityType(v)
	})
}

// UpdateActivityType sets the "activity_type" field to the value that was provided on create.
func (u *ActivityEventUpsertBulk) UpdateActivityType() *ActivityEventUpsertBulk {
	return u.Update(func(s *ActivityEventUpsert) {
		s.UpdateActivityType()
	})
}

// SetDetail sets the "detail" field.
func (u *ActivityEventUpsertBulk) SetDetail(v string) *ActivityEventUpsertBulk {
	return u.Update(func(s *ActivityEventUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *ActivityEventUpsertBulk) UpdateDetail() *ActivityEventUpsertBulk {
	return u.Update(func(s *ActivityEventUpsert) {
		s.UpdateDetail()
	})
}

// SetXpDelta sets the "xp_delta" field.
func (u *ActivityEventUpsertBulk) SetXpDelta(v int) *ActivityEventUpsertBulk {
	return u.Update(func(s *ActivityEventUpsert) {
		s.SetXpDelta(v)
	})
}

// AddXpDelta adds v to the "xp_delta" field.
func (u *ActivityEventUpsertBulk) AddXpDelta(v int) *ActivityEventUpsertBulk {
	return u.Update(func(s *ActivityEventUpsert) {
		s.AddXpDelta(v)
	})
}

// UpdateXpDelta sets the "xp_delta" field to the value that was provided on create.
func (u *ActivityEventUpsertBulk) UpdateXpDelta() *ActivityEventUpsertBulk {
	return u.Update(func(s *ActivityEventUpsert) {
		s.UpdateXpDelta()
	})
}

// Exec executes the query.
func (u *ActivityEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ActivityEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActivityEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
