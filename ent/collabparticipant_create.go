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
)

// CollabParticipantCreate is the builder for creating a CollabParticipant entity.
type CollabParticipantCreate struct {
	config
	mutation *CollabParticipantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *CollabParticipantCreate) SetSessionID(v string) *CollabParticipantCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CollabParticipantCreate) SetUserID(v string) *CollabParticipantCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetJoinedAt sets the "joined_at" field.
func (_c *CollabParticipantCreate) SetJoinedAt(v time.Time) *CollabParticipantCreate {
	_c.mutation.SetJoinedAt(v)
	return _c
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_c *CollabParticipantCreate) SetNillableJoinedAt(v *time.Time) *CollabParticipantCreate {
	if v != nil {
		_c.SetJoinedAt(*v)
	}
	return _c
}

// SetLeftAt sets the "left_at" field.
func (_c *CollabParticipantCreate) SetLeftAt(v time.Time) *CollabParticipantCreate {
	_c.mutation.SetLeftAt(v)
	return _c
}

// SetNillableLeftAt sets the "left_at" field if the given value is not nil.
func (_c *CollabParticipantCreate) SetNillableLeftAt(v *time.Time) *CollabParticipantCreate {
	if v != nil {
		_c.SetLeftAt(*v)
	}
	return _c
}

// Mutation returns the CollabParticipantMutation object of the builder.
func (_c *CollabParticipantCreate) Mutation() *CollabParticipantMutation {
	return _c.mutation
}

// Save creates the CollabParticipant in the database.
func (_c *CollabParticipantCreate) Save(ctx context.Context) (*CollabParticipant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CollabParticipantCreate) SaveX(ctx context.Context) *CollabParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollabParticipantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollabParticipantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CollabParticipantCreate) defaults() {
	if _, ok := _c.mutation.JoinedAt(); !ok {
		v := collabparticipant.DefaultJoinedAt()
		_c.mutation.SetJoinedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CollabParticipantCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CollabParticipant.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := collabparticipant.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CollabParticipant.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CollabParticipant.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := collabparticipant.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CollabParticipant.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		return &ValidationError{Name: "joined_at", err: errors.New(`ent: missing required field "CollabParticipant.joined_at"`)}
	}
	return nil
}

func (_c *CollabParticipantCreate) sqlSave(ctx context.Context) (*CollabParticipant, error) {
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

func (_c *CollabParticipantCreate) createSpec() (*CollabParticipant, *sqlgraph.CreateSpec) {
	var (
		_node = &CollabParticipant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(collabparticipant.Table, sqlgraph.NewFieldSpec(collabparticipant.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(collabparticipant.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(collabparticipant.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.JoinedAt(); ok {
		_spec.SetField(collabparticipant.FieldJoinedAt, field.TypeTime, value)
		_node.JoinedAt = value
	}
	if value, ok := _c.mutation.LeftAt(); ok {
		_spec.SetField(collabparticipant.FieldLeftAt, field.TypeTime, value)
		_node.LeftAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CollabParticipant.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollabParticipantUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *CollabParticipantCreate) OnConflict(opts ...sql.ConflictOption) *CollabParticipantUpsertOne {
	_c.conflict = opts
	return &CollabParticipantUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollabParticipant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CollabParticipantCreate) OnConflictColumns(columns ...string) *CollabParticipantUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CollabParticipantUpsertOne{
		create: _c,
	}
}

type (
	// CollabParticipantUpsertOne is the builder for "upsert"-ing
	//  one CollabParticipant node.
	CollabParticipantUpsertOne struct {
		create *CollabParticipantCreate
	}

	// CollabParticipantUpsert is the "OnConflict" setter.
	CollabParticipantUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *CollabParticipantUpsert) SetSessionID(v string) *CollabParticipantUpsert {
	u.Set(collabparticipant.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *CollabParticipantUpsert) UpdateSessionID() *CollabParticipantUpsert {
	u.SetExcluded(collabparticipant.FieldSessionID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *CollabParticipantUpsert) SetUserID(v string) *CollabParticipantUpsert {
	u.Set(collabparticipant.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CollabParticipantUpsert) UpdateUserID() *CollabParticipantUpsert {
	u.SetExcluded(collabparticipant.FieldUserID)
	return u
}

// SetJoinedAt sets the "joined_at" field.
func (u *CollabParticipantUpsert) SetJoinedAt(v time.Time) *CollabParticipantUpsert {
	u.Set(collabparticipant.FieldJoinedAt, v)
	return u
}

// UpdateJoinedAt sets the "joined_at" field to the value that was provided on create.
func (u *CollabParticipantUpsert) UpdateJoinedAt() *CollabParticipantUpsert {
	u.SetExcluded(collabparticipant.FieldJoinedAt)
	return u
}

// SetLeftAt sets the "left_at" field.
func (u *CollabParticipantUpsert) SetLeftAt(v time.Time) *CollabParticipantUpsert {
	u.Set(collabparticipant.FieldLeftAt, v)
	return u
}

// UpdateLeftAt sets the "left_at" field to the value that was provided on create.
func (u *CollabParticipantUpsert) UpdateLeftAt() *CollabParticipantUpsert {
	u.SetExcluded(collabparticipant.FieldLeftAt)
	return u
}

// ClearLeftAt clears the value of the "left_at" field.
func (u *CollabParticipantUpsert) ClearLeftAt() *CollabParticipantUpsert {
	u.SetNull(collabparticipant.FieldLeftAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CollabParticipant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CollabParticipantUpsertOne) UpdateNewValues() *CollabParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollabParticipant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CollabParticipantUpsertOne) Ignore() *CollabParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollabParticipantUpsertOne) DoNothing() *CollabParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollabParticipantCreate.OnConflict
// documentation for more info.
func (u *CollabParticipantUpsertOne) Update(set func(*CollabParticipantUpsert)) *CollabParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollabParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *CollabParticipantUpsertOne) SetSessionID(v string) *CollabParticipantUpsertOne {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *CollabParticipantUpsertOne) UpdateSessionID() *CollabParticipantUpsertOne {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.UpdateSessionID()
	})
}

// SetUserID sets the "user_id" field.
func (u *CollabParticipantUpsertOne) SetUserID(v string) *CollabParticipantUpsertOne {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CollabParticipantUpsertOne) UpdateUserID() *CollabParticipantUpsertOne {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.UpdateUserID()
	})
}

// SetJoinedAt sets the "joined_at" field.
func (u *CollabParticipantUpsertOne) SetJoinedAt(v time.Time) *CollabParticipantUpsertOne {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.SetJoinedAt(v)
	})
}

// UpdateJoinedAt sets the "joined_at" field to the value that was provided on create.
func (u *CollabParticipantUpsertOne) UpdateJoinedAt() *CollabParticipantUpsertOne {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.UpdateJoinedAt()
	})
}

// SetLeftAt sets the "left_at" field.
func (u *CollabParticipantUpsertOne) SetLeftAt(v time.Time) *CollabParticipantUpsertOne {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.SetLeftAt(v)
	})
}

// UpdateLeftAt sets the "left_at" field to the value that was provided on create.
func (u *CollabParticipantUpsertOne) UpdateLeftAt() *CollabParticipantUpsertOne {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.UpdateLeftAt()
	})
}

// ClearLeftAt clears the value of the "left_at" field.
func (u *CollabParticipantUpsertOne) ClearLeftAt() *CollabParticipantUpsertOne {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.ClearLeftAt()
	})
}

// Exec executes the query.
func (u *CollabParticipantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CollabParticipantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollabParticipantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CollabParticipantUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CollabParticipantUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CollabParticipantCreateBulk is the builder for creating many CollabParticipant entities in bulk.
type CollabParticipantCreateBulk struct {
	config
	err      error
	builders []*CollabParticipantCreate
	conflict []sql.ConflictOption
}

// Save creates the CollabParticipant entities in the database.
func (_c *CollabParticipantCreateBulk) Save(ctx context.Context) ([]*CollabParticipant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CollabParticipant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CollabParticipantMutation)
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
func (_c *CollabParticipantCreateBulk) SaveX(ctx context.Context) []*CollabParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollabParticipantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollabParticipantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CollabParticipant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollabParticipantUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *CollabParticipantCreateBulk) OnConflict(opts ...sql.ConflictOption) *CollabParticipantUpsertBulk {
	_c.conflict = opts
	return &CollabParticipantUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollabParticipant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CollabParticipantCreateBulk) OnConflictColumns(columns ...string) *CollabParticipantUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CollabParticipantUpsertBulk{
		create: _c,
	}
}

// CollabParticipantUpsertBulk is the builder for "upsert"-ing
// a bulk of CollabParticipant nodes.
type CollabParticipantUpsertBulk struct {
	create *CollabParticipantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CollabParticipant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CollabParticipantUpsertBulk) UpdateNewValues() *CollabParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollabParticipant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CollabParticipantUpsertBulk) Ignore() *CollabParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollabParticipantUpsertBulk) DoNothing() *CollabParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollabParticipantCreateBulk.OnConflict
// documentation for more info.
func (u *CollabParticipantUpsertBulk) Update(set func(*CollabParticipantUpsert)) *CollabParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollabParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *CollabParticipantUpsertBulk) SetSessionID(v string) *CollabParticipantUpsertBulk {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *CollabParticipantUpsertBulk) UpdateSessionID() *CollabParticipantUpsertBulk {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.UpdateSessionID()
	})
}

// SetUserID sets the "user_id" field.
func (u *CollabParticipantUpsertBulk) SetUserID(v string) *CollabParticipantUpsertBulk {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CollabParticipantUpsertBulk) UpdateUserID() *CollabParticipantUpsertBulk {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.UpdateUserID()
	})
}

// SetJoinedAt sets the "joined_at" field.
func (u *CollabParticipantUpsertBulk) SetJoinedAt(v time.Time) *CollabParticipantUpsertBulk {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.SetJoinedAt(v)
	})
}

// UpdateJoinedAt sets the "joined_at" field to the value that was provided on create.
func (u *CollabParticipantUpsertBulk) UpdateJoinedAt() *CollabParticipantUpsertBulk {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.UpdateJoinedAt()
	})
}

// SetLeftAt sets the "left_at" field.
func (u *CollabParticipantUpsertBulk) SetLeftAt(v time.Time) *CollabParticipantUpsertBulk {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.SetLeftAt(v)
	})
}

// UpdateLeftAt sets the "left_at" field to the value that was provided on create.
func (u *CollabParticipantUpsertBulk) UpdateLeftAt() *CollabParticipantUpsertBulk {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.UpdateLeftAt()
	})
}

// ClearLeftAt clears the value of the "left_at" field.
func (u *CollabParticipantUpsertBulk) ClearLeftAt() *CollabParticipantUpsertBulk {
	return u.Update(func(s *CollabParticipantUpsert) {
		s.ClearLeftAt()
	})
}

// Exec executes the query.
func (u *CollabParticipantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CollabParticipantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CollabParticipantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollabParticipantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
