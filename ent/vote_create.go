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
	"github.com/mkale/skillforge/ent/vote"
)

// VoteCreate is the builder for creating a Vote entity.
type VoteCreate struct {
	config
	mutation *VoteMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *VoteCreate) SetUserID(v string) *VoteCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTargetType sets the "target_type" field.
func (_c *VoteCreate) SetTargetType(v string) *VoteCreate {
	_c.mutation.SetTargetType(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *VoteCreate) SetTargetID(v string) *VoteCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *VoteCreate) SetValue(v int) *VoteCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VoteCreate) SetCreatedAt(v time.Time) *VoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VoteCreate) SetNillableCreatedAt(v *time.Time) *VoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the VoteMutation object of the builder.
func (_c *VoteCreate) Mutation() *VoteMutation {
	return _c.mutation
}

// Save creates the Vote in the database.
func (_c *VoteCreate) Save(ctx context.Context) (*Vote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VoteCreate) SaveX(ctx context.Context) *Vote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VoteCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Vote.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := vote.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Vote.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetType(); !ok {
		return &ValidationError{Name: "target_type", err: errors.New(`ent: missing required field "Vote.target_type"`)}
	}
	if v, ok := _c.mutation.TargetType(); ok {
		if err := vote.TargetTypeValidator(v); err != nil {
			return &ValidationError{Name: "target_type", err: fmt.Errorf(`ent: validator failed for field "Vote.target_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "Vote.target_id"`)}
	}
	if v, ok := _c.mutation.TargetID(); ok {
		if err := vote.TargetIDValidator(v); err != nil {
			return &ValidationError{Name: "target_id", err: fmt.Errorf(`ent: validator failed for field "Vote.target_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Vote.value"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Vote.created_at"`)}
	}
	return nil
}

func (_c *VoteCreate) sqlSave(ctx context.Context) (*Vote, error) {
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

func (_c *VoteCreate) createSpec() (*Vote, *sqlgraph.CreateSpec) {
	var (
		_node = &Vote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vote.Table, sqlgraph.NewFieldSpec(vote.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(vote.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TargetType(); ok {
		_spec.SetField(vote.FieldTargetType, field.TypeString, value)
		_node.TargetType = value
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(vote.FieldTargetID, field.TypeString, value)
		_node.TargetID = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(vote.FieldValue, field.TypeInt, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Vote.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VoteUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *VoteCreate) OnConflict(opts ...sql.ConflictOption) *VoteUpsertOne {
	_c.conflict = opts
	return &VoteUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Vote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VoteCreate) OnConflictColumns(columns ...string) *VoteUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VoteUpsertOne{
		create: _c,
	}
}

type (
	// VoteUpsertOne is the builder for "upsert"-ing
	//  one Vote node.
	VoteUpsertOne struct {
		create *VoteCreate
	}

	// VoteUpsert is the "OnConflict" setter.
	VoteUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *VoteUpsert) SetUserID(v string) *VoteUpsert {
	u.Set(vote.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *VoteUpsert) UpdateUserID() *VoteUpsert {
	u.SetExcluded(vote.FieldUserID)
	return u
}

// SetTargetType sets the "target_type" field.
func (u *VoteUpsert) SetTargetType(v string) *VoteUpsert {
	u.Set(vote.FieldTargetType, v)
	return u
}

// UpdateTargetType sets the "target_type" field to the value that was provided on create.
func (u *VoteUpsert) UpdateTargetType() *VoteUpsert {
	u.SetExcluded(vote.FieldTargetType)
	return u
}

// SetTargetID sets the "target_id" field.
func (u *VoteUpsert) SetTargetID(v string) *VoteUpsert {
	u.Set(vote.FieldTargetID, v)
	return u
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *VoteUpsert) UpdateTargetID() *VoteUpsert {
	u.SetExcluded(vote.FieldTargetID)
	return u
}

// SetValue sets the "value" field.
func (u *VoteUpsert) SetValue(v int) *VoteUpsert {
	u.Set(vote.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *VoteUpsert) UpdateValue() *VoteUpsert {
	u.SetExcluded(vote.FieldValue)
	return u
}

// AddValue adds v to the "value" field.
func (u *VoteUpsert) AddValue(v int) *VoteUpsert {
	u.Add(vote.FieldValue, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *VoteUpsert) SetCreatedAt(v time.Time) *VoteUpsert {
	u.Set(vote.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *VoteUpsert) UpdateCreatedAt() *VoteUpsert {
	u.SetExcluded(vote.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Vote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VoteUpsertOne) UpdateNewValues() *VoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Vote.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VoteUpsertOne) Ignore() *VoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VoteUpsertOne) DoNothing() *VoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VoteCreate.OnConflict
// documentation for more info.
func (u *VoteUpsertOne) Update(set func(*VoteUpsert)) *VoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *VoteUpsertOne) SetUserID(v string) *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *VoteUpsertOne) UpdateUserID() *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateUserID()
	})
}

// SetTargetType sets the "target_type" field.
func (u *VoteUpsertOne) SetTargetType(v string) *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.SetTargetType(v)
	})
}

// UpdateTargetType sets the "target_type" field to the value that was provided on create.
func (u *VoteUpsertOne) UpdateTargetType() *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateTargetType()
	})
}

// SetTargetID sets the "target_id" field.
func (u *VoteUpsertOne) SetTargetID(v string) *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.SetTargetID(v)
	})
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *VoteUpsertOne) UpdateTargetID() *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateTargetID()
	})
}

// SetValue sets the "value" field.
func (u *VoteUpsertOne) SetValue(v int) *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *VoteUpsertOne) AddValue(v int) *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *VoteUpsertOne) UpdateValue() *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateValue()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *VoteUpsertOne) SetCreatedAt(v time.Time) *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *VoteUpsertOne) UpdateCreatedAt() *VoteUpsertOne {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *VoteUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VoteCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VoteUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VoteUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VoteUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VoteCreateBulk is the builder for creating many Vote entities in bulk.
type VoteCreateBulk struct {
	config
	err      error
	builders []*VoteCreate
	conflict []sql.ConflictOption
}

// Save creates the Vote entities in the database.
func (_c *VoteCreateBulk) Save(ctx context.Context) ([]*Vote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VoteMutation)
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
func (_c *VoteCreateBulk) SaveX(ctx context.Context) []*Vote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Vote.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VoteUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *VoteCreateBulk) OnConflict(opts ...sql.ConflictOption) *VoteUpsertBulk {
	_c.conflict = opts
	return &VoteUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Vote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VoteCreateBulk) OnConflictColumns(columns ...string) *VoteUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VoteUpsertBulk{
		create: _c,
	}
}

// VoteUpsertBulk is the builder for "upsert"-ing
// a bulk of Vote nodes.
type VoteUpsertBulk struct {
	create *VoteCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Vote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VoteUpsertBulk) UpdateNewValues() *VoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Vote.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VoteUpsertBulk) Ignore() *VoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VoteUpsertBulk) DoNothing() *VoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VoteCreateBulk.OnConflict
// documentation for more info.
func (u *VoteUpsertBulk) Update(set func(*VoteUpsert)) *VoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *VoteUpsertBulk) SetUserID(v string) *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *VoteUpsertBulk) UpdateUserID() *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateUserID()
	})
}

// SetTargetType sets the "target_type" field.
func (u *VoteUpsertBulk) SetTargetType(v string) *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.SetTargetType(v)
	})
}

// UpdateTargetType sets the "target_type" field to the value that was provided on create.
func (u *VoteUpsertBulk) UpdateTargetType() *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateTargetType()
	})
}

// SetTargetID sets the "target_id" field.
func (u *VoteUpsertBulk) SetTargetID(v string) *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.SetTargetID(v)
	})
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *VoteUpsertBulk) UpdateTargetID() *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateTargetID()
	})
}

// SetValue sets the "value" field.
func (u *VoteUpsertBulk) SetValue(v int) *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *VoteUpsertBulk) AddValue(v int) *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *VoteUpsertBulk) UpdateValue() *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateValue()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *VoteUpsertBulk) SetCreatedAt(v time.Time) *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *VoteUpsertBulk) UpdateCreatedAt() *VoteUpsertBulk {
	return u.Update(func(s *VoteUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *VoteUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VoteCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VoteCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VoteUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
