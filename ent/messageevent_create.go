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
	"github.com/mkale/skillforge/ent/messageevent"
)

// MessageEventCreate is the builder for creating a MessageEvent entity.
type MessageEventCreate struct {
	config
	mutation *MessageEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *MessageEventCreate) SetSequence(v int64) *MessageEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MessageEventCreate) SetUserID(v string) *MessageEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *MessageEventCreate) SetNillableUserID(v *string) *MessageEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MessageEventCreate) SetTimestamp(v time.Time) *MessageEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MessageEventCreate) SetNillableTimestamp(v *time.Time) *MessageEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *MessageEventCreate) SetMessageID(v string) *MessageEventCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetDiscussionID sets the "discussion_id" field.
func (_c *MessageEventCreate) SetDiscussionID(v string) *MessageEventCreate {
	_c.mutation.SetDiscussionID(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *MessageEventCreate) SetBody(v string) *MessageEventCreate {
	_c.mutation.SetBody(v)
	return _c
}

// Mutation returns the MessageEventMutation object of the builder.
func (_c *MessageEventCreate) Mutation() *MessageEventMutation {
	return _c.mutation
}

// Save creates the MessageEvent in the database.
func (_c *MessageEventCreate) Save(ctx context.Context) (*MessageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageEventCreate) SaveX(ctx context.Context) *MessageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageEventCreate) defaults() {
	if _, ok := _c.mutation.UserID(); !ok {
		v := messageevent.DefaultUserID
		_c.mutation.SetUserID(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := messageevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MessageEvent.sequence"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MessageEvent.user_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MessageEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "MessageEvent.message_id"`)}
	}
	if v, ok := _c.mutation.MessageID(); ok {
		if err := messageevent.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "MessageEvent.message_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscussionID(); !ok {
		return &ValidationError{Name: "discussion_id", err: errors.New(`ent: missing required field "MessageEvent.discussion_id"`)}
	}
	if v, ok := _c.mutation.DiscussionID(); ok {
		if err := messageevent.DiscussionIDValidator(v); err != nil {
			return &ValidationError{Name: "discussion_id", err: fmt.Errorf(`ent: validator failed for field "MessageEvent.discussion_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "MessageEvent.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := messageevent.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "MessageEvent.body": %w`, err)}
		}
	}
	return nil
}

func (_c *MessageEventCreate) sqlSave(ctx context.Context) (*MessageEvent, error) {
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

func (_c *MessageEventCreate) createSpec() (*MessageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messageevent.Table, sqlgraph.NewFieldSpec(messageevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(messageevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(messageevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(messageevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(messageevent.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.DiscussionID(); ok {
		_spec.SetField(messageevent.FieldDiscussionID, field.TypeString, value)
		_node.DiscussionID = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(messageevent.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MessageEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageEventCreate) OnConflict(opts ...sql.ConflictOption) *MessageEventUpsertOne {
	_c.conflict = opts
	return &MessageEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageEventCreate) OnConflictColumns(columns ...string) *MessageEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageEventUpsertOne{
		create: _c,
	}
}

type (
	// MessageEventUpsertOne is the builder for "upsert"-ing
	//  one MessageEvent node.
	MessageEventUpsertOne struct {
		create *MessageEventCreate
	}

	// MessageEventUpsert is the "OnConflict" setter.
	MessageEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetMessageID sets the "message_id" field.
func (u *MessageEventUpsert) SetMessageID(v string) *MessageEventUpsert {
	u.Set(messageevent.FieldMessageID, v)
	return u
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *MessageEventUpsert) UpdateMessageID() *MessageEventUpsert {
	u.SetExcluded(messageevent.FieldMessageID)
	return u
}

// SetDiscussionID sets the "discussion_id" field.
func (u *MessageEventUpsert) SetDiscussionID(v string) *MessageEventUpsert {
	u.Set(messageevent.FieldDiscussionID, v)
	return u
}

// UpdateDiscussionID sets the "discussion_id" field to the value that was provided on create.
func (u *MessageEventUpsert) UpdateDiscussionID() *MessageEventUpsert {
	u.SetExcluded(messageevent.FieldDiscussionID)
	return u
}

// SetBody sets the "body" field.
func (u *MessageEventUpsert) SetBody(v string) *MessageEventUpsert {
	u.Set(messageevent.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageEventUpsert) UpdateBody() *MessageEventUpsert {
	u.SetExcluded(messageevent.FieldBody)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MessageEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MessageEventUpsertOne) UpdateNewValues() *MessageEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(messageevent.FieldSequence)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(messageevent.FieldUserID)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(messageevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageEventUpsertOne) Ignore() *MessageEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageEventUpsertOne) DoNothing() *MessageEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageEventCreate.OnConflict
// documentation for more info.
func (u *MessageEventUpsertOne) Update(set func(*MessageEventUpsert)) *MessageEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageID sets the "message_id" field.
func (u *MessageEventUpsertOne) SetMessageID(v string) *MessageEventUpsertOne {
	return u.Update(func(s *MessageEventUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *MessageEventUpsertOne) UpdateMessageID() *MessageEventUpsertOne {
	return u.Update(func(s *MessageEventUpsert) {
		s.UpdateMessageID()
	})
}

// SetDiscussionID sets the "discussion_id" field.
func (u *MessageEventUpsertOne) SetDiscussionID(v string) *MessageEventUpsertOne {
	return u.Update(func(s *MessageEventUpsert) {
		s.SetDiscussionID(v)
	})
}

// UpdateDiscussionID sets the "discussion_id" field to the value that was provided on create.
func (u *MessageEventUpsertOne) UpdateDiscussionID() *MessageEventUpsertOne {
	return u.Update(func(s *MessageEventUpsert) {
		s.UpdateDiscussionID()
	})
}

// SetBody sets the "body" field.
func (u *MessageEventUpsertOne) SetBody(v string) *MessageEventUpsertOne {
	return u.Update(func(s *MessageEventUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageEventUpsertOne) UpdateBody() *MessageEventUpsertOne {
	return u.Update(func(s *MessageEventUpsert) {
		s.UpdateBody()
	})
}

// Exec executes the query.
func (u *MessageEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageEventCreateBulk is the builder for creating many MessageEvent entities in bulk.
type MessageEventCreateBulk struct {
	config
	err      error
	builders []*MessageEventCreate
	conflict []sql.ConflictOption
}

// Save creates the MessageEvent entities in the database.
func (_c *MessageEventCreateBulk) Save(ctx context.Context) ([]*MessageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageEventMutation)
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
func (_c *MessageEventCreateBulk) SaveX(ctx context.Context) []*MessageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MessageEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageEventUpsertBulk {
	_c.conflict = opts
	return &MessageEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageEventCreateBulk) OnConflictColumns(columns ...string) *MessageEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageEventUpsertBulk{
		create: _c,
	}
}

// MessageEventUpsertBulk is the builder for "upsert"-ing
// a bulk of MessageEvent nodes.
type MessageEventUpsertBulk struct {
	create *MessageEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MessageEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MessageEventUpsertBulk) UpdateNewValues() *MessageEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(messageevent.FieldSequence)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(messageevent.FieldUserID)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(messageevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageEventUpsertBulk) Ignore() *MessageEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageEventUpsertBulk) DoNothing() *MessageEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageEventCreateBulk.OnConflict
// documentation for more info.
func (u *MessageEventUpsertBulk) Update(set func(*MessageEventUpsert)) *MessageEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageID sets the "message_id" field.
func (u *MessageEventUpsertBulk) SetMessageID(v string) *MessageEventUpsertBulk {
	return u.Update(func(s *MessageEventUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *MessageEventUpsertBulk) UpdateMessageID() *MessageEventUpsertBulk {
	return u.Update(func(s *MessageEventUpsert) {
		s.UpdateMessageID()
	})
}

// SetDiscussionID sets the "discussion_id" field.
func (u *MessageEventUpsertBulk) SetDiscussionID(v string) *MessageEventUpsertBulk {
	return u.Update(func(s *MessageEventUpsert) {
		s.SetDiscussionID(v)
	})
}

// UpdateDiscussionID sets the "discussion_id" field to the value that was provided on create.
func (u *MessageEventUpsertBulk) UpdateDiscussionID() *MessageEventUpsertBulk {
	return u.Update(func(s *MessageEventUpsert) {
		s.UpdateDiscussionID()
	})
}

// SetBody sets the "body" field.
func (u *MessageEventUpsertBulk) SetBody(v string) *MessageEventUpsertBulk {
	return u.Update(func(s *MessageEventUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageEventUpsertBulk) UpdateBody() *MessageEventUpsertBulk {
	return u.Update(func(s *MessageEventUpsert) {
		s.UpdateBody()
	})
}

// Exec executes the query.
func (u *MessageEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
