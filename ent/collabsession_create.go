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
	"github.com/mkale/skillforge/ent/collabsession"
)

// CollabSessionCreate is the builder for creating a CollabSession entity.
type CollabSessionCreate struct {
	config
	mutation *CollabSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *CollabSessionCreate) SetSessionID(v string) *CollabSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetHostUserID sets the "host_user_id" field.
func (_c *CollabSessionCreate) SetHostUserID(v string) *CollabSessionCreate {
	_c.mutation.SetHostUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CollabSessionCreate) SetTitle(v string) *CollabSessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *CollabSessionCreate) SetLanguage(v string) *CollabSessionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *CollabSessionCreate) SetNillableLanguage(v *string) *CollabSessionCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetRelayURL sets the "relay_url" field.
func (_c *CollabSessionCreate) SetRelayURL(v string) *CollabSessionCreate {
	_c.mutation.SetRelayURL(v)
	return _c
}

// SetNillableRelayURL sets the "relay_url" field if the given value is not nil.
func (_c *CollabSessionCreate) SetNillableRelayURL(v *string) *CollabSessionCreate {
	if v != nil {
		_c.SetRelayURL(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *CollabSessionCreate) SetActive(v bool) *CollabSessionCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *CollabSessionCreate) SetNillableActive(v *bool) *CollabSessionCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CollabSessionCreate) SetCreatedAt(v time.Time) *CollabSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CollabSessionCreate) SetNillableCreatedAt(v *time.Time) *CollabSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CollabSessionMutation object of the builder.
func (_c *CollabSessionCreate) Mutation() *CollabSessionMutation {
	return _c.mutation
}

// Save creates the CollabSession in the database.
func (_c *CollabSessionCreate) Save(ctx context.Context) (*CollabSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CollabSessionCreate) SaveX(ctx context.Context) *CollabSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollabSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollabSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CollabSessionCreate) defaults() {
	if _, ok := _c.mutation.Language(); !ok {
		v := collabsession.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.RelayURL(); !ok {
		v := collabsession.DefaultRelayURL
		_c.mutation.SetRelayURL(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := collabsession.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := collabsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CollabSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CollabSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := collabsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CollabSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HostUserID(); !ok {
		return &ValidationError{Name: "host_user_id", err: errors.New(`ent: missing required field "CollabSession.host_user_id"`)}
	}
	if v, ok := _c.mutation.HostUserID(); ok {
		if err := collabsession.HostUserIDValidator(v); err != nil {
			return &ValidationError{Name: "host_user_id", err: fmt.Errorf(`ent: validator failed for field "CollabSession.host_user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CollabSession.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := collabsession.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CollabSession.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "CollabSession.language"`)}
	}
	if _, ok := _c.mutation.RelayURL(); !ok {
		return &ValidationError{Name: "relay_url", err: errors.New(`ent: missing required field "CollabSession.relay_url"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "CollabSession.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CollabSession.created_at"`)}
	}
	return nil
}

func (_c *CollabSessionCreate) sqlSave(ctx context.Context) (*CollabSession, error) {
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

func (_c *CollabSessionCreate) createSpec() (*CollabSession, *sqlgraph.CreateSpec) {
	var (
		_node = &CollabSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(collabsession.Table, sqlgraph.NewFieldSpec(collabsession.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(collabsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.HostUserID(); ok {
		_spec.SetField(collabsession.FieldHostUserID, field.TypeString, value)
		_node.HostUserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(collabsession.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(collabsession.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.RelayURL(); ok {
		_spec.SetField(collabsession.FieldRelayURL, field.TypeString, value)
		_node.RelayURL = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(collabsession.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(collabsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CollabSession.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollabSessionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *CollabSessionCreate) OnConflict(opts ...sql.ConflictOption) *CollabSessionUpsertOne {
	_c.conflict = opts
	return &CollabSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollabSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CollabSessionCreate) OnConflictColumns(columns ...string) *CollabSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CollabSessionUpsertOne{
		create: _c,
	}
}

type (
	// CollabSessionUpsertOne is the builder for "upsert"-ing
	//  one CollabSession node.
	CollabSessionUpsertOne struct {
		create *CollabSessionCreate
	}

	// CollabSessionUpsert is the "OnConflict" setter.
	CollabSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetHostUserID sets the "host_user_id" field.
func (u *CollabSessionUpsert) SetHostUserID(v string) *CollabSessionUpsert {
	u.Set(collabsession.FieldHostUserID, v)
	return u
}

// UpdateHostUserID sets the "host_user_id" field to the value that was provided on create.
func (u *CollabSessionUpsert) UpdateHostUserID() *CollabSessionUpsert {
	u.SetExcluded(collabsession.FieldHostUserID)
	return u
}

// SetTitle sets the "title" field.
func (u *CollabSessionUpsert) SetTitle(v string) *CollabSessionUpsert {
	u.Set(collabsession.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CollabSessionUpsert) UpdateTitle() *CollabSessionUpsert {
	u.SetExcluded(collabsession.FieldTitle)
	return u
}

// SetLanguage sets the "language" field.
func (u *CollabSessionUpsert) SetLanguage(v string) *CollabSessionUpsert {
	u.Set(collabsession.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *CollabSessionUpsert) UpdateLanguage() *CollabSessionUpsert {
	u.SetExcluded(collabsession.FieldLanguage)
	return u
}

// SetRelayURL sets the "relay_url" field.
func (u *CollabSessionUpsert) SetRelayURL(v string) *CollabSessionUpsert {
	u.Set(collabsession.FieldRelayURL, v)
	return u
}

// UpdateRelayURL sets the "relay_url" field to the value that was provided on create.
func (u *CollabSessionUpsert) UpdateRelayURL() *CollabSessionUpsert {
	u.SetExcluded(collabsession.FieldRelayURL)
	return u
}

// SetActive sets the "active" field.
func (u *CollabSessionUpsert) SetActive(v bool) *CollabSessionUpsert {
	u.Set(collabsession.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *CollabSessionUpsert) UpdateActive() *CollabSessionUpsert {
	u.SetExcluded(collabsession.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CollabSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CollabSessionUpsertOne) UpdateNewValues() *CollabSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(collabsession.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(collabsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollabSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CollabSessionUpsertOne) Ignore() *CollabSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollabSessionUpsertOne) DoNothing() *CollabSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollabSessionCreate.OnConflict
// documentation for more info.
func (u *CollabSessionUpsertOne) Update(set func(*CollabSessionUpsert)) *CollabSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollabSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetHostUserID sets the "host_user_id" field.
func (u *CollabSessionUpsertOne) SetHostUserID(v string) *CollabSessionUpsertOne {
	return u.Update(func(s *CollabSessionUpsert) {
		s.SetHostUserID(v)
	})
}

// UpdateHostUserID sets the "host_user_id" field to the value that was provided on create.
func (u *CollabSessionUpsertOne) UpdateHostUserID() *CollabSessionUpsertOne {
	return u.Update(func(s *CollabSessionUpsert) {
		s.UpdateHostUserID()
	})
}

// SetTitle sets the "title" field.
func (u *CollabSessionUpsertOne) SetTitle(v string) *CollabSessionUpsertOne {
	return u.Update(func(s *CollabSessionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CollabSessionUpsertOne) UpdateTitle() *CollabSessionUpsertOne {
	return u.Update(func(s *CollabSessionUpsert) {
		s.UpdateTitle()
	})
}

// SetLanguage sets the "language" field.
func (u *CollabSessionUpsertOne) SetLanguage(v string) *CollabSessionUpsertOne {
	return u.Update(func(s *CollabSessionUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *CollabSessionUpsertOne) UpdateLanguage() *CollabSessionUpsertOne {
	return u.Update(func(s *CollabSessionUpsert) {
		s.UpdateLanguage()
	})
}

// SetRelayURL sets the "relay_url" field.
func (u *CollabSessionUpsertOne) SetRelayURL(v string) *CollabSessionUpsertOne {
	return u.Update(func(s *CollabSessionUpsert) {
		s.SetRelayURL(v)
	})
}

// UpdateRelayURL sets the "relay_url" field to the value that was provided on create.
func (u *CollabSessionUpsertOne) UpdateRelayURL() *CollabSessionUpsertOne {
	return u.Update(func(s *CollabSessionUpsert) {
		s.UpdateRelayURL()
	})
}

// SetActive sets the "active" field.
func (u *CollabSessionUpsertOne) SetActive(v bool) *CollabSessionUpsertOne {
	return u.Update(func(s *CollabSessionUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *CollabSessionUpsertOne) UpdateActive() *CollabSessionUpsertOne {
	return u.Update(func(s *CollabSessionUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *CollabSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CollabSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollabSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CollabSessionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CollabSessionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CollabSessionCreateBulk is the builder for creating many CollabSession entities in bulk.
type CollabSessionCreateBulk struct {
	config
	err      error
	builders []*CollabSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the CollabSession entities in the database.
func (_c *CollabSessionCreateBulk) Save(ctx context.Context) ([]*CollabSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CollabSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CollabSessionMutation)
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
func (_c *CollabSessionCreateBulk) SaveX(ctx context.Context) []*CollabSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollabSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollabSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CollabSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CollabSessionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *CollabSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *CollabSessionUpsertBulk {
	_c.conflict = opts
	return &CollabSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CollabSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CollabSessionCreateBulk) OnConflictColumns(columns ...string) *CollabSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CollabSessionUpsertBulk{
		create: _c,
	}
}

// CollabSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of CollabSession nodes.
type CollabSessionUpsertBulk struct {
	create *CollabSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CollabSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CollabSessionUpsertBulk) UpdateNewValues() *CollabSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(collabsession.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(collabsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CollabSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CollabSessionUpsertBulk) Ignore() *CollabSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CollabSessionUpsertBulk) DoNothing() *CollabSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CollabSessionCreateBulk.OnConflict
// documentation for more info.
func (u *CollabSessionUpsertBulk) Update(set func(*CollabSessionUpsert)) *CollabSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CollabSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetHostUserID sets the "host_user_id" field.
func (u *CollabSessionUpsertBulk) SetHostUserID(v string) *CollabSessionUpsertBulk {
	return u.Update(func(s *CollabSessionUpsert) {
		s.SetHostUserID(v)
	})
}

// UpdateHostUserID sets the "host_user_id" field to the value that was provided on create.
func (u *CollabSessionUpsertBulk) UpdateHostUserID() *CollabSessionUpsertBulk {
	return u.Update(func(s *CollabSessionUpsert) {
		s.UpdateHostUserID()
	})
}

// SetTitle sets the "title" field.
func (u *CollabSessionUpsertBulk) SetTitle(v string) *CollabSessionUpsertBulk {
	return u.Update(func(s *CollabSessionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CollabSessionUpsertBulk) UpdateTitle() *CollabSessionUpsertBulk {
	return u.Update(func(s *CollabSessionUpsert) {
		s.UpdateTitle()
	})
}

// SetLanguage sets the "language" field.
func (u *CollabSessionUpsertBulk) SetLanguage(v string) *CollabSessionUpsertBulk {
	return u.Update(func(s *CollabSessionUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *CollabSessionUpsertBulk) UpdateLanguage() *CollabSessionUpsertBulk {
	return u.Update(func(s *CollabSessionUpsert) {
		s.UpdateLanguage()
	})
}

// SetRelayURL sets the "relay_url" field.
func (u *CollabSessionUpsertBulk) SetRelayURL(v string) *CollabSessionUpsertBulk {
	return u.Update(func(s *CollabSessionUpsert) {
		s.SetRelayURL(v)
	})
}

// UpdateRelayURL sets the "relay_url" field to the value that was provided on create.
func (u *CollabSessionUpsertBulk) UpdateRelayURL() *CollabSessionUpsertBulk {
	return u.Update(func(s *CollabSessionUpsert) {
		s.UpdateRelayURL()
	})
}

// SetActive sets the "active" field.
func (u *CollabSessionUpsertBulk) SetActive(v bool) *CollabSessionUpsertBulk {
	return u.Update(func(s *CollabSessionUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *CollabSessionUpsertBulk) UpdateActive() *CollabSessionUpsertBulk {
	return u.Update(func(s *CollabSessionUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *CollabSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CollabSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CollabSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CollabSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
