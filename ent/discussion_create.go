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
	"github.com/mkale/skillforge/ent/discussion"
)

// DiscussionCreate is the builder for creating a Discussion entity.
type DiscussionCreate struct {
	config
	mutation *DiscussionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDiscussionID sets the "discussion_id" field.
func (_c *DiscussionCreate) SetDiscussionID(v string) *DiscussionCreate {
	_c.mutation.SetDiscussionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DiscussionCreate) SetUserID(v string) *DiscussionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DiscussionCreate) SetTitle(v string) *DiscussionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *DiscussionCreate) SetBody(v string) *DiscussionCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableBody(v *string) *DiscussionCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetSkillTag sets the "skill_tag" field.
func (_c *DiscussionCreate) SetSkillTag(v string) *DiscussionCreate {
	_c.mutation.SetSkillTag(v)
	return _c
}

// SetNillableSkillTag sets the "skill_tag" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableSkillTag(v *string) *DiscussionCreate {
	if v != nil {
		_c.SetSkillTag(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DiscussionCreate) SetCreatedAt(v time.Time) *DiscussionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableCreatedAt(v *time.Time) *DiscussionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DiscussionCreate) SetUpdatedAt(v time.Time) *DiscussionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableUpdatedAt(v *time.Time) *DiscussionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the DiscussionMutation object of the builder.
func (_c *DiscussionCreate) Mutation() *DiscussionMutation {
	return _c.mutation
}

// Save creates the Discussion in the database.
func (_c *DiscussionCreate) Save(ctx context.Context) (*Discussion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiscussionCreate) SaveX(ctx context.Context) *Discussion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscussionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscussionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiscussionCreate) defaults() {
	if _, ok := _c.mutation.Body(); !ok {
		v := discussion.DefaultBody
		_c.mutation.SetBody(v)
	}
	if _, ok := _c.mutation.SkillTag(); !ok {
		v := discussion.DefaultSkillTag
		_c.mutation.SetSkillTag(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := discussion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := discussion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiscussionCreate) check() error {
	if _, ok := _c.mutation.DiscussionID(); !ok {
		return &ValidationError{Name: "discussion_id", err: errors.New(`ent: missing required field "Discussion.discussion_id"`)}
	}
	if v, ok := _c.mutation.DiscussionID(); ok {
		if err := discussion.DiscussionIDValidator(v); err != nil {
			return &ValidationError{Name: "discussion_id", err: fmt.Errorf(`ent: validator failed for field "Discussion.discussion_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Discussion.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := discussion.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Discussion.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Discussion.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := discussion.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Discussion.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Discussion.body"`)}
	}
	if _, ok := _c.mutation.SkillTag(); !ok {
		return &ValidationError{Name: "skill_tag", err: errors.New(`ent: missing required field "Discussion.skill_tag"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Discussion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Discussion.updated_at"`)}
	}
	return nil
}

func (_c *DiscussionCreate) sqlSave(ctx context.Context) (*Discussion, error) {
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

func (_c *DiscussionCreate) createSpec() (*Discussion, *sqlgraph.CreateSpec) {
	var (
		_node = &Discussion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(discussion.Table, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.DiscussionID(); ok {
		_spec.SetField(discussion.FieldDiscussionID, field.TypeString, value)
		_node.DiscussionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(discussion.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(discussion.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(discussion.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.SkillTag(); ok {
		_spec.SetField(discussion.FieldSkillTag, field.TypeString, value)
		_node.SkillTag = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(discussion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(discussion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Discussion.Create().
//		SetDiscussionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiscussionUpsert) {
//			SetDiscussionID(v+v).
//		}).
//		Exec(ctx)
func (_c *DiscussionCreate) OnConflict(opts ...sql.ConflictOption) *DiscussionUpsertOne {
	_c.conflict = opts
	return &DiscussionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Discussion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiscussionCreate) OnConflictColumns(columns ...string) *DiscussionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiscussionUpsertOne{
		create: _c,
	}
}

type (
	// DiscussionUpsertOne is the builder for "upsert"-ing
	//  one Discussion node.
	DiscussionUpsertOne struct {
		create *DiscussionCreate
	}

	// DiscussionUpsert is the "OnConflict" setter.
	DiscussionUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *DiscussionUpsert) SetTitle(v string) *DiscussionUpsert {
	u.Set(discussion.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DiscussionUpsert) UpdateTitle() *DiscussionUpsert {
	u.SetExcluded(discussion.FieldTitle)
	return u
}

// SetBody sets the "body" field.
func (u *DiscussionUpsert) SetBody(v string) *DiscussionUpsert {
	u.Set(discussion.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *DiscussionUpsert) UpdateBody() *DiscussionUpsert {
	u.SetExcluded(discussion.FieldBody)
	return u
}

// SetSkillTag sets the "skill_tag" field.
func (u *DiscussionUpsert) SetSkillTag(v string) *DiscussionUpsert {
	u.Set(discussion.FieldSkillTag, v)
	return u
}

// UpdateSkillTag sets the "skill_tag" field to the value that was provided on create.
func (u *DiscussionUpsert) UpdateSkillTag() *DiscussionUpsert {
	u.SetExcluded(discussion.FieldSkillTag)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DiscussionUpsert) SetUpdatedAt(v time.Time) *DiscussionUpsert {
	u.Set(discussion.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiscussionUpsert) UpdateUpdatedAt() *DiscussionUpsert {
	u.SetExcluded(discussion.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Discussion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DiscussionUpsertOne) UpdateNewValues() *DiscussionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.DiscussionID(); exists {
			s.SetIgnore(discussion.FieldDiscussionID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(discussion.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(discussion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Discussion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DiscussionUpsertOne) Ignore() *DiscussionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiscussionUpsertOne) DoNothing() *DiscussionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiscussionCreate.OnConflict
// documentation for more info.
func (u *DiscussionUpsertOne) Update(set func(*DiscussionUpsert)) *DiscussionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiscussionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *DiscussionUpsertOne) SetTitle(v string) *DiscussionUpsertOne {
	return u.Update(func(s *DiscussionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DiscussionUpsertOne) UpdateTitle() *DiscussionUpsertOne {
	return u.Update(func(s *DiscussionUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *DiscussionUpsertOne) SetBody(v string) *DiscussionUpsertOne {
	return u.Update(func(s *DiscussionUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *DiscussionUpsertOne) UpdateBody() *DiscussionUpsertOne {
	return u.Update(func(s *DiscussionUpsert) {
		s.UpdateBody()
	})
}

// SetSkillTag sets the "skill_tag" field.
func (u *DiscussionUpsertOne) SetSkillTag(v string) *DiscussionUpsertOne {
	return u.Update(func(s *DiscussionUpsert) {
		s.SetSkillTag(v)
	})
}

// UpdateSkillTag sets the "skill_tag" field to the value that was provided on create.
func (u *DiscussionUpsertOne) UpdateSkillTag() *DiscussionUpsertOne {
	return u.Update(func(s *DiscussionUpsert) {
		s.UpdateSkillTag()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DiscussionUpsertOne) SetUpdatedAt(v time.Time) *DiscussionUpsertOne {
	return u.Update(func(s *DiscussionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiscussionUpsertOne) UpdateUpdatedAt() *DiscussionUpsertOne {
	return u.Update(func(s *DiscussionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DiscussionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DiscussionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiscussionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DiscussionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DiscussionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DiscussionCreateBulk is the builder for creating many Discussion entities in bulk.
type DiscussionCreateBulk struct {
	config
	err      error
	builders []*DiscussionCreate
	conflict []sql.ConflictOption
}

// Save creates the Discussion entities in the database.
func (_c *DiscussionCreateBulk) Save(ctx context.Context) ([]*Discussion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Discussion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiscussionMutation)
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
func (_c *DiscussionCreateBulk) SaveX(ctx context.Context) []*Discussion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscussionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscussionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Discussion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiscussionUpsert) {
//			SetDiscussionID(v+v).
//		}).
//		Exec(ctx)
func (_c *DiscussionCreateBulk) OnConflict(opts ...sql.ConflictOption) *DiscussionUpsertBulk {
	_c.conflict = opts
	return &DiscussionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Discussion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiscussionCreateBulk) OnConflictColumns(columns ...string) *DiscussionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiscussionUpsertBulk{
		create: _c,
	}
}

// DiscussionUpsertBulk is the builder for "upsert"-ing
// a bulk of Discussion nodes.
type DiscussionUpsertBulk struct {
	create *DiscussionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Discussion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DiscussionUpsertBulk) UpdateNewValues() *DiscussionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.DiscussionID(); exists {
				s.SetIgnore(discussion.FieldDiscussionID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(discussion.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(discussion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Discussion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DiscussionUpsertBulk) Ignore() *DiscussionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiscussionUpsertBulk) DoNothing() *DiscussionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiscussionCreateBulk.OnConflict
// documentation for more info.
func (u *DiscussionUpsertBulk) Update(set func(*DiscussionUpsert)) *DiscussionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiscussionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *DiscussionUpsertBulk) SetTitle(v string) *DiscussionUpsertBulk {
	return u.Update(func(s *DiscussionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DiscussionUpsertBulk) UpdateTitle() *DiscussionUpsertBulk {
	return u.Update(func(s *DiscussionUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *DiscussionUpsertBulk) SetBody(v string) *DiscussionUpsertBulk {
	return u.Update(func(s *DiscussionUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *DiscussionUpsertBulk) UpdateBody() *DiscussionUpsertBulk {
	return u.Update(func(s *DiscussionUpsert) {
		s.UpdateBody()
	})
}

// SetSkillTag sets the "skill_tag" field.
func (u *DiscussionUpsertBulk) SetSkillTag(v string) *DiscussionUpsertBulk {
	return u.Update(func(s *DiscussionUpsert) {
		s.SetSkillTag(v)
	})
}

// UpdateSkillTag sets the "skill_tag" field to the value that was provided on create.
func (u *DiscussionUpsertBulk) UpdateSkillTag() *DiscussionUpsertBulk {
	return u.Update(func(s *DiscussionUpsert) {
		s.UpdateSkillTag()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DiscussionUpsertBulk) SetUpdatedAt(v time.Time) *DiscussionUpsertBulk {
	return u.Update(func(s *DiscussionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiscussionUpsertBulk) UpdateUpdatedAt() *DiscussionUpsertBulk {
	return u.Update(func(s *DiscussionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DiscussionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DiscussionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DiscussionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiscussionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
