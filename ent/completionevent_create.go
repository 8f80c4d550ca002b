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
	"github.com/mkale/skillforge/ent/completionevent"
)

// CompletionEventCreate is the builder for creating a CompletionEvent entity.
type CompletionEventCreate struct {
	config
	mutation *CompletionEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *CompletionEventCreate) SetSequence(v int64) *CompletionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CompletionEventCreate) SetUserID(v string) *CompletionEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableUserID(v *string) *CompletionEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CompletionEventCreate) SetTimestamp(v time.Time) *CompletionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableTimestamp(v *time.Time) *CompletionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCompletionID sets the "completion_id" field.
func (_c *CompletionEventCreate) SetCompletionID(v string) *CompletionEventCreate {
	_c.mutation.SetCompletionID(v)
	return _c
}

// SetChallengeName sets the "challenge_name" field.
func (_c *CompletionEventCreate) SetChallengeName(v string) *CompletionEventCreate {
	_c.mutation.SetChallengeName(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *CompletionEventCreate) SetScore(v int) *CompletionEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CompletionEventCreate) SetDifficulty(v string) *CompletionEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetSkills sets the "skills" field.
func (_c *CompletionEventCreate) SetSkills(v []string) *CompletionEventCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *CompletionEventCreate) SetXpEarned(v int) *CompletionEventCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetBadge sets the "badge" field.
func (_c *CompletionEventCreate) SetBadge(v string) *CompletionEventCreate {
	_c.mutation.SetBadge(v)
	return _c
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_c *CompletionEventCreate) SetNillableBadge(v *string) *CompletionEventCreate {
	if v != nil {
		_c.SetBadge(*v)
	}
	return _c
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_c *CompletionEventCreate) Mutation() *CompletionEventMutation {
	return _c.mutation
}

// Save creates the CompletionEvent in the database.
func (_c *CompletionEventCreate) Save(ctx context.Context) (*CompletionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompletionEventCreate) SaveX(ctx context.Context) *CompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompletionEventCreate) defaults() {
	if _, ok := _c.mutation.UserID(); !ok {
		v := completionevent.DefaultUserID
		_c.mutation.SetUserID(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := completionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompletionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CompletionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CompletionEvent.user_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CompletionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.CompletionID(); !ok {
		return &ValidationError{Name: "completion_id", err: errors.New(`ent: missing required field "CompletionEvent.completion_id"`)}
	}
	if v, ok := _c.mutation.CompletionID(); ok {
		if err := completionevent.CompletionIDValidator(v); err != nil {
			return &ValidationError{Name: "completion_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.completion_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChallengeName(); !ok {
		return &ValidationError{Name: "challenge_name", err: errors.New(`ent: missing required field "CompletionEvent.challenge_name"`)}
	}
	if v, ok := _c.mutation.ChallengeName(); ok {
		if err := completionevent.ChallengeNameValidator(v); err != nil {
			return &ValidationError{Name: "challenge_name", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.challenge_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "CompletionEvent.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := completionevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "CompletionEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := completionevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skills(); !ok {
		return &ValidationError{Name: "skills", err: errors.New(`ent: missing required field "CompletionEvent.skills"`)}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "CompletionEvent.xp_earned"`)}
	}
	if v, ok := _c.mutation.XpEarned(); ok {
		if err := completionevent.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.xp_earned": %w`, err)}
		}
	}
	return nil
}

func (_c *CompletionEventCreate) sqlSave(ctx context.Context) (*CompletionEvent, error) {
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

func (_c *CompletionEventCreate) createSpec() (*CompletionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CompletionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(completionevent.Table, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(completionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(completionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(completionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CompletionID(); ok {
		_spec.SetField(completionevent.FieldCompletionID, field.TypeString, value)
		_node.CompletionID = value
	}
	if value, ok := _c.mutation.ChallengeName(); ok {
		_spec.SetField(completionevent.FieldChallengeName, field.TypeString, value)
		_node.ChallengeName = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(completionevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(completionevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(completionevent.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(completionevent.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	if value, ok := _c.mutation.Badge(); ok {
		_spec.SetField(completionevent.FieldBadge, field.TypeString, value)
		_node.Badge = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CompletionEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompletionEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *CompletionEventCreate) OnConflict(opts ...sql.ConflictOption) *CompletionEventUpsertOne {
	_c.conflict = opts
	return &CompletionEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CompletionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompletionEventCreate) OnConflictColumns(columns ...string) *CompletionEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompletionEventUpsertOne{
		create: _c,
	}
}

type (
	// CompletionEventUpsertOne is the builder for "upsert"-ing
	//  one CompletionEvent node.
	CompletionEventUpsertOne struct {
		create *CompletionEventCreate
	}

	// CompletionEventUpsert is the "OnConflict" setter.
	CompletionEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetCompletionID sets the "completion_id" field.
func (u *CompletionEventUpsert) SetCompletionID(v string) *CompletionEventUpsert {
	u.Set(completionevent.FieldCompletionID, v)
	return u
}

// UpdateCompletionID sets the "completion_id" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateCompletionID() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldCompletionID)
	return u
}

// SetChallengeName sets the "challenge_name" field.
func (u *CompletionEventUpsert) SetChallengeName(v string) *CompletionEventUpsert {
	u.Set(completionevent.FieldChallengeName, v)
	return u
}

// UpdateChallengeName sets the "challenge_name" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateChallengeName() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldChallengeName)
	return u
}

// SetScore sets the "score" field.
func (u *CompletionEventUpsert) SetScore(v int) *CompletionEventUpsert {
	u.Set(completionevent.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateScore() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *CompletionEventUpsert) AddScore(v int) *CompletionEventUpsert {
	u.Add(completionevent.FieldScore, v)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *CompletionEventUpsert) SetDifficulty(v string) *CompletionEventUpsert {
	u.Set(completionevent.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateDifficulty() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldDifficulty)
	return u
}

// SetSkills sets the "skills" field.
func (u *CompletionEventUpsert) SetSkills(v []string) *CompletionEventUpsert {
	u.Set(completionevent.FieldSkills, v)
	return u
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateSkills() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldSkills)
	return u
}

// SetXpEarned sets the "xp_earned" field.
func (u *CompletionEventUpsert) SetXpEarned(v int) *CompletionEventUpsert {
	u.Set(completionevent.FieldXpEarned, v)
	return u
}

// UpdateXpEarned sets the "xp_earned" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateXpEarned() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldXpEarned)
	return u
}

// AddXpEarned adds v to the "xp_earned" field.
func (u *CompletionEventUpsert) AddXpEarned(v int) *CompletionEventUpsert {
	u.Add(completionevent.FieldXpEarned, v)
	return u
}

// SetBadge sets the "badge" field.
func (u *CompletionEventUpsert) SetBadge(v string) *CompletionEventUpsert {
	u.Set(completionevent.FieldBadge, v)
	return u
}

// UpdateBadge sets the "badge" field to the value that was provided on create.
func (u *CompletionEventUpsert) UpdateBadge() *CompletionEventUpsert {
	u.SetExcluded(completionevent.FieldBadge)
	return u
}

// ClearBadge clears the value of the "badge" field.
func (u *CompletionEventUpsert) ClearBadge() *CompletionEventUpsert {
	u.SetNull(completionevent.FieldBadge)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CompletionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CompletionEventUpsertOne) UpdateNewValues() *CompletionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(completionevent.FieldSequence)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(completionevent.FieldUserID)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(completionevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CompletionEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CompletionEventUpsertOne) Ignore() *CompletionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompletionEventUpsertOne) DoNothing() *CompletionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompletionEventCreate.OnConflict
// documentation for more info.
func (u *CompletionEventUpsertOne) Update(set func(*CompletionEventUpsert)) *CompletionEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompletionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompletionID sets the "completion_id" field.
func (u *CompletionEventUpsertOne) SetCompletionID(v string) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetCompletionID(v)
	})
}

// UpdateCompletionID sets the "completion_id" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateCompletionID() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateCompletionID()
	})
}

// SetChallengeName sets the "challenge_name" field.
func (u *CompletionEventUpsertOne) SetChallengeName(v string) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetChallengeName(v)
	})
}

// UpdateChallengeName sets the "challenge_name" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateChallengeName() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateChallengeName()
	})
}

// SetScore sets the "score" field.
func (u *CompletionEventUpsertOne) SetScore(v int) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *CompletionEventUpsertOne) AddScore(v int) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateScore() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateScore()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *CompletionEventUpsertOne) SetDifficulty(v string) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateDifficulty() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateDifficulty()
	})
}

// SetSkills sets the "skills" field.
func (u *CompletionEventUpsertOne) SetSkills(v []string) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateSkills() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateSkills()
	})
}

// SetXpEarned sets the "xp_earned" field.
func (u *CompletionEventUpsertOne) SetXpEarned(v int) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetXpEarned(v)
	})
}

// AddXpEarned adds v to the "xp_earned" field.
func (u *CompletionEventUpsertOne) AddXpEarned(v int) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.AddXpEarned(v)
	})
}

// UpdateXpEarned sets the "xp_earned" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateXpEarned() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateXpEarned()
	})
}

// SetBadge sets the "badge" field.
func (u *CompletionEventUpsertOne) SetBadge(v string) *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetBadge(v)
	})
}

// UpdateBadge sets the "badge" field to the value that was provided on create.
func (u *CompletionEventUpsertOne) UpdateBadge() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateBadge()
	})
}

// ClearBadge clears the value of the "badge" field.
func (u *CompletionEventUpsertOne) ClearBadge() *CompletionEventUpsertOne {
	return u.Update(func(s *CompletionEventUpsert) {
		s.ClearBadge()
	})
}

// Exec executes the query.
func (u *CompletionEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompletionEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompletionEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CompletionEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CompletionEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CompletionEventCreateBulk is the builder for creating many CompletionEvent entities in bulk.
type CompletionEventCreateBulk struct {
	config
	err      error
	builders []*CompletionEventCreate
	conflict []sql.ConflictOption
}

// Save creates the CompletionEvent entities in the database.
func (_c *CompletionEventCreateBulk) Save(ctx context.Context) ([]*CompletionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompletionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionEventMutation)
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
func (_c *CompletionEventCreateBulk) SaveX(ctx context.Context) []*CompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CompletionEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompletionEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *CompletionEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *CompletionEventUpsertBulk {
	_c.conflict = opts
	return &CompletionEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CompletionEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompletionEventCreateBulk) OnConflictColumns(columns ...string) *CompletionEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompletionEventUpsertBulk{
		create: _c,
	}
}

// CompletionEventUpsertBulk is the builder for "upsert"-ing
// a bulk of CompletionEvent nodes.
type CompletionEventUpsertBulk struct {
	create *CompletionEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CompletionEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CompletionEventUpsertBulk) UpdateNewValues() *CompletionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(completionevent.FieldSequence)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(completionevent.FieldUserID)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(completionevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CompletionEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CompletionEventUpsertBulk) Ignore() *CompletionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompletionEventUpsertBulk) DoNothing() *CompletionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompletionEventCreateBulk.OnConflict
// documentation for more info.
func (u *CompletionEventUpsertBulk) Update(set func(*CompletionEventUpsert)) *CompletionEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompletionEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompletionID sets the "completion_id" field.
func (u *CompletionEventUpsertBulk) SetCompletionID(v string) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetCompletionID(v)
	})
}

// UpdateCompletionID sets the "completion_id" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateCompletionID() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateCompletionID()
	})
}

// SetChallengeName sets the "challenge_name" field.
func (u *CompletionEventUpsertBulk) SetChallengeName(v string) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetChallengeName(v)
	})
}

// UpdateChallengeName sets the "challenge_name" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateChallengeName() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateChallengeName()
	})
}

// SetScore sets the "score" field.
func (u *CompletionEventUpsertBulk) SetScore(v int) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *CompletionEventUpsertBulk) AddScore(v int) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateScore() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateScore()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *CompletionEventUpsertBulk) SetDifficulty(v string) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateDifficulty() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateDifficulty()
	})
}

// SetSkills sets the "skills" field.
func (u *CompletionEventUpsertBulk) SetSkills(v []string) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateSkills() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateSkills()
	})
}

// SetXpEarned sets the "xp_earned" field.
func (u *CompletionEventUpsertBulk) SetXpEarned(v int) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetXpEarned(v)
	})
}

// AddXpEarned adds v to the "xp_earned" field.
func (u *CompletionEventUpsertBulk) AddXpEarned(v int) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.AddXpEarned(v)
	})
}

// UpdateXpEarned sets the "xp_earned" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateXpEarned() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateXpEarned()
	})
}

// SetBadge sets the "badge" field.
func (u *CompletionEventUpsertBulk) SetBadge(v string) *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.SetBadge(v)
	})
}

// UpdateBadge sets the "badge" field to the value that was provided on create.
func (u *CompletionEventUpsertBulk) UpdateBadge() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.UpdateBadge()
	})
}

// ClearBadge clears the value of the "badge" field.
func (u *CompletionEventUpsertBulk) ClearBadge() *CompletionEventUpsertBulk {
	return u.Update(func(s *CompletionEventUpsert) {
		s.ClearBadge()
	})
}

// Exec executes the query.
func (u *CompletionEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CompletionEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompletionEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompletionEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
