// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mkale/skillforge/ent/completionevent"
	"github.com/mkale/skillforge/ent/predicate"
)

// CompletionEventUpdate is the builder for updating CompletionEvent entities.
type CompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionEventMutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdate) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompletionID sets the "completion_id" field.
func (_u *CompletionEventUpdate) SetCompletionID(v string) *CompletionEventUpdate {
	_u.mutation.SetCompletionID(v)
	return _u
}

// SetNillableCompletionID sets the "completion_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableCompletionID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetCompletionID(*v)
	}
	return _u
}

// SetChallengeName sets the "challenge_name" field.
func (_u *CompletionEventUpdate) SetChallengeName(v string) *CompletionEventUpdate {
	_u.mutation.SetChallengeName(v)
	return _u
}

// SetNillableChallengeName sets the "challenge_name" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableChallengeName(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetChallengeName(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *CompletionEventUpdate) SetScore(v int) *CompletionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableScore(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CompletionEventUpdate) AddScore(v int) *CompletionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CompletionEventUpdate) SetDifficulty(v string) *CompletionEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableDifficulty(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *CompletionEventUpdate) SetSkills(v []string) *CompletionEventUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *CompletionEventUpdate) AppendSkills(v []string) *CompletionEventUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *CompletionEventUpdate) SetXpEarned(v int) *CompletionEventUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableXpEarned(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *CompletionEventUpdate) AddXpEarned(v int) *CompletionEventUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetBadge sets the "badge" field.
func (_u *CompletionEventUpdate) SetBadge(v string) *CompletionEventUpdate {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableBadge(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// ClearBadge clears the value of the "badge" field.
func (_u *CompletionEventUpdate) ClearBadge() *CompletionEventUpdate {
	_u.mutation.ClearBadge()
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdate) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdate) check() error {
	if v, ok := _u.mutation.CompletionID(); ok {
		if err := completionevent.CompletionIDValidator(v); err != nil {
			return &ValidationError{Name: "completion_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.completion_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeName(); ok {
		if err := completionevent.ChallengeNameValidator(v); err != nil {
			return &ValidationError{Name: "challenge_name", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.challenge_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := completionevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := completionevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpEarned(); ok {
		if err := completionevent.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.xp_earned": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompletionID(); ok {
		_spec.SetField(completionevent.FieldCompletionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeName(); ok {
		_spec.SetField(completionevent.FieldChallengeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(completionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(completionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(completionevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(completionevent.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, completionevent.FieldSkills, value)
		})
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(completionevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(completionevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(completionevent.FieldBadge, field.TypeString, value)
	}
	if _u.mutation.BadgeCleared() {
		_spec.ClearField(completionevent.FieldBadge, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionEventUpdateOne is the builder for updating a single CompletionEvent entity.
type CompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionEventMutation
}

// SetCompletionID sets the "completion_id" field.
func (_u *CompletionEventUpdateOne) SetCompletionID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetCompletionID(v)
	return _u
}

// SetNillableCompletionID sets the "completion_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableCompletionID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetCompletionID(*v)
	}
	return _u
}

// SetChallengeName sets the "challenge_name" field.
func (_u *CompletionEventUpdateOne) SetChallengeName(v string) *CompletionEventUpdateOne {
	_u.mutation.SetChallengeName(v)
	return _u
}

// SetNillableChallengeName sets the "challenge_name" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableChallengeName(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetChallengeName(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *CompletionEventUpdateOne) SetScore(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableScore(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CompletionEventUpdateOne) AddScore(v int) *CompletionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CompletionEventUpdateOne) SetDifficulty(v string) *CompletionEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableDifficulty(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSkills sets the "skills" field.
func (_u *CompletionEventUpdateOne) SetSkills(v []string) *CompletionEventUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *CompletionEventUpdateOne) AppendSkills(v []string) *CompletionEventUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *CompletionEventUpdateOne) SetXpEarned(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableXpEarned(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *CompletionEventUpdateOne) AddXpEarned(v int) *CompletionEventUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetBadge sets the "badge" field.
func (_u *CompletionEventUpdateOne) SetBadge(v string) *CompletionEventUpdateOne {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableBadge(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// ClearBadge clears the value of the "badge" field.
func (_u *CompletionEventUpdateOne) ClearBadge() *CompletionEventUpdateOne {
	_u.mutation.ClearBadge()
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdateOne) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdateOne) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionEventUpdateOne) Select(field string, fields ...string) *CompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompletionEvent entity.
func (_u *CompletionEventUpdateOne) Save(ctx context.Context) (*CompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) SaveX(ctx context.Context) *CompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.CompletionID(); ok {
		if err := completionevent.CompletionIDValidator(v); err != nil {
			return &ValidationError{Name: "completion_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.completion_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeName(); ok {
		if err := completionevent.ChallengeNameValidator(v); err != nil {
			return &ValidationError{Name: "challenge_name", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.challenge_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := completionevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := completionevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpEarned(); ok {
		if err := completionevent.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.xp_earned": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *CompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionevent.FieldID)
		for _, f := range fields {
			if !completionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionevent.FieldID {
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
	if value, ok := _u.mutation.CompletionID(); ok {
		_spec.SetField(completionevent.FieldCompletionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeName(); ok {
		_spec.SetField(completionevent.FieldChallengeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(completionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(completionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(completionevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(completionevent.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, completionevent.FieldSkills, value)
		})
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(completionevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(completionevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(completionevent.FieldBadge, field.TypeString, value)
	}
	if _u.mutation.BadgeCleared() {
		_spec.ClearField(completionevent.FieldBadge, field.TypeString)
	}
	_node = &CompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
