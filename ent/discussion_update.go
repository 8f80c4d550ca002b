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
	"github.com/mkale/skillforge/ent/predicate"
)

// DiscussionUpdate is the builder for updating Discussion entities.
type DiscussionUpdate struct {
	config
	hooks    []Hook
	mutation *DiscussionMutation
}

// Where appends a list predicates to the DiscussionUpdate builder.
func (_u *DiscussionUpdate) Where(ps ...predicate.Discussion) *DiscussionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *DiscussionUpdate) SetTitle(v string) *DiscussionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableTitle(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *DiscussionUpdate) SetBody(v string) *DiscussionUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableBody(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetSkillTag sets the "skill_tag" field.
func (_u *DiscussionUpdate) SetSkillTag(v string) *DiscussionUpdate {
	_u.mutation.SetSkillTag(v)
	return _u
}

// SetNillableSkillTag sets the "skill_tag" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableSkillTag(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetSkillTag(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiscussionUpdate) SetUpdatedAt(v time.Time) *DiscussionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DiscussionMutation object of the builder.
func (_u *DiscussionUpdate) Mutation() *DiscussionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiscussionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscussionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiscussionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscussionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiscussionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := discussion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscussionUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := discussion.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Discussion.title": %w`, err)}
		}
	}
	return nil
}

func (_u *DiscussionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discussion.Table, discussion.Columns, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(discussion.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(discussion.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillTag(); ok {
		_spec.SetField(discussion.FieldSkillTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(discussion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discussion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiscussionUpdateOne is the builder for updating a single Discussion entity.
type DiscussionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiscussionMutation
}

// SetTitle sets the "title" field.
func (_u *DiscussionUpdateOne) SetTitle(v string) *DiscussionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableTitle(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *DiscussionUpdateOne) SetBody(v string) *DiscussionUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableBody(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetSkillTag sets the "skill_tag" field.
func (_u *DiscussionUpdateOne) SetSkillTag(v string) *DiscussionUpdateOne {
	_u.mutation.SetSkillTag(v)
	return _u
}

// SetNillableSkillTag sets the "skill_tag" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableSkillTag(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetSkillTag(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiscussionUpdateOne) SetUpdatedAt(v time.Time) *DiscussionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DiscussionMutation object of the builder.
func (_u *DiscussionUpdateOne) Mutation() *DiscussionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiscussionUpdate builder.
func (_u *DiscussionUpdateOne) Where(ps ...predicate.Discussion) *DiscussionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiscussionUpdateOne) Select(field string, fields ...string) *DiscussionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Discussion entity.
func (_u *DiscussionUpdateOne) Save(ctx context.Context) (*Discussion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscussionUpdateOne) SaveX(ctx context.Context) *Discussion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiscussionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscussionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiscussionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := discussion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscussionUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := discussion.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Discussion.title": %w`, err)}
		}
	}
	return nil
}

func (_u *DiscussionUpdateOne) sqlSave(ctx context.Context) (_node *Discussion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discussion.Table, discussion.Columns, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Discussion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, discussion.FieldID)
		for _, f := range fields {
			if !discussion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != discussion.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(discussion.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(discussion.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillTag(); ok {
		_spec.SetField(discussion.FieldSkillTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(discussion.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Discussion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discussion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
