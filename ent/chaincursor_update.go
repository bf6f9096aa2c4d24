// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/govwatcher/govwatcher/ent/chaincursor"
	"github.com/govwatcher/govwatcher/ent/predicate"
)

// ChainCursorUpdate is the builder for updating ChainCursor entities.
type ChainCursorUpdate struct {
	config
	hooks    []Hook
	mutation *ChainCursorMutation
}

// Where appends a list predicates to the ChainCursorUpdate builder.
func (_u *ChainCursorUpdate) Where(ps ...predicate.ChainCursor) *ChainCursorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHighestSeen sets the "highest_seen" field.
func (_u *ChainCursorUpdate) SetHighestSeen(v int64) *ChainCursorUpdate {
	_u.mutation.ResetHighestSeen()
	_u.mutation.SetHighestSeen(v)
	return _u
}

// SetNillableHighestSeen sets the "highest_seen" field if the given value is not nil.
func (_u *ChainCursorUpdate) SetNillableHighestSeen(v *int64) *ChainCursorUpdate {
	if v != nil {
		_u.SetHighestSeen(*v)
	}
	return _u
}

// AddHighestSeen adds value to the "highest_seen" field.
func (_u *ChainCursorUpdate) AddHighestSeen(v int64) *ChainCursorUpdate {
	_u.mutation.AddHighestSeen(v)
	return _u
}

// SetTracked sets the "tracked" field.
func (_u *ChainCursorUpdate) SetTracked(v []int64) *ChainCursorUpdate {
	_u.mutation.SetTracked(v)
	return _u
}

// AppendTracked appends value to the "tracked" field.
func (_u *ChainCursorUpdate) AppendTracked(v []int64) *ChainCursorUpdate {
	_u.mutation.AppendTracked(v)
	return _u
}

// ClearTracked clears the value of the "tracked" field.
func (_u *ChainCursorUpdate) ClearTracked() *ChainCursorUpdate {
	_u.mutation.ClearTracked()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChainCursorUpdate) SetUpdatedAt(v time.Time) *ChainCursorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChainCursorMutation object of the builder.
func (_u *ChainCursorUpdate) Mutation() *ChainCursorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChainCursorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChainCursorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChainCursorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChainCursorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChainCursorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chaincursor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChainCursorUpdate) check() error {
	if v, ok := _u.mutation.HighestSeen(); ok {
		if err := chaincursor.HighestSeenValidator(v); err != nil {
			return &ValidationError{Name: "highest_seen", err: fmt.Errorf(`ent: validator failed for field "ChainCursor.highest_seen": %w`, err)}
		}
	}
	return nil
}

func (_u *ChainCursorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chaincursor.Table, chaincursor.Columns, sqlgraph.NewFieldSpec(chaincursor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.HighestSeen(); ok {
		_spec.SetField(chaincursor.FieldHighestSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedHighestSeen(); ok {
		_spec.AddField(chaincursor.FieldHighestSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Tracked(); ok {
		_spec.SetField(chaincursor.FieldTracked, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTracked(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chaincursor.FieldTracked, value)
		})
	}
	if _u.mutation.TrackedCleared() {
		_spec.ClearField(chaincursor.FieldTracked, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chaincursor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chaincursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChainCursorUpdateOne is the builder for updating a single ChainCursor entity.
type ChainCursorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChainCursorMutation
}

// SetHighestSeen sets the "highest_seen" field.
func (_u *ChainCursorUpdateOne) SetHighestSeen(v int64) *ChainCursorUpdateOne {
	_u.mutation.ResetHighestSeen()
	_u.mutation.SetHighestSeen(v)
	return _u
}

// SetNillableHighestSeen sets the "highest_seen" field if the given value is not nil.
func (_u *ChainCursorUpdateOne) SetNillableHighestSeen(v *int64) *ChainCursorUpdateOne {
	if v != nil {
		_u.SetHighestSeen(*v)
	}
	return _u
}

// AddHighestSeen adds value to the "highest_seen" field.
func (_u *ChainCursorUpdateOne) AddHighestSeen(v int64) *ChainCursorUpdateOne {
	_u.mutation.AddHighestSeen(v)
	return _u
}

// SetTracked sets the "tracked" field.
func (_u *ChainCursorUpdateOne) SetTracked(v []int64) *ChainCursorUpdateOne {
	_u.mutation.SetTracked(v)
	return _u
}

// AppendTracked appends value to the "tracked" field.
func (_u *ChainCursorUpdateOne) AppendTracked(v []int64) *ChainCursorUpdateOne {
	_u.mutation.AppendTracked(v)
	return _u
}

// ClearTracked clears the value of the "tracked" field.
func (_u *ChainCursorUpdateOne) ClearTracked() *ChainCursorUpdateOne {
	_u.mutation.ClearTracked()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChainCursorUpdateOne) SetUpdatedAt(v time.Time) *ChainCursorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChainCursorMutation object of the builder.
func (_u *ChainCursorUpdateOne) Mutation() *ChainCursorMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChainCursorUpdate builder.
func (_u *ChainCursorUpdateOne) Where(ps ...predicate.ChainCursor) *ChainCursorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChainCursorUpdateOne) Select(field string, fields ...string) *ChainCursorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChainCursor entity.
func (_u *ChainCursorUpdateOne) Save(ctx context.Context) (*ChainCursor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChainCursorUpdateOne) SaveX(ctx context.Context) *ChainCursor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChainCursorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChainCursorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChainCursorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chaincursor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChainCursorUpdateOne) check() error {
	if v, ok := _u.mutation.HighestSeen(); ok {
		if err := chaincursor.HighestSeenValidator(v); err != nil {
			return &ValidationError{Name: "highest_seen", err: fmt.Errorf(`ent: validator failed for field "ChainCursor.highest_seen": %w`, err)}
		}
	}
	return nil
}

func (_u *ChainCursorUpdateOne) sqlSave(ctx context.Context) (_node *ChainCursor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chaincursor.Table, chaincursor.Columns, sqlgraph.NewFieldSpec(chaincursor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChainCursor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chaincursor.FieldID)
		for _, f := range fields {
			if !chaincursor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chaincursor.FieldID {
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
	if value, ok := _u.mutation.HighestSeen(); ok {
		_spec.SetField(chaincursor.FieldHighestSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedHighestSeen(); ok {
		_spec.AddField(chaincursor.FieldHighestSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Tracked(); ok {
		_spec.SetField(chaincursor.FieldTracked, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTracked(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chaincursor.FieldTracked, value)
		})
	}
	if _u.mutation.TrackedCleared() {
		_spec.ClearField(chaincursor.FieldTracked, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chaincursor.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ChainCursor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chaincursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
