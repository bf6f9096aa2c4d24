// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/govwatcher/govwatcher/ent/deliverymark"
	"github.com/govwatcher/govwatcher/ent/predicate"
)

// DeliveryMarkUpdate is the builder for updating DeliveryMark entities.
type DeliveryMarkUpdate struct {
	config
	hooks    []Hook
	mutation *DeliveryMarkMutation
}

// Where appends a list predicates to the DeliveryMarkUpdate builder.
func (_u *DeliveryMarkUpdate) Where(ps ...predicate.DeliveryMark) *DeliveryMarkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *DeliveryMarkUpdate) SetMessageID(v string) *DeliveryMarkUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *DeliveryMarkUpdate) SetNillableMessageID(v *string) *DeliveryMarkUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *DeliveryMarkUpdate) ClearMessageID() *DeliveryMarkUpdate {
	_u.mutation.ClearMessageID()
	return _u
}

// Mutation returns the DeliveryMarkMutation object of the builder.
func (_u *DeliveryMarkUpdate) Mutation() *DeliveryMarkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeliveryMarkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliveryMarkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeliveryMarkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliveryMarkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DeliveryMarkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(deliverymark.Table, deliverymark.Columns, sqlgraph.NewFieldSpec(deliverymark.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(deliverymark.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(deliverymark.FieldMessageID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliverymark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeliveryMarkUpdateOne is the builder for updating a single DeliveryMark entity.
type DeliveryMarkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeliveryMarkMutation
}

// SetMessageID sets the "message_id" field.
func (_u *DeliveryMarkUpdateOne) SetMessageID(v string) *DeliveryMarkUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *DeliveryMarkUpdateOne) SetNillableMessageID(v *string) *DeliveryMarkUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *DeliveryMarkUpdateOne) ClearMessageID() *DeliveryMarkUpdateOne {
	_u.mutation.ClearMessageID()
	return _u
}

// Mutation returns the DeliveryMarkMutation object of the builder.
func (_u *DeliveryMarkUpdateOne) Mutation() *DeliveryMarkMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeliveryMarkUpdate builder.
func (_u *DeliveryMarkUpdateOne) Where(ps ...predicate.DeliveryMark) *DeliveryMarkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeliveryMarkUpdateOne) Select(field string, fields ...string) *DeliveryMarkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeliveryMark entity.
func (_u *DeliveryMarkUpdateOne) Save(ctx context.Context) (*DeliveryMark, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliveryMarkUpdateOne) SaveX(ctx context.Context) *DeliveryMark {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeliveryMarkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliveryMarkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DeliveryMarkUpdateOne) sqlSave(ctx context.Context) (_node *DeliveryMark, err error) {
	_spec := sqlgraph.NewUpdateSpec(deliverymark.Table, deliverymark.Columns, sqlgraph.NewFieldSpec(deliverymark.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeliveryMark.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliverymark.FieldID)
		for _, f := range fields {
			if !deliverymark.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deliverymark.FieldID {
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
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(deliverymark.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(deliverymark.FieldMessageID, field.TypeString)
	}
	_node = &DeliveryMark{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliverymark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
