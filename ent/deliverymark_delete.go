// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/govwatcher/govwatcher/ent/deliverymark"
	"github.com/govwatcher/govwatcher/ent/predicate"
)

// DeliveryMarkDelete is the builder for deleting a DeliveryMark entity.
type DeliveryMarkDelete struct {
	config
	hooks    []Hook
	mutation *DeliveryMarkMutation
}

// Where appends a list predicates to the DeliveryMarkDelete builder.
func (_d *DeliveryMarkDelete) Where(ps ...predicate.DeliveryMark) *DeliveryMarkDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeliveryMarkDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeliveryMarkDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeliveryMarkDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(deliverymark.Table, sqlgraph.NewFieldSpec(deliverymark.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DeliveryMarkDeleteOne is the builder for deleting a single DeliveryMark entity.
type DeliveryMarkDeleteOne struct {
	_d *DeliveryMarkDelete
}

// Where appends a list predicates to the DeliveryMarkDelete builder.
func (_d *DeliveryMarkDeleteOne) Where(ps ...predicate.DeliveryMark) *DeliveryMarkDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeliveryMarkDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{deliverymark.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeliveryMarkDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
