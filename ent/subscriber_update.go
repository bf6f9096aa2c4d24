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
	"github.com/govwatcher/govwatcher/ent/predicate"
	"github.com/govwatcher/govwatcher/ent/subscriber"
)

// SubscriberUpdate is the builder for updating Subscriber entities.
type SubscriberUpdate struct {
	config
	hooks    []Hook
	mutation *SubscriberMutation
}

// Where appends a list predicates to the SubscriberUpdate builder.
func (_u *SubscriberUpdate) Where(ps ...predicate.Subscriber) *SubscriberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAddress sets the "address" field.
func (_u *SubscriberUpdate) SetAddress(v string) *SubscriberUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *SubscriberUpdate) SetNillableAddress(v *string) *SubscriberUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetChains sets the "chains" field.
func (_u *SubscriberUpdate) SetChains(v []string) *SubscriberUpdate {
	_u.mutation.SetChains(v)
	return _u
}

// AppendChains appends value to the "chains" field.
func (_u *SubscriberUpdate) AppendChains(v []string) *SubscriberUpdate {
	_u.mutation.AppendChains(v)
	return _u
}

// SetRiskTolerance sets the "risk_tolerance" field.
func (_u *SubscriberUpdate) SetRiskTolerance(v subscriber.RiskTolerance) *SubscriberUpdate {
	_u.mutation.SetRiskTolerance(v)
	return _u
}

// SetNillableRiskTolerance sets the "risk_tolerance" field if the given value is not nil.
func (_u *SubscriberUpdate) SetNillableRiskTolerance(v *subscriber.RiskTolerance) *SubscriberUpdate {
	if v != nil {
		_u.SetRiskTolerance(*v)
	}
	return _u
}

// SetCriteriaWeights sets the "criteria_weights" field.
func (_u *SubscriberUpdate) SetCriteriaWeights(v map[string]float64) *SubscriberUpdate {
	_u.mutation.SetCriteriaWeights(v)
	return _u
}

// ClearCriteriaWeights clears the value of the "criteria_weights" field.
func (_u *SubscriberUpdate) ClearCriteriaWeights() *SubscriberUpdate {
	_u.mutation.ClearCriteriaWeights()
	return _u
}

// SetPolicyBlurbs sets the "policy_blurbs" field.
func (_u *SubscriberUpdate) SetPolicyBlurbs(v []string) *SubscriberUpdate {
	_u.mutation.SetPolicyBlurbs(v)
	return _u
}

// AppendPolicyBlurbs appends value to the "policy_blurbs" field.
func (_u *SubscriberUpdate) AppendPolicyBlurbs(v []string) *SubscriberUpdate {
	_u.mutation.AppendPolicyBlurbs(v)
	return _u
}

// ClearPolicyBlurbs clears the value of the "policy_blurbs" field.
func (_u *SubscriberUpdate) ClearPolicyBlurbs() *SubscriberUpdate {
	_u.mutation.ClearPolicyBlurbs()
	return _u
}

// SetActive sets the "active" field.
func (_u *SubscriberUpdate) SetActive(v bool) *SubscriberUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SubscriberUpdate) SetNillableActive(v *bool) *SubscriberUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetActiveUntil sets the "active_until" field.
func (_u *SubscriberUpdate) SetActiveUntil(v time.Time) *SubscriberUpdate {
	_u.mutation.SetActiveUntil(v)
	return _u
}

// SetNillableActiveUntil sets the "active_until" field if the given value is not nil.
func (_u *SubscriberUpdate) SetNillableActiveUntil(v *time.Time) *SubscriberUpdate {
	if v != nil {
		_u.SetActiveUntil(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubscriberUpdate) SetUpdatedAt(v time.Time) *SubscriberUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubscriberMutation object of the builder.
func (_u *SubscriberUpdate) Mutation() *SubscriberMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubscriberUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubscriberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubscriberUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subscriber.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriberUpdate) check() error {
	if v, ok := _u.mutation.RiskTolerance(); ok {
		if err := subscriber.RiskToleranceValidator(v); err != nil {
			return &ValidationError{Name: "risk_tolerance", err: fmt.Errorf(`ent: validator failed for field "Subscriber.risk_tolerance": %w`, err)}
		}
	}
	return nil
}

func (_u *SubscriberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscriber.Table, subscriber.Columns, sqlgraph.NewFieldSpec(subscriber.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(subscriber.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chains(); ok {
		_spec.SetField(subscriber.FieldChains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subscriber.FieldChains, value)
		})
	}
	if value, ok := _u.mutation.RiskTolerance(); ok {
		_spec.SetField(subscriber.FieldRiskTolerance, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CriteriaWeights(); ok {
		_spec.SetField(subscriber.FieldCriteriaWeights, field.TypeJSON, value)
	}
	if _u.mutation.CriteriaWeightsCleared() {
		_spec.ClearField(subscriber.FieldCriteriaWeights, field.TypeJSON)
	}
	if value, ok := _u.mutation.PolicyBlurbs(); ok {
		_spec.SetField(subscriber.FieldPolicyBlurbs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPolicyBlurbs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subscriber.FieldPolicyBlurbs, value)
		})
	}
	if _u.mutation.PolicyBlurbsCleared() {
		_spec.ClearField(subscriber.FieldPolicyBlurbs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(subscriber.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ActiveUntil(); ok {
		_spec.SetField(subscriber.FieldActiveUntil, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subscriber.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscriber.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubscriberUpdateOne is the builder for updating a single Subscriber entity.
type SubscriberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubscriberMutation
}

// SetAddress sets the "address" field.
func (_u *SubscriberUpdateOne) SetAddress(v string) *SubscriberUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *SubscriberUpdateOne) SetNillableAddress(v *string) *SubscriberUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetChains sets the "chains" field.
func (_u *SubscriberUpdateOne) SetChains(v []string) *SubscriberUpdateOne {
	_u.mutation.SetChains(v)
	return _u
}

// AppendChains appends value to the "chains" field.
func (_u *SubscriberUpdateOne) AppendChains(v []string) *SubscriberUpdateOne {
	_u.mutation.AppendChains(v)
	return _u
}

// SetRiskTolerance sets the "risk_tolerance" field.
func (_u *SubscriberUpdateOne) SetRiskTolerance(v subscriber.RiskTolerance) *SubscriberUpdateOne {
	_u.mutation.SetRiskTolerance(v)
	return _u
}

// SetNillableRiskTolerance sets the "risk_tolerance" field if the given value is not nil.
func (_u *SubscriberUpdateOne) SetNillableRiskTolerance(v *subscriber.RiskTolerance) *SubscriberUpdateOne {
	if v != nil {
		_u.SetRiskTolerance(*v)
	}
	return _u
}

// SetCriteriaWeights sets the "criteria_weights" field.
func (_u *SubscriberUpdateOne) SetCriteriaWeights(v map[string]float64) *SubscriberUpdateOne {
	_u.mutation.SetCriteriaWeights(v)
	return _u
}

// ClearCriteriaWeights clears the value of the "criteria_weights" field.
func (_u *SubscriberUpdateOne) ClearCriteriaWeights() *SubscriberUpdateOne {
	_u.mutation.ClearCriteriaWeights()
	return _u
}

// SetPolicyBlurbs sets the "policy_blurbs" field.
func (_u *SubscriberUpdateOne) SetPolicyBlurbs(v []string) *SubscriberUpdateOne {
	_u.mutation.SetPolicyBlurbs(v)
	return _u
}

// AppendPolicyBlurbs appends value to the "policy_blurbs" field.
func (_u *SubscriberUpdateOne) AppendPolicyBlurbs(v []string) *SubscriberUpdateOne {
	_u.mutation.AppendPolicyBlurbs(v)
	return _u
}

// ClearPolicyBlurbs clears the value of the "policy_blurbs" field.
func (_u *SubscriberUpdateOne) ClearPolicyBlurbs() *SubscriberUpdateOne {
	_u.mutation.ClearPolicyBlurbs()
	return _u
}

// SetActive sets the "active" field.
func (_u *SubscriberUpdateOne) SetActive(v bool) *SubscriberUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SubscriberUpdateOne) SetNillableActive(v *bool) *SubscriberUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetActiveUntil sets the "active_until" field.
func (_u *SubscriberUpdateOne) SetActiveUntil(v time.Time) *SubscriberUpdateOne {
	_u.mutation.SetActiveUntil(v)
	return _u
}

// SetNillableActiveUntil sets the "active_until" field if the given value is not nil.
func (_u *SubscriberUpdateOne) SetNillableActiveUntil(v *time.Time) *SubscriberUpdateOne {
	if v != nil {
		_u.SetActiveUntil(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubscriberUpdateOne) SetUpdatedAt(v time.Time) *SubscriberUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubscriberMutation object of the builder.
func (_u *SubscriberUpdateOne) Mutation() *SubscriberMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubscriberUpdate builder.
func (_u *SubscriberUpdateOne) Where(ps ...predicate.Subscriber) *SubscriberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubscriberUpdateOne) Select(field string, fields ...string) *SubscriberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subscriber entity.
func (_u *SubscriberUpdateOne) Save(ctx context.Context) (*Subscriber, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriberUpdateOne) SaveX(ctx context.Context) *Subscriber {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubscriberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubscriberUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subscriber.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriberUpdateOne) check() error {
	if v, ok := _u.mutation.RiskTolerance(); ok {
		if err := subscriber.RiskToleranceValidator(v); err != nil {
			return &ValidationError{Name: "risk_tolerance", err: fmt.Errorf(`ent: validator failed for field "Subscriber.risk_tolerance": %w`, err)}
		}
	}
	return nil
}

func (_u *SubscriberUpdateOne) sqlSave(ctx context.Context) (_node *Subscriber, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscriber.Table, subscriber.Columns, sqlgraph.NewFieldSpec(subscriber.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subscriber.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subscriber.FieldID)
		for _, f := range fields {
			if !subscriber.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subscriber.FieldID {
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
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(subscriber.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chains(); ok {
		_spec.SetField(subscriber.FieldChains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subscriber.FieldChains, value)
		})
	}
	if value, ok := _u.mutation.RiskTolerance(); ok {
		_spec.SetField(subscriber.FieldRiskTolerance, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CriteriaWeights(); ok {
		_spec.SetField(subscriber.FieldCriteriaWeights, field.TypeJSON, value)
	}
	if _u.mutation.CriteriaWeightsCleared() {
		_spec.ClearField(subscriber.FieldCriteriaWeights, field.TypeJSON)
	}
	if value, ok := _u.mutation.PolicyBlurbs(); ok {
		_spec.SetField(subscriber.FieldPolicyBlurbs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPolicyBlurbs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subscriber.FieldPolicyBlurbs, value)
		})
	}
	if _u.mutation.PolicyBlurbsCleared() {
		_spec.ClearField(subscriber.FieldPolicyBlurbs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(subscriber.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ActiveUntil(); ok {
		_spec.SetField(subscriber.FieldActiveUntil, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subscriber.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Subscriber{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscriber.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
