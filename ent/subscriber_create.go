// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/govwatcher/govwatcher/ent/subscriber"
)

// SubscriberCreate is the builder for creating a Subscriber entity.
type SubscriberCreate struct {
	config
	mutation *SubscriberMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAddress sets the "address" field.
func (_c *SubscriberCreate) SetAddress(v string) *SubscriberCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetChains sets the "chains" field.
func (_c *SubscriberCreate) SetChains(v []string) *SubscriberCreate {
	_c.mutation.SetChains(v)
	return _c
}

// SetRiskTolerance sets the "risk_tolerance" field.
func (_c *SubscriberCreate) SetRiskTolerance(v subscriber.RiskTolerance) *SubscriberCreate {
	_c.mutation.SetRiskTolerance(v)
	return _c
}

// SetNillableRiskTolerance sets the "risk_tolerance" field if the given value is not nil.
func (_c *SubscriberCreate) SetNillableRiskTolerance(v *subscriber.RiskTolerance) *SubscriberCreate {
	if v != nil {
		_c.SetRiskTolerance(*v)
	}
	return _c
}

// SetCriteriaWeights sets the "criteria_weights" field.
func (_c *SubscriberCreate) SetCriteriaWeights(v map[string]float64) *SubscriberCreate {
	_c.mutation.SetCriteriaWeights(v)
	return _c
}

// SetPolicyBlurbs sets the "policy_blurbs" field.
func (_c *SubscriberCreate) SetPolicyBlurbs(v []string) *SubscriberCreate {
	_c.mutation.SetPolicyBlurbs(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *SubscriberCreate) SetActive(v bool) *SubscriberCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *SubscriberCreate) SetNillableActive(v *bool) *SubscriberCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetActiveUntil sets the "active_until" field.
func (_c *SubscriberCreate) SetActiveUntil(v time.Time) *SubscriberCreate {
	_c.mutation.SetActiveUntil(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubscriberCreate) SetCreatedAt(v time.Time) *SubscriberCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubscriberCreate) SetNillableCreatedAt(v *time.Time) *SubscriberCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubscriberCreate) SetUpdatedAt(v time.Time) *SubscriberCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubscriberCreate) SetNillableUpdatedAt(v *time.Time) *SubscriberCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubscriberCreate) SetID(v string) *SubscriberCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SubscriberMutation object of the builder.
func (_c *SubscriberCreate) Mutation() *SubscriberMutation {
	return _c.mutation
}

// Save creates the Subscriber in the database.
func (_c *SubscriberCreate) Save(ctx context.Context) (*Subscriber, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubscriberCreate) SaveX(ctx context.Context) *Subscriber {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubscriberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubscriberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubscriberCreate) defaults() {
	if _, ok := _c.mutation.RiskTolerance(); !ok {
		v := subscriber.DefaultRiskTolerance
		_c.mutation.SetRiskTolerance(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := subscriber.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subscriber.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subscriber.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubscriberCreate) check() error {
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`ent: missing required field "Subscriber.address"`)}
	}
	if _, ok := _c.mutation.Chains(); !ok {
		return &ValidationError{Name: "chains", err: errors.New(`ent: missing required field "Subscriber.chains"`)}
	}
	if _, ok := _c.mutation.RiskTolerance(); !ok {
		return &ValidationError{Name: "risk_tolerance", err: errors.New(`ent: missing required field "Subscriber.risk_tolerance"`)}
	}
	if v, ok := _c.mutation.RiskTolerance(); ok {
		if err := subscriber.RiskToleranceValidator(v); err != nil {
			return &ValidationError{Name: "risk_tolerance", err: fmt.Errorf(`ent: validator failed for field "Subscriber.risk_tolerance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Subscriber.active"`)}
	}
	if _, ok := _c.mutation.ActiveUntil(); !ok {
		return &ValidationError{Name: "active_until", err: errors.New(`ent: missing required field "Subscriber.active_until"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Subscriber.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Subscriber.updated_at"`)}
	}
	return nil
}

func (_c *SubscriberCreate) sqlSave(ctx context.Context) (*Subscriber, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Subscriber.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubscriberCreate) createSpec() (*Subscriber, *sqlgraph.CreateSpec) {
	var (
		_node = &Subscriber{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subscriber.Table, sqlgraph.NewFieldSpec(subscriber.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(subscriber.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Chains(); ok {
		_spec.SetField(subscriber.FieldChains, field.TypeJSON, value)
		_node.Chains = value
	}
	if value, ok := _c.mutation.RiskTolerance(); ok {
		_spec.SetField(subscriber.FieldRiskTolerance, field.TypeEnum, value)
		_node.RiskTolerance = value
	}
	if value, ok := _c.mutation.CriteriaWeights(); ok {
		_spec.SetField(subscriber.FieldCriteriaWeights, field.TypeJSON, value)
		_node.CriteriaWeights = value
	}
	if value, ok := _c.mutation.PolicyBlurbs(); ok {
		_spec.SetField(subscriber.FieldPolicyBlurbs, field.TypeJSON, value)
		_node.PolicyBlurbs = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(subscriber.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.ActiveUntil(); ok {
		_spec.SetField(subscriber.FieldActiveUntil, field.TypeTime, value)
		_node.ActiveUntil = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subscriber.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subscriber.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Subscriber.Create().
//		SetAddress(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubscriberUpsert) {
//			SetAddress(v+v).
//		}).
//		Exec(ctx)
func (_c *SubscriberCreate) OnConflict(opts ...sql.ConflictOption) *SubscriberUpsertOne {
	_c.conflict = opts
	return &SubscriberUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Subscriber.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubscriberCreate) OnConflictColumns(columns ...string) *SubscriberUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubscriberUpsertOne{
		create: _c,
	}
}

type (
	// SubscriberUpsertOne is the builder for "upsert"-ing
	//  one Subscriber node.
	SubscriberUpsertOne struct {
		create *SubscriberCreate
	}

	// SubscriberUpsert is the "OnConflict" setter.
	SubscriberUpsert struct {
		*sql.UpdateSet
	}
)

// SetAddress sets the "address" field.
func (u *SubscriberUpsert) SetAddress(v string) *SubscriberUpsert {
	u.Set(subscriber.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *SubscriberUpsert) UpdateAddress() *SubscriberUpsert {
	u.SetExcluded(subscriber.FieldAddress)
	return u
}

// SetChains sets the "chains" field.
func (u *SubscriberUpsert) SetChains(v []string) *SubscriberUpsert {
	u.Set(subscriber.FieldChains, v)
	return u
}

// UpdateChains sets the "chains" field to the value that was provided on create.
func (u *SubscriberUpsert) UpdateChains() *SubscriberUpsert {
	u.SetExcluded(subscriber.FieldChains)
	return u
}

// SetRiskTolerance sets the "risk_tolerance" field.
func (u *SubscriberUpsert) SetRiskTolerance(v subscriber.RiskTolerance) *SubscriberUpsert {
	u.Set(subscriber.FieldRiskTolerance, v)
	return u
}

// UpdateRiskTolerance sets the "risk_tolerance" field to the value that was provided on create.
func (u *SubscriberUpsert) UpdateRiskTolerance() *SubscriberUpsert {
	u.SetExcluded(subscriber.FieldRiskTolerance)
	return u
}

// SetCriteriaWeights sets the "criteria_weights" field.
func (u *SubscriberUpsert) SetCriteriaWeights(v map[string]float64) *SubscriberUpsert {
	u.Set(subscriber.FieldCriteriaWeights, v)
	return u
}

// UpdateCriteriaWeights sets the "criteria_weights" field to the value that was provided on create.
func (u *SubscriberUpsert) UpdateCriteriaWeights() *SubscriberUpsert {
	u.SetExcluded(subscriber.FieldCriteriaWeights)
	return u
}

// ClearCriteriaWeights clears the value of the "criteria_weights" field.
func (u *SubscriberUpsert) ClearCriteriaWeights() *SubscriberUpsert {
	u.SetNull(subscriber.FieldCriteriaWeights)
	return u
}

// SetPolicyBlurbs sets the "policy_blurbs" field.
func (u *SubscriberUpsert) SetPolicyBlurbs(v []string) *SubscriberUpsert {
	u.Set(subscriber.FieldPolicyBlurbs, v)
	return u
}

// UpdatePolicyBlurbs sets the "policy_blurbs" field to the value that was provided on create.
func (u *SubscriberUpsert) UpdatePolicyBlurbs() *SubscriberUpsert {
	u.SetExcluded(subscriber.FieldPolicyBlurbs)
	return u
}

// ClearPolicyBlurbs clears the value of the "policy_blurbs" field.
func (u *SubscriberUpsert) ClearPolicyBlurbs() *SubscriberUpsert {
	u.SetNull(subscriber.FieldPolicyBlurbs)
	return u
}

// SetActive sets the "active" field.
func (u *SubscriberUpsert) SetActive(v bool) *SubscriberUpsert {
	u.Set(subscriber.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *SubscriberUpsert) UpdateActive() *SubscriberUpsert {
	u.SetExcluded(subscriber.FieldActive)
	return u
}

// SetActiveUntil sets the "active_until" field.
func (u *SubscriberUpsert) SetActiveUntil(v time.Time) *SubscriberUpsert {
	u.Set(subscriber.FieldActiveUntil, v)
	return u
}

// UpdateActiveUntil sets the "active_until" field to the value that was provided on create.
func (u *SubscriberUpsert) UpdateActiveUntil() *SubscriberUpsert {
	u.SetExcluded(subscriber.FieldActiveUntil)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubscriberUpsert) SetUpdatedAt(v time.Time) *SubscriberUpsert {
	u.Set(subscriber.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubscriberUpsert) UpdateUpdatedAt() *SubscriberUpsert {
	u.SetExcluded(subscriber.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Subscriber.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(subscriber.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubscriberUpsertOne) UpdateNewValues() *SubscriberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(subscriber.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(subscriber.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Subscriber.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubscriberUpsertOne) Ignore() *SubscriberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubscriberUpsertOne) DoNothing() *SubscriberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubscriberCreate.OnConflict
// documentation for more info.
func (u *SubscriberUpsertOne) Update(set func(*SubscriberUpsert)) *SubscriberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubscriberUpsert{UpdateSet: update})
	}))
	return u
}

// SetAddress sets the "address" field.
func (u *SubscriberUpsertOne) SetAddress(v string) *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *SubscriberUpsertOne) UpdateAddress() *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateAddress()
	})
}

// SetChains sets the "chains" field.
func (u *SubscriberUpsertOne) SetChains(v []string) *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetChains(v)
	})
}

// UpdateChains sets the "chains" field to the value that was provided on create.
func (u *SubscriberUpsertOne) UpdateChains() *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateChains()
	})
}

// SetRiskTolerance sets the "risk_tolerance" field.
func (u *SubscriberUpsertOne) SetRiskTolerance(v subscriber.RiskTolerance) *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetRiskTolerance(v)
	})
}

// UpdateRiskTolerance sets the "risk_tolerance" field to the value that was provided on create.
func (u *SubscriberUpsertOne) UpdateRiskTolerance() *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateRiskTolerance()
	})
}

// SetCriteriaWeights sets the "criteria_weights" field.
func (u *SubscriberUpsertOne) SetCriteriaWeights(v map[string]float64) *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetCriteriaWeights(v)
	})
}

// UpdateCriteriaWeights sets the "criteria_weights" field to the value that was provided on create.
func (u *SubscriberUpsertOne) UpdateCriteriaWeights() *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateCriteriaWeights()
	})
}

// ClearCriteriaWeights clears the value of the "criteria_weights" field.
func (u *SubscriberUpsertOne) ClearCriteriaWeights() *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.ClearCriteriaWeights()
	})
}

// SetPolicyBlurbs sets the "policy_blurbs" field.
func (u *SubscriberUpsertOne) SetPolicyBlurbs(v []string) *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetPolicyBlurbs(v)
	})
}

// UpdatePolicyBlurbs sets the "policy_blurbs" field to the value that was provided on create.
func (u *SubscriberUpsertOne) UpdatePolicyBlurbs() *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdatePolicyBlurbs()
	})
}

// ClearPolicyBlurbs clears the value of the "policy_blurbs" field.
func (u *SubscriberUpsertOne) ClearPolicyBlurbs() *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.ClearPolicyBlurbs()
	})
}

// SetActive sets the "active" field.
func (u *SubscriberUpsertOne) SetActive(v bool) *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *SubscriberUpsertOne) UpdateActive() *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateActive()
	})
}

// SetActiveUntil sets the "active_until" field.
func (u *SubscriberUpsertOne) SetActiveUntil(v time.Time) *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetActiveUntil(v)
	})
}

// UpdateActiveUntil sets the "active_until" field to the value that was provided on create.
func (u *SubscriberUpsertOne) UpdateActiveUntil() *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateActiveUntil()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubscriberUpsertOne) SetUpdatedAt(v time.Time) *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubscriberUpsertOne) UpdateUpdatedAt() *SubscriberUpsertOne {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SubscriberUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubscriberCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubscriberUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubscriberUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SubscriberUpsertOne.ID is not supported by MySQL driver. Use SubscriberUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubscriberUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubscriberCreateBulk is the builder for creating many Subscriber entities in bulk.
type SubscriberCreateBulk struct {
	config
	err      error
	builders []*SubscriberCreate
	conflict []sql.ConflictOption
}

// Save creates the Subscriber entities in the database.
func (_c *SubscriberCreateBulk) Save(ctx context.Context) ([]*Subscriber, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subscriber, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubscriberMutation)
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
func (_c *SubscriberCreateBulk) SaveX(ctx context.Context) []*Subscriber {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubscriberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubscriberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Subscriber.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubscriberUpsert) {
//			SetAddress(v+v).
//		}).
//		Exec(ctx)
func (_c *SubscriberCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubscriberUpsertBulk {
	_c.conflict = opts
	return &SubscriberUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Subscriber.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubscriberCreateBulk) OnConflictColumns(columns ...string) *SubscriberUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubscriberUpsertBulk{
		create: _c,
	}
}

// SubscriberUpsertBulk is the builder for "upsert"-ing
// a bulk of Subscriber nodes.
type SubscriberUpsertBulk struct {
	create *SubscriberCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Subscriber.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(subscriber.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubscriberUpsertBulk) UpdateNewValues() *SubscriberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(subscriber.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(subscriber.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Subscriber.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubscriberUpsertBulk) Ignore() *SubscriberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubscriberUpsertBulk) DoNothing() *SubscriberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubscriberCreateBulk.OnConflict
// documentation for more info.
func (u *SubscriberUpsertBulk) Update(set func(*SubscriberUpsert)) *SubscriberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubscriberUpsert{UpdateSet: update})
	}))
	return u
}

// SetAddress sets the "address" field.
func (u *SubscriberUpsertBulk) SetAddress(v string) *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *SubscriberUpsertBulk) UpdateAddress() *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateAddress()
	})
}

// SetChains sets the "chains" field.
func (u *SubscriberUpsertBulk) SetChains(v []string) *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetChains(v)
	})
}

// UpdateChains sets the "chains" field to the value that was provided on create.
func (u *SubscriberUpsertBulk) UpdateChains() *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateChains()
	})
}

// SetRiskTolerance sets the "risk_tolerance" field.
func (u *SubscriberUpsertBulk) SetRiskTolerance(v subscriber.RiskTolerance) *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetRiskTolerance(v)
	})
}

// UpdateRiskTolerance sets the "risk_tolerance" field to the value that was provided on create.
func (u *SubscriberUpsertBulk) UpdateRiskTolerance() *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateRiskTolerance()
	})
}

// SetCriteriaWeights sets the "criteria_weights" field.
func (u *SubscriberUpsertBulk) SetCriteriaWeights(v map[string]float64) *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetCriteriaWeights(v)
	})
}

// UpdateCriteriaWeights sets the "criteria_weights" field to the value that was provided on create.
func (u *SubscriberUpsertBulk) UpdateCriteriaWeights() *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateCriteriaWeights()
	})
}

// ClearCriteriaWeights clears the value of the "criteria_weights" field.
func (u *SubscriberUpsertBulk) ClearCriteriaWeights() *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.ClearCriteriaWeights()
	})
}

// SetPolicyBlurbs sets the "policy_blurbs" field.
func (u *SubscriberUpsertBulk) SetPolicyBlurbs(v []string) *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetPolicyBlurbs(v)
	})
}

// UpdatePolicyBlurbs sets the "policy_blurbs" field to the value that was provided on create.
func (u *SubscriberUpsertBulk) UpdatePolicyBlurbs() *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdatePolicyBlurbs()
	})
}

// ClearPolicyBlurbs clears the value of the "policy_blurbs" field.
func (u *SubscriberUpsertBulk) ClearPolicyBlurbs() *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.ClearPolicyBlurbs()
	})
}

// SetActive sets the "active" field.
func (u *SubscriberUpsertBulk) SetActive(v bool) *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *SubscriberUpsertBulk) UpdateActive() *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateActive()
	})
}

// SetActiveUntil sets the "active_until" field.
func (u *SubscriberUpsertBulk) SetActiveUntil(v time.Time) *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetActiveUntil(v)
	})
}

// UpdateActiveUntil sets the "active_until" field to the value that was provided on create.
func (u *SubscriberUpsertBulk) UpdateActiveUntil() *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateActiveUntil()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubscriberUpsertBulk) SetUpdatedAt(v time.Time) *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubscriberUpsertBulk) UpdateUpdatedAt() *SubscriberUpsertBulk {
	return u.Update(func(s *SubscriberUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SubscriberUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubscriberCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubscriberCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubscriberUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
