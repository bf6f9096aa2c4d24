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
	"github.com/govwatcher/govwatcher/ent/deliverymark"
)

// DeliveryMarkCreate is the builder for creating a DeliveryMark entity.
type DeliveryMarkCreate struct {
	config
	mutation *DeliveryMarkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChainID sets the "chain_id" field.
func (_c *DeliveryMarkCreate) SetChainID(v string) *DeliveryMarkCreate {
	_c.mutation.SetChainID(v)
	return _c
}

// SetProposalID sets the "proposal_id" field.
func (_c *DeliveryMarkCreate) SetProposalID(v int64) *DeliveryMarkCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetSubscriberID sets the "subscriber_id" field.
func (_c *DeliveryMarkCreate) SetSubscriberID(v string) *DeliveryMarkCreate {
	_c.mutation.SetSubscriberID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *DeliveryMarkCreate) SetMessageID(v string) *DeliveryMarkCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *DeliveryMarkCreate) SetNillableMessageID(v *string) *DeliveryMarkCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *DeliveryMarkCreate) SetSentAt(v time.Time) *DeliveryMarkCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *DeliveryMarkCreate) SetNillableSentAt(v *time.Time) *DeliveryMarkCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeliveryMarkCreate) SetID(v string) *DeliveryMarkCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DeliveryMarkMutation object of the builder.
func (_c *DeliveryMarkCreate) Mutation() *DeliveryMarkMutation {
	return _c.mutation
}

// Save creates the DeliveryMark in the database.
func (_c *DeliveryMarkCreate) Save(ctx context.Context) (*DeliveryMark, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeliveryMarkCreate) SaveX(ctx context.Context) *DeliveryMark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryMarkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryMarkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeliveryMarkCreate) defaults() {
	if _, ok := _c.mutation.SentAt(); !ok {
		v := deliverymark.DefaultSentAt()
		_c.mutation.SetSentAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeliveryMarkCreate) check() error {
	if _, ok := _c.mutation.ChainID(); !ok {
		return &ValidationError{Name: "chain_id", err: errors.New(`ent: missing required field "DeliveryMark.chain_id"`)}
	}
	if _, ok := _c.mutation.ProposalID(); !ok {
		return &ValidationError{Name: "proposal_id", err: errors.New(`ent: missing required field "DeliveryMark.proposal_id"`)}
	}
	if _, ok := _c.mutation.SubscriberID(); !ok {
		return &ValidationError{Name: "subscriber_id", err: errors.New(`ent: missing required field "DeliveryMark.subscriber_id"`)}
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		return &ValidationError{Name: "sent_at", err: errors.New(`ent: missing required field "DeliveryMark.sent_at"`)}
	}
	return nil
}

func (_c *DeliveryMarkCreate) sqlSave(ctx context.Context) (*DeliveryMark, error) {
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
			return nil, fmt.Errorf("unexpected DeliveryMark.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeliveryMarkCreate) createSpec() (*DeliveryMark, *sqlgraph.CreateSpec) {
	var (
		_node = &DeliveryMark{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deliverymark.Table, sqlgraph.NewFieldSpec(deliverymark.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChainID(); ok {
		_spec.SetField(deliverymark.FieldChainID, field.TypeString, value)
		_node.ChainID = value
	}
	if value, ok := _c.mutation.ProposalID(); ok {
		_spec.SetField(deliverymark.FieldProposalID, field.TypeInt64, value)
		_node.ProposalID = value
	}
	if value, ok := _c.mutation.SubscriberID(); ok {
		_spec.SetField(deliverymark.FieldSubscriberID, field.TypeString, value)
		_node.SubscriberID = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(deliverymark.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(deliverymark.FieldSentAt, field.TypeTime, value)
		_node.SentAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeliveryMark.Create().
//		SetChainID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeliveryMarkUpsert) {
//			SetChainID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeliveryMarkCreate) OnConflict(opts ...sql.ConflictOption) *DeliveryMarkUpsertOne {
	_c.conflict = opts
	return &DeliveryMarkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeliveryMark.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeliveryMarkCreate) OnConflictColumns(columns ...string) *DeliveryMarkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeliveryMarkUpsertOne{
		create: _c,
	}
}

type (
	// DeliveryMarkUpsertOne is the builder for "upsert"-ing
	//  one DeliveryMark node.
	DeliveryMarkUpsertOne struct {
		create *DeliveryMarkCreate
	}

	// DeliveryMarkUpsert is the "OnConflict" setter.
	DeliveryMarkUpsert struct {
		*sql.UpdateSet
	}
)

// SetMessageID sets the "message_id" field.
func (u *DeliveryMarkUpsert) SetMessageID(v string) *DeliveryMarkUpsert {
	u.Set(deliverymark.FieldMessageID, v)
	return u
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *DeliveryMarkUpsert) UpdateMessageID() *DeliveryMarkUpsert {
	u.SetExcluded(deliverymark.FieldMessageID)
	return u
}

// ClearMessageID clears the value of the "message_id" field.
func (u *DeliveryMarkUpsert) ClearMessageID() *DeliveryMarkUpsert {
	u.SetNull(deliverymark.FieldMessageID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DeliveryMark.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deliverymark.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeliveryMarkUpsertOne) UpdateNewValues() *DeliveryMarkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(deliverymark.FieldID)
		}
		if _, exists := u.create.mutation.ChainID(); exists {
			s.SetIgnore(deliverymark.FieldChainID)
		}
		if _, exists := u.create.mutation.ProposalID(); exists {
			s.SetIgnore(deliverymark.FieldProposalID)
		}
		if _, exists := u.create.mutation.SubscriberID(); exists {
			s.SetIgnore(deliverymark.FieldSubscriberID)
		}
		if _, exists := u.create.mutation.SentAt(); exists {
			s.SetIgnore(deliverymark.FieldSentAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeliveryMark.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DeliveryMarkUpsertOne) Ignore() *DeliveryMarkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeliveryMarkUpsertOne) DoNothing() *DeliveryMarkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeliveryMarkCreate.OnConflict
// documentation for more info.
func (u *DeliveryMarkUpsertOne) Update(set func(*DeliveryMarkUpsert)) *DeliveryMarkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeliveryMarkUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageID sets the "message_id" field.
func (u *DeliveryMarkUpsertOne) SetMessageID(v string) *DeliveryMarkUpsertOne {
	return u.Update(func(s *DeliveryMarkUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *DeliveryMarkUpsertOne) UpdateMessageID() *DeliveryMarkUpsertOne {
	return u.Update(func(s *DeliveryMarkUpsert) {
		s.UpdateMessageID()
	})
}

// ClearMessageID clears the value of the "message_id" field.
func (u *DeliveryMarkUpsertOne) ClearMessageID() *DeliveryMarkUpsertOne {
	return u.Update(func(s *DeliveryMarkUpsert) {
		s.ClearMessageID()
	})
}

// Exec executes the query.
func (u *DeliveryMarkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeliveryMarkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeliveryMarkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DeliveryMarkUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DeliveryMarkUpsertOne.ID is not supported by MySQL driver. Use DeliveryMarkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DeliveryMarkUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DeliveryMarkCreateBulk is the builder for creating many DeliveryMark entities in bulk.
type DeliveryMarkCreateBulk struct {
	config
	err      error
	builders []*DeliveryMarkCreate
	conflict []sql.ConflictOption
}

// Save creates the DeliveryMark entities in the database.
func (_c *DeliveryMarkCreateBulk) Save(ctx context.Context) ([]*DeliveryMark, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeliveryMark, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeliveryMarkMutation)
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
func (_c *DeliveryMarkCreateBulk) SaveX(ctx context.Context) []*DeliveryMark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryMarkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryMarkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeliveryMark.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeliveryMarkUpsert) {
//			SetChainID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeliveryMarkCreateBulk) OnConflict(opts ...sql.ConflictOption) *DeliveryMarkUpsertBulk {
	_c.conflict = opts
	return &DeliveryMarkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeliveryMark.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeliveryMarkCreateBulk) OnConflictColumns(columns ...string) *DeliveryMarkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeliveryMarkUpsertBulk{
		create: _c,
	}
}

// DeliveryMarkUpsertBulk is the builder for "upsert"-ing
// a bulk of DeliveryMark nodes.
type DeliveryMarkUpsertBulk struct {
	create *DeliveryMarkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DeliveryMark.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deliverymark.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeliveryMarkUpsertBulk) UpdateNewValues() *DeliveryMarkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(deliverymark.FieldID)
			}
			if _, exists := b.mutation.ChainID(); exists {
				s.SetIgnore(deliverymark.FieldChainID)
			}
			if _, exists := b.mutation.ProposalID(); exists {
				s.SetIgnore(deliverymark.FieldProposalID)
			}
			if _, exists := b.mutation.SubscriberID(); exists {
				s.SetIgnore(deliverymark.FieldSubscriberID)
			}
			if _, exists := b.mutation.SentAt(); exists {
				s.SetIgnore(deliverymark.FieldSentAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeliveryMark.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DeliveryMarkUpsertBulk) Ignore() *DeliveryMarkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeliveryMarkUpsertBulk) DoNothing() *DeliveryMarkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeliveryMarkCreateBulk.OnConflict
// documentation for more info.
func (u *DeliveryMarkUpsertBulk) Update(set func(*DeliveryMarkUpsert)) *DeliveryMarkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeliveryMarkUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageID sets the "message_id" field.
func (u *DeliveryMarkUpsertBulk) SetMessageID(v string) *DeliveryMarkUpsertBulk {
	return u.Update(func(s *DeliveryMarkUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *DeliveryMarkUpsertBulk) UpdateMessageID() *DeliveryMarkUpsertBulk {
	return u.Update(func(s *DeliveryMarkUpsert) {
		s.UpdateMessageID()
	})
}

// ClearMessageID clears the value of the "message_id" field.
func (u *DeliveryMarkUpsertBulk) ClearMessageID() *DeliveryMarkUpsertBulk {
	return u.Update(func(s *DeliveryMarkUpsert) {
		s.ClearMessageID()
	})
}

// Exec executes the query.
func (u *DeliveryMarkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DeliveryMarkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeliveryMarkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeliveryMarkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
