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
	"github.com/govwatcher/govwatcher/ent/chaincursor"
)

// ChainCursorCreate is the builder for creating a ChainCursor entity.
type ChainCursorCreate struct {
	config
	mutation *ChainCursorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetHighestSeen sets the "highest_seen" field.
func (_c *ChainCursorCreate) SetHighestSeen(v int64) *ChainCursorCreate {
	_c.mutation.SetHighestSeen(v)
	return _c
}

// SetNillableHighestSeen sets the "highest_seen" field if the given value is not nil.
func (_c *ChainCursorCreate) SetNillableHighestSeen(v *int64) *ChainCursorCreate {
	if v != nil {
		_c.SetHighestSeen(*v)
	}
	return _c
}

// SetTracked sets the "tracked" field.
func (_c *ChainCursorCreate) SetTracked(v []int64) *ChainCursorCreate {
	_c.mutation.SetTracked(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChainCursorCreate) SetUpdatedAt(v time.Time) *ChainCursorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChainCursorCreate) SetNillableUpdatedAt(v *time.Time) *ChainCursorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChainCursorCreate) SetID(v string) *ChainCursorCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChainCursorMutation object of the builder.
func (_c *ChainCursorCreate) Mutation() *ChainCursorMutation {
	return _c.mutation
}

// Save creates the ChainCursor in the database.
func (_c *ChainCursorCreate) Save(ctx context.Context) (*ChainCursor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChainCursorCreate) SaveX(ctx context.Context) *ChainCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChainCursorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChainCursorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChainCursorCreate) defaults() {
	if _, ok := _c.mutation.HighestSeen(); !ok {
		v := chaincursor.DefaultHighestSeen
		_c.mutation.SetHighestSeen(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chaincursor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChainCursorCreate) check() error {
	if _, ok := _c.mutation.HighestSeen(); !ok {
		return &ValidationError{Name: "highest_seen", err: errors.New(`ent: missing required field "ChainCursor.highest_seen"`)}
	}
	if v, ok := _c.mutation.HighestSeen(); ok {
		if err := chaincursor.HighestSeenValidator(v); err != nil {
			return &ValidationError{Name: "highest_seen", err: fmt.Errorf(`ent: validator failed for field "ChainCursor.highest_seen": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChainCursor.updated_at"`)}
	}
	return nil
}

func (_c *ChainCursorCreate) sqlSave(ctx context.Context) (*ChainCursor, error) {
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
			return nil, fmt.Errorf("unexpected ChainCursor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChainCursorCreate) createSpec() (*ChainCursor, *sqlgraph.CreateSpec) {
	var (
		_node = &ChainCursor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chaincursor.Table, sqlgraph.NewFieldSpec(chaincursor.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.HighestSeen(); ok {
		_spec.SetField(chaincursor.FieldHighestSeen, field.TypeInt64, value)
		_node.HighestSeen = value
	}
	if value, ok := _c.mutation.Tracked(); ok {
		_spec.SetField(chaincursor.FieldTracked, field.TypeJSON, value)
		_node.Tracked = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chaincursor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChainCursor.Create().
//		SetHighestSeen(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChainCursorUpsert) {
//			SetHighestSeen(v+v).
//		}).
//		Exec(ctx)
func (_c *ChainCursorCreate) OnConflict(opts ...sql.ConflictOption) *ChainCursorUpsertOne {
	_c.conflict = opts
	return &ChainCursorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChainCursor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChainCursorCreate) OnConflictColumns(columns ...string) *ChainCursorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChainCursorUpsertOne{
		create: _c,
	}
}

type (
	// ChainCursorUpsertOne is the builder for "upsert"-ing
	//  one ChainCursor node.
	ChainCursorUpsertOne struct {
		create *ChainCursorCreate
	}

	// ChainCursorUpsert is the "OnConflict" setter.
	ChainCursorUpsert struct {
		*sql.UpdateSet
	}
)

// SetHighestSeen sets the "highest_seen" field.
func (u *ChainCursorUpsert) SetHighestSeen(v int64) *ChainCursorUpsert {
	u.Set(chaincursor.FieldHighestSeen, v)
	return u
}

// UpdateHighestSeen sets the "highest_seen" field to the value that was provided on create.
func (u *ChainCursorUpsert) UpdateHighestSeen() *ChainCursorUpsert {
	u.SetExcluded(chaincursor.FieldHighestSeen)
	return u
}

// AddHighestSeen adds v to the "highest_seen" field.
func (u *ChainCursorUpsert) AddHighestSeen(v int64) *ChainCursorUpsert {
	u.Add(chaincursor.FieldHighestSeen, v)
	return u
}

// SetTracked sets the "tracked" field.
func (u *ChainCursorUpsert) SetTracked(v []int64) *ChainCursorUpsert {
	u.Set(chaincursor.FieldTracked, v)
	return u
}

// UpdateTracked sets the "tracked" field to the value that was provided on create.
func (u *ChainCursorUpsert) UpdateTracked() *ChainCursorUpsert {
	u.SetExcluded(chaincursor.FieldTracked)
	return u
}

// ClearTracked clears the value of the "tracked" field.
func (u *ChainCursorUpsert) ClearTracked() *ChainCursorUpsert {
	u.SetNull(chaincursor.FieldTracked)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChainCursorUpsert) SetUpdatedAt(v time.Time) *ChainCursorUpsert {
	u.Set(chaincursor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChainCursorUpsert) UpdateUpdatedAt() *ChainCursorUpsert {
	u.SetExcluded(chaincursor.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ChainCursor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chaincursor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChainCursorUpsertOne) UpdateNewValues() *ChainCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chaincursor.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChainCursor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChainCursorUpsertOne) Ignore() *ChainCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChainCursorUpsertOne) DoNothing() *ChainCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChainCursorCreate.OnConflict
// documentation for more info.
func (u *ChainCursorUpsertOne) Update(set func(*ChainCursorUpsert)) *ChainCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChainCursorUpsert{UpdateSet: update})
	}))
	return u
}

// SetHighestSeen sets the "highest_seen" field.
func (u *ChainCursorUpsertOne) SetHighestSeen(v int64) *ChainCursorUpsertOne {
	return u.Update(func(s *ChainCursorUpsert) {
		s.SetHighestSeen(v)
	})
}

// AddHighestSeen adds v to the "highest_seen" field.
func (u *ChainCursorUpsertOne) AddHighestSeen(v int64) *ChainCursorUpsertOne {
	return u.Update(func(s *ChainCursorUpsert) {
		s.AddHighestSeen(v)
	})
}

// UpdateHighestSeen sets the "highest_seen" field to the value that was provided on create.
func (u *ChainCursorUpsertOne) UpdateHighestSeen() *ChainCursorUpsertOne {
	return u.Update(func(s *ChainCursorUpsert) {
		s.UpdateHighestSeen()
	})
}

// SetTracked sets the "tracked" field.
func (u *ChainCursorUpsertOne) SetTracked(v []int64) *ChainCursorUpsertOne {
	return u.Update(func(s *ChainCursorUpsert) {
		s.SetTracked(v)
	})
}

// UpdateTracked sets the "tracked" field to the value that was provided on create.
func (u *ChainCursorUpsertOne) UpdateTracked() *ChainCursorUpsertOne {
	return u.Update(func(s *ChainCursorUpsert) {
		s.UpdateTracked()
	})
}

// ClearTracked clears the value of the "tracked" field.
func (u *ChainCursorUpsertOne) ClearTracked() *ChainCursorUpsertOne {
	return u.Update(func(s *ChainCursorUpsert) {
		s.ClearTracked()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChainCursorUpsertOne) SetUpdatedAt(v time.Time) *ChainCursorUpsertOne {
	return u.Update(func(s *ChainCursorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChainCursorUpsertOne) UpdateUpdatedAt() *ChainCursorUpsertOne {
	return u.Update(func(s *ChainCursorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChainCursorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChainCursorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChainCursorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChainCursorUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChainCursorUpsertOne.ID is not supported by MySQL driver. Use ChainCursorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChainCursorUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChainCursorCreateBulk is the builder for creating many ChainCursor entities in bulk.
type ChainCursorCreateBulk struct {
	config
	err      error
	builders []*ChainCursorCreate
	conflict []sql.ConflictOption
}

// Save creates the ChainCursor entities in the database.
func (_c *ChainCursorCreateBulk) Save(ctx context.Context) ([]*ChainCursor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChainCursor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChainCursorMutation)
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
func (_c *ChainCursorCreateBulk) SaveX(ctx context.Context) []*ChainCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChainCursorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChainCursorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChainCursor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChainCursorUpsert) {
//			SetHighestSeen(v+v).
//		}).
//		Exec(ctx)
func (_c *ChainCursorCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChainCursorUpsertBulk {
	_c.conflict = opts
	return &ChainCursorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChainCursor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChainCursorCreateBulk) OnConflictColumns(columns ...string) *ChainCursorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChainCursorUpsertBulk{
		create: _c,
	}
}

// ChainCursorUpsertBulk is the builder for "upsert"-ing
// a bulk of ChainCursor nodes.
type ChainCursorUpsertBulk struct {
	create *ChainCursorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChainCursor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chaincursor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChainCursorUpsertBulk) UpdateNewValues() *ChainCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chaincursor.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChainCursor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChainCursorUpsertBulk) Ignore() *ChainCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChainCursorUpsertBulk) DoNothing() *ChainCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChainCursorCreateBulk.OnConflict
// documentation for more info.
func (u *ChainCursorUpsertBulk) Update(set func(*ChainCursorUpsert)) *ChainCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChainCursorUpsert{UpdateSet: update})
	}))
	return u
}

// SetHighestSeen sets the "highest_seen" field.
func (u *ChainCursorUpsertBulk) SetHighestSeen(v int64) *ChainCursorUpsertBulk {
	return u.Update(func(s *ChainCursorUpsert) {
		s.SetHighestSeen(v)
	})
}

// AddHighestSeen adds v to the "highest_seen" field.
func (u *ChainCursorUpsertBulk) AddHighestSeen(v int64) *ChainCursorUpsertBulk {
	return u.Update(func(s *ChainCursorUpsert) {
		s.AddHighestSeen(v)
	})
}

// UpdateHighestSeen sets the "highest_seen" field to the value that was provided on create.
func (u *ChainCursorUpsertBulk) UpdateHighestSeen() *ChainCursorUpsertBulk {
	return u.Update(func(s *ChainCursorUpsert) {
		s.UpdateHighestSeen()
	})
}

// SetTracked sets the "tracked" field.
func (u *ChainCursorUpsertBulk) SetTracked(v []int64) *ChainCursorUpsertBulk {
	return u.Update(func(s *ChainCursorUpsert) {
		s.SetTracked(v)
	})
}

// UpdateTracked sets the "tracked" field to the value that was provided on create.
func (u *ChainCursorUpsertBulk) UpdateTracked() *ChainCursorUpsertBulk {
	return u.Update(func(s *ChainCursorUpsert) {
		s.UpdateTracked()
	})
}

// ClearTracked clears the value of the "tracked" field.
func (u *ChainCursorUpsertBulk) ClearTracked() *ChainCursorUpsertBulk {
	return u.Update(func(s *ChainCursorUpsert) {
		s.ClearTracked()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChainCursorUpsertBulk) SetUpdatedAt(v time.Time) *ChainCursorUpsertBulk {
	return u.Update(func(s *ChainCursorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChainCursorUpsertBulk) UpdateUpdatedAt() *ChainCursorUpsertBulk {
	return u.Update(func(s *ChainCursorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChainCursorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChainCursorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChainCursorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChainCursorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
