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
	"github.com/govwatcher/govwatcher/ent/proposal"
)

// ProposalCreate is the builder for creating a Proposal entity.
type ProposalCreate struct {
	config
	mutation *ProposalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChainID sets the "chain_id" field.
func (_c *ProposalCreate) SetChainID(v string) *ProposalCreate {
	_c.mutation.SetChainID(v)
	return _c
}

// SetProposalID sets the "proposal_id" field.
func (_c *ProposalCreate) SetProposalID(v int64) *ProposalCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ProposalCreate) SetTitle(v string) *ProposalCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ProposalCreate) SetDescription(v string) *ProposalCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProposalCreate) SetStatus(v proposal.Status) *ProposalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetProposalType sets the "proposal_type" field.
func (_c *ProposalCreate) SetProposalType(v string) *ProposalCreate {
	_c.mutation.SetProposalType(v)
	return _c
}

// SetNillableProposalType sets the "proposal_type" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableProposalType(v *string) *ProposalCreate {
	if v != nil {
		_c.SetProposalType(*v)
	}
	return _c
}

// SetProposer sets the "proposer" field.
func (_c *ProposalCreate) SetProposer(v string) *ProposalCreate {
	_c.mutation.SetProposer(v)
	return _c
}

// SetNillableProposer sets the "proposer" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableProposer(v *string) *ProposalCreate {
	if v != nil {
		_c.SetProposer(*v)
	}
	return _c
}

// SetSubmitTime sets the "submit_time" field.
func (_c *ProposalCreate) SetSubmitTime(v time.Time) *ProposalCreate {
	_c.mutation.SetSubmitTime(v)
	return _c
}

// SetNillableSubmitTime sets the "submit_time" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableSubmitTime(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetSubmitTime(*v)
	}
	return _c
}

// SetVotingStart sets the "voting_start" field.
func (_c *ProposalCreate) SetVotingStart(v time.Time) *ProposalCreate {
	_c.mutation.SetVotingStart(v)
	return _c
}

// SetNillableVotingStart sets the "voting_start" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableVotingStart(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetVotingStart(*v)
	}
	return _c
}

// SetVotingEnd sets the "voting_end" field.
func (_c *ProposalCreate) SetVotingEnd(v time.Time) *ProposalCreate {
	_c.mutation.SetVotingEnd(v)
	return _c
}

// SetNillableVotingEnd sets the "voting_end" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableVotingEnd(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetVotingEnd(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *ProposalCreate) SetFirstSeenAt(v time.Time) *ProposalCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableFirstSeenAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProposalCreate) SetUpdatedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableUpdatedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProposalCreate) SetID(v string) *ProposalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProposalMutation object of the builder.
func (_c *ProposalCreate) Mutation() *ProposalMutation {
	return _c.mutation
}

// Save creates the Proposal in the database.
func (_c *ProposalCreate) Save(ctx context.Context) (*Proposal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProposalCreate) SaveX(ctx context.Context) *Proposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProposalCreate) defaults() {
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := proposal.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := proposal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProposalCreate) check() error {
	if _, ok := _c.mutation.ChainID(); !ok {
		return &ValidationError{Name: "chain_id", err: errors.New(`ent: missing required field "Proposal.chain_id"`)}
	}
	if _, ok := _c.mutation.ProposalID(); !ok {
		return &ValidationError{Name: "proposal_id", err: errors.New(`ent: missing required field "Proposal.proposal_id"`)}
	}
	if v, ok := _c.mutation.ProposalID(); ok {
		if err := proposal.ProposalIDValidator(v); err != nil {
			return &ValidationError{Name: "proposal_id", err: fmt.Errorf(`ent: validator failed for field "Proposal.proposal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Proposal.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Proposal.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Proposal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "Proposal.first_seen_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Proposal.updated_at"`)}
	}
	return nil
}

func (_c *ProposalCreate) sqlSave(ctx context.Context) (*Proposal, error) {
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
			return nil, fmt.Errorf("unexpected Proposal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProposalCreate) createSpec() (*Proposal, *sqlgraph.CreateSpec) {
	var (
		_node = &Proposal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proposal.Table, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChainID(); ok {
		_spec.SetField(proposal.FieldChainID, field.TypeString, value)
		_node.ChainID = value
	}
	if value, ok := _c.mutation.ProposalID(); ok {
		_spec.SetField(proposal.FieldProposalID, field.TypeInt64, value)
		_node.ProposalID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(proposal.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(proposal.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProposalType(); ok {
		_spec.SetField(proposal.FieldProposalType, field.TypeString, value)
		_node.ProposalType = value
	}
	if value, ok := _c.mutation.Proposer(); ok {
		_spec.SetField(proposal.FieldProposer, field.TypeString, value)
		_node.Proposer = value
	}
	if value, ok := _c.mutation.SubmitTime(); ok {
		_spec.SetField(proposal.FieldSubmitTime, field.TypeTime, value)
		_node.SubmitTime = &value
	}
	if value, ok := _c.mutation.VotingStart(); ok {
		_spec.SetField(proposal.FieldVotingStart, field.TypeTime, value)
		_node.VotingStart = &value
	}
	if value, ok := _c.mutation.VotingEnd(); ok {
		_spec.SetField(proposal.FieldVotingEnd, field.TypeTime, value)
		_node.VotingEnd = &value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(proposal.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(proposal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Proposal.Create().
//		SetChainID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProposalUpsert) {
//			SetChainID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProposalCreate) OnConflict(opts ...sql.ConflictOption) *ProposalUpsertOne {
	_c.conflict = opts
	return &ProposalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProposalCreate) OnConflictColumns(columns ...string) *ProposalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProposalUpsertOne{
		create: _c,
	}
}

type (
	// ProposalUpsertOne is the builder for "upsert"-ing
	//  one Proposal node.
	ProposalUpsertOne struct {
		create *ProposalCreate
	}

	// ProposalUpsert is the "OnConflict" setter.
	ProposalUpsert struct {
		*sql.UpdateSet
	}
)

// SetChainID sets the "chain_id" field.
func (u *ProposalUpsert) SetChainID(v string) *ProposalUpsert {
	u.Set(proposal.FieldChainID, v)
	return u
}

// UpdateChainID sets the "chain_id" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateChainID() *ProposalUpsert {
	u.SetExcluded(proposal.FieldChainID)
	return u
}

// SetProposalID sets the "proposal_id" field.
func (u *ProposalUpsert) SetProposalID(v int64) *ProposalUpsert {
	u.Set(proposal.FieldProposalID, v)
	return u
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateProposalID() *ProposalUpsert {
	u.SetExcluded(proposal.FieldProposalID)
	return u
}

// AddProposalID adds v to the "proposal_id" field.
func (u *ProposalUpsert) AddProposalID(v int64) *ProposalUpsert {
	u.Add(proposal.FieldProposalID, v)
	return u
}

// SetTitle sets the "title" field.
func (u *ProposalUpsert) SetTitle(v string) *ProposalUpsert {
	u.Set(proposal.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateTitle() *ProposalUpsert {
	u.SetExcluded(proposal.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ProposalUpsert) SetDescription(v string) *ProposalUpsert {
	u.Set(proposal.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateDescription() *ProposalUpsert {
	u.SetExcluded(proposal.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *ProposalUpsert) SetStatus(v proposal.Status) *ProposalUpsert {
	u.Set(proposal.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateStatus() *ProposalUpsert {
	u.SetExcluded(proposal.FieldStatus)
	return u
}

// SetProposalType sets the "proposal_type" field.
func (u *ProposalUpsert) SetProposalType(v string) *ProposalUpsert {
	u.Set(proposal.FieldProposalType, v)
	return u
}

// UpdateProposalType sets the "proposal_type" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateProposalType() *ProposalUpsert {
	u.SetExcluded(proposal.FieldProposalType)
	return u
}

// ClearProposalType clears the value of the "proposal_type" field.
func (u *ProposalUpsert) ClearProposalType() *ProposalUpsert {
	u.SetNull(proposal.FieldProposalType)
	return u
}

// SetProposer sets the "proposer" field.
func (u *ProposalUpsert) SetProposer(v string) *ProposalUpsert {
	u.Set(proposal.FieldProposer, v)
	return u
}

// UpdateProposer sets the "proposer" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateProposer() *ProposalUpsert {
	u.SetExcluded(proposal.FieldProposer)
	return u
}

// ClearProposer clears the value of the "proposer" field.
func (u *ProposalUpsert) ClearProposer() *ProposalUpsert {
	u.SetNull(proposal.FieldProposer)
	return u
}

// SetSubmitTime sets the "submit_time" field.
func (u *ProposalUpsert) SetSubmitTime(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldSubmitTime, v)
	return u
}

// UpdateSubmitTime sets the "submit_time" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateSubmitTime() *ProposalUpsert {
	u.SetExcluded(proposal.FieldSubmitTime)
	return u
}

// ClearSubmitTime clears the value of the "submit_time" field.
func (u *ProposalUpsert) ClearSubmitTime() *ProposalUpsert {
	u.SetNull(proposal.FieldSubmitTime)
	return u
}

// SetVotingStart sets the "voting_start" field.
func (u *ProposalUpsert) SetVotingStart(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldVotingStart, v)
	return u
}

// UpdateVotingStart sets the "voting_start" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateVotingStart() *ProposalUpsert {
	u.SetExcluded(proposal.FieldVotingStart)
	return u
}

// ClearVotingStart clears the value of the "voting_start" field.
func (u *ProposalUpsert) ClearVotingStart() *ProposalUpsert {
	u.SetNull(proposal.FieldVotingStart)
	return u
}

// SetVotingEnd sets the "voting_end" field.
func (u *ProposalUpsert) SetVotingEnd(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldVotingEnd, v)
	return u
}

// UpdateVotingEnd sets the "voting_end" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateVotingEnd() *ProposalUpsert {
	u.SetExcluded(proposal.FieldVotingEnd)
	return u
}

// ClearVotingEnd clears the value of the "voting_end" field.
func (u *ProposalUpsert) ClearVotingEnd() *ProposalUpsert {
	u.SetNull(proposal.FieldVotingEnd)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProposalUpsert) SetUpdatedAt(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateUpdatedAt() *ProposalUpsert {
	u.SetExcluded(proposal.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(proposal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProposalUpsertOne) UpdateNewValues() *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(proposal.FieldID)
		}
		if _, exists := u.create.mutation.FirstSeenAt(); exists {
			s.SetIgnore(proposal.FieldFirstSeenAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Proposal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProposalUpsertOne) Ignore() *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProposalUpsertOne) DoNothing() *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProposalCreate.OnConflict
// documentation for more info.
func (u *ProposalUpsertOne) Update(set func(*ProposalUpsert)) *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProposalUpsert{UpdateSet: update})
	}))
	return u
}

// SetChainID sets the "chain_id" field.
func (u *ProposalUpsertOne) SetChainID(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetChainID(v)
	})
}

// UpdateChainID sets the "chain_id" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateChainID() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateChainID()
	})
}

// SetProposalID sets the "proposal_id" field.
func (u *ProposalUpsertOne) SetProposalID(v int64) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetProposalID(v)
	})
}

// AddProposalID adds v to the "proposal_id" field.
func (u *ProposalUpsertOne) AddProposalID(v int64) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.AddProposalID(v)
	})
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateProposalID() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateProposalID()
	})
}

// SetTitle sets the "title" field.
func (u *ProposalUpsertOne) SetTitle(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateTitle() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ProposalUpsertOne) SetDescription(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateDescription() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateDescription()
	})
}

// SetStatus sets the "status" field.
func (u *ProposalUpsertOne) SetStatus(v proposal.Status) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateStatus() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateStatus()
	})
}

// SetProposalType sets the "proposal_type" field.
func (u *ProposalUpsertOne) SetProposalType(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetProposalType(v)
	})
}

// UpdateProposalType sets the "proposal_type" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateProposalType() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateProposalType()
	})
}

// ClearProposalType clears the value of the "proposal_type" field.
func (u *ProposalUpsertOne) ClearProposalType() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearProposalType()
	})
}

// SetProposer sets the "proposer" field.
func (u *ProposalUpsertOne) SetProposer(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetProposer(v)
	})
}

// UpdateProposer sets the "proposer" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateProposer() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateProposer()
	})
}

// ClearProposer clears the value of the "proposer" field.
func (u *ProposalUpsertOne) ClearProposer() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearProposer()
	})
}

// SetSubmitTime sets the "submit_time" field.
func (u *ProposalUpsertOne) SetSubmitTime(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetSubmitTime(v)
	})
}

// UpdateSubmitTime sets the "submit_time" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateSubmitTime() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateSubmitTime()
	})
}

// ClearSubmitTime clears the value of the "submit_time" field.
func (u *ProposalUpsertOne) ClearSubmitTime() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearSubmitTime()
	})
}

// SetVotingStart sets the "voting_start" field.
func (u *ProposalUpsertOne) SetVotingStart(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetVotingStart(v)
	})
}

// UpdateVotingStart sets the "voting_start" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateVotingStart() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateVotingStart()
	})
}

// ClearVotingStart clears the value of the "voting_start" field.
func (u *ProposalUpsertOne) ClearVotingStart() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearVotingStart()
	})
}

// SetVotingEnd sets the "voting_end" field.
func (u *ProposalUpsertOne) SetVotingEnd(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetVotingEnd(v)
	})
}

// UpdateVotingEnd sets the "voting_end" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateVotingEnd() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateVotingEnd()
	})
}

// ClearVotingEnd clears the value of the "voting_end" field.
func (u *ProposalUpsertOne) ClearVotingEnd() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearVotingEnd()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProposalUpsertOne) SetUpdatedAt(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateUpdatedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProposalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProposalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProposalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProposalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProposalUpsertOne.ID is not supported by MySQL driver. Use ProposalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProposalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProposalCreateBulk is the builder for creating many Proposal entities in bulk.
type ProposalCreateBulk struct {
	config
	err      error
	builders []*ProposalCreate
	conflict []sql.ConflictOption
}

// Save creates the Proposal entities in the database.
func (_c *ProposalCreateBulk) Save(ctx context.Context) ([]*Proposal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Proposal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProposalMutation)
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
func (_c *ProposalCreateBulk) SaveX(ctx context.Context) []*Proposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Proposal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProposalUpsert) {
//			SetChainID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProposalCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProposalUpsertBulk {
	_c.conflict = opts
	return &ProposalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProposalCreateBulk) OnConflictColumns(columns ...string) *ProposalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProposalUpsertBulk{
		create: _c,
	}
}

// ProposalUpsertBulk is the builder for "upsert"-ing
// a bulk of Proposal nodes.
type ProposalUpsertBulk struct {
	create *ProposalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(proposal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProposalUpsertBulk) UpdateNewValues() *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(proposal.FieldID)
			}
			if _, exists := b.mutation.FirstSeenAt(); exists {
				s.SetIgnore(proposal.FieldFirstSeenAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProposalUpsertBulk) Ignore() *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProposalUpsertBulk) DoNothing() *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProposalCreateBulk.OnConflict
// documentation for more info.
func (u *ProposalUpsertBulk) Update(set func(*ProposalUpsert)) *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProposalUpsert{UpdateSet: update})
	}))
	return u
}

// SetChainID sets the "chain_id" field.
func (u *ProposalUpsertBulk) SetChainID(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetChainID(v)
	})
}

// UpdateChainID sets the "chain_id" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateChainID() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateChainID()
	})
}

// SetProposalID sets the "proposal_id" field.
func (u *ProposalUpsertBulk) SetProposalID(v int64) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetProposalID(v)
	})
}

// AddProposalID adds v to the "proposal_id" field.
func (u *ProposalUpsertBulk) AddProposalID(v int64) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.AddProposalID(v)
	})
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateProposalID() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateProposalID()
	})
}

// SetTitle sets the "title" field.
func (u *ProposalUpsertBulk) SetTitle(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateTitle() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ProposalUpsertBulk) SetDescription(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateDescription() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateDescription()
	})
}

// SetStatus sets the "status" field.
func (u *ProposalUpsertBulk) SetStatus(v proposal.Status) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateStatus() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateStatus()
	})
}

// SetProposalType sets the "proposal_type" field.
func (u *ProposalUpsertBulk) SetProposalType(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetProposalType(v)
	})
}

// UpdateProposalType sets the "proposal_type" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateProposalType() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateProposalType()
	})
}

// ClearProposalType clears the value of the "proposal_type" field.
func (u *ProposalUpsertBulk) ClearProposalType() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearProposalType()
	})
}

// SetProposer sets the "proposer" field.
func (u *ProposalUpsertBulk) SetProposer(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetProposer(v)
	})
}

// UpdateProposer sets the "proposer" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateProposer() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateProposer()
	})
}

// ClearProposer clears the value of the "proposer" field.
func (u *ProposalUpsertBulk) ClearProposer() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearProposer()
	})
}

// SetSubmitTime sets the "submit_time" field.
func (u *ProposalUpsertBulk) SetSubmitTime(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetSubmitTime(v)
	})
}

// UpdateSubmitTime sets the "submit_time" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateSubmitTime() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateSubmitTime()
	})
}

// ClearSubmitTime clears the value of the "submit_time" field.
func (u *ProposalUpsertBulk) ClearSubmitTime() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearSubmitTime()
	})
}

// SetVotingStart sets the "voting_start" field.
func (u *ProposalUpsertBulk) SetVotingStart(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetVotingStart(v)
	})
}

// UpdateVotingStart sets the "voting_start" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateVotingStart() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateVotingStart()
	})
}

// ClearVotingStart clears the value of the "voting_start" field.
func (u *ProposalUpsertBulk) ClearVotingStart() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearVotingStart()
	})
}

// SetVotingEnd sets the "voting_end" field.
func (u *ProposalUpsertBulk) SetVotingEnd(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetVotingEnd(v)
	})
}

// UpdateVotingEnd sets the "voting_end" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateVotingEnd() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateVotingEnd()
	})
}

// ClearVotingEnd clears the value of the "voting_end" field.
func (u *ProposalUpsertBulk) ClearVotingEnd() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearVotingEnd()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProposalUpsertBulk) SetUpdatedAt(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateUpdatedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProposalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProposalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProposalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProposalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
