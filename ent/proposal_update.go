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
	"github.com/govwatcher/govwatcher/ent/predicate"
	"github.com/govwatcher/govwatcher/ent/proposal"
)

// ProposalUpdate is the builder for updating Proposal entities.
type ProposalUpdate struct {
	config
	hooks    []Hook
	mutation *ProposalMutation
}

// Where appends a list predicates to the ProposalUpdate builder.
func (_u *ProposalUpdate) Where(ps ...predicate.Proposal) *ProposalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChainID sets the "chain_id" field.
func (_u *ProposalUpdate) SetChainID(v string) *ProposalUpdate {
	_u.mutation.SetChainID(v)
	return _u
}

// SetNillableChainID sets the "chain_id" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableChainID(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetChainID(*v)
	}
	return _u
}

// SetProposalID sets the "proposal_id" field.
func (_u *ProposalUpdate) SetProposalID(v int64) *ProposalUpdate {
	_u.mutation.ResetProposalID()
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableProposalID(v *int64) *ProposalUpdate {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// AddProposalID adds value to the "proposal_id" field.
func (_u *ProposalUpdate) AddProposalID(v int64) *ProposalUpdate {
	_u.mutation.AddProposalID(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProposalUpdate) SetTitle(v string) *ProposalUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableTitle(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProposalUpdate) SetDescription(v string) *ProposalUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableDescription(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposalUpdate) SetStatus(v proposal.Status) *ProposalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableStatus(v *proposal.Status) *ProposalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProposalType sets the "proposal_type" field.
func (_u *ProposalUpdate) SetProposalType(v string) *ProposalUpdate {
	_u.mutation.SetProposalType(v)
	return _u
}

// SetNillableProposalType sets the "proposal_type" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableProposalType(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetProposalType(*v)
	}
	return _u
}

// ClearProposalType clears the value of the "proposal_type" field.
func (_u *ProposalUpdate) ClearProposalType() *ProposalUpdate {
	_u.mutation.ClearProposalType()
	return _u
}

// SetProposer sets the "proposer" field.
func (_u *ProposalUpdate) SetProposer(v string) *ProposalUpdate {
	_u.mutation.SetProposer(v)
	return _u
}

// SetNillableProposer sets the "proposer" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableProposer(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetProposer(*v)
	}
	return _u
}

// ClearProposer clears the value of the "proposer" field.
func (_u *ProposalUpdate) ClearProposer() *ProposalUpdate {
	_u.mutation.ClearProposer()
	return _u
}

// SetSubmitTime sets the "submit_time" field.
func (_u *ProposalUpdate) SetSubmitTime(v time.Time) *ProposalUpdate {
	_u.mutation.SetSubmitTime(v)
	return _u
}

// SetNillableSubmitTime sets the "submit_time" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableSubmitTime(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetSubmitTime(*v)
	}
	return _u
}

// ClearSubmitTime clears the value of the "submit_time" field.
func (_u *ProposalUpdate) ClearSubmitTime() *ProposalUpdate {
	_u.mutation.ClearSubmitTime()
	return _u
}

// SetVotingStart sets the "voting_start" field.
func (_u *ProposalUpdate) SetVotingStart(v time.Time) *ProposalUpdate {
	_u.mutation.SetVotingStart(v)
	return _u
}

// SetNillableVotingStart sets the "voting_start" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableVotingStart(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetVotingStart(*v)
	}
	return _u
}

// ClearVotingStart clears the value of the "voting_start" field.
func (_u *ProposalUpdate) ClearVotingStart() *ProposalUpdate {
	_u.mutation.ClearVotingStart()
	return _u
}

// SetVotingEnd sets the "voting_end" field.
func (_u *ProposalUpdate) SetVotingEnd(v time.Time) *ProposalUpdate {
	_u.mutation.SetVotingEnd(v)
	return _u
}

// SetNillableVotingEnd sets the "voting_end" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableVotingEnd(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetVotingEnd(*v)
	}
	return _u
}

// ClearVotingEnd clears the value of the "voting_end" field.
func (_u *ProposalUpdate) ClearVotingEnd() *ProposalUpdate {
	_u.mutation.ClearVotingEnd()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProposalUpdate) SetUpdatedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProposalMutation object of the builder.
func (_u *ProposalUpdate) Mutation() *ProposalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProposalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProposalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProposalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := proposal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalUpdate) check() error {
	if v, ok := _u.mutation.ProposalID(); ok {
		if err := proposal.ProposalIDValidator(v); err != nil {
			return &ValidationError{Name: "proposal_id", err: fmt.Errorf(`ent: validator failed for field "Proposal.proposal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProposalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposal.Table, proposal.Columns, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChainID(); ok {
		_spec.SetField(proposal.FieldChainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposalID(); ok {
		_spec.SetField(proposal.FieldProposalID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProposalID(); ok {
		_spec.AddField(proposal.FieldProposalID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(proposal.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(proposal.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProposalType(); ok {
		_spec.SetField(proposal.FieldProposalType, field.TypeString, value)
	}
	if _u.mutation.ProposalTypeCleared() {
		_spec.ClearField(proposal.FieldProposalType, field.TypeString)
	}
	if value, ok := _u.mutation.Proposer(); ok {
		_spec.SetField(proposal.FieldProposer, field.TypeString, value)
	}
	if _u.mutation.ProposerCleared() {
		_spec.ClearField(proposal.FieldProposer, field.TypeString)
	}
	if value, ok := _u.mutation.SubmitTime(); ok {
		_spec.SetField(proposal.FieldSubmitTime, field.TypeTime, value)
	}
	if _u.mutation.SubmitTimeCleared() {
		_spec.ClearField(proposal.FieldSubmitTime, field.TypeTime)
	}
	if value, ok := _u.mutation.VotingStart(); ok {
		_spec.SetField(proposal.FieldVotingStart, field.TypeTime, value)
	}
	if _u.mutation.VotingStartCleared() {
		_spec.ClearField(proposal.FieldVotingStart, field.TypeTime)
	}
	if value, ok := _u.mutation.VotingEnd(); ok {
		_spec.SetField(proposal.FieldVotingEnd, field.TypeTime, value)
	}
	if _u.mutation.VotingEndCleared() {
		_spec.ClearField(proposal.FieldVotingEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(proposal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProposalUpdateOne is the builder for updating a single Proposal entity.
type ProposalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProposalMutation
}

// SetChainID sets the "chain_id" field.
func (_u *ProposalUpdateOne) SetChainID(v string) *ProposalUpdateOne {
	_u.mutation.SetChainID(v)
	return _u
}

// SetNillableChainID sets the "chain_id" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableChainID(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetChainID(*v)
	}
	return _u
}

// SetProposalID sets the "proposal_id" field.
func (_u *ProposalUpdateOne) SetProposalID(v int64) *ProposalUpdateOne {
	_u.mutation.ResetProposalID()
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableProposalID(v *int64) *ProposalUpdateOne {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// AddProposalID adds value to the "proposal_id" field.
func (_u *ProposalUpdateOne) AddProposalID(v int64) *ProposalUpdateOne {
	_u.mutation.AddProposalID(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProposalUpdateOne) SetTitle(v string) *ProposalUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableTitle(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProposalUpdateOne) SetDescription(v string) *ProposalUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableDescription(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposalUpdateOne) SetStatus(v proposal.Status) *ProposalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableStatus(v *proposal.Status) *ProposalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProposalType sets the "proposal_type" field.
func (_u *ProposalUpdateOne) SetProposalType(v string) *ProposalUpdateOne {
	_u.mutation.SetProposalType(v)
	return _u
}

// SetNillableProposalType sets the "proposal_type" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableProposalType(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetProposalType(*v)
	}
	return _u
}

// ClearProposalType clears the value of the "proposal_type" field.
func (_u *ProposalUpdateOne) ClearProposalType() *ProposalUpdateOne {
	_u.mutation.ClearProposalType()
	return _u
}

// SetProposer sets the "proposer" field.
func (_u *ProposalUpdateOne) SetProposer(v string) *ProposalUpdateOne {
	_u.mutation.SetProposer(v)
	return _u
}

// SetNillableProposer sets the "proposer" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableProposer(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetProposer(*v)
	}
	return _u
}

// ClearProposer clears the value of the "proposer" field.
func (_u *ProposalUpdateOne) ClearProposer() *ProposalUpdateOne {
	_u.mutation.ClearProposer()
	return _u
}

// SetSubmitTime sets the "submit_time" field.
func (_u *ProposalUpdateOne) SetSubmitTime(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetSubmitTime(v)
	return _u
}

// SetNillableSubmitTime sets the "submit_time" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableSubmitTime(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetSubmitTime(*v)
	}
	return _u
}

// ClearSubmitTime clears the value of the "submit_time" field.
func (_u *ProposalUpdateOne) ClearSubmitTime() *ProposalUpdateOne {
	_u.mutation.ClearSubmitTime()
	return _u
}

// SetVotingStart sets the "voting_start" field.
func (_u *ProposalUpdateOne) SetVotingStart(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetVotingStart(v)
	return _u
}

// SetNillableVotingStart sets the "voting_start" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableVotingStart(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetVotingStart(*v)
	}
	return _u
}

// ClearVotingStart clears the value of the "voting_start" field.
func (_u *ProposalUpdateOne) ClearVotingStart() *ProposalUpdateOne {
	_u.mutation.ClearVotingStart()
	return _u
}

// SetVotingEnd sets the "voting_end" field.
func (_u *ProposalUpdateOne) SetVotingEnd(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetVotingEnd(v)
	return _u
}

// SetNillableVotingEnd sets the "voting_end" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableVotingEnd(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetVotingEnd(*v)
	}
	return _u
}

// ClearVotingEnd clears the value of the "voting_end" field.
func (_u *ProposalUpdateOne) ClearVotingEnd() *ProposalUpdateOne {
	_u.mutation.ClearVotingEnd()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProposalUpdateOne) SetUpdatedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProposalMutation object of the builder.
func (_u *ProposalUpdateOne) Mutation() *ProposalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProposalUpdate builder.
func (_u *ProposalUpdateOne) Where(ps ...predicate.Proposal) *ProposalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProposalUpdateOne) Select(field string, fields ...string) *ProposalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Proposal entity.
func (_u *ProposalUpdateOne) Save(ctx context.Context) (*Proposal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalUpdateOne) SaveX(ctx context.Context) *Proposal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProposalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProposalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := proposal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalUpdateOne) check() error {
	if v, ok := _u.mutation.ProposalID(); ok {
		if err := proposal.ProposalIDValidator(v); err != nil {
			return &ValidationError{Name: "proposal_id", err: fmt.Errorf(`ent: validator failed for field "Proposal.proposal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProposalUpdateOne) sqlSave(ctx context.Context) (_node *Proposal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposal.Table, proposal.Columns, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Proposal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proposal.FieldID)
		for _, f := range fields {
			if !proposal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proposal.FieldID {
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
	if value, ok := _u.mutation.ChainID(); ok {
		_spec.SetField(proposal.FieldChainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposalID(); ok {
		_spec.SetField(proposal.FieldProposalID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProposalID(); ok {
		_spec.AddField(proposal.FieldProposalID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(proposal.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(proposal.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProposalType(); ok {
		_spec.SetField(proposal.FieldProposalType, field.TypeString, value)
	}
	if _u.mutation.ProposalTypeCleared() {
		_spec.ClearField(proposal.FieldProposalType, field.TypeString)
	}
	if value, ok := _u.mutation.Proposer(); ok {
		_spec.SetField(proposal.FieldProposer, field.TypeString, value)
	}
	if _u.mutation.ProposerCleared() {
		_spec.ClearField(proposal.FieldProposer, field.TypeString)
	}
	if value, ok := _u.mutation.SubmitTime(); ok {
		_spec.SetField(proposal.FieldSubmitTime, field.TypeTime, value)
	}
	if _u.mutation.SubmitTimeCleared() {
		_spec.ClearField(proposal.FieldSubmitTime, field.TypeTime)
	}
	if value, ok := _u.mutation.VotingStart(); ok {
		_spec.SetField(proposal.FieldVotingStart, field.TypeTime, value)
	}
	if _u.mutation.VotingStartCleared() {
		_spec.ClearField(proposal.FieldVotingStart, field.TypeTime)
	}
	if value, ok := _u.mutation.VotingEnd(); ok {
		_spec.SetField(proposal.FieldVotingEnd, field.TypeTime, value)
	}
	if _u.mutation.VotingEndCleared() {
		_spec.ClearField(proposal.FieldVotingEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(proposal.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Proposal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
