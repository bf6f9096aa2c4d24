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
	"github.com/govwatcher/govwatcher/ent/analysis"
	"github.com/govwatcher/govwatcher/ent/predicate"
)

// AnalysisUpdate is the builder for updating Analysis entities.
type AnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisMutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdate) Where(ps ...predicate.Analysis) *AnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *AnalysisUpdate) SetFingerprint(v string) *AnalysisUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableFingerprint(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetChainID sets the "chain_id" field.
func (_u *AnalysisUpdate) SetChainID(v string) *AnalysisUpdate {
	_u.mutation.SetChainID(v)
	return _u
}

// SetNillableChainID sets the "chain_id" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableChainID(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetChainID(*v)
	}
	return _u
}

// SetProposalID sets the "proposal_id" field.
func (_u *AnalysisUpdate) SetProposalID(v int64) *AnalysisUpdate {
	_u.mutation.ResetProposalID()
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableProposalID(v *int64) *AnalysisUpdate {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// AddProposalID adds value to the "proposal_id" field.
func (_u *AnalysisUpdate) AddProposalID(v int64) *AnalysisUpdate {
	_u.mutation.AddProposalID(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AnalysisUpdate) SetProvider(v string) *AnalysisUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableProvider(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *AnalysisUpdate) SetRecommendation(v analysis.Recommendation) *AnalysisUpdate {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableRecommendation(v *analysis.Recommendation) *AnalysisUpdate {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalysisUpdate) SetConfidence(v float64) *AnalysisUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableConfidence(v *float64) *AnalysisUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalysisUpdate) AddConfidence(v float64) *AnalysisUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AnalysisUpdate) SetReasoning(v string) *AnalysisUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableReasoning(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetRiskAssessment sets the "risk_assessment" field.
func (_u *AnalysisUpdate) SetRiskAssessment(v analysis.RiskAssessment) *AnalysisUpdate {
	_u.mutation.SetRiskAssessment(v)
	return _u
}

// SetNillableRiskAssessment sets the "risk_assessment" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableRiskAssessment(v *analysis.RiskAssessment) *AnalysisUpdate {
	if v != nil {
		_u.SetRiskAssessment(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *AnalysisUpdate) SetDetails(v map[string]interface{}) *AnalysisUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *AnalysisUpdate) ClearDetails() *AnalysisUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *AnalysisUpdate) SetExpiresAt(v time.Time) *AnalysisUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableExpiresAt(v *time.Time) *AnalysisUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdate) Mutation() *AnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdate) check() error {
	if v, ok := _u.mutation.Recommendation(); ok {
		if err := analysis.RecommendationValidator(v); err != nil {
			return &ValidationError{Name: "recommendation", err: fmt.Errorf(`ent: validator failed for field "Analysis.recommendation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := analysis.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Analysis.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskAssessment(); ok {
		if err := analysis.RiskAssessmentValidator(v); err != nil {
			return &ValidationError{Name: "risk_assessment", err: fmt.Errorf(`ent: validator failed for field "Analysis.risk_assessment": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(analysis.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChainID(); ok {
		_spec.SetField(analysis.FieldChainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposalID(); ok {
		_spec.SetField(analysis.FieldProposalID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProposalID(); ok {
		_spec.AddField(analysis.FieldProposalID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(analysis.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(analysis.FieldRecommendation, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analysis.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analysis.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(analysis.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskAssessment(); ok {
		_spec.SetField(analysis.FieldRiskAssessment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(analysis.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(analysis.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(analysis.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisUpdateOne is the builder for updating a single Analysis entity.
type AnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisMutation
}

// SetFingerprint sets the "fingerprint" field.
func (_u *AnalysisUpdateOne) SetFingerprint(v string) *AnalysisUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableFingerprint(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetChainID sets the "chain_id" field.
func (_u *AnalysisUpdateOne) SetChainID(v string) *AnalysisUpdateOne {
	_u.mutation.SetChainID(v)
	return _u
}

// SetNillableChainID sets the "chain_id" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableChainID(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetChainID(*v)
	}
	return _u
}

// SetProposalID sets the "proposal_id" field.
func (_u *AnalysisUpdateOne) SetProposalID(v int64) *AnalysisUpdateOne {
	_u.mutation.ResetProposalID()
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableProposalID(v *int64) *AnalysisUpdateOne {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// AddProposalID adds value to the "proposal_id" field.
func (_u *AnalysisUpdateOne) AddProposalID(v int64) *AnalysisUpdateOne {
	_u.mutation.AddProposalID(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AnalysisUpdateOne) SetProvider(v string) *AnalysisUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableProvider(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *AnalysisUpdateOne) SetRecommendation(v analysis.Recommendation) *AnalysisUpdateOne {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableRecommendation(v *analysis.Recommendation) *AnalysisUpdateOne {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalysisUpdateOne) SetConfidence(v float64) *AnalysisUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableConfidence(v *float64) *AnalysisUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalysisUpdateOne) AddConfidence(v float64) *AnalysisUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AnalysisUpdateOne) SetReasoning(v string) *AnalysisUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableReasoning(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetRiskAssessment sets the "risk_assessment" field.
func (_u *AnalysisUpdateOne) SetRiskAssessment(v analysis.RiskAssessment) *AnalysisUpdateOne {
	_u.mutation.SetRiskAssessment(v)
	return _u
}

// SetNillableRiskAssessment sets the "risk_assessment" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableRiskAssessment(v *analysis.RiskAssessment) *AnalysisUpdateOne {
	if v != nil {
		_u.SetRiskAssessment(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *AnalysisUpdateOne) SetDetails(v map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *AnalysisUpdateOne) ClearDetails() *AnalysisUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *AnalysisUpdateOne) SetExpiresAt(v time.Time) *AnalysisUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableExpiresAt(v *time.Time) *AnalysisUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdateOne) Mutation() *AnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdateOne) Where(ps ...predicate.Analysis) *AnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisUpdateOne) Select(field string, fields ...string) *AnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Analysis entity.
func (_u *AnalysisUpdateOne) Save(ctx context.Context) (*Analysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdateOne) SaveX(ctx context.Context) *Analysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.Recommendation(); ok {
		if err := analysis.RecommendationValidator(v); err != nil {
			return &ValidationError{Name: "recommendation", err: fmt.Errorf(`ent: validator failed for field "Analysis.recommendation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := analysis.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Analysis.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskAssessment(); ok {
		if err := analysis.RiskAssessmentValidator(v); err != nil {
			return &ValidationError{Name: "risk_assessment", err: fmt.Errorf(`ent: validator failed for field "Analysis.risk_assessment": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisUpdateOne) sqlSave(ctx context.Context) (_node *Analysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Analysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysis.FieldID)
		for _, f := range fields {
			if !analysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysis.FieldID {
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
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(analysis.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChainID(); ok {
		_spec.SetField(analysis.FieldChainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposalID(); ok {
		_spec.SetField(analysis.FieldProposalID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProposalID(); ok {
		_spec.AddField(analysis.FieldProposalID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(analysis.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(analysis.FieldRecommendation, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analysis.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analysis.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(analysis.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskAssessment(); ok {
		_spec.SetField(analysis.FieldRiskAssessment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(analysis.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(analysis.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(analysis.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &Analysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
