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
	"github.com/govwatcher/govwatcher/ent/analysis"
)

// AnalysisCreate is the builder for creating a Analysis entity.
type AnalysisCreate struct {
	config
	mutation *AnalysisMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFingerprint sets the "fingerprint" field.
func (_c *AnalysisCreate) SetFingerprint(v string) *AnalysisCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetChainID sets the "chain_id" field.
func (_c *AnalysisCreate) SetChainID(v string) *AnalysisCreate {
	_c.mutation.SetChainID(v)
	return _c
}

// SetProposalID sets the "proposal_id" field.
func (_c *AnalysisCreate) SetProposalID(v int64) *AnalysisCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *AnalysisCreate) SetProvider(v string) *AnalysisCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetRecommendation sets the "recommendation" field.
func (_c *AnalysisCreate) SetRecommendation(v analysis.Recommendation) *AnalysisCreate {
	_c.mutation.SetRecommendation(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AnalysisCreate) SetConfidence(v float64) *AnalysisCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *AnalysisCreate) SetReasoning(v string) *AnalysisCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetRiskAssessment sets the "risk_assessment" field.
func (_c *AnalysisCreate) SetRiskAssessment(v analysis.RiskAssessment) *AnalysisCreate {
	_c.mutation.SetRiskAssessment(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *AnalysisCreate) SetDetails(v map[string]interface{}) *AnalysisCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisCreate) SetCreatedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCreatedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *AnalysisCreate) SetExpiresAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisCreate) SetID(v string) *AnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AnalysisMutation object of the builder.
func (_c *AnalysisCreate) Mutation() *AnalysisMutation {
	return _c.mutation
}

// Save creates the Analysis in the database.
func (_c *AnalysisCreate) Save(ctx context.Context) (*Analysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisCreate) SaveX(ctx context.Context) *Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisCreate) check() error {
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Analysis.fingerprint"`)}
	}
	if _, ok := _c.mutation.ChainID(); !ok {
		return &ValidationError{Name: "chain_id", err: errors.New(`ent: missing required field "Analysis.chain_id"`)}
	}
	if _, ok := _c.mutation.ProposalID(); !ok {
		return &ValidationError{Name: "proposal_id", err: errors.New(`ent: missing required field "Analysis.proposal_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Analysis.provider"`)}
	}
	if _, ok := _c.mutation.Recommendation(); !ok {
		return &ValidationError{Name: "recommendation", err: errors.New(`ent: missing required field "Analysis.recommendation"`)}
	}
	if v, ok := _c.mutation.Recommendation(); ok {
		if err := analysis.RecommendationValidator(v); err != nil {
			return &ValidationError{Name: "recommendation", err: fmt.Errorf(`ent: validator failed for field "Analysis.recommendation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Analysis.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := analysis.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Analysis.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "Analysis.reasoning"`)}
	}
	if _, ok := _c.mutation.RiskAssessment(); !ok {
		return &ValidationError{Name: "risk_assessment", err: errors.New(`ent: missing required field "Analysis.risk_assessment"`)}
	}
	if v, ok := _c.mutation.RiskAssessment(); ok {
		if err := analysis.RiskAssessmentValidator(v); err != nil {
			return &ValidationError{Name: "risk_assessment", err: fmt.Errorf(`ent: validator failed for field "Analysis.risk_assessment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Analysis.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Analysis.expires_at"`)}
	}
	return nil
}

func (_c *AnalysisCreate) sqlSave(ctx context.Context) (*Analysis, error) {
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
			return nil, fmt.Errorf("unexpected Analysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisCreate) createSpec() (*Analysis, *sqlgraph.CreateSpec) {
	var (
		_node = &Analysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysis.Table, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(analysis.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.ChainID(); ok {
		_spec.SetField(analysis.FieldChainID, field.TypeString, value)
		_node.ChainID = value
	}
	if value, ok := _c.mutation.ProposalID(); ok {
		_spec.SetField(analysis.FieldProposalID, field.TypeInt64, value)
		_node.ProposalID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(analysis.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Recommendation(); ok {
		_spec.SetField(analysis.FieldRecommendation, field.TypeEnum, value)
		_node.Recommendation = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(analysis.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(analysis.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.RiskAssessment(); ok {
		_spec.SetField(analysis.FieldRiskAssessment, field.TypeEnum, value)
		_node.RiskAssessment = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(analysis.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(analysis.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Analysis.Create().
//		SetFingerprint(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisUpsert) {
//			SetFingerprint(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisCreate) OnConflict(opts ...sql.ConflictOption) *AnalysisUpsertOne {
	_c.conflict = opts
	return &AnalysisUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisCreate) OnConflictColumns(columns ...string) *AnalysisUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisUpsertOne{
		create: _c,
	}
}

type (
	// AnalysisUpsertOne is the builder for "upsert"-ing
	//  one Analysis node.
	AnalysisUpsertOne struct {
		create *AnalysisCreate
	}

	// AnalysisUpsert is the "OnConflict" setter.
	AnalysisUpsert struct {
		*sql.UpdateSet
	}
)

// SetFingerprint sets the "fingerprint" field.
func (u *AnalysisUpsert) SetFingerprint(v string) *AnalysisUpsert {
	u.Set(analysis.FieldFingerprint, v)
	return u
}

// UpdateFingerprint sets the "fingerprint" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateFingerprint() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldFingerprint)
	return u
}

// SetChainID sets the "chain_id" field.
func (u *AnalysisUpsert) SetChainID(v string) *AnalysisUpsert {
	u.Set(analysis.FieldChainID, v)
	return u
}

// UpdateChainID sets the "chain_id" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateChainID() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldChainID)
	return u
}

// SetProposalID sets the "proposal_id" field.
func (u *AnalysisUpsert) SetProposalID(v int64) *AnalysisUpsert {
	u.Set(analysis.FieldProposalID, v)
	return u
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateProposalID() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldProposalID)
	return u
}

// AddProposalID adds v to the "proposal_id" field.
func (u *AnalysisUpsert) AddProposalID(v int64) *AnalysisUpsert {
	u.Add(analysis.FieldProposalID, v)
	return u
}

// SetProvider sets the "provider" field.
func (u *AnalysisUpsert) SetProvider(v string) *AnalysisUpsert {
	u.Set(analysis.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateProvider() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldProvider)
	return u
}

// SetRecommendation sets the "recommendation" field.
func (u *AnalysisUpsert) SetRecommendation(v analysis.Recommendation) *AnalysisUpsert {
	u.Set(analysis.FieldRecommendation, v)
	return u
}

// UpdateRecommendation sets the "recommendation" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateRecommendation() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldRecommendation)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *AnalysisUpsert) SetConfidence(v float64) *AnalysisUpsert {
	u.Set(analysis.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateConfidence() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *AnalysisUpsert) AddConfidence(v float64) *AnalysisUpsert {
	u.Add(analysis.FieldConfidence, v)
	return u
}

// SetReasoning sets the "reasoning" field.
func (u *AnalysisUpsert) SetReasoning(v string) *AnalysisUpsert {
	u.Set(analysis.FieldReasoning, v)
	return u
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateReasoning() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldReasoning)
	return u
}

// SetRiskAssessment sets the "risk_assessment" field.
func (u *AnalysisUpsert) SetRiskAssessment(v analysis.RiskAssessment) *AnalysisUpsert {
	u.Set(analysis.FieldRiskAssessment, v)
	return u
}

// UpdateRiskAssessment sets the "risk_assessment" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateRiskAssessment() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldRiskAssessment)
	return u
}

// SetDetails sets the "details" field.
func (u *AnalysisUpsert) SetDetails(v map[string]interface{}) *AnalysisUpsert {
	u.Set(analysis.FieldDetails, v)
	return u
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateDetails() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldDetails)
	return u
}

// ClearDetails clears the value of the "details" field.
func (u *AnalysisUpsert) ClearDetails() *AnalysisUpsert {
	u.SetNull(analysis.FieldDetails)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *AnalysisUpsert) SetExpiresAt(v time.Time) *AnalysisUpsert {
	u.Set(analysis.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateExpiresAt() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(analysis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnalysisUpsertOne) UpdateNewValues() *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(analysis.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(analysis.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Analysis.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnalysisUpsertOne) Ignore() *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisUpsertOne) DoNothing() *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisCreate.OnConflict
// documentation for more info.
func (u *AnalysisUpsertOne) Update(set func(*AnalysisUpsert)) *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetFingerprint sets the "fingerprint" field.
func (u *AnalysisUpsertOne) SetFingerprint(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetFingerprint(v)
	})
}

// UpdateFingerprint sets the "fingerprint" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateFingerprint() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateFingerprint()
	})
}

// SetChainID sets the "chain_id" field.
func (u *AnalysisUpsertOne) SetChainID(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetChainID(v)
	})
}

// UpdateChainID sets the "chain_id" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateChainID() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateChainID()
	})
}

// SetProposalID sets the "proposal_id" field.
func (u *AnalysisUpsertOne) SetProposalID(v int64) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetProposalID(v)
	})
}

// AddProposalID adds v to the "proposal_id" field.
func (u *AnalysisUpsertOne) AddProposalID(v int64) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddProposalID(v)
	})
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateProposalID() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateProposalID()
	})
}

// SetProvider sets the "provider" field.
func (u *AnalysisUpsertOne) SetProvider(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateProvider() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateProvider()
	})
}

// SetRecommendation sets the "recommendation" field.
func (u *AnalysisUpsertOne) SetRecommendation(v analysis.Recommendation) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetRecommendation(v)
	})
}

// UpdateRecommendation sets the "recommendation" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateRecommendation() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateRecommendation()
	})
}

// SetConfidence sets the "confidence" field.
func (u *AnalysisUpsertOne) SetConfidence(v float64) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *AnalysisUpsertOne) AddConfidence(v float64) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateConfidence() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateConfidence()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *AnalysisUpsertOne) SetReasoning(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateReasoning() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateReasoning()
	})
}

// SetRiskAssessment sets the "risk_assessment" field.
func (u *AnalysisUpsertOne) SetRiskAssessment(v analysis.RiskAssessment) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetRiskAssessment(v)
	})
}

// UpdateRiskAssessment sets the "risk_assessment" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateRiskAssessment() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateRiskAssessment()
	})
}

// SetDetails sets the "details" field.
func (u *AnalysisUpsertOne) SetDetails(v map[string]interface{}) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateDetails() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *AnalysisUpsertOne) ClearDetails() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.ClearDetails()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *AnalysisUpsertOne) SetExpiresAt(v time.Time) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateExpiresAt() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *AnalysisUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalysisCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnalysisUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AnalysisUpsertOne.ID is not supported by MySQL driver. Use AnalysisUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnalysisUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnalysisCreateBulk is the builder for creating many Analysis entities in bulk.
type AnalysisCreateBulk struct {
	config
	err      error
	builders []*AnalysisCreate
	conflict []sql.ConflictOption
}

// Save creates the Analysis entities in the database.
func (_c *AnalysisCreateBulk) Save(ctx context.Context) ([]*Analysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Analysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisMutation)
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
func (_c *AnalysisCreateBulk) SaveX(ctx context.Context) []*Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Analysis.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisUpsert) {
//			SetFingerprint(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnalysisUpsertBulk {
	_c.conflict = opts
	return &AnalysisUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisCreateBulk) OnConflictColumns(columns ...string) *AnalysisUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisUpsertBulk{
		create: _c,
	}
}

// AnalysisUpsertBulk is the builder for "upsert"-ing
// a bulk of Analysis nodes.
type AnalysisUpsertBulk struct {
	create *AnalysisCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(analysis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnalysisUpsertBulk) UpdateNewValues() *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(analysis.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(analysis.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnalysisUpsertBulk) Ignore() *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisUpsertBulk) DoNothing() *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisCreateBulk.OnConflict
// documentation for more info.
func (u *AnalysisUpsertBulk) Update(set func(*AnalysisUpsert)) *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetFingerprint sets the "fingerprint" field.
func (u *AnalysisUpsertBulk) SetFingerprint(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetFingerprint(v)
	})
}

// UpdateFingerprint sets the "fingerprint" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateFingerprint() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateFingerprint()
	})
}

// SetChainID sets the "chain_id" field.
func (u *AnalysisUpsertBulk) SetChainID(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetChainID(v)
	})
}

// UpdateChainID sets the "chain_id" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateChainID() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateChainID()
	})
}

// SetProposalID sets the "proposal_id" field.
func (u *AnalysisUpsertBulk) SetProposalID(v int64) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetProposalID(v)
	})
}

// AddProposalID adds v to the "proposal_id" field.
func (u *AnalysisUpsertBulk) AddProposalID(v int64) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddProposalID(v)
	})
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateProposalID() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateProposalID()
	})
}

// SetProvider sets the "provider" field.
func (u *AnalysisUpsertBulk) SetProvider(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateProvider() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateProvider()
	})
}

// SetRecommendation sets the "recommendation" field.
func (u *AnalysisUpsertBulk) SetRecommendation(v analysis.Recommendation) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetRecommendation(v)
	})
}

// UpdateRecommendation sets the "recommendation" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateRecommendation() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateRecommendation()
	})
}

// SetConfidence sets the "confidence" field.
func (u *AnalysisUpsertBulk) SetConfidence(v float64) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *AnalysisUpsertBulk) AddConfidence(v float64) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateConfidence() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateConfidence()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *AnalysisUpsertBulk) SetReasoning(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateReasoning() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateReasoning()
	})
}

// SetRiskAssessment sets the "risk_assessment" field.
func (u *AnalysisUpsertBulk) SetRiskAssessment(v analysis.RiskAssessment) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetRiskAssessment(v)
	})
}

// UpdateRiskAssessment sets the "risk_assessment" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateRiskAssessment() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateRiskAssessment()
	})
}

// SetDetails sets the "details" field.
func (u *AnalysisUpsertBulk) SetDetails(v map[string]interface{}) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateDetails() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *AnalysisUpsertBulk) ClearDetails() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.ClearDetails()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *AnalysisUpsertBulk) SetExpiresAt(v time.Time) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateExpiresAt() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *AnalysisUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnalysisCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalysisCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
