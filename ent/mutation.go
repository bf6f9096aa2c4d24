// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/govwatcher/govwatcher/ent/analysis"
	"github.com/govwatcher/govwatcher/ent/chaincursor"
	"github.com/govwatcher/govwatcher/ent/deliverymark"
	"github.com/govwatcher/govwatcher/ent/predicate"
	"github.com/govwatcher/govwatcher/ent/proposal"
	"github.com/govwatcher/govwatcher/ent/subscriber"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysis     = "Analysis"
	TypeChainCursor  = "ChainCursor"
	TypeDeliveryMark = "DeliveryMark"
	TypeProposal     = "Proposal"
	TypeSubscriber   = "Subscriber"
)

// AnalysisMutation represents an operation that mutates the Analysis nodes in the graph.
type AnalysisMutation struct {
	config
	op              Op
	typ             string
	id              *string
	fingerprint     *string
	chain_id        *string
	proposal_id     *int64
	addproposal_id  *int64
	provider        *string
	recommendation  *analysis.Recommendation
	confidence      *float64
	addconfidence   *float64
	reasoning       *string
	risk_assessment *analysis.RiskAssessment
	details         *map[string]interface{}
	created_at      *time.Time
	expires_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Analysis, error)
	predicates      []predicate.Analysis
}

var _ ent.Mutation = (*AnalysisMutation)(nil)

// analysisOption allows management of the mutation configuration using functional options.
type analysisOption func(*AnalysisMutation)

// newAnalysisMutation creates new mutation for the Analysis entity.
func newAnalysisMutation(c config, op Op, opts ...analysisOption) *AnalysisMutation {
	m := &AnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisID sets the ID field of the mutation.
func withAnalysisID(id string) analysisOption {
	return func(m *AnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *Analysis
		)
		m.oldValue = func(ctx context.Context) (*Analysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Analysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysis sets the old Analysis of the mutation.
func withAnalysis(node *Analysis) analysisOption {
	return func(m *AnalysisMutation) {
		m.oldValue = func(context.Context) (*Analysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Analysis entities.
func (m *AnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Analysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFingerprint sets the "fingerprint" field.
func (m *AnalysisMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *AnalysisMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *AnalysisMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetChainID sets the "chain_id" field.
func (m *AnalysisMutation) SetChainID(s string) {
	m.chain_id = &s
}

// ChainID returns the value of the "chain_id" field in the mutation.
func (m *AnalysisMutation) ChainID() (r string, exists bool) {
	v := m.chain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChainID returns the old "chain_id" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldChainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChainID: %w", err)
	}
	return oldValue.ChainID, nil
}

// ResetChainID resets all changes to the "chain_id" field.
func (m *AnalysisMutation) ResetChainID() {
	m.chain_id = nil
}

// SetProposalID sets the "proposal_id" field.
func (m *AnalysisMutation) SetProposalID(i int64) {
	m.proposal_id = &i
	m.addproposal_id = nil
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *AnalysisMutation) ProposalID() (r int64, exists bool) {
	v := m.proposal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldProposalID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// AddProposalID adds i to the "proposal_id" field.
func (m *AnalysisMutation) AddProposalID(i int64) {
	if m.addproposal_id != nil {
		*m.addproposal_id += i
	} else {
		m.addproposal_id = &i
	}
}

// AddedProposalID returns the value that was added to the "proposal_id" field in this mutation.
func (m *AnalysisMutation) AddedProposalID() (r int64, exists bool) {
	v := m.addproposal_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *AnalysisMutation) ResetProposalID() {
	m.proposal_id = nil
	m.addproposal_id = nil
}

// SetProvider sets the "provider" field.
func (m *AnalysisMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AnalysisMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *AnalysisMutation) ResetProvider() {
	m.provider = nil
}

// SetRecommendation sets the "recommendation" field.
func (m *AnalysisMutation) SetRecommendation(a analysis.Recommendation) {
	m.recommendation = &a
}

// Recommendation returns the value of the "recommendation" field in the mutation.
func (m *AnalysisMutation) Recommendation() (r analysis.Recommendation, exists bool) {
	v := m.recommendation
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendation returns the old "recommendation" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldRecommendation(ctx context.Context) (v analysis.Recommendation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendation: %w", err)
	}
	return oldValue.Recommendation, nil
}

// ResetRecommendation resets all changes to the "recommendation" field.
func (m *AnalysisMutation) ResetRecommendation() {
	m.recommendation = nil
}

// SetConfidence sets the "confidence" field.
func (m *AnalysisMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AnalysisMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AnalysisMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AnalysisMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AnalysisMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetReasoning sets the "reasoning" field.
func (m *AnalysisMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *AnalysisMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *AnalysisMutation) ResetReasoning() {
	m.reasoning = nil
}

// SetRiskAssessment sets the "risk_assessment" field.
func (m *AnalysisMutation) SetRiskAssessment(aa analysis.RiskAssessment) {
	m.risk_assessment = &aa
}

// RiskAssessment returns the value of the "risk_assessment" field in the mutation.
func (m *AnalysisMutation) RiskAssessment() (r analysis.RiskAssessment, exists bool) {
	v := m.risk_assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskAssessment returns the old "risk_assessment" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldRiskAssessment(ctx context.Context) (v analysis.RiskAssessment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskAssessment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskAssessment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskAssessment: %w", err)
	}
	return oldValue.RiskAssessment, nil
}

// ResetRiskAssessment resets all changes to the "risk_assessment" field.
func (m *AnalysisMutation) ResetRiskAssessment() {
	m.risk_assessment = nil
}

// SetDetails sets the "details" field.
func (m *AnalysisMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AnalysisMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AnalysisMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[analysis.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AnalysisMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[analysis.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AnalysisMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, analysis.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *AnalysisMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *AnalysisMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *AnalysisMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the AnalysisMutation builder.
func (m *AnalysisMutation) Where(ps ...predicate.Analysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Analysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Analysis).
func (m *AnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.fingerprint != nil {
		fields = append(fields, analysis.FieldFingerprint)
	}
	if m.chain_id != nil {
		fields = append(fields, analysis.FieldChainID)
	}
	if m.proposal_id != nil {
		fields = append(fields, analysis.FieldProposalID)
	}
	if m.provider != nil {
		fields = append(fields, analysis.FieldProvider)
	}
	if m.recommendation != nil {
		fields = append(fields, analysis.FieldRecommendation)
	}
	if m.confidence != nil {
		fields = append(fields, analysis.FieldConfidence)
	}
	if m.reasoning != nil {
		fields = append(fields, analysis.FieldReasoning)
	}
	if m.risk_assessment != nil {
		fields = append(fields, analysis.FieldRiskAssessment)
	}
	if m.details != nil {
		fields = append(fields, analysis.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, analysis.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, analysis.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldFingerprint:
		return m.Fingerprint()
	case analysis.FieldChainID:
		return m.ChainID()
	case analysis.FieldProposalID:
		return m.ProposalID()
	case analysis.FieldProvider:
		return m.Provider()
	case analysis.FieldRecommendation:
		return m.Recommendation()
	case analysis.FieldConfidence:
		return m.Confidence()
	case analysis.FieldReasoning:
		return m.Reasoning()
	case analysis.FieldRiskAssessment:
		return m.RiskAssessment()
	case analysis.FieldDetails:
		return m.Details()
	case analysis.FieldCreatedAt:
		return m.CreatedAt()
	case analysis.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysis.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case analysis.FieldChainID:
		return m.OldChainID(ctx)
	case analysis.FieldProposalID:
		return m.OldProposalID(ctx)
	case analysis.FieldProvider:
		return m.OldProvider(ctx)
	case analysis.FieldRecommendation:
		return m.OldRecommendation(ctx)
	case analysis.FieldConfidence:
		return m.OldConfidence(ctx)
	case analysis.FieldReasoning:
		return m.OldReasoning(ctx)
	case analysis.FieldRiskAssessment:
		return m.OldRiskAssessment(ctx)
	case analysis.FieldDetails:
		return m.OldDetails(ctx)
	case analysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysis.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown Analysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case analysis.FieldChainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChainID(v)
		return nil
	case analysis.FieldProposalID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	case analysis.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case analysis.FieldRecommendation:
		v, ok := value.(analysis.Recommendation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendation(v)
		return nil
	case analysis.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case analysis.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case analysis.FieldRiskAssessment:
		v, ok := value.(analysis.RiskAssessment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskAssessment(v)
		return nil
	case analysis.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case analysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysis.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addproposal_id != nil {
		fields = append(fields, analysis.FieldProposalID)
	}
	if m.addconfidence != nil {
		fields = append(fields, analysis.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldProposalID:
		return m.AddedProposalID()
	case analysis.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldProposalID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProposalID(v)
		return nil
	case analysis.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysis.FieldDetails) {
		fields = append(fields, analysis.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisMutation) ClearField(name string) error {
	switch name {
	case analysis.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown Analysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisMutation) ResetField(name string) error {
	switch name {
	case analysis.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case analysis.FieldChainID:
		m.ResetChainID()
		return nil
	case analysis.FieldProposalID:
		m.ResetProposalID()
		return nil
	case analysis.FieldProvider:
		m.ResetProvider()
		return nil
	case analysis.FieldRecommendation:
		m.ResetRecommendation()
		return nil
	case analysis.FieldConfidence:
		m.ResetConfidence()
		return nil
	case analysis.FieldReasoning:
		m.ResetReasoning()
		return nil
	case analysis.FieldRiskAssessment:
		m.ResetRiskAssessment()
		return nil
	case analysis.FieldDetails:
		m.ResetDetails()
		return nil
	case analysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysis.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Analysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Analysis edge %s", name)
}

// ChainCursorMutation represents an operation that mutates the ChainCursor nodes in the graph.
type ChainCursorMutation struct {
	config
	op              Op
	typ             string
	id              *string
	highest_seen    *int64
	addhighest_seen *int64
	tracked         *[]int64
	appendtracked   []int64
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ChainCursor, error)
	predicates      []predicate.ChainCursor
}

var _ ent.Mutation = (*ChainCursorMutation)(nil)

// chaincursorOption allows management of the mutation configuration using functional options.
type chaincursorOption func(*ChainCursorMutation)

// newChainCursorMutation creates new mutation for the ChainCursor entity.
func newChainCursorMutation(c config, op Op, opts ...chaincursorOption) *ChainCursorMutation {
	m := &ChainCursorMutation{
		config:        c,
		op:            op,
		typ:           TypeChainCursor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChainCursorID sets the ID field of the mutation.
func withChainCursorID(id string) chaincursorOption {
	return func(m *ChainCursorMutation) {
		var (
			err   error
			once  sync.Once
			value *ChainCursor
		)
		m.oldValue = func(ctx context.Context) (*ChainCursor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChainCursor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChainCursor sets the old ChainCursor of the mutation.
func withChainCursor(node *ChainCursor) chaincursorOption {
	return func(m *ChainCursorMutation) {
		m.oldValue = func(context.Context) (*ChainCursor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChainCursorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChainCursorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChainCursor entities.
func (m *ChainCursorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChainCursorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChainCursorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChainCursor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHighestSeen sets the "highest_seen" field.
func (m *ChainCursorMutation) SetHighestSeen(i int64) {
	m.highest_seen = &i
	m.addhighest_seen = nil
}

// HighestSeen returns the value of the "highest_seen" field in the mutation.
func (m *ChainCursorMutation) HighestSeen() (r int64, exists bool) {
	v := m.highest_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldHighestSeen returns the old "highest_seen" field's value of the ChainCursor entity.
// If the ChainCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChainCursorMutation) OldHighestSeen(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighestSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighestSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighestSeen: %w", err)
	}
	return oldValue.HighestSeen, nil
}

// AddHighestSeen adds i to the "highest_seen" field.
func (m *ChainCursorMutation) AddHighestSeen(i int64) {
	if m.addhighest_seen != nil {
		*m.addhighest_seen += i
	} else {
		m.addhighest_seen = &i
	}
}

// AddedHighestSeen returns the value that was added to the "highest_seen" field in this mutation.
func (m *ChainCursorMutation) AddedHighestSeen() (r int64, exists bool) {
	v := m.addhighest_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetHighestSeen resets all changes to the "highest_seen" field.
func (m *ChainCursorMutation) ResetHighestSeen() {
	m.highest_seen = nil
	m.addhighest_seen = nil
}

// SetTracked sets the "tracked" field.
func (m *ChainCursorMutation) SetTracked(i []int64) {
	m.tracked = &i
	m.appendtracked = nil
}

// Tracked returns the value of the "tracked" field in the mutation.
func (m *ChainCursorMutation) Tracked() (r []int64, exists bool) {
	v := m.tracked
	if v == nil {
		return
	}
	return *v, true
}

// OldTracked returns the old "tracked" field's value of the ChainCursor entity.
// If the ChainCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChainCursorMutation) OldTracked(ctx context.Context) (v []int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTracked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTracked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTracked: %w", err)
	}
	return oldValue.Tracked, nil
}

// AppendTracked adds i to the "tracked" field.
func (m *ChainCursorMutation) AppendTracked(i []int64) {
	m.appendtracked = append(m.appendtracked, i...)
}

// AppendedTracked returns the list of values that were appended to the "tracked" field in this mutation.
func (m *ChainCursorMutation) AppendedTracked() ([]int64, bool) {
	if len(m.appendtracked) == 0 {
		return nil, false
	}
	return m.appendtracked, true
}

// ClearTracked clears the value of the "tracked" field.
func (m *ChainCursorMutation) ClearTracked() {
	m.tracked = nil
	m.appendtracked = nil
	m.clearedFields[chaincursor.FieldTracked] = struct{}{}
}

// TrackedCleared returns if the "tracked" field was cleared in this mutation.
func (m *ChainCursorMutation) TrackedCleared() bool {
	_, ok := m.clearedFields[chaincursor.FieldTracked]
	return ok
}

// ResetTracked resets all changes to the "tracked" field.
func (m *ChainCursorMutation) ResetTracked() {
	m.tracked = nil
	m.appendtracked = nil
	delete(m.clearedFields, chaincursor.FieldTracked)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChainCursorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChainCursorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChainCursor entity.
// If the ChainCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChainCursorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChainCursorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ChainCursorMutation builder.
func (m *ChainCursorMutation) Where(ps ...predicate.ChainCursor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChainCursorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChainCursorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChainCursor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChainCursorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChainCursorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChainCursor).
func (m *ChainCursorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChainCursorMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.highest_seen != nil {
		fields = append(fields, chaincursor.FieldHighestSeen)
	}
	if m.tracked != nil {
		fields = append(fields, chaincursor.FieldTracked)
	}
	if m.updated_at != nil {
		fields = append(fields, chaincursor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChainCursorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chaincursor.FieldHighestSeen:
		return m.HighestSeen()
	case chaincursor.FieldTracked:
		return m.Tracked()
	case chaincursor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChainCursorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chaincursor.FieldHighestSeen:
		return m.OldHighestSeen(ctx)
	case chaincursor.FieldTracked:
		return m.OldTracked(ctx)
	case chaincursor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChainCursor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChainCursorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chaincursor.FieldHighestSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighestSeen(v)
		return nil
	case chaincursor.FieldTracked:
		v, ok := value.([]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTracked(v)
		return nil
	case chaincursor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChainCursor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChainCursorMutation) AddedFields() []string {
	var fields []string
	if m.addhighest_seen != nil {
		fields = append(fields, chaincursor.FieldHighestSeen)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChainCursorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chaincursor.FieldHighestSeen:
		return m.AddedHighestSeen()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChainCursorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chaincursor.FieldHighestSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHighestSeen(v)
		return nil
	}
	return fmt.Errorf("unknown ChainCursor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChainCursorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chaincursor.FieldTracked) {
		fields = append(fields, chaincursor.FieldTracked)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChainCursorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChainCursorMutation) ClearField(name string) error {
	switch name {
	case chaincursor.FieldTracked:
		m.ClearTracked()
		return nil
	}
	return fmt.Errorf("unknown ChainCursor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChainCursorMutation) ResetField(name string) error {
	switch name {
	case chaincursor.FieldHighestSeen:
		m.ResetHighestSeen()
		return nil
	case chaincursor.FieldTracked:
		m.ResetTracked()
		return nil
	case chaincursor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChainCursor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChainCursorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChainCursorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChainCursorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChainCursorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChainCursorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChainCursorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChainCursorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChainCursor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChainCursorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChainCursor edge %s", name)
}

// DeliveryMarkMutation represents an operation that mutates the DeliveryMark nodes in the graph.
type DeliveryMarkMutation struct {
	config
	op             Op
	typ            string
	id             *string
	chain_id       *string
	proposal_id    *int64
	addproposal_id *int64
	subscriber_id  *string
	message_id     *string
	sent_at        *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*DeliveryMark, error)
	predicates     []predicate.DeliveryMark
}

var _ ent.Mutation = (*DeliveryMarkMutation)(nil)

// deliverymarkOption allows management of the mutation configuration using functional options.
type deliverymarkOption func(*DeliveryMarkMutation)

// newDeliveryMarkMutation creates new mutation for the DeliveryMark entity.
func newDeliveryMarkMutation(c config, op Op, opts ...deliverymarkOption) *DeliveryMarkMutation {
	m := &DeliveryMarkMutation{
		config:        c,
		op:            op,
		typ:           TypeDeliveryMark,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeliveryMarkID sets the ID field of the mutation.
func withDeliveryMarkID(id string) deliverymarkOption {
	return func(m *DeliveryMarkMutation) {
		var (
			err   error
			once  sync.Once
			value *DeliveryMark
		)
		m.oldValue = func(ctx context.Context) (*DeliveryMark, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeliveryMark.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeliveryMark sets the old DeliveryMark of the mutation.
func withDeliveryMark(node *DeliveryMark) deliverymarkOption {
	return func(m *DeliveryMarkMutation) {
		m.oldValue = func(context.Context) (*DeliveryMark, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeliveryMarkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeliveryMarkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeliveryMark entities.
func (m *DeliveryMarkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeliveryMarkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeliveryMarkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeliveryMark.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChainID sets the "chain_id" field.
func (m *DeliveryMarkMutation) SetChainID(s string) {
	m.chain_id = &s
}

// ChainID returns the value of the "chain_id" field in the mutation.
func (m *DeliveryMarkMutation) ChainID() (r string, exists bool) {
	v := m.chain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChainID returns the old "chain_id" field's value of the DeliveryMark entity.
// If the DeliveryMark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryMarkMutation) OldChainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChainID: %w", err)
	}
	return oldValue.ChainID, nil
}

// ResetChainID resets all changes to the "chain_id" field.
func (m *DeliveryMarkMutation) ResetChainID() {
	m.chain_id = nil
}

// SetProposalID sets the "proposal_id" field.
func (m *DeliveryMarkMutation) SetProposalID(i int64) {
	m.proposal_id = &i
	m.addproposal_id = nil
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *DeliveryMarkMutation) ProposalID() (r int64, exists bool) {
	v := m.proposal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the DeliveryMark entity.
// If the DeliveryMark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryMarkMutation) OldProposalID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// AddProposalID adds i to the "proposal_id" field.
func (m *DeliveryMarkMutation) AddProposalID(i int64) {
	if m.addproposal_id != nil {
		*m.addproposal_id += i
	} else {
		m.addproposal_id = &i
	}
}

// AddedProposalID returns the value that was added to the "proposal_id" field in this mutation.
func (m *DeliveryMarkMutation) AddedProposalID() (r int64, exists bool) {
	v := m.addproposal_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *DeliveryMarkMutation) ResetProposalID() {
	m.proposal_id = nil
	m.addproposal_id = nil
}

// SetSubscriberID sets the "subscriber_id" field.
func (m *DeliveryMarkMutation) SetSubscriberID(s string) {
	m.subscriber_id = &s
}

// SubscriberID returns the value of the "subscriber_id" field in the mutation.
func (m *DeliveryMarkMutation) SubscriberID() (r string, exists bool) {
	v := m.subscriber_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriberID returns the old "subscriber_id" field's value of the DeliveryMark entity.
// If the DeliveryMark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryMarkMutation) OldSubscriberID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriberID: %w", err)
	}
	return oldValue.SubscriberID, nil
}

// ResetSubscriberID resets all changes to the "subscriber_id" field.
func (m *DeliveryMarkMutation) ResetSubscriberID() {
	m.subscriber_id = nil
}

// SetMessageID sets the "message_id" field.
func (m *DeliveryMarkMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *DeliveryMarkMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the DeliveryMark entity.
// If the DeliveryMark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryMarkMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ClearMessageID clears the value of the "message_id" field.
func (m *DeliveryMarkMutation) ClearMessageID() {
	m.message_id = nil
	m.clearedFields[deliverymark.FieldMessageID] = struct{}{}
}

// MessageIDCleared returns if the "message_id" field was cleared in this mutation.
func (m *DeliveryMarkMutation) MessageIDCleared() bool {
	_, ok := m.clearedFields[deliverymark.FieldMessageID]
	return ok
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *DeliveryMarkMutation) ResetMessageID() {
	m.message_id = nil
	delete(m.clearedFields, deliverymark.FieldMessageID)
}

// SetSentAt sets the "sent_at" field.
func (m *DeliveryMarkMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *DeliveryMarkMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the DeliveryMark entity.
// If the DeliveryMark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryMarkMutation) OldSentAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *DeliveryMarkMutation) ResetSentAt() {
	m.sent_at = nil
}

// Where appends a list predicates to the DeliveryMarkMutation builder.
func (m *DeliveryMarkMutation) Where(ps ...predicate.DeliveryMark) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeliveryMarkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeliveryMarkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeliveryMark, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeliveryMarkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeliveryMarkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeliveryMark).
func (m *DeliveryMarkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeliveryMarkMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.chain_id != nil {
		fields = append(fields, deliverymark.FieldChainID)
	}
	if m.proposal_id != nil {
		fields = append(fields, deliverymark.FieldProposalID)
	}
	if m.subscriber_id != nil {
		fields = append(fields, deliverymark.FieldSubscriberID)
	}
	if m.message_id != nil {
		fields = append(fields, deliverymark.FieldMessageID)
	}
	if m.sent_at != nil {
		fields = append(fields, deliverymark.FieldSentAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeliveryMarkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deliverymark.FieldChainID:
		return m.ChainID()
	case deliverymark.FieldProposalID:
		return m.ProposalID()
	case deliverymark.FieldSubscriberID:
		return m.SubscriberID()
	case deliverymark.FieldMessageID:
		return m.MessageID()
	case deliverymark.FieldSentAt:
		return m.SentAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeliveryMarkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deliverymark.FieldChainID:
		return m.OldChainID(ctx)
	case deliverymark.FieldProposalID:
		return m.OldProposalID(ctx)
	case deliverymark.FieldSubscriberID:
		return m.OldSubscriberID(ctx)
	case deliverymark.FieldMessageID:
		return m.OldMessageID(ctx)
	case deliverymark.FieldSentAt:
		return m.OldSentAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeliveryMark field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliveryMarkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deliverymark.FieldChainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChainID(v)
		return nil
	case deliverymark.FieldProposalID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	case deliverymark.FieldSubscriberID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriberID(v)
		return nil
	case deliverymark.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case deliverymark.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeliveryMark field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeliveryMarkMutation) AddedFields() []string {
	var fields []string
	if m.addproposal_id != nil {
		fields = append(fields, deliverymark.FieldProposalID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeliveryMarkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deliverymark.FieldProposalID:
		return m.AddedProposalID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliveryMarkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deliverymark.FieldProposalID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProposalID(v)
		return nil
	}
	return fmt.Errorf("unknown DeliveryMark numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeliveryMarkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deliverymark.FieldMessageID) {
		fields = append(fields, deliverymark.FieldMessageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeliveryMarkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeliveryMarkMutation) ClearField(name string) error {
	switch name {
	case deliverymark.FieldMessageID:
		m.ClearMessageID()
		return nil
	}
	return fmt.Errorf("unknown DeliveryMark nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeliveryMarkMutation) ResetField(name string) error {
	switch name {
	case deliverymark.FieldChainID:
		m.ResetChainID()
		return nil
	case deliverymark.FieldProposalID:
		m.ResetProposalID()
		return nil
	case deliverymark.FieldSubscriberID:
		m.ResetSubscriberID()
		return nil
	case deliverymark.FieldMessageID:
		m.ResetMessageID()
		return nil
	case deliverymark.FieldSentAt:
		m.ResetSentAt()
		return nil
	}
	return fmt.Errorf("unknown DeliveryMark field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeliveryMarkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeliveryMarkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeliveryMarkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeliveryMarkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeliveryMarkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeliveryMarkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeliveryMarkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeliveryMark unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeliveryMarkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeliveryMark edge %s", name)
}

// ProposalMutation represents an operation that mutates the Proposal nodes in the graph.
type ProposalMutation struct {
	config
	op             Op
	typ            string
	id             *string
	chain_id       *string
	proposal_id    *int64
	addproposal_id *int64
	title          *string
	description    *string
	status         *proposal.Status
	proposal_type  *string
	proposer       *string
	submit_time    *time.Time
	voting_start   *time.Time
	voting_end     *time.Time
	first_seen_at  *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Proposal, error)
	predicates     []predicate.Proposal
}

var _ ent.Mutation = (*ProposalMutation)(nil)

// proposalOption allows management of the mutation configuration using functional options.
type proposalOption func(*ProposalMutation)

// newProposalMutation creates new mutation for the Proposal entity.
func newProposalMutation(c config, op Op, opts ...proposalOption) *ProposalMutation {
	m := &ProposalMutation{
		config:        c,
		op:            op,
		typ:           TypeProposal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProposalID sets the ID field of the mutation.
func withProposalID(id string) proposalOption {
	return func(m *ProposalMutation) {
		var (
			err   error
			once  sync.Once
			value *Proposal
		)
		m.oldValue = func(ctx context.Context) (*Proposal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Proposal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProposal sets the old Proposal of the mutation.
func withProposal(node *Proposal) proposalOption {
	return func(m *ProposalMutation) {
		m.oldValue = func(context.Context) (*Proposal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProposalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProposalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Proposal entities.
func (m *ProposalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProposalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProposalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Proposal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChainID sets the "chain_id" field.
func (m *ProposalMutation) SetChainID(s string) {
	m.chain_id = &s
}

// ChainID returns the value of the "chain_id" field in the mutation.
func (m *ProposalMutation) ChainID() (r string, exists bool) {
	v := m.chain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChainID returns the old "chain_id" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldChainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChainID: %w", err)
	}
	return oldValue.ChainID, nil
}

// ResetChainID resets all changes to the "chain_id" field.
func (m *ProposalMutation) ResetChainID() {
	m.chain_id = nil
}

// SetProposalID sets the "proposal_id" field.
func (m *ProposalMutation) SetProposalID(i int64) {
	m.proposal_id = &i
	m.addproposal_id = nil
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *ProposalMutation) ProposalID() (r int64, exists bool) {
	v := m.proposal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldProposalID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// AddProposalID adds i to the "proposal_id" field.
func (m *ProposalMutation) AddProposalID(i int64) {
	if m.addproposal_id != nil {
		*m.addproposal_id += i
	} else {
		m.addproposal_id = &i
	}
}

// AddedProposalID returns the value that was added to the "proposal_id" field in this mutation.
func (m *ProposalMutation) AddedProposalID() (r int64, exists bool) {
	v := m.addproposal_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *ProposalMutation) ResetProposalID() {
	m.proposal_id = nil
	m.addproposal_id = nil
}

// SetTitle sets the "title" field.
func (m *ProposalMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ProposalMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ProposalMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ProposalMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProposalMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ProposalMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *ProposalMutation) SetStatus(pr proposal.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProposalMutation) Status() (r proposal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldStatus(ctx context.Context) (v proposal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProposalMutation) ResetStatus() {
	m.status = nil
}

// SetProposalType sets the "proposal_type" field.
func (m *ProposalMutation) SetProposalType(s string) {
	m.proposal_type = &s
}

// ProposalType returns the value of the "proposal_type" field in the mutation.
func (m *ProposalMutation) ProposalType() (r string, exists bool) {
	v := m.proposal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalType returns the old "proposal_type" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldProposalType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalType: %w", err)
	}
	return oldValue.ProposalType, nil
}

// ClearProposalType clears the value of the "proposal_type" field.
func (m *ProposalMutation) ClearProposalType() {
	m.proposal_type = nil
	m.clearedFields[proposal.FieldProposalType] = struct{}{}
}

// ProposalTypeCleared returns if the "proposal_type" field was cleared in this mutation.
func (m *ProposalMutation) ProposalTypeCleared() bool {
	_, ok := m.clearedFields[proposal.FieldProposalType]
	return ok
}

// ResetProposalType resets all changes to the "proposal_type" field.
func (m *ProposalMutation) ResetProposalType() {
	m.proposal_type = nil
	delete(m.clearedFields, proposal.FieldProposalType)
}

// SetProposer sets the "proposer" field.
func (m *ProposalMutation) SetProposer(s string) {
	m.proposer = &s
}

// Proposer returns the value of the "proposer" field in the mutation.
func (m *ProposalMutation) Proposer() (r string, exists bool) {
	v := m.proposer
	if v == nil {
		return
	}
	return *v, true
}

// OldProposer returns the old "proposer" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldProposer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposer: %w", err)
	}
	return oldValue.Proposer, nil
}

// ClearProposer clears the value of the "proposer" field.
func (m *ProposalMutation) ClearProposer() {
	m.proposer = nil
	m.clearedFields[proposal.FieldProposer] = struct{}{}
}

// ProposerCleared returns if the "proposer" field was cleared in this mutation.
func (m *ProposalMutation) ProposerCleared() bool {
	_, ok := m.clearedFields[proposal.FieldProposer]
	return ok
}

// ResetProposer resets all changes to the "proposer" field.
func (m *ProposalMutation) ResetProposer() {
	m.proposer = nil
	delete(m.clearedFields, proposal.FieldProposer)
}

// SetSubmitTime sets the "submit_time" field.
func (m *ProposalMutation) SetSubmitTime(t time.Time) {
	m.submit_time = &t
}

// SubmitTime returns the value of the "submit_time" field in the mutation.
func (m *ProposalMutation) SubmitTime() (r time.Time, exists bool) {
	v := m.submit_time
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmitTime returns the old "submit_time" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldSubmitTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmitTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmitTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmitTime: %w", err)
	}
	return oldValue.SubmitTime, nil
}

// ClearSubmitTime clears the value of the "submit_time" field.
func (m *ProposalMutation) ClearSubmitTime() {
	m.submit_time = nil
	m.clearedFields[proposal.FieldSubmitTime] = struct{}{}
}

// SubmitTimeCleared returns if the "submit_time" field was cleared in this mutation.
func (m *ProposalMutation) SubmitTimeCleared() bool {
	_, ok := m.clearedFields[proposal.FieldSubmitTime]
	return ok
}

// ResetSubmitTime resets all changes to the "submit_time" field.
func (m *ProposalMutation) ResetSubmitTime() {
	m.submit_time = nil
	delete(m.clearedFields, proposal.FieldSubmitTime)
}

// SetVotingStart sets the "voting_start" field.
func (m *ProposalMutation) SetVotingStart(t time.Time) {
	m.voting_start = &t
}

// VotingStart returns the value of the "voting_start" field in the mutation.
func (m *ProposalMutation) VotingStart() (r time.Time, exists bool) {
	v := m.voting_start
	if v == nil {
		return
	}
	return *v, true
}

// OldVotingStart returns the old "voting_start" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldVotingStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVotingStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVotingStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVotingStart: %w", err)
	}
	return oldValue.VotingStart, nil
}

// ClearVotingStart clears the value of the "voting_start" field.
func (m *ProposalMutation) ClearVotingStart() {
	m.voting_start = nil
	m.clearedFields[proposal.FieldVotingStart] = struct{}{}
}

// VotingStartCleared returns if the "voting_start" field was cleared in this mutation.
func (m *ProposalMutation) VotingStartCleared() bool {
	_, ok := m.clearedFields[proposal.FieldVotingStart]
	return ok
}

// ResetVotingStart resets all changes to the "voting_start" field.
func (m *ProposalMutation) ResetVotingStart() {
	m.voting_start = nil
	delete(m.clearedFields, proposal.FieldVotingStart)
}

// SetVotingEnd sets the "voting_end" field.
func (m *ProposalMutation) SetVotingEnd(t time.Time) {
	m.voting_end = &t
}

// VotingEnd returns the value of the "voting_end" field in the mutation.
func (m *ProposalMutation) VotingEnd() (r time.Time, exists bool) {
	v := m.voting_end
	if v == nil {
		return
	}
	return *v, true
}

// OldVotingEnd returns the old "voting_end" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldVotingEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVotingEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVotingEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVotingEnd: %w", err)
	}
	return oldValue.VotingEnd, nil
}

// ClearVotingEnd clears the value of the "voting_end" field.
func (m *ProposalMutation) ClearVotingEnd() {
	m.voting_end = nil
	m.clearedFields[proposal.FieldVotingEnd] = struct{}{}
}

// VotingEndCleared returns if the "voting_end" field was cleared in this mutation.
func (m *ProposalMutation) VotingEndCleared() bool {
	_, ok := m.clearedFields[proposal.FieldVotingEnd]
	return ok
}

// ResetVotingEnd resets all changes to the "voting_end" field.
func (m *ProposalMutation) ResetVotingEnd() {
	m.voting_end = nil
	delete(m.clearedFields, proposal.FieldVotingEnd)
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *ProposalMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *ProposalMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *ProposalMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProposalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProposalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProposalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProposalMutation builder.
func (m *ProposalMutation) Where(ps ...predicate.Proposal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProposalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProposalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Proposal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProposalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProposalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Proposal).
func (m *ProposalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProposalMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.chain_id != nil {
		fields = append(fields, proposal.FieldChainID)
	}
	if m.proposal_id != nil {
		fields = append(fields, proposal.FieldProposalID)
	}
	if m.title != nil {
		fields = append(fields, proposal.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, proposal.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, proposal.FieldStatus)
	}
	if m.proposal_type != nil {
		fields = append(fields, proposal.FieldProposalType)
	}
	if m.proposer != nil {
		fields = append(fields, proposal.FieldProposer)
	}
	if m.submit_time != nil {
		fields = append(fields, proposal.FieldSubmitTime)
	}
	if m.voting_start != nil {
		fields = append(fields, proposal.FieldVotingStart)
	}
	if m.voting_end != nil {
		fields = append(fields, proposal.FieldVotingEnd)
	}
	if m.first_seen_at != nil {
		fields = append(fields, proposal.FieldFirstSeenAt)
	}
	if m.updated_at != nil {
		fields = append(fields, proposal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProposalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proposal.FieldChainID:
		return m.ChainID()
	case proposal.FieldProposalID:
		return m.ProposalID()
	case proposal.FieldTitle:
		return m.Title()
	case proposal.FieldDescription:
		return m.Description()
	case proposal.FieldStatus:
		return m.Status()
	case proposal.FieldProposalType:
		return m.ProposalType()
	case proposal.FieldProposer:
		return m.Proposer()
	case proposal.FieldSubmitTime:
		return m.SubmitTime()
	case proposal.FieldVotingStart:
		return m.VotingStart()
	case proposal.FieldVotingEnd:
		return m.VotingEnd()
	case proposal.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case proposal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProposalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proposal.FieldChainID:
		return m.OldChainID(ctx)
	case proposal.FieldProposalID:
		return m.OldProposalID(ctx)
	case proposal.FieldTitle:
		return m.OldTitle(ctx)
	case proposal.FieldDescription:
		return m.OldDescription(ctx)
	case proposal.FieldStatus:
		return m.OldStatus(ctx)
	case proposal.FieldProposalType:
		return m.OldProposalType(ctx)
	case proposal.FieldProposer:
		return m.OldProposer(ctx)
	case proposal.FieldSubmitTime:
		return m.OldSubmitTime(ctx)
	case proposal.FieldVotingStart:
		return m.OldVotingStart(ctx)
	case proposal.FieldVotingEnd:
		return m.OldVotingEnd(ctx)
	case proposal.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case proposal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Proposal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proposal.FieldChainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChainID(v)
		return nil
	case proposal.FieldProposalID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	case proposal.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case proposal.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case proposal.FieldStatus:
		v, ok := value.(proposal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case proposal.FieldProposalType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalType(v)
		return nil
	case proposal.FieldProposer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposer(v)
		return nil
	case proposal.FieldSubmitTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmitTime(v)
		return nil
	case proposal.FieldVotingStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVotingStart(v)
		return nil
	case proposal.FieldVotingEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVotingEnd(v)
		return nil
	case proposal.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case proposal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProposalMutation) AddedFields() []string {
	var fields []string
	if m.addproposal_id != nil {
		fields = append(fields, proposal.FieldProposalID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProposalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case proposal.FieldProposalID:
		return m.AddedProposalID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case proposal.FieldProposalID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProposalID(v)
		return nil
	}
	return fmt.Errorf("unknown Proposal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProposalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(proposal.FieldProposalType) {
		fields = append(fields, proposal.FieldProposalType)
	}
	if m.FieldCleared(proposal.FieldProposer) {
		fields = append(fields, proposal.FieldProposer)
	}
	if m.FieldCleared(proposal.FieldSubmitTime) {
		fields = append(fields, proposal.FieldSubmitTime)
	}
	if m.FieldCleared(proposal.FieldVotingStart) {
		fields = append(fields, proposal.FieldVotingStart)
	}
	if m.FieldCleared(proposal.FieldVotingEnd) {
		fields = append(fields, proposal.FieldVotingEnd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProposalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProposalMutation) ClearField(name string) error {
	switch name {
	case proposal.FieldProposalType:
		m.ClearProposalType()
		return nil
	case proposal.FieldProposer:
		m.ClearProposer()
		return nil
	case proposal.FieldSubmitTime:
		m.ClearSubmitTime()
		return nil
	case proposal.FieldVotingStart:
		m.ClearVotingStart()
		return nil
	case proposal.FieldVotingEnd:
		m.ClearVotingEnd()
		return nil
	}
	return fmt.Errorf("unknown Proposal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProposalMutation) ResetField(name string) error {
	switch name {
	case proposal.FieldChainID:
		m.ResetChainID()
		return nil
	case proposal.FieldProposalID:
		m.ResetProposalID()
		return nil
	case proposal.FieldTitle:
		m.ResetTitle()
		return nil
	case proposal.FieldDescription:
		m.ResetDescription()
		return nil
	case proposal.FieldStatus:
		m.ResetStatus()
		return nil
	case proposal.FieldProposalType:
		m.ResetProposalType()
		return nil
	case proposal.FieldProposer:
		m.ResetProposer()
		return nil
	case proposal.FieldSubmitTime:
		m.ResetSubmitTime()
		return nil
	case proposal.FieldVotingStart:
		m.ResetVotingStart()
		return nil
	case proposal.FieldVotingEnd:
		m.ResetVotingEnd()
		return nil
	case proposal.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case proposal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProposalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProposalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProposalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProposalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProposalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProposalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProposalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Proposal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProposalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Proposal edge %s", name)
}

// SubscriberMutation represents an operation that mutates the Subscriber nodes in the graph.
type SubscriberMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	address             *string
	chains              *[]string
	appendchains        []string
	risk_tolerance      *subscriber.RiskTolerance
	criteria_weights    *map[string]float64
	policy_blurbs       *[]string
	appendpolicy_blurbs []string
	active              *bool
	active_until        *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Subscriber, error)
	predicates          []predicate.Subscriber
}

var _ ent.Mutation = (*SubscriberMutation)(nil)

// subscriberOption allows management of the mutation configuration using functional options.
type subscriberOption func(*SubscriberMutation)

// newSubscriberMutation creates new mutation for the Subscriber entity.
func newSubscriberMutation(c config, op Op, opts ...subscriberOption) *SubscriberMutation {
	m := &SubscriberMutation{
		config:        c,
		op:            op,
		typ:           TypeSubscriber,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubscriberID sets the ID field of the mutation.
func withSubscriberID(id string) subscriberOption {
	return func(m *SubscriberMutation) {
		var (
			err   error
			once  sync.Once
			value *Subscriber
		)
		m.oldValue = func(ctx context.Context) (*Subscriber, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subscriber.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubscriber sets the old Subscriber of the mutation.
func withSubscriber(node *Subscriber) subscriberOption {
	return func(m *SubscriberMutation) {
		m.oldValue = func(context.Context) (*Subscriber, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubscriberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubscriberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Subscriber entities.
func (m *SubscriberMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubscriberMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubscriberMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subscriber.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAddress sets the "address" field.
func (m *SubscriberMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *SubscriberMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Subscriber entity.
// If the Subscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriberMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ResetAddress resets all changes to the "address" field.
func (m *SubscriberMutation) ResetAddress() {
	m.address = nil
}

// SetChains sets the "chains" field.
func (m *SubscriberMutation) SetChains(s []string) {
	m.chains = &s
	m.appendchains = nil
}

// Chains returns the value of the "chains" field in the mutation.
func (m *SubscriberMutation) Chains() (r []string, exists bool) {
	v := m.chains
	if v == nil {
		return
	}
	return *v, true
}

// OldChains returns the old "chains" field's value of the Subscriber entity.
// If the Subscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriberMutation) OldChains(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChains is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChains requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChains: %w", err)
	}
	return oldValue.Chains, nil
}

// AppendChains adds s to the "chains" field.
func (m *SubscriberMutation) AppendChains(s []string) {
	m.appendchains = append(m.appendchains, s...)
}

// AppendedChains returns the list of values that were appended to the "chains" field in this mutation.
func (m *SubscriberMutation) AppendedChains() ([]string, bool) {
	if len(m.appendchains) == 0 {
		return nil, false
	}
	return m.appendchains, true
}

// ResetChains resets all changes to the "chains" field.
func (m *SubscriberMutation) ResetChains() {
	m.chains = nil
	m.appendchains = nil
}

// SetRiskTolerance sets the "risk_tolerance" field.
func (m *SubscriberMutation) SetRiskTolerance(st subscriber.RiskTolerance) {
	m.risk_tolerance = &st
}

// RiskTolerance returns the value of the "risk_tolerance" field in the mutation.
func (m *SubscriberMutation) RiskTolerance() (r subscriber.RiskTolerance, exists bool) {
	v := m.risk_tolerance
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskTolerance returns the old "risk_tolerance" field's value of the Subscriber entity.
// If the Subscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriberMutation) OldRiskTolerance(ctx context.Context) (v subscriber.RiskTolerance, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskTolerance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskTolerance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskTolerance: %w", err)
	}
	return oldValue.RiskTolerance, nil
}

// ResetRiskTolerance resets all changes to the "risk_tolerance" field.
func (m *SubscriberMutation) ResetRiskTolerance() {
	m.risk_tolerance = nil
}

// SetCriteriaWeights sets the "criteria_weights" field.
func (m *SubscriberMutation) SetCriteriaWeights(value map[string]float64) {
	m.criteria_weights = &value
}

// CriteriaWeights returns the value of the "criteria_weights" field in the mutation.
func (m *SubscriberMutation) CriteriaWeights() (r map[string]float64, exists bool) {
	v := m.criteria_weights
	if v == nil {
		return
	}
	return *v, true
}

// OldCriteriaWeights returns the old "criteria_weights" field's value of the Subscriber entity.
// If the Subscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriberMutation) OldCriteriaWeights(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriteriaWeights is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriteriaWeights requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriteriaWeights: %w", err)
	}
	return oldValue.CriteriaWeights, nil
}

// ClearCriteriaWeights clears the value of the "criteria_weights" field.
func (m *SubscriberMutation) ClearCriteriaWeights() {
	m.criteria_weights = nil
	m.clearedFields[subscriber.FieldCriteriaWeights] = struct{}{}
}

// CriteriaWeightsCleared returns if the "criteria_weights" field was cleared in this mutation.
func (m *SubscriberMutation) CriteriaWeightsCleared() bool {
	_, ok := m.clearedFields[subscriber.FieldCriteriaWeights]
	return ok
}

// ResetCriteriaWeights resets all changes to the "criteria_weights" field.
func (m *SubscriberMutation) ResetCriteriaWeights() {
	m.criteria_weights = nil
	delete(m.clearedFields, subscriber.FieldCriteriaWeights)
}

// SetPolicyBlurbs sets the "policy_blurbs" field.
func (m *SubscriberMutation) SetPolicyBlurbs(s []string) {
	m.policy_blurbs = &s
	m.appendpolicy_blurbs = nil
}

// PolicyBlurbs returns the value of the "policy_blurbs" field in the mutation.
func (m *SubscriberMutation) PolicyBlurbs() (r []string, exists bool) {
	v := m.policy_blurbs
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyBlurbs returns the old "policy_blurbs" field's value of the Subscriber entity.
// If the Subscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriberMutation) OldPolicyBlurbs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyBlurbs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyBlurbs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyBlurbs: %w", err)
	}
	return oldValue.PolicyBlurbs, nil
}

// AppendPolicyBlurbs adds s to the "policy_blurbs" field.
func (m *SubscriberMutation) AppendPolicyBlurbs(s []string) {
	m.appendpolicy_blurbs = append(m.appendpolicy_blurbs, s...)
}

// AppendedPolicyBlurbs returns the list of values that were appended to the "policy_blurbs" field in this mutation.
func (m *SubscriberMutation) AppendedPolicyBlurbs() ([]string, bool) {
	if len(m.appendpolicy_blurbs) == 0 {
		return nil, false
	}
	return m.appendpolicy_blurbs, true
}

// ClearPolicyBlurbs clears the value of the "policy_blurbs" field.
func (m *SubscriberMutation) ClearPolicyBlurbs() {
	m.policy_blurbs = nil
	m.appendpolicy_blurbs = nil
	m.clearedFields[subscriber.FieldPolicyBlurbs] = struct{}{}
}

// PolicyBlurbsCleared returns if the "policy_blurbs" field was cleared in this mutation.
func (m *SubscriberMutation) PolicyBlurbsCleared() bool {
	_, ok := m.clearedFields[subscriber.FieldPolicyBlurbs]
	return ok
}

// ResetPolicyBlurbs resets all changes to the "policy_blurbs" field.
func (m *SubscriberMutation) ResetPolicyBlurbs() {
	m.policy_blurbs = nil
	m.appendpolicy_blurbs = nil
	delete(m.clearedFields, subscriber.FieldPolicyBlurbs)
}

// SetActive sets the "active" field.
func (m *SubscriberMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *SubscriberMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Subscriber entity.
// If the Subscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriberMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *SubscriberMutation) ResetActive() {
	m.active = nil
}

// SetActiveUntil sets the "active_until" field.
func (m *SubscriberMutation) SetActiveUntil(t time.Time) {
	m.active_until = &t
}

// ActiveUntil returns the value of the "active_until" field in the mutation.
func (m *SubscriberMutation) ActiveUntil() (r time.Time, exists bool) {
	v := m.active_until
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveUntil returns the old "active_until" field's value of the Subscriber entity.
// If the Subscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriberMutation) OldActiveUntil(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveUntil: %w", err)
	}
	return oldValue.ActiveUntil, nil
}

// ResetActiveUntil resets all changes to the "active_until" field.
func (m *SubscriberMutation) ResetActiveUntil() {
	m.active_until = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SubscriberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubscriberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subscriber entity.
// If the Subscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubscriberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubscriberMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubscriberMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Subscriber entity.
// If the Subscriber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriberMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubscriberMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SubscriberMutation builder.
func (m *SubscriberMutation) Where(ps ...predicate.Subscriber) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubscriberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubscriberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subscriber, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubscriberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubscriberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subscriber).
func (m *SubscriberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubscriberMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.address != nil {
		fields = append(fields, subscriber.FieldAddress)
	}
	if m.chains != nil {
		fields = append(fields, subscriber.FieldChains)
	}
	if m.risk_tolerance != nil {
		fields = append(fields, subscriber.FieldRiskTolerance)
	}
	if m.criteria_weights != nil {
		fields = append(fields, subscriber.FieldCriteriaWeights)
	}
	if m.policy_blurbs != nil {
		fields = append(fields, subscriber.FieldPolicyBlurbs)
	}
	if m.active != nil {
		fields = append(fields, subscriber.FieldActive)
	}
	if m.active_until != nil {
		fields = append(fields, subscriber.FieldActiveUntil)
	}
	if m.created_at != nil {
		fields = append(fields, subscriber.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subscriber.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubscriberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subscriber.FieldAddress:
		return m.Address()
	case subscriber.FieldChains:
		return m.Chains()
	case subscriber.FieldRiskTolerance:
		return m.RiskTolerance()
	case subscriber.FieldCriteriaWeights:
		return m.CriteriaWeights()
	case subscriber.FieldPolicyBlurbs:
		return m.PolicyBlurbs()
	case subscriber.FieldActive:
		return m.Active()
	case subscriber.FieldActiveUntil:
		return m.ActiveUntil()
	case subscriber.FieldCreatedAt:
		return m.CreatedAt()
	case subscriber.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubscriberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subscriber.FieldAddress:
		return m.OldAddress(ctx)
	case subscriber.FieldChains:
		return m.OldChains(ctx)
	case subscriber.FieldRiskTolerance:
		return m.OldRiskTolerance(ctx)
	case subscriber.FieldCriteriaWeights:
		return m.OldCriteriaWeights(ctx)
	case subscriber.FieldPolicyBlurbs:
		return m.OldPolicyBlurbs(ctx)
	case subscriber.FieldActive:
		return m.OldActive(ctx)
	case subscriber.FieldActiveUntil:
		return m.OldActiveUntil(ctx)
	case subscriber.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subscriber.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subscriber field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subscriber.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case subscriber.FieldChains:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChains(v)
		return nil
	case subscriber.FieldRiskTolerance:
		v, ok := value.(subscriber.RiskTolerance)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskTolerance(v)
		return nil
	case subscriber.FieldCriteriaWeights:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriteriaWeights(v)
		return nil
	case subscriber.FieldPolicyBlurbs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyBlurbs(v)
		return nil
	case subscriber.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case subscriber.FieldActiveUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveUntil(v)
		return nil
	case subscriber.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subscriber.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subscriber field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubscriberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubscriberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Subscriber numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubscriberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subscriber.FieldCriteriaWeights) {
		fields = append(fields, subscriber.FieldCriteriaWeights)
	}
	if m.FieldCleared(subscriber.FieldPolicyBlurbs) {
		fields = append(fields, subscriber.FieldPolicyBlurbs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubscriberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubscriberMutation) ClearField(name string) error {
	switch name {
	case subscriber.FieldCriteriaWeights:
		m.ClearCriteriaWeights()
		return nil
	case subscriber.FieldPolicyBlurbs:
		m.ClearPolicyBlurbs()
		return nil
	}
	return fmt.Errorf("unknown Subscriber nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubscriberMutation) ResetField(name string) error {
	switch name {
	case subscriber.FieldAddress:
		m.ResetAddress()
		return nil
	case subscriber.FieldChains:
		m.ResetChains()
		return nil
	case subscriber.FieldRiskTolerance:
		m.ResetRiskTolerance()
		return nil
	case subscriber.FieldCriteriaWeights:
		m.ResetCriteriaWeights()
		return nil
	case subscriber.FieldPolicyBlurbs:
		m.ResetPolicyBlurbs()
		return nil
	case subscriber.FieldActive:
		m.ResetActive()
		return nil
	case subscriber.FieldActiveUntil:
		m.ResetActiveUntil()
		return nil
	case subscriber.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subscriber.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Subscriber field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubscriberMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubscriberMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubscriberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubscriberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubscriberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubscriberMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubscriberMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Subscriber unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubscriberMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Subscriber edge %s", name)
}
