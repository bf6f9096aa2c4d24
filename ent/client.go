// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/govwatcher/govwatcher/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/govwatcher/govwatcher/ent/analysis"
	"github.com/govwatcher/govwatcher/ent/chaincursor"
	"github.com/govwatcher/govwatcher/ent/deliverymark"
	"github.com/govwatcher/govwatcher/ent/proposal"
	"github.com/govwatcher/govwatcher/ent/subscriber"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Analysis is the client for interacting with the Analysis builders.
	Analysis *AnalysisClient
	// ChainCursor is the client for interacting with the ChainCursor builders.
	ChainCursor *ChainCursorClient
	// DeliveryMark is the client for interacting with the DeliveryMark builders.
	DeliveryMark *DeliveryMarkClient
	// Proposal is the client for interacting with the Proposal builders.
	Proposal *ProposalClient
	// Subscriber is the client for interacting with the Subscriber builders.
	Subscriber *SubscriberClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Analysis = NewAnalysisClient(c.config)
	c.ChainCursor = NewChainCursorClient(c.config)
	c.DeliveryMark = NewDeliveryMarkClient(c.config)
	c.Proposal = NewProposalClient(c.config)
	c.Subscriber = NewSubscriberClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Analysis:     NewAnalysisClient(cfg),
		ChainCursor:  NewChainCursorClient(cfg),
		DeliveryMark: NewDeliveryMarkClient(cfg),
		Proposal:     NewProposalClient(cfg),
		Subscriber:   NewSubscriberClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Analysis:     NewAnalysisClient(cfg),
		ChainCursor:  NewChainCursorClient(cfg),
		DeliveryMark: NewDeliveryMarkClient(cfg),
		Proposal:     NewProposalClient(cfg),
		Subscriber:   NewSubscriberClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Analysis.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Analysis.Use(hooks...)
	c.ChainCursor.Use(hooks...)
	c.DeliveryMark.Use(hooks...)
	c.Proposal.Use(hooks...)
	c.Subscriber.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Analysis.Intercept(interceptors...)
	c.ChainCursor.Intercept(interceptors...)
	c.DeliveryMark.Intercept(interceptors...)
	c.Proposal.Intercept(interceptors...)
	c.Subscriber.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisMutation:
		return c.Analysis.mutate(ctx, m)
	case *ChainCursorMutation:
		return c.ChainCursor.mutate(ctx, m)
	case *DeliveryMarkMutation:
		return c.DeliveryMark.mutate(ctx, m)
	case *ProposalMutation:
		return c.Proposal.mutate(ctx, m)
	case *SubscriberMutation:
		return c.Subscriber.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisClient is a client for the Analysis schema.
type AnalysisClient struct {
	config
}

// NewAnalysisClient returns a client for the Analysis from the given config.
func NewAnalysisClient(c config) *AnalysisClient {
	return &AnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysis.Hooks(f(g(h())))`.
func (c *AnalysisClient) Use(hooks ...Hook) {
	c.hooks.Analysis = append(c.hooks.Analysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysis.Intercept(f(g(h())))`.
func (c *AnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.Analysis = append(c.inters.Analysis, interceptors...)
}

// Create returns a builder for creating a Analysis entity.
func (c *AnalysisClient) Create() *AnalysisCreate {
	mutation := newAnalysisMutation(c.config, OpCreate)
	return &AnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Analysis entities.
func (c *AnalysisClient) CreateBulk(builders ...*AnalysisCreate) *AnalysisCreateBulk {
	return &AnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisClient) MapCreateBulk(slice any, setFunc func(*AnalysisCreate, int)) *AnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisCreateBulk{err: fmt.Errorf("calling to AnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Analysis.
func (c *AnalysisClient) Update() *AnalysisUpdate {
	mutation := newAnalysisMutation(c.config, OpUpdate)
	return &AnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisClient) UpdateOne(_m *Analysis) *AnalysisUpdateOne {
	mutation := newAnalysisMutation(c.config, OpUpdateOne, withAnalysis(_m))
	return &AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisClient) UpdateOneID(id string) *AnalysisUpdateOne {
	mutation := newAnalysisMutation(c.config, OpUpdateOne, withAnalysisID(id))
	return &AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Analysis.
func (c *AnalysisClient) Delete() *AnalysisDelete {
	mutation := newAnalysisMutation(c.config, OpDelete)
	return &AnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisClient) DeleteOne(_m *Analysis) *AnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisClient) DeleteOneID(id string) *AnalysisDeleteOne {
	builder := c.Delete().Where(analysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisDeleteOne{builder}
}

// Query returns a query builder for Analysis.
func (c *AnalysisClient) Query() *AnalysisQuery {
	return &AnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a Analysis entity by its id.
func (c *AnalysisClient) Get(ctx context.Context, id string) (*Analysis, error) {
	return c.Query().Where(analysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisClient) GetX(ctx context.Context, id string) *Analysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnalysisClient) Hooks() []Hook {
	return c.hooks.Analysis
}

// Interceptors returns the client interceptors.
func (c *AnalysisClient) Interceptors() []Interceptor {
	return c.inters.Analysis
}

func (c *AnalysisClient) mutate(ctx context.Context, m *AnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Analysis mutation op: %q", m.Op())
	}
}

// ChainCursorClient is a client for the ChainCursor schema.
type ChainCursorClient struct {
	config
}

// NewChainCursorClient returns a client for the ChainCursor from the given config.
func NewChainCursorClient(c config) *ChainCursorClient {
	return &ChainCursorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chaincursor.Hooks(f(g(h())))`.
func (c *ChainCursorClient) Use(hooks ...Hook) {
	c.hooks.ChainCursor = append(c.hooks.ChainCursor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chaincursor.Intercept(f(g(h())))`.
func (c *ChainCursorClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChainCursor = append(c.inters.ChainCursor, interceptors...)
}

// Create returns a builder for creating a ChainCursor entity.
func (c *ChainCursorClient) Create() *ChainCursorCreate {
	mutation := newChainCursorMutation(c.config, OpCreate)
	return &ChainCursorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChainCursor entities.
func (c *ChainCursorClient) CreateBulk(builders ...*ChainCursorCreate) *ChainCursorCreateBulk {
	return &ChainCursorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChainCursorClient) MapCreateBulk(slice any, setFunc func(*ChainCursorCreate, int)) *ChainCursorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChainCursorCreateBulk{err: fmt.Errorf("calling to ChainCursorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChainCursorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChainCursorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChainCursor.
func (c *ChainCursorClient) Update() *ChainCursorUpdate {
	mutation := newChainCursorMutation(c.config, OpUpdate)
	return &ChainCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChainCursorClient) UpdateOne(_m *ChainCursor) *ChainCursorUpdateOne {
	mutation := newChainCursorMutation(c.config, OpUpdateOne, withChainCursor(_m))
	return &ChainCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChainCursorClient) UpdateOneID(id string) *ChainCursorUpdateOne {
	mutation := newChainCursorMutation(c.config, OpUpdateOne, withChainCursorID(id))
	return &ChainCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChainCursor.
func (c *ChainCursorClient) Delete() *ChainCursorDelete {
	mutation := newChainCursorMutation(c.config, OpDelete)
	return &ChainCursorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChainCursorClient) DeleteOne(_m *ChainCursor) *ChainCursorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChainCursorClient) DeleteOneID(id string) *ChainCursorDeleteOne {
	builder := c.Delete().Where(chaincursor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChainCursorDeleteOne{builder}
}

// Query returns a query builder for ChainCursor.
func (c *ChainCursorClient) Query() *ChainCursorQuery {
	return &ChainCursorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChainCursor},
		inters: c.Interceptors(),
	}
}

// Get returns a ChainCursor entity by its id.
func (c *ChainCursorClient) Get(ctx context.Context, id string) (*ChainCursor, error) {
	return c.Query().Where(chaincursor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChainCursorClient) GetX(ctx context.Context, id string) *ChainCursor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChainCursorClient) Hooks() []Hook {
	return c.hooks.ChainCursor
}

// Interceptors returns the client interceptors.
func (c *ChainCursorClient) Interceptors() []Interceptor {
	return c.inters.ChainCursor
}

func (c *ChainCursorClient) mutate(ctx context.Context, m *ChainCursorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChainCursorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChainCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChainCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChainCursorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChainCursor mutation op: %q", m.Op())
	}
}

// DeliveryMarkClient is a client for the DeliveryMark schema.
type DeliveryMarkClient struct {
	config
}

// NewDeliveryMarkClient returns a client for the DeliveryMark from the given config.
func NewDeliveryMarkClient(c config) *DeliveryMarkClient {
	return &DeliveryMarkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deliverymark.Hooks(f(g(h())))`.
func (c *DeliveryMarkClient) Use(hooks ...Hook) {
	c.hooks.DeliveryMark = append(c.hooks.DeliveryMark, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deliverymark.Intercept(f(g(h())))`.
func (c *DeliveryMarkClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeliveryMark = append(c.inters.DeliveryMark, interceptors...)
}

// Create returns a builder for creating a DeliveryMark entity.
func (c *DeliveryMarkClient) Create() *DeliveryMarkCreate {
	mutation := newDeliveryMarkMutation(c.config, OpCreate)
	return &DeliveryMarkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeliveryMark entities.
func (c *DeliveryMarkClient) CreateBulk(builders ...*DeliveryMarkCreate) *DeliveryMarkCreateBulk {
	return &DeliveryMarkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeliveryMarkClient) MapCreateBulk(slice any, setFunc func(*DeliveryMarkCreate, int)) *DeliveryMarkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeliveryMarkCreateBulk{err: fmt.Errorf("calling to DeliveryMarkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeliveryMarkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeliveryMarkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeliveryMark.
func (c *DeliveryMarkClient) Update() *DeliveryMarkUpdate {
	mutation := newDeliveryMarkMutation(c.config, OpUpdate)
	return &DeliveryMarkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeliveryMarkClient) UpdateOne(_m *DeliveryMark) *DeliveryMarkUpdateOne {
	mutation := newDeliveryMarkMutation(c.config, OpUpdateOne, withDeliveryMark(_m))
	return &DeliveryMarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeliveryMarkClient) UpdateOneID(id string) *DeliveryMarkUpdateOne {
	mutation := newDeliveryMarkMutation(c.config, OpUpdateOne, withDeliveryMarkID(id))
	return &DeliveryMarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeliveryMark.
func (c *DeliveryMarkClient) Delete() *DeliveryMarkDelete {
	mutation := newDeliveryMarkMutation(c.config, OpDelete)
	return &DeliveryMarkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeliveryMarkClient) DeleteOne(_m *DeliveryMark) *DeliveryMarkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeliveryMarkClient) DeleteOneID(id string) *DeliveryMarkDeleteOne {
	builder := c.Delete().Where(deliverymark.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeliveryMarkDeleteOne{builder}
}

// Query returns a query builder for DeliveryMark.
func (c *DeliveryMarkClient) Query() *DeliveryMarkQuery {
	return &DeliveryMarkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeliveryMark},
		inters: c.Interceptors(),
	}
}

// Get returns a DeliveryMark entity by its id.
func (c *DeliveryMarkClient) Get(ctx context.Context, id string) (*DeliveryMark, error) {
	return c.Query().Where(deliverymark.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeliveryMarkClient) GetX(ctx context.Context, id string) *DeliveryMark {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeliveryMarkClient) Hooks() []Hook {
	return c.hooks.DeliveryMark
}

// Interceptors returns the client interceptors.
func (c *DeliveryMarkClient) Interceptors() []Interceptor {
	return c.inters.DeliveryMark
}

func (c *DeliveryMarkClient) mutate(ctx context.Context, m *DeliveryMarkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeliveryMarkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeliveryMarkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeliveryMarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeliveryMarkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeliveryMark mutation op: %q", m.Op())
	}
}

// ProposalClient is a client for the Proposal schema.
type ProposalClient struct {
	config
}

// NewProposalClient returns a client for the Proposal from the given config.
func NewProposalClient(c config) *ProposalClient {
	return &ProposalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `proposal.Hooks(f(g(h())))`.
func (c *ProposalClient) Use(hooks ...Hook) {
	c.hooks.Proposal = append(c.hooks.Proposal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `proposal.Intercept(f(g(h())))`.
func (c *ProposalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Proposal = append(c.inters.Proposal, interceptors...)
}

// Create returns a builder for creating a Proposal entity.
func (c *ProposalClient) Create() *ProposalCreate {
	mutation := newProposalMutation(c.config, OpCreate)
	return &ProposalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Proposal entities.
func (c *ProposalClient) CreateBulk(builders ...*ProposalCreate) *ProposalCreateBulk {
	return &ProposalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProposalClient) MapCreateBulk(slice any, setFunc func(*ProposalCreate, int)) *ProposalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProposalCreateBulk{err: fmt.Errorf("calling to ProposalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProposalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProposalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Proposal.
func (c *ProposalClient) Update() *ProposalUpdate {
	mutation := newProposalMutation(c.config, OpUpdate)
	return &ProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProposalClient) UpdateOne(_m *Proposal) *ProposalUpdateOne {
	mutation := newProposalMutation(c.config, OpUpdateOne, withProposal(_m))
	return &ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProposalClient) UpdateOneID(id string) *ProposalUpdateOne {
	mutation := newProposalMutation(c.config, OpUpdateOne, withProposalID(id))
	return &ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Proposal.
func (c *ProposalClient) Delete() *ProposalDelete {
	mutation := newProposalMutation(c.config, OpDelete)
	return &ProposalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProposalClient) DeleteOne(_m *Proposal) *ProposalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProposalClient) DeleteOneID(id string) *ProposalDeleteOne {
	builder := c.Delete().Where(proposal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProposalDeleteOne{builder}
}

// Query returns a query builder for Proposal.
func (c *ProposalClient) Query() *ProposalQuery {
	return &ProposalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProposal},
		inters: c.Interceptors(),
	}
}

// Get returns a Proposal entity by its id.
func (c *ProposalClient) Get(ctx context.Context, id string) (*Proposal, error) {
	return c.Query().Where(proposal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProposalClient) GetX(ctx context.Context, id string) *Proposal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProposalClient) Hooks() []Hook {
	return c.hooks.Proposal
}

// Interceptors returns the client interceptors.
func (c *ProposalClient) Interceptors() []Interceptor {
	return c.inters.Proposal
}

func (c *ProposalClient) mutate(ctx context.Context, m *ProposalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProposalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProposalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Proposal mutation op: %q", m.Op())
	}
}

// SubscriberClient is a client for the Subscriber schema.
type SubscriberClient struct {
	config
}

// NewSubscriberClient returns a client for the Subscriber from the given config.
func NewSubscriberClient(c config) *SubscriberClient {
	return &SubscriberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subscriber.Hooks(f(g(h())))`.
func (c *SubscriberClient) Use(hooks ...Hook) {
	c.hooks.Subscriber = append(c.hooks.Subscriber, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subscriber.Intercept(f(g(h())))`.
func (c *SubscriberClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subscriber = append(c.inters.Subscriber, interceptors...)
}

// Create returns a builder for creating a Subscriber entity.
func (c *SubscriberClient) Create() *SubscriberCreate {
	mutation := newSubscriberMutation(c.config, OpCreate)
	return &SubscriberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subscriber entities.
func (c *SubscriberClient) CreateBulk(builders ...*SubscriberCreate) *SubscriberCreateBulk {
	return &SubscriberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubscriberClient) MapCreateBulk(slice any, setFunc func(*SubscriberCreate, int)) *SubscriberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubscriberCreateBulk{err: fmt.Errorf("calling to SubscriberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubscriberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubscriberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subscriber.
func (c *SubscriberClient) Update() *SubscriberUpdate {
	mutation := newSubscriberMutation(c.config, OpUpdate)
	return &SubscriberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubscriberClient) UpdateOne(_m *Subscriber) *SubscriberUpdateOne {
	mutation := newSubscriberMutation(c.config, OpUpdateOne, withSubscriber(_m))
	return &SubscriberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubscriberClient) UpdateOneID(id string) *SubscriberUpdateOne {
	mutation := newSubscriberMutation(c.config, OpUpdateOne, withSubscriberID(id))
	return &SubscriberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subscriber.
func (c *SubscriberClient) Delete() *SubscriberDelete {
	mutation := newSubscriberMutation(c.config, OpDelete)
	return &SubscriberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubscriberClient) DeleteOne(_m *Subscriber) *SubscriberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubscriberClient) DeleteOneID(id string) *SubscriberDeleteOne {
	builder := c.Delete().Where(subscriber.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubscriberDeleteOne{builder}
}

// Query returns a query builder for Subscriber.
func (c *SubscriberClient) Query() *SubscriberQuery {
	return &SubscriberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubscriber},
		inters: c.Interceptors(),
	}
}

// Get returns a Subscriber entity by its id.
func (c *SubscriberClient) Get(ctx context.Context, id string) (*Subscriber, error) {
	return c.Query().Where(subscriber.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubscriberClient) GetX(ctx context.Context, id string) *Subscriber {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubscriberClient) Hooks() []Hook {
	return c.hooks.Subscriber
}

// Interceptors returns the client interceptors.
func (c *SubscriberClient) Interceptors() []Interceptor {
	return c.inters.Subscriber
}

func (c *SubscriberClient) mutate(ctx context.Context, m *SubscriberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubscriberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubscriberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubscriberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubscriberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subscriber mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Analysis, ChainCursor, DeliveryMark, Proposal, Subscriber []ent.Hook
	}
	inters struct {
		Analysis, ChainCursor, DeliveryMark, Proposal, Subscriber []ent.Interceptor
	}
)
