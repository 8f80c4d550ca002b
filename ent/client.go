// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mkale/skillforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/mkale/skillforge/ent/activityevent"
	"github.com/mkale/skillforge/ent/collabparticipant"
	"github.com/mkale/skillforge/ent/collabsession"
	"github.com/mkale/skillforge/ent/completionevent"
	"github.com/mkale/skillforge/ent/discussion"
	"github.com/mkale/skillforge/ent/llmrequestevent"
	"github.com/mkale/skillforge/ent/messageevent"
	"github.com/mkale/skillforge/ent/profile"
	"github.com/mkale/skillforge/ent/vote"
	"github.com/mkale/skillforge/ent/xpledger"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActivityEvent is the client for interacting with the ActivityEvent builders.
	ActivityEvent *ActivityEventClient
	// CollabParticipant is the client for interacting with the CollabParticipant builders.
	CollabParticipant *CollabParticipantClient
	// CollabSession is the client for interacting with the CollabSession builders.
	CollabSession *CollabSessionClient
	// CompletionEvent is the client for interacting with the CompletionEvent builders.
	CompletionEvent *CompletionEventClient
	// Discussion is the client for interacting with the Discussion builders.
	Discussion *DiscussionClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MessageEvent is the client for interacting with the MessageEvent builders.
	MessageEvent *MessageEventClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// Vote is the client for interacting with the Vote builders.
	Vote *VoteClient
	// XpLedger is the client for interacting with the XpLedger builders.
	XpLedger *XpLedgerClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActivityEvent = NewActivityEventClient(c.config)
	c.CollabParticipant = NewCollabParticipantClient(c.config)
	c.CollabSession = NewCollabSessionClient(c.config)
	c.CompletionEvent = NewCompletionEventClient(c.config)
	c.Discussion = NewDiscussionClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MessageEvent = NewMessageEventClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.Vote = NewVoteClient(c.config)
	c.XpLedger = NewXpLedgerClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		ActivityEvent:     NewActivityEventClient(cfg),
		CollabParticipant: NewCollabParticipantClient(cfg),
		CollabSession:     NewCollabSessionClient(cfg),
		CompletionEvent:   NewCompletionEventClient(cfg),
		Discussion:        NewDiscussionClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		MessageEvent:      NewMessageEventClient(cfg),
		Profile:           NewProfileClient(cfg),
		Vote:              NewVoteClient(cfg),
		XpLedger:          NewXpLedgerClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		ActivityEvent:     NewActivityEventClient(cfg),
		CollabParticipant: NewCollabParticipantClient(cfg),
		CollabSession:     NewCollabSessionClient(cfg),
		CompletionEvent:   NewCompletionEventClient(cfg),
		Discussion:        NewDiscussionClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		MessageEvent:      NewMessageEventClient(cfg),
		Profile:           NewProfileClient(cfg),
		Vote:              NewVoteClient(cfg),
		XpLedger:          NewXpLedgerClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActivityEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.ActivityEvent, c.CollabParticipant, c.CollabSession, c.CompletionEvent,
		c.Discussion, c.LLMRequestEvent, c.MessageEvent, c.Profile, c.Vote, c.XpLedger,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActivityEvent, c.CollabParticipant, c.CollabSession, c.CompletionEvent,
		c.Discussion, c.LLMRequestEvent, c.MessageEvent, c.Profile, c.Vote, c.XpLedger,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivityEventMutation:
		return c.ActivityEvent.mutate(ctx, m)
	case *CollabParticipantMutation:
		return c.CollabParticipant.mutate(ctx, m)
	case *CollabSessionMutation:
		return c.CollabSession.mutate(ctx, m)
	case *CompletionEventMutation:
		return c.CompletionEvent.mutate(ctx, m)
	case *DiscussionMutation:
		return c.Discussion.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MessageEventMutation:
		return c.MessageEvent.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *VoteMutation:
		return c.Vote.mutate(ctx, m)
	case *XpLedgerMutation:
		return c.XpLedger.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActivityEventClient is a client for the ActivityEvent schema.
type ActivityEventClient struct {
	config
}

// NewActivityEventClient returns a client for the ActivityEvent from the given config.
func NewActivityEventClient(c config) *ActivityEventClient {
	return &ActivityEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activityevent.Hooks(f(g(h())))`.
func (c *ActivityEventClient) Use(hooks ...Hook) {
	c.hooks.ActivityEvent = append(c.hooks.ActivityEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activityevent.Intercept(f(g(h())))`.
func (c *ActivityEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityEvent = append(c.inters.ActivityEvent, interceptors...)
}

// Create returns a builder for creating a ActivityEvent entity.
func (c *ActivityEventClient) Create() *ActivityEventCreate {
	mutation := newActivityEventMutation(c.config, OpCreate)
	return &ActivityEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityEvent entities.
func (c *ActivityEventClient) CreateBulk(builders ...*ActivityEventCreate) *ActivityEventCreateBulk {
	return &ActivityEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityEventClient) MapCreateBulk(slice any, setFunc func(*ActivityEventCreate, int)) *ActivityEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityEventCreateBulk{err: fmt.Errorf("calling to ActivityEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityEvent.
func (c *ActivityEventClient) Update() *ActivityEventUpdate {
	mutation := newActivityEventMutation(c.config, OpUpdate)
	return &ActivityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityEventClient) UpdateOne(_m *ActivityEvent) *ActivityEventUpdateOne {
	mutation := newActivityEventMutation(c.config, OpUpdateOne, withActivityEvent(_m))
	return &ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityEventClient) UpdateOneID(id int) *ActivityEventUpdateOne {
	mutation := newActivityEventMutation(c.config, OpUpdateOne, withActivityEventID(id))
	return &ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityEvent.
func (c *ActivityEventClient) Delete() *ActivityEventDelete {
	mutation := newActivityEventMutation(c.config, OpDelete)
	return &ActivityEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityEventClient) DeleteOne(_m *ActivityEvent) *ActivityEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityEventClient) DeleteOneID(id int) *ActivityEventDeleteOne {
	builder := c.Delete().Where(activityevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityEventDeleteOne{builder}
}

// Query returns a query builder for ActivityEvent.
func (c *ActivityEventClient) Query() *ActivityEventQuery {
	return &ActivityEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityEvent entity by its id.
func (c *ActivityEventClient) Get(ctx context.Context, id int) (*ActivityEvent, error) {
	return c.Query().Where(activityevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityEventClient) GetX(ctx context.Context, id int) *ActivityEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivityEventClient) Hooks() []Hook {
	return c.hooks.ActivityEvent
}

// Interceptors returns the client interceptors.
func (c *ActivityEventClient) Interceptors() []Interceptor {
	return c.inters.ActivityEvent
}

func (c *ActivityEventClient) mutate(ctx context.Context, m *ActivityEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActivityEvent mutation op: %q", m.Op())
	}
}

// CollabParticipantClient is a client for the CollabParticipant schema.
type CollabParticipantClient struct {
	config
}

// NewCollabParticipantClient returns a client for the CollabParticipant from the given config.
func NewCollabParticipantClient(c config) *CollabParticipantClient {
	return &CollabParticipantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `collabparticipant.Hooks(f(g(h())))`.
func (c *CollabParticipantClient) Use(hooks ...Hook) {
	c.hooks.CollabParticipant = append(c.hooks.CollabParticipant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `collabparticipant.Intercept(f(g(h())))`.
func (c *CollabParticipantClient) Intercept(interceptors ...Interceptor) {
	c.inters.CollabParticipant = append(c.inters.CollabParticipant, interceptors...)
}

// Create returns a builder for creating a CollabParticipant entity.
func (c *CollabParticipantClient) Create() *CollabParticipantCreate {
	mutation := newCollabParticipantMutation(c.config, OpCreate)
	return &CollabParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CollabParticipant entities.
func (c *CollabParticipantClient) CreateBulk(builders ...*CollabParticipantCreate) *CollabParticipantCreateBulk {
	return &CollabParticipantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CollabParticipantClient) MapCreateBulk(slice any, setFunc func(*CollabParticipantCreate, int)) *CollabParticipantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CollabParticipantCreateBulk{err: fmt.Errorf("calling to CollabParticipantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CollabParticipantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CollabParticipantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CollabParticipant.
func (c *CollabParticipantClient) Update() *CollabParticipantUpdate {
	mutation := newCollabParticipantMutation(c.config, OpUpdate)
	return &CollabParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CollabParticipantClient) UpdateOne(_m *CollabParticipant) *CollabParticipantUpdateOne {
	mutation := newCollabParticipantMutation(c.config, OpUpdateOne, withCollabParticipant(_m))
	return &CollabParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CollabParticipantClient) UpdateOneID(id int) *CollabParticipantUpdateOne {
	mutation := newCollabParticipantMutation(c.config, OpUpdateOne, withCollabParticipantID(id))
	return &CollabParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CollabParticipant.
func (c *CollabParticipantClient) Delete() *CollabParticipantDelete {
	mutation := newCollabParticipantMutation(c.config, OpDelete)
	return &CollabParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CollabParticipantClient) DeleteOne(_m *CollabParticipant) *CollabParticipantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CollabParticipantClient) DeleteOneID(id int) *CollabParticipantDeleteOne {
	builder := c.Delete().Where(collabparticipant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CollabParticipantDeleteOne{builder}
}

// Query returns a query builder for CollabParticipant.
func (c *CollabParticipantClient) Query() *CollabParticipantQuery {
	return &CollabParticipantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCollabParticipant},
		inters: c.Interceptors(),
	}
}

// Get returns a CollabParticipant entity by its id.
func (c *CollabParticipantClient) Get(ctx context.Context, id int) (*CollabParticipant, error) {
	return c.Query().Where(collabparticipant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CollabParticipantClient) GetX(ctx context.Context, id int) *CollabParticipant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CollabParticipantClient) Hooks() []Hook {
	return c.hooks.CollabParticipant
}

// Interceptors returns the client interceptors.
func (c *CollabParticipantClient) Interceptors() []Interceptor {
	return c.inters.CollabParticipant
}

func (c *CollabParticipantClient) mutate(ctx context.Context, m *CollabParticipantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CollabParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CollabParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CollabParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CollabParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CollabParticipant mutation op: %q", m.Op())
	}
}

// CollabSessionClient is a client for the CollabSession schema.
type CollabSessionClient struct {
	config
}

// NewCollabSessionClient returns a client for the CollabSession from the given config.
func NewCollabSessionClient(c config) *CollabSessionClient {
	return &CollabSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `collabsession.Hooks(f(g(h())))`.
func (c *CollabSessionClient) Use(hooks ...Hook) {
	c.hooks.CollabSession = append(c.hooks.CollabSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `collabsession.Intercept(f(g(h())))`.
func (c *CollabSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CollabSession = append(c.inters.CollabSession, interceptors...)
}

// Create returns a builder for creating a CollabSession entity.
func (c *CollabSessionClient) Create() *CollabSessionCreate {
	mutation := newCollabSessionMutation(c.config, OpCreate)
	return &CollabSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CollabSession entities.
func (c *CollabSessionClient) CreateBulk(builders ...*CollabSessionCreate) *CollabSessionCreateBulk {
	return &CollabSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CollabSessionClient) MapCreateBulk(slice any, setFunc func(*CollabSessionCreate, int)) *CollabSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CollabSessionCreateBulk{err: fmt.Errorf("calling to CollabSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CollabSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CollabSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CollabSession.
func (c *CollabSessionClient) Update() *CollabSessionUpdate {
	mutation := newCollabSessionMutation(c.config, OpUpdate)
	return &CollabSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CollabSessionClient) UpdateOne(_m *CollabSession) *CollabSessionUpdateOne {
	mutation := newCollabSessionMutation(c.config, OpUpdateOne, withCollabSession(_m))
	return &CollabSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CollabSessionClient) UpdateOneID(id int) *CollabSessionUpdateOne {
	mutation := newCollabSessionMutation(c.config, OpUpdateOne, withCollabSessionID(id))
	return &CollabSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CollabSession.
func (c *CollabSessionClient) Delete() *CollabSessionDelete {
	mutation := newCollabSessionMutation(c.config, OpDelete)
	return &CollabSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CollabSessionClient) DeleteOne(_m *CollabSession) *CollabSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CollabSessionClient) DeleteOneID(id int) *CollabSessionDeleteOne {
	builder := c.Delete().Where(collabsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CollabSessionDeleteOne{builder}
}

// Query returns a query builder for CollabSession.
func (c *CollabSessionClient) Query() *CollabSessionQuery {
	return &CollabSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCollabSession},
		inters: c.Interceptors(),
	}
}

// Get returns a CollabSession entity by its id.
func (c *CollabSessionClient) Get(ctx context.Context, id int) (*CollabSession, error) {
	return c.Query().Where(collabsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CollabSessionClient) GetX(ctx context.Context, id int) *CollabSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CollabSessionClient) Hooks() []Hook {
	return c.hooks.CollabSession
}

// Interceptors returns the client interceptors.
func (c *CollabSessionClient) Interceptors() []Interceptor {
	return c.inters.CollabSession
}

func (c *CollabSessionClient) mutate(ctx context.Context, m *CollabSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CollabSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CollabSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CollabSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CollabSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CollabSession mutation op: %q", m.Op())
	}
}

// CompletionEventClient is a client for the CompletionEvent schema.
type CompletionEventClient struct {
	config
}

// NewCompletionEventClient returns a client for the CompletionEvent from the given config.
func NewCompletionEventClient(c config) *CompletionEventClient {
	return &CompletionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `completionevent.Hooks(f(g(h())))`.
func (c *CompletionEventClient) Use(hooks ...Hook) {
	c.hooks.CompletionEvent = append(c.hooks.CompletionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `completionevent.Intercept(f(g(h())))`.
func (c *CompletionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompletionEvent = append(c.inters.CompletionEvent, interceptors...)
}

// Create returns a builder for creating a CompletionEvent entity.
func (c *CompletionEventClient) Create() *CompletionEventCreate {
	mutation := newCompletionEventMutation(c.config, OpCreate)
	return &CompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompletionEvent entities.
func (c *CompletionEventClient) CreateBulk(builders ...*CompletionEventCreate) *CompletionEventCreateBulk {
	return &CompletionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompletionEventClient) MapCreateBulk(slice any, setFunc func(*CompletionEventCreate, int)) *CompletionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompletionEventCreateBulk{err: fmt.Errorf("calling to CompletionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompletionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompletionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompletionEvent.
func (c *CompletionEventClient) Update() *CompletionEventUpdate {
	mutation := newCompletionEventMutation(c.config, OpUpdate)
	return &CompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompletionEventClient) UpdateOne(_m *CompletionEvent) *CompletionEventUpdateOne {
	mutation := newCompletionEventMutation(c.config, OpUpdateOne, withCompletionEvent(_m))
	return &CompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompletionEventClient) UpdateOneID(id int) *CompletionEventUpdateOne {
	mutation := newCompletionEventMutation(c.config, OpUpdateOne, withCompletionEventID(id))
	return &CompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompletionEvent.
func (c *CompletionEventClient) Delete() *CompletionEventDelete {
	mutation := newCompletionEventMutation(c.config, OpDelete)
	return &CompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompletionEventClient) DeleteOne(_m *CompletionEvent) *CompletionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompletionEventClient) DeleteOneID(id int) *CompletionEventDeleteOne {
	builder := c.Delete().Where(completionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompletionEventDeleteOne{builder}
}

// Query returns a query builder for CompletionEvent.
func (c *CompletionEventClient) Query() *CompletionEventQuery {
	return &CompletionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompletionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CompletionEvent entity by its id.
func (c *CompletionEventClient) Get(ctx context.Context, id int) (*CompletionEvent, error) {
	return c.Query().Where(completionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompletionEventClient) GetX(ctx context.Context, id int) *CompletionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompletionEventClient) Hooks() []Hook {
	return c.hooks.CompletionEvent
}

// Interceptors returns the client interceptors.
func (c *CompletionEventClient) Interceptors() []Interceptor {
	return c.inters.CompletionEvent
}

func (c *CompletionEventClient) mutate(ctx context.Context, m *CompletionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompletionEvent mutation op: %q", m.Op())
	}
}

// DiscussionClient is a client for the Discussion schema.
type DiscussionClient struct {
	config
}

// NewDiscussionClient returns a client for the Discussion from the given config.
func NewDiscussionClient(c config) *DiscussionClient {
	return &DiscussionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `discussion.Hooks(f(g(h())))`.
func (c *DiscussionClient) Use(hooks ...Hook) {
	c.hooks.Discussion = append(c.hooks.Discussion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `discussion.Intercept(f(g(h())))`.
func (c *DiscussionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Discussion = append(c.inters.Discussion, interceptors...)
}

// Create returns a builder for creating a Discussion entity.
func (c *DiscussionClient) Create() *DiscussionCreate {
	mutation := newDiscussionMutation(c.config, OpCreate)
	return &DiscussionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Discussion entities.
func (c *DiscussionClient) CreateBulk(builders ...*DiscussionCreate) *DiscussionCreateBulk {
	return &DiscussionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiscussionClient) MapCreateBulk(slice any, setFunc func(*DiscussionCreate, int)) *DiscussionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiscussionCreateBulk{err: fmt.Errorf("calling to DiscussionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiscussionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiscussionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Discussion.
func (c *DiscussionClient) Update() *DiscussionUpdate {
	mutation := newDiscussionMutation(c.config, OpUpdate)
	return &DiscussionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiscussionClient) UpdateOne(_m *Discussion) *DiscussionUpdateOne {
	mutation := newDiscussionMutation(c.config, OpUpdateOne, withDiscussion(_m))
	return &DiscussionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiscussionClient) UpdateOneID(id int) *DiscussionUpdateOne {
	mutation := newDiscussionMutation(c.config, OpUpdateOne, withDiscussionID(id))
	return &DiscussionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Discussion.
func (c *DiscussionClient) Delete() *DiscussionDelete {
	mutation := newDiscussionMutation(c.config, OpDelete)
	return &DiscussionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiscussionClient) DeleteOne(_m *Discussion) *DiscussionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiscussionClient) DeleteOneID(id int) *DiscussionDeleteOne {
	builder := c.Delete().Where(discussion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiscussionDeleteOne{builder}
}

// Query returns a query builder for Discussion.
func (c *DiscussionClient) Query() *DiscussionQuery {
	return &DiscussionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiscussion},
		inters: c.Interceptors(),
	}
}

// Get returns a Discussion entity by its id.
func (c *DiscussionClient) Get(ctx context.Context, id int) (*Discussion, error) {
	return c.Query().Where(discussion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiscussionClient) GetX(ctx context.Context, id int) *Discussion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DiscussionClient) Hooks() []Hook {
	return c.hooks.Discussion
}

// Interceptors returns the client interceptors.
func (c *DiscussionClient) Interceptors() []Interceptor {
	return c.inters.Discussion
}

func (c *DiscussionClient) mutate(ctx context.Context, m *DiscussionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiscussionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiscussionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiscussionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiscussionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Discussion mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MessageEventClient is a client for the MessageEvent schema.
type MessageEventClient struct {
	config
}

// NewMessageEventClient returns a client for the MessageEvent from the given config.
func NewMessageEventClient(c config) *MessageEventClient {
	return &MessageEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messageevent.Hooks(f(g(h())))`.
func (c *MessageEventClient) Use(hooks ...Hook) {
	c.hooks.MessageEvent = append(c.hooks.MessageEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messageevent.Intercept(f(g(h())))`.
func (c *MessageEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageEvent = append(c.inters.MessageEvent, interceptors...)
}

// Create returns a builder for creating a MessageEvent entity.
func (c *MessageEventClient) Create() *MessageEventCreate {
	mutation := newMessageEventMutation(c.config, OpCreate)
	return &MessageEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageEvent entities.
func (c *MessageEventClient) CreateBulk(builders ...*MessageEventCreate) *MessageEventCreateBulk {
	return &MessageEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageEventClient) MapCreateBulk(slice any, setFunc func(*MessageEventCreate, int)) *MessageEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageEventCreateBulk{err: fmt.Errorf("calling to MessageEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageEvent.
func (c *MessageEventClient) Update() *MessageEventUpdate {
	mutation := newMessageEventMutation(c.config, OpUpdate)
	return &MessageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageEventClient) UpdateOne(_m *MessageEvent) *MessageEventUpdateOne {
	mutation := newMessageEventMutation(c.config, OpUpdateOne, withMessageEvent(_m))
	return &MessageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageEventClient) UpdateOneID(id int) *MessageEventUpdateOne {
	mutation := newMessageEventMutation(c.config, OpUpdateOne, withMessageEventID(id))
	return &MessageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageEvent.
func (c *MessageEventClient) Delete() *MessageEventDelete {
	mutation := newMessageEventMutation(c.config, OpDelete)
	return &MessageEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageEventClient) DeleteOne(_m *MessageEvent) *MessageEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageEventClient) DeleteOneID(id int) *MessageEventDeleteOne {
	builder := c.Delete().Where(messageevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageEventDeleteOne{builder}
}

// Query returns a query builder for MessageEvent.
func (c *MessageEventClient) Query() *MessageEventQuery {
	return &MessageEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageEvent entity by its id.
func (c *MessageEventClient) Get(ctx context.Context, id int) (*MessageEvent, error) {
	return c.Query().Where(messageevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageEventClient) GetX(ctx context.Context, id int) *MessageEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageEventClient) Hooks() []Hook {
	return c.hooks.MessageEvent
}

// Interceptors returns the client interceptors.
func (c *MessageEventClient) Interceptors() []Interceptor {
	return c.inters.MessageEvent
}

func (c *MessageEventClient) mutate(ctx context.Context, m *MessageEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageEvent mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id int) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id int) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id int) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id int) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// VoteClient is a client for the Vote schema.
type VoteClient struct {
	config
}

// NewVoteClient returns a client for the Vote from the given config.
func NewVoteClient(c config) *VoteClient {
	return &VoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vote.Hooks(f(g(h())))`.
func (c *VoteClient) Use(hooks ...Hook) {
	c.hooks.Vote = append(c.hooks.Vote, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vote.Intercept(f(g(h())))`.
func (c *VoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vote = append(c.inters.Vote, interceptors...)
}

// Create returns a builder for creating a Vote entity.
func (c *VoteClient) Create() *VoteCreate {
	mutation := newVoteMutation(c.config, OpCreate)
	return &VoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vote entities.
func (c *VoteClient) CreateBulk(builders ...*VoteCreate) *VoteCreateBulk {
	return &VoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VoteClient) MapCreateBulk(slice any, setFunc func(*VoteCreate, int)) *VoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VoteCreateBulk{err: fmt.Errorf("calling to VoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vote.
func (c *VoteClient) Update() *VoteUpdate {
	mutation := newVoteMutation(c.config, OpUpdate)
	return &VoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VoteClient) UpdateOne(_m *Vote) *VoteUpdateOne {
	mutation := newVoteMutation(c.config, OpUpdateOne, withVote(_m))
	return &VoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VoteClient) UpdateOneID(id int) *VoteUpdateOne {
	mutation := newVoteMutation(c.config, OpUpdateOne, withVoteID(id))
	return &VoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vote.
func (c *VoteClient) Delete() *VoteDelete {
	mutation := newVoteMutation(c.config, OpDelete)
	return &VoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VoteClient) DeleteOne(_m *Vote) *VoteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VoteClient) DeleteOneID(id int) *VoteDeleteOne {
	builder := c.Delete().Where(vote.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VoteDeleteOne{builder}
}

// Query returns a query builder for Vote.
func (c *VoteClient) Query() *VoteQuery {
	return &VoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVote},
		inters: c.Interceptors(),
	}
}

// Get returns a Vote entity by its id.
func (c *VoteClient) Get(ctx context.Context, id int) (*Vote, error) {
	return c.Query().Where(vote.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VoteClient) GetX(ctx context.Context, id int) *Vote {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VoteClient) Hooks() []Hook {
	return c.hooks.Vote
}

// Interceptors returns the client interceptors.
func (c *VoteClient) Interceptors() []Interceptor {
	return c.inters.Vote
}

func (c *VoteClient) mutate(ctx context.Context, m *VoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Vote mutation op: %q", m.Op())
	}
}

// XpLedgerClient is a client for the XpLedger schema.
type XpLedgerClient struct {
	config
}

// NewXpLedgerClient returns a client for the XpLedger from the given config.
func NewXpLedgerClient(c config) *XpLedgerClient {
	return &XpLedgerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `xpledger.Hooks(f(g(h())))`.
func (c *XpLedgerClient) Use(hooks ...Hook) {
	c.hooks.XpLedger = append(c.hooks.XpLedger, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `xpledger.Intercept(f(g(h())))`.
func (c *XpLedgerClient) Intercept(interceptors ...Interceptor) {
	c.inters.XpLedger = append(c.inters.XpLedger, interceptors...)
}

// Create returns a builder for creating a XpLedger entity.
func (c *XpLedgerClient) Create() *XpLedgerCreate {
	mutation := newXpLedgerMutation(c.config, OpCreate)
	return &XpLedgerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of XpLedger entities.
func (c *XpLedgerClient) CreateBulk(builders ...*XpLedgerCreate) *XpLedgerCreateBulk {
	return &XpLedgerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *XpLedgerClient) MapCreateBulk(slice any, setFunc func(*XpLedgerCreate, int)) *XpLedgerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &XpLedgerCreateBulk{err: fmt.Errorf("calling to XpLedgerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*XpLedgerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &XpLedgerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for XpLedger.
func (c *XpLedgerClient) Update() *XpLedgerUpdate {
	mutation := newXpLedgerMutation(c.config, OpUpdate)
	return &XpLedgerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *XpLedgerClient) UpdateOne(_m *XpLedger) *XpLedgerUpdateOne {
	mutation := newXpLedgerMutation(c.config, OpUpdateOne, withXpLedger(_m))
	return &XpLedgerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *XpLedgerClient) UpdateOneID(id int) *XpLedgerUpdateOne {
	mutation := newXpLedgerMutation(c.config, OpUpdateOne, withXpLedgerID(id))
	return &XpLedgerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for XpLedger.
func (c *XpLedgerClient) Delete() *XpLedgerDelete {
	mutation := newXpLedgerMutation(c.config, OpDelete)
	return &XpLedgerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *XpLedgerClient) DeleteOne(_m *XpLedger) *XpLedgerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *XpLedgerClient) DeleteOneID(id int) *XpLedgerDeleteOne {
	builder := c.Delete().Where(xpledger.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &XpLedgerDeleteOne{builder}
}

// Query returns a query builder for XpLedger.
func (c *XpLedgerClient) Query() *XpLedgerQuery {
	return &XpLedgerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeXpLedger},
		inters: c.Interceptors(),
	}
}

// Get returns a XpLedger entity by its id.
func (c *XpLedgerClient) Get(ctx context.Context, id int) (*XpLedger, error) {
	return c.Query().Where(xpledger.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *XpLedgerClient) GetX(ctx context.Context, id int) *XpLedger {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *XpLedgerClient) Hooks() []Hook {
	return c.hooks.XpLedger
}

// Interceptors returns the client interceptors.
func (c *XpLedgerClient) Interceptors() []Interceptor {
	return c.inters.XpLedger
}

func (c *XpLedgerClient) mutate(ctx context.Context, m *XpLedgerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&XpLedgerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&XpLedgerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&XpLedgerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&XpLedgerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown XpLedger mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActivityEvent, CollabParticipant, CollabSession, CompletionEvent, Discussion,
		LLMRequestEvent, MessageEvent, Profile, Vote, XpLedger []ent.Hook
	}
	inters struct {
		ActivityEvent, CollabParticipant, CollabSession, CompletionEvent, Discussion,
		LLMRequestEvent, MessageEvent, Profile, Vote, XpLedger []ent.Interceptor
	}
)
