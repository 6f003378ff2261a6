package validation

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/livevalidation/pkg/logger"
	"github.com/dmitrymomot/livevalidation/pkg/observable"
)

// Context aggregates an ordered, mutable collection of components into one
// state: valid when every child is valid, with the messages of the invalid
// children concatenated in collection order.
//
// A Context is itself a Component and can be nested. It is inert until its
// validity, text or status changes are first read; from then on it follows
// the children and reconciles its subscriptions on every Add and Remove.
//
// The collection is meant to be mutated by a single owner. Concurrent Add and
// Remove calls need external synchronization.
type Context struct {
	id      string
	members []*member
	log     *slog.Logger

	cache   *observable.Shared[State]
	changes observable.Observable[State]

	sink        observable.Observer[State]
	active      bool
	closed      bool
	failed      bool
	reconciling bool
}

type member struct {
	component Component
	sub       observable.Subscription
}

// NewContext creates an empty, inert Context.
func NewContext(opts ...Option) *Context {
	o := newOptions("validation_context", opts)
	c := &Context{id: uuid.NewString()}
	c.log = o.logger.With(logger.Component(o.name), logger.ContextID(c.id))

	c.cache = observable.ReplayLatest(
		observable.DistinctUntilChanged(observable.Create(c.connect), statesEqual),
	)
	c.changes = c.cache.ObserveOn(o.scheduler)
	return c
}

// ID returns the identifier the context uses in log records.
func (c *Context) ID() string {
	return c.id
}

// Add appends component to the collection. Adding a component that is
// already present, or nil, does nothing.
func (c *Context) Add(component Component) {
	if component == nil || c.indexOf(component) >= 0 {
		return
	}
	m := &member{component: component}
	c.members = append(c.members, m)
	c.log.Debug("component added", logger.Count(len(c.members)))

	if c.live() {
		c.subscribe(m)
		c.publish()
	}
}

// Remove takes component out of the collection. The component itself is not
// closed. Removing a component that is not present does nothing.
func (c *Context) Remove(component Component) {
	if c.remove(component) && c.live() {
		c.publish()
	}
}

// RemoveMany removes every given component, recomputing the aggregate once.
func (c *Context) RemoveMany(components ...Component) {
	removed := false
	for _, comp := range components {
		if c.remove(comp) {
			removed = true
		}
	}
	if removed && c.live() {
		c.publish()
	}
}

// Clear removes every component.
func (c *Context) Clear() {
	c.RemoveMany(c.Components()...)
}

// Components returns the collection in order.
func (c *Context) Components() []Component {
	out := make([]Component, len(c.members))
	for i, m := range c.members {
		out[i] = m.component
	}
	return out
}

// Len returns the number of components in the collection.
func (c *Context) Len() int {
	return len(c.members)
}

// GetIsValid reports whether every component is currently valid, reading the
// children directly. It does not activate the context, but each child it
// reads is activated. An empty context is valid.
func (c *Context) GetIsValid() bool {
	for _, m := range c.members {
		if !m.component.IsValid() {
			return false
		}
	}
	return true
}

// IsValid activates the context and returns the aggregate validity.
func (c *Context) IsValid() bool {
	return c.State().IsValid()
}

// Text activates the context and returns the aggregate messages.
func (c *Context) Text() Text {
	return c.State().Text()
}

// State activates the context and returns the aggregate state.
func (c *Context) State() State {
	_ = c.cache.Connect()
	if st, ok := c.cache.Latest(); ok {
		return st
	}
	return c.compute()
}

// StatusChanges returns the aggregate state stream. Subscribing activates
// the context.
func (c *Context) StatusChanges() observable.Observable[State] {
	return c.changes
}

// ValidChanges returns the aggregate validity, emitting only on change.
func (c *Context) ValidChanges() observable.Observable[bool] {
	return observable.Distinct(observable.Map(c.changes, State.IsValid))
}

// PropertyCount returns the number of distinct keys concerned by the children.
func (c *Context) PropertyCount() int {
	return len(c.Properties())
}

// Properties returns the union of the children's keys in order of first
// appearance.
func (c *Context) Properties() []string {
	var all []string
	for _, m := range c.members {
		all = append(all, m.component.Properties()...)
	}
	return newPropertySet(all...).list()
}

func (c *Context) ContainsProperty(path string, exclusively bool) bool {
	return newPropertySet(c.Properties()...).contains(path, exclusively)
}

// Err returns the error a child failed with, if any.
func (c *Context) Err() error {
	return c.cache.Err()
}

// Active reports whether the context has been activated.
func (c *Context) Active() bool {
	return c.active
}

// Closed reports whether the context has been disposed.
func (c *Context) Closed() bool {
	return c.closed
}

func (c *Context) states() observable.Observable[State] {
	return c.cache
}

// Close tears down the aggregation: child subscriptions are released and no
// further state is emitted. The children themselves stay open.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.unsubscribeAll()
	c.log.Debug("context closed", logger.Count(len(c.members)))
	return c.cache.Close()
}

// connect is the upstream of the cache; it runs once, on activation.
func (c *Context) connect(sink observable.Observer[State]) observable.Subscription {
	if c.closed {
		return observable.EmptySubscription()
	}
	c.sink = sink
	c.active = true
	c.log.Debug("context activated", logger.Count(len(c.members)))

	c.reconciling = true
	for _, m := range slices.Clone(c.members) {
		c.subscribe(m)
	}
	c.reconciling = false
	c.publish()

	return observable.NewSubscription(c.unsubscribeAll)
}

func (c *Context) live() bool {
	return c.active && !c.closed && !c.failed
}

func (c *Context) subscribe(m *member) {
	if m.sub != nil {
		return
	}
	m.sub = statesOf(m.component).Subscribe(observable.ObserverFuncs[State]{
		Next:  func(State) { c.publish() },
		Error: c.fail,
	})
}

func (c *Context) unsubscribeAll() {
	for _, m := range c.members {
		if m.sub != nil {
			_ = m.sub.Close()
			m.sub = nil
		}
	}
}

func (c *Context) remove(component Component) bool {
	if component == nil {
		return false
	}
	i := c.indexOf(component)
	if i < 0 {
		return false
	}
	m := c.members[i]
	c.members = slices.Delete(c.members, i, i+1)
	if m.sub != nil {
		_ = m.sub.Close()
		m.sub = nil
	}
	c.log.Debug("component removed", logger.Count(len(c.members)))
	return true
}

func (c *Context) indexOf(component Component) int {
	return slices.IndexFunc(c.members, func(m *member) bool {
		return m.component == component
	})
}

func (c *Context) publish() {
	if c.reconciling || !c.live() || c.sink == nil {
		return
	}
	st := c.compute()
	c.log.Debug("state computed", logger.Valid(st.IsValid()), logger.Messages(st.Text().Messages()))
	c.sink.OnNext(st)
}

func (c *Context) compute() State {
	valid := c.GetIsValid()
	texts := make([]Text, 0, len(c.members))
	for _, m := range c.members {
		if !m.component.IsValid() {
			texts = append(texts, m.component.Text())
		}
	}
	return NewState(valid, MergeText(texts...))
}

func (c *Context) fail(err error) {
	if c.failed || c.closed {
		return
	}
	c.failed = true
	c.unsubscribeAll()
	c.log.Error("validation component failed", logger.Error(err))
	if c.sink != nil {
		c.sink.OnError(err)
	}
}
