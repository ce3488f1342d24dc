package deploy

import (
	"time"
)

// ExecutorHandle is an opaque reference to a caller-owned executor.
// The chain carries it through unexamined; acquiring and running the
// actual executor is the owning runtime's business.
type ExecutorHandle interface{}

// Option is one immutable deployment setting linked to the rest of its
// chain. A chain is simply an Option value: either a concrete option
// acting as the head, or the Empty terminal marker.
//
// Options are never mutated after construction. Relinking an option
// into a different chain always produces a copy, so the same option
// value may appear in any number of chains at once.
type Option interface {
	// Kind reports the concrete variant of this option.
	Kind() Kind

	// Next returns the option that follows this one in the chain.
	// Calling Next on Empty returns ErrEmptyChain.
	Next() (Option, error)

	// withNext returns a copy of this option whose next reference is
	// next. Keeping it unexported closes the variant set to this
	// package and guarantees the copy-on-write discipline.
	withNext(next Option) Option
}

// empty is the terminal marker type. It carries no payload and has no
// valid next reference.
type empty struct{}

// Empty is the unique terminal marker ending every chain. It doubles
// as the empty chain.
var Empty Option = empty{}

// Kind returns KindNone.
func (empty) Kind() Kind { return KindNone }

// Next always fails: there is nothing past the terminal marker.
func (empty) Next() (Option, error) { return nil, ErrEmptyChain }

func (empty) withNext(Option) Option { return Empty }

// orEmpty normalizes a nil chain to Empty.
func orEmpty(chain Option) Option {
	if chain == nil {
		return Empty
	}
	return chain
}

// Prepend returns a new chain whose head is a copy of opt and whose
// tail is chain. It runs in O(1) and neither traverses nor mutates
// chain. Prepending Empty (or nil) is a no-op.
func Prepend(chain Option, opt Option) Option {
	if opt == nil || opt == Empty {
		return orEmpty(chain)
	}
	return opt.withNext(orEmpty(chain))
}

// Capacity bounds the mailbox of the deployed unit.
type Capacity struct {
	next  Option
	limit int
}

// NewCapacity creates a capacity option as a singleton chain.
func NewCapacity(limit int) *Capacity {
	return &Capacity{next: Empty, limit: limit}
}

// Limit returns the mailbox capacity bound.
func (c *Capacity) Limit() int { return c.limit }

// Kind returns KindCapacity.
func (c *Capacity) Kind() Kind { return KindCapacity }

// Next returns the option following this one.
func (c *Capacity) Next() (Option, error) { return c.next, nil }

func (c *Capacity) withNext(next Option) Option {
	cp := *c
	cp.next = next
	return &cp
}

// Selector names the configuration path the deployment should be
// looked up under. The path itself is opaque to the chain.
type Selector struct {
	next Option
	path string
}

// NewSelector creates a selector option as a singleton chain.
func NewSelector(path string) *Selector {
	return &Selector{next: Empty, path: path}
}

// Path returns the configuration lookup path.
func (s *Selector) Path() string { return s.path }

// Kind returns KindSelector.
func (s *Selector) Kind() Kind { return KindSelector }

// Next returns the option following this one.
func (s *Selector) Next() (Option, error) { return s.next, nil }

func (s *Selector) withNext(next Option) Option {
	cp := *s
	cp.next = next
	return &cp
}

// Executor carries an opaque handle to the executor the unit should
// run on.
type Executor struct {
	next   Option
	handle ExecutorHandle
}

// NewExecutor creates an executor option as a singleton chain.
func NewExecutor(handle ExecutorHandle) *Executor {
	return &Executor{next: Empty, handle: handle}
}

// Handle returns the opaque executor reference.
func (e *Executor) Handle() ExecutorHandle { return e.handle }

// Kind returns KindExecutor.
func (e *Executor) Kind() Kind { return KindExecutor }

// Next returns the option following this one.
func (e *Executor) Next() (Option, error) { return e.next, nil }

func (e *Executor) withNext(next Option) Option {
	cp := *e
	cp.next = next
	return &cp
}

// Name gives the deployed unit a human-readable name.
type Name struct {
	next Option
	name string
}

// NewName creates a name option as a singleton chain.
func NewName(name string) *Name {
	return &Name{next: Empty, name: name}
}

// Value returns the unit name.
func (n *Name) Value() string { return n.name }

// Kind returns KindName.
func (n *Name) Kind() Kind { return KindName }

// Next returns the option following this one.
func (n *Name) Next() (Option, error) { return n.next, nil }

func (n *Name) withNext(next Option) Option {
	cp := *n
	cp.next = next
	return &cp
}

// Timeout bounds how long the deployed unit may spend on one message.
type Timeout struct {
	next Option
	d    time.Duration
}

// NewTimeout creates a timeout option as a singleton chain.
func NewTimeout(d time.Duration) *Timeout {
	return &Timeout{next: Empty, d: d}
}

// Duration returns the processing timeout.
func (t *Timeout) Duration() time.Duration { return t.d }

// Kind returns KindTimeout.
func (t *Timeout) Kind() Kind { return KindTimeout }

// Next returns the option following this one.
func (t *Timeout) Next() (Option, error) { return t.next, nil }

func (t *Timeout) withNext(next Option) Option {
	cp := *t
	cp.next = next
	return &cp
}

// WithCapacity prepends a capacity option to chain.
func WithCapacity(chain Option, limit int) Option {
	return Prepend(chain, NewCapacity(limit))
}

// WithSelector prepends a selector option to chain.
func WithSelector(chain Option, path string) Option {
	return Prepend(chain, NewSelector(path))
}

// WithExecutor prepends an executor option to chain.
func WithExecutor(chain Option, handle ExecutorHandle) Option {
	return Prepend(chain, NewExecutor(handle))
}

// WithName prepends a name option to chain.
func WithName(chain Option, name string) Option {
	return Prepend(chain, NewName(name))
}

// WithTimeout prepends a timeout option to chain.
func WithTimeout(chain Option, d time.Duration) Option {
	return Prepend(chain, NewTimeout(d))
}
