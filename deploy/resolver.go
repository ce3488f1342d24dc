package deploy

import (
	"time"

	"github.com/google/uuid"
)

// Deployment is the effective configuration resolved from a chain.
// It is what the owning runtime consumes when it actually spawns the
// unit and acquires its executor.
type Deployment struct {
	// ID uniquely identifies this resolution of the chain
	ID uuid.UUID

	// Name is a human-readable name for the unit
	Name string

	// Capacity bounds the unit's mailbox
	Capacity int

	// Selector is the configuration lookup path, empty when unset
	Selector string

	// Executor is the opaque executor reference, nil when unset
	Executor ExecutorHandle

	// Timeout bounds per-message processing
	Timeout time.Duration
}

// DefaultDeployment returns the built-in defaults applied when a chain
// carries no option of the corresponding kind.
func DefaultDeployment() Deployment {
	return Deployment{
		Name:     "",
		Capacity: 1000,
		Selector: "",
		Executor: nil,
		Timeout:  30 * time.Second,
	}
}

// Resolve computes the effective deployment for chain against the
// built-in defaults.
func Resolve(chain Option) Deployment {
	return ResolveWith(chain, DefaultDeployment())
}

// ResolveWith computes the effective deployment for chain against
// base. Each recognized kind is looked up exactly once; the head-most
// option of a kind wins and later ones are shadowed. The chain is not
// modified. Every resolution is stamped with a fresh incarnation ID.
func ResolveWith(chain Option, base Deployment) Deployment {
	d := base
	d.ID = uuid.New()
	d.Name = FirstOrElse(chain, NewName(base.Name)).Value()
	d.Capacity = FirstOrElse(chain, NewCapacity(base.Capacity)).Limit()
	d.Selector = FirstOrElse(chain, NewSelector(base.Selector)).Path()
	d.Executor = FirstOrElse(chain, NewExecutor(base.Executor)).Handle()
	d.Timeout = FirstOrElse(chain, NewTimeout(base.Timeout)).Duration()
	return d
}

// ChildChain derives the chain for a child unit from its parent's
// chain. Selector options are stripped: a child deployed under a new
// path must not inherit the parent's configuration lookup.
func ChildChain(chain Option) Option {
	return FilterNot[*Selector](chain)
}
