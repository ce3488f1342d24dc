// Package config provides resolution of option chains against the deployment configuration
package config

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/kapay/akka/deploy"
)

// Deployer resolves caller-supplied option chains against the
// deployment configuration file. The chain always wins over the file:
// file entries only back the defaults handed to the resolver.
type Deployer struct {
	mu  sync.RWMutex
	cfg *Config
	log *logrus.Entry
}

// NewDeployer creates a deployer backed by cfg.
func NewDeployer(cfg *Config) *Deployer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Deployer{
		cfg: cfg,
		log: logrus.WithField("component", "deployer"),
	}
}

// SetConfig swaps the backing configuration. Meant to be called from a
// Watcher's change callback on hot reload.
func (d *Deployer) SetConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	d.mu.Lock()
	d.cfg = cfg
	d.mu.Unlock()
}

// Config returns the current backing configuration.
func (d *Deployer) Config() *Config {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cfg
}

// ChainFor builds the option chain recorded in the configuration for
// path. The selector ends up at the head so that a later resolution
// finds its way back to the same entry.
func (d *Deployer) ChainFor(path string) (deploy.Option, error) {
	cfg := d.Config()

	entry, ok := cfg.Entry(path)
	if !ok {
		return deploy.Empty, ErrUnknownDeployment
	}

	// Least significant option first: the last prepend is head-most
	// and wins during resolution.
	chain := deploy.Empty
	if entry.Name != "" {
		chain = deploy.WithName(chain, entry.Name)
	}
	if entry.Executor != "" {
		chain = deploy.WithExecutor(chain, entry.Executor)
	}
	if entry.Timeout != 0 {
		chain = deploy.WithTimeout(chain, entry.Timeout)
	}
	if entry.Capacity != 0 {
		chain = deploy.WithCapacity(chain, entry.Capacity)
	}
	chain = deploy.WithSelector(chain, path)

	return chain, nil
}

// Resolve computes the effective deployment for chain. The head-most
// selector picks the configuration entry that backs the defaults;
// options present in the chain shadow the file either way.
func (d *Deployer) Resolve(chain deploy.Option) deploy.Deployment {
	selectors := deploy.AllOf[*deploy.Selector](chain)

	path := ""
	if len(selectors) > 0 {
		path = selectors[0].Path()
	}
	if len(selectors) > 1 {
		shadowed := make([]string, 0, len(selectors)-1)
		for _, s := range selectors[1:] {
			shadowed = append(shadowed, s.Path())
		}
		d.log.WithFields(logrus.Fields{
			"selector": path,
			"shadowed": shadowed,
		}).Warn("chain carries shadowed selectors")
	}

	return deploy.ResolveWith(chain, d.baseFor(path))
}

// baseFor computes the file-backed base deployment for path: the
// path's entry over the file defaults over the built-in defaults.
func (d *Deployer) baseFor(path string) deploy.Deployment {
	cfg := d.Config()

	base := deploy.DefaultDeployment()
	if cfg.Defaults.Capacity > 0 {
		base.Capacity = cfg.Defaults.Capacity
	}
	if cfg.Defaults.Timeout > 0 {
		base.Timeout = cfg.Defaults.Timeout
	}
	if cfg.Defaults.Executor != "" {
		base.Executor = cfg.Defaults.Executor
	}

	if path == "" {
		return base
	}

	base.Selector = path
	if entry, ok := cfg.Entry(path); ok {
		if entry.Capacity > 0 {
			base.Capacity = entry.Capacity
		}
		if entry.Timeout > 0 {
			base.Timeout = entry.Timeout
		}
		if entry.Executor != "" {
			base.Executor = entry.Executor
		}
		if entry.Name != "" {
			base.Name = entry.Name
		}
	}

	return base
}
