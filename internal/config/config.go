package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/lumawm/luma/internal/config/rules"
	"github.com/lumawm/luma/internal/diag"
	"github.com/lumawm/luma/internal/win"
)

// Config owns the currently published configuration generation and replaces
// it atomically on load. Readers always observe a complete generation:
// loads build the new State entirely off to the side and swap it in only
// after validation, so no renderer ever sees a half-populated override
// table. A failed load leaves the previous generation untouched.
type Config struct {
	mu       sync.RWMutex
	state    *State
	path     string
	compiler rules.Compiler
	sink     diag.Sink
}

// Option configures a Config instance.
type Option func(*Config)

// WithPath sets the configuration file path for Load.
func WithPath(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithCompiler sets the pattern compiler used for condition rules. The
// default is the regex compiler.
func WithCompiler(compile rules.Compiler) Option {
	return func(c *Config) {
		c.compiler = compile
	}
}

// WithDiagnostics sets the sink that receives load warnings and errors.
// The default discards them.
func WithDiagnostics(sink diag.Sink) Option {
	return func(c *Config) {
		c.sink = sink
	}
}

// New creates a Config publishing the built-in defaults. Call Load to
// replace them with a file-backed generation.
func New(opts ...Option) *Config {
	c := &Config{sink: diag.Discard{}}
	for _, opt := range opts {
		opt(c)
	}
	c.state = newState(Defaults(c.compiler), "")
	return c
}

// Load builds a new generation from the configured file and publishes it.
// The returned report carries the non-fatal problems encountered; they are
// also forwarded to the diagnostics sink. On error the previously published
// generation stays active.
func (c *Config) Load() (*LoadReport, error) {
	if c.path == "" {
		return nil, fmt.Errorf("no configuration path set")
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	st, report, err := Parse(data, c.compiler)
	for _, w := range report.Warnings {
		c.sink.Warnf("%s", w.Error())
	}
	if err != nil {
		c.sink.Errorf("configuration load failed, keeping previous generation: %v", err)
		return report, err
	}
	st.SourcePath = c.path

	c.mu.Lock()
	c.state = st
	c.mu.Unlock()

	c.sink.Infof("configuration generation %s loaded from %s", st.Generation, c.path)
	return report, nil
}

// State returns the currently published generation. The result is immutable
// and remains valid after later loads supersede it.
func (c *Config) State() *State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// EffectiveFor resolves every per-window tunable for w against the current
// generation.
func (c *Config) EffectiveFor(w win.Info) Effective {
	return c.State().EffectiveFor(w)
}
