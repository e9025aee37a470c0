package config

import (
	"time"

	"github.com/google/uuid"
)

// State is one fully-built configuration generation. A State is assembled
// entirely off to the side during a load, validated, and only then published
// by Config; a published State is immutable and readers always observe it
// whole. The rule lists and kernels it references are exclusively owned by
// it and are released together when the generation is superseded.
type State struct {
	// Generation identifies this load for diagnostics.
	Generation uuid.UUID

	// LoadedAt is when the generation was built.
	LoadedAt time.Time

	// SourcePath is the configuration file this generation came from, if
	// any.
	SourcePath string

	// Options holds the global defaults, rule lists, and wintype overrides.
	Options *Options

	// KernelHasNegative reports whether any blur kernel coefficient across
	// the whole chain is negative. The renderer needs it to pick a
	// compatible compositing path.
	KernelHasNegative bool
}

func newState(opts *Options, path string) *State {
	return &State{
		Generation: uuid.New(),
		LoadedAt:   time.Now(),
		SourcePath: path,
		Options:    opts,
	}
}
