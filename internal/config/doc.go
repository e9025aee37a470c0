// Package config is the configuration core of the luma compositor.
//
// It decides, per window, which visual-effect settings apply: shadow, fade,
// opacity, blur, corner radius, rounded borders, and transitions. The
// effective value of a tunable is never a single static setting; it is
// resolved through three tiers with strict precedence and early exit:
//
//	┌──────────────────────────────┐
//	│  1. Condition rules          │  ← first match in list order wins
//	├──────────────────────────────┤
//	│  2. Window-type overrides    │  ← only fields the user set
//	├──────────────────────────────┤
//	│  3. Global defaults          │  ← lowest priority
//	└──────────────────────────────┘
//
// Rule lists are user-authored and append-only; their order is load-bearing.
// Window-type overrides track per field whether the user configured it, so
// "unset" never decays into a zero value. Resolution is a pure function of
// (State, win.Info) with no hidden state.
//
// # Lifecycle
//
// A load builds a State entirely off to the side, validates it, and only
// then publishes it through Config. Two error policies apply during a load:
// malformed values for known fields are fatal (a FatalError aborts the load
// and the previous generation stays active), while individual rule compile
// failures and out-of-range blur strengths are warnings (the entry is
// skipped, the load continues, and the problem is recorded on the
// LoadReport).
//
// # External collaborators
//
// The pattern compiler is pluggable (rules.Compiler); the renderer consumes
// Effective records; diagnostics go to a diag.Sink. None of these are owned
// here.
package config
