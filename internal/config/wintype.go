package config

import "github.com/lumawm/luma/internal/win"

// WinOptions is the per-window-type override record. Every field is an
// explicit optional: a field participates in resolution only when user
// configuration set it, and an unset field falls back to the corresponding
// global default, never to a zero value.
type WinOptions struct {
	// Shadow overrides whether windows of this type draw a shadow.
	Shadow Opt[bool]

	// Fade overrides whether windows of this type fade.
	Fade Opt[bool]

	// Focus forces windows of this type to be treated as focused.
	Focus Opt[bool]

	// FullShadow draws the shadow behind the whole window, including parts
	// normally occluded.
	FullShadow Opt[bool]

	// RedirIgnore excludes windows of this type when deciding whether to
	// unredirect the screen.
	RedirIgnore Opt[bool]

	// Opacity overrides window opacity, in [0, 1].
	Opacity Opt[float64]

	// CornerRadius overrides the rounded corner radius, in pixels.
	CornerRadius Opt[int]

	// RoundBorders overrides the rounded border width, in pixels.
	RoundBorders Opt[int]
}

// WinTypeOptions is the fixed-size table of per-type overrides, indexed by
// window type.
type WinTypeOptions [win.NumWindowTypes]WinOptions
