package config

import (
	"github.com/lumawm/luma/internal/config/rules"
)

// Options is the complete set of global rendering tunables plus the rule
// lists and per-window-type overrides that refine them. It is owned by the
// State built at configuration load and is treated as immutable once the
// State is published.
type Options struct {
	// Backend is the rendering backend in use.
	Backend Backend

	// Vsync enables vertical synchronization.
	Vsync bool

	// Shadow settings.

	// ShadowEnabled is the global shadow default.
	ShadowEnabled bool
	// ShadowRadius is the shadow blur radius in pixels.
	ShadowRadius int
	// ShadowOffsetX and ShadowOffsetY displace the shadow.
	ShadowOffsetX, ShadowOffsetY int
	// ShadowOpacity is the shadow translucency, in [0, 1].
	ShadowOpacity float64
	// ShadowRed, ShadowGreen, ShadowBlue tint the shadow, each in [0, 1].
	ShadowRed, ShadowGreen, ShadowBlue float64
	// ShadowIgnoreShaped skips shadows on bounding-shaped windows.
	ShadowIgnoreShaped bool

	// Fading settings.

	// FadingEnabled is the global fade default.
	FadingEnabled bool
	// FadeInStep and FadeOutStep are the opacity change per fade step.
	FadeInStep, FadeOutStep float64
	// FadeDelta is the time between fade steps, in milliseconds.
	FadeDelta int
	// NoFadingOpenClose disables fade on window open and close.
	NoFadingOpenClose bool

	// Opacity settings.

	// ActiveOpacity is the default opacity of the focused window, in [0, 1].
	ActiveOpacity float64
	// InactiveOpacity is the default opacity of unfocused windows, in [0, 1].
	InactiveOpacity float64
	// FrameOpacity is the opacity of window frames, relative to the window.
	FrameOpacity float64
	// InactiveOpacityOverride lets InactiveOpacity override window-requested
	// opacity.
	InactiveOpacityOverride bool
	// InactiveDim dims unfocused windows, in [0, 1], 0 to disable.
	InactiveDim float64

	// Blur settings.

	// BlurMethod selects the background blur algorithm.
	BlurMethod BlurMethod
	// BlurRadius is the kernel size for box and gaussian blur.
	BlurRadius int
	// BlurDeviation is the standard deviation for gaussian blur.
	BlurDeviation float64
	// BlurStrength is the kawase blur preset.
	BlurStrength BlurStrength
	// BlurBackgroundFrame blurs behind non-opaque window frames.
	BlurBackgroundFrame bool
	// BlurBackgroundFixed uses a fixed blur strength regardless of window
	// opacity.
	BlurBackgroundFixed bool
	// BlurKernels is the convolution kernel chain for kernel blur; each
	// kernel is one pass.
	BlurKernels []Kernel

	// Corner settings.

	// CornerRadius is the global rounded corner radius, in pixels.
	CornerRadius int
	// RoundBorders is the global rounded border width, in pixels.
	RoundBorders int

	// Transition settings.

	// TransitionLength is the window transition duration in milliseconds,
	// 0 to disable.
	TransitionLength int
	// TransitionPowX, TransitionPowY, TransitionPowW, TransitionPowH smooth
	// the respective animated dimensions.
	TransitionPowX, TransitionPowY, TransitionPowW, TransitionPowH float64
	// SizeTransition animates window size changes.
	SizeTransition bool
	// NoScaleDown skips animating downscaling.
	NoScaleDown bool

	// General settings.

	// UnredirIfPossible unredirects the screen when a fullscreen opaque
	// window is detected.
	UnredirIfPossible bool
	// UnredirIfPossibleDelay is the delay before unredirecting, in
	// milliseconds.
	UnredirIfPossibleDelay int64
	// MaxBrightness caps window brightness, in [0, 1].
	MaxBrightness float64

	// Rule lists. Each list guards exactly one tunable and is evaluated in
	// isolation, head to tail, first match wins.

	// ShadowExclude lists windows that never draw a shadow.
	ShadowExclude *rules.List
	// FadeExclude lists windows that never fade.
	FadeExclude *rules.List
	// FocusExclude lists windows always considered focused.
	FocusExclude *rules.List
	// InvertColor lists windows drawn with inverted colors.
	InvertColor *rules.List
	// BlurBackgroundExclude lists windows whose background is never blurred.
	BlurBackgroundExclude *rules.List
	// PaintExclude lists windows that are not painted at all.
	PaintExclude *rules.List
	// UnredirIfPossibleExclude lists windows ignored as fullscreen windows
	// when deciding whether to unredirect.
	UnredirIfPossibleExclude *rules.List
	// OpacityRules lists opacity overrides; each rule carries its opacity
	// payload.
	OpacityRules *rules.List
	// RoundedCornersExclude lists windows with square corners.
	RoundedCornersExclude *rules.List
	// RoundBordersExclude lists windows with square borders.
	RoundBordersExclude *rules.List
	// TransitionExclude lists windows that never animate.
	TransitionExclude *rules.List

	// WinTypes holds the per-window-type overrides.
	WinTypes WinTypeOptions
}

// Defaults returns the documented global defaults with empty rule lists
// compiled by compile (nil selects the regex compiler).
func Defaults(compile rules.Compiler) *Options {
	return &Options{
		Backend: BackendXRender,
		Vsync:   true,

		ShadowEnabled: false,
		ShadowRadius:  12,
		ShadowOffsetX: -15,
		ShadowOffsetY: -15,
		ShadowOpacity: 0.75,

		FadingEnabled: false,
		FadeInStep:    0.028,
		FadeOutStep:   0.03,
		FadeDelta:     10,

		ActiveOpacity:   1.0,
		InactiveOpacity: 1.0,
		FrameOpacity:    1.0,

		BlurMethod:    BlurMethodNone,
		BlurRadius:    3,
		BlurDeviation: 0.84089642,
		BlurStrength:  kawaseStrengths[kawaseFallbackLevel-1],

		TransitionLength: 0,
		TransitionPowX:   0.1,
		TransitionPowY:   0.1,
		TransitionPowW:   0.1,
		TransitionPowH:   0.1,

		MaxBrightness: 1.0,

		ShadowExclude:            rules.New(compile),
		FadeExclude:              rules.New(compile),
		FocusExclude:             rules.New(compile),
		InvertColor:              rules.New(compile),
		BlurBackgroundExclude:    rules.New(compile),
		PaintExclude:             rules.New(compile),
		UnredirIfPossibleExclude: rules.New(compile),
		OpacityRules:             rules.New(compile),
		RoundedCornersExclude:    rules.New(compile),
		RoundBordersExclude:      rules.New(compile),
		TransitionExclude:        rules.New(compile),
	}
}
