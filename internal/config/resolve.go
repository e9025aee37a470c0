package config

import "github.com/lumawm/luma/internal/win"

// Effective is the resolved per-window option record consumed by the
// renderer.
type Effective struct {
	Shadow       bool
	Fade         bool
	FocusForced  bool
	FullShadow   bool
	RedirIgnore  bool
	Opacity      float64
	CornerRadius int
	RoundBorders int
	Paint        bool
	InvertColor  bool
	Blur         bool
	Transition   bool
}

// Per-field resolution follows a strict three-tier precedence with early
// exit:
//
//  1. the field's own rule list, first match wins;
//  2. the window type's override, if explicitly set;
//  3. the global default.
//
// Each field consults only its own rule category. All resolution functions
// are pure over (State, win.Info); cache invalidation on reclassification
// or reload is the caller's concern.

// ShadowFor resolves whether w draws a shadow.
func (s *State) ShadowFor(w win.Info) bool {
	if s.Options.ShadowExclude.Matches(w) {
		return false
	}
	if v, ok := s.winOpt(w).Shadow.Value(); ok {
		return v
	}
	return s.Options.ShadowEnabled
}

// FadeFor resolves whether w fades.
func (s *State) FadeFor(w win.Info) bool {
	if s.Options.FadeExclude.Matches(w) {
		return false
	}
	if v, ok := s.winOpt(w).Fade.Value(); ok {
		return v
	}
	return s.Options.FadingEnabled
}

// FocusForcedFor resolves whether w is always treated as focused.
func (s *State) FocusForcedFor(w win.Info) bool {
	if s.Options.FocusExclude.Matches(w) {
		return true
	}
	if v, ok := s.winOpt(w).Focus.Value(); ok {
		return v
	}
	return false
}

// FullShadowFor resolves whether w draws its shadow behind occluded parts.
// There is no rule category for full shadow; only the wintype override and
// the global default apply.
func (s *State) FullShadowFor(w win.Info) bool {
	if v, ok := s.winOpt(w).FullShadow.Value(); ok {
		return v
	}
	return false
}

// RedirIgnoreFor resolves whether w is ignored when deciding to unredirect
// the screen.
func (s *State) RedirIgnoreFor(w win.Info) bool {
	if s.Options.UnredirIfPossibleExclude.Matches(w) {
		return true
	}
	if v, ok := s.winOpt(w).RedirIgnore.Value(); ok {
		return v
	}
	return false
}

// OpacityFor resolves the opacity of w, in [0, 1]. The global tier depends
// on focus: the focused window gets ActiveOpacity, others InactiveOpacity.
func (s *State) OpacityFor(w win.Info) float64 {
	if r, ok := s.Options.OpacityRules.Match(w); ok && r.Payload != nil {
		return *r.Payload
	}
	if v, ok := s.winOpt(w).Opacity.Value(); ok {
		return v
	}
	if w.Focused {
		return s.Options.ActiveOpacity
	}
	return s.Options.InactiveOpacity
}

// CornerRadiusFor resolves the rounded corner radius of w, in pixels.
func (s *State) CornerRadiusFor(w win.Info) int {
	if s.Options.RoundedCornersExclude.Matches(w) {
		return 0
	}
	if v, ok := s.winOpt(w).CornerRadius.Value(); ok {
		return v
	}
	return s.Options.CornerRadius
}

// RoundBordersFor resolves the rounded border width of w, in pixels.
func (s *State) RoundBordersFor(w win.Info) int {
	if s.Options.RoundBordersExclude.Matches(w) {
		return 0
	}
	if v, ok := s.winOpt(w).RoundBorders.Value(); ok {
		return v
	}
	return s.Options.RoundBorders
}

// PaintFor resolves whether w is painted at all.
func (s *State) PaintFor(w win.Info) bool {
	return !s.Options.PaintExclude.Matches(w)
}

// InvertColorFor resolves whether w is drawn with inverted colors.
func (s *State) InvertColorFor(w win.Info) bool {
	return s.Options.InvertColor.Matches(w)
}

// BlurFor resolves whether the background of w is blurred.
func (s *State) BlurFor(w win.Info) bool {
	if s.Options.BlurMethod == BlurMethodNone {
		return false
	}
	return !s.Options.BlurBackgroundExclude.Matches(w)
}

// TransitionFor resolves whether w animates.
func (s *State) TransitionFor(w win.Info) bool {
	if s.Options.TransitionExclude.Matches(w) {
		return false
	}
	return s.Options.TransitionLength > 0
}

// EffectiveFor resolves every per-window tunable for w in one pass.
func (s *State) EffectiveFor(w win.Info) Effective {
	return Effective{
		Shadow:       s.ShadowFor(w),
		Fade:         s.FadeFor(w),
		FocusForced:  s.FocusForcedFor(w),
		FullShadow:   s.FullShadowFor(w),
		RedirIgnore:  s.RedirIgnoreFor(w),
		Opacity:      s.OpacityFor(w),
		CornerRadius: s.CornerRadiusFor(w),
		RoundBorders: s.RoundBordersFor(w),
		Paint:        s.PaintFor(w),
		InvertColor:  s.InvertColorFor(w),
		Blur:         s.BlurFor(w),
		Transition:   s.TransitionFor(w),
	}
}

func (s *State) winOpt(w win.Info) *WinOptions {
	t := w.Type
	if t < 0 || t >= win.NumWindowTypes {
		t = win.Unknown
	}
	return &s.Options.WinTypes[t]
}
