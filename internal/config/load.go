package config

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/lumawm/luma/internal/config/rules"
	"github.com/lumawm/luma/internal/win"
)

// Parse builds a State from raw TOML configuration data. The file format
// only supplies field/value pairs; all value-level semantics go through the
// parsers in this package.
//
// Malformed values for known fields are fatal and no State is returned.
// Individual rule compile failures and out-of-range blur strengths are
// collected on the LoadReport and the offending entry is skipped. The
// report is returned even when the parse fails, so callers can surface the
// warnings gathered before the fatal error.
func Parse(data []byte, compile rules.Compiler) (*State, *LoadReport, error) {
	report := &LoadReport{}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, report, fatal("config", "", fmt.Errorf("parsing config: %w", err))
	}

	b := &builder{
		raw:    raw,
		opts:   Defaults(compile),
		report: report,
	}
	st := b.build()
	if b.err != nil {
		return nil, report, b.err
	}
	return st, report, nil
}

type builder struct {
	raw    map[string]any
	opts   *Options
	report *LoadReport
	err    error
}

func (b *builder) build() *State {
	b.str("backend", func(s string) {
		bk, err := ParseBackend(s)
		switch {
		case err == nil:
		case IsWarning(err):
			b.report.warnErr("backend", err)
		default:
			b.fail("backend", s, err)
			return
		}
		b.opts.Backend = bk
	})

	// vsync is an inclusive token parse, not a strict boolean; a literal
	// boolean is also accepted.
	if v, ok := b.raw["vsync"]; ok {
		switch t := v.(type) {
		case bool:
			b.opts.Vsync = t
		case string:
			b.opts.Vsync = ParseVsync(t)
		default:
			b.fail("vsync", fmt.Sprint(v), fmt.Errorf("%w: expected string or boolean, got %T", ErrBadToken, v))
		}
	}

	b.bool("shadow", &b.opts.ShadowEnabled)
	b.int("shadow-radius", &b.opts.ShadowRadius)
	b.int("shadow-offset-x", &b.opts.ShadowOffsetX)
	b.int("shadow-offset-y", &b.opts.ShadowOffsetY)
	b.float("shadow-opacity", &b.opts.ShadowOpacity)
	b.float("shadow-red", &b.opts.ShadowRed)
	b.float("shadow-green", &b.opts.ShadowGreen)
	b.float("shadow-blue", &b.opts.ShadowBlue)
	b.bool("shadow-ignore-shaped", &b.opts.ShadowIgnoreShaped)

	b.bool("fading", &b.opts.FadingEnabled)
	b.float("fade-in-step", &b.opts.FadeInStep)
	b.float("fade-out-step", &b.opts.FadeOutStep)
	b.int("fade-delta", &b.opts.FadeDelta)
	b.bool("no-fading-openclose", &b.opts.NoFadingOpenClose)

	b.float("active-opacity", &b.opts.ActiveOpacity)
	b.float("inactive-opacity", &b.opts.InactiveOpacity)
	b.float("frame-opacity", &b.opts.FrameOpacity)
	b.bool("inactive-opacity-override", &b.opts.InactiveOpacityOverride)
	b.float("inactive-dim", &b.opts.InactiveDim)

	b.str("blur-method", func(s string) {
		m := ParseBlurMethod(s)
		if m == BlurMethodInvalid {
			b.fail("blur-method", s, fmt.Errorf("%w: unknown blur method", ErrBadToken))
			return
		}
		if s == "kawase" {
			b.report.warn(warnf("blur-method", s, "blur method kawase is deprecated, use dual_kawase"))
		}
		b.opts.BlurMethod = m
	})
	b.int("blur-radius", &b.opts.BlurRadius)
	b.float("blur-deviation", &b.opts.BlurDeviation)
	b.bool("blur-background-frame", &b.opts.BlurBackgroundFrame)
	b.bool("blur-background-fixed", &b.opts.BlurBackgroundFixed)

	if v, ok := b.raw["blur-strength"]; ok {
		level := 0
		switch t := v.(type) {
		case int64:
			level = int(t)
		case string:
			n, err := ParseInt(t)
			if err != nil {
				b.fail("blur-strength", t, err)
			}
			level = n
		default:
			b.fail("blur-strength", fmt.Sprint(v), fmt.Errorf("%w: expected integer, got %T", ErrBadToken, v))
		}
		if b.err == nil {
			preset, err := KawaseBlurStrength(level)
			if err != nil {
				b.report.warnErr("blur-strength", err)
			}
			b.opts.BlurStrength = preset
		}
	}

	hasNeg := false
	b.str("blur-kern", func(s string) {
		kernels, neg, err := ParseBlurKernelList(s)
		if err != nil {
			b.fail("blur-kern", s, err)
			return
		}
		b.opts.BlurKernels = kernels
		hasNeg = neg
	})

	b.int("corner-radius", &b.opts.CornerRadius)
	b.int("round-borders", &b.opts.RoundBorders)

	b.int("transition-length", &b.opts.TransitionLength)
	b.float("transition-pow-x", &b.opts.TransitionPowX)
	b.float("transition-pow-y", &b.opts.TransitionPowY)
	b.float("transition-pow-w", &b.opts.TransitionPowW)
	b.float("transition-pow-h", &b.opts.TransitionPowH)
	b.bool("size-transition", &b.opts.SizeTransition)
	b.bool("no-scale-down", &b.opts.NoScaleDown)

	b.bool("unredir-if-possible", &b.opts.UnredirIfPossible)
	b.long("unredir-if-possible-delay", &b.opts.UnredirIfPossibleDelay)
	b.float("max-brightness", &b.opts.MaxBrightness)

	b.ruleList("shadow-exclude", b.opts.ShadowExclude)
	b.ruleList("fade-exclude", b.opts.FadeExclude)
	b.ruleList("focus-exclude", b.opts.FocusExclude)
	b.ruleList("invert-color-include", b.opts.InvertColor)
	b.ruleList("blur-background-exclude", b.opts.BlurBackgroundExclude)
	b.ruleList("paint-exclude", b.opts.PaintExclude)
	b.ruleList("unredir-if-possible-exclude", b.opts.UnredirIfPossibleExclude)
	b.ruleList("rounded-corners-exclude", b.opts.RoundedCornersExclude)
	b.ruleList("round-borders-exclude", b.opts.RoundBordersExclude)
	b.ruleList("transition-exclude", b.opts.TransitionExclude)

	for _, raw := range b.strs("opacity-rule") {
		if err := b.opts.OpacityRules.AddOpacityRule(raw); err != nil {
			b.report.warnErr("opacity-rule", err)
		}
	}

	b.wintypes()
	b.checkUnknownKeys()

	if b.err != nil {
		return nil
	}
	st := newState(b.opts, "")
	st.KernelHasNegative = hasNeg
	return st
}

// wintypes reads the [wintypes.<type>] tables into the override table.
// Every field set here is explicitly marked; nothing else ever sets a mark.
func (b *builder) wintypes() {
	v, ok := b.raw["wintypes"]
	if !ok || b.err != nil {
		return
	}
	m, ok := v.(map[string]any)
	if !ok {
		b.fail("wintypes", fmt.Sprint(v), fmt.Errorf("%w: expected table, got %T", ErrBadToken, v))
		return
	}
	for name, entry := range m {
		t, known := win.ParseWindowType(name)
		if !known {
			b.fail("wintypes", name, ErrUnknownWindowType)
			return
		}
		table, ok := entry.(map[string]any)
		if !ok {
			b.fail("wintypes."+name, fmt.Sprint(entry), fmt.Errorf("%w: expected table, got %T", ErrBadToken, entry))
			return
		}
		b.winOptions("wintypes."+name, table, &b.opts.WinTypes[t])
		if b.err != nil {
			return
		}
	}
}

func (b *builder) winOptions(field string, table map[string]any, dst *WinOptions) {
	for key, v := range table {
		switch key {
		case "shadow":
			b.setOptBool(field, key, v, &dst.Shadow)
		case "fade":
			b.setOptBool(field, key, v, &dst.Fade)
		case "focus":
			b.setOptBool(field, key, v, &dst.Focus)
		case "full-shadow":
			b.setOptBool(field, key, v, &dst.FullShadow)
		case "redir-ignore":
			b.setOptBool(field, key, v, &dst.RedirIgnore)
		case "opacity":
			b.setOptFloat(field, key, v, &dst.Opacity)
		case "corner-radius":
			b.setOptInt(field, key, v, &dst.CornerRadius)
		case "round-borders":
			b.setOptInt(field, key, v, &dst.RoundBorders)
		default:
			b.report.warn(warnf(field, key, "unknown wintype option %q ignored", key))
		}
		if b.err != nil {
			return
		}
	}
}

func (b *builder) setOptBool(field, key string, v any, dst *Opt[bool]) {
	t, ok := v.(bool)
	if !ok {
		b.fail(field+"."+key, fmt.Sprint(v), fmt.Errorf("%w: expected boolean, got %T", ErrBadToken, v))
		return
	}
	dst.Set(t)
}

func (b *builder) setOptFloat(field, key string, v any, dst *Opt[float64]) {
	f, err := coerceFloat(v)
	if err != nil {
		b.fail(field+"."+key, fmt.Sprint(v), err)
		return
	}
	dst.Set(f)
}

func (b *builder) setOptInt(field, key string, v any, dst *Opt[int]) {
	n, err := coerceInt(v)
	if err != nil {
		b.fail(field+"."+key, fmt.Sprint(v), err)
		return
	}
	dst.Set(n)
}

func (b *builder) fail(field, token string, err error) {
	if b.err == nil {
		b.err = fatal(field, token, err)
	}
}

// str applies fn to a string-valued field if present.
func (b *builder) str(key string, fn func(string)) {
	v, ok := b.raw[key]
	if !ok || b.err != nil {
		return
	}
	s, ok := v.(string)
	if !ok {
		b.fail(key, fmt.Sprint(v), fmt.Errorf("%w: expected string, got %T", ErrBadToken, v))
		return
	}
	fn(s)
}

func (b *builder) bool(key string, dst *bool) {
	v, ok := b.raw[key]
	if !ok || b.err != nil {
		return
	}
	t, ok := v.(bool)
	if !ok {
		b.fail(key, fmt.Sprint(v), fmt.Errorf("%w: expected boolean, got %T", ErrBadToken, v))
		return
	}
	*dst = t
}

func (b *builder) int(key string, dst *int) {
	v, ok := b.raw[key]
	if !ok || b.err != nil {
		return
	}
	n, err := coerceInt(v)
	if err != nil {
		b.fail(key, fmt.Sprint(v), err)
		return
	}
	*dst = n
}

func (b *builder) long(key string, dst *int64) {
	v, ok := b.raw[key]
	if !ok || b.err != nil {
		return
	}
	switch t := v.(type) {
	case int64:
		*dst = t
	case string:
		n, err := ParseLong(t)
		if err != nil {
			b.fail(key, t, err)
			return
		}
		*dst = n
	default:
		b.fail(key, fmt.Sprint(v), fmt.Errorf("%w: expected integer, got %T", ErrBadToken, v))
	}
}

func (b *builder) float(key string, dst *float64) {
	v, ok := b.raw[key]
	if !ok || b.err != nil {
		return
	}
	f, err := coerceFloat(v)
	if err != nil {
		b.fail(key, fmt.Sprint(v), err)
		return
	}
	*dst = f
}

// strs reads a string-list field. A single string is accepted as a
// one-element list.
func (b *builder) strs(key string) []string {
	v, ok := b.raw[key]
	if !ok || b.err != nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				b.fail(key, fmt.Sprint(item), fmt.Errorf("%w: expected string, got %T", ErrBadToken, item))
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		b.fail(key, fmt.Sprint(v), fmt.Errorf("%w: expected string list, got %T", ErrBadToken, v))
		return nil
	}
}

// ruleList appends each pattern of a string-list field to l, skipping and
// recording patterns that fail to compile.
func (b *builder) ruleList(key string, l *rules.List) {
	for _, p := range b.strs(key) {
		if err := l.Add(p); err != nil {
			b.report.warnErr(key, err)
		}
	}
}

// checkUnknownKeys records a warning for every top-level key this core does
// not recognize. Typos in option names should not pass silently.
func (b *builder) checkUnknownKeys() {
	for key := range b.raw {
		if !knownKeys[key] {
			b.report.warn(warnf(key, "", "unknown configuration option %q ignored", key))
		}
	}
}

var knownKeys = map[string]bool{
	"backend": true, "vsync": true,
	"shadow": true, "shadow-radius": true, "shadow-offset-x": true,
	"shadow-offset-y": true, "shadow-opacity": true, "shadow-red": true,
	"shadow-green": true, "shadow-blue": true, "shadow-ignore-shaped": true,
	"fading": true, "fade-in-step": true, "fade-out-step": true,
	"fade-delta": true, "no-fading-openclose": true,
	"active-opacity": true, "inactive-opacity": true, "frame-opacity": true,
	"inactive-opacity-override": true, "inactive-dim": true,
	"blur-method": true, "blur-radius": true, "blur-deviation": true,
	"blur-strength": true, "blur-background-frame": true,
	"blur-background-fixed": true, "blur-kern": true,
	"corner-radius": true, "round-borders": true,
	"transition-length": true, "transition-pow-x": true,
	"transition-pow-y": true, "transition-pow-w": true,
	"transition-pow-h": true, "size-transition": true, "no-scale-down": true,
	"unredir-if-possible": true, "unredir-if-possible-delay": true,
	"max-brightness": true,
	"shadow-exclude": true, "fade-exclude": true, "focus-exclude": true,
	"invert-color-include": true, "blur-background-exclude": true,
	"paint-exclude": true, "unredir-if-possible-exclude": true,
	"opacity-rule": true, "rounded-corners-exclude": true,
	"round-borders-exclude": true, "transition-exclude": true,
	"wintypes": true,
}

// coerceInt converts a TOML value to int. Strings go through the strict
// integer parser; floats are rejected rather than truncated.
func coerceInt(v any) (int, error) {
	switch t := v.(type) {
	case int64:
		if t > math.MaxInt || t < math.MinInt {
			return 0, fmt.Errorf("%w: %d out of range", ErrBadToken, t)
		}
		return int(t), nil
	case string:
		return ParseInt(t)
	default:
		return 0, fmt.Errorf("%w: expected integer, got %T", ErrBadToken, v)
	}
}

// coerceFloat converts a TOML value to float64. Integers are acceptable for
// floats; strings go through strict parsing.
func coerceFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int64:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a valid number", ErrBadToken, t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: expected number, got %T", ErrBadToken, v)
	}
}
