package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/lumawm/luma/internal/win"
)

func TestParse_FullConfig(t *testing.T) {
	doc := `
backend = "glx"
vsync = "no"
shadow = true
shadow-radius = 14
shadow-opacity = 0.6
fading = true
fade-in-step = 0.05
fade-delta = 8
inactive-opacity = 0.9
blur-method = "dual_kawase"
blur-strength = 7
corner-radius = 12
transition-length = 200
shadow-exclude = ["^Conky$", "class = notification"]
opacity-rule = ["85:^URxvt$"]

[wintypes.tooltip]
shadow = false
fade = true
opacity = 0.75

[wintypes.dock]
shadow = false
`
	st, report, err := Parse([]byte(doc), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if report.HasWarnings() {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}

	o := st.Options
	if o.Backend != BackendGLX {
		t.Errorf("Backend = %v, want glx", o.Backend)
	}
	if o.Vsync {
		t.Error("Vsync = true, want false for token \"no\"")
	}
	if !o.ShadowEnabled || o.ShadowRadius != 14 || o.ShadowOpacity != 0.6 {
		t.Errorf("shadow settings = %v/%d/%v", o.ShadowEnabled, o.ShadowRadius, o.ShadowOpacity)
	}
	if !o.FadingEnabled || o.FadeInStep != 0.05 || o.FadeDelta != 8 {
		t.Errorf("fade settings = %v/%v/%d", o.FadingEnabled, o.FadeInStep, o.FadeDelta)
	}
	if o.InactiveOpacity != 0.9 {
		t.Errorf("InactiveOpacity = %v, want 0.9", o.InactiveOpacity)
	}
	if o.BlurMethod != BlurMethodDualKawase {
		t.Errorf("BlurMethod = %v, want dual_kawase", o.BlurMethod)
	}
	if o.BlurStrength.Strength != 7 {
		t.Errorf("BlurStrength.Strength = %d, want 7", o.BlurStrength.Strength)
	}
	if o.CornerRadius != 12 {
		t.Errorf("CornerRadius = %d, want 12", o.CornerRadius)
	}
	if o.ShadowExclude.Len() != 2 {
		t.Errorf("ShadowExclude.Len() = %d, want 2", o.ShadowExclude.Len())
	}
	if o.OpacityRules.Len() != 1 {
		t.Errorf("OpacityRules.Len() = %d, want 1", o.OpacityRules.Len())
	}

	tip := o.WinTypes[win.Tooltip]
	if v, ok := tip.Shadow.Value(); !ok || v {
		t.Errorf("tooltip shadow override = %v, %v; want false, set", v, ok)
	}
	if v, ok := tip.Opacity.Value(); !ok || v != 0.75 {
		t.Errorf("tooltip opacity override = %v, %v; want 0.75, set", v, ok)
	}
	if tip.CornerRadius.IsSet() {
		t.Error("tooltip corner-radius should stay unset")
	}
	if o.WinTypes[win.Normal].Shadow.IsSet() {
		t.Error("normal shadow should stay unset")
	}
}

func TestParse_Defaults(t *testing.T) {
	st, report, err := Parse([]byte(""), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if report.HasWarnings() {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}
	o := st.Options
	if o.Backend != BackendXRender || !o.Vsync {
		t.Errorf("defaults: backend %v vsync %v", o.Backend, o.Vsync)
	}
	if o.ActiveOpacity != 1.0 || o.InactiveOpacity != 1.0 {
		t.Errorf("defaults: opacity %v/%v", o.ActiveOpacity, o.InactiveOpacity)
	}
	if o.BlurStrength.Strength != 5 {
		t.Errorf("defaults: blur strength %d, want 5", o.BlurStrength.Strength)
	}
}

// Malformed values for known fields abort the whole load.
func TestParse_FailHard(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad backend", `backend = "opengl"`},
		{"non-string backend", `backend = 3`},
		{"bad blur method", `blur-method = "heavy"`},
		{"non-numeric opacity", `inactive-opacity = "high"`},
		{"bool for int", `shadow-radius = true`},
		{"bad kernel", `blur-kern = "3,3,1"`},
		{"unknown wintype", "[wintypes.launcher]\nshadow = false"},
		{"bad wintype value", "[wintypes.dock]\nopacity = \"solid\""},
		{"bad toml", `shadow = `},
	}

	for _, tt := range tests {
		st, _, err := Parse([]byte(tt.doc), nil)
		if err == nil {
			t.Errorf("%s: Parse should fail", tt.name)
			continue
		}
		if st != nil {
			t.Errorf("%s: Parse returned a state on failure", tt.name)
		}
	}
}

func TestParse_FatalErrorNamesField(t *testing.T) {
	_, _, err := Parse([]byte(`inactive-opacity = "high"`), nil)
	var fe *FatalError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FatalError", err)
	}
	if fe.Field != "inactive-opacity" {
		t.Errorf("FatalError.Field = %q, want inactive-opacity", fe.Field)
	}
	if !strings.Contains(fe.Error(), "high") {
		t.Errorf("error %q should include the offending token", fe.Error())
	}
}

// A rule that fails to compile is skipped with a warning; the rest of the
// load proceeds.
func TestParse_FailSoftRules(t *testing.T) {
	doc := `
shadow-exclude = ["good", "[unclosed", "also-good"]
opacity-rule = ["85:fine", "oops", "200:over"]
`
	st, report, err := Parse([]byte(doc), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if st.Options.ShadowExclude.Len() != 2 {
		t.Errorf("ShadowExclude.Len() = %d, want 2 surviving rules", st.Options.ShadowExclude.Len())
	}
	if st.Options.OpacityRules.Len() != 1 {
		t.Errorf("OpacityRules.Len() = %d, want 1 surviving rule", st.Options.OpacityRules.Len())
	}
	if len(report.Warnings) != 3 {
		t.Errorf("len(Warnings) = %d, want 3: %v", len(report.Warnings), report.Warnings)
	}
}

func TestParse_BlurStrengthOutOfRange(t *testing.T) {
	st, report, err := Parse([]byte(`blur-strength = 25`), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if st.Options.BlurStrength.Strength != 5 {
		t.Errorf("BlurStrength.Strength = %d, want fallback 5", st.Options.BlurStrength.Strength)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(report.Warnings))
	}
}

func TestParse_DeprecatedBackendSpelling(t *testing.T) {
	st, report, err := Parse([]byte(`backend = "xr_glx_hybird"`), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if st.Options.Backend != BackendXRGlxHybrid {
		t.Errorf("Backend = %v, want hybrid", st.Options.Backend)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(report.Warnings))
	}
	if !strings.Contains(report.Warnings[0].Message, "xr_glx_hybrid") {
		t.Errorf("warning %q should suggest the correct spelling", report.Warnings[0].Message)
	}
}

func TestParse_DeprecatedKawaseAlias(t *testing.T) {
	st, report, err := Parse([]byte(`blur-method = "kawase"`), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if st.Options.BlurMethod != BlurMethodDualKawase {
		t.Errorf("BlurMethod = %v, want dual_kawase", st.Options.BlurMethod)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("len(Warnings) = %d, want 1", len(report.Warnings))
	}
}

func TestParse_BlurKernels(t *testing.T) {
	st, _, err := Parse([]byte(`blur-kern = "3,3,1,1,1,1,-1,1,1,1,1;1,3,1,1,1"`), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(st.Options.BlurKernels) != 2 {
		t.Errorf("len(BlurKernels) = %d, want 2", len(st.Options.BlurKernels))
	}
	if !st.KernelHasNegative {
		t.Error("KernelHasNegative = false, want true")
	}
}

func TestParse_UnknownKeyWarns(t *testing.T) {
	_, report, err := Parse([]byte(`shadow-radiuss = 10`), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(report.Warnings))
	}
	if !strings.Contains(report.Warnings[0].Message, "shadow-radiuss") {
		t.Errorf("warning %q should name the unknown key", report.Warnings[0].Message)
	}
}

func TestParse_StringNumbersAreStrict(t *testing.T) {
	st, _, err := Parse([]byte(`shadow-radius = "15"`), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if st.Options.ShadowRadius != 15 {
		t.Errorf("ShadowRadius = %d, want 15", st.Options.ShadowRadius)
	}

	if _, _, err := Parse([]byte(`shadow-radius = "15px"`), nil); err == nil {
		t.Error("trailing garbage in a numeric string should fail the load")
	}
}

func TestParse_VsyncForms(t *testing.T) {
	tests := []struct {
		doc  string
		want bool
	}{
		{`vsync = "none"`, false},
		{`vsync = "nah"`, false},
		{`vsync = "sure"`, true},
		{`vsync = false`, false},
		{`vsync = true`, true},
	}

	for _, tt := range tests {
		st, _, err := Parse([]byte(tt.doc), nil)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.doc, err)
			continue
		}
		if st.Options.Vsync != tt.want {
			t.Errorf("Parse(%q) Vsync = %v, want %v", tt.doc, st.Options.Vsync, tt.want)
		}
	}
}

func TestParse_GenerationsDiffer(t *testing.T) {
	a, _, err := Parse([]byte(""), nil)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Parse([]byte(""), nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.Generation == b.Generation {
		t.Error("two loads produced the same generation id")
	}
}
