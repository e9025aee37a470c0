package config

import (
	"errors"
	"testing"
)

func TestKawaseBlurStrength(t *testing.T) {
	got, err := KawaseBlurStrength(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := BlurStrength{Expand: 50, Strength: 5, Iterations: 3, Offset: 2.75}
	if got != want {
		t.Errorf("KawaseBlurStrength(5) = %+v, want %+v", got, want)
	}
}

func TestKawaseBlurStrength_AllLevels(t *testing.T) {
	for level := 1; level <= 20; level++ {
		got, err := KawaseBlurStrength(level)
		if err != nil {
			t.Errorf("KawaseBlurStrength(%d) unexpected error: %v", level, err)
		}
		if got.Strength != level {
			t.Errorf("KawaseBlurStrength(%d).Strength = %d, want %d", level, got.Strength, level)
		}
		if got.Iterations < 1 || got.Expand < 1 || got.Offset <= 0 {
			t.Errorf("KawaseBlurStrength(%d) = %+v, implausible preset", level, got)
		}
	}
}

// Out-of-range levels fall back to the level-5 preset and report a warning
// rather than failing the caller.
func TestKawaseBlurStrength_OutOfRange(t *testing.T) {
	fallback := BlurStrength{Expand: 50, Strength: 5, Iterations: 3, Offset: 2.75}

	for _, level := range []int{0, 21, -1, 100} {
		got, err := KawaseBlurStrength(level)
		if got != fallback {
			t.Errorf("KawaseBlurStrength(%d) = %+v, want level-5 fallback %+v", level, got, fallback)
		}
		if err == nil {
			t.Errorf("KawaseBlurStrength(%d) should report an error", level)
			continue
		}
		if !IsWarning(err) {
			t.Errorf("KawaseBlurStrength(%d) error = %v, want a Warning", level, err)
		}
		if !errors.Is(err, ErrStrengthRange) {
			t.Errorf("KawaseBlurStrength(%d) error = %v, want ErrStrengthRange", level, err)
		}
	}
}
