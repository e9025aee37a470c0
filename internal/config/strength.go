package config

import "fmt"

// BlurStrength is one kawase blur preset: the parameters of a full blur
// pass chain selected by a single strength level.
type BlurStrength struct {
	// Expand is the pixel distance the blur region grows by.
	Expand int

	// Strength is the level this preset belongs to.
	Strength int

	// Iterations is the number of down/up sample passes.
	Iterations int

	// Offset is the sample offset per pass.
	Offset float64
}

// kawaseStrengths maps strength levels 1..20 to their presets.
var kawaseStrengths = [20]BlurStrength{
	{Expand: 10, Strength: 1, Iterations: 1, Offset: 1.5},
	{Expand: 10, Strength: 2, Iterations: 1, Offset: 2.0},
	{Expand: 20, Strength: 3, Iterations: 2, Offset: 2.5},
	{Expand: 20, Strength: 4, Iterations: 2, Offset: 3.0},
	{Expand: 50, Strength: 5, Iterations: 3, Offset: 2.75},
	{Expand: 50, Strength: 6, Iterations: 3, Offset: 3.5},
	{Expand: 50, Strength: 7, Iterations: 3, Offset: 4.25},
	{Expand: 50, Strength: 8, Iterations: 3, Offset: 5.0},
	{Expand: 150, Strength: 9, Iterations: 4, Offset: 3.71429},
	{Expand: 150, Strength: 10, Iterations: 4, Offset: 4.42857},
	{Expand: 150, Strength: 11, Iterations: 4, Offset: 5.14286},
	{Expand: 150, Strength: 12, Iterations: 4, Offset: 5.85714},
	{Expand: 150, Strength: 13, Iterations: 4, Offset: 6.57143},
	{Expand: 150, Strength: 14, Iterations: 4, Offset: 7.28571},
	{Expand: 150, Strength: 15, Iterations: 4, Offset: 8.0},
	{Expand: 400, Strength: 16, Iterations: 5, Offset: 6.0},
	{Expand: 400, Strength: 17, Iterations: 5, Offset: 7.0},
	{Expand: 400, Strength: 18, Iterations: 5, Offset: 8.0},
	{Expand: 400, Strength: 19, Iterations: 5, Offset: 9.0},
	{Expand: 400, Strength: 20, Iterations: 5, Offset: 10.0},
}

// kawaseFallbackLevel is substituted when the requested level is out of
// range, so blur-strength selection never aborts startup.
const kawaseFallbackLevel = 5

// KawaseBlurStrength returns the preset for a strength level in [1, 20].
// Out-of-range levels return the level-5 preset together with a Warning
// naming the bad level and the fallback; the caller should report it and
// continue.
func KawaseBlurStrength(level int) (BlurStrength, error) {
	if level < 1 || level > len(kawaseStrengths) {
		w := warnf("blur-strength", fmt.Sprint(level),
			"invalid blur strength %d: must be between 1 and 20, defaulting to %d", level, kawaseFallbackLevel)
		w.Err = ErrStrengthRange
		return kawaseStrengths[kawaseFallbackLevel-1], w
	}
	return kawaseStrengths[level-1], nil
}
