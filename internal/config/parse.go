package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Backend selects the rendering backend.
type Backend int

const (
	// BackendXRender renders with XRender.
	BackendXRender Backend = iota
	// BackendGLX renders with OpenGL via GLX.
	BackendGLX
	// BackendXRGlxHybrid composites with XRender and presents with GLX.
	BackendXRGlxHybrid
	// BackendDummy renders nothing, for testing.
	BackendDummy

	// BackendInvalid is the sentinel for unrecognized backend names. It is
	// distinct from every real backend.
	BackendInvalid
)

var backendNames = [...]string{
	BackendXRender:     "xrender",
	BackendGLX:         "glx",
	BackendXRGlxHybrid: "xr_glx_hybrid",
	BackendDummy:       "dummy",
}

// String returns the canonical backend name.
func (b Backend) String() string {
	if b < 0 || int(b) >= len(backendNames) {
		return "invalid"
	}
	return backendNames[b]
}

// ParseLong strictly converts a decimal token to an int64. Empty input,
// trailing garbage, and out-of-range values all fail; there is no silent
// truncation.
func ParseLong(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid integer", ErrBadToken, s)
	}
	return n, nil
}

// ParseInt strictly converts a decimal token to an int. Same failure rules
// as ParseLong.
func ParseInt(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid integer", ErrBadToken, s)
	}
	return int(n), nil
}

// ParseBackend matches a backend name case-insensitively against the known
// set. Two deprecated misspellings of xr_glx_hybrid are accepted with a
// deprecation Warning as the returned error; the caller should aggregate it
// and continue. Unrecognized input returns BackendInvalid and an error
// naming the token.
func ParseBackend(s string) (Backend, error) {
	for b, name := range backendNames {
		if strings.EqualFold(s, name) {
			return Backend(b), nil
		}
	}
	// Kept for compatibility with configurations written against old
	// releases that shipped these spellings.
	if strings.EqualFold(s, "xr_glx_hybird") {
		return BackendXRGlxHybrid, warnf("backend", s,
			"backend xr_glx_hybird should be xr_glx_hybrid, the misspelt version will be removed soon")
	}
	if strings.EqualFold(s, "xr-glx-hybrid") {
		return BackendXRGlxHybrid, warnf("backend", s,
			"backend xr-glx-hybrid should be xr_glx_hybrid, the alternative version will be removed soon")
	}
	return BackendInvalid, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// ParseVsync interprets a VSync option token. Exactly "no", "none", "false"
// and "nah" disable VSync; every other token enables it. The default-on
// policy is deliberate: it is an inclusive parse, not a strict boolean one.
func ParseVsync(s string) bool {
	switch s {
	case "no", "none", "false", "nah":
		return false
	}
	return true
}

// BlurMethod selects the background blur algorithm.
type BlurMethod int

const (
	// BlurMethodNone disables background blur.
	BlurMethodNone BlurMethod = iota
	// BlurMethodKernel blurs with a user-supplied convolution kernel chain.
	BlurMethodKernel
	// BlurMethodBox is a box blur.
	BlurMethodBox
	// BlurMethodGaussian is a gaussian blur.
	BlurMethodGaussian
	// BlurMethodDualKawase is the dual-filter kawase blur.
	BlurMethodDualKawase
	// BlurMethodAltKawase is the alternative kawase implementation.
	BlurMethodAltKawase

	// BlurMethodInvalid is the sentinel for unrecognized method names, so
	// callers can detect and report bad input without a separate error
	// channel.
	BlurMethodInvalid
)

var blurMethodNames = [...]string{
	BlurMethodNone:       "none",
	BlurMethodKernel:     "kernel",
	BlurMethodBox:        "box",
	BlurMethodGaussian:   "gaussian",
	BlurMethodDualKawase: "dual_kawase",
	BlurMethodAltKawase:  "alt_kawase",
}

// String returns the canonical blur method name.
func (m BlurMethod) String() string {
	if m < 0 || int(m) >= len(blurMethodNames) {
		return "invalid"
	}
	return blurMethodNames[m]
}

// ParseBlurMethod maps a method name to its BlurMethod. "kawase" is accepted
// as an alias for dual_kawase. Unrecognized input yields BlurMethodInvalid.
func ParseBlurMethod(s string) BlurMethod {
	for m, name := range blurMethodNames {
		if s == name {
			return BlurMethod(m)
		}
	}
	if s == "kawase" {
		return BlurMethodDualKawase
	}
	return BlurMethodInvalid
}
